// Package validation contains the logic for binding and validating
// request data.
//
// It uses Echo's binder to read query parameters, checks that required
// parameters are present, runs the `validator` library against struct
// tags and converts failures into a format the client can understand
package validation
