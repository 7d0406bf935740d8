// Package service contains the business logic.
//
// It sits between the handler layer and the libraries. It receives
// validated requests from the handlers, performs the transformation
// (Base64 coding, delays, remote fetches) and returns response payloads
// or *errs.HTTPError values the global error handler can render.
package service
