// Package handler is the first layer. The first entry point
// for business logic after the router.
//
// It receives bound and validated requests through the typed
// pipeline in base.go, calls the service layer and returns
// responses. It acts as the interface between the HTTP request
// and the business logic.
package handler
