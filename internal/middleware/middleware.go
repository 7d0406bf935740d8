// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns
// such as request ids, request-scoped logging, request logging,
// CORS, secure headers, tracing and panic recovery
package middleware
