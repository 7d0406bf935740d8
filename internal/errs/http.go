package errs

import (
	"net/http"
)

// newHTTPError builds an HTTPError whose code is derived from the status text.
func newHTTPError(status int, message string, override bool) *HTTPError {
	return &HTTPError{
		Code:     MakeUpperCaseWithUnderscores(http.StatusText(status)),
		Message:  message,
		Status:   status,
		Override: override,
		Detail:   message,
	}
}

// NewBadRequestError creates a 400 Bad Request HTTPError.
func NewBadRequestError(message string, override bool) *HTTPError {
	return newHTTPError(http.StatusBadRequest, message, override)
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string) *HTTPError {
	return newHTTPError(http.StatusNotFound, message, false)
}

// NewMethodNotAllowedError creates a 405 Method Not Allowed HTTPError.
func NewMethodNotAllowedError(message string) *HTTPError {
	return newHTTPError(http.StatusMethodNotAllowed, message, false)
}

// NewUnprocessableEntityError creates a 422 Unprocessable Entity HTTPError.
//
// Used when query parameters are missing, cannot be parsed into their
// declared type, or fail a validation tag.
func NewUnprocessableEntityError(message string, override bool, errors []FieldError) *HTTPError {
	err := newHTTPError(http.StatusUnprocessableEntity, message, override)
	err.Errors = errors
	return err
}

// NewBadGatewayError creates a 502 Bad Gateway HTTPError for failed upstream calls.
func NewBadGatewayError(message string, override bool) *HTTPError {
	return newHTTPError(http.StatusBadGateway, message, override)
}

// NewInternalServerError creates a 500 Internal Server Error HTTPError.
//
// The message is the generic status text, never the internal error.
func NewInternalServerError() *HTTPError {
	return newHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError), false)
}
