package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/deppfellow/utilsvc/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Validatable is implemented by request payload types that know how to validate themselves.
type Validatable interface {
	Validate() error
}

// RequiredParams is implemented by request types with query parameters
// that must be present. Presence is checked, not emptiness: `?data=` is
// a valid empty value while a missing `data` is rejected.
type RequiredParams interface {
	RequiredParams() []string
}

var queryBinder = &echo.DefaultBinder{}

// BindAndValidate binds request data into payload and validates it.
//
// Flow:
// 1) Query parameters are bound into payload. The request body is never read.
// 2) Required parameters are checked for presence in the query string.
// 3) payload.Validate() applies the struct's tag rules.
//
// Every failure is a 422 *errs.HTTPError. payload must be a pointer.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := queryBinder.BindQueryParams(c, payload); err != nil {
		return errs.NewUnprocessableEntityError(bindErrorMessage(err), false, nil)
	}

	if required, ok := payload.(RequiredParams); ok {
		if fieldErrors := missingParams(c, required.RequiredParams()); fieldErrors != nil {
			return errs.NewUnprocessableEntityError("Validation failed", true, fieldErrors)
		}
	}

	if msg, fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.NewUnprocessableEntityError(msg, true, fieldErrors)
	}

	return nil
}

// bindErrorMessage extracts the client-facing message from a binder error.
func bindErrorMessage(err error) string {
	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		if msg, ok := echoErr.Message.(string); ok && msg != "" {
			return msg
		}
	}
	return "Invalid request parameters"
}

func missingParams(c echo.Context, names []string) []errs.FieldError {
	query := c.QueryParams()

	var fieldErrors []errs.FieldError
	for _, name := range names {
		if !query.Has(name) {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: name,
				Error: "is required",
			})
		}
	}

	return fieldErrors
}

// validateStruct calls v.Validate() and extracts field errors if validation fails.
func validateStruct(v Validatable) (string, []errs.FieldError) {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return "", nil
}

func extractValidationError(err error) (string, []errs.FieldError) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// Not a tag error: surface the message as a single field-less error.
		return "Validation failed", []errs.FieldError{{Error: err.Error()}}
	}

	var fieldErrors []errs.FieldError

	for _, err := range validationErrors {
		field := strings.ToLower(err.Field())
		var msg string

		switch err.Tag() {
		case "required":
			msg = "is required"

		case "min":
			if err.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", err.Param())
			}

		case "max":
			if err.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must not exceed %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", err.Param())
			}

		case "oneof":
			msg = fmt.Sprintf("must be one of: %s", err.Param())

		case "url", "http_url":
			msg = "must be a valid http(s) URL"

		default:
			if err.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", field, err.Tag(), err.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", field, err.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: field,
			Error: msg,
		})
	}

	return "Validation failed", fieldErrors
}
