// Package model holds the request and response payloads of the HTTP API.
//
// Request types carry `query` tags for Echo's binder, `validate` tags for
// go-playground/validator and implement validation.Validatable. Each one
// has a constructor that pre-fills its defaults; binding only overwrites
// parameters that are present in the query string.
package model

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// NoParams is the request type of endpoints that take no parameters.
type NoParams struct{}

func NewNoParams() *NoParams { return &NoParams{} }

func (*NoParams) Validate() error { return nil }

// MessageResponse is the body of the root and log endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}
