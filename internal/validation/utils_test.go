package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/utilsvc/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var testValidator = validator.New()

type lookupRequest struct {
	Name  string `query:"name"`
	Limit int    `query:"limit" validate:"min=1,max=50"`
	Link  string `query:"link" validate:"omitempty,http_url"`
}

func (r *lookupRequest) Validate() error { return testValidator.Struct(r) }

func (r *lookupRequest) RequiredParams() []string { return []string{"name"} }

type unsupportedRequest struct{}

func (r *unsupportedRequest) Validate() error {
	return errors.New("mode is not supported")
}

func newContext(target string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *errs.HTTPError, got %v", err)
	}
	return httpErr
}

func TestBindAndValidate_Success(t *testing.T) {
	req := &lookupRequest{Limit: 10}
	if err := BindAndValidate(newContext("/?name=&limit=5"), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Name != "" || req.Limit != 5 {
		t.Errorf("unexpected binding: %+v", req)
	}
}

func TestBindAndValidate_KeepsDefaults(t *testing.T) {
	req := &lookupRequest{Limit: 10}
	if err := BindAndValidate(newContext("/?name=x"), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Limit != 10 {
		t.Errorf("default overwritten: limit = %d", req.Limit)
	}
}

func TestBindAndValidate_MissingParam(t *testing.T) {
	err := BindAndValidate(newContext("/?limit=5"), &lookupRequest{})

	httpErr := asHTTPError(t, err)
	if httpErr.Status != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", httpErr.Status)
	}
	if len(httpErr.Errors) != 1 || httpErr.Errors[0].Field != "name" || httpErr.Errors[0].Error != "is required" {
		t.Errorf("unexpected field errors: %+v", httpErr.Errors)
	}
}

func TestBindAndValidate_BindError(t *testing.T) {
	err := BindAndValidate(newContext("/?name=x&limit=many"), &lookupRequest{})

	if httpErr := asHTTPError(t, err); httpErr.Status != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", httpErr.Status)
	}
}

func TestBindAndValidate_TagErrors(t *testing.T) {
	tests := []struct {
		name   string
		target string
		field  string
		msg    string
	}{
		{"max", "/?name=x&limit=99", "limit", "must not exceed 50"},
		{"min", "/?name=x&limit=0", "limit", "must be at least 1"},
		{"url", "/?name=x&limit=1&link=nope", "link", "must be a valid http(s) URL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := asHTTPError(t, BindAndValidate(newContext(tt.target), &lookupRequest{}))

			if httpErr.Status != http.StatusUnprocessableEntity {
				t.Errorf("status = %d, want 422", httpErr.Status)
			}
			if len(httpErr.Errors) != 1 {
				t.Fatalf("expected one field error, got %+v", httpErr.Errors)
			}
			if httpErr.Errors[0].Field != tt.field || httpErr.Errors[0].Error != tt.msg {
				t.Errorf("field error = %+v, want %s %q", httpErr.Errors[0], tt.field, tt.msg)
			}
		})
	}
}

func TestBindAndValidate_PlainValidateError(t *testing.T) {
	httpErr := asHTTPError(t, BindAndValidate(newContext("/"), &unsupportedRequest{}))

	if len(httpErr.Errors) != 1 || httpErr.Errors[0].Field != "" || httpErr.Errors[0].Error != "mode is not supported" {
		t.Errorf("unexpected field errors: %+v", httpErr.Errors)
	}
}

func TestBindAndValidate_IgnoresBody(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?name=query&limit=5", strings.NewReader(`{"name":"body","limit":7}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())

	payload := &lookupRequest{Limit: 10}
	if err := BindAndValidate(c, payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload.Name != "query" || payload.Limit != 5 {
		t.Errorf("body leaked into payload: %+v", payload)
	}
}
