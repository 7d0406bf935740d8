package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/utilsvc/internal/config"
	"github.com/deppfellow/utilsvc/internal/errs"
	"github.com/deppfellow/utilsvc/internal/server"
	"github.com/labstack/echo/v4"
	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"
)

func newTestServer(t *testing.T, out *bytes.Buffer) *server.Server {
	t.Helper()

	logger := zerolog.New(out)
	s, err := server.New(config.Default(), &logger, nil)
	if err != nil {
		t.Fatalf("server.New: %v", err)
	}
	return s
}

func TestGlobalErrorHandler(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		detail string
	}{
		{"http error", errs.NewBadRequestError("Invalid Base64 data", false), http.StatusBadRequest, "Invalid Base64 data"},
		{"echo not found", echo.ErrNotFound, http.StatusNotFound, "Route not found"},
		{"echo method not allowed", echo.ErrMethodNotAllowed, http.StatusMethodNotAllowed, "Method not allowed"},
		{"plain error", errors.New("database exploded"), http.StatusInternalServerError, "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			global := NewGlobalMiddlewares(newTestServer(t, &out))

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			global.GlobalErrorHandler(tt.err, c)

			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d", rec.Code, tt.status)
			}

			var body errs.HTTPError
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid body %q: %v", rec.Body.String(), err)
			}
			if body.Detail != tt.detail || body.Status != tt.status {
				t.Errorf("unexpected body: %+v", body)
			}
			if strings.Contains(rec.Body.String(), "database exploded") {
				t.Error("internal error text leaked to the client")
			}
		})
	}
}

func TestGlobalErrorHandler_ClientClosed(t *testing.T) {
	var out bytes.Buffer
	global := NewGlobalMiddlewares(newTestServer(t, &out))

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/sleep", nil), rec)

	global.GlobalErrorHandler(pkgerrors.Wrap(context.Canceled, "sleep interrupted"), c)

	if rec.Code != errs.StatusClientClosedRequest {
		t.Errorf("status = %d, want %d", rec.Code, errs.StatusClientClosedRequest)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("expected no body, got %q", rec.Body.String())
	}

	var entry map[string]interface{}
	if err := json.Unmarshal(out.Bytes(), &entry); err != nil {
		t.Fatalf("expected a single JSON log line, got %q: %v", out.String(), err)
	}
	if entry["level"] != "info" {
		t.Errorf("level = %v, want info", entry["level"])
	}
	if _, ok := entry["stack"]; ok {
		t.Error("a closed request must not log a stack trace")
	}
}

func TestGlobalErrorHandler_Committed(t *testing.T) {
	var out bytes.Buffer
	global := NewGlobalMiddlewares(newTestServer(t, &out))

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	if err := c.String(http.StatusOK, "partial"); err != nil {
		t.Fatal(err)
	}

	global.GlobalErrorHandler(errors.New("late failure"), c)

	if rec.Body.String() != "partial" {
		t.Errorf("committed response was modified: %q", rec.Body.String())
	}
}

func TestRequestIDAndContextLogger(t *testing.T) {
	var out bytes.Buffer
	s := newTestServer(t, &out)

	e := echo.New()
	e.Use(RequestID(), NewContextEnhancer(s).EnhanceContext())
	e.GET("/lookup", func(c echo.Context) error {
		// Services only see context.Context.
		zerolog.Ctx(c.Request().Context()).Info().Msg("from service")
		GetLogger(c).Info().Msg("from handler")
		return c.NoContent(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/lookup", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Header().Get(RequestIDHeader) != "req-42" {
		t.Errorf("request id header = %q", rec.Header().Get(RequestIDHeader))
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got %d: %s", len(lines), out.String())
	}
	for _, line := range lines {
		var entry map[string]interface{}
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("invalid log line %q: %v", line, err)
		}
		if entry["request_id"] != "req-42" || entry["path"] != "/lookup" {
			t.Errorf("log line missing request fields: %s", line)
		}
	}
}

func TestGetLogger_Fallback(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	if logger := GetLogger(c); logger == nil {
		t.Error("expected a no-op logger, got nil")
	}
}

func TestTracing_DisabledIsPassThrough(t *testing.T) {
	var out bytes.Buffer
	tracing := NewTracingMiddleware(newTestServer(t, &out), nil)

	called := false
	next := func(c echo.Context) error {
		called = true
		return nil
	}

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	if err := tracing.NewRelicMiddleware()(tracing.EnhanceTracing()(next))(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Error("next handler was not called")
	}
}
