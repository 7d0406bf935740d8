package router

import (
	"net/http"

	"github.com/deppfellow/utilsvc/internal/handler"
	"github.com/deppfellow/utilsvc/internal/model"
	"github.com/deppfellow/utilsvc/static"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers the greeting, probes and documentation.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/", handler.Handle(h.Health.Handler, h.Health.Root, http.StatusOK, model.NewNoParams))

	// Polled by uptime checks.
	r.GET("/log", handler.Handle(h.Health.Handler, h.Health.Log, http.StatusOK, model.NewNoParams))

	r.GET("/status", h.Health.CheckHealth)

	r.StaticFS("/static", static.FS)

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
