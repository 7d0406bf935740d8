package handler

import (
	"net/http"
	"time"

	"github.com/deppfellow/utilsvc/internal/middleware"
	"github.com/deppfellow/utilsvc/internal/model"
	"github.com/deppfellow/utilsvc/internal/server"
	"github.com/labstack/echo/v4"
)

// HealthHandler serves the greeting, the uptime probe and a status report.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// Root answers GET / with a fixed greeting.
func (h *HealthHandler) Root(c echo.Context, _ *model.NoParams) (model.MessageResponse, error) {
	return model.MessageResponse{Message: "Hello World"}, nil
}

// Log answers GET /log with a fixed "OK". Uptime checks poll it.
func (h *HealthHandler) Log(c echo.Context, _ *model.NoParams) (model.MessageResponse, error) {
	return model.MessageResponse{Message: "OK"}, nil
}

// CheckHealth returns a status report. The service has no dependencies to
// probe, so reaching this handler means it is healthy.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"uptime":      time.Since(h.server.StartedAt).Round(time.Second).String(),
	}

	logger.Debug().Msg("health check passed")

	return c.JSON(http.StatusOK, response)
}
