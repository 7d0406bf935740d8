package handler

import (
	"github.com/deppfellow/utilsvc/internal/model"
	"github.com/deppfellow/utilsvc/internal/server"
	"github.com/deppfellow/utilsvc/internal/service"
	"github.com/labstack/echo/v4"
)

type SleepHandler struct {
	Handler
	delay *service.DelayService
}

func NewSleepHandler(s *server.Server, delay *service.DelayService) *SleepHandler {
	return &SleepHandler{
		Handler: NewHandler(s),
		delay:   delay,
	}
}

// Sleep holds the request for the clamped number of seconds. A client
// disconnect cancels the request context and ends the pause early.
func (h *SleepHandler) Sleep(c echo.Context, req *model.SleepRequest) (string, error) {
	return h.delay.Sleep(c.Request().Context(), req.Seconds())
}
