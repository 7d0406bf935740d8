package handler

import (
	"github.com/deppfellow/utilsvc/internal/model"
	"github.com/deppfellow/utilsvc/internal/server"
	"github.com/deppfellow/utilsvc/internal/service"
	"github.com/labstack/echo/v4"
)

type RedirectHandler struct {
	Handler
	codec *service.CodecService
}

func NewRedirectHandler(s *server.Server, codec *service.CodecService) *RedirectHandler {
	return &RedirectHandler{
		Handler: NewHandler(s),
		codec:   codec,
	}
}

// Redirect resolves the target: a Base64 url is decoded, anything else is
// used verbatim.
func (h *RedirectHandler) Redirect(c echo.Context, req *model.RedirectRequest) (string, error) {
	return h.codec.Resolve(req.URL), nil
}
