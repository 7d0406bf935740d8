package handler

import (
	"github.com/deppfellow/utilsvc/internal/model"
	"github.com/deppfellow/utilsvc/internal/server"
	"github.com/deppfellow/utilsvc/internal/service"
	"github.com/labstack/echo/v4"
)

type DocumentHandler struct {
	Handler
	document *service.DocumentService
}

func NewDocumentHandler(s *server.Server, document *service.DocumentService) *DocumentHandler {
	return &DocumentHandler{
		Handler:  NewHandler(s),
		document: document,
	}
}

// Write fetches req.URL and returns a page that writes the fetched body
// from a script. Upstream failures surface as 502.
func (h *DocumentHandler) Write(c echo.Context, req *model.DocumentWriteRequest) (string, error) {
	return h.document.Write(c.Request().Context(), req.URL)
}
