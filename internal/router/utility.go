package router

import (
	"net/http"

	"github.com/deppfellow/utilsvc/internal/handler"
	"github.com/deppfellow/utilsvc/internal/model"
	"github.com/labstack/echo/v4"
)

// registerUtilityRoutes registers the stateless utility endpoints.
func registerUtilityRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/redirect", handler.HandleRedirect(h.Redirect.Handler, h.Redirect.Redirect, http.StatusTemporaryRedirect, model.NewRedirectRequest))

	r.GET("/sleep", handler.HandleHTML(h.Sleep.Handler, h.Sleep.Sleep, http.StatusOK, model.NewSleepRequest))

	r.GET("/html", handler.HandleHTML(h.Content.Handler, h.Content.HTML, http.StatusOK, model.NewHTMLRequest))
	r.GET("/encode", handler.Handle(h.Content.Handler, h.Content.Encode, http.StatusOK, model.NewEncodeRequest))
	r.GET("/decode", handler.Handle(h.Content.Handler, h.Content.Decode, http.StatusOK, model.NewDecodeRequest))

	r.GET("/document/write", handler.HandleHTML(h.Document.Handler, h.Document.Write, http.StatusOK, model.NewDocumentWriteRequest))
}
