package handler

import (
	"github.com/deppfellow/utilsvc/internal/model"
	"github.com/deppfellow/utilsvc/internal/server"
	"github.com/deppfellow/utilsvc/internal/service"
	"github.com/labstack/echo/v4"
)

// ContentHandler serves the Base64 endpoints and HTML rendering.
type ContentHandler struct {
	Handler
	codec *service.CodecService
}

func NewContentHandler(s *server.Server, codec *service.CodecService) *ContentHandler {
	return &ContentHandler{
		Handler: NewHandler(s),
		codec:   codec,
	}
}

// HTML renders content, decoding it first when it is Base64.
func (h *ContentHandler) HTML(c echo.Context, req *model.HTMLRequest) (string, error) {
	return h.codec.Resolve(req.Content), nil
}

func (h *ContentHandler) Encode(c echo.Context, req *model.EncodeRequest) (model.EncodeResponse, error) {
	return h.codec.Encode(req.Data), nil
}

// Decode fails with 400 "Invalid Base64 data" for malformed input.
func (h *ContentHandler) Decode(c echo.Context, req *model.DecodeRequest) (model.DecodeResponse, error) {
	return h.codec.Decode(req.Data)
}
