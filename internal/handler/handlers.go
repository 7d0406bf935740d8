package handler

import (
	"github.com/deppfellow/utilsvc/internal/server"
	"github.com/deppfellow/utilsvc/internal/service"
)

// Handlers is a container that groups all HTTP handlers so router setup
// receives one value.
type Handlers struct {
	Health   *HealthHandler   // /, /log and /status
	Redirect *RedirectHandler // /redirect
	Sleep    *SleepHandler    // /sleep
	Content  *ContentHandler  // /html, /encode, /decode
	Document *DocumentHandler // /document/write
	OpenAPI  *OpenAPIHandler  // /docs
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:   NewHealthHandler(s),
		Redirect: NewRedirectHandler(s, services.Codec),
		Sleep:    NewSleepHandler(s, services.Delay),
		Content:  NewContentHandler(s, services.Codec),
		Document: NewDocumentHandler(s, services.Document),
		OpenAPI:  NewOpenAPIHandler(s),
	}
}
