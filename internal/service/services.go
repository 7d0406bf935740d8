package service

import (
	"github.com/deppfellow/utilsvc/internal/server"
)

// Services groups the business layer so handlers receive one value.
type Services struct {
	Codec    *CodecService
	Delay    *DelayService
	Document *DocumentService
}

func NewServices(s *server.Server) (*Services, error) {
	document, err := NewDocumentService(s)
	if err != nil {
		return nil, err
	}

	return &Services{
		Codec:    NewCodecService(),
		Delay:    NewDelayService(),
		Document: document,
	}, nil
}
