package service

import (
	"github.com/deppfellow/utilsvc/internal/errs"
	"github.com/deppfellow/utilsvc/internal/lib/b64"
	"github.com/deppfellow/utilsvc/internal/model"
)

// InvalidBase64Message is the fixed detail returned for malformed /decode input.
const InvalidBase64Message = "Invalid Base64 data"

// CodecService implements the Base64 endpoints and the literal-or-encoded
// resolution used by /redirect and /html.
type CodecService struct{}

func NewCodecService() *CodecService {
	return &CodecService{}
}

func (s *CodecService) Encode(data string) model.EncodeResponse {
	return model.EncodeResponse{
		Original: data,
		Encoded:  b64.Encode(data),
	}
}

// Decode returns a 400 *errs.HTTPError when data is not valid Base64.
func (s *CodecService) Decode(data string) (model.DecodeResponse, error) {
	decoded, err := b64.Decode(data)
	if err != nil {
		return model.DecodeResponse{}, errs.NewBadRequestError(InvalidBase64Message, false)
	}

	return model.DecodeResponse{
		OriginalB64: data,
		Decoded:     decoded,
	}, nil
}

// Resolve decodes value when it is Base64 and returns it verbatim otherwise.
func (s *CodecService) Resolve(value string) string {
	return b64.Resolve(value)
}
