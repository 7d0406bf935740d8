package model

const (
	// DefaultRedirectURL is used by /redirect when no url is given.
	DefaultRedirectURL = "https://www.google.com"

	// DefaultDocumentURL is fetched by /document/write when no url is given.
	DefaultDocumentURL = "http://localhost"

	// DefaultSleepSeconds and MaxSleepSeconds bound the /sleep delay.
	DefaultSleepSeconds = 10
	MaxSleepSeconds     = 10
)

// RedirectRequest is the query of /redirect. URL may be Base64 encoded.
type RedirectRequest struct {
	URL string `query:"url"`
}

func NewRedirectRequest() *RedirectRequest {
	return &RedirectRequest{URL: DefaultRedirectURL}
}

func (r *RedirectRequest) Validate() error { return nil }

// SleepRequest is the query of /sleep.
type SleepRequest struct {
	Sec int `query:"sec"`
}

func NewSleepRequest() *SleepRequest {
	return &SleepRequest{Sec: DefaultSleepSeconds}
}

func (r *SleepRequest) Validate() error { return nil }

// Seconds returns the requested delay clamped to [0, MaxSleepSeconds].
func (r *SleepRequest) Seconds() int {
	switch {
	case r.Sec > MaxSleepSeconds:
		return MaxSleepSeconds
	case r.Sec < 0:
		return 0
	default:
		return r.Sec
	}
}

// HTMLRequest is the query of /html. Content may be Base64 encoded.
// An empty content is valid; a missing one is not.
type HTMLRequest struct {
	Content string `query:"content"`
}

func NewHTMLRequest() *HTMLRequest { return &HTMLRequest{} }

func (r *HTMLRequest) Validate() error { return nil }

func (r *HTMLRequest) RequiredParams() []string { return []string{"content"} }

// EncodeRequest is the query of /encode.
type EncodeRequest struct {
	Data string `query:"data"`
}

func NewEncodeRequest() *EncodeRequest { return &EncodeRequest{} }

func (r *EncodeRequest) Validate() error { return nil }

func (r *EncodeRequest) RequiredParams() []string { return []string{"data"} }

// EncodeResponse is the body of a successful /encode.
type EncodeResponse struct {
	Original string `json:"original"`
	Encoded  string `json:"encoded"`
}

// DecodeRequest is the query of /decode.
type DecodeRequest struct {
	Data string `query:"data"`
}

func NewDecodeRequest() *DecodeRequest { return &DecodeRequest{} }

func (r *DecodeRequest) Validate() error { return nil }

func (r *DecodeRequest) RequiredParams() []string { return []string{"data"} }

// DecodeResponse is the body of a successful /decode.
type DecodeResponse struct {
	OriginalB64 string `json:"original_b64"`
	Decoded     string `json:"decoded"`
}

// DocumentWriteRequest is the query of /document/write.
type DocumentWriteRequest struct {
	URL string `query:"url" validate:"required,http_url"`
}

func NewDocumentWriteRequest() *DocumentWriteRequest {
	return &DocumentWriteRequest{URL: DefaultDocumentURL}
}

func (r *DocumentWriteRequest) Validate() error {
	return validate.Struct(r)
}
