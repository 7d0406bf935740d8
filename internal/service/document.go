package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"net/http"

	"github.com/deppfellow/utilsvc/internal/errs"
	"github.com/deppfellow/utilsvc/internal/server"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// FetchFailedMessage is the client-facing message for any upstream failure.
const FetchFailedMessage = "Failed to fetch remote content"

// errFetchFailed is never returned directly; callers hand out copies via WithMessage.
var errFetchFailed = errs.NewBadGatewayError(FetchFailedMessage, false)

var documentPage = template.Must(template.New("document").Parse(`<!DOCTYPE html>
<html>
<head>
</head>
<body>
  <script>
    document.write({{.Content}});
  </script>
</body>
</html>
`))

// DocumentService implements /document/write: fetch a URL server-side and
// return a page whose script writes the fetched body into the document.
type DocumentService struct {
	client       *http.Client
	maxBodyBytes int64
}

// NewDocumentService builds the outbound client from the fetch config.
//
// The transport is wrapped with New Relic's round tripper so each fetch is
// recorded as an external segment of the inbound transaction (a no-op
// when the agent is disabled).
func NewDocumentService(s *server.Server) (*DocumentService, error) {
	cfg := s.Config.Fetch
	if cfg.Timeout <= 0 {
		return nil, errors.New("fetch timeout must be positive")
	}
	if cfg.MaxBodyBytes <= 0 {
		return nil, errors.New("fetch max body bytes must be positive")
	}

	return &DocumentService{
		client: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: newrelic.NewRoundTripper(http.DefaultTransport),
		},
		maxBodyBytes: cfg.MaxBodyBytes,
	}, nil
}

// Write fetches url and renders the embedding page.
//
// Any failure to obtain a complete 2xx body is returned as a 502 *errs.HTTPError,
// except a cancelled ctx, which is returned as it is.
func (s *DocumentService) Write(ctx context.Context, url string) (string, error) {
	logger := zerolog.Ctx(ctx).With().Str("url", url).Logger()

	content, err := s.fetch(ctx, url)
	if err != nil {
		if errs.IsClientClosed(err) {
			return "", err
		}

		var httpErr *errs.HTTPError
		if errors.As(err, &httpErr) {
			logger.Warn().Int("status", httpErr.Status).Msg(httpErr.Message)
			return "", httpErr
		}

		logger.Warn().Err(err).Msg("remote fetch failed")
		return "", errFetchFailed.WithMessage(FetchFailedMessage)
	}

	logger.Debug().Int("bytes", len(content)).Msg("remote content fetched")

	return renderDocument(content)
}

func (s *DocumentService) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build upstream request")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "upstream request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errFetchFailed.WithMessage(
			fmt.Sprintf("%s: upstream responded with status %d", FetchFailedMessage, resp.StatusCode))
	}

	// Read one byte past the limit to tell "exactly at" from "over".
	body, err := io.ReadAll(io.LimitReader(resp.Body, s.maxBodyBytes+1))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read upstream body")
	}
	if int64(len(body)) > s.maxBodyBytes {
		return nil, errFetchFailed.WithMessage(
			fmt.Sprintf("%s: body exceeds %d bytes", FetchFailedMessage, s.maxBodyBytes))
	}

	return body, nil
}

// renderDocument embeds content as a JSON string literal. encoding/json
// escapes <, > and & so the payload cannot close the script element.
func renderDocument(content []byte) (string, error) {
	literal, err := json.Marshal(string(content))
	if err != nil {
		return "", errors.Wrap(err, "failed to encode remote content")
	}

	var body bytes.Buffer
	data := struct{ Content template.JS }{Content: template.JS(literal)}
	if err := documentPage.Execute(&body, data); err != nil {
		return "", errors.Wrap(err, "failed to render document page")
	}

	return body.String(), nil
}
