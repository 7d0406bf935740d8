package service

import (
	"bytes"
	"context"
	"html/template"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

var sleepPage = template.Must(template.New("sleep").Parse(`<!DOCTYPE html>
<html>
<head>
</head>
<body>
  <script>
    console.log("before");
    setTimeout(() => console.log("after"), {{.Millis}});
  </script>
</body>
</html>
`))

// PauseFunc blocks for d or until ctx is done, whichever comes first.
type PauseFunc func(ctx context.Context, d time.Duration) error

// DelayService implements /sleep. The pause only blocks the calling
// request's goroutine.
type DelayService struct {
	pause PauseFunc
}

func NewDelayService() *DelayService {
	return &DelayService{pause: Pause}
}

// NewDelayServiceWithPause replaces the pause, e.g. to avoid real sleeps in tests.
func NewDelayServiceWithPause(pause PauseFunc) *DelayService {
	return &DelayService{pause: pause}
}

// Sleep pauses for seconds (already clamped by the caller) and renders the
// page returned by /sleep. A cancelled ctx aborts the pause with an error.
func (s *DelayService) Sleep(ctx context.Context, seconds int) (string, error) {
	zerolog.Ctx(ctx).Debug().Int("seconds", seconds).Msg("pausing request")

	if err := s.pause(ctx, time.Duration(seconds)*time.Second); err != nil {
		return "", errors.Wrap(err, "sleep interrupted")
	}

	var body bytes.Buffer
	if err := sleepPage.Execute(&body, struct{ Millis int }{Millis: seconds * 1000}); err != nil {
		return "", errors.Wrap(err, "failed to render sleep page")
	}

	return body.String(), nil
}

// Pause is the default PauseFunc.
func Pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
