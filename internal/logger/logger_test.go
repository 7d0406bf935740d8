package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/deppfellow/utilsvc/internal/config"
	"github.com/rs/zerolog"
)

func TestNewLogger_ProductionJSON(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Environment = "production"
	cfg.Logging.Level = "warn"

	var out bytes.Buffer
	logger := newLogger(cfg, nil, &out)

	logger.Info().Msg("dropped")
	logger.Warn().Msg("kept")

	var entry map[string]interface{}
	if err := json.Unmarshal(out.Bytes(), &entry); err != nil {
		t.Fatalf("expected a single JSON line, got %q: %v", out.String(), err)
	}
	if entry["message"] != "kept" || entry["service"] != config.ServiceName || entry["environment"] != "production" {
		t.Errorf("unexpected entry: %v", entry)
	}
}

func TestNewLogger_DevelopmentConsole(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Logging.Level = ""

	var out bytes.Buffer
	logger := newLogger(cfg, nil, &out)

	if logger.GetLevel() != zerolog.DebugLevel {
		t.Errorf("level = %v, want debug", logger.GetLevel())
	}

	logger.Debug().Msg("hello")
	if json.Valid(out.Bytes()) {
		t.Errorf("development output should be console formatted, got %q", out.String())
	}
	if !bytes.Contains(out.Bytes(), []byte("hello")) {
		t.Errorf("message missing from %q", out.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"info":    zerolog.InfoLevel,
		"warn":    zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"unknown": zerolog.InfoLevel,
	}

	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestLoggerService_Disabled(t *testing.T) {
	service := NewLoggerService(config.DefaultObservabilityConfig())
	if service.GetApplication() != nil {
		t.Error("expected no New Relic application without a license key")
	}
	service.Shutdown()

	var nilService *LoggerService
	if nilService.GetApplication() != nil {
		t.Error("nil service should report no application")
	}
}
