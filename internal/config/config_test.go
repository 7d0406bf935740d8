package config

import (
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Primary.Env != "development" {
		t.Errorf("env = %q, want development", cfg.Primary.Env)
	}
	if cfg.Server.Port != "8000" {
		t.Errorf("port = %q, want 8000", cfg.Server.Port)
	}
	if cfg.Fetch.Timeout != 10*time.Second {
		t.Errorf("fetch timeout = %v, want 10s", cfg.Fetch.Timeout)
	}
	if cfg.Observability.ServiceName != ServiceName {
		t.Errorf("service name = %q, want %q", cfg.Observability.ServiceName, ServiceName)
	}
	if cfg.Observability.Environment != cfg.Primary.Env {
		t.Errorf("observability environment = %q, want %q", cfg.Observability.Environment, cfg.Primary.Env)
	}
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("UTILSVC_PRIMARY__ENV", "production")
	t.Setenv("UTILSVC_SERVER__PORT", "9090")
	t.Setenv("UTILSVC_SERVER__WRITE_TIMEOUT", "45")
	t.Setenv("UTILSVC_SERVER__CORS_ALLOWED_ORIGINS", "https://example.com")
	t.Setenv("UTILSVC_FETCH__TIMEOUT", "250ms")
	t.Setenv("UTILSVC_FETCH__MAX_BODY_BYTES", "1024")
	t.Setenv("UTILSVC_OBSERVABILITY__LOGGING__LEVEL", "warn")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Primary.Env != "production" || !cfg.Observability.IsProduction() {
		t.Errorf("env not applied: %q / %q", cfg.Primary.Env, cfg.Observability.Environment)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("port = %q, want 9090", cfg.Server.Port)
	}
	if cfg.Server.WriteTimeout != 45 {
		t.Errorf("write timeout = %d, want 45", cfg.Server.WriteTimeout)
	}
	if cfg.Server.ReadTimeout != 10 {
		t.Errorf("read timeout = %d, want default 10", cfg.Server.ReadTimeout)
	}
	if len(cfg.Server.CORSAllowedOrigins) != 1 || cfg.Server.CORSAllowedOrigins[0] != "https://example.com" {
		t.Errorf("cors origins = %v", cfg.Server.CORSAllowedOrigins)
	}
	if cfg.Fetch.Timeout != 250*time.Millisecond {
		t.Errorf("fetch timeout = %v, want 250ms", cfg.Fetch.Timeout)
	}
	if cfg.Fetch.MaxBodyBytes != 1024 {
		t.Errorf("max body bytes = %d, want 1024", cfg.Fetch.MaxBodyBytes)
	}
	if cfg.Observability.GetLogLevel() != "warn" {
		t.Errorf("log level = %q, want warn", cfg.Observability.GetLogLevel())
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown log level", "UTILSVC_OBSERVABILITY__LOGGING__LEVEL", "verbose"},
		{"unknown log format", "UTILSVC_OBSERVABILITY__LOGGING__FORMAT", "xml"},
		{"zero max body", "UTILSVC_FETCH__MAX_BODY_BYTES", "0"},
		{"empty port", "UTILSVC_SERVER__PORT", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			if _, err := LoadConfig(); err == nil {
				t.Errorf("expected error for %s=%q", tt.key, tt.value)
			}
		})
	}
}

func TestEnvKey(t *testing.T) {
	tests := map[string]string{
		"UTILSVC_SERVER__PORT":                          "server.port",
		"UTILSVC_SERVER__READ_TIMEOUT":                  "server.read_timeout",
		"UTILSVC_OBSERVABILITY__NEW_RELIC__LICENSE_KEY": "observability.new_relic.license_key",
	}

	for in, want := range tests {
		if got := envKey(in); got != want {
			t.Errorf("envKey(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestObservabilityConfig_GetLogLevel(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	cfg.Logging.Level = ""

	cfg.Environment = "production"
	if got := cfg.GetLogLevel(); got != "info" {
		t.Errorf("production default = %q, want info", got)
	}

	cfg.Environment = "development"
	if got := cfg.GetLogLevel(); got != "debug" {
		t.Errorf("development default = %q, want debug", got)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("empty level should validate: %v", err)
	}
}
