// Package config manages environment variables.
//
// It reads variables from the process environment (and a `.env` file,
// when present), loads them into structured Go types, applies defaults
// and validates the result so the rest of the application can rely on
// a complete configuration.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Provide sane defaults so the service runs with no env at all.
//   - Validate values so the app fails fast on bad config.
package config

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists, it gets loaded into
	// the process env before any variable is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

// EnvPrefix is the prefix every recognised environment variable carries.
//
// Nesting uses a double underscore:
//
//	UTILSVC_SERVER__PORT            -> server.port
//	UTILSVC_FETCH__TIMEOUT          -> fetch.timeout
//	UTILSVC_OBSERVABILITY__LOGGING__LEVEL -> observability.logging.level
const EnvPrefix = "UTILSVC_"

// ServiceName identifies this service in logs and traces.
const ServiceName = "utilsvc"

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags tell koanf where values come from and the
// `validate:"..."` tags are enforced by go-playground/validator.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Fetch         FetchConfig          `koanf:"fetch" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are whole seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required,min=1"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required,min=1"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required,min=1"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
}

// FetchConfig bounds the outbound request made by the document write endpoint.
type FetchConfig struct {
	// Timeout caps the whole round trip, body included.
	Timeout time.Duration `koanf:"timeout" validate:"min=1ms"`

	// MaxBodyBytes is the largest upstream body that will be embedded.
	MaxBodyBytes int64 `koanf:"max_body_bytes" validate:"min=1"`
}

// Default returns a configuration populated with the built-in defaults.
//
// LoadConfig starts from this value, so anything not set in the
// environment keeps its default.
func Default() *Config {
	return &Config{
		Primary: Primary{
			Env: "development",
		},
		Server: ServerConfig{
			Port:               "8000",
			ReadTimeout:        10,
			WriteTimeout:       30,
			IdleTimeout:        60,
			CORSAllowedOrigins: []string{"*"},
		},
		Fetch: FetchConfig{
			Timeout:      10 * time.Second,
			MaxBodyBytes: 5 << 20,
		},
		Observability: DefaultObservabilityConfig(),
	}
}

// LoadConfig loads configuration from environment variables, unmarshals it
// on top of the defaults, validates it and returns the resulting config.
func LoadConfig() (*Config, error) {
	return load(env.Provider(EnvPrefix, ".", envKey))
}

// envKey converts a raw env var name into a koanf key path.
//
//	UTILSVC_SERVER__READ_TIMEOUT -> server.read_timeout
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

func load(provider koanf.Provider) (*Config, error) {
	// The "." is the key-path delimiter koanf uses to represent nesting.
	k := koanf.New(".")

	if err := k.Load(provider, nil); err != nil {
		return nil, errors.Wrap(err, "could not load env variables")
	}

	mainConfig := Default()

	// Unmarshal only overwrites keys that are present, so the defaults
	// above survive for everything the environment does not mention.
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, errors.Wrap(err, "could not unmarshal main config")
	}

	validate := validator.New()

	if err := validate.Struct(mainConfig); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	// Service name is fixed and the environment always follows primary.env
	// so logs and traces are labelled consistently.
	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid observability config")
	}

	return mainConfig, nil
}
