// Package config manages environment variables.
//
// It reads variables from the `.env` file and the process environment,
// loads them into structured Go types, and validates that required values
// are present so they can be reused across the application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad/missing config.
//   - Provide sane defaults for optional config blocks (observability, media, catalog).
package config

import (
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists it is loaded into the
	// process env before anything below reads it.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// EnvPrefix is the prefix every variable read by LoadConfig must carry.
//
// Nesting uses "." in the variable name, e.g. CATALOG_SERVER.PORT -> server.port.
const EnvPrefix = "CATALOG_"

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags say where koanf maps values from, the
// `validate:"..."` tags are enforced by go-playground/validator.
//
// Pointer blocks are optional. When absent, defaults are injected at load time.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Redis         RedisConfig          `koanf:"redis" validate:"required"`
	Media         *MediaConfig         `koanf:"media"`
	Catalog       *CatalogConfig       `koanf:"catalog"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
// Used to tag logs/traces and switch behavior based on env ("local" turns on SQL logging).
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
//
// Timeouts are whole seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`

	// RateLimit is the sustained number of requests per second allowed per client IP.
	// Zero disables the limiter.
	RateLimit float64 `koanf:"rate_limit" validate:"min=0"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password" validate:"required"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"required"`
}

// RedisConfig contains Redis connection details.
// Address is "host:port". Redis backs the background job queue.
type RedisConfig struct {
	Address string `koanf:"address" validate:"required"`
}

// CatalogConfig toggles observable behaviors of the product endpoints that
// external clients may depend on.
type CatalogConfig struct {
	// NullOnMissingProduct makes GET /products/:id answer 200 with a JSON null
	// body when no record matches, instead of 404.
	NullOnMissingProduct bool `koanf:"null_on_missing_product"`
}

// DefaultCatalogConfig keeps the historical null-body behavior.
func DefaultCatalogConfig() *CatalogConfig {
	return &CatalogConfig{NullOnMissingProduct: true}
}

// LoadConfig loads configuration from environment variables, unmarshals it into
// Config, validates it, applies defaults, and returns the resulting config.
//
// Behavior summary:
//   - Loads env vars with prefix CATALOG_
//   - Unmarshals into Config
//   - Validates required config blocks/fields
//   - Injects default media, catalog and observability blocks if missing
//   - Validates the optional blocks with their own rules
//
// Errors are fatal: a service with broken config must not start.
func LoadConfig() (*Config, error) {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	mainConfig, err := load()
	if err != nil {
		logger.Fatal().Err(err).Msg("could not load config")
	}

	return mainConfig, nil
}

// load does the actual work of LoadConfig, returning errors instead of exiting.
func load() (*Config, error) {
	k := koanf.New(".")

	// Only CATALOG_* variables are read; the prefix is stripped and the rest lowercased.
	provider := env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	})

	if err := k.Load(provider, nil); err != nil {
		return nil, errors.Wrap(err, "could not load initial env variables")
	}

	mainConfig := &Config{}
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, errors.Wrap(err, "could not unmarshal main config")
	}

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	if mainConfig.Media == nil {
		mainConfig.Media = DefaultMediaConfig()
	}
	if err := mainConfig.Media.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid media config")
	}

	if mainConfig.Catalog == nil {
		mainConfig.Catalog = DefaultCatalogConfig()
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	// Service name is fixed; environment always follows primary.env.
	mainConfig.Observability.ServiceName = "storefront-admin"
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid observability config")
	}

	return mainConfig, nil
}
