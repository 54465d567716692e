// Package toolconfig loads the configuration of the batch commands (seed,
// districtupdate) from the environment. A .env file in the working
// directory is read first when present; real environment variables win.
package toolconfig

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Config is the environment of a batch run.
type Config struct {
	// SourcePath is the primary district source file.
	SourcePath string `env:"STRATATOUR_DISTRICT_SOURCE" envDefault:"./data/source/districts_source.json"`
	// ContentDir is the static content store directory written by the run.
	ContentDir string `env:"STRATATOUR_CONTENT_DIR" envDefault:"./data/content"`

	// MongoURI enables publishing to MongoDB as well. Empty skips it.
	MongoURI      string `env:"STRATATOUR_PUBLISH_MONGO_URI"`
	MongoDatabase string `env:"STRATATOUR_MONGO_DATABASE" envDefault:"stratatour"`

	// Env selects the logger: "dev" for console output, anything else JSON.
	Env string `env:"STRATATOUR_ENV" envDefault:"dev"`
}

// PublishEnabled reports whether the run also writes MongoDB.
func (c Config) PublishEnabled() bool {
	return c.MongoURI != ""
}

// Load reads .env (if present) and parses the environment into a Config.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("toolconfig: read .env: %w", err)
	}
	return Parse()
}

// Parse parses the current environment without touching .env.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("toolconfig: parse environment: %w", err)
	}
	return cfg, nil
}

// NewLogger builds the zap logger for cfg.Env.
func NewLogger(cfg Config) (*zap.Logger, error) {
	if cfg.Env == "dev" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
