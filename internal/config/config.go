// Package config reads wrapgen settings from the environment.
package config

import (
	"strings"

	"github.com/Station-Manager/errors"
	"github.com/caarlos0/env/v11"
)

const (
	EnvVarOutputDir   = "WRAPGEN_OUT"
	EnvVarFixImports  = "WRAPGEN_FIX_IMPORTS"
	EnvVarConcurrency = "WRAPGEN_CONCURRENCY"
	EnvVarLogLevel    = "WRAPGEN_LOG_LEVEL"
	EnvVarLogPath     = "WRAPGEN_LOG_PATH"

	DefaultLogLevel = "info"
)

// Config holds the environment defaults. Command-line flags take precedence.
type Config struct {
	OutputDir   string `env:"WRAPGEN_OUT" envDefault:"."`
	FixImports  bool   `env:"WRAPGEN_FIX_IMPORTS"`
	Concurrency int    `env:"WRAPGEN_CONCURRENCY" envDefault:"4"`
	LogLevel    string `env:"WRAPGEN_LOG_LEVEL" envDefault:"info"`
	LogPath     string `env:"WRAPGEN_LOG_PATH"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	const op errors.Op = "config.ParseEnv"
	if err := env.Parse(target); err != nil {
		return errors.New(op).Err(err)
	}
	return nil
}

// Load parses the environment into a Config and normalises it.
func Load() (Config, error) {
	const op errors.Op = "config.Load"
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, errors.New(op).Err(err)
	}
	if cfg.Concurrency < 1 {
		return Config{}, errors.New(op).Errorf("%s must be at least 1, got %d", EnvVarConcurrency, cfg.Concurrency)
	}
	cfg.LogPath = strings.TrimSpace(cfg.LogPath)
	cfg.LogLevel = logLevel(cfg.LogLevel)
	return cfg, nil
}

func logLevel(lvl string) string {
	lvl = strings.ToLower(strings.TrimSpace(lvl))
	switch lvl {
	case "trace", "debug", "info", "warn", "error", "off":
		return lvl
	default:
		return DefaultLogLevel
	}
}
