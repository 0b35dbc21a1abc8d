// Package config loads the sample CLI's settings from the environment.
// Command-line flags override what is loaded here.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// Config holds the sample CLI settings.
type Config struct {
	LogLevel string        `env:"OUTCOME_LOG_LEVEL" envDefault:"info"`
	LogJSON  bool          `env:"OUTCOME_LOG_JSON" envDefault:"false"`
	User     string        `env:"OUTCOME_USER" envDefault:"outcome-sample"`
	Origin   string        `env:"OUTCOME_ORIGIN" envDefault:"outcome-sample"`
	Language string        `env:"OUTCOME_LANGUAGE" envDefault:"en-US"`
	Timeout  time.Duration `env:"OUTCOME_TIMEOUT" envDefault:"5s"`
	Workers  int           `env:"OUTCOME_WORKERS" envDefault:"4"`
	Trace    bool          `env:"OUTCOME_TRACE" envDefault:"false"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Level returns the configured log level, falling back to info for unknown
// names.
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(c.LogLevel)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
