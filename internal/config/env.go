// Package config provides application configuration.
package config

import (
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is prepended to every variable name, e.g. RANGEMAP_WORKERS.
const EnvPrefix = "RANGEMAP"

// EnvConfig holds all environment-based configuration.
// Field names map to environment variables with the RANGEMAP_ prefix.
type EnvConfig struct {
	// Workers is the number of goroutines used by aggregate queries.
	// Env: WORKERS (default: 1, 0 means one per CPU)
	Workers int `envconfig:"WORKERS" default:"1"`

	// Coalesce merges adjacent output intervals between stages.
	// Env: COALESCE (default: false)
	Coalesce bool `envconfig:"COALESCE" default:"false"`

	// LogLevel is the log verbosity level.
	// Env: LOG_LEVEL (default: INFO)
	LogLevel string `envconfig:"LOG_LEVEL" default:"INFO"`

	// LogFormat is the log output format (console or json).
	// Env: LOG_FORMAT (default: console)
	LogFormat string `envconfig:"LOG_FORMAT" default:"console"`

	// Format is the definition input format (auto, almanac or yaml).
	// Env: FORMAT (default: auto)
	Format string `envconfig:"FORMAT" default:"auto"`
}

// LoadFromEnv loads configuration from RANGEMAP_* environment variables.
func LoadFromEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}
