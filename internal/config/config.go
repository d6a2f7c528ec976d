package config

import (
	"fmt"
	"strings"

	"range-remapper/internal/definition"
)

// Default configuration values.
const (
	DefaultWorkers   = 1
	DefaultLogLevel  = "INFO"
	DefaultLogFormat = LogFormatConsole
)

// LogFormat represents the log output format.
type LogFormat string

// LogFormat values.
const (
	LogFormatConsole LogFormat = "console"
	LogFormatJSON    LogFormat = "json"
)

// Config is the validated application configuration.
type Config struct {
	Workers   int
	Coalesce  bool
	LogLevel  string
	LogFormat LogFormat
	Format    definition.Format
}

// NewConfig returns a Config holding the defaults.
func NewConfig() Config {
	return Config{
		Workers:   DefaultWorkers,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
		Format:    definition.FormatAuto,
	}
}

// ParseLogFormat accepts "console" (or its alias "pretty") and "json".
func ParseLogFormat(s string) (LogFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "console", "pretty":
		return LogFormatConsole, nil
	case "json":
		return LogFormatJSON, nil
	default:
		return "", fmt.Errorf("unknown log format %q", s)
	}
}

// ToConfig validates the raw environment values.
func (e EnvConfig) ToConfig() (Config, error) {
	cfg := NewConfig()

	if e.Workers < 0 {
		return Config{}, fmt.Errorf("workers must not be negative, got %d", e.Workers)
	}
	cfg.Workers = e.Workers
	cfg.Coalesce = e.Coalesce

	if e.LogLevel != "" {
		cfg.LogLevel = strings.ToUpper(e.LogLevel)
	}

	logFormat, err := ParseLogFormat(e.LogFormat)
	if err != nil {
		return Config{}, err
	}
	cfg.LogFormat = logFormat

	format, err := definition.ParseFormat(strings.ToLower(e.Format))
	if err != nil {
		return Config{}, err
	}
	cfg.Format = format

	return cfg, nil
}
