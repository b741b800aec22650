package app

import (
	"errors"
	"fmt"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// ViewPath is the view document to inspect.
	ViewPath string

	// AttributePrefix overrides the reserved binding-attribute family used
	// by the preprocessor. Empty means the engine default.
	AttributePrefix string
	// Strict makes binding type mismatches fatal during loads.
	Strict bool
	// Dump writes the full inspection report to the output writer instead
	// of a one-line summary log.
	Dump bool

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it ready for use.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ViewPath == "" {
		return nil, errors.New("ViewPath is a required configuration field and cannot be empty")
	}

	switch cfg.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("unsupported log level %q", cfg.LogLevel)
	}

	switch cfg.LogFormat {
	case "", "text", "json":
	default:
		return nil, fmt.Errorf("unsupported log format %q", cfg.LogFormat)
	}

	return &cfg, nil
}
