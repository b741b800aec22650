package app

import (
	"io"
	"log/slog"

	"github.com/vk/hclview/internal/engine"
	"github.com/vk/hclview/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	engine *engine.Engine
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and engine. Reports
// go to outW, logs to logW.
func NewApp(outW, logW io.Writer, cfg *Config, reg *registry.Registry) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	eng := engine.New(reg, engine.Options{
		AttributePrefix: cfg.AttributePrefix,
		Strict:          cfg.Strict,
	})
	logger.Debug("Engine configured.", "prefix", cfg.AttributePrefix, "strict", cfg.Strict)

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		engine: eng,
	}
}

// Engine returns the application's view engine. This is primarily for
// testing.
func (a *App) Engine() *engine.Engine {
	return a.engine
}
