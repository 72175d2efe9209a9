package app

import (
	"log/slog"

	"github.com/thenoetrevino/astrolab/internal/dispatch"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	recorder dispatch.Recorder
	logger   *slog.Logger
}

// WithRecorder reports every dispatched command to r
func WithRecorder(r dispatch.Recorder) Option {
	return func(cfg *appConfig) {
		cfg.recorder = r
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}
