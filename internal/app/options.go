package app

import (
	"log/slog"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	logger *slog.Logger
}

// WithLogger sets the logger for the application services
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}
