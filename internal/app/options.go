package app

import (
	"log/slog"

	"github.com/thenoetrevino/studentdb/internal/metrics"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	logger *slog.Logger
	tasks  *metrics.Tasks
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithTasks shares an existing set of task counters with the application
func WithTasks(tasks *metrics.Tasks) Option {
	return func(cfg *appConfig) {
		cfg.tasks = tasks
	}
}
