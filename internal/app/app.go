package app

import (
	"log/slog"

	"github.com/thenoetrevino/studentdb/internal/database"
	"github.com/thenoetrevino/studentdb/internal/metrics"
	studentservice "github.com/thenoetrevino/studentdb/internal/services/student"
)

// App holds all application services and provides dependency injection.
type App struct {
	// Repository layer (direct database access)
	repo database.DataStore

	// Service layer (business logic)
	StudentService studentservice.Service

	// Background task counters shared by the interactive controller
	Tasks *metrics.Tasks

	Logger *slog.Logger
}

// New creates a new App with all services initialized.
func New(repo database.DataStore, opts ...Option) *App {
	cfg := &appConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	if cfg.tasks == nil {
		cfg.tasks = metrics.NewTasks()
	}

	return &App{
		repo:           repo,
		StudentService: studentservice.NewService(repo, cfg.logger),
		Tasks:          cfg.tasks,
		Logger:         cfg.logger,
	}
}

// Repo returns the underlying repository for direct database access.
func (a *App) Repo() database.DataStore {
	return a.repo
}
