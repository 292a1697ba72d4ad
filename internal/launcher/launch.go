// Package launcher wires the store, services and TUI together and runs the program.
package launcher

import (
	"context"
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/studentdb/internal/app"
	"github.com/thenoetrevino/studentdb/internal/config"
	"github.com/thenoetrevino/studentdb/internal/database"
	"github.com/thenoetrevino/studentdb/internal/tui"
)

// Launch starts the TUI application. Cancelling ctx stops the program and
// every background task it dispatched.
func Launch(ctx context.Context, cfg *config.Config) error {
	provider, err := database.Open(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := provider.Close(); err != nil {
			slog.Error("error closing database", "error", err)
		}
	}()

	// Tasks still running when the program exits are cancelled with this context
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	application := app.New(database.NewRepository(provider), app.WithLogger(slog.Default()))

	model := tui.New(runCtx, application, cfg)
	p := tea.NewProgram(model, tea.WithContext(runCtx))

	slog.Info("starting studentdb", "database", cfg.Database.Path)
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("error running program: %w", err)
	}

	snap := application.Tasks.GetSnapshot()
	slog.Info("studentdb stopped",
		"dispatched", snap.Dispatched,
		"completed", snap.Completed,
		"failed", snap.Failed,
		"ignored", snap.Ignored,
		"stale", snap.Stale,
		"uptime", snap.Uptime,
	)
	return nil
}
