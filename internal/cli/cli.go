// Package cli holds the shared plumbing for the scripting commands.
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/studentdb/internal/app"
	"github.com/thenoetrevino/studentdb/internal/config"
	"github.com/thenoetrevino/studentdb/internal/database"
)

type contextKey string

const (
	configKey     contextKey = "config"
	configPathKey contextKey = "configPath"
	appKey        contextKey = "app"
)

// CLI represents the CLI application context
type CLI struct {
	App      *app.App // Application container with services
	provider *database.Provider
	ctx      context.Context
}

// NewCLI opens the configured store and builds the application container
func NewCLI(ctx context.Context, cfg *config.Config) (*CLI, error) {
	provider, err := database.Open(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	application := app.New(database.NewRepository(provider), app.WithLogger(slog.Default()))

	return &CLI{
		App:      application,
		provider: provider,
		ctx:      ctx,
	}, nil
}

// GetCLIFromContext returns the CLI for a command.
// An App stored by WithApp is used as is; otherwise the store is opened from
// the config stored by WithConfig (or loaded from disk).
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
		return &CLI{App: a, ctx: ctx}, nil
	}

	cfg, err := ConfigFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return NewCLI(ctx, cfg)
}

// WithApp stores a ready App for subcommands. The caller owns its store.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// WithConfig stores the loaded config for subcommands
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// WithConfigPath stores the --config flag value for subcommands
func WithConfigPath(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, configPathKey, path)
}

// ConfigPath returns the config file subcommands read and write,
// honouring --config and STUDENTDB_CONFIG.
func ConfigPath(ctx context.Context) (string, error) {
	explicit, _ := ctx.Value(configPathKey).(string)
	return config.ResolvePath(explicit)
}

// ConfigFromContext returns the config stored by WithConfig, loading it from disk when absent
func ConfigFromContext(ctx context.Context) (*config.Config, error) {
	if cfg, ok := ctx.Value(configKey).(*config.Config); ok && cfg != nil {
		return cfg, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// Close releases the store opened by NewCLI. An App stored by WithApp is left open.
func (c *CLI) Close() error {
	if c.provider != nil {
		return c.provider.Close()
	}
	return nil
}
