// Package database handles the connection to the SQLite store and the student repository
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/thenoetrevino/studentdb/internal/config"
	_ "modernc.org/sqlite"
)

const memoryPath = ":memory:"

// Provider opens the store once and hands out one scoped connection per operation.
type Provider struct {
	db   *sql.DB
	path string
}

// Open opens the SQLite store described by cfg, applies PRAGMAs and runs migrations.
// Every failure is reported as a *ConnectionError.
func Open(ctx context.Context, cfg config.Database) (*Provider, error) {
	dbPath, err := cfg.DatabasePath()
	if err != nil {
		return nil, &ConnectionError{Path: cfg.Path, Err: err}
	}

	if dbPath != memoryPath {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, &ConnectionError{Path: dbPath, Err: fmt.Errorf("failed to create directory: %w", err)}
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, &ConnectionError{Path: dbPath, Err: fmt.Errorf("failed to open database: %w", err)}
	}

	// SQLite benefits from a single writer connection; with ":memory:" it is
	// also the only way to keep every operation on the same database.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		fmt.Sprintf("PRAGMA busy_timeout = %d", cfg.BusyTimeout.Milliseconds()),
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			slog.Error("failed to apply pragma", "pragma", pragma, "error", err)
			closeDB(db)
			return nil, &ConnectionError{Path: dbPath, Err: err}
		}
	}

	if err := db.PingContext(ctx); err != nil {
		closeDB(db)
		return nil, &ConnectionError{Path: dbPath, Err: fmt.Errorf("database ping failed: %w", err)}
	}

	if err := runMigrations(ctx, db); err != nil {
		closeDB(db)
		return nil, &ConnectionError{Path: dbPath, Err: fmt.Errorf("failed to run migrations: %w", err)}
	}

	slog.Debug("database opened", "path", dbPath)
	return &Provider{db: db, path: dbPath}, nil
}

// Conn acquires a dedicated connection. The caller must Close it on every path.
func (p *Provider) Conn(ctx context.Context) (*sql.Conn, error) {
	conn, err := p.db.Conn(ctx)
	if err != nil {
		return nil, &ConnectionError{Path: p.path, Err: err}
	}
	return conn, nil
}

// DB returns the underlying handle.
func (p *Provider) DB() *sql.DB {
	return p.db
}

// Close releases the store.
func (p *Provider) Close() error {
	return p.db.Close()
}

func closeDB(db *sql.DB) {
	if err := db.Close(); err != nil {
		slog.Error("error closing db", "error", err)
	}
}
