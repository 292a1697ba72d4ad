package database

import (
	"context"
	"database/sql"
	"log/slog"
)

// ConnProvider hands out scoped connections to the store.
type ConnProvider interface {
	Conn(ctx context.Context) (*sql.Conn, error)
}

// withConn acquires a connection, runs fn and releases the connection on every path.
// Any failure comes back as a *StorageError tagged with op.
func withConn(ctx context.Context, provider ConnProvider, op string, fn func(*sql.Conn) error) error {
	conn, err := provider.Conn(ctx)
	if err != nil {
		return &StorageError{Op: op, Err: err}
	}
	defer func() {
		if err := conn.Close(); err != nil {
			slog.Error("failed to release connection", "op", op, "error", err)
		}
	}()

	if err := fn(conn); err != nil {
		return &StorageError{Op: op, Err: err}
	}
	return nil
}
