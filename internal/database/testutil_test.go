package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/thenoetrevino/studentdb/internal/config"
	"github.com/thenoetrevino/studentdb/internal/models"
	_ "modernc.org/sqlite"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory provider with the schema in place
func setupTestDB(t *testing.T) *Provider {
	t.Helper()
	provider, err := Open(context.Background(), config.Database{
		Path:        ":memory:",
		BusyTimeout: time.Second,
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = provider.Close() })
	return provider
}

// setupTestDBFile creates a file-based database for testing persistence across restarts
func setupTestDBFile(t *testing.T) (*Provider, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "students.db")
	provider, err := Open(context.Background(), config.Database{
		Path:        dbPath,
		BusyTimeout: time.Second,
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	return provider, dbPath
}

// closeAndReopenDB simulates app restart by closing and reopening the database
func closeAndReopenDB(t *testing.T, provider *Provider, dbPath string) *Provider {
	t.Helper()
	if err := provider.Close(); err != nil {
		t.Fatalf("Failed to close database: %v", err)
	}

	reopened, err := Open(context.Background(), config.Database{Path: dbPath, BusyTimeout: time.Second})
	if err != nil {
		t.Fatalf("Failed to reopen database: %v", err)
	}
	t.Cleanup(func() { _ = reopened.Close() })
	return reopened
}

// rawDB exposes the handle behind a provider for fault injection
func rawDB(provider *Provider) *sql.DB {
	return provider.DB()
}

// ============================================================================
// FIXTURES
// ============================================================================

func ada() models.Candidate {
	return models.Candidate{FirstName: "Ada", LastName: "Lovelace", Age: 28, Email: "ada@x.com"}
}

func grace() models.Candidate {
	return models.Candidate{FirstName: "Grace", LastName: "Hopper", Age: 37, Email: "grace@navy.mil"}
}

// mustCreate inserts a candidate and fails the test if the row was not written
func mustCreate(t *testing.T, repo *Repository, c models.Candidate) {
	t.Helper()
	ok, err := repo.Create(context.Background(), c)
	if err != nil {
		t.Fatalf("Failed to create student: %v", err)
	}
	if !ok {
		t.Fatal("Create reported no affected row")
	}
}
