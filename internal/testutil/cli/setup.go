package cli

import (
	"io"
	"log/slog"
	"testing"

	"github.com/thenoetrevino/studentdb/internal/app"
	"github.com/thenoetrevino/studentdb/internal/database"
	"github.com/thenoetrevino/studentdb/internal/models"
	"github.com/thenoetrevino/studentdb/internal/testutil"
)

// SetupCLITest creates an in-memory store and returns it with an App over it.
// Kept in its own package so service tests importing testutil avoid the app import.
func SetupCLITest(t *testing.T) (*database.Provider, *app.App) {
	t.Helper()
	provider := testutil.SetupTestDB(t)

	appInstance := app.New(
		database.NewRepository(provider),
		app.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)

	return provider, appInstance
}

// CreateTestStudent wraps testutil.CreateTestStudent for CLI tests
func CreateTestStudent(t *testing.T, provider *database.Provider, c models.Candidate) int {
	t.Helper()
	return testutil.CreateTestStudent(t, provider, c)
}
