// Package testutil provides shared fixtures for package tests.
package testutil

import (
	"bytes"
	"context"
	"io"
	"os"
	"testing"
	"time"

	"github.com/thenoetrevino/studentdb/internal/config"
	"github.com/thenoetrevino/studentdb/internal/database"
	"github.com/thenoetrevino/studentdb/internal/models"
	_ "modernc.org/sqlite"
)

// CaptureOutput captures stdout during function execution
func CaptureOutput(t *testing.T, fn func()) string {
	t.Helper()

	// Save original stdout
	oldStdout := os.Stdout

	// Create pipe to capture output
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}

	// Replace stdout with pipe writer
	os.Stdout = w

	// Channel to collect output
	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	// Execute function
	fn()

	// Close writer and restore stdout
	_ = w.Close()
	os.Stdout = oldStdout

	// Get captured output
	return <-outC
}

// SetupTestDB opens an in-memory store with the full schema.
// The provider is closed when the test ends.
func SetupTestDB(t *testing.T) *database.Provider {
	t.Helper()
	provider, err := database.Open(context.Background(), config.Database{
		Path:        ":memory:",
		BusyTimeout: time.Second,
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		_ = provider.Close()
	})
	return provider
}

// CreateTestStudent inserts a student directly and returns its ID
func CreateTestStudent(t *testing.T, provider *database.Provider, c models.Candidate) int {
	t.Helper()
	result, err := provider.DB().ExecContext(context.Background(),
		`INSERT INTO students (first_name, last_name, age, email) VALUES (?, ?, ?, ?)`,
		c.FirstName, c.LastName, c.Age, c.Email)
	if err != nil {
		t.Fatalf("Failed to create test student: %v", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to read student ID: %v", err)
	}
	return int(id)
}

// Ada is the reference student used across tests
func Ada() models.Candidate {
	return models.Candidate{FirstName: "Ada", LastName: "Lovelace", Age: 28, Email: "ada@x.com"}
}

// Grace is a second distinct student
func Grace() models.Candidate {
	return models.Candidate{FirstName: "Grace", LastName: "Hopper", Age: 37, Email: "grace@navy.mil"}
}
