package tui

import (
	"context"
	"io"
	"log/slog"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/studentdb/internal/app"
	"github.com/thenoetrevino/studentdb/internal/config"
	"github.com/thenoetrevino/studentdb/internal/database"
	"github.com/thenoetrevino/studentdb/internal/models"
	studentservice "github.com/thenoetrevino/studentdb/internal/services/student"
	"github.com/thenoetrevino/studentdb/internal/testutil"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

// testConfig disables simulated latency so commands return immediately
func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Latency = config.Latency{}
	return cfg
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// setupTestModel builds a sized model over an in-memory store
func setupTestModel(t *testing.T) (Model, *database.Provider) {
	t.Helper()
	provider := testutil.SetupTestDB(t)
	application := app.New(database.NewRepository(provider), app.WithLogger(quietLogger()))
	m := New(context.Background(), application, testConfig())
	m.UiState.SetSize(120, 40)
	return m, provider
}

// setupModelWithService builds a model over a hand-written service
func setupModelWithService(t *testing.T, svc studentservice.Service) Model {
	t.Helper()
	provider := testutil.SetupTestDB(t)
	application := app.New(database.NewRepository(provider), app.WithLogger(quietLogger()))
	application.StudentService = svc
	m := New(context.Background(), application, testConfig())
	m.UiState.SetSize(120, 40)
	return m
}

// send runs one message through Update
func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	updated, ok := next.(Model)
	require.True(t, ok, "Update returned %T", next)
	return updated, cmd
}

// drain executes commands and feeds their messages back until none remain
func drain(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			return m
		}
		m, cmd = send(t, m, msg)
	}
	return m
}

func ctrlKey(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg(tea.Key{Code: r, Mod: tea.ModCtrl})
}

func keyPress(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg(tea.Key{Code: code})
}

func fillForm(m Model, first, last, age, email string) Model {
	m.inputs[fieldFirstName].SetValue(first)
	m.inputs[fieldLastName].SetValue(last)
	m.inputs[fieldAge].SetValue(age)
	m.inputs[fieldEmail].SetValue(email)
	return m
}

// stubService answers every call with fixed results and counts calls
type stubService struct {
	students  []models.Student
	student   models.Student
	found     bool
	addOK     bool
	err       error
	addCalls  int
	listCalls int
	findCalls int
}

func (s *stubService) ListAll(context.Context) ([]models.Student, error) {
	s.listCalls++
	if s.err != nil {
		return []models.Student{}, s.err
	}
	return s.students, nil
}

func (s *stubService) FindByID(context.Context, int) (models.Student, bool, error) {
	s.findCalls++
	return s.student, s.found, s.err
}

func (s *stubService) Count(context.Context) (int, error) {
	return len(s.students), s.err
}

func (s *stubService) Add(context.Context, studentservice.FormInput) (bool, error) {
	s.addCalls++
	return s.addOK, s.err
}
