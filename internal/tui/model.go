// Package tui implements the interactive student form.
// Store calls run as Bubble Tea commands off the update loop; their results
// come back as messages and are applied in Update.
package tui

import (
	"context"
	"log/slog"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/studentdb/internal/app"
	"github.com/thenoetrevino/studentdb/internal/config"
	"github.com/thenoetrevino/studentdb/internal/metrics"
	studentservice "github.com/thenoetrevino/studentdb/internal/services/student"
	"github.com/thenoetrevino/studentdb/internal/tui/state"
	"github.com/thenoetrevino/studentdb/internal/tui/theme"
)

// Model represents the application state for the TUI
type Model struct {
	// ctx is the program's root context; every background task derives from it
	ctx     context.Context
	service studentservice.Service
	tasks   *metrics.Tasks
	logger  *slog.Logger
	Config  *config.Config

	inputs  []textinput.Model
	focused int

	Actions *state.ActionsState
	Table   *state.TableState
	Status  *state.StatusState
	UiState *state.UIState
}

// New creates the TUI model. The table starts empty until the first view or search.
func New(ctx context.Context, application *app.App, cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	theme.Init(cfg.ColorScheme)

	m := Model{
		ctx:     ctx,
		service: application.StudentService,
		tasks:   application.Tasks,
		logger:  application.Logger,
		Config:  cfg,
		inputs:  newInputs(),
		Actions: state.NewActionsState(),
		Table:   state.NewTableState(),
		Status:  state.NewStatusState(),
		UiState: state.NewUIState(),
	}
	m.focusField(fieldFirstName)
	return m
}

// Init initializes the Bubble Tea application
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return nil
}
