package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/studentdb/internal/tui/state"
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UiState.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)

	case studentAddedMsg:
		return m.handleStudentAdded(msg)

	case studentsLoadedMsg:
		return m.handleStudentsLoaded(msg)

	case studentFoundMsg:
		return m.handleStudentFound(msg)
	}

	return m.updateFocusedInput(msg)
}

// ============================================================================
// KEY HANDLERS
// ============================================================================

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	keys := m.Config.KeyMappings
	key := msg.String()

	if key == keys.Quit {
		return m, tea.Quit
	}

	if m.UiState.Mode() == state.HelpMode {
		return m.handleHelpMode(key)
	}

	switch key {
	case keys.ShowHelp:
		m.UiState.SetMode(state.HelpMode)
		return m, nil
	case keys.AddStudent:
		return m.triggerAdd()
	case keys.ViewAll:
		return m.triggerViewAll(true)
	case keys.Search:
		return m.triggerSearch()
	case keys.NextField:
		cmd := m.nextField()
		return m, cmd
	case keys.PrevField:
		cmd := m.prevField()
		return m, cmd
	case keys.Submit:
		return m.handleSubmit()
	}

	return m.updateFocusedInput(msg)
}

// handleHelpMode handles input in the help screen.
func (m Model) handleHelpMode(key string) (tea.Model, tea.Cmd) {
	switch key {
	case m.Config.KeyMappings.ShowHelp, m.Config.KeyMappings.Submit, "esc", "q":
		m.UiState.SetMode(state.FormMode)
	}
	return m, nil
}

// handleSubmit searches from the search field, adds from the email field
// and otherwise advances to the next field.
func (m Model) handleSubmit() (tea.Model, tea.Cmd) {
	switch m.focused {
	case fieldSearch:
		return m.triggerSearch()
	case fieldEmail:
		return m.triggerAdd()
	default:
		cmd := m.nextField()
		return m, cmd
	}
}
