package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/thenoetrevino/studentdb/internal/models"
	"github.com/thenoetrevino/studentdb/internal/tui/state"
)

// View renders the current state of the application
// This implements the "View" part of the Model-View-Update pattern
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	if m.UiState.Mode() == state.HelpMode {
		view.Content = lipgloss.Place(
			m.UiState.Width(), m.UiState.Height(),
			lipgloss.Center, lipgloss.Center,
			m.renderHelp(),
		)
		return view
	}

	view.Content = lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle().Render("Student Database"),
		m.renderForm(),
		m.renderActionHints(),
		"",
		m.renderTable(),
		"",
		m.renderStatus(),
	)
	return view
}

// renderForm draws the four add fields followed by the search field
func (m Model) renderForm() string {
	rows := make([]string, 0, fieldCount+1)
	for i := range m.inputs {
		if i == fieldSearch {
			rows = append(rows, "")
		}
		focused := i == m.focused
		rows = append(rows, lipgloss.JoinHorizontal(
			lipgloss.Center,
			labelStyle(focused).Render(fieldLabels[i]),
			inputBoxStyle(focused).Render(m.inputs[i].View()),
		))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderActionHints() string {
	keys := m.Config.KeyMappings
	hints := []string{
		keys.AddStudent + " add",
		keys.ViewAll + " view all",
		keys.Search + " search",
		keys.ShowHelp + " help",
		keys.Quit + " quit",
	}
	return hintStyle().Render(strings.Join(hints, " • "))
}

func (m Model) renderTable() string {
	rows := make([][]string, 0, m.Table.Len())
	for _, s := range m.Table.Rows() {
		rows = append(rows, s.Row())
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tableBorderStyle()).
		Headers(models.StudentColumns...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle()
			}
			return tableCellStyle()
		})

	if m.Table.Len() == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, t.String(), hintStyle().Render("No students to show"))
	}
	return t.String()
}

func (m Model) renderStatus() string {
	text := m.Status.Message()
	if running := m.runningActions(); running != "" {
		text = fmt.Sprintf("%s  [%s]", text, running)
	}
	return statusStyle(m.Status.Level()).Width(m.UiState.Width()).Render(text)
}

// runningActions lists the actions with a task in flight
func (m Model) runningActions() string {
	var running []string
	for _, a := range []state.Action{state.ActionAdd, state.ActionViewAll, state.ActionSearch} {
		if m.Actions.IsRunning(a) {
			running = append(running, a.String())
		}
	}
	if len(running) == 0 {
		return ""
	}
	return "running: " + strings.Join(running, ", ")
}
