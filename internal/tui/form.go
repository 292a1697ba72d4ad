package tui

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	studentservice "github.com/thenoetrevino/studentdb/internal/services/student"
)

// Form fields in focus order
const (
	fieldFirstName = iota
	fieldLastName
	fieldAge
	fieldEmail
	fieldSearch
	fieldCount
)

const inputCharLimit = 128

var fieldLabels = [fieldCount]string{
	"First Name",
	"Last Name",
	"Age",
	"Email",
	"Search ID",
}

var fieldPlaceholders = [fieldCount]string{
	"Ada",
	"Lovelace",
	"28",
	"ada@example.com",
	"student ID",
}

func newInputs() []textinput.Model {
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		ti := textinput.New()
		ti.Placeholder = fieldPlaceholders[i]
		ti.Prompt = ""
		ti.CharLimit = inputCharLimit
		inputs[i] = ti
	}
	return inputs
}

// focusField moves focus to the given field, blurring every other input
func (m *Model) focusField(field int) tea.Cmd {
	m.focused = field
	var cmd tea.Cmd
	for i := range m.inputs {
		if i == field {
			cmd = m.inputs[i].Focus()
			continue
		}
		m.inputs[i].Blur()
	}
	return cmd
}

func (m *Model) nextField() tea.Cmd {
	return m.focusField((m.focused + 1) % fieldCount)
}

func (m *Model) prevField() tea.Cmd {
	return m.focusField((m.focused + fieldCount - 1) % fieldCount)
}

// formInput reads the four add fields as typed
func (m Model) formInput() studentservice.FormInput {
	return studentservice.FormInput{
		FirstName: m.inputs[fieldFirstName].Value(),
		LastName:  m.inputs[fieldLastName].Value(),
		Age:       m.inputs[fieldAge].Value(),
		Email:     m.inputs[fieldEmail].Value(),
	}
}

func (m Model) searchInput() string {
	return m.inputs[fieldSearch].Value()
}

// clearInputs empties every field, the search field included
func (m *Model) clearInputs() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
}

// updateFocusedInput forwards a message to the focused text input
func (m Model) updateFocusedInput(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}
