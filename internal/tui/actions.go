package tui

import (
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/studentdb/internal/models"
	studentservice "github.com/thenoetrevino/studentdb/internal/services/student"
	"github.com/thenoetrevino/studentdb/internal/tui/state"
)

// Status line messages
const (
	statusAdding       = "Adding student..."
	statusAdded        = "Student added successfully!"
	statusAddFailed    = "Failed to add student!"
	statusLoading      = "Loading students..."
	statusFound        = "Student found!"
	statusEmptySearch  = "Please enter ID to search!"
	statusIDNotNumber  = "Error: ID must be a number!"
	statusLoadedFormat = "Loaded %d student(s)"
)

// ignore drops a trigger for an action that already has a task in flight
func (m Model) ignore(action state.Action) (tea.Model, tea.Cmd) {
	m.tasks.IncIgnored()
	m.logger.Debug("trigger ignored, action already running", "action", action.String())
	return m, nil
}

// ============================================================================
// ADD
// ============================================================================

func (m Model) triggerAdd() (tea.Model, tea.Cmd) {
	if m.Actions.IsRunning(state.ActionAdd) {
		return m.ignore(state.ActionAdd)
	}

	in := m.formInput()
	if _, err := studentservice.ParseCandidate(in); err != nil {
		m.Actions.Fail(state.ActionAdd)
		m.Status.Error(validationStatus(err))
		return m, nil
	}

	m.Actions.Start(state.ActionAdd)
	m.Status.Info(statusAdding)
	m.tasks.IncDispatched()
	return m, m.addStudentCmd(in)
}

func (m Model) handleStudentAdded(msg studentAddedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil || !msg.ok {
		m.Actions.Fail(state.ActionAdd)
		m.tasks.IncFailed()
		if msg.err != nil {
			m.Status.Error(fmt.Sprintf("%s (%v)", statusAddFailed, msg.err))
		} else {
			m.Status.Error(statusAddFailed)
		}
		return m, nil
	}

	m.Actions.Succeed(state.ActionAdd)
	m.tasks.IncCompleted()
	m.Status.Success(statusAdded)
	m.clearInputs()

	if m.Actions.IsRunning(state.ActionViewAll) {
		m.Actions.RequestRefresh()
		return m, nil
	}
	return m.triggerViewAll(false)
}

// ============================================================================
// VIEW ALL
// ============================================================================

// triggerViewAll reloads the table. announce is false for the refresh that
// follows an add, so the add's success message stays visible until rows land.
func (m Model) triggerViewAll(announce bool) (tea.Model, tea.Cmd) {
	if m.Actions.IsRunning(state.ActionViewAll) {
		return m.ignore(state.ActionViewAll)
	}

	m.Actions.Start(state.ActionViewAll)
	generation := m.Table.NextGeneration()
	if announce {
		m.Status.Info(statusLoading)
	}
	m.tasks.IncDispatched()
	return m, m.loadStudentsCmd(generation)
}

func (m Model) handleStudentsLoaded(msg studentsLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.Actions.Fail(state.ActionViewAll)
	} else {
		m.Actions.Succeed(state.ActionViewAll)
	}

	switch {
	case !m.Table.IsCurrent(msg.generation):
		m.tasks.IncStale()
		m.logger.Debug("dropping stale student list", "generation", msg.generation)
	case msg.err != nil:
		m.tasks.IncFailed()
		m.Status.Error(fmt.Sprintf("Error loading students: %v", msg.err))
	default:
		m.tasks.IncCompleted()
		m.Table.Land(msg.generation, msg.students)
		m.Status.Success(fmt.Sprintf(statusLoadedFormat, len(msg.students)))
	}

	if m.Actions.TakeRefresh() {
		return m.triggerViewAll(false)
	}
	return m, nil
}

// ============================================================================
// SEARCH
// ============================================================================

func (m Model) triggerSearch() (tea.Model, tea.Cmd) {
	if m.Actions.IsRunning(state.ActionSearch) {
		return m.ignore(state.ActionSearch)
	}

	id, err := studentservice.ParseID(m.searchInput())
	if err != nil {
		m.Actions.Fail(state.ActionSearch)
		m.Status.Error(validationStatus(err))
		return m, nil
	}

	m.Actions.Start(state.ActionSearch)
	generation := m.Table.NextGeneration()
	m.Status.Info(fmt.Sprintf("Searching for ID: %d...", id))
	m.tasks.IncDispatched()
	return m, m.findStudentCmd(generation, id)
}

func (m Model) handleStudentFound(msg studentFoundMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil || !msg.found {
		m.Actions.Fail(state.ActionSearch)
	} else {
		m.Actions.Succeed(state.ActionSearch)
	}

	switch {
	case !m.Table.IsCurrent(msg.generation):
		m.tasks.IncStale()
		m.logger.Debug("dropping stale search result", "id", msg.id, "generation", msg.generation)
	case msg.err != nil:
		m.tasks.IncFailed()
		m.Status.Error(fmt.Sprintf("Error searching for student: %v", msg.err))
	case !msg.found:
		// the table is left as it was, so an older view may still land
		m.tasks.IncCompleted()
		m.Status.Error(fmt.Sprintf("No student with ID: %d", msg.id))
	default:
		m.tasks.IncCompleted()
		m.Table.Land(msg.generation, []models.Student{msg.student})
		m.Status.Success(statusFound)
	}
	return m, nil
}

// validationStatus converts a parse failure into its status line text
func validationStatus(err error) string {
	if errors.Is(err, studentservice.ErrEmptyID) {
		return statusEmptySearch
	}
	if errors.Is(err, studentservice.ErrInvalidID) {
		return statusIDNotNumber
	}
	var vErr *studentservice.ValidationError
	if errors.As(err, &vErr) {
		return fmt.Sprintf("Error: %s!", vErr.Message)
	}
	return fmt.Sprintf("Error: %v", err)
}
