package tui

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	studentservice "github.com/thenoetrevino/studentdb/internal/services/student"
)

// simulateLatency waits d before a store call; zero disables the wait.
func simulateLatency(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// queryContext bounds a single store call by the configured query timeout
func (m Model) queryContext() (context.Context, context.CancelFunc) {
	if timeout := m.Config.Database.QueryTimeout; timeout > 0 {
		return context.WithTimeout(m.ctx, timeout)
	}
	return context.WithCancel(m.ctx)
}

func (m Model) addStudentCmd(in studentservice.FormInput) tea.Cmd {
	delay := m.Config.Latency.Add
	return func() tea.Msg {
		if err := simulateLatency(m.ctx, delay); err != nil {
			return studentAddedMsg{err: err}
		}
		ctx, cancel := m.queryContext()
		defer cancel()

		ok, err := m.service.Add(ctx, in)
		return studentAddedMsg{ok: ok, err: err}
	}
}

func (m Model) loadStudentsCmd(generation uint64) tea.Cmd {
	delay := m.Config.Latency.View
	return func() tea.Msg {
		if err := simulateLatency(m.ctx, delay); err != nil {
			return studentsLoadedMsg{generation: generation, err: err}
		}
		ctx, cancel := m.queryContext()
		defer cancel()

		students, err := m.service.ListAll(ctx)
		return studentsLoadedMsg{generation: generation, students: students, err: err}
	}
}

func (m Model) findStudentCmd(generation uint64, id int) tea.Cmd {
	delay := m.Config.Latency.Search
	return func() tea.Msg {
		if err := simulateLatency(m.ctx, delay); err != nil {
			return studentFoundMsg{generation: generation, id: id, err: err}
		}
		ctx, cancel := m.queryContext()
		defer cancel()

		student, found, err := m.service.FindByID(ctx, id)
		return studentFoundMsg{generation: generation, id: id, student: student, found: found, err: err}
	}
}
