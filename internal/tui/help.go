package tui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/dustin/go-humanize"
)

// Cache Glamour renderers by width to avoid expensive re-creation
var rendererCache sync.Map // map[int]*glamour.TermRenderer

// getRenderer returns a cached renderer for the given width
func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// helpMarkdown describes the key bindings and background task counters
func (m Model) helpMarkdown() string {
	keys := m.Config.KeyMappings
	snap := m.tasks.GetSnapshot()

	var b strings.Builder
	b.WriteString("# Student Database\n\n")
	b.WriteString("## Keys\n\n")
	b.WriteString("| Key | Action |\n|---|---|\n")
	fmt.Fprintf(&b, "| `%s` | Add the student in the form |\n", keys.AddStudent)
	fmt.Fprintf(&b, "| `%s` | View all students |\n", keys.ViewAll)
	fmt.Fprintf(&b, "| `%s` | Search by ID |\n", keys.Search)
	fmt.Fprintf(&b, "| `%s` / `%s` | Next / previous field |\n", keys.NextField, keys.PrevField)
	fmt.Fprintf(&b, "| `%s` | Next field, add from Email, search from Search ID |\n", keys.Submit)
	fmt.Fprintf(&b, "| `%s` | Toggle this help |\n", keys.ShowHelp)
	fmt.Fprintf(&b, "| `%s` | Quit |\n\n", keys.Quit)
	b.WriteString("## Background tasks\n\n")
	fmt.Fprintf(&b, "- dispatched: %d\n", snap.Dispatched)
	fmt.Fprintf(&b, "- completed: %d\n", snap.Completed)
	fmt.Fprintf(&b, "- failed: %d\n", snap.Failed)
	fmt.Fprintf(&b, "- ignored while running: %d\n", snap.Ignored)
	fmt.Fprintf(&b, "- superseded: %d\n", snap.Stale)
	fmt.Fprintf(&b, "- started: %s\n", humanize.Time(snap.StartTime))
	return b.String()
}

// renderHelp renders the help overlay, falling back to raw markdown if glamour fails
func (m Model) renderHelp() string {
	width := m.UiState.Width() * 2 / 3
	if width < 40 {
		width = 40
	}

	md := m.helpMarkdown()
	content := md
	if renderer, err := getRenderer(width); err == nil {
		if rendered, err := renderer.Render(md); err == nil {
			content = strings.TrimSpace(rendered)
		}
	}
	return helpBoxStyle().Width(width + 6).Render(content)
}
