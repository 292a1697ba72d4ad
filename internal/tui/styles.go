package tui

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/studentdb/internal/tui/state"
	"github.com/thenoetrevino/studentdb/internal/tui/theme"
)

// Styles are built on demand so a theme loaded at startup takes effect.

const labelWidth = 12

func titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Title)).
		MarginBottom(1)
}

func labelStyle(focused bool) lipgloss.Style {
	style := lipgloss.NewStyle().Width(labelWidth)
	if focused {
		return style.Bold(true).Foreground(lipgloss.Color(theme.Accent))
	}
	return style.Foreground(lipgloss.Color(theme.Normal))
}

func inputBoxStyle(focused bool) lipgloss.Style {
	border := theme.Border
	if focused {
		border = theme.FocusedBorder
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Padding(0, 1).
		Width(36)
}

func hintStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))
}

func tableBorderStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Border))
}

func tableHeaderStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Accent)).
		Padding(0, 1)
}

func tableCellStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Normal)).
		Padding(0, 1)
}

// statusStyle colors the status line by severity
func statusStyle(level state.StatusLevel) lipgloss.Style {
	fg := theme.StatusBarText
	switch level {
	case state.LevelSuccess:
		fg = theme.Success
	case state.LevelError:
		fg = theme.Error
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg)).
		Background(lipgloss.Color(theme.StatusBarBg)).
		Padding(0, 1)
}

func helpBoxStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Padding(1, 2)
}
