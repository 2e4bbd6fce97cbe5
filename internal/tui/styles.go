// Package tui is the terminal dashboard for watching a generation run.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/RayyanMinhaj/global-hackathon-v1/internal/generator"
)

// Color palette (256-color terminal codes).
const (
	colorAccent    = "86"  // cyan/green - titles, highlights
	colorHighlight = "205" // magenta - selected items
	colorDanger    = "196" // red - errors
	colorSuccess   = "42"  // green - done sections
	colorWarning   = "208" // orange - warnings
	colorMuted     = "241" // gray - hints, dimmed text
)

// Styles contains all lipgloss styles for the dashboard.
type Styles struct {
	Title    lipgloss.Style
	Selected lipgloss.Style
	Status   lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Muted    lipgloss.Style
	Spinner  lipgloss.Style
	Border   lipgloss.Style
	Notice   lipgloss.Style
}

// DefaultStyles returns the dashboard styles.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorAccent)),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorHighlight)),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorMuted)),
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorSuccess)),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorDanger)),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorMuted)),
		Spinner: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorAccent)),
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colorMuted)),
		Notice: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorWarning)),
	}
}

// Status icons.
const (
	IconLoading = "●"
	IconDone    = "✓"
	IconError   = "✗"
)

// StatusIcon returns the icon for a section status.
func StatusIcon(status generator.Status) string {
	switch status {
	case generator.StatusDone:
		return IconDone
	case generator.StatusError:
		return IconError
	default:
		return IconLoading
	}
}

// StatusStyle returns the style for a section status.
func (s Styles) StatusStyle(status generator.Status) lipgloss.Style {
	switch status {
	case generator.StatusDone:
		return s.Success
	case generator.StatusError:
		return s.Error
	default:
		return s.Status
	}
}
