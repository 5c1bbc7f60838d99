package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("#8BC34A")
	colorMuted   = lipgloss.Color("#6B7280")
	colorBorder  = lipgloss.Color("#2a3850")
	colorError   = lipgloss.Color("#e53935")
	colorWarning = lipgloss.Color("#FFC107")
)

// Styles groups the lipgloss styles of the console.
type Styles struct {
	Title     lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Label     lipgloss.Style
	Error     lipgloss.Style
	Warning   lipgloss.Style
	Muted     lipgloss.Style
	Box       lipgloss.Style
	FocusBox  lipgloss.Style
}

// DefaultStyles returns the console styles.
func DefaultStyles() Styles {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1)

	return Styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(colorPrimary),
		Tab:       lipgloss.NewStyle().Padding(0, 1).Foreground(colorMuted),
		ActiveTab: lipgloss.NewStyle().Padding(0, 1).Bold(true).Underline(true).Foreground(colorPrimary),
		Label:     lipgloss.NewStyle().Bold(true),
		Error:     lipgloss.NewStyle().Foreground(colorError),
		Warning:   lipgloss.NewStyle().Bold(true).Foreground(colorWarning),
		Muted:     lipgloss.NewStyle().Foreground(colorMuted),
		Box:       box,
		FocusBox:  box.BorderForeground(colorPrimary),
	}
}
