package ui

import "github.com/charmbracelet/lipgloss"

// Color palette: default terminal foreground for primary text, one accent
// for paths and highlights, muted gray for secondary info. Status is
// conveyed by unicode symbols, not color.

const defaultAccent = "#A78BFA"

var (
	// Accent style for file paths, identifiers, highlights.
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent))

	// Muted style for secondary info and hints.
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))

	// Bold style for emphasis.
	Bold = lipgloss.NewStyle().Bold(true)
)

// ConfigureTheme applies an optional accent color override from config.
func ConfigureTheme(accent string) {
	if accent == "" {
		return
	}
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(accent))
}
