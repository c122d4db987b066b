package tui

import "github.com/charmbracelet/lipgloss"

// Palette shared by the progress view, the tables and the logger.
var (
	ColorInk       = lipgloss.Color("#E5E9F0") // values
	ColorDim       = lipgloss.Color("#7A8291") // labels, borders
	ColorAccent    = lipgloss.Color("#88C0D0") // titles, headers
	ColorAccentAlt = lipgloss.Color("#81A1C1") // progress bar
	ColorSuccess   = lipgloss.Color("#A3BE8C") // smaller, new size
	ColorWarn      = lipgloss.Color("#EBCB8B") // dry run
	ColorError     = lipgloss.Color("#BF616A") // larger, failures, old size
)
