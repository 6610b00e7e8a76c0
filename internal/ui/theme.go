package ui

import "github.com/charmbracelet/lipgloss"

// Palette. Tuned for dark-background terminals.
var (
	colText   = lipgloss.Color("#d8dee9")
	colDim    = lipgloss.Color("#616e88")
	colWall   = lipgloss.Color("#3b4252")
	colAccent = lipgloss.Color("#88c0d0")
	colGood   = lipgloss.Color("#a3be8c")
	colBad    = lipgloss.Color("#bf616a")
	colWarn   = lipgloss.Color("#ebcb8b")
	colWater  = lipgloss.Color("#5e81ac")
	colGrass  = lipgloss.Color("#7a9f60")
	colPlayer = lipgloss.Color("#ffd75f")
	colCoach  = lipgloss.Color("#b48ead")
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(colAccent).Bold(true)
	textStyle   = lipgloss.NewStyle().Foreground(colText)
	mutedStyle  = lipgloss.NewStyle().Foreground(colDim)
	goodStyle   = lipgloss.NewStyle().Foreground(colGood)
	badStyle    = lipgloss.NewStyle().Foreground(colBad)
	warnStyle   = lipgloss.NewStyle().Foreground(colWarn).Bold(true)
	coachStyle  = lipgloss.NewStyle().Foreground(colCoach).Italic(true)
	selectStyle = lipgloss.NewStyle().Foreground(colPlayer).Bold(true)

	panelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colWall).
			Padding(1, 2)

	overlayStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colAccent).
			Padding(1, 3)

	barFillStyle  = lipgloss.NewStyle().Foreground(colGood)
	barEmptyStyle = lipgloss.NewStyle().Foreground(colWall)
)

// shirtColors gives the ambient gym-goers some variety. Indexed by the
// NPC's color variant.
var shirtColors = []lipgloss.Color{
	lipgloss.Color("#bf616a"),
	lipgloss.Color("#5e81ac"),
	lipgloss.Color("#a3be8c"),
}
