package tui

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// Catppuccin Mocha palette.
var flavor = catppuccin.Mocha

var (
	colorText     = lipgloss.Color(flavor.Text().Hex)
	colorSubtext0 = lipgloss.Color(flavor.Subtext0().Hex)
	colorBlue     = lipgloss.Color(flavor.Blue().Hex)
	colorGreen    = lipgloss.Color(flavor.Green().Hex)
	colorYellow   = lipgloss.Color(flavor.Yellow().Hex)
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorBlue)

	// cursorStyle marks the selected row.
	cursorStyle = lipgloss.NewStyle().Foreground(colorBlue).Bold(true)

	itemStyle = lipgloss.NewStyle().Foreground(colorText)

	// activeStyle marks profiles currently applied to a scope.
	activeStyle = lipgloss.NewStyle().Foreground(colorGreen)

	detailStyle = lipgloss.NewStyle().Foreground(colorSubtext0)

	helpStyle = lipgloss.NewStyle().Foreground(colorSubtext0)

	warnStyle = lipgloss.NewStyle().Foreground(colorYellow)
)
