// Package styles defines shared lipgloss colors and styles.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	PrimaryColor   = lipgloss.Color("#5FAFAF") // Teal accent
	SecondaryColor = lipgloss.Color("#666666") // Gray for secondary text
	SuccessColor   = lipgloss.Color("#87AF87") // Muted sage for success
	CautionColor   = lipgloss.Color("#D7AF5F") // Muted amber for in-progress
	ErrorColor     = lipgloss.Color("#AF5F5F") // Muted terracotta for errors

	// TitleStyle for headers
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// SubtleStyle for hints/help text
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor)

	// SelectedStyle for the highlighted table row
	SelectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor)

	// StatusBarStyle for the summary line under the table
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor)

	// BoxStyle for panel borders
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(SecondaryColor)

	// SuccessStyle for success messages
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// CautionStyle for in-progress work
	CautionStyle = lipgloss.NewStyle().
			Foreground(CautionColor)

	// ErrorStyle for error messages
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)
)
