package main

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Color palette
	primaryColor = lipgloss.Color("#7D56F4")
	mutedColor   = lipgloss.Color("#666666")
	warningColor = lipgloss.Color("#FFA500")
	errorColor   = lipgloss.Color("#FF4B4B")

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	warningStyle = lipgloss.NewStyle().
			Foreground(warningColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)
)

// paint renders text with style unless --no-color is set.
func paint(style lipgloss.Style, text string) string {
	if noColor {
		return text
	}
	return style.Render(text)
}
