package ui

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/lipgloss"

	"github.com/yourusername/botfield/internal/client/connection"
)

// Color palette - Earthy tones (lighter for dark backgrounds)
var (
	primaryColor   = lipgloss.Color("#E8C4A0") // Light warm beige
	secondaryColor = lipgloss.Color("#7EBB81") // Light forest green
	successColor   = lipgloss.Color("#B5D99C") // Bright sage
	mutedColor     = lipgloss.Color("#B8A890") // Light taupe
	fgColor        = lipgloss.Color("#F5F3ED") // Warm white
	warnColor      = lipgloss.Color("#F0DEB4") // Cream highlight
	errorColor     = lipgloss.Color("#E07B7B")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	valueStyle = lipgloss.NewStyle().
			Foreground(fgColor).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	instructionStyle = lipgloss.NewStyle().
				Foreground(mutedColor).
				Italic(true)

	gameBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)
)

// statusStyle colours the connection indicator by state
func statusStyle(status string) lipgloss.Style {
	s := lipgloss.NewStyle().Bold(true)
	switch status {
	case connection.StateOpen.Status():
		return s.Foreground(successColor)
	case connection.StateConnecting.Status():
		return s.Foreground(warnColor)
	case connection.StateClosed.Status():
		return s.Foreground(secondaryColor)
	}
	return s.Foreground(errorColor)
}

func hexColor(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B))
}
