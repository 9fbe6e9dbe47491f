// Package ui provides the terminal settings screen for the dot service.
package ui

import "github.com/charmbracelet/lipgloss"

// Colors follows the dot itself: green for the camera, orange for the mic.
type Colors struct {
	Muted  lipgloss.AdaptiveColor
	Camera lipgloss.AdaptiveColor
	Mic    lipgloss.AdaptiveColor
	Error  lipgloss.AdaptiveColor
}

var dotColors = Colors{
	Muted:  lipgloss.AdaptiveColor{Light: "#616161", Dark: "#9E9E9E"},
	Camera: lipgloss.AdaptiveColor{Light: "#2E7D32", Dark: "#4CAF50"},
	Mic:    lipgloss.AdaptiveColor{Light: "#E65100", Dark: "#FF9800"},
	Error:  lipgloss.AdaptiveColor{Light: "#C62828", Dark: "#EF5350"},
}

// Style holds the styles of the settings screen and its dialogs.
type Style struct {
	Title       lipgloss.Style
	Selected    lipgloss.Style
	Unselected  lipgloss.Style
	On          lipgloss.Style
	Off         lipgloss.Style
	Dialog      lipgloss.Style
	DialogTitle lipgloss.Style
	Snack       lipgloss.Style
	Help        lipgloss.Style
	Error       lipgloss.Style
}

// DefaultStyle returns the styles built from the dot palette.
func DefaultStyle() Style {
	base := lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1)

	return Style{
		Title: base.
			Bold(true).
			Underline(true).
			Foreground(dotColors.Camera),

		Selected: base.
			Bold(true).
			Foreground(dotColors.Camera),

		Unselected: base,

		On: lipgloss.NewStyle().
			Bold(true).
			Foreground(dotColors.Camera),

		Off: lipgloss.NewStyle().
			Foreground(dotColors.Muted),

		Dialog: base.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(dotColors.Camera).
			Padding(1, 2).
			Width(60),

		DialogTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(dotColors.Camera),

		Snack: base.
			Italic(true).
			Foreground(dotColors.Mic),

		Help: base.
			Foreground(dotColors.Muted),

		Error: base.
			Foreground(dotColors.Error),
	}
}

// Current is the style in use, also borrowed by config error output.
var Current = DefaultStyle()
