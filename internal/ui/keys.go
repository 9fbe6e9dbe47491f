package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines key bindings for various UI states and common actions.
type KeyMap struct {
	// Common
	Quit       key.Binding
	ToggleHelp key.Binding
	Refresh    key.Binding

	// Settings navigation
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Left   key.Binding
	Right  key.Binding

	// Dialogs
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultKeys returns the default key bindings for the application.
func DefaultKeys() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		ToggleHelp: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "toggle help"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "re-check permission"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "toggle/open"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "top-left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "top-right"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", "y"),
			key.WithHelp("enter/y", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "n"),
			key.WithHelp("esc/n", "dismiss"),
		),
	}
}

// NewHelpModel returns a configured help model.
func NewHelpModel() help.Model {
	return help.New()
}

// stateKeyMap adapts bindings to the current screen for contextual help.
type stateKeyMap struct {
	keys   KeyMap
	screen screen
}

// ForScreen returns a contextual key map implementing help.KeyMap.
func (k KeyMap) ForScreen(s screen) help.KeyMap {
	return stateKeyMap{keys: k, screen: s}
}

// ShortHelp implements help.KeyMap for contextual help (compact).
func (s stateKeyMap) ShortHelp() []key.Binding {
	switch s.screen {
	case screenSettings:
		return []key.Binding{s.keys.Up, s.keys.Down, s.keys.Select, s.keys.Refresh, s.keys.ToggleHelp, s.keys.Quit}
	case screenDialog:
		return []key.Binding{s.keys.Confirm, s.keys.Cancel}
	default:
		return []key.Binding{s.keys.ToggleHelp, s.keys.Quit}
	}
}

// FullHelp implements help.KeyMap for contextual help (expanded).
func (s stateKeyMap) FullHelp() [][]key.Binding {
	switch s.screen {
	case screenSettings:
		return [][]key.Binding{
			{s.keys.Up, s.keys.Down, s.keys.Select},
			{s.keys.Left, s.keys.Right, s.keys.Refresh},
			{s.keys.ToggleHelp, s.keys.Quit},
		}
	case screenDialog:
		return [][]key.Binding{{s.keys.Confirm, s.keys.Cancel}}
	default:
		return [][]key.Binding{{s.keys.ToggleHelp, s.keys.Quit}}
	}
}
