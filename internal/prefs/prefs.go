// Package prefs persists the user-facing settings of the dot service.
package prefs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Key names a boolean preference.
type Key string

const (
	KeyServiceEnabled   Key = "service_enabled"
	KeyVibrationEnabled Key = "vibration_enabled"
	KeyFirstLaunchSeen  Key = "first_launch_seen"
)

// Position is the screen corner the dot is drawn in.
type Position int

const (
	TopLeft Position = iota
	TopRight
)

func (p Position) String() string {
	switch p {
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	default:
		return "unknown"
	}
}

// ParsePosition parses the string form produced by Position.String.
func ParsePosition(s string) (Position, error) {
	switch s {
	case "top-left":
		return TopLeft, nil
	case "top-right":
		return TopRight, nil
	}
	return TopLeft, fmt.Errorf("invalid position %q", s)
}

func (p Position) MarshalYAML() (interface{}, error) {
	if p != TopLeft && p != TopRight {
		return nil, fmt.Errorf("invalid position %d", int(p))
	}
	return p.String(), nil
}

func (p *Position) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParsePosition(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Settings is the full persisted preference record.
type Settings struct {
	VibrationEnabled bool     `yaml:"vibration_enabled"`
	Position         Position `yaml:"position"`
	ServiceEnabled   bool     `yaml:"service_enabled"`
	FirstLaunchSeen  bool     `yaml:"first_launch_seen"`
	InstallID        string   `yaml:"install_id,omitempty"`
}

// DefaultSettings returns the settings of a fresh install.
func DefaultSettings() Settings {
	return Settings{
		VibrationEnabled: true,
		Position:         TopLeft,
	}
}

// Bool returns the value stored under key. Unknown keys read as false.
func (s Settings) Bool(key Key) bool {
	switch key {
	case KeyServiceEnabled:
		return s.ServiceEnabled
	case KeyVibrationEnabled:
		return s.VibrationEnabled
	case KeyFirstLaunchSeen:
		return s.FirstLaunchSeen
	}
	return false
}

func (s *Settings) setBool(key Key, v bool) error {
	switch key {
	case KeyServiceEnabled:
		s.ServiceEnabled = v
	case KeyVibrationEnabled:
		s.VibrationEnabled = v
	case KeyFirstLaunchSeen:
		s.FirstLaunchSeen = v
	default:
		return fmt.Errorf("unknown preference key %q", key)
	}
	return nil
}

// Store reads and writes preferences.
type Store interface {
	Bool(key Key) bool
	SetBool(key Key, v bool) error
	Position() Position
	SetPosition(p Position) error
	Settings() Settings
}
