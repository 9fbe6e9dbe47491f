package ui

import (
	"fmt"
	"strings"

	"github.com/stigoleg/safedot/internal/prefs"
	"github.com/stigoleg/safedot/internal/toggle"
)

// View renders the current state of the model to a string.
func View(m Model) string {
	switch m.Screen {
	case screenHelp:
		return HelpView()
	case screenDialog:
		if d, ok := m.CurrentDialog(); ok {
			return dialogView(m, d)
		}
	}
	return settingsView(m)
}

func onOff(on bool) string {
	if on {
		return Current.On.Render("ON")
	}
	return Current.Off.Render("OFF")
}

func (m Model) rowValue(r row) string {
	switch r {
	case rowService:
		v := onOff(m.Toggle)
		if m.State == toggle.EnabledPendingPermission {
			v += Current.Off.Render(" (permission revoked)")
		}
		return v
	case rowVibration:
		return onOff(m.Settings.VibrationEnabled)
	case rowPosition:
		left, right := "( ) top-left", "( ) top-right"
		if m.Settings.Position == prefs.TopLeft {
			left = "(•) top-left"
		} else {
			right = "(•) top-right"
		}
		return left + "  " + right
	case rowCustomise:
		return Current.Off.Render("PRO")
	}
	return ""
}

func settingsView(m Model) string {
	var b strings.Builder

	b.WriteString(Current.Title.Render("Safe Dot"))
	b.WriteString("\n\n")

	for i := row(0); i < rowCount; i++ {
		var line strings.Builder

		style := Current.Unselected
		if int(i) == m.Selected {
			line.WriteString(Current.Selected.Render("> "))
			style = Current.Selected
		} else {
			line.WriteString(Current.Unselected.Render("  "))
		}
		line.WriteString(style.Render(fmt.Sprintf("%-28s", i.label())))
		if v := m.rowValue(i); v != "" {
			line.WriteString(v)
		}

		b.WriteString(line.String() + "\n")
	}

	if m.Snack != "" {
		b.WriteString("\n" + Current.Snack.Render(m.Snack))
	}
	if m.ErrorMessage != "" {
		b.WriteString("\n" + Current.Error.Render(m.ErrorMessage))
	}

	b.WriteString("\n\n" + Current.Help.Render(m.help.View(m.keys.ForScreen(screenSettings))))
	if m.deps.Version != "" {
		b.WriteString("\n" + Current.Help.Render("Version - "+m.deps.Version))
	}
	return b.String()
}

func dialogView(m Model, d dialog) string {
	var b strings.Builder

	b.WriteString(Current.DialogTitle.Render(d.Title))
	b.WriteString("\n\n")
	b.WriteString(d.Message)
	b.WriteString("\n\n")

	buttons := "[enter] " + d.Confirm
	if d.Cancel != "" {
		buttons += "    [esc] " + d.Cancel
	}
	b.WriteString(Current.Help.Render(buttons))

	out := Current.Dialog.Render(b.String())
	if m.ErrorMessage != "" {
		out += "\n" + Current.Error.Render(m.ErrorMessage)
	}
	return out
}

// HelpView renders the usage and navigation help.
func HelpView() string {
	help := `Safe Dot Help

Usage:
  safedot [flags]

Flags:
  -s, --serial string     Serial of the device to manage (adb -s)
      --adb string        Path to the adb binary
      --service string    Accessibility service component (package/class)
      --prefs string      Preferences file
      --log-file string   Log file, empty to disable logging
      --debug             Log adb traffic
      --manufacturer      Override the device manufacturer
  -v, --version           Show version information
  -h, --help              Show help message

Navigation:
  ↑/k, ↓/j  : Navigate settings
  Enter      : Toggle or open the selected row
  ←/→        : Move the dot to the top-left/top-right corner
  r          : Re-check the accessibility permission
  h          : Show this help
  q          : Quit

Press 'h' or 'Esc' to close help`

	return Current.Help.Render(help)
}
