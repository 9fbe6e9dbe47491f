package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stigoleg/safedot/internal/prefs"
	"github.com/stigoleg/safedot/internal/toggle"
	"github.com/stigoleg/safedot/internal/upsell"
)

const (
	twitterURL  = "https://www.twitter.com/kamaravichow"
	githubURL   = "https://www.github.com/kamaravichow"
	shareText   = "Protect your camera and microphone privacy with SafeDot. Download from Google Play : " + upsell.StoreURL
	feedbackSub = "Safe Dot feedback"
)

// Device is the part of the device the settings screen links out to.
type Device interface {
	OpenURL(ctx context.Context, url string) error
	Share(ctx context.Context, text string) error
	SendFeedback(ctx context.Context, address, subject string) error
}

// Deps wires the settings screen to the rest of the application.
type Deps struct {
	Context         context.Context
	Controller      *toggle.Controller
	Upsell          *upsell.Flow
	Device          Device
	Manufacturer    string
	FeedbackAddress string
	Version         string
}

// dialogAction runs when a dialog is confirmed.
type dialogAction func(m *Model) error

// dialog is a modal prompt.
type dialog struct {
	Title     string
	Message   string
	Confirm   string
	Cancel    string
	onConfirm dialogAction
}

// resumeMsg is sent when the screen becomes visible again.
type resumeMsg struct {
	launch bool
}

// Model holds the current state of the settings screen.
type Model struct {
	deps Deps

	Screen       screen
	Selected     int
	Toggle       bool
	State        toggle.Enablement
	Settings     prefs.Settings
	Dialogs      []dialog
	Snack        string
	ErrorMessage string
	ShowHelp     bool

	keys KeyMap
	help help.Model
}

// InitialModel returns the settings screen before the first resume.
func InitialModel(deps Deps) Model {
	if deps.Context == nil {
		deps.Context = context.Background()
	}
	m := Model{
		deps:   deps,
		Screen: screenSettings,
		keys:   DefaultKeys(),
		help:   NewHelpModel(),
	}
	if deps.Controller != nil {
		m.Settings = deps.Controller.Settings()
	}
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return func() tea.Msg {
		return resumeMsg{launch: true}
	}
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return Update(msg, m)
}

// View implements tea.Model
func (m Model) View() string {
	return View(m)
}

// CurrentDialog returns the dialog on screen, if any.
func (m Model) CurrentDialog() (dialog, bool) {
	if len(m.Dialogs) == 0 {
		return dialog{}, false
	}
	return m.Dialogs[0], true
}

func (m *Model) pushDialog(d dialog) {
	m.Dialogs = append(m.Dialogs, d)
	m.Screen = screenDialog
}

func (m *Model) popDialog() {
	if len(m.Dialogs) > 0 {
		m.Dialogs = m.Dialogs[1:]
	}
	if len(m.Dialogs) == 0 {
		m.Screen = screenSettings
	}
}

// apply renders a controller result: switch position, dialogs and snack.
func (m *Model) apply(res toggle.Result) {
	m.Toggle = res.Toggle
	m.State = res.State
	for _, s := range res.Signals {
		switch s.Kind {
		case toggle.Reminder:
			m.Snack = s.Message
		case toggle.PermissionRequired:
			m.pushDialog(dialog{
				Title:   s.Title,
				Message: s.Message,
				Confirm: "Open Accessibility",
				Cancel:  "Cancel",
				onConfirm: func(m *Model) error {
					return m.deps.Controller.OpenAccessibilitySettings(m.deps.Context)
				},
			})
		default:
			m.pushDialog(dialog{Title: s.Title, Message: s.Message, Confirm: "OK"})
		}
	}
	if m.deps.Controller != nil {
		m.Settings = m.deps.Controller.Settings()
	}
}
