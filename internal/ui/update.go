package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stigoleg/safedot/internal/prefs"
)

// Update handles messages and updates the model accordingly.
func Update(msg tea.Msg, m Model) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case resumeMsg:
		m.resume(msg.launch)
	case tea.FocusMsg:
		m.resume(false)
	case tea.KeyMsg:
		return updateKey(msg, m)
	}
	return m, nil
}

func updateKey(msg tea.KeyMsg, m Model) (Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.Screen {
	case screenHelp:
		if key.Matches(msg, m.keys.ToggleHelp) || key.Matches(msg, m.keys.Cancel) || key.Matches(msg, m.keys.Quit) {
			m.Screen = screenSettings
			m.ShowHelp = false
		}
		return m, nil

	case screenDialog:
		d, ok := m.CurrentDialog()
		if !ok {
			m.Screen = screenSettings
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Confirm):
			m.popDialog()
			if d.onConfirm != nil {
				if err := d.onConfirm(&m); err != nil {
					m.ErrorMessage = err.Error()
				}
			}
		case key.Matches(msg, m.keys.Cancel):
			m.popDialog()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.ToggleHelp):
		m.Screen = screenHelp
		m.ShowHelp = true
	case key.Matches(msg, m.keys.Refresh):
		m.resume(false)
	case key.Matches(msg, m.keys.Up):
		if m.Selected > 0 {
			m.Selected--
		}
	case key.Matches(msg, m.keys.Down):
		if m.Selected < int(rowCount)-1 {
			m.Selected++
		}
	case key.Matches(msg, m.keys.Left):
		if row(m.Selected) == rowPosition {
			m.setPosition(prefs.TopLeft)
		}
	case key.Matches(msg, m.keys.Right):
		if row(m.Selected) == rowPosition {
			m.setPosition(prefs.TopRight)
		}
	case key.Matches(msg, m.keys.Select):
		return m.activate(row(m.Selected))
	}
	return m, nil
}

// resume reconciles the main switch and, on launch, shows the one-time
// auto-start prompt.
func (m *Model) resume(launch bool) {
	ctl := m.deps.Controller
	if ctl == nil {
		return
	}
	if launch {
		res, err := ctl.MaybeShowAutoStartPrompt(m.deps.Manufacturer)
		if err != nil {
			m.ErrorMessage = err.Error()
		}
		m.apply(res)
	}
	res := ctl.ReconcileOnResume(m.deps.Context)
	m.Toggle = res.Toggle
	m.State = res.State
}

func (m *Model) setPosition(p prefs.Position) {
	if err := m.deps.Controller.SetPosition(p); err != nil {
		m.ErrorMessage = err.Error()
		return
	}
	m.ErrorMessage = ""
	m.Settings = m.deps.Controller.Settings()
}

func (m Model) activate(r row) (Model, tea.Cmd) {
	ctx := m.deps.Context
	m.ErrorMessage = ""
	m.Snack = ""

	var err error
	switch r {
	case rowService:
		res, terr := m.deps.Controller.OnUserToggle(ctx, !m.Toggle)
		err = terr
		m.apply(res)
	case rowVibration:
		err = m.deps.Controller.SetVibration(!m.Settings.VibrationEnabled)
		m.Settings = m.deps.Controller.Settings()
	case rowPosition:
		next := prefs.TopRight
		if m.Settings.Position == prefs.TopRight {
			next = prefs.TopLeft
		}
		m.setPosition(next)
	case rowCustomise:
		offer := m.deps.Upsell.Offer()
		m.pushDialog(dialog{
			Title:   offer.Title,
			Message: offer.Message,
			Confirm: offer.Accept,
			Cancel:  offer.Decline,
			onConfirm: func(m *Model) error {
				return m.deps.Upsell.Accept(m.deps.Context)
			},
		})
	case rowShare:
		err = m.deps.Device.Share(ctx, shareText)
	case rowFeedback:
		err = m.deps.Device.SendFeedback(ctx, m.deps.FeedbackAddress, feedbackSub)
	case rowTwitter:
		err = m.deps.Device.OpenURL(ctx, twitterURL)
	case rowGitHub:
		err = m.deps.Device.OpenURL(ctx, githubURL)
	case rowQuit:
		return m, tea.Quit
	}

	if err != nil {
		m.ErrorMessage = err.Error()
	}
	return m, nil
}
