package ui

// screen is what the TUI is currently showing.
type screen int

const (
	screenSettings screen = iota
	screenDialog
	screenHelp
)

func (s screen) String() string {
	switch s {
	case screenSettings:
		return "Settings"
	case screenDialog:
		return "Dialog"
	case screenHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// row is one selectable line of the settings screen.
type row int

const (
	rowService row = iota
	rowVibration
	rowPosition
	rowCustomise
	rowShare
	rowFeedback
	rowTwitter
	rowGitHub
	rowQuit
	rowCount
)

func (r row) label() string {
	switch r {
	case rowService:
		return "Safe Dot service"
	case rowVibration:
		return "Vibrate on camera/mic use"
	case rowPosition:
		return "Dot position"
	case rowCustomise:
		return "Customisation center"
	case rowShare:
		return "Share Safe Dot"
	case rowFeedback:
		return "Send feedback"
	case rowTwitter:
		return "Twitter"
	case rowGitHub:
		return "GitHub"
	case rowQuit:
		return "Quit"
	default:
		return ""
	}
}
