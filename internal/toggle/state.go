package toggle

// Enablement is the derived on/off state of the dot service.
type Enablement int

const (
	Disabled Enablement = iota
	EnabledPendingPermission
	Enabled
)

func (e Enablement) String() string {
	switch e {
	case Disabled:
		return "Disabled"
	case EnabledPendingPermission:
		return "EnabledPendingPermission"
	case Enabled:
		return "Enabled"
	default:
		return "Unknown"
	}
}

// SignalKind tells the UI which prompt to show.
type SignalKind string

const (
	PermissionRequired    SignalKind = "permission_required"
	ManualStopRequired    SignalKind = "manual_stop_required"
	AutoStartPromptNeeded SignalKind = "auto_start_prompt_needed"
	Reminder              SignalKind = "reminder"
)

// Signal is an expected, user-facing condition. None of them are errors.
type Signal struct {
	Kind    SignalKind
	Title   string
	Message string
}

// Result is what the UI renders after an operation: the visible position of
// the main switch and any prompts to show.
type Result struct {
	Toggle  bool
	State   Enablement
	Signals []Signal
}

// Has reports whether r carries a signal of kind k.
func (r Result) Has(k SignalKind) bool {
	for _, s := range r.Signals {
		if s.Kind == k {
			return true
		}
	}
	return false
}

var (
	permissionRequiredSignal = Signal{
		Kind:    PermissionRequired,
		Title:   "Requires Accessibility Permission",
		Message: "You're required to enable accessibility permission to Safe Dot to enable the safe dots",
	}
	manualStopSignal = Signal{
		Kind:    ManualStopRequired,
		Title:   "Turn off in Accessibility",
		Message: "The dot service can only be stopped from the system accessibility settings. Disable Safe Dot there.",
	}
	reminderSignal = Signal{
		Kind:    Reminder,
		Message: "Close the app from recents after disabling the service in accessibility settings",
	}
	autoStartSignal = Signal{
		Kind:    AutoStartPromptNeeded,
		Title:   "Enable Auto Start",
		Message: "Your phone may kill background services. Allow Safe Dot to auto start so the dots keep working.",
	}
)
