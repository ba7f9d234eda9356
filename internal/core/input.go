package core

// Action is a player intent decoded by a host from keys, mouse or touch.
type Action int

const (
	ActionNone Action = iota
	ActionFlap
	ActionMute
	ActionRestart
	ActionQuit
	ActionScreenshot
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionFlap:
		return "Flap"
	case ActionMute:
		return "Mute"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "None"
	}
}

// InputFrame collects the actions decoded during one host frame.
// Order is preserved, so a flap followed by a restart is applied in that order.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make([]Action, 0, 4)}
}

// Add appends an action, ignoring ActionNone.
func (f *InputFrame) Add(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Has reports whether the frame contains the action.
func (f InputFrame) Has(a Action) bool {
	for _, act := range f.Actions {
		if act == a {
			return true
		}
	}
	return false
}

// Clear resets the frame for reuse.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}
