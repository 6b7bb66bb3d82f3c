package core

// Action represents a semantic game action, abstracted from the physical
// input source. The single game button and the out-of-band diagnostic
// channel both surface here as discrete, already-debounced events.
type Action int

const (
	ActionNone        Action = iota
	ActionButton             // The game button: drop, reset, or cursor advance depending on mode
	ActionDiagToggle         // Out-of-band: enter/exit diagnostic mode
	ActionDiagAdvance        // Out-of-band: advance the diagnostic cursor
	ActionQuit               // Q, Ctrl+C - exit the simulator
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionButton:
		return "Button"
	case ActionDiagToggle:
		return "DiagToggle"
	case ActionDiagAdvance:
		return "DiagAdvance"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
