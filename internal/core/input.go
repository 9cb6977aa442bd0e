package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionForward           // W - move along the camera heading
	ActionBackward          // S - move against the camera heading
	ActionStrafeLeft        // A - move left of the camera heading
	ActionStrafeRight       // D - move right of the camera heading
	ActionJump              // Space - jump (one-shot)
	ActionGhost             // C - toggle pass-through mode (one-shot)
	ActionRestart           // R - restart the session (one-shot)
	ActionRecenter          // P - return to the arena centre (one-shot)
	ActionBack              // B, Escape - go back to menu
	ActionQuit              // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionForward:
		return "Forward"
	case ActionBackward:
		return "Backward"
	case ActionStrafeLeft:
		return "StrafeLeft"
	case ActionStrafeRight:
		return "StrafeRight"
	case ActionJump:
		return "Jump"
	case ActionGhost:
		return "Ghost"
	case ActionRestart:
		return "Restart"
	case ActionRecenter:
		return "Recenter"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single player during one simulation tick.
// Held directions are set on every frame they are held; one-shot actions
// are set on the single frame they were pressed.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Yaw is the camera heading in degrees. Only used to rotate the
	// directional input into world space.
	Yaw float64
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

// Clear resets all actions for the next frame. Yaw is kept.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Yaw = f.Yaw
	return clone
}
