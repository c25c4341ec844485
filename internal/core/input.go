package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the engine to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone          Action = iota
	ActionLeft                 // Left arrow - move piece left
	ActionRight                // Right arrow - move piece right
	ActionRotateCW             // Up, X - rotate clockwise
	ActionRotateCCW            // Z - rotate counter-clockwise
	ActionSoftDropStart        // Down pressed - start soft drop
	ActionSoftDropStop         // Down released - stop soft drop
	ActionHardDrop             // Space - drop and lock immediately
	ActionHold                 // C - swap with hold slot
	ActionPause                // P - pause/unpause game
	ActionStart                // Enter - start from menu / restart after game over
	ActionQuit                 // Esc, Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRotateCW:
		return "RotateCW"
	case ActionRotateCCW:
		return "RotateCCW"
	case ActionSoftDropStart:
		return "SoftDropStart"
	case ActionSoftDropStop:
		return "SoftDropStop"
	case ActionHardDrop:
		return "HardDrop"
	case ActionHold:
		return "Hold"
	case ActionPause:
		return "Pause"
	case ActionStart:
		return "Start"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds the actions collected during one simulation tick, in the
// order they arrived. Order matters for tetris: "left, rotate" and
// "rotate, left" can end in different positions.
type InputFrame struct {
	actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set appends an action to this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.actions = append(f.actions, a)
}

// Actions returns the actions of this frame in arrival order.
func (f InputFrame) Actions() []Action {
	return f.actions
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.actions = f.actions[:0]
}
