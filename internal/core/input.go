package core

// Action represents a semantic action, abstracted from physical key presses.
// This allows the game layer to work with intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow
	ActionDown           // S, Down arrow
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionConfirm        // Enter - confirm selection
	ActionBack           // Escape - back to level selection
	ActionRestart        // R - retry the same level after a loss
	ActionQuit           // Ctrl+C - exit session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Command returns the movement command rune for directional actions.
// Non-directional actions report false.
func (a Action) Command() (rune, bool) {
	switch a {
	case ActionUp:
		return 'w', true
	case ActionDown:
		return 's', true
	case ActionLeft:
		return 'a', true
	case ActionRight:
		return 'd', true
	default:
		return 0, false
	}
}
