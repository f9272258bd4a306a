package core

// Action represents a semantic game action, abstracted from physical key
// presses and pointer clicks.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, Up, W, click on the field
	ActionRestart        // R, Enter, click on the field after game over
	ActionQuit           // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
