package core

// Action is a semantic UI action, abstracted from physical key presses.
// The TUI keymap translates keys to these; the game model consumes them
// without knowing the bindings.
type Action int

const (
	ActionNone        Action = iota
	ActionCursorUp           // Move the board cursor up
	ActionCursorDown         // Move the board cursor down
	ActionCursorLeft         // Move the board cursor left
	ActionCursorRight        // Move the board cursor right
	ActionConfirm            // Apply the selected card action at the cursor
	ActionRollWind           // Draw a new wind direction
	ActionBack               // Leave the current screen
	ActionRestart            // Start a new match after game over
	ActionQuit               // Exit the program
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionCursorUp:
		return "CursorUp"
	case ActionCursorDown:
		return "CursorDown"
	case ActionCursorLeft:
		return "CursorLeft"
	case ActionCursorRight:
		return "CursorRight"
	case ActionConfirm:
		return "Confirm"
	case ActionRollWind:
		return "RollWind"
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
