package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pkamenev/firetower/internal/core"
	"github.com/pkamenev/firetower/internal/engine"
)

// KeyMapper translates Bubble Tea key messages to session actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a session action.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit
	case "up", "k":
		return core.ActionCursorUp
	case "down", "j":
		return core.ActionCursorDown
	case "left", "h":
		return core.ActionCursorLeft
	case "right", "l":
		return core.ActionCursorRight
	case "enter", " ":
		return core.ActionConfirm
	case "w":
		return core.ActionRollWind
	case "b", "esc":
		return core.ActionBack
	case "r":
		return core.ActionRestart
	}
	return core.ActionNone
}

// MapKeyToCard translates a digit key 1-8 to the card action it selects.
// The second return is false for any other key.
func (km *KeyMapper) MapKeyToCard(msg tea.KeyMsg) (engine.ActionKind, bool) {
	key := msg.String()
	if len(key) != 1 || key[0] < '1' || key[0] > '8' {
		return 0, false
	}
	return engine.ActionKind(key[0] - '1'), true
}
