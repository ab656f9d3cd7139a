package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake-tui/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action. hardQuit is true for
// Ctrl+C, which tears the program down immediately; the plain quit key goes
// through the game so the end screen is shown first.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, hardQuit bool) {
	switch msg.String() {
	case "ctrl+c":
		return core.ActionQuit, true
	case "q":
		return core.ActionQuit, false
	case "up", "w":
		return core.ActionUp, false
	case "down", "s":
		return core.ActionDown, false
	case "left", "a":
		return core.ActionLeft, false
	case "right", "d":
		return core.ActionRight, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a hard quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, hardQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return hardQuit
}
