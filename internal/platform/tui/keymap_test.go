package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake-tui/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKeyBindings(t *testing.T) {
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
	}{
		{"w", runeKey('w'), core.ActionUp},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"s", runeKey('s'), core.ActionDown},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"a", runeKey('a'), core.ActionLeft},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"d", runeKey('d'), core.ActionRight},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"q", runeKey('q'), core.ActionQuit},
		{"r", runeKey('r'), core.ActionRestart},
		{"unmapped rune", runeKey('z'), core.ActionNone},
		{"unmapped key", tea.KeyMsg{Type: tea.KeyTab}, core.ActionNone},
	}

	km := NewKeyMapper()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, hardQuit := km.MapKey(tc.msg)
			if action != tc.action {
				t.Errorf("MapKey(%s) = %v, want %v", tc.msg.String(), action, tc.action)
			}
			if hardQuit {
				t.Errorf("MapKey(%s) should not be a hard quit", tc.msg.String())
			}
		})
	}
}

func TestMapKeyCtrlCIsHardQuit(t *testing.T) {
	km := NewKeyMapper()
	action, hardQuit := km.MapKey(tea.KeyMsg{Type: tea.KeyCtrlC})
	if action != core.ActionQuit || !hardQuit {
		t.Errorf("ctrl+c = (%v, %v), want (Quit, true)", action, hardQuit)
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runeKey('w'), &frame) {
		t.Error("w should not be a hard quit")
	}
	if !frame.Has(core.ActionUp) {
		t.Error("frame should contain ActionUp after w")
	}

	frame.Clear()
	if km.MapKeyToFrame(runeKey('z'), &frame) {
		t.Error("unmapped key should not be a hard quit")
	}
	if len(frame.Actions) != 0 {
		t.Error("unmapped key should not set any action")
	}
}
