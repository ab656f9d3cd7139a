// Package tui provides the Bubble Tea integration for the snake game.
// It handles the terminal UI loop, input mapping, and rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick message after the
// given interval in milliseconds.
func tickCmd(intervalMS int) tea.Cmd {
	return tea.Tick(time.Duration(intervalMS)*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
