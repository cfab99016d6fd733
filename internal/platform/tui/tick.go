// Package tui provides the Bubble Tea front end for the game.
// It handles the terminal UI loop, key bindings, rendering and SSH sessions.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// flashDuration is how long a transient message stays on screen.
const flashDuration = 1500 * time.Millisecond

// clearFlashMsg is sent when a transient message expires.
// ID matches the message it belongs to, so newer messages are not cleared early.
type clearFlashMsg struct {
	ID int
}

// clearFlashCmd returns a command that expires flash id after flashDuration.
func clearFlashCmd(id int) tea.Cmd {
	return tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return clearFlashMsg{ID: id}
	})
}
