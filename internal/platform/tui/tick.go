// Package tui provides the Bubble Tea front end for the maze game: level
// selection, the play screen, progress statistics and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// flashDuration is how long a rejected-selection message stays visible.
const flashDuration = 3 * time.Second

// FlashExpiredMsg clears a flash message. Stale messages carry an older ID
// and are ignored.
type FlashExpiredMsg struct {
	ID int
}

// flashCmd returns a Bubble Tea command that expires flash message id.
func flashCmd(id int) tea.Cmd {
	return tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return FlashExpiredMsg{ID: id}
	})
}
