// Package tui hosts the game in a terminal through Bubble Tea, locally or
// over SSH. It maps keys to actions, paces ticks and draws snapshots.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(fps int) tea.Cmd {
	interval := time.Second / time.Duration(max(1, fps))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
