// Package tui provides the Bubble Tea front end for knifefall.
// It owns the terminal loop, maps keys and mouse events to game actions,
// records finished runs and serves the same screens over SSH.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// ID names the loop that scheduled it, so a model left behind by a
// menu switch cannot feed ticks into its replacement.
type TickMsg struct {
	ID   int64
	Time time.Time
}

var lastLoopID atomic.Int64

func nextLoopID() int64 {
	return lastLoopID.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(id int64, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 50
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}
