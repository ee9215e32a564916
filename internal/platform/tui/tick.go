// Package tui provides the Bubble Tea host for the platformer.
// It drives the world with a tick loop, maps terminal keys to game keys and
// renders the scene.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick. ID names the game whose
// tick loop produced it so a finished game's loop cannot drive a new one.
type TickMsg struct {
	ID   uint64
	Time time.Time
}

var lastGameID atomic.Uint64

// nextGameID returns a process-wide unique tick loop ID.
func nextGameID() uint64 {
	return lastGameID.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(id uint64, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}

// frameDelta returns the seconds elapsed since prev, capped at limit.
// The first tick (zero prev) and clock jumps backwards use nominal.
func frameDelta(prev, now time.Time, limit time.Duration, nominal float64) float64 {
	if prev.IsZero() || !now.After(prev) {
		return nominal
	}
	d := now.Sub(prev)
	if limit > 0 && d > limit {
		d = limit
	}
	return d.Seconds()
}
