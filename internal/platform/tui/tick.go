// Package tui provides the Bubble Tea integration: it owns the terminal,
// schedules simulation ticks, maps keys to actions, and renders world
// snapshots. The game core never sees any of this.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Clock turns tick timestamps into per-frame deltas for the simulation.
// Deltas are clamped to [0, maxDT]: a clock that jumps backwards yields 0,
// and a host that was suspended yields at most maxDT instead of teleporting
// every entity across the field.
type Clock struct {
	last  time.Time
	maxDT float64
}

// NewClock creates a frame clock with the given delta cap in seconds.
// A cap of 0 disables the upper clamp.
func NewClock(maxDT float64) *Clock {
	return &Clock{maxDT: maxDT}
}

// Delta returns the elapsed seconds since the previous call, clamped.
// The first call after construction or Reset returns 0.
func (c *Clock) Delta(now time.Time) float64 {
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	if dt < 0 {
		return 0
	}
	if c.maxDT > 0 && dt > c.maxDT {
		return c.maxDT
	}
	return dt
}

// Reset forgets the previous timestamp, so the next Delta returns 0.
// Used on restart so time spent on the game-over screen is not integrated.
func (c *Clock) Reset() {
	c.last = time.Time{}
}
