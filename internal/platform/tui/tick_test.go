package tui

import (
	"math"
	"testing"
	"time"
)

func TestClockDelta(t *testing.T) {
	base := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	c := NewClock(0.25)

	if dt := c.Delta(base); dt != 0 {
		t.Errorf("first delta = %g, expected 0", dt)
	}

	dt := c.Delta(base.Add(16 * time.Millisecond))
	if math.Abs(dt-0.016) > 1e-9 {
		t.Errorf("delta = %g, expected 0.016", dt)
	}
}

func TestClockClampsBackwardsTime(t *testing.T) {
	base := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	c := NewClock(0.25)
	c.Delta(base)

	if dt := c.Delta(base.Add(-time.Second)); dt != 0 {
		t.Errorf("backwards clock should yield 0, got %g", dt)
	}
}

func TestClockCapsLargeDeltas(t *testing.T) {
	base := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	c := NewClock(0.25)
	c.Delta(base)

	if dt := c.Delta(base.Add(10 * time.Second)); dt != 0.25 {
		t.Errorf("suspended host should be capped to 0.25, got %g", dt)
	}

	// A zero cap disables the upper clamp.
	unc := NewClock(0)
	unc.Delta(base)
	if dt := unc.Delta(base.Add(10 * time.Second)); dt != 10 {
		t.Errorf("uncapped clock should report the full delta, got %g", dt)
	}
}

func TestClockReset(t *testing.T) {
	base := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	c := NewClock(0.25)
	c.Delta(base)
	c.Delta(base.Add(time.Second / 60))

	c.Reset()
	if dt := c.Delta(base.Add(5 * time.Second)); dt != 0 {
		t.Errorf("first delta after Reset = %g, expected 0", dt)
	}
}
