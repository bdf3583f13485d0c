package game

import "time"

// Clock converts an arbitrary-rate render callback into fixed simulation
// ticks. Timestamps are passed in by the caller, so the clock runs the
// same against the wall clock or synthetic time in tests.
type Clock struct {
	interval time.Duration
	last     time.Time
	stopped  bool
}

func NewClock(interval time.Duration, now time.Time) *Clock {
	return &Clock{interval: interval, last: now}
}

// Advance reports whether a simulation step is due at now. At most one
// step fires per call: when the host falls behind, the game slows down
// instead of jumping several cells in one frame. The fractional overshoot
// carries into the next baseline so tick timing does not drift.
func (c *Clock) Advance(now time.Time) bool {
	if c.stopped {
		return false
	}
	elapsed := now.Sub(c.last)
	if elapsed < c.interval {
		return false
	}
	c.last = now.Add(-(elapsed % c.interval))
	return true
}

// Stop prevents any further ticks from firing.
func (c *Clock) Stop() {
	c.stopped = true
}

func (c *Clock) Stopped() bool {
	return c.stopped
}
