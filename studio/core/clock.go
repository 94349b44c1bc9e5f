package core

import "time"

type Clock struct {
	startTime time.Time
	lapTime   time.Time
}

func NewClock() *Clock {
	return &Clock{}
}

// Starts the provided clock. Resets elapsed time and the lap marker.
func (c *Clock) Start() {
	c.startTime = time.Now()
	c.lapTime = c.startTime
}

// Elapsed time since Start. Zero on non-started clocks.
func (c *Clock) Elapsed() time.Duration {
	if c.startTime.IsZero() {
		return 0
	}
	return time.Since(c.startTime)
}

// Lap returns the time since the previous lap (or Start) and moves the lap
// marker. Has no effect on non-started clocks.
func (c *Clock) Lap() time.Duration {
	if c.startTime.IsZero() {
		return 0
	}
	now := time.Now()
	d := now.Sub(c.lapTime)
	c.lapTime = now
	return d
}
