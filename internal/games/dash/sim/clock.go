package sim

import "time"

// Clock supplies the monotonic time basis for timed effects.
// Readings are durations since an arbitrary origin and must never go backwards.
type Clock interface {
	Now() time.Duration
}

// ManualClock is a Clock moved explicitly by its owner.
type ManualClock struct {
	now time.Duration
}

// Now returns the current reading.
func (c *ManualClock) Now() time.Duration {
	return c.now
}

// Set moves the clock to t. Earlier readings are ignored.
func (c *ManualClock) Set(t time.Duration) {
	if t > c.now {
		c.now = t
	}
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	if d > 0 {
		c.now += d
	}
}

// TickClock derives time from a frame count at a fixed tick rate, so a run
// replays identically regardless of wall-clock jitter.
type TickClock struct {
	ticks   uint64
	perTick time.Duration
}

// NewTickClock creates a clock advancing 1/tickRate seconds per Tick.
func NewTickClock(tickRate int) *TickClock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &TickClock{perTick: time.Second / time.Duration(tickRate)}
}

// Tick advances the clock by one frame.
func (c *TickClock) Tick() {
	c.ticks++
}

// Reset rewinds the clock to zero.
func (c *TickClock) Reset() {
	c.ticks = 0
}

// Now returns the elapsed time for the ticks counted so far.
func (c *TickClock) Now() time.Duration {
	return time.Duration(c.ticks) * c.perTick
}

// SystemClock reads the process monotonic clock.
type SystemClock struct {
	start time.Time
}

// NewSystemClock creates a clock whose origin is the moment of the call.
func NewSystemClock() SystemClock {
	return SystemClock{start: time.Now()}
}

// Now returns the time elapsed since the clock was created.
func (c SystemClock) Now() time.Duration {
	return time.Since(c.start)
}
