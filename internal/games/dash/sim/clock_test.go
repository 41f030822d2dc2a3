package sim

import (
	"testing"
	"time"
)

func TestManualClockNeverGoesBack(t *testing.T) {
	var c ManualClock
	c.Advance(2 * time.Second)
	c.Set(time.Second)
	if c.Now() != 2*time.Second {
		t.Errorf("Now = %v, want 2s", c.Now())
	}
	c.Advance(-time.Second)
	if c.Now() != 2*time.Second {
		t.Errorf("negative Advance moved clock to %v", c.Now())
	}
	c.Set(3 * time.Second)
	if c.Now() != 3*time.Second {
		t.Errorf("Now = %v, want 3s", c.Now())
	}
}

func TestTickClock(t *testing.T) {
	c := NewTickClock(50)
	for range 100 {
		c.Tick()
	}
	if c.Now() != 2*time.Second {
		t.Errorf("Now after 100 ticks at 50Hz = %v, want 2s", c.Now())
	}
	c.Reset()
	if c.Now() != 0 {
		t.Errorf("Now after Reset = %v", c.Now())
	}

	if NewTickClock(0).perTick != time.Second/60 {
		t.Error("zero tick rate should default to 60Hz")
	}
}

func TestSystemClockMonotonic(t *testing.T) {
	c := NewSystemClock()
	a := c.Now()
	b := c.Now()
	if b < a || a < 0 {
		t.Errorf("readings went backwards: %v then %v", a, b)
	}
}
