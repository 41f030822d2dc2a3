package core

import "testing"

func TestInputFrameClearKeepsHeld(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionPause)
	f.SetHeld(ActionThrust, true)

	f.Clear()

	if f.Has(ActionPause) {
		t.Error("Clear should drop edge-triggered actions")
	}
	if !f.IsHeld(ActionThrust) {
		t.Error("Clear should keep held controls")
	}

	f.SetHeld(ActionThrust, false)
	if f.IsHeld(ActionThrust) {
		t.Error("SetHeld(false) should release the control")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionThrust) || f.IsHeld(ActionThrust) {
		t.Error("zero frame should report nothing")
	}
	f.Set(ActionRestart)
	f.SetHeld(ActionThrust, true)
	if !f.Has(ActionRestart) || !f.IsHeld(ActionThrust) {
		t.Error("zero frame should lazily allocate its maps")
	}
}

func TestHoldLatchWindow(t *testing.T) {
	h := NewHoldLatch(3)
	if h.Down() {
		t.Fatal("new latch should be up")
	}

	h.Press()
	for i := 0; i < 3; i++ {
		if !h.Down() {
			t.Fatalf("latch should be down on tick %d", i)
		}
		h.Tick()
	}
	if h.Down() {
		t.Error("latch should release after its window")
	}
}

func TestHoldLatchRepeatRearms(t *testing.T) {
	h := NewHoldLatch(2)
	h.Press()
	h.Tick()
	h.Press() // key repeat
	h.Tick()
	if !h.Down() {
		t.Error("repeat should extend the hold")
	}
}

func TestHoldLatchPin(t *testing.T) {
	h := NewHoldLatch(1)
	h.Pin()
	for i := 0; i < 100; i++ {
		h.Tick()
	}
	if !h.Down() {
		t.Error("pinned latch should stay down until released")
	}
	h.Release()
	if h.Down() {
		t.Error("Release should drop the latch")
	}
}
