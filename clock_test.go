package sway

import (
	"testing"
	"time"
)

func TestFrameClockAfterFiresOnce(t *testing.T) {
	c := NewFrameClock()
	var fired int
	tm := c.After(100*time.Millisecond, func() { fired++ })

	c.Advance(99 * time.Millisecond)
	if fired != 0 {
		t.Fatalf("fired early: %d", fired)
	}
	c.Advance(1 * time.Millisecond)
	if fired != 1 {
		t.Fatalf("fired = %d, want 1", fired)
	}
	c.Advance(time.Second)
	if fired != 1 {
		t.Errorf("one-shot fired again: %d", fired)
	}
	if tm.Active() {
		t.Error("one-shot still active after firing")
	}
	if c.Pending() != 0 {
		t.Errorf("Pending = %d, want 0", c.Pending())
	}
}

func TestFrameClockEveryCatchesUp(t *testing.T) {
	c := NewFrameClock()
	var at []time.Duration
	c.Every(100*time.Millisecond, func() { at = append(at, c.Now()) })

	c.Advance(350 * time.Millisecond)
	want := []time.Duration{100 * time.Millisecond, 200 * time.Millisecond, 300 * time.Millisecond}
	if len(at) != len(want) {
		t.Fatalf("fired %d times, want %d", len(at), len(want))
	}
	for i := range want {
		if at[i] != want[i] {
			t.Errorf("fire %d at %v, want %v", i, at[i], want[i])
		}
	}
	if c.Now() != 350*time.Millisecond {
		t.Errorf("Now = %v, want 350ms", c.Now())
	}
}

func TestFrameClockOrder(t *testing.T) {
	c := NewFrameClock()
	var order []string
	c.After(20*time.Millisecond, func() { order = append(order, "b") })
	c.After(10*time.Millisecond, func() { order = append(order, "a") })
	c.After(20*time.Millisecond, func() { order = append(order, "c") })
	c.OnTick(func(time.Duration) { order = append(order, "tick") })

	c.Advance(30 * time.Millisecond)
	want := []string{"a", "b", "c", "tick"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestTimerStopInsideCallback(t *testing.T) {
	c := NewFrameClock()
	var fired int
	var tm *Timer
	tm = c.Every(10*time.Millisecond, func() {
		fired++
		tm.Stop()
	})
	c.Advance(100 * time.Millisecond)
	if fired != 1 {
		t.Errorf("fired = %d, want 1", fired)
	}
	tm.Stop()
}

func TestTimerRemaining(t *testing.T) {
	c := NewFrameClock()
	tm := c.Every(2800*time.Millisecond, func() {})
	c.Advance(1000 * time.Millisecond)
	if got := tm.Remaining(); got != 1800*time.Millisecond {
		t.Errorf("Remaining = %v, want 1800ms", got)
	}
	tm.Stop()
	if got := tm.Remaining(); got != 0 {
		t.Errorf("Remaining after Stop = %v, want 0", got)
	}
}

func TestNilTimerSafe(t *testing.T) {
	var tm *Timer
	tm.Stop()
	if tm.Active() {
		t.Error("nil timer reports active")
	}
	if tm.Remaining() != 0 {
		t.Error("nil timer reports remaining time")
	}
}

func TestOnTickSubscribedDuringAdvance(t *testing.T) {
	c := NewFrameClock()
	var late int
	c.After(5*time.Millisecond, func() {
		c.OnTick(func(time.Duration) { late++ })
	})
	c.Advance(frame)
	if late != 1 {
		// Timers fire before ticks, so the new subscription runs this frame.
		t.Fatalf("late = %d, want 1", late)
	}
	c.Advance(frame)
	if late != 2 {
		t.Errorf("late = %d, want 2", late)
	}
}

func TestTickCancelledByEarlierTick(t *testing.T) {
	c := NewFrameClock()
	var second *Timer
	var ran bool
	c.OnTick(func(time.Duration) { second.Stop() })
	second = c.OnTick(func(time.Duration) { ran = true })
	c.Advance(frame)
	if ran {
		t.Error("tick cancelled earlier in the same advance still ran")
	}
}

func TestZeroIntervalClamped(t *testing.T) {
	c := NewFrameClock()
	var fired int
	c.Every(0, func() { fired++ })
	c.Advance(10 * time.Millisecond)
	if fired != 10 {
		t.Errorf("fired = %d, want 10", fired)
	}
}
