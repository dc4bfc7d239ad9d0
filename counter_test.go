package sway

import (
	"testing"
	"time"
)

func TestCounterCountsToTarget(t *testing.T) {
	c := NewFrameClock()
	e := NewTweenEngine(c, false)

	var seen []int
	ctr := NewCounter(e, CounterSpec{From: 0, To: 99, Duration: 1200 * time.Millisecond, Suffix: "%"})
	ctr.OnChange = func(v int) { seen = append(seen, v) }

	advanceFor(c, 1200*time.Millisecond)
	c.Advance(frame)

	if !ctr.Done() {
		t.Fatal("counter not done after its duration")
	}
	if ctr.Value() != 99 || ctr.Text() != "99%" {
		t.Errorf("Value = %d Text = %q, want 99 and 99%%", ctr.Value(), ctr.Text())
	}
	if len(seen) == 0 || seen[len(seen)-1] != 99 {
		t.Fatalf("emitted %v, want to end on 99", seen)
	}
	prev := 0
	for _, v := range seen {
		if v < 0 || v > 99 {
			t.Errorf("emitted %d outside [0, 99]", v)
		}
		if v < prev {
			t.Errorf("emitted %d after %d", v, prev)
		}
		prev = v
	}
}

func TestCounterDefaultDuration(t *testing.T) {
	c := NewFrameClock()
	e := NewTweenEngine(c, false)
	ctr := NewCounter(e, CounterSpec{To: 314})

	advanceFor(c, 1100*time.Millisecond)
	if ctr.Done() {
		t.Error("done before the default 1200ms")
	}
	advanceFor(c, 200*time.Millisecond)
	if !ctr.Done() || ctr.Value() != 314 {
		t.Errorf("Value = %d done = %v, want 314 done", ctr.Value(), ctr.Done())
	}
}

func TestCounterRetarget(t *testing.T) {
	c := NewFrameClock()
	e := NewTweenEngine(c, false)
	ctr := NewCounter(e, CounterSpec{To: 100, Duration: time.Second})

	c.Advance(100 * time.Millisecond)
	mid := ctr.Value()
	if mid <= 0 || mid >= 100 {
		t.Fatalf("mid value = %d", mid)
	}

	ctr.Retarget(10)
	c.Advance(frame)
	if ctr.Value() > mid {
		t.Errorf("retargeted down from %d but rose to %d", mid, ctr.Value())
	}
	advanceFor(c, 1100*time.Millisecond)
	if ctr.Value() != 10 {
		t.Errorf("Value = %d, want 10", ctr.Value())
	}
	if c.Pending() != 0 {
		t.Errorf("Pending = %d, retarget leaked a tween", c.Pending())
	}
}

func TestCounterReducedMotion(t *testing.T) {
	c := NewFrameClock()
	e := NewTweenEngine(c, true)
	ctr := NewCounter(e, CounterSpec{To: 6})
	if ctr.Value() != 6 || !ctr.Done() {
		t.Errorf("Value = %d, want 6 immediately", ctr.Value())
	}
}

func TestCounterDispose(t *testing.T) {
	c := NewFrameClock()
	e := NewTweenEngine(c, false)
	ctr := NewCounter(e, CounterSpec{To: 100})
	c.Advance(100 * time.Millisecond)
	ctr.Dispose()
	held := ctr.Value()
	advanceFor(c, 2*time.Second)
	ctr.Retarget(5)
	if ctr.Value() != held || c.Pending() != 0 {
		t.Errorf("disposed counter moved to %d", ctr.Value())
	}
}
