package sway

import "time"

// minInterval bounds repeating timers so a zero interval cannot spin Advance.
const minInterval = time.Millisecond

// Scheduler is the repeating-tick capability every timer-backed effect is
// built on. Components take a Scheduler instead of reading the wall clock, so
// the same code runs under the ebiten game loop and under a test that
// advances a FrameClock by hand.
type Scheduler interface {
	// Every calls fn each time interval elapses.
	Every(interval time.Duration, fn func()) *Timer
	// Schedule calls fn once after first, then every interval.
	Schedule(first, interval time.Duration, fn func()) *Timer
	// After calls fn once after d.
	After(d time.Duration, fn func()) *Timer
	// OnTick calls fn once per clock advance with the elapsed time.
	OnTick(fn func(dt time.Duration)) *Timer
}

type timerKind uint8

const (
	timerOnce timerKind = iota
	timerRepeat
	timerTick
)

// Timer is a handle to a scheduled callback. Stopping it is final; a stopped
// timer never fires again.
type Timer struct {
	clock    *FrameClock
	id       uint64
	kind     timerKind
	due      time.Duration
	interval time.Duration
	fn       func()
	tick     func(dt time.Duration)
	stopped  bool
}

// Stop cancels the timer. Safe to call more than once and from inside the
// timer's own callback.
func (t *Timer) Stop() {
	if t == nil || t.stopped {
		return
	}
	t.stopped = true
	t.clock.remove(t)
}

// Active reports whether the timer can still fire.
func (t *Timer) Active() bool {
	return t != nil && !t.stopped
}

// Remaining returns the time until the timer next fires. Tick timers and
// stopped timers report zero.
func (t *Timer) Remaining() time.Duration {
	if !t.Active() || t.kind == timerTick {
		return 0
	}
	if d := t.due - t.clock.now; d > 0 {
		return d
	}
	return 0
}

// FrameClock is a deterministic Scheduler driven by explicit Advance calls.
// It is not safe for concurrent use; like the rest of the package it expects
// to be driven from a single update loop.
type FrameClock struct {
	now     time.Duration
	nextID  uint64
	timers  []*Timer
	ticks   []*Timer
	tickBuf []*Timer
}

// NewFrameClock creates a clock at time zero with no timers.
func NewFrameClock() *FrameClock {
	return &FrameClock{}
}

// Now returns the time elapsed since the clock was created.
func (c *FrameClock) Now() time.Duration {
	return c.now
}

// Pending returns the number of live timers, tick subscriptions included.
func (c *FrameClock) Pending() int {
	return len(c.timers) + len(c.ticks)
}

// Every implements Scheduler.
func (c *FrameClock) Every(interval time.Duration, fn func()) *Timer {
	if interval < minInterval {
		interval = minInterval
	}
	return c.Schedule(interval, interval, fn)
}

// Schedule implements Scheduler.
func (c *FrameClock) Schedule(first, interval time.Duration, fn func()) *Timer {
	if interval < minInterval {
		interval = minInterval
	}
	if first < 0 {
		first = 0
	}
	t := c.newTimer(timerRepeat)
	t.due = c.now + first
	t.interval = interval
	t.fn = fn
	c.timers = append(c.timers, t)
	return t
}

// After implements Scheduler.
func (c *FrameClock) After(d time.Duration, fn func()) *Timer {
	if d < 0 {
		d = 0
	}
	t := c.newTimer(timerOnce)
	t.due = c.now + d
	t.fn = fn
	c.timers = append(c.timers, t)
	return t
}

// OnTick implements Scheduler. A subscription made from a timer callback
// runs in the same Advance; one made from a tick callback waits for the next.
func (c *FrameClock) OnTick(fn func(dt time.Duration)) *Timer {
	t := c.newTimer(timerTick)
	t.tick = fn
	c.ticks = append(c.ticks, t)
	return t
}

func (c *FrameClock) newTimer(kind timerKind) *Timer {
	c.nextID++
	return &Timer{clock: c, id: c.nextID, kind: kind}
}

// Advance moves the clock forward by dt. Due timers fire in due-time order
// (creation order on ties) with Now set to their due time; tick
// subscriptions then run once with dt.
func (c *FrameClock) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	target := c.now + dt

	for {
		t := c.nextDue(target)
		if t == nil {
			break
		}
		c.now = t.due
		if t.kind == timerRepeat {
			t.due += t.interval
		} else {
			t.Stop()
		}
		t.fn()
	}
	c.now = target

	// Snapshot so callbacks may subscribe or cancel while we iterate.
	c.tickBuf = append(c.tickBuf[:0], c.ticks...)
	for i, t := range c.tickBuf {
		if !t.stopped {
			t.tick(dt)
		}
		c.tickBuf[i] = nil
	}
}

// nextDue returns the earliest live timer due at or before target.
func (c *FrameClock) nextDue(target time.Duration) *Timer {
	var best *Timer
	for _, t := range c.timers {
		if t.due > target {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.id < best.id) {
			best = t
		}
	}
	return best
}

func (c *FrameClock) remove(t *Timer) {
	list := &c.timers
	if t.kind == timerTick {
		list = &c.ticks
	}
	s := *list
	for i := range s {
		if s[i] == t {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = nil
			*list = s[:len(s)-1]
			return
		}
	}
}
