package sway

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// LoopMode selects how a Loop repeats.
type LoopMode uint8

const (
	LoopPingPong LoopMode = iota // 0 -> 1 -> 0, each half taking period/2
	LoopRestart                  // 0 -> 1 over period, then jump back to 0
)

// Loop is an endless tween of a normalized progress value in [0, 1]. Loops
// are advanced by their owner (FieldMotion, a chip bob) rather than holding
// their own tick subscription, so a field of dozens of particles costs one
// subscription.
type Loop struct {
	period time.Duration
	delay  time.Duration
	mode   LoopMode
	fn     ease.TweenFunc
	tw     *gween.Tween
	rising bool
	value  float64
}

// NewLoop creates a loop that starts after delay. A nil easing means linear.
func NewLoop(period, delay time.Duration, mode LoopMode, fn ease.TweenFunc) *Loop {
	if fn == nil {
		fn = ease.Linear
	}
	l := &Loop{period: period, delay: delay, mode: mode, fn: fn}
	l.segment(0, 1)
	return l
}

func (l *Loop) segment(from, to float32) {
	d := l.period
	if l.mode == LoopPingPong {
		d /= 2
	}
	l.rising = to > from
	l.tw = gween.New(from, to, float32(d.Seconds()), l.fn)
}

// Update advances the loop by dt and returns the new progress.
func (l *Loop) Update(dt time.Duration) float64 {
	if l.period <= 0 {
		return l.value
	}
	if l.delay > 0 {
		if dt <= l.delay {
			l.delay -= dt
			return l.value
		}
		dt -= l.delay
		l.delay = 0
	}

	val, done := l.tw.Update(float32(dt.Seconds()))
	for done {
		over := l.tw.Overflow
		l.next()
		if over <= 0 {
			break
		}
		// Time past the boundary runs on the next segment.
		val, done = l.tw.Update(over)
	}
	l.value = float64(val)
	return l.value
}

// next starts the segment that follows the one just finished.
func (l *Loop) next() {
	if l.mode == LoopPingPong && l.rising {
		l.segment(1, 0)
		return
	}
	l.segment(0, 1)
}

// Value returns the current progress.
func (l *Loop) Value() float64 {
	return l.value
}

// Waiting reports whether the loop is still inside its start delay.
func (l *Loop) Waiting() bool {
	return l.delay > 0
}
