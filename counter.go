package sway

import (
	"math"
	"strconv"
	"time"

	"github.com/tanema/gween/ease"
)

// DefaultCounterDuration is how long the hero stats take to count up.
const DefaultCounterDuration = 1200 * time.Millisecond

// CounterSpec describes a numeric count-up.
type CounterSpec struct {
	From, To float64
	Duration time.Duration
	// Easing defaults to EaseOutExpo when nil.
	Easing ease.TweenFunc
	// Suffix is appended by Text, e.g. "%".
	Suffix string
}

// Counter is a live integer display driven by a tween. Each sample is
// rounded to the nearest integer and clamped to the current run's range.
type Counter struct {
	engine   *TweenEngine
	spec     CounterSpec
	run      *Tween
	lo, hi   float64
	value    int
	disposed bool

	// OnChange, when set, fires whenever the displayed integer changes.
	OnChange func(v int)
}

// NewCounter creates a counter showing spec.From and starts the run.
func NewCounter(engine *TweenEngine, spec CounterSpec) *Counter {
	if spec.Duration == 0 {
		spec.Duration = DefaultCounterDuration
	}
	c := &Counter{engine: engine, spec: spec}
	c.value = roundInt(spec.From)
	c.start(spec.From, spec.To)
	return c
}

func (c *Counter) start(from, to float64) {
	c.lo, c.hi = from, to
	if c.lo > c.hi {
		c.lo, c.hi = c.hi, c.lo
	}
	c.run = c.engine.Run(TweenSpec{
		From:     from,
		To:       to,
		Duration: c.spec.Duration,
		Easing:   c.spec.Easing,
		OnSample: c.sample,
	})
}

func (c *Counter) sample(v float64) {
	next := roundInt(clamp(v, c.lo, c.hi))
	if next == c.value {
		return
	}
	c.value = next
	if c.OnChange != nil {
		c.OnChange(next)
	}
}

// Retarget cancels the live run and counts from the displayed value to to.
func (c *Counter) Retarget(to float64) {
	if c.disposed {
		return
	}
	c.run.Cancel()
	c.spec.To = to
	c.start(float64(c.value), to)
}

// Value returns the displayed integer.
func (c *Counter) Value() int {
	return c.value
}

// Text returns the displayed integer followed by the suffix.
func (c *Counter) Text() string {
	return strconv.Itoa(c.value) + c.spec.Suffix
}

// Done reports whether the current run reached its target.
func (c *Counter) Done() bool {
	return c.run.Finished()
}

// Dispose cancels the live run. The displayed value stays where it is.
func (c *Counter) Dispose() {
	c.disposed = true
	c.run.Cancel()
}

func roundInt(v float64) int {
	return int(math.Round(v))
}
