package sway

import (
	"math"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// EaseOutExpo is the page's default curve: a fast start that settles softly,
// the closest gween curve to cubic-bezier(0.16, 1, 0.3, 1).
var EaseOutExpo ease.TweenFunc = ease.OutExpo

// TweenSpec describes a fixed-duration tween.
type TweenSpec struct {
	From, To float64
	Duration time.Duration
	// Easing defaults to EaseOutExpo when nil.
	Easing ease.TweenFunc
	// OnSample receives every emitted value, the final one included.
	OnSample func(v float64)
	// OnDone fires once after the final sample. It does not fire on Cancel.
	OnDone func()
}

// TweenEngine starts tweens on a Scheduler. With reduced motion enabled every
// tween collapses to its final value at start and no timer is created.
//
// There is no global animation manager; each view owns its engine.
type TweenEngine struct {
	sched         Scheduler
	reducedMotion bool
}

// NewTweenEngine creates an engine that samples tweens on sched's ticks.
func NewTweenEngine(sched Scheduler, reducedMotion bool) *TweenEngine {
	return &TweenEngine{sched: sched, reducedMotion: reducedMotion}
}

// ReducedMotion reports whether tweens collapse to their final value.
func (e *TweenEngine) ReducedMotion() bool {
	return e.reducedMotion
}

// Scheduler returns the scheduler tweens are sampled on.
func (e *TweenEngine) Scheduler() Scheduler {
	return e.sched
}

// Start begins a tween from -> to over duration with the given easing.
func (e *TweenEngine) Start(from, to float64, duration time.Duration, fn ease.TweenFunc) *Tween {
	return e.Run(TweenSpec{From: from, To: to, Duration: duration, Easing: fn})
}

// Run begins a tween described by spec. The first sample is emitted on the
// next tick; a zero duration or reduced motion emits the final value
// immediately.
func (e *TweenEngine) Run(spec TweenSpec) *Tween {
	fn := spec.Easing
	if fn == nil {
		fn = EaseOutExpo
	}
	t := &Tween{
		from:     spec.From,
		to:       spec.To,
		value:    spec.From,
		onSample: spec.OnSample,
		onDone:   spec.OnDone,
	}
	if e.reducedMotion || spec.Duration <= 0 {
		t.finish()
		return t
	}
	t.tw = gween.New(float32(spec.From), float32(spec.To), float32(spec.Duration.Seconds()), fn)
	t.timer = e.sched.OnTick(t.update)
	return t
}

// Tween is a handle to one running tween.
type Tween struct {
	tw        *gween.Tween
	from, to  float64
	value     float64
	timer     *Timer
	finished  bool
	cancelled bool
	onSample  func(float64)
	onDone    func()
}

// update advances the tween by one tick.
func (t *Tween) update(dt time.Duration) {
	if t.finished || t.cancelled {
		return
	}
	val, done := t.tw.Update(float32(dt.Seconds()))
	if done {
		t.finish()
		return
	}
	// Out-expo and the back/elastic curves overshoot; samples stay inside
	// the from..to span.
	t.value = clamp(float64(val), min(t.from, t.to), max(t.from, t.to))
	if t.onSample != nil {
		t.onSample(t.value)
	}
}

// finish lands exactly on the target and releases the tick subscription.
func (t *Tween) finish() {
	t.timer.Stop()
	t.finished = true
	t.value = t.to
	if t.onSample != nil {
		t.onSample(t.value)
	}
	if t.onDone != nil {
		t.onDone()
	}
}

// Cancel stops emission immediately. The last emitted value stays in place.
// Cancelling a nil tween does nothing.
func (t *Tween) Cancel() {
	if t == nil || t.finished || t.cancelled {
		return
	}
	t.cancelled = true
	t.timer.Stop()
}

// Value returns the most recent sample.
func (t *Tween) Value() float64 {
	return t.value
}

// Rounded returns the most recent sample rounded to the nearest integer.
// Rounding never reorders samples, so a monotonic run stays monotonic.
func (t *Tween) Rounded() int {
	return int(math.Round(t.value))
}

// Target returns the value the tween ends on.
func (t *Tween) Target() float64 {
	return t.to
}

// Finished reports whether the tween reached its target.
func (t *Tween) Finished() bool {
	return t.finished
}

// Cancelled reports whether the tween was stopped before finishing.
func (t *Tween) Cancelled() bool {
	return t.cancelled
}

// Running reports whether the tween will emit further samples.
func (t *Tween) Running() bool {
	return !t.finished && !t.cancelled
}

// FieldTarget pairs a float64 field with the value a TweenGroup drives it to.
type FieldTarget struct {
	Field *float64
	To    float64
}

// TweenGroup animates up to 4 float64 fields simultaneously with a shared
// duration and easing. Values are written straight into the fields.
type TweenGroup struct {
	tweens [4]*Tween
	count  int
	Done   bool
}

// Group starts a TweenGroup from the fields' current values. Targets beyond
// the fourth are ignored.
func (e *TweenEngine) Group(duration time.Duration, fn ease.TweenFunc, targets ...FieldTarget) *TweenGroup {
	g := &TweenGroup{}
	for _, tgt := range targets {
		if g.count == len(g.tweens) {
			break
		}
		field := tgt.Field
		g.tweens[g.count] = e.Run(TweenSpec{
			From:     *field,
			To:       tgt.To,
			Duration: duration,
			Easing:   fn,
			OnSample: func(v float64) { *field = v },
			OnDone:   g.checkDone,
		})
		g.count++
	}
	g.checkDone()
	return g
}

func (g *TweenGroup) checkDone() {
	for i := 0; i < g.count; i++ {
		if g.tweens[i] == nil || !g.tweens[i].Finished() {
			return
		}
	}
	g.Done = true
}

// Cancel stops every tween in the group, leaving fields at their last values.
func (g *TweenGroup) Cancel() {
	for i := 0; i < g.count; i++ {
		g.tweens[i].Cancel()
	}
}
