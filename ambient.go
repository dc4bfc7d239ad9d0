package sway

import (
	"log/slog"
	"time"

	"github.com/tanema/gween/ease"
)

// MotionKind selects how a FieldMotion animates its particles.
type MotionKind uint8

const (
	// MotionFloat lifts each particle and dims it toward Dim at the peak,
	// then settles back (the hero and footer dots).
	MotionFloat MotionKind = iota
	// MotionFall moves each particle down through the container while it
	// drifts sideways, restarting from the top (snowfall).
	MotionFall
	// MotionBob lifts each particle and brightens it by Glow at the peak
	// (the gamepad pattern).
	MotionBob
)

// Fall travel in percent of container height: flakes start above the top
// edge and leave below the bottom one.
const (
	fallStart  = -12.0
	fallTravel = 120.0
)

// FieldMotionConfig tunes a FieldMotion.
type FieldMotionConfig struct {
	Kind MotionKind
	// Lift is the peak upward travel in pixels (MotionFloat, MotionBob).
	Lift float64
	// Dim is the opacity factor at the peak (MotionFloat, MotionFall).
	Dim float64
	// Glow is the opacity added at the peak (MotionBob).
	Glow float64
	// Logger receives lifecycle messages. Nil discards them.
	Logger *slog.Logger
}

// ParticleFrame is a particle as it should be drawn this frame.
type ParticleFrame struct {
	Particle
	// LiftY is the vertical offset in pixels; negative is up.
	LiftY float64
	// DriftX is the horizontal offset in pixels.
	DriftX float64
	// FallY is the vertical offset in percent of container height.
	FallY float64
	// Alpha is the opacity to draw with.
	Alpha float64
}

// FieldMotion runs one looping tween per particle of a field. The whole
// field shares a single tick subscription, cancelled by Dispose.
type FieldMotion struct {
	sched    Scheduler
	field    ParticleField
	cfg      FieldMotionConfig
	loops    []*Loop
	frames   []ParticleFrame
	timer    *Timer
	reduced  bool
	disposed bool
	log      *slog.Logger
}

// NewFieldMotion prepares the loops for field. Nothing moves until Start.
func NewFieldMotion(sched Scheduler, field ParticleField, cfg FieldMotionConfig, reducedMotion bool) *FieldMotion {
	m := &FieldMotion{
		sched:   sched,
		field:   field,
		cfg:     cfg,
		reduced: reducedMotion,
		log:     loggerOrDiscard(cfg.Logger),
		loops:   make([]*Loop, field.Len()),
		frames:  make([]ParticleFrame, field.Len()),
	}
	mode, fn := LoopPingPong, ease.TweenFunc(ease.InOutSine)
	if cfg.Kind == MotionFall {
		mode, fn = LoopRestart, ease.Linear
	}
	for i := range m.loops {
		p := field.At(i)
		m.loops[i] = NewLoop(p.Period, p.Phase, mode, fn)
		m.frames[i] = ParticleFrame{Particle: p, Alpha: p.Opacity}
		if cfg.Kind == MotionFall {
			m.frames[i].FallY = fallStart
		}
	}
	return m
}

// Start subscribes to the scheduler. With reduced motion the field stays on
// its static layout and no subscription is made.
func (m *FieldMotion) Start() {
	if m.disposed || m.reduced || m.timer.Active() {
		return
	}
	m.timer = m.sched.OnTick(m.update)
	m.log.Debug("field motion started", slog.Int("particles", len(m.loops)), slog.Int("kind", int(m.cfg.Kind)))
}

func (m *FieldMotion) update(dt time.Duration) {
	for i, l := range m.loops {
		m.apply(i, l.Update(dt))
	}
}

// apply derives the drawable frame for particle i from loop progress p.
func (m *FieldMotion) apply(i int, p float64) {
	f := &m.frames[i]
	o := f.Opacity
	switch m.cfg.Kind {
	case MotionFall:
		f.FallY = fallStart + fallTravel*p
		f.DriftX = f.Drift * p
		tri := 1 - abs(2*p-1)
		f.Alpha = o * lerp(1, m.cfg.Dim, tri)
	case MotionBob:
		f.LiftY = -m.cfg.Lift * p
		f.Alpha = clamp(o+m.cfg.Glow*p, 0, 1)
	default:
		f.LiftY = -m.cfg.Lift * p
		f.Alpha = o * lerp(1, m.cfg.Dim, p)
	}
}

// Frames returns the current frame of every particle. The slice is owned by
// the FieldMotion and must not be modified.
func (m *FieldMotion) Frames() []ParticleFrame {
	return m.frames
}

// Field returns the animated field.
func (m *FieldMotion) Field() ParticleField {
	return m.field
}

// Running reports whether the field holds a tick subscription.
func (m *FieldMotion) Running() bool {
	return m.timer.Active()
}

// Dispose cancels the tick subscription. Frames stay where they are.
func (m *FieldMotion) Dispose() {
	if m.disposed {
		return
	}
	m.disposed = true
	m.timer.Stop()
	m.log.Debug("field motion disposed", slog.Int("particles", len(m.loops)))
}

// Motion presets matching the landing page.
var (
	DotMotion     = FieldMotionConfig{Kind: MotionFloat, Lift: 10, Dim: 0.55}
	SnowMotion    = FieldMotionConfig{Kind: MotionFall, Dim: 0.7}
	GamepadMotion = FieldMotionConfig{Kind: MotionBob, Lift: 14, Glow: 0.06}
)

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// Pulse is a ping-pong Loop remapped onto a value range: the breathing glow
// behind a section, or the bob of a floating chip.
type Pulse struct {
	loop *Loop
	r    Range
}

// NewPulse creates a pulse that swings across r once per period.
func NewPulse(period time.Duration, r Range) *Pulse {
	return &Pulse{loop: NewLoop(period, 0, LoopPingPong, ease.InOutSine), r: r}
}

// Update advances the pulse by dt and returns its value.
func (p *Pulse) Update(dt time.Duration) float64 {
	p.loop.Update(dt)
	return p.Value()
}

// Value returns the current value.
func (p *Pulse) Value() float64 {
	return lerp(p.r.From, p.r.To, p.loop.Value())
}

// Pulse presets matching the landing page.
const (
	heroGlowPeriod    = 7 * time.Second
	featureGlowPeriod = 8 * time.Second
	footerGlowPeriod  = 7 * time.Second
	chipBobPeriod     = 3500 * time.Millisecond
)

var (
	heroGlowRange    = Range{From: 0.6, To: 0.9}
	featureGlowRange = Range{From: 0.55, To: 0.85}
	footerGlowRange  = Range{From: 0.55, To: 0.85}
	chipBobRange     = Range{From: 0, To: -6}
)
