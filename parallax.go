package sway

// unitRange is the domain of every parallax offset component.
var unitRange = Range{From: -1, To: 1}

// ParallaxConfig holds the design constants of a tilt effect.
type ParallaxConfig struct {
	// RotateX is the output range for the vertical offset, in degrees.
	// The default [6, -6] tilts the top edge away when the pointer is high.
	RotateX Range
	// RotateY is the output range for the horizontal offset, in degrees.
	RotateY Range
	// ChipTravel scales the smoothed offset into a pixel offset for
	// decorations that drift with the pointer.
	ChipTravel float64
	// Stiffness of both smoothing springs. Zero means DefaultStiffness.
	Stiffness float64
}

// DefaultParallaxConfig returns the hero card's tilt constants.
func DefaultParallaxConfig() ParallaxConfig {
	return ParallaxConfig{
		RotateX:    Range{From: 6, To: -6},
		RotateY:    Range{From: -10, To: 10},
		ChipTravel: 10,
		Stiffness:  DefaultStiffness,
	}
}

// Tilt is a rotation in degrees about the X and Y axes.
type Tilt struct {
	RotateX, RotateY float64
}

// ParallaxState is the render snapshot of a Parallax.
type ParallaxState struct {
	Raw      Vec2
	Smoothed Vec2
	Tilt     Tilt
}

// Parallax converts pointer positions over a bounding box into a smoothed
// tilt. Each instance owns its springs; nothing is shared between cards.
type Parallax struct {
	cfg  ParallaxConfig
	raw  Vec2
	x, y *Spring
}

// NewParallax creates a tracker at rest. With reducedMotion the smoothed
// offset follows the raw offset without easing.
func NewParallax(sched Scheduler, cfg ParallaxConfig, reducedMotion bool) *Parallax {
	return &Parallax{
		cfg: cfg,
		x:   NewSpring(sched, cfg.Stiffness, reducedMotion),
		y:   NewSpring(sched, cfg.Stiffness, reducedMotion),
	}
}

// RawOffset maps a pointer position to [-1, 1] on each axis relative to box.
// A degenerate box yields (0, 0).
func RawOffset(px, py float64, box Rect) Vec2 {
	if box.Degenerate() {
		return Vec2{}
	}
	ox := ((px-box.X)/box.Width - 0.5) * 2
	oy := ((py-box.Y)/box.Height - 0.5) * 2
	return Vec2{X: clamp(ox, -1, 1), Y: clamp(oy, -1, 1)}
}

// PointerMove records a pointer sample and retargets the springs.
func (p *Parallax) PointerMove(px, py float64, box Rect) {
	p.retarget(RawOffset(px, py, box))
}

// PointerLeave eases the tilt back to rest.
func (p *Parallax) PointerLeave() {
	p.retarget(Vec2{})
}

func (p *Parallax) retarget(raw Vec2) {
	p.raw = raw
	p.x.SetTarget(raw.X)
	p.y.SetTarget(raw.Y)
}

// Raw returns the last raw offset.
func (p *Parallax) Raw() Vec2 {
	return p.raw
}

// Smoothed returns the spring-smoothed offset.
func (p *Parallax) Smoothed() Vec2 {
	return Vec2{X: p.x.Value(), Y: p.y.Value()}
}

// Tilt returns the rotation derived from the smoothed offset.
func (p *Parallax) Tilt() Tilt {
	s := p.Smoothed()
	return Tilt{
		RotateX: Remap(s.Y, unitRange, p.cfg.RotateX),
		RotateY: Remap(s.X, unitRange, p.cfg.RotateY),
	}
}

// ChipOffset returns the smoothed offset scaled to pixels.
func (p *Parallax) ChipOffset() Vec2 {
	s := p.Smoothed()
	return Vec2{X: s.X * p.cfg.ChipTravel, Y: s.Y * p.cfg.ChipTravel}
}

// Settled reports whether both springs are at rest.
func (p *Parallax) Settled() bool {
	return p.x.Settled() && p.y.Settled()
}

// State returns a render snapshot.
func (p *Parallax) State() ParallaxState {
	return ParallaxState{Raw: p.raw, Smoothed: p.Smoothed(), Tilt: p.Tilt()}
}

// Dispose stops both springs.
func (p *Parallax) Dispose() {
	p.x.Dispose()
	p.y.Dispose()
}
