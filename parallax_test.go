package sway

import (
	"math"
	"testing"
	"time"
)

var card = Rect{X: 100, Y: 50, Width: 400, Height: 300}

func TestRawOffset(t *testing.T) {
	tests := []struct {
		name   string
		px, py float64
		box    Rect
		want   Vec2
	}{
		{"center", 300, 200, card, Vec2{0, 0}},
		{"top-left", 100, 50, card, Vec2{-1, -1}},
		{"bottom-right", 500, 350, card, Vec2{1, 1}},
		{"beyond clamps", 900, -400, card, Vec2{1, -1}},
		{"quarter", 200, 125, card, Vec2{-0.5, -0.5}},
		{"zero width", 300, 200, Rect{X: 100, Y: 50, Height: 300}, Vec2{}},
		{"zero height", 300, 200, Rect{X: 100, Y: 50, Width: 300}, Vec2{}},
		{"nan size", 300, 200, Rect{Width: math.NaN(), Height: 1}, Vec2{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RawOffset(tt.px, tt.py, tt.box)
			if !approxEqual(got.X, tt.want.X, 1e-9) || !approxEqual(got.Y, tt.want.Y, 1e-9) {
				t.Errorf("RawOffset = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParallaxCenterIsLevel(t *testing.T) {
	c := NewFrameClock()
	p := NewParallax(c, DefaultParallaxConfig(), false)
	p.PointerMove(300, 200, card)
	advanceFor(c, time.Second)

	st := p.State()
	if st.Raw != (Vec2{}) {
		t.Errorf("Raw = %v, want (0, 0)", st.Raw)
	}
	if st.Tilt.RotateX != 0 || st.Tilt.RotateY != 0 {
		t.Errorf("Tilt = %+v, want level", st.Tilt)
	}
}

func TestParallaxCornerReachesExtremes(t *testing.T) {
	tests := []struct {
		name   string
		px, py float64
		want   Tilt
	}{
		{"top-left", 100, 50, Tilt{RotateX: 6, RotateY: -10}},
		{"bottom-right", 500, 350, Tilt{RotateX: -6, RotateY: 10}},
		{"top-right", 500, 50, Tilt{RotateX: 6, RotateY: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewFrameClock()
			p := NewParallax(c, DefaultParallaxConfig(), false)
			p.PointerMove(tt.px, tt.py, card)
			raw := p.Raw()
			if math.Abs(raw.X) != 1 || math.Abs(raw.Y) != 1 {
				t.Errorf("Raw = %v, want unit corners", raw)
			}
			advanceFor(c, 2*time.Second)
			if got := p.Tilt(); got != tt.want {
				t.Errorf("Tilt = %+v, want %+v", got, tt.want)
			}
			if !p.Settled() {
				t.Error("springs not settled")
			}
		})
	}
}

func TestParallaxSmoothsTowardRaw(t *testing.T) {
	c := NewFrameClock()
	p := NewParallax(c, DefaultParallaxConfig(), false)
	p.PointerMove(500, 350, card)
	c.Advance(frame)

	s := p.Smoothed()
	if s.X <= 0 || s.X >= 1 {
		t.Errorf("smoothed X after one frame = %f, want strictly between 0 and 1", s.X)
	}
	tilt := p.Tilt()
	if tilt.RotateY <= 0 || tilt.RotateY >= 10 || tilt.RotateX >= 0 || tilt.RotateX <= -6 {
		t.Errorf("Tilt = %+v, want inside the ranges", tilt)
	}
}

func TestParallaxLeaveEasesBack(t *testing.T) {
	c := NewFrameClock()
	p := NewParallax(c, DefaultParallaxConfig(), false)
	p.PointerMove(500, 350, card)
	advanceFor(c, 2*time.Second)

	p.PointerLeave()
	if p.Raw() != (Vec2{}) {
		t.Errorf("Raw = %v after leave", p.Raw())
	}
	c.Advance(frame)
	if s := p.Smoothed(); s.X <= 0 || s.X >= 1 {
		t.Errorf("smoothed X = %f, want easing rather than snapping", s.X)
	}
	advanceFor(c, 2*time.Second)
	if s := p.Smoothed(); s != (Vec2{}) {
		t.Errorf("smoothed = %v, want rest", s)
	}
}

func TestParallaxDegenerateBox(t *testing.T) {
	c := NewFrameClock()
	p := NewParallax(c, DefaultParallaxConfig(), false)
	p.PointerMove(10, 10, Rect{})
	advanceFor(c, time.Second)
	if p.Tilt() != (Tilt{}) {
		t.Errorf("Tilt = %+v for a degenerate box", p.Tilt())
	}
}

func TestParallaxChipOffset(t *testing.T) {
	c := NewFrameClock()
	p := NewParallax(c, DefaultParallaxConfig(), true)
	p.PointerMove(200, 125, card)
	if got := p.ChipOffset(); got != (Vec2{X: -5, Y: -5}) {
		t.Errorf("ChipOffset = %v, want (-5, -5)", got)
	}
}

func TestParallaxReducedMotionFollowsRaw(t *testing.T) {
	c := NewFrameClock()
	p := NewParallax(c, DefaultParallaxConfig(), true)
	p.PointerMove(500, 350, card)
	if p.Smoothed() != (Vec2{X: 1, Y: 1}) || c.Pending() != 0 {
		t.Errorf("Smoothed = %v pending = %d", p.Smoothed(), c.Pending())
	}
}

func TestParallaxDispose(t *testing.T) {
	c := NewFrameClock()
	p := NewParallax(c, DefaultParallaxConfig(), false)
	p.PointerMove(500, 350, card)
	c.Advance(frame)
	p.Dispose()
	if c.Pending() != 0 {
		t.Errorf("Pending = %d after Dispose", c.Pending())
	}
}
