package sway

import (
	"image/color"
	"log/slog"
	"math"
)

// Vec2 is a 2D vector used for pointer positions, offsets and sizes
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Degenerate reports whether the rectangle has no usable area.
// NaN and negative sizes count as degenerate.
func (r Rect) Degenerate() bool {
	return !(r.Width > 0) || !(r.Height > 0)
}

// Range is a general-purpose [From, To] interval. From may be greater than To
// for inverted mappings.
type Range struct {
	From, To float64
}

// Remap linearly maps v from the in range to the out range and clamps the
// result to out. Inverted ranges are supported on both sides. A zero-width
// in range maps everything to out.From.
func Remap(v float64, in, out Range) float64 {
	span := in.To - in.From
	if span == 0 {
		return out.From
	}
	t := (v - in.From) / span
	t = clamp(t, 0, 1)
	return lerp(out.From, out.To, t)
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// NRGBA converts c to a straight-alpha 8-bit color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp(c.R, 0, 1)*255 + 0.5),
		G: uint8(clamp(c.G, 0, 1)*255 + 0.5),
		B: uint8(clamp(c.B, 0, 1)*255 + 0.5),
		A: uint8(clamp(c.A, 0, 1)*255 + 0.5),
	}
}

// WithAlpha returns c with its alpha multiplied by a.
func (c Color) WithAlpha(a float64) Color {
	c.A *= a
	return c
}

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// clamp restricts v to [lo, hi]. NaN collapses to lo.
func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// loggerOrDiscard returns l, or a logger that drops everything when l is nil.
func loggerOrDiscard(l *slog.Logger) *slog.Logger {
	if l != nil {
		return l
	}
	return slog.New(slog.DiscardHandler)
}

// EventType identifies a kind of pointer event.
type EventType uint8

const (
	EventPointerDown  EventType = iota // fires when the pointer button is pressed
	EventPointerUp                     // fires when the pointer button is released
	EventPointerMove                   // fires when the pointer moves
	EventClick                         // fires on press then release over the same region
	EventPointerEnter                  // fires when the pointer enters a region's bounds
	EventPointerLeave                  // fires when the pointer leaves a region's bounds
)

// String returns the event name.
func (e EventType) String() string {
	switch e {
	case EventPointerDown:
		return "pointerdown"
	case EventPointerUp:
		return "pointerup"
	case EventPointerMove:
		return "pointermove"
	case EventClick:
		return "click"
	case EventPointerEnter:
		return "pointerenter"
	case EventPointerLeave:
		return "pointerleave"
	default:
		return "unknown"
	}
}
