package stage

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/sway"
)

// Drawing helpers over sway geometry. Zero-alpha shapes are skipped.

// FillRect fills r with c.
func FillRect(dst *ebiten.Image, r sway.Rect, c sway.Color) {
	if c.A <= 0 || r.Degenerate() {
		return
	}
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), c.NRGBA(), true)
}

// StrokeRect outlines r with c.
func StrokeRect(dst *ebiten.Image, r sway.Rect, width float64, c sway.Color) {
	if c.A <= 0 || r.Degenerate() {
		return
	}
	vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), float32(width), c.NRGBA(), true)
}

// FillCircle fills a circle of radius r centred on p.
func FillCircle(dst *ebiten.Image, p sway.Vec2, r float64, c sway.Color) {
	if c.A <= 0 || r <= 0 {
		return
	}
	vector.DrawFilledCircle(dst, float32(p.X), float32(p.Y), float32(r), c.NRGBA(), true)
}

// StrokeQuad outlines a w x h rectangle centred on p and rotated by deg.
func StrokeQuad(dst *ebiten.Image, p sway.Vec2, w, h, deg, width float64, c sway.Color) {
	if c.A <= 0 {
		return
	}
	sin, cos := math.Sincos(deg * math.Pi / 180)
	corner := func(dx, dy float64) (float32, float32) {
		return float32(p.X + dx*cos - dy*sin), float32(p.Y + dx*sin + dy*cos)
	}
	hw, hh := w/2, h/2
	var xs, ys [4]float32
	xs[0], ys[0] = corner(-hw, -hh)
	xs[1], ys[1] = corner(hw, -hh)
	xs[2], ys[2] = corner(hw, hh)
	xs[3], ys[3] = corner(-hw, hh)
	nc := c.NRGBA()
	for i := range 4 {
		j := (i + 1) % 4
		vector.StrokeLine(dst, xs[i], ys[i], xs[j], ys[j], float32(width), nc, true)
	}
}

// Text prints s at (x, y) with the debug font.
func Text(dst *ebiten.Image, s string, x, y float64) {
	ebitenutil.DebugPrintAt(dst, s, int(x), int(y))
}
