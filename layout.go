package sway

// Layout constants for the landing page at desktop widths.
const (
	headerInset     = 24.0
	headerTop       = 16.0
	navItemWidth    = 150.0
	navItemHeight   = 48.0
	panelWidth      = 256.0
	panelRowHeight  = 48.0
	panelPadding    = 8.0
	panelGap        = 12.0
	buttonSize      = 48.0
	pillWidth       = 170.0
	heroTop         = 190.0
	heroCardWidth   = 440.0
	heroCardHeight  = 300.0
	heroHeight      = 560.0
	featureTop      = 640.0
	featureWidth    = 300.0
	featureHeight   = 170.0
	featureGap      = 24.0
	featureColumns  = 3
	footerHeight    = 320.0
	mobileRowHeight = 48.0
)

// Layout positions every interactive element of the landing page. Header
// rects are in screen space; section rects are in page space and move with
// the scroll offset.
type Layout struct {
	Width, Height float64

	Header   Rect
	Nav      Rect
	NavItems []Rect
	// Panels maps a dropdown label to its panel, drawn under the trigger.
	Panels       map[string]Rect
	Pill         Rect
	PillPanel    Rect
	MobileToggle Rect
	MobilePanel  Rect

	Hero     Rect
	HeroCard Rect
	Features []Rect
	Footer   Rect
}

// NewLayout lays out menu and featureCount cards in a width x height window.
func NewLayout(width, height float64, menu *Menu, featureCount, languages int) Layout {
	l := Layout{
		Width:  width,
		Height: height,
		Header: Rect{X: headerInset, Y: headerTop, Width: width - 2*headerInset, Height: HeaderHeight},
		Panels: make(map[string]Rect),
	}

	navW := navItemWidth * float64(menu.Len())
	navX := (width - navW) / 2
	navY := l.Header.Y + (HeaderHeight-navItemHeight)/2
	l.Nav = Rect{X: navX, Y: navY, Width: navW, Height: navItemHeight}
	for i, e := range menu.entries {
		r := Rect{X: navX + float64(i)*navItemWidth, Y: navY, Width: navItemWidth, Height: navItemHeight}
		l.NavItems = append(l.NavItems, r)
		if d, ok := e.(Dropdown); ok {
			l.Panels[d.Label] = Rect{
				X:      r.X,
				Y:      l.Header.Y + HeaderHeight + panelGap,
				Width:  panelWidth,
				Height: 2*panelPadding + float64(len(d.Children))*panelRowHeight,
			}
		}
	}

	right := l.Header.X + l.Header.Width - headerInset
	l.MobileToggle = Rect{X: right - buttonSize, Y: navY, Width: buttonSize, Height: buttonSize}
	l.Pill = Rect{X: l.MobileToggle.X - 12 - pillWidth, Y: navY, Width: pillWidth, Height: navItemHeight}
	l.PillPanel = Rect{
		X:      l.Pill.X + l.Pill.Width - 192,
		Y:      l.Header.Y + HeaderHeight + panelGap,
		Width:  192,
		Height: 2*panelPadding + float64(languages)*panelRowHeight,
	}
	l.MobilePanel = Rect{
		X:     l.Header.X,
		Y:     l.Header.Y + HeaderHeight + panelGap,
		Width: l.Header.Width,
	}

	l.Hero = Rect{X: 0, Y: 0, Width: width, Height: heroHeight}
	l.HeroCard = Rect{X: (width - heroCardWidth) / 2, Y: heroTop, Width: heroCardWidth, Height: heroCardHeight}

	cols := min(featureColumns, max(featureCount, 1))
	gridW := float64(cols)*featureWidth + float64(cols-1)*featureGap
	gridX := (width - gridW) / 2
	for i := range featureCount {
		col, row := i%cols, i/cols
		l.Features = append(l.Features, Rect{
			X:      gridX + float64(col)*(featureWidth+featureGap),
			Y:      featureTop + float64(row)*(featureHeight+featureGap),
			Width:  featureWidth,
			Height: featureHeight,
		})
	}
	rows := (featureCount + cols - 1) / cols
	featBottom := featureTop + float64(rows)*(featureHeight+featureGap)
	l.Footer = Rect{X: 0, Y: featBottom + 80, Width: width, Height: footerHeight}
	return l
}

// ContentHeight returns the page height, for the Viewport.
func (l Layout) ContentHeight() float64 {
	return l.Footer.Y + l.Footer.Height
}

// Scrolled returns r moved into screen space at scroll offset y.
func Scrolled(r Rect, y float64) Rect {
	r.Y -= y
	return r
}

// HitFunc adapts a function to HitShape.
type HitFunc func(x, y float64) bool

// Contains implements HitShape.
func (f HitFunc) Contains(x, y float64) bool {
	return f(x, y)
}

// rectShape converts r to a HitRect.
func rectShape(r Rect) HitRect {
	return HitRect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}
