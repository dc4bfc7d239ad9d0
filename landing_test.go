package sway

import (
	"testing"
	"time"
)

type landingHarness struct {
	clock *FrameClock
	loc   *MemoryLocation
	page  *Landing
}

func newLandingHarness(t *testing.T, reduced bool) *landingHarness {
	t.Helper()
	cfg := DefaultConfig()
	cfg.ReducedMotion = reduced
	h := &landingHarness{clock: NewFrameClock(), loc: NewMemoryLocation("/")}
	page, err := NewLanding(h.clock, LandingOptions{
		Config:   cfg,
		Width:    1280,
		Height:   720,
		Location: h.loc,
	})
	if err != nil {
		t.Fatal(err)
	}
	h.page = page
	page.Mount()
	return h
}

// drain feeds every injected event through the router, one frame each.
func (h *landingHarness) drain() {
	rt := h.page.Router()
	for rt.Queued() > 0 {
		rt.Step(0, 0, false)
		h.clock.Advance(frame)
	}
}

func center(r Rect) (float64, float64) {
	c := r.Center()
	return c.X, c.Y
}

// rowY returns the screen y of row i inside a padded panel.
func rowY(panel Rect, i int) float64 {
	return panel.Y + panelPadding + float64(i)*panelRowHeight + panelRowHeight/2
}

func TestNewLandingRejectsBadInput(t *testing.T) {
	c := NewFrameClock()
	if _, err := NewLanding(c, LandingOptions{Config: DefaultConfig()}); err == nil {
		t.Error("expected an error for a window without area")
	}
	bad := DefaultConfig()
	bad.CarouselInterval = 0
	if _, err := NewLanding(c, LandingOptions{Config: bad, Width: 10, Height: 10}); err == nil {
		t.Error("expected an error for an invalid config")
	}
}

func TestLandingDropdownThroughRouter(t *testing.T) {
	h := newLandingHarness(t, false)
	lay := h.page.Layout()
	rt := h.page.Router()
	tx, ty := center(lay.NavItems[1])

	rt.InjectMove(tx, ty)
	h.drain()
	if got := h.page.Navbar.State().OpenDropdown; got != "Hosting" {
		t.Fatalf("hovering the trigger: OpenDropdown = %q, want Hosting", got)
	}

	panel := lay.Panels["Hosting"]
	rt.InjectHover(tx, ty, tx, rowY(panel, 1), 8)
	h.drain()
	if got := h.page.Navbar.State().OpenDropdown; got != "Hosting" {
		t.Fatalf("moving into the panel closed it: %q", got)
	}

	rt.InjectClick(tx, rowY(panel, 1))
	h.drain()
	if h.loc.Current() != "/hosting/vps" {
		t.Errorf("location = %q, want /hosting/vps", h.loc.Current())
	}
	if !h.page.Navbar.State().Closed() {
		t.Errorf("state = %+v, want closed", h.page.Navbar.State())
	}
	if hl := h.page.Navbar.Highlights(); !hl.Children["Hosting"][1] {
		t.Errorf("highlights = %+v, want VPS Hosting", hl)
	}
}

func TestLandingLeavePanelCloses(t *testing.T) {
	h := newLandingHarness(t, false)
	lay := h.page.Layout()
	rt := h.page.Router()
	tx, ty := center(lay.NavItems[1])
	panel := lay.Panels["Hosting"]

	rt.InjectMove(tx, ty)
	rt.InjectHover(tx, ty, tx, rowY(panel, 0), 6)
	rt.InjectMove(tx, panel.Y+panel.Height+40)
	h.drain()
	if !h.page.Navbar.State().Closed() {
		t.Errorf("state = %+v, want closed after leaving the panel", h.page.Navbar.State())
	}
}

func TestLandingOutsideClick(t *testing.T) {
	h := newLandingHarness(t, false)
	lay := h.page.Layout()
	rt := h.page.Router()
	tx, ty := center(lay.NavItems[1])

	rt.InjectMove(tx, ty)
	rt.InjectClick(40, 600)
	h.drain()
	if !h.page.Navbar.State().Closed() {
		t.Errorf("state = %+v, want closed after an outside click", h.page.Navbar.State())
	}
}

func TestLandingMobileMenu(t *testing.T) {
	h := newLandingHarness(t, false)
	lay := h.page.Layout()
	rt := h.page.Router()

	rt.InjectClick(center(lay.MobileToggle))
	h.drain()
	if !h.page.Navbar.State().MobileOpen {
		t.Fatal("mobile toggle did not open the menu")
	}

	mp := h.page.MobilePanel()
	x := mp.X + 40
	rt.InjectClick(x, rowY(mp, 1))
	h.drain()
	st := h.page.Navbar.State()
	if st.Mode() != NavMobileDropdownOpen || st.OpenDropdown != "Hosting" {
		t.Fatalf("state = %+v, want the Hosting accordion open", st)
	}

	// Home, Hosting, its three children, Contact.
	mp = h.page.MobilePanel()
	if want := 2*panelPadding + 6*mobileRowHeight; mp.Height != want {
		t.Errorf("mobile panel height = %f, want %f", mp.Height, want)
	}
	rt.InjectClick(x, rowY(mp, 4))
	h.drain()
	if h.loc.Current() != "/hosting/dedicated" || !h.page.Navbar.State().Closed() {
		t.Errorf("location %q state %+v", h.loc.Current(), h.page.Navbar.State())
	}
}

func TestLandingLanguagePill(t *testing.T) {
	h := newLandingHarness(t, false)
	lay := h.page.Layout()
	rt := h.page.Router()

	// The panel ignores clicks while closed.
	rt.InjectClick(center(lay.PillPanel))
	h.drain()
	if h.page.Navbar.Language().Selected().Code != "ID" {
		t.Fatal("closed language panel accepted a click")
	}

	rt.InjectClick(center(lay.Pill))
	h.drain()
	if !h.page.Snapshot().Nav.Language.Open {
		t.Fatal("pill did not open")
	}
	rt.InjectClick(lay.PillPanel.X+20, rowY(lay.PillPanel, 1))
	h.drain()
	lang := h.page.Snapshot().Nav.Language
	if lang.Open || lang.Selected.Code != "EN" {
		t.Errorf("language = %+v, want EN and closed", lang)
	}
}

func TestLandingCarouselPausesOnHover(t *testing.T) {
	h := newLandingHarness(t, false)
	rt := h.page.Router()
	card := h.page.Layout().Features[0]

	rt.InjectMove(card.X+20, card.Y+20)
	h.drain()
	if !h.page.Features.Paused() {
		t.Fatal("hovering a card did not pause the carousel")
	}
	advanceFor(h.clock, 10*time.Second)
	if h.page.Features.Active() != 0 {
		t.Errorf("Active = %d while hovered", h.page.Features.Active())
	}

	rt.InjectOut()
	h.drain()
	if h.page.Features.Paused() {
		t.Error("carousel still paused after the pointer left")
	}
}

func TestLandingFeatureCardHover(t *testing.T) {
	h := newLandingHarness(t, false)
	rt := h.page.Router()
	card := h.page.Layout().Features[1]

	rt.InjectMove(card.X+20, card.Y+30)
	rt.InjectMove(card.X+40, card.Y+50)
	h.drain()
	advanceFor(h.clock, 300*time.Millisecond)

	st := h.page.Snapshot().Cards[1]
	if !st.Hovered || st.Lift != cardLift {
		t.Errorf("card = %+v, want hovered and lifted", st)
	}
	if !st.Lit || st.Spotlight != (Vec2{X: 40, Y: 50}) {
		t.Errorf("spotlight = %+v, want card-local (40, 50)", st.Spotlight)
	}
	if other := h.page.Snapshot().Cards[0]; other.Hovered || other.Lift != 0 {
		t.Errorf("neighbour card = %+v", other)
	}

	rt.InjectOut()
	h.drain()
	advanceFor(h.clock, 300*time.Millisecond)
	if st := h.page.Snapshot().Cards[1]; st.Hovered || st.Lift != 0 {
		t.Errorf("card after leave = %+v", st)
	}
}

func TestLandingFeatureCardReducedMotion(t *testing.T) {
	h := newLandingHarness(t, true)
	rt := h.page.Router()
	card := h.page.Layout().Features[0]

	rt.InjectMove(card.X+20, card.Y+30)
	h.drain()
	st := h.page.Snapshot().Cards[0]
	if !st.Hovered || st.Lift != 0 || st.Lit {
		t.Errorf("card = %+v, want hovered but still", st)
	}
}

func TestLandingScroll(t *testing.T) {
	h := newLandingHarness(t, false)
	vp := h.page.Viewport()
	rt := h.page.Router()
	card := h.page.Layout().Features[0]

	vp.ScrollBy(100)
	if !h.page.Navbar.State().Scrolled {
		t.Fatal("Scrolled = false after scrolling 100px")
	}

	// The card moved up with the page.
	rt.InjectMove(card.X+20, card.Y-100+10)
	h.drain()
	if !h.page.Features.Paused() {
		t.Error("scrolled card region not at its screen position")
	}

	vp.ScrollTo(0)
	if h.page.Navbar.State().Scrolled {
		t.Error("Scrolled = true back at the top")
	}
	if snap := h.page.Snapshot(); snap.ScrollY != 0 {
		t.Errorf("ScrollY = %f", snap.ScrollY)
	}
}

func TestLandingHeroTilt(t *testing.T) {
	h := newLandingHarness(t, false)
	rt := h.page.Router()
	card := h.page.Layout().HeroCard

	rt.InjectMove(card.X+card.Width-1, card.Y+1)
	h.drain()
	advanceFor(h.clock, 2*time.Second)
	tilt := h.page.Snapshot().Hero.Parallax.Tilt
	if tilt.RotateX <= 5 || tilt.RotateY <= 9 {
		t.Errorf("tilt = %+v, want near the top-right extreme", tilt)
	}

	rt.InjectMove(card.X-20, card.Y+card.Height+20)
	h.drain()
	advanceFor(h.clock, 2*time.Second)
	if tilt := h.page.Snapshot().Hero.Parallax.Tilt; tilt != (Tilt{}) {
		t.Errorf("tilt = %+v after leaving, want level", tilt)
	}
}

func TestLandingReducedMotion(t *testing.T) {
	h := newLandingHarness(t, true)
	if h.clock.Pending() != 0 {
		t.Errorf("Pending = %d, want no timers under reduced motion", h.clock.Pending())
	}
	snap := h.page.Snapshot()
	want := []string{"314", "99%", "6"}
	for i, w := range want {
		if snap.Hero.Stats[i] != w {
			t.Errorf("stat %d = %q, want %q", i, snap.Hero.Stats[i], w)
		}
	}
	if snap.Nav.Header.Opacity != 1 || snap.Features.Active != 0 {
		t.Errorf("snapshot = %+v", snap)
	}
}

func TestLandingCountersRunOnce(t *testing.T) {
	h := newLandingHarness(t, false)
	advanceFor(h.clock, DefaultCounterDuration+frame)
	stats := h.page.Snapshot().Hero.Stats
	if stats[0] != "314" || stats[1] != "99%" {
		t.Errorf("stats = %v", stats)
	}
}

func TestLandingDispose(t *testing.T) {
	h := newLandingHarness(t, false)
	h.page.Mount()
	advanceFor(h.clock, time.Second)

	h.page.Dispose()
	h.page.Dispose()
	rt := h.page.Router()
	if rt.Regions() != 0 {
		t.Errorf("Regions = %d after Dispose", rt.Regions())
	}
	if rt.Handlers(EventPointerDown) != 0 {
		t.Errorf("pointer-down handlers = %d after Dispose", rt.Handlers(EventPointerDown))
	}
	if h.clock.Pending() != 0 {
		t.Errorf("Pending = %d after Dispose", h.clock.Pending())
	}
	if h.loc.Subscribers() != 0 || h.page.Viewport().Subscribers() != 0 {
		t.Errorf("subscribers: location %d scroll %d", h.loc.Subscribers(), h.page.Viewport().Subscribers())
	}
}
