package sway

import (
	"errors"
	"log/slog"
	"time"
)

// ErrNoLocation is returned by NewNavbar when no Location is configured.
var ErrNoLocation = errors.New("sway: navbar needs a Location")

// Header motion constants.
const (
	headerEnterDuration  = 450 * time.Millisecond
	headerEnterOffset    = -14.0
	headerShrinkTime     = 300 * time.Millisecond
	HeaderHeight         = 80.0
	HeaderHeightScrolled = 64.0

	panelOpenDuration  = 180 * time.Millisecond
	panelCloseDuration = 140 * time.Millisecond
)

// NavbarConfig wires a Navbar to its host.
type NavbarConfig struct {
	// Menu defaults to DefaultMenu.
	Menu *Menu
	// Location is required.
	Location Location
	// Navigator receives destination clicks. When nil and Location also
	// implements Navigator, Location is used.
	Navigator Navigator
	// Scroll drives the Scrolled flag. Optional.
	Scroll ScrollSource
	// Router delivers global pointer-down events for outside-click
	// detection. Optional.
	Router *Router
	// Root is the navigation root's hit area. Presses inside it never count
	// as outside clicks.
	Root HitShape
	// ScrollThreshold defaults to DefaultScrollThreshold.
	ScrollThreshold float64
	Logger          *slog.Logger
}

// HeaderFrame is the header's animated presentation.
type HeaderFrame struct {
	OffsetY float64
	Opacity float64
	Height  float64
}

// NavSnapshot is everything a view needs to draw the header.
type NavSnapshot struct {
	State      NavState
	Mode       NavMode
	Location   string
	Highlights Highlights
	Header     HeaderFrame
	// Panels maps each dropdown label to its open progress in [0, 1].
	Panels   map[string]float64
	Language LanguageState
}

type panelMotion struct {
	value float64
	run   *Tween
}

// Navbar owns one header's NavState and wires it to the host: location
// changes, scroll offset and global pointer-down. Each Navbar has its own
// subscriptions; Dispose cancels all of them.
type Navbar struct {
	cfg        NavbarConfig
	engine     *TweenEngine
	nav        Navigator
	state      NavState
	highlights Highlights
	log        *slog.Logger

	mounted      bool
	disposed     bool
	cancelLoc    func()
	cancelScroll func()
	downHandle   CallbackHandle

	header   HeaderFrame
	entrance *TweenGroup
	shrink   *Tween
	panels   map[string]*panelMotion
	lang     *LanguagePill

	// OnChange, when set, fires after every state change.
	OnChange func(prev, next NavState)
}

// NewNavbar creates an unmounted navbar. Header tweens run on engine.
func NewNavbar(engine *TweenEngine, cfg NavbarConfig) (*Navbar, error) {
	if cfg.Location == nil {
		return nil, ErrNoLocation
	}
	if cfg.Menu == nil {
		cfg.Menu = DefaultMenu()
	}
	if cfg.ScrollThreshold <= 0 {
		cfg.ScrollThreshold = DefaultScrollThreshold
	}
	n := &Navbar{
		cfg:    cfg,
		engine: engine,
		nav:    cfg.Navigator,
		log:    loggerOrDiscard(cfg.Logger),
		header: HeaderFrame{OffsetY: headerEnterOffset, Height: HeaderHeight},
		panels: make(map[string]*panelMotion),
		lang:   NewLanguagePill(DefaultLanguages()),
	}
	if n.nav == nil {
		n.nav, _ = cfg.Location.(Navigator)
	}
	for _, e := range cfg.Menu.entries {
		if d, ok := e.(Dropdown); ok {
			n.panels[d.Label] = &panelMotion{}
		}
	}
	n.highlights = cfg.Menu.Highlights(cfg.Location.Current())
	return n, nil
}

// Mount subscribes to the host and plays the header entrance. Mounting a
// mounted navbar does nothing, so listeners are never duplicated.
func (n *Navbar) Mount() {
	if n.mounted || n.disposed {
		return
	}
	n.mounted = true
	n.subscribeLocation()
	if n.cfg.Scroll != nil {
		n.cancelScroll = n.cfg.Scroll.SubscribeScroll(n.onScroll)
		n.onScroll(n.cfg.Scroll.ScrollY())
	}
	if n.cfg.Router != nil {
		n.downHandle = n.cfg.Router.OnPointerDown(func(ctx PointerContext) {
			n.PointerDown(ctx.X, ctx.Y)
		})
	}
	n.entrance = n.engine.Group(headerEnterDuration, EaseOutExpo,
		FieldTarget{Field: &n.header.OffsetY, To: 0},
		FieldTarget{Field: &n.header.Opacity, To: 1},
	)
	n.log.Debug("navbar mounted", slog.String("location", n.cfg.Location.Current()))
}

func (n *Navbar) subscribeLocation() {
	n.cancelLoc = n.cfg.Location.Subscribe(n.onLocation)
}

// SetLocation replaces the Location. The old subscription is cancelled
// before the new one is made, and the state collapses as for any location
// change.
func (n *Navbar) SetLocation(loc Location) {
	if n.disposed || loc == nil {
		return
	}
	if n.cancelLoc != nil {
		n.cancelLoc()
		n.cancelLoc = nil
	}
	n.cfg.Location = loc
	if n.cfg.Navigator == nil {
		n.nav, _ = loc.(Navigator)
	}
	if n.mounted {
		n.subscribeLocation()
	}
	n.onLocation(loc.Current())
}

// SetRoot replaces the navigation root's hit area, e.g. after a resize.
func (n *Navbar) SetRoot(root HitShape) {
	n.cfg.Root = root
}

// Dispose cancels every subscription and tween. Further calls to any entry
// point are no-ops.
func (n *Navbar) Dispose() {
	if n.disposed {
		return
	}
	n.disposed = true
	n.mounted = false
	if n.cancelLoc != nil {
		n.cancelLoc()
		n.cancelLoc = nil
	}
	if n.cancelScroll != nil {
		n.cancelScroll()
		n.cancelScroll = nil
	}
	n.downHandle.Remove()
	n.downHandle = CallbackHandle{}
	if n.entrance != nil {
		n.entrance.Cancel()
	}
	n.shrink.Cancel()
	for _, p := range n.panels {
		p.run.Cancel()
	}
	n.log.Debug("navbar disposed")
}

// Mounted reports whether the navbar holds host subscriptions.
func (n *Navbar) Mounted() bool {
	return n.mounted
}

// --- Entry points ---

// ClickDropdown toggles the dropdown with label. Labels that do not name a
// dropdown of the menu are ignored.
func (n *Navbar) ClickDropdown(label string) {
	if _, ok := n.cfg.Menu.Dropdown(label); !ok {
		return
	}
	n.apply(ToggleDropdown{Label: label})
}

// HoverDropdown opens the dropdown with label on pointer enter. It opens
// even right after the same dropdown was closed by a click.
func (n *Navbar) HoverDropdown(label string) {
	if _, ok := n.cfg.Menu.Dropdown(label); !ok {
		return
	}
	n.apply(HoverDropdown{Label: label})
}

// LeavePanel closes the open dropdown when the pointer leaves its panel.
func (n *Navbar) LeavePanel() {
	n.apply(LeavePanel{})
}

// ClickMobile toggles the mobile menu.
func (n *Navbar) ClickMobile() {
	n.apply(ToggleMobile{})
}

// ClickDestination collapses every menu and then asks the Navigator to go to
// target.
func (n *Navbar) ClickDestination(target string) {
	if n.disposed {
		return
	}
	n.apply(Navigate{Target: target})
	if n.nav != nil && target != "" {
		n.nav.Navigate(target)
	}
}

// PointerDown reports a press anywhere on the page. Presses inside the root
// are left to the controls that received them.
func (n *Navbar) PointerDown(x, y float64) {
	if n.cfg.Root == nil || n.cfg.Root.Contains(x, y) {
		return
	}
	n.apply(ClickOutside{})
}

// FocusLeave collapses the menus when keyboard focus leaves the header.
func (n *Navbar) FocusLeave() {
	n.apply(FocusLeave{})
}

// Language returns the header's language pill.
func (n *Navbar) Language() *LanguagePill {
	return n.lang
}

func (n *Navbar) onLocation(path string) {
	if n.disposed {
		return
	}
	n.highlights = n.cfg.Menu.Highlights(path)
	n.lang.Close()
	n.apply(LocationChanged{Path: path})
}

func (n *Navbar) onScroll(y float64) {
	n.apply(Scroll{Y: y, Threshold: n.cfg.ScrollThreshold})
}

func (n *Navbar) apply(ev NavEvent) {
	if n.disposed {
		return
	}
	prev := n.state
	next := Transition(prev, ev)
	if next == prev {
		return
	}
	n.state = next
	if next.Scrolled != prev.Scrolled {
		n.animateHeight(next.Scrolled)
	}
	if next.OpenDropdown != prev.OpenDropdown {
		n.animatePanel(prev.OpenDropdown, 0, panelCloseDuration)
		n.animatePanel(next.OpenDropdown, 1, panelOpenDuration)
	}
	n.log.Debug("navbar transition",
		slog.String("from", prev.Mode().String()),
		slog.String("to", next.Mode().String()),
		slog.String("dropdown", next.OpenDropdown),
		slog.Bool("scrolled", next.Scrolled),
	)
	if n.OnChange != nil {
		n.OnChange(prev, next)
	}
}

func (n *Navbar) animateHeight(scrolled bool) {
	to := HeaderHeight
	if scrolled {
		to = HeaderHeightScrolled
	}
	n.shrink.Cancel()
	n.shrink = n.engine.Run(TweenSpec{
		From:     n.header.Height,
		To:       to,
		Duration: headerShrinkTime,
		OnSample: func(v float64) { n.header.Height = v },
	})
}

func (n *Navbar) animatePanel(label string, to float64, d time.Duration) {
	p, ok := n.panels[label]
	if !ok {
		return
	}
	p.run.Cancel()
	p.run = n.engine.Run(TweenSpec{
		From:     p.value,
		To:       to,
		Duration: d,
		OnSample: func(v float64) { p.value = v },
	})
}

// --- Read side ---

// State returns the current state.
func (n *Navbar) State() NavState {
	return n.state
}

// Highlights returns the active flags for the current location.
func (n *Navbar) Highlights() Highlights {
	return n.highlights
}

// Header returns the header's animated presentation.
func (n *Navbar) Header() HeaderFrame {
	return n.header
}

// PanelProgress returns how far the panel of dropdown label is open. The
// chevron of the trigger rotates by PanelProgress * 180 degrees.
func (n *Navbar) PanelProgress(label string) float64 {
	if p, ok := n.panels[label]; ok {
		return p.value
	}
	return 0
}

// Snapshot returns a copy of everything needed for rendering.
func (n *Navbar) Snapshot() NavSnapshot {
	panels := make(map[string]float64, len(n.panels))
	for k, p := range n.panels {
		panels[k] = p.value
	}
	return NavSnapshot{
		State:      n.state,
		Mode:       n.state.Mode(),
		Location:   n.cfg.Location.Current(),
		Highlights: n.highlights,
		Header:     n.header,
		Panels:     panels,
		Language:   n.lang.State(),
	}
}

// Menu returns the navbar's menu.
func (n *Navbar) Menu() *Menu {
	return n.cfg.Menu
}
