package sway

import (
	"fmt"
	"log/slog"
	"time"
)

// Feature is one card of the feature showcase.
type Feature struct {
	Title string
	Pill  string
}

// DefaultFeatures are the showcase cards.
func DefaultFeatures() []Feature {
	return []Feature{
		{Title: "DDoS Protection", Pill: "Stay Active"},
		{Title: "AMD Ryzen™ 9000", Pill: "Stable Boost"},
		{Title: "NVMe Storage", Pill: "Read & Write"},
		{Title: "Akses Panel", Pill: "Easy Management"},
		{Title: "Proteksi Data Otomatis", Pill: "Data Secure"},
		{Title: "Dukungan Teknis VIP", Pill: "VIP Expert"},
	}
}

// LandingOptions wires a Landing to its host. Zero fields get in-process
// defaults.
type LandingOptions struct {
	Config        Config
	Width, Height float64
	Menu          *Menu
	Features      []Feature
	Stats         []Stat
	Location      Location
	Navigator     Navigator
	Viewport      *Viewport
	Router        *Router
	Logger        *slog.Logger
}

// LandingSnapshot is the whole page's render state.
type LandingSnapshot struct {
	Nav         NavSnapshot
	Hero        HeroState
	Features    CarouselState
	Highlighted []bool
	Cards       []CardState
	ScrollY     float64
	FeatureGlow float64
	FooterGlow  float64
	Footer      []ParticleFrame
}

// Landing composes the page's controllers and binds them to router regions.
// It owns every subscription it makes; Dispose releases all of them.
type Landing struct {
	cfg      Config
	opts     LandingOptions
	layout   Layout
	sched    Scheduler
	engine   *TweenEngine
	router   *Router
	viewport *Viewport
	location Location
	fields   *FieldCache
	log      *slog.Logger

	Navbar     *Navbar
	Hero       *Hero
	Features   *Carousel
	Cards      []*FeatureCard
	FooterDots *FieldMotion

	featureGlow *Pulse
	footerGlow  *Pulse

	regions      []*Region
	panelRegions map[string]*Region
	pillPanel    *Region
	mobilePanel  *Region
	heroCard     *Region
	featureRgns  []*Region

	cancelScroll func()
	tick         *Timer
	mounted      bool
	disposed     bool
}

// NewLanding builds an unmounted page on sched.
func NewLanding(sched Scheduler, opts LandingOptions) (*Landing, error) {
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("landing: %w", err)
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("landing: window %vx%v has no area", opts.Width, opts.Height)
	}
	if opts.Menu == nil {
		opts.Menu = DefaultMenu()
	}
	if opts.Features == nil {
		opts.Features = DefaultFeatures()
	}
	if opts.Stats == nil {
		opts.Stats = DefaultStats()
	}
	if opts.Location == nil {
		opts.Location = NewMemoryLocation("/")
	}
	if opts.Router == nil {
		opts.Router = NewRouter()
	}

	l := &Landing{
		cfg:          cfg,
		opts:         opts,
		sched:        sched,
		engine:       NewTweenEngine(sched, cfg.ReducedMotion),
		router:       opts.Router,
		location:     opts.Location,
		fields:       NewFieldCache(),
		log:          loggerOrDiscard(opts.Logger),
		panelRegions: make(map[string]*Region),
		featureGlow:  NewPulse(featureGlowPeriod, featureGlowRange),
		footerGlow:   NewPulse(footerGlowPeriod, footerGlowRange),
	}
	l.layout = NewLayout(opts.Width, opts.Height, opts.Menu, len(opts.Features), len(DefaultLanguages()))
	l.viewport = opts.Viewport
	if l.viewport == nil {
		l.viewport = NewViewport(opts.Width, opts.Height, l.layout.ContentHeight())
	}

	nav, err := NewNavbar(l.engine, NavbarConfig{
		Menu:            opts.Menu,
		Location:        opts.Location,
		Navigator:       opts.Navigator,
		Scroll:          l.viewport,
		Router:          l.router,
		Root:            HitFunc(l.inNavRoot),
		ScrollThreshold: cfg.ScrollThreshold,
		Logger:          opts.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("landing: %w", err)
	}
	nav.OnChange = func(_, _ NavState) { l.syncPanels() }
	l.Navbar = nav

	l.Hero = NewHero(l.engine, l.fields, cfg, opts.Stats, opts.Logger)
	cc := cfg.Carousel(len(opts.Features))
	cc.Logger = opts.Logger
	l.Features = NewCarousel(sched, cc)
	for range opts.Features {
		l.Cards = append(l.Cards, NewFeatureCard(l.engine))
	}
	footer := DotMotion
	footer.Logger = opts.Logger
	l.FooterDots = NewFieldMotion(sched, l.fields.Get(FooterDots), footer, cfg.ReducedMotion)
	return l, nil
}

// inNavRoot reports whether (x, y) is inside the navigation root: the nav
// strip, any open panel, the language pill and the mobile controls.
func (l *Landing) inNavRoot(x, y float64) bool {
	lay := l.layout
	if lay.Nav.Contains(x, y) || lay.Pill.Contains(x, y) || lay.MobileToggle.Contains(x, y) {
		return true
	}
	st := l.Navbar.State()
	if p, ok := lay.Panels[st.OpenDropdown]; ok && p.Contains(x, y) {
		return true
	}
	if st.MobileOpen && l.mobilePanelRect().Contains(x, y) {
		return true
	}
	return l.Navbar.Language().Open() && lay.PillPanel.Contains(x, y)
}

// Mount registers the page's regions and starts every controller.
func (l *Landing) Mount() {
	if l.mounted || l.disposed {
		return
	}
	l.mounted = true
	l.registerRegions()
	l.Navbar.Mount()
	l.Hero.Mount(l.engine, l.cfg)
	l.Features.Start()
	l.FooterDots.Start()
	l.cancelScroll = l.viewport.SubscribeScroll(func(float64) { l.syncSections() })
	if !l.cfg.ReducedMotion {
		l.tick = l.sched.OnTick(func(dt time.Duration) {
			l.featureGlow.Update(dt)
			l.footerGlow.Update(dt)
		})
	}
	l.syncSections()
	l.syncPanels()
	l.log.Info("landing mounted",
		slog.Float64("width", l.opts.Width),
		slog.Float64("height", l.opts.Height),
		slog.Bool("reduced_motion", l.cfg.ReducedMotion),
	)
}

func (l *Landing) add(r *Region) *Region {
	l.regions = append(l.regions, l.router.Add(r))
	return r
}

func (l *Landing) registerRegions() {
	lay := l.layout
	nav := l.Navbar
	for i, e := range l.opts.Menu.entries {
		shape := rectShape(lay.NavItems[i])
		switch e := e.(type) {
		case Link:
			target := e.Target
			l.add(&Region{Name: "nav:" + e.Label, Shape: shape, Z: 1,
				OnClick: func(PointerContext) { nav.ClickDestination(target) }})
		case Dropdown:
			label := e.Label
			l.add(&Region{Name: "nav:" + label, Shape: shape, Z: 1,
				OnClick:        func(PointerContext) { nav.ClickDropdown(label) },
				OnPointerEnter: func(PointerContext) { nav.HoverDropdown(label) },
			})
			children := e.Children
			l.panelRegions[label] = l.add(&Region{Name: "panel:" + label, Shape: rectShape(lay.Panels[label]), Z: 10,
				Disabled:       true,
				OnPointerLeave: func(PointerContext) { nav.LeavePanel() },
				OnClick: func(ctx PointerContext) {
					if i, ok := panelRow(ctx.LocalY, len(children)); ok {
						nav.ClickDestination(children[i].Target)
					}
				},
			})
		}
	}

	l.add(&Region{Name: "mobile-toggle", Shape: rectShape(lay.MobileToggle), Z: 1,
		OnClick: func(PointerContext) { nav.ClickMobile() }})
	l.mobilePanel = l.add(&Region{Name: "mobile-panel", Z: 10, Disabled: true,
		OnClick: func(ctx PointerContext) { l.clickMobileRow(ctx.LocalY) }})

	pill := nav.Language()
	l.add(&Region{Name: "language", Shape: rectShape(lay.Pill), Z: 1,
		OnClick: func(PointerContext) { pill.Toggle(); l.syncPanels() }})
	langs := pill.Languages()
	l.pillPanel = l.add(&Region{Name: "language-panel", Shape: rectShape(lay.PillPanel), Z: 10, Disabled: true,
		OnClick: func(ctx PointerContext) {
			if i, ok := panelRow(ctx.LocalY, len(langs)); ok && pill.Open() {
				pill.Pick(langs[i].Code)
				l.syncPanels()
			}
		},
	})

	hero := l.Hero.Parallax
	l.heroCard = l.add(&Region{Name: "hero-card",
		OnPointerMove:  func(ctx PointerContext) { hero.PointerMove(ctx.X, ctx.Y, l.heroCardRect()) },
		OnPointerLeave: func(PointerContext) { hero.PointerLeave() },
	})

	for i := range l.layout.Features {
		idx := i
		l.featureRgns = append(l.featureRgns, l.add(&Region{
			Name:           fmt.Sprintf("feature:%d", i),
			OnPointerEnter: func(PointerContext) {
				l.Features.Enter(idx)
				l.Cards[idx].Enter()
			},
			OnPointerLeave: func(PointerContext) {
				l.Features.Leave(idx)
				l.Cards[idx].Leave()
			},
			OnPointerMove: func(ctx PointerContext) { l.Cards[idx].PointerMove(ctx.LocalX, ctx.LocalY) },
		}))
	}
}

// panelRow maps a local y inside a padded panel to a row index.
func panelRow(localY float64, rows int) (int, bool) {
	y := localY - panelPadding
	if y < 0 {
		return 0, false
	}
	i := int(y / panelRowHeight)
	return i, i < rows
}

// mobileRow is one row of the expanded mobile menu.
type mobileRow struct {
	dropdown string
	target   string
}

func (l *Landing) mobileRows() []mobileRow {
	var rows []mobileRow
	open := l.Navbar.State().OpenDropdown
	for _, e := range l.opts.Menu.entries {
		switch e := e.(type) {
		case Link:
			rows = append(rows, mobileRow{target: e.Target})
		case Dropdown:
			rows = append(rows, mobileRow{dropdown: e.Label})
			if open == e.Label {
				for _, c := range e.Children {
					rows = append(rows, mobileRow{target: c.Target})
				}
			}
		}
	}
	return rows
}

func (l *Landing) mobilePanelRect() Rect {
	r := l.layout.MobilePanel
	r.Height = 2*panelPadding + float64(len(l.mobileRows()))*mobileRowHeight
	return r
}

func (l *Landing) clickMobileRow(localY float64) {
	rows := l.mobileRows()
	i, ok := panelRow(localY, len(rows))
	if !ok {
		return
	}
	if rows[i].dropdown != "" {
		l.Navbar.ClickDropdown(rows[i].dropdown)
		return
	}
	l.Navbar.ClickDestination(rows[i].target)
}

// syncPanels enables exactly the panels the state shows.
func (l *Landing) syncPanels() {
	if !l.mounted {
		return
	}
	st := l.Navbar.State()
	for label, r := range l.panelRegions {
		r.Disabled = st.MobileOpen || st.OpenDropdown != label
	}
	l.mobilePanel.Disabled = !st.MobileOpen
	l.mobilePanel.Shape = rectShape(l.mobilePanelRect())
	l.pillPanel.Disabled = !l.Navbar.Language().Open()
}

func (l *Landing) heroCardRect() Rect {
	return Scrolled(l.layout.HeroCard, l.viewport.ScrollY())
}

// syncSections moves the scrolling regions to the current offset.
func (l *Landing) syncSections() {
	y := l.viewport.ScrollY()
	l.heroCard.Shape = rectShape(l.heroCardRect())
	for i, r := range l.featureRgns {
		r.Shape = rectShape(Scrolled(l.layout.Features[i], y))
	}
}

// Dispose unregisters every region and stops every controller.
func (l *Landing) Dispose() {
	if l.disposed {
		return
	}
	l.disposed = true
	for _, r := range l.regions {
		l.router.Remove(r)
	}
	l.regions = nil
	if l.cancelScroll != nil {
		l.cancelScroll()
	}
	l.tick.Stop()
	l.Navbar.Dispose()
	l.Hero.Dispose()
	l.Features.Dispose()
	for _, c := range l.Cards {
		c.Dispose()
	}
	l.FooterDots.Dispose()
	l.log.Info("landing disposed")
}

// Layout returns the page layout.
func (l *Landing) Layout() Layout {
	return l.layout
}

// Router returns the router the page's regions live on.
func (l *Landing) Router() *Router {
	return l.router
}

// Viewport returns the page's scroll source.
func (l *Landing) Viewport() *Viewport {
	return l.viewport
}

// Location returns the page's location.
func (l *Landing) Location() Location {
	return l.location
}

// FeatureList returns the showcase cards.
func (l *Landing) FeatureList() []Feature {
	return append([]Feature(nil), l.opts.Features...)
}

// MobilePanel returns the mobile menu's current bounds.
func (l *Landing) MobilePanel() Rect {
	return l.mobilePanelRect()
}

// Snapshot returns the whole page's render state.
func (l *Landing) Snapshot() LandingSnapshot {
	hl := make([]bool, len(l.opts.Features))
	cards := make([]CardState, len(l.Cards))
	for i := range hl {
		hl[i] = l.Features.Highlighted(i)
	}
	for i, c := range l.Cards {
		cards[i] = c.State()
	}
	return LandingSnapshot{
		Nav:         l.Navbar.Snapshot(),
		Hero:        l.Hero.State(),
		Features:    l.Features.State(),
		Highlighted: hl,
		Cards:       cards,
		ScrollY:     l.viewport.ScrollY(),
		FeatureGlow: l.featureGlow.Value(),
		FooterGlow:  l.footerGlow.Value(),
		Footer:      append([]ParticleFrame(nil), l.FooterDots.Frames()...),
	}
}
