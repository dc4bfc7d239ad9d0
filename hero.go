package sway

import (
	"log/slog"
	"time"
)

// Stat is one hero statistic.
type Stat struct {
	Label  string
	To     float64
	Suffix string
}

// DefaultStats are the hero's count-up figures.
func DefaultStats() []Stat {
	return []Stat{
		{Label: "Server Aktif", To: 314},
		{Label: "Uptime Stabil", To: 99, Suffix: "%"},
		{Label: "Tahun Pengalaman", To: 6},
	}
}

// HeroState is the render snapshot of a Hero.
type HeroState struct {
	Parallax ParallaxState
	// Chip is the floating chip's offset: pointer drift plus its bob.
	Chip  Vec2
	Glow  float64
	Stats []string
}

// Hero owns the hero banner's motion: the tilting card, the floating chip,
// the count-up stats and three ambient particle fields.
type Hero struct {
	Parallax *Parallax
	Counters []*Counter
	Dots     *FieldMotion
	Snow     *FieldMotion
	Gamepad  *FieldMotion

	stats   []Stat
	glow    *Pulse
	chipBob *Pulse
	tick    *Timer
	sched   Scheduler
	reduced bool
	log     *slog.Logger
}

// NewHero builds the hero from cfg. Fields come from cache so a remount
// reuses the same layouts.
func NewHero(engine *TweenEngine, cache *FieldCache, cfg Config, stats []Stat, logger *slog.Logger) *Hero {
	sched := engine.Scheduler()
	reduced := cfg.ReducedMotion
	with := func(m FieldMotionConfig) FieldMotionConfig {
		m.Logger = logger
		return m
	}
	return &Hero{
		Parallax: NewParallax(sched, cfg.Parallax(), reduced),
		Dots:     NewFieldMotion(sched, cache.Get(HeroDots), with(DotMotion), reduced),
		Snow:     NewFieldMotion(sched, cache.Get(Snowfall), with(SnowMotion), reduced),
		Gamepad:  NewFieldMotion(sched, cache.Get(GamepadPattern), with(GamepadMotion), reduced),
		stats:    append([]Stat(nil), stats...),
		glow:     NewPulse(heroGlowPeriod, heroGlowRange),
		chipBob:  NewPulse(chipBobPeriod, chipBobRange),
		sched:    sched,
		reduced:  reduced,
		log:      loggerOrDiscard(logger),
	}
}

// Mount starts the counters, the fields and the glow.
func (h *Hero) Mount(engine *TweenEngine, cfg Config) {
	if h.Counters != nil {
		return
	}
	for _, s := range h.stats {
		h.Counters = append(h.Counters, NewCounter(engine, cfg.Counter(s.To, s.Suffix)))
	}
	h.Dots.Start()
	h.Snow.Start()
	h.Gamepad.Start()
	if !h.reduced {
		h.tick = h.sched.OnTick(h.update)
	}
	h.log.Debug("hero mounted", slog.Int("stats", len(h.stats)))
}

func (h *Hero) update(dt time.Duration) {
	h.glow.Update(dt)
	h.chipBob.Update(dt)
}

// Dispose stops every animation the hero owns.
func (h *Hero) Dispose() {
	h.tick.Stop()
	h.Parallax.Dispose()
	for _, c := range h.Counters {
		c.Dispose()
	}
	h.Dots.Dispose()
	h.Snow.Dispose()
	h.Gamepad.Dispose()
}

// State returns a render snapshot.
func (h *Hero) State() HeroState {
	chip := h.Parallax.ChipOffset()
	chip.Y += h.chipBob.Value()
	stats := make([]string, len(h.Counters))
	for i, c := range h.Counters {
		stats[i] = c.Text()
	}
	return HeroState{
		Parallax: h.Parallax.State(),
		Chip:     chip,
		Glow:     h.glow.Value(),
		Stats:    stats,
	}
}

// Stats returns the configured statistics.
func (h *Hero) Stats() []Stat {
	return append([]Stat(nil), h.stats...)
}
