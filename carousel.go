package sway

import (
	"log/slog"
	"time"
)

// DefaultCarouselInterval is how long each feature card stays highlighted.
const DefaultCarouselInterval = 2800 * time.Millisecond

// CarouselConfig configures a Carousel.
type CarouselConfig struct {
	Items int
	// Interval defaults to DefaultCarouselInterval.
	Interval time.Duration
	// FreshIntervalOnResume restarts a full interval after a pause instead
	// of finishing the interrupted one.
	FreshIntervalOnResume bool
	// ReducedMotion holds the active index at 0 and never starts a timer.
	ReducedMotion bool
	Logger        *slog.Logger
}

// CarouselState is the render snapshot of a Carousel.
type CarouselState struct {
	Active int
	Paused bool
}

// HoldKind tells apart the two ways an item can pause the carousel.
type HoldKind uint8

const (
	HoldHover HoldKind = iota
	HoldFocus
)

type hold struct {
	item int
	kind HoldKind
}

// Carousel advances an active index on a fixed interval. While any item is
// hovered or focused the interval timer is stopped, not merely ignored.
type Carousel struct {
	sched     Scheduler
	cfg       CarouselConfig
	active    int
	holds     map[hold]struct{}
	timer     *Timer
	remaining time.Duration
	started   bool
	disposed  bool
	log       *slog.Logger

	// OnAdvance, when set, fires after every advance with the new index.
	OnAdvance func(active int)
}

// NewCarousel creates a stopped carousel on item 0.
func NewCarousel(sched Scheduler, cfg CarouselConfig) *Carousel {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultCarouselInterval
	}
	return &Carousel{
		sched: sched,
		cfg:   cfg,
		holds: make(map[hold]struct{}),
		log:   loggerOrDiscard(cfg.Logger),
	}
}

// Start begins rotating. Under reduced motion, or with fewer than two items,
// no timer is created.
func (c *Carousel) Start() {
	if c.started || c.disposed {
		return
	}
	c.started = true
	if !c.rotates() {
		return
	}
	if !c.Paused() {
		c.schedule(c.cfg.Interval)
	}
	c.log.Debug("carousel started", slog.Int("items", c.cfg.Items), slog.Duration("interval", c.cfg.Interval))
}

func (c *Carousel) rotates() bool {
	return !c.cfg.ReducedMotion && c.cfg.Items > 1
}

func (c *Carousel) schedule(first time.Duration) {
	c.timer = c.sched.Schedule(first, c.cfg.Interval, c.advance)
}

func (c *Carousel) advance() {
	c.active = (c.active + 1) % c.cfg.Items
	if c.OnAdvance != nil {
		c.OnAdvance(c.active)
	}
}

// Enter reports the pointer entering item i.
func (c *Carousel) Enter(i int) { c.Hold(i, HoldHover) }

// Leave reports the pointer leaving item i.
func (c *Carousel) Leave(i int) { c.Release(i, HoldHover) }

// Focus reports keyboard focus landing on item i.
func (c *Carousel) Focus(i int) { c.Hold(i, HoldFocus) }

// Blur reports keyboard focus leaving item i.
func (c *Carousel) Blur(i int) { c.Release(i, HoldFocus) }

// Hold pauses the carousel while item i is held. Out-of-range items are
// ignored.
func (c *Carousel) Hold(i int, kind HoldKind) {
	if c.disposed || i < 0 || i >= c.cfg.Items {
		return
	}
	wasPaused := c.Paused()
	c.holds[hold{item: i, kind: kind}] = struct{}{}
	if !wasPaused {
		c.pause()
	}
}

// Release drops a hold. When the last hold goes, the rotation resumes from
// the current index.
func (c *Carousel) Release(i int, kind HoldKind) {
	if c.disposed {
		return
	}
	h := hold{item: i, kind: kind}
	if _, ok := c.holds[h]; !ok {
		return
	}
	delete(c.holds, h)
	if !c.Paused() {
		c.resume()
	}
}

func (c *Carousel) pause() {
	if !c.timer.Active() {
		return
	}
	c.remaining = c.timer.Remaining()
	c.timer.Stop()
	c.log.Debug("carousel paused", slog.Int("active", c.active), slog.Duration("remaining", c.remaining))
}

func (c *Carousel) resume() {
	if !c.started || !c.rotates() {
		return
	}
	first := c.remaining
	if c.cfg.FreshIntervalOnResume || first <= 0 {
		first = c.cfg.Interval
	}
	c.remaining = 0
	c.schedule(first)
	c.log.Debug("carousel resumed", slog.Int("active", c.active), slog.Duration("next", first))
}

// Active returns the active index.
func (c *Carousel) Active() int {
	return c.active
}

// Paused reports whether any item holds the carousel.
func (c *Carousel) Paused() bool {
	return len(c.holds) > 0
}

// Running reports whether the interval timer is live.
func (c *Carousel) Running() bool {
	return c.timer.Active()
}

// Highlighted reports whether item i should be drawn as the highlight: the
// carousel rotates, nothing holds it and i is active.
func (c *Carousel) Highlighted(i int) bool {
	return !c.cfg.ReducedMotion && !c.Paused() && i == c.active
}

// State returns a render snapshot.
func (c *Carousel) State() CarouselState {
	return CarouselState{Active: c.active, Paused: c.Paused()}
}

// Dispose stops the timer for good.
func (c *Carousel) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	c.timer.Stop()
	c.log.Debug("carousel disposed")
}
