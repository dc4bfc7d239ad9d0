package sway

import (
	"testing"
	"time"
)

func newTestCarousel(cfg CarouselConfig) (*FrameClock, *Carousel) {
	c := NewFrameClock()
	if cfg.Items == 0 {
		cfg.Items = 6
	}
	car := NewCarousel(c, cfg)
	car.Start()
	return c, car
}

func TestCarouselAdvances(t *testing.T) {
	c, car := newTestCarousel(CarouselConfig{})
	var seen []int
	car.OnAdvance = func(i int) { seen = append(seen, i) }

	advanceFor(c, 2799*time.Millisecond)
	if car.Active() != 0 {
		t.Fatalf("Active = %d before the first interval", car.Active())
	}
	advanceFor(c, time.Millisecond)
	advanceFor(c, 2*DefaultCarouselInterval)
	if car.Active() != 3 {
		t.Errorf("Active = %d after three intervals, want 3", car.Active())
	}
	if len(seen) != 3 || seen[0] != 1 || seen[2] != 3 {
		t.Errorf("OnAdvance saw %v, want [1 2 3]", seen)
	}
}

func TestCarouselWraps(t *testing.T) {
	c, car := newTestCarousel(CarouselConfig{Items: 3, Interval: time.Second})
	advanceFor(c, 3*time.Second)
	if car.Active() != 0 {
		t.Errorf("Active = %d, want wrap to 0", car.Active())
	}
}

func TestCarouselPauseFinishesInterval(t *testing.T) {
	c, car := newTestCarousel(CarouselConfig{})

	advanceFor(c, 3800*time.Millisecond)
	if car.Active() != 1 {
		t.Fatalf("Active = %d at 3800ms, want 1", car.Active())
	}
	car.Enter(1)
	if c.Pending() != 0 || car.Running() {
		t.Fatalf("paused carousel holds %d timers", c.Pending())
	}
	advanceFor(c, time.Second)
	car.Leave(1)

	// 1800ms were left of the interrupted interval.
	advanceFor(c, 1799*time.Millisecond)
	if car.Active() != 1 {
		t.Fatalf("Active = %d at 6599ms, want 1", car.Active())
	}
	advanceFor(c, time.Millisecond)
	if car.Active() != 2 {
		t.Fatalf("Active = %d at 6600ms, want 2", car.Active())
	}
	advanceFor(c, DefaultCarouselInterval)
	if car.Active() != 3 {
		t.Errorf("Active = %d one interval later, want 3", car.Active())
	}
}

func TestCarouselFreshIntervalOnResume(t *testing.T) {
	c, car := newTestCarousel(CarouselConfig{FreshIntervalOnResume: true})

	advanceFor(c, 3800*time.Millisecond)
	car.Enter(1)
	advanceFor(c, time.Second)
	car.Leave(1)

	advanceFor(c, 2799*time.Millisecond)
	if car.Active() != 1 {
		t.Fatalf("Active = %d, want 1 before a full interval", car.Active())
	}
	advanceFor(c, time.Millisecond)
	if car.Active() != 2 {
		t.Errorf("Active = %d, want 2 after a full interval", car.Active())
	}
}

func TestCarouselHolds(t *testing.T) {
	c, car := newTestCarousel(CarouselConfig{})

	car.Enter(0)
	car.Focus(2)
	car.Leave(0)
	if !car.Paused() {
		t.Fatal("focus hold released with the hover")
	}
	advanceFor(c, 10*time.Second)
	if car.Active() != 0 {
		t.Fatalf("Active = %d while held", car.Active())
	}
	if car.Highlighted(0) {
		t.Error("held carousel highlights a card")
	}

	car.Blur(2)
	if car.Paused() || !car.Running() {
		t.Fatal("carousel did not resume after the last hold")
	}
	if !car.Highlighted(0) || car.Highlighted(1) {
		t.Error("Highlighted does not follow the active index")
	}
	advanceFor(c, DefaultCarouselInterval)
	if car.Active() != 1 {
		t.Errorf("Active = %d after resume, want 1", car.Active())
	}
}

func TestCarouselIgnoresStrayReleases(t *testing.T) {
	c, car := newTestCarousel(CarouselConfig{})
	car.Leave(0)
	car.Blur(4)
	car.Enter(99)
	car.Enter(-1)
	if car.Paused() || c.Pending() != 1 {
		t.Errorf("paused %v pending %d", car.Paused(), c.Pending())
	}
}

func TestCarouselHoldBeforeStart(t *testing.T) {
	c := NewFrameClock()
	car := NewCarousel(c, CarouselConfig{Items: 6})
	car.Enter(0)
	car.Start()
	if c.Pending() != 0 {
		t.Fatal("carousel started its timer while held")
	}
	car.Leave(0)
	advanceFor(c, DefaultCarouselInterval)
	if car.Active() != 1 {
		t.Errorf("Active = %d, want 1", car.Active())
	}
}

func TestCarouselReducedMotion(t *testing.T) {
	c, car := newTestCarousel(CarouselConfig{ReducedMotion: true})
	if c.Pending() != 0 {
		t.Fatalf("Pending = %d, want no timer", c.Pending())
	}
	advanceFor(c, 30*time.Second)
	car.Enter(0)
	car.Leave(0)
	if car.Active() != 0 || c.Pending() != 0 {
		t.Errorf("Active = %d pending = %d", car.Active(), c.Pending())
	}
}

func TestCarouselSingleItem(t *testing.T) {
	c, car := newTestCarousel(CarouselConfig{Items: 1})
	advanceFor(c, 10*time.Second)
	if car.Active() != 0 || c.Pending() != 0 {
		t.Errorf("Active = %d pending = %d", car.Active(), c.Pending())
	}
}

func TestCarouselDispose(t *testing.T) {
	c, car := newTestCarousel(CarouselConfig{})
	car.Dispose()
	car.Dispose()
	if c.Pending() != 0 {
		t.Fatalf("Pending = %d after Dispose", c.Pending())
	}
	car.Enter(0)
	car.Leave(0)
	car.Start()
	advanceFor(c, 10*time.Second)
	if car.Active() != 0 || c.Pending() != 0 {
		t.Errorf("disposed carousel moved: active %d pending %d", car.Active(), c.Pending())
	}
}

func TestCarouselState(t *testing.T) {
	_, car := newTestCarousel(CarouselConfig{})
	car.Focus(3)
	if got := car.State(); got != (CarouselState{Active: 0, Paused: true}) {
		t.Errorf("State = %+v", got)
	}
}
