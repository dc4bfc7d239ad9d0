// Package stage hosts sway components in an Ebitengine window. A Stage owns
// the frame loop: it advances the FrameClock by one tick per Update, feeds
// real or scripted pointer input through a Router, turns the mouse wheel into
// Viewport scrolling and hands drawing to a user function.
package stage

import (
	"errors"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/sway"
)

const (
	defaultScreenshotDir = "screenshots"
	defaultWheelStep     = 40.0
)

// ErrNoClock is returned by New when Config.Clock is nil.
var ErrNoClock = errors.New("stage: config needs a Clock")

// Config configures a Stage.
type Config struct {
	// Width and Height are the logical screen size.
	Width, Height int

	// Clock is advanced once per Update. Required.
	Clock *sway.FrameClock
	// Router receives pointer samples and scripted input. Optional.
	Router *sway.Router
	// Scroll is moved by the mouse wheel and by script "scroll" steps.
	Scroll *sway.Viewport
	// Navigator serves script "navigate" steps.
	Navigator sway.Navigator

	// Draw renders one frame. Optional.
	Draw func(screen *ebiten.Image)
	// OnFrame runs at the end of every Update, after the clock advanced.
	OnFrame func(frame uint64)

	ShowFPS       bool
	ScreenshotDir string
	// WheelStep is the scroll distance of one wheel notch in pixels.
	WheelStep float64
	// Debug logs frame timing and live counts every second.
	Debug  bool
	Logger *slog.Logger
}

// Input is one frame of host input.
type Input struct {
	X, Y    float64
	Pressed bool
	// WheelY is the vertical wheel delta; positive scrolls up.
	WheelY float64
	// Out reports the cursor outside the window.
	Out bool
}

// Stage implements ebiten.Game around a FrameClock.
type Stage struct {
	cfg    Config
	log    *slog.Logger
	runner *Script
	frame  uint64

	screenshotQueue []string
	fps             fpsOverlay
	stats           frameStats
}

// New creates a stage. Zero fields take defaults.
func New(cfg Config) (*Stage, error) {
	if cfg.Clock == nil {
		return nil, ErrNoClock
	}
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = defaultScreenshotDir
	}
	if cfg.WheelStep <= 0 {
		cfg.WheelStep = defaultWheelStep
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Stage{cfg: cfg, log: log}, nil
}

// SetScript attaches a scripted input runner. Its steps run ahead of real
// input each frame.
func (s *Stage) SetScript(sc *Script) {
	s.runner = sc
}

// Script returns the attached runner, if any.
func (s *Stage) Script() *Script {
	return s.runner
}

// Frame returns the number of completed updates.
func (s *Stage) Frame() uint64 {
	return s.frame
}

// Update implements ebiten.Game.
func (s *Stage) Update() error {
	s.Step(s.readInput(), time.Second/time.Duration(ebiten.TPS()))
	return nil
}

func (s *Stage) readInput() Input {
	cx, cy := ebiten.CursorPosition()
	_, wy := ebiten.Wheel()
	return Input{
		X:       float64(cx),
		Y:       float64(cy),
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		WheelY:  wy,
		Out:     cx < 0 || cy < 0 || cx >= s.cfg.Width || cy >= s.cfg.Height,
	}
}

// Step runs one frame with the given input and tick length: the script
// first, then scrolling, then pointer input, then the clock.
func (s *Stage) Step(in Input, dt time.Duration) {
	t0 := time.Now()

	if s.runner != nil {
		s.runner.step(s)
	}
	if in.WheelY != 0 && s.cfg.Scroll != nil {
		s.cfg.Scroll.ScrollBy(-in.WheelY * s.cfg.WheelStep)
	}
	if rt := s.cfg.Router; rt != nil {
		switch {
		case rt.Queued() > 0 || !in.Out:
			rt.Step(in.X, in.Y, in.Pressed)
		default:
			rt.PointerOut()
		}
	}
	s.cfg.Clock.Advance(dt)
	if s.cfg.ShowFPS {
		s.fps.update(dt)
	}
	s.frame++
	if s.cfg.OnFrame != nil {
		s.cfg.OnFrame(s.frame)
	}

	s.stats.addUpdate(time.Since(t0))
	s.logStats()
}

// Draw implements ebiten.Game.
func (s *Stage) Draw(screen *ebiten.Image) {
	t0 := time.Now()
	if s.cfg.Draw != nil {
		s.cfg.Draw(screen)
	}
	if s.cfg.ShowFPS {
		s.fps.draw(screen)
	}
	s.flushScreenshots(screen)
	s.stats.addDraw(time.Since(t0))
}

// Layout implements ebiten.Game with a fixed logical size.
func (s *Stage) Layout(_, _ int) (int, int) {
	return s.cfg.Width, s.cfg.Height
}

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title     string
	Resizable bool
}

// Run opens a window and blocks until it closes.
func Run(s *Stage, cfg RunConfig) error {
	ebiten.SetWindowSize(s.cfg.Width, s.cfg.Height)
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	s.log.Info("stage running", slog.Int("width", s.cfg.Width), slog.Int("height", s.cfg.Height))
	return ebiten.RunGame(s)
}
