package sway

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
)

// envPrefix namespaces every variable LoadConfig reads.
const envPrefix = "SWAY_"

// Config holds the page's motion constants and host preferences.
type Config struct {
	ReducedMotion    bool          `env:"REDUCED_MOTION" envDefault:"false"`
	ScrollThreshold  float64       `env:"SCROLL_THRESHOLD" envDefault:"12"`
	CarouselInterval time.Duration `env:"CAROUSEL_INTERVAL" envDefault:"2800ms"`
	FreshResume      bool          `env:"CAROUSEL_FRESH_RESUME" envDefault:"false"`
	CounterDuration  time.Duration `env:"COUNTER_DURATION" envDefault:"1200ms"`

	TiltXFrom  float64 `env:"TILT_X_FROM" envDefault:"6"`
	TiltXTo    float64 `env:"TILT_X_TO" envDefault:"-6"`
	TiltYFrom  float64 `env:"TILT_Y_FROM" envDefault:"-10"`
	TiltYTo    float64 `env:"TILT_Y_TO" envDefault:"10"`
	ChipTravel float64 `env:"CHIP_TRAVEL" envDefault:"10"`
	Stiffness  float64 `env:"STIFFNESS" envDefault:"220"`

	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	Debug       bool   `env:"DEBUG" envDefault:"false"`
	InspectAddr string `env:"INSPECT_ADDR"`
}

// DefaultConfig returns the landing page's constants without reading the
// environment.
func DefaultConfig() Config {
	return Config{
		ScrollThreshold:  DefaultScrollThreshold,
		CarouselInterval: DefaultCarouselInterval,
		CounterDuration:  DefaultCounterDuration,
		TiltXFrom:        6,
		TiltXTo:          -6,
		TiltYFrom:        -10,
		TiltYTo:          10,
		ChipTravel:       10,
		Stiffness:        DefaultStiffness,
		LogLevel:         "info",
	}
}

// LoadConfig reads SWAY_* variables from the process environment over the
// defaults.
func LoadConfig() (Config, error) {
	return loadConfig(env.Options{Prefix: envPrefix})
}

// LoadConfigFrom is LoadConfig over an explicit variable set, keys including
// the SWAY_ prefix.
func LoadConfigFrom(vars map[string]string) (Config, error) {
	return loadConfig(env.Options{Prefix: envPrefix, Environment: vars})
}

func loadConfig(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values no component can work with.
func (c Config) Validate() error {
	if c.ScrollThreshold < 0 {
		return fmt.Errorf("sway: scroll threshold %v is negative", c.ScrollThreshold)
	}
	if c.CarouselInterval <= 0 {
		return fmt.Errorf("sway: carousel interval %v must be positive", c.CarouselInterval)
	}
	if c.CounterDuration < 0 {
		return fmt.Errorf("sway: counter duration %v is negative", c.CounterDuration)
	}
	if c.Stiffness <= 0 {
		return fmt.Errorf("sway: stiffness %v must be positive", c.Stiffness)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses LogLevel ("debug", "info", "warn", "error").
func (c Config) SlogLevel() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("sway: log level %q: %w", c.LogLevel, err)
	}
	return l, nil
}

// Parallax returns the tilt constants.
func (c Config) Parallax() ParallaxConfig {
	return ParallaxConfig{
		RotateX:    Range{From: c.TiltXFrom, To: c.TiltXTo},
		RotateY:    Range{From: c.TiltYFrom, To: c.TiltYTo},
		ChipTravel: c.ChipTravel,
		Stiffness:  c.Stiffness,
	}
}

// Carousel returns a carousel configuration for items.
func (c Config) Carousel(items int) CarouselConfig {
	return CarouselConfig{
		Items:                 items,
		Interval:              c.CarouselInterval,
		FreshIntervalOnResume: c.FreshResume,
		ReducedMotion:         c.ReducedMotion,
	}
}

// Counter returns a count-up from 0 to to.
func (c Config) Counter(to float64, suffix string) CounterSpec {
	return CounterSpec{To: to, Duration: c.CounterDuration, Suffix: suffix}
}
