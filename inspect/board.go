// Package inspect serves a read-only view of a running landing page over
// HTTP. The stage publishes snapshots to a Board from its update loop; the
// handler only ever reads the latest copy.
package inspect

import (
	"sync"
	"time"

	"github.com/phanxgames/sway"
)

// State is the published summary of one frame.
type State struct {
	Frame     uint64    `json:"frame"`
	Published time.Time `json:"published"`

	Location     string  `json:"location"`
	Mode         string  `json:"mode"`
	OpenDropdown string  `json:"openDropdown,omitempty"`
	MobileOpen   bool    `json:"mobileOpen"`
	Scrolled     bool    `json:"scrolled"`
	HeaderHeight float64 `json:"headerHeight"`
	Language     string  `json:"language"`
	LanguageOpen bool    `json:"languageOpen"`

	ScrollY        float64  `json:"scrollY"`
	ActiveFeature  int      `json:"activeFeature"`
	FeaturesPaused bool     `json:"featuresPaused"`
	Stats          []string `json:"stats"`
	TiltX          float64  `json:"tiltX"`
	TiltY          float64  `json:"tiltY"`
}

// FromSnapshot flattens a landing snapshot taken at frame.
func FromSnapshot(frame uint64, snap sway.LandingSnapshot) State {
	nav := snap.Nav
	return State{
		Frame:          frame,
		Location:       nav.Location,
		Mode:           nav.Mode.String(),
		OpenDropdown:   nav.State.OpenDropdown,
		MobileOpen:     nav.State.MobileOpen,
		Scrolled:       nav.State.Scrolled,
		HeaderHeight:   nav.Header.Height,
		Language:       nav.Language.Selected.Code,
		LanguageOpen:   nav.Language.Open,
		ScrollY:        snap.ScrollY,
		ActiveFeature:  snap.Features.Active,
		FeaturesPaused: snap.Features.Paused,
		Stats:          append([]string(nil), snap.Hero.Stats...),
		TiltX:          snap.Hero.Parallax.Tilt.RotateX,
		TiltY:          snap.Hero.Parallax.Tilt.RotateY,
	}
}

// Board holds the most recent State. Safe for concurrent use.
type Board struct {
	mu     sync.Mutex
	latest State
	ok     bool
	now    func() time.Time
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{now: time.Now}
}

// Publish replaces the latest state.
func (b *Board) Publish(s State) {
	s.Stats = append([]string(nil), s.Stats...)
	b.mu.Lock()
	defer b.mu.Unlock()
	if s.Published.IsZero() {
		s.Published = b.now()
	}
	b.latest = s
	b.ok = true
}

// Latest returns the last published state and whether there is one.
func (b *Board) Latest() (State, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	s := b.latest
	s.Stats = append([]string(nil), s.Stats...)
	return s, b.ok
}
