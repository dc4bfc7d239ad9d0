package sway

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

const (
	// DefaultStiffness matches the hero tilt spring. The angular frequency
	// is its square root (unit mass).
	DefaultStiffness = 220.0

	springFPS      = 60
	springMaxSteps = 10 * springFPS
	restDelta      = 1e-3
	restSpeed      = 1e-3
)

// Spring continuously eases a value toward a moving goal with a critically
// damped response. While the goal keeps changing it never terminates; once
// the goal holds still it settles, snaps onto the goal and drops its tick
// subscription until the next SetTarget.
//
// Integration runs at a fixed 60 Hz sub-step regardless of the host frame
// rate, so the response is identical under a fake clock and a real one.
type Spring struct {
	sched    Scheduler
	spring   harmonica.Spring
	step     time.Duration
	pos      float64
	vel      float64
	goal     float64
	accum    time.Duration
	timer    *Timer
	reduced  bool
	disposed bool

	// OnUpdate, when set, receives the position after every tick and after
	// snaps.
	OnUpdate func(v float64)
}

// NewSpring creates a spring at rest at zero. A non-positive stiffness falls
// back to DefaultStiffness. With reducedMotion every SetTarget snaps.
func NewSpring(sched Scheduler, stiffness float64, reducedMotion bool) *Spring {
	if stiffness <= 0 {
		stiffness = DefaultStiffness
	}
	return &Spring{
		sched:   sched,
		spring:  harmonica.NewSpring(harmonica.FPS(springFPS), math.Sqrt(stiffness), 1.0),
		step:    time.Second / springFPS,
		reduced: reducedMotion,
	}
}

// SetTarget retargets the spring. Velocity is preserved so a moving goal
// produces a continuous path.
func (s *Spring) SetTarget(goal float64) {
	if s.disposed {
		return
	}
	s.goal = goal
	if s.reduced {
		s.snap()
		return
	}
	if s.pos == goal && s.vel == 0 {
		return
	}
	if !s.timer.Active() {
		s.accum = 0
		s.timer = s.sched.OnTick(s.update)
	}
}

// Jump places the spring on value at rest, without animating.
func (s *Spring) Jump(value float64) {
	if s.disposed {
		return
	}
	s.goal = value
	s.snap()
}

func (s *Spring) update(dt time.Duration) {
	s.accum += dt
	steps := 0
	for s.accum >= s.step {
		s.accum -= s.step
		s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.goal)
		steps++
		if steps >= springMaxSteps {
			// A stall this long means the host stopped ticking; land on the goal.
			s.snap()
			return
		}
	}
	if math.Abs(s.pos-s.goal) < restDelta && math.Abs(s.vel) < restSpeed {
		s.snap()
		return
	}
	if s.OnUpdate != nil {
		s.OnUpdate(s.pos)
	}
}

func (s *Spring) snap() {
	s.pos = s.goal
	s.vel = 0
	s.accum = 0
	s.timer.Stop()
	if s.OnUpdate != nil {
		s.OnUpdate(s.pos)
	}
}

// Value returns the current position.
func (s *Spring) Value() float64 {
	return s.pos
}

// Velocity returns the current velocity in units per second.
func (s *Spring) Velocity() float64 {
	return s.vel
}

// Goal returns the current target.
func (s *Spring) Goal() float64 {
	return s.goal
}

// Settled reports whether the spring is at rest on its goal.
func (s *Spring) Settled() bool {
	return !s.timer.Active()
}

// Dispose stops the spring for good. The position stays where it is.
func (s *Spring) Dispose() {
	s.disposed = true
	s.timer.Stop()
}
