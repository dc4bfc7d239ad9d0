package sway

import "time"

// Feature card hover motion.
const (
	cardLift         = -6.0
	cardLiftDuration = 200 * time.Millisecond
)

// CardState is the render snapshot of one feature card.
type CardState struct {
	Hovered bool
	// Lift is the vertical offset in pixels; negative is up.
	Lift float64
	// Spotlight is the last pointer position in card-local pixels. Lit is
	// false until the pointer has moved over the card once.
	Spotlight Vec2
	Lit       bool
}

// FeatureCard tracks one showcase card's hover lift and the spotlight that
// follows the pointer across it. Under reduced motion the card neither
// lifts nor tracks the pointer.
type FeatureCard struct {
	engine  *TweenEngine
	hovered bool
	lift    float64
	spot    Vec2
	lit     bool
	run     *Tween
}

// NewFeatureCard creates a resting card.
func NewFeatureCard(engine *TweenEngine) *FeatureCard {
	return &FeatureCard{engine: engine}
}

// Enter lifts the card.
func (c *FeatureCard) Enter() {
	if c.hovered {
		return
	}
	c.hovered = true
	c.animate(cardLift)
}

// Leave settles the card back down. The spotlight keeps its last position.
func (c *FeatureCard) Leave() {
	if !c.hovered {
		return
	}
	c.hovered = false
	c.animate(0)
}

// PointerMove records the pointer in card-local coordinates.
func (c *FeatureCard) PointerMove(localX, localY float64) {
	if c.engine.ReducedMotion() {
		return
	}
	c.spot = Vec2{X: localX, Y: localY}
	c.lit = true
}

func (c *FeatureCard) animate(to float64) {
	c.run.Cancel()
	if c.engine.ReducedMotion() {
		return
	}
	c.run = c.engine.Run(TweenSpec{
		From:     c.lift,
		To:       to,
		Duration: cardLiftDuration,
		OnSample: func(v float64) { c.lift = v },
	})
}

// Dispose stops the lift tween where it is.
func (c *FeatureCard) Dispose() {
	c.run.Cancel()
}

// State returns a render snapshot.
func (c *FeatureCard) State() CardState {
	return CardState{Hovered: c.hovered, Lift: c.lift, Spotlight: c.spot, Lit: c.lit}
}
