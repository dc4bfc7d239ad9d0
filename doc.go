// Package sway is the motion and interaction core of a hosting company's
// landing page, rendered with [Ebitengine].
//
// Everything runs on one [FrameClock]: the host advances it once per frame
// and every timer, tween, spring and ambient loop the page owns is driven
// from there. Tests advance the same clock by hand, so every animation is
// deterministic.
//
// # Quick start
//
// [Landing] composes the page. Give it a clock, mount it, and feed pointer
// input into its [Router] each frame:
//
//	clock := sway.NewFrameClock()
//	page, err := sway.NewLanding(clock, sway.LandingOptions{
//		Config: sway.DefaultConfig(), Width: 1280, Height: 720,
//	})
//	if err != nil {
//		return err
//	}
//	page.Mount()
//	defer page.Dispose()
//
//	// per frame
//	page.Router().Step(x, y, pressed)
//	clock.Advance(time.Second / 60)
//	snap := page.Snapshot()
//
// The stage subpackage wraps this loop in an [ebiten.Game]; the inspect
// subpackage serves snapshots over HTTP.
//
// # Navigation
//
// [NavState] is the header's pure state machine: one open dropdown at most,
// a mobile menu, and a scrolled flag that never interacts with the other
// two. [Navbar] binds it to a [Location], a [ScrollSource] and the router's
// global pointer-down, and animates the header and panels with tweens.
//
// # Motion
//
// [Parallax] tilts the hero card toward the pointer through critically
// damped springs (via [harmonica]). [Counter] counts the hero statistics up
// with gween easing (via [gween]). [Carousel] rotates the feature highlight
// and pauses while any card is hovered or focused. [FieldMotion] loops the
// ambient particle fields generated by [GenerateField], which reads no
// entropy so the first paint equals every later one.
//
// # Configuration
//
// [LoadConfig] reads SWAY_* environment variables over [DefaultConfig].
// ReducedMotion freezes every animation at its end state.
//
// [Ebitengine]: https://ebitengine.org
// [harmonica]: https://github.com/charmbracelet/harmonica
// [gween]: https://github.com/tanema/gween
package sway
