package sway

// syntheticPointerEvent is a single injected pointer sample.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
	out     bool
}

// InjectPress queues a pointer press at (x, y). Each queued event is
// consumed by one Step.
func (rt *Router) InjectPress(x, y float64) {
	rt.injectQueue = append(rt.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a pointer move to (x, y) with the button up.
func (rt *Router) InjectMove(x, y float64) {
	rt.injectQueue = append(rt.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectRelease queues a pointer release at (x, y).
func (rt *Router) InjectRelease(x, y float64) {
	rt.injectQueue = append(rt.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two steps.
func (rt *Router) InjectClick(x, y float64) {
	rt.InjectPress(x, y)
	rt.InjectRelease(x, y)
}

// InjectHover queues a glide from (fromX, fromY) to (toX, toY) over frames
// steps with the button up, so regions along the way see enter and leave.
func (rt *Router) InjectHover(fromX, fromY, toX, toY float64, frames int) {
	if frames < 1 {
		frames = 1
	}
	for i := 1; i <= frames; i++ {
		t := float64(i) / float64(frames)
		rt.InjectMove(lerp(fromX, toX, t), lerp(fromY, toY, t))
	}
}

// InjectOut queues the pointer leaving the window.
func (rt *Router) InjectOut() {
	rt.injectQueue = append(rt.injectQueue, syntheticPointerEvent{out: true})
}

// Queued returns the number of injected events not yet consumed.
func (rt *Router) Queued() int {
	return len(rt.injectQueue)
}

// Step processes one frame of input. An injected event, when queued, takes
// the frame and the real sample is ignored.
func (rt *Router) Step(x, y float64, pressed bool) {
	if rt.processInjected() {
		return
	}
	rt.Process(x, y, pressed)
}

// processInjected pops one event from the queue and feeds it through
// Process. Returns true if an event was consumed.
func (rt *Router) processInjected() bool {
	if len(rt.injectQueue) == 0 {
		return false
	}
	evt := rt.injectQueue[0]
	copy(rt.injectQueue, rt.injectQueue[1:])
	rt.injectQueue = rt.injectQueue[:len(rt.injectQueue)-1]

	if evt.out {
		rt.PointerOut()
		return true
	}
	rt.Process(evt.x, evt.y, evt.pressed)
	return true
}
