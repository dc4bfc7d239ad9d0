package sway

import "sort"

// --- Built-in HitShape types ---

// HitShape is anything that can answer a containment query in screen
// coordinates.
type HitShape interface {
	Contains(x, y float64) bool
}

// HitRect is an axis-aligned rectangular hit area.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Rect returns the hit area as a Rect.
func (r HitRect) Rect() Rect {
	return Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

// HitCircle is a circular hit area.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// --- Regions ---

// PointerContext describes a pointer event delivered to a handler.
type PointerContext struct {
	Type   EventType
	Region *Region // nil when the pointer is over no region
	X, Y   float64
	// LocalX and LocalY are relative to the region's bounds, when the region
	// has a rectangular shape.
	LocalX, LocalY float64
}

// Region is an interactive area registered with a Router. Shape may be
// replaced at any time, e.g. after a layout pass.
type Region struct {
	Name     string
	Shape    HitShape
	Z        int
	Disabled bool
	UserData any

	OnPointerDown  func(PointerContext)
	OnPointerUp    func(PointerContext)
	OnPointerMove  func(PointerContext)
	OnPointerEnter func(PointerContext)
	OnPointerLeave func(PointerContext)
	OnClick        func(PointerContext)

	router *Router
	seq    uint64
}

// Contains reports whether the region's shape contains (x, y).
func (r *Region) Contains(x, y float64) bool {
	return r != nil && r.Shape != nil && r.Shape.Contains(x, y)
}

func (r *Region) handler(t EventType) func(PointerContext) {
	switch t {
	case EventPointerDown:
		return r.OnPointerDown
	case EventPointerUp:
		return r.OnPointerUp
	case EventPointerMove:
		return r.OnPointerMove
	case EventPointerEnter:
		return r.OnPointerEnter
	case EventPointerLeave:
		return r.OnPointerLeave
	case EventClick:
		return r.OnClick
	}
	return nil
}

// --- Handler registry ---

const eventTypeCount = int(EventPointerLeave) + 1

type pointerHandler struct {
	id uint32
	fn func(PointerContext)
}

type handlerRegistry struct {
	byType [eventTypeCount][]pointerHandler
	nextID uint32
}

// CallbackHandle allows removing a registered router-level callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires. Removing twice is
// a no-op.
func (h CallbackHandle) Remove() {
	if h.reg == nil || int(h.event) >= eventTypeCount {
		return
	}
	s := h.reg.byType[h.event]
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = pointerHandler{}
			h.reg.byType[h.event] = s[:len(s)-1]
			return
		}
	}
}

// --- Router ---

type pointerState struct {
	down    bool
	lastX   float64
	lastY   float64
	moved   bool
	hitRgn  *Region
	hoverRg *Region
}

// Router hit-tests pointer samples against registered regions and turns
// them into enter/leave, move, down, up and click events. Router-level
// handlers see every event, including those over no region, which is what
// outside-click detection needs.
type Router struct {
	regions     []*Region
	seq         uint64
	sorted      bool
	handlers    handlerRegistry
	ptr         pointerState
	injectQueue []syntheticPointerEvent
	dispatchBuf []pointerHandler
}

// NewRouter creates an empty router.
func NewRouter() *Router {
	return &Router{sorted: true}
}

// Add registers r and returns it. Later registrations sit on top of earlier
// ones with the same Z.
func (rt *Router) Add(r *Region) *Region {
	if r.router == rt {
		return r
	}
	rt.seq++
	r.router = rt
	r.seq = rt.seq
	rt.regions = append(rt.regions, r)
	rt.sorted = false
	return r
}

// Remove unregisters r. If the pointer was over r no leave event fires.
func (rt *Router) Remove(r *Region) {
	if r == nil || r.router != rt {
		return
	}
	for i, x := range rt.regions {
		if x == r {
			copy(rt.regions[i:], rt.regions[i+1:])
			rt.regions[len(rt.regions)-1] = nil
			rt.regions = rt.regions[:len(rt.regions)-1]
			break
		}
	}
	r.router = nil
	if rt.ptr.hoverRg == r {
		rt.ptr.hoverRg = nil
	}
	if rt.ptr.hitRgn == r {
		rt.ptr.hitRgn = nil
	}
}

// Regions returns the number of registered regions.
func (rt *Router) Regions() int {
	return len(rt.regions)
}

// Hovered returns the region under the pointer after the last sample.
func (rt *Router) Hovered() *Region {
	return rt.ptr.hoverRg
}

// Pointer returns the last pointer position and button state.
func (rt *Router) Pointer() (x, y float64, down bool) {
	return rt.ptr.lastX, rt.ptr.lastY, rt.ptr.down
}

func (rt *Router) sortRegions() {
	if rt.sorted {
		return
	}
	sort.SliceStable(rt.regions, func(i, j int) bool {
		a, b := rt.regions[i], rt.regions[j]
		if a.Z != b.Z {
			return a.Z < b.Z
		}
		return a.seq < b.seq
	})
	rt.sorted = true
}

// HitTest finds the topmost enabled region containing (x, y).
func (rt *Router) HitTest(x, y float64) *Region {
	rt.sortRegions()
	for i := len(rt.regions) - 1; i >= 0; i-- {
		r := rt.regions[i]
		if !r.Disabled && r.Contains(x, y) {
			return r
		}
	}
	return nil
}

// --- Router-level event registration ---

func (rt *Router) on(t EventType, fn func(PointerContext)) CallbackHandle {
	rt.handlers.nextID++
	id := rt.handlers.nextID
	rt.handlers.byType[t] = append(rt.handlers.byType[t], pointerHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &rt.handlers, event: t}
}

// OnPointerDown registers a router-level callback for pointer down events.
func (rt *Router) OnPointerDown(fn func(PointerContext)) CallbackHandle {
	return rt.on(EventPointerDown, fn)
}

// OnPointerUp registers a router-level callback for pointer up events.
func (rt *Router) OnPointerUp(fn func(PointerContext)) CallbackHandle {
	return rt.on(EventPointerUp, fn)
}

// OnPointerMove registers a router-level callback for pointer move events.
func (rt *Router) OnPointerMove(fn func(PointerContext)) CallbackHandle {
	return rt.on(EventPointerMove, fn)
}

// OnPointerEnter registers a router-level callback fired when the pointer
// moves over a new region.
func (rt *Router) OnPointerEnter(fn func(PointerContext)) CallbackHandle {
	return rt.on(EventPointerEnter, fn)
}

// OnPointerLeave registers a router-level callback fired when the pointer
// leaves a region.
func (rt *Router) OnPointerLeave(fn func(PointerContext)) CallbackHandle {
	return rt.on(EventPointerLeave, fn)
}

// OnClick registers a router-level callback for click events.
func (rt *Router) OnClick(fn func(PointerContext)) CallbackHandle {
	return rt.on(EventClick, fn)
}

// Handlers returns the number of router-level callbacks for t.
func (rt *Router) Handlers(t EventType) int {
	if int(t) >= eventTypeCount {
		return 0
	}
	return len(rt.handlers.byType[t])
}

// --- Input processing ---

// Process runs the pointer state machine for one sample: hover changes fire
// leave then enter, a changed position fires move, then a press fires down
// and a release fires click (when it lands on the region that was pressed)
// then up.
func (rt *Router) Process(x, y float64, pressed bool) {
	ps := &rt.ptr
	target := rt.HitTest(x, y)

	if target != ps.hoverRg {
		if ps.hoverRg != nil {
			rt.fire(EventPointerLeave, ps.hoverRg, x, y)
		}
		if target != nil {
			rt.fire(EventPointerEnter, target, x, y)
		}
		ps.hoverRg = target
	}

	moved := !ps.moved || x != ps.lastX || y != ps.lastY
	ps.lastX, ps.lastY, ps.moved = x, y, true
	if moved {
		rt.fire(EventPointerMove, target, x, y)
	}

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.hitRgn = target
		rt.fire(EventPointerDown, target, x, y)
	case !pressed && ps.down:
		if ps.hitRgn != nil && ps.hitRgn == target {
			rt.fire(EventClick, target, x, y)
		}
		rt.fire(EventPointerUp, target, x, y)
		ps.down = false
		ps.hitRgn = nil
	}
}

// PointerOut reports that the pointer left the window. The hovered region,
// if any, receives a leave event.
func (rt *Router) PointerOut() {
	ps := &rt.ptr
	if ps.hoverRg != nil {
		rt.fire(EventPointerLeave, ps.hoverRg, ps.lastX, ps.lastY)
		ps.hoverRg = nil
	}
}

// fire delivers an event to router-level handlers first, then to the
// region's own callback.
func (rt *Router) fire(t EventType, r *Region, x, y float64) {
	ctx := PointerContext{Type: t, Region: r, X: x, Y: y}
	if r != nil {
		if hr, ok := r.Shape.(HitRect); ok {
			ctx.LocalX, ctx.LocalY = x-hr.X, y-hr.Y
		}
	}
	// Snapshot so handlers may unregister themselves while we iterate.
	rt.dispatchBuf = append(rt.dispatchBuf[:0], rt.handlers.byType[t]...)
	for _, h := range rt.dispatchBuf {
		h.fn(ctx)
	}
	clear(rt.dispatchBuf)
	if r != nil {
		if fn := r.handler(t); fn != nil {
			fn(ctx)
		}
	}
}
