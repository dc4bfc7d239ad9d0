package sway

// Location reports the current path of the surrounding application shell.
// Resolving and rendering routes is the shell's job; the core only reads the
// path and reacts when it changes.
type Location interface {
	// Current returns the current path, e.g. "/hosting/vps".
	Current() string
	// Subscribe calls fn after every change of the current path. The
	// returned func cancels the subscription and is safe to call twice.
	Subscribe(fn func(path string)) (cancel func())
}

// Navigator asks the shell to go to a path. A shell that accepts the request
// reports the change through its Location.
type Navigator interface {
	Navigate(path string)
}

// ScrollSource reports the viewport's vertical scroll offset.
type ScrollSource interface {
	ScrollY() float64
	// SubscribeScroll calls fn after every change of the offset.
	SubscribeScroll(fn func(y float64)) (cancel func())
}

// listeners is an ordered set of callbacks that tolerates cancellation from
// inside a notification.
type listeners[T any] struct {
	nextID uint64
	subs   []listener[T]
}

type listener[T any] struct {
	id uint64
	fn func(T)
}

func (l *listeners[T]) add(fn func(T)) func() {
	l.nextID++
	id := l.nextID
	l.subs = append(l.subs, listener[T]{id: id, fn: fn})
	return func() { l.remove(id) }
}

func (l *listeners[T]) remove(id uint64) {
	for i := range l.subs {
		if l.subs[i].id == id {
			copy(l.subs[i:], l.subs[i+1:])
			l.subs[len(l.subs)-1] = listener[T]{}
			l.subs = l.subs[:len(l.subs)-1]
			return
		}
	}
}

func (l *listeners[T]) live(id uint64) bool {
	for i := range l.subs {
		if l.subs[i].id == id {
			return true
		}
	}
	return false
}

// notify calls every listener registered when the round starts. A callback
// may notify again (a redirect); each round works on its own snapshot.
func (l *listeners[T]) notify(v T) {
	round := append([]listener[T](nil), l.subs...)
	for _, s := range round {
		// Skip listeners cancelled by an earlier callback in this round.
		if l.live(s.id) {
			s.fn(v)
		}
	}
}

func (l *listeners[T]) len() int {
	return len(l.subs)
}

// MemoryLocation is an in-process Location and Navigator, used by the ebiten
// stage and by tests.
type MemoryLocation struct {
	path    string
	history []string
	subs    listeners[string]
}

// NewMemoryLocation starts at path.
func NewMemoryLocation(path string) *MemoryLocation {
	return &MemoryLocation{path: path}
}

// Current implements Location.
func (m *MemoryLocation) Current() string {
	return m.path
}

// Subscribe implements Location.
func (m *MemoryLocation) Subscribe(fn func(path string)) func() {
	return m.subs.add(fn)
}

// Navigate implements Navigator. Navigating to the current path is not a
// change and notifies nobody.
func (m *MemoryLocation) Navigate(path string) {
	if path == m.path {
		return
	}
	m.history = append(m.history, m.path)
	m.path = path
	m.subs.notify(path)
}

// Back returns to the previous path, if any.
func (m *MemoryLocation) Back() bool {
	if len(m.history) == 0 {
		return false
	}
	prev := m.history[len(m.history)-1]
	m.history = m.history[:len(m.history)-1]
	m.path = prev
	m.subs.notify(prev)
	return true
}

// Subscribers returns the number of live subscriptions.
func (m *MemoryLocation) Subscribers() int {
	return m.subs.len()
}

// Viewport is a ScrollSource over a page taller than the window.
type Viewport struct {
	Width, Height float64
	// ContentHeight bounds scrolling; zero means unbounded.
	ContentHeight float64

	y    float64
	subs listeners[float64]
}

// NewViewport creates a viewport scrolled to the top.
func NewViewport(width, height, contentHeight float64) *Viewport {
	return &Viewport{Width: width, Height: height, ContentHeight: contentHeight}
}

// ScrollY implements ScrollSource.
func (v *Viewport) ScrollY() float64 {
	return v.y
}

// SubscribeScroll implements ScrollSource.
func (v *Viewport) SubscribeScroll(fn func(y float64)) func() {
	return v.subs.add(fn)
}

// MaxScroll returns the largest valid offset.
func (v *Viewport) MaxScroll() float64 {
	if v.ContentHeight <= 0 {
		return -1
	}
	if m := v.ContentHeight - v.Height; m > 0 {
		return m
	}
	return 0
}

// ScrollTo moves to y, clamped to the content. Subscribers hear only real
// changes.
func (v *Viewport) ScrollTo(y float64) {
	if y < 0 {
		y = 0
	}
	if m := v.MaxScroll(); m >= 0 && y > m {
		y = m
	}
	if y == v.y {
		return
	}
	v.y = y
	v.subs.notify(y)
}

// ScrollBy moves by dy.
func (v *Viewport) ScrollBy(dy float64) {
	v.ScrollTo(v.y + dy)
}

// Subscribers returns the number of live subscriptions.
func (v *Viewport) Subscribers() int {
	return v.subs.len()
}
