package sway

// DefaultScrollThreshold is the scroll offset past which the header shrinks.
const DefaultScrollThreshold = 12.0

// NavState is the navigation header's state. The zero value is fully closed
// and unscrolled.
type NavState struct {
	// OpenDropdown is the label of the open dropdown, or "".
	OpenDropdown string
	MobileOpen   bool
	// Scrolled is orthogonal to the open/closed states and only affects
	// sizing.
	Scrolled bool
}

// NavMode names the open/closed part of a NavState.
type NavMode uint8

const (
	NavClosed NavMode = iota
	NavDropdownOpen
	NavMobileOpen
	NavMobileDropdownOpen
)

// String returns the mode name.
func (m NavMode) String() string {
	switch m {
	case NavClosed:
		return "closed"
	case NavDropdownOpen:
		return "dropdown"
	case NavMobileOpen:
		return "mobile"
	case NavMobileDropdownOpen:
		return "mobile+dropdown"
	default:
		return "unknown"
	}
}

// Mode derives the open/closed mode.
func (s NavState) Mode() NavMode {
	switch {
	case s.MobileOpen && s.OpenDropdown != "":
		return NavMobileDropdownOpen
	case s.MobileOpen:
		return NavMobileOpen
	case s.OpenDropdown != "":
		return NavDropdownOpen
	default:
		return NavClosed
	}
}

// Closed reports whether no dropdown and no mobile menu is open.
func (s NavState) Closed() bool {
	return s.Mode() == NavClosed
}

// closed returns s with every menu collapsed. Scrolled is kept.
func (s NavState) closed() NavState {
	return NavState{Scrolled: s.Scrolled}
}

// NavEvent is an input to Transition.
type NavEvent interface {
	navEvent()
}

// ToggleDropdown is a click on dropdown Label's trigger.
type ToggleDropdown struct{ Label string }

// HoverDropdown is the pointer entering dropdown Label's trigger.
type HoverDropdown struct{ Label string }

// LeavePanel is the pointer leaving the open dropdown's panel.
type LeavePanel struct{}

// ClickOutside is a press outside the navigation root.
type ClickOutside struct{}

// ToggleMobile is a click on the mobile menu button.
type ToggleMobile struct{}

// Navigate is a click on any destination, link or dropdown child.
type Navigate struct{ Target string }

// LocationChanged reports a new current location, whatever caused it.
type LocationChanged struct{ Path string }

// FocusLeave reports keyboard focus leaving the navigation region.
type FocusLeave struct{}

// Scroll reports a new viewport scroll offset.
type Scroll struct {
	Y         float64
	Threshold float64
}

func (ToggleDropdown) navEvent()  {}
func (HoverDropdown) navEvent()   {}
func (LeavePanel) navEvent()      {}
func (ClickOutside) navEvent()    {}
func (ToggleMobile) navEvent()    {}
func (Navigate) navEvent()        {}
func (LocationChanged) navEvent() {}
func (FocusLeave) navEvent()      {}
func (Scroll) navEvent()          {}

// Transition returns the state after ev. It is total: events that do not
// apply, such as an empty label or a nil event, return s unchanged. Labels
// are not checked against a menu; the Navbar does that before calling.
func Transition(s NavState, ev NavEvent) NavState {
	switch ev := ev.(type) {
	case ToggleDropdown:
		if ev.Label == "" {
			return s
		}
		if s.OpenDropdown == ev.Label {
			s.OpenDropdown = ""
		} else {
			s.OpenDropdown = ev.Label
		}
		return s
	case HoverDropdown:
		if ev.Label == "" || s.MobileOpen {
			return s
		}
		s.OpenDropdown = ev.Label
		return s
	case LeavePanel:
		if s.MobileOpen {
			return s
		}
		s.OpenDropdown = ""
		return s
	case ToggleMobile:
		if s.MobileOpen {
			return s.closed()
		}
		s.MobileOpen = true
		s.OpenDropdown = ""
		return s
	case ClickOutside, Navigate, LocationChanged, FocusLeave:
		return s.closed()
	case Scroll:
		th := ev.Threshold
		if th <= 0 {
			th = DefaultScrollThreshold
		}
		s.Scrolled = ev.Y > th
		return s
	default:
		return s
	}
}
