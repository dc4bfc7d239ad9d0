package sway

import (
	"errors"
	"fmt"
	"strings"
)

// Menu validation errors.
var (
	ErrEmptyLabel     = errors.New("sway: empty menu label")
	ErrDuplicateLabel = errors.New("sway: duplicate menu label")
	ErrEmptyDropdown  = errors.New("sway: dropdown has no children")
)

// NavEntry is one top-level navigation entry: a Link or a Dropdown. The set
// is closed; switch on the concrete type.
type NavEntry interface {
	EntryLabel() string
	navEntry()
}

// Link navigates straight to Target.
type Link struct {
	Label  string
	Target string
	Icon   string
}

// Dropdown expands into a panel of child destinations.
type Dropdown struct {
	Label    string
	Icon     string
	Children []NavChild
}

// NavChild is a destination inside a dropdown panel.
type NavChild struct {
	Label  string
	Target string
}

// EntryLabel implements NavEntry.
func (l Link) EntryLabel() string { return l.Label }

// EntryLabel implements NavEntry.
func (d Dropdown) EntryLabel() string { return d.Label }

func (Link) navEntry()     {}
func (Dropdown) navEntry() {}

// Menu is a validated, ordered navigation menu. Labels identify entries.
type Menu struct {
	entries []NavEntry
}

// NewMenu validates entries: every label is non-empty and unique within the
// menu, and every dropdown has at least one child. Entries are copied.
func NewMenu(entries ...NavEntry) (*Menu, error) {
	seen := make(map[string]struct{}, len(entries))
	out := make([]NavEntry, 0, len(entries))
	for i, e := range entries {
		label := e.EntryLabel()
		if label == "" {
			return nil, fmt.Errorf("entry %d: %w", i, ErrEmptyLabel)
		}
		if _, dup := seen[label]; dup {
			return nil, fmt.Errorf("entry %q: %w", label, ErrDuplicateLabel)
		}
		seen[label] = struct{}{}
		if d, ok := e.(Dropdown); ok {
			if len(d.Children) == 0 {
				return nil, fmt.Errorf("entry %q: %w", label, ErrEmptyDropdown)
			}
			d.Children = append([]NavChild(nil), d.Children...)
			e = d
		}
		out = append(out, e)
	}
	return &Menu{entries: out}, nil
}

// MustMenu is like NewMenu but panics on invalid input. It is intended for
// menus written as literals.
func MustMenu(entries ...NavEntry) *Menu {
	m, err := NewMenu(entries...)
	if err != nil {
		panic(err)
	}
	return m
}

// Len returns the number of top-level entries.
func (m *Menu) Len() int {
	return len(m.entries)
}

// At returns entry i.
func (m *Menu) At(i int) NavEntry {
	return m.entries[i]
}

// Entries returns the entries in order.
func (m *Menu) Entries() []NavEntry {
	return append([]NavEntry(nil), m.entries...)
}

// Find returns the entry with the given label.
func (m *Menu) Find(label string) (NavEntry, bool) {
	for _, e := range m.entries {
		if e.EntryLabel() == label {
			return e, true
		}
	}
	return nil, false
}

// Dropdown returns the dropdown with the given label.
func (m *Menu) Dropdown(label string) (Dropdown, bool) {
	e, ok := m.Find(label)
	if !ok {
		return Dropdown{}, false
	}
	d, ok := e.(Dropdown)
	return d, ok
}

// IsActive reports whether a destination should be highlighted at location.
// The root path matches only itself; any other target matches itself and
// everything below it. An empty target or location is never active.
func IsActive(target, location string) bool {
	if target == "" || location == "" {
		return false
	}
	if target == "/" {
		return location == "/"
	}
	return strings.HasPrefix(location, target)
}

// Highlights is the derived active state of a menu at one location.
type Highlights struct {
	// Entries[i] is true when top-level entry i is an active Link.
	// Dropdowns themselves are never active.
	Entries []bool
	// Children maps a dropdown label to the active flag of each child.
	Children map[string][]bool
}

// Any reports whether anything is highlighted.
func (h Highlights) Any() bool {
	for _, a := range h.Entries {
		if a {
			return true
		}
	}
	for _, cs := range h.Children {
		for _, a := range cs {
			if a {
				return true
			}
		}
	}
	return false
}

// Highlights derives active flags for location. It reads no state.
func (m *Menu) Highlights(location string) Highlights {
	h := Highlights{
		Entries:  make([]bool, len(m.entries)),
		Children: make(map[string][]bool),
	}
	for i, e := range m.entries {
		switch e := e.(type) {
		case Link:
			h.Entries[i] = IsActive(e.Target, location)
		case Dropdown:
			flags := make([]bool, len(e.Children))
			for j, c := range e.Children {
				flags[j] = IsActive(c.Target, location)
			}
			h.Children[e.Label] = flags
		}
	}
	return h
}

// DefaultMenu is the landing page's header menu.
func DefaultMenu() *Menu {
	return MustMenu(
		Link{Label: "Home", Target: "/", Icon: "home"},
		Dropdown{Label: "Hosting", Icon: "server", Children: []NavChild{
			{Label: "Shared Hosting", Target: "/hosting/shared"},
			{Label: "VPS Hosting", Target: "/hosting/vps"},
			{Label: "Dedicated", Target: "/hosting/dedicated"},
		}},
		Link{Label: "Contact", Target: "/contact", Icon: "mail"},
	)
}
