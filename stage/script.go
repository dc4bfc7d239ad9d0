package stage

import (
	"encoding/json"
	"fmt"
	"log/slog"
)

// scriptStep is a single action in a script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	Path   string  `json:"path,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	DY     float64 `json:"dy,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// scriptFile is the top-level JSON structure of a script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

var knownActions = map[string]bool{
	"click":      true,
	"move":       true,
	"hover":      true,
	"leave":      true,
	"scroll":     true,
	"navigate":   true,
	"wait":       true,
	"screenshot": true,
}

// Script sequences injected input, scrolling, navigation and screenshots
// across frames for automated visual checks. Attach with Stage.SetScript.
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON script:
//
//	{"steps": [
//		{"action": "hover", "fromX": 0, "fromY": 0, "toX": 640, "toY": 56, "frames": 10},
//		{"action": "click", "x": 640, "y": 188},
//		{"action": "scroll", "dy": 300},
//		{"action": "navigate", "path": "/contact"},
//		{"action": "wait", "frames": 30},
//		{"action": "screenshot", "label": "after-scroll"}
//	]}
func LoadScript(data []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range f.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// Done reports whether every step has run.
func (r *Script) Done() bool {
	return r.done
}

// Len returns the number of steps.
func (r *Script) Len() int {
	return len(r.steps)
}

// step advances the script by one frame.
func (r *Script) step(s *Stage) {
	if r.done {
		return
	}
	rt := s.cfg.Router
	// Let queued injections drain before the next step.
	if rt != nil && rt.Queued() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		s.Screenshot(st.Label)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "scroll":
		if s.cfg.Scroll != nil {
			s.cfg.Scroll.ScrollBy(st.DY)
		}
	case "navigate":
		if s.cfg.Navigator != nil {
			s.cfg.Navigator.Navigate(st.Path)
		}
	default:
		if rt == nil {
			s.log.Warn("script step needs a router", slog.String("action", st.Action))
			break
		}
		switch st.Action {
		case "click":
			rt.InjectClick(st.X, st.Y)
		case "move":
			rt.InjectMove(st.X, st.Y)
		case "hover":
			rt.InjectHover(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
		case "leave":
			rt.InjectOut()
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && (rt == nil || rt.Queued() == 0) {
		r.done = true
	}
}
