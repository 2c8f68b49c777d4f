package marquee

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in a script.
type scriptStep struct {
	Action string  `json:"action"`
	Target string  `json:"target,omitempty"`
	Node   string  `json:"node,omitempty"`
	Label  string  `json:"label,omitempty"`
	Value  float64 `json:"value,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

var scriptActions = map[string]bool{
	"play": true, "pause": true, "toggle": true, "reverse": true,
	"speed": true, "factor": true, "direction": true,
	"wait": true, "resize": true, "screenshot": true,
}

// Script sequences engine commands across frames for reproducible demos and
// automated visual checks. Attach it to a Scene via SetScript.
//
// Steps address engines by container name through "target"; an empty target
// applies the step to every engine in the scene. "resize" looks its node up
// by Key first, then by Name among the root's descendants.
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool

	// OnScreenshot is called for "screenshot" steps. Hosts that can capture
	// frames set it.
	OnScreenshot func(label string)
}

// LoadScript parses a JSON script.
func LoadScript(jsonData []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(jsonData, &f); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range f.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// Done reports whether all steps have been executed.
func (r *Script) Done() bool {
	return r.done
}

// step advances the script by one frame. Called from Scene.Update.
func (r *Script) step(s *Scene) {
	if r.done {
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
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "screenshot":
		if r.OnScreenshot != nil {
			r.OnScreenshot(st.Label)
		}
	case "resize":
		n := s.root.FindByKey(st.Node)
		if n == nil {
			n = findByName(s.root, st.Node)
		}
		if n != nil {
			n.SetSize(st.Width, st.Height)
		}
	default:
		for _, e := range r.targets(s, st.Target) {
			applyStep(e, st)
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}

func (r *Script) targets(s *Scene, name string) []*Engine {
	if name == "" {
		return s.engines
	}
	if e := s.Marquee(name); e != nil {
		return []*Engine{e}
	}
	return nil
}

func applyStep(e *Engine, st scriptStep) {
	switch st.Action {
	case "play":
		e.Play()
	case "pause":
		e.Pause()
	case "toggle":
		e.Toggle()
	case "reverse":
		e.Reverse()
	case "speed":
		e.SetSpeed(st.Value)
	case "factor":
		e.SetSpeedFactor(st.Value)
	case "direction":
		e.SetDirection(Direction(st.Value))
	}
}

func findByName(n *Node, name string) *Node {
	if name == "" {
		return nil
	}
	if n.Name == name {
		return n
	}
	for _, c := range n.children {
		if found := findByName(c, name); found != nil {
			return found
		}
	}
	return nil
}
