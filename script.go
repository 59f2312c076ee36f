package mindweaver

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in a replay script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	DeltaY float64 `json:"deltaY,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Query  string  `json:"query,omitempty"`
	ID     int64   `json:"id,omitempty"`
	Title  string  `json:"title,omitempty"`
}

// script is the top-level JSON structure of a replay script.
type script struct {
	Width  float64      `json:"width,omitempty"`
	Height float64      `json:"height,omitempty"`
	Steps  []scriptStep `json:"steps"`
}

var scriptActions = map[string]bool{
	"press": true, "move": true, "release": true, "click": true,
	"drag": true, "dblclick": true, "contextmenu": true, "wheel": true,
	"new": true, "connect": true, "search": true, "focus": true,
	"exitfocus": true, "screenshot": true, "wait": true,
}

// ScriptRunner sequences injected input, commands and screenshots across
// frames. Attach it to a Session with SetScriptRunner; it advances on every
// Session.Update.
type ScriptRunner struct {
	// Width and Height are the surface size used by "new".
	Width, Height float64

	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON replay script.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var sc script
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, fmt.Errorf("mindweaver: parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("mindweaver: parse script: no steps")
	}
	for i, st := range sc.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("mindweaver: parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	r := &ScriptRunner{Width: sc.Width, Height: sc.Height, steps: sc.Steps}
	if r.Width <= 0 {
		r.Width = 1280
	}
	if r.Height <= 0 {
		r.Height = 800
	}
	return r, nil
}

// SetScriptRunner attaches a runner. Its step method is called from
// Session.Update before injected input is processed.
func (s *Session) SetScriptRunner(r *ScriptRunner) {
	s.runner = r
}

// Done reports whether every step has been executed and all injected input
// has drained.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame.
func (r *ScriptRunner) step(s *Session) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(s.injectQueue) > 0 {
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
	r.exec(s, st)

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}

func (r *ScriptRunner) exec(s *Session, st scriptStep) {
	switch st.Action {
	case "press":
		s.InjectPress(st.X, st.Y)
	case "move":
		s.InjectMove(st.X, st.Y)
	case "release":
		s.InjectRelease(st.X, st.Y)
	case "click":
		s.InjectClick(st.X, st.Y)
	case "drag":
		s.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "dblclick":
		s.InjectDoubleClick(st.X, st.Y)
	case "contextmenu":
		s.InjectContextMenu(st.X, st.Y)
	case "wheel":
		s.InjectWheel(st.X, st.Y, st.DeltaY)
	case "new":
		b := s.NewBubble(r.Width, r.Height)
		if st.Title != "" {
			f := b.Fields()
			f.Title = st.Title
			s.ApplyEdit(b.ID, f)
		}
	case "connect":
		s.ToggleConnectMode()
	case "search":
		s.SetSearch(st.Query)
	case "focus":
		s.Focus(BubbleID(st.ID))
	case "exitfocus":
		s.ExitFocus()
	case "screenshot":
		s.Screenshot(st.Label)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}
}
