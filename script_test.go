package mindweaver

import "testing"

// runScript updates s until the runner is done and the queue has drained.
func runScript(t *testing.T, s *Session, r *ScriptRunner) []string {
	t.Helper()
	s.SetScriptRunner(r)
	var shots []string
	for i := 0; i < 1000; i++ {
		s.Update(1.0 / 60)
		shots = append(shots, s.TakeScreenshots()...)
		if r.Done() && s.Pending() == 0 {
			return shots
		}
	}
	t.Fatal("script did not finish")
	return nil
}

func TestLoadScript(t *testing.T) {
	data := []byte(`{
		"width": 640,
		"steps": [
			{"action": "screenshot", "label": "initial"},
			{"action": "click", "x": 100, "y": 200},
			{"action": "wait", "frames": 3},
			{"action": "search", "query": "plan"}
		]
	}`)
	r, err := LoadScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(r.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(r.steps))
	}
	if r.Width != 640 || r.Height != 800 {
		t.Errorf("size = %vx%v, want 640x800", r.Width, r.Height)
	}
	if r.steps[1].X != 100 || r.steps[1].Y != 200 {
		t.Error("step 1 mismatch")
	}
	if r.steps[3].Query != "plan" {
		t.Error("step 3 mismatch")
	}
}

func TestLoadScript_Errors(t *testing.T) {
	tests := map[string]string{
		"invalid json":   `not json`,
		"empty steps":    `{"steps": []}`,
		"missing steps":  `{}`,
		"unknown action": `{"steps": [{"action": "teleport"}]}`,
	}
	for name, in := range tests {
		if _, err := LoadScript([]byte(in)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestRunnerStep_Click(t *testing.T) {
	s, _ := newTestSession()
	r, err := LoadScript([]byte(`{"steps": [{"action": "dblclick", "x": 100, "y": 100}]}`))
	if err != nil {
		t.Fatal(err)
	}
	runScript(t, s, r)
	if f := s.State().Focus; f == nil || *f != 1 {
		t.Errorf("Focus = %v, want 1", f)
	}
}

func TestRunnerStep_Drag(t *testing.T) {
	s, store := newTestSession()
	r, err := LoadScript([]byte(`{"steps": [
		{"action": "drag", "fromX": 300, "fromY": 100, "toX": 350, "toY": 40, "frames": 6}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	runScript(t, s, r)
	if b := s.Graph().Bubble(2); b.X != 350 || b.Y != 40 {
		t.Errorf("bubble at (%f,%f), want (350,40)", b.X, b.Y)
	}
	if store.Saves != 1 {
		t.Errorf("Saves = %d, want 1", store.Saves)
	}
}

func TestRunnerStep_Wait(t *testing.T) {
	s, _ := newTestSession()
	r, err := LoadScript([]byte(`{"steps": [
		{"action": "wait", "frames": 3},
		{"action": "screenshot", "label": "late"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	s.SetScriptRunner(r)
	for i := 0; i < 3; i++ {
		s.Update(0)
		if got := s.TakeScreenshots(); got != nil {
			t.Fatalf("frame %d: screenshot %v taken during wait", i, got)
		}
	}
	s.Update(0)
	if got := s.TakeScreenshots(); len(got) != 1 || got[0] != "late" {
		t.Errorf("screenshots = %v, want [late]", got)
	}
	if !r.Done() {
		t.Error("runner not done after last step")
	}
}

func TestRunnerCommands(t *testing.T) {
	s, _ := newTestSession()
	r, err := LoadScript([]byte(`{"width": 800, "height": 600, "steps": [
		{"action": "new", "title": "Fresh"},
		{"action": "connect"},
		{"action": "click", "x": 100, "y": 100},
		{"action": "click", "x": 300, "y": 100},
		{"action": "connect"},
		{"action": "search", "query": "  FRESH "},
		{"action": "screenshot", "label": "searched"},
		{"action": "focus", "id": 2},
		{"action": "screenshot", "label": "focused"},
		{"action": "exitfocus"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	shots := runScript(t, s, r)

	g := s.Graph()
	if len(g.Bubbles) != 3 {
		t.Fatalf("len(Bubbles) = %d, want 3", len(g.Bubbles))
	}
	nb := g.Bubbles[2]
	if nb.Title != "Fresh" || nb.X != 400 || nb.Y != 300 {
		t.Errorf("new bubble = %+v, want Fresh at (400,300)", *nb)
	}
	if len(g.Connections) != 1 || g.Connections[0] != (Connection{From: 1, To: 2}) {
		t.Errorf("Connections = %v, want [{1 2}]", g.Connections)
	}
	if s.State().Connect.Active {
		t.Error("connect mode still on")
	}
	if s.State().Search != "fresh" {
		t.Errorf("Search = %q, want fresh", s.State().Search)
	}
	if s.State().Focus != nil {
		t.Error("focus not cleared")
	}
	if len(shots) != 2 || shots[0] != "searched" || shots[1] != "focused" {
		t.Errorf("screenshots = %v", shots)
	}
}

func TestRunnerWaitsForInjectQueue(t *testing.T) {
	s, _ := newTestSession()
	r, err := LoadScript([]byte(`{"steps": [
		{"action": "click", "x": 500, "y": 500},
		{"action": "screenshot", "label": "after"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	s.SetScriptRunner(r)
	s.Update(0) // queues the click, dispatches the press
	s.Update(0) // dispatches the release
	if s.TakeScreenshots() != nil {
		t.Fatal("screenshot taken before the click drained")
	}
	s.Update(0)
	if got := s.TakeScreenshots(); len(got) != 1 {
		t.Errorf("screenshots = %v, want [after]", got)
	}
}
