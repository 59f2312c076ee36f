package mindweaver

import (
	"fmt"
	"io"
	"log"
	"time"
)

// ResetPrompt is the confirmation question shown before Reset clears the map.
const ResetPrompt = "Reset the whole map? This cannot be undone."

// SessionConfig configures a Session.
type SessionConfig struct {
	// Store loads the initial map and receives every save. Nil means an
	// in-memory store.
	Store Store
	// Editor is opened on context clicks and new bubbles. May be nil.
	Editor Editor
	// Defaults are the field values of new bubbles. Zero means
	// DefaultBubbleDefaults.
	Defaults BubbleDefaults
	// MinScale and MaxScale bound the zoom. Zero disables a bound.
	MinScale, MaxScale float64
}

// Session owns the whole application state: graph, viewport, pointer and
// connect state, focus and search. Input goes in through Dispatch and the
// command methods; persistence, editing and redraws go out through the
// configured Store, Editor and callbacks.
//
// A Session is not safe for concurrent use.
type Session struct {
	state    *State
	store    Store
	editor   Editor
	renderer Renderer
	defaults BubbleDefaults
	debug    bool

	// OnRender is called synchronously whenever the drawn picture changed.
	// It runs before the call that caused it returns.
	OnRender func()
	// OnFocusChange is called with true when a bubble gets focused and with
	// false when focus is cleared.
	OnFocusChange func(focused bool)
	// OnCursor is called after every dispatched event with the pointer shape
	// to show.
	OnCursor func(Cursor)

	injectQueue     []Event
	screenshotQueue []string
	runner          *ScriptRunner
}

// NewSession loads the map from cfg.Store and returns a session over it.
func NewSession(cfg SessionConfig) *Session {
	store := cfg.Store
	if store == nil {
		store = &MemoryStore{}
	}
	defaults := cfg.Defaults
	if defaults.Title == "" && defaults.Icon == "" && len(defaults.Palette) == 0 {
		defaults = DefaultBubbleDefaults()
	}
	st := NewState(store.Load())
	st.Viewport.MinScale = cfg.MinScale
	st.Viewport.MaxScale = cfg.MaxScale
	return &Session{
		state:    st,
		store:    store,
		editor:   cfg.Editor,
		defaults: defaults,
	}
}

// State returns the live state. Callers may read it freely; mutations should
// go through the session so saves and redraws happen.
func (s *Session) State() *State { return s.state }

// Graph returns the live graph.
func (s *Session) Graph() *Graph { return s.state.Graph }

// Viewport returns the live viewport.
func (s *Session) Viewport() *Viewport { return s.state.Viewport }

// SetEditor replaces the editor.
func (s *Session) SetEditor(e Editor) { s.editor = e }

// SetDebugMode enables or disables debug mode. When enabled, per-render
// stats are printed to stderr and imported maps are checked for suspicious
// references.
func (s *Session) SetDebugMode(enabled bool) {
	s.debug = enabled
	s.renderer.Debug = enabled
	if enabled {
		debugCheckGraph(s.state.Graph)
	}
}

// Dispatch applies one input event and carries out its effects.
func (s *Session) Dispatch(ev Event) Effects {
	fx := Handle(s.state, ev)
	s.apply(fx)
	return fx
}

func (s *Session) apply(fx Effects) {
	if fx.Save {
		s.save()
	}
	if fx.FocusChanged && s.OnFocusChange != nil {
		s.OnFocusChange(s.state.Focus != nil)
	}
	if fx.Render {
		s.render()
	}
	if fx.Edit != nil {
		s.openEditor(*fx.Edit)
	}
	if s.OnCursor != nil {
		s.OnCursor(fx.Cursor)
	}
}

func (s *Session) save() {
	if err := s.store.Save(s.state.Graph); err != nil {
		log.Printf("mindweaver: %v", err)
	}
}

func (s *Session) render() {
	if s.OnRender != nil {
		s.OnRender()
	}
}

func (s *Session) openEditor(id BubbleID) {
	if s.editor == nil {
		return
	}
	if b := s.state.Graph.Bubble(id); b != nil {
		s.editor.OpenEditor(*b)
	}
}

// Visible returns the bubbles the current focus and search let through.
func (s *Session) Visible() []*Bubble {
	return VisibleSet(s.state.Graph, s.state.Focus, s.state.Search)
}

// Draw renders the current state onto surface.
func (s *Session) Draw(surface Surface) RenderStats {
	return s.renderer.Render(surface, s.state.Graph, s.state.Viewport, s.Visible())
}

// Update advances one frame: the script runner steps, one injected event is
// dispatched, and the viewport animation advances by dt seconds. Returns
// true if an injected event was dispatched, in which case front ends skip
// real input for the frame.
func (s *Session) Update(dt float32) bool {
	if s.runner != nil {
		s.runner.step(s)
	}
	injected := s.processInjected()
	if s.state.Viewport.Update(dt) {
		s.render()
	}
	return injected
}

// --- Commands ---

// NewBubble adds a bubble with default fields at the world point under the
// center of a w×h surface, saves, redraws and opens the editor on it.
func (s *Session) NewBubble(w, h float64) *Bubble {
	cx, cy := s.state.Viewport.Center(w, h)
	b := s.state.Graph.AddBubble(s.defaults.NewBubble(cx, cy))
	s.save()
	s.render()
	s.openEditor(b.ID)
	return b
}

// AddBubble appends b as is (a fresh id is assigned if needed), saves and
// redraws. Unlike NewBubble it does not open the editor.
func (s *Session) AddBubble(b *Bubble) *Bubble {
	if b.Color == "" {
		b.Color = s.defaults.RandomColor()
	}
	b = s.state.Graph.AddBubble(b)
	s.save()
	s.render()
	return b
}

// Connect joins two bubbles, saves and redraws.
func (s *Session) Connect(from, to BubbleID) error {
	if err := s.state.Graph.Connect(from, to); err != nil {
		return fmt.Errorf("mindweaver: connect %d-%d: %w", from, to, err)
	}
	s.save()
	s.render()
	return nil
}

// ToggleConnectMode flips connect mode and drops any half-made connection.
// It returns the new mode.
func (s *Session) ToggleConnectMode() bool {
	on := !s.state.Connect.Active
	s.state.SetConnectMode(on)
	if s.OnCursor != nil {
		s.OnCursor(s.state.Cursor())
	}
	return on
}

// Reset clears the map after confirm(ResetPrompt) returns true. Declining
// leaves everything untouched. Returns whether the map was cleared.
func (s *Session) Reset(confirm func(prompt string) bool) bool {
	if confirm == nil || !confirm(ResetPrompt) {
		return false
	}
	s.state.Graph.Clear()
	s.state.Pointer = Idle{}
	s.state.SetConnectMode(s.state.Connect.Active)
	hadFocus := s.state.Focus != nil
	s.state.Focus = nil
	s.save()
	if hadFocus && s.OnFocusChange != nil {
		s.OnFocusChange(false)
	}
	s.render()
	return true
}

// ExitFocus clears the focused bubble.
func (s *Session) ExitFocus() {
	if s.state.Focus == nil {
		return
	}
	s.state.Focus = nil
	if s.OnFocusChange != nil {
		s.OnFocusChange(false)
	}
	s.render()
}

// Focus focuses the bubble with the given id. Returns false if there is no
// such bubble.
func (s *Session) Focus(id BubbleID) bool {
	if s.state.Graph.Bubble(id) == nil {
		return false
	}
	s.state.Focus = &id
	if s.OnFocusChange != nil {
		s.OnFocusChange(true)
	}
	s.render()
	return true
}

// SetSearch sets the search query. An empty query also clears focus.
func (s *Session) SetSearch(q string) {
	s.state.Search = NormalizeQuery(q)
	if s.state.Search == "" && s.state.Focus != nil {
		s.state.Focus = nil
		if s.OnFocusChange != nil {
			s.OnFocusChange(false)
		}
	}
	s.render()
}

// ApplyEdit writes fields onto the bubble with the given id, saves and
// redraws. Returns false, changing nothing, if no bubble has that id.
func (s *Session) ApplyEdit(id BubbleID, f BubbleFields) bool {
	b := s.state.Graph.Bubble(id)
	if b == nil {
		return false
	}
	b.SetFields(f)
	s.save()
	s.render()
	return true
}

// ScrollTo animates the viewport so the bubble with the given id ends up at
// the center of a w×h surface.
func (s *Session) ScrollTo(id BubbleID, w, h float64, duration time.Duration) bool {
	b := s.state.Graph.Bubble(id)
	if b == nil {
		return false
	}
	s.state.Viewport.ScrollTo(b.X, b.Y, w, h, float32(duration.Seconds()))
	if duration <= 0 {
		s.render()
	}
	return true
}

// Import replaces the map with the one read from r. On failure the current
// map is left exactly as it was and the error is returned.
func (s *Session) Import(r io.Reader) error {
	g, err := Import(r)
	if err != nil {
		return err
	}
	s.state.Graph = g
	s.state.Pointer = Idle{}
	s.state.SetConnectMode(s.state.Connect.Active)
	if s.state.Focus != nil {
		s.state.Focus = nil
		if s.OnFocusChange != nil {
			s.OnFocusChange(false)
		}
	}
	if s.debug {
		debugCheckGraph(g)
	}
	s.save()
	s.render()
	return nil
}

// Export writes the current map to w.
func (s *Session) Export(w io.Writer) error {
	return Export(w, s.state.Graph)
}
