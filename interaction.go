package mindweaver

import "math"

// Wheel zoom factors. Scrolling up/away zooms in.
const (
	WheelZoomIn  = 1.1
	WheelZoomOut = 0.9
)

// PointerState is the exclusive pointer interaction mode. It is one of
// Idle, Dragging, Panning or Pinching; no other combination exists.
type PointerState interface {
	pointerState()
}

// Idle means no button or finger is held.
type Idle struct{}

// Dragging moves a bubble with the pointer. GrabX/GrabY is the world-space
// offset from the bubble center to the point that was grabbed.
type Dragging struct {
	Bubble       BubbleID
	GrabX, GrabY float64
	// Moved is set once the bubble position actually changed.
	Moved bool
}

// Panning moves the viewport with the pointer. LastX/LastY is the previous
// screen position.
type Panning struct {
	LastX, LastY float64
}

// Pinching zooms and pans with two fingers.
type Pinching struct {
	TouchA, TouchB     int
	PrevDist           float64
	PrevMidX, PrevMidY float64
}

func (Idle) pointerState()     {}
func (Dragging) pointerState() {}
func (Panning) pointerState()  {}
func (Pinching) pointerState() {}

// ConnectState is the connect-mode flag and the connection start chosen so
// far. It is orthogonal to PointerState: panning works in connect mode.
type ConnectState struct {
	Active   bool
	Start    BubbleID
	HasStart bool
}

// Effects describe what a handled event requires from the outside world.
type Effects struct {
	// Render asks for a redraw.
	Render bool
	// Save asks for the graph to be persisted.
	Save bool
	// Edit, when non-nil, asks for the editor to open on that bubble.
	Edit *BubbleID
	// FocusChanged reports that State.Focus changed (front ends show or hide
	// their "exit focus" control).
	FocusChanged bool
	// Cursor is the pointer shape to display after the event.
	Cursor Cursor
}

// touchPoint is an active finger.
type touchPoint struct {
	id   int
	x, y float64
}

// State is the complete live application state. Every component reads it
// directly; nothing keeps a private copy.
type State struct {
	Graph    *Graph
	Viewport *Viewport
	Pointer  PointerState
	Connect  ConnectState
	// Focus is the focused bubble, or nil.
	Focus *BubbleID
	// Search is the normalized search query; empty means inactive.
	Search string

	touches      []touchPoint
	primaryTouch int
}

// NewState returns a state over g with an identity viewport.
func NewState(g *Graph) *State {
	if g == nil {
		g = NewGraph()
	}
	return &State{
		Graph:        g,
		Viewport:     NewViewport(),
		Pointer:      Idle{},
		primaryTouch: -1,
	}
}

// Cursor returns the pointer shape for the current state.
func (st *State) Cursor() Cursor {
	switch st.Pointer.(type) {
	case Dragging, Panning, Pinching:
		return CursorGrabbing
	}
	if st.Connect.Active && st.Connect.HasStart {
		return CursorCrosshair
	}
	return CursorDefault
}

// SetConnectMode turns connect mode on or off. Either way any half-made
// connection is dropped.
func (st *State) SetConnectMode(on bool) {
	st.Connect = ConnectState{Active: on}
}

// Controller applies input events to a State.
type Controller struct {
	State *State
}

// Handle is Handle(c.State, ev).
func (c Controller) Handle(ev Event) Effects {
	return Handle(c.State, ev)
}

// Handle applies one input event to st and returns the resulting effects.
// It is the only place pointer state transitions happen; it never touches a
// display or storage.
func Handle(st *State, ev Event) Effects {
	var fx Effects
	switch ev.Kind {
	case EventPointerDown:
		if ev.Button != MouseButtonRight {
			fx = pointerDown(st, ev.X, ev.Y)
		}
	case EventPointerMove:
		fx = pointerMove(st, ev.X, ev.Y)
	case EventPointerUp:
		fx = pointerUp(st)
	case EventDoubleClick:
		fx = doubleClick(st, ev.X, ev.Y)
	case EventContextMenu:
		fx = contextMenu(st, ev.X, ev.Y)
	case EventWheel:
		fx = wheel(st, ev.X, ev.Y, ev.DeltaY)
	case EventTouchStart:
		fx = touchStart(st, ev)
	case EventTouchMove:
		fx = touchMove(st, ev)
	case EventTouchEnd:
		fx = touchEnd(st, ev)
	}
	fx.Cursor = st.Cursor()
	return fx
}

func pointerDown(st *State, sx, sy float64) Effects {
	wx, wy := st.Viewport.ScreenToWorld(sx, sy)
	// A press interrupts any ScrollTo animation.
	st.Viewport.scroll = nil

	b := st.Graph.BubbleAt(wx, wy)
	if b == nil {
		st.Pointer = Panning{LastX: sx, LastY: sy}
		return Effects{}
	}

	if !st.Connect.Active {
		st.Pointer = Dragging{Bubble: b.ID, GrabX: wx - b.X, GrabY: wy - b.Y}
		return Effects{}
	}

	switch {
	case !st.Connect.HasStart:
		st.Connect.Start = b.ID
		st.Connect.HasStart = true
		return Effects{}
	case st.Connect.Start == b.ID:
		return Effects{}
	}
	if err := st.Graph.Connect(st.Connect.Start, b.ID); err != nil {
		// The start bubble vanished (import or reset); start over from b.
		st.Connect.Start = b.ID
		return Effects{}
	}
	st.Connect.HasStart = false
	st.Connect.Start = 0
	return Effects{Render: true, Save: true}
}

func pointerMove(st *State, sx, sy float64) Effects {
	switch p := st.Pointer.(type) {
	case Dragging:
		b := st.Graph.Bubble(p.Bubble)
		if b == nil {
			st.Pointer = Idle{}
			return Effects{}
		}
		wx, wy := st.Viewport.ScreenToWorld(sx, sy)
		nx, ny := wx-p.GrabX, wy-p.GrabY
		if nx != b.X || ny != b.Y {
			b.X, b.Y = nx, ny
			p.Moved = true
			st.Pointer = p
		}
		return Effects{Render: true}
	case Panning:
		st.Viewport.Pan(sx-p.LastX, sy-p.LastY)
		st.Pointer = Panning{LastX: sx, LastY: sy}
		return Effects{Render: true}
	}
	return Effects{}
}

func pointerUp(st *State) Effects {
	var fx Effects
	if d, ok := st.Pointer.(Dragging); ok && d.Moved {
		fx.Save = true
	}
	st.Pointer = Idle{}
	return fx
}

func doubleClick(st *State, sx, sy float64) Effects {
	wx, wy := st.Viewport.ScreenToWorld(sx, sy)
	b := st.Graph.BubbleAt(wx, wy)
	if b == nil {
		return Effects{}
	}
	id := b.ID
	st.Focus = &id
	return Effects{Render: true, FocusChanged: true}
}

func contextMenu(st *State, sx, sy float64) Effects {
	wx, wy := st.Viewport.ScreenToWorld(sx, sy)
	b := st.Graph.BubbleAt(wx, wy)
	if b == nil {
		return Effects{}
	}
	id := b.ID
	return Effects{Edit: &id}
}

func wheel(st *State, sx, sy, deltaY float64) Effects {
	z := WheelZoomOut
	if deltaY < 0 {
		z = WheelZoomIn
	}
	st.Viewport.ZoomAt(sx, sy, z)
	return Effects{Render: true}
}

// --- Touch ---

func (st *State) touchIndex(id int) int {
	for i, t := range st.touches {
		if t.id == id {
			return i
		}
	}
	return -1
}

func (st *State) touch(id int) (touchPoint, bool) {
	if i := st.touchIndex(id); i >= 0 {
		return st.touches[i], true
	}
	return touchPoint{}, false
}

// touchStart mirrors pointer down for the first finger and starts a pinch
// when a second finger lands. Further fingers are ignored.
func touchStart(st *State, ev Event) Effects {
	if st.touchIndex(ev.TouchID) >= 0 || len(st.touches) >= 2 {
		return Effects{}
	}
	st.touches = append(st.touches, touchPoint{id: ev.TouchID, x: ev.X, y: ev.Y})

	if len(st.touches) == 1 {
		st.primaryTouch = ev.TouchID
		return pointerDown(st, ev.X, ev.Y)
	}

	// Second finger: end whatever the first finger was doing and pinch.
	fx := pointerUp(st)
	a, b := st.touches[0], st.touches[1]
	st.Pointer = Pinching{
		TouchA:   a.id,
		TouchB:   b.id,
		PrevDist: math.Hypot(b.x-a.x, b.y-a.y),
		PrevMidX: (a.x + b.x) / 2,
		PrevMidY: (a.y + b.y) / 2,
	}
	st.primaryTouch = -1
	return fx
}

func touchMove(st *State, ev Event) Effects {
	i := st.touchIndex(ev.TouchID)
	if i < 0 {
		return Effects{}
	}
	st.touches[i].x, st.touches[i].y = ev.X, ev.Y

	if p, ok := st.Pointer.(Pinching); ok {
		a, okA := st.touch(p.TouchA)
		b, okB := st.touch(p.TouchB)
		if !okA || !okB {
			return Effects{}
		}
		dist := math.Hypot(b.x-a.x, b.y-a.y)
		midX, midY := (a.x+b.x)/2, (a.y+b.y)/2
		if p.PrevDist > 0 && dist > 0 {
			st.Viewport.ZoomAt(p.PrevMidX, p.PrevMidY, dist/p.PrevDist)
		}
		st.Viewport.Pan(midX-p.PrevMidX, midY-p.PrevMidY)
		p.PrevDist, p.PrevMidX, p.PrevMidY = dist, midX, midY
		st.Pointer = p
		return Effects{Render: true}
	}

	if ev.TouchID != st.primaryTouch {
		return Effects{}
	}
	return pointerMove(st, ev.X, ev.Y)
}

func touchEnd(st *State, ev Event) Effects {
	i := st.touchIndex(ev.TouchID)
	if i < 0 {
		return Effects{}
	}
	st.touches = append(st.touches[:i], st.touches[i+1:]...)

	if _, ok := st.Pointer.(Pinching); ok {
		st.Pointer = Idle{}
		st.primaryTouch = -1
		return Effects{}
	}
	if ev.TouchID != st.primaryTouch {
		return Effects{}
	}
	st.primaryTouch = -1
	return pointerUp(st)
}
