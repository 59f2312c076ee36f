// Package mindweaver is the core of a bubble mind-map editor: labeled,
// colored circles on an infinite pannable and zoomable canvas, joined by
// connections and persisted locally.
//
// # Quick start
//
// A [Session] owns all state. Feed it input events and it takes care of
// saving and asking for redraws:
//
//	sess := mindweaver.NewSession(mindweaver.SessionConfig{
//		Store: mindweaver.NewFileStore("map.json"),
//	})
//	sess.OnRender = func() { sess.Draw(surface) }
//	sess.Dispatch(mindweaver.Event{Kind: mindweaver.EventPointerDown, X: 100, Y: 80})
//
// The desktop front end lives in the window package (Ebitengine); raster
// draws into images with gg for PNG export and headless replays.
//
// # Coordinates
//
// Bubbles live in world space. A [Viewport] maps world to screen as
// screen = world*Scale + Offset. [Viewport.ZoomAt] keeps the world point
// under the anchor fixed, which is what makes wheel and pinch zoom feel
// anchored to the cursor or fingers.
//
// # Interaction
//
// [Handle] is the single place where input changes state. The pointer is
// always in exactly one [PointerState]: [Idle], [Dragging], [Panning] or
// [Pinching]. Connect mode is tracked separately in [ConnectState] so the
// canvas can still be panned while a connection is being made.
//
// # Visibility
//
// Double-clicking a bubble focuses it: only the bubble and its direct
// neighbours are drawn. Otherwise a non-empty search shows the bubbles
// whose title or tags contain the query. See [VisibleSet].
//
// # Scripts
//
// [LoadScript] reads a JSON list of steps (click, drag, wheel, new,
// screenshot, ...) that a [ScriptRunner] plays back through the same
// injected-input path as real events:
//
//	{"steps": [
//	  {"action": "new", "title": "Plan"},
//	  {"action": "drag", "fromX": 640, "fromY": 400, "toX": 300, "toY": 200, "frames": 10},
//	  {"action": "screenshot", "label": "after-drag"}
//	]}
package mindweaver
