package mindweaver

import "image/color"

// BubbleRadius is the radius of every bubble in world units. Hit testing and
// drawing both use it, so a bubble is clickable exactly where it is painted.
const BubbleRadius = 40.0

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the icon color and the default clear color.
var ColorWhite = Color{1, 1, 1, 1}

// ColorBlack is the title color.
var ColorBlack = Color{0, 0, 0, 1}

// RGBA converts the color to an 8-bit straight-alpha color.NRGBA.
func (c Color) RGBA() color.NRGBA {
	return color.NRGBA{
		R: clampByte(c.R),
		G: clampByte(c.G),
		B: clampByte(c.B),
		A: clampByte(c.A),
	}
}

func clampByte(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	default:
		return uint8(v*255 + 0.5)
	}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// EventKind identifies a kind of input event.
type EventKind uint8

const (
	EventPointerDown EventKind = iota // mouse button pressed
	EventPointerMove                  // mouse moved (pressed or not)
	EventPointerUp                    // mouse button released
	EventDoubleClick                  // two quick primary clicks at the same spot
	EventContextMenu                  // secondary click
	EventWheel                        // scroll wheel; DeltaY < 0 scrolls up/away
	EventTouchStart                   // finger down
	EventTouchMove                    // finger moved
	EventTouchEnd                     // finger lifted or cancelled
)

var eventKindNames = [...]string{
	EventPointerDown: "pointerdown",
	EventPointerMove: "pointermove",
	EventPointerUp:   "pointerup",
	EventDoubleClick: "dblclick",
	EventContextMenu: "contextmenu",
	EventWheel:       "wheel",
	EventTouchStart:  "touchstart",
	EventTouchMove:   "touchmove",
	EventTouchEnd:    "touchend",
}

func (k EventKind) String() string {
	if int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return "unknown"
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// Event is a single input event in screen coordinates.
type Event struct {
	Kind   EventKind
	X, Y   float64
	Button MouseButton
	// DeltaY is the wheel delta for EventWheel, using the browser sign
	// convention (negative = up/away = zoom in).
	DeltaY float64
	// TouchID identifies the finger for touch events.
	TouchID int
}

// Cursor is the pointer shape a front end should display.
type Cursor uint8

const (
	CursorDefault   Cursor = iota // idle
	CursorCrosshair               // a connection start is selected
	CursorGrabbing                // panning or dragging
)
