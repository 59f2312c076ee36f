package window

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/mindweaver"
)

// Double-click detection thresholds.
const (
	doubleClickInterval = 400 * time.Millisecond
	doubleClickSlop     = 4.0
)

// clickTracker turns completed clicks into double clicks: the second click
// within doubleClickInterval and doubleClickSlop pixels of the first.
type clickTracker struct {
	last  time.Time
	x, y  float64
	armed bool
}

// click records a completed click and reports whether it finishes a double
// click. A double click disarms the tracker so a third click starts over.
func (c *clickTracker) click(now time.Time, x, y float64) bool {
	if c.armed && now.Sub(c.last) <= doubleClickInterval &&
		math.Hypot(x-c.x, y-c.y) <= doubleClickSlop {
		c.armed = false
		return true
	}
	c.armed, c.last, c.x, c.y = true, now, x, y
	return false
}

// pointerInput polls Ebitengine mouse and touch state and converts it to
// mindweaver events.
type pointerInput struct {
	lastX, lastY int
	hasLast      bool
	clicks       clickTracker

	touchBuf []ebiten.TouchID
	touchPos map[ebiten.TouchID][2]int
}

func newPointerInput() *pointerInput {
	return &pointerInput{touchPos: make(map[ebiten.TouchID][2]int)}
}

// poll appends this tick's events to dst.
func (p *pointerInput) poll(now time.Time, dst []mindweaver.Event) []mindweaver.Event {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)

	if !p.hasLast || mx != p.lastX || my != p.lastY {
		if p.hasLast {
			dst = append(dst, mindweaver.Event{Kind: mindweaver.EventPointerMove, X: x, Y: y})
		}
		p.lastX, p.lastY, p.hasLast = mx, my, true
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		dst = append(dst, mindweaver.Event{Kind: mindweaver.EventPointerDown, X: x, Y: y, Button: mindweaver.MouseButtonLeft})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		dst = append(dst, mindweaver.Event{Kind: mindweaver.EventPointerUp, X: x, Y: y, Button: mindweaver.MouseButtonLeft})
		if p.clicks.click(now, x, y) {
			dst = append(dst, mindweaver.Event{Kind: mindweaver.EventDoubleClick, X: x, Y: y, Button: mindweaver.MouseButtonLeft})
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		dst = append(dst, mindweaver.Event{Kind: mindweaver.EventContextMenu, X: x, Y: y, Button: mindweaver.MouseButtonRight})
	}

	// Ebitengine reports a positive y offset for scrolling up; flip it to
	// the DeltaY convention where negative zooms in.
	if _, wy := ebiten.Wheel(); wy != 0 {
		dst = append(dst, mindweaver.Event{Kind: mindweaver.EventWheel, X: x, Y: y, DeltaY: -wy})
	}

	return p.pollTouches(dst)
}

func (p *pointerInput) pollTouches(dst []mindweaver.Event) []mindweaver.Event {
	p.touchBuf = inpututil.AppendJustPressedTouchIDs(p.touchBuf[:0])
	for _, id := range p.touchBuf {
		tx, ty := ebiten.TouchPosition(id)
		p.touchPos[id] = [2]int{tx, ty}
		dst = append(dst, mindweaver.Event{Kind: mindweaver.EventTouchStart, X: float64(tx), Y: float64(ty), TouchID: int(id)})
	}

	p.touchBuf = ebiten.AppendTouchIDs(p.touchBuf[:0])
	for _, id := range p.touchBuf {
		tx, ty := ebiten.TouchPosition(id)
		prev, ok := p.touchPos[id]
		if !ok || (prev[0] == tx && prev[1] == ty) {
			continue
		}
		p.touchPos[id] = [2]int{tx, ty}
		dst = append(dst, mindweaver.Event{Kind: mindweaver.EventTouchMove, X: float64(tx), Y: float64(ty), TouchID: int(id)})
	}

	p.touchBuf = inpututil.AppendJustReleasedTouchIDs(p.touchBuf[:0])
	for _, id := range p.touchBuf {
		tx, ty := inpututil.TouchPositionInPreviousTick(id)
		delete(p.touchPos, id)
		dst = append(dst, mindweaver.Event{Kind: mindweaver.EventTouchEnd, X: float64(tx), Y: float64(ty), TouchID: int(id)})
	}
	return dst
}

// ctrlPressed reports whether either Control or Meta is held.
func ctrlPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
}

// repeatingKeyPressed reports a key press with auto-repeat while held.
func repeatingKeyPressed(key ebiten.Key) bool {
	const (
		delay    = 30
		interval = 3
	)
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= delay && (d-delay)%interval == 0
}

var cursorShapes = [...]ebiten.CursorShapeType{
	mindweaver.CursorDefault:   ebiten.CursorShapeDefault,
	mindweaver.CursorCrosshair: ebiten.CursorShapeCrosshair,
	mindweaver.CursorGrabbing:  ebiten.CursorShapeMove,
}

func setCursor(c mindweaver.Cursor) {
	if int(c) < len(cursorShapes) {
		ebiten.SetCursorShape(cursorShapes[c])
	}
}
