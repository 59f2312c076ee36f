package mindweaver

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for the viewport offsets.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Viewport maps between screen space and world space. OffsetX/OffsetY is
// the screen position of the world origin and Scale is the zoom factor.
//
//	screen = world*Scale + Offset
type Viewport struct {
	OffsetX, OffsetY float64
	Scale            float64

	// MinScale and MaxScale bound Scale during zooming. Zero disables the
	// respective bound.
	MinScale, MaxScale float64

	scroll *scrollAnim
}

// NewViewport returns an identity viewport: no offset, scale 1.
func NewViewport() *Viewport {
	return &Viewport{Scale: 1}
}

// WorldToScreen converts world coordinates to screen coordinates.
func (v *Viewport) WorldToScreen(wx, wy float64) (sx, sy float64) {
	return wx*v.Scale + v.OffsetX, wy*v.Scale + v.OffsetY
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (v *Viewport) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	return (sx - v.OffsetX) / v.Scale, (sy - v.OffsetY) / v.Scale
}

// ZoomAt multiplies the scale by z while keeping the world point under the
// screen anchor (sx, sy) fixed. When the result would leave
// [MinScale, MaxScale], z is reduced to the factor that lands exactly on the
// bound, so the anchor stays fixed either way. Returns the factor applied.
func (v *Viewport) ZoomAt(sx, sy, z float64) float64 {
	if z <= 0 || math.IsNaN(z) || math.IsInf(z, 0) {
		return 1
	}
	target := v.clampScale(v.Scale * z)
	if target != v.Scale*z {
		z = target / v.Scale
	}
	v.scroll = nil
	v.OffsetX = sx - z*(sx-v.OffsetX)
	v.OffsetY = sy - z*(sy-v.OffsetY)
	v.Scale *= z
	return z
}

func (v *Viewport) clampScale(s float64) float64 {
	if v.MinScale > 0 && s < v.MinScale {
		return v.MinScale
	}
	if v.MaxScale > 0 && s > v.MaxScale {
		return v.MaxScale
	}
	return s
}

// Pan moves the view by a screen-space delta. Scale is unchanged.
func (v *Viewport) Pan(dx, dy float64) {
	v.scroll = nil
	v.OffsetX += dx
	v.OffsetY += dy
}

// Center returns the world point shown at the center of a w×h surface.
func (v *Viewport) Center(w, h float64) (wx, wy float64) {
	return v.ScreenToWorld(w/2, h/2)
}

// VisibleBounds returns the world-space rectangle shown on a w×h surface.
func (v *Viewport) VisibleBounds(w, h float64) Rect {
	x0, y0 := v.ScreenToWorld(0, 0)
	x1, y1 := v.ScreenToWorld(w, h)
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// ScrollTo animates the offsets so the world point (wx, wy) ends up at the
// center of a w×h surface after duration seconds. Scale is unchanged. Any
// pan or zoom cancels the animation.
func (v *Viewport) ScrollTo(wx, wy, w, h float64, duration float32) {
	tx := w/2 - wx*v.Scale
	ty := h/2 - wy*v.Scale
	if duration <= 0 {
		v.scroll = nil
		v.OffsetX, v.OffsetY = tx, ty
		return
	}
	v.scroll = &scrollAnim{
		tweenX: gween.New(float32(v.OffsetX), float32(tx), duration, ease.OutCubic),
		tweenY: gween.New(float32(v.OffsetY), float32(ty), duration, ease.OutCubic),
	}
}

// Scrolling reports whether a ScrollTo animation is in progress.
func (v *Viewport) Scrolling() bool {
	return v.scroll != nil
}

// Update advances a running ScrollTo animation by dt seconds. Returns true
// if the offsets changed.
func (v *Viewport) Update(dt float32) bool {
	if v.scroll == nil {
		return false
	}
	if !v.scroll.doneX {
		val, done := v.scroll.tweenX.Update(dt)
		v.OffsetX = float64(val)
		v.scroll.doneX = done
	}
	if !v.scroll.doneY {
		val, done := v.scroll.tweenY.Update(dt)
		v.OffsetY = float64(val)
		v.scroll.doneY = done
	}
	if v.scroll.doneX && v.scroll.doneY {
		v.scroll = nil
	}
	return true
}

// Fit returns a viewport that frames every bubble (including its radius and
// title) inside a w×h surface with the given screen padding. Scale never
// exceeds 1, so small maps are not blown up. An empty list yields an
// identity viewport centered on the origin.
func Fit(bubbles []*Bubble, w, h, padding float64) *Viewport {
	v := NewViewport()
	if len(bubbles) == 0 {
		v.OffsetX, v.OffsetY = w/2, h/2
		return v
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, b := range bubbles {
		minX = math.Min(minX, b.X-BubbleRadius)
		minY = math.Min(minY, b.Y-BubbleRadius)
		maxX = math.Max(maxX, b.X+BubbleRadius)
		maxY = math.Max(maxY, b.Y+titleOffset+titleSize)
	}
	availW := math.Max(w-2*padding, 1)
	availH := math.Max(h-2*padding, 1)
	v.Scale = math.Min(1, math.Min(availW/(maxX-minX), availH/(maxY-minY)))
	cx, cy := (minX+maxX)/2, (minY+maxY)/2
	v.OffsetX = w/2 - cx*v.Scale
	v.OffsetY = h/2 - cy*v.Scale
	return v
}
