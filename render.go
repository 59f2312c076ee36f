package mindweaver

import "time"

// Drawing constants shared by every Surface.
const (
	edgeWidth    = 2.0
	outlineWidth = 2.0
	iconSize     = 24.0
	iconOffset   = -10.0
	titleSize    = 14.0
	titleOffset  = BubbleRadius + 12.0
)

// Surface is a drawing target. Coordinates passed to the drawing methods are
// world coordinates; the surface maps them through the transform set by
// SetTransform.
type Surface interface {
	// Clear resets the transform to identity and wipes the whole surface.
	Clear()
	// SetTransform replaces the current transform with
	// screen = world*scale + (offsetX, offsetY). It never composes with the
	// previous transform.
	SetTransform(offsetX, offsetY, scale float64)
	// StrokeLine draws a straight line of the given world-space width.
	StrokeLine(x0, y0, x1, y1, width float64, c Color)
	// FillCircle draws a filled circle.
	FillCircle(cx, cy, r float64, c Color)
	// StrokeCircle draws a circle outline.
	StrokeCircle(cx, cy, r, width float64, c Color)
	// DrawText draws s centered horizontally and vertically on (x, y) with
	// the given world-space font size.
	DrawText(s string, x, y, size float64, c Color)
}

// Renderer draws a graph onto a Surface. The zero value is ready to use.
type Renderer struct {
	// Debug enables per-frame stats on stderr.
	Debug bool
}

// RenderStats summarizes one Render call.
type RenderStats struct {
	Bubbles     int
	Connections int
	Elapsed     time.Duration
}

// Render clears s and draws the visible connections, then the visible
// bubbles, under vp. visible is usually the result of VisibleSet. Render
// never mutates g or vp, so repeated calls with unchanged state draw the
// same thing.
func (r *Renderer) Render(s Surface, g *Graph, vp *Viewport, visible []*Bubble) RenderStats {
	var t0 time.Time
	if r.Debug {
		t0 = time.Now()
	}

	s.Clear()
	s.SetTransform(vp.OffsetX, vp.OffsetY, vp.Scale)

	conns := VisibleConnections(g, visible)
	for _, c := range conns {
		from, to := g.Bubble(c.From), g.Bubble(c.To)
		s.StrokeLine(from.X, from.Y, to.X, to.Y, edgeWidth, EdgeColor)
	}

	for _, b := range visible {
		drawBubble(s, b)
	}

	stats := RenderStats{Bubbles: len(visible), Connections: len(conns)}
	if r.Debug {
		stats.Elapsed = time.Since(t0)
		debugLog(stats)
	}
	return stats
}

func drawBubble(s Surface, b *Bubble) {
	s.FillCircle(b.X, b.Y, BubbleRadius, fillColor(b.Color))
	s.StrokeCircle(b.X, b.Y, BubbleRadius, outlineWidth, OutlineColor)
	if b.Icon != "" {
		s.DrawText(b.Icon, b.X, b.Y+iconOffset, iconSize, ColorWhite)
	}
	if b.Title != "" {
		s.DrawText(b.Title, b.X, b.Y+titleOffset, titleSize, ColorBlack)
	}
}
