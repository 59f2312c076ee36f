package mindweaver

// HitCircle is a circular hit area in world coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies strictly inside the circle. A point
// exactly on the circumference is a miss.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy < c.Radius*c.Radius
}

// hitCircle returns the hit area of a bubble. It always matches the drawn
// circle.
func (b *Bubble) hitCircle() HitCircle {
	return HitCircle{CenterX: b.X, CenterY: b.Y, Radius: BubbleRadius}
}

// BubbleAt finds the bubble under the world point (wx, wy). Bubbles are
// tested in insertion order and the first match wins, so on overlap the
// earliest-created bubble is returned even though later ones are painted
// above it. Returns nil if nothing is hit.
func (g *Graph) BubbleAt(wx, wy float64) *Bubble {
	for _, b := range g.Bubbles {
		if b.hitCircle().Contains(wx, wy) {
			return b
		}
	}
	return nil
}
