package mindweaver

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func TestViewportDefaults(t *testing.T) {
	v := NewViewport()
	if v.Scale != 1 {
		t.Errorf("Scale = %f, want 1", v.Scale)
	}
	sx, sy := v.WorldToScreen(12, -7)
	if sx != 12 || sy != -7 {
		t.Errorf("identity WorldToScreen = (%f,%f), want (12,-7)", sx, sy)
	}
}

func TestWorldToScreen(t *testing.T) {
	v := &Viewport{OffsetX: 100, OffsetY: 50, Scale: 2}
	sx, sy := v.WorldToScreen(10, 20)
	if !approxEqual(sx, 120, epsilon) || !approxEqual(sy, 90, epsilon) {
		t.Errorf("WorldToScreen(10,20) = (%f,%f), want (120,90)", sx, sy)
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	viewports := []*Viewport{
		{Scale: 1},
		{OffsetX: 100, OffsetY: -40, Scale: 2.5},
		{OffsetX: -3000, OffsetY: 1e4, Scale: 0.013},
		{OffsetX: 0.5, OffsetY: 0.25, Scale: 17},
	}
	points := [][2]float64{{0, 0}, {1, 1}, {-250.5, 380.25}, {1e5, -1e5}}
	for _, v := range viewports {
		for _, p := range points {
			sx, sy := v.WorldToScreen(p[0], p[1])
			wx, wy := v.ScreenToWorld(sx, sy)
			eps := 1e-9 * math.Max(1, math.Abs(p[0])+math.Abs(p[1]))
			if !approxEqual(wx, p[0], eps) || !approxEqual(wy, p[1], eps) {
				t.Errorf("viewport %+v: roundtrip (%f,%f) -> (%f,%f)", *v, p[0], p[1], wx, wy)
			}
		}
	}
}

func TestZoomAtFixedPoint(t *testing.T) {
	tests := []struct {
		name   string
		sx, sy float64
		zooms  []float64
	}{
		{"single in", 320, 240, []float64{1.1}},
		{"single out", 10, 700, []float64{0.9}},
		{"mixed sequence", 512, 100, []float64{1.1, 1.1, 0.9, 2, 0.5, 0.9, 1.1}},
		{"origin anchor", 0, 0, []float64{3, 0.25}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &Viewport{OffsetX: 37, OffsetY: -12, Scale: 1.3}
			wx, wy := v.ScreenToWorld(tt.sx, tt.sy)
			for _, z := range tt.zooms {
				v.ZoomAt(tt.sx, tt.sy, z)
				sx, sy := v.WorldToScreen(wx, wy)
				if !approxEqual(sx, tt.sx, 1e-6) || !approxEqual(sy, tt.sy, 1e-6) {
					t.Fatalf("after zoom %f: anchor world point at (%f,%f), want (%f,%f)", z, sx, sy, tt.sx, tt.sy)
				}
			}
		})
	}
}

func TestZoomAtFormula(t *testing.T) {
	v := &Viewport{OffsetX: 10, OffsetY: 20, Scale: 1}
	v.ZoomAt(110, 220, 2)
	if !approxEqual(v.OffsetX, -90, epsilon) || !approxEqual(v.OffsetY, -180, epsilon) {
		t.Errorf("offset = (%f,%f), want (-90,-180)", v.OffsetX, v.OffsetY)
	}
	if !approxEqual(v.Scale, 2, epsilon) {
		t.Errorf("Scale = %f, want 2", v.Scale)
	}
}

func TestZoomAtClampKeepsFixedPoint(t *testing.T) {
	v := &Viewport{Scale: 1, MinScale: 0.5, MaxScale: 2}
	wx, wy := v.ScreenToWorld(300, 200)

	applied := v.ZoomAt(300, 200, 10)
	if !approxEqual(v.Scale, 2, epsilon) {
		t.Errorf("Scale = %f, want clamped to 2", v.Scale)
	}
	if !approxEqual(applied, 2, epsilon) {
		t.Errorf("applied factor = %f, want 2", applied)
	}
	sx, sy := v.WorldToScreen(wx, wy)
	if !approxEqual(sx, 300, 1e-9) || !approxEqual(sy, 200, 1e-9) {
		t.Errorf("clamped zoom moved anchor to (%f,%f)", sx, sy)
	}

	for range 50 {
		v.ZoomAt(300, 200, 0.9)
	}
	if !approxEqual(v.Scale, 0.5, epsilon) {
		t.Errorf("Scale = %f, want clamped to 0.5", v.Scale)
	}
	sx, sy = v.WorldToScreen(wx, wy)
	if !approxEqual(sx, 300, 1e-9) || !approxEqual(sy, 200, 1e-9) {
		t.Errorf("clamped zoom out moved anchor to (%f,%f)", sx, sy)
	}
}

func TestZoomAtRejectsInvalidFactor(t *testing.T) {
	for _, z := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		v := &Viewport{OffsetX: 5, OffsetY: 6, Scale: 1.5}
		if got := v.ZoomAt(100, 100, z); got != 1 {
			t.Errorf("ZoomAt(z=%f) returned %f, want 1", z, got)
		}
		if v.OffsetX != 5 || v.OffsetY != 6 || v.Scale != 1.5 {
			t.Errorf("ZoomAt(z=%f) changed viewport to %+v", z, *v)
		}
	}
}

func TestPan(t *testing.T) {
	v := &Viewport{OffsetX: 1, OffsetY: 2, Scale: 3}
	v.Pan(10, -5)
	if v.OffsetX != 11 || v.OffsetY != -3 || v.Scale != 3 {
		t.Errorf("after Pan = %+v, want offset (11,-3) scale 3", *v)
	}
}

func TestCenter(t *testing.T) {
	v := &Viewport{OffsetX: 100, OffsetY: 100, Scale: 2}
	wx, wy := v.Center(800, 600)
	if !approxEqual(wx, 150, epsilon) || !approxEqual(wy, 100, epsilon) {
		t.Errorf("Center = (%f,%f), want (150,100)", wx, wy)
	}
}

func TestVisibleBounds(t *testing.T) {
	v := &Viewport{OffsetX: -100, OffsetY: 0, Scale: 2}
	r := v.VisibleBounds(800, 600)
	want := Rect{X: 50, Y: 0, Width: 400, Height: 300}
	if r != want {
		t.Errorf("VisibleBounds = %+v, want %+v", r, want)
	}
}

func TestScrollToAnimates(t *testing.T) {
	v := NewViewport()
	v.ScrollTo(500, 500, 800, 600, 1.0)
	if !v.Scrolling() {
		t.Fatal("Scrolling() = false after ScrollTo")
	}
	for i := 0; i < 120 && v.Scrolling(); i++ {
		v.Update(1.0 / 60)
	}
	if v.Scrolling() {
		t.Fatal("scroll did not finish")
	}
	cx, cy := v.Center(800, 600)
	if !approxEqual(cx, 500, 0.01) || !approxEqual(cy, 500, 0.01) {
		t.Errorf("Center after scroll = (%f,%f), want (500,500)", cx, cy)
	}
}

func TestScrollToZeroDurationSnaps(t *testing.T) {
	v := &Viewport{Scale: 2}
	v.ScrollTo(10, 20, 200, 100, 0)
	if v.Scrolling() {
		t.Error("Scrolling() = true for zero duration")
	}
	cx, cy := v.Center(200, 100)
	if !approxEqual(cx, 10, epsilon) || !approxEqual(cy, 20, epsilon) {
		t.Errorf("Center = (%f,%f), want (10,20)", cx, cy)
	}
}

func TestScrollCancelledByPanAndZoom(t *testing.T) {
	v := NewViewport()
	v.ScrollTo(500, 500, 800, 600, 1)
	v.Pan(1, 1)
	if v.Scrolling() {
		t.Error("Pan did not cancel scroll")
	}
	v.ScrollTo(500, 500, 800, 600, 1)
	v.ZoomAt(0, 0, 1.1)
	if v.Scrolling() {
		t.Error("ZoomAt did not cancel scroll")
	}
	if v.Update(0.1) {
		t.Error("Update reported change with no scroll running")
	}
}

func TestFit(t *testing.T) {
	bubbles := []*Bubble{{X: -1000, Y: 0}, {X: 1000, Y: 500}}
	v := Fit(bubbles, 800, 600, 20)
	if v.Scale >= 1 || v.Scale <= 0 {
		t.Fatalf("Scale = %f, want in (0,1)", v.Scale)
	}
	for _, b := range bubbles {
		sx, sy := v.WorldToScreen(b.X, b.Y)
		r := BubbleRadius * v.Scale
		if sx-r < 20-1e-6 || sx+r > 780+1e-6 || sy-r < 20-1e-6 || sy > 580+1e-6 {
			t.Errorf("bubble (%f,%f) lands at (%f,%f), outside padded frame", b.X, b.Y, sx, sy)
		}
	}
}

func TestFitSmallMapNotEnlarged(t *testing.T) {
	v := Fit([]*Bubble{{X: 5, Y: 5}}, 800, 600, 40)
	if v.Scale != 1 {
		t.Errorf("Scale = %f, want 1", v.Scale)
	}
}

func TestFitEmpty(t *testing.T) {
	v := Fit(nil, 800, 600, 40)
	sx, sy := v.WorldToScreen(0, 0)
	if sx != 400 || sy != 300 || v.Scale != 1 {
		t.Errorf("empty Fit: origin at (%f,%f) scale %f, want (400,300) scale 1", sx, sy, v.Scale)
	}
}
