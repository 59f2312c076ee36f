package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"strings"
	"testing"

	"github.com/phanxgames/mindweaver"
)

func sampleGraph() *mindweaver.Graph {
	g := mindweaver.NewGraph()
	g.AddBubble(&mindweaver.Bubble{ID: 1, X: 0, Y: 0, Title: "Hub", Icon: "H", Color: "#ff0000"})
	g.AddBubble(&mindweaver.Bubble{ID: 2, X: 200, Y: 0, Title: "Leaf", Color: "#0000ff"})
	_ = g.Connect(1, 2)
	return g
}

func rgba(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

func TestNewSurfaceInvalidSize(t *testing.T) {
	if _, err := NewSurface(0, 10); err == nil {
		t.Error("expected error for zero width")
	}
}

func TestSurfaceClear(t *testing.T) {
	s, err := NewSurface(20, 10)
	if err != nil {
		t.Fatal(err)
	}
	if s.Width() != 20 || s.Height() != 10 {
		t.Errorf("size = %dx%d, want 20x10", s.Width(), s.Height())
	}
	s.FillCircle(10, 5, 4, mindweaver.Color{R: 1, A: 1})
	s.Clear()
	if got := rgba(s.Image().At(10, 5)); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("pixel after Clear = %v, want white", got)
	}
}

func TestSurfaceTransform(t *testing.T) {
	s, err := NewSurface(100, 100)
	if err != nil {
		t.Fatal(err)
	}
	s.SetTransform(50, 50, 2)
	// World circle at (10,10) r5 lands at screen (70,70) r10.
	s.FillCircle(10, 10, 5, mindweaver.Color{G: 1, A: 1})
	if got := rgba(s.Image().At(70, 70)); got.G != 255 || got.R != 0 {
		t.Errorf("center pixel = %v, want green", got)
	}
	if got := rgba(s.Image().At(77, 70)); got.G != 255 {
		t.Errorf("pixel inside scaled radius = %v, want green", got)
	}
	if got := rgba(s.Image().At(10, 10)); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("untransformed spot = %v, want background", got)
	}
}

func TestRenderIdempotent(t *testing.T) {
	g := sampleGraph()
	vp := &mindweaver.Viewport{OffsetX: 100, OffsetY: 120, Scale: 1}
	var r mindweaver.Renderer

	a, err := NewSurface(400, 240)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewSurface(400, 240)
	if err != nil {
		t.Fatal(err)
	}
	r.Render(a, g, vp, g.Bubbles)
	r.Render(b, g, vp, g.Bubbles)
	r.Render(b, g, vp, g.Bubbles)

	ia, ib := a.Image().(*image.RGBA), b.Image().(*image.RGBA)
	if !bytes.Equal(ia.Pix, ib.Pix) {
		t.Error("rendering the same state twice produced different pixels")
	}
	// Bubble 1 center is filled red.
	if got := rgba(a.Image().At(100, 130)); got.R < 200 || got.B > 50 {
		t.Errorf("bubble fill pixel = %v, want red", got)
	}
}

func TestExportPNG(t *testing.T) {
	g := sampleGraph()
	var buf bytes.Buffer
	if err := ExportPNG(&buf, g, g.Bubbles, 320, 200); err != nil {
		t.Fatalf("ExportPNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 320 || b.Dy() != 200 {
		t.Errorf("size = %v, want 320x200", b)
	}
}

func TestReplay(t *testing.T) {
	sess := mindweaver.NewSession(mindweaver.SessionConfig{})
	sess.AddBubble(&mindweaver.Bubble{ID: 1, X: 100, Y: 100, Title: "A"})
	runner, err := mindweaver.LoadScript([]byte(`{"steps": [
		{"action": "screenshot", "label": "before"},
		{"action": "drag", "fromX": 100, "fromY": 100, "toX": 200, "toY": 100, "frames": 4},
		{"action": "screenshot", "label": "after drag"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	paths, err := Replay(sess, runner, 320, 240, dir)
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("wrote %d files, want 2", len(paths))
	}
	if filepath.Dir(paths[1]) != dir {
		t.Errorf("screenshot written to %s, want %s", paths[1], dir)
	}
	if want := "_after_drag_1.png"; !strings.HasSuffix(paths[1], want) {
		t.Errorf("path = %s, want suffix %s", paths[1], want)
	}
	if b := sess.Graph().Bubble(1); b.X != 200 {
		t.Errorf("bubble X = %f, want 200", b.X)
	}
}

func TestFaceCacheBounded(t *testing.T) {
	g := sampleGraph()
	s, err := NewSurface(200, 100)
	if err != nil {
		t.Fatal(err)
	}
	var r mindweaver.Renderer
	vp := &mindweaver.Viewport{OffsetX: 100, OffsetY: 50, Scale: 0.5}
	for range 200 {
		vp.ZoomAt(100, 50, 1.01)
		r.Render(s, g, vp, g.Bubbles)
		if len(s.faces) > maxFaces {
			t.Fatalf("face cache grew to %d, want at most %d", len(s.faces), maxFaces)
		}
	}
}
