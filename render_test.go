package mindweaver

import (
	"fmt"
	"reflect"
	"testing"
)

// recordSurface records every call as a string.
type recordSurface struct {
	calls []string
}

func (r *recordSurface) Clear() { r.calls = append(r.calls, "clear") }

func (r *recordSurface) SetTransform(ox, oy, scale float64) {
	r.calls = append(r.calls, fmt.Sprintf("transform %g %g %g", ox, oy, scale))
}

func (r *recordSurface) StrokeLine(x0, y0, x1, y1, width float64, c Color) {
	r.calls = append(r.calls, fmt.Sprintf("line %g,%g-%g,%g", x0, y0, x1, y1))
}

func (r *recordSurface) FillCircle(cx, cy, rad float64, c Color) {
	r.calls = append(r.calls, fmt.Sprintf("fill %g,%g r%g %v", cx, cy, rad, c))
}

func (r *recordSurface) StrokeCircle(cx, cy, rad, width float64, c Color) {
	r.calls = append(r.calls, fmt.Sprintf("outline %g,%g", cx, cy))
}

func (r *recordSurface) DrawText(s string, x, y, size float64, c Color) {
	r.calls = append(r.calls, fmt.Sprintf("text %q %g,%g %g", s, x, y, size))
}

func renderGraph() *Graph {
	g := NewGraph()
	g.AddBubble(&Bubble{ID: 1, X: 0, Y: 0, Title: "One", Icon: "1", Color: "#ff0000"})
	g.AddBubble(&Bubble{ID: 2, X: 100, Y: 0, Title: "Two", Color: "bogus"})
	g.Connections = append(g.Connections, Connection{From: 1, To: 2}, Connection{From: 2, To: 9})
	return g
}

func TestRenderOrder(t *testing.T) {
	g := renderGraph()
	vp := &Viewport{OffsetX: 10, OffsetY: 20, Scale: 2}
	s := &recordSurface{}
	var r Renderer
	stats := r.Render(s, g, vp, VisibleSet(g, nil, ""))

	want := []string{
		"clear",
		"transform 10 20 2",
		"line 0,0-100,0",
		fmt.Sprintf("fill 0,0 r40 %v", Color{R: 1, A: 1}),
		"outline 0,0",
		fmt.Sprintf("text %q 0,-10 24", "1"),
		fmt.Sprintf("text %q 0,52 14", "One"),
		fmt.Sprintf("fill 100,0 r40 %v", FallbackColor),
		"outline 100,0",
		fmt.Sprintf("text %q 100,52 14", "Two"),
	}
	if !reflect.DeepEqual(s.calls, want) {
		t.Errorf("calls:\n%v\nwant:\n%v", s.calls, want)
	}
	if stats.Bubbles != 2 || stats.Connections != 1 {
		t.Errorf("stats = %+v, want 2 bubbles 1 connection", stats)
	}
}

func TestRenderIdempotent(t *testing.T) {
	g := renderGraph()
	vp := &Viewport{OffsetX: -5, OffsetY: 7, Scale: 0.5}
	before := g.Clone()
	vpBefore := *vp

	var r Renderer
	a, b := &recordSurface{}, &recordSurface{}
	r.Render(a, g, vp, VisibleSet(g, nil, ""))
	r.Render(b, g, vp, VisibleSet(g, nil, ""))

	if !reflect.DeepEqual(a.calls, b.calls) {
		t.Error("two renders of unchanged state differ")
	}
	if !reflect.DeepEqual(g, before) {
		t.Error("Render mutated the graph")
	}
	if *vp != vpBefore {
		t.Error("Render mutated the viewport")
	}
}

func TestRenderFocusHidesOthers(t *testing.T) {
	g := renderGraph()
	g.AddBubble(&Bubble{ID: 3, X: 500, Y: 500})
	focus := BubbleID(3)
	s := &recordSurface{}
	var r Renderer
	r.Render(s, g, NewViewport(), VisibleSet(g, &focus, ""))

	want := []string{"clear", "transform 0 0 1", fmt.Sprintf("fill 500,500 r40 %v", FallbackColor), "outline 500,500"}
	if !reflect.DeepEqual(s.calls, want) {
		t.Errorf("calls = %v, want %v", s.calls, want)
	}
}

func TestRenderEmpty(t *testing.T) {
	s := &recordSurface{}
	var r Renderer
	stats := r.Render(s, NewGraph(), NewViewport(), nil)
	if len(s.calls) != 2 {
		t.Errorf("calls = %v, want only clear and transform", s.calls)
	}
	if stats.Bubbles != 0 || stats.Connections != 0 {
		t.Errorf("stats = %+v, want zero", stats)
	}
}

func TestRenderDebugTimes(t *testing.T) {
	g := renderGraph()
	r := Renderer{Debug: true}
	stats := r.Render(&recordSurface{}, g, NewViewport(), g.Bubbles)
	if stats.Elapsed < 0 {
		t.Errorf("Elapsed = %v", stats.Elapsed)
	}
}
