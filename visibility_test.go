package mindweaver

import "testing"

func ids(bs []*Bubble) []BubbleID {
	out := make([]BubbleID, len(bs))
	for i, b := range bs {
		out[i] = b.ID
	}
	return out
}

func equalIDs(a, b []BubbleID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func abcGraph() *Graph {
	g := NewGraph()
	g.AddBubble(&Bubble{ID: 1, Title: "Alpha", Tags: "greek, first"})
	g.AddBubble(&Bubble{ID: 2, Title: "Project Plan", Tags: ""})
	g.AddBubble(&Bubble{ID: 3, Title: "Gamma", Tags: "PLANets"})
	g.Connections = append(g.Connections, Connection{From: 1, To: 2})
	return g
}

func TestVisibleSetAll(t *testing.T) {
	g := abcGraph()
	got := ids(VisibleSet(g, nil, ""))
	if !equalIDs(got, []BubbleID{1, 2, 3}) {
		t.Errorf("VisibleSet = %v, want [1 2 3]", got)
	}
}

func TestVisibleSetFocus(t *testing.T) {
	g := abcGraph()
	tests := []struct {
		name  string
		focus BubbleID
		want  []BubbleID
	}{
		{"from side", 1, []BubbleID{1, 2}},
		{"to side", 2, []BubbleID{1, 2}},
		{"isolated", 3, []BubbleID{3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			focus := tt.focus
			got := ids(VisibleSet(g, &focus, ""))
			if !equalIDs(got, tt.want) {
				t.Errorf("VisibleSet(focus=%d) = %v, want %v", tt.focus, got, tt.want)
			}
		})
	}
}

func TestVisibleSetFocusConnections(t *testing.T) {
	g := abcGraph()
	focus := BubbleID(1)
	vis := VisibleSet(g, &focus, "")
	conns := VisibleConnections(g, vis)
	if len(conns) != 1 || conns[0] != (Connection{From: 1, To: 2}) {
		t.Errorf("VisibleConnections = %v, want [{1 2}]", conns)
	}
	for _, c := range conns {
		if c.Touches(3) {
			t.Errorf("connection %v reaches excluded bubble 3", c)
		}
	}
}

func TestVisibleSetSearchCaseInsensitive(t *testing.T) {
	g := abcGraph()
	tests := []struct {
		query string
		want  []BubbleID
	}{
		{"plan", []BubbleID{2, 3}},
		{"PLAN", []BubbleID{2, 3}},
		{"  Plan ", []BubbleID{2, 3}},
		{"greek", []BubbleID{1}},
		{"project", []BubbleID{2}},
		{"zzz", []BubbleID{}},
	}
	for _, tt := range tests {
		got := ids(VisibleSet(g, nil, NormalizeQuery(tt.query)))
		if !equalIDs(got, tt.want) {
			t.Errorf("search %q = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestVisibleSetFocusBeatsSearch(t *testing.T) {
	g := abcGraph()
	focus := BubbleID(3)
	got := ids(VisibleSet(g, &focus, "alpha"))
	if !equalIDs(got, []BubbleID{3}) {
		t.Errorf("VisibleSet = %v, want [3]", got)
	}
}

func TestVisibleSetStaleFocusFallsThrough(t *testing.T) {
	g := abcGraph()
	focus := BubbleID(99)
	if got := ids(VisibleSet(g, &focus, "gamma")); !equalIDs(got, []BubbleID{3}) {
		t.Errorf("stale focus + search = %v, want [3]", got)
	}
	if got := ids(VisibleSet(g, &focus, "")); !equalIDs(got, []BubbleID{1, 2, 3}) {
		t.Errorf("stale focus = %v, want all", got)
	}
}

func TestVisibleSetReturnsCopy(t *testing.T) {
	g := abcGraph()
	vis := VisibleSet(g, nil, "")
	vis[0] = nil
	if g.Bubbles[0] == nil {
		t.Error("VisibleSet returned the graph's own slice")
	}
}

func TestVisibleConnectionsSkipsDangling(t *testing.T) {
	g := abcGraph()
	g.Connections = append(g.Connections,
		Connection{From: 1, To: 42},
		Connection{From: 42, To: 43},
		Connection{From: 2, To: 3},
	)
	conns := VisibleConnections(g, VisibleSet(g, nil, ""))
	want := []Connection{{From: 1, To: 2}, {From: 2, To: 3}}
	if len(conns) != len(want) {
		t.Fatalf("VisibleConnections = %v, want %v", conns, want)
	}
	for i := range want {
		if conns[i] != want[i] {
			t.Errorf("conns[%d] = %v, want %v", i, conns[i], want[i])
		}
	}
}
