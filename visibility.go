package mindweaver

import "strings"

// NormalizeQuery turns raw search box input into the form VisibleSet
// expects: trimmed and lowercased.
func NormalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// VisibleSet returns the bubbles that should be drawn, in graph order.
//
// When focus is non-nil and names an existing bubble F, the result is F plus
// every bubble that shares a connection with F in either direction.
// Otherwise, a non-empty query keeps the bubbles whose title or tags contain
// it, ignoring case. Otherwise every bubble is visible. Focus wins over search.
func VisibleSet(g *Graph, focus *BubbleID, query string) []*Bubble {
	if focus != nil && g.Bubble(*focus) != nil {
		keep := map[BubbleID]bool{*focus: true}
		for _, c := range g.Connections {
			if c.Touches(*focus) {
				keep[c.Other(*focus)] = true
			}
		}
		out := make([]*Bubble, 0, len(keep))
		for _, b := range g.Bubbles {
			if keep[b.ID] {
				out = append(out, b)
			}
		}
		return out
	}

	if query != "" {
		query = strings.ToLower(query)
		out := make([]*Bubble, 0, len(g.Bubbles))
		for _, b := range g.Bubbles {
			if matchesQuery(b, query) {
				out = append(out, b)
			}
		}
		return out
	}

	out := make([]*Bubble, len(g.Bubbles))
	copy(out, g.Bubbles)
	return out
}

// matchesQuery reports whether the bubble's title or tags contain q. q must
// already be lowercase. Empty tags never match.
func matchesQuery(b *Bubble, q string) bool {
	if strings.Contains(strings.ToLower(b.Title), q) {
		return true
	}
	return b.Tags != "" && strings.Contains(strings.ToLower(b.Tags), q)
}

// VisibleConnections returns the connections whose endpoints both resolve to
// existing bubbles and are both in visible, in connection order. Connections
// with dangling endpoints are skipped silently.
func VisibleConnections(g *Graph, visible []*Bubble) []Connection {
	shown := make(map[BubbleID]bool, len(visible))
	for _, b := range visible {
		shown[b.ID] = true
	}
	out := make([]Connection, 0, len(g.Connections))
	for _, c := range g.Connections {
		if g.Bubble(c.From) == nil || g.Bubble(c.To) == nil {
			continue
		}
		if shown[c.From] && shown[c.To] {
			out = append(out, c)
		}
	}
	return out
}
