package mindweaver

import (
	"fmt"
	"os"
)

// debugLog prints render stats to stderr.
func debugLog(stats RenderStats) {
	_, _ = fmt.Fprintf(os.Stderr,
		"[mindweaver] render: %v | bubbles: %d | connections: %d\n",
		stats.Elapsed, stats.Bubbles, stats.Connections)
}

// debugCheckGraph warns on stderr about duplicate bubble ids, self
// connections and dangling connection endpoints. None of these break the
// editor, but they usually point at a hand-edited or foreign import file.
func debugCheckGraph(g *Graph) {
	seen := make(map[BubbleID]bool, len(g.Bubbles))
	for _, b := range g.Bubbles {
		if seen[b.ID] {
			_, _ = fmt.Fprintf(os.Stderr, "[mindweaver] warning: duplicate bubble id %d\n", b.ID)
		}
		seen[b.ID] = true
	}
	for i, c := range g.Connections {
		if c.From == c.To {
			_, _ = fmt.Fprintf(os.Stderr, "[mindweaver] warning: connection %d joins bubble %d to itself\n", i, c.From)
			continue
		}
		if !seen[c.From] || !seen[c.To] {
			_, _ = fmt.Fprintf(os.Stderr, "[mindweaver] warning: connection %d (%d-%d) has a missing endpoint\n", i, c.From, c.To)
		}
	}
}
