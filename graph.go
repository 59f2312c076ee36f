package mindweaver

import (
	"errors"
	"math/rand/v2"
	"time"
)

// BubbleID uniquely identifies a bubble for the lifetime of a map. Ids are
// integers: new bubbles take their creation time in milliseconds, and map
// files with string ids are rejected as malformed.
type BubbleID int64

// Bubble is a labeled, colored circle on the canvas. X and Y are the
// world-space center.
type Bubble struct {
	ID          BubbleID `json:"id"`
	X           float64  `json:"x"`
	Y           float64  `json:"y"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Color       string   `json:"color"`
	Icon        string   `json:"icon"`
	Tags        string   `json:"tags"`
}

// Connection is an undirected edge between two bubbles.
type Connection struct {
	From BubbleID `json:"from"`
	To   BubbleID `json:"to"`
}

// Touches reports whether id is one of the connection's endpoints.
func (c Connection) Touches(id BubbleID) bool {
	return c.From == id || c.To == id
}

// Other returns the endpoint opposite id.
func (c Connection) Other(id BubbleID) BubbleID {
	if c.From == id {
		return c.To
	}
	return c.From
}

// ErrSelfConnection is returned when both endpoints of a connection are the
// same bubble.
var ErrSelfConnection = errors.New("mindweaver: cannot connect a bubble to itself")

// ErrUnknownBubble is returned when an operation names a bubble id that is
// not in the graph.
var ErrUnknownBubble = errors.New("mindweaver: unknown bubble")

// Graph is the mind map: bubbles in insertion order (which is also z-order)
// and the connections between them.
type Graph struct {
	Bubbles     []*Bubble    `json:"bubbles"`
	Connections []Connection `json:"connections"`
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{
		Bubbles:     make([]*Bubble, 0),
		Connections: make([]Connection, 0),
	}
}

// Bubble returns the bubble with the given id, or nil.
func (g *Graph) Bubble(id BubbleID) *Bubble {
	for _, b := range g.Bubbles {
		if b.ID == id {
			return b
		}
	}
	return nil
}

// AddBubble appends b. If b.ID is zero or already taken, a fresh id is
// assigned. Returns the stored bubble.
func (g *Graph) AddBubble(b *Bubble) *Bubble {
	if b.ID == 0 || g.Bubble(b.ID) != nil {
		b.ID = g.NextID(time.Now())
	}
	g.Bubbles = append(g.Bubbles, b)
	return b
}

// NextID allocates an id from the creation timestamp in milliseconds,
// bumped past the largest existing id when the clock would collide.
func (g *Graph) NextID(now time.Time) BubbleID {
	id := BubbleID(now.UnixMilli())
	for _, b := range g.Bubbles {
		if b.ID >= id {
			id = b.ID + 1
		}
	}
	return id
}

// Connect appends a connection between from and to. Both bubbles must exist
// and differ.
func (g *Graph) Connect(from, to BubbleID) error {
	if from == to {
		return ErrSelfConnection
	}
	if g.Bubble(from) == nil || g.Bubble(to) == nil {
		return ErrUnknownBubble
	}
	g.Connections = append(g.Connections, Connection{From: from, To: to})
	return nil
}

// Clear removes every bubble and connection.
func (g *Graph) Clear() {
	g.Bubbles = g.Bubbles[:0]
	g.Connections = g.Connections[:0]
}

// Clone returns a deep copy of the graph.
func (g *Graph) Clone() *Graph {
	out := &Graph{
		Bubbles:     make([]*Bubble, len(g.Bubbles)),
		Connections: make([]Connection, len(g.Connections)),
	}
	for i, b := range g.Bubbles {
		cp := *b
		out.Bubbles[i] = &cp
	}
	copy(out.Connections, g.Connections)
	return out
}

// normalize replaces nil slices, drops nil bubbles and gives every bubble
// after the first one with a given id a fresh id, so decoded graphs are safe
// to use. Connections keep pointing at the first bubble with the id.
func (g *Graph) normalize() {
	if g.Connections == nil {
		g.Connections = make([]Connection, 0)
	}
	bubbles := make([]*Bubble, 0, len(g.Bubbles))
	for _, b := range g.Bubbles {
		if b != nil {
			bubbles = append(bubbles, b)
		}
	}
	g.Bubbles = bubbles

	seen := make(map[BubbleID]bool, len(bubbles))
	for _, b := range bubbles {
		if seen[b.ID] {
			b.ID = g.NextID(time.Now())
		}
		seen[b.ID] = true
	}
}

// BubbleDefaults holds the field values of newly created bubbles.
type BubbleDefaults struct {
	Title   string
	Icon    string
	Palette []string
}

// DefaultPalette is the set of colors a new bubble picks from.
var DefaultPalette = []string{"#FF6F61", "#6B5B95", "#88B04B", "#F7CAC9", "#92A8D1"}

// DefaultBubbleDefaults returns the stock title, icon and palette.
func DefaultBubbleDefaults() BubbleDefaults {
	return BubbleDefaults{
		Title:   "New bubble",
		Icon:    "\U0001F4A1", // 💡
		Palette: DefaultPalette,
	}
}

// RandomColor picks a color from the palette. An empty palette falls back to
// DefaultPalette.
func (d BubbleDefaults) RandomColor() string {
	p := d.Palette
	if len(p) == 0 {
		p = DefaultPalette
	}
	return p[rand.IntN(len(p))]
}

// NewBubble returns a bubble at (x, y) with default field values. The id is
// left zero; Graph.AddBubble assigns it.
func (d BubbleDefaults) NewBubble(x, y float64) *Bubble {
	return &Bubble{
		X:     x,
		Y:     y,
		Title: d.Title,
		Color: d.RandomColor(),
		Icon:  d.Icon,
	}
}
