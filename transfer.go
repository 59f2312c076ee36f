package mindweaver

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ExportFileName is the default file name for exported maps.
const ExportFileName = "mindweaver_data.json"

// ErrMalformedGraph is returned when map data cannot be decoded.
var ErrMalformedGraph = errors.New("mindweaver: malformed map data")

// Export writes g as indented JSON: {"bubbles": [...], "connections": [...]}.
func Export(w io.Writer, g *Graph) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(exportView(g)); err != nil {
		return fmt.Errorf("mindweaver: export: %w", err)
	}
	return nil
}

// ExportBytes is Export into a byte slice.
func ExportBytes(g *Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := Export(&buf, g); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// exportView never encodes null arrays.
func exportView(g *Graph) *Graph {
	v := &Graph{Bubbles: g.Bubbles, Connections: g.Connections}
	if v.Bubbles == nil {
		v.Bubbles = []*Bubble{}
	}
	if v.Connections == nil {
		v.Connections = []Connection{}
	}
	return v
}

// Import decodes a map written by Export. Missing "bubbles" or
// "connections" arrays decode as empty. Any decode failure is reported as
// ErrMalformedGraph; the caller's graph is never touched.
func Import(r io.Reader) (*Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("mindweaver: import: %w", err)
	}
	return decodeGraph(data)
}

func decodeGraph(data []byte) (*Graph, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrMalformedGraph)
	}
	// null, arrays and scalars unmarshal into a struct without error.
	if trimmed[0] != '{' {
		return nil, fmt.Errorf("%w: top level is not an object", ErrMalformedGraph)
	}
	var g Graph
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedGraph, err)
	}
	g.normalize()
	return &g, nil
}
