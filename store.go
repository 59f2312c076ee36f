package mindweaver

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// Store persists a single map.
type Store interface {
	// Load returns the stored map. Missing or unreadable data yields an
	// empty graph, never an error.
	Load() *Graph
	// Save replaces the stored map with g.
	Save(g *Graph) error
}

// FileStore keeps the map as a JSON file.
type FileStore struct {
	Path string
}

// NewFileStore returns a store backed by the file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Load reads the map file. A missing file is an empty map; a corrupt file is
// logged and also treated as an empty map.
func (s *FileStore) Load() *Graph {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("mindweaver: load %s: %v", s.Path, err)
		}
		return NewGraph()
	}
	g, err := decodeGraph(data)
	if err != nil {
		log.Printf("mindweaver: load %s: %v", s.Path, err)
		return NewGraph()
	}
	return g
}

// Save writes the map atomically: to a temporary file in the same
// directory, then renamed over the target.
func (s *FileStore) Save(g *Graph) error {
	data, err := ExportBytes(g)
	if err != nil {
		return err
	}
	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mindweaver: save: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".mindweaver-*.json")
	if err != nil {
		return fmt.Errorf("mindweaver: save: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("mindweaver: save %s: %w", s.Path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("mindweaver: save %s: %w", s.Path, err)
	}
	if err := os.Rename(tmpName, s.Path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("mindweaver: save %s: %w", s.Path, err)
	}
	return nil
}

// MemoryStore keeps the map as encoded bytes in memory. Saving and loading go
// through the same JSON encoding as FileStore.
type MemoryStore struct {
	data  []byte
	Saves int
}

// Load decodes the last saved map, or returns an empty one.
func (s *MemoryStore) Load() *Graph {
	if s.data == nil {
		return NewGraph()
	}
	g, err := decodeGraph(s.data)
	if err != nil {
		return NewGraph()
	}
	return g
}

// Save encodes g.
func (s *MemoryStore) Save(g *Graph) error {
	data, err := ExportBytes(g)
	if err != nil {
		return err
	}
	s.data = data
	s.Saves++
	return nil
}

// SetRaw replaces the stored bytes, for simulating corrupt storage.
func (s *MemoryStore) SetRaw(data []byte) {
	s.data = data
}
