package mindweaver

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "map.json")
	s := NewFileStore(path)

	g := abcGraph()
	if err := s.Save(g); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got := s.Load()
	if len(got.Bubbles) != 3 || got.Bubbles[2].Tags != "PLANets" {
		t.Errorf("Load = %+v", got.Bubbles)
	}
	if len(got.Connections) != 1 {
		t.Errorf("Connections = %v", got.Connections)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("directory holds %d files, want only the map (temp file left behind?)", len(entries))
	}
}

func TestFileStoreOverwrite(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "map.json"))
	if err := s.Save(abcGraph()); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(NewGraph()); err != nil {
		t.Fatal(err)
	}
	if got := s.Load(); len(got.Bubbles) != 0 {
		t.Errorf("Load after overwrite = %d bubbles, want 0", len(got.Bubbles))
	}
}

func TestFileStoreMissing(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "absent.json"))
	g := s.Load()
	if g == nil || len(g.Bubbles) != 0 || g.Connections == nil {
		t.Errorf("Load of missing file = %+v, want empty graph", g)
	}
}

func TestFileStoreCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.json")
	if err := os.WriteFile(path, []byte("{oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	g := NewFileStore(path).Load()
	if g == nil || len(g.Bubbles) != 0 {
		t.Errorf("Load of corrupt file = %+v, want empty graph", g)
	}
}

func TestMemoryStore(t *testing.T) {
	var s MemoryStore
	if g := s.Load(); len(g.Bubbles) != 0 {
		t.Error("fresh store not empty")
	}
	g := abcGraph()
	if err := s.Save(g); err != nil {
		t.Fatal(err)
	}
	g.Bubbles[0].Title = "mutated after save"
	if got := s.Load(); got.Bubbles[0].Title != "Alpha" {
		t.Errorf("stored title = %q, want a snapshot", got.Bubbles[0].Title)
	}
	if s.Saves != 1 {
		t.Errorf("Saves = %d, want 1", s.Saves)
	}

	s.SetRaw([]byte("garbage"))
	if got := s.Load(); len(got.Bubbles) != 0 {
		t.Error("corrupt memory store did not load empty")
	}
}
