package world

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTestYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gym_map.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test yaml: %v", err)
	}
	return path
}

func TestLoadFromYAML(t *testing.T) {
	path := writeTestYAML(t, `
rows:
  - "#####"
  - "#B.G#"
  - "#...#"
  - "#####"
`)

	w, err := LoadFromYAML(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if w.Width() != 5 || w.Height() != 4 {
		t.Errorf("map is %dx%d, want 5x4", w.Width(), w.Height())
	}
	if id, ok := w.EquipmentAt(1, 1); !ok || id != "bench_press" {
		t.Errorf("EquipmentAt(1, 1) = %q, want bench_press", id)
	}
	if !w.Walkable(2, 2) {
		t.Error("floor tile should be walkable")
	}
}

func TestLoadFromYAMLMissingFile(t *testing.T) {
	if _, err := LoadFromYAML("nonexistent.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadFromYAMLInvalidYAML(t *testing.T) {
	path := writeTestYAML(t, "rows: [unclosed")

	if _, err := LoadFromYAML(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestLoadFromYAMLRaggedRows(t *testing.T) {
	path := writeTestYAML(t, `
rows:
  - "#####"
  - "#.#"
`)

	if _, err := LoadFromYAML(path); err == nil {
		t.Error("expected error for ragged rows")
	}
}
