package report

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteJSONRecordsHashes(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}

	if err := w.WriteJSON("sample.json", map[string]int{"a": 1}); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	files := w.Files()
	if len(files) != 1 {
		t.Fatalf("expected 1 file record, got %d", len(files))
	}
	f := files[0]
	if f.Name != "sample.json" {
		t.Errorf("Name = %q", f.Name)
	}

	data, err := os.ReadFile(filepath.Join(w.Dir(), "sample.json"))
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if f.Bytes != len(data) {
		t.Errorf("Bytes = %d, want %d", f.Bytes, len(data))
	}
	sum := sha256.Sum256(data)
	if f.SHA256 != hex.EncodeToString(sum[:]) {
		t.Errorf("SHA256 mismatch: %s", f.SHA256)
	}
	if len(f.BLAKE3) != 64 {
		t.Errorf("BLAKE3 = %q, want 64 hex chars", f.BLAKE3)
	}

	var decoded map[string]int
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["a"] != 1 {
		t.Errorf("decoded = %v", decoded)
	}
}

func TestWriteManifest(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}
	if err := w.WriteJSON("one.json", []int{1}); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}
	if err := w.WriteJSON("two.json", []int{2}); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	m, err := w.WriteManifest()
	if err != nil {
		t.Fatalf("WriteManifest failed: %v", err)
	}
	if m.BuildID == "" || m.CreatedAt == "" {
		t.Errorf("manifest metadata incomplete: %+v", m)
	}
	if len(m.Files) != 2 {
		t.Errorf("manifest lists %d files, want 2", len(m.Files))
	}

	data, err := os.ReadFile(filepath.Join(w.Dir(), "manifest.json"))
	if err != nil {
		t.Fatalf("failed to read manifest: %v", err)
	}
	var onDisk Manifest
	if err := json.Unmarshal(data, &onDisk); err != nil {
		t.Fatalf("manifest is not valid JSON: %v", err)
	}
	if onDisk.BuildID != m.BuildID {
		t.Errorf("BuildID mismatch: %s vs %s", onDisk.BuildID, m.BuildID)
	}
}

func TestBuildIDDeterministic(t *testing.T) {
	write := func(payload any) string {
		w, err := NewWriter(t.TempDir())
		if err != nil {
			t.Fatalf("NewWriter failed: %v", err)
		}
		if err := w.WriteJSON("out.json", payload); err != nil {
			t.Fatalf("WriteJSON failed: %v", err)
		}
		m, err := w.WriteManifest()
		if err != nil {
			t.Fatalf("WriteManifest failed: %v", err)
		}
		return m.BuildID
	}

	first := write([]int{1, 2, 3})
	second := write([]int{1, 2, 3})
	if first != second {
		t.Errorf("BuildID differs across identical runs: %s vs %s", first, second)
	}
	if other := write([]int{4, 5, 6}); other == first {
		t.Errorf("BuildID %s did not change with content", other)
	}
}

func TestNewWriterCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	w, err := NewWriter(dir)
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}
	if err := w.WriteJSON("x.json", 1); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "x.json")); err != nil {
		t.Errorf("output missing: %v", err)
	}
}
