package jsonl

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gankles/bible-quizzes-christian-2025-sub005/core/errors"
)

type record struct {
	ID   string `json:"id"`
	Size int    `json:"size"`
}

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.jsonl")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	return path
}

func TestReadFile(t *testing.T) {
	path := writeTemp(t, `{"id":"a","size":1}`+"\n"+`{"id":"b","size":2}`+"\n")
	recs, err := ReadFile[record](path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].ID != "a" || recs[1].Size != 2 {
		t.Errorf("records = %+v", recs)
	}
}

// Malformed lines are skipped, not fatal; blank lines are ignored.
func TestReadFileSkipsBadLines(t *testing.T) {
	path := writeTemp(t, `{"id":"a"}`+"\n\nnot json at all\n"+`{"id":"b"}`+"\n")
	recs, err := ReadFile[record](path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if len(recs) != 2 {
		t.Errorf("expected 2 records, got %d", len(recs))
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile[record](filepath.Join(t.TempDir(), "absent.jsonl"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	var ioErr *errors.IOError
	if !errors.As(err, &ioErr) {
		t.Errorf("expected IOError, got %T", err)
	}
}
