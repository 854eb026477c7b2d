// Package report writes build outputs and the run manifest that
// records what a pipeline invocation produced.
package report

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/zeebo/blake3"

	"github.com/gankles/bible-quizzes-christian-2025-sub005/core/errors"
	"github.com/gankles/bible-quizzes-christian-2025-sub005/internal/logging"
)

// FileInfo describes one written output file.
type FileInfo struct {
	Name   string `json:"name"`
	Bytes  int    `json:"bytes"`
	SHA256 string `json:"sha256"`
	BLAKE3 string `json:"blake3"`
}

// Manifest summarizes a single build run.
type Manifest struct {
	BuildID   string     `json:"buildId"`
	CreatedAt string     `json:"createdAt"`
	Files     []FileInfo `json:"files"`
}

// Writer emits JSON outputs into a single directory and accumulates
// the manifest as it goes.
type Writer struct {
	outDir string
	files  []FileInfo
}

// NewWriter creates the output directory if needed.
func NewWriter(outDir string) (*Writer, error) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, errors.NewIO("create output directory", outDir, err)
	}
	return &Writer{outDir: outDir}, nil
}

// Dir returns the output directory.
func (w *Writer) Dir() string { return w.outDir }

// WriteJSON marshals v with two-space indentation and writes it to
// name inside the output directory, recording its size and hashes.
func (w *Writer) WriteJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", name, err)
	}
	return w.WriteBytes(name, data)
}

// WriteBytes writes raw bytes to name inside the output directory.
func (w *Writer) WriteBytes(name string, data []byte) error {
	path := filepath.Join(w.outDir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.NewIO("write output", path, err)
	}

	sum := sha256.Sum256(data)
	b3 := blake3.Sum256(data)
	w.files = append(w.files, FileInfo{
		Name:   name,
		Bytes:  len(data),
		SHA256: hex.EncodeToString(sum[:]),
		BLAKE3: hex.EncodeToString(b3[:]),
	})

	logging.GetLogger().Info("wrote output",
		"file", name,
		"size", fmt.Sprintf("%.2f MB", float64(len(data))/(1024*1024)))
	return nil
}

// Files returns the outputs written so far, in write order.
func (w *Writer) Files() []FileInfo { return w.files }

// buildID folds the file names and hashes into a name-based UUID.
func (w *Writer) buildID() string {
	h := sha256.New()
	for _, f := range w.files {
		fmt.Fprintf(h, "%s:%s\n", f.Name, f.SHA256)
	}
	return uuid.NewSHA1(uuid.NameSpaceOID, h.Sum(nil)).String()
}

// WriteManifest writes manifest.json describing the run. The build ID
// is derived from the content hashes of the written files, so two runs
// over identical input produce the same ID; createdAt is the only field
// that varies between such runs. The manifest itself is not listed in
// its own file table.
func (w *Writer) WriteManifest() (*Manifest, error) {
	m := &Manifest{
		BuildID:   w.buildID(),
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Files:     w.files,
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal manifest: %w", err)
	}
	path := filepath.Join(w.outDir, "manifest.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, errors.NewIO("write manifest", path, err)
	}
	return m, nil
}
