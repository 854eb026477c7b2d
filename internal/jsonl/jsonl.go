// Package jsonl reads newline-delimited JSON source files.
package jsonl

import (
	"encoding/json"
	"log/slog"
	"os"
	"strings"

	"github.com/gankles/bible-quizzes-christian-2025-sub005/core/errors"
)

// ReadFile decodes every non-blank line of a JSONL file into T. A line
// that fails to decode is skipped with a warning; the pipeline prefers
// completing with partial data over aborting on row-level defects. A
// missing or unreadable file is fatal to the caller.
func ReadFile[T any](path string) ([]T, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewIO("read", path, err)
	}

	var out []T
	for i, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var rec T
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			slog.Warn("skipping malformed JSONL line", "path", path, "line", i+1, "error", err)
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}
