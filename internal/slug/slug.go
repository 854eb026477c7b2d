// Package slug derives URL-safe identifiers from display names and
// enforces uniqueness across a single pipeline run.
package slug

import (
	"fmt"
	"strings"
)

// Make converts a display name to a kebab-case slug: lowercase,
// apostrophes removed, any other non-alphanumeric run collapsed to a
// single hyphen, leading/trailing hyphens trimmed.
func Make(name string) string {
	lower := strings.ToLower(name)

	var sb strings.Builder
	pendingHyphen := false
	for _, r := range lower {
		switch {
		case r == '\'' || r == '‘' || r == '’':
			// apostrophes vanish entirely: "Pharaoh's" -> "pharaohs"
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			if pendingHyphen && sb.Len() > 0 {
				sb.WriteByte('-')
			}
			pendingHyphen = false
			sb.WriteRune(r)
		default:
			pendingHyphen = true
		}
	}
	return sb.String()
}

// Dedup hands out unique slugs for a run. The first occurrence of a base
// slug keeps it bare; the Nth occurrence gets "-N" appended. Callers must
// feed entities in a stable order so reruns assign identical slugs.
type Dedup struct {
	counts map[string]int
}

// NewDedup returns an empty slug allocator.
func NewDedup() *Dedup {
	return &Dedup{counts: make(map[string]int)}
}

// Claim returns the unique slug for the next entity with the given base
// slug. An empty base is replaced with "unknown" before deduplication.
func (d *Dedup) Claim(base string) string {
	if base == "" {
		base = "unknown"
	}
	d.counts[base]++
	if n := d.counts[base]; n > 1 {
		return fmt.Sprintf("%s-%d", base, n)
	}
	return base
}
