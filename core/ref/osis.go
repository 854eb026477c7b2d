package ref

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/gankles/bible-quizzes-christian-2025-sub005/core/books"
)

// VerseRef is a single fully resolved verse citation as written to the
// output JSON. Field names and shapes are part of the downstream lookup
// contract.
type VerseRef struct {
	BookSlug string `json:"bookSlug"`
	Chapter  int    `json:"chapter"`
	Verse    int    `json:"verse"`
	Ref      string `json:"ref"`      // "genesis-14-18"
	Readable string `json:"readable"` // "Genesis 14:18"
	Osis     string `json:"osis"`     // "Gen.14.18"
}

var osisRe = regexp.MustCompile(`^(\d?\w+)\.(\d+)\.(\d+)$`)

// ParseOsis resolves an OSIS verse code like "Gen.14.18" or "2Kgs.5.12".
// Unknown book codes report ok=false and are skipped by callers.
func ParseOsis(osis string) (VerseRef, bool) {
	m := osisRe.FindStringSubmatch(osis)
	if m == nil {
		return VerseRef{}, false
	}
	book, ok := books.ByOsis(m[1])
	if !ok {
		return VerseRef{}, false
	}
	chapter, _ := strconv.Atoi(m[2])
	verse, _ := strconv.Atoi(m[3])
	return VerseRef{
		BookSlug: book.Slug,
		Chapter:  chapter,
		Verse:    verse,
		Ref:      fmt.Sprintf("%s-%d-%d", book.Slug, chapter, verse),
		Readable: fmt.Sprintf("%s %d:%d", book.Name, chapter, verse),
		Osis:     osis,
	}, true
}

// ChapterKey returns the "bookslug-chapter" grouping key for this verse.
func (v VerseRef) ChapterKey() string {
	return fmt.Sprintf("%s-%d", v.BookSlug, v.Chapter)
}
