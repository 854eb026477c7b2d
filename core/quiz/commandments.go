// Package quiz generates commandment-themed quiz documents from the
// commandments CSV corpus.
package quiz

import (
	"strconv"
	"strings"

	"github.com/gankles/bible-quizzes-christian-2025-sub005/core/ref"
	"github.com/gankles/bible-quizzes-christian-2025-sub005/internal/csvx"
)

// Polarity marks a commandment as positive ("thou shalt") or negative
// ("thou shalt not").
type Polarity string

const (
	Positive Polarity = "P"
	Negative Polarity = "N"
)

// Commandment is one row of the commandments corpus.
type Commandment struct {
	Number               int
	Concept              string
	Polarity             Polarity
	ReferenceID          string // "EXO 20:13"
	ScriptureEnglish     string
	Category             string
	Book                 string // book slug, e.g. "exodus"
	Chapter              int
	Parashah             string
	MishnahTorahCategory string
}

// ParseCommandments reads the raw commandments CSV (BOM-prefixed,
// quoted fields) into records. Rows too short to carry the expected
// columns are skipped.
func ParseCommandments(raw string) []Commandment {
	rows := csvx.Parse(raw)
	var out []Commandment
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		if len(row) < 13 {
			continue
		}
		number, err := strconv.Atoi(strings.TrimSpace(row[0]))
		if err != nil {
			continue
		}

		refID := strings.TrimSpace(row[3])
		bookSlug, chapter := refBookChapter(refID)

		out = append(out, Commandment{
			Number:               number,
			Concept:              strings.TrimSpace(row[1]),
			Polarity:             Polarity(strings.TrimSpace(row[2])),
			ReferenceID:          refID,
			ScriptureEnglish:     strings.TrimSpace(row[4]),
			Category:             strings.TrimSpace(row[12]),
			Book:                 bookSlug,
			Chapter:              chapter,
			Parashah:             strings.TrimSpace(row[7]),
			MishnahTorahCategory: strings.TrimSpace(row[11]),
		})
	}
	return out
}

// refBookChapter resolves a reference ID like "EXO 20:13" to its book
// slug and chapter. Unknown codes fall back to the lowercased code so
// the record still groups somewhere.
func refBookChapter(refID string) (string, int) {
	r, err := ref.ParseRange(refID)
	if err != nil {
		return "", 0
	}
	chapter := 0
	if r.ChapterStart != nil {
		chapter = *r.ChapterStart
	}
	if r.Book != nil {
		return r.Book.Slug, chapter
	}
	return strings.ToLower(r.Code), chapter
}

// FormatRef renders a reference ID with a fully spelled book name:
// "EXO 20:13" becomes "Exodus 20:13". Unparseable IDs pass through.
func FormatRef(refID string) string {
	r, err := ref.ParseRange(refID)
	if err != nil || r.Book == nil {
		return refID
	}
	rest := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(refID), r.Code))
	if rest == "" {
		return r.Book.Name
	}
	return r.Book.Name + " " + rest
}
