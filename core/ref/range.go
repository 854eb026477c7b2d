// Package ref normalizes biblical verse references: structured
// "BOOK chapter:verse" ranges, OSIS codes, and the compact
// semicolon-separated citation lists found in the topical corpus.
package ref

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/gankles/bible-quizzes-christian-2025-sub005/core/books"
)

// Range is a parsed scripture reference that may span verses or chapters.
type Range struct {
	Code         string `parser:"@Code"`
	ChapterStart *int   `parser:"( @Number"`
	VerseStart   *int   `parser:"  ( Colon @Number )?"`
	ChapterEnd   *int   `parser:"  ( Dash ( @Number"`
	VerseEnd     *int   `parser:"    ( Colon @Number )? )? )? )?"`

	// Book is the resolved canonical book, nil when Code is not a
	// recognized abbreviation.
	Book *books.Book
}

// rangeLexer tokenizes scripture references like "1CH 6:2" or "EXO 20:13-17".
var rangeLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Book codes: optional leading digit then letters ("GEN", "1SA", "So").
	{Name: "Code", Pattern: `\d?[A-Za-z]+`},
	{Name: "Number", Pattern: `\d+`},
	{Name: "Colon", Pattern: `:`},
	{Name: "Dash", Pattern: `-`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var rangeParser = participle.MustBuild[Range](
	participle.Lexer(rangeLexer),
	participle.Elide("Whitespace"),
)

// ParseRange parses a compact scripture reference. Supported forms:
//
//	"EXO 20:13"     book chapter:verse
//	"EXO 20:13-17"  verse range within a chapter
//	"EXO 20-21"     chapter range
//	"EXO 20"        full chapter
//	"EXO"           full book
//
// The book code is resolved against the SWORD abbreviation table; an
// unknown code leaves Book nil but is not an error, so callers can fall
// back to the raw code for display.
func ParseRange(input string) (*Range, error) {
	r, err := rangeParser.ParseString("", strings.TrimSpace(input))
	if err != nil {
		return nil, fmt.Errorf("failed to parse reference %q: %w", input, err)
	}

	// "EXO 20:13-17" tokenizes the trailing number into ChapterEnd; when a
	// start verse exists and no end verse does, the number after the dash
	// is the end verse, not an end chapter.
	if r.VerseStart != nil && r.ChapterEnd != nil && r.VerseEnd == nil {
		r.VerseEnd = r.ChapterEnd
		r.ChapterEnd = nil
	}

	if b, ok := books.BySword(r.Code); ok {
		r.Book = b
	}
	return r, nil
}

// BookName returns the fully spelled book name, falling back to the raw
// code when the abbreviation is unknown.
func (r *Range) BookName() string {
	if r.Book != nil {
		return r.Book.Name
	}
	return r.Code
}

// String renders the canonical form with a spelled-out book name.
func (r *Range) String() string {
	var sb strings.Builder
	sb.WriteString(r.BookName())
	if r.ChapterStart == nil {
		return sb.String()
	}
	fmt.Fprintf(&sb, " %d", *r.ChapterStart)
	if r.VerseStart != nil {
		fmt.Fprintf(&sb, ":%d", *r.VerseStart)
	}
	if r.ChapterEnd != nil {
		fmt.Fprintf(&sb, "-%d", *r.ChapterEnd)
		if r.VerseEnd != nil {
			fmt.Fprintf(&sb, ":%d", *r.VerseEnd)
		}
	} else if r.VerseEnd != nil {
		fmt.Fprintf(&sb, "-%d", *r.VerseEnd)
	}
	return sb.String()
}
