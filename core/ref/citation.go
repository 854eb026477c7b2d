package ref

import (
	"regexp"
	"strings"

	"github.com/gankles/bible-quizzes-christian-2025-sub005/core/books"
)

// Citation is one expanded verse citation: a canonical book plus the
// verbatim chapter/verse specifier ("6:16-20", "21:4,10"). Ranges and
// comma-lists are kept as-is rather than exploded into individual verses.
type Citation struct {
	Book *books.Book
	Spec string
}

// String renders the citation with the fully spelled book name. No
// abbreviation ever reaches output.
func (c Citation) String() string {
	return c.Book.Name + " " + c.Spec
}

var (
	// citationStart locates the first "BOOK chapter" token in free text,
	// anchored to the start of the text or a preceding separator so that
	// title words ending in a book-like string do not trigger a match.
	citationStart *regexp.Regexp
	// segmentBook matches a semicolon-segment that opens with a book code.
	segmentBook *regexp.Regexp
)

func init() {
	codes := books.SwordCodes()
	quoted := make([]string, len(codes))
	for i, c := range codes {
		quoted[i] = regexp.QuoteMeta(c)
	}
	alt := strings.Join(quoted, "|")
	citationStart = regexp.MustCompile(`(?:^|[\s;])(` + alt + `)\s+\d`)
	segmentBook = regexp.MustCompile(`^(` + alt + `)\s+(.+)$`)
}

// ParseCitationList expands a compact citation list such as
//
//	"EXO 6:16-20; JOS 21:4,10; 1CH 6:2,3; 23:13"
//
// into fully qualified citations. Scanning starts at the first
// recognizable "BOOK chapter" token; the remainder splits on semicolons.
// A segment that opens with a book code sets the current book; a segment
// that opens with a digit inherits the previous segment's book
// (carry-forward), so the example yields 1 Chronicles for both of the
// last two segments. Segments that are neither are skipped.
func ParseCitationList(text string) []Citation {
	if text == "" {
		return nil
	}

	loc := citationStart.FindStringSubmatchIndex(text)
	if loc == nil {
		return nil
	}
	refText := text[loc[2]:] // start of the book-code capture group

	var refs []Citation
	var current *books.Book
	for _, part := range strings.Split(refText, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if m := segmentBook.FindStringSubmatch(part); m != nil {
			book, ok := books.BySword(m[1])
			if !ok {
				continue
			}
			current = book
			if spec := strings.TrimSpace(m[2]); spec != "" {
				refs = append(refs, Citation{Book: current, Spec: spec})
			}
			continue
		}

		// Continuation: "23:13" or a bare chapter number under the
		// current book context.
		if current != nil && part[0] >= '0' && part[0] <= '9' {
			refs = append(refs, Citation{Book: current, Spec: part})
		}
	}
	return refs
}

// CitationStrings renders each citation to its canonical display form.
func CitationStrings(refs []Citation) []string {
	out := make([]string, len(refs))
	for i, r := range refs {
		out[i] = r.String()
	}
	return out
}

// HasCitation reports whether text contains at least one recognizable
// "BOOK chapter" token.
func HasCitation(text string) bool {
	return citationStart.MatchString(text)
}
