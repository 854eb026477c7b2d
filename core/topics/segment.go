// Package topics turns the raw topical CSV corpus (section, subject,
// free-text entry) into normalized topic records and their lookup
// indexes.
package topics

import (
	"regexp"
	"strings"

	"github.com/gankles/bible-quizzes-christian-2025-sub005/core/ref"
)

// SubTopic is one titled group of verse citations within a topic entry.
type SubTopic struct {
	Title  string   `json:"title"`
	Verses []string `json:"verses"`
}

// Segmented is the result of splitting one entry's free text.
type Segmented struct {
	SubTopics     []SubTopic
	RelatedTopics []string
	TotalVerses   int
}

var (
	// seeOnlyRe matches pure "See TOPIC" cross-reference lines that carry
	// no verse data of their own.
	seeOnlyRe = regexp.MustCompile(`(?i)^-?\s*See\s+`)
	// parenRe matches parenthetical descriptive lines like "-(A city in...)".
	parenRe = regexp.MustCompile(`^-?\(`)
	// verseTokenRe detects any chapter:verse token on a line.
	verseTokenRe = regexp.MustCompile(`\d+:\d+`)
	// topLevelRe matches an unindented "-Title ..." sub-topic opener.
	topLevelRe = regexp.MustCompile(`^-[A-Za-z0-9]`)
	// indentedRe matches an indented "   -..." sub-entry line.
	indentedRe = regexp.MustCompile(`^\s+-`)
	// titleRe captures the sub-topic title: the text after the dash up to
	// the first book-code-plus-digit token, or the whole line.
	titleRe = regexp.MustCompile(`^-(.+?)(?:\s+(?:\d?[A-Za-z]{2,3}\s+\d)|$)`)
	// seeTopicRe captures the referenced topic name on a "See" line.
	seeTopicRe = regexp.MustCompile(`(?i)[-\s]*See\s+(.+?)(?:"|$)`)
	// trailingPunctRe trims trailing punctuation off extracted names.
	trailingPunctRe = regexp.MustCompile(`[",;.]+$`)
	// trailingCommaRe trims a trailing comma (plus space) off titles.
	trailingCommaRe = regexp.MustCompile(`,?\s*$`)
)

// Segment splits a multi-line topic entry into sub-topics.
//
// Unindented lines starting with "-" open a new top-level sub-topic;
// indented "-" lines either open a new sub-topic or append citations to
// the open one. "See TOPIC" lines become related-topic links and never
// contribute verses. Parenthetical descriptive lines without citations
// are dropped. When the line heuristics find no structure at all but the
// raw entry still contains citations, everything collapses into a single
// "General" sub-topic so no verse data is lost.
//
// TotalVerses counts every citation occurrence; duplicates across
// sub-topics are not deduplicated.
func Segment(entry string) Segmented {
	var seg Segmented

	var (
		titled        bool
		currentTitle  string
		currentVerses []string
	)
	flush := func() {
		if !titled {
			return
		}
		// A titled sub-topic with zero verses is retained: dropping it
		// would silently lose hand-curated structure.
		if currentTitle != "" || len(currentVerses) > 0 {
			seg.SubTopics = append(seg.SubTopics, SubTopic{
				Title:  currentTitle,
				Verses: append([]string(nil), currentVerses...),
			})
			seg.TotalVerses += len(currentVerses)
		}
	}

	lines := strings.Split(entry, "\n")
	allLines := make([]string, 0, len(lines))

	for _, rawLine := range lines {
		line := strings.TrimSuffix(strings.TrimPrefix(rawLine, `"`), `"`)
		allLines = append(allLines, line)

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		// Cross-reference lines are collected separately below.
		if seeOnlyRe.MatchString(trimmed) && !verseTokenRe.MatchString(trimmed) {
			continue
		}
		// Descriptive notes without citations contribute nothing.
		if parenRe.MatchString(trimmed) && !verseTokenRe.MatchString(trimmed) {
			continue
		}

		isTopLevel := topLevelRe.MatchString(trimmed)
		isIndented := indentedRe.MatchString(line) && !strings.HasPrefix(line, "-")

		switch {
		case isTopLevel:
			flush()
			titled = true
			currentTitle = extractTitle(trimmed)
			currentVerses = extractVerses(trimmed)

		case isIndented:
			if m := titleRe.FindStringSubmatch(trimmed); m != nil {
				flush()
				titled = true
				currentTitle = trailingCommaRe.ReplaceAllString(strings.TrimSpace(m[1]), "")
				currentVerses = extractVerses(trimmed)
			} else {
				currentVerses = append(currentVerses, extractVerses(trimmed)...)
			}

		default:
			// Continuation line: keep any citations it carries.
			currentVerses = append(currentVerses, extractVerses(trimmed)...)
		}
	}
	flush()

	// Fallback: the structure heuristics found nothing, but the raw text
	// still cites verses.
	if len(seg.SubTopics) == 0 {
		all := extractVerses(strings.ReplaceAll(entry, `"`, ""))
		if len(all) > 0 {
			seg.SubTopics = []SubTopic{{Title: "General", Verses: all}}
			seg.TotalVerses = len(all)
		}
	}

	seg.RelatedTopics = extractRelated(allLines)
	return seg
}

func extractTitle(trimmed string) string {
	if m := titleRe.FindStringSubmatch(trimmed); m != nil {
		return trailingCommaRe.ReplaceAllString(strings.TrimSpace(m[1]), "")
	}
	return strings.TrimSpace(strings.TrimPrefix(trimmed, "-"))
}

func extractVerses(text string) []string {
	return ref.CitationStrings(ref.ParseCitationList(text))
}

// extractRelated pulls "See TOPIC" cross-references out of the entry
// lines. Names are free text ("PRIEST, HIGH") and are kept as
// display-only references; they are not guaranteed to resolve to a slug.
func extractRelated(lines []string) []string {
	var related []string
	seen := make(map[string]bool)

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !strings.Contains(strings.ToLower(trimmed), "see ") {
			continue
		}
		for _, m := range seeTopicRe.FindAllStringSubmatch(trimmed, -1) {
			topic := strings.TrimSpace(trailingPunctRe.ReplaceAllString(strings.TrimSpace(m[1]), ""))
			if topic == "" || len(topic) <= 1 {
				continue
			}
			if topic[0] >= '0' && topic[0] <= '9' {
				continue
			}
			if !seen[topic] {
				seen[topic] = true
				related = append(related, topic)
			}
		}
	}
	return related
}
