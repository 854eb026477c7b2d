package topics

import (
	"sort"
	"strings"
	"unicode"

	"github.com/gankles/bible-quizzes-christian-2025-sub005/internal/slug"
)

// Topic is one normalized topical entry as written to the output JSON.
type Topic struct {
	Slug          string     `json:"slug"`
	Subject       string     `json:"subject"`
	Section       string     `json:"section"`
	SubTopics     []SubTopic `json:"subTopics"`
	RelatedTopics []string   `json:"relatedTopics"`
	TotalVerses   int        `json:"totalVerses"`
}

// Summary is a slim topic record used in the top-verse-count ranking.
type Summary struct {
	Slug        string `json:"slug"`
	Subject     string `json:"subject"`
	TotalVerses int    `json:"totalVerses"`
}

// Index is the derived lookup structure written alongside the topics.
type Index struct {
	TotalTopics    int                 `json:"totalTopics"`
	TotalVerseRefs int                 `json:"totalVerseRefs"`
	SlugMap        map[string]string   `json:"slugMap"`
	LetterIndex    map[string][]string `json:"letterIndex"`
	TopVerseCount  []Summary           `json:"topVerseCount"`
}

// Row is one parsed CSV row from the raw topical corpus.
type Row struct {
	Section string
	Subject string
	Entry   string
}

// Build normalizes the raw rows into topics sorted by subject.
//
// Rows sharing a section+subject pair are merged into one entry before
// segmenting (some topics span multiple CSV rows). Slugs are assigned in
// source-file order before sorting, so reruns over the same input assign
// identical slugs.
func Build(rows []Row) []Topic {
	type group struct {
		section string
		subject string
		entries []string
	}
	var order []string
	grouped := make(map[string]*group)

	for _, row := range rows {
		key := row.Section + "|||" + row.Subject
		g, ok := grouped[key]
		if !ok {
			g = &group{section: row.Section, subject: row.Subject}
			grouped[key] = g
			order = append(order, key)
		}
		g.entries = append(g.entries, row.Entry)
	}

	dedup := slug.NewDedup()
	topics := make([]Topic, 0, len(order))
	for _, key := range order {
		g := grouped[key]
		seg := Segment(strings.Join(g.entries, "\n"))
		topics = append(topics, Topic{
			Slug:          dedup.Claim(slug.Make(g.subject)),
			Subject:       g.subject,
			Section:       g.section,
			SubTopics:     seg.SubTopics,
			RelatedTopics: seg.RelatedTopics,
			TotalVerses:   seg.TotalVerses,
		})
	}

	sort.SliceStable(topics, func(i, j int) bool {
		return topics[i].Subject < topics[j].Subject
	})
	return topics
}

// BuildIndex derives the lookup index from the sorted topic list.
func BuildIndex(topics []Topic) Index {
	idx := Index{
		TotalTopics: len(topics),
		SlugMap:     make(map[string]string),
		LetterIndex: make(map[string][]string),
	}

	for _, t := range topics {
		idx.TotalVerseRefs += t.TotalVerses
		idx.SlugMap[t.Slug] = t.Subject
		key := SectionKey(t.Section)
		idx.LetterIndex[key] = append(idx.LetterIndex[key], t.Slug)
	}

	ranked := make([]Summary, len(topics))
	for i, t := range topics {
		ranked[i] = Summary{Slug: t.Slug, Subject: t.Subject, TotalVerses: t.TotalVerses}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalVerses > ranked[j].TotalVerses
	})
	if len(ranked) > 50 {
		ranked = ranked[:50]
	}
	idx.TopVerseCount = ranked
	return idx
}

// SectionKey normalizes a section string to its single-character
// browsing key: the uppercased first letter, or "#" when the section
// does not start with a letter.
func SectionKey(section string) string {
	for _, r := range section {
		if unicode.IsLetter(r) {
			return strings.ToUpper(string(r))
		}
		break
	}
	return "#"
}
