// Package names builds the biblical name dictionary (name and meanings)
// from its raw two-column CSV corpus.
package names

import (
	"sort"
	"strings"

	"github.com/gankles/bible-quizzes-christian-2025-sub005/internal/csvx"
	"github.com/gankles/bible-quizzes-christian-2025-sub005/internal/slug"
)

// Name is one normalized name record as written to the output JSON.
type Name struct {
	Slug        string   `json:"slug"`
	Name        string   `json:"name"`
	Meanings    []string `json:"meanings"`
	FirstLetter string   `json:"firstLetter"`
	NamePrefix  string   `json:"namePrefix"`
}

// LetterEntry is the slim record stored in the letter index.
type LetterEntry struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// PrefixEntry is the record stored in the prefix groups.
type PrefixEntry struct {
	Slug     string   `json:"slug"`
	Name     string   `json:"name"`
	Meanings []string `json:"meanings"`
}

// Index is the derived lookup structure written alongside the names.
type Index struct {
	TotalNames   int                      `json:"totalNames"`
	LetterIndex  map[string][]LetterEntry `json:"letterIndex"`
	PrefixGroups map[string][]PrefixEntry `json:"prefixGroups"`
}

// Build parses the raw Name,Meaning CSV and returns records sorted by
// name. Slugs are assigned in source order before sorting so reruns are
// stable. Rows with an empty name are skipped.
func Build(raw string) []Name {
	rows := csvx.Parse(raw)
	dedup := slug.NewDedup()

	var out []Name
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		name := strings.TrimSpace(row[0])
		if name == "" || name == "Name" {
			continue
		}
		// Unquoted meanings with embedded commas tokenize into extra
		// fields; rejoin them.
		meaning := strings.TrimSpace(strings.Join(row[1:], ","))

		out = append(out, Name{
			Slug:        dedup.Claim(slug.Make(name)),
			Name:        name,
			Meanings:    SplitMeanings(meaning),
			FirstLetter: strings.ToUpper(name[:1]),
			NamePrefix:  Prefix(name),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

// BuildIndex derives the letter index and prefix groups.
func BuildIndex(ns []Name) Index {
	idx := Index{
		TotalNames:   len(ns),
		LetterIndex:  make(map[string][]LetterEntry),
		PrefixGroups: make(map[string][]PrefixEntry),
	}
	for _, n := range ns {
		idx.LetterIndex[n.FirstLetter] = append(idx.LetterIndex[n.FirstLetter],
			LetterEntry{Slug: n.Slug, Name: n.Name})
		idx.PrefixGroups[n.NamePrefix] = append(idx.PrefixGroups[n.NamePrefix],
			PrefixEntry{Slug: n.Slug, Name: n.Name, Meanings: n.Meanings})
	}
	return idx
}

// SplitMeanings splits a raw meaning string on its separators
// (semicolons and commas), trimming each part and dropping empties:
// "a meadow; vanity" yields two meanings, as does "Abel, a meadow".
func SplitMeanings(raw string) []string {
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ';' || r == ','
	})
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Prefix derives the three-letter grouping prefix: the first three
// alphabetic characters (hyphens ignored), first letter uppercased and
// the rest lowered, so "Abel-beth-maachah" groups under "Abe".
func Prefix(name string) string {
	var alpha []rune
	for _, r := range name {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			alpha = append(alpha, r)
			if len(alpha) == 3 {
				break
			}
		}
	}
	if len(alpha) == 0 {
		return ""
	}
	prefix := strings.ToUpper(string(alpha[0])) + strings.ToLower(string(alpha[1:]))
	return prefix
}
