package geo

import (
	"sort"

	"github.com/gankles/bible-quizzes-christian-2025-sub005/core/ref"
	"github.com/gankles/bible-quizzes-christian-2025-sub005/internal/slug"
)

// Place is one geocoded place entry as written to the output JSON. A
// place with no resolvable coordinates is still emitted (null lat/lon):
// that is a valid, displayable-but-unmapped state, not an error.
type Place struct {
	ID              string         `json:"id"`
	Slug            string         `json:"slug"`
	Name            string         `json:"name"`
	Type            string         `json:"type"`
	Types           []string       `json:"types"`
	Lat             *float64       `json:"lat"`
	Lon             *float64       `json:"lon"`
	ConfidenceScore float64        `json:"confidenceScore"`
	VerseCount      int            `json:"verseCount"`
	Verses          []ref.VerseRef `json:"verses"`
	Books           []string       `json:"books"`
	Wikipedia       *string        `json:"wikipedia"`
	Wikidata        *string        `json:"wikidata"`
	ThumbnailFile   *string        `json:"thumbnailFile"`
	Credit          *string        `json:"credit"`
	CreditURL       *string        `json:"creditUrl"`
	Description     *string        `json:"description"`
	ModernName      *string        `json:"modernName"`
	Placeholder     *string        `json:"placeholder"`
}

// BuildPlaces normalizes the raw ancient records into places sorted by
// name. Slugs are assigned in source-record order before sorting so
// reruns over the same input are byte-stable.
func BuildPlaces(ancients []AncientRecord, moderns []ModernRecord) []Place {
	modernByID := make(map[string]*ModernRecord, len(moderns))
	for i := range moderns {
		modernByID[moderns[i].ID] = &moderns[i]
	}

	dedup := slug.NewDedup()
	places := make([]Place, 0, len(ancients))

	for i := range ancients {
		ancient := &ancients[i]

		name := "Unknown"
		if ancient.FriendlyID != nil && *ancient.FriendlyID != "" {
			name = *ancient.FriendlyID
		}
		base := slug.Make(name)
		if ancient.URLSlug != nil && *ancient.URLSlug != "" {
			base = *ancient.URLSlug
		}

		var verses []ref.VerseRef
		for _, v := range ancient.Verses {
			if parsed, ok := ref.ParseOsis(v.Osis); ok {
				verses = append(verses, parsed)
			}
		}

		resolved := Resolve(ancient, modernByID)
		wikipedia, wikidata := LinkedRefs(ancient.LinkedData)
		types := collectTypes(ancient)

		typ := "unknown"
		if len(types) > 0 {
			typ = types[0]
		}

		places = append(places, Place{
			ID:              ancient.ID,
			Slug:            dedup.Claim(base),
			Name:            name,
			Type:            typ,
			Types:           types,
			Lat:             resolved.Lat,
			Lon:             resolved.Lon,
			ConfidenceScore: resolved.ConfidenceScore,
			VerseCount:      len(verses),
			Verses:          verses,
			Books:           uniqueBooks(verses),
			Wikipedia:       wikipedia,
			Wikidata:        wikidata,
			ThumbnailFile:   resolved.ThumbnailFile,
			Credit:          resolved.Credit,
			CreditURL:       resolved.CreditURL,
			Description:     resolved.Description,
			ModernName:      resolved.ModernName,
			Placeholder:     resolved.Placeholder,
		})
	}

	sort.SliceStable(places, func(i, j int) bool {
		return places[i].Name < places[j].Name
	})
	return places
}

// collectTypes gathers place types from every identification and the
// record root, deduplicated in first-seen order.
func collectTypes(ancient *AncientRecord) []string {
	var types []string
	seen := make(map[string]bool)
	add := func(t string) {
		if t != "" && !seen[t] {
			seen[t] = true
			types = append(types, t)
		}
	}
	for _, ident := range ancient.Identifications {
		for _, t := range ident.Types {
			add(t)
		}
	}
	for _, t := range ancient.Types {
		add(t)
	}
	return types
}

// uniqueBooks lists the distinct book slugs cited by a place's verses,
// in first-citation order.
func uniqueBooks(verses []ref.VerseRef) []string {
	var out []string
	seen := make(map[string]bool)
	for _, v := range verses {
		if !seen[v.BookSlug] {
			seen[v.BookSlug] = true
			out = append(out, v.BookSlug)
		}
	}
	return out
}
