package geo

import (
	"sort"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// Resolved is the outcome of the candidate-selection chain for one
// ancient place.
type Resolved struct {
	Lat             *float64
	Lon             *float64
	ConfidenceScore float64
	ModernName      *string
	ThumbnailFile   *string
	Credit          *string
	CreditURL       *string
	Description     *string
	Placeholder     *string
}

// Resolve picks the best coordinates and metadata for an ancient place.
//
// Identification resolutions are ranked by confidence score and the
// maximum wins. Modern associations are then allowed to override, but
// only when strictly higher-scored than the winner (or when no
// identification produced coordinates at all). Thumbnail metadata fills
// from the first available source in priority order — top-level record,
// then winning resolution, then identification, then modern association
// — and an already-set field is never overwritten.
func Resolve(ancient *AncientRecord, modernByID map[string]*ModernRecord) Resolved {
	var r Resolved

	if ancient.Media != nil && ancient.Media.Thumbnail != nil {
		r.takeThumbnail(ancient.Media.Thumbnail)
	}

	bestScore := -1.0
	for i := range ancient.Identifications {
		ident := &ancient.Identifications[i]
		score := ident.Score.Value()

		for j := range ident.Resolutions {
			res := &ident.Resolutions[j]
			if res.LonLat == nil || score <= bestScore {
				continue
			}
			lon, lat, ok := parseLonLat(*res.LonLat)
			if !ok {
				continue
			}
			r.Lat, r.Lon = &lat, &lon
			bestScore = score
			r.ConfidenceScore = score

			if res.ModernBasisID != nil {
				if modern, ok := modernByID[*res.ModernBasisID]; ok {
					r.ModernName = modern.FriendlyID
				}
			}
			if res.Media != nil && res.Media.Thumbnail != nil {
				r.takeThumbnail(res.Media.Thumbnail)
			}
		}

		if ident.Media != nil && ident.Media.Thumbnail != nil {
			r.takeThumbnail(ident.Media.Thumbnail)
		}
	}

	if assocID, assocScore, ok := bestAssociation(ancient.ModernAssociations); ok {
		modern := modernByID[assocID]
		if modern != nil && modern.LonLat != nil {
			lon, lat, parsed := parseLonLat(*modern.LonLat)
			if parsed && (r.Lat == nil || assocScore > r.ConfidenceScore) {
				r.Lat, r.Lon = &lat, &lon
				if assocScore != 0 {
					r.ConfidenceScore = assocScore
				}
				if modern.FriendlyID != nil {
					r.ModernName = modern.FriendlyID
				}
			}
			if modern.Media != nil && modern.Media.Thumbnail != nil {
				r.takeThumbnail(modern.Media.Thumbnail)
			}
		}
	}

	return r
}

// takeThumbnail fills metadata fields from t without overwriting any
// field already set by a higher-priority source.
func (r *Resolved) takeThumbnail(t *Thumbnail) {
	if r.ThumbnailFile != nil {
		return
	}
	r.ThumbnailFile = t.File
	r.Credit = t.Credit
	r.CreditURL = t.CreditURL
	if t.Description != nil {
		desc := StripMarkup(*t.Description)
		r.Description = &desc
	}
	r.Placeholder = t.Placeholder
}

// bestAssociation returns the highest-scored modern association.
// Ties break on the association ID so reruns pick the same winner.
func bestAssociation(assocs map[string]ModernAssociation) (string, float64, bool) {
	if len(assocs) == 0 {
		return "", 0, false
	}
	ids := make([]string, 0, len(assocs))
	for id := range assocs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		si, sj := assocScore(assocs[ids[i]]), assocScore(assocs[ids[j]])
		if si != sj {
			return si > sj
		}
		return ids[i] < ids[j]
	})
	return ids[0], assocScore(assocs[ids[0]]), true
}

func assocScore(a ModernAssociation) float64 {
	if a.Score == nil {
		return 0
	}
	return *a.Score
}

// parseLonLat splits a "lon,lat" coordinate string.
func parseLonLat(s string) (lon, lat float64, ok bool) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	lon, errLon := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lat, errLat := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if errLon != nil || errLat != nil {
		return 0, 0, false
	}
	return lon, lat, true
}

// LinkedRefs extracts the wikipedia and wikidata URLs from a record's
// linked-data block. Sources are scanned in sorted-key order; the first
// match for each target wins. A bare wikidata entity ID ("Q1234")
// expands to its canonical URL.
func LinkedRefs(linked map[string]LinkedDatum) (wikipedia, wikidata *string) {
	ids := make([]string, 0, len(linked))
	for id := range linked {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		ld := linked[id]
		if ld.URL != nil {
			if wikipedia == nil && strings.Contains(*ld.URL, "wikipedia.org") {
				wikipedia = ld.URL
			}
			if wikidata == nil && strings.Contains(*ld.URL, "wikidata.org") {
				wikidata = ld.URL
			}
		}
		if wikidata == nil && ld.ID != nil && strings.HasPrefix(*ld.ID, "Q") {
			url := "https://www.wikidata.org/wiki/" + *ld.ID
			wikidata = &url
		}
	}
	return wikipedia, wikidata
}

// StripMarkup removes HTML/XML tags from a description string, keeping
// only its text content.
func StripMarkup(s string) string {
	if !strings.ContainsRune(s, '<') {
		return strings.TrimSpace(s)
	}
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return strings.TrimSpace(s)
	}
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return strings.TrimSpace(sb.String())
}
