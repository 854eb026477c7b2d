// Package geo resolves ancient-place records into geocoded, indexed
// place entries: best-confidence coordinates, modern-name resolution,
// image metadata, and nearest-neighbor tables.
package geo

// The raw JSONL records are decoded into explicit optional fields;
// every fallback in the resolution chain checks presence rather than
// relying on zero values, so a legitimate score of 0 or a latitude of 0
// is never confused with "absent".

// Thumbnail is the image metadata block attached at several levels of
// an ancient record.
type Thumbnail struct {
	File        *string `json:"file"`
	Credit      *string `json:"credit"`
	CreditURL   *string `json:"credit_url"`
	Description *string `json:"description"`
	Placeholder *string `json:"placeholder"`
}

// Media wraps the optional thumbnail block.
type Media struct {
	Thumbnail *Thumbnail `json:"thumbnail"`
}

// Score holds the candidate-ranking vote totals. Whichever field is
// present (and non-zero) ranks the candidate; time-weighted totals take
// precedence over plain vote totals.
type Score struct {
	TimeTotal *float64 `json:"time_total"`
	VoteTotal *float64 `json:"vote_total"`
}

// Value returns the effective confidence score for ranking.
func (s *Score) Value() float64 {
	if s == nil {
		return 0
	}
	if s.TimeTotal != nil && *s.TimeTotal != 0 {
		return *s.TimeTotal
	}
	if s.VoteTotal != nil {
		return *s.VoteTotal
	}
	return 0
}

// Resolution is one proposed coordinate fix within an identification.
type Resolution struct {
	LonLat        *string `json:"lonlat"` // "lon,lat"
	ModernBasisID *string `json:"modern_basis_id"`
	Media         *Media  `json:"media"`
}

// Identification is one candidate identification of an ancient place.
type Identification struct {
	Score       *Score       `json:"score"`
	Resolutions []Resolution `json:"resolutions"`
	Media       *Media       `json:"media"`
	Types       []string     `json:"types"`
}

// ModernAssociation is an alternate proposed modern equivalent with an
// independent score.
type ModernAssociation struct {
	Score *float64 `json:"score"`
}

// LinkedDatum is one external linked-data reference.
type LinkedDatum struct {
	URL *string `json:"url"`
	ID  *string `json:"id"`
}

// AncientVerse is a verse citation attached to an ancient record.
type AncientVerse struct {
	Osis string `json:"osis"`
}

// AncientRecord is one line of the ancient-places JSONL source.
type AncientRecord struct {
	ID                 string                       `json:"id"`
	FriendlyID         *string                      `json:"friendly_id"`
	URLSlug            *string                      `json:"url_slug"`
	Verses             []AncientVerse               `json:"verses"`
	Media              *Media                       `json:"media"`
	Identifications    []Identification             `json:"identifications"`
	ModernAssociations map[string]ModernAssociation `json:"modern_associations"`
	LinkedData         map[string]LinkedDatum       `json:"linked_data"`
	Types              []string                     `json:"types"`
}

// ModernRecord is one line of the modern-places JSONL source.
type ModernRecord struct {
	ID         string  `json:"id"`
	FriendlyID *string `json:"friendly_id"`
	LonLat     *string `json:"lonlat"`
	Media      *Media  `json:"media"`
}

// ImageRecord is one line of the image-metadata JSONL source.
type ImageRecord struct {
	ID           string                    `json:"id"`
	Credit       *string                   `json:"credit"`
	CreditURL    *string                   `json:"credit_url"`
	URL          *string                   `json:"url"`
	License      *string                   `json:"license"`
	Descriptions map[string]string         `json:"descriptions"`
	Thumbnails   map[string]ImageThumbnail `json:"thumbnails"`
}

// ImageThumbnail is one rendition inside an image record.
type ImageThumbnail struct {
	File *string `json:"file"`
}
