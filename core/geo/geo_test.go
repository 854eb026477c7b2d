package geo

import (
	"math"
	"reflect"
	"testing"
)

func fp(v float64) *float64 { return &v }
func sp(s string) *string   { return &s }

func identWithScore(score float64, lonlat string) Identification {
	return Identification{
		Score:       &Score{VoteTotal: fp(score)},
		Resolutions: []Resolution{{LonLat: sp(lonlat)}},
	}
}

// The highest-scored identification wins regardless of ordering.
func TestResolveMaxConfidence(t *testing.T) {
	ancient := &AncientRecord{
		ID: "a1",
		Identifications: []Identification{
			identWithScore(2, "35.0,31.0"),
			identWithScore(9, "36.0,32.0"),
			identWithScore(5, "37.0,33.0"),
		},
	}
	r := Resolve(ancient, nil)
	if r.ConfidenceScore != 9 {
		t.Errorf("ConfidenceScore = %v, want 9", r.ConfidenceScore)
	}
	if r.Lat == nil || *r.Lat != 32.0 {
		t.Errorf("Lat = %v, want 32.0", r.Lat)
	}
	if r.Lon == nil || *r.Lon != 36.0 {
		t.Errorf("Lon = %v, want 36.0", r.Lon)
	}
}

// Time-weighted totals take precedence over plain vote totals, but a
// zero time total falls through rather than zeroing the score.
func TestScoreValue(t *testing.T) {
	if got := (&Score{TimeTotal: fp(3.5), VoteTotal: fp(10)}).Value(); got != 3.5 {
		t.Errorf("Value = %v, want 3.5", got)
	}
	if got := (&Score{TimeTotal: fp(0), VoteTotal: fp(10)}).Value(); got != 10 {
		t.Errorf("Value = %v, want 10", got)
	}
	var s *Score
	if got := s.Value(); got != 0 {
		t.Errorf("nil Value = %v, want 0", got)
	}
}

// A modern association only overrides when strictly higher-scored than
// the winning identification.
func TestResolveModernAssociationOverride(t *testing.T) {
	moderns := map[string]*ModernRecord{
		"m1": {ID: "m1", FriendlyID: sp("Tell Something"), LonLat: sp("40.0,35.0")},
	}

	// Equal score: identification keeps the coordinates.
	ancient := &AncientRecord{
		ID:                 "a1",
		Identifications:    []Identification{identWithScore(5, "36.0,32.0")},
		ModernAssociations: map[string]ModernAssociation{"m1": {Score: fp(5)}},
	}
	r := Resolve(ancient, moderns)
	if *r.Lat != 32.0 {
		t.Errorf("Lat = %v, want identification coordinates kept", *r.Lat)
	}

	// Higher score: association wins.
	ancient.ModernAssociations = map[string]ModernAssociation{"m1": {Score: fp(8)}}
	r = Resolve(ancient, moderns)
	if *r.Lat != 35.0 {
		t.Errorf("Lat = %v, want association coordinates", *r.Lat)
	}
	if r.ConfidenceScore != 8 {
		t.Errorf("ConfidenceScore = %v, want 8", r.ConfidenceScore)
	}
	if r.ModernName == nil || *r.ModernName != "Tell Something" {
		t.Errorf("ModernName = %v, want Tell Something", r.ModernName)
	}
}

// With no identification coordinates at all, even a zero-scored
// association supplies the fix.
func TestResolveAssociationFallback(t *testing.T) {
	moderns := map[string]*ModernRecord{
		"m1": {ID: "m1", LonLat: sp("40.0,35.0")},
	}
	ancient := &AncientRecord{
		ID:                 "a1",
		ModernAssociations: map[string]ModernAssociation{"m1": {}},
	}
	r := Resolve(ancient, moderns)
	if r.Lat == nil || *r.Lat != 35.0 {
		t.Errorf("Lat = %v, want 35.0", r.Lat)
	}
	if r.ConfidenceScore != 0 {
		t.Errorf("ConfidenceScore = %v, want 0", r.ConfidenceScore)
	}
}

// Thumbnail priority: the top-level record beats every later source.
func TestResolveThumbnailPriority(t *testing.T) {
	ancient := &AncientRecord{
		ID:    "a1",
		Media: &Media{Thumbnail: &Thumbnail{File: sp("top.jpg"), Credit: sp("top")}},
		Identifications: []Identification{{
			Score: &Score{VoteTotal: fp(1)},
			Resolutions: []Resolution{{
				LonLat: sp("36.0,32.0"),
				Media:  &Media{Thumbnail: &Thumbnail{File: sp("res.jpg")}},
			}},
		}},
	}
	r := Resolve(ancient, nil)
	if r.ThumbnailFile == nil || *r.ThumbnailFile != "top.jpg" {
		t.Errorf("ThumbnailFile = %v, want top.jpg", r.ThumbnailFile)
	}
}

func TestResolveStripsDescriptionMarkup(t *testing.T) {
	ancient := &AncientRecord{
		ID: "a1",
		Media: &Media{Thumbnail: &Thumbnail{
			File:        sp("x.jpg"),
			Description: sp("<p>An <b>ancient</b> city</p>"),
		}},
	}
	r := Resolve(ancient, nil)
	if r.Description == nil || *r.Description != "An ancient city" {
		t.Errorf("Description = %v, want %q", r.Description, "An ancient city")
	}
}

func TestLinkedRefs(t *testing.T) {
	wikipedia, wikidata := LinkedRefs(map[string]LinkedDatum{
		"b": {URL: sp("https://en.wikipedia.org/wiki/Jericho")},
		"a": {ID: sp("Q5687")},
	})
	if wikipedia == nil || *wikipedia != "https://en.wikipedia.org/wiki/Jericho" {
		t.Errorf("wikipedia = %v", wikipedia)
	}
	if wikidata == nil || *wikidata != "https://www.wikidata.org/wiki/Q5687" {
		t.Errorf("wikidata = %v", wikidata)
	}
}

func TestHaversineKm(t *testing.T) {
	// Jerusalem to Tel Aviv is roughly 54 km.
	d := HaversineKm(31.7683, 35.2137, 32.0853, 34.7818)
	if d < 50 || d > 60 {
		t.Errorf("distance = %v, want roughly 54", d)
	}
	// Symmetry.
	rev := HaversineKm(32.0853, 34.7818, 31.7683, 35.2137)
	if math.Abs(d-rev) > 1e-9 {
		t.Errorf("asymmetric distance: %v vs %v", d, rev)
	}
	// Identity.
	if z := HaversineKm(31.0, 35.0, 31.0, 35.0); z != 0 {
		t.Errorf("self distance = %v, want 0", z)
	}
}

// A place with no resolvable coordinates is still a valid place entry.
func TestBuildPlacesUnresolved(t *testing.T) {
	places := BuildPlaces([]AncientRecord{{
		ID:         "a1",
		FriendlyID: sp("Lost City"),
		Verses:     []AncientVerse{{Osis: "Gen.14.18"}},
	}}, nil)
	if len(places) != 1 {
		t.Fatalf("expected 1 place, got %d", len(places))
	}
	p := places[0]
	if p.Lat != nil || p.Lon != nil {
		t.Errorf("expected nil coordinates, got %v/%v", p.Lat, p.Lon)
	}
	if p.Slug != "lost-city" {
		t.Errorf("slug = %q, want lost-city", p.Slug)
	}
	if p.VerseCount != 1 || p.Verses[0].Readable != "Genesis 14:18" {
		t.Errorf("verses = %+v", p.Verses)
	}
	if !reflect.DeepEqual(p.Books, []string{"genesis"}) {
		t.Errorf("books = %v, want [genesis]", p.Books)
	}
	if p.Type != "unknown" {
		t.Errorf("type = %q, want unknown", p.Type)
	}
}

func TestBuildPlacesSlugCollision(t *testing.T) {
	places := BuildPlaces([]AncientRecord{
		{ID: "a1", FriendlyID: sp("Bethel")},
		{ID: "a2", FriendlyID: sp("Bethel")},
	}, nil)
	if places[0].Slug != "bethel" || places[1].Slug != "bethel-2" {
		t.Errorf("slugs = %q, %q, want bethel, bethel-2", places[0].Slug, places[1].Slug)
	}
}

func TestNearestNeighbors(t *testing.T) {
	mk := func(slug string, lat, lon float64) Place {
		return Place{Slug: slug, Name: slug, Lat: fp(lat), Lon: fp(lon)}
	}
	places := []Place{
		mk("alpha", 31.0, 35.0),
		mk("beta", 31.1, 35.0),
		mk("gamma", 32.0, 35.0),
		{Slug: "unmapped", Name: "unmapped"},
	}

	nearby := NearestNeighbors(places, 10)
	if _, ok := nearby["unmapped"]; ok {
		t.Error("unmapped place must not get a neighbor list")
	}

	list := nearby["alpha"]
	if len(list) != 2 {
		t.Fatalf("expected 2 neighbors, got %d", len(list))
	}
	if list[0].Slug != "beta" || list[1].Slug != "gamma" {
		t.Errorf("order = %s, %s, want beta, gamma", list[0].Slug, list[1].Slug)
	}
	// 0.1 degree of latitude is ~11.1 km, rounded to one decimal.
	if list[0].DistanceKm != 11.1 {
		t.Errorf("distance = %v, want 11.1", list[0].DistanceKm)
	}

	// Top-N trimming.
	trimmed := NearestNeighbors(places, 1)
	if len(trimmed["alpha"]) != 1 {
		t.Errorf("expected 1 neighbor, got %d", len(trimmed["alpha"]))
	}
}

func TestIndexes(t *testing.T) {
	places := BuildPlaces([]AncientRecord{
		{
			ID:         "a1",
			FriendlyID: sp("Salem"),
			Verses:     []AncientVerse{{Osis: "Gen.14.18"}, {Osis: "Ps.76.2"}},
			Types:      []string{"settlement"},
		},
		{
			ID:         "a2",
			FriendlyID: sp("Moriah"),
			Verses:     []AncientVerse{{Osis: "Gen.22.2"}},
			Types:      []string{"mountain"},
		},
	}, nil)

	slugIdx := BuildSlugIndex(places)
	if slugIdx["moriah"] != 0 || slugIdx["salem"] != 1 {
		t.Errorf("slug index = %v, want moriah=0 salem=1", slugIdx)
	}

	byBook := BuildBookIndex(places)
	if !reflect.DeepEqual(byBook["genesis"], []string{"moriah", "salem"}) {
		t.Errorf("genesis places = %v", byBook["genesis"])
	}
	if !reflect.DeepEqual(byBook["psalms"], []string{"salem"}) {
		t.Errorf("psalms places = %v", byBook["psalms"])
	}

	byChapter := BuildChapterIndex(places)
	if !reflect.DeepEqual(byChapter["genesis-14"], []string{"salem"}) {
		t.Errorf("genesis-14 places = %v", byChapter["genesis-14"])
	}

	byVerse := BuildVerseIndex(places)
	if !reflect.DeepEqual(byVerse["genesis-22-2"], []string{"moriah"}) {
		t.Errorf("genesis-22-2 places = %v", byVerse["genesis-22-2"])
	}

	byType := BuildTypeIndex(places)
	if !reflect.DeepEqual(byType["settlement"], []string{"salem"}) {
		t.Errorf("settlement places = %v", byType["settlement"])
	}
}

func TestBuildImages(t *testing.T) {
	images := BuildImages([]ImageRecord{{
		ID:     "img1",
		Credit: sp("Someone"),
		URL:    sp("https://example.org/img1"),
		Descriptions: map[string]string{
			"en": "<p>A view of the tell</p>",
		},
		Thumbnails: map[string]ImageThumbnail{
			"small": {File: sp("img1-small.jpg")},
		},
	}})

	entry, ok := images["img1"]
	if !ok {
		t.Fatal("missing img1")
	}
	// credit_url falls back to the raw url.
	if entry.CreditURL == nil || *entry.CreditURL != "https://example.org/img1" {
		t.Errorf("CreditURL = %v", entry.CreditURL)
	}
	if entry.Description == nil || *entry.Description != "A view of the tell" {
		t.Errorf("Description = %v", entry.Description)
	}
	if entry.File == nil || *entry.File != "img1-small.jpg" {
		t.Errorf("File = %v", entry.File)
	}
}
