package topics

import (
	"reflect"
	"testing"
)

func TestSegmentStructuredEntry(t *testing.T) {
	entry := "-Ancestry and genealogy GEN 46:11; EXO 6:16-20\n" +
		"-Ministry of\n" +
		"   -In the tabernacle NUM 3:5-10; 4:1-16\n" +
		"See PRIEST, HIGH\n" +
		"-(A city in Judah)\n"

	seg := Segment(entry)
	if len(seg.SubTopics) != 3 {
		t.Fatalf("expected 3 sub-topics, got %d: %+v", len(seg.SubTopics), seg.SubTopics)
	}

	first := seg.SubTopics[0]
	if first.Title != "Ancestry and genealogy" {
		t.Errorf("title = %q, want %q", first.Title, "Ancestry and genealogy")
	}
	wantVerses := []string{"Genesis 46:11", "Exodus 6:16-20"}
	if !reflect.DeepEqual(first.Verses, wantVerses) {
		t.Errorf("verses = %v, want %v", first.Verses, wantVerses)
	}

	// A titled sub-topic with no verses of its own is kept.
	if seg.SubTopics[1].Title != "Ministry of" {
		t.Errorf("title = %q, want %q", seg.SubTopics[1].Title, "Ministry of")
	}
	if len(seg.SubTopics[1].Verses) != 0 {
		t.Errorf("expected no verses, got %v", seg.SubTopics[1].Verses)
	}

	third := seg.SubTopics[2]
	if third.Title != "In the tabernacle" {
		t.Errorf("title = %q, want %q", third.Title, "In the tabernacle")
	}
	wantThird := []string{"Numbers 3:5-10", "Numbers 4:1-16"}
	if !reflect.DeepEqual(third.Verses, wantThird) {
		t.Errorf("verses = %v, want %v", third.Verses, wantThird)
	}

	if seg.TotalVerses != 4 {
		t.Errorf("TotalVerses = %d, want 4", seg.TotalVerses)
	}
	if !reflect.DeepEqual(seg.RelatedTopics, []string{"PRIEST, HIGH"}) {
		t.Errorf("RelatedTopics = %v, want [PRIEST, HIGH]", seg.RelatedTopics)
	}
}

// An entry with no dash structure but real citations collapses into a
// single General sub-topic rather than losing the verses.
func TestSegmentGeneralFallback(t *testing.T) {
	seg := Segment("The rod that budded NUM 17:8; HEB 9:4")
	if len(seg.SubTopics) != 1 {
		t.Fatalf("expected 1 sub-topic, got %d", len(seg.SubTopics))
	}
	if seg.SubTopics[0].Title != "General" {
		t.Errorf("title = %q, want %q", seg.SubTopics[0].Title, "General")
	}
	want := []string{"Numbers 17:8", "Hebrews 9:4"}
	if !reflect.DeepEqual(seg.SubTopics[0].Verses, want) {
		t.Errorf("verses = %v, want %v", seg.SubTopics[0].Verses, want)
	}
	if seg.TotalVerses != 2 {
		t.Errorf("TotalVerses = %d, want 2", seg.TotalVerses)
	}
}

func TestSegmentSeeOnlyEntry(t *testing.T) {
	seg := Segment("See IDOLATRY")
	if len(seg.SubTopics) != 0 {
		t.Errorf("expected no sub-topics, got %v", seg.SubTopics)
	}
	if !reflect.DeepEqual(seg.RelatedTopics, []string{"IDOLATRY"}) {
		t.Errorf("RelatedTopics = %v, want [IDOLATRY]", seg.RelatedTopics)
	}
}

func TestBuildMergesAndDedupes(t *testing.T) {
	rows := []Row{
		{Section: "Z", Subject: "Zeal", Entry: "-Commended PSA 119:139"},
		{Section: "A", Subject: "Aaron", Entry: "GEN 1:1"},
		{Section: "A", Subject: "Aaron", Entry: "EXO 4:14"},
		{Section: "B", Subject: "Aaron", Entry: "LEV 8:2"},
	}
	topics := Build(rows)
	if len(topics) != 3 {
		t.Fatalf("expected 3 topics, got %d", len(topics))
	}

	// Sorted by subject; same section+subject rows merged into one topic.
	if topics[0].Subject != "Aaron" || topics[0].Section != "A" {
		t.Errorf("topic 0 = %s/%s, want Aaron/A", topics[0].Subject, topics[0].Section)
	}
	if topics[0].TotalVerses != 2 {
		t.Errorf("merged topic TotalVerses = %d, want 2", topics[0].TotalVerses)
	}

	// Slugs are assigned in source order, so the section-A Aaron keeps
	// the bare slug and the section-B Aaron gets the suffix.
	if topics[0].Slug != "aaron" {
		t.Errorf("slug = %q, want %q", topics[0].Slug, "aaron")
	}
	if topics[1].Slug != "aaron-2" {
		t.Errorf("slug = %q, want %q", topics[1].Slug, "aaron-2")
	}
	if topics[2].Slug != "zeal" {
		t.Errorf("slug = %q, want %q", topics[2].Slug, "zeal")
	}
}

func TestBuildIndex(t *testing.T) {
	rows := []Row{
		{Section: "A", Subject: "Aaron", Entry: "GEN 1:1; EXO 4:14"},
		{Section: "1 Misc", Subject: "Numbers", Entry: "NUM 1:1"},
	}
	idx := BuildIndex(Build(rows))

	if idx.TotalTopics != 2 {
		t.Errorf("TotalTopics = %d, want 2", idx.TotalTopics)
	}
	if idx.TotalVerseRefs != 3 {
		t.Errorf("TotalVerseRefs = %d, want 3", idx.TotalVerseRefs)
	}
	if got := idx.SlugMap["aaron"]; got != "Aaron" {
		t.Errorf("SlugMap[aaron] = %q, want %q", got, "Aaron")
	}
	if got := idx.LetterIndex["A"]; len(got) != 1 || got[0] != "aaron" {
		t.Errorf("LetterIndex[A] = %v, want [aaron]", got)
	}
	// Sections not starting with a letter file under "#".
	if got := idx.LetterIndex["#"]; len(got) != 1 || got[0] != "numbers" {
		t.Errorf("LetterIndex[#] = %v, want [numbers]", got)
	}
	if len(idx.TopVerseCount) != 2 || idx.TopVerseCount[0].Slug != "aaron" {
		t.Errorf("TopVerseCount = %v, want aaron ranked first", idx.TopVerseCount)
	}
}

func TestSectionKey(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Aaron", "A"},
		{"zebra", "Z"},
		{"123", "#"},
		{"", "#"},
	}
	for _, tt := range tests {
		if got := SectionKey(tt.in); got != tt.want {
			t.Errorf("SectionKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
