package names

import (
	"reflect"
	"testing"
)

const sampleCSV = "Name,Meaning\n" +
	"Abel,\"Abel, a meadow\"\n" +
	"Abel-beth-maachah,mourning to the house of Maachah\n" +
	"Abi,my father\n"

func TestBuild(t *testing.T) {
	ns := Build(sampleCSV)
	if len(ns) != 3 {
		t.Fatalf("expected 3 names, got %d", len(ns))
	}

	abel := ns[0]
	if abel.Name != "Abel" {
		t.Fatalf("first name = %q, want Abel", abel.Name)
	}
	if abel.Slug != "abel" {
		t.Errorf("slug = %q, want %q", abel.Slug, "abel")
	}
	if !reflect.DeepEqual(abel.Meanings, []string{"Abel", "a meadow"}) {
		t.Errorf("meanings = %v, want [Abel, a meadow]", abel.Meanings)
	}
	if abel.FirstLetter != "A" {
		t.Errorf("firstLetter = %q, want A", abel.FirstLetter)
	}
	if abel.NamePrefix != "Abe" {
		t.Errorf("namePrefix = %q, want Abe", abel.NamePrefix)
	}

	if ns[1].Slug != "abel-beth-maachah" {
		t.Errorf("slug = %q, want %q", ns[1].Slug, "abel-beth-maachah")
	}
	if ns[1].NamePrefix != "Abe" {
		t.Errorf("namePrefix = %q, want Abe", ns[1].NamePrefix)
	}
	if ns[2].NamePrefix != "Abi" {
		t.Errorf("namePrefix = %q, want Abi", ns[2].NamePrefix)
	}
}

// An unquoted meaning containing commas splits into extra CSV fields;
// Build rejoins them before splitting on the meaning separators.
func TestBuildRejoinsRaggedRow(t *testing.T) {
	ns := Build("Name,Meaning\nAdam,earthy, red\n")
	if len(ns) != 1 {
		t.Fatalf("expected 1 name, got %d", len(ns))
	}
	if !reflect.DeepEqual(ns[0].Meanings, []string{"earthy", "red"}) {
		t.Errorf("meanings = %v, want [earthy, red]", ns[0].Meanings)
	}
}

func TestBuildSkipsEmptyNames(t *testing.T) {
	ns := Build("Name,Meaning\n,orphaned meaning\nAbi,my father\n")
	if len(ns) != 1 {
		t.Fatalf("expected 1 name, got %d", len(ns))
	}
}

func TestSplitMeanings(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"a meadow; vanity", []string{"a meadow", "vanity"}},
		{"Abel, a meadow", []string{"Abel", "a meadow"}},
		{"my father", []string{"my father"}},
		{"", nil},
	}
	for _, tt := range tests {
		got := SplitMeanings(tt.in)
		if len(got) == 0 && len(tt.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitMeanings(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestBuildIndex(t *testing.T) {
	idx := BuildIndex(Build(sampleCSV))
	if idx.TotalNames != 3 {
		t.Errorf("TotalNames = %d, want 3", idx.TotalNames)
	}
	if got := len(idx.LetterIndex["A"]); got != 3 {
		t.Errorf("LetterIndex[A] has %d entries, want 3", got)
	}
	if got := len(idx.PrefixGroups["Abe"]); got != 2 {
		t.Errorf("PrefixGroups[Abe] has %d entries, want 2", got)
	}
	if got := len(idx.PrefixGroups["Abi"]); got != 1 {
		t.Errorf("PrefixGroups[Abi] has %d entries, want 1", got)
	}
}

func TestPrefix(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Abel-beth-maachah", "Abe"},
		{"ZUPH", "Zup"},
		{"Ed", "Ed"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Prefix(tt.in); got != tt.want {
			t.Errorf("Prefix(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
