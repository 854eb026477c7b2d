package csvx

import (
	"reflect"
	"testing"
)

func TestParseSimpleRows(t *testing.T) {
	rows := Parse("a,b,c\nd,e,f\n")
	want := [][]string{{"a", "b", "c"}, {"d", "e", "f"}}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("Parse = %v, want %v", rows, want)
	}
}

func TestParseQuotedField(t *testing.T) {
	rows := Parse(`x,"a, b ""quoted"" c",y` + "\n")
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	want := []string{"x", `a, b "quoted" c`, "y"}
	if !reflect.DeepEqual(rows[0], want) {
		t.Errorf("row = %v, want %v", rows[0], want)
	}
}

func TestParseMultilineField(t *testing.T) {
	rows := Parse("section,subject,\"line one\nline two\nline three\"\n")
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if got, want := rows[0][2], "line one\nline two\nline three"; got != want {
		t.Errorf("field = %q, want %q", got, want)
	}
}

// An unterminated quote must not fail the whole run; the field is kept
// as if the quote closed at end of input.
func TestParseUnterminatedQuote(t *testing.T) {
	rows := Parse(`a,"never closed`)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	want := []string{"a", "never closed"}
	if !reflect.DeepEqual(rows[0], want) {
		t.Errorf("row = %v, want %v", rows[0], want)
	}
}

func TestParseStripsBOM(t *testing.T) {
	rows := Parse("\uFEFFh1,h2\nv1,v2\n")
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if got := rows[0][0]; got != "h1" {
		t.Errorf("first field = %q, want %q", got, "h1")
	}
}

func TestParseCRLF(t *testing.T) {
	rows := Parse("a,b\r\nc,d\r\n")
	want := [][]string{{"a", "b"}, {"c", "d"}}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("Parse = %v, want %v", rows, want)
	}
}

func TestParseTrailingEmptyField(t *testing.T) {
	rows := Parse("a,b,\n")
	want := []string{"a", "b", ""}
	if !reflect.DeepEqual(rows[0], want) {
		t.Errorf("row = %v, want %v", rows[0], want)
	}
}

func TestParseEmptyInput(t *testing.T) {
	if rows := Parse(""); rows != nil {
		t.Errorf("Parse(\"\") = %v, want nil", rows)
	}
}
