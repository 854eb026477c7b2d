package errors

import (
	stderrors "errors"
	"testing"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFound("topic", "aaron")
	if !Is(err, ErrNotFound) {
		t.Error("NotFoundError should match ErrNotFound")
	}
	var nf *NotFoundError
	if !As(err, &nf) {
		t.Fatal("As failed")
	}
	if nf.Resource != "topic" || nf.ID != "aaron" {
		t.Errorf("fields = %s/%s", nf.Resource, nf.ID)
	}
}

func TestParseErrorMatchesInvalidInput(t *testing.T) {
	err := NewParse("csv", "data/raw.csv", "unterminated quote")
	if !Is(err, ErrInvalidInput) {
		t.Error("ParseError should match ErrInvalidInput")
	}
}

func TestIOErrorUnwraps(t *testing.T) {
	cause := stderrors.New("disk full")
	err := NewIO("write", "/tmp/out.json", cause)
	if !Is(err, cause) {
		t.Error("IOError should unwrap to its cause")
	}
	var ioErr *IOError
	if !As(err, &ioErr) {
		t.Fatal("As failed")
	}
	if ioErr.Operation != "write" {
		t.Errorf("Operation = %q", ioErr.Operation)
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(cause, "loading places")
	if !Is(err, cause) {
		t.Error("Wrap should preserve the cause")
	}
	if Wrap(nil, "anything") != nil {
		t.Error("Wrap(nil) should be nil")
	}
}
