package infra

import (
	"os"
	"path/filepath"
	"testing"
)

type noteDoc struct {
	Text string `json:"text"`
}

func TestFileRecordStore_RoundTrip(t *testing.T) {
	store := NewFileRecordStore(t.TempDir())

	if err := store.Put("note.json", noteDoc{Text: "hello"}); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	var got noteDoc
	if ok := store.Get("note.json", &got); !ok {
		t.Fatal("Get reported no value after Put")
	}
	if got.Text != "hello" {
		t.Errorf("Expected %q, got %q", "hello", got.Text)
	}
}

func TestFileRecordStore_PutReplacesWholeValue(t *testing.T) {
	store := NewFileRecordStore(t.TempDir())

	if err := store.Put("note.json", noteDoc{Text: "first"}); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := store.Put("note.json", noteDoc{Text: "second"}); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	var got noteDoc
	store.Get("note.json", &got)
	if got.Text != "second" {
		t.Errorf("Expected last write to win, got %q", got.Text)
	}
}

func TestFileRecordStore_MissingFileKeepsFallback(t *testing.T) {
	store := NewFileRecordStore(t.TempDir())

	got := noteDoc{Text: "fallback"}
	if ok := store.Get("never-written.json", &got); ok {
		t.Error("Get reported a value for a record that was never written")
	}
	if got.Text != "fallback" {
		t.Errorf("Fallback was clobbered, got %q", got.Text)
	}
}

func TestFileRecordStore_CorruptFileKeepsFallback(t *testing.T) {
	dir := t.TempDir()
	store := NewFileRecordStore(dir)

	if err := os.WriteFile(filepath.Join(dir, "note.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("seed corrupt file: %v", err)
	}

	got := noteDoc{Text: "fallback"}
	if ok := store.Get("note.json", &got); ok {
		t.Error("Get reported a value for an unparsable record")
	}
	if got.Text != "fallback" {
		t.Errorf("Fallback was clobbered, got %q", got.Text)
	}
}
