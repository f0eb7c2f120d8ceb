package types

import (
	"reflect"
	"testing"
)

func TestRecordGetAndRow(t *testing.T) {
	header := []string{"Word", "Translation", "Decks"}
	record := NewRecord(header, []string{"hond", "dog"}, 2)

	if v, ok := record.Get("Word"); !ok || v != "hond" {
		t.Fatalf("Get(Word) = %q, %v", v, ok)
	}
	if v, ok := record.Get("Decks"); !ok || v != "" {
		t.Fatalf("short row should yield empty value for a known column, got %q, %v", v, ok)
	}
	if _, ok := record.Get("Missing"); ok {
		t.Fatalf("unknown column must report false")
	}

	got := record.Row([]string{"Decks", "Word", "Extra"})
	if !reflect.DeepEqual(got, []string{"", "hond", ""}) {
		t.Fatalf("unexpected row %q", got)
	}
}

func TestGroupHeader(t *testing.T) {
	if (Group{}).Header() != nil {
		t.Fatalf("empty group has no header")
	}
	header := []string{"Word", "Decks"}
	g := Group{Key: "X", Records: []Record{NewRecord(header, []string{"a", "X"}, 2)}}
	if !reflect.DeepEqual(g.Header(), header) {
		t.Fatalf("unexpected header %q", g.Header())
	}
}

func TestRecordRowRepeatedColumns(t *testing.T) {
	header := []string{"Word", "Decks", "Decks"}
	record := NewRecord(header, []string{"hond", "A", "B"}, 2)

	got := record.Row(header)
	if !reflect.DeepEqual(got, []string{"hond", "A", "B"}) {
		t.Fatalf("repeated column lost its value: %q", got)
	}

	short := NewRecord(header, []string{"kat"}, 3)
	if got := short.Row(header); !reflect.DeepEqual(got, []string{"kat", "", ""}) {
		t.Fatalf("short row should be padded, got %q", got)
	}
}
