package xlsxparser

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"
)

// writeWorkbook saves rows to a new workbook, one sheet per entry in order.
func writeWorkbook(t *testing.T, sheets map[string][][]interface{}, order []string) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, name := range order {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				t.Fatal(err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			t.Fatal(err)
		}
		for r, row := range sheets[name] {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			if err != nil {
				t.Fatal(err)
			}
			row := row
			if err := f.SetSheetRow(name, cell, &row); err != nil {
				t.Fatal(err)
			}
		}
	}

	path := filepath.Join(t.TempDir(), "cards.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseFirstSheet(t *testing.T) {
	path := writeWorkbook(t, map[string][][]interface{}{
		"Cards": {
			{"Word", "Translation", "Decks"},
			{"hond", "dog", "Animals > Basics"},
			{"kat", "cat"},
		},
	}, []string{"Cards"})

	data, err := Parse(path, "")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if !reflect.DeepEqual(data.Headers, []string{"Word", "Translation", "Decks"}) {
		t.Fatalf("unexpected headers %v", data.Headers)
	}
	if data.RowCount() != 2 {
		t.Fatalf("expected 2 rows, got %d", data.RowCount())
	}
	if deck, ok := data.Records[0].Get("Decks"); !ok || deck != "Animals > Basics" {
		t.Fatalf("unexpected deck %q", deck)
	}
	if deck, ok := data.Records[1].Get("Decks"); !ok || deck != "" {
		t.Fatalf("short row should be padded, got %q (%v)", deck, ok)
	}
}

func TestParseNamedSheet(t *testing.T) {
	path := writeWorkbook(t, map[string][][]interface{}{
		"Notes": {{"ignore me"}},
		"Cards": {{"Decks", "Word"}, {"Food", "brood"}},
	}, []string{"Notes", "Cards"})

	data, err := Parse(path, "Cards")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if data.RowCount() != 1 || data.Headers[0] != "Decks" {
		t.Fatalf("unexpected data %+v", data)
	}

	if _, err := Parse(path, "Missing"); err == nil {
		t.Fatalf("expected error for unknown sheet")
	}
}

func TestFromRows(t *testing.T) {
	data, err := fromRows([][]string{
		{},
		{"Word", "Decks"},
		{"", ""},
		{"hond", "Animals"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data.RowCount() != 1 || data.Records[0].RowNumber != 4 {
		t.Fatalf("empty rows should be skipped, got %+v", data.Records)
	}

	if _, err := fromRows([][]string{{"Word"}, {"hond", "extra"}}); err == nil {
		t.Fatalf("expected error for row wider than header")
	}
}

func TestIsWorkbook(t *testing.T) {
	if !IsWorkbook("cards.XLSX") || IsWorkbook("cards.csv") {
		t.Fatalf("extension detection wrong")
	}
}
