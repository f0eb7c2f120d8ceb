package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/ginjaninja78/vocab-deck-splitter/internal/types"
)

func TestRequireColumns(t *testing.T) {
	header := []string{"Word", "Translation", "Decks"}
	if err := RequireColumns("cards.csv", header, "Decks"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := RequireColumns("cards.csv", []string{"Word", "Deck"}, "Decks")
	var missing *MissingColumnError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingColumnError, got %v", err)
	}
	if missing.Column != "Decks" || missing.Source != "cards.csv" {
		t.Fatalf("unexpected error fields: %+v", missing)
	}
	if !strings.Contains(err.Error(), "missing required column") {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestRequireColumnsEmptyHeader(t *testing.T) {
	if err := RequireColumns("empty.csv", nil, "Decks"); err == nil {
		t.Fatalf("expected error for empty header")
	}
}

func TestCheckCollisions(t *testing.T) {
	groups := []types.Group{
		{Key: "Animals > Basics"},
		{Key: "Food"},
	}
	if err := CheckCollisions(groups); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	groups = append(groups, types.Group{Key: "Animals_>_Basics"}, types.Group{Key: "Food/Drinks"}, types.Group{Key: "Food Drinks"})
	err := CheckCollisions(groups)
	var collision *CollisionError
	if !errors.As(err, &collision) {
		t.Fatalf("expected CollisionError, got %v", err)
	}
	if collision.Filename != "Animals_-_Basics.csv" {
		t.Fatalf("expected first colliding file, got %q", collision.Filename)
	}
	if len(collision.Decks) != 2 || collision.Decks[0] != "Animals > Basics" {
		t.Fatalf("unexpected decks %v", collision.Decks)
	}
}

func TestCheckCollisionsIsCaseSensitive(t *testing.T) {
	groups := []types.Group{{Key: "Animals"}, {Key: "animals"}}
	if err := CheckCollisions(groups); err != nil {
		t.Fatalf("decks differing only in case map to distinct files: %v", err)
	}
}
