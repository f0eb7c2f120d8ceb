package naming

import "testing"

func TestSafeName(t *testing.T) {
	cases := []struct {
		deck string
		want string
	}{
		{"Animals > Basics", "Animals_-_Basics"},
		{"Animals>Basics", "Animals-Basics"},
		{"Food/Drinks", "Food_Drinks"},
		{"Verbs > Irregular / Past", "Verbs_-_Irregular___Past"},
		{"Kleuren", "Kleuren"},
		{"Één > Twee", "Één_-_Twee"},
	}
	for _, tc := range cases {
		t.Run(tc.deck, func(t *testing.T) {
			if got := SafeName(tc.deck); got != tc.want {
				t.Fatalf("SafeName(%q) = %q, want %q", tc.deck, got, tc.want)
			}
		})
	}
}

func TestFileName(t *testing.T) {
	if got := FileName("Animals > Basics"); got != "Animals_-_Basics.csv" {
		t.Fatalf("unexpected file name %q", got)
	}
}

func TestDisplayName(t *testing.T) {
	cases := []struct {
		filename string
		want     string
	}{
		{"Animals-Basics.csv", "Animals > Basics"},
		{"Animals_-_Basics.csv", "Animals  >  Basics"},
		{"Food_Drinks.csv", "Food Drinks"},
		{"Kleuren.csv", "Kleuren"},
	}
	for _, tc := range cases {
		if got := DisplayName(tc.filename); got != tc.want {
			t.Fatalf("DisplayName(%q) = %q, want %q", tc.filename, got, tc.want)
		}
	}
}

func TestPackID(t *testing.T) {
	cases := []struct {
		name   string
		legacy bool
		want   string
	}{
		{"Animals > Basics", false, "animalsbasics"},
		{"Animals  >  Basics", false, "animalsbasics"},
		{"Food Drinks", false, "fooddrinks"},
		{"Animals > Basics", true, "animals__basics"},
		{"Food Drinks", true, "food_drinks"},
	}
	for _, tc := range cases {
		if got := PackID(tc.name, tc.legacy); got != tc.want {
			t.Fatalf("PackID(%q, %v) = %q, want %q", tc.name, tc.legacy, got, tc.want)
		}
	}
}

func TestDifficulty(t *testing.T) {
	if got := Difficulty("Animals > Basics"); got != DifficultyBeginner {
		t.Fatalf("capitalised Basics should be beginner, got %q", got)
	}
	if got := Difficulty("BASICS of food"); got != DifficultyBeginner {
		t.Fatalf("upper-case basics should be beginner, got %q", got)
	}
	if got := Difficulty("Animals > Advanced"); got != DifficultyIntermediate {
		t.Fatalf("expected intermediate, got %q", got)
	}
}

func TestIsPackFile(t *testing.T) {
	if !IsPackFile("deck.csv") {
		t.Fatalf("deck.csv should match")
	}
	for _, name := range []string{"deck.CSV", "store_metadata.json", "deck.csv.bak", "csv"} {
		if IsPackFile(name) {
			t.Fatalf("%q should not match", name)
		}
	}
}

func TestRoundTripIsLossy(t *testing.T) {
	// Distinct decks that collapse to the same pack file.
	if FileName("A B") != FileName("A_B") {
		t.Fatalf("expected space and underscore to collide")
	}
	if DisplayName(FileName("Self-study")) != "Self > study" {
		t.Fatalf("expected literal hyphen to decode as separator")
	}
}
