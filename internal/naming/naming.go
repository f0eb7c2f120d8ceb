// =============================================================================
// Deck Splitter - Naming Rules
// =============================================================================
//
// This module holds the string transforms between deck names, pack file
// names and pack ids. Each transform is an ordered chain of replacements;
// order matters because later steps see the output of earlier ones.
//
//   deck name  "Animals > Basics"
//     SafeName    -> "Animals_-_Basics"          (file name, no extension)
//   file name  "Animals_-_Basics.csv"
//     DisplayName -> "Animals  >  Basics"        (not a perfect inverse)
//     PackID      -> "animalsbasics"
//
// The encode/decode pair is lossy: a space and an underscore are
// indistinguishable after a round trip, and so are a literal hyphen and the
// hierarchy separator.
//
// =============================================================================

package naming

import (
	"strings"
)

// Extension is the suffix of every pack file.
const Extension = ".csv"

// =============================================================================
// REPLACEMENT CHAINS
// =============================================================================

// Replacement replaces every occurrence of Find with Value.
type Replacement struct {
	Find  string
	Value string
}

// Chain is an ordered list of replacements.
type Chain []Replacement

// Apply runs each replacement in order.
func (c Chain) Apply(s string) string {
	for _, r := range c {
		s = strings.ReplaceAll(s, r.Find, r.Value)
	}
	return s
}

var (
	// safeNameChain turns a deck name into a file system safe base name.
	// ">" goes first so the hyphen it produces is left alone by the rest.
	safeNameChain = Chain{
		{Find: ">", Value: "-"},
		{Find: " ", Value: "_"},
		{Find: "/", Value: "_"},
	}

	// displayNameChain reverses safeNameChain as far as that is possible.
	displayNameChain = Chain{
		{Find: "_", Value: " "},
		{Find: "-", Value: " > "},
	}

	// packIDChain strips spaces and separators from a lower-cased name.
	// The second space pass is a no-op kept for parity with legacyIDChain.
	packIDChain = Chain{
		{Find: " ", Value: ""},
		{Find: ">", Value: ""},
		{Find: " ", Value: ""},
	}

	// legacyIDChain is the id transform of earlier manifests.
	legacyIDChain = Chain{
		{Find: " ", Value: "_"},
		{Find: ">", Value: ""},
		{Find: " ", Value: ""},
	}
)

// =============================================================================
// PUBLIC TRANSFORMS
// =============================================================================

// SafeName derives the base file name (without extension) for a deck.
func SafeName(deck string) string {
	return safeNameChain.Apply(deck)
}

// FileName derives the pack file name for a deck.
func FileName(deck string) string {
	return SafeName(deck) + Extension
}

// DisplayName derives a human readable pack name from a pack file name.
func DisplayName(filename string) string {
	return displayNameChain.Apply(strings.TrimSuffix(filename, Extension))
}

// PackID derives the pack id from a display name.
// legacy selects the transform that earlier manifests were generated with.
func PackID(name string, legacy bool) string {
	lower := strings.ToLower(name)
	if legacy {
		return legacyIDChain.Apply(lower)
	}
	return packIDChain.Apply(lower)
}

// Difficulty levels written to pack descriptors.
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
)

// Difficulty tags packs whose name mentions "basics" as beginner packs.
func Difficulty(name string) string {
	if strings.Contains(strings.ToLower(name), "basics") {
		return DifficultyBeginner
	}
	return DifficultyIntermediate
}

// IsPackFile reports whether a directory entry name is a pack file.
// The match is an exact, case-sensitive suffix match.
func IsPackFile(name string) bool {
	return strings.HasSuffix(name, Extension)
}
