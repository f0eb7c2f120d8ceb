// =============================================================================
// Deck Splitter - Validation Module
// =============================================================================
//
// This module checks the structural preconditions of a split. Card content
// is never validated; only the things that would make the output wrong:
//
//   - The grouping column must exist in the header before any row is read.
//   - Two different deck names must not map to the same pack file, or one
//     would silently overwrite the other.
//
// Both checks return typed errors so callers can use errors.As.
//
// =============================================================================

package validation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ginjaninja78/vocab-deck-splitter/internal/naming"
	"github.com/ginjaninja78/vocab-deck-splitter/internal/types"
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// MissingColumnError reports a required column absent from a header.
type MissingColumnError struct {
	// Column is the name of the missing column.
	Column string

	// Source is the file the header came from.
	Source string

	// Header is the header that was searched.
	Header []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing required column %q in %s (columns: %s)",
		e.Column, e.Source, strings.Join(e.Header, ", "))
}

// CollisionError reports distinct decks that share a pack file name.
type CollisionError struct {
	// Filename is the pack file the decks collide on.
	Filename string

	// Decks are the colliding deck names, in encounter order.
	Decks []string
}

func (e *CollisionError) Error() string {
	quoted := make([]string, len(e.Decks))
	for i, d := range e.Decks {
		quoted[i] = fmt.Sprintf("%q", d)
	}
	return fmt.Sprintf("decks %s all map to %s", strings.Join(quoted, ", "), e.Filename)
}

// =============================================================================
// CHECKS
// =============================================================================

// RequireColumns returns a MissingColumnError for the first column not
// present in header.
func RequireColumns(source string, header []string, columns ...string) error {
	present := make(map[string]bool, len(header))
	for _, name := range header {
		present[name] = true
	}

	for _, column := range columns {
		if !present[column] {
			return &MissingColumnError{Column: column, Source: source, Header: header}
		}
	}
	return nil
}

// CheckCollisions returns a CollisionError when two groups map to the same
// pack file. When several files collide, the alphabetically first is reported.
func CheckCollisions(groups []types.Group) error {
	byFile := make(map[string][]string)
	for _, group := range groups {
		file := naming.FileName(group.Key)
		byFile[file] = append(byFile[file], group.Key)
	}

	var files []string
	for file, decks := range byFile {
		if len(decks) > 1 {
			files = append(files, file)
		}
	}
	if len(files) == 0 {
		return nil
	}

	sort.Strings(files)
	return &CollisionError{Filename: files[0], Decks: byFile[files[0]]}
}
