// =============================================================================
// Deck Splitter - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - csvparser / xlsxparser (produce Records)
//   - splitter               (groups Records into Groups)
//   - manifest               (builds the Manifest of PackDescriptors)
//
// =============================================================================

package types

// =============================================================================
// RECORD TYPES
// =============================================================================

// Record represents one input row as an ordered column -> value mapping.
//
// Header is shared by every Record parsed from the same file, so column order
// survives the round trip from input header to output header.
type Record struct {
	// Header holds the column names in input order.
	Header []string

	// Values holds the cell values, index-aligned with Header.
	Values []string

	// RowNumber is the 1-indexed line of the row in the source file.
	// Useful for error reporting.
	RowNumber int
}

// NewRecord builds a Record from a header and a row of values.
func NewRecord(header, values []string, rowNumber int) Record {
	return Record{Header: header, Values: values, RowNumber: rowNumber}
}

// Get returns the value of the named column and whether the column exists.
func (r Record) Get(column string) (string, bool) {
	for i, name := range r.Header {
		if name == column {
			if i < len(r.Values) {
				return r.Values[i], true
			}
			return "", true
		}
	}
	return "", false
}

// Fields returns the column names of the record in order.
func (r Record) Fields() []string {
	return r.Header
}

// Row returns the values of the record laid out in the given column order.
// Columns the record does not carry are written as empty strings.
//
// When columns is the record's own header the values are copied by position,
// so repeated column names keep their own values.
func (r Record) Row(columns []string) []string {
	row := make([]string, len(columns))
	if sameColumns(r.Header, columns) {
		copy(row, r.Values)
		return row
	}
	for i, column := range columns {
		row[i], _ = r.Get(column)
	}
	return row
}

func sameColumns(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// =============================================================================
// GROUP TYPES
// =============================================================================

// Group is a deck: a trimmed grouping key and the Records that share it,
// in the order they were encountered in the input.
type Group struct {
	// Key is the trimmed deck name, e.g. "Animals > Basics".
	Key string

	// Records contains the rows belonging to this deck.
	Records []Record
}

// Header returns the field names of the group's first record.
func (g Group) Header() []string {
	if len(g.Records) == 0 {
		return nil
	}
	return g.Records[0].Fields()
}

// =============================================================================
// MANIFEST TYPES
// =============================================================================

// PackDescriptor describes one pack in the store manifest.
// Field order here is the field order in the JSON output.
type PackDescriptor struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CardCount   int    `json:"card_count"`
	Filename    string `json:"filename"`
	Unlocked    bool   `json:"unlocked"`
	Category    string `json:"category"`
	Difficulty  string `json:"difficulty"`
}

// Manifest is the aggregate descriptor written as store_metadata.json.
type Manifest struct {
	StorePacks []PackDescriptor `json:"store_packs"`
}
