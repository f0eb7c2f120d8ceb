// =============================================================================
// Deck Splitter - XLSX Input Parser
// =============================================================================
//
// Card collections are often maintained in a spreadsheet rather than exported
// to CSV. This module reads an .xlsx workbook into the same CSVData shape the
// CSV parser produces, so the splitter does not care where rows came from.
//
// SHEET LAYOUT:
//   | Column A | Column B    | Column C         | ... |
//   |----------|-------------|------------------|-----|
//   | Word     | Translation | Decks            | ... |   <- header row
//   | hond     | dog         | Animals > Basics | ... |   <- one card per row
//
// Cells are read as displayed text. Trailing empty cells that excelize drops
// are restored as empty strings; a row wider than the header is an error.
//
// =============================================================================

package xlsxparser

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ginjaninja78/vocab-deck-splitter/internal/csvparser"
	"github.com/ginjaninja78/vocab-deck-splitter/internal/types"
	"github.com/xuri/excelize/v2"
)

// Extension is the file extension routed to this parser.
const Extension = ".xlsx"

// IsWorkbook reports whether a path should be read as a workbook.
func IsWorkbook(path string) bool {
	return strings.EqualFold(filepath.Ext(path), Extension)
}

// Parse reads the named sheet of a workbook, or the first sheet when
// sheetName is empty.
func Parse(workbookPath, sheetName string) (*csvparser.CSVData, error) {
	f, err := excelize.OpenFile(workbookPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet, err := resolveSheet(f, sheetName)
	if err != nil {
		return nil, err
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows of sheet %q: %w", sheet, err)
	}

	data, err := fromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", sheet, err)
	}
	data.SourceFile = workbookPath
	return data, nil
}

// resolveSheet picks the sheet to read.
func resolveSheet(f *excelize.File, sheetName string) (string, error) {
	if sheetName == "" {
		first := f.GetSheetName(0)
		if first == "" {
			return "", fmt.Errorf("workbook has no sheets")
		}
		return first, nil
	}

	index, err := f.GetSheetIndex(sheetName)
	if err != nil {
		return "", fmt.Errorf("invalid sheet name %q: %w", sheetName, err)
	}
	if index < 0 {
		return "", fmt.Errorf("sheet %q not found (available: %s)", sheetName, strings.Join(f.GetSheetList(), ", "))
	}
	return sheetName, nil
}

// fromRows turns raw sheet rows into records. The first non-empty row is
// the header.
func fromRows(rows [][]string) (*csvparser.CSVData, error) {
	data := &csvparser.CSVData{}

	for i, row := range rows {
		if isRowEmpty(row) {
			continue
		}

		if data.Headers == nil {
			data.Headers = row
			continue
		}

		if len(row) > len(data.Headers) {
			return nil, fmt.Errorf("row %d: has %d cells, header has %d", i+1, len(row), len(data.Headers))
		}

		values := make([]string, len(data.Headers))
		copy(values, row)
		data.Records = append(data.Records, types.NewRecord(data.Headers, values, i+1))
	}

	return data, nil
}

// isRowEmpty checks if a row contains only empty values.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
