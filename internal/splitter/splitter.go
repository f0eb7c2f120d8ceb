// =============================================================================
// Deck Splitter - Splitter Module
// =============================================================================
//
// This module contains the first stage: it splits one flat card export into
// one CSV file per deck.
//
// PIPELINE:
//   1. Ensure the output directory exists
//   2. Parse the input (CSV, or XLSX by extension)
//   3. Check the deck column is present before touching any row
//   4. Group rows by trimmed deck name, dropping rows with a blank deck
//   5. Refuse to continue if two decks map to the same file name
//   6. Optionally remove stale pack files
//   7. Write one pack file per deck
//
// =============================================================================

package splitter

import (
	"fmt"
	"io"
	"strings"

	"github.com/ginjaninja78/vocab-deck-splitter/internal/config"
	"github.com/ginjaninja78/vocab-deck-splitter/internal/csvparser"
	"github.com/ginjaninja78/vocab-deck-splitter/internal/naming"
	"github.com/ginjaninja78/vocab-deck-splitter/internal/types"
	"github.com/ginjaninja78/vocab-deck-splitter/internal/validation"
	"github.com/ginjaninja78/vocab-deck-splitter/internal/xlsxparser"
	"github.com/ginjaninja78/vocab-deck-splitter/pkg/utils"
	"github.com/sirupsen/logrus"
)

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result summarises one split.
type Result struct {
	// InputFile is the file that was split.
	InputFile string

	// Decks lists the pack files in the order their decks were first seen.
	Decks []DeckResult

	// RowsRead is the number of data rows in the input.
	RowsRead int

	// RowsDropped is the number of rows without a deck.
	RowsDropped int

	// FilesRemoved is the number of stale pack files removed before writing.
	FilesRemoved int
}

// DeckResult describes one written pack file.
type DeckResult struct {
	Deck     string
	Filename string
	Path     string
	Cards    int
}

// =============================================================================
// SPLITTER STRUCTURE
// =============================================================================

// Splitter splits card exports into per-deck files.
type Splitter struct {
	cfg    *config.Config
	logger logrus.FieldLogger

	// DryRun parses and groups without touching the output directory.
	DryRun bool
}

// New creates a Splitter. cfg supplies the deck column, the CSV dialect and
// whether stale pack files are cleaned.
func New(cfg *config.Config, logger logrus.FieldLogger) *Splitter {
	return &Splitter{
		cfg:    cfg,
		logger: logger,
	}
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run splits inputPath into one CSV per deck under outputDir.
func (s *Splitter) Run(inputPath, outputDir string) (*Result, error) {
	files := utils.NewFileManager(outputDir)
	result := &Result{InputFile: inputPath}

	if !s.DryRun {
		if err := files.EnsureDir(); err != nil {
			return nil, err
		}
	}

	data, err := s.load(inputPath)
	if err != nil {
		return nil, err
	}
	result.RowsRead = data.RowCount()
	s.logger.WithFields(logrus.Fields{
		"file": inputPath,
		"rows": data.RowCount(),
	}).Debug("parsed input")

	if err := validation.RequireColumns(inputPath, data.Headers, s.cfg.DeckColumn); err != nil {
		return nil, err
	}

	groups, dropped := GroupByDeck(data.Records, s.cfg.DeckColumn)
	result.RowsDropped = dropped
	if dropped > 0 {
		s.logger.WithField("rows", dropped).Debug("skipped rows without a deck")
	}

	if err := validation.CheckCollisions(groups); err != nil {
		return nil, err
	}

	if s.DryRun {
		for _, group := range groups {
			result.Decks = append(result.Decks, DeckResult{
				Deck:     group.Key,
				Filename: naming.FileName(group.Key),
				Path:     files.Path(naming.FileName(group.Key)),
				Cards:    len(group.Records),
			})
		}
		return result, nil
	}

	if s.cfg.CleanOutput {
		// The input may live in the output directory; it is never removed.
		removed, err := files.CleanFiles(naming.Extension, inputPath)
		if err != nil {
			return nil, err
		}
		result.FilesRemoved = removed
		if removed > 0 {
			s.logger.WithField("files", removed).Info("removed stale pack files")
		}
	}

	for _, group := range groups {
		deck, err := s.writeGroup(files, group)
		if err != nil {
			return nil, err
		}
		result.Decks = append(result.Decks, deck)
	}

	return result, nil
}

// load parses the input file, picking the parser by extension.
func (s *Splitter) load(inputPath string) (*csvparser.CSVData, error) {
	if xlsxparser.IsWorkbook(inputPath) {
		data, err := xlsxparser.Parse(inputPath, s.cfg.SheetName)
		if err != nil {
			return nil, fmt.Errorf("failed to parse workbook: %w", err)
		}
		return data, nil
	}

	data, err := csvparser.Parse(inputPath, s.cfg.CSVSettings)
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	return data, nil
}

// writeGroup writes one deck to its pack file.
func (s *Splitter) writeGroup(files *utils.FileManager, group types.Group) (DeckResult, error) {
	filename := naming.FileName(group.Key)

	path, err := files.WriteFileAtomic(filename, func(w io.Writer) error {
		return csvparser.WriteRecords(w, group.Header(), group.Records, s.cfg.CSVSettings)
	})
	if err != nil {
		return DeckResult{}, fmt.Errorf("failed to write deck %q: %w", group.Key, err)
	}

	s.logger.WithFields(logrus.Fields{
		"file":  path,
		"cards": len(group.Records),
	}).Infof("Created %s with %d cards", path, len(group.Records))

	return DeckResult{
		Deck:     group.Key,
		Filename: filename,
		Path:     path,
		Cards:    len(group.Records),
	}, nil
}

// =============================================================================
// GROUPING
// =============================================================================

// GroupByDeck groups records by the trimmed value of column.
//
// Records whose trimmed value is empty belong to no group; their count is
// returned as dropped. Groups are returned in the order their key was first
// seen, and records keep their input order inside a group.
func GroupByDeck(records []types.Record, column string) (groups []types.Group, dropped int) {
	index := make(map[string]int)

	for _, record := range records {
		value, _ := record.Get(column)
		key := strings.TrimSpace(value)
		if key == "" {
			dropped++
			continue
		}

		i, exists := index[key]
		if !exists {
			i = len(groups)
			index[key] = i
			groups = append(groups, types.Group{Key: key})
		}
		groups[i].Records = append(groups[i].Records, record)
	}

	return groups, dropped
}
