// =============================================================================
// Deck Splitter - Split Command
// =============================================================================
//
// This file defines the 'split' command, which runs only the first stage:
// one pack file per deck, no manifest.
//
// COMMAND USAGE:
//   decksplit split [flags]
//
// FLAGS:
//   --sheet       : Worksheet to read when the input is an .xlsx workbook
//   --clean       : Remove existing .csv files from the output directory first
//   --dry-run     : Parse and group without writing anything
//
// =============================================================================

package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/ginjaninja78/vocab-deck-splitter/internal/config"
	"github.com/ginjaninja78/vocab-deck-splitter/internal/splitter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// dryRun parses and groups the input without writing output files.
var dryRun bool

// cleanOutput removes stale pack files before writing.
var cleanOutput bool

// sheetName selects the worksheet for workbook input.
var sheetName string

// =============================================================================
// SPLIT COMMAND DEFINITION
// =============================================================================

var splitCmd = &cobra.Command{
	Use:   "split",
	Short: "Split the card export into one CSV per deck",
	Long: `The split command reads the card export, groups the cards by their deck
column and writes one CSV per deck into the output directory.

Each pack file keeps the full header and the cards in input order.
Rows without a deck are skipped. The run stops before writing anything if the
deck column is missing or two decks would share a file name.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadSettings()
		if err != nil {
			return err
		}
		applySplitFlags(cmd, cfg)

		fmt.Println("=== Deck Splitter ===")
		_, err = runSplit(cfg, logger)
		return err
	},
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	rootCmd.AddCommand(splitCmd)
	addSplitFlags(splitCmd)
}

// addSplitFlags registers the flags shared by 'split' and 'run'.
func addSplitFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Parse and group without writing any files")
	cmd.Flags().BoolVar(&cleanOutput, "clean", false, "Remove existing .csv files from the output directory first")
	cmd.Flags().StringVar(&sheetName, "sheet", "", "Worksheet to read from an .xlsx input (default: first sheet)")
}

// applySplitFlags copies explicitly set split flags onto cfg.
func applySplitFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("clean") {
		cfg.CleanOutput = cleanOutput
	}
	if cmd.Flags().Changed("sheet") {
		cfg.SheetName = sheetName
	}
}

// =============================================================================
// SPLIT STAGE
// =============================================================================

// runSplit runs the splitter and prints one line per pack file.
func runSplit(cfg *config.Config, logger logrus.FieldLogger) (*splitter.Result, error) {
	s := splitter.New(cfg, logger)
	s.DryRun = dryRun

	fmt.Printf("Splitting %s...\n", cfg.InputFile)
	result, err := s.Run(cfg.InputFile, cfg.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("split failed: %w", err)
	}

	for _, deck := range result.Decks {
		fmt.Printf("  ✓ %s -> %s (%d cards)\n", deck.Deck, filepath.Base(deck.Path), deck.Cards)
	}

	fmt.Println("\n=== Split Complete ===")
	fmt.Printf("Rows read:       %d\n", result.RowsRead)
	fmt.Printf("Rows skipped:    %d\n", result.RowsDropped)
	fmt.Printf("Packs:           %d\n", len(result.Decks))
	if result.FilesRemoved > 0 {
		fmt.Printf("Stale removed:   %d\n", result.FilesRemoved)
	}
	if dryRun {
		fmt.Println("Dry run: no files were written.")
	}

	return result, nil
}
