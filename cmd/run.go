// =============================================================================
// Deck Splitter - Run Command
// =============================================================================
//
// This file defines the 'run' command, which runs both stages in order:
// split the card export, then build the manifest from the output directory.
//
// COMMAND USAGE:
//   decksplit run [flags]
//
// PIPELINE:
//   1. Resolve configuration (file, environment, flags)
//   2. Split the input into one pack file per deck
//   3. Scan the output directory and write store_metadata.json
//
// The manifest is not built if the split fails.
//
// =============================================================================

package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Split the card export and build the store manifest",
	Long: `The run command splits the card export into per-deck pack files and then
writes store_metadata.json describing every pack in the output directory.

With --dry-run the split is simulated and the manifest stage is skipped.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		startTime := time.Now()

		cfg, logger, err := loadSettings()
		if err != nil {
			return err
		}
		applySplitFlags(cmd, cfg)
		applyManifestFlags(cmd, cfg)

		fmt.Println("=== Deck Splitter ===")

		if _, err := runSplit(cfg, logger); err != nil {
			return err
		}
		if dryRun {
			return nil
		}

		fmt.Println()
		if err := runManifest(cfg, logger); err != nil {
			return err
		}

		fmt.Printf("\nTime elapsed:    %s\n", time.Since(startTime))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	addSplitFlags(runCmd)
	addManifestFlags(runCmd)
}
