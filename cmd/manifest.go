// =============================================================================
// Deck Splitter - Manifest Command
// =============================================================================
//
// This file defines the 'manifest' command, which scans the output directory
// and writes store_metadata.json for the pack files it finds.
//
// COMMAND USAGE:
//   decksplit manifest [flags]
//
// FLAGS:
//   --legacy-ids  : Build pack ids the old way (spaces become underscores)
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/ginjaninja78/vocab-deck-splitter/internal/config"
	"github.com/ginjaninja78/vocab-deck-splitter/internal/manifest"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// legacyIDs keeps pack ids compatible with older store builds.
var legacyIDs bool

var manifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "Write store_metadata.json for the packs in the output directory",
	Long: `The manifest command lists every .csv file in the output directory, counts
its cards and writes a store_metadata.json entry for each pack.

The directory is read from disk, so packs added or edited by hand are
included. No manifest is written if any pack file cannot be read.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadSettings()
		if err != nil {
			return err
		}
		applyManifestFlags(cmd, cfg)

		fmt.Println("=== Deck Splitter ===")
		return runManifest(cfg, logger)
	},
}

func init() {
	rootCmd.AddCommand(manifestCmd)
	addManifestFlags(manifestCmd)
}

func addManifestFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&legacyIDs, "legacy-ids", false, "Replace spaces in pack ids with underscores")
}

func applyManifestFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("legacy-ids") {
		cfg.LegacyIDs = legacyIDs
	}
}

// runManifest builds and writes the manifest for cfg.OutputDir.
func runManifest(cfg *config.Config, logger logrus.FieldLogger) error {
	fmt.Printf("Building manifest for %s...\n", cfg.OutputDir)

	path, m, err := manifest.New(cfg, logger).Run(cfg.OutputDir)
	if err != nil {
		return fmt.Errorf("manifest failed: %w", err)
	}

	total := 0
	for _, pack := range m.StorePacks {
		total += pack.CardCount
		fmt.Printf("  ✓ %s [%s] %d cards\n", pack.Name, pack.Difficulty, pack.CardCount)
	}

	fmt.Println("\n=== Manifest Complete ===")
	fmt.Printf("Packs:           %d\n", len(m.StorePacks))
	fmt.Printf("Cards:           %d\n", total)
	fmt.Printf("Written to:      %s\n", path)

	return nil
}
