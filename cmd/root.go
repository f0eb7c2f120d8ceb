// =============================================================================
// Deck Splitter - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands are attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (decksplit)
//   ├── runCmd       (decksplit run)       split, then build the manifest
//   ├── splitCmd     (decksplit split)     split only
//   ├── manifestCmd  (decksplit manifest)  build the manifest only
//   ├── configCmd    (decksplit config init)
//   └── versionCmd   (decksplit version)
//
// CONFIGURATION:
//   Settings are resolved in this order (later wins):
//   1. Built-in defaults
//   2. The YAML config file (--config, default decksplit.yaml)
//   3. DECKSPLIT_* environment variables (DECKSPLIT_INPUT, DECKSPLIT_OUTPUT, ...)
//   4. Command-line flags
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/ginjaninja78/vocab-deck-splitter/internal/config"
	"github.com/ginjaninja78/vocab-deck-splitter/internal/logging"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// v resolves persistent flags against DECKSPLIT_* environment variables.
var v = viper.New()

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "decksplit",
	Short: "Split a vocabulary export into per-deck packs and a store manifest",
	Long: `decksplit turns one flat flashcard export into store packs.

It groups every card by its "Decks" column, writes one CSV per deck into the
output directory, then scans that directory and writes store_metadata.json
describing each pack (name, card count, difficulty).

Example Usage:
  decksplit run                                  # Split and build the manifest
  decksplit split --input cards.xlsx --clean     # Split a workbook, dropping stale packs
  decksplit manifest --output assets/data/store_packs
  decksplit config init                          # Write a default decksplit.yaml`,

	SilenceUsage:  true,
	SilenceErrors: true,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	addGlobalFlags(rootCmd.PersistentFlags())
	cobra.CheckErr(bindEnv(v, rootCmd.PersistentFlags()))
}

// addGlobalFlags registers the flags every command accepts.
func addGlobalFlags(flags *pflag.FlagSet) {
	flags.String("config", "decksplit.yaml", "Path to the configuration file")
	flags.StringP("input", "i", "", "Card export to split (.csv or .xlsx)")
	flags.StringP("output", "o", "", "Directory for pack files and the manifest")
	flags.String("deck-column", "", "Column cards are grouped by")
	flags.String("language", "", "Language named in pack descriptions")
	flags.String("log-level", "", "Log level: debug, info, warn, error")
	flags.String("log-format", "", "Log format: text or json")
	flags.BoolP("verbose", "v", false, "Enable debug logging")
}

// bindEnv lets every flag in flags be set through DECKSPLIT_<FLAG>, with
// dashes written as underscores. A flag given on the command line wins.
func bindEnv(env *viper.Viper, flags *pflag.FlagSet) error {
	env.SetEnvPrefix("DECKSPLIT")
	env.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	env.AutomaticEnv()
	return env.BindPFlags(flags)
}

// =============================================================================
// SETTINGS RESOLUTION
// =============================================================================

// loadSettings reads the config file and applies environment and flag
// overrides on top of it. It also builds the logger for the run.
func loadSettings() (*config.Config, logrus.FieldLogger, error) {
	cfg, err := config.LoadConfig(v.GetString("config"), v.IsSet("config"))
	if err != nil {
		return nil, nil, err
	}

	overrides := map[string]*string{
		"input":       &cfg.InputFile,
		"output":      &cfg.OutputDir,
		"deck-column": &cfg.DeckColumn,
		"language":    &cfg.Language,
		"log-level":   &cfg.LogLevel,
		"log-format":  &cfg.LogFormat,
	}
	for key, target := range overrides {
		if v.IsSet(key) {
			if value := v.GetString(key); value != "" {
				*target = value
			}
		}
	}
	if v.GetBool("verbose") {
		cfg.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if err != nil {
		return nil, nil, err
	}

	return cfg, logger.WithField("run", uuid.NewString()), nil
}
