// =============================================================================
// Deck Splitter - Config Command
// =============================================================================
//
// COMMAND USAGE:
//   decksplit config init [path] [--force]
//
// Writes a configuration file holding every default so it can be edited.
// The path defaults to the --config value.
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/ginjaninja78/vocab-deck-splitter/internal/config"
	"github.com/ginjaninja78/vocab-deck-splitter/pkg/utils"
	"github.com/spf13/cobra"
)

// forceInit allows 'config init' to overwrite an existing file.
var forceInit bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the decksplit configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a configuration file with the default settings",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := v.GetString("config")
		if len(args) == 1 {
			path = args[0]
		}

		written, err := writeDefaultConfig(path, forceInit)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "  ✓ Wrote %s\n", written)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing configuration file")
}

// writeDefaultConfig renders config.Default() to path.
func writeDefaultConfig(path string, force bool) (string, error) {
	if utils.FileExists(path) && !force {
		return "", fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	data, err := config.Default().Marshal()
	if err != nil {
		return "", err
	}

	files := utils.NewFileManager(filepath.Dir(path))
	if err := files.EnsureDir(); err != nil {
		return "", err
	}

	return files.WriteFileAtomic(filepath.Base(path), func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}
