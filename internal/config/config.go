// =============================================================================
// Deck Splitter - Configuration Module
// =============================================================================
//
// This module is responsible for loading and managing the application
// configuration. Everything the two stages need (paths, column names, CSV
// dialect, manifest wording) lives in a single YAML file.
//
// CONFIGURATION SOURCES (lowest to highest precedence):
//   1. Built-in defaults (assets/data/store_packs layout)
//   2. The YAML config file (decksplit.yaml)
//   3. DECKSPLIT_* environment variables and command-line flags (see cmd/)
//
// =============================================================================

package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// DEFAULTS
// =============================================================================

const (
	// DefaultInputFile is the flat vocabulary export the decks are split from.
	DefaultInputFile = "assets/data/Steve Cards.csv"

	// DefaultOutputDir is where per-deck CSV files and the manifest are written.
	DefaultOutputDir = "assets/data/store_packs"

	// DefaultManifestFile is the name of the manifest inside the output directory.
	DefaultManifestFile = "store_metadata.json"

	// DefaultDeckColumn is the grouping column.
	DefaultDeckColumn = "Decks"

	// DefaultLanguage is embedded in each pack description.
	DefaultLanguage = "Dutch"

	// DefaultCategory is the fixed category tag of every pack.
	DefaultCategory = "vocabulary"
)

// =============================================================================
// MAIN CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the application configuration.
type Config struct {
	// =========================================================================
	// PATH SETTINGS
	// =========================================================================

	// InputFile is the CSV (or XLSX) file holding every card.
	InputFile string `yaml:"input_file"`

	// OutputDir receives one CSV per deck plus the manifest.
	OutputDir string `yaml:"output_dir"`

	// ManifestFile is the manifest file name, relative to OutputDir.
	ManifestFile string `yaml:"manifest_file"`

	// =========================================================================
	// SPLITTER SETTINGS
	// =========================================================================

	// DeckColumn is the column rows are grouped by.
	DeckColumn string `yaml:"deck_column"`

	// CleanOutput removes existing *.csv files from OutputDir before splitting.
	CleanOutput bool `yaml:"clean_output"`

	// SheetName selects the worksheet when InputFile is an .xlsx workbook.
	// Empty means the first sheet.
	SheetName string `yaml:"sheet_name"`

	// CSVSettings describes the dialect of input and output CSV files.
	CSVSettings CSVSettings `yaml:"csv_settings"`

	// =========================================================================
	// MANIFEST SETTINGS
	// =========================================================================

	// Language is the word used in pack descriptions
	// ("Vocabulary pack with 12 Dutch words and phrases").
	Language string `yaml:"language"`

	// Category is written to every pack descriptor.
	Category string `yaml:"category"`

	// LegacyIDs reproduces pack ids of earlier manifests, where spaces became
	// underscores instead of being removed.
	LegacyIDs bool `yaml:"legacy_ids"`

	// =========================================================================
	// LOGGING SETTINGS
	// =========================================================================

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	LogLevel string `yaml:"log_level"`

	// LogFormat is "text" or "json".
	LogFormat string `yaml:"log_format"`
}

// =============================================================================
// CSV SETTINGS STRUCTURE
// =============================================================================

// CSVSettings contains settings for reading and writing CSV files.
type CSVSettings struct {
	// Delimiter is the character used to separate fields.
	// Common values: "," (comma), "|" or "pipe", "\t" or "tab", ";" or "semicolon"
	// Default: ","
	Delimiter string `yaml:"delimiter"`

	// Encoding is the character encoding of the input file.
	// Any WHATWG encoding label works ("windows-1252", "iso-8859-1", "utf-16le").
	// Output is always UTF-8.
	// Default: "UTF-8"
	Encoding string `yaml:"encoding"`

	// LazyQuotes tolerates stray quotes inside unquoted fields.
	LazyQuotes bool `yaml:"lazy_quotes"`

	// LineEnding of written files: "crlf" or "lf".
	// Default: "crlf"
	LineEnding string `yaml:"line_ending"`
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// Default returns a Config with every default applied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// LoadConfig loads the configuration from a YAML file.
//
// PARAMETERS:
//   - configPath: The path to the configuration file.
//   - required:   When false, a missing file yields the defaults.
//
// RETURNS:
//   - A pointer to the Config struct.
//   - An error if the file cannot be read, parsed or validated.
func LoadConfig(configPath string, required bool) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML config data, applies defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *Config) {
	if cfg.InputFile == "" {
		cfg.InputFile = DefaultInputFile
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = DefaultOutputDir
	}
	if cfg.ManifestFile == "" {
		cfg.ManifestFile = DefaultManifestFile
	}
	if cfg.DeckColumn == "" {
		cfg.DeckColumn = DefaultDeckColumn
	}
	if cfg.Language == "" {
		cfg.Language = DefaultLanguage
	}
	if cfg.Category == "" {
		cfg.Category = DefaultCategory
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}

	// CSV settings defaults.
	if cfg.CSVSettings.Delimiter == "" {
		cfg.CSVSettings.Delimiter = ","
	}
	if cfg.CSVSettings.Encoding == "" {
		cfg.CSVSettings.Encoding = "UTF-8"
	}
	if cfg.CSVSettings.LineEnding == "" {
		cfg.CSVSettings.LineEnding = "crlf"
	}
}

// Validate checks the configuration for values the stages cannot work with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DeckColumn) == "" {
		return fmt.Errorf("deck_column must not be blank")
	}
	if strings.ContainsAny(c.ManifestFile, `/\`) {
		return fmt.Errorf("manifest_file must be a bare file name, got %q", c.ManifestFile)
	}
	if strings.HasSuffix(c.ManifestFile, ".csv") {
		return fmt.Errorf("manifest_file %q would be picked up as a pack", c.ManifestFile)
	}

	switch strings.ToLower(c.CSVSettings.LineEnding) {
	case "crlf", "lf":
	default:
		return fmt.Errorf("line_ending must be \"crlf\" or \"lf\", got %q", c.CSVSettings.LineEnding)
	}

	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("log_format must be \"text\" or \"json\", got %q", c.LogFormat)
	}

	return nil
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to render config: %w", err)
	}
	return data, nil
}
