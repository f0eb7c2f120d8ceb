// =============================================================================
// Deck Splitter - Manifest Builder
// =============================================================================
//
// This module contains the second stage: it scans a directory of pack files
// and writes store_metadata.json describing each of them.
//
// It reads the directory back from disk rather than taking the splitter's
// result, so it also works on directories that were edited by hand.
//
// OUTPUT FORMAT:
//   {
//     "store_packs": [
//       {
//         "id": "animalsbasics",
//         "name": "Animals > Basics",
//         "description": "Vocabulary pack with 3 Dutch words and phrases",
//         "card_count": 3,
//         "filename": "Animals-Basics.csv",
//         "unlocked": false,
//         "category": "vocabulary",
//         "difficulty": "beginner"
//       }
//     ]
//   }
//
// =============================================================================

package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/ginjaninja78/vocab-deck-splitter/internal/config"
	"github.com/ginjaninja78/vocab-deck-splitter/internal/csvparser"
	"github.com/ginjaninja78/vocab-deck-splitter/internal/naming"
	"github.com/ginjaninja78/vocab-deck-splitter/internal/types"
	"github.com/ginjaninja78/vocab-deck-splitter/pkg/utils"
	"github.com/sirupsen/logrus"
)

// Builder scans pack directories and writes manifests.
type Builder struct {
	cfg    *config.Config
	logger logrus.FieldLogger
}

// New creates a Builder. cfg supplies the manifest file name, the
// description language, the category and the id style.
func New(cfg *config.Config, logger logrus.FieldLogger) *Builder {
	return &Builder{cfg: cfg, logger: logger}
}

// =============================================================================
// BUILD
// =============================================================================

// Build scans dir and returns the manifest without writing it.
// Any pack file that cannot be read fails the whole build.
func (b *Builder) Build(dir string) (*types.Manifest, error) {
	files := utils.NewFileManager(dir)

	names, err := files.ListFiles(naming.Extension)
	if err != nil {
		return nil, err
	}

	// Pack files are always written as UTF-8, whatever the input encoding was.
	settings := b.cfg.CSVSettings
	settings.Encoding = "utf-8"

	manifest := &types.Manifest{StorePacks: []types.PackDescriptor{}}
	for _, name := range names {
		count, err := csvparser.CountRows(files.Path(name), settings)
		if err != nil {
			return nil, fmt.Errorf("failed to count cards in %s: %w", name, err)
		}

		pack := b.Describe(name, count)
		b.logger.WithFields(logrus.Fields{
			"file":  name,
			"cards": count,
			"id":    pack.ID,
		}).Debug("described pack")

		manifest.StorePacks = append(manifest.StorePacks, pack)
	}

	return manifest, nil
}

// Describe builds the descriptor for one pack file.
func (b *Builder) Describe(filename string, cardCount int) types.PackDescriptor {
	name := naming.DisplayName(filename)
	return types.PackDescriptor{
		ID:          naming.PackID(name, b.cfg.LegacyIDs),
		Name:        name,
		Description: fmt.Sprintf("Vocabulary pack with %d %s words and phrases", cardCount, b.cfg.Language),
		CardCount:   cardCount,
		Filename:    filename,
		Unlocked:    false,
		Category:    b.cfg.Category,
		Difficulty:  naming.Difficulty(name),
	}
}

// Run builds the manifest for dir and writes it to dir/<manifest_file>.
// Nothing is written unless every pack file was counted.
func (b *Builder) Run(dir string) (string, *types.Manifest, error) {
	manifest, err := b.Build(dir)
	if err != nil {
		return "", nil, err
	}

	data, err := Marshal(manifest)
	if err != nil {
		return "", nil, err
	}

	path, err := utils.NewFileManager(dir).WriteFileAtomic(b.cfg.ManifestFile, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
	if err != nil {
		return "", nil, fmt.Errorf("failed to write manifest: %w", err)
	}

	b.logger.WithFields(logrus.Fields{
		"file":  path,
		"packs": len(manifest.StorePacks),
	}).Infof("Created store metadata: %s", path)

	return path, manifest, nil
}

// =============================================================================
// SERIALIZATION
// =============================================================================

// Marshal renders a manifest with two-space indentation. Non-ASCII text and
// characters such as ">" are written literally. There is no trailing newline.
func Marshal(manifest *types.Manifest) ([]byte, error) {
	if manifest.StorePacks == nil {
		manifest = &types.Manifest{StorePacks: []types.PackDescriptor{}}
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(manifest); err != nil {
		return nil, fmt.Errorf("failed to encode manifest: %w", err)
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
