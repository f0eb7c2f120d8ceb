// =============================================================================
// Deck Splitter - Main Entry Point
// =============================================================================
//
// This is the main entry point for the decksplit CLI. It delegates command
// execution to the cmd package.
//
// USAGE:
//   decksplit run           - Split the card export and build the manifest
//   decksplit split         - Split the card export into per-deck packs
//   decksplit manifest      - Write store_metadata.json for existing packs
//   decksplit config init   - Write a default configuration file
//   decksplit version       - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : Splitting, manifest building, parsing and naming
//   - pkg/           : Shared file utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/vocab-deck-splitter/cmd"
)

func main() {
	cmd.Execute()
}
