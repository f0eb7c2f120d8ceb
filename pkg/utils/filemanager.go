// =============================================================================
// Deck Splitter - File Manager Utility
// =============================================================================
//
// This module provides file management utilities shared by both stages:
//   - Output directory management
//   - Pack file discovery (exact suffix match, stable order)
//   - Atomic writes (temp file + rename, so a failed run never leaves a
//     half-written pack or manifest behind)
//   - Cleaning stale pack files before a split
//
// =============================================================================

package utils

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// =============================================================================
// FILE MANAGER
// =============================================================================

// FileManager handles file operations inside one directory.
type FileManager struct {
	// Dir is the managed directory.
	Dir string

	// FileMode is applied to files written through WriteFileAtomic.
	FileMode os.FileMode
}

// NewFileManager creates a new FileManager for dir.
func NewFileManager(dir string) *FileManager {
	return &FileManager{
		Dir:      dir,
		FileMode: 0644,
	}
}

// Path joins name onto the managed directory.
func (fm *FileManager) Path(name string) string {
	return filepath.Join(fm.Dir, name)
}

// =============================================================================
// DIRECTORY MANAGEMENT
// =============================================================================

// EnsureDir creates the directory and any missing parents.
// It is a no-op when the directory already exists.
func (fm *FileManager) EnsureDir() error {
	if err := os.MkdirAll(fm.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", fm.Dir, err)
	}
	return nil
}

// =============================================================================
// FILE DISCOVERY
// =============================================================================

// ListFiles returns the names of regular entries whose name ends with suffix.
// The match is case-sensitive. Names are returned in lexical order, the order
// os.ReadDir lists them in.
func (fm *FileManager) ListFiles(suffix string) ([]string, error) {
	entries, err := os.ReadDir(fm.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list directory %s: %w", fm.Dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), suffix) {
			names = append(names, entry.Name())
		}
	}

	return names, nil
}

// CleanFiles removes every file ListFiles(suffix) returns and reports how
// many were removed. Files that are the same file as one of keep are left
// in place.
func (fm *FileManager) CleanFiles(suffix string, keep ...string) (int, error) {
	names, err := fm.ListFiles(suffix)
	if err != nil {
		return 0, err
	}

	var kept []os.FileInfo
	for _, path := range keep {
		if info, err := os.Stat(path); err == nil {
			kept = append(kept, info)
		}
	}

	removed := 0
	for _, name := range names {
		if isKept(fm.Path(name), kept) {
			continue
		}
		if err := os.Remove(fm.Path(name)); err != nil {
			return removed, fmt.Errorf("failed to remove %s: %w", name, err)
		}
		removed++
	}

	return removed, nil
}

func isKept(path string, kept []os.FileInfo) bool {
	if len(kept) == 0 {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	for _, k := range kept {
		if os.SameFile(info, k) {
			return true
		}
	}
	return false
}

// =============================================================================
// ATOMIC WRITES
// =============================================================================

// WriteFileAtomic writes name through a uniquely named temp file in the same
// directory and renames it into place once write succeeded. An existing file
// of the same name is replaced.
func (fm *FileManager) WriteFileAtomic(name string, write func(w io.Writer) error) (string, error) {
	target := fm.Path(name)
	temp := fm.Path(fmt.Sprintf(".%s.%s.tmp", name, uuid.NewString()))

	file, err := os.OpenFile(temp, os.O_CREATE|os.O_EXCL|os.O_WRONLY, fm.FileMode)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", temp, err)
	}

	// Remove the temp file on every failure path below.
	committed := false
	defer func() {
		if !committed {
			file.Close()
			os.Remove(temp)
		}
	}()

	buffered := bufio.NewWriter(file)
	if err := write(buffered); err != nil {
		return "", err
	}
	if err := buffered.Flush(); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", target, err)
	}
	if err := file.Sync(); err != nil {
		return "", fmt.Errorf("failed to sync %s: %w", target, err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", target, err)
	}
	if err := os.Rename(temp, target); err != nil {
		os.Remove(temp)
		committed = true
		return "", fmt.Errorf("failed to move %s into place: %w", target, err)
	}

	committed = true
	return target, nil
}

// =============================================================================
// UTILITY FUNCTIONS
// =============================================================================

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
