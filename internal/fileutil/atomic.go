// Package fileutil provides small file helpers for plain-text data files.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// WriteFileAtomic replaces filename with data by writing a temporary file in
// the same directory and renaming it into place. Readers see either the old
// contents or the new contents, never a partial write.
//
// When filename already exists its permission bits are kept and perm is only
// used for a newly created file, so a players file the user made private
// stays private after a save.
func WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	if info, err := os.Stat(filename); err == nil {
		perm = info.Mode().Perm()
	}

	// Same directory, same filesystem: cross-filesystem renames are not atomic
	tmpFile, err := os.CreateTemp(filepath.Dir(filename), filepath.Base(filename)+".tmp.*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	// Until the rename succeeds the temp file is ours to clean up, including
	// after it has been closed.
	renamed := false
	defer func() {
		if !renamed {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	// Data must be on disk before the rename makes it visible
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	// CreateTemp always uses 0600
	if err := os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := os.Rename(tmpPath, filename); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	renamed = true

	return nil
}

// WriteLinesAtomic joins lines with "\n" and writes them atomically.
// No newline follows the last line.
func WriteLinesAtomic(filename string, lines []string, perm os.FileMode) error {
	return WriteFileAtomic(filename, []byte(strings.Join(lines, "\n")), perm)
}

// ReadLines returns the non-blank lines of filename with surrounding
// whitespace removed. A missing file is reported as an error wrapping
// os.ErrNotExist.
func ReadLines(filename string) ([]string, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}
