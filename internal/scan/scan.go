// Package scan discovers article files in a workspace directory.
package scan

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Sentinel errors for workspace discovery.
var (
	ErrNotDirectory     = errors.New("workspace path is not a directory")
	ErrInvalidExtension = errors.New("file must have .md or .markdown extension")
)

// IsMarkdownPath reports whether the path has a markdown extension.
func IsMarkdownPath(path string) bool {
	ext := filepath.Ext(path)
	return ext == ".md" || ext == ".markdown"
}

// ValidateMarkdownPath checks that a single file path is a markdown file.
func ValidateMarkdownPath(path string) error {
	if !IsMarkdownPath(path) {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(path))
	}
	return nil
}

// Discover walks root and returns all markdown file paths in sorted order.
// Hidden directories (dot-prefixed) are skipped.
func Discover(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, root)
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !IsMarkdownPath(path) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}
