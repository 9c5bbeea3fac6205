// Package fsutil provides file system utility functions.
package fsutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FindFilesByExtension recursively searches the given root path for all files ending
// with the specified extension. It returns their full paths in lexical order
// so that manifests merge deterministically.
func FindFilesByExtension(rootPath string, extension string) ([]string, error) {
	if extension == "" {
		panic("extension must not be empty")
	}

	var files []string
	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), extension) {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// InputPath returns the conventional location of a day's puzzle input.
func InputPath(dir string, day int) string {
	return filepath.Join(dir, fmt.Sprintf("day%02d.txt", day))
}

// ReadInput reads a puzzle input file. A missing file is reported with a
// hint, since puzzle inputs are personal and never shipped with the binary.
func ReadInput(path string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("puzzle input %s not found (save your input there, or pass --example): %w", path, err)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read puzzle input %s: %w", path, err)
	}
	return string(data), nil
}
