// Package fsutil provides file system utility functions.
package fsutil

import (
	"fmt"
	"os"
)

// ReadInput loads the whole puzzle input at path into memory. A directory
// is rejected rather than read as an empty input.
func ReadInput(path string) ([]byte, error) {
	if path == "" {
		panic("path must not be empty")
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("input %s is a directory", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input %s: %w", path, err)
	}
	return data, nil
}
