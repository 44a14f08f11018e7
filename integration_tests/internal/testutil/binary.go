package testutil

import (
	"os"
	"path/filepath"
)

// GetBinaryPath returns the path to the devtasks binary for integration tests.
// It checks multiple locations in order of preference:
// 1. Current directory (./devtasks)
// 2. Parent directory (../devtasks) - where `go build -o devtasks .` puts it
// 3. bin directory (../bin/devtasks)
func GetBinaryPath() string {
	candidates := []string{
		"devtasks",
		filepath.Join("..", "devtasks"),
		filepath.Join("..", "bin", "devtasks"),
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			abs, err := filepath.Abs(path)
			if err != nil {
				return path
			}
			return abs
		}
	}
	return ""
}
