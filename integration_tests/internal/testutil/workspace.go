package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Workspace is a scratch directory with stub executables placed first on PATH.
type Workspace struct {
	Dir    string
	BinDir string
}

// SetupTestWorkspace creates a workspace under t.TempDir(). Each stub prints
// its name and arguments, then exits with the given code.
func SetupTestWorkspace(t *testing.T, stubs map[string]int) *Workspace {
	t.Helper()

	dir := t.TempDir()
	binDir := filepath.Join(dir, "bin")
	require.NoError(t, os.MkdirAll(binDir, 0755), "failed to create stub bin directory")

	for name, code := range stubs {
		script := fmt.Sprintf("#!/bin/sh\necho \"%s $*\"\nexit %d\n", name, code)
		err := os.WriteFile(filepath.Join(binDir, name), []byte(script), 0755)
		require.NoError(t, err, "failed to write stub %s", name)
	}

	return &Workspace{Dir: dir, BinDir: binDir}
}

// Env returns the current environment with the stub directory prepended to PATH.
func (w *Workspace) Env() []string {
	env := make([]string, 0, len(os.Environ())+1)
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, "PATH=") || strings.HasPrefix(kv, "LOG_MODE=") || strings.HasPrefix(kv, "LOG_FORMAT=") {
			continue
		}
		env = append(env, kv)
	}
	return append(env, "PATH="+w.BinDir+string(os.PathListSeparator)+os.Getenv("PATH"))
}
