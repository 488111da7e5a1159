package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile writes data to name inside a fresh temporary directory and
// returns the path. The directory is removed when the test ends.
func WriteFile(t testing.TB, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// WritePE writes a PE image carrying res (see BuildPE) and returns its path.
func WritePE(t testing.TB, name string, res []byte, opts PEOptions) string {
	t.Helper()
	return WriteFile(t, name, BuildPE(res, opts))
}
