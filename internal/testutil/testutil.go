package testutil

import (
	"io/fs"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// Exists reports whether path exists, without following symlinks. Any lstat
// failure other than a clean "does not exist" fails the test, so repeated
// absence checks stay meaningful.
func Exists(t *testing.T, path string) bool {
	t.Helper()

	_, err := os.Lstat(path)
	if err == nil {
		return true
	}

	require.ErrorIs(t, err, fs.ErrNotExist, "lstat %s", path)

	return false
}

// CreateFile creates a small file at path and verifies it exists
func CreateFile(t *testing.T, path string) {
	t.Helper()

	err := os.WriteFile(path, []byte("test content"), 0o644)
	require.NoError(t, err, "Failed to create test file %s", path)
	require.True(t, Exists(t, path))
}

// CreateDir creates a directory at path and verifies it exists
func CreateDir(t *testing.T, path string) {
	t.Helper()

	err := os.Mkdir(path, 0o755)
	require.NoError(t, err, "Failed to create test directory %s", path)
	require.True(t, Exists(t, path))
}

// CreateTempDir creates a temporary directory for testing
func CreateTempDir(t *testing.T) string {
	t.Helper()

	dir, err := os.MkdirTemp("", "scopedir-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	t.Cleanup(func() { os.RemoveAll(dir) })

	return dir
}
