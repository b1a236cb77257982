package interfaces

import (
	"io/fs"
)

// FileSystem is the single abstraction point between the scoped-directory
// guard and the operating system. The guard never calls the os package
// directly; production code uses the real implementation in internal/fsys,
// tests substitute a mock from internal/testutil.
type FileSystem interface {
	// TempRoot returns the platform default directory for temporary files.
	TempRoot() string

	// Mkdir creates a single directory. It must return an error satisfying
	// errors.Is(err, fs.ErrExist) when the name is already taken, so the
	// guard can distinguish a retryable name collision from a real failure.
	Mkdir(path string, perm fs.FileMode) error

	// Lstat stats path without following symlinks.
	Lstat(path string) (fs.FileInfo, error)

	// ReadDir lists the entries of a directory.
	ReadDir(path string) ([]fs.DirEntry, error)

	// Remove deletes a single file, symlink, or empty directory.
	Remove(path string) error
}
