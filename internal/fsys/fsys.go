// Package fsys provides the real, os-backed implementation of the
// interfaces.FileSystem capability used by the scoped-directory guard.
package fsys

import (
	"io/fs"
	"os"
)

// Real implements interfaces.FileSystem using real filesystem calls
type Real struct{}

func NewReal() *Real {
	return &Real{}
}

func (r *Real) TempRoot() string {
	return os.TempDir()
}

func (r *Real) Mkdir(path string, perm fs.FileMode) error {
	return os.Mkdir(path, perm)
}

func (r *Real) Lstat(path string) (fs.FileInfo, error) {
	return os.Lstat(path)
}

func (r *Real) ReadDir(path string) ([]fs.DirEntry, error) {
	return os.ReadDir(path)
}

func (r *Real) Remove(path string) error {
	return os.Remove(path)
}
