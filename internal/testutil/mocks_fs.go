package testutil

import (
	"io/fs"
	"path/filepath"

	"github.com/Norgate-AV/scopedir/internal/fsys"
)

// MockFS implements interfaces.FileSystem for testing. It delegates to the
// real filesystem rooted at a caller-supplied directory and injects failures
// where configured, recording every Mkdir and Remove call.
type MockFS struct {
	real *fsys.Real
	root string

	mkdirCollisions int   // first N Mkdir calls report fs.ErrExist
	mkdirErr        error // sticky failure for every Mkdir call
	removeErrs      map[string]error

	MkdirCalls  []string
	RemoveCalls []string
}

func NewMockFS(root string) *MockFS {
	return &MockFS{
		real:       fsys.NewReal(),
		root:       root,
		removeErrs: map[string]error{},
	}
}

// Fluent configuration helpers

// WithMkdirCollisions makes the first n Mkdir calls fail as name collisions.
func (m *MockFS) WithMkdirCollisions(n int) *MockFS {
	m.mkdirCollisions = n
	return m
}

// WithMkdirErr makes every Mkdir call fail with err.
func (m *MockFS) WithMkdirErr(err error) *MockFS {
	m.mkdirErr = err
	return m
}

// WithRemoveErr makes Remove fail with err for any path whose base name
// matches name.
func (m *MockFS) WithRemoveErr(name string, err error) *MockFS {
	m.removeErrs[name] = err
	return m
}

func (m *MockFS) TempRoot() string {
	return m.root
}

func (m *MockFS) Mkdir(path string, perm fs.FileMode) error {
	m.MkdirCalls = append(m.MkdirCalls, path)

	if m.mkdirCollisions > 0 {
		m.mkdirCollisions--
		return &fs.PathError{Op: "mkdir", Path: path, Err: fs.ErrExist}
	}

	if m.mkdirErr != nil {
		return &fs.PathError{Op: "mkdir", Path: path, Err: m.mkdirErr}
	}

	return m.real.Mkdir(path, perm)
}

func (m *MockFS) Lstat(path string) (fs.FileInfo, error) {
	return m.real.Lstat(path)
}

func (m *MockFS) ReadDir(path string) ([]fs.DirEntry, error) {
	return m.real.ReadDir(path)
}

func (m *MockFS) Remove(path string) error {
	m.RemoveCalls = append(m.RemoveCalls, path)

	if err, ok := m.removeErrs[filepath.Base(path)]; ok {
		return &fs.PathError{Op: "remove", Path: path, Err: err}
	}

	return m.real.Remove(path)
}
