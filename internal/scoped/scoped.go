// Package scoped implements a scoped temporary-directory guard: a uniquely
// named directory created on construction and recursively deleted on Close,
// together with everything placed inside it during its lifetime.
package scoped

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/Norgate-AV/scopedir/internal/fsys"
	"github.com/Norgate-AV/scopedir/internal/interfaces"
	"github.com/Norgate-AV/scopedir/internal/limits"
	"github.com/Norgate-AV/scopedir/internal/logger"
)

// DefaultPrefix is the leading component of generated directory names when
// Options.Prefix is empty.
const DefaultPrefix = "scopedir"

// ErrNameExhausted is returned when every candidate name collided with an
// existing entry. With random suffixes this indicates something is wrong
// with the parent directory, not bad luck.
var ErrNameExhausted = errors.New("gave up finding an unused directory name")

// Options configures construction of a Dir
type Options struct {
	// Parent is the directory the guard is created under.
	// If empty, the platform temp root is used.
	Parent string

	// Prefix is the leading component of the generated name.
	// If empty, DefaultPrefix is used.
	Prefix string
}

// Dir owns exactly one filesystem directory for its lifetime. It is not
// safe to copy; ownership can be transferred once via Release.
type Dir struct {
	fs   interfaces.FileSystem
	log  logger.LoggerInterface
	path string
}

// New creates a guard with the real filesystem and no logging.
func New(opts Options) (*Dir, error) {
	return NewWithDeps(fsys.NewReal(), logger.Nop(), opts)
}

// NewWithDeps creates a guard with injected dependencies. On success the
// returned guard's path exists as an empty directory; on failure nothing is
// left behind.
func NewWithDeps(fsImpl interfaces.FileSystem, log logger.LoggerInterface, opts Options) (*Dir, error) {
	parent := opts.Parent
	if parent == "" {
		parent = fsImpl.TempRoot()
	}

	prefix := opts.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}

	for attempt := 1; attempt <= limits.NameAttempts; attempt++ {
		candidate := filepath.Join(parent, prefix+"-"+nameSuffix())

		err := fsImpl.Mkdir(candidate, fsys.DirPerm)
		if err == nil {
			log.Debug("created scoped directory", "path", candidate, "attempt", attempt)
			return &Dir{fs: fsImpl, log: log, path: candidate}, nil
		}

		if errors.Is(err, fs.ErrExist) {
			log.Debug("directory name collision, retrying", "path", candidate)
			continue
		}

		return nil, fmt.Errorf("creating scoped directory under %s: %w", parent, err)
	}

	return nil, fmt.Errorf("%w: %d attempts under %s", ErrNameExhausted, limits.NameAttempts, parent)
}

// nameSuffix returns twelve hex characters of a random UUID, enough to make
// concurrent construction from multiple processes collision-free in practice.
func nameSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}

// Path returns the owned directory. It is empty once the guard has been
// released or closed.
func (d *Dir) Path() string {
	return d.path
}

// Join returns elem joined onto the owned directory path.
func (d *Dir) Join(elem ...string) string {
	parts := append([]string{d.path}, elem...)
	return filepath.Join(parts...)
}

// Release transfers ownership of the directory to the caller and inertizes
// the guard: Path returns "" and Close becomes a no-op. The caller is now
// responsible for deleting the returned path.
func (d *Dir) Release() string {
	path := d.path
	d.path = ""

	return path
}

// Close deletes the owned directory and everything transitively inside it,
// regardless of what was added after construction. Entries already removed
// by other actors are treated as satisfied. Close is idempotent; calling it
// on a released guard does nothing.
func (d *Dir) Close() error {
	if d.path == "" {
		return nil
	}

	path := d.path
	d.path = ""

	if err := d.removeTree(path); err != nil {
		// Teardown runs on scope exit and must not mask the caller's own
		// control flow; report and hand the details back.
		d.log.Error("scoped directory teardown incomplete", "path", path, "error", err)
		return err
	}

	d.log.Debug("removed scoped directory", "path", path)

	return nil
}

// removeTree deletes path and all descendants, discovering them by walking
// the tree at teardown time. Discovery uses Lstat, so symlinks are removed
// as entries and never followed.
func (d *Dir) removeTree(path string) error {
	info, err := d.fs.Lstat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("lstat %s: %w", path, err)
	}

	if info.IsDir() {
		entries, err := d.fs.ReadDir(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("read dir %s: %w", path, err)
		}

		var errs []error
		for _, entry := range entries {
			if err := d.removeTree(filepath.Join(path, entry.Name())); err != nil {
				errs = append(errs, err)
			}
		}

		if len(errs) > 0 {
			return errors.Join(errs...)
		}
	}

	if err := d.fs.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", path, err)
	}

	return nil
}
