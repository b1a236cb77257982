//go:build !windows

package fsys

import "io/fs"

// DirPerm is the mode applied to guard directories. Owner-only, so a scoped
// directory shared via $TMPDIR never leaks contents to other users.
const DirPerm fs.FileMode = 0o700
