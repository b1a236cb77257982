//go:build windows

package fsys

import "io/fs"

// DirPerm is the mode applied to guard directories. Windows ignores Unix
// permission bits and inherits the ACL of the parent temp directory, which
// is already scoped to the current user.
const DirPerm fs.FileMode = 0o700
