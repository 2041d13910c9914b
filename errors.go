package memfs

import "errors"

// Outcomes returned by filesystem operations. All are expected, non-fatal
// results; callers match them with errors.Is.
var (
	ErrAlreadyExists = errors.New("already exists")
	ErrNotFound      = errors.New("not found")
	// ErrAlreadyAtRoot is informational: parent navigation from the root is a no-op.
	ErrAlreadyAtRoot = errors.New("already at root")
	// ErrDanglingParent means a directory's parent handle no longer resolves.
	// Unreachable while directories cannot be removed.
	ErrDanglingParent = errors.New("parent directory no longer exists")
)

// IsInformational reports whether err is an outcome to surface as a notice
// rather than a failure
func IsInformational(err error) bool {
	return errors.Is(err, ErrAlreadyAtRoot)
}
