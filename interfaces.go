// Package memfs contains core domain types and interfaces for an in-memory
// hierarchical filesystem navigated from a single current directory
package memfs

// Operator is the set of filesystem operations the command layer drives.
// Every call is relative to the current directory.
type Operator interface {
	CreateFile(name string) error
	ReadFile(name string) (string, error)
	// WriteFile replaces the whole content of an existing file
	WriteFile(name, content string) error
	DeleteFile(name string) error
	CreateDirectory(name string) error
	ChangeDirectory(name string) error
	GoToParent() error
	GoToRoot()

	// List returns a sorted snapshot of the current directory
	List() Listing
	// Pwd returns the absolute path of the current directory
	Pwd() string
}

// Listing is a point-in-time view of a directory's contents
type Listing struct {
	Dirs  []string
	Files []string
}
