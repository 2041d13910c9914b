package filesystem

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/brettbedarf/memfs"
)

// Dir is a named directory holding two independent mappings: child
// directories and files. A directory and a file may share a name.
//
// A Dir is owned exclusively by its parent's dirs map (the root is owned by
// its [FileSystem]). The parent is referenced only by ID through the tree's
// registry and is never used to keep it alive.
type Dir struct {
	name     string    // immutable
	nodeID   uint64    // registry ID; immutable after registration
	parentID uint64    // registry ID of the parent; 0 for the root
	reg      *registry // owning tree's registry, shared by every Dir in the tree
	mu       sync.RWMutex
	dirs     map[string]*Dir   // protected by mu
	files    map[string]*Entry // protected by mu
}

// newDir creates and registers an empty directory.
//
// NOTE: the caller is responsible for inserting the returned Dir into its
// parent's dirs map
func newDir(name string, parentID uint64, reg *registry) *Dir {
	d := &Dir{
		name:     name,
		parentID: parentID,
		reg:      reg,
		dirs:     make(map[string]*Dir),
		files:    make(map[string]*Entry),
	}
	reg.register(d)
	return d
}

// Name returns the directory's immutable name
func (d *Dir) Name() string {
	return d.name
}

// NodeID returns the directory's registry ID
func (d *Dir) NodeID() uint64 {
	return d.nodeID
}

func (d *Dir) IsRoot() bool {
	return d.parentID == 0
}

// Parent resolves the parent directory through the registry.
// Returns false for the root or when the parent can no longer be resolved.
func (d *Dir) Parent() (*Dir, bool) {
	if d.IsRoot() {
		return nil, false
	}
	return d.reg.lookup(d.parentID)
}

// Path returns the absolute path of the directory: "/" for the root and
// "/a/b" below it. The root's name is a label only and never appears.
// A broken parent chain yields the relative path below the first
// unresolvable ancestor.
func (d *Dir) Path() string {
	var segs []string // leaf first
	cur := d
	for !cur.IsRoot() {
		segs = append(segs, cur.name)
		p, ok := cur.Parent()
		if !ok {
			slices.Reverse(segs)
			return strings.Join(segs, "/")
		}
		cur = p
	}
	slices.Reverse(segs)
	return "/" + strings.Join(segs, "/")
}

// CreateEntry adds an empty file. Fails with [memfs.ErrAlreadyExists] if a
// file of that name exists; directory names are not checked.
func (d *Dir) CreateEntry(name string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.files[name]; ok {
		return fmt.Errorf("file %q: %w", name, memfs.ErrAlreadyExists)
	}
	d.files[name] = newEntry(name)
	return nil
}

// ReadEntry returns a file's content
func (d *Dir) ReadEntry(name string) (string, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	e, ok := d.files[name]
	if !ok {
		return "", fmt.Errorf("file %q: %w", name, memfs.ErrNotFound)
	}
	return e.content, nil
}

// WriteEntry replaces a file's whole content. It never creates the file.
func (d *Dir) WriteEntry(name, content string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	e, ok := d.files[name]
	if !ok {
		return fmt.Errorf("file %q: %w", name, memfs.ErrNotFound)
	}
	e.content = content
	return nil
}

func (d *Dir) DeleteEntry(name string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.files[name]; !ok {
		return fmt.Errorf("file %q: %w", name, memfs.ErrNotFound)
	}
	delete(d.files, name)
	return nil
}

// CreateChild adds and returns a new empty child directory. Fails with
// [memfs.ErrAlreadyExists] if a child directory of that name exists; file
// names are not checked.
func (d *Dir) CreateChild(name string) (*Dir, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.dirs[name]; ok {
		return nil, fmt.Errorf("directory %q: %w", name, memfs.ErrAlreadyExists)
	}
	child := newDir(name, d.nodeID, d.reg)
	d.dirs[name] = child
	return child, nil
}

// LookupChild returns a child directory without transferring ownership
func (d *Dir) LookupChild(name string) (*Dir, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	child, ok := d.dirs[name]
	if !ok {
		return nil, fmt.Errorf("directory %q: %w", name, memfs.ErrNotFound)
	}
	return child, nil
}
