package filesystem

import (
	"slices"

	"github.com/brettbedarf/memfs"
)

// DirContext wraps a read-locked [Dir]. Calling Close() unwinds all
// unlocking/cleanup callbacks in reverse order.
// Do NOT invoke any locking methods on the raw Dir while this context is
// active; use only the snapshot helpers below.
//
// NOTE: DirContext itself is **not** thread-safe meaning references
// to it should not be shared between goroutines
type DirContext struct {
	dir      *Dir
	closeFns []func()
}

// NewDirContext RLocks the Dir and returns a new DirContext for safe access
func NewDirContext(dir *Dir) *DirContext {
	dir.mu.RLock()
	ctx := &DirContext{dir: dir}
	ctx.AddClose(dir.mu.RUnlock)
	return ctx
}

// Name returns the directory's immutable name.
func (ctx *DirContext) Name() string {
	return ctx.dir.name
}

// Files returns the sorted file names
func (ctx *DirContext) Files() []string {
	names := make([]string, 0, len(ctx.dir.files))
	for name := range ctx.dir.files {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Dirs returns the sorted child directory names
func (ctx *DirContext) Dirs() []string {
	names := make([]string, 0, len(ctx.dir.dirs))
	for name := range ctx.dir.dirs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Listing returns both mappings as one consistent snapshot
func (ctx *DirContext) Listing() memfs.Listing {
	return memfs.Listing{Dirs: ctx.Dirs(), Files: ctx.Files()}
}

// AddClose pushes a cleanup callback (e.g., unlock) onto the end of the stack.
func (ctx *DirContext) AddClose(fn func()) {
	ctx.closeFns = append(ctx.closeFns, fn)
}

// Close unwinds all cleanup callbacks in reverse order.
// Safe to call even if ctx is nil or already closed, so you can
// `defer ctx.Close()` unconditionally.
//
// Example:
//
//	ctx := NewDirContext(dir)
//	defer ctx.Close()
func (ctx *DirContext) Close() {
	if ctx == nil {
		return
	}
	for i := len(ctx.closeFns) - 1; i >= 0; i-- {
		ctx.closeFns[i]()
	}
	ctx.closeFns = nil
}
