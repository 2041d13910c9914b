package filesystem

import (
	"fmt"
	"sync"

	"github.com/brettbedarf/memfs"
	"github.com/brettbedarf/memfs/config"
	"github.com/brettbedarf/memfs/internal/util"
	"github.com/google/uuid"
)

// FileSystem owns a tree of directories and tracks the current directory.
// Every file and directory operation is relative to the current directory.
//
// Locking is two-tiered: each [Dir] guards its own mappings, and mu guards
// every reassignment of current. Navigation takes mu before any Dir lock,
// never the reverse.
type FileSystem struct {
	ID      uuid.UUID // distinguishes trees in logs
	cfg     *config.Config
	reg     *registry
	root    *Dir
	current *Dir       // Protected by mu; always a live node
	mu      sync.Mutex // position lock
}

var _ memfs.Operator = (*FileSystem)(nil)

// NewFS creates an empty tree positioned at its root. A nil cfg uses defaults.
func NewFS(cfg *config.Config) *FileSystem {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}
	reg := newRegistry()
	root := newDir(cfg.RootName, 0, reg)

	return &FileSystem{
		ID:      uuid.New(),
		cfg:     cfg,
		reg:     reg,
		root:    root,
		current: root,
	}
}

func (fs *FileSystem) logger(component string) util.Logger {
	return util.GetLogger(component).With().Str("fs", fs.ID.String()).Logger()
}

// Root returns the root directory
func (fs *FileSystem) Root() *Dir {
	return fs.root
}

// Current returns the current directory
func (fs *FileSystem) Current() *Dir {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.current
}

/* File operations. Each forwards to the current directory, which holds its
own lock for the whole check-then-act sequence. */

func (fs *FileSystem) CreateFile(name string) error {
	logger := fs.logger("FS.CreateFile")

	cur := fs.Current()
	if err := cur.CreateEntry(name); err != nil {
		logger.Debug().Err(err).Str("dir", cur.Path()).Msg("Failed to create file")
		return err
	}
	logger.Debug().Str("dir", cur.Path()).Str("name", name).Msg("Created file")
	return nil
}

func (fs *FileSystem) ReadFile(name string) (string, error) {
	logger := fs.logger("FS.ReadFile")

	cur := fs.Current()
	content, err := cur.ReadEntry(name)
	if err != nil {
		logger.Debug().Err(err).Str("dir", cur.Path()).Msg("Failed to read file")
		return "", err
	}
	logger.Trace().Str("name", name).Int("len", len(content)).Msg("Read file")
	return content, nil
}

// WriteFile replaces the content of an existing file; a missing file is
// [memfs.ErrNotFound], not created.
func (fs *FileSystem) WriteFile(name, content string) error {
	logger := fs.logger("FS.WriteFile")

	cur := fs.Current()
	if err := cur.WriteEntry(name, content); err != nil {
		logger.Debug().Err(err).Str("dir", cur.Path()).Msg("Failed to write file")
		return err
	}
	logger.Debug().Str("name", name).Int("len", len(content)).Msg("Wrote file")
	return nil
}

func (fs *FileSystem) DeleteFile(name string) error {
	logger := fs.logger("FS.DeleteFile")

	cur := fs.Current()
	if err := cur.DeleteEntry(name); err != nil {
		logger.Debug().Err(err).Str("dir", cur.Path()).Msg("Failed to delete file")
		return err
	}
	logger.Debug().Str("dir", cur.Path()).Str("name", name).Msg("Deleted file")
	return nil
}

func (fs *FileSystem) CreateDirectory(name string) error {
	logger := fs.logger("FS.CreateDirectory")

	cur := fs.Current()
	child, err := cur.CreateChild(name)
	if err != nil {
		logger.Debug().Err(err).Str("dir", cur.Path()).Msg("Failed to create directory")
		return err
	}
	logger.Debug().
		Str("path", child.Path()).
		Uint64("nodeID", child.NodeID()).
		Int("dirs", fs.reg.size()).
		Msg("Created directory")
	return nil
}

/* Navigation. All three reassign current under mu. */

// ChangeDirectory moves into a child of the current directory. The lookup
// and the reassignment happen under one hold of the position lock.
func (fs *FileSystem) ChangeDirectory(name string) error {
	logger := fs.logger("FS.ChangeDirectory")

	fs.mu.Lock()
	defer fs.mu.Unlock()

	child, err := fs.current.LookupChild(name)
	if err != nil {
		logger.Debug().Err(err).Str("dir", fs.current.Path()).Msg("Failed to change directory")
		return err
	}
	fs.current = child
	logger.Trace().Str("path", child.Path()).Msg("Changed directory")
	return nil
}

// GoToParent moves to the parent of the current directory.
// Returns [memfs.ErrAlreadyAtRoot] at the root and [memfs.ErrDanglingParent]
// if the parent no longer resolves; current is unchanged in both cases.
func (fs *FileSystem) GoToParent() error {
	logger := fs.logger("FS.GoToParent")

	fs.mu.Lock()
	defer fs.mu.Unlock()

	if fs.current == fs.root {
		return fmt.Errorf("directory %q: %w", fs.root.name, memfs.ErrAlreadyAtRoot)
	}
	parent, ok := fs.current.Parent()
	if !ok {
		err := fmt.Errorf("directory %q: %w", fs.current.name, memfs.ErrDanglingParent)
		logger.Warn().Err(err).Uint64("nodeID", fs.current.NodeID()).Msg("Parent lookup failed")
		return err
	}
	fs.current = parent
	logger.Trace().Str("path", parent.Path()).Msg("Moved to parent")
	return nil
}

// GoToRoot moves to the root. Always succeeds.
func (fs *FileSystem) GoToRoot() {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.current = fs.root
}

// List returns a consistent snapshot of the current directory
func (fs *FileSystem) List() memfs.Listing {
	ctx := NewDirContext(fs.Current())
	defer ctx.Close()
	return ctx.Listing()
}

// Pwd returns the absolute path of the current directory
func (fs *FileSystem) Pwd() string {
	return fs.Current().Path()
}
