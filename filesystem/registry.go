package filesystem

import (
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v3"
)

// registry maps node IDs to live directories for a single tree. Parent
// references are stored as IDs and resolved here, so a child never extends
// its parent's lifetime.
type registry struct {
	lastID atomic.Uint64              // Last ID assigned; 0 is never a valid ID
	nodes  *xsync.MapOf[uint64, *Dir] // thread-safe map of IDs to directories
}

func newRegistry() *registry {
	return &registry{nodes: xsync.NewMapOf[uint64, *Dir]()}
}

// register allocates the next ID for d and stores it. Must be called before
// d is reachable from any other goroutine.
func (r *registry) register(d *Dir) uint64 {
	id := r.lastID.Add(1)
	d.nodeID = id
	r.nodes.Store(id, d)
	return id
}

func (r *registry) lookup(id uint64) (*Dir, bool) {
	if id == 0 {
		return nil, false
	}
	return r.nodes.Load(id)
}

// size returns the number of registered directories
func (r *registry) size() int {
	return r.nodes.Size()
}
