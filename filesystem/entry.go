package filesystem

// Entry is a named file holding textual content. It has no lock of its own:
// content is guarded by the owning [Dir]'s lock and an Entry never refers
// back to its owner.
type Entry struct {
	name    string // immutable
	content string // protected by the owning Dir's mu
}

func newEntry(name string) *Entry {
	return &Entry{name: name}
}

// Name returns the entry's immutable name
func (e *Entry) Name() string {
	return e.name
}
