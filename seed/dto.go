package seed

// NodeType distinguishes directory and file definitions
type NodeType string

const (
	FileNodeType NodeType = "file"
	DirNodeType  NodeType = "dir"
)

// NodeDTO is the JSON/YAML representation of one seeded node.
//
// Ex.
//
//	- name: docs
//	  children:
//	    - name: readme
//	      content: "hello"
type NodeDTO struct {
	Name string `json:"name" yaml:"name"`
	// Optional; defaults to "dir" when Children is set and "file" otherwise
	Type     *NodeType `json:"type,omitempty" yaml:"type,omitempty"`
	Content  *string   `json:"content,omitempty" yaml:"content,omitempty"` // files only; nil leaves the file empty
	Children []NodeDTO `json:"children,omitempty" yaml:"children,omitempty"`
}
