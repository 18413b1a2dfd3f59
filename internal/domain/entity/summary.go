package entity

// NodeKind distinguishes containers from panes in a summary.
type NodeKind string

const (
	NodeContainer NodeKind = "container"
	NodePane      NodeKind = "pane"
)

// NodeSummary describes one node of the layout tree as last laid out.
type NodeSummary struct {
	Kind      NodeKind `json:"kind"`
	Name      string   `json:"name,omitempty"` // panes only
	Path      string   `json:"path"`           // container key; parent key for panes
	Direction string   `json:"direction,omitempty"`
	Weight    float64  `json:"weight"`
	Active    bool     `json:"active"`
	Detached  bool     `json:"detached,omitempty"`
	// Width and Height are zero for inactive nodes.
	Width    int           `json:"width"`
	Height   int           `json:"height"`
	Children []NodeSummary `json:"children,omitempty"`
}

// LayoutSummary is a structured view of a layout engine.
type LayoutSummary struct {
	Theme    string      `json:"theme"`
	Width    int         `json:"width"`
	Height   int         `json:"height"`
	Embedded []string    `json:"embedded"`
	Detached []string    `json:"detached"`
	Root     NodeSummary `json:"root"`
}

// Find returns the summary of the named pane.
func (n NodeSummary) Find(name string) (NodeSummary, bool) {
	if n.Kind == NodePane {
		if n.Name == name {
			return n, true
		}
		return NodeSummary{}, false
	}
	for _, child := range n.Children {
		if found, ok := child.Find(name); ok {
			return found, true
		}
	}
	return NodeSummary{}, false
}
