package layout

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrNilRoot is returned when attempting to build from a nil root node.
var ErrNilRoot = errors.New("root node is nil")

// ErrDuplicateName is returned when two panes in one tree share a name.
var ErrDuplicateName = errors.New("duplicate pane name")

// ErrInvalidWeight is returned for weights that are not positive finite numbers.
var ErrInvalidWeight = errors.New("weight must be a positive number")

// ErrInvalidTree is returned for structurally broken trees (empty names,
// nil children, a container reachable twice).
var ErrInvalidTree = errors.New("invalid layout tree")

// Direction is the axis along which a container distributes its children.
type Direction int

const (
	DirectionRow    Direction = iota // Children side by side, widths weighted
	DirectionColumn                  // Children stacked, heights weighted
)

func (d Direction) String() string {
	if d == DirectionColumn {
		return "column"
	}
	return "row"
}

// Orientation maps the direction to a box orientation.
func (d Direction) Orientation() Orientation {
	if d == DirectionColumn {
		return OrientationVertical
	}
	return OrientationHorizontal
}

// ParseDirection accepts "row"/"horizontal" and "column"/"vertical".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "row", "horizontal":
		return DirectionRow, nil
	case "column", "col", "vertical":
		return DirectionColumn, nil
	default:
		return DirectionRow, fmt.Errorf("unknown direction %q", s)
	}
}

// ContentBuilder populates a pane's content region. It is called exactly once
// per surface creation, embedded or floating. A returned error aborts the
// surface build.
type ContentBuilder func(ctx context.Context, content BoxWidget) error

// FloatingOptions controls how a pane looks once detached.
// Zero sizes and a nil CustomTitlebar fall back to the engine defaults.
type FloatingOptions struct {
	DefaultWidth   int
	DefaultHeight  int
	MinWidth       int
	MinHeight      int
	CustomTitlebar *bool
	Scrollable     bool
}

// Titlebar reports whether the floating window draws its own titlebar.
func (o FloatingOptions) Titlebar(fallback bool) bool {
	if o.CustomTitlebar != nil {
		return *o.CustomTitlebar
	}
	return fallback
}

// Node is either a *Pane or a *Container.
type Node interface {
	NodeWeight() float64
	isNode()
}

// Pane describes one leaf of the layout tree.
type Pane struct {
	Name       string // Registry key, never changes
	Title      string
	Icon       string
	Weight     float64
	MinSize    int // Advisory, along the parent's axis
	MaxSize    int // Advisory, 0 means unbounded
	Detachable bool
	Builder    ContentBuilder
	Floating   FloatingOptions
}

// NewPane creates a detachable pane with weight 1.
func NewPane(name, title string, builder ContentBuilder) *Pane {
	return &Pane{
		Name:       name,
		Title:      title,
		Weight:     1,
		Detachable: true,
		Builder:    builder,
	}
}

// NodeWeight implements Node.
func (p *Pane) NodeWeight() float64 { return p.Weight }

func (*Pane) isNode() {}

// DisplayTitle returns the title, falling back to the name.
func (p *Pane) DisplayTitle() string {
	if p.Title != "" {
		return p.Title
	}
	return p.Name
}

// Container distributes space among its children along Direction.
type Container struct {
	ID        string // Optional stable key for persisted weights
	Direction Direction
	Weight    float64
	Children  []Node
}

// NewContainer creates a container with weight 1.
func NewContainer(dir Direction, children ...Node) *Container {
	return &Container{
		Direction: dir,
		Weight:    1,
		Children:  children,
	}
}

// Row is shorthand for NewContainer(DirectionRow, ...).
func Row(children ...Node) *Container { return NewContainer(DirectionRow, children...) }

// Column is shorthand for NewContainer(DirectionColumn, ...).
func Column(children ...Node) *Container { return NewContainer(DirectionColumn, children...) }

// NodeWeight implements Node.
func (c *Container) NodeWeight() float64 { return c.Weight }

func (*Container) isNode() {}

// ChildPath returns the persisted key of a container child: its ID when set,
// otherwise the parent path plus its index.
func ChildPath(parentPath string, index int, child *Container) string {
	if child != nil && child.ID != "" {
		return child.ID
	}
	return parentPath + "/" + strconv.Itoa(index)
}

// RootPath returns the persisted key of the root container.
func RootPath(root *Container) string {
	if root != nil && root.ID != "" {
		return root.ID
	}
	return "root"
}

// Walk visits every node depth-first in child order. path is the container
// key for containers and the parent's key for panes. Returning false from fn
// skips the node's subtree.
func Walk(root *Container, fn func(node Node, path string) bool) {
	if root == nil {
		return
	}
	walk(root, RootPath(root), fn)
}

func walk(c *Container, path string, fn func(Node, string) bool) {
	if !fn(c, path) {
		return
	}
	for i, child := range c.Children {
		switch n := child.(type) {
		case *Container:
			walk(n, ChildPath(path, i, n), fn)
		case *Pane:
			fn(n, path)
		}
	}
}

// Registry is the flat name -> pane index of a tree.
type Registry struct {
	panes map[string]*Pane
	order []string
}

// NewRegistry validates the tree and indexes its panes.
func NewRegistry(root *Container) (*Registry, error) {
	if root == nil {
		return nil, ErrNilRoot
	}

	r := &Registry{panes: make(map[string]*Pane)}
	seen := &containerSet{
		nodes: make(map[*Container]bool),
		paths: make(map[string]bool),
	}
	if err := r.collect(root, RootPath(root), seen); err != nil {
		return nil, err
	}
	return r, nil
}

// containerSet tracks containers already visited by collect, by identity and
// by persisted key.
type containerSet struct {
	nodes map[*Container]bool
	paths map[string]bool
}

func (r *Registry) collect(c *Container, path string, seen *containerSet) error {
	if seen.nodes[c] {
		return fmt.Errorf("%w: container %s appears more than once", ErrInvalidTree, path)
	}
	if seen.paths[path] {
		return fmt.Errorf("%w: container key %q is used more than once", ErrInvalidTree, path)
	}
	seen.nodes[c] = true
	seen.paths[path] = true

	if !validWeight(c.Weight) {
		return fmt.Errorf("%w: container %s has weight %v", ErrInvalidWeight, path, c.Weight)
	}

	for i, child := range c.Children {
		switch n := child.(type) {
		case *Container:
			if n == nil {
				return fmt.Errorf("%w: nil container at %s/%d", ErrInvalidTree, path, i)
			}
			if err := r.collect(n, ChildPath(path, i, n), seen); err != nil {
				return err
			}
		case *Pane:
			if n == nil {
				return fmt.Errorf("%w: nil pane at %s/%d", ErrInvalidTree, path, i)
			}
			if err := r.add(n, path); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: unsupported node at %s/%d", ErrInvalidTree, path, i)
		}
	}
	return nil
}

func (r *Registry) add(p *Pane, path string) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: pane without name in %s", ErrInvalidTree, path)
	}
	if _, exists := r.panes[p.Name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateName, p.Name)
	}
	if !validWeight(p.Weight) {
		return fmt.Errorf("%w: pane %q has weight %v", ErrInvalidWeight, p.Name, p.Weight)
	}
	r.panes[p.Name] = p
	r.order = append(r.order, p.Name)
	return nil
}

// Lookup returns the pane registered under name.
func (r *Registry) Lookup(name string) (*Pane, bool) {
	p, ok := r.panes[name]
	return p, ok
}

// Names returns all pane names in tree order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Len returns the number of panes.
func (r *Registry) Len() int {
	return len(r.order)
}

// ValidWeight reports whether w can be used as a sizing weight.
func ValidWeight(w float64) bool {
	return validWeight(w)
}

func validWeight(w float64) bool {
	return w > 0 && !math.IsInf(w, 0) && !math.IsNaN(w)
}
