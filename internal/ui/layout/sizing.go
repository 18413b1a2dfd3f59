package layout

import "math"

// floorEpsilon absorbs float error so shares like 1000*0.6/0.8 land on 750
// rather than 749.
const floorEpsilon = 1e-9

// DetachedFunc reports whether a pane is currently floating.
type DetachedFunc func(name string) bool

// NoneDetached treats every pane as embedded.
func NoneDetached(string) bool { return false }

// IsActive reports whether a node takes part in embedded layout: an embedded
// pane, or a container with at least one embedded pane below it.
func IsActive(n Node, detached DetachedFunc) bool {
	if detached == nil {
		detached = NoneDetached
	}
	switch node := n.(type) {
	case *Pane:
		return node != nil && !detached(node.Name)
	case *Container:
		if node == nil {
			return false
		}
		for _, child := range node.Children {
			if IsActive(child, detached) {
				return true
			}
		}
	}
	return false
}

// ActiveChildren returns the direct children of c that are active, in order.
func ActiveChildren(c *Container, detached DetachedFunc) []Node {
	if c == nil {
		return nil
	}
	active := make([]Node, 0, len(c.Children))
	for _, child := range c.Children {
		if IsActive(child, detached) {
			active = append(active, child)
		}
	}
	return active
}

// Allocation is the main-axis extent given to one active child.
type Allocation struct {
	Node   Node
	Extent int
}

// Allocate splits available among the active children of c in proportion
// to their weights. Extents always sum to available exactly: the rounding
// remainder goes to the first child. An empty active set yields nil.
// MinSize/MaxSize are not enforced here.
func Allocate(c *Container, detached DetachedFunc, available int) []Allocation {
	active := ActiveChildren(c, detached)
	if len(active) == 0 {
		return nil
	}
	if available < 0 {
		available = 0
	}

	var sum float64
	for _, child := range active {
		sum += child.NodeWeight()
	}

	allocs := make([]Allocation, len(active))
	total := 0
	for i, child := range active {
		share := child.NodeWeight() / sum
		extent := int(math.Floor(float64(available)*share + floorEpsilon))
		allocs[i] = Allocation{Node: child, Extent: extent}
		total += extent
	}
	allocs[0].Extent += available - total

	return allocs
}

// Placement is the computed geometry of one active node.
type Placement struct {
	Node     Node
	Path     string // Container key; for panes the key of the parent container
	Width    int
	Height   int
	Children []Placement
}

// Pane returns the placed pane, or nil for containers.
func (p Placement) Pane() *Pane {
	pane, _ := p.Node.(*Pane)
	return pane
}

// Container returns the placed container, or nil for panes.
func (p Placement) Container() *Container {
	c, _ := p.Node.(*Container)
	return c
}

// Plan lays out root over width x height. Children fill the full cross axis
// of their container.
func Plan(root *Container, detached DetachedFunc, width, height int) Placement {
	if root == nil {
		return Placement{}
	}
	return planContainer(root, RootPath(root), detached, width, height)
}

func planContainer(c *Container, path string, detached DetachedFunc, width, height int) Placement {
	placement := Placement{Node: c, Path: path, Width: width, Height: height}

	mainExtent := width
	if c.Direction == DirectionColumn {
		mainExtent = height
	}

	allocs := Allocate(c, detached, mainExtent)
	if len(allocs) == 0 {
		return placement
	}

	index := childIndex(c)
	placement.Children = make([]Placement, 0, len(allocs))
	for _, alloc := range allocs {
		w, h := alloc.Extent, height
		if c.Direction == DirectionColumn {
			w, h = width, alloc.Extent
		}

		switch n := alloc.Node.(type) {
		case *Container:
			placement.Children = append(placement.Children,
				planContainer(n, ChildPath(path, index[n], n), detached, w, h))
		case *Pane:
			placement.Children = append(placement.Children,
				Placement{Node: n, Path: path, Width: w, Height: h})
		}
	}
	return placement
}

func childIndex(c *Container) map[Node]int {
	index := make(map[Node]int, len(c.Children))
	for i, child := range c.Children {
		index[child] = i
	}
	return index
}

// Find returns the placement of the named pane within p.
func (p Placement) Find(name string) (Placement, bool) {
	if pane := p.Pane(); pane != nil {
		if pane.Name == name {
			return p, true
		}
		return Placement{}, false
	}
	for _, child := range p.Children {
		if found, ok := child.Find(name); ok {
			return found, true
		}
	}
	return Placement{}, false
}

// MinimumSize sums the MinSize hints of active panes along each container's
// axis and takes the maximum across it. Used as a size floor for the host.
func MinimumSize(root *Container, detached DetachedFunc) (width, height int) {
	if root == nil || !IsActive(root, detached) {
		return 0, 0
	}
	return minExtent(root, root.Direction, detached)
}

func minExtent(n Node, parentDir Direction, detached DetachedFunc) (width, height int) {
	switch node := n.(type) {
	case *Pane:
		if parentDir == DirectionColumn {
			return 0, node.MinSize
		}
		return node.MinSize, 0
	case *Container:
		for _, child := range ActiveChildren(node, detached) {
			cw, ch := minExtent(child, node.Direction, detached)
			if node.Direction == DirectionColumn {
				height += ch
				width = max(width, cw)
			} else {
				width += cw
				height = max(height, ch)
			}
		}
	}
	return width, height
}
