package theme

import "sync"

// Styler applies a record to one element of a known category.
// Stylers must be pure: the result depends only on the element's category
// and the record, so re-applying a record never drifts.
type Styler func(el Element, rec *Record)

// Dispatcher maps element categories to stylers and walks element trees.
// Elements whose category has no styler are left untouched.
type Dispatcher struct {
	mu      sync.RWMutex
	stylers map[Category]Styler
}

// NewDispatcher returns a dispatcher preloaded with the built-in stylers.
func NewDispatcher() *Dispatcher {
	d := &Dispatcher{stylers: make(map[Category]Styler, len(builtinStylers))}
	for cat, fn := range builtinStylers {
		d.stylers[cat] = fn
	}
	return d
}

// Register adds or replaces the styler for a category.
func (d *Dispatcher) Register(cat Category, fn Styler) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if fn == nil {
		delete(d.stylers, cat)
		return
	}
	d.stylers[cat] = fn
}

// Styler returns the styler registered for a category.
func (d *Dispatcher) Styler(cat Category) (Styler, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	fn, ok := d.stylers[cat]
	return fn, ok
}

// Apply styles root and all its descendants. A SelfStyler styles itself
// through ApplyOwnTheme instead of its category styler; its Children should
// only list hosted content, never its internal parts, so those are never
// styled twice. Returns the number of elements that received a style.
func (d *Dispatcher) Apply(root Element, rec *Record) int {
	if root == nil || rec == nil {
		return 0
	}

	styled := d.ApplyElement(root, rec)
	for _, child := range root.Children() {
		styled += d.Apply(child, rec)
	}
	return styled
}

// ApplyElement styles a single element without visiting its children.
func (d *Dispatcher) ApplyElement(el Element, rec *Record) int {
	if el == nil || rec == nil {
		return 0
	}

	if self, ok := el.(SelfStyler); ok {
		self.ApplyOwnTheme(rec)
		return 1
	}

	fn, ok := d.Styler(el.Category())
	if !ok {
		return 0
	}
	fn(el, rec)
	return 1
}
