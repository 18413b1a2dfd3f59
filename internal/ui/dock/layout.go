// Package dock is the layout engine: it owns the pane registry and the
// detached set, rebuilds the embedded surfaces whenever the active set
// changes, manages floating windows and propagates themes to all of them.
//
// A Layout is not safe for concurrent use. Every method, and every callback
// it wires into widgets, runs on the UI thread.
package dock

import (
	"context"
	"fmt"

	"github.com/bnema/dockpane/internal/logging"
	"github.com/bnema/dockpane/internal/ui/layout"
	"github.com/bnema/dockpane/internal/ui/theme"
	"github.com/rs/zerolog"
)

// Layout is a pane tree bound to a host container.
type Layout struct {
	ctx    context.Context // carries the logger for widget callbacks
	logger zerolog.Logger

	host       layout.BoxWidget
	root       *layout.Container
	registry   *layout.Registry
	containers map[string]*layout.Container
	builder    *layout.SurfaceBuilder
	opts       options

	// detached is the authoritative floating subset; order is detach order.
	detached map[string]*floatingPane
	order    []string

	width, height int
	sized         bool
	closed        bool
}

// New validates root, resolves themeName, and builds the embedded surfaces
// into host. An empty themeName keeps the manager's current theme, or dark.
//
// Invalid trees (duplicate names, bad weights) return a nil Layout. When a
// content builder fails, the partially built Layout is returned together
// with the error so the host can show or close it.
func New(ctx context.Context, host layout.BoxWidget, root *layout.Container, themeName string, opts ...Option) (*Layout, error) {
	if host == nil {
		return nil, fmt.Errorf("%w: host container is nil", layout.ErrInvalidTree)
	}

	registry, err := layout.NewRegistry(root)
	if err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	o.fillToolkit()

	ctx = logging.WithComponent(ctx, "dock")
	l := &Layout{
		ctx:        ctx,
		logger:     *logging.FromContext(ctx),
		host:       host,
		root:       root,
		registry:   registry,
		containers: indexContainers(root),
		opts:       o,
		detached:   make(map[string]*floatingPane),
	}

	if themeName == "" && o.themes.Current() == nil {
		themeName = theme.NameDark
	}
	if themeName != "" {
		if _, err := o.themes.SetTheme(ctx, themeName); err != nil {
			return nil, err
		}
	}

	l.builder = layout.NewSurfaceBuilder(ctx, o.widgets, o.themes, o.surface)
	l.builder.SetOnDetach(l.onDetachRequested)

	l.logger.Info().
		Int("panes", registry.Len()).
		Int("containers", len(l.containers)).
		Str("theme", l.ThemeName()).
		Msg("layout created")

	if err := l.rebuild(ctx); err != nil {
		return l, err
	}
	return l, nil
}

func indexContainers(root *layout.Container) map[string]*layout.Container {
	index := make(map[string]*layout.Container)
	layout.Walk(root, func(node layout.Node, path string) bool {
		if c, ok := node.(*layout.Container); ok {
			index[path] = c
		}
		return true
	})
	return index
}

// isDetached is the active-set filter handed to the sizing algorithm.
func (l *Layout) isDetached(name string) bool {
	_, ok := l.detached[name]
	return ok
}

func (l *Layout) hostSize() (int, int) {
	if l.sized {
		return l.width, l.height
	}
	width, height := l.host.GetAllocatedWidth(), l.host.GetAllocatedHeight()
	if width <= 0 {
		width = l.opts.fallbackWidth
	}
	if height <= 0 {
		height = l.opts.fallbackHeight
	}
	return width, height
}

func (l *Layout) rebuild(ctx context.Context) error {
	width, height := l.hostSize()
	_, err := l.builder.Build(ctx, l.host, l.root, l.isDetached, width, height)

	logging.FromContext(ctx).Debug().
		Int("width", width).
		Int("height", height).
		Int("embedded", l.builder.SurfaceCount()).
		Int("detached", len(l.detached)).
		Msg("layout rebuilt")
	return err
}

// Rebuild tears down and rebuilds the embedded surfaces, re-running every
// embedded pane's content builder.
func (l *Layout) Rebuild(ctx context.Context) error {
	if l.closed {
		return ErrClosed
	}
	return l.rebuild(ctx)
}

// Resize sets the extent distributed by the sizing algorithm and rebuilds.
func (l *Layout) Resize(ctx context.Context, width, height int) error {
	if l.closed {
		return ErrClosed
	}
	if width < 0 || height < 0 {
		return fmt.Errorf("invalid host size %dx%d", width, height)
	}
	l.width, l.height, l.sized = width, height, true
	return l.rebuild(ctx)
}

// Size returns the extent used by the last rebuild.
func (l *Layout) Size() (width, height int) {
	p := l.builder.Placement()
	return p.Width, p.Height
}

// SetPaneWeight changes a pane's share among its siblings and rebuilds.
func (l *Layout) SetPaneWeight(ctx context.Context, name string, weight float64) error {
	if l.closed {
		return ErrClosed
	}
	pane, ok := l.registry.Lookup(name)
	if !ok {
		return paneError("set weight", name, ErrUnknownPane)
	}
	if !layout.ValidWeight(weight) {
		return paneError("set weight", name, fmt.Errorf("%w: %v", layout.ErrInvalidWeight, weight))
	}
	pane.Weight = weight
	return l.rebuild(ctx)
}

// SetContainerWeight changes a container's share within its parent and rebuilds.
// key is the container ID, else its index path (root/1).
func (l *Layout) SetContainerWeight(ctx context.Context, key string, weight float64) error {
	if l.closed {
		return ErrClosed
	}
	c, ok := l.containers[key]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownContainer, key)
	}
	if !layout.ValidWeight(weight) {
		return fmt.Errorf("%w: container %q: %v", layout.ErrInvalidWeight, key, weight)
	}
	c.Weight = weight
	return l.rebuild(ctx)
}

// UpdatePaneTitle changes a pane's title in place, without rebuilding.
func (l *Layout) UpdatePaneTitle(_ context.Context, name, title string) error {
	pane, ok := l.registry.Lookup(name)
	if !ok {
		return paneError("update title", name, ErrUnknownPane)
	}
	pane.Title = title

	if s, ok := l.builder.Surface(name); ok && s.Title != nil {
		s.Title.SetText(pane.DisplayTitle())
	}
	if f, ok := l.detached[name]; ok {
		f.window.SetTitle(pane.DisplayTitle())
		if f.surface.Title != nil {
			f.surface.Title.SetText(pane.DisplayTitle())
		}
	}
	return nil
}

// ApplyTheme makes name the active theme and restyles the embedded tree and
// every floating window. An unresolvable name leaves the current theme.
func (l *Layout) ApplyTheme(ctx context.Context, name string) error {
	if _, err := l.opts.themes.SetTheme(ctx, name); err != nil {
		return err
	}
	styled := l.RefreshTheme(ctx)

	logging.FromContext(logging.WithTheme(ctx, name)).Info().
		Int("styled", styled).
		Int("floating", len(l.detached)).
		Msg("theme applied")
	return nil
}

// RefreshTheme re-applies the active theme to the host tree and every
// floating window without re-running content builders. It returns the
// number of elements styled.
func (l *Layout) RefreshTheme(ctx context.Context) int {
	styled := l.opts.themes.Apply(ctx, l.host)
	for _, name := range l.order {
		styled += l.opts.themes.Apply(ctx, l.detached[name].window)
	}
	return styled
}

// ThemeName returns the active theme name.
func (l *Layout) ThemeName() string {
	if rec := l.opts.themes.Current(); rec != nil {
		return rec.Name
	}
	return ""
}

// ThemeManager returns the layout's theme context.
func (l *Layout) ThemeManager() *theme.Manager {
	return l.opts.themes
}

// PaneSurface returns the surface currently showing a pane: the embedded
// one, or the floating one while detached. It is nil when the surface was
// not built, e.g. after an earlier content builder failed.
func (l *Layout) PaneSurface(name string) (*layout.Surface, error) {
	if _, ok := l.registry.Lookup(name); !ok {
		return nil, paneError("get surface", name, ErrUnknownPane)
	}
	if f, ok := l.detached[name]; ok {
		return f.surface, nil
	}
	s, _ := l.builder.Surface(name)
	return s, nil
}

// PaneDescriptor returns a copy of a pane's descriptor.
func (l *Layout) PaneDescriptor(name string) (layout.Pane, bool) {
	pane, ok := l.registry.Lookup(name)
	if !ok {
		return layout.Pane{}, false
	}
	return *pane, true
}

// PaneNames returns every pane name in tree order.
func (l *Layout) PaneNames() []string {
	return l.registry.Names()
}

// DetachedPaneNames returns the floating panes in tree order.
func (l *Layout) DetachedPaneNames() []string {
	return l.filterNames(true)
}

// EmbeddedPaneNames returns the embedded panes in tree order.
func (l *Layout) EmbeddedPaneNames() []string {
	return l.filterNames(false)
}

func (l *Layout) filterNames(detached bool) []string {
	names := make([]string, 0, l.registry.Len())
	for _, name := range l.registry.Names() {
		if l.isDetached(name) == detached {
			names = append(names, name)
		}
	}
	return names
}

// IsDetached reports whether a pane is floating.
func (l *Layout) IsDetached(name string) bool {
	return l.isDetached(name)
}

// FloatingWindow returns the window of a floating pane.
func (l *Layout) FloatingWindow(name string) (layout.Window, bool) {
	f, ok := l.detached[name]
	if !ok {
		return nil, false
	}
	return f.window, true
}

// Close destroys every floating window and removes the embedded surfaces
// from the host. Closing twice is a no-op.
func (l *Layout) Close(ctx context.Context) {
	if l.closed {
		return
	}
	l.closed = true

	for _, name := range l.order {
		l.opts.windows.DestroyWindow(l.detached[name].window)
	}
	l.detached = make(map[string]*floatingPane)
	l.order = nil
	l.builder.Teardown(l.host)

	logging.FromContext(ctx).Debug().Msg("layout closed")
}
