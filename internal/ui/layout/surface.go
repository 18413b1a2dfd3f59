package layout

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/dockpane/internal/logging"
	"github.com/rs/zerolog"
)

// ErrBuilderFailure marks errors returned by a pane's content builder.
var ErrBuilderFailure = errors.New("content builder failed")

// BuilderError wraps a content builder error with the pane it came from.
// It matches both ErrBuilderFailure and the builder's own error.
type BuilderError struct {
	Pane string
	Err  error
}

func (e *BuilderError) Error() string {
	return fmt.Sprintf("content builder for pane %q failed: %v", e.Pane, e.Err)
}

func (e *BuilderError) Unwrap() []error {
	return []error{ErrBuilderFailure, e.Err}
}

// CSS classes set on built widgets.
const (
	ClassPane        = "pane"
	ClassPaneContent = "pane-content"
	ClassFloating    = "pane-floating"
	ClassDetach      = "pane-detach"
	ClassReattach    = "pane-reattach"
)

// Icon names used for header controls.
const (
	IconDetach   = "window-new-symbolic"
	IconReattach = "view-restore-symbolic"
)

// Surface is the widget set materialized for one pane.
type Surface struct {
	Name           string
	Root           BoxWidget
	Header         BoxWidget      // nil for floating panes without a custom titlebar
	Title          LabelWidget    // nil when Header is nil
	Icon           ImageWidget    // nil when the pane has no icon
	DetachButton   ButtonWidget   // embedded detachable panes only
	ReattachButton ButtonWidget   // floating panes with a custom titlebar only
	Separator      Widget         // nil when Header is nil
	Scroller       ScrolledWidget // floating scrollable panes only
	Content        BoxWidget
}

// resetContent swaps the content region for a fresh empty one.
func (s *Surface) resetContent(factory WidgetFactory) {
	fresh := newContentBox(factory)
	if s.Scroller != nil {
		s.Scroller.SetChild(fresh)
	} else {
		s.Root.Remove(s.Content)
		s.Root.Append(fresh)
	}
	s.Content = fresh
}

// SurfaceOptions controls builder geometry.
type SurfaceOptions struct {
	HeaderHeight  int
	SeparatorSize int
}

// DefaultSurfaceOptions returns a 28px header and a one-pixel separator.
func DefaultSurfaceOptions() SurfaceOptions {
	return SurfaceOptions{HeaderHeight: 28, SeparatorSize: 1}
}

// SurfaceBuilder materializes the embedded part of a layout tree into widgets.
// It keeps a lookup from pane name to surface and from container key to box,
// both replaced on every Build. Not safe for concurrent use; call it from the
// UI thread.
type SurfaceBuilder struct {
	factory WidgetFactory
	styler  Styler
	opts    SurfaceOptions
	logger  zerolog.Logger

	root       BoxWidget
	placement  Placement
	surfaces   map[string]*Surface
	containers map[string]BoxWidget
	onDetach   func(name string)
}

// NewSurfaceBuilder creates a builder. styler may be nil.
func NewSurfaceBuilder(ctx context.Context, factory WidgetFactory, styler Styler, opts SurfaceOptions) *SurfaceBuilder {
	log := logging.FromContext(ctx)
	log.Debug().Msg("creating surface builder")

	if opts.SeparatorSize <= 0 {
		opts.SeparatorSize = 1
	}

	return &SurfaceBuilder{
		factory:    factory,
		styler:     styler,
		opts:       opts,
		logger:     log.With().Str("component", "surface-builder").Logger(),
		surfaces:   make(map[string]*Surface),
		containers: make(map[string]BoxWidget),
	}
}

// SetOnDetach sets the handler invoked by detach buttons. The builder never
// changes the tree itself.
func (b *SurfaceBuilder) SetOnDetach(fn func(name string)) {
	b.onDetach = fn
}

// Build tears down the previous widgets, plans root over width x height and
// builds one surface per active pane into host. A failing content builder
// stops the build; the surface built so far stays attached with an empty
// content region and the BuilderError is returned.
func (b *SurfaceBuilder) Build(ctx context.Context, host BoxWidget, root *Container, detached DetachedFunc, width, height int) (Placement, error) {
	if root == nil {
		return Placement{}, ErrNilRoot
	}

	b.Teardown(host)

	placement := Plan(root, detached, width, height)
	b.placement = placement

	rootBox := b.factory.NewBox(root.Direction.Orientation(), 0)
	rootBox.SetHexpand(true)
	rootBox.SetVexpand(true)
	rootBox.SetSizeRequest(width, height)
	b.root = rootBox
	b.containers[placement.Path] = rootBox
	b.styleElement(ctx, rootBox)
	host.Append(rootBox)

	minWidth, minHeight := MinimumSize(root, detached)
	host.SetSizeRequest(minWidth, minHeight)

	err := b.buildChildren(ctx, rootBox, placement)

	b.logger.Debug().
		Int("width", width).
		Int("height", height).
		Int("surfaces", len(b.surfaces)).
		Int("containers", len(b.containers)).
		Bool("failed", err != nil).
		Msg("surfaces rebuilt")

	return placement, err
}

func (b *SurfaceBuilder) buildChildren(ctx context.Context, box BoxWidget, placement Placement) error {
	for _, child := range placement.Children {
		switch n := child.Node.(type) {
		case *Container:
			childBox := b.factory.NewBox(n.Direction.Orientation(), 0)
			childBox.SetSizeRequest(child.Width, child.Height)
			b.containers[child.Path] = childBox
			b.styleElement(ctx, childBox)
			box.Append(childBox)
			if err := b.buildChildren(ctx, childBox, child); err != nil {
				return err
			}
		case *Pane:
			surface, err := b.buildPane(ctx, n, child)
			box.Append(surface.Root)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func (b *SurfaceBuilder) buildPane(ctx context.Context, pane *Pane, placement Placement) (*Surface, error) {
	surface := b.newEmbeddedSurface(pane)
	surface.Root.SetSizeRequest(placement.Width, placement.Height)
	b.surfaces[pane.Name] = surface

	err := b.fill(ctx, surface, pane)
	if b.styler != nil {
		b.styler.Apply(ctx, surface.Root)
	}
	return surface, err
}

// BuildFloating builds the surface placed inside a floating window. The
// surface is not tracked by the builder and survives Build/Teardown. With a
// custom titlebar, onReattach is wired to its reattach button.
func (b *SurfaceBuilder) BuildFloating(ctx context.Context, pane *Pane, customTitlebar bool, onReattach func()) (*Surface, error) {
	root := b.factory.NewBox(OrientationVertical, 0)
	root.AddCssClass(ClassPane)
	root.AddCssClass(ClassFloating)
	root.SetHexpand(true)
	root.SetVexpand(true)

	surface := &Surface{Name: pane.Name, Root: root}

	if customTitlebar {
		b.addHeader(surface, pane)
		button := b.factory.NewButton()
		button.SetIconName(IconReattach)
		button.SetTooltipText("Reattach")
		button.AddCssClass(ClassReattach)
		button.ConnectClicked(func() {
			if onReattach != nil {
				onReattach()
			}
		})
		surface.Header.Append(button)
		surface.ReattachButton = button
	}

	surface.Content = newContentBox(b.factory)
	if pane.Floating.Scrollable {
		surface.Scroller = b.factory.NewScrolled()
		surface.Scroller.SetHexpand(true)
		surface.Scroller.SetVexpand(true)
		surface.Scroller.SetChild(surface.Content)
		root.Append(surface.Scroller)
	} else {
		root.Append(surface.Content)
	}

	return surface, b.fill(ctx, surface, pane)
}

func (b *SurfaceBuilder) newEmbeddedSurface(pane *Pane) *Surface {
	root := b.factory.NewBox(OrientationVertical, 0)
	root.AddCssClass(ClassPane)
	root.SetHexpand(true)
	root.SetVexpand(true)

	surface := &Surface{Name: pane.Name, Root: root}
	b.addHeader(surface, pane)

	if pane.Detachable {
		name := pane.Name
		button := b.factory.NewButton()
		button.SetIconName(IconDetach)
		button.SetTooltipText("Detach")
		button.AddCssClass(ClassDetach)
		button.ConnectClicked(func() {
			if b.onDetach != nil {
				b.onDetach(name)
			}
		})
		surface.Header.Append(button)
		surface.DetachButton = button
	}

	surface.Content = newContentBox(b.factory)
	root.Append(surface.Content)
	return surface
}

// addHeader appends the header strip and its separator to surface.Root.
func (b *SurfaceBuilder) addHeader(surface *Surface, pane *Pane) {
	header := b.factory.NewHeader()
	header.SetHexpand(true)
	header.SetSizeRequest(-1, b.opts.HeaderHeight)

	if pane.Icon != "" {
		icon := b.factory.NewImage()
		icon.SetFromIconName(pane.Icon)
		icon.SetPixelSize(16)
		header.Append(icon)
		surface.Icon = icon
	}

	title := b.factory.NewLabel(pane.DisplayTitle())
	title.SetHexpand(true)
	header.Append(title)

	separator := b.factory.NewSeparator(OrientationHorizontal)
	separator.SetSizeRequest(-1, b.opts.SeparatorSize)

	surface.Root.Append(header)
	surface.Root.Append(separator)
	surface.Header = header
	surface.Title = title
	surface.Separator = separator
}

// fill runs the pane's content builder once. On failure the content region
// is replaced by an empty one.
func (b *SurfaceBuilder) fill(ctx context.Context, surface *Surface, pane *Pane) error {
	if pane.Builder == nil {
		return nil
	}
	if err := pane.Builder(logging.WithPaneName(ctx, pane.Name), surface.Content); err != nil {
		surface.resetContent(b.factory)
		b.logger.Error().Err(err).Str("pane", pane.Name).Msg("content builder failed")
		return &BuilderError{Pane: pane.Name, Err: err}
	}
	return nil
}

func newContentBox(factory WidgetFactory) BoxWidget {
	content := factory.NewBox(OrientationVertical, 0)
	content.SetHexpand(true)
	content.SetVexpand(true)
	content.AddCssClass(ClassPaneContent)
	return content
}

func (b *SurfaceBuilder) styleElement(ctx context.Context, w Widget) {
	if b.styler != nil {
		b.styler.ApplyElement(ctx, w)
	}
}

// Teardown detaches the built root from host and forgets all surfaces.
func (b *SurfaceBuilder) Teardown(host BoxWidget) {
	if b.root != nil && host != nil {
		host.Remove(b.root)
	}
	b.root = nil
	b.placement = Placement{}
	b.surfaces = make(map[string]*Surface)
	b.containers = make(map[string]BoxWidget)
}

// Root returns the root box of the last build.
func (b *SurfaceBuilder) Root() BoxWidget {
	return b.root
}

// Placement returns the geometry computed by the last build.
func (b *SurfaceBuilder) Placement() Placement {
	return b.placement
}

// Surface finds the embedded surface of a pane.
func (b *SurfaceBuilder) Surface(name string) (*Surface, bool) {
	s, ok := b.surfaces[name]
	return s, ok
}

// Container finds the box built for a container key.
func (b *SurfaceBuilder) Container(path string) (BoxWidget, bool) {
	box, ok := b.containers[path]
	return box, ok
}

// SurfaceCount returns the number of embedded surfaces currently built.
func (b *SurfaceBuilder) SurfaceCount() int {
	return len(b.surfaces)
}
