package dock

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/bnema/dockpane/internal/logging"
	"github.com/bnema/dockpane/internal/ui/layout"
)

type floatingPane struct {
	pane    *layout.Pane
	window  layout.Window
	surface *layout.Surface
	slot    int // cascade slot held while floating
}

// Detach moves a pane into its own floating window and rebuilds the
// embedded tree so its siblings take over the freed space.
//
// changed is false with a nil error when the pane is not detachable or is
// already floating. On error the pane stays embedded and no window is left
// behind.
func (l *Layout) Detach(ctx context.Context, name string) (changed bool, err error) {
	if l.closed {
		return false, ErrClosed
	}
	pane, ok := l.registry.Lookup(name)
	if !ok {
		return false, paneError("detach", name, ErrUnknownPane)
	}

	log := logging.FromContext(logging.WithPaneName(ctx, name))
	if !pane.Detachable {
		log.Debug().Msg("pane is not detachable, ignoring detach")
		return false, nil
	}
	if l.isDetached(name) {
		log.Debug().Msg("pane already floating")
		return false, nil
	}

	f, err := l.openFloating(ctx, pane)
	if err != nil {
		log.Error().Err(err).Msg("detach aborted")
		return false, paneError("detach", name, err)
	}

	l.detached[name] = f
	l.order = append(l.order, name)

	if err := l.rebuild(ctx); err != nil {
		l.dropFloating(name)
		if rbErr := l.rebuild(ctx); rbErr != nil {
			log.Error().Err(rbErr).Msg("rebuild after detach rollback failed")
		}
		return false, paneError("detach", name, err)
	}

	l.opts.themes.Apply(ctx, f.window)
	f.window.Present()

	x, y := f.window.GetPosition()
	log.Info().
		Int("x", x).
		Int("y", y).
		Int("floating", len(l.detached)).
		Msg("pane detached")
	return true, nil
}

// Reattach destroys a pane's floating window and returns the pane to its
// place in the tree. changed is false with a nil error when the pane is
// already embedded. A content builder failure during the rebuild is
// returned, but the pane stays embedded.
func (l *Layout) Reattach(ctx context.Context, name string) (changed bool, err error) {
	if l.closed {
		return false, ErrClosed
	}
	if _, ok := l.registry.Lookup(name); !ok {
		return false, paneError("reattach", name, ErrUnknownPane)
	}

	log := logging.FromContext(logging.WithPaneName(ctx, name))
	if !l.isDetached(name) {
		log.Debug().Msg("pane already embedded")
		return false, nil
	}

	l.dropFloating(name)

	if err := l.rebuild(ctx); err != nil {
		log.Error().Err(err).Msg("rebuild after reattach failed")
		return true, paneError("reattach", name, err)
	}

	log.Info().Int("floating", len(l.detached)).Msg("pane reattached")
	return true, nil
}

// openFloating creates, fills and positions the window for pane. Nothing is
// registered; on failure the window is destroyed.
func (l *Layout) openFloating(ctx context.Context, pane *layout.Pane) (*floatingPane, error) {
	spec := l.windowSpec(pane)
	win, err := l.opts.windows.CreateWindow(spec)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWindowCreate, err)
	}
	if win == nil {
		return nil, fmt.Errorf("%w: factory returned no window", ErrWindowCreate)
	}

	name := pane.Name
	surface, err := l.builder.BuildFloating(ctx, pane, spec.CustomTitlebar, func() { l.reattachFromWindow(name) })
	if err != nil {
		l.opts.windows.DestroyWindow(win)
		return nil, err
	}

	win.SetChild(surface.Root)
	win.SetMinimumSize(spec.MinWidth, spec.MinHeight)
	slot := l.freeCascadeSlot()
	win.Move(l.cascadePosition(slot))
	win.ConnectCloseRequest(func() { l.reattachFromWindow(name) })

	return &floatingPane{pane: pane, window: win, surface: surface, slot: slot}, nil
}

// dropFloating destroys a floating window and forgets the pane.
func (l *Layout) dropFloating(name string) {
	f, ok := l.detached[name]
	if !ok {
		return
	}
	delete(l.detached, name)
	l.order = slices.DeleteFunc(l.order, func(n string) bool { return n == name })
	l.opts.windows.DestroyWindow(f.window)
}

// windowSpec resolves a pane's floating geometry against the defaults.
// The minimum size falls back to the pane's MinSize, then the defaults. A
// pane's titlebar choice wins over the default in either direction.
func (l *Layout) windowSpec(pane *layout.Pane) layout.WindowSpec {
	fo := pane.Floating
	d := l.opts.floating

	spec := layout.WindowSpec{
		Title:          pane.DisplayTitle(),
		Width:          firstPositive(fo.DefaultWidth, d.Width),
		Height:         firstPositive(fo.DefaultHeight, d.Height),
		MinWidth:       firstPositive(fo.MinWidth, pane.MinSize, d.MinWidth),
		MinHeight:      firstPositive(fo.MinHeight, pane.MinSize, d.MinHeight),
		CustomTitlebar: fo.Titlebar(d.CustomTitlebar),
	}
	spec.Width = max(spec.Width, spec.MinWidth)
	spec.Height = max(spec.Height, spec.MinHeight)
	return spec
}

// freeCascadeSlot returns the lowest slot no floating window holds, so a new
// window never lands on top of one that is still open.
func (l *Layout) freeCascadeSlot() int {
	taken := make(map[int]bool, len(l.detached))
	for _, f := range l.detached {
		taken[f.slot] = true
	}
	slot := 0
	for taken[slot] {
		slot++
	}
	return slot
}

// cascadePosition places the window holding slot (0-based).
func (l *Layout) cascadePosition(slot int) (int, int) {
	offset := (slot + 1) * l.opts.cascadeStep
	return l.opts.originX + offset, l.opts.originY + offset
}

func firstPositive(values ...int) int {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}

// onDetachRequested is wired to the embedded detach buttons.
func (l *Layout) onDetachRequested(name string) {
	if _, err := l.Detach(l.ctx, name); err != nil {
		l.logger.Error().Err(err).Str("pane", name).Msg("detach from header failed")
	}
}

// reattachFromWindow handles the native close request and the custom
// titlebar's reattach button.
func (l *Layout) reattachFromWindow(name string) {
	if _, err := l.Reattach(l.ctx, name); err != nil && !errors.Is(err, ErrClosed) {
		l.logger.Error().Err(err).Str("pane", name).Msg("reattach from floating window failed")
	}
}
