package dock

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/dockpane/internal/domain/entity"
	"github.com/bnema/dockpane/internal/logging"
	"github.com/bnema/dockpane/internal/ui/layout"
)

// SaveState captures pane weights, container weights, the detached set and
// the active theme. Content is never serialized; it is rebuilt by each
// pane's content builder.
func (l *Layout) SaveState() ([]byte, error) {
	return l.State().Marshal()
}

// State returns the layout state as a value.
func (l *Layout) State() *entity.LayoutState {
	state := entity.NewLayoutState()
	state.Theme = l.ThemeName()

	layout.Walk(l.root, func(node layout.Node, path string) bool {
		switch n := node.(type) {
		case *layout.Container:
			state.ContainerWeights[path] = n.Weight
		case *layout.Pane:
			state.PaneWeights[n.Name] = n.Weight
		}
		return true
	})
	state.Detached = append(state.Detached, l.DetachedPaneNames()...)
	return state
}

// RestoreState applies a blob produced by SaveState. Weights are applied
// first and rebuilt once, then the detached set is reconciled pane by pane
// in tree order, then the saved theme is applied if it resolves.
//
// Entries naming unknown panes or containers, invalid weights, and
// non-detachable panes listed as detached are skipped with a warning. Each
// detach or reattach is atomic; failures are joined into the returned error
// and the remaining panes are still processed.
func (l *Layout) RestoreState(ctx context.Context, blob []byte) error {
	if l.closed {
		return ErrClosed
	}
	state, err := entity.ParseLayoutState(blob)
	if err != nil {
		return err
	}

	log := logging.FromContext(ctx)
	var errs []error

	if l.restoreWeights(ctx, state) {
		if err := l.rebuild(ctx); err != nil {
			errs = append(errs, err)
		}
	}

	for _, name := range state.Detached {
		if _, ok := l.registry.Lookup(name); !ok {
			log.Warn().Str("pane", name).Msg("ignoring unknown detached pane in layout state")
		}
	}

	for _, name := range l.registry.Names() {
		want := state.IsDetached(name)
		if want == l.isDetached(name) {
			continue
		}
		if want {
			changed, err := l.Detach(ctx, name)
			if err != nil {
				errs = append(errs, err)
			} else if !changed {
				log.Warn().Str("pane", name).Msg("ignoring non-detachable pane in layout state")
			}
			continue
		}
		if _, err := l.Reattach(ctx, name); err != nil {
			errs = append(errs, err)
		}
	}

	if state.Theme != "" && state.Theme != l.ThemeName() {
		if err := l.ApplyTheme(ctx, state.Theme); err != nil {
			log.Warn().Err(err).Str("theme", state.Theme).Msg("saved theme not applied")
		}
	}

	log.Info().
		Int("detached", len(l.detached)).
		Int("errors", len(errs)).
		Msg("layout state restored")
	return errors.Join(errs...)
}

// restoreWeights reports whether any weight changed.
func (l *Layout) restoreWeights(ctx context.Context, state *entity.LayoutState) bool {
	log := logging.FromContext(ctx)
	changed := false

	for name, weight := range state.PaneWeights {
		pane, ok := l.registry.Lookup(name)
		if !ok {
			log.Warn().Str("pane", name).Msg("ignoring weight of unknown pane")
			continue
		}
		if !layout.ValidWeight(weight) {
			log.Warn().Str("pane", name).Float64("weight", weight).Msg("ignoring invalid pane weight")
			continue
		}
		if pane.Weight != weight {
			pane.Weight = weight
			changed = true
		}
	}

	for key, weight := range state.ContainerWeights {
		c, ok := l.containers[key]
		if !ok {
			log.Warn().Str("container", key).Msg("ignoring weight of unknown container")
			continue
		}
		if !layout.ValidWeight(weight) {
			log.Warn().Str("container", key).Float64("weight", weight).Msg("ignoring invalid container weight")
			continue
		}
		if c.Weight != weight {
			c.Weight = weight
			changed = true
		}
	}
	return changed
}

// Summary describes the tree as last laid out.
func (l *Layout) Summary() entity.LayoutSummary {
	placement := l.builder.Placement()
	placed := make(map[layout.Node]layout.Placement)
	var index func(p layout.Placement)
	index = func(p layout.Placement) {
		if p.Node != nil {
			placed[p.Node] = p
		}
		for _, child := range p.Children {
			index(child)
		}
	}
	index(placement)

	return entity.LayoutSummary{
		Theme:    l.ThemeName(),
		Width:    placement.Width,
		Height:   placement.Height,
		Embedded: l.EmbeddedPaneNames(),
		Detached: l.DetachedPaneNames(),
		Root:     l.summarize(l.root, layout.RootPath(l.root), placed),
	}
}

func (l *Layout) summarize(node layout.Node, path string, placed map[layout.Node]layout.Placement) entity.NodeSummary {
	p := placed[node]
	summary := entity.NodeSummary{
		Path:   path,
		Weight: node.NodeWeight(),
		Active: layout.IsActive(node, l.isDetached),
		Width:  p.Width,
		Height: p.Height,
	}

	switch n := node.(type) {
	case *layout.Pane:
		summary.Kind = entity.NodePane
		summary.Name = n.Name
		summary.Detached = l.isDetached(n.Name)
	case *layout.Container:
		summary.Kind = entity.NodeContainer
		summary.Direction = n.Direction.String()
		summary.Children = make([]entity.NodeSummary, 0, len(n.Children))
		for i, child := range n.Children {
			childPath := path
			if c, ok := child.(*layout.Container); ok {
				childPath = layout.ChildPath(path, i, c)
			}
			summary.Children = append(summary.Children, l.summarize(child, childPath, placed))
		}
	}
	return summary
}

// String renders a one-line description for logs.
func (l *Layout) String() string {
	width, height := l.Size()
	return fmt.Sprintf("layout(%dx%d, %d panes, %d floating, theme %s)",
		width, height, l.registry.Len(), len(l.detached), l.ThemeName())
}
