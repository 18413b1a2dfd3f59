package layoutfile

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bnema/dockpane/internal/ui/layout"
)

// BuilderFunc picks the content builder for a pane definition. It may return
// nil to leave the pane empty.
type BuilderFunc func(p *PaneDef) layout.ContentBuilder

// Placeholder fills each pane with one label carrying its title, and a
// second label with the icon name when one is set.
func Placeholder(factory layout.WidgetFactory) BuilderFunc {
	return func(p *PaneDef) layout.ContentBuilder {
		title := p.Title
		if title == "" {
			title = p.Name
		}
		icon := p.Icon
		return func(_ context.Context, content layout.BoxWidget) error {
			content.Append(factory.NewLabel(title))
			if icon != "" {
				content.Append(factory.NewLabel(icon))
			}
			return nil
		}
	}
}

// Tree converts the definition into a layout tree. Omitted weights become 1.
// Names, weights and duplicate panes are validated when the tree is handed
// to a layout engine.
func (d *Definition) Tree(builders BuilderFunc) (*layout.Container, error) {
	return buildContainer(&d.Root, "root", builders)
}

func buildContainer(def *ContainerDef, path string, builders BuilderFunc) (*layout.Container, error) {
	dir, err := layout.ParseDirection(def.Direction)
	if err != nil {
		return nil, fmt.Errorf("container %s: %w", path, err)
	}

	c := layout.NewContainer(dir)
	c.ID = def.ID
	if def.Weight != 0 {
		c.Weight = def.Weight
	}

	for i, child := range def.Children {
		childPath := path + "/" + strconv.Itoa(i)
		switch {
		case child.Pane != nil && child.Container != nil, child.Pane == nil && child.Container == nil:
			return nil, fmt.Errorf("%w at %s", ErrInvalidNode, childPath)
		case child.Pane != nil:
			c.Children = append(c.Children, buildPane(child.Pane, builders))
		default:
			nested, err := buildContainer(child.Container, childPath, builders)
			if err != nil {
				return nil, err
			}
			c.Children = append(c.Children, nested)
		}
	}
	return c, nil
}

func buildPane(def *PaneDef, builders BuilderFunc) *layout.Pane {
	var builder layout.ContentBuilder
	if builders != nil {
		builder = builders(def)
	}

	p := layout.NewPane(def.Name, def.Title, builder)
	p.Icon = def.Icon
	if def.Weight != 0 {
		p.Weight = def.Weight
	}
	p.MinSize = def.MinSize
	p.MaxSize = def.MaxSize
	if def.Detachable != nil {
		p.Detachable = *def.Detachable
	}
	p.Floating = layout.FloatingOptions{
		DefaultWidth:   def.Floating.DefaultWidth,
		DefaultHeight:  def.Floating.DefaultHeight,
		MinWidth:       def.Floating.MinWidth,
		MinHeight:      def.Floating.MinHeight,
		CustomTitlebar: def.Floating.CustomTitlebar,
		Scrollable:     def.Floating.Scrollable,
	}
	return p
}
