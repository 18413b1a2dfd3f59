package headless

import (
	"github.com/bnema/dockpane/internal/ui/layout"
	"github.com/bnema/dockpane/internal/ui/theme"
)

// Factory creates headless widgets.
type Factory struct{}

var _ layout.WidgetFactory = Factory{}

// NewFactory returns a headless widget factory.
func NewFactory() Factory { return Factory{} }

func (Factory) NewBox(orientation layout.Orientation, spacing int) layout.BoxWidget {
	return newBox(orientation, spacing, theme.CategoryContainer)
}

func (Factory) NewHeader() layout.BoxWidget {
	return newBox(layout.OrientationHorizontal, 0, theme.CategoryHeader)
}

func (Factory) NewSeparator(orientation layout.Orientation) layout.Widget {
	s := &Separator{orientation: orientation}
	s.Widget = newWidget(s, theme.CategorySeparator)
	return s
}

func (Factory) NewLabel(text string) layout.LabelWidget {
	l := &Label{text: text}
	l.Widget = newWidget(l, theme.CategoryLabel)
	return l
}

func (Factory) NewButton() layout.ButtonWidget {
	b := &Button{}
	b.Widget = newWidget(b, theme.CategoryButton)
	return b
}

func (Factory) NewImage() layout.ImageWidget {
	i := &Image{}
	i.Widget = newWidget(i, theme.CategoryImage)
	return i
}

func (Factory) NewScrolled() layout.ScrolledWidget {
	return newScrolled()
}

// Separator is a thin divider line.
type Separator struct {
	Widget
	orientation layout.Orientation
}

// Orientation returns the separator's orientation.
func (s *Separator) Orientation() layout.Orientation { return s.orientation }
