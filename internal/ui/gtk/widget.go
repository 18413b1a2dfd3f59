//go:build gtk

package gtk

import (
	"sync/atomic"

	gtk4 "github.com/jwijenbergh/puregotk/v4/gtk"

	"github.com/bnema/dockpane/internal/ui/layout"
	"github.com/bnema/dockpane/internal/ui/theme"
)

// Ensure implementations satisfy interfaces at compile time.
var (
	_ layout.Widget         = (*Widget)(nil)
	_ layout.BoxWidget      = (*Box)(nil)
	_ layout.LabelWidget    = (*Label)(nil)
	_ layout.ButtonWidget   = (*Button)(nil)
	_ layout.ImageWidget    = (*Image)(nil)
	_ layout.ScrolledWidget = (*Scrolled)(nil)
	_ theme.SelfStyler      = (*Scrolled)(nil)
	_ layout.WidgetFactory  = Factory{}
)

var serials atomic.Uint64

type node interface {
	base() *Widget
}

// Widget wraps a gtk.Widget. Parent links are tracked on the Go side so
// theme dispatch and Unparent see the same tree the layout builder made.
type Widget struct {
	inner    *gtk4.Widget
	self     layout.Widget
	category theme.Category
	parent   layout.Widget
	class    string
	css      *gtk4.CssProvider
}

func newWidget(inner *gtk4.Widget, self layout.Widget, category theme.Category) Widget {
	w := Widget{inner: inner, self: self, category: category, class: WidgetClass(serials.Add(1))}
	inner.AddCssClass(w.class)
	return w
}

func (w *Widget) base() *Widget { return w }

// GtkWidget returns the wrapped native widget.
func (w *Widget) GtkWidget() *gtk4.Widget { return w.inner }

// Category implements theme.Element.
func (w *Widget) Category() theme.Category { return w.category }

// Children implements theme.Element; leaf widgets have none.
func (w *Widget) Children() []theme.Element { return nil }

// SetStyle implements theme.Element. The widget keeps one provider whose
// contents are replaced on every call.
func (w *Widget) SetStyle(style theme.Style) {
	if w.css == nil {
		w.css = gtk4.NewCssProvider()
		w.inner.GetStyleContext().AddProvider(w.css, uint32(gtk4.STYLE_PROVIDER_PRIORITY_APPLICATION))
	}
	w.css.LoadFromString(RenderCSS(w.class, w.category, style))
}

func (w *Widget) Show()                            { w.inner.Show() }
func (w *Widget) Hide()                            { w.inner.Hide() }
func (w *Widget) SetVisible(visible bool)          { w.inner.SetVisible(visible) }
func (w *Widget) IsVisible() bool                  { return w.inner.GetVisible() }
func (w *Widget) SetHexpand(expand bool)           { w.inner.SetHexpand(expand) }
func (w *Widget) SetVexpand(expand bool)           { w.inner.SetVexpand(expand) }
func (w *Widget) GetAllocatedWidth() int           { return int(w.inner.GetAllocatedWidth()) }
func (w *Widget) GetAllocatedHeight() int          { return int(w.inner.GetAllocatedHeight()) }
func (w *Widget) AddCssClass(cssClass string)      { w.inner.AddCssClass(cssClass) }
func (w *Widget) RemoveCssClass(cssClass string)   { w.inner.RemoveCssClass(cssClass) }
func (w *Widget) HasCssClass(cssClass string) bool { return w.inner.HasCssClass(cssClass) }

func (w *Widget) SetSizeRequest(width, height int) {
	w.inner.SetSizeRequest(int32(width), int32(height))
}

func (w *Widget) GetSizeRequest() (int, int) {
	var width, height int32
	w.inner.GetSizeRequest(&width, &height)
	return int(width), int(height)
}

// Unparent removes the widget from its parent container.
func (w *Widget) Unparent() {
	switch p := w.parent.(type) {
	case *Box:
		p.Remove(w.self)
	case *Scrolled:
		if p.child == w.self {
			p.SetChild(nil)
		}
	case *Window:
		if p.child == w.self {
			p.SetChild(nil)
		}
	default:
		w.inner.Unparent()
	}
	w.parent = nil
}

func (w *Widget) GetParent() layout.Widget { return w.parent }

// native returns the gtk.Widget behind w, or a null widget for nil and
// foreign widgets.
func native(w layout.Widget) *gtk4.Widget {
	if n, ok := w.(node); ok && w != nil {
		return n.base().inner
	}
	return &gtk4.Widget{}
}

// release unparents child unless owner already holds it.
func release(owner, child layout.Widget) {
	n, ok := child.(node)
	if !ok || child == nil {
		return
	}
	if p := n.base().parent; p != nil && p != owner {
		child.Unparent()
	}
}

func orientation(o layout.Orientation) gtk4.Orientation {
	if o == layout.OrientationVertical {
		return gtk4.OrientationVerticalValue
	}
	return gtk4.OrientationHorizontalValue
}

// Box is a linear container. Header strips are boxes with the header category.
type Box struct {
	Widget
	box         *gtk4.Box
	orientation layout.Orientation
	children    []layout.Widget
}

func newBox(o layout.Orientation, spacing int, category theme.Category) *Box {
	inner := gtk4.NewBox(orientation(o), int32(spacing))
	b := &Box{box: inner, orientation: o}
	b.Widget = newWidget(&inner.Widget, b, category)
	return b
}

// Append adds child at the end. Widgets from another toolkit are ignored.
func (b *Box) Append(child layout.Widget) {
	n, ok := child.(node)
	if !ok || child == nil {
		return
	}
	if n.base().parent != nil {
		child.Unparent()
	}
	b.box.Append(n.base().inner)
	n.base().parent = b
	b.children = append(b.children, child)
}

func (b *Box) Remove(child layout.Widget) {
	for i, c := range b.children {
		if c == child {
			b.children = append(b.children[:i], b.children[i+1:]...)
			b.box.Remove(native(child))
			if n, ok := child.(node); ok {
				n.base().parent = nil
			}
			return
		}
	}
}

func (b *Box) GetOrientation() layout.Orientation { return b.orientation }
func (b *Box) SetSpacing(spacing int)             { b.box.SetSpacing(int32(spacing)) }

// Children implements theme.Element.
func (b *Box) Children() []theme.Element {
	out := make([]theme.Element, len(b.children))
	for i, c := range b.children {
		out[i] = c
	}
	return out
}

// Label displays text.
type Label struct {
	Widget
	label *gtk4.Label
}

func (l *Label) SetText(text string) { l.label.SetText(text) }
func (l *Label) GetText() string     { return l.label.GetText() }

// Button is a clickable button. Click handlers are kept alive for the
// lifetime of the button.
type Button struct {
	Widget
	button   *gtk4.Button
	handlers []*func(gtk4.Button)
}

func (b *Button) SetLabel(label string)       { b.button.SetLabel(label) }
func (b *Button) GetLabel() string            { return b.button.GetLabel() }
func (b *Button) SetIconName(iconName string) { b.button.SetIconName(iconName) }
func (b *Button) SetTooltipText(text string)  { b.inner.SetTooltipText(text) }

func (b *Button) ConnectClicked(callback func()) uint32 {
	cb := func(_ gtk4.Button) {
		callback()
	}
	b.handlers = append(b.handlers, &cb)
	return b.button.ConnectClicked(&cb)
}

// Image shows a named icon.
type Image struct {
	Widget
	image *gtk4.Image
}

func (i *Image) SetFromIconName(iconName string) { i.image.SetFromIconName(iconName) }
func (i *Image) SetPixelSize(pixelSize int)      { i.image.SetPixelSize(int32(pixelSize)) }

// Scrolled is a scrollable viewport. It styles its own scrollbars, so they
// never appear in Children.
type Scrolled struct {
	Widget
	scrolled   *gtk4.ScrolledWindow
	child      layout.Widget
	vScrollbar *Widget
	hScrollbar *Widget
}

func newScrolled() *Scrolled {
	inner := gtk4.NewScrolledWindow()
	inner.SetPolicy(gtk4.PolicyAutomaticValue, gtk4.PolicyAutomaticValue)
	s := &Scrolled{scrolled: inner}
	s.Widget = newWidget(&inner.Widget, s, theme.CategoryContainer)
	if bar := inner.GetVscrollbar(); bar != nil {
		v := newWidget(bar, nil, theme.CategoryScrollbar)
		s.vScrollbar = &v
	}
	if bar := inner.GetHscrollbar(); bar != nil {
		h := newWidget(bar, nil, theme.CategoryScrollbar)
		s.hScrollbar = &h
	}
	return s
}

func (s *Scrolled) SetChild(child layout.Widget) {
	if n, ok := s.child.(node); ok && s.child != nil {
		n.base().parent = nil
	}
	release(s, child)
	s.child = child
	s.scrolled.SetChild(native(child))
	if n, ok := child.(node); ok && child != nil {
		n.base().parent = s
	}
}

func (s *Scrolled) GetChild() layout.Widget { return s.child }

// Children implements theme.Element: only the hosted child.
func (s *Scrolled) Children() []theme.Element {
	if s.child == nil {
		return nil
	}
	return []theme.Element{s.child}
}

// ApplyOwnTheme implements theme.SelfStyler.
func (s *Scrolled) ApplyOwnTheme(rec *theme.Record) {
	s.SetStyle(theme.Style{Background: rec.Palette.Surface, Foreground: rec.Palette.Text})
	for _, bar := range []*Widget{s.vScrollbar, s.hScrollbar} {
		if bar != nil {
			theme.StyleScrollbar(bar, rec)
		}
	}
}

// Factory creates GTK widgets.
type Factory struct{}

func (Factory) NewBox(o layout.Orientation, spacing int) layout.BoxWidget {
	return newBox(o, spacing, theme.CategoryContainer)
}

func (Factory) NewHeader() layout.BoxWidget {
	b := newBox(layout.OrientationHorizontal, 0, theme.CategoryHeader)
	b.AddCssClass("dockpane-header")
	return b
}

func (Factory) NewSeparator(o layout.Orientation) layout.Widget {
	inner := gtk4.NewSeparator(orientation(o))
	s := &Widget{}
	*s = newWidget(&inner.Widget, s, theme.CategorySeparator)
	return s
}

func (Factory) NewLabel(text string) layout.LabelWidget {
	inner := gtk4.NewLabel(text)
	l := &Label{label: inner}
	l.Widget = newWidget(&inner.Widget, l, theme.CategoryLabel)
	return l
}

func (Factory) NewButton() layout.ButtonWidget {
	inner := gtk4.NewButton()
	b := &Button{button: inner}
	b.Widget = newWidget(&inner.Widget, b, theme.CategoryButton)
	return b
}

func (Factory) NewImage() layout.ImageWidget {
	inner := gtk4.NewImage()
	i := &Image{image: inner}
	i.Widget = newWidget(&inner.Widget, i, theme.CategoryImage)
	return i
}

func (Factory) NewScrolled() layout.ScrolledWidget {
	return newScrolled()
}
