// Package headless is an in-memory toolkit implementing the layout widget
// and window factories. It records geometry requests, styles and signal
// handlers so layouts can be built, inspected and rendered without a display.
package headless

import (
	"github.com/bnema/dockpane/internal/ui/layout"
	"github.com/bnema/dockpane/internal/ui/theme"
)

type node interface {
	base() *Widget
}

// Widget is the shared state of every headless widget.
type Widget struct {
	self     layout.Widget
	category theme.Category
	parent   layout.Widget

	visible     bool
	hexpand     bool
	vexpand     bool
	reqWidth    int
	reqHeight   int
	allocWidth  int
	allocHeight int
	classes     []string

	style      theme.Style
	styleCount int
}

func newWidget(self layout.Widget, category theme.Category) Widget {
	return Widget{self: self, category: category, visible: true, reqWidth: -1, reqHeight: -1}
}

func (w *Widget) base() *Widget { return w }

// Category implements theme.Element.
func (w *Widget) Category() theme.Category { return w.category }

// Children implements theme.Element; leaf widgets have none.
func (w *Widget) Children() []theme.Element { return nil }

// SetStyle implements theme.Element.
func (w *Widget) SetStyle(style theme.Style) {
	w.style = style
	w.styleCount++
}

// Style returns the last applied style.
func (w *Widget) Style() theme.Style { return w.style }

// StyleCount returns how many times a style was applied.
func (w *Widget) StyleCount() int { return w.styleCount }

func (w *Widget) Show()                   { w.visible = true }
func (w *Widget) Hide()                   { w.visible = false }
func (w *Widget) SetVisible(visible bool) { w.visible = visible }
func (w *Widget) IsVisible() bool         { return w.visible }
func (w *Widget) SetHexpand(expand bool)  { w.hexpand = expand }
func (w *Widget) SetVexpand(expand bool)  { w.vexpand = expand }

// Expands reports the horizontal and vertical expand flags.
func (w *Widget) Expands() (h, v bool) { return w.hexpand, w.vexpand }

func (w *Widget) SetSizeRequest(width, height int) {
	w.reqWidth = width
	w.reqHeight = height
}

func (w *Widget) GetSizeRequest() (int, int) { return w.reqWidth, w.reqHeight }

// SetAllocation fakes the size a real toolkit would allocate.
func (w *Widget) SetAllocation(width, height int) {
	w.allocWidth = width
	w.allocHeight = height
}

// GetAllocatedWidth returns the faked allocation, else the size request.
func (w *Widget) GetAllocatedWidth() int {
	if w.allocWidth > 0 {
		return w.allocWidth
	}
	return max(w.reqWidth, 0)
}

// GetAllocatedHeight returns the faked allocation, else the size request.
func (w *Widget) GetAllocatedHeight() int {
	if w.allocHeight > 0 {
		return w.allocHeight
	}
	return max(w.reqHeight, 0)
}

func (w *Widget) AddCssClass(cssClass string) {
	if !w.HasCssClass(cssClass) {
		w.classes = append(w.classes, cssClass)
	}
}

func (w *Widget) RemoveCssClass(cssClass string) {
	for i, c := range w.classes {
		if c == cssClass {
			w.classes = append(w.classes[:i], w.classes[i+1:]...)
			return
		}
	}
}

func (w *Widget) HasCssClass(cssClass string) bool {
	for _, c := range w.classes {
		if c == cssClass {
			return true
		}
	}
	return false
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
	}
	w.parent = nil
}

func (w *Widget) GetParent() layout.Widget { return w.parent }

// Box is a linear container. Header strips are boxes with the header category.
type Box struct {
	Widget
	orientation layout.Orientation
	spacing     int
	children    []layout.Widget
}

func newBox(orientation layout.Orientation, spacing int, category theme.Category) *Box {
	b := &Box{orientation: orientation, spacing: spacing}
	b.Widget = newWidget(b, category)
	return b
}

// NewHost creates a top-level box with a fixed allocation, standing in for
// an application window's content area.
func NewHost(width, height int) *Box {
	b := newBox(layout.OrientationVertical, 0, theme.CategoryContainer)
	b.SetAllocation(width, height)
	return b
}

func (b *Box) Append(child layout.Widget) {
	if child == nil {
		return
	}
	if n, ok := child.(node); ok {
		if n.base().parent != nil {
			child.Unparent()
		}
		n.base().parent = b
	}
	b.children = append(b.children, child)
}

func (b *Box) Remove(child layout.Widget) {
	for i, c := range b.children {
		if c == child {
			b.children = append(b.children[:i], b.children[i+1:]...)
			if n, ok := child.(node); ok {
				n.base().parent = nil
			}
			return
		}
	}
}

func (b *Box) GetOrientation() layout.Orientation { return b.orientation }
func (b *Box) SetSpacing(spacing int)             { b.spacing = spacing }

// Widgets returns the direct children.
func (b *Box) Widgets() []layout.Widget {
	out := make([]layout.Widget, len(b.children))
	copy(out, b.children)
	return out
}

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
	text string
}

func (l *Label) SetText(text string) { l.text = text }
func (l *Label) GetText() string     { return l.text }

// Button records click handlers; Click fires them.
type Button struct {
	Widget
	label    string
	iconName string
	tooltip  string
	handlers []func()
}

func (b *Button) SetLabel(label string)       { b.label = label }
func (b *Button) GetLabel() string            { return b.label }
func (b *Button) SetIconName(iconName string) { b.iconName = iconName }
func (b *Button) IconName() string            { return b.iconName }
func (b *Button) SetTooltipText(text string)  { b.tooltip = text }
func (b *Button) TooltipText() string         { return b.tooltip }

func (b *Button) ConnectClicked(callback func()) uint32 {
	b.handlers = append(b.handlers, callback)
	return uint32(len(b.handlers))
}

// Click simulates a user activation.
func (b *Button) Click() {
	handlers := make([]func(), len(b.handlers))
	copy(handlers, b.handlers)
	for _, h := range handlers {
		h()
	}
}

// Image shows a named icon.
type Image struct {
	Widget
	iconName  string
	pixelSize int
}

func (i *Image) SetFromIconName(iconName string) { i.iconName = iconName }
func (i *Image) IconName() string                { return i.iconName }
func (i *Image) SetPixelSize(pixelSize int)      { i.pixelSize = pixelSize }

// Scrolled is a scrollable viewport with its own scrollbars. It styles the
// scrollbars itself, so they never appear in Children.
type Scrolled struct {
	Widget
	child      layout.Widget
	vScrollbar *Widget
	hScrollbar *Widget
	ownTheme   string
}

func newScrolled() *Scrolled {
	s := &Scrolled{}
	s.Widget = newWidget(s, theme.CategoryContainer)
	v := newWidget(nil, theme.CategoryScrollbar)
	h := newWidget(nil, theme.CategoryScrollbar)
	s.vScrollbar, s.hScrollbar = &v, &h
	return s
}

func (s *Scrolled) SetChild(child layout.Widget) {
	if s.child != nil {
		if n, ok := s.child.(node); ok {
			n.base().parent = nil
		}
	}
	s.child = child
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
	theme.StyleScrollbar(s.vScrollbar, rec)
	theme.StyleScrollbar(s.hScrollbar, rec)
	s.ownTheme = rec.Name
}

// Scrollbars returns the internal vertical and horizontal scrollbar parts.
func (s *Scrolled) Scrollbars() (vertical, horizontal *Widget) {
	return s.vScrollbar, s.hScrollbar
}

// OwnTheme returns the name of the record last applied through ApplyOwnTheme.
func (s *Scrolled) OwnTheme() string { return s.ownTheme }
