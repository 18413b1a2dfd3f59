//go:build gtk

package gtk

import (
	"sync"

	gtk4 "github.com/jwijenbergh/puregotk/v4/gtk"

	"github.com/bnema/dockpane/internal/ui/layout"
	"github.com/bnema/dockpane/internal/ui/theme"
)

var (
	_ layout.Window        = (*Window)(nil)
	_ layout.WindowFactory = (*Windows)(nil)
)

// Window wraps a gtk.Window. GTK4 leaves placement to the compositor, so
// the position is only recorded.
type Window struct {
	Widget
	window   *gtk4.Window
	child    layout.Widget
	x, y     int
	handlers []*func(gtk4.Window) bool
}

func newWindow(title string, width, height int) *Window {
	inner := gtk4.NewWindow()
	w := &Window{window: inner}
	w.Widget = newWidget(&inner.Widget, w, theme.CategoryWindow)
	inner.SetTitle(title)
	inner.SetDefaultSize(int32(width), int32(height))
	return w
}

func (w *Window) SetTitle(title string) { w.window.SetTitle(title) }
func (w *Window) GetTitle() string      { return w.window.GetTitle() }

func (w *Window) SetChild(child layout.Widget) {
	if n, ok := w.child.(node); ok && w.child != nil {
		n.base().parent = nil
	}
	release(w, child)
	w.child = child
	w.window.SetChild(native(child))
	if n, ok := child.(node); ok && child != nil {
		n.base().parent = w
	}
}

func (w *Window) GetChild() layout.Widget { return w.child }

// Children implements theme.Element.
func (w *Window) Children() []theme.Element {
	if w.child == nil {
		return nil
	}
	return []theme.Element{w.child}
}

func (w *Window) Move(x, y int)           { w.x, w.y = x, y }
func (w *Window) GetPosition() (int, int) { return w.x, w.y }

func (w *Window) SetMinimumSize(width, height int) {
	w.window.SetSizeRequest(int32(width), int32(height))
}

// ConnectCloseRequest runs callback when the compositor asks the window to
// close. The default handler is suppressed; the owner destroys the window.
func (w *Window) ConnectCloseRequest(callback func()) uint32 {
	cb := func(_ gtk4.Window) bool {
		callback()
		return true
	}
	w.handlers = append(w.handlers, &cb)
	return w.window.ConnectCloseRequest(&cb)
}

func (w *Window) Present() { w.window.Present() }

// Windows creates and tracks floating windows.
type Windows struct {
	mu   sync.Mutex
	open []*Window
}

// NewWindows returns an empty window factory.
func NewWindows() *Windows { return &Windows{} }

func (f *Windows) CreateWindow(spec layout.WindowSpec) (layout.Window, error) {
	w := newWindow(spec.Title, spec.Width, spec.Height)
	w.SetMinimumSize(spec.MinWidth, spec.MinHeight)
	if spec.CustomTitlebar {
		w.window.SetDecorated(false)
	}

	f.mu.Lock()
	f.open = append(f.open, w)
	f.mu.Unlock()
	return w, nil
}

// DestroyWindow destroys win. Unknown windows are ignored.
func (f *Windows) DestroyWindow(win layout.Window) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, w := range f.open {
		if layout.Window(w) == win {
			f.open = append(f.open[:i], f.open[i+1:]...)
			w.window.Destroy()
			return
		}
	}
}

// Open returns the windows created and not yet destroyed.
func (f *Windows) Open() []*Window {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*Window, len(f.open))
	copy(out, f.open)
	return out
}
