package headless

import (
	"errors"
	"sync"

	"github.com/bnema/dockpane/internal/ui/layout"
	"github.com/bnema/dockpane/internal/ui/theme"
)

// Window is an in-memory top-level window.
type Window struct {
	Widget
	spec      layout.WindowSpec
	title     string
	child     layout.Widget
	x, y      int
	minWidth  int
	minHeight int
	presented bool
	destroyed bool
	onClose   []func()
}

func newWindow(spec layout.WindowSpec) *Window {
	w := &Window{spec: spec, title: spec.Title, minWidth: spec.MinWidth, minHeight: spec.MinHeight}
	w.Widget = newWidget(w, theme.CategoryWindow)
	w.SetSizeRequest(spec.Width, spec.Height)
	return w
}

func (w *Window) SetTitle(title string) { w.title = title }
func (w *Window) GetTitle() string      { return w.title }

func (w *Window) SetChild(child layout.Widget) {
	if w.child != nil {
		if n, ok := w.child.(node); ok {
			n.base().parent = nil
		}
	}
	w.child = child
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
	w.minWidth, w.minHeight = width, height
}

// MinimumSize returns the minimum size set on the window.
func (w *Window) MinimumSize() (int, int) { return w.minWidth, w.minHeight }

// Spec returns the creation parameters.
func (w *Window) Spec() layout.WindowSpec { return w.spec }

func (w *Window) ConnectCloseRequest(callback func()) uint32 {
	w.onClose = append(w.onClose, callback)
	return uint32(len(w.onClose))
}

func (w *Window) Present() { w.presented = true }

// Presented reports whether Present was called.
func (w *Window) Presented() bool { return w.presented }

// Destroyed reports whether the window was destroyed by its factory.
func (w *Window) Destroyed() bool { return w.destroyed }

// RequestClose simulates the user closing the window from the window manager.
func (w *Window) RequestClose() {
	if w.destroyed {
		return
	}
	handlers := make([]func(), len(w.onClose))
	copy(handlers, w.onClose)
	for _, h := range handlers {
		h()
	}
}

// ErrCreateRefused is returned by Windows when a failure was queued with FailNext.
var ErrCreateRefused = errors.New("headless: window creation refused")

// Windows is a window factory that tracks open windows.
type Windows struct {
	mu       sync.Mutex
	open     []*Window
	created  int
	failNext error
}

var _ layout.WindowFactory = (*Windows)(nil)

// NewWindows returns an empty window factory.
func NewWindows() *Windows { return &Windows{} }

// FailNext makes the next CreateWindow call return err. A nil err uses ErrCreateRefused.
func (f *Windows) FailNext(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err == nil {
		err = ErrCreateRefused
	}
	f.failNext = err
}

func (f *Windows) CreateWindow(spec layout.WindowSpec) (layout.Window, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failNext; err != nil {
		f.failNext = nil
		return nil, err
	}
	w := newWindow(spec)
	f.open = append(f.open, w)
	f.created++
	return w, nil
}

// DestroyWindow closes win. Destroying an unknown or already destroyed window is a no-op.
func (f *Windows) DestroyWindow(win layout.Window) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, w := range f.open {
		if layout.Window(w) == win {
			w.destroyed = true
			w.SetChild(nil)
			f.open = append(f.open[:i], f.open[i+1:]...)
			return
		}
	}
}

// Open returns the windows that have not been destroyed, in creation order.
func (f *Windows) Open() []*Window {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*Window, len(f.open))
	copy(out, f.open)
	return out
}

// Created returns the total number of windows ever created.
func (f *Windows) Created() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.created
}
