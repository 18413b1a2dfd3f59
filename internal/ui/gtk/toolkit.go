//go:build gtk

package gtk

import (
	"context"
	"errors"
	"runtime"
	"sync"

	"github.com/jwijenbergh/puregotk/v4/glib"
	gtk4 "github.com/jwijenbergh/puregotk/v4/gtk"

	"github.com/bnema/dockpane/internal/ui/layout"
	"github.com/bnema/dockpane/internal/ui/theme"
)

// ErrUnavailable is returned by Open when GTK cannot reach a display.
var ErrUnavailable = errors.New("gtk: no display available")

// Toolkit is an initialised GTK connection with its main loop. Apart from
// Invoke and Quit, methods must be called from the goroutine that called
// Open, which stays locked to the GTK thread.
type Toolkit struct {
	Widgets Factory
	Windows *Windows

	loop  *glib.MainLoop
	hosts []*Window

	mu      sync.Mutex
	serving bool
	queue   []func()

	// Kept for the lifetime of the toolkit so puregotk reuses one callback each.
	drain glib.SourceFunc
	quit  glib.SourceFunc
}

// Open initialises GTK on the calling goroutine's thread.
func Open() (*Toolkit, error) {
	runtime.LockOSThread()
	if !gtk4.InitCheck() {
		runtime.UnlockOSThread()
		return nil, ErrUnavailable
	}

	t := &Toolkit{
		Windows: NewWindows(),
		loop:    glib.NewMainLoop(nil, false),
		serving: true,
	}
	t.drain = glib.SourceFunc(func(uintptr) bool {
		for _, fn := range t.take() {
			fn()
		}
		return false
	})
	t.quit = glib.SourceFunc(func(uintptr) bool {
		t.loop.Quit()
		return false
	})
	return t, nil
}

// NewHost creates an application window holding an empty vertical box and
// returns the box. Closing a host window stops Run.
func (t *Toolkit) NewHost(title string, width, height int) layout.BoxWidget {
	win := newWindow(title, width, height)
	box := newBox(layout.OrientationVertical, 0, theme.CategoryContainer)
	box.SetHexpand(true)
	box.SetVexpand(true)
	win.SetChild(box)
	win.ConnectCloseRequest(t.Quit)
	t.hosts = append(t.hosts, win)
	return box
}

// Invoke runs fn on the GTK thread and waits for it. It must not be called
// from the GTK thread while Run is active. Once Run has returned, fn runs on
// the caller's goroutine.
func (t *Toolkit) Invoke(fn func()) {
	t.mu.Lock()
	if !t.serving {
		t.mu.Unlock()
		fn()
		return
	}
	done := make(chan struct{})
	t.queue = append(t.queue, func() {
		defer close(done)
		fn()
	})
	t.mu.Unlock()

	glib.IdleAdd(&t.drain, 0)
	<-done
}

func (t *Toolkit) take() []func() {
	t.mu.Lock()
	defer t.mu.Unlock()
	pending := t.queue
	t.queue = nil
	return pending
}

// Run presents the host windows and services GTK until Quit is called, a
// host window is closed or ctx is cancelled.
func (t *Toolkit) Run(ctx context.Context) error {
	for _, h := range t.hosts {
		h.Present()
	}

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			t.Quit()
		case <-stop:
		}
	}()

	t.loop.Run()

	t.mu.Lock()
	t.serving = false
	t.mu.Unlock()
	for _, fn := range t.take() {
		fn()
	}
	return nil
}

// Quit stops Run. It is safe to call from any goroutine, before or during Run.
func (t *Toolkit) Quit() {
	glib.IdleAdd(&t.quit, 0)
}

// Close destroys the host windows and releases the GTK thread.
func (t *Toolkit) Close() {
	for _, h := range t.hosts {
		h.window.Destroy()
	}
	t.hosts = nil
	runtime.UnlockOSThread()
}
