package cli

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/bnema/dockpane/internal/ui/headless"
	"github.com/bnema/dockpane/internal/ui/layout"
)

// ToolkitHeadless is the in-memory toolkit, always available.
const ToolkitHeadless = "headless"

// ErrUnknownToolkit is returned for a toolkit name that was not compiled in.
var ErrUnknownToolkit = errors.New("unknown toolkit")

// Toolkit supplies the widgets, windows and host container a session is
// built on.
type Toolkit interface {
	Name() string
	Widgets() layout.WidgetFactory
	Windows() layout.WindowFactory
	NewHost(title string, width, height int) layout.BoxWidget

	// Display reports whether the toolkit puts windows on a screen.
	Display() bool
	// Invoke runs fn where the toolkit's widgets may be touched and waits
	// for it to return.
	Invoke(fn func())
	// Run services the toolkit until Quit is called or ctx is cancelled.
	Run(ctx context.Context) error
	Quit()
	Close()
}

var toolkitsMu sync.RWMutex

var toolkits = map[string]func() (Toolkit, error){
	ToolkitHeadless: func() (Toolkit, error) { return NewHeadlessToolkit(), nil },
}

// RegisterToolkit makes a toolkit selectable by name.
func RegisterToolkit(name string, open func() (Toolkit, error)) {
	toolkitsMu.Lock()
	defer toolkitsMu.Unlock()
	toolkits[name] = open
}

// ToolkitNames returns the selectable toolkits, sorted.
func ToolkitNames() []string {
	toolkitsMu.RLock()
	defer toolkitsMu.RUnlock()
	names := make([]string, 0, len(toolkits))
	for name := range toolkits {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// OpenToolkit opens the named toolkit. An empty name opens the headless one.
func OpenToolkit(name string) (Toolkit, error) {
	if name == "" {
		name = ToolkitHeadless
	}
	toolkitsMu.RLock()
	open, ok := toolkits[name]
	toolkitsMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownToolkit, name, strings.Join(ToolkitNames(), ", "))
	}
	tk, err := open()
	if err != nil {
		return nil, fmt.Errorf("open %s toolkit: %w", name, err)
	}
	return tk, nil
}

// HeadlessToolkit runs sessions in memory.
type HeadlessToolkit struct {
	factory headless.Factory
	windows *headless.Windows

	quitOnce sync.Once
	quit     chan struct{}
}

// NewHeadlessToolkit returns a headless toolkit with an empty window factory.
func NewHeadlessToolkit() *HeadlessToolkit {
	return &HeadlessToolkit{
		factory: headless.NewFactory(),
		windows: headless.NewWindows(),
		quit:    make(chan struct{}),
	}
}

func (t *HeadlessToolkit) Name() string                  { return ToolkitHeadless }
func (t *HeadlessToolkit) Widgets() layout.WidgetFactory { return t.factory }
func (t *HeadlessToolkit) Windows() layout.WindowFactory { return t.windows }
func (t *HeadlessToolkit) Display() bool                 { return false }
func (t *HeadlessToolkit) Invoke(fn func())              { fn() }
func (t *HeadlessToolkit) Close()                        {}

// HeadlessWindows returns the concrete window factory for inspection.
func (t *HeadlessToolkit) HeadlessWindows() *headless.Windows { return t.windows }

// NewHost returns a box with a fixed allocation of width by height.
func (t *HeadlessToolkit) NewHost(_ string, width, height int) layout.BoxWidget {
	return headless.NewHost(width, height)
}

// Run blocks until Quit is called or ctx is cancelled.
func (t *HeadlessToolkit) Run(ctx context.Context) error {
	select {
	case <-ctx.Done():
	case <-t.quit:
	}
	return nil
}

func (t *HeadlessToolkit) Quit() {
	t.quitOnce.Do(func() { close(t.quit) })
}
