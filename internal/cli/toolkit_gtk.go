//go:build gtk

package cli

import (
	"context"

	"github.com/bnema/dockpane/internal/ui/gtk"
	"github.com/bnema/dockpane/internal/ui/layout"
)

// ToolkitGTK is the GTK4 toolkit, compiled in with the gtk build tag.
const ToolkitGTK = "gtk"

func init() {
	RegisterToolkit(ToolkitGTK, func() (Toolkit, error) {
		tk, err := gtk.Open()
		if err != nil {
			return nil, err
		}
		return &gtkToolkit{tk: tk}, nil
	})
}

type gtkToolkit struct {
	tk *gtk.Toolkit
}

func (t *gtkToolkit) Name() string                  { return ToolkitGTK }
func (t *gtkToolkit) Widgets() layout.WidgetFactory { return t.tk.Widgets }
func (t *gtkToolkit) Windows() layout.WindowFactory { return t.tk.Windows }
func (t *gtkToolkit) Display() bool                 { return true }
func (t *gtkToolkit) Invoke(fn func())              { t.tk.Invoke(fn) }
func (t *gtkToolkit) Quit()                         { t.tk.Quit() }
func (t *gtkToolkit) Close()                        { t.tk.Close() }

func (t *gtkToolkit) NewHost(title string, width, height int) layout.BoxWidget {
	return t.tk.NewHost(title, width, height)
}

func (t *gtkToolkit) Run(ctx context.Context) error { return t.tk.Run(ctx) }
