package dock

import (
	"github.com/bnema/dockpane/internal/infrastructure/config"
	"github.com/bnema/dockpane/internal/ui/headless"
	"github.com/bnema/dockpane/internal/ui/layout"
	"github.com/bnema/dockpane/internal/ui/theme"
)

// FloatingDefaults apply to panes whose FloatingOptions leave a field zero.
type FloatingDefaults struct {
	Width          int
	Height         int
	MinWidth       int
	MinHeight      int
	CustomTitlebar bool
}

type options struct {
	widgets     layout.WidgetFactory
	windows     layout.WindowFactory
	themes      *theme.Manager
	surface     layout.SurfaceOptions
	floating    FloatingDefaults
	cascadeStep int
	originX     int
	originY     int
	// Used when the host reports no allocation and Resize was never called.
	fallbackWidth  int
	fallbackHeight int
}

func defaultOptions() options {
	var o options
	WithConfig(config.DefaultConfig())(&o)
	return o
}

func (o *options) fillToolkit() {
	if o.widgets == nil {
		o.widgets = headless.NewFactory()
	}
	if o.windows == nil {
		o.windows = headless.NewWindows()
	}
	if o.themes == nil {
		o.themes = theme.NewManager(nil, nil)
	}
}

// Option configures a Layout.
type Option func(*options)

// WithWidgetFactory sets the toolkit used for embedded and floating surfaces.
func WithWidgetFactory(f layout.WidgetFactory) Option {
	return func(o *options) { o.widgets = f }
}

// WithWindowFactory sets the platform window facility for floating panes.
func WithWindowFactory(f layout.WindowFactory) Option {
	return func(o *options) { o.windows = f }
}

// WithThemeManager sets the theme context. Layouts without one get their own
// manager over theme.DefaultRegistry.
func WithThemeManager(m *theme.Manager) Option {
	return func(o *options) { o.themes = m }
}

// WithSurfaceOptions sets header and separator geometry.
func WithSurfaceOptions(s layout.SurfaceOptions) Option {
	return func(o *options) { o.surface = s }
}

// WithFloatingDefaults sets the fallback floating window geometry.
func WithFloatingDefaults(d FloatingDefaults) Option {
	return func(o *options) { o.floating = d }
}

// WithCascadeStep sets the offset between successive floating windows.
func WithCascadeStep(step int) Option {
	return func(o *options) { o.cascadeStep = step }
}

// WithHostOrigin sets the screen position floating windows cascade from.
func WithHostOrigin(x, y int) Option {
	return func(o *options) { o.originX, o.originY = x, y }
}

// WithHostSize sets the extent used while the host has no allocation.
func WithHostSize(width, height int) Option {
	return func(o *options) { o.fallbackWidth, o.fallbackHeight = width, height }
}

// WithConfig applies the floating and layout sections of cfg.
func WithConfig(cfg *config.Config) Option {
	return func(o *options) {
		if cfg == nil {
			return
		}
		o.floating = FloatingDefaults{
			Width:          cfg.Floating.DefaultWidth,
			Height:         cfg.Floating.DefaultHeight,
			MinWidth:       cfg.Floating.MinWidth,
			MinHeight:      cfg.Floating.MinHeight,
			CustomTitlebar: cfg.Floating.CustomTitlebar,
		}
		o.cascadeStep = cfg.Floating.CascadeStep
		o.surface = layout.SurfaceOptions{
			HeaderHeight:  cfg.Layout.HeaderHeight,
			SeparatorSize: cfg.Layout.SeparatorSize,
		}
		o.fallbackWidth = cfg.Layout.HostWidth
		o.fallbackHeight = cfg.Layout.HostHeight
	}
}
