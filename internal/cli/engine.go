package cli

import (
	"context"

	"github.com/bnema/dockpane/internal/infrastructure/config"
	"github.com/bnema/dockpane/internal/ui/dock"
	"github.com/bnema/dockpane/internal/ui/layout"
	"github.com/bnema/dockpane/internal/ui/layoutfile"
	"github.com/bnema/dockpane/internal/ui/theme"
)

// Session is a layout engine running on a toolkit.
type Session struct {
	Layout     *dock.Layout
	Host       layout.BoxWidget
	Toolkit    Toolkit
	Definition *layoutfile.Definition
}

// SessionOption configures NewSession.
type SessionOption func(*Session)

// WithToolkit builds the session on tk. The session owns tk once NewSession
// succeeds.
func WithToolkit(tk Toolkit) SessionOption {
	return func(s *Session) { s.Toolkit = tk }
}

// LoadDefinition reads path, or returns the built-in layout when path is empty.
func LoadDefinition(path string) (*layoutfile.Definition, error) {
	if path == "" {
		return layoutfile.Default(), nil
	}
	return layoutfile.Load(path)
}

// NewSession builds a layout engine for def, on the headless toolkit unless
// WithToolkit is given. The theme is taken from def, then from the
// configuration.
func NewSession(ctx context.Context, cfg *config.Config, themes theme.Provider, def *layoutfile.Definition, opts ...SessionOption) (*Session, error) {
	s := &Session{Definition: def}
	for _, opt := range opts {
		opt(s)
	}
	if s.Toolkit == nil {
		s.Toolkit = NewHeadlessToolkit()
	}

	factory := s.Toolkit.Widgets()
	root, err := def.Tree(layoutfile.Placeholder(factory))
	if err != nil {
		return nil, err
	}

	width := firstPositive(def.Width, cfg.Layout.HostWidth)
	height := firstPositive(def.Height, cfg.Layout.HostHeight)
	s.Host = s.Toolkit.NewHost(hostTitle(def), width, height)

	themeName := theme.Coalesce(def.Theme, cfg.Appearance.Theme)
	l, err := dock.New(ctx, s.Host, root, themeName,
		dock.WithConfig(cfg),
		dock.WithWidgetFactory(factory),
		dock.WithWindowFactory(s.Toolkit.Windows()),
		dock.WithThemeManager(theme.NewManager(themes, nil)),
		dock.WithHostSize(width, height),
	)
	if err != nil {
		return nil, err
	}
	s.Layout = l
	return s, nil
}

// Close destroys every floating window and the embedded surfaces, then
// closes the toolkit.
func (s *Session) Close(ctx context.Context) {
	if s.Layout != nil {
		s.Layout.Close(ctx)
	}
	s.Toolkit.Close()
}

func hostTitle(def *layoutfile.Definition) string {
	if def.Name != "" {
		return "dockpane: " + def.Name
	}
	return "dockpane"
}

func firstPositive(values ...int) int {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}
