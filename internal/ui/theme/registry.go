package theme

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/bnema/dockpane/internal/infrastructure/config"
)

// ErrUnknownTheme is returned when a theme name cannot be resolved.
var ErrUnknownTheme = errors.New("unknown theme")

// Built-in theme names.
const (
	NameLight = "light"
	NameDark  = "dark"
)

// Provider resolves a theme name to its record.
type Provider interface {
	Resolve(name string) (*Record, error)
}

// Registry is an in-memory Provider.
type Registry struct {
	mu      sync.RWMutex
	records map[string]*Record
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{records: make(map[string]*Record)}
}

// NewBuiltinRegistry creates a registry holding the light and dark themes.
func NewBuiltinRegistry() *Registry {
	r := NewRegistry()
	r.Register(mustRecord(NameLight, DefaultLightPalette()))
	r.Register(mustRecord(NameDark, DefaultDarkPalette()))
	return r
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the process-wide registry with the built-in themes.
// Engines do not require it; it exists for hosts that want one shared set.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewBuiltinRegistry()
	})
	return defaultRegistry
}

// Register adds or replaces a record under its name.
func (r *Registry) Register(rec *Record) {
	if rec == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.records[rec.Name] = rec
}

// Resolve implements Provider.
func (r *Registry) Resolve(name string) (*Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	return rec, nil
}

// Names returns the registered theme names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.records))
	for name := range r.records {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RegisterFromConfig registers the built-in light/dark themes with the
// configured palette overrides, plus every custom theme in appearance.themes.
func (r *Registry) RegisterFromConfig(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	fonts := FontConfig{
		SansFont:      cfg.Appearance.SansFont,
		MonospaceFont: cfg.Appearance.MonospaceFont,
		Size:          cfg.Appearance.FontSize,
	}

	light, err := NewRecord(NameLight, PaletteFromConfig(&cfg.Appearance.LightPalette, false), fonts)
	if err != nil {
		return err
	}
	dark, err := NewRecord(NameDark, PaletteFromConfig(&cfg.Appearance.DarkPalette, true), fonts)
	if err != nil {
		return err
	}
	r.Register(light)
	r.Register(dark)

	names := make([]string, 0, len(cfg.Appearance.Themes))
	for name := range cfg.Appearance.Themes {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		custom := cfg.Appearance.Themes[name]
		base := PaletteFromConfig(&custom.Palette, custom.Dark)
		rec, err := NewRecord(name, base, fonts)
		if err != nil {
			return err
		}
		r.Register(rec)
	}
	return nil
}
