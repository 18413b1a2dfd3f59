package theme

import (
	"fmt"
	"strings"
)

// FontConfig holds font family preferences.
type FontConfig struct {
	SansFont      string
	MonospaceFont string
	Size          int
}

// DefaultFontConfig returns the fallback fonts.
func DefaultFontConfig() FontConfig {
	return FontConfig{
		SansFont:      "sans-serif",
		MonospaceFont: "monospace",
		Size:          11,
	}
}

// Derived holds colors computed from a palette rather than configured.
type Derived struct {
	Hover     string
	Pressed   string
	Selection string
}

// Record is a named, immutable theme bundle.
type Record struct {
	Name    string
	Dark    bool
	Palette Palette
	Fonts   FontConfig
	Derived Derived
}

// NewRecord validates the palette and computes derived colors.
func NewRecord(name string, palette Palette, fonts FontConfig) (*Record, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("theme name cannot be empty")
	}
	if err := palette.Validate(); err != nil {
		return nil, fmt.Errorf("theme %q: %w", name, err)
	}

	defaults := DefaultFontConfig()
	fonts.SansFont = Coalesce(fonts.SansFont, defaults.SansFont)
	fonts.MonospaceFont = Coalesce(fonts.MonospaceFont, defaults.MonospaceFont)
	if fonts.Size <= 0 {
		fonts.Size = defaults.Size
	}

	return &Record{
		Name:    name,
		Dark:    IsDark(palette.Background),
		Palette: palette,
		Fonts:   fonts,
		Derived: Derived{
			Hover:     Blend(palette.SurfaceVariant, palette.Accent, 0.25),
			Pressed:   Blend(palette.SurfaceVariant, palette.Accent, 0.45),
			Selection: Blend(palette.Accent, palette.Background, 0.6),
		},
	}, nil
}

// mustRecord is used for the built-in themes whose palettes are known valid.
func mustRecord(name string, palette Palette) *Record {
	rec, err := NewRecord(name, palette, DefaultFontConfig())
	if err != nil {
		panic(err)
	}
	return rec
}
