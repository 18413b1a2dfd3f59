package config

// Config represents the complete configuration for dockpane.
type Config struct {
	Appearance AppearanceConfig `mapstructure:"appearance" yaml:"appearance" toml:"appearance" json:"appearance"`
	Floating   FloatingConfig   `mapstructure:"floating" yaml:"floating" toml:"floating" json:"floating"`
	Layout     LayoutConfig     `mapstructure:"layout" yaml:"layout" toml:"layout" json:"layout"`
	Database   DatabaseConfig   `mapstructure:"database" yaml:"database" toml:"database" json:"database"`
	Logging    LoggingConfig    `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
}

// AppearanceConfig holds theme selection and palette overrides.
type AppearanceConfig struct {
	// Theme is the theme applied when a layout is constructed (light, dark, or a key of Themes).
	Theme         string `mapstructure:"theme" yaml:"theme" toml:"theme" json:"theme"`
	SansFont      string `mapstructure:"sans_font" yaml:"sans_font" toml:"sans_font" json:"sans_font"`
	MonospaceFont string `mapstructure:"monospace_font" yaml:"monospace_font" toml:"monospace_font" json:"monospace_font"`
	// FontSize in points.
	FontSize     int          `mapstructure:"font_size" yaml:"font_size" toml:"font_size" json:"font_size"`
	LightPalette ColorPalette `mapstructure:"light_palette" yaml:"light_palette" toml:"light_palette" json:"light_palette"`
	DarkPalette  ColorPalette `mapstructure:"dark_palette" yaml:"dark_palette" toml:"dark_palette" json:"dark_palette"`
	// Themes defines additional named themes.
	Themes map[string]CustomTheme `mapstructure:"themes" yaml:"themes" toml:"themes" json:"themes,omitempty"`
}

// ColorPalette holds user-editable colors. Empty values fall back to defaults.
type ColorPalette struct {
	Background     string `mapstructure:"background" yaml:"background" toml:"background" json:"background"`
	Surface        string `mapstructure:"surface" yaml:"surface" toml:"surface" json:"surface"`
	SurfaceVariant string `mapstructure:"surface_variant" yaml:"surface_variant" toml:"surface_variant" json:"surface_variant"`
	Text           string `mapstructure:"text" yaml:"text" toml:"text" json:"text"`
	Muted          string `mapstructure:"muted" yaml:"muted" toml:"muted" json:"muted"`
	Accent         string `mapstructure:"accent" yaml:"accent" toml:"accent" json:"accent"`
	Border         string `mapstructure:"border" yaml:"border" toml:"border" json:"border"`
}

// CustomTheme is a named palette; Dark selects which built-in palette fills gaps.
type CustomTheme struct {
	Dark    bool         `mapstructure:"dark" yaml:"dark" toml:"dark" json:"dark"`
	Palette ColorPalette `mapstructure:"palette" yaml:"palette" toml:"palette" json:"palette"`
}

// FloatingConfig controls detached pane windows.
type FloatingConfig struct {
	DefaultWidth  int `mapstructure:"default_width" yaml:"default_width" toml:"default_width" json:"default_width"`
	DefaultHeight int `mapstructure:"default_height" yaml:"default_height" toml:"default_height" json:"default_height"`
	MinWidth      int `mapstructure:"min_width" yaml:"min_width" toml:"min_width" json:"min_width"`
	MinHeight     int `mapstructure:"min_height" yaml:"min_height" toml:"min_height" json:"min_height"`
	// CascadeStep is the offset in pixels between successive floating windows.
	CascadeStep    int  `mapstructure:"cascade_step" yaml:"cascade_step" toml:"cascade_step" json:"cascade_step"`
	CustomTitlebar bool `mapstructure:"custom_titlebar" yaml:"custom_titlebar" toml:"custom_titlebar" json:"custom_titlebar"`
}

// LayoutConfig controls embedded layout geometry.
type LayoutConfig struct {
	// HostWidth and HostHeight are used when the host has no allocation yet.
	HostWidth     int `mapstructure:"host_width" yaml:"host_width" toml:"host_width" json:"host_width"`
	HostHeight    int `mapstructure:"host_height" yaml:"host_height" toml:"host_height" json:"host_height"`
	HeaderHeight  int `mapstructure:"header_height" yaml:"header_height" toml:"header_height" json:"header_height"`
	SeparatorSize int `mapstructure:"separator_size" yaml:"separator_size" toml:"separator_size" json:"separator_size"`
}

// DatabaseConfig holds the layout state store location.
type DatabaseConfig struct {
	Path string `mapstructure:"path" yaml:"path" toml:"path" json:"path"`
}

// LoggingConfig holds logging preferences.
type LoggingConfig struct {
	// Level: trace, debug, info, warn, error
	Level string `mapstructure:"level" yaml:"level" toml:"level" json:"level"`
	// Format: console or json
	Format string `mapstructure:"format" yaml:"format" toml:"format" json:"format"`
}
