package config

// Default configuration constants
const (
	defaultTheme    = "dark"
	defaultFontSize = 11 // points

	// Floating window defaults
	defaultFloatingWidth  = 640
	defaultFloatingHeight = 480
	defaultFloatingMinW   = 200
	defaultFloatingMinH   = 150
	defaultCascadeStep    = 30 // pixels

	// Host fallback extent
	defaultHostWidth  = 1280
	defaultHostHeight = 800

	defaultHeaderHeight  = 28
	defaultSeparatorSize = 1

	defaultLogLevel  = "info"
	defaultLogFormat = "console"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Appearance: AppearanceConfig{
			Theme:         defaultTheme,
			SansFont:      "sans-serif",
			MonospaceFont: "monospace",
			FontSize:      defaultFontSize,
		},
		Floating: FloatingConfig{
			DefaultWidth:   defaultFloatingWidth,
			DefaultHeight:  defaultFloatingHeight,
			MinWidth:       defaultFloatingMinW,
			MinHeight:      defaultFloatingMinH,
			CascadeStep:    defaultCascadeStep,
			CustomTitlebar: false,
		},
		Layout: LayoutConfig{
			HostWidth:     defaultHostWidth,
			HostHeight:    defaultHostHeight,
			HeaderHeight:  defaultHeaderHeight,
			SeparatorSize: defaultSeparatorSize,
		},
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
