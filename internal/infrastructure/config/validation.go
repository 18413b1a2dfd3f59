package config

import (
	"fmt"
	"regexp"
	"strings"
)

var hexColorRegex = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6}|[0-9A-Fa-f]{8})$`)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateAppearance(config)...)
	validationErrors = append(validationErrors, validateFloating(config)...)
	validationErrors = append(validationErrors, validateLayout(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateAppearance(config *Config) []string {
	var validationErrors []string
	if config.Appearance.FontSize < 1 || config.Appearance.FontSize > 72 {
		validationErrors = append(validationErrors, "appearance.font_size must be between 1 and 72")
	}

	validationErrors = append(validationErrors, validatePalette("appearance.light_palette", config.Appearance.LightPalette)...)
	validationErrors = append(validationErrors, validatePalette("appearance.dark_palette", config.Appearance.DarkPalette)...)
	for name, custom := range config.Appearance.Themes {
		if strings.TrimSpace(name) == "" {
			validationErrors = append(validationErrors, "appearance.themes keys cannot be empty")
			continue
		}
		validationErrors = append(validationErrors, validatePalette("appearance.themes."+name+".palette", custom.Palette)...)
	}
	return validationErrors
}

func validatePalette(prefix string, p ColorPalette) []string {
	var validationErrors []string
	colors := []struct {
		key   string
		value string
	}{
		{"background", p.Background},
		{"surface", p.Surface},
		{"surface_variant", p.SurfaceVariant},
		{"text", p.Text},
		{"muted", p.Muted},
		{"accent", p.Accent},
		{"border", p.Border},
	}
	for _, c := range colors {
		if c.value != "" && !hexColorRegex.MatchString(c.value) {
			validationErrors = append(validationErrors, fmt.Sprintf("%s.%s must be a hex color, got %q", prefix, c.key, c.value))
		}
	}
	return validationErrors
}

func validateFloating(config *Config) []string {
	var validationErrors []string
	f := config.Floating
	if f.DefaultWidth <= 0 || f.DefaultHeight <= 0 {
		validationErrors = append(validationErrors, "floating.default_width and floating.default_height must be positive")
	}
	if f.MinWidth < 0 || f.MinHeight < 0 {
		validationErrors = append(validationErrors, "floating.min_width and floating.min_height must be non-negative")
	}
	if f.MinWidth > f.DefaultWidth || f.MinHeight > f.DefaultHeight {
		validationErrors = append(validationErrors, "floating minimum size cannot exceed the default size")
	}
	if f.CascadeStep < 0 {
		validationErrors = append(validationErrors, "floating.cascade_step must be non-negative")
	}
	return validationErrors
}

func validateLayout(config *Config) []string {
	var validationErrors []string
	l := config.Layout
	if l.HostWidth <= 0 || l.HostHeight <= 0 {
		validationErrors = append(validationErrors, "layout.host_width and layout.host_height must be positive")
	}
	if l.HeaderHeight < 0 {
		validationErrors = append(validationErrors, "layout.header_height must be non-negative")
	}
	if l.SeparatorSize < 0 {
		validationErrors = append(validationErrors, "layout.separator_size must be non-negative")
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	switch strings.ToLower(config.Logging.Level) {
	case "", "trace", "debug", "info", "warn", "warning", "error", "disabled", "off":
		return nil
	default:
		return []string{fmt.Sprintf("logging.level %q is not one of trace, debug, info, warn, error", config.Logging.Level)}
	}
}
