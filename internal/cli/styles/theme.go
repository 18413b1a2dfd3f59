// Package styles provides the lipgloss styles and renderers used by the CLI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dockpane/internal/ui/theme"
)

// Theme holds lipgloss colors and styles derived from a theme record.
type Theme struct {
	Name string

	// Base colors (from theme.Palette)
	Background     lipgloss.Color
	Surface        lipgloss.Color
	SurfaceVariant lipgloss.Color
	Text           lipgloss.Color
	Muted          lipgloss.Color
	Accent         lipgloss.Color
	Border         lipgloss.Color

	// Additional semantic colors
	Error   lipgloss.Color
	Warning lipgloss.Color
	Success lipgloss.Color

	// Text
	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style

	// Badges
	Badge      lipgloss.Style
	BadgeMuted lipgloss.Style

	// Key help rendered by bubbles/help
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	// Pane boxes in layout previews
	Pane         lipgloss.Style
	PaneSelected lipgloss.Style
}

// NewTheme creates a Theme from a theme record. A nil record uses the
// built-in dark palette.
func NewTheme(rec *theme.Record) *Theme {
	if rec == nil {
		return NewThemeFromPalette(theme.NameDark, theme.DefaultDarkPalette())
	}
	return NewThemeFromPalette(rec.Name, rec.Palette)
}

// NewThemeFromPalette creates a Theme from a palette.
func NewThemeFromPalette(name string, p theme.Palette) *Theme {
	t := &Theme{
		Name:           name,
		Background:     lipgloss.Color(p.Background),
		Surface:        lipgloss.Color(p.Surface),
		SurfaceVariant: lipgloss.Color(p.SurfaceVariant),
		Text:           lipgloss.Color(p.Text),
		Muted:          lipgloss.Color(p.Muted),
		Accent:         lipgloss.Color(p.Accent),
		Border:         lipgloss.Color(p.Border),

		Error:   lipgloss.Color(theme.Coalesce(p.Destructive, "#ef4444")),
		Warning: lipgloss.Color(theme.Coalesce(p.Warning, "#f59e0b")),
		Success: lipgloss.Color(theme.Coalesce(p.Success, p.Accent)),
	}

	t.buildStyles()
	return t
}

func fg(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

func badge(fore, back lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(fore).Background(back).Padding(0, 1)
}

func (t *Theme) buildStyles() {
	t.Title = fg(t.Text).Bold(true)
	t.Subtitle = fg(t.Muted).Bold(true)
	t.Normal = fg(t.Text)
	t.Subtle = fg(t.Muted)
	t.Highlight = fg(t.Accent).Bold(true)
	t.ErrorStyle = fg(t.Error)
	t.WarningStyle = fg(t.Warning)
	t.SuccessStyle = fg(t.Success)

	t.Badge = badge(t.Background, t.Accent)
	t.BadgeMuted = badge(t.Text, t.SurfaceVariant)

	t.HelpKey = fg(t.Accent)
	t.HelpDesc = fg(t.Muted)

	t.Pane = fg(t.Text).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border)
	t.PaneSelected = t.Pane.
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(t.Accent).
		Bold(true)
}
