package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dockpane/internal/ui/theme"
)

// ThemesRenderer renders palette swatches for the themes command.
type ThemesRenderer struct {
	theme *Theme
}

func NewThemesRenderer(t *Theme) *ThemesRenderer {
	return &ThemesRenderer{theme: t}
}

// Render lists records with a swatch per palette token; current is marked.
func (r *ThemesRenderer) Render(records []*theme.Record, current string) string {
	if len(records) == 0 {
		return r.theme.Subtle.Render("No themes registered.")
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n\n", r.theme.Highlight.Render(IconPalette), r.theme.Title.Render("Themes")))
	for _, rec := range records {
		marker := " "
		if rec.Name == current {
			marker = r.theme.Highlight.Render("●")
		}
		kind := "light"
		if rec.Dark {
			kind = "dark"
		}
		b.WriteString(fmt.Sprintf("%s %-12s %s  %s\n",
			marker,
			rec.Name,
			r.theme.BadgeMuted.Render(kind),
			swatches(rec.Palette),
		))
	}
	return strings.TrimRight(b.String(), "\n")
}

func swatches(p theme.Palette) string {
	colors := []string{p.Background, p.Surface, p.SurfaceVariant, p.Text, p.Muted, p.Accent, p.Border}
	parts := make([]string, len(colors))
	for i, c := range colors {
		parts[i] = lipgloss.NewStyle().Background(lipgloss.Color(c)).Render("  ")
	}
	return strings.Join(parts, "")
}
