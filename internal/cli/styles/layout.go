package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dockpane/internal/domain/entity"
)

// minPaneCells is the smallest box that still shows a border and one cell.
const minPaneCells = 3

// LayoutRenderer draws layout summaries as terminal previews and trees.
type LayoutRenderer struct {
	theme *Theme
}

// NewLayoutRenderer creates a new LayoutRenderer.
func NewLayoutRenderer(theme *Theme) *LayoutRenderer {
	return &LayoutRenderer{theme: theme}
}

// RenderPreview scales the embedded geometry of s into cols x rows cells.
// The pane named selected is highlighted.
func (r *LayoutRenderer) RenderPreview(s entity.LayoutSummary, selected string, cols, rows int) string {
	if s.Width <= 0 || s.Height <= 0 || !s.Root.Active {
		return r.theme.Subtle.Render("All panes are floating.")
	}
	sx := func(px int) int { return max(minPaneCells, px*cols/s.Width) }
	sy := func(px int) int { return max(minPaneCells, px*rows/s.Height) }
	return r.renderNode(s.Root, selected, sx, sy)
}

func (r *LayoutRenderer) renderNode(n entity.NodeSummary, selected string, sx, sy func(int) int) string {
	if n.Kind == entity.NodePane {
		style := r.theme.Pane
		if n.Name == selected {
			style = r.theme.PaneSelected
		}
		w, h := sx(n.Width), sy(n.Height)
		body := lipgloss.JoinVertical(lipgloss.Left,
			n.Name,
			r.theme.Subtle.Render(fmt.Sprintf("%dx%d", n.Width, n.Height)),
		)
		return style.
			Width(max(1, w-2)).
			Height(max(1, h-2)).
			MaxWidth(w).
			MaxHeight(h).
			Render(body)
	}

	parts := make([]string, 0, len(n.Children))
	for _, child := range n.Children {
		if !child.Active {
			continue
		}
		parts = append(parts, r.renderNode(child, selected, sx, sy))
	}
	if n.Direction == "column" {
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// RenderTree lists every node with its weight and allocation. Floating
// panes are marked instead of sized.
func (r *LayoutRenderer) RenderTree(s entity.LayoutSummary) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s %s\n",
		r.theme.Highlight.Render(IconColumns),
		r.theme.Title.Render(fmt.Sprintf("Layout %dx%d", s.Width, s.Height)),
		r.theme.BadgeMuted.Render(s.Theme),
	))
	r.writeTree(&b, s.Root, "", true, true)
	return strings.TrimRight(b.String(), "\n")
}

func (r *LayoutRenderer) writeTree(b *strings.Builder, n entity.NodeSummary, prefix string, last, root bool) {
	branch, next := "├─ ", "│  "
	if last {
		branch, next = "└─ ", "   "
	}
	if root {
		branch, next = "", ""
	}

	b.WriteString(r.theme.Subtle.Render(prefix + branch))
	b.WriteString(r.describe(n))
	b.WriteString("\n")

	for i, child := range n.Children {
		r.writeTree(b, child, prefix+next, i == len(n.Children)-1, false)
	}
}

func (r *LayoutRenderer) describe(n entity.NodeSummary) string {
	weight := r.theme.Subtle.Render(fmt.Sprintf("w=%g", n.Weight))

	if n.Kind == entity.NodeContainer {
		label := r.theme.Subtitle.Render(fmt.Sprintf("%s %s", n.Direction, n.Path))
		if !n.Active {
			return fmt.Sprintf("%s %s %s", label, weight, r.theme.Subtle.Render("(collapsed)"))
		}
		return fmt.Sprintf("%s %s %s", label, weight, r.theme.Normal.Render(fmt.Sprintf("%dx%d", n.Width, n.Height)))
	}

	name := r.theme.Normal.Render(n.Name)
	if n.Detached {
		return fmt.Sprintf("%s %s %s", name, weight, r.theme.Badge.Render(IconWindow+" floating"))
	}
	return fmt.Sprintf("%s %s %s", name, weight, r.theme.Highlight.Render(fmt.Sprintf("%dx%d", n.Width, n.Height)))
}

// RenderStatus summarizes embedded and floating pane names on one line.
func (r *LayoutRenderer) RenderStatus(s entity.LayoutSummary) string {
	floating := r.theme.Subtle.Render("none")
	if len(s.Detached) > 0 {
		floating = r.theme.Highlight.Render(strings.Join(s.Detached, ", "))
	}
	return fmt.Sprintf("%s %s  %s %s  %s %s",
		r.theme.Subtitle.Render("embedded"),
		r.theme.Normal.Render(strings.Join(s.Embedded, ", ")),
		r.theme.Subtitle.Render("floating"),
		floating,
		r.theme.Subtitle.Render("theme"),
		r.theme.Normal.Render(s.Theme),
	)
}
