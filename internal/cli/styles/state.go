package styles

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/dockpane/internal/domain/entity"
)

// StateRenderer renders output for the state subcommands.
type StateRenderer struct {
	theme *Theme
	now   func() time.Time
}

func NewStateRenderer(theme *Theme) *StateRenderer {
	return &StateRenderer{theme: theme, now: time.Now}
}

func (r *StateRenderer) RenderEmptyList() string {
	return r.theme.Subtle.Render("No saved layouts found.")
}

func (r *StateRenderer) RenderList(items []*entity.SavedLayout) string {
	if len(items) == 0 {
		return r.RenderEmptyList()
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n\n", r.theme.Highlight.Render(IconDatabase), r.theme.Title.Render("Saved layouts")))
	for _, item := range items {
		b.WriteString(r.renderOne(item))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(r.theme.Subtle.Render("Tip: use `dockpane state restore <name>` to apply one."))
	return b.String()
}

func (r *StateRenderer) renderOne(item *entity.SavedLayout) string {
	themeName := item.State.Theme
	if themeName == "" {
		themeName = "-"
	}
	return fmt.Sprintf("%s  %s %s  %s  %s",
		r.theme.Highlight.Render(item.Name),
		r.theme.BadgeMuted.Render(fmt.Sprintf("%d panes", item.State.PaneCount())),
		r.theme.BadgeMuted.Render(fmt.Sprintf("%d floating", item.State.DetachedCount())),
		r.theme.Normal.Render(themeName),
		r.theme.Subtle.Render(RelativeTime(r.now(), item.UpdatedAt)),
	)
}

func (r *StateRenderer) RenderSaved(name string, state *entity.LayoutState) string {
	return fmt.Sprintf("%s Saved layout %s (%d panes, %d floating)",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Highlight.Render(name),
		state.PaneCount(),
		state.DetachedCount(),
	)
}

func (r *StateRenderer) RenderRestored(name string) string {
	return fmt.Sprintf("%s Restored layout %s",
		r.theme.SuccessStyle.Render(IconRestore),
		r.theme.Highlight.Render(name),
	)
}

func (r *StateRenderer) RenderDeleted(name string) string {
	return fmt.Sprintf("%s Deleted layout %s",
		r.theme.ErrorStyle.Render(IconTrash),
		r.theme.Highlight.Render(name),
	)
}

func (r *StateRenderer) RenderWarning(err error) string {
	return fmt.Sprintf("%s %s", r.theme.WarningStyle.Render(IconWarning), r.theme.Normal.Render(err.Error()))
}

// RelativeTime formats t relative to now ("just now", "5m ago", "3d ago").
func RelativeTime(now, t time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return t.Format("2006-01-02")
	}
}
