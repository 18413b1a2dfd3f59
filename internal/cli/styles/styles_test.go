package styles

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockpane/internal/domain/entity"
	"github.com/bnema/dockpane/internal/ui/theme"
)

func sampleSummary() entity.LayoutSummary {
	return entity.LayoutSummary{
		Theme:    theme.NameDark,
		Width:    1000,
		Height:   600,
		Embedded: []string{"B", "C"},
		Detached: []string{"A"},
		Root: entity.NodeSummary{
			Kind: entity.NodeContainer, Path: "root", Direction: "row", Weight: 1, Active: true,
			Width: 1000, Height: 600,
			Children: []entity.NodeSummary{
				{Kind: entity.NodePane, Name: "A", Path: "root", Weight: 0.2, Detached: true},
				{Kind: entity.NodePane, Name: "B", Path: "root", Weight: 0.6, Active: true, Width: 750, Height: 600},
				{Kind: entity.NodePane, Name: "C", Path: "root", Weight: 0.2, Active: true, Width: 250, Height: 600},
			},
		},
	}
}

func TestNewTheme(t *testing.T) {
	dark := NewTheme(nil)
	assert.Equal(t, theme.NameDark, dark.Name)

	rec, err := theme.NewBuiltinRegistry().Resolve(theme.NameLight)
	require.NoError(t, err)
	light := NewTheme(rec)
	assert.Equal(t, theme.NameLight, light.Name)
	assert.Equal(t, string(light.Accent), rec.Palette.Accent)
}

func TestLayoutRenderer_RenderTree(t *testing.T) {
	out := NewLayoutRenderer(NewTheme(nil)).RenderTree(sampleSummary())
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 5)

	assert.Contains(t, lines[0], "Layout 1000x600")
	assert.Contains(t, lines[1], "row root")
	assert.Contains(t, lines[2], "├─ ")
	assert.Contains(t, lines[2], "floating")
	assert.Contains(t, lines[3], "750x600")
	assert.Contains(t, lines[4], "└─ ")
	assert.Contains(t, lines[4], "w=0.2")
}

func TestLayoutRenderer_RenderTreeCollapsedContainer(t *testing.T) {
	s := sampleSummary()
	s.Root.Children = append(s.Root.Children, entity.NodeSummary{
		Kind: entity.NodeContainer, Path: "side", Direction: "column", Weight: 1,
	})
	out := NewLayoutRenderer(NewTheme(nil)).RenderTree(s)
	assert.Contains(t, out, "column side w=1 (collapsed)")
}

func TestLayoutRenderer_RenderPreview(t *testing.T) {
	r := NewLayoutRenderer(NewTheme(nil))

	out := r.RenderPreview(sampleSummary(), "B", 80, 20)
	assert.Contains(t, out, "B")
	assert.Contains(t, out, "750x600")

	empty := sampleSummary()
	empty.Root.Active = false
	assert.Equal(t, r.theme.Subtle.Render("All panes are floating."), r.RenderPreview(empty, "", 80, 20))
}

func TestLayoutRenderer_RenderStatus(t *testing.T) {
	r := NewLayoutRenderer(NewTheme(nil))
	out := r.RenderStatus(sampleSummary())
	assert.Contains(t, out, "B, C")
	assert.Contains(t, out, "floating A")

	s := sampleSummary()
	s.Detached = nil
	assert.Contains(t, r.RenderStatus(s), "none")
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		ago  time.Duration
		want string
	}{
		{10 * time.Second, "just now"},
		{5 * time.Minute, "5m ago"},
		{3 * time.Hour, "3h ago"},
		{50 * time.Hour, "2d ago"},
		{40 * 24 * time.Hour, "2026-09-04"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeTime(now, now.Add(-tt.ago)))
		})
	}
}

func TestStateRenderer(t *testing.T) {
	now := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)
	r := NewStateRenderer(NewTheme(nil))
	r.now = func() time.Time { return now }

	state := entity.NewLayoutState()
	state.Theme = theme.NameLight
	state.PaneWeights = map[string]float64{"a": 1, "b": 1}
	state.Detached = []string{"a"}

	list := r.RenderList([]*entity.SavedLayout{{Name: "work", State: state, UpdatedAt: now.Add(-2 * time.Hour)}})
	assert.Contains(t, list, "work")
	assert.Contains(t, list, "2 panes")
	assert.Contains(t, list, "1 floating")
	assert.Contains(t, list, "2h ago")

	assert.Equal(t, r.RenderEmptyList(), r.RenderList(nil))
	assert.Contains(t, r.RenderSaved("work", state), "(2 panes, 1 floating)")
	assert.Contains(t, r.RenderRestored("work"), "Restored layout")
	assert.Contains(t, r.RenderDeleted("work"), "Deleted layout")
	assert.Contains(t, r.RenderWarning(errors.New("window failed")), "window failed")
}

func TestThemesRenderer(t *testing.T) {
	registry := theme.NewBuiltinRegistry()
	var records []*theme.Record
	for _, name := range registry.Names() {
		rec, err := registry.Resolve(name)
		require.NoError(t, err)
		records = append(records, rec)
	}

	r := NewThemesRenderer(NewTheme(nil))
	out := r.Render(records, theme.NameLight)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[2], theme.NameDark)
	assert.True(t, strings.HasPrefix(lines[2], " "), "only the current theme is marked")
	assert.Contains(t, lines[3], "●")

	assert.Contains(t, r.Render(nil, ""), "No themes registered.")
}

func TestInteractiveKeyMap(t *testing.T) {
	keys := DefaultInteractiveKeyMap()
	assert.NotEmpty(t, keys.ShortHelp())
	for _, row := range keys.FullHelp() {
		for _, binding := range row {
			assert.NotEmpty(t, binding.Help().Key)
		}
	}
	assert.Contains(t, keys.Detach.Keys(), "d")
	assert.Contains(t, keys.Quit.Keys(), "ctrl+c")
}

func TestTheme_HelpStyles(t *testing.T) {
	rec, err := theme.NewBuiltinRegistry().Resolve(theme.NameLight)
	require.NoError(t, err)
	th := NewTheme(rec)

	hs := th.HelpStyles()
	assert.Equal(t, th.HelpKey.GetForeground(), hs.ShortKey.GetForeground())
	assert.Equal(t, th.HelpDesc.GetForeground(), hs.FullDesc.GetForeground())
}
