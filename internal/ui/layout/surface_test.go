package layout_test

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/dockpane/internal/ui/headless"
	"github.com/bnema/dockpane/internal/ui/layout"
	layoutmocks "github.com/bnema/dockpane/internal/ui/layout/mocks"
	"github.com/bnema/dockpane/internal/ui/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func labelPane(name string, calls map[string]int) *layout.Pane {
	return layout.NewPane(name, "", func(_ context.Context, content layout.BoxWidget) error {
		calls[name]++
		content.Append(headless.NewFactory().NewLabel("content of " + name))
		return nil
	})
}

func newBuilder(t *testing.T, styler layout.Styler) *layout.SurfaceBuilder {
	t.Helper()
	return layout.NewSurfaceBuilder(context.Background(), headless.NewFactory(), styler, layout.DefaultSurfaceOptions())
}

func TestSurfaceBuilder_BuildsActivePanes(t *testing.T) {
	ctx := context.Background()
	calls := map[string]int{}
	root := layout.Row(labelPane("A", calls), labelPane("B", calls), labelPane("C", calls))
	host := headless.NewHost(900, 300)
	b := newBuilder(t, nil)

	detached := func(name string) bool { return name == "B" }
	placement, err := b.Build(ctx, host, root, detached, 900, 300)
	require.NoError(t, err)

	assert.Equal(t, 2, b.SurfaceCount())
	assert.Len(t, placement.Children, 2)
	_, ok := b.Surface("B")
	assert.False(t, ok, "floating panes get no embedded surface")

	a, ok := b.Surface("A")
	require.True(t, ok)
	w, h := a.Root.GetSizeRequest()
	assert.Equal(t, 450, w)
	assert.Equal(t, 300, h)
	assert.True(t, a.Root.HasCssClass(layout.ClassPane))
	assert.True(t, a.Content.HasCssClass(layout.ClassPaneContent))
	assert.Equal(t, []string{"A", "content of A"}, headless.Labels(a.Root))
	assert.Equal(t, map[string]int{"A": 1, "C": 1}, calls)

	require.Len(t, host.Widgets(), 1)
	assert.Same(t, b.Root(), host.Widgets()[0])
	box, ok := b.Container("root")
	require.True(t, ok)
	assert.Same(t, b.Root(), box)
}

func TestSurfaceBuilder_RebuildReplacesWidgets(t *testing.T) {
	ctx := context.Background()
	calls := map[string]int{}
	root := layout.Row(labelPane("A", calls), labelPane("B", calls))
	host := headless.NewHost(200, 100)
	b := newBuilder(t, nil)

	_, err := b.Build(ctx, host, root, layout.NoneDetached, 200, 100)
	require.NoError(t, err)
	first := b.Root()

	_, err = b.Build(ctx, host, root, layout.NoneDetached, 200, 100)
	require.NoError(t, err)

	require.Len(t, host.Widgets(), 1)
	assert.NotSame(t, first, b.Root())
	assert.Nil(t, first.GetParent())
	assert.Equal(t, map[string]int{"A": 2, "B": 2}, calls)
}

func TestSurfaceBuilder_NestedContainers(t *testing.T) {
	ctx := context.Background()
	calls := map[string]int{}
	side := layout.Column(labelPane("top", calls), labelPane("bottom", calls))
	side.ID = "side"
	root := layout.Row(labelPane("main", calls), side)
	host := headless.NewHost(600, 400)
	b := newBuilder(t, nil)

	_, err := b.Build(ctx, host, root, layout.NoneDetached, 600, 400)
	require.NoError(t, err)

	box, ok := b.Container("side")
	require.True(t, ok)
	assert.Equal(t, layout.OrientationVertical, box.GetOrientation())
	w, h := box.GetSizeRequest()
	assert.Equal(t, [2]int{300, 400}, [2]int{w, h})

	bottom, ok := b.Surface("bottom")
	require.True(t, ok)
	assert.Same(t, box, bottom.Root.GetParent())
}

func TestSurfaceBuilder_HostMinimumSize(t *testing.T) {
	ctx := context.Background()
	a := layout.NewPane("a", "", nil)
	a.MinSize = 120
	b2 := layout.NewPane("b", "", nil)
	b2.MinSize = 80
	host := headless.NewHost(500, 500)
	b := newBuilder(t, nil)

	_, err := b.Build(ctx, host, layout.Row(a, b2), layout.NoneDetached, 500, 500)
	require.NoError(t, err)
	w, h := host.GetSizeRequest()
	assert.Equal(t, 200, w)
	assert.Zero(t, h)

	_, err = b.Build(ctx, host, layout.Row(a, b2), func(n string) bool { return n == "a" }, 500, 500)
	require.NoError(t, err)
	w, _ = host.GetSizeRequest()
	assert.Equal(t, 80, w)
}

func TestSurfaceBuilder_HeaderControls(t *testing.T) {
	ctx := context.Background()
	withIcon := layout.NewPane("files", "Files", nil)
	withIcon.Icon = "folder-symbolic"
	fixed := layout.NewPane("status", "", nil)
	fixed.Detachable = false
	host := headless.NewHost(400, 200)
	b := newBuilder(t, nil)

	var requested []string
	b.SetOnDetach(func(name string) { requested = append(requested, name) })

	_, err := b.Build(ctx, host, layout.Row(withIcon, fixed), layout.NoneDetached, 400, 200)
	require.NoError(t, err)

	files, _ := b.Surface("files")
	require.NotNil(t, files.Icon)
	assert.Equal(t, "folder-symbolic", files.Icon.(*headless.Image).IconName())
	assert.Equal(t, "Files", files.Title.GetText())
	_, headerHeight := files.Header.GetSizeRequest()
	assert.Equal(t, 28, headerHeight)
	_, sepHeight := files.Separator.GetSizeRequest()
	assert.Equal(t, 1, sepHeight)

	button, ok := files.DetachButton.(*headless.Button)
	require.True(t, ok)
	assert.Equal(t, layout.IconDetach, button.IconName())
	button.Click()
	assert.Equal(t, []string{"files"}, requested)

	status, _ := b.Surface("status")
	assert.Nil(t, status.DetachButton)
	assert.Nil(t, status.Icon)
	assert.Empty(t, headless.FindByClass(status.Root, layout.ClassDetach))
}

func TestSurfaceBuilder_BuilderFailure(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")
	calls := map[string]int{}
	broken := layout.NewPane("broken", "", func(_ context.Context, content layout.BoxWidget) error {
		content.Append(headless.NewFactory().NewLabel("half built"))
		return boom
	})
	root := layout.Row(labelPane("A", calls), broken, labelPane("C", calls))
	host := headless.NewHost(300, 100)
	b := newBuilder(t, nil)

	_, err := b.Build(ctx, host, root, layout.NoneDetached, 300, 100)
	require.Error(t, err)
	assert.ErrorIs(t, err, layout.ErrBuilderFailure)
	assert.ErrorIs(t, err, boom)

	var be *layout.BuilderError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "broken", be.Pane)

	surface, ok := b.Surface("broken")
	require.True(t, ok)
	assert.Equal(t, []string{"broken"}, headless.Labels(surface.Root), "content region is reset")
	assert.Same(t, b.Root(), surface.Root.GetParent())
	_, ok = b.Surface("C")
	assert.False(t, ok, "build stops at the failing pane")
	assert.Equal(t, 1, calls["A"])
}

func TestSurfaceBuilder_NilRoot(t *testing.T) {
	b := newBuilder(t, nil)
	_, err := b.Build(context.Background(), headless.NewHost(1, 1), nil, layout.NoneDetached, 1, 1)
	assert.ErrorIs(t, err, layout.ErrNilRoot)
}

func TestSurfaceBuilder_Teardown(t *testing.T) {
	ctx := context.Background()
	host := headless.NewHost(100, 100)
	b := newBuilder(t, nil)

	_, err := b.Build(ctx, host, layout.Row(layout.NewPane("a", "", nil)), layout.NoneDetached, 100, 100)
	require.NoError(t, err)

	b.Teardown(host)
	assert.Empty(t, host.Widgets())
	assert.Nil(t, b.Root())
	assert.Zero(t, b.SurfaceCount())
	assert.Equal(t, layout.Placement{}, b.Placement())
}

func TestSurfaceBuilder_StylesEveryBuiltElement(t *testing.T) {
	ctx := context.Background()
	styler := layoutmocks.NewMockStyler(t)
	calls := map[string]int{}
	root := layout.Row(labelPane("A", calls), layout.Column(labelPane("B", calls)))

	styler.EXPECT().ApplyElement(mock.Anything, mock.Anything).Return(1).Times(2)
	var styled []string
	styler.EXPECT().Apply(mock.Anything, mock.Anything).
		Run(func(_ context.Context, el theme.Element) {
			styled = append(styled, headless.Labels(el)[0])
		}).
		Return(4).Times(2)

	b := newBuilder(t, styler)
	_, err := b.Build(ctx, headless.NewHost(100, 100), root, layout.NoneDetached, 100, 100)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, styled)
}

func TestSurfaceBuilder_StylesAfterFailedFill(t *testing.T) {
	ctx := context.Background()
	styler := layoutmocks.NewMockStyler(t)
	broken := layout.NewPane("broken", "", func(context.Context, layout.BoxWidget) error {
		return errors.New("nope")
	})

	styler.EXPECT().ApplyElement(mock.Anything, mock.Anything).Return(1).Once()
	styler.EXPECT().Apply(mock.Anything, mock.Anything).Return(3).Once()

	b := newBuilder(t, styler)
	_, err := b.Build(ctx, headless.NewHost(100, 100), layout.Row(broken), layout.NoneDetached, 100, 100)
	assert.ErrorIs(t, err, layout.ErrBuilderFailure)
}

func TestSurfaceBuilder_BuildFloating(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name           string
		opts           layout.FloatingOptions
		titlebar       bool
		wantHeader     bool
		wantScroller   bool
		wantReattacher bool
	}{
		{"native titlebar", layout.FloatingOptions{}, false, false, false, false},
		{"custom titlebar", layout.FloatingOptions{}, true, true, false, true},
		{"scrollable", layout.FloatingOptions{Scrollable: true}, false, false, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := map[string]int{}
			pane := labelPane("log", calls)
			pane.Floating = tt.opts
			reattached := 0
			b := newBuilder(t, nil)

			surface, err := b.BuildFloating(ctx, pane, tt.titlebar, func() { reattached++ })
			require.NoError(t, err)

			assert.True(t, surface.Root.HasCssClass(layout.ClassFloating))
			assert.Equal(t, tt.wantHeader, surface.Header != nil)
			assert.Equal(t, tt.wantScroller, surface.Scroller != nil)
			assert.Equal(t, tt.wantReattacher, surface.ReattachButton != nil)
			assert.Nil(t, surface.DetachButton)
			assert.Equal(t, 1, calls["log"])
			assert.Zero(t, b.SurfaceCount(), "floating surfaces are not tracked")

			if tt.wantScroller {
				assert.Same(t, surface.Content, surface.Scroller.GetChild())
			}
			if tt.wantReattacher {
				surface.ReattachButton.(*headless.Button).Click()
				assert.Equal(t, 1, reattached)
			}
		})
	}
}

func TestFloatingOptions_Titlebar(t *testing.T) {
	on, off := true, false

	assert.True(t, layout.FloatingOptions{}.Titlebar(true))
	assert.False(t, layout.FloatingOptions{}.Titlebar(false))
	assert.True(t, layout.FloatingOptions{CustomTitlebar: &on}.Titlebar(false))
	assert.False(t, layout.FloatingOptions{CustomTitlebar: &off}.Titlebar(true))
}

func TestSurfaceBuilder_FloatingFailureResetsScrolledContent(t *testing.T) {
	pane := layout.NewPane("log", "", func(_ context.Context, content layout.BoxWidget) error {
		content.Append(headless.NewFactory().NewLabel("partial"))
		return errors.New("nope")
	})
	pane.Floating.Scrollable = true
	b := newBuilder(t, nil)

	surface, err := b.BuildFloating(context.Background(), pane, false, nil)
	assert.ErrorIs(t, err, layout.ErrBuilderFailure)
	require.NotNil(t, surface.Scroller)
	assert.Same(t, surface.Content, surface.Scroller.GetChild())
	assert.Empty(t, headless.Labels(surface.Root))
}
