package model

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockpane/internal/application/usecase"
	"github.com/bnema/dockpane/internal/cli"
	"github.com/bnema/dockpane/internal/domain/entity"
	repomocks "github.com/bnema/dockpane/internal/domain/repository/mocks"
	"github.com/bnema/dockpane/internal/infrastructure/config"
	"github.com/bnema/dockpane/internal/logging"
	"github.com/bnema/dockpane/internal/ui/dock"
	"github.com/bnema/dockpane/internal/ui/headless"
	"github.com/bnema/dockpane/internal/ui/layoutfile"
	"github.com/bnema/dockpane/internal/ui/theme"
)

func testCtx() context.Context {
	cfg := logging.DefaultConfig()
	cfg.Level = logging.ParseLevel("disabled")
	return logging.WithContext(context.Background(), logging.New(cfg))
}

func newSession(t *testing.T) *cli.Session {
	t.Helper()
	ctx := testCtx()
	session, err := cli.NewSession(ctx, config.DefaultConfig(), theme.NewBuiltinRegistry(), layoutfile.Default())
	require.NoError(t, err)
	t.Cleanup(func() { session.Close(ctx) })
	return session
}

func floating(t *testing.T, session *cli.Session) []*headless.Window {
	t.Helper()
	tk, ok := session.Toolkit.(*cli.HeadlessToolkit)
	require.True(t, ok)
	return tk.HeadlessWindows().Open()
}

func newModel(t *testing.T, l *dock.Layout, states *usecase.LayoutStateUseCase) InteractiveModel {
	t.Helper()
	return NewInteractiveModel(testCtx(), InteractiveConfig{
		Layout:       l,
		States:       states,
		SnapshotName: "work",
		Themes:       []string{theme.NameDark, theme.NameLight},
	})
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m InteractiveModel, msgs ...tea.Msg) InteractiveModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(InteractiveModel)
		require.True(t, ok)
	}
	return m
}

func TestInteractiveModel_Navigation(t *testing.T) {
	session := newSession(t)
	m := newModel(t, session.Layout, nil)

	assert.Equal(t, "files", m.Selected())
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab}, runes("l"))
	assert.Equal(t, "editor", m.Selected())
	m = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab}, runes("h"), runes("h"))
	assert.Equal(t, "terminal", m.Selected(), "selection wraps")
}

func TestInteractiveModel_DetachAndReattach(t *testing.T) {
	session := newSession(t)
	m := newModel(t, session.Layout, nil)

	m = press(t, m, runes("d"))
	status, err := m.Status()
	require.NoError(t, err)
	assert.Equal(t, "files detached", status)
	assert.True(t, session.Layout.IsDetached("files"))
	assert.Len(t, floating(t, session), 1)

	m = press(t, m, runes("d"))
	status, _ = m.Status()
	assert.Contains(t, status, "already floating")

	m = press(t, m, runes("a"))
	status, _ = m.Status()
	assert.Equal(t, "files reattached", status)
	assert.False(t, session.Layout.IsDetached("files"))
	assert.Empty(t, floating(t, session))

	m = press(t, m, runes("a"))
	status, _ = m.Status()
	assert.Equal(t, "files is already embedded", status)
}

func TestInteractiveModel_RunsEngineWorkThroughInvoke(t *testing.T) {
	session := newSession(t)
	calls := 0
	m := NewInteractiveModel(testCtx(), InteractiveConfig{
		Layout: session.Layout,
		Themes: []string{theme.NameDark},
		Invoke: func(fn func()) {
			calls++
			fn()
		},
	})

	m = press(t, m, runes("d"))
	assert.Equal(t, 1, calls)
	assert.True(t, session.Layout.IsDetached("files"))

	assert.Contains(t, m.View(), "files")
	assert.Equal(t, 2, calls)
}

func TestInteractiveModel_FixedPaneStaysEmbedded(t *testing.T) {
	session := newSession(t)
	m := newModel(t, session.Layout, nil)

	m = press(t, m, runes("l"), runes("l"), runes("d"))
	assert.Equal(t, "editor", m.Selected())
	status, err := m.Status()
	require.NoError(t, err)
	assert.Contains(t, status, "not detachable")
	assert.Empty(t, session.Layout.DetachedPaneNames())
}

func TestInteractiveModel_GrowAndShrink(t *testing.T) {
	session := newSession(t)
	m := newModel(t, session.Layout, nil)

	before, ok := session.Layout.PaneDescriptor("files")
	require.True(t, ok)

	m = press(t, m, runes("+"))
	grown, _ := session.Layout.PaneDescriptor("files")
	assert.InDelta(t, before.Weight*weightStep, grown.Weight, 1e-9)

	press(t, m, runes("-"), runes("-"))
	shrunk, _ := session.Layout.PaneDescriptor("files")
	assert.InDelta(t, before.Weight/weightStep, shrunk.Weight, 1e-9)
}

func TestInteractiveModel_CyclesThemes(t *testing.T) {
	session := newSession(t)
	m := newModel(t, session.Layout, nil)

	m = press(t, m, runes("t"))
	assert.Equal(t, theme.NameLight, session.Layout.ThemeName())
	assert.Equal(t, theme.NameLight, m.theme.Name)

	press(t, m, runes("t"))
	assert.Equal(t, theme.NameDark, session.Layout.ThemeName())
}

func TestInteractiveModel_SaveAndRestore(t *testing.T) {
	session := newSession(t)

	var saved *entity.LayoutState
	repo := repomocks.NewMockLayoutStateRepository(t)
	repo.EXPECT().Save(mock.Anything, "work", mock.Anything).
		Run(func(_ context.Context, _ string, state *entity.LayoutState) {
			saved = state
		}).
		Return(nil).Once()
	repo.EXPECT().Get(mock.Anything, "work").
		RunAndReturn(func(context.Context, string) (*entity.SavedLayout, error) {
			return &entity.SavedLayout{Name: "work", State: saved}, nil
		}).Once()

	m := newModel(t, session.Layout, usecase.NewLayoutStateUseCase(repo))

	m = press(t, m, runes("d"), runes("s"))
	status, err := m.Status()
	require.NoError(t, err)
	assert.Equal(t, `saved layout "work"`, status)
	require.NotNil(t, saved)
	assert.Equal(t, []string{"files"}, saved.Detached)

	m = press(t, m, runes("a"))
	require.Empty(t, session.Layout.DetachedPaneNames())

	m = press(t, m, runes("r"))
	status, err = m.Status()
	require.NoError(t, err)
	assert.Equal(t, `restored layout "work"`, status)
	assert.Equal(t, []string{"files"}, session.Layout.DetachedPaneNames())
}

func TestInteractiveModel_StoreUnavailable(t *testing.T) {
	session := newSession(t)
	m := newModel(t, session.Layout, nil)

	m = press(t, m, runes("s"))
	status, _ := m.Status()
	assert.Equal(t, "layout store unavailable", status)
}

func TestInteractiveModel_SaveFailure(t *testing.T) {
	session := newSession(t)
	storeErr := errors.New("disk full")

	repo := repomocks.NewMockLayoutStateRepository(t)
	repo.EXPECT().Save(mock.Anything, "work", mock.Anything).Return(storeErr)

	m := newModel(t, session.Layout, usecase.NewLayoutStateUseCase(repo))
	m = press(t, m, runes("s"))

	_, err := m.Status()
	assert.ErrorIs(t, err, storeErr)
	assert.Contains(t, m.View(), "disk full")
}

func TestInteractiveModel_ConfigChanged(t *testing.T) {
	session := newSession(t)
	m := newModel(t, session.Layout, nil)

	m = press(t, m, ConfigChangedMsg{Theme: theme.NameLight, Themes: []string{theme.NameLight}})
	assert.Equal(t, theme.NameLight, session.Layout.ThemeName())
	assert.Equal(t, []string{theme.NameLight}, m.themes)
	status, _ := m.Status()
	assert.Equal(t, "configuration reloaded", status)

	m = press(t, m, ConfigChangedMsg{Theme: "neon"})
	_, err := m.Status()
	assert.ErrorIs(t, err, theme.ErrUnknownTheme)
	assert.Equal(t, theme.NameLight, session.Layout.ThemeName())
}

func TestInteractiveModel_QuitAndHelp(t *testing.T) {
	session := newSession(t)
	m := newModel(t, session.Layout, nil)

	m = press(t, m, runes("?"))
	assert.True(t, m.help.ShowAll)

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestInteractiveModel_View(t *testing.T) {
	session := newSession(t)
	m := newModel(t, session.Layout, nil)
	m = press(t, m, tea.WindowSizeMsg{Width: 100, Height: 30}, runes("d"))

	view := m.View()
	assert.True(t, strings.HasPrefix(view, m.theme.Title.Render("dockpane")))
	assert.Contains(t, view, "outline")
	assert.Contains(t, view, "files detached")
}
