// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/dockpane/internal/application/usecase"
	"github.com/bnema/dockpane/internal/cli/styles"
	"github.com/bnema/dockpane/internal/domain/entity"
	"github.com/bnema/dockpane/internal/logging"
	"github.com/bnema/dockpane/internal/ui/dock"
)

// weightStep is the factor applied by the grow and shrink keys.
const weightStep = 1.25

// InteractiveConfig holds dependencies for the interactive model.
type InteractiveConfig struct {
	Layout *dock.Layout
	// States may be nil; save and restore are then disabled.
	States       *usecase.LayoutStateUseCase
	SnapshotName string
	Themes       []string
	// StylesFor builds CLI styles for a theme name. Defaults to the engine's
	// current theme record.
	StylesFor func(name string) *styles.Theme
	// Invoke runs engine work on the toolkit's thread. Defaults to a direct call.
	Invoke func(fn func())
}

// InteractiveModel drives a layout engine from the keyboard and renders its
// embedded geometry.
type InteractiveModel struct {
	help help.Model
	keys styles.InteractiveKeyMap

	ctx          context.Context
	layout       *dock.Layout
	states       *usecase.LayoutStateUseCase
	snapshotName string
	themes       []string
	stylesFor    func(name string) *styles.Theme
	invoke       func(fn func())

	theme    *styles.Theme
	renderer *styles.LayoutRenderer

	panes    []string
	selected int
	width    int
	height   int
	status   string
	err      error
}

// ConfigChangedMsg is sent when the configuration file is reloaded.
type ConfigChangedMsg struct {
	Theme  string
	Themes []string
}

// NewInteractiveModel creates the interactive model.
func NewInteractiveModel(ctx context.Context, cfg InteractiveConfig) InteractiveModel {
	name := cfg.SnapshotName
	if name == "" {
		name = "interactive"
	}
	stylesFor := cfg.StylesFor
	if stylesFor == nil {
		stylesFor = func(string) *styles.Theme {
			return styles.NewTheme(cfg.Layout.ThemeManager().Current())
		}
	}
	invoke := cfg.Invoke
	if invoke == nil {
		invoke = func(fn func()) { fn() }
	}
	m := InteractiveModel{
		help:         help.New(),
		keys:         styles.DefaultInteractiveKeyMap(),
		ctx:          ctx,
		layout:       cfg.Layout,
		states:       cfg.States,
		snapshotName: name,
		themes:       cfg.Themes,
		stylesFor:    stylesFor,
		invoke:       invoke,
		panes:        cfg.Layout.PaneNames(),
		width:        80,
		height:       24,
	}
	m.restyle()
	return m
}

// Init implements tea.Model.
func (m InteractiveModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m InteractiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		next tea.Model
		cmd  tea.Cmd
	)
	m.invoke(func() { next, cmd = m.update(msg) })
	return next, cmd
}

func (m InteractiveModel) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case ConfigChangedMsg:
		return m.handleConfigChange(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m InteractiveModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = nil
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Next):
		m.selected = (m.selected + 1) % len(m.panes)

	case key.Matches(msg, m.keys.Prev):
		m.selected = (m.selected - 1 + len(m.panes)) % len(m.panes)

	case key.Matches(msg, m.keys.Detach):
		name := m.current()
		changed, err := m.layout.Detach(m.ctx, name)
		switch {
		case err != nil:
			m.err = err
		case changed:
			m.status = fmt.Sprintf("%s detached", name)
		default:
			m.status = fmt.Sprintf("%s is already floating or not detachable", name)
		}

	case key.Matches(msg, m.keys.Reattach):
		name := m.current()
		changed, err := m.layout.Reattach(m.ctx, name)
		switch {
		case err != nil:
			m.err = err
		case changed:
			m.status = fmt.Sprintf("%s reattached", name)
		default:
			m.status = fmt.Sprintf("%s is already embedded", name)
		}

	case key.Matches(msg, m.keys.Grow):
		m.scaleWeight(weightStep)

	case key.Matches(msg, m.keys.Shrink):
		m.scaleWeight(1 / weightStep)

	case key.Matches(msg, m.keys.Theme):
		m.nextTheme()

	case key.Matches(msg, m.keys.Save):
		m.save()

	case key.Matches(msg, m.keys.Restore):
		m.restore()
	}
	return m, nil
}

func (m *InteractiveModel) current() string {
	return m.panes[m.selected]
}

func (m *InteractiveModel) scaleWeight(factor float64) {
	name := m.current()
	pane, ok := m.layout.PaneDescriptor(name)
	if !ok {
		return
	}
	weight := pane.Weight * factor
	if err := m.layout.SetPaneWeight(m.ctx, name, weight); err != nil {
		m.err = err
		return
	}
	m.status = fmt.Sprintf("%s weight %.2f", name, weight)
}

func (m *InteractiveModel) nextTheme() {
	if len(m.themes) == 0 {
		return
	}
	next := m.themes[0]
	if i := slices.Index(m.themes, m.layout.ThemeName()); i >= 0 {
		next = m.themes[(i+1)%len(m.themes)]
	}
	if err := m.layout.ApplyTheme(m.ctx, next); err != nil {
		m.err = err
		return
	}
	m.restyle()
	m.status = fmt.Sprintf("theme %s", next)
}

func (m *InteractiveModel) save() {
	if m.states == nil {
		m.status = "layout store unavailable"
		return
	}
	if _, err := m.states.Snapshot(m.ctx, m.snapshotName, m.layout); err != nil {
		m.err = err
		return
	}
	m.status = fmt.Sprintf("saved layout %q", m.snapshotName)
}

func (m *InteractiveModel) restore() {
	if m.states == nil {
		m.status = "layout store unavailable"
		return
	}
	_, err := m.states.Apply(m.ctx, m.snapshotName, m.layout)
	m.restyle()
	if err != nil {
		m.err = err
		return
	}
	m.status = fmt.Sprintf("restored layout %q", m.snapshotName)
}

func (m InteractiveModel) handleConfigChange(msg ConfigChangedMsg) InteractiveModel {
	log := logging.FromContext(m.ctx)
	if len(msg.Themes) > 0 {
		m.themes = msg.Themes
	}

	if msg.Theme != "" && msg.Theme != m.layout.ThemeName() {
		if err := m.layout.ApplyTheme(m.ctx, msg.Theme); err != nil {
			log.Warn().Err(err).Str("theme", msg.Theme).Msg("configured theme not applied")
			m.err = err
			return m
		}
	} else {
		styled := m.layout.RefreshTheme(m.ctx)
		log.Debug().Int("styled", styled).Msg("theme refreshed after config change")
	}
	m.restyle()
	m.status = "configuration reloaded"
	return m
}

func (m *InteractiveModel) restyle() {
	m.theme = m.stylesFor(m.layout.ThemeName())
	if m.theme == nil {
		m.theme = styles.NewTheme(nil)
	}
	m.renderer = styles.NewLayoutRenderer(m.theme)
	m.help.Styles = m.theme.HelpStyles()
}

// View implements tea.Model.
func (m InteractiveModel) View() string {
	var summary entity.LayoutSummary
	m.invoke(func() { summary = m.layout.Summary() })

	var b strings.Builder
	b.WriteString(m.theme.Title.Render("dockpane"))
	b.WriteString("  ")
	b.WriteString(m.theme.Highlight.Render(m.current()))
	b.WriteString("\n\n")

	previewRows := max(6, m.height-8)
	b.WriteString(m.renderer.RenderPreview(summary, m.current(), max(20, m.width-2), previewRows))
	b.WriteString("\n")
	b.WriteString(m.renderer.RenderStatus(summary))
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(m.theme.ErrorStyle.Render(m.err.Error()))
	case m.status != "":
		b.WriteString(m.theme.SuccessStyle.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// Selected returns the name of the focused pane.
func (m InteractiveModel) Selected() string {
	return m.current()
}

// Status returns the last status line and error.
func (m InteractiveModel) Status() (string, error) {
	return m.status, m.err
}
