package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

var _ help.KeyMap = InteractiveKeyMap{}

// InteractiveKeyMap defines keybindings for the interactive layout host.
type InteractiveKeyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Detach   key.Binding
	Reattach key.Binding
	Grow     key.Binding
	Shrink   key.Binding
	Theme    key.Binding
	Save     key.Binding
	Restore  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k InteractiveKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Detach, k.Reattach, k.Theme, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k InteractiveKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.Detach, k.Reattach},
		{k.Grow, k.Shrink, k.Theme},
		{k.Save, k.Restore},
		{k.Help, k.Quit},
	}
}

// DefaultInteractiveKeyMap returns the default interactive keybindings.
func DefaultInteractiveKeyMap() InteractiveKeyMap {
	return InteractiveKeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "l", "right"),
			key.WithHelp("tab/l", "next pane"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "h", "left"),
			key.WithHelp("shift+tab/h", "previous pane"),
		),
		Detach: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "detach"),
		),
		Reattach: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "reattach"),
		),
		Grow: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "grow"),
		),
		Shrink: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "shrink"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "next theme"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save layout"),
		),
		Restore: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restore layout"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HelpStyles returns bubbles/help styles in the theme's colors.
func (t *Theme) HelpStyles() help.Styles {
	sep := t.Subtle.Faint(true)
	return help.Styles{
		Ellipsis:       sep,
		ShortKey:       t.HelpKey,
		ShortDesc:      t.HelpDesc,
		ShortSeparator: sep,
		FullKey:        t.HelpKey,
		FullDesc:       t.HelpDesc,
		FullSeparator:  sep,
	}
}
