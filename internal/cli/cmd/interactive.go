package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/dockpane/internal/cli"
	"github.com/bnema/dockpane/internal/cli/model"
	"github.com/bnema/dockpane/internal/cli/styles"
	"github.com/bnema/dockpane/internal/infrastructure/config"
	"github.com/bnema/dockpane/internal/logging"
)

var (
	interactiveTheme   string
	interactiveName    string
	interactiveToolkit string
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"i"},
	Short:   "Drive a layout from the keyboard",
	Long: `Open a terminal view of a layout and detach, reattach, resize and
retheme its panes live.

Saved layouts use the name given with --name. Edits to the config file
are picked up while the view is open. Logs go to the state directory
while the terminal is in use. With --toolkit gtk the layout is also shown
in a window; closing it ends the session.

Keys:
  tab/l, shift+tab/h   select pane
  d, a                 detach, reattach
  +, -                 grow, shrink
  t                    next theme
  s, r                 save, restore
  ?                    toggle help`,
	RunE: runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
	interactiveCmd.Flags().StringVarP(&interactiveTheme, "theme", "t", "", "theme to start with")
	interactiveCmd.Flags().StringVarP(&interactiveName, "name", "n", "interactive", "name used to save and restore the layout")
	interactiveCmd.Flags().StringVar(&interactiveToolkit, "toolkit", cli.ToolkitHeadless, toolkitUsage())
}

func runInteractive(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	logPath, err := a.LogToFile()
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	session, err := openSession(a, interactiveToolkit, interactiveTheme, nil)
	if err != nil {
		return err
	}
	defer session.Close(a.Ctx())

	log := logging.FromContext(a.Ctx())
	log.Info().
		Str("log_file", logPath).
		Str("toolkit", session.Toolkit.Name()).
		Strs("panes", session.Layout.PaneNames()).
		Msg("interactive session started")

	m := model.NewInteractiveModel(a.Ctx(), model.InteractiveConfig{
		Layout:       session.Layout,
		States:       a.LayoutStates,
		SnapshotName: interactiveName,
		Themes:       a.Themes.Names(),
		StylesFor: func(name string) *styles.Theme {
			return styles.NewTheme(a.Record(name))
		},
		Invoke: session.Toolkit.Invoke,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())

	if err := config.Watch(); err != nil {
		log.Warn().Err(err).Msg("config watcher unavailable")
	} else {
		config.OnConfigChange(func(cfg *config.Config) {
			// Runs on the watcher goroutine; the registry is the only shared state touched.
			if err := a.Themes.RegisterFromConfig(cfg); err != nil {
				log.Warn().Err(err).Msg("reload themes")
				return
			}
			p.Send(model.ConfigChangedMsg{
				Theme:  cfg.Appearance.Theme,
				Themes: a.Themes.Names(),
			})
		})
	}

	// The toolkit keeps this goroutine; the terminal view runs beside it.
	done := make(chan error, 1)
	go func() {
		_, err := p.Run()
		session.Toolkit.Quit()
		done <- err
	}()

	if err := session.Toolkit.Run(a.Ctx()); err != nil {
		log.Warn().Err(err).Msg("toolkit stopped")
	}
	p.Quit()
	return <-done
}
