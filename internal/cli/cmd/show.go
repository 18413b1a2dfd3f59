package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/dockpane/internal/cli"
	"github.com/bnema/dockpane/internal/cli/styles"
	"github.com/bnema/dockpane/internal/logging"
)

var (
	showDetach  []string
	showTheme   string
	showToolkit string
	showTree    bool
	showJSON    bool
	showWidth   int
	showHeight  int
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Preview the embedded geometry of a layout",
	Long: `Build a layout and print where every embedded pane lands. With a
display toolkit the layout is also shown on screen until its window is
closed.

Examples:
  dockpane show                          # Preview the built-in layout
  dockpane show -f work.yaml --tree      # Print the container tree
  dockpane show --detach files,outline   # Preview with panes floating
  dockpane show --json                   # Dump the layout summary
  dockpane show --toolkit gtk            # Open the layout in a GTK window`,
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringSliceVarP(&showDetach, "detach", "d", nil, "panes to detach before rendering")
	showCmd.Flags().StringVarP(&showTheme, "theme", "t", "", "theme to apply")
	showCmd.Flags().StringVar(&showToolkit, "toolkit", cli.ToolkitHeadless, toolkitUsage())
	showCmd.Flags().BoolVar(&showTree, "tree", false, "print the container tree instead of a preview")
	showCmd.Flags().BoolVar(&showJSON, "json", false, "output the layout summary as JSON")
	showCmd.Flags().IntVar(&showWidth, "width", 0, "preview width in columns (default: 80)")
	showCmd.Flags().IntVar(&showHeight, "height", 0, "preview height in rows (default: 24)")
}

func runShow(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	session, err := openSession(a, showToolkit, showTheme, showDetach)
	if err != nil {
		return err
	}
	defer session.Close(a.Ctx())

	summary := session.Layout.Summary()
	out := cmd.OutOrStdout()

	if showJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(summary); err != nil {
			return err
		}
		return display(a, session)
	}

	renderer := styles.NewLayoutRenderer(styles.NewTheme(a.Record(summary.Theme)))
	if showTree {
		fmt.Fprintln(out, renderer.RenderTree(summary))
	} else {
		cols := firstPositive(showWidth, 80)
		rows := firstPositive(showHeight, 24)
		fmt.Fprintln(out, renderer.RenderPreview(summary, "", cols, rows))
	}
	fmt.Fprintln(out, renderer.RenderStatus(summary))
	return display(a, session)
}

// display keeps the layout on screen until its window is closed. Headless
// sessions return at once.
func display(a *cli.App, session *cli.Session) error {
	if !session.Toolkit.Display() {
		return nil
	}
	logging.FromContext(a.Ctx()).Info().Str("toolkit", session.Toolkit.Name()).Msg("showing layout until its window is closed")
	return session.Toolkit.Run(a.Ctx())
}

func firstPositive(values ...int) int {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}
