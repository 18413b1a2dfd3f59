package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/dockpane/internal/cli/styles"
)

var (
	stateDetach []string
	stateTheme  string
	stateJSON   bool
)

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Manage saved layout states",
	Long: `Save, restore, list and delete named layout states.

A layout state records which panes are floating, the pane and container
weights and the theme. It is stored in the local database and can be
restored onto any layout built from the same definition.`,
}

var stateSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save a layout state",
	Long: `Build the layout, apply --detach and --theme, and store the result.

Examples:
  dockpane state save focus --detach files,outline
  dockpane state save evening --theme light`,
	Args: cobra.ExactArgs(1),
	RunE: runStateSave,
}

var stateRestoreCmd = &cobra.Command{
	Use:   "restore <name>",
	Short: "Restore a saved layout state and print the result",
	Args:  cobra.ExactArgs(1),
	RunE:  runStateRestore,
}

var stateListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List saved layout states",
	RunE:    runStateList,
}

var stateDeleteCmd = &cobra.Command{
	Use:     "delete <name>",
	Aliases: []string{"rm"},
	Short:   "Delete a saved layout state",
	Args:    cobra.ExactArgs(1),
	RunE:    runStateDelete,
}

func init() {
	rootCmd.AddCommand(stateCmd)
	stateCmd.AddCommand(stateSaveCmd, stateRestoreCmd, stateListCmd, stateDeleteCmd)

	stateSaveCmd.Flags().StringSliceVarP(&stateDetach, "detach", "d", nil, "panes to detach before saving")
	stateSaveCmd.Flags().StringVarP(&stateTheme, "theme", "t", "", "theme to save")
	stateListCmd.Flags().BoolVar(&stateJSON, "json", false, "output as JSON")
}

func runStateSave(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	session, err := openSession(a, "", stateTheme, stateDetach)
	if err != nil {
		return err
	}
	defer session.Close(a.Ctx())

	state, err := a.LayoutStates.Snapshot(a.Ctx(), args[0], session.Layout)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewStateRenderer(a.Theme).RenderSaved(args[0], state))
	return nil
}

func runStateRestore(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	session, err := openSession(a, "", "", nil)
	if err != nil {
		return err
	}
	defer session.Close(a.Ctx())

	out := cmd.OutOrStdout()
	renderer := styles.NewStateRenderer(a.Theme)

	state, err := a.LayoutStates.Apply(a.Ctx(), args[0], session.Layout)
	switch {
	case state == nil:
		return err
	case err != nil:
		// Partially restored; show what was applied
		fmt.Fprintln(out, renderer.RenderWarning(err))
	default:
		fmt.Fprintln(out, renderer.RenderRestored(args[0]))
	}

	summary := session.Layout.Summary()
	layoutRenderer := styles.NewLayoutRenderer(styles.NewTheme(a.Record(summary.Theme)))
	fmt.Fprintln(out, layoutRenderer.RenderTree(summary))
	fmt.Fprintln(out, layoutRenderer.RenderStatus(summary))
	return nil
}

// savedLayoutJSON is the JSON shape of a saved layout listing.
type savedLayoutJSON struct {
	Name      string   `json:"name"`
	Theme     string   `json:"theme,omitempty"`
	Detached  []string `json:"detached"`
	UpdatedAt string   `json:"updated_at"`
}

func runStateList(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	items, err := a.LayoutStates.List(a.Ctx())
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if stateJSON {
		rows := make([]savedLayoutJSON, 0, len(items))
		for _, item := range items {
			rows = append(rows, savedLayoutJSON{
				Name:      item.Name,
				Theme:     item.State.Theme,
				Detached:  item.State.Detached,
				UpdatedAt: item.UpdatedAt.Format(time.RFC3339),
			})
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	renderer := styles.NewStateRenderer(a.Theme)
	if len(items) == 0 {
		fmt.Fprintln(out, renderer.RenderEmptyList())
		return nil
	}
	fmt.Fprintln(out, renderer.RenderList(items))
	return nil
}

func runStateDelete(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	if err := a.LayoutStates.Delete(a.Ctx(), args[0]); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewStateRenderer(a.Theme).RenderDeleted(args[0]))
	return nil
}
