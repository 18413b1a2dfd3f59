package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/dockpane/internal/cli/styles"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List built-in and configured themes",
	Long: `List every registered theme with a swatch of its palette.

Custom themes are declared under appearance.themes in the config
file. The configured default is marked.`,
	RunE: runThemes,
}

func init() {
	rootCmd.AddCommand(themesCmd)
}

func runThemes(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	renderer := styles.NewThemesRenderer(a.Theme)
	fmt.Fprintln(cmd.OutOrStdout(), renderer.Render(a.Records(), a.Config.Appearance.Theme))
	return nil
}
