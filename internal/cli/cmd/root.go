// Package cmd provides Cobra CLI commands for dockpane.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/dockpane/internal/cli"
	"github.com/bnema/dockpane/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "dockpane",
		Short: "A flexible pane layout and detachment engine",
		Long: `Dockpane - proportional pane layouts with detachable floating windows.

A layout is a tree of row and column containers holding named panes.
Embedded panes share their container's space by weight; detachable panes
can be popped out into floating windows and reattached later, with every
pane keeping one theme.

Layouts are described in YAML (see 'dockpane schema layout') and run on a
headless toolkit from the command line:
  - Preview the embedded geometry of a layout
  - Drive detach, reattach and resizing interactively
  - Save and restore named layout states
  - Browse built-in and configured themes`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs", "version", "schema":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), buildInfo.String())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.PersistentFlags().StringVarP(&layoutFile, "file", "f", "", "layout definition file (default: built-in layout)")
}

// requireApp returns the app or an error when initialization was skipped.
func requireApp() (*cli.App, error) {
	a := GetApp()
	if a == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return a, nil
}
