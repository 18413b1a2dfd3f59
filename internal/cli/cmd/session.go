package cmd

import (
	"fmt"
	"strings"

	"github.com/bnema/dockpane/internal/cli"
	"github.com/bnema/dockpane/internal/logging"
)

var layoutFile string

func toolkitUsage() string {
	return fmt.Sprintf("toolkit to build on (%s)", strings.Join(cli.ToolkitNames(), ", "))
}

// openSession builds a layout engine for the --file definition on the named
// toolkit, then applies themeOverride and detaches the named panes in order.
func openSession(a *cli.App, toolkit, themeOverride string, detach []string) (*cli.Session, error) {
	def, err := cli.LoadDefinition(layoutFile)
	if err != nil {
		return nil, err
	}
	if themeOverride != "" {
		def.Theme = themeOverride
	}

	tk, err := cli.OpenToolkit(toolkit)
	if err != nil {
		return nil, err
	}
	session, err := cli.NewSession(a.Ctx(), a.Config, a.Themes, def, cli.WithToolkit(tk))
	if err != nil {
		tk.Close()
		return nil, fmt.Errorf("build layout: %w", err)
	}
	logging.FromContext(a.Ctx()).Debug().Str("toolkit", tk.Name()).Str("layout", def.Name).Msg("session opened")

	for _, name := range detach {
		changed, err := session.Layout.Detach(a.Ctx(), name)
		if err != nil {
			session.Close(a.Ctx())
			return nil, err
		}
		if !changed {
			fmt.Println(a.Theme.WarningStyle.Render(fmt.Sprintf("%s was not detached", name)))
		}
	}
	return session, nil
}
