package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/dockpane/internal/infrastructure/config"
	"github.com/bnema/dockpane/internal/ui/layoutfile"
)

const filePerm = 0o644

var schemaOutput string

var schemaCmd = &cobra.Command{
	Use:       "schema <layout|config>",
	Short:     "Print the JSON schema for layout files or the config file",
	ValidArgs: []string{"layout", "config"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Long: `Print the JSON schema of layout definition files or of the config file.

Point your editor's YAML language server at the output for completion and
validation.

Examples:
  dockpane schema layout > layout.schema.json
  dockpane schema config --output config.schema.json
  dockpane schema config --install   # write next to the config file`,
	RunE: runSchema,
}

var schemaInstall bool

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().StringVarP(&schemaOutput, "output", "o", "", "write to a file instead of stdout")
	schemaCmd.Flags().BoolVar(&schemaInstall, "install", false, "write the config schema to the config directory")
}

func runSchema(cmd *cobra.Command, args []string) error {
	if schemaInstall {
		if args[0] != "config" {
			return fmt.Errorf("--install only applies to the config schema")
		}
		path, err := config.GenerateSchemaFile()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	}

	var (
		data []byte
		err  error
	)
	switch args[0] {
	case "layout":
		data, err = layoutfile.SchemaJSON()
	case "config":
		data, err = json.MarshalIndent(config.Schema(), "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}

	if schemaOutput == "" {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}
	if err := os.WriteFile(schemaOutput, data, filePerm); err != nil {
		return fmt.Errorf("write schema: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", schemaOutput)
	return nil
}
