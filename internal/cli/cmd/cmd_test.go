package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockpane/internal/domain/build"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestVersionCommand(t *testing.T) {
	SetBuildInfo(build.Info{Version: "1.0.0", Commit: "abcdef0123"})
	t.Cleanup(func() { SetBuildInfo(build.Info{}) })

	assert.Equal(t, "dockpane 1.0.0 (abcdef0)\n", execute(t, "version"))
}

func TestSchemaCommand_Layout(t *testing.T) {
	out := execute(t, "schema", "layout")

	var schema map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &schema))
	assert.Equal(t, "Dockpane Layout", schema["title"])
}

func TestSchemaCommand_ConfigToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.schema.json")
	t.Cleanup(func() { schemaOutput = "" })

	out := execute(t, "schema", "config", "--output", path)
	assert.Contains(t, out, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Dockpane Configuration")
}

func TestGenDocs_Markdown(t *testing.T) {
	dir := t.TempDir()
	t.Cleanup(func() {
		genDocsOutputDir = ""
		genDocsFormat = "man"
	})

	out := execute(t, "gen-docs", "--format", "markdown", "--output", dir)
	assert.Contains(t, out, "dockpane_show.md")

	files, err := generatedFiles(dir, ".md")
	require.NoError(t, err)
	assert.Contains(t, files, "dockpane.md")
	assert.Contains(t, files, "dockpane_state_save.md")
}

func TestUserManDir(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/data")
	dir, err := userManDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/data", "man", "man1"), dir)
}

func TestFirstPositive(t *testing.T) {
	assert.Equal(t, 80, firstPositive(0, 80))
	assert.Equal(t, 5, firstPositive(5, 80))
}

func TestToolkitFlag(t *testing.T) {
	assert.Contains(t, toolkitUsage(), "headless")
	for _, c := range []string{"show", "interactive"} {
		sub, _, err := rootCmd.Find([]string{c})
		require.NoError(t, err)
		flag := sub.Flags().Lookup("toolkit")
		require.NotNil(t, flag, c)
		assert.Equal(t, "headless", flag.DefValue)
	}
}
