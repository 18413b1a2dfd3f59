package layoutfile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/dockpane/internal/ui/headless"
	"github.com/bnema/dockpane/internal/ui/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
theme: light
root:
  direction: row
  children:
    - pane:
        name: a
        title: Alpha
        weight: 2
        min_size: 50
    - container:
        id: side
        direction: column
        children:
          - pane: {name: b, detachable: false}
          - pane:
              name: c
              icon: view-list-symbolic
              floating: {default_width: 400, custom_titlebar: true, scrollable: true}
`

func TestParse(t *testing.T) {
	def, err := Parse([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, "light", def.Theme)
	assert.Equal(t, []string{"a", "b", "c"}, def.PaneNames())
	require.Len(t, def.Root.Children, 2)
	assert.Equal(t, "side", def.Root.Children[1].Container.ID)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"unknown key", "root:\n  direction: row\n  colour: red\n  children: []\n"},
		{"bad type", "root:\n  weight: heavy\n  children: []\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestDefinition_Tree(t *testing.T) {
	def, err := Parse([]byte(sample))
	require.NoError(t, err)

	root, err := def.Tree(nil)
	require.NoError(t, err)
	assert.Equal(t, layout.DirectionRow, root.Direction)
	assert.InDelta(t, 1, root.Weight, 1e-9)
	require.Len(t, root.Children, 2)

	a := root.Children[0].(*layout.Pane)
	assert.Equal(t, "Alpha", a.Title)
	assert.InDelta(t, 2, a.Weight, 1e-9)
	assert.Equal(t, 50, a.MinSize)
	assert.True(t, a.Detachable)
	assert.Nil(t, a.Builder)

	side := root.Children[1].(*layout.Container)
	assert.Equal(t, "side", side.ID)
	assert.Equal(t, layout.DirectionColumn, side.Direction)

	b := side.Children[0].(*layout.Pane)
	assert.False(t, b.Detachable)
	assert.InDelta(t, 1, b.Weight, 1e-9)

	c := side.Children[1].(*layout.Pane)
	assert.Equal(t, "view-list-symbolic", c.Icon)
	assert.Equal(t, 400, c.Floating.DefaultWidth)
	assert.True(t, c.Floating.Scrollable)
	require.NotNil(t, c.Floating.CustomTitlebar)
	assert.True(t, *c.Floating.CustomTitlebar)
	assert.True(t, c.Floating.Titlebar(false))
	assert.Nil(t, a.Floating.CustomTitlebar, "unset titlebar defers to the engine default")

	registry, err := layout.NewRegistry(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, registry.Names())
}

func TestDefinition_TreeRejectsInvalidNodes(t *testing.T) {
	both := &Definition{Root: ContainerDef{Children: []NodeDef{{
		Pane:      &PaneDef{Name: "x"},
		Container: &ContainerDef{},
	}}}}
	_, err := both.Tree(nil)
	assert.ErrorIs(t, err, ErrInvalidNode)
	assert.Contains(t, err.Error(), "root/0")

	empty := &Definition{Root: ContainerDef{Children: []NodeDef{
		{Container: &ContainerDef{Children: []NodeDef{{}}}},
	}}}
	_, err = empty.Tree(nil)
	assert.ErrorIs(t, err, ErrInvalidNode)
	assert.Contains(t, err.Error(), "root/0/0")

	badDir := &Definition{Root: ContainerDef{Direction: "diagonal"}}
	_, err = badDir.Tree(nil)
	assert.ErrorContains(t, err, "diagonal")
}

func TestPlaceholder(t *testing.T) {
	def, err := Parse([]byte(sample))
	require.NoError(t, err)
	factory := headless.NewFactory()

	root, err := def.Tree(Placeholder(factory))
	require.NoError(t, err)

	side := root.Children[1].(*layout.Container)
	for _, tt := range []struct {
		pane *layout.Pane
		want []string
	}{
		{root.Children[0].(*layout.Pane), []string{"Alpha"}},
		{side.Children[0].(*layout.Pane), []string{"b"}},
		{side.Children[1].(*layout.Pane), []string{"c", "view-list-symbolic"}},
	} {
		content := factory.NewBox(layout.OrientationVertical, 0)
		require.NoError(t, tt.pane.Builder(context.Background(), content))
		assert.Equal(t, tt.want, headless.Labels(content), tt.pane.Name)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	def, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "light", def.Theme)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDefault(t *testing.T) {
	def := Default()
	assert.Equal(t, []string{"files", "outline", "editor", "terminal"}, def.PaneNames())

	root, err := def.Tree(nil)
	require.NoError(t, err)
	_, err = layout.NewRegistry(root)
	assert.NoError(t, err)
}

func TestMarshalRoundTrip(t *testing.T) {
	def, err := Parse([]byte(sample))
	require.NoError(t, err)

	data, err := def.Marshal()
	require.NoError(t, err)
	again, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, def, again)
}

func TestSchema(t *testing.T) {
	data, err := SchemaJSON()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "Dockpane Layout", doc["title"])

	defs, ok := doc["$defs"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, defs, "PaneDef")
	assert.Contains(t, defs, "ContainerDef")
}
