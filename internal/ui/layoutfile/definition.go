// Package layoutfile reads layout definitions from YAML and turns them into
// layout trees.
package layoutfile

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidNode is returned for a child that is neither a pane nor a
// container, or is both.
var ErrInvalidNode = errors.New("node must hold exactly one of pane or container")

//go:embed default.yaml
var defaultDefinition []byte

// Definition is the top-level document of a layout file.
type Definition struct {
	Theme  string       `yaml:"theme,omitempty" json:"theme,omitempty" jsonschema:"description=Theme applied when the layout is constructed"`
	Width  int          `yaml:"width,omitempty" json:"width,omitempty" jsonschema:"minimum=0,description=Host width in pixels"`
	Height int          `yaml:"height,omitempty" json:"height,omitempty" jsonschema:"minimum=0,description=Host height in pixels"`
	Root   ContainerDef `yaml:"root" json:"root" jsonschema:"required"`
}

// ContainerDef describes a container node.
type ContainerDef struct {
	ID        string    `yaml:"id,omitempty" json:"id,omitempty" jsonschema:"description=Stable key used for persisted weights"`
	Direction string    `yaml:"direction,omitempty" json:"direction,omitempty" jsonschema:"enum=row,enum=column,enum=horizontal,enum=vertical,default=row"`
	Weight    float64   `yaml:"weight,omitempty" json:"weight,omitempty" jsonschema:"exclusiveMinimum=0,default=1"`
	Children  []NodeDef `yaml:"children" json:"children"`
}

// NodeDef is one child of a container.
type NodeDef struct {
	Pane      *PaneDef      `yaml:"pane,omitempty" json:"pane,omitempty"`
	Container *ContainerDef `yaml:"container,omitempty" json:"container,omitempty"`
}

// PaneDef describes a pane. Detachable defaults to true.
type PaneDef struct {
	Name       string      `yaml:"name" json:"name" jsonschema:"required,minLength=1"`
	Title      string      `yaml:"title,omitempty" json:"title,omitempty"`
	Icon       string      `yaml:"icon,omitempty" json:"icon,omitempty" jsonschema:"description=Symbolic icon name shown in the header"`
	Weight     float64     `yaml:"weight,omitempty" json:"weight,omitempty" jsonschema:"exclusiveMinimum=0,default=1"`
	MinSize    int         `yaml:"min_size,omitempty" json:"min_size,omitempty" jsonschema:"minimum=0"`
	MaxSize    int         `yaml:"max_size,omitempty" json:"max_size,omitempty" jsonschema:"minimum=0"`
	Detachable *bool       `yaml:"detachable,omitempty" json:"detachable,omitempty" jsonschema:"default=true"`
	Floating   FloatingDef `yaml:"floating,omitempty" json:"floating,omitempty"`
}

// FloatingDef holds per-pane floating window options.
type FloatingDef struct {
	DefaultWidth   int   `yaml:"default_width,omitempty" json:"default_width,omitempty" jsonschema:"minimum=0"`
	DefaultHeight  int   `yaml:"default_height,omitempty" json:"default_height,omitempty" jsonschema:"minimum=0"`
	MinWidth       int   `yaml:"min_width,omitempty" json:"min_width,omitempty" jsonschema:"minimum=0"`
	MinHeight      int   `yaml:"min_height,omitempty" json:"min_height,omitempty" jsonschema:"minimum=0"`
	CustomTitlebar *bool `yaml:"custom_titlebar,omitempty" json:"custom_titlebar,omitempty" jsonschema:"description=Overrides floating.custom_titlebar from the config"`
	Scrollable     bool  `yaml:"scrollable,omitempty" json:"scrollable,omitempty"`
}

// Parse decodes a YAML definition. Unknown keys are rejected.
func Parse(data []byte) (*Definition, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var def Definition
	if err := dec.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("layout definition is empty")
		}
		return nil, fmt.Errorf("failed to parse layout definition: %w", err)
	}
	return &def, nil
}

// Load reads and parses the definition at path.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout file %s: %w", path, err)
	}
	def, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

// Default returns the built-in editor-style layout.
func Default() *Definition {
	def, err := Parse(defaultDefinition)
	if err != nil {
		panic(err)
	}
	return def
}

// Marshal encodes the definition back to YAML.
func (d *Definition) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// PaneNames returns every pane name in document order.
func (d *Definition) PaneNames() []string {
	var names []string
	var visit func(c *ContainerDef)
	visit = func(c *ContainerDef) {
		for _, child := range c.Children {
			switch {
			case child.Pane != nil:
				names = append(names, child.Pane.Name)
			case child.Container != nil:
				visit(child.Container)
			}
		}
	}
	visit(&d.Root)
	return names
}
