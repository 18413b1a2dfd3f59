package layoutfile

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// Schema returns the JSON schema of a layout definition file.
func Schema() *jsonschema.Schema {
	r := new(jsonschema.Reflector)
	r.FieldNameTag = "yaml"
	schema := r.Reflect(&Definition{})

	schema.ID = "https://github.com/bnema/dockpane/layout.schema.json"
	schema.Title = "Dockpane Layout"
	schema.Description = "Pane tree definition loaded by dockpane show and dockpane interactive"
	return schema
}

// SchemaJSON returns the indented JSON encoding of Schema.
func SchemaJSON() ([]byte, error) {
	return json.MarshalIndent(Schema(), "", "  ")
}
