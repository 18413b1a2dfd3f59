package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
)

// Schema returns the JSON schema describing Config.
func Schema() *jsonschema.Schema {
	r := new(jsonschema.Reflector)
	r.FieldNameTag = "mapstructure"
	schema := r.Reflect(&Config{})

	schema.ID = "https://github.com/bnema/dockpane/config.schema.json"
	schema.Title = "Dockpane Configuration"
	schema.Description = "Configuration schema for dockpane, a dockable multi-pane layout toolkit"
	return schema
}

// GenerateSchemaFile writes config.schema.json next to the config file.
func GenerateSchemaFile() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}

	data, err := json.MarshalIndent(Schema(), "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal schema: %w", err)
	}

	if err := os.MkdirAll(configDir, dirPerm); err != nil {
		return "", err
	}
	schemaFile := filepath.Join(configDir, "config.schema.json")
	if err := os.WriteFile(schemaFile, data, filePerm); err != nil {
		return "", fmt.Errorf("failed to write schema file: %w", err)
	}
	return schemaFile, nil
}
