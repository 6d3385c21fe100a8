package config

//go:generate go run ../tools/schema-generator

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// GenerateSchema reflects the Config struct into a JSON Schema document.
// The schema-generator tool writes the result to jsontree.schema.json, the
// checked-in artifact embedded by the validator.
func GenerateSchema() ([]byte, error) {
	reflector := &jsonschema.Reflector{
		// Respect json tags and omit the yaml-only plumbing fields.
		ExpandedStruct:            false,
		AllowAdditionalProperties: false,
		DoNotReference:            false,
	}

	schema := reflector.Reflect(&Config{})
	schema.Title = "jsontree configuration"
	schema.Description = "Schema for jsontree.yml, the jsontree viewer configuration file."

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}
