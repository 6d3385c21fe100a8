package config

import (
	_ "embed"
	"encoding/json"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/grovetools/jsontree/errors"
)

//go:embed jsontree.schema.json
var embeddedSchemaData []byte

// Validator validates configuration against the embedded JSON Schema.
type Validator struct {
	schema *jsonschema.Schema
}

// NewValidator creates a new schema validator, loading the embedded schema.
func NewValidator() (*Validator, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("jsontree.json", strings.NewReader(string(embeddedSchemaData))); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to add embedded schema resource")
	}

	schema, err := compiler.Compile("jsontree.json")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to compile embedded schema")
	}

	return &Validator{schema: schema}, nil
}

// Validate validates a configuration struct against the schema. The struct
// round-trips through JSON so the schema sees plain objects.
func (v *Validator) Validate(configData interface{}) error {
	jsonData, err := json.Marshal(configData)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "failed to marshal config for validation")
	}

	var dataToValidate interface{}
	if err := json.Unmarshal(jsonData, &dataToValidate); err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "failed to unmarshal config for validation")
	}

	if err := v.schema.Validate(dataToValidate); err != nil {
		if validationErr, ok := err.(*jsonschema.ValidationError); ok {
			var messages []string
			collectErrors(validationErr, &messages)
			return errors.ConfigValidation(err).
				WithDetail("problems", messages)
		}
		return errors.ConfigValidation(err)
	}
	return nil
}

// collectErrors flattens a nested validation error into leaf messages.
func collectErrors(err *jsonschema.ValidationError, out *[]string) {
	if len(err.Causes) == 0 {
		location := err.InstanceLocation
		if location == "" {
			location = "/"
		}
		*out = append(*out, location+": "+err.Message)
		return
	}
	for _, cause := range err.Causes {
		collectErrors(cause, out)
	}
}
