package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// recordListSchema defines the JSON schema the embedded medication data
// must satisfy. Validated once at load.
var recordListSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name":      map[string]any{"type": "string", "minLength": 1},
			"category":  map[string]any{"type": "string", "enum": []any{"Tablet", "Capsule", "Inhaler", "Spray", "Injection"}},
			"class":     map[string]any{"type": "string", "minLength": 1},
			"dose":      map[string]any{"type": "string"},
			"frequency": map[string]any{"type": "string", "minLength": 1},
			"indication": map[string]any{
				"type": "string",
			},
			"sideEffects": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"timeCritical": map[string]any{"type": "boolean"},
		},
		"required":             []any{"name", "category", "class", "dose", "frequency", "indication", "sideEffects", "timeCritical"},
		"additionalProperties": false,
	},
	"minItems": 1,
}

// validateData checks raw JSON against recordListSchema.
func validateData(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := compileSchema()
	if err != nil {
		return err
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// compileSchema compiles recordListSchema with the jsonschema compiler.
// The library expects a parsed JSON value (any), not raw bytes.
func compileSchema() (*jsonschema.Schema, error) {
	defBytes, err := json.Marshal(recordListSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	const schemaURL = "schema://medications.json"
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	return compiled, nil
}
