package content

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// courseSchema constrains course.json to a closed lesson record: enumerated
// fields only, no open-ended key/value bags.
var courseSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"course": map[string]any{"type": "string"},
		"lessons": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":    "string",
						"pattern": "^[a-z][a-z0-9-]*$",
					},
					"title":   map[string]any{"type": "string", "minLength": 1},
					"summary": map[string]any{"type": "string"},
					"unit": map[string]any{
						"type": "string",
						"enum": []any{
							"python-basics",
							"data-structures",
							"control-flow",
							"functions",
							"modules-packages",
						},
					},
					"order":          map[string]any{"type": "integer", "minimum": 1},
					"estimated_mins": map[string]any{"type": "integer", "minimum": 1},
					"objectives": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"prerequisites": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"body": map[string]any{
						"type":    "string",
						"pattern": "\\.md$",
					},
				},
				"required": []any{
					"id", "title", "unit", "order", "prerequisites", "body",
				},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"course", "lessons"},
	"additionalProperties": false,
}

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// validateCourse validates raw course.json bytes against courseSchema.
func validateCourse(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("course.json is not valid JSON: %w", err)
	}

	compiled, err := getCompiledSchema()
	if err != nil {
		return fmt.Errorf("compile course schema: %w", err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("course.json schema validation failed: %w", err)
	}
	return nil
}

// getCompiledSchema compiles courseSchema once and caches the result.
func getCompiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not
		// raw bytes. Marshal then unmarshal for a clean representation.
		defBytes, err := json.Marshal(courseSchema)
		if err != nil {
			schemaErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			schemaErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://course.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}
