package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// resultsSchemaDef describes the persisted result list. Extra properties are
// tolerated so records written by older builds still load.
var resultsSchemaDef = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type":     "object",
		"required": []any{"rawAnswers", "userInfo", "timestamp"},
		"properties": map[string]any{
			"id": map[string]any{"type": "string"},
			"rawAnswers": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []any{"questionId"},
					"properties": map[string]any{
						"questionId":  map[string]any{"type": "integer"},
						"mostLikely":  categorySchema(),
						"leastLikely": categorySchema(),
					},
				},
			},
			"userInfo": map[string]any{
				"type":     "object",
				"required": []any{"name", "email"},
				"properties": map[string]any{
					"name":  map[string]any{"type": "string"},
					"email": map[string]any{"type": "string"},
				},
			},
			"timestamp": map[string]any{"type": "string", "minLength": 1},
		},
	},
}

func categorySchema() map[string]any {
	return map[string]any{"enum": []any{"D", "I", "S", "C", nil}}
}

var (
	resultsSchemaOnce sync.Once
	resultsSchema     *jsonschema.Schema
	resultsSchemaErr  error
)

// compiledResultsSchema compiles the result list schema once.
func compiledResultsSchema() (*jsonschema.Schema, error) {
	resultsSchemaOnce.Do(func() {
		// The compiler expects a value shaped like json.Unmarshal output.
		defBytes, err := json.Marshal(resultsSchemaDef)
		if err != nil {
			resultsSchemaErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			resultsSchemaErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://disc_assessment_results.json"
		if err := c.AddResource(url, defParsed); err != nil {
			resultsSchemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		resultsSchema, resultsSchemaErr = c.Compile(url)
	})
	return resultsSchema, resultsSchemaErr
}

// validateResultsJSON checks raw against the result list schema.
func validateResultsJSON(raw string) error {
	var parsed any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := compiledResultsSchema()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
