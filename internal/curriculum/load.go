package curriculum

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// curriculumSchema is the JSON Schema for authored curriculum files. It
// catches shape errors with readable messages before the stricter Go-side
// validation runs.
var curriculumSchema = map[string]any{
	"type":     "object",
	"required": []any{"name", "quests"},
	"properties": map[string]any{
		"name": map[string]any{"type": "string", "minLength": 1},
		"quests": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type":     "object",
				"required": []any{"title", "type", "category", "initialStatus", "maxStars"},
				"properties": map[string]any{
					"title":         map[string]any{"type": "string", "minLength": 1},
					"type":          map[string]any{"enum": []any{"lesson", "challenge", "boss", "concept"}},
					"category":      map[string]any{"enum": []any{"foundation", "technique", "flavor", "cuisine", "advanced"}},
					"cuisineType":   map[string]any{"enum": []any{"french", "asian", "italian"}},
					"initialStatus": map[string]any{"enum": []any{"locked", "available", "completed"}},
					"stars":         map[string]any{"type": "integer", "minimum": 0},
					"maxStars":      map[string]any{"type": "integer", "minimum": 0},
					"prerequisites": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"lesson": map[string]any{
						"type":     "object",
						"required": []any{"heading", "description", "steps"},
					},
					"minigame": map[string]any{
						"type":     "object",
						"required": []any{"title", "type", "difficulty", "requiredScore", "questions"},
						"properties": map[string]any{
							"type":          map[string]any{"enum": []any{"matching", "fill-in-blank", "multiple-choice", "image-association"}},
							"difficulty":    map[string]any{"enum": []any{"easy", "medium", "hard"}},
							"requiredScore": map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
							"timeLimit":     map[string]any{"type": "integer", "minimum": 0},
							"questions":     map[string]any{"type": "array", "minItems": 1},
						},
					},
				},
			},
		},
	},
}

var (
	compiledSchema    *jsonschema.Schema
	compiledSchemaErr error
	compileSchemaOnce sync.Once
)

func schema() (*jsonschema.Schema, error) {
	compileSchemaOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value, not raw
		// bytes. Marshal then unmarshal to get a clean representation.
		b, err := json.Marshal(curriculumSchema)
		if err != nil {
			compiledSchemaErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		var parsed any
		if err := json.Unmarshal(b, &parsed); err != nil {
			compiledSchemaErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		const url = "schema://curriculum.json"
		if err := c.AddResource(url, parsed); err != nil {
			compiledSchemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compiledSchemaErr = c.Compile(url)
	})
	return compiledSchema, compiledSchemaErr
}

// Load parses an authored curriculum from JSON, validates it against the
// schema and then against the full Go-side rules (unique titles, acyclic
// prerequisites, initial statuses). The returned curriculum is ready to
// seed.
func Load(r io.Reader) (*Curriculum, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read curriculum: %w", err)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	sch, err := schema()
	if err != nil {
		return nil, err
	}
	if err := sch.Validate(parsed); err != nil {
		return nil, fmt.Errorf("curriculum schema: %w", err)
	}

	var cur Curriculum
	if err := json.Unmarshal(raw, &cur); err != nil {
		return nil, fmt.Errorf("decode curriculum: %w", err)
	}
	if err := cur.Validate(); err != nil {
		return nil, err
	}
	return &cur, nil
}
