package story

// Act structure constraints
const (
	actCount = 9

	// Intended tension rating bounds. Stated in the prompt only - the schema
	// deliberately does not enforce them, preserving the original permissive
	// behavior.
	tensionMin = 1
	tensionMax = 10
)

// PremiseSchema returns the JSON schema for the premise stage.
// Note: OpenAI strict mode requires additionalProperties: false and every
// property listed in 'required'.
func PremiseSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"logline": map[string]any{
				"type":        "string",
				"description": "One-sentence hook for the story",
			},
			"paragraph": map[string]any{
				"type":        "string",
				"description": "One-paragraph premise expansion",
			},
			"protagonist": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"name": map[string]any{"type": "string"},
					"want": map[string]any{"type": "string", "description": "External goal"},
					"need": map[string]any{"type": "string", "description": "Internal need"},
					"flaw": map[string]any{"type": "string"},
				},
				"required": []string{"name", "want", "need", "flaw"},
			},
			"antagonist": map[string]any{
				"type":        "string",
				"description": "The opposing character or force",
			},
			"setting":          map[string]any{"type": "string"},
			"stakes":           map[string]any{"type": "string"},
			"central_conflict": map[string]any{"type": "string"},
			"themes": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []string{
			"logline",
			"paragraph",
			"protagonist",
			"antagonist",
			"setting",
			"stakes",
			"central_conflict",
			"themes",
		},
	}
}

// OutlineSchema returns the JSON schema for the nine-act outline stage.
// The act list and tension curve are pinned to exactly nine entries.
func OutlineSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"acts": map[string]any{
				"type":     "array",
				"minItems": actCount,
				"maxItems": actCount,
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"properties": map[string]any{
						"act":     map[string]any{"type": "integer", "description": "Act number, 1-9"},
						"title":   map[string]any{"type": "string"},
						"purpose": map[string]any{"type": "string", "description": "Structural role of this act"},
						"summary": map[string]any{"type": "string"},
						"key_events": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
						"turning_point": map[string]any{"type": "string"},
					},
					"required": []string{"act", "title", "purpose", "summary", "key_events", "turning_point"},
				},
			},
			"tension_curve": map[string]any{
				"type":        "array",
				"minItems":    actCount,
				"maxItems":    actCount,
				"description": "Tension rating per act, intended range 1-10",
				"items":       map[string]any{"type": "integer"},
			},
		},
		"required": []string{"acts", "tension_curve"},
	}
}

// ChaptersSchema returns the JSON schema for the chapter breakdown stage.
// The chapter list length is variable; matching the requested target count is
// asked for in the prompt but not schema-enforced, so chapter_count is
// advisory.
func ChaptersSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"chapter_count": map[string]any{
				"type":        "integer",
				"description": "Number of chapters in the list",
			},
			"chapters": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"properties": map[string]any{
						"number":   map[string]any{"type": "integer"},
						"title":    map[string]any{"type": "string"},
						"pov":      map[string]any{"type": "string", "description": "Point-of-view character"},
						"act":      map[string]any{"type": "integer", "description": "Outline act this chapter belongs to"},
						"goal":     map[string]any{"type": "string"},
						"conflict": map[string]any{"type": "string"},
						"outcome":  map[string]any{"type": "string"},
						"hook":     map[string]any{"type": "string", "description": "End-of-chapter hook"},
					},
					"required": []string{"number", "title", "pov", "act", "goal", "conflict", "outcome", "hook"},
				},
			},
		},
		"required": []string{"chapter_count", "chapters"},
	}
}
