package extract

// TranscriptSchema returns the JSON Schema for structured transcript
// extraction. Every course field is extracted as the literal string
// printed on the document; normalization happens downstream, so the
// schema deliberately avoids numeric types.
func TranscriptSchema() *Schema {
	return &Schema{
		Name:        "transcript",
		Description: "Structured contents of an academic transcript",
		Definition: map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"required":             []any{"student_name", "institution", "courses"},
			"properties": map[string]any{
				"student_name": map[string]any{
					"type":        "string",
					"description": "Student name as printed on the transcript",
				},
				"student_id": map[string]any{
					"type":        "string",
					"description": "Student identifier, empty if not printed",
				},
				"institution": map[string]any{
					"type":     "object",
					"required": []any{"name", "credit_system"},
					"properties": map[string]any{
						"name":     map[string]any{"type": "string"},
						"location": map[string]any{"type": "string"},
						"credit_system": map[string]any{
							"type":        "string",
							"description": "Credit system the institution uses",
							"enum":        []any{"semester", "quarter"},
						},
					},
				},
				"courses": map[string]any{
					"type":  "array",
					"items": courseSchema(),
				},
				"stated_total_credits": map[string]any{
					"type":        "string",
					"description": "Total credits printed on the transcript, empty if absent",
				},
			},
		},
	}
}

func courseSchema() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []any{"course_code", "credits", "grade"},
		"properties": map[string]any{
			"course_code": map[string]any{
				"type":        "string",
				"description": "Course code exactly as printed, e.g. ENG101",
			},
			"course_name": map[string]any{"type": "string"},
			"credits": map[string]any{
				"type":        "string",
				"description": "Credit value exactly as printed",
			},
			"grade": map[string]any{
				"type":        "string",
				"description": "Grade exactly as printed",
			},
			"term": map[string]any{"type": "string"},
			"year": map[string]any{"type": "string"},
			"field_confidence": map[string]any{
				"type":        "object",
				"description": "Per-field extraction confidence, 0 to 1",
				"properties": map[string]any{
					"course_code": map[string]any{"type": "number"},
					"grade":       map[string]any{"type": "number"},
					"credits":     map[string]any{"type": "number"},
				},
			},
		},
	}
}
