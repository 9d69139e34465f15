package extract

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "test-course",
		Description: "A test course record",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"course_code": map[string]any{"type": "string"},
				"credits":     map[string]any{"type": "string"},
				"grade":       map[string]any{"type": "string", "enum": []any{"A", "B", "C"}},
			},
			"required": []any{"course_code", "credits"},
		},
	}
}

func TestValidateResponse_ValidJSON(t *testing.T) {
	raw := json.RawMessage(`{"course_code":"ENG101","credits":"3","grade":"A"}`)
	if err := validateResponse(testSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_ValidWithoutOptional(t *testing.T) {
	raw := json.RawMessage(`{"course_code":"ENG101","credits":"3"}`)
	if err := validateResponse(testSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"course_code":"ENG101"}`)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"course_code":"ENG101","credits":3}`)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for wrong type")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_InvalidEnum(t *testing.T) {
	raw := json.RawMessage(`{"course_code":"ENG101","credits":"3","grade":"Z"}`)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for invalid enum value")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json}`)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponse_TranscriptSchema(t *testing.T) {
	raw := json.RawMessage(`{
		"student_name": "Jordan Diaz",
		"student_id": "S-1042",
		"institution": {"name": "Riverside Community College", "location": "Riverside, CA", "credit_system": "semester"},
		"courses": [
			{"course_code": "ENG101", "course_name": "Composition I", "credits": "3", "grade": "B", "term": "Fall", "year": "2023",
			 "field_confidence": {"course_code": 0.98, "grade": 0.92, "credits": 0.95}}
		],
		"stated_total_credits": "3"
	}`)
	if err := validateResponse(TranscriptSchema(), raw); err != nil {
		t.Fatalf("transcript schema rejected valid payload: %v", err)
	}
}

func TestValidateResponse_TranscriptSchemaBadSystem(t *testing.T) {
	raw := json.RawMessage(`{
		"student_name": "Jordan Diaz",
		"institution": {"name": "X", "credit_system": "carnegie"},
		"courses": []
	}`)
	if err := validateResponse(TranscriptSchema(), raw); err == nil {
		t.Fatal("expected error for credit system outside the enum")
	}
}
