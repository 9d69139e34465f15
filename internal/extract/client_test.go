package extract

import (
	"context"
	"encoding/json"
	"testing"
)

const sampleExtraction = `{
	"student_name": "Jordan Diaz",
	"student_id": "S-1042",
	"institution": {"name": "Riverside Community College", "location": "Riverside, CA", "credit_system": "quarter"},
	"courses": [
		{"course_code": "ENG101", "course_name": "Composition I", "credits": "4.5", "grade": "B", "term": "Fall", "year": "2023",
		 "field_confidence": {"course_code": 0.98, "grade": 0.4, "credits": 0.95}},
		{"course_code": "HIS201", "course_name": "US History", "credits": "4.5", "grade": "A-", "term": "Winter", "year": "2024"}
	],
	"stated_total_credits": "9"
}`

func TestExtractorTranscript(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(sampleExtraction)},
	)
	ex := NewExtractor(mock, DefaultConfig(), nil)

	raw, signals, err := ex.Transcript(context.Background(), "TRANSCRIPT OF RECORD ...")
	if err != nil {
		t.Fatalf("Transcript: %v", err)
	}

	if raw.Institution.Name != "Riverside Community College" {
		t.Errorf("institution = %q", raw.Institution.Name)
	}
	if raw.Institution.CreditSystem != "quarter" {
		t.Errorf("credit system = %q", raw.Institution.CreditSystem)
	}
	if len(raw.Courses) != 2 {
		t.Fatalf("courses = %d, want 2", len(raw.Courses))
	}
	if raw.Courses[0].Grade != "B" || raw.Courses[0].Credits != "4.5" {
		t.Errorf("course[0] = %+v", raw.Courses[0])
	}
	if raw.StatedTotalCredits != "9" {
		t.Errorf("stated total = %q", raw.StatedTotalCredits)
	}

	// First course carried confidence hints, second did not.
	sig, ok := signals[0]
	if !ok {
		t.Fatal("no signals for course 0")
	}
	if sig["grade"].ModelConfidence != 0.4 {
		t.Errorf("grade confidence = %v, want 0.4", sig["grade"].ModelConfidence)
	}
	if sig["grade"].Method != "llm" {
		t.Errorf("method = %q, want llm", sig["grade"].Method)
	}
	if _, ok := signals[1]; ok {
		t.Error("unexpected signals for course 1")
	}

	// The request carried the schema and the document text.
	if mock.Calls[0].Schema == nil || mock.Calls[0].Schema.Name != "transcript" {
		t.Error("request missing transcript schema")
	}
	if len(mock.Calls[0].Messages) != 1 {
		t.Fatalf("messages = %d, want 1", len(mock.Calls[0].Messages))
	}
}

func TestExtractorEmptyText(t *testing.T) {
	ex := NewExtractor(NewMockProvider(), DefaultConfig(), nil)
	if _, _, err := ex.Transcript(context.Background(), "   "); err == nil {
		t.Fatal("expected error for empty text")
	}
}

func TestExtractorProviderError(t *testing.T) {
	ex := NewExtractor(NewMockProvider(), DefaultConfig(), nil)
	if _, _, err := ex.Transcript(context.Background(), "some text"); err == nil {
		t.Fatal("expected error when provider has no responses")
	}
}

func TestExtractorOutOfRangeConfidenceDropped(t *testing.T) {
	payload := `{
		"student_name": "A",
		"institution": {"name": "X", "credit_system": "semester"},
		"courses": [
			{"course_code": "ENG101", "credits": "3", "grade": "B",
			 "field_confidence": {"grade": 1.7}}
		]
	}`
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(payload)})
	ex := NewExtractor(mock, DefaultConfig(), nil)

	_, signals, err := ex.Transcript(context.Background(), "text")
	if err != nil {
		t.Fatalf("Transcript: %v", err)
	}
	if got := signals[0]["grade"].ModelConfidence; got != -1 {
		t.Errorf("out-of-range hint kept: %v", got)
	}
}
