package store

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func evalData(runID string) EvaluationEventData {
	return EvaluationEventData{
		RunID:         runID,
		Institution:   "Riverside Community College",
		PolicyVersion: "v1.0.0",
		Fingerprint:   "abc123",
		CourseCount:   12,
		AcceptedCount: 10,
		RejectedCount: 2,
		TotalCredits:  "31.5",
		WarningCount:  1,
		DurationMs:    42,
		Verdicts: []CourseVerdict{
			{Code: "ENG101", Accepted: true, Credits: "3", AppliedRules: []string{"grade-minimum", "course-level"}},
			{Code: "MTH050", Accepted: false, Credits: "0", AppliedRules: []string{"grade-minimum", "course-level"}, Reasons: []string{"course level below 100"}},
		},
	}
}

func TestAppendAndQueryEvaluations(t *testing.T) {
	s := openTestStore(t)
	repo := s.AuditRepo()
	ctx := context.Background()

	for _, id := range []string{"run-1", "run-2", "run-3"} {
		if err := repo.AppendEvaluation(ctx, evalData(id)); err != nil {
			t.Fatalf("append %s: %v", id, err)
		}
	}

	records, err := repo.Evaluations(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("records = %d, want 3", len(records))
	}

	// Newest first.
	if records[0].RunID != "run-3" || records[2].RunID != "run-1" {
		t.Errorf("order = %s..%s, want run-3..run-1", records[0].RunID, records[2].RunID)
	}

	got := records[0]
	if got.Institution != "Riverside Community College" {
		t.Errorf("institution = %q", got.Institution)
	}
	if got.TotalCredits != "31.5" {
		t.Errorf("total credits = %q", got.TotalCredits)
	}
	if got.Sequence <= records[1].Sequence {
		t.Errorf("sequence not descending: %d <= %d", got.Sequence, records[1].Sequence)
	}

	if len(got.Verdicts) != 2 {
		t.Fatalf("verdicts = %d, want 2", len(got.Verdicts))
	}
	if v := got.Verdicts[0]; v.Code != "ENG101" || !v.Accepted || v.Credits != "3" {
		t.Errorf("verdict 0 = %+v, want accepted ENG101 with 3 credits", v)
	}
	if v := got.Verdicts[1]; v.Code != "MTH050" || v.Accepted {
		t.Errorf("verdict 1 = %+v, want rejected MTH050", v)
	}
	if got.Verdicts[1].AppliedRules[1] != "course-level" {
		t.Errorf("applied rules = %v", got.Verdicts[1].AppliedRules)
	}
}

func TestQueryEvaluationsLimitAndAfter(t *testing.T) {
	s := openTestStore(t)
	repo := s.AuditRepo()
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c", "d"} {
		if err := repo.AppendEvaluation(ctx, evalData(id)); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	records, err := repo.Evaluations(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("limited records = %d, want 2", len(records))
	}

	all, err := repo.Evaluations(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query all: %v", err)
	}
	oldest := all[len(all)-1].Sequence

	after, err := repo.Evaluations(ctx, QueryOpts{After: oldest})
	if err != nil {
		t.Fatalf("query after: %v", err)
	}
	if len(after) != 3 {
		t.Fatalf("after records = %d, want 3", len(after))
	}
}

func TestSequenceSharedAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.AuditRepo()
	ctx := context.Background()

	if err := repo.AppendExtraction(ctx, ExtractionEventData{
		Provider: "anthropic", Model: "claude-haiku", Success: true,
	}); err != nil {
		t.Fatalf("append extraction: %v", err)
	}
	if err := repo.AppendEvaluation(ctx, evalData("run-1")); err != nil {
		t.Fatalf("append evaluation: %v", err)
	}

	records, err := repo.Evaluations(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("records = %d, want 1", len(records))
	}
	// The extraction consumed sequence 1, so the evaluation holds 2.
	if records[0].Sequence != 2 {
		t.Errorf("sequence = %d, want 2", records[0].Sequence)
	}
}

func TestDefaultDBPathEnvOverride(t *testing.T) {
	want := filepath.Join(t.TempDir(), "audit.db")
	t.Setenv("CREDEVAL_DB", want)

	got, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath: %v", err)
	}
	if got != want {
		t.Errorf("path = %q, want %q", got, want)
	}
}
