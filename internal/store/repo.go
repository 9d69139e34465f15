package store

import (
	"context"
	"time"
)

// QueryOpts configures audit queries with filtering and pagination.
type QueryOpts struct {
	Limit int       // max results (0 = unlimited)
	After int64     // sequence > After
	From  time.Time // timestamp >= From
	To    time.Time // timestamp <= To
}

// CourseVerdict is one course's audited outcome: the course identity, the
// final decision, and the rules that produced it.
type CourseVerdict struct {
	Code         string
	Accepted     bool
	Credits      string
	AppliedRules []string
	Reasons      []string
}

// EvaluationEventData is the audit record for one transcript evaluation
// run: input identity, rule-set version, per-course verdicts, and the
// aggregate outcome.
type EvaluationEventData struct {
	RunID         string
	Institution   string
	PolicyVersion string
	Fingerprint   string
	CourseCount   int
	AcceptedCount int
	RejectedCount int
	TotalCredits  string
	WarningCount  int
	DurationMs    int64
	Verdicts      []CourseVerdict
}

// EvaluationRecord is a persisted evaluation event.
type EvaluationRecord struct {
	Sequence  int64
	Timestamp time.Time
	EvaluationEventData
}

// ExtractionEventData captures one extraction-provider call.
type ExtractionEventData struct {
	Provider     string
	Model        string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// AuditRepo provides append and query access to audit events. The core
// pipeline only appends; persistence and retention are the store's concern.
type AuditRepo interface {
	// AppendEvaluation records a completed transcript evaluation.
	AppendEvaluation(ctx context.Context, data EvaluationEventData) error

	// AppendExtraction records an extraction-provider API call.
	AppendExtraction(ctx context.Context, data ExtractionEventData) error

	// Evaluations returns persisted evaluation events, newest first.
	Evaluations(ctx context.Context, opts QueryOpts) ([]EvaluationRecord, error)
}

// NopAuditRepo discards all events. Used by library consumers that do their
// own auditing and by tests.
type NopAuditRepo struct{}

func (NopAuditRepo) AppendEvaluation(context.Context, EvaluationEventData) error { return nil }
func (NopAuditRepo) AppendExtraction(context.Context, ExtractionEventData) error { return nil }
func (NopAuditRepo) Evaluations(context.Context, QueryOpts) ([]EvaluationRecord, error) {
	return nil, nil
}
