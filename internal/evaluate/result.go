package evaluate

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dmejia/credeval/internal/confidence"
	"github.com/dmejia/credeval/internal/rules"
	"github.com/dmejia/credeval/internal/transcript"
)

// Result is the outcome of evaluating one transcript: a verdict per input
// course plus transcript-level totals and provenance.
type Result struct {
	// RunID identifies this evaluation run in the audit trail.
	RunID string `json:"run_id"`

	Institution transcript.Institution `json:"institution"`

	// PolicyVersion is the semantic version of the policy snapshot the
	// verdicts were produced under.
	PolicyVersion string `json:"policy_version"`

	// Fingerprint is a stable digest over the transcript and policy
	// version. Two runs with the same fingerprint carry the same verdicts,
	// so it doubles as a cache key.
	Fingerprint string `json:"fingerprint"`

	// Verdicts holds one entry per input course, in transcript order.
	Verdicts []rules.Verdict `json:"verdicts"`

	// TotalTransferCredits is the accepted semester-credit total after the
	// transfer cap.
	TotalTransferCredits decimal.Decimal `json:"total_transfer_credits"`

	AcceptedCourses int `json:"accepted_courses"`
	RejectedCourses int `json:"rejected_courses"`

	// Warnings aggregates every course-level warning for the summary view.
	Warnings []string `json:"warnings,omitempty"`

	EvaluatedAt time.Time `json:"evaluated_at"`

	// Annotations is the confidence side table. It is not part of the
	// fingerprint: scores describe extraction quality, not the verdicts.
	Annotations *confidence.AnnotationSet `json:"-"`
}

func (r *Result) finalize(acc rules.Accumulator) {
	r.TotalTransferCredits = acc.AcceptedCredits
	r.AcceptedCourses = acc.AcceptedCourses
	r.RejectedCourses = len(r.Verdicts) - acc.AcceptedCourses

	for _, v := range r.Verdicts {
		r.Warnings = append(r.Warnings, v.Warnings...)
	}
}
