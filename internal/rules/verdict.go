package rules

import (
	"github.com/shopspring/decimal"

	"github.com/dmejia/credeval/internal/transcript"
)

// Verdict is the per-course outcome of a rule-engine run: accept or reject,
// the adjusted credit value, and the ordered trail of applied rules and
// reasons. Produced once per course per evaluation run; immutable after.
type Verdict struct {
	Course transcript.Course `json:"course"`

	Accepted bool `json:"accepted"`

	// AdjustedCredits is the transferable credit value after all adjusts.
	// Zero for rejected courses.
	AdjustedCredits decimal.Decimal `json:"adjusted_credits"`

	// Applied lists every evaluated rule with its outcome, in evaluation
	// order. Short-circuited rules do not appear.
	Applied []Applied `json:"applied_rules"`

	// Reasons holds reject and adjust explanations in evaluation order.
	Reasons []string `json:"reasons"`

	// Warnings holds engine-level warnings (rule failures, recency notes,
	// low-confidence fields, cap truncation).
	Warnings []string `json:"warnings,omitempty"`

	// HasConfidenceData reports whether confidence annotations exist for
	// this course. The caller gates display of the scores themselves by
	// its own permission model; the engine never checks permissions.
	HasConfidenceData bool `json:"has_confidence_data"`
}

// Accumulator carries transcript-level running state through per-course
// evaluations. Courses are processed in transcript order, so the running
// totals are deterministic.
type Accumulator struct {
	// AcceptedCredits is the running accepted semester-credit total.
	AcceptedCredits decimal.Decimal

	// AcceptedCourses counts accepted courses so far.
	AcceptedCourses int
}
