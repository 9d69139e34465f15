package rules

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// OutcomeKind is the result category of applying one rule to one course.
type OutcomeKind string

const (
	// OutcomePass means the rule has no objection.
	OutcomePass OutcomeKind = "pass"

	// OutcomeReject means the rule refuses transfer of the course.
	OutcomeReject OutcomeKind = "reject"

	// OutcomeAdjust means the rule changed the transferable credit value
	// or attached an equivalency note. Adjusts compose additively.
	OutcomeAdjust OutcomeKind = "adjust"

	// OutcomeError means the rule's predicate failed unexpectedly. The
	// engine records a warning and, under the fail-open policy, treats
	// the rule as passed.
	OutcomeError OutcomeKind = "error"
)

// Outcome is what a single rule returned for a single course. Rule
// predicates return Outcomes instead of raising: failures never cross the
// engine boundary as panics.
type Outcome struct {
	Kind OutcomeKind

	// NewCredits is the adjusted credit value for OutcomeAdjust.
	NewCredits decimal.Decimal

	// Reason explains a reject or adjust in transcript-report language.
	Reason string

	// Warning carries the engine-level warning for OutcomeError, or an
	// advisory note a passing rule wants surfaced.
	Warning string
}

// Pass returns a no-objection outcome.
func Pass() Outcome { return Outcome{Kind: OutcomePass} }

// PassWarn returns a pass that still surfaces a warning.
func PassWarn(format string, args ...any) Outcome {
	return Outcome{Kind: OutcomePass, Warning: fmt.Sprintf(format, args...)}
}

// Reject returns a rejection with the given reason.
func Reject(reason string) Outcome {
	return Outcome{Kind: OutcomeReject, Reason: reason}
}

// Adjust returns an adjusted credit value with the given reason.
func Adjust(credits decimal.Decimal, reason string) Outcome {
	return Outcome{Kind: OutcomeAdjust, NewCredits: credits, Reason: reason}
}

// Errf returns an error outcome with a formatted warning.
func Errf(format string, args ...any) Outcome {
	return Outcome{Kind: OutcomeError, Warning: fmt.Sprintf(format, args...)}
}

// Applied records one rule's outcome in a verdict, in evaluation order.
type Applied struct {
	RuleID string      `json:"rule_id"`
	Kind   OutcomeKind `json:"outcome"`
	Reason string      `json:"reason,omitempty"`
}
