package rules

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/dmejia/credeval/internal/transcript"
)

// Type tags the policy concern a rule checks.
type Type string

const (
	TypeGrade       Type = "grade"
	TypeCredit      Type = "credit"
	TypeEquivalency Type = "equivalency"
	TypeInstitution Type = "institution"
	TypeTime        Type = "time"
	TypeProgram     Type = "program"
)

// AllTypes returns the closed set of rule types.
func AllTypes() []Type {
	return []Type{TypeGrade, TypeCredit, TypeEquivalency, TypeInstitution, TypeTime, TypeProgram}
}

// Priority orders rule evaluation. Lower value = higher precedence.
type Priority int

const (
	PriorityCritical Priority = 1
	PriorityHigh     Priority = 2
	PriorityMedium   Priority = 3
	PriorityLow      Priority = 4
)

// DisplayName returns a human-readable label for the priority.
func (p Priority) DisplayName() string {
	switch p {
	case PriorityCritical:
		return "Critical"
	case PriorityHigh:
		return "High"
	case PriorityMedium:
		return "Medium"
	case PriorityLow:
		return "Low"
	default:
		return fmt.Sprintf("Priority(%d)", int(p))
	}
}

func (p Priority) valid() bool {
	return p >= PriorityCritical && p <= PriorityLow
}

// Rule is one transfer-credit policy check: a tagged variant over the rule
// types, carrying the typed parameters for its tag. Rules are immutable
// value objects built at configuration time and never mutated during
// evaluation.
//
// Reason is a fmt template; the dispatch for each type feeds it one value
// (the offending grade, credit count, level, institution name, or age).
type Rule struct {
	ID       string
	Name     string
	Type     Type
	Priority Priority
	Reason   string

	Grade       *GradeParams
	Credit      *CreditParams
	Equivalency *EquivalencyParams
	Institution *InstitutionParams
	Time        *TimeParams
	Program     *ProgramParams
}

// GradeParams rejects courses whose canonical grade is outside the set.
type GradeParams struct {
	Valid map[transcript.Grade]bool
}

// CreditParams rejects courses whose credit value falls outside (Min, Max].
type CreditParams struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

// EquivalencyParams covers course-match checks: the minimum course level
// eligible for transfer, and optional code-to-code equivalency mappings.
type EquivalencyParams struct {
	// MinLevel, when positive, rejects courses below it (intro courses
	// have no college-level equivalent).
	MinLevel int

	// Matches maps sending-institution course codes to local equivalents.
	// A match adjusts nothing; it adds the equivalency to the reasons.
	Matches map[string]string
}

// InstitutionParams rejects courses from institutions outside the approved
// set. An empty set means no approval list is configured and every
// institution passes.
type InstitutionParams struct {
	Approved map[string]bool
}

// TimeParams restricts course recency.
type TimeParams struct {
	// MaxAgeYears is the recency window.
	MaxAgeYears int

	// WarnOnly downgrades a stale course from rejection to a warning.
	WarnOnly bool
}

// ProgramParams applies program-specific credit overrides by course code.
// Lowest priority, additive only.
type ProgramParams struct {
	Program string

	// CreditOverrides replaces the adjusted credit value for listed codes.
	CreditOverrides map[string]decimal.Decimal
}

// Validate checks the rule definition. A malformed definition is a
// configuration-time fatal error; the engine refuses to start with one.
func (r Rule) Validate() error {
	if r.ID == "" {
		return &ConfigError{Msg: "rule is missing an id"}
	}
	if !r.Priority.valid() {
		return &ConfigError{RuleID: r.ID, Msg: fmt.Sprintf("invalid priority %d", r.Priority)}
	}

	var params any
	switch r.Type {
	case TypeGrade:
		if r.Grade != nil && len(r.Grade.Valid) == 0 {
			return &ConfigError{RuleID: r.ID, Msg: "grade rule has an empty valid-grade set"}
		}
		params = r.Grade
	case TypeCredit:
		if r.Credit != nil && !r.Credit.Max.GreaterThan(r.Credit.Min) {
			return &ConfigError{RuleID: r.ID, Msg: "credit rule max must exceed min"}
		}
		params = r.Credit
	case TypeEquivalency:
		params = r.Equivalency
	case TypeInstitution:
		params = r.Institution
	case TypeTime:
		if r.Time != nil && r.Time.MaxAgeYears <= 0 {
			return &ConfigError{RuleID: r.ID, Msg: "time rule needs a positive age window"}
		}
		params = r.Time
	case TypeProgram:
		params = r.Program
	default:
		return &ConfigError{RuleID: r.ID, Msg: fmt.Sprintf("unknown rule type %q", r.Type)}
	}

	if isNilParams(params) {
		return &ConfigError{RuleID: r.ID, Msg: fmt.Sprintf("missing %s parameters", r.Type)}
	}
	return nil
}

func isNilParams(p any) bool {
	switch v := p.(type) {
	case *GradeParams:
		return v == nil
	case *CreditParams:
		return v == nil
	case *EquivalencyParams:
		return v == nil
	case *InstitutionParams:
		return v == nil
	case *TimeParams:
		return v == nil
	case *ProgramParams:
		return v == nil
	default:
		return p == nil
	}
}

// ConfigError is a malformed rule definition or policy constant. Fatal at
// engine construction, never encountered mid-evaluation.
type ConfigError struct {
	RuleID string
	Msg    string
}

func (e *ConfigError) Error() string {
	if e.RuleID != "" {
		return fmt.Sprintf("rule %q: %s", e.RuleID, e.Msg)
	}
	return e.Msg
}
