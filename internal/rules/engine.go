package rules

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dmejia/credeval/internal/logger"
	"github.com/dmejia/credeval/internal/transcript"
)

// Config controls engine behavior.
type Config struct {
	// FailOpen treats a rule whose predicate fails unexpectedly as passed
	// (with a warning on the verdict). When false the engine fails closed:
	// the broken rule rejects the course instead. Either way the failure
	// is surfaced, never silently varied.
	FailOpen bool

	// Log receives engine-level warnings. Nil means no logging.
	Log logger.Logger
}

// DefaultConfig returns the standard engine config: fail-open per rule.
func DefaultConfig() Config {
	return Config{FailOpen: true}
}

// Engine orders and composes a rule set against normalized courses.
// Rule definitions are read-only after construction, so one Engine may
// serve concurrent evaluations without locking.
type Engine struct {
	rules    []Rule
	failOpen bool
	log      logger.Logger
}

// New validates every rule definition and builds an engine. A malformed
// rule is a configuration-time fatal error: New fails rather than skipping
// the rule at evaluation time.
//
// Rules evaluate in ascending priority order; within a priority, in
// registration order. The sort is stable, so ordering never depends on
// incidental map iteration.
func New(ruleSet []Rule, cfg Config) (*Engine, error) {
	for _, r := range ruleSet {
		if err := r.Validate(); err != nil {
			return nil, err
		}
	}

	seen := make(map[string]bool, len(ruleSet))
	for _, r := range ruleSet {
		if seen[r.ID] {
			return nil, &ConfigError{RuleID: r.ID, Msg: "duplicate rule id"}
		}
		seen[r.ID] = true
	}

	ordered := make([]Rule, len(ruleSet))
	copy(ordered, ruleSet)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority < ordered[j].Priority
	})

	log := cfg.Log
	if log == nil {
		log = logger.Nop()
	}

	return &Engine{rules: ordered, failOpen: cfg.FailOpen, log: log}, nil
}

// Rules returns the rule set in evaluation order.
func (e *Engine) Rules() []Rule {
	out := make([]Rule, len(e.rules))
	copy(out, e.rules)
	return out
}

// Evaluate runs every applicable rule against one course and composes the
// outcomes into a verdict.
//
// Composition semantics: a REJECT from a Critical or High rule
// short-circuits the remaining rules. Medium and Low rules may adjust
// credits cumulatively but can never overturn a rejection decided above
// them. The evaluation date is passed in so runs are reproducible.
func (e *Engine) Evaluate(c transcript.Course, inst transcript.Institution, acc Accumulator, date time.Time) Verdict {
	v := Verdict{
		Course:          c,
		Accepted:        true,
		AdjustedCredits: c.Credits,
	}

	for _, r := range e.rules {
		out := e.apply(r, c, inst, acc, date)

		if out.Kind == OutcomeError {
			warning := fmt.Sprintf("rule %s: %s", r.ID, out.Warning)
			e.log.Warn("rule evaluation failed", "rule", r.ID, "course", c.Code, "err", out.Warning)
			v.Warnings = append(v.Warnings, warning)
			if e.failOpen {
				v.Applied = append(v.Applied, Applied{RuleID: r.ID, Kind: OutcomePass})
				continue
			}
			// Fail-closed: the broken rule rejects at its own priority.
			out = Reject(fmt.Sprintf("rule %s could not be evaluated", r.ID))
		}

		v.Applied = append(v.Applied, Applied{RuleID: r.ID, Kind: out.Kind, Reason: out.Reason})

		if out.Warning != "" && out.Kind != OutcomeError {
			v.Warnings = append(v.Warnings, out.Warning)
		}

		switch out.Kind {
		case OutcomeReject:
			v.Accepted = false
			v.Reasons = append(v.Reasons, out.Reason)
			if r.Priority <= PriorityHigh {
				// Authoritative rejection: stop evaluating. The verdict
				// keeps only the triggering rule and adjusts already
				// applied before it.
				v.AdjustedCredits = decimal.Zero
				return v
			}
		case OutcomeAdjust:
			v.AdjustedCredits = out.NewCredits
			v.Reasons = append(v.Reasons, out.Reason)
		}
	}

	if !v.Accepted {
		v.AdjustedCredits = decimal.Zero
	}
	return v
}

// apply dispatches one rule with a panic boundary. An unexpected failure
// inside a predicate becomes an OutcomeError instead of escaping.
func (e *Engine) apply(r Rule, c transcript.Course, inst transcript.Institution, acc Accumulator, date time.Time) (out Outcome) {
	defer func() {
		if p := recover(); p != nil {
			out = Errf("predicate panicked: %v", p)
		}
	}()
	return dispatch(r, c, inst, acc, date)
}
