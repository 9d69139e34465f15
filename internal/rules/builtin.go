package rules

import (
	"fmt"
	"time"

	"github.com/dmejia/credeval/internal/transcript"
)

// dispatch evaluates one rule by its type tag. A single switch keyed on the
// tag keeps the rule set open to configuration-driven extension without
// dynamic dispatch.
func dispatch(r Rule, c transcript.Course, inst transcript.Institution, acc Accumulator, date time.Time) Outcome {
	switch r.Type {
	case TypeGrade:
		return evalGrade(r, c)
	case TypeCredit:
		return evalCredit(r, c)
	case TypeEquivalency:
		return evalEquivalency(r, c)
	case TypeInstitution:
		return evalInstitution(r, inst)
	case TypeTime:
		return evalTime(r, c, date)
	case TypeProgram:
		return evalProgram(r, c)
	default:
		// Unknown types are rejected at Validate time; reaching this is a
		// predicate failure.
		return Errf("unknown rule type %q", r.Type)
	}
}

func evalGrade(r Rule, c transcript.Course) Outcome {
	if r.Grade.Valid[c.Grade] {
		return Pass()
	}
	return Reject(reason(r, "grade %s is not transferable", c.ReportedGrade))
}

func evalCredit(r Rule, c transcript.Course) Outcome {
	if c.Credits.GreaterThan(r.Credit.Min) && c.Credits.LessThanOrEqual(r.Credit.Max) {
		return Pass()
	}
	return Reject(reason(r, "credit value %s is outside the transferable range", c.Credits))
}

func evalEquivalency(r Rule, c transcript.Course) Outcome {
	p := r.Equivalency

	if p.MinLevel > 0 && c.Level < p.MinLevel {
		return Reject(reason(r, "course level %d is below the transferable minimum", c.Level))
	}

	if local, ok := p.Matches[c.Code]; ok {
		// An equivalency match adds a note without changing credits.
		return Adjust(c.Credits, reason(r, "transfers as %s", local))
	}
	return Pass()
}

func evalInstitution(r Rule, inst transcript.Institution) Outcome {
	p := r.Institution
	if len(p.Approved) == 0 {
		// No approval list configured.
		return Pass()
	}
	if p.Approved[inst.Name] || inst.Approved {
		return Pass()
	}
	return Reject(reason(r, "institution %s is not on the approved list", inst.Name))
}

func evalTime(r Rule, c transcript.Course, date time.Time) Outcome {
	if c.Year == 0 {
		return PassWarn("completion year missing; recency not verified")
	}

	age := date.Year() - c.Year
	if age <= r.Time.MaxAgeYears {
		return Pass()
	}

	if r.Time.WarnOnly {
		return PassWarn("course is %d years old, beyond the %d-year window", age, r.Time.MaxAgeYears)
	}
	return Reject(reason(r, "course is %d years old", age))
}

func evalProgram(r Rule, c transcript.Course) Outcome {
	if override, ok := r.Program.CreditOverrides[c.Code]; ok {
		return Adjust(override, reason(r, "program %s credit override", r.Program.Program))
	}
	return Pass()
}

// reason renders the rule's reason template, falling back to the built-in
// default text when no template is configured.
func reason(r Rule, fallback string, args ...any) string {
	if r.Reason != "" {
		return fmt.Sprintf(r.Reason, args...)
	}
	return fmt.Sprintf(fallback, args...)
}
