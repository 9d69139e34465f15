package policy

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/mod/semver"

	"github.com/dmejia/credeval/internal/confidence"
	"github.com/dmejia/credeval/internal/normalize"
	"github.com/dmejia/credeval/internal/rules"
	"github.com/dmejia/credeval/internal/transcript"
)

// Policy is the immutable transfer-credit policy snapshot: every constant
// and rule definition the evaluation pipeline reads. It is loaded once and
// passed in at construction time; reloading builds a new snapshot and never
// touches in-flight evaluations.
type Policy struct {
	// Version identifies the active rule set (semver, "v" prefixed). It is
	// part of the evaluation fingerprint so cached results invalidate when
	// policy changes.
	Version string `json:"version"`

	// MaxCredits is the transcript-level transfer cap.
	MaxCredits decimal.Decimal `json:"max_credits"`

	// MinCourseLevel is the lowest transferable course level.
	MinCourseLevel int `json:"min_course_level"`

	// MaxCourseCredits bounds the per-course transferable range (0, max].
	MaxCourseCredits decimal.Decimal `json:"max_course_credits"`

	// CourseCreditCeiling is the normalization sanity ceiling; parsed
	// credit values above it are treated as extraction garbage.
	CourseCreditCeiling decimal.Decimal `json:"course_credit_ceiling"`

	// QuarterNumerator / QuarterDenominator define the quarter-to-semester
	// conversion ratio (2/3).
	QuarterNumerator   int `json:"quarter_numerator"`
	QuarterDenominator int `json:"quarter_denominator"`

	// ValidGrades is the canonical transferable grade set.
	ValidGrades []transcript.Grade `json:"valid_grades"`

	// TimeWindowYears is the recency window; TimeWarnOnly downgrades
	// staleness from rejection to a warning.
	TimeWindowYears int  `json:"time_window_years"`
	TimeWarnOnly    bool `json:"time_warn_only"`

	// ConfidenceThreshold marks extracted fields as low-confidence.
	ConfidenceThreshold float64 `json:"confidence_threshold"`

	// FailOpen selects the engine's broken-rule policy. See rules.Config.
	FailOpen bool `json:"fail_open"`

	// ApprovedInstitutions is the institution approval list. Empty means
	// no list is configured and the institution rule always passes.
	ApprovedInstitutions []string `json:"approved_institutions"`

	// Equivalencies maps sending course codes to local equivalents.
	Equivalencies map[string]string `json:"equivalencies,omitempty"`

	// ProgramOverrides applies program-specific credit overrides.
	ProgramOverrides *ProgramOverrides `json:"program_overrides,omitempty"`
}

// ProgramOverrides is a program's course-code to credit-value override map.
type ProgramOverrides struct {
	Program string                     `json:"program"`
	Credits map[string]decimal.Decimal `json:"credits"`
}

// Default returns the built-in policy: the CSU-style transfer rules the
// original paper process used.
func Default() *Policy {
	return &Policy{
		Version:             "v1.0.0",
		MaxCredits:          decimal.NewFromInt(90),
		MinCourseLevel:      100,
		MaxCourseCredits:    decimal.NewFromInt(4),
		CourseCreditCeiling: decimal.NewFromInt(12),
		QuarterNumerator:    2,
		QuarterDenominator:  3,
		ValidGrades: []transcript.Grade{
			"A+", "A", "A-", "B+", "B", "B-", "C+", "C", "C-",
		},
		TimeWindowYears:     10,
		ConfidenceThreshold: 0.5,
		FailOpen:            true,
	}
}

// Validate checks the policy constants. Any failure here is a
// configuration error: fatal before a single course is processed.
func (p *Policy) Validate() error {
	if !semver.IsValid(p.Version) {
		return &rules.ConfigError{Msg: fmt.Sprintf("policy version %q is not valid semver", p.Version)}
	}
	if !p.MaxCredits.IsPositive() {
		return &rules.ConfigError{Msg: "max_credits must be positive"}
	}
	if p.MinCourseLevel <= 0 {
		return &rules.ConfigError{Msg: "min_course_level must be positive"}
	}
	if !p.MaxCourseCredits.IsPositive() {
		return &rules.ConfigError{Msg: "max_course_credits must be positive"}
	}
	if p.CourseCreditCeiling.LessThan(p.MaxCourseCredits) {
		return &rules.ConfigError{Msg: "course_credit_ceiling below max_course_credits"}
	}
	if p.QuarterNumerator <= 0 || p.QuarterDenominator <= 0 {
		return &rules.ConfigError{Msg: "quarter conversion ratio must be positive"}
	}
	if len(p.ValidGrades) == 0 {
		return &rules.ConfigError{Msg: "valid_grades is empty"}
	}
	if p.TimeWindowYears <= 0 {
		return &rules.ConfigError{Msg: "time_window_years must be positive"}
	}
	if p.ConfidenceThreshold < 0 || p.ConfidenceThreshold > 1 {
		return &rules.ConfigError{Msg: "confidence_threshold must be in [0,1]"}
	}
	return nil
}

// GradeSet returns the valid grades as a lookup set.
func (p *Policy) GradeSet() map[transcript.Grade]bool {
	set := make(map[transcript.Grade]bool, len(p.ValidGrades))
	for _, g := range p.ValidGrades {
		set[g] = true
	}
	return set
}

// ApprovedSet returns the institution approval list as a lookup set.
func (p *Policy) ApprovedSet() map[string]bool {
	set := make(map[string]bool, len(p.ApprovedInstitutions))
	for _, name := range p.ApprovedInstitutions {
		set[name] = true
	}
	return set
}

// QuarterRatio returns the quarter-to-semester conversion factor.
func (p *Policy) QuarterRatio() decimal.Decimal {
	return decimal.NewFromInt(int64(p.QuarterNumerator)).
		Div(decimal.NewFromInt(int64(p.QuarterDenominator)))
}

// Rules builds the active rule set from the policy, in registration order.
// The engine re-sorts by priority; registration order is the tie-break
// within a priority.
func (p *Policy) Rules() []rules.Rule {
	set := []rules.Rule{
		{
			ID:       "grade-minimum",
			Name:     "Transferable grade",
			Type:     rules.TypeGrade,
			Priority: rules.PriorityCritical,
			Grade:    &rules.GradeParams{Valid: p.GradeSet()},
		},
		{
			ID:          "course-level",
			Name:        "College-level course",
			Type:        rules.TypeEquivalency,
			Priority:    rules.PriorityCritical,
			Equivalency: &rules.EquivalencyParams{MinLevel: p.MinCourseLevel},
		},
		{
			ID:       "credit-range",
			Name:     "Per-course credit range",
			Type:     rules.TypeCredit,
			Priority: rules.PriorityHigh,
			Credit:   &rules.CreditParams{Min: decimal.Zero, Max: p.MaxCourseCredits},
		},
		{
			ID:          "institution-approval",
			Name:        "Approved institution",
			Type:        rules.TypeInstitution,
			Priority:    rules.PriorityHigh,
			Institution: &rules.InstitutionParams{Approved: p.ApprovedSet()},
		},
		{
			ID:       "recency",
			Name:     "Credit recency",
			Type:     rules.TypeTime,
			Priority: rules.PriorityMedium,
			Time:     &rules.TimeParams{MaxAgeYears: p.TimeWindowYears, WarnOnly: p.TimeWarnOnly},
		},
	}

	if len(p.Equivalencies) > 0 {
		set = append(set, rules.Rule{
			ID:          "course-equivalency",
			Name:        "Course equivalency",
			Type:        rules.TypeEquivalency,
			Priority:    rules.PriorityLow,
			Equivalency: &rules.EquivalencyParams{Matches: p.Equivalencies},
		})
	}

	if p.ProgramOverrides != nil {
		set = append(set, rules.Rule{
			ID:       "program-overrides",
			Name:     "Program credit overrides",
			Type:     rules.TypeProgram,
			Priority: rules.PriorityLow,
			Program: &rules.ProgramParams{
				Program:         p.ProgramOverrides.Program,
				CreditOverrides: p.ProgramOverrides.Credits,
			},
		})
	}

	return set
}

// NormalizeConfig derives the normalizer constants from the policy.
func (p *Policy) NormalizeConfig() normalize.Config {
	return normalize.Config{
		ValidGrades:   p.GradeSet(),
		CreditCeiling: p.CourseCreditCeiling,
		QuarterRatio:  p.QuarterRatio(),
		Places:        2,
	}
}

// ScorerConfig derives the confidence-scorer constants from the policy.
func (p *Policy) ScorerConfig() confidence.Config {
	return confidence.Config{
		Threshold:   p.ConfidenceThreshold,
		ValidGrades: p.GradeSet(),
	}
}

// EngineConfig derives the rule-engine constants from the policy.
func (p *Policy) EngineConfig() rules.Config {
	cfg := rules.DefaultConfig()
	cfg.FailOpen = p.FailOpen
	return cfg
}
