package rules

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dmejia/credeval/internal/transcript"
)

var evalDate = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

func validGrades() map[transcript.Grade]bool {
	return map[transcript.Grade]bool{
		"A+": true, "A": true, "A-": true,
		"B+": true, "B": true, "B-": true,
		"C+": true, "C": true, "C-": true,
	}
}

// standardRules mirrors the default policy rule set.
func standardRules() []Rule {
	return []Rule{
		{ID: "grade-minimum", Type: TypeGrade, Priority: PriorityCritical,
			Grade: &GradeParams{Valid: validGrades()}},
		{ID: "course-level", Type: TypeEquivalency, Priority: PriorityCritical,
			Equivalency: &EquivalencyParams{MinLevel: 100}},
		{ID: "credit-range", Type: TypeCredit, Priority: PriorityHigh,
			Credit: &CreditParams{Min: decimal.Zero, Max: decimal.NewFromInt(4)}},
		{ID: "institution-approval", Type: TypeInstitution, Priority: PriorityHigh,
			Institution: &InstitutionParams{}},
		{ID: "recency", Type: TypeTime, Priority: PriorityMedium,
			Time: &TimeParams{MaxAgeYears: 10}},
		{ID: "program-overrides", Type: TypeProgram, Priority: PriorityLow,
			Program: &ProgramParams{Program: "BSCS"}},
	}
}

func course(code string, level int, credits string, grade transcript.Grade) transcript.Course {
	return transcript.Course{
		Code:          code,
		Subject:       strings.TrimRight(code, "0123456789"),
		Level:         level,
		Credits:       decimal.RequireFromString(credits),
		Grade:         grade,
		ReportedGrade: string(grade),
		Year:          2024,
	}
}

func mustEngine(t *testing.T, ruleSet []Rule, cfg Config) *Engine {
	t.Helper()
	e, err := New(ruleSet, cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

func TestEvaluate_Accepts(t *testing.T) {
	e := mustEngine(t, standardRules(), DefaultConfig())

	v := e.Evaluate(course("ENG101", 101, "3", "B"), transcript.Institution{Name: "State U"}, Accumulator{}, evalDate)

	if !v.Accepted {
		t.Fatalf("expected accepted, reasons: %v", v.Reasons)
	}
	if !v.AdjustedCredits.Equal(decimal.NewFromInt(3)) {
		t.Errorf("adjusted credits = %s, want 3", v.AdjustedCredits)
	}
	if len(v.Applied) != len(standardRules()) {
		t.Errorf("applied %d rules, want %d", len(v.Applied), len(standardRules()))
	}
}

func TestEvaluate_RejectsLowLevel(t *testing.T) {
	e := mustEngine(t, standardRules(), DefaultConfig())

	v := e.Evaluate(course("MTH050", 50, "4", "A"), transcript.Institution{}, Accumulator{}, evalDate)

	if v.Accepted {
		t.Fatal("expected rejection for level 50")
	}
	if !v.AdjustedCredits.IsZero() {
		t.Errorf("rejected course credits = %s, want 0", v.AdjustedCredits)
	}
	found := false
	for _, a := range v.Applied {
		if a.RuleID == "course-level" && a.Kind == OutcomeReject {
			found = true
		}
	}
	if !found {
		t.Errorf("course-level rejection not recorded: %+v", v.Applied)
	}
}

func TestEvaluate_RejectsNonTransferableGrade(t *testing.T) {
	e := mustEngine(t, standardRules(), DefaultConfig())

	for _, g := range []string{"D", "F", "W"} {
		c := course("ENG101", 101, "3", transcript.GradeNonTransferable)
		c.ReportedGrade = g

		v := e.Evaluate(c, transcript.Institution{}, Accumulator{}, evalDate)
		if v.Accepted {
			t.Errorf("grade %s: expected rejection", g)
			continue
		}
		if len(v.Reasons) == 0 || !strings.Contains(v.Reasons[0], g) {
			t.Errorf("grade %s: reason %v does not name the grade", g, v.Reasons)
		}
		if v.Applied[0].RuleID != "grade-minimum" {
			t.Errorf("grade %s: rejecting rule = %s", g, v.Applied[0].RuleID)
		}
	}
}

func TestEvaluate_RejectsCreditRange(t *testing.T) {
	e := mustEngine(t, standardRules(), DefaultConfig())

	v := e.Evaluate(course("CHM110", 110, "5", "B"), transcript.Institution{}, Accumulator{}, evalDate)
	if v.Accepted {
		t.Fatal("expected rejection for 5 credits against (0,4]")
	}
}

// A Critical rejection must short-circuit: no lower-priority rule may run
// afterwards, so its adjusts never appear in the verdict.
func TestEvaluate_CriticalShortCircuits(t *testing.T) {
	ruleSet := standardRules()
	ruleSet = append(ruleSet, Rule{
		ID: "cs-override", Type: TypeProgram, Priority: PriorityLow,
		Program: &ProgramParams{
			Program:         "BSCS",
			CreditOverrides: map[string]decimal.Decimal{"MTH050": decimal.NewFromInt(2)},
		},
	})
	e := mustEngine(t, ruleSet, DefaultConfig())

	v := e.Evaluate(course("MTH050", 50, "4", "A"), transcript.Institution{}, Accumulator{}, evalDate)

	if v.Accepted {
		t.Fatal("expected rejection")
	}
	for _, a := range v.Applied {
		if a.RuleID == "cs-override" {
			t.Error("low-priority rule ran after a critical rejection")
		}
	}
	if len(v.Reasons) != 1 {
		t.Errorf("reasons = %v, want only the rejecting rule's", v.Reasons)
	}
}

// Within a priority, registration order decides; across priorities, the
// critical rule runs first regardless of registration order.
func TestEvaluate_PriorityOrdering(t *testing.T) {
	ruleSet := []Rule{
		{ID: "late-critical", Type: TypeEquivalency, Priority: PriorityCritical,
			Equivalency: &EquivalencyParams{MinLevel: 100}},
		{ID: "first-low", Type: TypeProgram, Priority: PriorityLow,
			Program: &ProgramParams{Program: "A"}},
		{ID: "second-low", Type: TypeProgram, Priority: PriorityLow,
			Program: &ProgramParams{Program: "B"}},
	}
	// Register the critical rule last; it must still evaluate first.
	ruleSet = append(ruleSet[1:], ruleSet[0])
	e := mustEngine(t, ruleSet, DefaultConfig())

	v := e.Evaluate(course("ENG101", 101, "3", "B"), transcript.Institution{}, Accumulator{}, evalDate)

	want := []string{"late-critical", "first-low", "second-low"}
	if len(v.Applied) != len(want) {
		t.Fatalf("applied = %+v", v.Applied)
	}
	for i, id := range want {
		if v.Applied[i].RuleID != id {
			t.Errorf("applied[%d] = %s, want %s", i, v.Applied[i].RuleID, id)
		}
	}
}

func TestEvaluate_MediumRejectDoesNotShortCircuit(t *testing.T) {
	ruleSet := []Rule{
		{ID: "recency", Type: TypeTime, Priority: PriorityMedium,
			Time: &TimeParams{MaxAgeYears: 10}},
		{ID: "override", Type: TypeProgram, Priority: PriorityLow,
			Program: &ProgramParams{
				Program:         "BSCS",
				CreditOverrides: map[string]decimal.Decimal{"ENG101": decimal.NewFromInt(2)},
			}},
	}
	e := mustEngine(t, ruleSet, DefaultConfig())

	c := course("ENG101", 101, "3", "B")
	c.Year = 2000 // 26 years old

	v := e.Evaluate(c, transcript.Institution{}, Accumulator{}, evalDate)

	if v.Accepted {
		t.Fatal("expected rejection for stale course")
	}
	// The low rule still ran, but cannot overturn the rejection.
	if len(v.Applied) != 2 {
		t.Fatalf("applied = %+v, want both rules", v.Applied)
	}
	if !v.AdjustedCredits.IsZero() {
		t.Errorf("rejected course credits = %s, want 0", v.AdjustedCredits)
	}
}

func TestEvaluate_AdjustsCompose(t *testing.T) {
	ruleSet := []Rule{
		{ID: "match", Type: TypeEquivalency, Priority: PriorityMedium,
			Equivalency: &EquivalencyParams{Matches: map[string]string{"ENG101": "ENG110"}}},
		{ID: "override", Type: TypeProgram, Priority: PriorityLow,
			Program: &ProgramParams{
				Program:         "BSCS",
				CreditOverrides: map[string]decimal.Decimal{"ENG101": decimal.RequireFromString("2.5")},
			}},
	}
	e := mustEngine(t, ruleSet, DefaultConfig())

	v := e.Evaluate(course("ENG101", 101, "3", "B"), transcript.Institution{}, Accumulator{}, evalDate)

	if !v.Accepted {
		t.Fatalf("expected accepted, reasons: %v", v.Reasons)
	}
	if !v.AdjustedCredits.Equal(decimal.RequireFromString("2.5")) {
		t.Errorf("adjusted credits = %s, want 2.5", v.AdjustedCredits)
	}
	if len(v.Reasons) != 2 {
		t.Errorf("reasons = %v, want equivalency note plus override", v.Reasons)
	}
}

func TestEvaluate_InstitutionApproval(t *testing.T) {
	ruleSet := []Rule{
		{ID: "institution-approval", Type: TypeInstitution, Priority: PriorityHigh,
			Institution: &InstitutionParams{Approved: map[string]bool{"State U": true}}},
	}
	e := mustEngine(t, ruleSet, DefaultConfig())

	if v := e.Evaluate(course("ENG101", 101, "3", "B"), transcript.Institution{Name: "State U"}, Accumulator{}, evalDate); !v.Accepted {
		t.Errorf("approved institution rejected: %v", v.Reasons)
	}
	if v := e.Evaluate(course("ENG101", 101, "3", "B"), transcript.Institution{Name: "Diploma Mill"}, Accumulator{}, evalDate); v.Accepted {
		t.Error("unapproved institution accepted")
	}
	// Caller-set approval flag also satisfies the rule.
	if v := e.Evaluate(course("ENG101", 101, "3", "B"), transcript.Institution{Name: "Other U", Approved: true}, Accumulator{}, evalDate); !v.Accepted {
		t.Errorf("flag-approved institution rejected: %v", v.Reasons)
	}
}

func TestEvaluate_TimeWarnOnly(t *testing.T) {
	ruleSet := []Rule{
		{ID: "recency", Type: TypeTime, Priority: PriorityMedium,
			Time: &TimeParams{MaxAgeYears: 10, WarnOnly: true}},
	}
	e := mustEngine(t, ruleSet, DefaultConfig())

	c := course("ENG101", 101, "3", "B")
	c.Year = 2000

	v := e.Evaluate(c, transcript.Institution{}, Accumulator{}, evalDate)
	if !v.Accepted {
		t.Fatal("warn-only recency rule must not reject")
	}
	if len(v.Warnings) == 0 {
		t.Error("expected a staleness warning")
	}
}

func TestEvaluate_MissingYearWarns(t *testing.T) {
	ruleSet := []Rule{
		{ID: "recency", Type: TypeTime, Priority: PriorityMedium,
			Time: &TimeParams{MaxAgeYears: 10}},
	}
	e := mustEngine(t, ruleSet, DefaultConfig())

	c := course("ENG101", 101, "3", "B")
	c.Year = 0

	v := e.Evaluate(c, transcript.Institution{}, Accumulator{}, evalDate)
	if !v.Accepted {
		t.Fatal("missing year must not reject")
	}
	if len(v.Warnings) != 1 {
		t.Errorf("warnings = %v, want one recency note", v.Warnings)
	}
}

// A rule whose predicate blows up is degraded to a logged warning and, under
// fail-open, treated as a pass.
func TestEvaluate_RuleFailureFailOpen(t *testing.T) {
	e := mustEngine(t, standardRules(), DefaultConfig())
	// Simulate a predicate failure at evaluation time: the grade rule loses
	// its params after construction.
	e.rules[0].Grade = nil

	v := e.Evaluate(course("ENG101", 101, "3", "B"), transcript.Institution{}, Accumulator{}, evalDate)

	if !v.Accepted {
		t.Fatalf("fail-open engine rejected: %v", v.Reasons)
	}
	if len(v.Warnings) == 0 {
		t.Fatal("expected an engine warning for the broken rule")
	}
	if v.Applied[0].Kind != OutcomePass {
		t.Errorf("broken rule outcome = %s, want pass under fail-open", v.Applied[0].Kind)
	}
}

func TestEvaluate_RuleFailureFailClosed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FailOpen = false
	e := mustEngine(t, standardRules(), cfg)
	e.rules[0].Grade = nil

	v := e.Evaluate(course("ENG101", 101, "3", "B"), transcript.Institution{}, Accumulator{}, evalDate)

	if v.Accepted {
		t.Fatal("fail-closed engine accepted a course past a broken rule")
	}
	if len(v.Warnings) == 0 {
		t.Error("expected an engine warning for the broken rule")
	}
}

func TestEvaluate_Deterministic(t *testing.T) {
	e := mustEngine(t, standardRules(), DefaultConfig())
	c := course("ENG101", 101, "3", "B")
	inst := transcript.Institution{Name: "State U"}

	first := e.Evaluate(c, inst, Accumulator{}, evalDate)
	for i := 0; i < 5; i++ {
		v := e.Evaluate(c, inst, Accumulator{}, evalDate)
		if v.Accepted != first.Accepted || !v.AdjustedCredits.Equal(first.AdjustedCredits) {
			t.Fatal("verdict changed across identical runs")
		}
		for j := range v.Applied {
			if v.Applied[j] != first.Applied[j] {
				t.Fatal("applied-rule order changed across identical runs")
			}
		}
	}
}

func TestNew_ConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		rule Rule
	}{
		{"missing id", Rule{Type: TypeGrade, Priority: PriorityHigh, Grade: &GradeParams{Valid: validGrades()}}},
		{"missing params", Rule{ID: "r", Type: TypeGrade, Priority: PriorityHigh}},
		{"unknown type", Rule{ID: "r", Type: "vibes", Priority: PriorityHigh}},
		{"bad priority", Rule{ID: "r", Type: TypeGrade, Priority: 9, Grade: &GradeParams{Valid: validGrades()}}},
		{"empty grade set", Rule{ID: "r", Type: TypeGrade, Priority: PriorityHigh, Grade: &GradeParams{}}},
		{"inverted credit range", Rule{ID: "r", Type: TypeCredit, Priority: PriorityHigh,
			Credit: &CreditParams{Min: decimal.NewFromInt(4), Max: decimal.NewFromInt(4)}}},
		{"zero time window", Rule{ID: "r", Type: TypeTime, Priority: PriorityMedium, Time: &TimeParams{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New([]Rule{tt.rule}, DefaultConfig()); err == nil {
				t.Error("expected configuration error")
			}
		})
	}
}

func TestNew_DuplicateID(t *testing.T) {
	ruleSet := []Rule{
		{ID: "dup", Type: TypeGrade, Priority: PriorityHigh, Grade: &GradeParams{Valid: validGrades()}},
		{ID: "dup", Type: TypeCredit, Priority: PriorityHigh,
			Credit: &CreditParams{Min: decimal.Zero, Max: decimal.NewFromInt(4)}},
	}
	if _, err := New(ruleSet, DefaultConfig()); err == nil {
		t.Error("expected duplicate-id configuration error")
	}
}
