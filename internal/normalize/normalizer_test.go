package normalize

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/dmejia/credeval/internal/transcript"
)

func TestParseCode(t *testing.T) {
	tests := []struct {
		code    string
		subject string
		level   int
		wantErr bool
	}{
		{"ENG101", "ENG", 101, false},
		{"eng101", "ENG", 101, false},
		{"MTH050", "MTH", 50, false},
		{"MTH 050", "MTH", 50, false},
		{"BIO-221L", "BIO", 221, false},
		{"HIST1301", "HIST", 1301, false},
		{"  CS101  ", "CS", 101, false},
		{"", "", 0, true},
		{"101", "", 0, true},
		{"ENGLISH", "", 0, true},
		{"E101", "", 0, true},
	}

	for _, tt := range tests {
		subject, level, err := parseCode(tt.code)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseCode(%q) expected error, got %s %d", tt.code, subject, level)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseCode(%q) unexpected error: %v", tt.code, err)
			continue
		}
		if subject != tt.subject || level != tt.level {
			t.Errorf("parseCode(%q) = %s, %d; want %s, %d", tt.code, subject, level, tt.subject, tt.level)
		}
	}
}

func TestNormalizeGrade(t *testing.T) {
	n := New(DefaultConfig())

	tests := []struct {
		raw      string
		want     transcript.Grade
		reported string
		wantErr  bool
	}{
		{"A", "A", "A", false},
		{"a", "A", "A", false},
		{"A ", "A", "A", false},
		{" b+ ", "B+", "B+", false},
		{"C-", "C-", "C-", false},
		{"D", transcript.GradeNonTransferable, "D", false},
		{"F", transcript.GradeNonTransferable, "F", false},
		{"W", transcript.GradeNonTransferable, "W", false},
		{"P", transcript.GradeNonTransferable, "P", false},
		{"", "", "", true},
		{"  ", "", "", true},
	}

	for _, tt := range tests {
		got, reported, err := n.normalizeGrade(tt.raw)
		if tt.wantErr {
			if err == nil {
				t.Errorf("normalizeGrade(%q) expected error", tt.raw)
			}
			continue
		}
		if err != nil {
			t.Errorf("normalizeGrade(%q) unexpected error: %v", tt.raw, err)
			continue
		}
		if got != tt.want || reported != tt.reported {
			t.Errorf("normalizeGrade(%q) = %q, %q; want %q, %q", tt.raw, got, reported, tt.want, tt.reported)
		}
	}
}

// Canonical tokens must map to themselves so a second normalization pass is
// a no-op.
func TestNormalizeGrade_Idempotent(t *testing.T) {
	n := New(DefaultConfig())

	for g := range DefaultValidGrades() {
		once, _, err := n.normalizeGrade(string(g))
		if err != nil {
			t.Fatalf("normalizeGrade(%q): %v", g, err)
		}
		twice, _, err := n.normalizeGrade(string(once))
		if err != nil {
			t.Fatalf("normalizeGrade(%q): %v", once, err)
		}
		if once != twice {
			t.Errorf("normalize not idempotent for %q: %q != %q", g, once, twice)
		}
	}

	// The marker itself is stable too.
	once, _, _ := n.normalizeGrade("D")
	twice, _, _ := n.normalizeGrade(string(once))
	if once != transcript.GradeNonTransferable || twice != transcript.GradeNonTransferable {
		t.Errorf("marker not stable: %q -> %q", once, twice)
	}
}

func TestParseCredits(t *testing.T) {
	n := New(DefaultConfig())

	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{"3", "3", false},
		{"4.5", "4.5", false},
		{" 3.0 ", "3", false},
		{"0", "", true},
		{"-2", "", true},
		{"13", "", true}, // above the 12-credit ceiling
		{"three", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := n.parseCredits(tt.raw)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseCredits(%q) expected error, got %s", tt.raw, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseCredits(%q) unexpected error: %v", tt.raw, err)
			continue
		}
		if !got.Equal(decimal.RequireFromString(tt.want)) {
			t.Errorf("parseCredits(%q) = %s, want %s", tt.raw, got, tt.want)
		}
	}
}

func TestCourse_QuarterConversion(t *testing.T) {
	n := New(DefaultConfig())

	raw := transcript.RawCourse{
		Code:    "HIS201",
		Name:    "World History",
		Credits: "4.5",
		Grade:   "C",
	}

	c, err := n.Course(raw, transcript.SystemQuarter)
	if err != nil {
		t.Fatalf("Course: %v", err)
	}

	if !c.Credits.Equal(decimal.NewFromInt(3)) {
		t.Errorf("converted credits = %s, want 3", c.Credits)
	}
	if !c.Converted {
		t.Error("course not tagged as converted")
	}
}

// Applying the conversion to an already-converted course must not reduce
// its credits again.
func TestConvertCredits_AppliedOnce(t *testing.T) {
	n := New(DefaultConfig())

	c := transcript.Course{
		Code:    "HIS201",
		Credits: decimal.NewFromInt(3),
	}
	n.ConvertCredits(&c, transcript.SystemQuarter)
	if !c.Credits.Equal(decimal.NewFromInt(2)) {
		t.Fatalf("first conversion = %s, want 2", c.Credits)
	}

	n.ConvertCredits(&c, transcript.SystemQuarter)
	if !c.Credits.Equal(decimal.NewFromInt(2)) {
		t.Errorf("second conversion changed credits: %s", c.Credits)
	}
}

func TestCourse_SemesterUnchanged(t *testing.T) {
	n := New(DefaultConfig())

	c, err := n.Course(transcript.RawCourse{
		Code: "ENG101", Name: "Composition", Credits: "3", Grade: "B",
	}, transcript.SystemSemester)
	if err != nil {
		t.Fatalf("Course: %v", err)
	}
	if !c.Credits.Equal(decimal.NewFromInt(3)) {
		t.Errorf("semester credits = %s, want 3", c.Credits)
	}
	if c.Converted {
		t.Error("semester course tagged as converted")
	}
}

func TestCourse_FieldErrorKinds(t *testing.T) {
	n := New(DefaultConfig())

	tests := []struct {
		name string
		raw  transcript.RawCourse
		kind Kind
	}{
		{"bad code", transcript.RawCourse{Code: "???", Credits: "3", Grade: "B"}, KindCode},
		{"missing grade", transcript.RawCourse{Code: "ENG101", Credits: "3"}, KindGrade},
		{"zero credits", transcript.RawCourse{Code: "ENG101", Credits: "0", Grade: "B"}, KindCredit},
		{"bad year", transcript.RawCourse{Code: "ENG101", Credits: "3", Grade: "B", Year: "MMXX"}, KindTerm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := n.Course(tt.raw, transcript.SystemSemester)
			var fe *FieldError
			if !errors.As(err, &fe) {
				t.Fatalf("expected *FieldError, got %v", err)
			}
			if fe.Kind != tt.kind {
				t.Errorf("kind = %q, want %q", fe.Kind, tt.kind)
			}
		})
	}
}

func TestSystem(t *testing.T) {
	n := New(DefaultConfig())

	tests := []struct {
		raw     string
		want    transcript.CreditSystem
		wantErr bool
	}{
		{"semester", transcript.SystemSemester, false},
		{"quarter", transcript.SystemQuarter, false},
		{"Semester", transcript.SystemSemester, false},
		{" QUARTER ", transcript.SystemQuarter, false},
		{"trimester", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := n.System(tt.raw)
		if tt.wantErr {
			if err == nil {
				t.Errorf("System(%q) expected error", tt.raw)
			}
			var fe *FieldError
			if err != nil && errors.As(err, &fe) && fe.Kind != KindSystem {
				t.Errorf("System(%q) kind = %q, want %q", tt.raw, fe.Kind, KindSystem)
			}
			continue
		}
		if err != nil {
			t.Errorf("System(%q) unexpected error: %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("System(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}
