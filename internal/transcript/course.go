package transcript

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Grade is a canonical letter grade token.
type Grade string

// GradeNonTransferable marks a grade that was read successfully but falls
// outside the transferable set (D/F/W/P and friends). It is an explicit
// marker so such courses are rejected with a reason instead of dropped.
const GradeNonTransferable Grade = "NT"

// CreditSystem identifies the academic calendar a transcript's credit
// values are denominated in.
type CreditSystem string

const (
	SystemSemester CreditSystem = "semester"
	SystemQuarter  CreditSystem = "quarter"
)

// ParseCreditSystem maps a raw credit-system tag onto a recognized value.
// Unknown tags are an error, never defaulted.
func ParseCreditSystem(raw string) (CreditSystem, error) {
	switch CreditSystem(raw) {
	case SystemSemester:
		return SystemSemester, nil
	case SystemQuarter:
		return SystemQuarter, nil
	}
	return "", fmt.Errorf("unrecognized credit system %q", raw)
}

// RawCourse is one course as extracted from a transcript: raw field strings
// plus whatever signals the extraction step attached. Absent fields are
// empty strings; the normalizer treats required-but-absent as a failure.
type RawCourse struct {
	Code    string `json:"course_code"`
	Name    string `json:"course_name"`
	Credits string `json:"credits"`
	Grade   string `json:"grade"`
	Term    string `json:"term"`
	Year    string `json:"year"`
}

// Course is a normalized course record. It is a pure value: equality and
// canonical JSON encoding are stable, so callers may hash it for caching.
type Course struct {
	// Code is the original course code, e.g. "ENG101".
	Code string `json:"code"`
	// Subject is the alphabetic prefix of the code, e.g. "ENG".
	Subject string `json:"subject"`
	// Level is the numeric part of the code, e.g. 101.
	Level int `json:"level"`
	Name  string `json:"name"`
	// Credits is the semester-denominated credit value. Quarter credits
	// have already been converted by the normalizer.
	Credits decimal.Decimal `json:"credits"`
	// Grade is the canonical grade token, or GradeNonTransferable.
	Grade Grade `json:"grade"`
	// ReportedGrade is the cleaned token as it appeared on the transcript.
	// Differs from Grade only when Grade is GradeNonTransferable.
	ReportedGrade string `json:"reported_grade"`
	Term          string `json:"term,omitempty"`
	// Year the course was completed. Zero when the transcript omits it.
	Year int `json:"year,omitempty"`
	// Converted records that a quarter-to-semester conversion was applied.
	// The conversion must happen exactly once; renormalizing a converted
	// course must not shrink its credits again.
	Converted bool `json:"converted,omitempty"`
}

// Key identifies a course within one transcript for annotation lookups.
// Position disambiguates repeated codes (retakes appear twice).
func (c Course) Key(position int) CourseKey {
	return CourseKey{Position: position, Code: c.Code}
}

// CourseKey identifies a course within a single transcript.
type CourseKey struct {
	Position int
	Code     string
}

func (k CourseKey) String() string {
	return fmt.Sprintf("%d:%s", k.Position, k.Code)
}
