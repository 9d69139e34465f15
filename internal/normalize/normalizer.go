package normalize

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dmejia/credeval/internal/transcript"
)

// codePattern matches course codes like "ENG101", "MTH 050", "BIO-221L".
// Group 1 is the subject prefix, group 2 the numeric level.
var codePattern = regexp.MustCompile(`^([A-Za-z]{2,4})[\s-]*(\d{2,4})[A-Za-z]{0,2}$`)

// Config holds the policy constants normalization depends on.
type Config struct {
	// ValidGrades is the canonical transferable grade set.
	ValidGrades map[transcript.Grade]bool

	// CreditCeiling is the per-course sanity ceiling. Parsed credit values
	// above it fail with a credit error rather than flowing downstream.
	CreditCeiling decimal.Decimal

	// QuarterRatio converts quarter credits to semester credits.
	QuarterRatio decimal.Decimal

	// Places is the rounding precision for converted credits.
	Places int32
}

// DefaultValidGrades returns the canonical transferable grade set.
func DefaultValidGrades() map[transcript.Grade]bool {
	return map[transcript.Grade]bool{
		"A+": true, "A": true, "A-": true,
		"B+": true, "B": true, "B-": true,
		"C+": true, "C": true, "C-": true,
	}
}

// DefaultConfig returns the standard normalization constants: the canonical
// grade set, a 12-credit per-course ceiling, and the 2/3 quarter conversion
// rounded to 2 places.
func DefaultConfig() Config {
	return Config{
		ValidGrades:   DefaultValidGrades(),
		CreditCeiling: decimal.NewFromInt(12),
		QuarterRatio:  decimal.NewFromInt(2).Div(decimal.NewFromInt(3)),
		Places:        2,
	}
}

// Normalizer canonicalizes raw extracted course fields into typed values.
// It is stateless and safe for concurrent use.
type Normalizer struct {
	cfg Config
}

// New creates a Normalizer with the given config.
func New(cfg Config) *Normalizer {
	return &Normalizer{cfg: cfg}
}

// Course normalizes one raw course. The credit system must already have
// been validated via transcript.ParseCreditSystem; quarter credits are
// converted to semester credits here, exactly once.
//
// Failures return a *FieldError identifying the malformed field. A failing
// course is rejected by the caller; normalization never fills defaults.
func (n *Normalizer) Course(raw transcript.RawCourse, system transcript.CreditSystem) (transcript.Course, error) {
	var c transcript.Course

	subject, level, err := parseCode(raw.Code)
	if err != nil {
		return c, err
	}

	grade, reported, err := n.normalizeGrade(raw.Grade)
	if err != nil {
		return c, err
	}

	credits, err := n.parseCredits(raw.Credits)
	if err != nil {
		return c, err
	}

	c = transcript.Course{
		Code:          strings.ToUpper(strings.TrimSpace(raw.Code)),
		Subject:       subject,
		Level:         level,
		Name:          strings.TrimSpace(raw.Name),
		Credits:       credits,
		Grade:         grade,
		ReportedGrade: reported,
		Term:          strings.TrimSpace(raw.Term),
	}

	if y := strings.TrimSpace(raw.Year); y != "" {
		year, err := strconv.Atoi(y)
		if err != nil {
			return transcript.Course{}, fieldErr(KindTerm, "year", raw.Year, "not a number")
		}
		c.Year = year
	}

	n.ConvertCredits(&c, system)
	return c, nil
}

// ConvertCredits applies the quarter-to-semester conversion to c in place.
// Semester courses and courses already converted are left untouched: the
// Converted tag guarantees the ratio is applied at most once.
func (n *Normalizer) ConvertCredits(c *transcript.Course, system transcript.CreditSystem) {
	if system != transcript.SystemQuarter || c.Converted {
		return
	}
	c.Credits = c.Credits.Mul(n.cfg.QuarterRatio).Round(n.cfg.Places)
	c.Converted = true
}

func parseCode(raw string) (subject string, level int, err error) {
	code := strings.TrimSpace(raw)
	if code == "" {
		return "", 0, fieldErr(KindCode, "course_code", raw, "missing")
	}

	m := codePattern.FindStringSubmatch(code)
	if m == nil {
		return "", 0, fieldErr(KindCode, "course_code", raw, "no parsable course level")
	}

	level, err = strconv.Atoi(m[2])
	if err != nil {
		return "", 0, fieldErr(KindCode, "course_code", raw, "no parsable course level")
	}
	return strings.ToUpper(m[1]), level, nil
}

// normalizeGrade canonicalizes a raw grade token. Tokens in the valid set
// map to themselves; any other non-empty token (D, F, W, P, ...) maps to the
// explicit non-transferable marker with the cleaned token preserved.
// The mapping is idempotent: feeding a canonical token back in is a no-op.
func (n *Normalizer) normalizeGrade(raw string) (transcript.Grade, string, error) {
	clean := strings.ToUpper(strings.TrimSpace(raw))
	if clean == "" {
		return "", "", fieldErr(KindGrade, "grade", raw, "missing")
	}

	g := transcript.Grade(clean)
	if n.cfg.ValidGrades[g] {
		return g, clean, nil
	}
	return transcript.GradeNonTransferable, clean, nil
}

func (n *Normalizer) parseCredits(raw string) (decimal.Decimal, error) {
	clean := strings.TrimSpace(raw)
	if clean == "" {
		return decimal.Zero, fieldErr(KindCredit, "credits", raw, "missing")
	}

	credits, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, fieldErr(KindCredit, "credits", raw, "not a number")
	}

	if !credits.IsPositive() {
		return decimal.Zero, fieldErr(KindCredit, "credits", raw, "must be positive")
	}
	if credits.GreaterThan(n.cfg.CreditCeiling) {
		return decimal.Zero, fieldErr(KindCredit, "credits", raw, "exceeds per-course ceiling %s", n.cfg.CreditCeiling)
	}
	return credits, nil
}

// System validates the raw credit-system tag from the extraction output.
// Unknown tags fail with a system-kind error; there is no default system.
func (n *Normalizer) System(raw string) (transcript.CreditSystem, error) {
	clean := strings.ToLower(strings.TrimSpace(raw))
	system, err := transcript.ParseCreditSystem(clean)
	if err != nil {
		return "", fieldErr(KindSystem, "credit_system", raw, "must be %q or %q",
			transcript.SystemSemester, transcript.SystemQuarter)
	}
	return system, nil
}
