package confidence

import (
	"math"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dmejia/credeval/internal/transcript"
)

// Signals carries extraction-step metadata for one field. Produced by the
// extraction collaborator, read-only afterwards.
type Signals struct {
	// Method names how the field was produced, e.g. "llm", "ocr".
	Method string

	// ModelConfidence is the extractor's own confidence hint in [0,1].
	// Negative means no hint was provided.
	ModelConfidence float64

	// TotalsAgree reports whether the per-course credit values summed to
	// the total stated on the transcript. Cross-field agreement raises
	// trust in the credit fields.
	TotalsAgree bool
}

// NoSignals is the zero-information signal set.
func NoSignals() Signals {
	return Signals{ModelConfidence: -1}
}

// Field weights for the course-level total, mirroring how much each field
// drives an evaluation decision.
var weights = map[string]float64{
	"course_code":  0.25,
	"grade":        0.25,
	"credits":      0.20,
	"completeness": 0.15,
	"consistency":  0.15,
}

var (
	codeShape  = regexp.MustCompile(`^[A-Za-z]{2,4}[\s-]*\d{2,4}[A-Za-z]{0,2}$`)
	hasDigits  = regexp.MustCompile(`\d`)
	gradeShape = regexp.MustCompile(`^[A-Da-d][+-]?$`)
)

// Scorer assigns extraction-confidence scores to course fields.
// Scoring is deterministic: same inputs always produce the same score.
type Scorer struct {
	threshold   float64
	validGrades map[transcript.Grade]bool
}

// Config controls scoring.
type Config struct {
	// Threshold below which a field counts as low-confidence. Low
	// confidence surfaces as a verdict warning; it never rejects a course.
	Threshold float64

	// ValidGrades is the canonical transferable grade set, used by the
	// grade strategy.
	ValidGrades map[transcript.Grade]bool
}

// DefaultConfig returns the standard scoring config (0.5 threshold).
func DefaultConfig(validGrades map[transcript.Grade]bool) Config {
	return Config{Threshold: 0.5, ValidGrades: validGrades}
}

// New creates a Scorer.
func New(cfg Config) *Scorer {
	return &Scorer{threshold: cfg.Threshold, validGrades: cfg.ValidGrades}
}

// Threshold returns the configured low-confidence threshold.
func (s *Scorer) Threshold() float64 { return s.threshold }

// Low reports whether a score falls below the low-confidence threshold.
func (s *Scorer) Low(score float64) bool { return score < s.threshold }

// Score rates one raw field value in [0,1]. The field name selects the
// heuristic; extraction signals blend in when the extractor provided a
// confidence hint of its own.
func (s *Scorer) Score(field, raw string, sig Signals) float64 {
	var h float64
	switch field {
	case "course_code":
		h = scoreCode(raw)
	case "grade":
		h = s.scoreGrade(raw)
	case "credits":
		h = scoreCredits(raw, sig)
	default:
		if strings.TrimSpace(raw) != "" {
			h = 1.0
		}
	}

	// Blend with the extractor's own hint when one exists. The heuristic
	// dominates: it checks domain shape the extractor cannot.
	if sig.ModelConfidence >= 0 && sig.ModelConfidence <= 1 {
		h = 0.7*h + 0.3*sig.ModelConfidence
	}
	return clamp(h)
}

// CourseScores holds the per-field and combined scores for one course.
type CourseScores struct {
	Fields map[string]float64
	Total  float64
}

// ScoreCourse rates every scored field of a raw course plus completeness
// and internal consistency, and combines them with the standard weights.
func (s *Scorer) ScoreCourse(raw transcript.RawCourse, sig map[string]Signals) CourseScores {
	get := func(field string) Signals {
		if v, ok := sig[field]; ok {
			return v
		}
		return NoSignals()
	}

	fields := map[string]float64{
		"course_code":  s.Score("course_code", raw.Code, get("course_code")),
		"grade":        s.Score("grade", raw.Grade, get("grade")),
		"credits":      s.Score("credits", raw.Credits, get("credits")),
		"completeness": scoreCompleteness(raw),
		"consistency":  scoreConsistency(raw),
	}

	// Fixed order so the rounded total is bit-identical across runs.
	var total float64
	for _, k := range []string{"course_code", "grade", "credits", "completeness", "consistency"} {
		total += fields[k] * weights[k]
	}
	total = math.Round(total*100) / 100

	return CourseScores{Fields: fields, Total: clamp(total)}
}

func scoreCode(raw string) float64 {
	code := strings.TrimSpace(raw)
	switch {
	case code == "":
		return 0
	case codeShape.MatchString(code):
		return 1.0
	case hasDigits.MatchString(code):
		return 0.7
	default:
		return 0.5
	}
}

func (s *Scorer) scoreGrade(raw string) float64 {
	g := strings.ToUpper(strings.TrimSpace(raw))
	switch {
	case g == "":
		return 0
	case s.validGrades[transcript.Grade(g)]:
		return 1.0
	// Distinct non-transferable tokens still read cleanly off a transcript.
	case g == "F" || g == "W" || g == "I" || g == "U":
		return 0.9
	case g == "S" || g == "P" || g == "CR" || g == "T":
		return 0.8
	case gradeShape.MatchString(g):
		return 0.9
	default:
		return 0.3
	}
}

func scoreCredits(raw string, sig Signals) float64 {
	credits, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || !credits.IsPositive() {
		return 0
	}

	// Score in integer tenths to keep the arithmetic exact.
	var tenths int
	switch {
	case credits.GreaterThanOrEqual(decimal.NewFromInt(1)) && credits.LessThanOrEqual(decimal.NewFromInt(8)):
		tenths = 10
	case credits.LessThan(decimal.NewFromInt(1)):
		tenths = 7
	default:
		tenths = 6
	}

	if sig.TotalsAgree && tenths < 10 {
		tenths++
	}
	return float64(tenths) / 10
}

func scoreCompleteness(raw transcript.RawCourse) float64 {
	required := []string{raw.Code, raw.Name, raw.Credits, raw.Grade}
	optional := []string{raw.Term, raw.Year}

	var req, opt float64
	for _, f := range required {
		if strings.TrimSpace(f) != "" {
			req++
		}
	}
	for _, f := range optional {
		if strings.TrimSpace(f) != "" {
			opt++
		}
	}

	return req/float64(len(required))*0.8 + opt/float64(len(optional))*0.2
}

// scoreConsistency checks for contradictions between fields: a withdrawn
// or incomplete grade should not carry credit.
func scoreConsistency(raw transcript.RawCourse) float64 {
	tenths := 10

	grade := strings.ToUpper(strings.TrimSpace(raw.Grade))
	credits, err := decimal.NewFromString(strings.TrimSpace(raw.Credits))
	hasCredits := err == nil && credits.IsPositive()

	if hasCredits && (grade == "W" || grade == "I") {
		tenths -= 3
	}
	if !hasCredits && gradeShape.MatchString(grade) {
		tenths -= 2
	}

	if tenths < 0 {
		tenths = 0
	}
	return float64(tenths) / 10
}

func clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
