package confidence

import (
	"testing"

	"github.com/dmejia/credeval/internal/normalize"
	"github.com/dmejia/credeval/internal/transcript"
)

func newScorer() *Scorer {
	return New(DefaultConfig(normalize.DefaultValidGrades()))
}

func TestScore_Grade(t *testing.T) {
	s := newScorer()

	tests := []struct {
		raw  string
		want float64
	}{
		{"A", 1.0},
		{"b+", 1.0},
		{"C-", 1.0},
		{"F", 0.9},
		{"W", 0.9},
		{"P", 0.8},
		{"CR", 0.8},
		{"D", 0.9}, // letter-shaped, reads cleanly
		{"??", 0.3},
		{"", 0.0},
	}

	for _, tt := range tests {
		got := s.Score("grade", tt.raw, NoSignals())
		if got != tt.want {
			t.Errorf("Score(grade, %q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestScore_Code(t *testing.T) {
	s := newScorer()

	tests := []struct {
		raw  string
		want float64
	}{
		{"ENG101", 1.0},
		{"MTH 050", 1.0},
		{"COURSE 101 A", 0.7}, // digits but wrong shape
		{"ENGLISH", 0.5},
		{"", 0.0},
	}

	for _, tt := range tests {
		got := s.Score("course_code", tt.raw, NoSignals())
		if got != tt.want {
			t.Errorf("Score(course_code, %q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestScore_Credits(t *testing.T) {
	s := newScorer()

	tests := []struct {
		raw  string
		sig  Signals
		want float64
	}{
		{"3", NoSignals(), 1.0},
		{"0.5", NoSignals(), 0.7},
		{"11", NoSignals(), 0.6},
		{"0", NoSignals(), 0.0},
		{"-3", NoSignals(), 0.0},
		{"abc", NoSignals(), 0.0},
		{"11", Signals{ModelConfidence: -1, TotalsAgree: true}, 0.7},
		{"3", Signals{ModelConfidence: -1, TotalsAgree: true}, 1.0}, // clamped
	}

	for _, tt := range tests {
		got := s.Score("credits", tt.raw, tt.sig)
		if got != tt.want {
			t.Errorf("Score(credits, %q, %+v) = %v, want %v", tt.raw, tt.sig, got, tt.want)
		}
	}
}

func TestScore_ModelConfidenceBlend(t *testing.T) {
	s := newScorer()

	// Heuristic 1.0 blended with extractor hint 0.0 → 0.7.
	got := s.Score("grade", "A", Signals{ModelConfidence: 0})
	if got != 0.7 {
		t.Errorf("blended score = %v, want 0.7", got)
	}

	// Hint out of range is ignored.
	got = s.Score("grade", "A", Signals{ModelConfidence: 2})
	if got != 1.0 {
		t.Errorf("out-of-range hint not ignored: %v", got)
	}
}

func TestScore_Deterministic(t *testing.T) {
	s := newScorer()
	sig := Signals{Method: "llm", ModelConfidence: 0.8}

	first := s.Score("credits", "4.5", sig)
	for i := 0; i < 10; i++ {
		if got := s.Score("credits", "4.5", sig); got != first {
			t.Fatalf("score changed across calls: %v != %v", got, first)
		}
	}
}

func TestScoreCourse_Weights(t *testing.T) {
	s := newScorer()

	full := transcript.RawCourse{
		Code: "ENG101", Name: "Composition", Credits: "3", Grade: "B",
		Term: "Fall", Year: "2022",
	}
	scores := s.ScoreCourse(full, nil)
	if scores.Total != 1.0 {
		t.Errorf("fully clean course total = %v, want 1.0", scores.Total)
	}

	sparse := transcript.RawCourse{Code: "ENG101"}
	sparseScores := s.ScoreCourse(sparse, nil)
	if sparseScores.Total >= scores.Total {
		t.Errorf("sparse course (%v) should score below full course (%v)",
			sparseScores.Total, scores.Total)
	}
}

func TestScoreCourse_ConsistencyPenalty(t *testing.T) {
	s := newScorer()

	withdrawn := transcript.RawCourse{
		Code: "ENG101", Name: "Composition", Credits: "3", Grade: "W",
	}
	scores := s.ScoreCourse(withdrawn, nil)
	if scores.Fields["consistency"] != 0.7 {
		t.Errorf("withdrawn-with-credits consistency = %v, want 0.7", scores.Fields["consistency"])
	}
}

func TestAnnotationSet(t *testing.T) {
	s := newScorer()
	set := NewAnnotationSet()

	raw := transcript.RawCourse{Code: "ENG101", Name: "Comp", Credits: "3", Grade: "??"}
	key := transcript.CourseKey{Position: 0, Code: "ENG101"}

	set.Annotate(key, s, raw, nil)

	if !set.Has(key) {
		t.Fatal("expected annotations for course")
	}
	if n := len(set.ForCourse(key)); n != 3 {
		t.Fatalf("expected 3 annotations, got %d", n)
	}

	low := set.LowFields(key)
	if len(low) != 1 || low[0] != "grade" {
		t.Errorf("LowFields = %v, want [grade]", low)
	}

	other := transcript.CourseKey{Position: 1, Code: "MTH201"}
	if set.Has(other) {
		t.Error("unexpected annotations for unscored course")
	}
}
