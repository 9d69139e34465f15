package confidence

import "github.com/dmejia/credeval/internal/transcript"

// Annotation is one field's confidence score plus the signals behind it.
// Annotations are produced once when a transcript is scored and are
// read-only afterwards; they are never recomputed mid-pipeline.
type Annotation struct {
	Field   string
	Score   float64
	Low     bool
	Signals Signals
}

// AnnotationSet maps course keys to their field annotations. It is a side
// table: Course values stay pure so callers can hash them for caching.
type AnnotationSet struct {
	byCourse map[transcript.CourseKey][]Annotation
}

// NewAnnotationSet creates an empty annotation set.
func NewAnnotationSet() *AnnotationSet {
	return &AnnotationSet{byCourse: make(map[transcript.CourseKey][]Annotation)}
}

// Add records an annotation for the given course.
func (a *AnnotationSet) Add(key transcript.CourseKey, ann Annotation) {
	a.byCourse[key] = append(a.byCourse[key], ann)
}

// ForCourse returns the annotations recorded for a course, in the order
// they were added.
func (a *AnnotationSet) ForCourse(key transcript.CourseKey) []Annotation {
	return a.byCourse[key]
}

// Has reports whether any annotations exist for the course. Callers gate
// the display of confidence data on their own permission model; the core
// only reports presence.
func (a *AnnotationSet) Has(key transcript.CourseKey) bool {
	return len(a.byCourse[key]) > 0
}

// LowFields returns the names of low-confidence fields for a course.
func (a *AnnotationSet) LowFields(key transcript.CourseKey) []string {
	var out []string
	for _, ann := range a.byCourse[key] {
		if ann.Low {
			out = append(out, ann.Field)
		}
	}
	return out
}

// Annotate scores the standard fields of a raw course and records the
// annotations under key. Returns the combined course scores.
func (a *AnnotationSet) Annotate(key transcript.CourseKey, s *Scorer, raw transcript.RawCourse, sig map[string]Signals) CourseScores {
	scores := s.ScoreCourse(raw, sig)
	for _, field := range []string{"course_code", "grade", "credits"} {
		fieldSig := NoSignals()
		if v, ok := sig[field]; ok {
			fieldSig = v
		}
		a.Add(key, Annotation{
			Field:   field,
			Score:   scores.Fields[field],
			Low:     s.Low(scores.Fields[field]),
			Signals: fieldSig,
		})
	}
	return scores
}
