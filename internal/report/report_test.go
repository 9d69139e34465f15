package report

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/dmejia/credeval/internal/confidence"
	"github.com/dmejia/credeval/internal/evaluate"
	"github.com/dmejia/credeval/internal/rules"
	"github.com/dmejia/credeval/internal/transcript"
)

func sampleResult() *evaluate.Result {
	anns := confidence.NewAnnotationSet()
	anns.Add(transcript.CourseKey{Position: 0, Code: "ENG101"}, confidence.Annotation{
		Field: "grade", Score: 0.42, Low: true,
	})

	return &evaluate.Result{
		RunID:         "run-abc",
		Institution:   transcript.Institution{Name: "Riverside Community College"},
		PolicyVersion: "v1.0.0",
		Verdicts: []rules.Verdict{
			{
				Course:          transcript.Course{Code: "ENG101", Name: "Composition I"},
				Accepted:        true,
				AdjustedCredits: decimal.NewFromInt(3),
			},
			{
				Course:   transcript.Course{Code: "MTH050", Name: "Basic Algebra"},
				Accepted: false,
				Reasons:  []string{"course level 50 is below the 100-level transfer minimum"},
			},
		},
		TotalTransferCredits: decimal.NewFromInt(3),
		AcceptedCourses:      1,
		RejectedCourses:      1,
		Warnings:             []string{"low confidence in extracted grade"},
		Annotations:          anns,
	}
}

func TestRenderIncludesVerdicts(t *testing.T) {
	out := Render(sampleResult(), Options{})

	for _, want := range []string{
		"Transfer Credit Evaluation",
		"Riverside Community College",
		"v1.0.0",
		"ENG101",
		"ACCEPT",
		"MTH050",
		"REJECT",
		"below the 100-level transfer minimum",
		"1 accepted, 1 rejected",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestRenderConfidenceGated(t *testing.T) {
	res := sampleResult()

	hidden := Render(res, Options{})
	if strings.Contains(hidden, "confidence:") {
		t.Error("confidence shown without ShowConfidence")
	}

	shown := Render(res, Options{ShowConfidence: true})
	if !strings.Contains(shown, "confidence:") {
		t.Error("confidence hidden with ShowConfidence")
	}
	if !strings.Contains(shown, "0.42") {
		t.Error("confidence score missing")
	}
}

func TestRenderWarningCount(t *testing.T) {
	out := Render(sampleResult(), Options{})
	if !strings.Contains(out, "1 warning(s)") {
		t.Error("warning count missing from summary")
	}
}
