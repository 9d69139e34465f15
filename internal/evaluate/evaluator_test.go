package evaluate

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dmejia/credeval/internal/confidence"
	"github.com/dmejia/credeval/internal/policy"
	"github.com/dmejia/credeval/internal/store"
	"github.com/dmejia/credeval/internal/transcript"
)

func fixedNow() time.Time {
	return time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
}

func newEvaluator(t *testing.T, p *policy.Policy) *Evaluator {
	t.Helper()
	if p == nil {
		p = policy.Default()
	}
	e, err := New(p, Options{Now: fixedNow})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

func semesterTranscript(courses ...transcript.RawCourse) *transcript.RawTranscript {
	return &transcript.RawTranscript{
		StudentName: "Jordan Diaz",
		StudentID:   "S-1042",
		Institution: transcript.RawInstitution{
			Name:         "Riverside Community College",
			Location:     "Riverside, CA",
			CreditSystem: "semester",
		},
		Courses: courses,
	}
}

func course(code, credits, grade, year string) transcript.RawCourse {
	return transcript.RawCourse{Code: code, Name: code, Credits: credits, Grade: grade, Term: "Fall", Year: year}
}

func TestEvaluateTranscriptAcceptsPassingCourse(t *testing.T) {
	e := newEvaluator(t, nil)

	res, err := e.EvaluateTranscript(context.Background(), semesterTranscript(
		course("ENG101", "3", "B", "2023"),
	), nil)
	if err != nil {
		t.Fatalf("EvaluateTranscript: %v", err)
	}

	if len(res.Verdicts) != 1 {
		t.Fatalf("verdicts = %d, want 1", len(res.Verdicts))
	}
	v := res.Verdicts[0]
	if !v.Accepted {
		t.Fatalf("ENG101 rejected: %v", v.Reasons)
	}
	if !v.AdjustedCredits.Equal(decimal.NewFromInt(3)) {
		t.Errorf("AdjustedCredits = %s, want 3", v.AdjustedCredits)
	}
	if !res.TotalTransferCredits.Equal(decimal.NewFromInt(3)) {
		t.Errorf("TotalTransferCredits = %s, want 3", res.TotalTransferCredits)
	}
	if res.AcceptedCourses != 1 || res.RejectedCourses != 0 {
		t.Errorf("counts = %d/%d, want 1/0", res.AcceptedCourses, res.RejectedCourses)
	}
}

func TestEvaluateTranscriptRejectsRemedialCourse(t *testing.T) {
	e := newEvaluator(t, nil)

	res, err := e.EvaluateTranscript(context.Background(), semesterTranscript(
		course("MTH050", "3", "A", "2023"),
	), nil)
	if err != nil {
		t.Fatalf("EvaluateTranscript: %v", err)
	}

	v := res.Verdicts[0]
	if v.Accepted {
		t.Fatal("MTH050 accepted, want rejected")
	}
	if !v.AdjustedCredits.IsZero() {
		t.Errorf("AdjustedCredits = %s, want 0", v.AdjustedCredits)
	}
	if len(v.Reasons) == 0 {
		t.Error("rejected verdict carries no reason")
	}
}

func TestEvaluateTranscriptConvertsQuarterCredits(t *testing.T) {
	e := newEvaluator(t, nil)

	raw := semesterTranscript(course("HIS201", "4.5", "B+", "2024"))
	raw.Institution.CreditSystem = "quarter"

	res, err := e.EvaluateTranscript(context.Background(), raw, nil)
	if err != nil {
		t.Fatalf("EvaluateTranscript: %v", err)
	}

	v := res.Verdicts[0]
	if !v.Accepted {
		t.Fatalf("HIS201 rejected: %v", v.Reasons)
	}
	if !v.AdjustedCredits.Equal(decimal.NewFromInt(3)) {
		t.Errorf("AdjustedCredits = %s, want 3 (4.5 quarter)", v.AdjustedCredits)
	}
}

func TestEvaluateTranscriptRejectsNonTransferableGrade(t *testing.T) {
	e := newEvaluator(t, nil)

	res, err := e.EvaluateTranscript(context.Background(), semesterTranscript(
		course("BIO110", "3", "Pass*", "2023"),
	), nil)
	if err != nil {
		t.Fatalf("EvaluateTranscript: %v", err)
	}

	v := res.Verdicts[0]
	if v.Accepted {
		t.Fatal("unrecognized grade accepted, want rejected")
	}
	// The reason names the grade as reported, not the marker.
	found := false
	for _, r := range v.Reasons {
		if strings.Contains(r, "PASS*") {
			found = true
		}
	}
	if !found {
		t.Errorf("reasons %v do not name reported grade", v.Reasons)
	}
}

func TestEvaluateTranscriptEnforcesTransferCap(t *testing.T) {
	e := newEvaluator(t, nil)

	// 30 courses at 3.2 accepted credits would total 96. The 29th course
	// crosses the 90-credit cap and is truncated; the 30th is rejected.
	var courses []transcript.RawCourse
	for i := 0; i < 30; i++ {
		courses = append(courses, course(fmt.Sprintf("GEN%d", 101+i), "3.2", "B", "2024"))
	}

	res, err := e.EvaluateTranscript(context.Background(), semesterTranscript(courses...), nil)
	if err != nil {
		t.Fatalf("EvaluateTranscript: %v", err)
	}

	if !res.TotalTransferCredits.Equal(decimal.NewFromInt(90)) {
		t.Fatalf("TotalTransferCredits = %s, want exactly 90", res.TotalTransferCredits)
	}
	if res.AcceptedCourses != 29 {
		t.Errorf("AcceptedCourses = %d, want 29", res.AcceptedCourses)
	}

	boundary := res.Verdicts[28]
	if !boundary.Accepted {
		t.Fatal("boundary course rejected, want truncated and accepted")
	}
	if !boundary.AdjustedCredits.Equal(decimal.RequireFromString("0.4")) {
		t.Errorf("boundary AdjustedCredits = %s, want 0.4", boundary.AdjustedCredits)
	}
	if len(boundary.Warnings) == 0 {
		t.Error("truncated course carries no warning")
	}

	over := res.Verdicts[29]
	if over.Accepted {
		t.Fatal("post-cap course accepted, want rejected")
	}
	if !over.AdjustedCredits.IsZero() {
		t.Errorf("post-cap AdjustedCredits = %s, want 0", over.AdjustedCredits)
	}
}

func TestEvaluateTranscriptLandsExactlyOnCap(t *testing.T) {
	e := newEvaluator(t, nil)

	// 30 courses at 3 credits total exactly 90. No truncation warning.
	var courses []transcript.RawCourse
	for i := 0; i < 30; i++ {
		courses = append(courses, course(fmt.Sprintf("GEN%d", 101+i), "3", "B", "2024"))
	}

	res, err := e.EvaluateTranscript(context.Background(), semesterTranscript(courses...), nil)
	if err != nil {
		t.Fatalf("EvaluateTranscript: %v", err)
	}

	if !res.TotalTransferCredits.Equal(decimal.NewFromInt(90)) {
		t.Fatalf("TotalTransferCredits = %s, want 90", res.TotalTransferCredits)
	}
	if res.AcceptedCourses != 30 {
		t.Errorf("AcceptedCourses = %d, want 30", res.AcceptedCourses)
	}
	for _, v := range res.Verdicts {
		for _, a := range v.Applied {
			if a.RuleID == "transfer-cap" {
				t.Errorf("course %s touched the cap, want none", v.Course.Code)
			}
		}
	}
}

func TestEvaluateTranscriptToleratesMalformedCourse(t *testing.T) {
	e := newEvaluator(t, nil)

	res, err := e.EvaluateTranscript(context.Background(), semesterTranscript(
		course("ENG101", "3", "B", "2023"),
		course("???", "3", "B", "2023"),
		course("PHY201", "4", "A-", "2024"),
	), nil)
	if err != nil {
		t.Fatalf("EvaluateTranscript: %v", err)
	}

	if len(res.Verdicts) != 3 {
		t.Fatalf("verdicts = %d, want 3", len(res.Verdicts))
	}

	bad := res.Verdicts[1]
	if bad.Accepted {
		t.Fatal("malformed course accepted")
	}
	if len(bad.Reasons) == 0 || !strings.HasPrefix(bad.Reasons[0], "error:") {
		t.Errorf("reasons = %v, want error reason", bad.Reasons)
	}

	if !res.Verdicts[0].Accepted || !res.Verdicts[2].Accepted {
		t.Error("well-formed courses were not evaluated")
	}
	if !res.TotalTransferCredits.Equal(decimal.NewFromInt(7)) {
		t.Errorf("TotalTransferCredits = %s, want 7", res.TotalTransferCredits)
	}
}

func TestEvaluateTranscriptUnknownCreditSystemFails(t *testing.T) {
	e := newEvaluator(t, nil)

	raw := semesterTranscript(course("ENG101", "3", "B", "2023"))
	raw.Institution.CreditSystem = "carnegie"

	if _, err := e.EvaluateTranscript(context.Background(), raw, nil); err == nil {
		t.Fatal("unknown credit system accepted, want error")
	}
}

func TestEvaluateTranscriptLowConfidenceWarnings(t *testing.T) {
	e := newEvaluator(t, nil)

	sig := Signals{
		0: {"grade": {Method: "handwriting", ModelConfidence: 0.1}},
	}

	res, err := e.EvaluateTranscript(context.Background(), semesterTranscript(
		course("ENG101", "3", "zz", "2023"),
	), sig)
	if err != nil {
		t.Fatalf("EvaluateTranscript: %v", err)
	}

	v := res.Verdicts[0]
	if !v.HasConfidenceData {
		t.Error("HasConfidenceData = false, want true")
	}
	found := false
	for _, w := range v.Warnings {
		if strings.Contains(w, "low confidence") && strings.Contains(w, "grade") {
			found = true
		}
	}
	if !found {
		t.Errorf("warnings %v lack low-confidence grade note", v.Warnings)
	}
	if len(res.Annotations.ForCourse(transcript.CourseKey{Position: 0, Code: "ENG101"})) == 0 {
		t.Error("no annotations for scored course")
	}
}

func TestEvaluateTranscriptTotalsAgreementSignal(t *testing.T) {
	e := newEvaluator(t, nil)

	raw := semesterTranscript(
		course("ENG101", "3", "B", "2023"),
		course("PHY201", "4", "A", "2024"),
	)
	raw.StatedTotalCredits = "7"

	res, err := e.EvaluateTranscript(context.Background(), raw, nil)
	if err != nil {
		t.Fatalf("EvaluateTranscript: %v", err)
	}

	key := transcript.CourseKey{Position: 0, Code: "ENG101"}
	var creditAnn *confidence.Annotation
	for _, ann := range res.Annotations.ForCourse(key) {
		if ann.Field == "credits" {
			a := ann
			creditAnn = &a
		}
	}
	if creditAnn == nil {
		t.Fatal("no credits annotation recorded")
	}
	if !creditAnn.Signals.TotalsAgree {
		t.Error("TotalsAgree not propagated to credits signal")
	}
}

func TestFingerprintStability(t *testing.T) {
	raw := semesterTranscript(
		course("ENG101", "3", "B", "2023"),
		course("MTH050", "3", "A", "2023"),
	)

	a := Fingerprint(raw, "v1.0.0")
	b := Fingerprint(raw, "v1.0.0")
	if a != b {
		t.Errorf("fingerprint unstable: %s != %s", a, b)
	}
	if len(a) != 64 {
		t.Errorf("fingerprint length = %d, want 64 hex chars", len(a))
	}

	if c := Fingerprint(raw, "v1.1.0"); c == a {
		t.Error("policy version change did not change fingerprint")
	}

	other := semesterTranscript(course("ENG101", "3", "B", "2023"))
	if d := Fingerprint(other, "v1.0.0"); d == a {
		t.Error("transcript change did not change fingerprint")
	}

	// Student identity is excluded: a rename keeps the fingerprint.
	renamed := semesterTranscript(
		course("ENG101", "3", "B", "2023"),
		course("MTH050", "3", "A", "2023"),
	)
	renamed.StudentName = "Alex Kim"
	if e := Fingerprint(renamed, "v1.0.0"); e != a {
		t.Error("student identity leaked into fingerprint")
	}
}

func TestEvaluateTranscriptDeterministic(t *testing.T) {
	e := newEvaluator(t, nil)

	raw := semesterTranscript(
		course("ENG101", "3", "B", "2023"),
		course("MTH050", "3", "A", "2023"),
		course("HIS201", "4", "C+", "2022"),
	)

	first, err := e.EvaluateTranscript(context.Background(), raw, nil)
	if err != nil {
		t.Fatalf("EvaluateTranscript: %v", err)
	}
	for i := 0; i < 20; i++ {
		next, err := e.EvaluateTranscript(context.Background(), raw, nil)
		if err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
		if next.Fingerprint != first.Fingerprint {
			t.Fatalf("run %d: fingerprint changed", i)
		}
		if got, want := next.TotalTransferCredits.String(), first.TotalTransferCredits.String(); got != want {
			t.Fatalf("run %d: total %s != %s", i, got, want)
		}
		for j := range next.Verdicts {
			if next.Verdicts[j].Accepted != first.Verdicts[j].Accepted {
				t.Fatalf("run %d: verdict %d flipped", i, j)
			}
		}
	}
}

type recordingAudit struct {
	evaluations []store.EvaluationEventData
}

func (r *recordingAudit) AppendEvaluation(_ context.Context, data store.EvaluationEventData) error {
	r.evaluations = append(r.evaluations, data)
	return nil
}

func (r *recordingAudit) AppendExtraction(context.Context, store.ExtractionEventData) error {
	return nil
}

func (r *recordingAudit) Evaluations(context.Context, store.QueryOpts) ([]store.EvaluationRecord, error) {
	return nil, nil
}

func TestEvaluateTranscriptAuditCarriesVerdicts(t *testing.T) {
	audit := &recordingAudit{}
	e, err := New(policy.Default(), Options{Audit: audit, Now: fixedNow})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	res, err := e.EvaluateTranscript(context.Background(), semesterTranscript(
		course("ENG101", "3", "B", "2023"),
		course("MTH050", "3", "A", "2023"),
	), nil)
	if err != nil {
		t.Fatalf("EvaluateTranscript: %v", err)
	}

	if len(audit.evaluations) != 1 {
		t.Fatalf("audit events = %d, want 1", len(audit.evaluations))
	}
	data := audit.evaluations[0]
	if data.RunID != res.RunID {
		t.Errorf("RunID = %s, want %s", data.RunID, res.RunID)
	}
	if len(data.Verdicts) != 2 {
		t.Fatalf("audited verdicts = %d, want 2", len(data.Verdicts))
	}

	accepted := data.Verdicts[0]
	if accepted.Code != "ENG101" || !accepted.Accepted {
		t.Errorf("verdict 0 = %s accepted=%v, want ENG101 accepted", accepted.Code, accepted.Accepted)
	}
	if accepted.Credits != "3" {
		t.Errorf("verdict 0 credits = %s, want 3", accepted.Credits)
	}
	if len(accepted.AppliedRules) == 0 {
		t.Error("accepted verdict audited with no applied rules")
	}

	rejected := data.Verdicts[1]
	if rejected.Code != "MTH050" || rejected.Accepted {
		t.Errorf("verdict 1 = %s accepted=%v, want MTH050 rejected", rejected.Code, rejected.Accepted)
	}
	if rejected.Credits != "0" {
		t.Errorf("verdict 1 credits = %s, want 0", rejected.Credits)
	}
	found := false
	for _, id := range rejected.AppliedRules {
		if id == "course-level" {
			found = true
		}
	}
	if !found {
		t.Errorf("rejected verdict applied rules = %v, want course-level present", rejected.AppliedRules)
	}
	if len(rejected.Reasons) == 0 {
		t.Error("rejected verdict audited with no reasons")
	}
}

func TestEvaluateTranscriptInvalidPolicyFailsConstruction(t *testing.T) {
	p := policy.Default()
	p.Version = "1.0"
	if _, err := New(p, Options{}); err == nil {
		t.Fatal("invalid policy version accepted")
	}
}
