package evaluate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dmejia/credeval/internal/confidence"
	"github.com/dmejia/credeval/internal/logger"
	"github.com/dmejia/credeval/internal/normalize"
	"github.com/dmejia/credeval/internal/policy"
	"github.com/dmejia/credeval/internal/rules"
	"github.com/dmejia/credeval/internal/store"
	"github.com/dmejia/credeval/internal/transcript"
)

// Signals carries per-field extraction signals keyed by course position.
type Signals map[int]map[string]confidence.Signals

// Options configures optional evaluator collaborators.
type Options struct {
	// Audit receives one structured record per evaluation run. Nil means
	// no auditing (a NopAuditRepo is substituted).
	Audit store.AuditRepo

	// Log receives pipeline diagnostics. Nil means no logging.
	Log logger.Logger

	// Now supplies the evaluation date. Nil means time.Now. Tests inject
	// a fixed clock so recency checks are reproducible.
	Now func() time.Time
}

// Evaluator orchestrates normalization, confidence scoring, and the rules
// engine across a whole transcript, and applies transcript-level
// constraints. It holds only read-only configuration, so one Evaluator may
// serve concurrent evaluations.
type Evaluator struct {
	policy *policy.Policy
	norm   *normalize.Normalizer
	scorer *confidence.Scorer
	engine *rules.Engine
	audit  store.AuditRepo
	log    logger.Logger
	now    func() time.Time
}

// New builds an Evaluator from a validated policy snapshot. Malformed
// policy or rule definitions fail here, before any course is processed.
func New(p *policy.Policy, opts Options) (*Evaluator, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	engineCfg := p.EngineConfig()
	engineCfg.Log = opts.Log

	engine, err := rules.New(p.Rules(), engineCfg)
	if err != nil {
		return nil, err
	}

	audit := opts.Audit
	if audit == nil {
		audit = store.NopAuditRepo{}
	}
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &Evaluator{
		policy: p,
		norm:   normalize.New(p.NormalizeConfig()),
		scorer: confidence.New(p.ScorerConfig()),
		engine: engine,
		audit:  audit,
		log:    log,
		now:    now,
	}, nil
}

// Rules returns the active rule set in evaluation order.
func (e *Evaluator) Rules() []rules.Rule {
	return e.engine.Rules()
}

// EvaluateTranscript evaluates every course of a raw transcript and
// produces the aggregate evaluation.
//
// The computation is pure with respect to (transcript, signals, policy):
// same inputs produce the same verdicts, so callers may cache results by
// Result.Fingerprint. A normalization failure on one course rejects that
// course and continues; only an invalid institution record fails the run.
func (e *Evaluator) EvaluateTranscript(ctx context.Context, raw *transcript.RawTranscript, sig Signals) (*Result, error) {
	start := e.now()

	system, err := e.norm.System(raw.Institution.CreditSystem)
	if err != nil {
		return nil, fmt.Errorf("institution %q: %w", raw.Institution.Name, err)
	}

	inst := transcript.Institution{
		Name:         strings.TrimSpace(raw.Institution.Name),
		Location:     strings.TrimSpace(raw.Institution.Location),
		CreditSystem: system,
		Approved:     e.policy.ApprovedSet()[strings.TrimSpace(raw.Institution.Name)],
	}

	result := &Result{
		RunID:         uuid.NewString(),
		Institution:   inst,
		PolicyVersion: e.policy.Version,
		Fingerprint:   Fingerprint(raw, e.policy.Version),
		Annotations:   confidence.NewAnnotationSet(),
		EvaluatedAt:   start,
	}

	totalsAgree := statedTotalsAgree(raw)
	date := start
	var acc rules.Accumulator

	for i, rc := range raw.Courses {
		key := transcript.CourseKey{Position: i, Code: strings.ToUpper(strings.TrimSpace(rc.Code))}

		courseSig := mergeSignals(sig[i], totalsAgree)
		e.scoreCourse(result, key, rc, courseSig)

		course, err := e.norm.Course(rc, system)
		if err != nil {
			// One malformed course never aborts the batch: it becomes a
			// rejected verdict with the failure reason.
			v := rejectedVerdict(rc, err)
			v.HasConfidenceData = result.Annotations.Has(key)
			result.Verdicts = append(result.Verdicts, v)
			e.log.Debug("course failed normalization", "course", rc.Code, "err", err)
			continue
		}

		v := e.engine.Evaluate(course, inst, acc, date)
		v.HasConfidenceData = result.Annotations.Has(key)

		for _, field := range result.Annotations.LowFields(key) {
			v.Warnings = append(v.Warnings, fmt.Sprintf("low confidence in extracted %s", field))
		}

		if v.Accepted {
			e.applyCap(&v, &acc)
		}
		result.Verdicts = append(result.Verdicts, v)
	}

	result.finalize(acc)

	e.emitAudit(ctx, result, start)
	return result, nil
}

// applyCap enforces the transcript-level transfer cap on the running
// accepted total. The course that crosses the cap is truncated to land the
// aggregate exactly on it; courses after the cap are rejected.
func (e *Evaluator) applyCap(v *rules.Verdict, acc *rules.Accumulator) {
	max := e.policy.MaxCredits
	newTotal := acc.AcceptedCredits.Add(v.AdjustedCredits)

	if newTotal.LessThanOrEqual(max) {
		acc.AcceptedCredits = newTotal
		acc.AcceptedCourses++
		return
	}

	remaining := max.Sub(acc.AcceptedCredits)
	if remaining.IsPositive() {
		v.Warnings = append(v.Warnings, fmt.Sprintf(
			"credits truncated from %s to %s to stay within the %s-credit transfer cap",
			v.AdjustedCredits, remaining, max))
		v.Applied = append(v.Applied, rules.Applied{RuleID: "transfer-cap", Kind: rules.OutcomeAdjust})
		v.AdjustedCredits = remaining
		acc.AcceptedCredits = max
		acc.AcceptedCourses++
		return
	}

	v.Accepted = false
	v.AdjustedCredits = decimal.Zero
	v.Reasons = append(v.Reasons, fmt.Sprintf("%s-credit transfer cap already reached", max))
	v.Applied = append(v.Applied, rules.Applied{RuleID: "transfer-cap", Kind: rules.OutcomeReject})
}

// scoreCourse annotates one course's fields with confidence scores.
func (e *Evaluator) scoreCourse(result *Result, key transcript.CourseKey, rc transcript.RawCourse, sig map[string]confidence.Signals) {
	result.Annotations.Annotate(key, e.scorer, rc, sig)
}

// rejectedVerdict builds the verdict for a course that never reached the
// rules engine. The report still carries one verdict per input course.
func rejectedVerdict(rc transcript.RawCourse, err error) rules.Verdict {
	return rules.Verdict{
		Course: transcript.Course{
			Code: strings.ToUpper(strings.TrimSpace(rc.Code)),
			Name: strings.TrimSpace(rc.Name),
		},
		Accepted:        false,
		AdjustedCredits: decimal.Zero,
		Reasons:         []string{fmt.Sprintf("error: %v", err)},
	}
}

// mergeSignals overlays the transcript-level totals-agreement signal onto
// the per-field extraction signals for the credits field.
func mergeSignals(fields map[string]confidence.Signals, totalsAgree bool) map[string]confidence.Signals {
	if !totalsAgree {
		return fields
	}
	merged := make(map[string]confidence.Signals, len(fields)+1)
	for k, v := range fields {
		merged[k] = v
	}
	cs, ok := merged["credits"]
	if !ok {
		cs = confidence.NoSignals()
	}
	cs.TotalsAgree = true
	merged["credits"] = cs
	return merged
}

// statedTotalsAgree checks the cross-field consistency signal: do the
// per-course credit values sum to the total stated on the transcript?
func statedTotalsAgree(raw *transcript.RawTranscript) bool {
	stated, err := decimal.NewFromString(strings.TrimSpace(raw.StatedTotalCredits))
	if err != nil {
		return false
	}

	sum := decimal.Zero
	for _, rc := range raw.Courses {
		c, err := decimal.NewFromString(strings.TrimSpace(rc.Credits))
		if err != nil {
			return false
		}
		sum = sum.Add(c)
	}
	return sum.Sub(stated).Abs().LessThanOrEqual(decimal.RequireFromString("0.01"))
}

func (e *Evaluator) emitAudit(ctx context.Context, r *Result, start time.Time) {
	verdicts := make([]store.CourseVerdict, len(r.Verdicts))
	for i, v := range r.Verdicts {
		cv := store.CourseVerdict{
			Code:     v.Course.Code,
			Accepted: v.Accepted,
			Credits:  v.AdjustedCredits.String(),
			Reasons:  v.Reasons,
		}
		for _, a := range v.Applied {
			cv.AppliedRules = append(cv.AppliedRules, a.RuleID)
		}
		verdicts[i] = cv
	}

	data := store.EvaluationEventData{
		RunID:         r.RunID,
		Institution:   r.Institution.Name,
		PolicyVersion: r.PolicyVersion,
		Fingerprint:   r.Fingerprint,
		CourseCount:   len(r.Verdicts),
		AcceptedCount: r.AcceptedCourses,
		RejectedCount: r.RejectedCourses,
		TotalCredits:  r.TotalTransferCredits.String(),
		WarningCount:  len(r.Warnings),
		DurationMs:    time.Since(start).Milliseconds(),
		Verdicts:      verdicts,
	}

	// Auditing never fails the evaluation.
	if err := e.audit.AppendEvaluation(ctx, data); err != nil {
		e.log.Warn("failed to append evaluation audit event", "run", r.RunID, "err", err)
	}
}
