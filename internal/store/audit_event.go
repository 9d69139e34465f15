package store

import (
	"context"
	"fmt"

	"github.com/dmejia/credeval/ent"
	"github.com/dmejia/credeval/ent/evaluationevent"
	entschema "github.com/dmejia/credeval/ent/schema"
)

// auditRepo implements AuditRepo backed by ent and the global sequence
// counter.
type auditRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *auditRepo) AppendEvaluation(ctx context.Context, data EvaluationEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	var verdicts []entschema.CourseVerdict
	for _, v := range data.Verdicts {
		verdicts = append(verdicts, entschema.CourseVerdict{
			Code:         v.Code,
			Accepted:     v.Accepted,
			Credits:      v.Credits,
			AppliedRules: v.AppliedRules,
			Reasons:      v.Reasons,
		})
	}

	_, err = r.client.EvaluationEvent.Create().
		SetSequence(seqNum).
		SetRunID(data.RunID).
		SetInstitution(data.Institution).
		SetPolicyVersion(data.PolicyVersion).
		SetFingerprint(data.Fingerprint).
		SetCourseCount(data.CourseCount).
		SetAcceptedCount(data.AcceptedCount).
		SetRejectedCount(data.RejectedCount).
		SetTotalCredits(data.TotalCredits).
		SetWarningCount(data.WarningCount).
		SetDurationMs(data.DurationMs).
		SetVerdicts(verdicts).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save evaluation event: %w", err)
	}
	return nil
}

func (r *auditRepo) AppendExtraction(ctx context.Context, data ExtractionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ExtractionEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save extraction event: %w", err)
	}
	return nil
}

func (r *auditRepo) Evaluations(ctx context.Context, opts QueryOpts) ([]EvaluationRecord, error) {
	query := r.client.EvaluationEvent.Query().
		Order(ent.Desc(evaluationevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(evaluationevent.SequenceGT(opts.After))
	}
	if !opts.From.IsZero() {
		query = query.Where(evaluationevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(evaluationevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query evaluation events: %w", err)
	}

	records := make([]EvaluationRecord, len(events))
	for i, e := range events {
		var verdicts []CourseVerdict
		for _, v := range e.Verdicts {
			verdicts = append(verdicts, CourseVerdict{
				Code:         v.Code,
				Accepted:     v.Accepted,
				Credits:      v.Credits,
				AppliedRules: v.AppliedRules,
				Reasons:      v.Reasons,
			})
		}
		records[i] = EvaluationRecord{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			EvaluationEventData: EvaluationEventData{
				RunID:         e.RunID,
				Institution:   e.Institution,
				PolicyVersion: e.PolicyVersion,
				Fingerprint:   e.Fingerprint,
				CourseCount:   e.CourseCount,
				AcceptedCount: e.AcceptedCount,
				RejectedCount: e.RejectedCount,
				TotalCredits:  e.TotalCredits,
				WarningCount:  e.WarningCount,
				DurationMs:    e.DurationMs,
				Verdicts:      verdicts,
			},
		}
	}
	return records, nil
}
