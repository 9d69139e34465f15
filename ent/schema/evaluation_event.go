package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EvaluationEvent records one transfer-credit evaluation run. The audit
// trail answers "what was decided, under which policy, and when" without
// storing student-identifying data.
type EvaluationEvent struct {
	ent.Schema
}

func (EvaluationEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

// CourseVerdict is the serialized form of one course's outcome for
// persistence: which course, what was decided, and which rules fired.
type CourseVerdict struct {
	Code         string   `json:"code"`
	Accepted     bool     `json:"accepted"`
	Credits      string   `json:"credits"`
	AppliedRules []string `json:"applied_rules,omitempty"`
	Reasons      []string `json:"reasons,omitempty"`
}

func (EvaluationEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			Unique().
			Immutable().
			Comment("UUID of the evaluation run"),
		field.String("institution").
			Comment("Sending institution name"),
		field.String("policy_version").
			Comment("Semantic version of the policy in force"),
		field.String("fingerprint").
			Comment("Digest of transcript and policy version; equal digests mean equal verdicts"),
		field.Int("course_count").
			Default(0).
			Comment("Courses on the transcript"),
		field.Int("accepted_count").
			Default(0).
			Comment("Courses accepted for transfer"),
		field.Int("rejected_count").
			Default(0).
			Comment("Courses rejected"),
		field.String("total_credits").
			Default("0").
			Comment("Accepted credit total after the transfer cap, as a decimal string"),
		field.Int("warning_count").
			Default(0).
			Comment("Warnings raised across all verdicts"),
		field.Int64("duration_ms").
			Default(0).
			Comment("Wall-clock time for the run"),
		field.JSON("verdicts", []CourseVerdict{}).
			Optional().
			Comment("Per-course outcomes with applied rule IDs, in transcript order"),
	}
}

func (EvaluationEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("institution"),
		index.Fields("policy_version"),
		index.Fields("fingerprint"),
	}
}
