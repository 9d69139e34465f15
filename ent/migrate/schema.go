// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// EvaluationEventsColumns holds the columns for the "evaluation_events" table.
	EvaluationEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "institution", Type: field.TypeString},
		{Name: "policy_version", Type: field.TypeString},
		{Name: "fingerprint", Type: field.TypeString},
		{Name: "course_count", Type: field.TypeInt, Default: 0},
		{Name: "accepted_count", Type: field.TypeInt, Default: 0},
		{Name: "rejected_count", Type: field.TypeInt, Default: 0},
		{Name: "total_credits", Type: field.TypeString, Default: "0"},
		{Name: "warning_count", Type: field.TypeInt, Default: 0},
		{Name: "duration_ms", Type: field.TypeInt64, Default: 0},
		{Name: "verdicts", Type: field.TypeJSON, Nullable: true},
	}
	// EvaluationEventsTable holds the schema information for the "evaluation_events" table.
	EvaluationEventsTable = &schema.Table{
		Name:       "evaluation_events",
		Columns:    EvaluationEventsColumns,
		PrimaryKey: []*schema.Column{EvaluationEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "evaluationevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{EvaluationEventsColumns[1]},
			},
			{
				Name:    "evaluationevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{EvaluationEventsColumns[2]},
			},
			{
				Name:    "evaluationevent_institution",
				Unique:  false,
				Columns: []*schema.Column{EvaluationEventsColumns[4]},
			},
			{
				Name:    "evaluationevent_policy_version",
				Unique:  false,
				Columns: []*schema.Column{EvaluationEventsColumns[5]},
			},
			{
				Name:    "evaluationevent_fingerprint",
				Unique:  false,
				Columns: []*schema.Column{EvaluationEventsColumns[6]},
			},
		},
	}
	// ExtractionEventsColumns holds the columns for the "extraction_events" table.
	ExtractionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// ExtractionEventsTable holds the schema information for the "extraction_events" table.
	ExtractionEventsTable = &schema.Table{
		Name:       "extraction_events",
		Columns:    ExtractionEventsColumns,
		PrimaryKey: []*schema.Column{ExtractionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "extractionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ExtractionEventsColumns[1]},
			},
			{
				Name:    "extractionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ExtractionEventsColumns[2]},
			},
			{
				Name:    "extractionevent_provider",
				Unique:  false,
				Columns: []*schema.Column{ExtractionEventsColumns[3]},
			},
			{
				Name:    "extractionevent_success",
				Unique:  false,
				Columns: []*schema.Column{ExtractionEventsColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		EvaluationEventsTable,
		ExtractionEventsTable,
	}
)

func init() {
}
