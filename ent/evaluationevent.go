// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dmejia/credeval/ent/evaluationevent"
	"github.com/dmejia/credeval/ent/schema"
)

// EvaluationEvent is the model entity for the EvaluationEvent schema.
type EvaluationEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID of the evaluation run
	RunID string `json:"run_id,omitempty"`
	// Sending institution name
	Institution string `json:"institution,omitempty"`
	// Semantic version of the policy in force
	PolicyVersion string `json:"policy_version,omitempty"`
	// Digest of transcript and policy version; equal digests mean equal verdicts
	Fingerprint string `json:"fingerprint,omitempty"`
	// Courses on the transcript
	CourseCount int `json:"course_count,omitempty"`
	// Courses accepted for transfer
	AcceptedCount int `json:"accepted_count,omitempty"`
	// Courses rejected
	RejectedCount int `json:"rejected_count,omitempty"`
	// Accepted credit total after the transfer cap, as a decimal string
	TotalCredits string `json:"total_credits,omitempty"`
	// Warnings raised across all verdicts
	WarningCount int `json:"warning_count,omitempty"`
	// Wall-clock time for the run
	DurationMs int64 `json:"duration_ms,omitempty"`
	// Per-course outcomes with applied rule IDs, in transcript order
	Verdicts     []schema.CourseVerdict `json:"verdicts,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EvaluationEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case evaluationevent.FieldVerdicts:
			values[i] = new([]byte)
		case evaluationevent.FieldID, evaluationevent.FieldSequence, evaluationevent.FieldCourseCount, evaluationevent.FieldAcceptedCount, evaluationevent.FieldRejectedCount, evaluationevent.FieldWarningCount, evaluationevent.FieldDurationMs:
			values[i] = new(sql.NullInt64)
		case evaluationevent.FieldRunID, evaluationevent.FieldInstitution, evaluationevent.FieldPolicyVersion, evaluationevent.FieldFingerprint, evaluationevent.FieldTotalCredits:
			values[i] = new(sql.NullString)
		case evaluationevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EvaluationEvent fields.
func (_m *EvaluationEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case evaluationevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case evaluationevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case evaluationevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case evaluationevent.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case evaluationevent.FieldInstitution:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field institution", values[i])
			} else if value.Valid {
				_m.Institution = value.String
			}
		case evaluationevent.FieldPolicyVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field policy_version", values[i])
			} else if value.Valid {
				_m.PolicyVersion = value.String
			}
		case evaluationevent.FieldFingerprint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fingerprint", values[i])
			} else if value.Valid {
				_m.Fingerprint = value.String
			}
		case evaluationevent.FieldCourseCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field course_count", values[i])
			} else if value.Valid {
				_m.CourseCount = int(value.Int64)
			}
		case evaluationevent.FieldAcceptedCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field accepted_count", values[i])
			} else if value.Valid {
				_m.AcceptedCount = int(value.Int64)
			}
		case evaluationevent.FieldRejectedCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rejected_count", values[i])
			} else if value.Valid {
				_m.RejectedCount = int(value.Int64)
			}
		case evaluationevent.FieldTotalCredits:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field total_credits", values[i])
			} else if value.Valid {
				_m.TotalCredits = value.String
			}
		case evaluationevent.FieldWarningCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field warning_count", values[i])
			} else if value.Valid {
				_m.WarningCount = int(value.Int64)
			}
		case evaluationevent.FieldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				_m.DurationMs = value.Int64
			}
		case evaluationevent.FieldVerdicts:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field verdicts", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Verdicts); err != nil {
					return fmt.Errorf("unmarshal field verdicts: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EvaluationEvent.
// This includes values selected through modifiers, order, etc.
func (_m *EvaluationEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this EvaluationEvent.
// Note that you need to call EvaluationEvent.Unwrap() before calling this method if this EvaluationEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EvaluationEvent) Update() *EvaluationEventUpdateOne {
	return NewEvaluationEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EvaluationEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EvaluationEvent) Unwrap() *EvaluationEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EvaluationEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EvaluationEvent) String() string {
	var builder strings.Builder
	builder.WriteString("EvaluationEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("institution=")
	builder.WriteString(_m.Institution)
	builder.WriteString(", ")
	builder.WriteString("policy_version=")
	builder.WriteString(_m.PolicyVersion)
	builder.WriteString(", ")
	builder.WriteString("fingerprint=")
	builder.WriteString(_m.Fingerprint)
	builder.WriteString(", ")
	builder.WriteString("course_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.CourseCount))
	builder.WriteString(", ")
	builder.WriteString("accepted_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.AcceptedCount))
	builder.WriteString(", ")
	builder.WriteString("rejected_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RejectedCount))
	builder.WriteString(", ")
	builder.WriteString("total_credits=")
	builder.WriteString(_m.TotalCredits)
	builder.WriteString(", ")
	builder.WriteString("warning_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.WarningCount))
	builder.WriteString(", ")
	builder.WriteString("duration_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationMs))
	builder.WriteString(", ")
	builder.WriteString("verdicts=")
	builder.WriteString(fmt.Sprintf("%v", _m.Verdicts))
	builder.WriteByte(')')
	return builder.String()
}

// EvaluationEvents is a parsable slice of EvaluationEvent.
type EvaluationEvents []*EvaluationEvent
