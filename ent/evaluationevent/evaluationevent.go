// Code generated by ent, DO NOT EDIT.

package evaluationevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the evaluationevent type in the database.
	Label = "evaluation_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldInstitution holds the string denoting the institution field in the database.
	FieldInstitution = "institution"
	// FieldPolicyVersion holds the string denoting the policy_version field in the database.
	FieldPolicyVersion = "policy_version"
	// FieldFingerprint holds the string denoting the fingerprint field in the database.
	FieldFingerprint = "fingerprint"
	// FieldCourseCount holds the string denoting the course_count field in the database.
	FieldCourseCount = "course_count"
	// FieldAcceptedCount holds the string denoting the accepted_count field in the database.
	FieldAcceptedCount = "accepted_count"
	// FieldRejectedCount holds the string denoting the rejected_count field in the database.
	FieldRejectedCount = "rejected_count"
	// FieldTotalCredits holds the string denoting the total_credits field in the database.
	FieldTotalCredits = "total_credits"
	// FieldWarningCount holds the string denoting the warning_count field in the database.
	FieldWarningCount = "warning_count"
	// FieldDurationMs holds the string denoting the duration_ms field in the database.
	FieldDurationMs = "duration_ms"
	// FieldVerdicts holds the string denoting the verdicts field in the database.
	FieldVerdicts = "verdicts"
	// Table holds the table name of the evaluationevent in the database.
	Table = "evaluation_events"
)

// Columns holds all SQL columns for evaluationevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldRunID,
	FieldInstitution,
	FieldPolicyVersion,
	FieldFingerprint,
	FieldCourseCount,
	FieldAcceptedCount,
	FieldRejectedCount,
	FieldTotalCredits,
	FieldWarningCount,
	FieldDurationMs,
	FieldVerdicts,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// DefaultCourseCount holds the default value on creation for the "course_count" field.
	DefaultCourseCount int
	// DefaultAcceptedCount holds the default value on creation for the "accepted_count" field.
	DefaultAcceptedCount int
	// DefaultRejectedCount holds the default value on creation for the "rejected_count" field.
	DefaultRejectedCount int
	// DefaultTotalCredits holds the default value on creation for the "total_credits" field.
	DefaultTotalCredits string
	// DefaultWarningCount holds the default value on creation for the "warning_count" field.
	DefaultWarningCount int
	// DefaultDurationMs holds the default value on creation for the "duration_ms" field.
	DefaultDurationMs int64
)

// OrderOption defines the ordering options for the EvaluationEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// ByInstitution orders the results by the institution field.
func ByInstitution(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInstitution, opts...).ToFunc()
}

// ByPolicyVersion orders the results by the policy_version field.
func ByPolicyVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPolicyVersion, opts...).ToFunc()
}

// ByFingerprint orders the results by the fingerprint field.
func ByFingerprint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFingerprint, opts...).ToFunc()
}

// ByCourseCount orders the results by the course_count field.
func ByCourseCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCourseCount, opts...).ToFunc()
}

// ByAcceptedCount orders the results by the accepted_count field.
func ByAcceptedCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAcceptedCount, opts...).ToFunc()
}

// ByRejectedCount orders the results by the rejected_count field.
func ByRejectedCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRejectedCount, opts...).ToFunc()
}

// ByTotalCredits orders the results by the total_credits field.
func ByTotalCredits(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalCredits, opts...).ToFunc()
}

// ByWarningCount orders the results by the warning_count field.
func ByWarningCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWarningCount, opts...).ToFunc()
}

// ByDurationMs orders the results by the duration_ms field.
func ByDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMs, opts...).ToFunc()
}
