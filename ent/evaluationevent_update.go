// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/dmejia/credeval/ent/evaluationevent"
	"github.com/dmejia/credeval/ent/predicate"
	"github.com/dmejia/credeval/ent/schema"
)

// EvaluationEventUpdate is the builder for updating EvaluationEvent entities.
type EvaluationEventUpdate struct {
	config
	hooks    []Hook
	mutation *EvaluationEventMutation
}

// Where appends a list predicates to the EvaluationEventUpdate builder.
func (_u *EvaluationEventUpdate) Where(ps ...predicate.EvaluationEvent) *EvaluationEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetInstitution sets the "institution" field.
func (_u *EvaluationEventUpdate) SetInstitution(v string) *EvaluationEventUpdate {
	_u.mutation.SetInstitution(v)
	return _u
}

// SetNillableInstitution sets the "institution" field if the given value is not nil.
func (_u *EvaluationEventUpdate) SetNillableInstitution(v *string) *EvaluationEventUpdate {
	if v != nil {
		_u.SetInstitution(*v)
	}
	return _u
}

// SetPolicyVersion sets the "policy_version" field.
func (_u *EvaluationEventUpdate) SetPolicyVersion(v string) *EvaluationEventUpdate {
	_u.mutation.SetPolicyVersion(v)
	return _u
}

// SetNillablePolicyVersion sets the "policy_version" field if the given value is not nil.
func (_u *EvaluationEventUpdate) SetNillablePolicyVersion(v *string) *EvaluationEventUpdate {
	if v != nil {
		_u.SetPolicyVersion(*v)
	}
	return _u
}

// SetFingerprint sets the "fingerprint" field.
func (_u *EvaluationEventUpdate) SetFingerprint(v string) *EvaluationEventUpdate {
	_u.mutation.SetFingerprint(v)
	return _u
}

// SetNillableFingerprint sets the "fingerprint" field if the given value is not nil.
func (_u *EvaluationEventUpdate) SetNillableFingerprint(v *string) *EvaluationEventUpdate {
	if v != nil {
		_u.SetFingerprint(*v)
	}
	return _u
}

// SetCourseCount sets the "course_count" field.
func (_u *EvaluationEventUpdate) SetCourseCount(v int) *EvaluationEventUpdate {
	_u.mutation.ResetCourseCount()
	_u.mutation.SetCourseCount(v)
	return _u
}

// SetNillableCourseCount sets the "course_count" field if the given value is not nil.
func (_u *EvaluationEventUpdate) SetNillableCourseCount(v *int) *EvaluationEventUpdate {
	if v != nil {
		_u.SetCourseCount(*v)
	}
	return _u
}

// AddCourseCount adds value to the "course_count" field.
func (_u *EvaluationEventUpdate) AddCourseCount(v int) *EvaluationEventUpdate {
	_u.mutation.AddCourseCount(v)
	return _u
}

// SetAcceptedCount sets the "accepted_count" field.
func (_u *EvaluationEventUpdate) SetAcceptedCount(v int) *EvaluationEventUpdate {
	_u.mutation.ResetAcceptedCount()
	_u.mutation.SetAcceptedCount(v)
	return _u
}

// SetNillableAcceptedCount sets the "accepted_count" field if the given value is not nil.
func (_u *EvaluationEventUpdate) SetNillableAcceptedCount(v *int) *EvaluationEventUpdate {
	if v != nil {
		_u.SetAcceptedCount(*v)
	}
	return _u
}

// AddAcceptedCount adds value to the "accepted_count" field.
func (_u *EvaluationEventUpdate) AddAcceptedCount(v int) *EvaluationEventUpdate {
	_u.mutation.AddAcceptedCount(v)
	return _u
}

// SetRejectedCount sets the "rejected_count" field.
func (_u *EvaluationEventUpdate) SetRejectedCount(v int) *EvaluationEventUpdate {
	_u.mutation.ResetRejectedCount()
	_u.mutation.SetRejectedCount(v)
	return _u
}

// SetNillableRejectedCount sets the "rejected_count" field if the given value is not nil.
func (_u *EvaluationEventUpdate) SetNillableRejectedCount(v *int) *EvaluationEventUpdate {
	if v != nil {
		_u.SetRejectedCount(*v)
	}
	return _u
}

// AddRejectedCount adds value to the "rejected_count" field.
func (_u *EvaluationEventUpdate) AddRejectedCount(v int) *EvaluationEventUpdate {
	_u.mutation.AddRejectedCount(v)
	return _u
}

// SetTotalCredits sets the "total_credits" field.
func (_u *EvaluationEventUpdate) SetTotalCredits(v string) *EvaluationEventUpdate {
	_u.mutation.SetTotalCredits(v)
	return _u
}

// SetNillableTotalCredits sets the "total_credits" field if the given value is not nil.
func (_u *EvaluationEventUpdate) SetNillableTotalCredits(v *string) *EvaluationEventUpdate {
	if v != nil {
		_u.SetTotalCredits(*v)
	}
	return _u
}

// SetWarningCount sets the "warning_count" field.
func (_u *EvaluationEventUpdate) SetWarningCount(v int) *EvaluationEventUpdate {
	_u.mutation.ResetWarningCount()
	_u.mutation.SetWarningCount(v)
	return _u
}

// SetNillableWarningCount sets the "warning_count" field if the given value is not nil.
func (_u *EvaluationEventUpdate) SetNillableWarningCount(v *int) *EvaluationEventUpdate {
	if v != nil {
		_u.SetWarningCount(*v)
	}
	return _u
}

// AddWarningCount adds value to the "warning_count" field.
func (_u *EvaluationEventUpdate) AddWarningCount(v int) *EvaluationEventUpdate {
	_u.mutation.AddWarningCount(v)
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *EvaluationEventUpdate) SetDurationMs(v int64) *EvaluationEventUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *EvaluationEventUpdate) SetNillableDurationMs(v *int64) *EvaluationEventUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *EvaluationEventUpdate) AddDurationMs(v int64) *EvaluationEventUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetVerdicts sets the "verdicts" field.
func (_u *EvaluationEventUpdate) SetVerdicts(v []schema.CourseVerdict) *EvaluationEventUpdate {
	_u.mutation.SetVerdicts(v)
	return _u
}

// AppendVerdicts appends value to the "verdicts" field.
func (_u *EvaluationEventUpdate) AppendVerdicts(v []schema.CourseVerdict) *EvaluationEventUpdate {
	_u.mutation.AppendVerdicts(v)
	return _u
}

// ClearVerdicts clears the value of the "verdicts" field.
func (_u *EvaluationEventUpdate) ClearVerdicts() *EvaluationEventUpdate {
	_u.mutation.ClearVerdicts()
	return _u
}

// Mutation returns the EvaluationEventMutation object of the builder.
func (_u *EvaluationEventUpdate) Mutation() *EvaluationEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EvaluationEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvaluationEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EvaluationEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvaluationEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *EvaluationEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(evaluationevent.Table, evaluationevent.Columns, sqlgraph.NewFieldSpec(evaluationevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Institution(); ok {
		_spec.SetField(evaluationevent.FieldInstitution, field.TypeString, value)
	}
	if value, ok := _u.mutation.PolicyVersion(); ok {
		_spec.SetField(evaluationevent.FieldPolicyVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Fingerprint(); ok {
		_spec.SetField(evaluationevent.FieldFingerprint, field.TypeString, value)
	}
	if value, ok := _u.mutation.CourseCount(); ok {
		_spec.SetField(evaluationevent.FieldCourseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCourseCount(); ok {
		_spec.AddField(evaluationevent.FieldCourseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AcceptedCount(); ok {
		_spec.SetField(evaluationevent.FieldAcceptedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAcceptedCount(); ok {
		_spec.AddField(evaluationevent.FieldAcceptedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RejectedCount(); ok {
		_spec.SetField(evaluationevent.FieldRejectedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRejectedCount(); ok {
		_spec.AddField(evaluationevent.FieldRejectedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalCredits(); ok {
		_spec.SetField(evaluationevent.FieldTotalCredits, field.TypeString, value)
	}
	if value, ok := _u.mutation.WarningCount(); ok {
		_spec.SetField(evaluationevent.FieldWarningCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWarningCount(); ok {
		_spec.AddField(evaluationevent.FieldWarningCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(evaluationevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(evaluationevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Verdicts(); ok {
		_spec.SetField(evaluationevent.FieldVerdicts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedVerdicts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, evaluationevent.FieldVerdicts, value)
		})
	}
	if _u.mutation.VerdictsCleared() {
		_spec.ClearField(evaluationevent.FieldVerdicts, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evaluationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EvaluationEventUpdateOne is the builder for updating a single EvaluationEvent entity.
type EvaluationEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EvaluationEventMutation
}

// SetInstitution sets the "institution" field.
func (_u *EvaluationEventUpdateOne) SetInstitution(v string) *EvaluationEventUpdateOne {
	_u.mutation.SetInstitution(v)
	return _u
}

// SetNillableInstitution sets the "institution" field if the given value is not nil.
func (_u *EvaluationEventUpdateOne) SetNillableInstitution(v *string) *EvaluationEventUpdateOne {
	if v != nil {
		_u.SetInstitution(*v)
	}
	return _u
}

// SetPolicyVersion sets the "policy_version" field.
func (_u *EvaluationEventUpdateOne) SetPolicyVersion(v string) *EvaluationEventUpdateOne {
	_u.mutation.SetPolicyVersion(v)
	return _u
}

// SetNillablePolicyVersion sets the "policy_version" field if the given value is not nil.
func (_u *EvaluationEventUpdateOne) SetNillablePolicyVersion(v *string) *EvaluationEventUpdateOne {
	if v != nil {
		_u.SetPolicyVersion(*v)
	}
	return _u
}

// SetFingerprint sets the "fingerprint" field.
func (_u *EvaluationEventUpdateOne) SetFingerprint(v string) *EvaluationEventUpdateOne {
	_u.mutation.SetFingerprint(v)
	return _u
}

// SetNillableFingerprint sets the "fingerprint" field if the given value is not nil.
func (_u *EvaluationEventUpdateOne) SetNillableFingerprint(v *string) *EvaluationEventUpdateOne {
	if v != nil {
		_u.SetFingerprint(*v)
	}
	return _u
}

// SetCourseCount sets the "course_count" field.
func (_u *EvaluationEventUpdateOne) SetCourseCount(v int) *EvaluationEventUpdateOne {
	_u.mutation.ResetCourseCount()
	_u.mutation.SetCourseCount(v)
	return _u
}

// SetNillableCourseCount sets the "course_count" field if the given value is not nil.
func (_u *EvaluationEventUpdateOne) SetNillableCourseCount(v *int) *EvaluationEventUpdateOne {
	if v != nil {
		_u.SetCourseCount(*v)
	}
	return _u
}

// AddCourseCount adds value to the "course_count" field.
func (_u *EvaluationEventUpdateOne) AddCourseCount(v int) *EvaluationEventUpdateOne {
	_u.mutation.AddCourseCount(v)
	return _u
}

// SetAcceptedCount sets the "accepted_count" field.
func (_u *EvaluationEventUpdateOne) SetAcceptedCount(v int) *EvaluationEventUpdateOne {
	_u.mutation.ResetAcceptedCount()
	_u.mutation.SetAcceptedCount(v)
	return _u
}

// SetNillableAcceptedCount sets the "accepted_count" field if the given value is not nil.
func (_u *EvaluationEventUpdateOne) SetNillableAcceptedCount(v *int) *EvaluationEventUpdateOne {
	if v != nil {
		_u.SetAcceptedCount(*v)
	}
	return _u
}

// AddAcceptedCount adds value to the "accepted_count" field.
func (_u *EvaluationEventUpdateOne) AddAcceptedCount(v int) *EvaluationEventUpdateOne {
	_u.mutation.AddAcceptedCount(v)
	return _u
}

// SetRejectedCount sets the "rejected_count" field.
func (_u *EvaluationEventUpdateOne) SetRejectedCount(v int) *EvaluationEventUpdateOne {
	_u.mutation.ResetRejectedCount()
	_u.mutation.SetRejectedCount(v)
	return _u
}

// SetNillableRejectedCount sets the "rejected_count" field if the given value is not nil.
func (_u *EvaluationEventUpdateOne) SetNillableRejectedCount(v *int) *EvaluationEventUpdateOne {
	if v != nil {
		_u.SetRejectedCount(*v)
	}
	return _u
}

// AddRejectedCount adds value to the "rejected_count" field.
func (_u *EvaluationEventUpdateOne) AddRejectedCount(v int) *EvaluationEventUpdateOne {
	_u.mutation.AddRejectedCount(v)
	return _u
}

// SetTotalCredits sets the "total_credits" field.
func (_u *EvaluationEventUpdateOne) SetTotalCredits(v string) *EvaluationEventUpdateOne {
	_u.mutation.SetTotalCredits(v)
	return _u
}

// SetNillableTotalCredits sets the "total_credits" field if the given value is not nil.
func (_u *EvaluationEventUpdateOne) SetNillableTotalCredits(v *string) *EvaluationEventUpdateOne {
	if v != nil {
		_u.SetTotalCredits(*v)
	}
	return _u
}

// SetWarningCount sets the "warning_count" field.
func (_u *EvaluationEventUpdateOne) SetWarningCount(v int) *EvaluationEventUpdateOne {
	_u.mutation.ResetWarningCount()
	_u.mutation.SetWarningCount(v)
	return _u
}

// SetNillableWarningCount sets the "warning_count" field if the given value is not nil.
func (_u *EvaluationEventUpdateOne) SetNillableWarningCount(v *int) *EvaluationEventUpdateOne {
	if v != nil {
		_u.SetWarningCount(*v)
	}
	return _u
}

// AddWarningCount adds value to the "warning_count" field.
func (_u *EvaluationEventUpdateOne) AddWarningCount(v int) *EvaluationEventUpdateOne {
	_u.mutation.AddWarningCount(v)
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *EvaluationEventUpdateOne) SetDurationMs(v int64) *EvaluationEventUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *EvaluationEventUpdateOne) SetNillableDurationMs(v *int64) *EvaluationEventUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *EvaluationEventUpdateOne) AddDurationMs(v int64) *EvaluationEventUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetVerdicts sets the "verdicts" field.
func (_u *EvaluationEventUpdateOne) SetVerdicts(v []schema.CourseVerdict) *EvaluationEventUpdateOne {
	_u.mutation.SetVerdicts(v)
	return _u
}

// AppendVerdicts appends value to the "verdicts" field.
func (_u *EvaluationEventUpdateOne) AppendVerdicts(v []schema.CourseVerdict) *EvaluationEventUpdateOne {
	_u.mutation.AppendVerdicts(v)
	return _u
}

// ClearVerdicts clears the value of the "verdicts" field.
func (_u *EvaluationEventUpdateOne) ClearVerdicts() *EvaluationEventUpdateOne {
	_u.mutation.ClearVerdicts()
	return _u
}

// Mutation returns the EvaluationEventMutation object of the builder.
func (_u *EvaluationEventUpdateOne) Mutation() *EvaluationEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the EvaluationEventUpdate builder.
func (_u *EvaluationEventUpdateOne) Where(ps ...predicate.EvaluationEvent) *EvaluationEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EvaluationEventUpdateOne) Select(field string, fields ...string) *EvaluationEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EvaluationEvent entity.
func (_u *EvaluationEventUpdateOne) Save(ctx context.Context) (*EvaluationEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvaluationEventUpdateOne) SaveX(ctx context.Context) *EvaluationEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EvaluationEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvaluationEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *EvaluationEventUpdateOne) sqlSave(ctx context.Context) (_node *EvaluationEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(evaluationevent.Table, evaluationevent.Columns, sqlgraph.NewFieldSpec(evaluationevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EvaluationEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, evaluationevent.FieldID)
		for _, f := range fields {
			if !evaluationevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != evaluationevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Institution(); ok {
		_spec.SetField(evaluationevent.FieldInstitution, field.TypeString, value)
	}
	if value, ok := _u.mutation.PolicyVersion(); ok {
		_spec.SetField(evaluationevent.FieldPolicyVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Fingerprint(); ok {
		_spec.SetField(evaluationevent.FieldFingerprint, field.TypeString, value)
	}
	if value, ok := _u.mutation.CourseCount(); ok {
		_spec.SetField(evaluationevent.FieldCourseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCourseCount(); ok {
		_spec.AddField(evaluationevent.FieldCourseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AcceptedCount(); ok {
		_spec.SetField(evaluationevent.FieldAcceptedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAcceptedCount(); ok {
		_spec.AddField(evaluationevent.FieldAcceptedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RejectedCount(); ok {
		_spec.SetField(evaluationevent.FieldRejectedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRejectedCount(); ok {
		_spec.AddField(evaluationevent.FieldRejectedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalCredits(); ok {
		_spec.SetField(evaluationevent.FieldTotalCredits, field.TypeString, value)
	}
	if value, ok := _u.mutation.WarningCount(); ok {
		_spec.SetField(evaluationevent.FieldWarningCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWarningCount(); ok {
		_spec.AddField(evaluationevent.FieldWarningCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(evaluationevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(evaluationevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Verdicts(); ok {
		_spec.SetField(evaluationevent.FieldVerdicts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedVerdicts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, evaluationevent.FieldVerdicts, value)
		})
	}
	if _u.mutation.VerdictsCleared() {
		_spec.ClearField(evaluationevent.FieldVerdicts, field.TypeJSON)
	}
	_node = &EvaluationEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evaluationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
