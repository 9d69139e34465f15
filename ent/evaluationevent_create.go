// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dmejia/credeval/ent/evaluationevent"
	"github.com/dmejia/credeval/ent/schema"
)

// EvaluationEventCreate is the builder for creating a EvaluationEvent entity.
type EvaluationEventCreate struct {
	config
	mutation *EvaluationEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *EvaluationEventCreate) SetSequence(v int64) *EvaluationEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *EvaluationEventCreate) SetTimestamp(v time.Time) *EvaluationEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *EvaluationEventCreate) SetNillableTimestamp(v *time.Time) *EvaluationEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *EvaluationEventCreate) SetRunID(v string) *EvaluationEventCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetInstitution sets the "institution" field.
func (_c *EvaluationEventCreate) SetInstitution(v string) *EvaluationEventCreate {
	_c.mutation.SetInstitution(v)
	return _c
}

// SetPolicyVersion sets the "policy_version" field.
func (_c *EvaluationEventCreate) SetPolicyVersion(v string) *EvaluationEventCreate {
	_c.mutation.SetPolicyVersion(v)
	return _c
}

// SetFingerprint sets the "fingerprint" field.
func (_c *EvaluationEventCreate) SetFingerprint(v string) *EvaluationEventCreate {
	_c.mutation.SetFingerprint(v)
	return _c
}

// SetCourseCount sets the "course_count" field.
func (_c *EvaluationEventCreate) SetCourseCount(v int) *EvaluationEventCreate {
	_c.mutation.SetCourseCount(v)
	return _c
}

// SetNillableCourseCount sets the "course_count" field if the given value is not nil.
func (_c *EvaluationEventCreate) SetNillableCourseCount(v *int) *EvaluationEventCreate {
	if v != nil {
		_c.SetCourseCount(*v)
	}
	return _c
}

// SetAcceptedCount sets the "accepted_count" field.
func (_c *EvaluationEventCreate) SetAcceptedCount(v int) *EvaluationEventCreate {
	_c.mutation.SetAcceptedCount(v)
	return _c
}

// SetNillableAcceptedCount sets the "accepted_count" field if the given value is not nil.
func (_c *EvaluationEventCreate) SetNillableAcceptedCount(v *int) *EvaluationEventCreate {
	if v != nil {
		_c.SetAcceptedCount(*v)
	}
	return _c
}

// SetRejectedCount sets the "rejected_count" field.
func (_c *EvaluationEventCreate) SetRejectedCount(v int) *EvaluationEventCreate {
	_c.mutation.SetRejectedCount(v)
	return _c
}

// SetNillableRejectedCount sets the "rejected_count" field if the given value is not nil.
func (_c *EvaluationEventCreate) SetNillableRejectedCount(v *int) *EvaluationEventCreate {
	if v != nil {
		_c.SetRejectedCount(*v)
	}
	return _c
}

// SetTotalCredits sets the "total_credits" field.
func (_c *EvaluationEventCreate) SetTotalCredits(v string) *EvaluationEventCreate {
	_c.mutation.SetTotalCredits(v)
	return _c
}

// SetNillableTotalCredits sets the "total_credits" field if the given value is not nil.
func (_c *EvaluationEventCreate) SetNillableTotalCredits(v *string) *EvaluationEventCreate {
	if v != nil {
		_c.SetTotalCredits(*v)
	}
	return _c
}

// SetWarningCount sets the "warning_count" field.
func (_c *EvaluationEventCreate) SetWarningCount(v int) *EvaluationEventCreate {
	_c.mutation.SetWarningCount(v)
	return _c
}

// SetNillableWarningCount sets the "warning_count" field if the given value is not nil.
func (_c *EvaluationEventCreate) SetNillableWarningCount(v *int) *EvaluationEventCreate {
	if v != nil {
		_c.SetWarningCount(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *EvaluationEventCreate) SetDurationMs(v int64) *EvaluationEventCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *EvaluationEventCreate) SetNillableDurationMs(v *int64) *EvaluationEventCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetVerdicts sets the "verdicts" field.
func (_c *EvaluationEventCreate) SetVerdicts(v []schema.CourseVerdict) *EvaluationEventCreate {
	_c.mutation.SetVerdicts(v)
	return _c
}

// Mutation returns the EvaluationEventMutation object of the builder.
func (_c *EvaluationEventCreate) Mutation() *EvaluationEventMutation {
	return _c.mutation
}

// Save creates the EvaluationEvent in the database.
func (_c *EvaluationEventCreate) Save(ctx context.Context) (*EvaluationEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EvaluationEventCreate) SaveX(ctx context.Context) *EvaluationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvaluationEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvaluationEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EvaluationEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := evaluationevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.CourseCount(); !ok {
		v := evaluationevent.DefaultCourseCount
		_c.mutation.SetCourseCount(v)
	}
	if _, ok := _c.mutation.AcceptedCount(); !ok {
		v := evaluationevent.DefaultAcceptedCount
		_c.mutation.SetAcceptedCount(v)
	}
	if _, ok := _c.mutation.RejectedCount(); !ok {
		v := evaluationevent.DefaultRejectedCount
		_c.mutation.SetRejectedCount(v)
	}
	if _, ok := _c.mutation.TotalCredits(); !ok {
		v := evaluationevent.DefaultTotalCredits
		_c.mutation.SetTotalCredits(v)
	}
	if _, ok := _c.mutation.WarningCount(); !ok {
		v := evaluationevent.DefaultWarningCount
		_c.mutation.SetWarningCount(v)
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		v := evaluationevent.DefaultDurationMs
		_c.mutation.SetDurationMs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EvaluationEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "EvaluationEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "EvaluationEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "EvaluationEvent.run_id"`)}
	}
	if _, ok := _c.mutation.Institution(); !ok {
		return &ValidationError{Name: "institution", err: errors.New(`ent: missing required field "EvaluationEvent.institution"`)}
	}
	if _, ok := _c.mutation.PolicyVersion(); !ok {
		return &ValidationError{Name: "policy_version", err: errors.New(`ent: missing required field "EvaluationEvent.policy_version"`)}
	}
	if _, ok := _c.mutation.Fingerprint(); !ok {
		return &ValidationError{Name: "fingerprint", err: errors.New(`ent: missing required field "EvaluationEvent.fingerprint"`)}
	}
	if _, ok := _c.mutation.CourseCount(); !ok {
		return &ValidationError{Name: "course_count", err: errors.New(`ent: missing required field "EvaluationEvent.course_count"`)}
	}
	if _, ok := _c.mutation.AcceptedCount(); !ok {
		return &ValidationError{Name: "accepted_count", err: errors.New(`ent: missing required field "EvaluationEvent.accepted_count"`)}
	}
	if _, ok := _c.mutation.RejectedCount(); !ok {
		return &ValidationError{Name: "rejected_count", err: errors.New(`ent: missing required field "EvaluationEvent.rejected_count"`)}
	}
	if _, ok := _c.mutation.TotalCredits(); !ok {
		return &ValidationError{Name: "total_credits", err: errors.New(`ent: missing required field "EvaluationEvent.total_credits"`)}
	}
	if _, ok := _c.mutation.WarningCount(); !ok {
		return &ValidationError{Name: "warning_count", err: errors.New(`ent: missing required field "EvaluationEvent.warning_count"`)}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "EvaluationEvent.duration_ms"`)}
	}
	return nil
}

func (_c *EvaluationEventCreate) sqlSave(ctx context.Context) (*EvaluationEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EvaluationEventCreate) createSpec() (*EvaluationEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &EvaluationEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(evaluationevent.Table, sqlgraph.NewFieldSpec(evaluationevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(evaluationevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(evaluationevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(evaluationevent.FieldRunID, field.TypeString, value)
		_node.RunID = value
	}
	if value, ok := _c.mutation.Institution(); ok {
		_spec.SetField(evaluationevent.FieldInstitution, field.TypeString, value)
		_node.Institution = value
	}
	if value, ok := _c.mutation.PolicyVersion(); ok {
		_spec.SetField(evaluationevent.FieldPolicyVersion, field.TypeString, value)
		_node.PolicyVersion = value
	}
	if value, ok := _c.mutation.Fingerprint(); ok {
		_spec.SetField(evaluationevent.FieldFingerprint, field.TypeString, value)
		_node.Fingerprint = value
	}
	if value, ok := _c.mutation.CourseCount(); ok {
		_spec.SetField(evaluationevent.FieldCourseCount, field.TypeInt, value)
		_node.CourseCount = value
	}
	if value, ok := _c.mutation.AcceptedCount(); ok {
		_spec.SetField(evaluationevent.FieldAcceptedCount, field.TypeInt, value)
		_node.AcceptedCount = value
	}
	if value, ok := _c.mutation.RejectedCount(); ok {
		_spec.SetField(evaluationevent.FieldRejectedCount, field.TypeInt, value)
		_node.RejectedCount = value
	}
	if value, ok := _c.mutation.TotalCredits(); ok {
		_spec.SetField(evaluationevent.FieldTotalCredits, field.TypeString, value)
		_node.TotalCredits = value
	}
	if value, ok := _c.mutation.WarningCount(); ok {
		_spec.SetField(evaluationevent.FieldWarningCount, field.TypeInt, value)
		_node.WarningCount = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(evaluationevent.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = value
	}
	if value, ok := _c.mutation.Verdicts(); ok {
		_spec.SetField(evaluationevent.FieldVerdicts, field.TypeJSON, value)
		_node.Verdicts = value
	}
	return _node, _spec
}

// EvaluationEventCreateBulk is the builder for creating many EvaluationEvent entities in bulk.
type EvaluationEventCreateBulk struct {
	config
	err      error
	builders []*EvaluationEventCreate
}

// Save creates the EvaluationEvent entities in the database.
func (_c *EvaluationEventCreateBulk) Save(ctx context.Context) ([]*EvaluationEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EvaluationEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EvaluationEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *EvaluationEventCreateBulk) SaveX(ctx context.Context) []*EvaluationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvaluationEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvaluationEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
