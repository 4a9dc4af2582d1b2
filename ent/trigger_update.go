// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/agentloop/ent/predicate"
	"github.com/codeready-toolchain/agentloop/ent/trigger"
)

// TriggerUpdate is the builder for updating Trigger entities.
type TriggerUpdate struct {
	config
	hooks    []Hook
	mutation *TriggerMutation
}

// Where appends a list predicates to the TriggerUpdate builder.
func (_u *TriggerUpdate) Where(ps ...predicate.Trigger) *TriggerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *TriggerUpdate) SetName(v string) *TriggerUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TriggerUpdate) SetNillableName(v *string) *TriggerUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEventPattern sets the "event_pattern" field.
func (_u *TriggerUpdate) SetEventPattern(v map[string]interface{}) *TriggerUpdate {
	_u.mutation.SetEventPattern(v)
	return _u
}

// SetAction sets the "action" field.
func (_u *TriggerUpdate) SetAction(v map[string]interface{}) *TriggerUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *TriggerUpdate) SetEnabled(v bool) *TriggerUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *TriggerUpdate) SetNillableEnabled(v *bool) *TriggerUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetLastFiredAt sets the "last_fired_at" field.
func (_u *TriggerUpdate) SetLastFiredAt(v time.Time) *TriggerUpdate {
	_u.mutation.SetLastFiredAt(v)
	return _u
}

// SetNillableLastFiredAt sets the "last_fired_at" field if the given value is not nil.
func (_u *TriggerUpdate) SetNillableLastFiredAt(v *time.Time) *TriggerUpdate {
	if v != nil {
		_u.SetLastFiredAt(*v)
	}
	return _u
}

// ClearLastFiredAt clears the value of the "last_fired_at" field.
func (_u *TriggerUpdate) ClearLastFiredAt() *TriggerUpdate {
	_u.mutation.ClearLastFiredAt()
	return _u
}

// Mutation returns the TriggerMutation object of the builder.
func (_u *TriggerUpdate) Mutation() *TriggerMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TriggerUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TriggerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TriggerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TriggerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TriggerUpdate) check() error {
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Trigger.project"`)
	}
	return nil
}

func (_u *TriggerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(trigger.Table, trigger.Columns, sqlgraph.NewFieldSpec(trigger.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(trigger.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventPattern(); ok {
		_spec.SetField(trigger.FieldEventPattern, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(trigger.FieldAction, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(trigger.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastFiredAt(); ok {
		_spec.SetField(trigger.FieldLastFiredAt, field.TypeTime, value)
	}
	if _u.mutation.LastFiredAtCleared() {
		_spec.ClearField(trigger.FieldLastFiredAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trigger.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TriggerUpdateOne is the builder for updating a single Trigger entity.
type TriggerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TriggerMutation
}

// SetName sets the "name" field.
func (_u *TriggerUpdateOne) SetName(v string) *TriggerUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TriggerUpdateOne) SetNillableName(v *string) *TriggerUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEventPattern sets the "event_pattern" field.
func (_u *TriggerUpdateOne) SetEventPattern(v map[string]interface{}) *TriggerUpdateOne {
	_u.mutation.SetEventPattern(v)
	return _u
}

// SetAction sets the "action" field.
func (_u *TriggerUpdateOne) SetAction(v map[string]interface{}) *TriggerUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *TriggerUpdateOne) SetEnabled(v bool) *TriggerUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *TriggerUpdateOne) SetNillableEnabled(v *bool) *TriggerUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetLastFiredAt sets the "last_fired_at" field.
func (_u *TriggerUpdateOne) SetLastFiredAt(v time.Time) *TriggerUpdateOne {
	_u.mutation.SetLastFiredAt(v)
	return _u
}

// SetNillableLastFiredAt sets the "last_fired_at" field if the given value is not nil.
func (_u *TriggerUpdateOne) SetNillableLastFiredAt(v *time.Time) *TriggerUpdateOne {
	if v != nil {
		_u.SetLastFiredAt(*v)
	}
	return _u
}

// ClearLastFiredAt clears the value of the "last_fired_at" field.
func (_u *TriggerUpdateOne) ClearLastFiredAt() *TriggerUpdateOne {
	_u.mutation.ClearLastFiredAt()
	return _u
}

// Mutation returns the TriggerMutation object of the builder.
func (_u *TriggerUpdateOne) Mutation() *TriggerMutation {
	return _u.mutation
}

// Where appends a list predicates to the TriggerUpdate builder.
func (_u *TriggerUpdateOne) Where(ps ...predicate.Trigger) *TriggerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TriggerUpdateOne) Select(field string, fields ...string) *TriggerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Trigger entity.
func (_u *TriggerUpdateOne) Save(ctx context.Context) (*Trigger, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TriggerUpdateOne) SaveX(ctx context.Context) *Trigger {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TriggerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TriggerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TriggerUpdateOne) check() error {
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Trigger.project"`)
	}
	return nil
}

func (_u *TriggerUpdateOne) sqlSave(ctx context.Context) (_node *Trigger, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(trigger.Table, trigger.Columns, sqlgraph.NewFieldSpec(trigger.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Trigger.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, trigger.FieldID)
		for _, f := range fields {
			if !trigger.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != trigger.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(trigger.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventPattern(); ok {
		_spec.SetField(trigger.FieldEventPattern, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(trigger.FieldAction, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(trigger.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastFiredAt(); ok {
		_spec.SetField(trigger.FieldLastFiredAt, field.TypeTime, value)
	}
	if _u.mutation.LastFiredAtCleared() {
		_spec.ClearField(trigger.FieldLastFiredAt, field.TypeTime)
	}
	_node = &Trigger{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trigger.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
