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
	"github.com/codeready-toolchain/agentloop/ent/agent"
	"github.com/codeready-toolchain/agentloop/ent/predicate"
	"github.com/codeready-toolchain/agentloop/ent/step"
)

// StepUpdate is the builder for updating Step entities.
type StepUpdate struct {
	config
	hooks    []Hook
	mutation *StepMutation
}

// Where appends a list predicates to the StepUpdate builder.
func (_u *StepUpdate) Where(ps ...predicate.Step) *StepUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOrderIndex sets the "order_index" field.
func (_u *StepUpdate) SetOrderIndex(v int) *StepUpdate {
	_u.mutation.ResetOrderIndex()
	_u.mutation.SetOrderIndex(v)
	return _u
}

// SetNillableOrderIndex sets the "order_index" field if the given value is not nil.
func (_u *StepUpdate) SetNillableOrderIndex(v *int) *StepUpdate {
	if v != nil {
		_u.SetOrderIndex(*v)
	}
	return _u
}

// AddOrderIndex adds value to the "order_index" field.
func (_u *StepUpdate) AddOrderIndex(v int) *StepUpdate {
	_u.mutation.AddOrderIndex(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *StepUpdate) SetTitle(v string) *StepUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *StepUpdate) SetNillableTitle(v *string) *StepUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *StepUpdate) SetDescription(v string) *StepUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *StepUpdate) SetNillableDescription(v *string) *StepUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetStepType sets the "step_type" field.
func (_u *StepUpdate) SetStepType(v step.StepType) *StepUpdate {
	_u.mutation.SetStepType(v)
	return _u
}

// SetNillableStepType sets the "step_type" field if the given value is not nil.
func (_u *StepUpdate) SetNillableStepType(v *step.StepType) *StepUpdate {
	if v != nil {
		_u.SetStepType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *StepUpdate) SetStatus(v step.Status) *StepUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *StepUpdate) SetNillableStatus(v *step.Status) *StepUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetClaimedByAgentID sets the "claimed_by_agent_id" field.
func (_u *StepUpdate) SetClaimedByAgentID(v string) *StepUpdate {
	_u.mutation.SetClaimedByAgentID(v)
	return _u
}

// SetNillableClaimedByAgentID sets the "claimed_by_agent_id" field if the given value is not nil.
func (_u *StepUpdate) SetNillableClaimedByAgentID(v *string) *StepUpdate {
	if v != nil {
		_u.SetClaimedByAgentID(*v)
	}
	return _u
}

// ClearClaimedByAgentID clears the value of the "claimed_by_agent_id" field.
func (_u *StepUpdate) ClearClaimedByAgentID() *StepUpdate {
	_u.mutation.ClearClaimedByAgentID()
	return _u
}

// SetOutput sets the "output" field.
func (_u *StepUpdate) SetOutput(v string) *StepUpdate {
	_u.mutation.SetOutput(v)
	return _u
}

// SetNillableOutput sets the "output" field if the given value is not nil.
func (_u *StepUpdate) SetNillableOutput(v *string) *StepUpdate {
	if v != nil {
		_u.SetOutput(*v)
	}
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *StepUpdate) ClearOutput() *StepUpdate {
	_u.mutation.ClearOutput()
	return _u
}

// SetError sets the "error" field.
func (_u *StepUpdate) SetError(v string) *StepUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *StepUpdate) SetNillableError(v *string) *StepUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *StepUpdate) ClearError() *StepUpdate {
	_u.mutation.ClearError()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *StepUpdate) SetStartedAt(v time.Time) *StepUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *StepUpdate) SetNillableStartedAt(v *time.Time) *StepUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *StepUpdate) ClearStartedAt() *StepUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *StepUpdate) SetCompletedAt(v time.Time) *StepUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *StepUpdate) SetNillableCompletedAt(v *time.Time) *StepUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *StepUpdate) ClearCompletedAt() *StepUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetClaimedByID sets the "claimed_by" edge to the Agent entity by ID.
func (_u *StepUpdate) SetClaimedByID(id string) *StepUpdate {
	_u.mutation.SetClaimedByID(id)
	return _u
}

// SetNillableClaimedByID sets the "claimed_by" edge to the Agent entity by ID if the given value is not nil.
func (_u *StepUpdate) SetNillableClaimedByID(id *string) *StepUpdate {
	if id != nil {
		_u = _u.SetClaimedByID(*id)
	}
	return _u
}

// SetClaimedBy sets the "claimed_by" edge to the Agent entity.
func (_u *StepUpdate) SetClaimedBy(v *Agent) *StepUpdate {
	return _u.SetClaimedByID(v.ID)
}

// Mutation returns the StepMutation object of the builder.
func (_u *StepUpdate) Mutation() *StepMutation {
	return _u.mutation
}

// ClearClaimedBy clears the "claimed_by" edge to the Agent entity.
func (_u *StepUpdate) ClearClaimedBy() *StepUpdate {
	_u.mutation.ClearClaimedBy()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StepUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StepUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StepUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StepUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StepUpdate) check() error {
	if v, ok := _u.mutation.StepType(); ok {
		if err := step.StepTypeValidator(v); err != nil {
			return &ValidationError{Name: "step_type", err: fmt.Errorf(`ent: validator failed for field "Step.step_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := step.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Step.status": %w`, err)}
		}
	}
	if _u.mutation.MissionCleared() && len(_u.mutation.MissionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Step.mission"`)
	}
	return nil
}

func (_u *StepUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(step.Table, step.Columns, sqlgraph.NewFieldSpec(step.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OrderIndex(); ok {
		_spec.SetField(step.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrderIndex(); ok {
		_spec.AddField(step.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(step.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(step.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.StepType(); ok {
		_spec.SetField(step.FieldStepType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(step.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(step.FieldOutput, field.TypeString, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(step.FieldOutput, field.TypeString)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(step.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(step.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(step.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(step.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(step.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(step.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.ClaimedByCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   step.ClaimedByTable,
			Columns: []string{step.ClaimedByColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClaimedByIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   step.ClaimedByTable,
			Columns: []string{step.ClaimedByColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{step.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StepUpdateOne is the builder for updating a single Step entity.
type StepUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StepMutation
}

// SetOrderIndex sets the "order_index" field.
func (_u *StepUpdateOne) SetOrderIndex(v int) *StepUpdateOne {
	_u.mutation.ResetOrderIndex()
	_u.mutation.SetOrderIndex(v)
	return _u
}

// SetNillableOrderIndex sets the "order_index" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableOrderIndex(v *int) *StepUpdateOne {
	if v != nil {
		_u.SetOrderIndex(*v)
	}
	return _u
}

// AddOrderIndex adds value to the "order_index" field.
func (_u *StepUpdateOne) AddOrderIndex(v int) *StepUpdateOne {
	_u.mutation.AddOrderIndex(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *StepUpdateOne) SetTitle(v string) *StepUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableTitle(v *string) *StepUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *StepUpdateOne) SetDescription(v string) *StepUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableDescription(v *string) *StepUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetStepType sets the "step_type" field.
func (_u *StepUpdateOne) SetStepType(v step.StepType) *StepUpdateOne {
	_u.mutation.SetStepType(v)
	return _u
}

// SetNillableStepType sets the "step_type" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableStepType(v *step.StepType) *StepUpdateOne {
	if v != nil {
		_u.SetStepType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *StepUpdateOne) SetStatus(v step.Status) *StepUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableStatus(v *step.Status) *StepUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetClaimedByAgentID sets the "claimed_by_agent_id" field.
func (_u *StepUpdateOne) SetClaimedByAgentID(v string) *StepUpdateOne {
	_u.mutation.SetClaimedByAgentID(v)
	return _u
}

// SetNillableClaimedByAgentID sets the "claimed_by_agent_id" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableClaimedByAgentID(v *string) *StepUpdateOne {
	if v != nil {
		_u.SetClaimedByAgentID(*v)
	}
	return _u
}

// ClearClaimedByAgentID clears the value of the "claimed_by_agent_id" field.
func (_u *StepUpdateOne) ClearClaimedByAgentID() *StepUpdateOne {
	_u.mutation.ClearClaimedByAgentID()
	return _u
}

// SetOutput sets the "output" field.
func (_u *StepUpdateOne) SetOutput(v string) *StepUpdateOne {
	_u.mutation.SetOutput(v)
	return _u
}

// SetNillableOutput sets the "output" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableOutput(v *string) *StepUpdateOne {
	if v != nil {
		_u.SetOutput(*v)
	}
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *StepUpdateOne) ClearOutput() *StepUpdateOne {
	_u.mutation.ClearOutput()
	return _u
}

// SetError sets the "error" field.
func (_u *StepUpdateOne) SetError(v string) *StepUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableError(v *string) *StepUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *StepUpdateOne) ClearError() *StepUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *StepUpdateOne) SetStartedAt(v time.Time) *StepUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableStartedAt(v *time.Time) *StepUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *StepUpdateOne) ClearStartedAt() *StepUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *StepUpdateOne) SetCompletedAt(v time.Time) *StepUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableCompletedAt(v *time.Time) *StepUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *StepUpdateOne) ClearCompletedAt() *StepUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetClaimedByID sets the "claimed_by" edge to the Agent entity by ID.
func (_u *StepUpdateOne) SetClaimedByID(id string) *StepUpdateOne {
	_u.mutation.SetClaimedByID(id)
	return _u
}

// SetNillableClaimedByID sets the "claimed_by" edge to the Agent entity by ID if the given value is not nil.
func (_u *StepUpdateOne) SetNillableClaimedByID(id *string) *StepUpdateOne {
	if id != nil {
		_u = _u.SetClaimedByID(*id)
	}
	return _u
}

// SetClaimedBy sets the "claimed_by" edge to the Agent entity.
func (_u *StepUpdateOne) SetClaimedBy(v *Agent) *StepUpdateOne {
	return _u.SetClaimedByID(v.ID)
}

// Mutation returns the StepMutation object of the builder.
func (_u *StepUpdateOne) Mutation() *StepMutation {
	return _u.mutation
}

// ClearClaimedBy clears the "claimed_by" edge to the Agent entity.
func (_u *StepUpdateOne) ClearClaimedBy() *StepUpdateOne {
	_u.mutation.ClearClaimedBy()
	return _u
}

// Where appends a list predicates to the StepUpdate builder.
func (_u *StepUpdateOne) Where(ps ...predicate.Step) *StepUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StepUpdateOne) Select(field string, fields ...string) *StepUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Step entity.
func (_u *StepUpdateOne) Save(ctx context.Context) (*Step, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StepUpdateOne) SaveX(ctx context.Context) *Step {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StepUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StepUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StepUpdateOne) check() error {
	if v, ok := _u.mutation.StepType(); ok {
		if err := step.StepTypeValidator(v); err != nil {
			return &ValidationError{Name: "step_type", err: fmt.Errorf(`ent: validator failed for field "Step.step_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := step.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Step.status": %w`, err)}
		}
	}
	if _u.mutation.MissionCleared() && len(_u.mutation.MissionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Step.mission"`)
	}
	return nil
}

func (_u *StepUpdateOne) sqlSave(ctx context.Context) (_node *Step, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(step.Table, step.Columns, sqlgraph.NewFieldSpec(step.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Step.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, step.FieldID)
		for _, f := range fields {
			if !step.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != step.FieldID {
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
	if value, ok := _u.mutation.OrderIndex(); ok {
		_spec.SetField(step.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrderIndex(); ok {
		_spec.AddField(step.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(step.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(step.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.StepType(); ok {
		_spec.SetField(step.FieldStepType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(step.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(step.FieldOutput, field.TypeString, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(step.FieldOutput, field.TypeString)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(step.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(step.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(step.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(step.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(step.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(step.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.ClaimedByCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   step.ClaimedByTable,
			Columns: []string{step.ClaimedByColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClaimedByIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   step.ClaimedByTable,
			Columns: []string{step.ClaimedByColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Step{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{step.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
