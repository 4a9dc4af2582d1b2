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
	"github.com/codeready-toolchain/agentloop/ent/mission"
	"github.com/codeready-toolchain/agentloop/ent/predicate"
	"github.com/codeready-toolchain/agentloop/ent/step"
)

// MissionUpdate is the builder for updating Mission entities.
type MissionUpdate struct {
	config
	hooks    []Hook
	mutation *MissionMutation
}

// Where appends a list predicates to the MissionUpdate builder.
func (_u *MissionUpdate) Where(ps ...predicate.Mission) *MissionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *MissionUpdate) SetTitle(v string) *MissionUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *MissionUpdate) SetNillableTitle(v *string) *MissionUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *MissionUpdate) SetDescription(v string) *MissionUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *MissionUpdate) SetNillableDescription(v *string) *MissionUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *MissionUpdate) SetStatus(v mission.Status) *MissionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MissionUpdate) SetNillableStatus(v *mission.Status) *MissionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAssignedAgentID sets the "assigned_agent_id" field.
func (_u *MissionUpdate) SetAssignedAgentID(v string) *MissionUpdate {
	_u.mutation.SetAssignedAgentID(v)
	return _u
}

// SetNillableAssignedAgentID sets the "assigned_agent_id" field if the given value is not nil.
func (_u *MissionUpdate) SetNillableAssignedAgentID(v *string) *MissionUpdate {
	if v != nil {
		_u.SetAssignedAgentID(*v)
	}
	return _u
}

// ClearAssignedAgentID clears the value of the "assigned_agent_id" field.
func (_u *MissionUpdate) ClearAssignedAgentID() *MissionUpdate {
	_u.mutation.ClearAssignedAgentID()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *MissionUpdate) SetCompletedAt(v time.Time) *MissionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *MissionUpdate) SetNillableCompletedAt(v *time.Time) *MissionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *MissionUpdate) ClearCompletedAt() *MissionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetAssignedAgent sets the "assigned_agent" edge to the Agent entity.
func (_u *MissionUpdate) SetAssignedAgent(v *Agent) *MissionUpdate {
	return _u.SetAssignedAgentID(v.ID)
}

// AddStepIDs adds the "steps" edge to the Step entity by IDs.
func (_u *MissionUpdate) AddStepIDs(ids ...string) *MissionUpdate {
	_u.mutation.AddStepIDs(ids...)
	return _u
}

// AddSteps adds the "steps" edges to the Step entity.
func (_u *MissionUpdate) AddSteps(v ...*Step) *MissionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepIDs(ids...)
}

// Mutation returns the MissionMutation object of the builder.
func (_u *MissionUpdate) Mutation() *MissionMutation {
	return _u.mutation
}

// ClearAssignedAgent clears the "assigned_agent" edge to the Agent entity.
func (_u *MissionUpdate) ClearAssignedAgent() *MissionUpdate {
	_u.mutation.ClearAssignedAgent()
	return _u
}

// ClearSteps clears all "steps" edges to the Step entity.
func (_u *MissionUpdate) ClearSteps() *MissionUpdate {
	_u.mutation.ClearSteps()
	return _u
}

// RemoveStepIDs removes the "steps" edge to Step entities by IDs.
func (_u *MissionUpdate) RemoveStepIDs(ids ...string) *MissionUpdate {
	_u.mutation.RemoveStepIDs(ids...)
	return _u
}

// RemoveSteps removes "steps" edges to Step entities.
func (_u *MissionUpdate) RemoveSteps(v ...*Step) *MissionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MissionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MissionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MissionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MissionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MissionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := mission.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Mission.status": %w`, err)}
		}
	}
	if _u.mutation.ProposalCleared() && len(_u.mutation.ProposalIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Mission.proposal"`)
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Mission.project"`)
	}
	return nil
}

func (_u *MissionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mission.Table, mission.Columns, sqlgraph.NewFieldSpec(mission.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(mission.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(mission.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(mission.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(mission.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(mission.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.AssignedAgentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   mission.AssignedAgentTable,
			Columns: []string{mission.AssignedAgentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssignedAgentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   mission.AssignedAgentTable,
			Columns: []string{mission.AssignedAgentColumn},
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
	if _u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   mission.StepsTable,
			Columns: []string{mission.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(step.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepsIDs(); len(nodes) > 0 && !_u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   mission.StepsTable,
			Columns: []string{mission.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(step.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   mission.StepsTable,
			Columns: []string{mission.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(step.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MissionUpdateOne is the builder for updating a single Mission entity.
type MissionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MissionMutation
}

// SetTitle sets the "title" field.
func (_u *MissionUpdateOne) SetTitle(v string) *MissionUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillableTitle(v *string) *MissionUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *MissionUpdateOne) SetDescription(v string) *MissionUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillableDescription(v *string) *MissionUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *MissionUpdateOne) SetStatus(v mission.Status) *MissionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillableStatus(v *mission.Status) *MissionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAssignedAgentID sets the "assigned_agent_id" field.
func (_u *MissionUpdateOne) SetAssignedAgentID(v string) *MissionUpdateOne {
	_u.mutation.SetAssignedAgentID(v)
	return _u
}

// SetNillableAssignedAgentID sets the "assigned_agent_id" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillableAssignedAgentID(v *string) *MissionUpdateOne {
	if v != nil {
		_u.SetAssignedAgentID(*v)
	}
	return _u
}

// ClearAssignedAgentID clears the value of the "assigned_agent_id" field.
func (_u *MissionUpdateOne) ClearAssignedAgentID() *MissionUpdateOne {
	_u.mutation.ClearAssignedAgentID()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *MissionUpdateOne) SetCompletedAt(v time.Time) *MissionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillableCompletedAt(v *time.Time) *MissionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *MissionUpdateOne) ClearCompletedAt() *MissionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetAssignedAgent sets the "assigned_agent" edge to the Agent entity.
func (_u *MissionUpdateOne) SetAssignedAgent(v *Agent) *MissionUpdateOne {
	return _u.SetAssignedAgentID(v.ID)
}

// AddStepIDs adds the "steps" edge to the Step entity by IDs.
func (_u *MissionUpdateOne) AddStepIDs(ids ...string) *MissionUpdateOne {
	_u.mutation.AddStepIDs(ids...)
	return _u
}

// AddSteps adds the "steps" edges to the Step entity.
func (_u *MissionUpdateOne) AddSteps(v ...*Step) *MissionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepIDs(ids...)
}

// Mutation returns the MissionMutation object of the builder.
func (_u *MissionUpdateOne) Mutation() *MissionMutation {
	return _u.mutation
}

// ClearAssignedAgent clears the "assigned_agent" edge to the Agent entity.
func (_u *MissionUpdateOne) ClearAssignedAgent() *MissionUpdateOne {
	_u.mutation.ClearAssignedAgent()
	return _u
}

// ClearSteps clears all "steps" edges to the Step entity.
func (_u *MissionUpdateOne) ClearSteps() *MissionUpdateOne {
	_u.mutation.ClearSteps()
	return _u
}

// RemoveStepIDs removes the "steps" edge to Step entities by IDs.
func (_u *MissionUpdateOne) RemoveStepIDs(ids ...string) *MissionUpdateOne {
	_u.mutation.RemoveStepIDs(ids...)
	return _u
}

// RemoveSteps removes "steps" edges to Step entities.
func (_u *MissionUpdateOne) RemoveSteps(v ...*Step) *MissionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepIDs(ids...)
}

// Where appends a list predicates to the MissionUpdate builder.
func (_u *MissionUpdateOne) Where(ps ...predicate.Mission) *MissionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MissionUpdateOne) Select(field string, fields ...string) *MissionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Mission entity.
func (_u *MissionUpdateOne) Save(ctx context.Context) (*Mission, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MissionUpdateOne) SaveX(ctx context.Context) *Mission {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MissionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MissionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MissionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := mission.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Mission.status": %w`, err)}
		}
	}
	if _u.mutation.ProposalCleared() && len(_u.mutation.ProposalIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Mission.proposal"`)
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Mission.project"`)
	}
	return nil
}

func (_u *MissionUpdateOne) sqlSave(ctx context.Context) (_node *Mission, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mission.Table, mission.Columns, sqlgraph.NewFieldSpec(mission.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Mission.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, mission.FieldID)
		for _, f := range fields {
			if !mission.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != mission.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(mission.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(mission.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(mission.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(mission.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(mission.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.AssignedAgentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   mission.AssignedAgentTable,
			Columns: []string{mission.AssignedAgentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssignedAgentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   mission.AssignedAgentTable,
			Columns: []string{mission.AssignedAgentColumn},
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
	if _u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   mission.StepsTable,
			Columns: []string{mission.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(step.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepsIDs(); len(nodes) > 0 && !_u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   mission.StepsTable,
			Columns: []string{mission.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(step.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   mission.StepsTable,
			Columns: []string{mission.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(step.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Mission{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
