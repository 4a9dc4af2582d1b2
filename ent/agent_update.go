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
	"github.com/codeready-toolchain/agentloop/ent/event"
	"github.com/codeready-toolchain/agentloop/ent/mission"
	"github.com/codeready-toolchain/agentloop/ent/predicate"
	"github.com/codeready-toolchain/agentloop/ent/proposal"
	"github.com/codeready-toolchain/agentloop/ent/step"
)

// AgentUpdate is the builder for updating Agent entities.
type AgentUpdate struct {
	config
	hooks    []Hook
	mutation *AgentMutation
}

// Where appends a list predicates to the AgentUpdate builder.
func (_u *AgentUpdate) Where(ps ...predicate.Agent) *AgentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *AgentUpdate) SetName(v string) *AgentUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableName(v *string) *AgentUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *AgentUpdate) SetRole(v string) *AgentUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableRole(v *string) *AgentUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *AgentUpdate) SetDescription(v string) *AgentUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableDescription(v *string) *AgentUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentUpdate) SetStatus(v agent.Status) *AgentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableStatus(v *agent.Status) *AgentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetConfig sets the "config" field.
func (_u *AgentUpdate) SetConfig(v map[string]interface{}) *AgentUpdate {
	_u.mutation.SetConfig(v)
	return _u
}

// ClearConfig clears the value of the "config" field.
func (_u *AgentUpdate) ClearConfig() *AgentUpdate {
	_u.mutation.ClearConfig()
	return _u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_u *AgentUpdate) SetLastSeenAt(v time.Time) *AgentUpdate {
	_u.mutation.SetLastSeenAt(v)
	return _u
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableLastSeenAt(v *time.Time) *AgentUpdate {
	if v != nil {
		_u.SetLastSeenAt(*v)
	}
	return _u
}

// ClearLastSeenAt clears the value of the "last_seen_at" field.
func (_u *AgentUpdate) ClearLastSeenAt() *AgentUpdate {
	_u.mutation.ClearLastSeenAt()
	return _u
}

// SetPositionX sets the "position_x" field.
func (_u *AgentUpdate) SetPositionX(v float64) *AgentUpdate {
	_u.mutation.ResetPositionX()
	_u.mutation.SetPositionX(v)
	return _u
}

// SetNillablePositionX sets the "position_x" field if the given value is not nil.
func (_u *AgentUpdate) SetNillablePositionX(v *float64) *AgentUpdate {
	if v != nil {
		_u.SetPositionX(*v)
	}
	return _u
}

// AddPositionX adds value to the "position_x" field.
func (_u *AgentUpdate) AddPositionX(v float64) *AgentUpdate {
	_u.mutation.AddPositionX(v)
	return _u
}

// SetPositionY sets the "position_y" field.
func (_u *AgentUpdate) SetPositionY(v float64) *AgentUpdate {
	_u.mutation.ResetPositionY()
	_u.mutation.SetPositionY(v)
	return _u
}

// SetNillablePositionY sets the "position_y" field if the given value is not nil.
func (_u *AgentUpdate) SetNillablePositionY(v *float64) *AgentUpdate {
	if v != nil {
		_u.SetPositionY(*v)
	}
	return _u
}

// AddPositionY adds value to the "position_y" field.
func (_u *AgentUpdate) AddPositionY(v float64) *AgentUpdate {
	_u.mutation.AddPositionY(v)
	return _u
}

// SetTargetX sets the "target_x" field.
func (_u *AgentUpdate) SetTargetX(v float64) *AgentUpdate {
	_u.mutation.ResetTargetX()
	_u.mutation.SetTargetX(v)
	return _u
}

// SetNillableTargetX sets the "target_x" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableTargetX(v *float64) *AgentUpdate {
	if v != nil {
		_u.SetTargetX(*v)
	}
	return _u
}

// AddTargetX adds value to the "target_x" field.
func (_u *AgentUpdate) AddTargetX(v float64) *AgentUpdate {
	_u.mutation.AddTargetX(v)
	return _u
}

// SetTargetY sets the "target_y" field.
func (_u *AgentUpdate) SetTargetY(v float64) *AgentUpdate {
	_u.mutation.ResetTargetY()
	_u.mutation.SetTargetY(v)
	return _u
}

// SetNillableTargetY sets the "target_y" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableTargetY(v *float64) *AgentUpdate {
	if v != nil {
		_u.SetTargetY(*v)
	}
	return _u
}

// AddTargetY adds value to the "target_y" field.
func (_u *AgentUpdate) AddTargetY(v float64) *AgentUpdate {
	_u.mutation.AddTargetY(v)
	return _u
}

// SetCurrentAction sets the "current_action" field.
func (_u *AgentUpdate) SetCurrentAction(v agent.CurrentAction) *AgentUpdate {
	_u.mutation.SetCurrentAction(v)
	return _u
}

// SetNillableCurrentAction sets the "current_action" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableCurrentAction(v *agent.CurrentAction) *AgentUpdate {
	if v != nil {
		_u.SetCurrentAction(*v)
	}
	return _u
}

// SetAvatar sets the "avatar" field.
func (_u *AgentUpdate) SetAvatar(v string) *AgentUpdate {
	_u.mutation.SetAvatar(v)
	return _u
}

// SetNillableAvatar sets the "avatar" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableAvatar(v *string) *AgentUpdate {
	if v != nil {
		_u.SetAvatar(*v)
	}
	return _u
}

// AddProposalIDs adds the "proposals" edge to the Proposal entity by IDs.
func (_u *AgentUpdate) AddProposalIDs(ids ...string) *AgentUpdate {
	_u.mutation.AddProposalIDs(ids...)
	return _u
}

// AddProposals adds the "proposals" edges to the Proposal entity.
func (_u *AgentUpdate) AddProposals(v ...*Proposal) *AgentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddProposalIDs(ids...)
}

// AddMissionIDs adds the "missions" edge to the Mission entity by IDs.
func (_u *AgentUpdate) AddMissionIDs(ids ...string) *AgentUpdate {
	_u.mutation.AddMissionIDs(ids...)
	return _u
}

// AddMissions adds the "missions" edges to the Mission entity.
func (_u *AgentUpdate) AddMissions(v ...*Mission) *AgentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMissionIDs(ids...)
}

// AddClaimedStepIDs adds the "claimed_steps" edge to the Step entity by IDs.
func (_u *AgentUpdate) AddClaimedStepIDs(ids ...string) *AgentUpdate {
	_u.mutation.AddClaimedStepIDs(ids...)
	return _u
}

// AddClaimedSteps adds the "claimed_steps" edges to the Step entity.
func (_u *AgentUpdate) AddClaimedSteps(v ...*Step) *AgentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddClaimedStepIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *AgentUpdate) AddEventIDs(ids ...string) *AgentUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *AgentUpdate) AddEvents(v ...*Event) *AgentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the AgentMutation object of the builder.
func (_u *AgentUpdate) Mutation() *AgentMutation {
	return _u.mutation
}

// ClearProposals clears all "proposals" edges to the Proposal entity.
func (_u *AgentUpdate) ClearProposals() *AgentUpdate {
	_u.mutation.ClearProposals()
	return _u
}

// RemoveProposalIDs removes the "proposals" edge to Proposal entities by IDs.
func (_u *AgentUpdate) RemoveProposalIDs(ids ...string) *AgentUpdate {
	_u.mutation.RemoveProposalIDs(ids...)
	return _u
}

// RemoveProposals removes "proposals" edges to Proposal entities.
func (_u *AgentUpdate) RemoveProposals(v ...*Proposal) *AgentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveProposalIDs(ids...)
}

// ClearMissions clears all "missions" edges to the Mission entity.
func (_u *AgentUpdate) ClearMissions() *AgentUpdate {
	_u.mutation.ClearMissions()
	return _u
}

// RemoveMissionIDs removes the "missions" edge to Mission entities by IDs.
func (_u *AgentUpdate) RemoveMissionIDs(ids ...string) *AgentUpdate {
	_u.mutation.RemoveMissionIDs(ids...)
	return _u
}

// RemoveMissions removes "missions" edges to Mission entities.
func (_u *AgentUpdate) RemoveMissions(v ...*Mission) *AgentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMissionIDs(ids...)
}

// ClearClaimedSteps clears all "claimed_steps" edges to the Step entity.
func (_u *AgentUpdate) ClearClaimedSteps() *AgentUpdate {
	_u.mutation.ClearClaimedSteps()
	return _u
}

// RemoveClaimedStepIDs removes the "claimed_steps" edge to Step entities by IDs.
func (_u *AgentUpdate) RemoveClaimedStepIDs(ids ...string) *AgentUpdate {
	_u.mutation.RemoveClaimedStepIDs(ids...)
	return _u
}

// RemoveClaimedSteps removes "claimed_steps" edges to Step entities.
func (_u *AgentUpdate) RemoveClaimedSteps(v ...*Step) *AgentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveClaimedStepIDs(ids...)
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *AgentUpdate) ClearEvents() *AgentUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *AgentUpdate) RemoveEventIDs(ids ...string) *AgentUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *AgentUpdate) RemoveEvents(v ...*Event) *AgentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Agent.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrentAction(); ok {
		if err := agent.CurrentActionValidator(v); err != nil {
			return &ValidationError{Name: "current_action", err: fmt.Errorf(`ent: validator failed for field "Agent.current_action": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Agent.project"`)
	}
	return nil
}

func (_u *AgentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agent.Table, agent.Columns, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(agent.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(agent.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(agent.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agent.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(agent.FieldConfig, field.TypeJSON, value)
	}
	if _u.mutation.ConfigCleared() {
		_spec.ClearField(agent.FieldConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastSeenAt(); ok {
		_spec.SetField(agent.FieldLastSeenAt, field.TypeTime, value)
	}
	if _u.mutation.LastSeenAtCleared() {
		_spec.ClearField(agent.FieldLastSeenAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PositionX(); ok {
		_spec.SetField(agent.FieldPositionX, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPositionX(); ok {
		_spec.AddField(agent.FieldPositionX, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PositionY(); ok {
		_spec.SetField(agent.FieldPositionY, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPositionY(); ok {
		_spec.AddField(agent.FieldPositionY, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TargetX(); ok {
		_spec.SetField(agent.FieldTargetX, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTargetX(); ok {
		_spec.AddField(agent.FieldTargetX, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TargetY(); ok {
		_spec.SetField(agent.FieldTargetY, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTargetY(); ok {
		_spec.AddField(agent.FieldTargetY, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CurrentAction(); ok {
		_spec.SetField(agent.FieldCurrentAction, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Avatar(); ok {
		_spec.SetField(agent.FieldAvatar, field.TypeString, value)
	}
	if _u.mutation.ProposalsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.ProposalsTable,
			Columns: []string{agent.ProposalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(proposal.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedProposalsIDs(); len(nodes) > 0 && !_u.mutation.ProposalsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.ProposalsTable,
			Columns: []string{agent.ProposalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(proposal.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProposalsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.ProposalsTable,
			Columns: []string{agent.ProposalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(proposal.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MissionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.MissionsTable,
			Columns: []string{agent.MissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mission.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMissionsIDs(); len(nodes) > 0 && !_u.mutation.MissionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.MissionsTable,
			Columns: []string{agent.MissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mission.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MissionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.MissionsTable,
			Columns: []string{agent.MissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mission.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ClaimedStepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.ClaimedStepsTable,
			Columns: []string{agent.ClaimedStepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(step.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedClaimedStepsIDs(); len(nodes) > 0 && !_u.mutation.ClaimedStepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.ClaimedStepsTable,
			Columns: []string{agent.ClaimedStepsColumn},
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
	if nodes := _u.mutation.ClaimedStepsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.ClaimedStepsTable,
			Columns: []string{agent.ClaimedStepsColumn},
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
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.EventsTable,
			Columns: []string{agent.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.EventsTable,
			Columns: []string{agent.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.EventsTable,
			Columns: []string{agent.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentUpdateOne is the builder for updating a single Agent entity.
type AgentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentMutation
}

// SetName sets the "name" field.
func (_u *AgentUpdateOne) SetName(v string) *AgentUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableName(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *AgentUpdateOne) SetRole(v string) *AgentUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableRole(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *AgentUpdateOne) SetDescription(v string) *AgentUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableDescription(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentUpdateOne) SetStatus(v agent.Status) *AgentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableStatus(v *agent.Status) *AgentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetConfig sets the "config" field.
func (_u *AgentUpdateOne) SetConfig(v map[string]interface{}) *AgentUpdateOne {
	_u.mutation.SetConfig(v)
	return _u
}

// ClearConfig clears the value of the "config" field.
func (_u *AgentUpdateOne) ClearConfig() *AgentUpdateOne {
	_u.mutation.ClearConfig()
	return _u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_u *AgentUpdateOne) SetLastSeenAt(v time.Time) *AgentUpdateOne {
	_u.mutation.SetLastSeenAt(v)
	return _u
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableLastSeenAt(v *time.Time) *AgentUpdateOne {
	if v != nil {
		_u.SetLastSeenAt(*v)
	}
	return _u
}

// ClearLastSeenAt clears the value of the "last_seen_at" field.
func (_u *AgentUpdateOne) ClearLastSeenAt() *AgentUpdateOne {
	_u.mutation.ClearLastSeenAt()
	return _u
}

// SetPositionX sets the "position_x" field.
func (_u *AgentUpdateOne) SetPositionX(v float64) *AgentUpdateOne {
	_u.mutation.ResetPositionX()
	_u.mutation.SetPositionX(v)
	return _u
}

// SetNillablePositionX sets the "position_x" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillablePositionX(v *float64) *AgentUpdateOne {
	if v != nil {
		_u.SetPositionX(*v)
	}
	return _u
}

// AddPositionX adds value to the "position_x" field.
func (_u *AgentUpdateOne) AddPositionX(v float64) *AgentUpdateOne {
	_u.mutation.AddPositionX(v)
	return _u
}

// SetPositionY sets the "position_y" field.
func (_u *AgentUpdateOne) SetPositionY(v float64) *AgentUpdateOne {
	_u.mutation.ResetPositionY()
	_u.mutation.SetPositionY(v)
	return _u
}

// SetNillablePositionY sets the "position_y" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillablePositionY(v *float64) *AgentUpdateOne {
	if v != nil {
		_u.SetPositionY(*v)
	}
	return _u
}

// AddPositionY adds value to the "position_y" field.
func (_u *AgentUpdateOne) AddPositionY(v float64) *AgentUpdateOne {
	_u.mutation.AddPositionY(v)
	return _u
}

// SetTargetX sets the "target_x" field.
func (_u *AgentUpdateOne) SetTargetX(v float64) *AgentUpdateOne {
	_u.mutation.ResetTargetX()
	_u.mutation.SetTargetX(v)
	return _u
}

// SetNillableTargetX sets the "target_x" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableTargetX(v *float64) *AgentUpdateOne {
	if v != nil {
		_u.SetTargetX(*v)
	}
	return _u
}

// AddTargetX adds value to the "target_x" field.
func (_u *AgentUpdateOne) AddTargetX(v float64) *AgentUpdateOne {
	_u.mutation.AddTargetX(v)
	return _u
}

// SetTargetY sets the "target_y" field.
func (_u *AgentUpdateOne) SetTargetY(v float64) *AgentUpdateOne {
	_u.mutation.ResetTargetY()
	_u.mutation.SetTargetY(v)
	return _u
}

// SetNillableTargetY sets the "target_y" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableTargetY(v *float64) *AgentUpdateOne {
	if v != nil {
		_u.SetTargetY(*v)
	}
	return _u
}

// AddTargetY adds value to the "target_y" field.
func (_u *AgentUpdateOne) AddTargetY(v float64) *AgentUpdateOne {
	_u.mutation.AddTargetY(v)
	return _u
}

// SetCurrentAction sets the "current_action" field.
func (_u *AgentUpdateOne) SetCurrentAction(v agent.CurrentAction) *AgentUpdateOne {
	_u.mutation.SetCurrentAction(v)
	return _u
}

// SetNillableCurrentAction sets the "current_action" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableCurrentAction(v *agent.CurrentAction) *AgentUpdateOne {
	if v != nil {
		_u.SetCurrentAction(*v)
	}
	return _u
}

// SetAvatar sets the "avatar" field.
func (_u *AgentUpdateOne) SetAvatar(v string) *AgentUpdateOne {
	_u.mutation.SetAvatar(v)
	return _u
}

// SetNillableAvatar sets the "avatar" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableAvatar(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetAvatar(*v)
	}
	return _u
}

// AddProposalIDs adds the "proposals" edge to the Proposal entity by IDs.
func (_u *AgentUpdateOne) AddProposalIDs(ids ...string) *AgentUpdateOne {
	_u.mutation.AddProposalIDs(ids...)
	return _u
}

// AddProposals adds the "proposals" edges to the Proposal entity.
func (_u *AgentUpdateOne) AddProposals(v ...*Proposal) *AgentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddProposalIDs(ids...)
}

// AddMissionIDs adds the "missions" edge to the Mission entity by IDs.
func (_u *AgentUpdateOne) AddMissionIDs(ids ...string) *AgentUpdateOne {
	_u.mutation.AddMissionIDs(ids...)
	return _u
}

// AddMissions adds the "missions" edges to the Mission entity.
func (_u *AgentUpdateOne) AddMissions(v ...*Mission) *AgentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMissionIDs(ids...)
}

// AddClaimedStepIDs adds the "claimed_steps" edge to the Step entity by IDs.
func (_u *AgentUpdateOne) AddClaimedStepIDs(ids ...string) *AgentUpdateOne {
	_u.mutation.AddClaimedStepIDs(ids...)
	return _u
}

// AddClaimedSteps adds the "claimed_steps" edges to the Step entity.
func (_u *AgentUpdateOne) AddClaimedSteps(v ...*Step) *AgentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddClaimedStepIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *AgentUpdateOne) AddEventIDs(ids ...string) *AgentUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *AgentUpdateOne) AddEvents(v ...*Event) *AgentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the AgentMutation object of the builder.
func (_u *AgentUpdateOne) Mutation() *AgentMutation {
	return _u.mutation
}

// ClearProposals clears all "proposals" edges to the Proposal entity.
func (_u *AgentUpdateOne) ClearProposals() *AgentUpdateOne {
	_u.mutation.ClearProposals()
	return _u
}

// RemoveProposalIDs removes the "proposals" edge to Proposal entities by IDs.
func (_u *AgentUpdateOne) RemoveProposalIDs(ids ...string) *AgentUpdateOne {
	_u.mutation.RemoveProposalIDs(ids...)
	return _u
}

// RemoveProposals removes "proposals" edges to Proposal entities.
func (_u *AgentUpdateOne) RemoveProposals(v ...*Proposal) *AgentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveProposalIDs(ids...)
}

// ClearMissions clears all "missions" edges to the Mission entity.
func (_u *AgentUpdateOne) ClearMissions() *AgentUpdateOne {
	_u.mutation.ClearMissions()
	return _u
}

// RemoveMissionIDs removes the "missions" edge to Mission entities by IDs.
func (_u *AgentUpdateOne) RemoveMissionIDs(ids ...string) *AgentUpdateOne {
	_u.mutation.RemoveMissionIDs(ids...)
	return _u
}

// RemoveMissions removes "missions" edges to Mission entities.
func (_u *AgentUpdateOne) RemoveMissions(v ...*Mission) *AgentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMissionIDs(ids...)
}

// ClearClaimedSteps clears all "claimed_steps" edges to the Step entity.
func (_u *AgentUpdateOne) ClearClaimedSteps() *AgentUpdateOne {
	_u.mutation.ClearClaimedSteps()
	return _u
}

// RemoveClaimedStepIDs removes the "claimed_steps" edge to Step entities by IDs.
func (_u *AgentUpdateOne) RemoveClaimedStepIDs(ids ...string) *AgentUpdateOne {
	_u.mutation.RemoveClaimedStepIDs(ids...)
	return _u
}

// RemoveClaimedSteps removes "claimed_steps" edges to Step entities.
func (_u *AgentUpdateOne) RemoveClaimedSteps(v ...*Step) *AgentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveClaimedStepIDs(ids...)
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *AgentUpdateOne) ClearEvents() *AgentUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *AgentUpdateOne) RemoveEventIDs(ids ...string) *AgentUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *AgentUpdateOne) RemoveEvents(v ...*Event) *AgentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Where appends a list predicates to the AgentUpdate builder.
func (_u *AgentUpdateOne) Where(ps ...predicate.Agent) *AgentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentUpdateOne) Select(field string, fields ...string) *AgentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Agent entity.
func (_u *AgentUpdateOne) Save(ctx context.Context) (*Agent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentUpdateOne) SaveX(ctx context.Context) *Agent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Agent.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrentAction(); ok {
		if err := agent.CurrentActionValidator(v); err != nil {
			return &ValidationError{Name: "current_action", err: fmt.Errorf(`ent: validator failed for field "Agent.current_action": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Agent.project"`)
	}
	return nil
}

func (_u *AgentUpdateOne) sqlSave(ctx context.Context) (_node *Agent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agent.Table, agent.Columns, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Agent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agent.FieldID)
		for _, f := range fields {
			if !agent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agent.FieldID {
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
		_spec.SetField(agent.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(agent.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(agent.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agent.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(agent.FieldConfig, field.TypeJSON, value)
	}
	if _u.mutation.ConfigCleared() {
		_spec.ClearField(agent.FieldConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastSeenAt(); ok {
		_spec.SetField(agent.FieldLastSeenAt, field.TypeTime, value)
	}
	if _u.mutation.LastSeenAtCleared() {
		_spec.ClearField(agent.FieldLastSeenAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PositionX(); ok {
		_spec.SetField(agent.FieldPositionX, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPositionX(); ok {
		_spec.AddField(agent.FieldPositionX, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PositionY(); ok {
		_spec.SetField(agent.FieldPositionY, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPositionY(); ok {
		_spec.AddField(agent.FieldPositionY, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TargetX(); ok {
		_spec.SetField(agent.FieldTargetX, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTargetX(); ok {
		_spec.AddField(agent.FieldTargetX, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TargetY(); ok {
		_spec.SetField(agent.FieldTargetY, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTargetY(); ok {
		_spec.AddField(agent.FieldTargetY, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CurrentAction(); ok {
		_spec.SetField(agent.FieldCurrentAction, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Avatar(); ok {
		_spec.SetField(agent.FieldAvatar, field.TypeString, value)
	}
	if _u.mutation.ProposalsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.ProposalsTable,
			Columns: []string{agent.ProposalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(proposal.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedProposalsIDs(); len(nodes) > 0 && !_u.mutation.ProposalsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.ProposalsTable,
			Columns: []string{agent.ProposalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(proposal.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProposalsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.ProposalsTable,
			Columns: []string{agent.ProposalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(proposal.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MissionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.MissionsTable,
			Columns: []string{agent.MissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mission.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMissionsIDs(); len(nodes) > 0 && !_u.mutation.MissionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.MissionsTable,
			Columns: []string{agent.MissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mission.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MissionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.MissionsTable,
			Columns: []string{agent.MissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mission.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ClaimedStepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.ClaimedStepsTable,
			Columns: []string{agent.ClaimedStepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(step.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedClaimedStepsIDs(); len(nodes) > 0 && !_u.mutation.ClaimedStepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.ClaimedStepsTable,
			Columns: []string{agent.ClaimedStepsColumn},
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
	if nodes := _u.mutation.ClaimedStepsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.ClaimedStepsTable,
			Columns: []string{agent.ClaimedStepsColumn},
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
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.EventsTable,
			Columns: []string{agent.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.EventsTable,
			Columns: []string{agent.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.EventsTable,
			Columns: []string{agent.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Agent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
