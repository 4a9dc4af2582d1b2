// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/agentloop/ent/agent"
	"github.com/codeready-toolchain/agentloop/ent/event"
	"github.com/codeready-toolchain/agentloop/ent/mission"
	"github.com/codeready-toolchain/agentloop/ent/project"
	"github.com/codeready-toolchain/agentloop/ent/proposal"
	"github.com/codeready-toolchain/agentloop/ent/step"
)

// AgentCreate is the builder for creating a Agent entity.
type AgentCreate struct {
	config
	mutation *AgentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (_c *AgentCreate) SetName(v string) *AgentCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *AgentCreate) SetRole(v string) *AgentCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *AgentCreate) SetDescription(v string) *AgentCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *AgentCreate) SetNillableDescription(v *string) *AgentCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *AgentCreate) SetStatus(v agent.Status) *AgentCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AgentCreate) SetNillableStatus(v *agent.Status) *AgentCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetProjectID sets the "project_id" field.
func (_c *AgentCreate) SetProjectID(v string) *AgentCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetConfig sets the "config" field.
func (_c *AgentCreate) SetConfig(v map[string]interface{}) *AgentCreate {
	_c.mutation.SetConfig(v)
	return _c
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_c *AgentCreate) SetLastSeenAt(v time.Time) *AgentCreate {
	_c.mutation.SetLastSeenAt(v)
	return _c
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_c *AgentCreate) SetNillableLastSeenAt(v *time.Time) *AgentCreate {
	if v != nil {
		_c.SetLastSeenAt(*v)
	}
	return _c
}

// SetPositionX sets the "position_x" field.
func (_c *AgentCreate) SetPositionX(v float64) *AgentCreate {
	_c.mutation.SetPositionX(v)
	return _c
}

// SetNillablePositionX sets the "position_x" field if the given value is not nil.
func (_c *AgentCreate) SetNillablePositionX(v *float64) *AgentCreate {
	if v != nil {
		_c.SetPositionX(*v)
	}
	return _c
}

// SetPositionY sets the "position_y" field.
func (_c *AgentCreate) SetPositionY(v float64) *AgentCreate {
	_c.mutation.SetPositionY(v)
	return _c
}

// SetNillablePositionY sets the "position_y" field if the given value is not nil.
func (_c *AgentCreate) SetNillablePositionY(v *float64) *AgentCreate {
	if v != nil {
		_c.SetPositionY(*v)
	}
	return _c
}

// SetTargetX sets the "target_x" field.
func (_c *AgentCreate) SetTargetX(v float64) *AgentCreate {
	_c.mutation.SetTargetX(v)
	return _c
}

// SetNillableTargetX sets the "target_x" field if the given value is not nil.
func (_c *AgentCreate) SetNillableTargetX(v *float64) *AgentCreate {
	if v != nil {
		_c.SetTargetX(*v)
	}
	return _c
}

// SetTargetY sets the "target_y" field.
func (_c *AgentCreate) SetTargetY(v float64) *AgentCreate {
	_c.mutation.SetTargetY(v)
	return _c
}

// SetNillableTargetY sets the "target_y" field if the given value is not nil.
func (_c *AgentCreate) SetNillableTargetY(v *float64) *AgentCreate {
	if v != nil {
		_c.SetTargetY(*v)
	}
	return _c
}

// SetCurrentAction sets the "current_action" field.
func (_c *AgentCreate) SetCurrentAction(v agent.CurrentAction) *AgentCreate {
	_c.mutation.SetCurrentAction(v)
	return _c
}

// SetNillableCurrentAction sets the "current_action" field if the given value is not nil.
func (_c *AgentCreate) SetNillableCurrentAction(v *agent.CurrentAction) *AgentCreate {
	if v != nil {
		_c.SetCurrentAction(*v)
	}
	return _c
}

// SetAvatar sets the "avatar" field.
func (_c *AgentCreate) SetAvatar(v string) *AgentCreate {
	_c.mutation.SetAvatar(v)
	return _c
}

// SetNillableAvatar sets the "avatar" field if the given value is not nil.
func (_c *AgentCreate) SetNillableAvatar(v *string) *AgentCreate {
	if v != nil {
		_c.SetAvatar(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentCreate) SetCreatedAt(v time.Time) *AgentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentCreate) SetNillableCreatedAt(v *time.Time) *AgentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentCreate) SetID(v string) *AgentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *AgentCreate) SetProject(v *Project) *AgentCreate {
	return _c.SetProjectID(v.ID)
}

// AddProposalIDs adds the "proposals" edge to the Proposal entity by IDs.
func (_c *AgentCreate) AddProposalIDs(ids ...string) *AgentCreate {
	_c.mutation.AddProposalIDs(ids...)
	return _c
}

// AddProposals adds the "proposals" edges to the Proposal entity.
func (_c *AgentCreate) AddProposals(v ...*Proposal) *AgentCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddProposalIDs(ids...)
}

// AddMissionIDs adds the "missions" edge to the Mission entity by IDs.
func (_c *AgentCreate) AddMissionIDs(ids ...string) *AgentCreate {
	_c.mutation.AddMissionIDs(ids...)
	return _c
}

// AddMissions adds the "missions" edges to the Mission entity.
func (_c *AgentCreate) AddMissions(v ...*Mission) *AgentCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMissionIDs(ids...)
}

// AddClaimedStepIDs adds the "claimed_steps" edge to the Step entity by IDs.
func (_c *AgentCreate) AddClaimedStepIDs(ids ...string) *AgentCreate {
	_c.mutation.AddClaimedStepIDs(ids...)
	return _c
}

// AddClaimedSteps adds the "claimed_steps" edges to the Step entity.
func (_c *AgentCreate) AddClaimedSteps(v ...*Step) *AgentCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddClaimedStepIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_c *AgentCreate) AddEventIDs(ids ...string) *AgentCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the Event entity.
func (_c *AgentCreate) AddEvents(v ...*Event) *AgentCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// Mutation returns the AgentMutation object of the builder.
func (_c *AgentCreate) Mutation() *AgentMutation {
	return _c.mutation
}

// Save creates the Agent in the database.
func (_c *AgentCreate) Save(ctx context.Context) (*Agent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentCreate) SaveX(ctx context.Context) *Agent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentCreate) defaults() {
	if _, ok := _c.mutation.Description(); !ok {
		v := agent.DefaultDescription
		_c.mutation.SetDescription(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := agent.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.PositionX(); !ok {
		v := agent.DefaultPositionX
		_c.mutation.SetPositionX(v)
	}
	if _, ok := _c.mutation.PositionY(); !ok {
		v := agent.DefaultPositionY
		_c.mutation.SetPositionY(v)
	}
	if _, ok := _c.mutation.TargetX(); !ok {
		v := agent.DefaultTargetX
		_c.mutation.SetTargetX(v)
	}
	if _, ok := _c.mutation.TargetY(); !ok {
		v := agent.DefaultTargetY
		_c.mutation.SetTargetY(v)
	}
	if _, ok := _c.mutation.CurrentAction(); !ok {
		v := agent.DefaultCurrentAction
		_c.mutation.SetCurrentAction(v)
	}
	if _, ok := _c.mutation.Avatar(); !ok {
		v := agent.DefaultAvatar
		_c.mutation.SetAvatar(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Agent.name"`)}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "Agent.role"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Agent.description"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Agent.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := agent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Agent.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "Agent.project_id"`)}
	}
	if _, ok := _c.mutation.PositionX(); !ok {
		return &ValidationError{Name: "position_x", err: errors.New(`ent: missing required field "Agent.position_x"`)}
	}
	if _, ok := _c.mutation.PositionY(); !ok {
		return &ValidationError{Name: "position_y", err: errors.New(`ent: missing required field "Agent.position_y"`)}
	}
	if _, ok := _c.mutation.TargetX(); !ok {
		return &ValidationError{Name: "target_x", err: errors.New(`ent: missing required field "Agent.target_x"`)}
	}
	if _, ok := _c.mutation.TargetY(); !ok {
		return &ValidationError{Name: "target_y", err: errors.New(`ent: missing required field "Agent.target_y"`)}
	}
	if _, ok := _c.mutation.CurrentAction(); !ok {
		return &ValidationError{Name: "current_action", err: errors.New(`ent: missing required field "Agent.current_action"`)}
	}
	if v, ok := _c.mutation.CurrentAction(); ok {
		if err := agent.CurrentActionValidator(v); err != nil {
			return &ValidationError{Name: "current_action", err: fmt.Errorf(`ent: validator failed for field "Agent.current_action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Avatar(); !ok {
		return &ValidationError{Name: "avatar", err: errors.New(`ent: missing required field "Agent.avatar"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Agent.created_at"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "Agent.project"`)}
	}
	return nil
}

func (_c *AgentCreate) sqlSave(ctx context.Context) (*Agent, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Agent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentCreate) createSpec() (*Agent, *sqlgraph.CreateSpec) {
	var (
		_node = &Agent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agent.Table, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(agent.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(agent.FieldRole, field.TypeString, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(agent.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(agent.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Config(); ok {
		_spec.SetField(agent.FieldConfig, field.TypeJSON, value)
		_node.Config = value
	}
	if value, ok := _c.mutation.LastSeenAt(); ok {
		_spec.SetField(agent.FieldLastSeenAt, field.TypeTime, value)
		_node.LastSeenAt = &value
	}
	if value, ok := _c.mutation.PositionX(); ok {
		_spec.SetField(agent.FieldPositionX, field.TypeFloat64, value)
		_node.PositionX = value
	}
	if value, ok := _c.mutation.PositionY(); ok {
		_spec.SetField(agent.FieldPositionY, field.TypeFloat64, value)
		_node.PositionY = value
	}
	if value, ok := _c.mutation.TargetX(); ok {
		_spec.SetField(agent.FieldTargetX, field.TypeFloat64, value)
		_node.TargetX = value
	}
	if value, ok := _c.mutation.TargetY(); ok {
		_spec.SetField(agent.FieldTargetY, field.TypeFloat64, value)
		_node.TargetY = value
	}
	if value, ok := _c.mutation.CurrentAction(); ok {
		_spec.SetField(agent.FieldCurrentAction, field.TypeEnum, value)
		_node.CurrentAction = value
	}
	if value, ok := _c.mutation.Avatar(); ok {
		_spec.SetField(agent.FieldAvatar, field.TypeString, value)
		_node.Avatar = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agent.ProjectTable,
			Columns: []string{agent.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ProjectID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ProposalsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MissionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ClaimedStepsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Agent.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentCreate) OnConflict(opts ...sql.ConflictOption) *AgentUpsertOne {
	_c.conflict = opts
	return &AgentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Agent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentCreate) OnConflictColumns(columns ...string) *AgentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentUpsertOne{
		create: _c,
	}
}

type (
	// AgentUpsertOne is the builder for "upsert"-ing
	//  one Agent node.
	AgentUpsertOne struct {
		create *AgentCreate
	}

	// AgentUpsert is the "OnConflict" setter.
	AgentUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *AgentUpsert) SetName(v string) *AgentUpsert {
	u.Set(agent.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *AgentUpsert) UpdateName() *AgentUpsert {
	u.SetExcluded(agent.FieldName)
	return u
}

// SetRole sets the "role" field.
func (u *AgentUpsert) SetRole(v string) *AgentUpsert {
	u.Set(agent.FieldRole, v)
	return u
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *AgentUpsert) UpdateRole() *AgentUpsert {
	u.SetExcluded(agent.FieldRole)
	return u
}

// SetDescription sets the "description" field.
func (u *AgentUpsert) SetDescription(v string) *AgentUpsert {
	u.Set(agent.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *AgentUpsert) UpdateDescription() *AgentUpsert {
	u.SetExcluded(agent.FieldDescription)
	return u
}

// SetStatus sets the "status" field.
func (u *AgentUpsert) SetStatus(v agent.Status) *AgentUpsert {
	u.Set(agent.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AgentUpsert) UpdateStatus() *AgentUpsert {
	u.SetExcluded(agent.FieldStatus)
	return u
}

// SetConfig sets the "config" field.
func (u *AgentUpsert) SetConfig(v map[string]interface{}) *AgentUpsert {
	u.Set(agent.FieldConfig, v)
	return u
}

// UpdateConfig sets the "config" field to the value that was provided on create.
func (u *AgentUpsert) UpdateConfig() *AgentUpsert {
	u.SetExcluded(agent.FieldConfig)
	return u
}

// ClearConfig clears the value of the "config" field.
func (u *AgentUpsert) ClearConfig() *AgentUpsert {
	u.SetNull(agent.FieldConfig)
	return u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (u *AgentUpsert) SetLastSeenAt(v time.Time) *AgentUpsert {
	u.Set(agent.FieldLastSeenAt, v)
	return u
}

// UpdateLastSeenAt sets the "last_seen_at" field to the value that was provided on create.
func (u *AgentUpsert) UpdateLastSeenAt() *AgentUpsert {
	u.SetExcluded(agent.FieldLastSeenAt)
	return u
}

// ClearLastSeenAt clears the value of the "last_seen_at" field.
func (u *AgentUpsert) ClearLastSeenAt() *AgentUpsert {
	u.SetNull(agent.FieldLastSeenAt)
	return u
}

// SetPositionX sets the "position_x" field.
func (u *AgentUpsert) SetPositionX(v float64) *AgentUpsert {
	u.Set(agent.FieldPositionX, v)
	return u
}

// UpdatePositionX sets the "position_x" field to the value that was provided on create.
func (u *AgentUpsert) UpdatePositionX() *AgentUpsert {
	u.SetExcluded(agent.FieldPositionX)
	return u
}

// AddPositionX adds v to the "position_x" field.
func (u *AgentUpsert) AddPositionX(v float64) *AgentUpsert {
	u.Add(agent.FieldPositionX, v)
	return u
}

// SetPositionY sets the "position_y" field.
func (u *AgentUpsert) SetPositionY(v float64) *AgentUpsert {
	u.Set(agent.FieldPositionY, v)
	return u
}

// UpdatePositionY sets the "position_y" field to the value that was provided on create.
func (u *AgentUpsert) UpdatePositionY() *AgentUpsert {
	u.SetExcluded(agent.FieldPositionY)
	return u
}

// AddPositionY adds v to the "position_y" field.
func (u *AgentUpsert) AddPositionY(v float64) *AgentUpsert {
	u.Add(agent.FieldPositionY, v)
	return u
}

// SetTargetX sets the "target_x" field.
func (u *AgentUpsert) SetTargetX(v float64) *AgentUpsert {
	u.Set(agent.FieldTargetX, v)
	return u
}

// UpdateTargetX sets the "target_x" field to the value that was provided on create.
func (u *AgentUpsert) UpdateTargetX() *AgentUpsert {
	u.SetExcluded(agent.FieldTargetX)
	return u
}

// AddTargetX adds v to the "target_x" field.
func (u *AgentUpsert) AddTargetX(v float64) *AgentUpsert {
	u.Add(agent.FieldTargetX, v)
	return u
}

// SetTargetY sets the "target_y" field.
func (u *AgentUpsert) SetTargetY(v float64) *AgentUpsert {
	u.Set(agent.FieldTargetY, v)
	return u
}

// UpdateTargetY sets the "target_y" field to the value that was provided on create.
func (u *AgentUpsert) UpdateTargetY() *AgentUpsert {
	u.SetExcluded(agent.FieldTargetY)
	return u
}

// AddTargetY adds v to the "target_y" field.
func (u *AgentUpsert) AddTargetY(v float64) *AgentUpsert {
	u.Add(agent.FieldTargetY, v)
	return u
}

// SetCurrentAction sets the "current_action" field.
func (u *AgentUpsert) SetCurrentAction(v agent.CurrentAction) *AgentUpsert {
	u.Set(agent.FieldCurrentAction, v)
	return u
}

// UpdateCurrentAction sets the "current_action" field to the value that was provided on create.
func (u *AgentUpsert) UpdateCurrentAction() *AgentUpsert {
	u.SetExcluded(agent.FieldCurrentAction)
	return u
}

// SetAvatar sets the "avatar" field.
func (u *AgentUpsert) SetAvatar(v string) *AgentUpsert {
	u.Set(agent.FieldAvatar, v)
	return u
}

// UpdateAvatar sets the "avatar" field to the value that was provided on create.
func (u *AgentUpsert) UpdateAvatar() *AgentUpsert {
	u.SetExcluded(agent.FieldAvatar)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Agent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgentUpsertOne) UpdateNewValues() *AgentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(agent.FieldID)
		}
		if _, exists := u.create.mutation.ProjectID(); exists {
			s.SetIgnore(agent.FieldProjectID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(agent.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Agent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AgentUpsertOne) Ignore() *AgentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentUpsertOne) DoNothing() *AgentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentCreate.OnConflict
// documentation for more info.
func (u *AgentUpsertOne) Update(set func(*AgentUpsert)) *AgentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *AgentUpsertOne) SetName(v string) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateName() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateName()
	})
}

// SetRole sets the "role" field.
func (u *AgentUpsertOne) SetRole(v string) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetRole(v)
	})
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateRole() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateRole()
	})
}

// SetDescription sets the "description" field.
func (u *AgentUpsertOne) SetDescription(v string) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateDescription() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateDescription()
	})
}

// SetStatus sets the "status" field.
func (u *AgentUpsertOne) SetStatus(v agent.Status) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateStatus() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateStatus()
	})
}

// SetConfig sets the "config" field.
func (u *AgentUpsertOne) SetConfig(v map[string]interface{}) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetConfig(v)
	})
}

// UpdateConfig sets the "config" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateConfig() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateConfig()
	})
}

// ClearConfig clears the value of the "config" field.
func (u *AgentUpsertOne) ClearConfig() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.ClearConfig()
	})
}

// SetLastSeenAt sets the "last_seen_at" field.
func (u *AgentUpsertOne) SetLastSeenAt(v time.Time) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetLastSeenAt(v)
	})
}

// UpdateLastSeenAt sets the "last_seen_at" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateLastSeenAt() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateLastSeenAt()
	})
}

// ClearLastSeenAt clears the value of the "last_seen_at" field.
func (u *AgentUpsertOne) ClearLastSeenAt() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.ClearLastSeenAt()
	})
}

// SetPositionX sets the "position_x" field.
func (u *AgentUpsertOne) SetPositionX(v float64) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetPositionX(v)
	})
}

// AddPositionX adds v to the "position_x" field.
func (u *AgentUpsertOne) AddPositionX(v float64) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.AddPositionX(v)
	})
}

// UpdatePositionX sets the "position_x" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdatePositionX() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdatePositionX()
	})
}

// SetPositionY sets the "position_y" field.
func (u *AgentUpsertOne) SetPositionY(v float64) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetPositionY(v)
	})
}

// AddPositionY adds v to the "position_y" field.
func (u *AgentUpsertOne) AddPositionY(v float64) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.AddPositionY(v)
	})
}

// UpdatePositionY sets the "position_y" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdatePositionY() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdatePositionY()
	})
}

// SetTargetX sets the "target_x" field.
func (u *AgentUpsertOne) SetTargetX(v float64) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetTargetX(v)
	})
}

// AddTargetX adds v to the "target_x" field.
func (u *AgentUpsertOne) AddTargetX(v float64) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.AddTargetX(v)
	})
}

// UpdateTargetX sets the "target_x" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateTargetX() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateTargetX()
	})
}

// SetTargetY sets the "target_y" field.
func (u *AgentUpsertOne) SetTargetY(v float64) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetTargetY(v)
	})
}

// AddTargetY adds v to the "target_y" field.
func (u *AgentUpsertOne) AddTargetY(v float64) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.AddTargetY(v)
	})
}

// UpdateTargetY sets the "target_y" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateTargetY() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateTargetY()
	})
}

// SetCurrentAction sets the "current_action" field.
func (u *AgentUpsertOne) SetCurrentAction(v agent.CurrentAction) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetCurrentAction(v)
	})
}

// UpdateCurrentAction sets the "current_action" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateCurrentAction() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateCurrentAction()
	})
}

// SetAvatar sets the "avatar" field.
func (u *AgentUpsertOne) SetAvatar(v string) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetAvatar(v)
	})
}

// UpdateAvatar sets the "avatar" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateAvatar() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateAvatar()
	})
}

// Exec executes the query.
func (u *AgentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AgentUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AgentUpsertOne.ID is not supported by MySQL driver. Use AgentUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AgentUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AgentCreateBulk is the builder for creating many Agent entities in bulk.
type AgentCreateBulk struct {
	config
	err      error
	builders []*AgentCreate
	conflict []sql.ConflictOption
}

// Save creates the Agent entities in the database.
func (_c *AgentCreateBulk) Save(ctx context.Context) ([]*Agent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Agent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentMutation)
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
					spec.OnConflict = _c.conflict
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
func (_c *AgentCreateBulk) SaveX(ctx context.Context) []*Agent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Agent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentCreateBulk) OnConflict(opts ...sql.ConflictOption) *AgentUpsertBulk {
	_c.conflict = opts
	return &AgentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Agent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentCreateBulk) OnConflictColumns(columns ...string) *AgentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentUpsertBulk{
		create: _c,
	}
}

// AgentUpsertBulk is the builder for "upsert"-ing
// a bulk of Agent nodes.
type AgentUpsertBulk struct {
	create *AgentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Agent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgentUpsertBulk) UpdateNewValues() *AgentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(agent.FieldID)
			}
			if _, exists := b.mutation.ProjectID(); exists {
				s.SetIgnore(agent.FieldProjectID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(agent.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Agent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AgentUpsertBulk) Ignore() *AgentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentUpsertBulk) DoNothing() *AgentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentCreateBulk.OnConflict
// documentation for more info.
func (u *AgentUpsertBulk) Update(set func(*AgentUpsert)) *AgentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *AgentUpsertBulk) SetName(v string) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateName() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateName()
	})
}

// SetRole sets the "role" field.
func (u *AgentUpsertBulk) SetRole(v string) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetRole(v)
	})
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateRole() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateRole()
	})
}

// SetDescription sets the "description" field.
func (u *AgentUpsertBulk) SetDescription(v string) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateDescription() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateDescription()
	})
}

// SetStatus sets the "status" field.
func (u *AgentUpsertBulk) SetStatus(v agent.Status) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateStatus() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateStatus()
	})
}

// SetConfig sets the "config" field.
func (u *AgentUpsertBulk) SetConfig(v map[string]interface{}) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetConfig(v)
	})
}

// UpdateConfig sets the "config" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateConfig() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateConfig()
	})
}

// ClearConfig clears the value of the "config" field.
func (u *AgentUpsertBulk) ClearConfig() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.ClearConfig()
	})
}

// SetLastSeenAt sets the "last_seen_at" field.
func (u *AgentUpsertBulk) SetLastSeenAt(v time.Time) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetLastSeenAt(v)
	})
}

// UpdateLastSeenAt sets the "last_seen_at" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateLastSeenAt() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateLastSeenAt()
	})
}

// ClearLastSeenAt clears the value of the "last_seen_at" field.
func (u *AgentUpsertBulk) ClearLastSeenAt() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.ClearLastSeenAt()
	})
}

// SetPositionX sets the "position_x" field.
func (u *AgentUpsertBulk) SetPositionX(v float64) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetPositionX(v)
	})
}

// AddPositionX adds v to the "position_x" field.
func (u *AgentUpsertBulk) AddPositionX(v float64) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.AddPositionX(v)
	})
}

// UpdatePositionX sets the "position_x" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdatePositionX() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdatePositionX()
	})
}

// SetPositionY sets the "position_y" field.
func (u *AgentUpsertBulk) SetPositionY(v float64) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetPositionY(v)
	})
}

// AddPositionY adds v to the "position_y" field.
func (u *AgentUpsertBulk) AddPositionY(v float64) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.AddPositionY(v)
	})
}

// UpdatePositionY sets the "position_y" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdatePositionY() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdatePositionY()
	})
}

// SetTargetX sets the "target_x" field.
func (u *AgentUpsertBulk) SetTargetX(v float64) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetTargetX(v)
	})
}

// AddTargetX adds v to the "target_x" field.
func (u *AgentUpsertBulk) AddTargetX(v float64) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.AddTargetX(v)
	})
}

// UpdateTargetX sets the "target_x" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateTargetX() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateTargetX()
	})
}

// SetTargetY sets the "target_y" field.
func (u *AgentUpsertBulk) SetTargetY(v float64) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetTargetY(v)
	})
}

// AddTargetY adds v to the "target_y" field.
func (u *AgentUpsertBulk) AddTargetY(v float64) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.AddTargetY(v)
	})
}

// UpdateTargetY sets the "target_y" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateTargetY() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateTargetY()
	})
}

// SetCurrentAction sets the "current_action" field.
func (u *AgentUpsertBulk) SetCurrentAction(v agent.CurrentAction) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetCurrentAction(v)
	})
}

// UpdateCurrentAction sets the "current_action" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateCurrentAction() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateCurrentAction()
	})
}

// SetAvatar sets the "avatar" field.
func (u *AgentUpsertBulk) SetAvatar(v string) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetAvatar(v)
	})
}

// UpdateAvatar sets the "avatar" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateAvatar() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateAvatar()
	})
}

// Exec executes the query.
func (u *AgentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AgentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
