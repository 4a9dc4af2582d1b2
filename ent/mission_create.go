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
	"github.com/codeready-toolchain/agentloop/ent/mission"
	"github.com/codeready-toolchain/agentloop/ent/project"
	"github.com/codeready-toolchain/agentloop/ent/proposal"
	"github.com/codeready-toolchain/agentloop/ent/step"
)

// MissionCreate is the builder for creating a Mission entity.
type MissionCreate struct {
	config
	mutation *MissionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetProposalID sets the "proposal_id" field.
func (_c *MissionCreate) SetProposalID(v string) *MissionCreate {
	_c.mutation.SetProposalID(v)
	return _c
}

// SetProjectID sets the "project_id" field.
func (_c *MissionCreate) SetProjectID(v string) *MissionCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *MissionCreate) SetTitle(v string) *MissionCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *MissionCreate) SetDescription(v string) *MissionCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *MissionCreate) SetNillableDescription(v *string) *MissionCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *MissionCreate) SetStatus(v mission.Status) *MissionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *MissionCreate) SetNillableStatus(v *mission.Status) *MissionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAssignedAgentID sets the "assigned_agent_id" field.
func (_c *MissionCreate) SetAssignedAgentID(v string) *MissionCreate {
	_c.mutation.SetAssignedAgentID(v)
	return _c
}

// SetNillableAssignedAgentID sets the "assigned_agent_id" field if the given value is not nil.
func (_c *MissionCreate) SetNillableAssignedAgentID(v *string) *MissionCreate {
	if v != nil {
		_c.SetAssignedAgentID(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *MissionCreate) SetCompletedAt(v time.Time) *MissionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *MissionCreate) SetNillableCompletedAt(v *time.Time) *MissionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MissionCreate) SetCreatedAt(v time.Time) *MissionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MissionCreate) SetNillableCreatedAt(v *time.Time) *MissionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MissionCreate) SetID(v string) *MissionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetProposal sets the "proposal" edge to the Proposal entity.
func (_c *MissionCreate) SetProposal(v *Proposal) *MissionCreate {
	return _c.SetProposalID(v.ID)
}

// SetProject sets the "project" edge to the Project entity.
func (_c *MissionCreate) SetProject(v *Project) *MissionCreate {
	return _c.SetProjectID(v.ID)
}

// SetAssignedAgent sets the "assigned_agent" edge to the Agent entity.
func (_c *MissionCreate) SetAssignedAgent(v *Agent) *MissionCreate {
	return _c.SetAssignedAgentID(v.ID)
}

// AddStepIDs adds the "steps" edge to the Step entity by IDs.
func (_c *MissionCreate) AddStepIDs(ids ...string) *MissionCreate {
	_c.mutation.AddStepIDs(ids...)
	return _c
}

// AddSteps adds the "steps" edges to the Step entity.
func (_c *MissionCreate) AddSteps(v ...*Step) *MissionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStepIDs(ids...)
}

// Mutation returns the MissionMutation object of the builder.
func (_c *MissionCreate) Mutation() *MissionMutation {
	return _c.mutation
}

// Save creates the Mission in the database.
func (_c *MissionCreate) Save(ctx context.Context) (*Mission, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MissionCreate) SaveX(ctx context.Context) *Mission {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MissionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MissionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MissionCreate) defaults() {
	if _, ok := _c.mutation.Description(); !ok {
		v := mission.DefaultDescription
		_c.mutation.SetDescription(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := mission.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := mission.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MissionCreate) check() error {
	if _, ok := _c.mutation.ProposalID(); !ok {
		return &ValidationError{Name: "proposal_id", err: errors.New(`ent: missing required field "Mission.proposal_id"`)}
	}
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "Mission.project_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Mission.title"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Mission.description"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Mission.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := mission.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Mission.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Mission.created_at"`)}
	}
	if len(_c.mutation.ProposalIDs()) == 0 {
		return &ValidationError{Name: "proposal", err: errors.New(`ent: missing required edge "Mission.proposal"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "Mission.project"`)}
	}
	return nil
}

func (_c *MissionCreate) sqlSave(ctx context.Context) (*Mission, error) {
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
			return nil, fmt.Errorf("unexpected Mission.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MissionCreate) createSpec() (*Mission, *sqlgraph.CreateSpec) {
	var (
		_node = &Mission{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(mission.Table, sqlgraph.NewFieldSpec(mission.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(mission.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(mission.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(mission.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(mission.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(mission.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ProposalIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   mission.ProposalTable,
			Columns: []string{mission.ProposalColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(proposal.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ProposalID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   mission.ProjectTable,
			Columns: []string{mission.ProjectColumn},
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
	if nodes := _c.mutation.AssignedAgentIDs(); len(nodes) > 0 {
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
		_node.AssignedAgentID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.StepsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Mission.Create().
//		SetProposalID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MissionUpsert) {
//			SetProposalID(v+v).
//		}).
//		Exec(ctx)
func (_c *MissionCreate) OnConflict(opts ...sql.ConflictOption) *MissionUpsertOne {
	_c.conflict = opts
	return &MissionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Mission.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MissionCreate) OnConflictColumns(columns ...string) *MissionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MissionUpsertOne{
		create: _c,
	}
}

type (
	// MissionUpsertOne is the builder for "upsert"-ing
	//  one Mission node.
	MissionUpsertOne struct {
		create *MissionCreate
	}

	// MissionUpsert is the "OnConflict" setter.
	MissionUpsert struct {
		*sql.UpdateSet
	}
)

// SetTitle sets the "title" field.
func (u *MissionUpsert) SetTitle(v string) *MissionUpsert {
	u.Set(mission.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *MissionUpsert) UpdateTitle() *MissionUpsert {
	u.SetExcluded(mission.FieldTitle)
	return u
}

// SetDescription sets the "description" field.
func (u *MissionUpsert) SetDescription(v string) *MissionUpsert {
	u.Set(mission.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *MissionUpsert) UpdateDescription() *MissionUpsert {
	u.SetExcluded(mission.FieldDescription)
	return u
}

// SetStatus sets the "status" field.
func (u *MissionUpsert) SetStatus(v mission.Status) *MissionUpsert {
	u.Set(mission.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *MissionUpsert) UpdateStatus() *MissionUpsert {
	u.SetExcluded(mission.FieldStatus)
	return u
}

// SetAssignedAgentID sets the "assigned_agent_id" field.
func (u *MissionUpsert) SetAssignedAgentID(v string) *MissionUpsert {
	u.Set(mission.FieldAssignedAgentID, v)
	return u
}

// UpdateAssignedAgentID sets the "assigned_agent_id" field to the value that was provided on create.
func (u *MissionUpsert) UpdateAssignedAgentID() *MissionUpsert {
	u.SetExcluded(mission.FieldAssignedAgentID)
	return u
}

// ClearAssignedAgentID clears the value of the "assigned_agent_id" field.
func (u *MissionUpsert) ClearAssignedAgentID() *MissionUpsert {
	u.SetNull(mission.FieldAssignedAgentID)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *MissionUpsert) SetCompletedAt(v time.Time) *MissionUpsert {
	u.Set(mission.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *MissionUpsert) UpdateCompletedAt() *MissionUpsert {
	u.SetExcluded(mission.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *MissionUpsert) ClearCompletedAt() *MissionUpsert {
	u.SetNull(mission.FieldCompletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Mission.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(mission.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MissionUpsertOne) UpdateNewValues() *MissionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(mission.FieldID)
		}
		if _, exists := u.create.mutation.ProposalID(); exists {
			s.SetIgnore(mission.FieldProposalID)
		}
		if _, exists := u.create.mutation.ProjectID(); exists {
			s.SetIgnore(mission.FieldProjectID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(mission.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Mission.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MissionUpsertOne) Ignore() *MissionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MissionUpsertOne) DoNothing() *MissionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MissionCreate.OnConflict
// documentation for more info.
func (u *MissionUpsertOne) Update(set func(*MissionUpsert)) *MissionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MissionUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *MissionUpsertOne) SetTitle(v string) *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *MissionUpsertOne) UpdateTitle() *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *MissionUpsertOne) SetDescription(v string) *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *MissionUpsertOne) UpdateDescription() *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateDescription()
	})
}

// SetStatus sets the "status" field.
func (u *MissionUpsertOne) SetStatus(v mission.Status) *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *MissionUpsertOne) UpdateStatus() *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateStatus()
	})
}

// SetAssignedAgentID sets the "assigned_agent_id" field.
func (u *MissionUpsertOne) SetAssignedAgentID(v string) *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.SetAssignedAgentID(v)
	})
}

// UpdateAssignedAgentID sets the "assigned_agent_id" field to the value that was provided on create.
func (u *MissionUpsertOne) UpdateAssignedAgentID() *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateAssignedAgentID()
	})
}

// ClearAssignedAgentID clears the value of the "assigned_agent_id" field.
func (u *MissionUpsertOne) ClearAssignedAgentID() *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.ClearAssignedAgentID()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *MissionUpsertOne) SetCompletedAt(v time.Time) *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *MissionUpsertOne) UpdateCompletedAt() *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *MissionUpsertOne) ClearCompletedAt() *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *MissionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MissionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MissionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MissionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: MissionUpsertOne.ID is not supported by MySQL driver. Use MissionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MissionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MissionCreateBulk is the builder for creating many Mission entities in bulk.
type MissionCreateBulk struct {
	config
	err      error
	builders []*MissionCreate
	conflict []sql.ConflictOption
}

// Save creates the Mission entities in the database.
func (_c *MissionCreateBulk) Save(ctx context.Context) ([]*Mission, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Mission, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MissionMutation)
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
func (_c *MissionCreateBulk) SaveX(ctx context.Context) []*Mission {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MissionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MissionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Mission.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MissionUpsert) {
//			SetProposalID(v+v).
//		}).
//		Exec(ctx)
func (_c *MissionCreateBulk) OnConflict(opts ...sql.ConflictOption) *MissionUpsertBulk {
	_c.conflict = opts
	return &MissionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Mission.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MissionCreateBulk) OnConflictColumns(columns ...string) *MissionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MissionUpsertBulk{
		create: _c,
	}
}

// MissionUpsertBulk is the builder for "upsert"-ing
// a bulk of Mission nodes.
type MissionUpsertBulk struct {
	create *MissionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Mission.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(mission.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MissionUpsertBulk) UpdateNewValues() *MissionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(mission.FieldID)
			}
			if _, exists := b.mutation.ProposalID(); exists {
				s.SetIgnore(mission.FieldProposalID)
			}
			if _, exists := b.mutation.ProjectID(); exists {
				s.SetIgnore(mission.FieldProjectID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(mission.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Mission.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MissionUpsertBulk) Ignore() *MissionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MissionUpsertBulk) DoNothing() *MissionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MissionCreateBulk.OnConflict
// documentation for more info.
func (u *MissionUpsertBulk) Update(set func(*MissionUpsert)) *MissionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MissionUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *MissionUpsertBulk) SetTitle(v string) *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *MissionUpsertBulk) UpdateTitle() *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *MissionUpsertBulk) SetDescription(v string) *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *MissionUpsertBulk) UpdateDescription() *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateDescription()
	})
}

// SetStatus sets the "status" field.
func (u *MissionUpsertBulk) SetStatus(v mission.Status) *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *MissionUpsertBulk) UpdateStatus() *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateStatus()
	})
}

// SetAssignedAgentID sets the "assigned_agent_id" field.
func (u *MissionUpsertBulk) SetAssignedAgentID(v string) *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.SetAssignedAgentID(v)
	})
}

// UpdateAssignedAgentID sets the "assigned_agent_id" field to the value that was provided on create.
func (u *MissionUpsertBulk) UpdateAssignedAgentID() *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateAssignedAgentID()
	})
}

// ClearAssignedAgentID clears the value of the "assigned_agent_id" field.
func (u *MissionUpsertBulk) ClearAssignedAgentID() *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.ClearAssignedAgentID()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *MissionUpsertBulk) SetCompletedAt(v time.Time) *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *MissionUpsertBulk) UpdateCompletedAt() *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *MissionUpsertBulk) ClearCompletedAt() *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *MissionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the MissionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MissionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MissionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
