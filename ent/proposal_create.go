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
)

// ProposalCreate is the builder for creating a Proposal entity.
type ProposalCreate struct {
	config
	mutation *ProposalMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAgentID sets the "agent_id" field.
func (_c *ProposalCreate) SetAgentID(v string) *ProposalCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetProjectID sets the "project_id" field.
func (_c *ProposalCreate) SetProjectID(v string) *ProposalCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *ProposalCreate) SetTitle(v string) *ProposalCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ProposalCreate) SetDescription(v string) *ProposalCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ProposalCreate) SetNillableDescription(v *string) *ProposalCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetRationale sets the "rationale" field.
func (_c *ProposalCreate) SetRationale(v string) *ProposalCreate {
	_c.mutation.SetRationale(v)
	return _c
}

// SetNillableRationale sets the "rationale" field if the given value is not nil.
func (_c *ProposalCreate) SetNillableRationale(v *string) *ProposalCreate {
	if v != nil {
		_c.SetRationale(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *ProposalCreate) SetPriority(v proposal.Priority) *ProposalCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *ProposalCreate) SetNillablePriority(v *proposal.Priority) *ProposalCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ProposalCreate) SetStatus(v proposal.Status) *ProposalCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ProposalCreate) SetNillableStatus(v *proposal.Status) *ProposalCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAutoApprove sets the "auto_approve" field.
func (_c *ProposalCreate) SetAutoApprove(v bool) *ProposalCreate {
	_c.mutation.SetAutoApprove(v)
	return _c
}

// SetNillableAutoApprove sets the "auto_approve" field if the given value is not nil.
func (_c *ProposalCreate) SetNillableAutoApprove(v *bool) *ProposalCreate {
	if v != nil {
		_c.SetAutoApprove(*v)
	}
	return _c
}

// SetReviewedBy sets the "reviewed_by" field.
func (_c *ProposalCreate) SetReviewedBy(v string) *ProposalCreate {
	_c.mutation.SetReviewedBy(v)
	return _c
}

// SetNillableReviewedBy sets the "reviewed_by" field if the given value is not nil.
func (_c *ProposalCreate) SetNillableReviewedBy(v *string) *ProposalCreate {
	if v != nil {
		_c.SetReviewedBy(*v)
	}
	return _c
}

// SetReviewedAt sets the "reviewed_at" field.
func (_c *ProposalCreate) SetReviewedAt(v time.Time) *ProposalCreate {
	_c.mutation.SetReviewedAt(v)
	return _c
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_c *ProposalCreate) SetNillableReviewedAt(v *time.Time) *ProposalCreate {
	if v != nil {
		_c.SetReviewedAt(*v)
	}
	return _c
}

// SetMcTaskID sets the "mc_task_id" field.
func (_c *ProposalCreate) SetMcTaskID(v string) *ProposalCreate {
	_c.mutation.SetMcTaskID(v)
	return _c
}

// SetNillableMcTaskID sets the "mc_task_id" field if the given value is not nil.
func (_c *ProposalCreate) SetNillableMcTaskID(v *string) *ProposalCreate {
	if v != nil {
		_c.SetMcTaskID(*v)
	}
	return _c
}

// SetMcBoardID sets the "mc_board_id" field.
func (_c *ProposalCreate) SetMcBoardID(v string) *ProposalCreate {
	_c.mutation.SetMcBoardID(v)
	return _c
}

// SetNillableMcBoardID sets the "mc_board_id" field if the given value is not nil.
func (_c *ProposalCreate) SetNillableMcBoardID(v *string) *ProposalCreate {
	if v != nil {
		_c.SetMcBoardID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProposalCreate) SetCreatedAt(v time.Time) *ProposalCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProposalCreate) SetNillableCreatedAt(v *time.Time) *ProposalCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProposalCreate) SetID(v string) *ProposalCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetAgent sets the "agent" edge to the Agent entity.
func (_c *ProposalCreate) SetAgent(v *Agent) *ProposalCreate {
	return _c.SetAgentID(v.ID)
}

// SetProject sets the "project" edge to the Project entity.
func (_c *ProposalCreate) SetProject(v *Project) *ProposalCreate {
	return _c.SetProjectID(v.ID)
}

// SetMissionID sets the "mission" edge to the Mission entity by ID.
func (_c *ProposalCreate) SetMissionID(id string) *ProposalCreate {
	_c.mutation.SetMissionID(id)
	return _c
}

// SetNillableMissionID sets the "mission" edge to the Mission entity by ID if the given value is not nil.
func (_c *ProposalCreate) SetNillableMissionID(id *string) *ProposalCreate {
	if id != nil {
		_c = _c.SetMissionID(*id)
	}
	return _c
}

// SetMission sets the "mission" edge to the Mission entity.
func (_c *ProposalCreate) SetMission(v *Mission) *ProposalCreate {
	return _c.SetMissionID(v.ID)
}

// Mutation returns the ProposalMutation object of the builder.
func (_c *ProposalCreate) Mutation() *ProposalMutation {
	return _c.mutation
}

// Save creates the Proposal in the database.
func (_c *ProposalCreate) Save(ctx context.Context) (*Proposal, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProposalCreate) SaveX(ctx context.Context) *Proposal {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProposalCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProposalCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProposalCreate) defaults() {
	if _, ok := _c.mutation.Description(); !ok {
		v := proposal.DefaultDescription
		_c.mutation.SetDescription(v)
	}
	if _, ok := _c.mutation.Rationale(); !ok {
		v := proposal.DefaultRationale
		_c.mutation.SetRationale(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := proposal.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := proposal.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.AutoApprove(); !ok {
		v := proposal.DefaultAutoApprove
		_c.mutation.SetAutoApprove(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := proposal.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProposalCreate) check() error {
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "Proposal.agent_id"`)}
	}
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "Proposal.project_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Proposal.title"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Proposal.description"`)}
	}
	if _, ok := _c.mutation.Rationale(); !ok {
		return &ValidationError{Name: "rationale", err: errors.New(`ent: missing required field "Proposal.rationale"`)}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "Proposal.priority"`)}
	}
	if v, ok := _c.mutation.Priority(); ok {
		if err := proposal.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Proposal.priority": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Proposal.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := proposal.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Proposal.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AutoApprove(); !ok {
		return &ValidationError{Name: "auto_approve", err: errors.New(`ent: missing required field "Proposal.auto_approve"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Proposal.created_at"`)}
	}
	if len(_c.mutation.AgentIDs()) == 0 {
		return &ValidationError{Name: "agent", err: errors.New(`ent: missing required edge "Proposal.agent"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "Proposal.project"`)}
	}
	return nil
}

func (_c *ProposalCreate) sqlSave(ctx context.Context) (*Proposal, error) {
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
			return nil, fmt.Errorf("unexpected Proposal.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProposalCreate) createSpec() (*Proposal, *sqlgraph.CreateSpec) {
	var (
		_node = &Proposal{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(proposal.Table, sqlgraph.NewFieldSpec(proposal.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(proposal.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(proposal.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Rationale(); ok {
		_spec.SetField(proposal.FieldRationale, field.TypeString, value)
		_node.Rationale = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(proposal.FieldPriority, field.TypeEnum, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(proposal.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.AutoApprove(); ok {
		_spec.SetField(proposal.FieldAutoApprove, field.TypeBool, value)
		_node.AutoApprove = value
	}
	if value, ok := _c.mutation.ReviewedBy(); ok {
		_spec.SetField(proposal.FieldReviewedBy, field.TypeString, value)
		_node.ReviewedBy = &value
	}
	if value, ok := _c.mutation.ReviewedAt(); ok {
		_spec.SetField(proposal.FieldReviewedAt, field.TypeTime, value)
		_node.ReviewedAt = &value
	}
	if value, ok := _c.mutation.McTaskID(); ok {
		_spec.SetField(proposal.FieldMcTaskID, field.TypeString, value)
		_node.McTaskID = &value
	}
	if value, ok := _c.mutation.McBoardID(); ok {
		_spec.SetField(proposal.FieldMcBoardID, field.TypeString, value)
		_node.McBoardID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(proposal.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.AgentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   proposal.AgentTable,
			Columns: []string{proposal.AgentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AgentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   proposal.ProjectTable,
			Columns: []string{proposal.ProjectColumn},
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
	if nodes := _c.mutation.MissionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   proposal.MissionTable,
			Columns: []string{proposal.MissionColumn},
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
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Proposal.Create().
//		SetAgentID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProposalUpsert) {
//			SetAgentID(v+v).
//		}).
//		Exec(ctx)
func (_c *ProposalCreate) OnConflict(opts ...sql.ConflictOption) *ProposalUpsertOne {
	_c.conflict = opts
	return &ProposalUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Proposal.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProposalCreate) OnConflictColumns(columns ...string) *ProposalUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProposalUpsertOne{
		create: _c,
	}
}

type (
	// ProposalUpsertOne is the builder for "upsert"-ing
	//  one Proposal node.
	ProposalUpsertOne struct {
		create *ProposalCreate
	}

	// ProposalUpsert is the "OnConflict" setter.
	ProposalUpsert struct {
		*sql.UpdateSet
	}
)

// SetTitle sets the "title" field.
func (u *ProposalUpsert) SetTitle(v string) *ProposalUpsert {
	u.Set(proposal.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ProposalUpsert) UpdateTitle() *ProposalUpsert {
	u.SetExcluded(proposal.FieldTitle)
	return u
}

// SetDescription sets the "description" field.
func (u *ProposalUpsert) SetDescription(v string) *ProposalUpsert {
	u.Set(proposal.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ProposalUpsert) UpdateDescription() *ProposalUpsert {
	u.SetExcluded(proposal.FieldDescription)
	return u
}

// SetRationale sets the "rationale" field.
func (u *ProposalUpsert) SetRationale(v string) *ProposalUpsert {
	u.Set(proposal.FieldRationale, v)
	return u
}

// UpdateRationale sets the "rationale" field to the value that was provided on create.
func (u *ProposalUpsert) UpdateRationale() *ProposalUpsert {
	u.SetExcluded(proposal.FieldRationale)
	return u
}

// SetPriority sets the "priority" field.
func (u *ProposalUpsert) SetPriority(v proposal.Priority) *ProposalUpsert {
	u.Set(proposal.FieldPriority, v)
	return u
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *ProposalUpsert) UpdatePriority() *ProposalUpsert {
	u.SetExcluded(proposal.FieldPriority)
	return u
}

// SetStatus sets the "status" field.
func (u *ProposalUpsert) SetStatus(v proposal.Status) *ProposalUpsert {
	u.Set(proposal.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ProposalUpsert) UpdateStatus() *ProposalUpsert {
	u.SetExcluded(proposal.FieldStatus)
	return u
}

// SetAutoApprove sets the "auto_approve" field.
func (u *ProposalUpsert) SetAutoApprove(v bool) *ProposalUpsert {
	u.Set(proposal.FieldAutoApprove, v)
	return u
}

// UpdateAutoApprove sets the "auto_approve" field to the value that was provided on create.
func (u *ProposalUpsert) UpdateAutoApprove() *ProposalUpsert {
	u.SetExcluded(proposal.FieldAutoApprove)
	return u
}

// SetReviewedBy sets the "reviewed_by" field.
func (u *ProposalUpsert) SetReviewedBy(v string) *ProposalUpsert {
	u.Set(proposal.FieldReviewedBy, v)
	return u
}

// UpdateReviewedBy sets the "reviewed_by" field to the value that was provided on create.
func (u *ProposalUpsert) UpdateReviewedBy() *ProposalUpsert {
	u.SetExcluded(proposal.FieldReviewedBy)
	return u
}

// ClearReviewedBy clears the value of the "reviewed_by" field.
func (u *ProposalUpsert) ClearReviewedBy() *ProposalUpsert {
	u.SetNull(proposal.FieldReviewedBy)
	return u
}

// SetReviewedAt sets the "reviewed_at" field.
func (u *ProposalUpsert) SetReviewedAt(v time.Time) *ProposalUpsert {
	u.Set(proposal.FieldReviewedAt, v)
	return u
}

// UpdateReviewedAt sets the "reviewed_at" field to the value that was provided on create.
func (u *ProposalUpsert) UpdateReviewedAt() *ProposalUpsert {
	u.SetExcluded(proposal.FieldReviewedAt)
	return u
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (u *ProposalUpsert) ClearReviewedAt() *ProposalUpsert {
	u.SetNull(proposal.FieldReviewedAt)
	return u
}

// SetMcTaskID sets the "mc_task_id" field.
func (u *ProposalUpsert) SetMcTaskID(v string) *ProposalUpsert {
	u.Set(proposal.FieldMcTaskID, v)
	return u
}

// UpdateMcTaskID sets the "mc_task_id" field to the value that was provided on create.
func (u *ProposalUpsert) UpdateMcTaskID() *ProposalUpsert {
	u.SetExcluded(proposal.FieldMcTaskID)
	return u
}

// ClearMcTaskID clears the value of the "mc_task_id" field.
func (u *ProposalUpsert) ClearMcTaskID() *ProposalUpsert {
	u.SetNull(proposal.FieldMcTaskID)
	return u
}

// SetMcBoardID sets the "mc_board_id" field.
func (u *ProposalUpsert) SetMcBoardID(v string) *ProposalUpsert {
	u.Set(proposal.FieldMcBoardID, v)
	return u
}

// UpdateMcBoardID sets the "mc_board_id" field to the value that was provided on create.
func (u *ProposalUpsert) UpdateMcBoardID() *ProposalUpsert {
	u.SetExcluded(proposal.FieldMcBoardID)
	return u
}

// ClearMcBoardID clears the value of the "mc_board_id" field.
func (u *ProposalUpsert) ClearMcBoardID() *ProposalUpsert {
	u.SetNull(proposal.FieldMcBoardID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Proposal.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(proposal.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ProposalUpsertOne) UpdateNewValues() *ProposalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(proposal.FieldID)
		}
		if _, exists := u.create.mutation.AgentID(); exists {
			s.SetIgnore(proposal.FieldAgentID)
		}
		if _, exists := u.create.mutation.ProjectID(); exists {
			s.SetIgnore(proposal.FieldProjectID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(proposal.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Proposal.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ProposalUpsertOne) Ignore() *ProposalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProposalUpsertOne) DoNothing() *ProposalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProposalCreate.OnConflict
// documentation for more info.
func (u *ProposalUpsertOne) Update(set func(*ProposalUpsert)) *ProposalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProposalUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *ProposalUpsertOne) SetTitle(v string) *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ProposalUpsertOne) UpdateTitle() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *ProposalUpsertOne) SetDescription(v string) *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ProposalUpsertOne) UpdateDescription() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateDescription()
	})
}

// SetRationale sets the "rationale" field.
func (u *ProposalUpsertOne) SetRationale(v string) *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.SetRationale(v)
	})
}

// UpdateRationale sets the "rationale" field to the value that was provided on create.
func (u *ProposalUpsertOne) UpdateRationale() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateRationale()
	})
}

// SetPriority sets the "priority" field.
func (u *ProposalUpsertOne) SetPriority(v proposal.Priority) *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.SetPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *ProposalUpsertOne) UpdatePriority() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdatePriority()
	})
}

// SetStatus sets the "status" field.
func (u *ProposalUpsertOne) SetStatus(v proposal.Status) *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ProposalUpsertOne) UpdateStatus() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateStatus()
	})
}

// SetAutoApprove sets the "auto_approve" field.
func (u *ProposalUpsertOne) SetAutoApprove(v bool) *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.SetAutoApprove(v)
	})
}

// UpdateAutoApprove sets the "auto_approve" field to the value that was provided on create.
func (u *ProposalUpsertOne) UpdateAutoApprove() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateAutoApprove()
	})
}

// SetReviewedBy sets the "reviewed_by" field.
func (u *ProposalUpsertOne) SetReviewedBy(v string) *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.SetReviewedBy(v)
	})
}

// UpdateReviewedBy sets the "reviewed_by" field to the value that was provided on create.
func (u *ProposalUpsertOne) UpdateReviewedBy() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateReviewedBy()
	})
}

// ClearReviewedBy clears the value of the "reviewed_by" field.
func (u *ProposalUpsertOne) ClearReviewedBy() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.ClearReviewedBy()
	})
}

// SetReviewedAt sets the "reviewed_at" field.
func (u *ProposalUpsertOne) SetReviewedAt(v time.Time) *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.SetReviewedAt(v)
	})
}

// UpdateReviewedAt sets the "reviewed_at" field to the value that was provided on create.
func (u *ProposalUpsertOne) UpdateReviewedAt() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateReviewedAt()
	})
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (u *ProposalUpsertOne) ClearReviewedAt() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.ClearReviewedAt()
	})
}

// SetMcTaskID sets the "mc_task_id" field.
func (u *ProposalUpsertOne) SetMcTaskID(v string) *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.SetMcTaskID(v)
	})
}

// UpdateMcTaskID sets the "mc_task_id" field to the value that was provided on create.
func (u *ProposalUpsertOne) UpdateMcTaskID() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateMcTaskID()
	})
}

// ClearMcTaskID clears the value of the "mc_task_id" field.
func (u *ProposalUpsertOne) ClearMcTaskID() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.ClearMcTaskID()
	})
}

// SetMcBoardID sets the "mc_board_id" field.
func (u *ProposalUpsertOne) SetMcBoardID(v string) *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.SetMcBoardID(v)
	})
}

// UpdateMcBoardID sets the "mc_board_id" field to the value that was provided on create.
func (u *ProposalUpsertOne) UpdateMcBoardID() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateMcBoardID()
	})
}

// ClearMcBoardID clears the value of the "mc_board_id" field.
func (u *ProposalUpsertOne) ClearMcBoardID() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.ClearMcBoardID()
	})
}

// Exec executes the query.
func (u *ProposalUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProposalCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProposalUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ProposalUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ProposalUpsertOne.ID is not supported by MySQL driver. Use ProposalUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ProposalUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ProposalCreateBulk is the builder for creating many Proposal entities in bulk.
type ProposalCreateBulk struct {
	config
	err      error
	builders []*ProposalCreate
	conflict []sql.ConflictOption
}

// Save creates the Proposal entities in the database.
func (_c *ProposalCreateBulk) Save(ctx context.Context) ([]*Proposal, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Proposal, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProposalMutation)
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
func (_c *ProposalCreateBulk) SaveX(ctx context.Context) []*Proposal {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProposalCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProposalCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Proposal.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProposalUpsert) {
//			SetAgentID(v+v).
//		}).
//		Exec(ctx)
func (_c *ProposalCreateBulk) OnConflict(opts ...sql.ConflictOption) *ProposalUpsertBulk {
	_c.conflict = opts
	return &ProposalUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Proposal.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProposalCreateBulk) OnConflictColumns(columns ...string) *ProposalUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProposalUpsertBulk{
		create: _c,
	}
}

// ProposalUpsertBulk is the builder for "upsert"-ing
// a bulk of Proposal nodes.
type ProposalUpsertBulk struct {
	create *ProposalCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Proposal.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(proposal.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ProposalUpsertBulk) UpdateNewValues() *ProposalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(proposal.FieldID)
			}
			if _, exists := b.mutation.AgentID(); exists {
				s.SetIgnore(proposal.FieldAgentID)
			}
			if _, exists := b.mutation.ProjectID(); exists {
				s.SetIgnore(proposal.FieldProjectID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(proposal.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Proposal.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ProposalUpsertBulk) Ignore() *ProposalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProposalUpsertBulk) DoNothing() *ProposalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProposalCreateBulk.OnConflict
// documentation for more info.
func (u *ProposalUpsertBulk) Update(set func(*ProposalUpsert)) *ProposalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProposalUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *ProposalUpsertBulk) SetTitle(v string) *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ProposalUpsertBulk) UpdateTitle() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *ProposalUpsertBulk) SetDescription(v string) *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ProposalUpsertBulk) UpdateDescription() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateDescription()
	})
}

// SetRationale sets the "rationale" field.
func (u *ProposalUpsertBulk) SetRationale(v string) *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.SetRationale(v)
	})
}

// UpdateRationale sets the "rationale" field to the value that was provided on create.
func (u *ProposalUpsertBulk) UpdateRationale() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateRationale()
	})
}

// SetPriority sets the "priority" field.
func (u *ProposalUpsertBulk) SetPriority(v proposal.Priority) *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.SetPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *ProposalUpsertBulk) UpdatePriority() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdatePriority()
	})
}

// SetStatus sets the "status" field.
func (u *ProposalUpsertBulk) SetStatus(v proposal.Status) *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ProposalUpsertBulk) UpdateStatus() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateStatus()
	})
}

// SetAutoApprove sets the "auto_approve" field.
func (u *ProposalUpsertBulk) SetAutoApprove(v bool) *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.SetAutoApprove(v)
	})
}

// UpdateAutoApprove sets the "auto_approve" field to the value that was provided on create.
func (u *ProposalUpsertBulk) UpdateAutoApprove() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateAutoApprove()
	})
}

// SetReviewedBy sets the "reviewed_by" field.
func (u *ProposalUpsertBulk) SetReviewedBy(v string) *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.SetReviewedBy(v)
	})
}

// UpdateReviewedBy sets the "reviewed_by" field to the value that was provided on create.
func (u *ProposalUpsertBulk) UpdateReviewedBy() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateReviewedBy()
	})
}

// ClearReviewedBy clears the value of the "reviewed_by" field.
func (u *ProposalUpsertBulk) ClearReviewedBy() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.ClearReviewedBy()
	})
}

// SetReviewedAt sets the "reviewed_at" field.
func (u *ProposalUpsertBulk) SetReviewedAt(v time.Time) *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.SetReviewedAt(v)
	})
}

// UpdateReviewedAt sets the "reviewed_at" field to the value that was provided on create.
func (u *ProposalUpsertBulk) UpdateReviewedAt() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateReviewedAt()
	})
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (u *ProposalUpsertBulk) ClearReviewedAt() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.ClearReviewedAt()
	})
}

// SetMcTaskID sets the "mc_task_id" field.
func (u *ProposalUpsertBulk) SetMcTaskID(v string) *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.SetMcTaskID(v)
	})
}

// UpdateMcTaskID sets the "mc_task_id" field to the value that was provided on create.
func (u *ProposalUpsertBulk) UpdateMcTaskID() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateMcTaskID()
	})
}

// ClearMcTaskID clears the value of the "mc_task_id" field.
func (u *ProposalUpsertBulk) ClearMcTaskID() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.ClearMcTaskID()
	})
}

// SetMcBoardID sets the "mc_board_id" field.
func (u *ProposalUpsertBulk) SetMcBoardID(v string) *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.SetMcBoardID(v)
	})
}

// UpdateMcBoardID sets the "mc_board_id" field to the value that was provided on create.
func (u *ProposalUpsertBulk) UpdateMcBoardID() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateMcBoardID()
	})
}

// ClearMcBoardID clears the value of the "mc_board_id" field.
func (u *ProposalUpsertBulk) ClearMcBoardID() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.ClearMcBoardID()
	})
}

// Exec executes the query.
func (u *ProposalUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ProposalCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProposalCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProposalUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
