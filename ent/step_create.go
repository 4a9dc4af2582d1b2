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
	"github.com/codeready-toolchain/agentloop/ent/step"
)

// StepCreate is the builder for creating a Step entity.
type StepCreate struct {
	config
	mutation *StepMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetMissionID sets the "mission_id" field.
func (_c *StepCreate) SetMissionID(v string) *StepCreate {
	_c.mutation.SetMissionID(v)
	return _c
}

// SetOrderIndex sets the "order_index" field.
func (_c *StepCreate) SetOrderIndex(v int) *StepCreate {
	_c.mutation.SetOrderIndex(v)
	return _c
}

// SetNillableOrderIndex sets the "order_index" field if the given value is not nil.
func (_c *StepCreate) SetNillableOrderIndex(v *int) *StepCreate {
	if v != nil {
		_c.SetOrderIndex(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *StepCreate) SetTitle(v string) *StepCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *StepCreate) SetDescription(v string) *StepCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *StepCreate) SetNillableDescription(v *string) *StepCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetStepType sets the "step_type" field.
func (_c *StepCreate) SetStepType(v step.StepType) *StepCreate {
	_c.mutation.SetStepType(v)
	return _c
}

// SetNillableStepType sets the "step_type" field if the given value is not nil.
func (_c *StepCreate) SetNillableStepType(v *step.StepType) *StepCreate {
	if v != nil {
		_c.SetStepType(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *StepCreate) SetStatus(v step.Status) *StepCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *StepCreate) SetNillableStatus(v *step.Status) *StepCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetClaimedByAgentID sets the "claimed_by_agent_id" field.
func (_c *StepCreate) SetClaimedByAgentID(v string) *StepCreate {
	_c.mutation.SetClaimedByAgentID(v)
	return _c
}

// SetNillableClaimedByAgentID sets the "claimed_by_agent_id" field if the given value is not nil.
func (_c *StepCreate) SetNillableClaimedByAgentID(v *string) *StepCreate {
	if v != nil {
		_c.SetClaimedByAgentID(*v)
	}
	return _c
}

// SetOutput sets the "output" field.
func (_c *StepCreate) SetOutput(v string) *StepCreate {
	_c.mutation.SetOutput(v)
	return _c
}

// SetNillableOutput sets the "output" field if the given value is not nil.
func (_c *StepCreate) SetNillableOutput(v *string) *StepCreate {
	if v != nil {
		_c.SetOutput(*v)
	}
	return _c
}

// SetError sets the "error" field.
func (_c *StepCreate) SetError(v string) *StepCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_c *StepCreate) SetNillableError(v *string) *StepCreate {
	if v != nil {
		_c.SetError(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *StepCreate) SetStartedAt(v time.Time) *StepCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *StepCreate) SetNillableStartedAt(v *time.Time) *StepCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *StepCreate) SetCompletedAt(v time.Time) *StepCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *StepCreate) SetNillableCompletedAt(v *time.Time) *StepCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StepCreate) SetCreatedAt(v time.Time) *StepCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StepCreate) SetNillableCreatedAt(v *time.Time) *StepCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StepCreate) SetID(v string) *StepCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetMission sets the "mission" edge to the Mission entity.
func (_c *StepCreate) SetMission(v *Mission) *StepCreate {
	return _c.SetMissionID(v.ID)
}

// SetClaimedByID sets the "claimed_by" edge to the Agent entity by ID.
func (_c *StepCreate) SetClaimedByID(id string) *StepCreate {
	_c.mutation.SetClaimedByID(id)
	return _c
}

// SetNillableClaimedByID sets the "claimed_by" edge to the Agent entity by ID if the given value is not nil.
func (_c *StepCreate) SetNillableClaimedByID(id *string) *StepCreate {
	if id != nil {
		_c = _c.SetClaimedByID(*id)
	}
	return _c
}

// SetClaimedBy sets the "claimed_by" edge to the Agent entity.
func (_c *StepCreate) SetClaimedBy(v *Agent) *StepCreate {
	return _c.SetClaimedByID(v.ID)
}

// Mutation returns the StepMutation object of the builder.
func (_c *StepCreate) Mutation() *StepMutation {
	return _c.mutation
}

// Save creates the Step in the database.
func (_c *StepCreate) Save(ctx context.Context) (*Step, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StepCreate) SaveX(ctx context.Context) *Step {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StepCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StepCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StepCreate) defaults() {
	if _, ok := _c.mutation.OrderIndex(); !ok {
		v := step.DefaultOrderIndex
		_c.mutation.SetOrderIndex(v)
	}
	if _, ok := _c.mutation.Description(); !ok {
		v := step.DefaultDescription
		_c.mutation.SetDescription(v)
	}
	if _, ok := _c.mutation.StepType(); !ok {
		v := step.DefaultStepType
		_c.mutation.SetStepType(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := step.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := step.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StepCreate) check() error {
	if _, ok := _c.mutation.MissionID(); !ok {
		return &ValidationError{Name: "mission_id", err: errors.New(`ent: missing required field "Step.mission_id"`)}
	}
	if _, ok := _c.mutation.OrderIndex(); !ok {
		return &ValidationError{Name: "order_index", err: errors.New(`ent: missing required field "Step.order_index"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Step.title"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Step.description"`)}
	}
	if _, ok := _c.mutation.StepType(); !ok {
		return &ValidationError{Name: "step_type", err: errors.New(`ent: missing required field "Step.step_type"`)}
	}
	if v, ok := _c.mutation.StepType(); ok {
		if err := step.StepTypeValidator(v); err != nil {
			return &ValidationError{Name: "step_type", err: fmt.Errorf(`ent: validator failed for field "Step.step_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Step.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := step.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Step.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Step.created_at"`)}
	}
	if len(_c.mutation.MissionIDs()) == 0 {
		return &ValidationError{Name: "mission", err: errors.New(`ent: missing required edge "Step.mission"`)}
	}
	return nil
}

func (_c *StepCreate) sqlSave(ctx context.Context) (*Step, error) {
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
			return nil, fmt.Errorf("unexpected Step.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StepCreate) createSpec() (*Step, *sqlgraph.CreateSpec) {
	var (
		_node = &Step{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(step.Table, sqlgraph.NewFieldSpec(step.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OrderIndex(); ok {
		_spec.SetField(step.FieldOrderIndex, field.TypeInt, value)
		_node.OrderIndex = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(step.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(step.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.StepType(); ok {
		_spec.SetField(step.FieldStepType, field.TypeEnum, value)
		_node.StepType = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(step.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Output(); ok {
		_spec.SetField(step.FieldOutput, field.TypeString, value)
		_node.Output = &value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(step.FieldError, field.TypeString, value)
		_node.Error = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(step.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(step.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(step.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.MissionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   step.MissionTable,
			Columns: []string{step.MissionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mission.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.MissionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ClaimedByIDs(); len(nodes) > 0 {
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
		_node.ClaimedByAgentID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Step.Create().
//		SetMissionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StepUpsert) {
//			SetMissionID(v+v).
//		}).
//		Exec(ctx)
func (_c *StepCreate) OnConflict(opts ...sql.ConflictOption) *StepUpsertOne {
	_c.conflict = opts
	return &StepUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Step.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StepCreate) OnConflictColumns(columns ...string) *StepUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StepUpsertOne{
		create: _c,
	}
}

type (
	// StepUpsertOne is the builder for "upsert"-ing
	//  one Step node.
	StepUpsertOne struct {
		create *StepCreate
	}

	// StepUpsert is the "OnConflict" setter.
	StepUpsert struct {
		*sql.UpdateSet
	}
)

// SetOrderIndex sets the "order_index" field.
func (u *StepUpsert) SetOrderIndex(v int) *StepUpsert {
	u.Set(step.FieldOrderIndex, v)
	return u
}

// UpdateOrderIndex sets the "order_index" field to the value that was provided on create.
func (u *StepUpsert) UpdateOrderIndex() *StepUpsert {
	u.SetExcluded(step.FieldOrderIndex)
	return u
}

// AddOrderIndex adds v to the "order_index" field.
func (u *StepUpsert) AddOrderIndex(v int) *StepUpsert {
	u.Add(step.FieldOrderIndex, v)
	return u
}

// SetTitle sets the "title" field.
func (u *StepUpsert) SetTitle(v string) *StepUpsert {
	u.Set(step.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *StepUpsert) UpdateTitle() *StepUpsert {
	u.SetExcluded(step.FieldTitle)
	return u
}

// SetDescription sets the "description" field.
func (u *StepUpsert) SetDescription(v string) *StepUpsert {
	u.Set(step.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *StepUpsert) UpdateDescription() *StepUpsert {
	u.SetExcluded(step.FieldDescription)
	return u
}

// SetStepType sets the "step_type" field.
func (u *StepUpsert) SetStepType(v step.StepType) *StepUpsert {
	u.Set(step.FieldStepType, v)
	return u
}

// UpdateStepType sets the "step_type" field to the value that was provided on create.
func (u *StepUpsert) UpdateStepType() *StepUpsert {
	u.SetExcluded(step.FieldStepType)
	return u
}

// SetStatus sets the "status" field.
func (u *StepUpsert) SetStatus(v step.Status) *StepUpsert {
	u.Set(step.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *StepUpsert) UpdateStatus() *StepUpsert {
	u.SetExcluded(step.FieldStatus)
	return u
}

// SetClaimedByAgentID sets the "claimed_by_agent_id" field.
func (u *StepUpsert) SetClaimedByAgentID(v string) *StepUpsert {
	u.Set(step.FieldClaimedByAgentID, v)
	return u
}

// UpdateClaimedByAgentID sets the "claimed_by_agent_id" field to the value that was provided on create.
func (u *StepUpsert) UpdateClaimedByAgentID() *StepUpsert {
	u.SetExcluded(step.FieldClaimedByAgentID)
	return u
}

// ClearClaimedByAgentID clears the value of the "claimed_by_agent_id" field.
func (u *StepUpsert) ClearClaimedByAgentID() *StepUpsert {
	u.SetNull(step.FieldClaimedByAgentID)
	return u
}

// SetOutput sets the "output" field.
func (u *StepUpsert) SetOutput(v string) *StepUpsert {
	u.Set(step.FieldOutput, v)
	return u
}

// UpdateOutput sets the "output" field to the value that was provided on create.
func (u *StepUpsert) UpdateOutput() *StepUpsert {
	u.SetExcluded(step.FieldOutput)
	return u
}

// ClearOutput clears the value of the "output" field.
func (u *StepUpsert) ClearOutput() *StepUpsert {
	u.SetNull(step.FieldOutput)
	return u
}

// SetError sets the "error" field.
func (u *StepUpsert) SetError(v string) *StepUpsert {
	u.Set(step.FieldError, v)
	return u
}

// UpdateError sets the "error" field to the value that was provided on create.
func (u *StepUpsert) UpdateError() *StepUpsert {
	u.SetExcluded(step.FieldError)
	return u
}

// ClearError clears the value of the "error" field.
func (u *StepUpsert) ClearError() *StepUpsert {
	u.SetNull(step.FieldError)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *StepUpsert) SetStartedAt(v time.Time) *StepUpsert {
	u.Set(step.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *StepUpsert) UpdateStartedAt() *StepUpsert {
	u.SetExcluded(step.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *StepUpsert) ClearStartedAt() *StepUpsert {
	u.SetNull(step.FieldStartedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *StepUpsert) SetCompletedAt(v time.Time) *StepUpsert {
	u.Set(step.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *StepUpsert) UpdateCompletedAt() *StepUpsert {
	u.SetExcluded(step.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *StepUpsert) ClearCompletedAt() *StepUpsert {
	u.SetNull(step.FieldCompletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Step.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(step.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StepUpsertOne) UpdateNewValues() *StepUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(step.FieldID)
		}
		if _, exists := u.create.mutation.MissionID(); exists {
			s.SetIgnore(step.FieldMissionID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(step.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Step.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StepUpsertOne) Ignore() *StepUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StepUpsertOne) DoNothing() *StepUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StepCreate.OnConflict
// documentation for more info.
func (u *StepUpsertOne) Update(set func(*StepUpsert)) *StepUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StepUpsert{UpdateSet: update})
	}))
	return u
}

// SetOrderIndex sets the "order_index" field.
func (u *StepUpsertOne) SetOrderIndex(v int) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.SetOrderIndex(v)
	})
}

// AddOrderIndex adds v to the "order_index" field.
func (u *StepUpsertOne) AddOrderIndex(v int) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.AddOrderIndex(v)
	})
}

// UpdateOrderIndex sets the "order_index" field to the value that was provided on create.
func (u *StepUpsertOne) UpdateOrderIndex() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.UpdateOrderIndex()
	})
}

// SetTitle sets the "title" field.
func (u *StepUpsertOne) SetTitle(v string) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *StepUpsertOne) UpdateTitle() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *StepUpsertOne) SetDescription(v string) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *StepUpsertOne) UpdateDescription() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.UpdateDescription()
	})
}

// SetStepType sets the "step_type" field.
func (u *StepUpsertOne) SetStepType(v step.StepType) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.SetStepType(v)
	})
}

// UpdateStepType sets the "step_type" field to the value that was provided on create.
func (u *StepUpsertOne) UpdateStepType() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.UpdateStepType()
	})
}

// SetStatus sets the "status" field.
func (u *StepUpsertOne) SetStatus(v step.Status) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *StepUpsertOne) UpdateStatus() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.UpdateStatus()
	})
}

// SetClaimedByAgentID sets the "claimed_by_agent_id" field.
func (u *StepUpsertOne) SetClaimedByAgentID(v string) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.SetClaimedByAgentID(v)
	})
}

// UpdateClaimedByAgentID sets the "claimed_by_agent_id" field to the value that was provided on create.
func (u *StepUpsertOne) UpdateClaimedByAgentID() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.UpdateClaimedByAgentID()
	})
}

// ClearClaimedByAgentID clears the value of the "claimed_by_agent_id" field.
func (u *StepUpsertOne) ClearClaimedByAgentID() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.ClearClaimedByAgentID()
	})
}

// SetOutput sets the "output" field.
func (u *StepUpsertOne) SetOutput(v string) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.SetOutput(v)
	})
}

// UpdateOutput sets the "output" field to the value that was provided on create.
func (u *StepUpsertOne) UpdateOutput() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.UpdateOutput()
	})
}

// ClearOutput clears the value of the "output" field.
func (u *StepUpsertOne) ClearOutput() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.ClearOutput()
	})
}

// SetError sets the "error" field.
func (u *StepUpsertOne) SetError(v string) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.SetError(v)
	})
}

// UpdateError sets the "error" field to the value that was provided on create.
func (u *StepUpsertOne) UpdateError() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.UpdateError()
	})
}

// ClearError clears the value of the "error" field.
func (u *StepUpsertOne) ClearError() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.ClearError()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *StepUpsertOne) SetStartedAt(v time.Time) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *StepUpsertOne) UpdateStartedAt() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *StepUpsertOne) ClearStartedAt() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *StepUpsertOne) SetCompletedAt(v time.Time) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *StepUpsertOne) UpdateCompletedAt() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *StepUpsertOne) ClearCompletedAt() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *StepUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StepCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StepUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StepUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: StepUpsertOne.ID is not supported by MySQL driver. Use StepUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StepUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StepCreateBulk is the builder for creating many Step entities in bulk.
type StepCreateBulk struct {
	config
	err      error
	builders []*StepCreate
	conflict []sql.ConflictOption
}

// Save creates the Step entities in the database.
func (_c *StepCreateBulk) Save(ctx context.Context) ([]*Step, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Step, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StepMutation)
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
func (_c *StepCreateBulk) SaveX(ctx context.Context) []*Step {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StepCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StepCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Step.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StepUpsert) {
//			SetMissionID(v+v).
//		}).
//		Exec(ctx)
func (_c *StepCreateBulk) OnConflict(opts ...sql.ConflictOption) *StepUpsertBulk {
	_c.conflict = opts
	return &StepUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Step.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StepCreateBulk) OnConflictColumns(columns ...string) *StepUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StepUpsertBulk{
		create: _c,
	}
}

// StepUpsertBulk is the builder for "upsert"-ing
// a bulk of Step nodes.
type StepUpsertBulk struct {
	create *StepCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Step.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(step.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StepUpsertBulk) UpdateNewValues() *StepUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(step.FieldID)
			}
			if _, exists := b.mutation.MissionID(); exists {
				s.SetIgnore(step.FieldMissionID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(step.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Step.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StepUpsertBulk) Ignore() *StepUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StepUpsertBulk) DoNothing() *StepUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StepCreateBulk.OnConflict
// documentation for more info.
func (u *StepUpsertBulk) Update(set func(*StepUpsert)) *StepUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StepUpsert{UpdateSet: update})
	}))
	return u
}

// SetOrderIndex sets the "order_index" field.
func (u *StepUpsertBulk) SetOrderIndex(v int) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.SetOrderIndex(v)
	})
}

// AddOrderIndex adds v to the "order_index" field.
func (u *StepUpsertBulk) AddOrderIndex(v int) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.AddOrderIndex(v)
	})
}

// UpdateOrderIndex sets the "order_index" field to the value that was provided on create.
func (u *StepUpsertBulk) UpdateOrderIndex() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.UpdateOrderIndex()
	})
}

// SetTitle sets the "title" field.
func (u *StepUpsertBulk) SetTitle(v string) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *StepUpsertBulk) UpdateTitle() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *StepUpsertBulk) SetDescription(v string) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *StepUpsertBulk) UpdateDescription() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.UpdateDescription()
	})
}

// SetStepType sets the "step_type" field.
func (u *StepUpsertBulk) SetStepType(v step.StepType) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.SetStepType(v)
	})
}

// UpdateStepType sets the "step_type" field to the value that was provided on create.
func (u *StepUpsertBulk) UpdateStepType() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.UpdateStepType()
	})
}

// SetStatus sets the "status" field.
func (u *StepUpsertBulk) SetStatus(v step.Status) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *StepUpsertBulk) UpdateStatus() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.UpdateStatus()
	})
}

// SetClaimedByAgentID sets the "claimed_by_agent_id" field.
func (u *StepUpsertBulk) SetClaimedByAgentID(v string) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.SetClaimedByAgentID(v)
	})
}

// UpdateClaimedByAgentID sets the "claimed_by_agent_id" field to the value that was provided on create.
func (u *StepUpsertBulk) UpdateClaimedByAgentID() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.UpdateClaimedByAgentID()
	})
}

// ClearClaimedByAgentID clears the value of the "claimed_by_agent_id" field.
func (u *StepUpsertBulk) ClearClaimedByAgentID() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.ClearClaimedByAgentID()
	})
}

// SetOutput sets the "output" field.
func (u *StepUpsertBulk) SetOutput(v string) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.SetOutput(v)
	})
}

// UpdateOutput sets the "output" field to the value that was provided on create.
func (u *StepUpsertBulk) UpdateOutput() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.UpdateOutput()
	})
}

// ClearOutput clears the value of the "output" field.
func (u *StepUpsertBulk) ClearOutput() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.ClearOutput()
	})
}

// SetError sets the "error" field.
func (u *StepUpsertBulk) SetError(v string) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.SetError(v)
	})
}

// UpdateError sets the "error" field to the value that was provided on create.
func (u *StepUpsertBulk) UpdateError() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.UpdateError()
	})
}

// ClearError clears the value of the "error" field.
func (u *StepUpsertBulk) ClearError() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.ClearError()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *StepUpsertBulk) SetStartedAt(v time.Time) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *StepUpsertBulk) UpdateStartedAt() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *StepUpsertBulk) ClearStartedAt() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *StepUpsertBulk) SetCompletedAt(v time.Time) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *StepUpsertBulk) UpdateCompletedAt() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *StepUpsertBulk) ClearCompletedAt() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *StepUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the StepCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StepCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StepUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
