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
	"github.com/codeready-toolchain/agentloop/ent/project"
	"github.com/codeready-toolchain/agentloop/ent/trigger"
)

// TriggerCreate is the builder for creating a Trigger entity.
type TriggerCreate struct {
	config
	mutation *TriggerMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetProjectID sets the "project_id" field.
func (_c *TriggerCreate) SetProjectID(v string) *TriggerCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *TriggerCreate) SetName(v string) *TriggerCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetEventPattern sets the "event_pattern" field.
func (_c *TriggerCreate) SetEventPattern(v map[string]interface{}) *TriggerCreate {
	_c.mutation.SetEventPattern(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *TriggerCreate) SetAction(v map[string]interface{}) *TriggerCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *TriggerCreate) SetEnabled(v bool) *TriggerCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *TriggerCreate) SetNillableEnabled(v *bool) *TriggerCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetLastFiredAt sets the "last_fired_at" field.
func (_c *TriggerCreate) SetLastFiredAt(v time.Time) *TriggerCreate {
	_c.mutation.SetLastFiredAt(v)
	return _c
}

// SetNillableLastFiredAt sets the "last_fired_at" field if the given value is not nil.
func (_c *TriggerCreate) SetNillableLastFiredAt(v *time.Time) *TriggerCreate {
	if v != nil {
		_c.SetLastFiredAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TriggerCreate) SetCreatedAt(v time.Time) *TriggerCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TriggerCreate) SetNillableCreatedAt(v *time.Time) *TriggerCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TriggerCreate) SetID(v string) *TriggerCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *TriggerCreate) SetProject(v *Project) *TriggerCreate {
	return _c.SetProjectID(v.ID)
}

// Mutation returns the TriggerMutation object of the builder.
func (_c *TriggerCreate) Mutation() *TriggerMutation {
	return _c.mutation
}

// Save creates the Trigger in the database.
func (_c *TriggerCreate) Save(ctx context.Context) (*Trigger, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TriggerCreate) SaveX(ctx context.Context) *Trigger {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TriggerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TriggerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TriggerCreate) defaults() {
	if _, ok := _c.mutation.Enabled(); !ok {
		v := trigger.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := trigger.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TriggerCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "Trigger.project_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Trigger.name"`)}
	}
	if _, ok := _c.mutation.EventPattern(); !ok {
		return &ValidationError{Name: "event_pattern", err: errors.New(`ent: missing required field "Trigger.event_pattern"`)}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "Trigger.action"`)}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "Trigger.enabled"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Trigger.created_at"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "Trigger.project"`)}
	}
	return nil
}

func (_c *TriggerCreate) sqlSave(ctx context.Context) (*Trigger, error) {
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
			return nil, fmt.Errorf("unexpected Trigger.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TriggerCreate) createSpec() (*Trigger, *sqlgraph.CreateSpec) {
	var (
		_node = &Trigger{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(trigger.Table, sqlgraph.NewFieldSpec(trigger.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(trigger.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.EventPattern(); ok {
		_spec.SetField(trigger.FieldEventPattern, field.TypeJSON, value)
		_node.EventPattern = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(trigger.FieldAction, field.TypeJSON, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(trigger.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.LastFiredAt(); ok {
		_spec.SetField(trigger.FieldLastFiredAt, field.TypeTime, value)
		_node.LastFiredAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(trigger.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   trigger.ProjectTable,
			Columns: []string{trigger.ProjectColumn},
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
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Trigger.Create().
//		SetProjectID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TriggerUpsert) {
//			SetProjectID(v+v).
//		}).
//		Exec(ctx)
func (_c *TriggerCreate) OnConflict(opts ...sql.ConflictOption) *TriggerUpsertOne {
	_c.conflict = opts
	return &TriggerUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Trigger.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TriggerCreate) OnConflictColumns(columns ...string) *TriggerUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TriggerUpsertOne{
		create: _c,
	}
}

type (
	// TriggerUpsertOne is the builder for "upsert"-ing
	//  one Trigger node.
	TriggerUpsertOne struct {
		create *TriggerCreate
	}

	// TriggerUpsert is the "OnConflict" setter.
	TriggerUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *TriggerUpsert) SetName(v string) *TriggerUpsert {
	u.Set(trigger.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *TriggerUpsert) UpdateName() *TriggerUpsert {
	u.SetExcluded(trigger.FieldName)
	return u
}

// SetEventPattern sets the "event_pattern" field.
func (u *TriggerUpsert) SetEventPattern(v map[string]interface{}) *TriggerUpsert {
	u.Set(trigger.FieldEventPattern, v)
	return u
}

// UpdateEventPattern sets the "event_pattern" field to the value that was provided on create.
func (u *TriggerUpsert) UpdateEventPattern() *TriggerUpsert {
	u.SetExcluded(trigger.FieldEventPattern)
	return u
}

// SetAction sets the "action" field.
func (u *TriggerUpsert) SetAction(v map[string]interface{}) *TriggerUpsert {
	u.Set(trigger.FieldAction, v)
	return u
}

// UpdateAction sets the "action" field to the value that was provided on create.
func (u *TriggerUpsert) UpdateAction() *TriggerUpsert {
	u.SetExcluded(trigger.FieldAction)
	return u
}

// SetEnabled sets the "enabled" field.
func (u *TriggerUpsert) SetEnabled(v bool) *TriggerUpsert {
	u.Set(trigger.FieldEnabled, v)
	return u
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *TriggerUpsert) UpdateEnabled() *TriggerUpsert {
	u.SetExcluded(trigger.FieldEnabled)
	return u
}

// SetLastFiredAt sets the "last_fired_at" field.
func (u *TriggerUpsert) SetLastFiredAt(v time.Time) *TriggerUpsert {
	u.Set(trigger.FieldLastFiredAt, v)
	return u
}

// UpdateLastFiredAt sets the "last_fired_at" field to the value that was provided on create.
func (u *TriggerUpsert) UpdateLastFiredAt() *TriggerUpsert {
	u.SetExcluded(trigger.FieldLastFiredAt)
	return u
}

// ClearLastFiredAt clears the value of the "last_fired_at" field.
func (u *TriggerUpsert) ClearLastFiredAt() *TriggerUpsert {
	u.SetNull(trigger.FieldLastFiredAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Trigger.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(trigger.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TriggerUpsertOne) UpdateNewValues() *TriggerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(trigger.FieldID)
		}
		if _, exists := u.create.mutation.ProjectID(); exists {
			s.SetIgnore(trigger.FieldProjectID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(trigger.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Trigger.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TriggerUpsertOne) Ignore() *TriggerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TriggerUpsertOne) DoNothing() *TriggerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TriggerCreate.OnConflict
// documentation for more info.
func (u *TriggerUpsertOne) Update(set func(*TriggerUpsert)) *TriggerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TriggerUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *TriggerUpsertOne) SetName(v string) *TriggerUpsertOne {
	return u.Update(func(s *TriggerUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *TriggerUpsertOne) UpdateName() *TriggerUpsertOne {
	return u.Update(func(s *TriggerUpsert) {
		s.UpdateName()
	})
}

// SetEventPattern sets the "event_pattern" field.
func (u *TriggerUpsertOne) SetEventPattern(v map[string]interface{}) *TriggerUpsertOne {
	return u.Update(func(s *TriggerUpsert) {
		s.SetEventPattern(v)
	})
}

// UpdateEventPattern sets the "event_pattern" field to the value that was provided on create.
func (u *TriggerUpsertOne) UpdateEventPattern() *TriggerUpsertOne {
	return u.Update(func(s *TriggerUpsert) {
		s.UpdateEventPattern()
	})
}

// SetAction sets the "action" field.
func (u *TriggerUpsertOne) SetAction(v map[string]interface{}) *TriggerUpsertOne {
	return u.Update(func(s *TriggerUpsert) {
		s.SetAction(v)
	})
}

// UpdateAction sets the "action" field to the value that was provided on create.
func (u *TriggerUpsertOne) UpdateAction() *TriggerUpsertOne {
	return u.Update(func(s *TriggerUpsert) {
		s.UpdateAction()
	})
}

// SetEnabled sets the "enabled" field.
func (u *TriggerUpsertOne) SetEnabled(v bool) *TriggerUpsertOne {
	return u.Update(func(s *TriggerUpsert) {
		s.SetEnabled(v)
	})
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *TriggerUpsertOne) UpdateEnabled() *TriggerUpsertOne {
	return u.Update(func(s *TriggerUpsert) {
		s.UpdateEnabled()
	})
}

// SetLastFiredAt sets the "last_fired_at" field.
func (u *TriggerUpsertOne) SetLastFiredAt(v time.Time) *TriggerUpsertOne {
	return u.Update(func(s *TriggerUpsert) {
		s.SetLastFiredAt(v)
	})
}

// UpdateLastFiredAt sets the "last_fired_at" field to the value that was provided on create.
func (u *TriggerUpsertOne) UpdateLastFiredAt() *TriggerUpsertOne {
	return u.Update(func(s *TriggerUpsert) {
		s.UpdateLastFiredAt()
	})
}

// ClearLastFiredAt clears the value of the "last_fired_at" field.
func (u *TriggerUpsertOne) ClearLastFiredAt() *TriggerUpsertOne {
	return u.Update(func(s *TriggerUpsert) {
		s.ClearLastFiredAt()
	})
}

// Exec executes the query.
func (u *TriggerUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TriggerCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TriggerUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TriggerUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: TriggerUpsertOne.ID is not supported by MySQL driver. Use TriggerUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TriggerUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TriggerCreateBulk is the builder for creating many Trigger entities in bulk.
type TriggerCreateBulk struct {
	config
	err      error
	builders []*TriggerCreate
	conflict []sql.ConflictOption
}

// Save creates the Trigger entities in the database.
func (_c *TriggerCreateBulk) Save(ctx context.Context) ([]*Trigger, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Trigger, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TriggerMutation)
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
func (_c *TriggerCreateBulk) SaveX(ctx context.Context) []*Trigger {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TriggerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TriggerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Trigger.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TriggerUpsert) {
//			SetProjectID(v+v).
//		}).
//		Exec(ctx)
func (_c *TriggerCreateBulk) OnConflict(opts ...sql.ConflictOption) *TriggerUpsertBulk {
	_c.conflict = opts
	return &TriggerUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Trigger.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TriggerCreateBulk) OnConflictColumns(columns ...string) *TriggerUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TriggerUpsertBulk{
		create: _c,
	}
}

// TriggerUpsertBulk is the builder for "upsert"-ing
// a bulk of Trigger nodes.
type TriggerUpsertBulk struct {
	create *TriggerCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Trigger.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(trigger.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TriggerUpsertBulk) UpdateNewValues() *TriggerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(trigger.FieldID)
			}
			if _, exists := b.mutation.ProjectID(); exists {
				s.SetIgnore(trigger.FieldProjectID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(trigger.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Trigger.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TriggerUpsertBulk) Ignore() *TriggerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TriggerUpsertBulk) DoNothing() *TriggerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TriggerCreateBulk.OnConflict
// documentation for more info.
func (u *TriggerUpsertBulk) Update(set func(*TriggerUpsert)) *TriggerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TriggerUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *TriggerUpsertBulk) SetName(v string) *TriggerUpsertBulk {
	return u.Update(func(s *TriggerUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *TriggerUpsertBulk) UpdateName() *TriggerUpsertBulk {
	return u.Update(func(s *TriggerUpsert) {
		s.UpdateName()
	})
}

// SetEventPattern sets the "event_pattern" field.
func (u *TriggerUpsertBulk) SetEventPattern(v map[string]interface{}) *TriggerUpsertBulk {
	return u.Update(func(s *TriggerUpsert) {
		s.SetEventPattern(v)
	})
}

// UpdateEventPattern sets the "event_pattern" field to the value that was provided on create.
func (u *TriggerUpsertBulk) UpdateEventPattern() *TriggerUpsertBulk {
	return u.Update(func(s *TriggerUpsert) {
		s.UpdateEventPattern()
	})
}

// SetAction sets the "action" field.
func (u *TriggerUpsertBulk) SetAction(v map[string]interface{}) *TriggerUpsertBulk {
	return u.Update(func(s *TriggerUpsert) {
		s.SetAction(v)
	})
}

// UpdateAction sets the "action" field to the value that was provided on create.
func (u *TriggerUpsertBulk) UpdateAction() *TriggerUpsertBulk {
	return u.Update(func(s *TriggerUpsert) {
		s.UpdateAction()
	})
}

// SetEnabled sets the "enabled" field.
func (u *TriggerUpsertBulk) SetEnabled(v bool) *TriggerUpsertBulk {
	return u.Update(func(s *TriggerUpsert) {
		s.SetEnabled(v)
	})
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *TriggerUpsertBulk) UpdateEnabled() *TriggerUpsertBulk {
	return u.Update(func(s *TriggerUpsert) {
		s.UpdateEnabled()
	})
}

// SetLastFiredAt sets the "last_fired_at" field.
func (u *TriggerUpsertBulk) SetLastFiredAt(v time.Time) *TriggerUpsertBulk {
	return u.Update(func(s *TriggerUpsert) {
		s.SetLastFiredAt(v)
	})
}

// UpdateLastFiredAt sets the "last_fired_at" field to the value that was provided on create.
func (u *TriggerUpsertBulk) UpdateLastFiredAt() *TriggerUpsertBulk {
	return u.Update(func(s *TriggerUpsert) {
		s.UpdateLastFiredAt()
	})
}

// ClearLastFiredAt clears the value of the "last_fired_at" field.
func (u *TriggerUpsertBulk) ClearLastFiredAt() *TriggerUpsertBulk {
	return u.Update(func(s *TriggerUpsert) {
		s.ClearLastFiredAt()
	})
}

// Exec executes the query.
func (u *TriggerUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TriggerCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TriggerCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TriggerUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
