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
	"github.com/codeready-toolchain/agentloop/ent/projectcontext"
)

// ProjectContextCreate is the builder for creating a ProjectContext entity.
type ProjectContextCreate struct {
	config
	mutation *ProjectContextMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetProjectID sets the "project_id" field.
func (_c *ProjectContextCreate) SetProjectID(v string) *ProjectContextCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *ProjectContextCreate) SetCategory(v string) *ProjectContextCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetKey sets the "key" field.
func (_c *ProjectContextCreate) SetKey(v string) *ProjectContextCreate {
	_c.mutation.SetKey(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *ProjectContextCreate) SetContent(v string) *ProjectContextCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetSourceAgentID sets the "source_agent_id" field.
func (_c *ProjectContextCreate) SetSourceAgentID(v string) *ProjectContextCreate {
	_c.mutation.SetSourceAgentID(v)
	return _c
}

// SetNillableSourceAgentID sets the "source_agent_id" field if the given value is not nil.
func (_c *ProjectContextCreate) SetNillableSourceAgentID(v *string) *ProjectContextCreate {
	if v != nil {
		_c.SetSourceAgentID(*v)
	}
	return _c
}

// SetSourceStepID sets the "source_step_id" field.
func (_c *ProjectContextCreate) SetSourceStepID(v string) *ProjectContextCreate {
	_c.mutation.SetSourceStepID(v)
	return _c
}

// SetNillableSourceStepID sets the "source_step_id" field if the given value is not nil.
func (_c *ProjectContextCreate) SetNillableSourceStepID(v *string) *ProjectContextCreate {
	if v != nil {
		_c.SetSourceStepID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProjectContextCreate) SetCreatedAt(v time.Time) *ProjectContextCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProjectContextCreate) SetNillableCreatedAt(v *time.Time) *ProjectContextCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProjectContextCreate) SetUpdatedAt(v time.Time) *ProjectContextCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProjectContextCreate) SetNillableUpdatedAt(v *time.Time) *ProjectContextCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProjectContextCreate) SetID(v string) *ProjectContextCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *ProjectContextCreate) SetProject(v *Project) *ProjectContextCreate {
	return _c.SetProjectID(v.ID)
}

// Mutation returns the ProjectContextMutation object of the builder.
func (_c *ProjectContextCreate) Mutation() *ProjectContextMutation {
	return _c.mutation
}

// Save creates the ProjectContext in the database.
func (_c *ProjectContextCreate) Save(ctx context.Context) (*ProjectContext, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProjectContextCreate) SaveX(ctx context.Context) *ProjectContext {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProjectContextCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProjectContextCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProjectContextCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := projectcontext.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := projectcontext.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProjectContextCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "ProjectContext.project_id"`)}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "ProjectContext.category"`)}
	}
	if _, ok := _c.mutation.Key(); !ok {
		return &ValidationError{Name: "key", err: errors.New(`ent: missing required field "ProjectContext.key"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "ProjectContext.content"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ProjectContext.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ProjectContext.updated_at"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "ProjectContext.project"`)}
	}
	return nil
}

func (_c *ProjectContextCreate) sqlSave(ctx context.Context) (*ProjectContext, error) {
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
			return nil, fmt.Errorf("unexpected ProjectContext.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProjectContextCreate) createSpec() (*ProjectContext, *sqlgraph.CreateSpec) {
	var (
		_node = &ProjectContext{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(projectcontext.Table, sqlgraph.NewFieldSpec(projectcontext.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(projectcontext.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Key(); ok {
		_spec.SetField(projectcontext.FieldKey, field.TypeString, value)
		_node.Key = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(projectcontext.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.SourceAgentID(); ok {
		_spec.SetField(projectcontext.FieldSourceAgentID, field.TypeString, value)
		_node.SourceAgentID = &value
	}
	if value, ok := _c.mutation.SourceStepID(); ok {
		_spec.SetField(projectcontext.FieldSourceStepID, field.TypeString, value)
		_node.SourceStepID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(projectcontext.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(projectcontext.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   projectcontext.ProjectTable,
			Columns: []string{projectcontext.ProjectColumn},
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
//	client.ProjectContext.Create().
//		SetProjectID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProjectContextUpsert) {
//			SetProjectID(v+v).
//		}).
//		Exec(ctx)
func (_c *ProjectContextCreate) OnConflict(opts ...sql.ConflictOption) *ProjectContextUpsertOne {
	_c.conflict = opts
	return &ProjectContextUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ProjectContext.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProjectContextCreate) OnConflictColumns(columns ...string) *ProjectContextUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProjectContextUpsertOne{
		create: _c,
	}
}

type (
	// ProjectContextUpsertOne is the builder for "upsert"-ing
	//  one ProjectContext node.
	ProjectContextUpsertOne struct {
		create *ProjectContextCreate
	}

	// ProjectContextUpsert is the "OnConflict" setter.
	ProjectContextUpsert struct {
		*sql.UpdateSet
	}
)

// SetCategory sets the "category" field.
func (u *ProjectContextUpsert) SetCategory(v string) *ProjectContextUpsert {
	u.Set(projectcontext.FieldCategory, v)
	return u
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *ProjectContextUpsert) UpdateCategory() *ProjectContextUpsert {
	u.SetExcluded(projectcontext.FieldCategory)
	return u
}

// SetKey sets the "key" field.
func (u *ProjectContextUpsert) SetKey(v string) *ProjectContextUpsert {
	u.Set(projectcontext.FieldKey, v)
	return u
}

// UpdateKey sets the "key" field to the value that was provided on create.
func (u *ProjectContextUpsert) UpdateKey() *ProjectContextUpsert {
	u.SetExcluded(projectcontext.FieldKey)
	return u
}

// SetContent sets the "content" field.
func (u *ProjectContextUpsert) SetContent(v string) *ProjectContextUpsert {
	u.Set(projectcontext.FieldContent, v)
	return u
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *ProjectContextUpsert) UpdateContent() *ProjectContextUpsert {
	u.SetExcluded(projectcontext.FieldContent)
	return u
}

// SetSourceAgentID sets the "source_agent_id" field.
func (u *ProjectContextUpsert) SetSourceAgentID(v string) *ProjectContextUpsert {
	u.Set(projectcontext.FieldSourceAgentID, v)
	return u
}

// UpdateSourceAgentID sets the "source_agent_id" field to the value that was provided on create.
func (u *ProjectContextUpsert) UpdateSourceAgentID() *ProjectContextUpsert {
	u.SetExcluded(projectcontext.FieldSourceAgentID)
	return u
}

// ClearSourceAgentID clears the value of the "source_agent_id" field.
func (u *ProjectContextUpsert) ClearSourceAgentID() *ProjectContextUpsert {
	u.SetNull(projectcontext.FieldSourceAgentID)
	return u
}

// SetSourceStepID sets the "source_step_id" field.
func (u *ProjectContextUpsert) SetSourceStepID(v string) *ProjectContextUpsert {
	u.Set(projectcontext.FieldSourceStepID, v)
	return u
}

// UpdateSourceStepID sets the "source_step_id" field to the value that was provided on create.
func (u *ProjectContextUpsert) UpdateSourceStepID() *ProjectContextUpsert {
	u.SetExcluded(projectcontext.FieldSourceStepID)
	return u
}

// ClearSourceStepID clears the value of the "source_step_id" field.
func (u *ProjectContextUpsert) ClearSourceStepID() *ProjectContextUpsert {
	u.SetNull(projectcontext.FieldSourceStepID)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ProjectContextUpsert) SetUpdatedAt(v time.Time) *ProjectContextUpsert {
	u.Set(projectcontext.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ProjectContextUpsert) UpdateUpdatedAt() *ProjectContextUpsert {
	u.SetExcluded(projectcontext.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ProjectContext.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(projectcontext.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ProjectContextUpsertOne) UpdateNewValues() *ProjectContextUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(projectcontext.FieldID)
		}
		if _, exists := u.create.mutation.ProjectID(); exists {
			s.SetIgnore(projectcontext.FieldProjectID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(projectcontext.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ProjectContext.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ProjectContextUpsertOne) Ignore() *ProjectContextUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProjectContextUpsertOne) DoNothing() *ProjectContextUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProjectContextCreate.OnConflict
// documentation for more info.
func (u *ProjectContextUpsertOne) Update(set func(*ProjectContextUpsert)) *ProjectContextUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProjectContextUpsert{UpdateSet: update})
	}))
	return u
}

// SetCategory sets the "category" field.
func (u *ProjectContextUpsertOne) SetCategory(v string) *ProjectContextUpsertOne {
	return u.Update(func(s *ProjectContextUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *ProjectContextUpsertOne) UpdateCategory() *ProjectContextUpsertOne {
	return u.Update(func(s *ProjectContextUpsert) {
		s.UpdateCategory()
	})
}

// SetKey sets the "key" field.
func (u *ProjectContextUpsertOne) SetKey(v string) *ProjectContextUpsertOne {
	return u.Update(func(s *ProjectContextUpsert) {
		s.SetKey(v)
	})
}

// UpdateKey sets the "key" field to the value that was provided on create.
func (u *ProjectContextUpsertOne) UpdateKey() *ProjectContextUpsertOne {
	return u.Update(func(s *ProjectContextUpsert) {
		s.UpdateKey()
	})
}

// SetContent sets the "content" field.
func (u *ProjectContextUpsertOne) SetContent(v string) *ProjectContextUpsertOne {
	return u.Update(func(s *ProjectContextUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *ProjectContextUpsertOne) UpdateContent() *ProjectContextUpsertOne {
	return u.Update(func(s *ProjectContextUpsert) {
		s.UpdateContent()
	})
}

// SetSourceAgentID sets the "source_agent_id" field.
func (u *ProjectContextUpsertOne) SetSourceAgentID(v string) *ProjectContextUpsertOne {
	return u.Update(func(s *ProjectContextUpsert) {
		s.SetSourceAgentID(v)
	})
}

// UpdateSourceAgentID sets the "source_agent_id" field to the value that was provided on create.
func (u *ProjectContextUpsertOne) UpdateSourceAgentID() *ProjectContextUpsertOne {
	return u.Update(func(s *ProjectContextUpsert) {
		s.UpdateSourceAgentID()
	})
}

// ClearSourceAgentID clears the value of the "source_agent_id" field.
func (u *ProjectContextUpsertOne) ClearSourceAgentID() *ProjectContextUpsertOne {
	return u.Update(func(s *ProjectContextUpsert) {
		s.ClearSourceAgentID()
	})
}

// SetSourceStepID sets the "source_step_id" field.
func (u *ProjectContextUpsertOne) SetSourceStepID(v string) *ProjectContextUpsertOne {
	return u.Update(func(s *ProjectContextUpsert) {
		s.SetSourceStepID(v)
	})
}

// UpdateSourceStepID sets the "source_step_id" field to the value that was provided on create.
func (u *ProjectContextUpsertOne) UpdateSourceStepID() *ProjectContextUpsertOne {
	return u.Update(func(s *ProjectContextUpsert) {
		s.UpdateSourceStepID()
	})
}

// ClearSourceStepID clears the value of the "source_step_id" field.
func (u *ProjectContextUpsertOne) ClearSourceStepID() *ProjectContextUpsertOne {
	return u.Update(func(s *ProjectContextUpsert) {
		s.ClearSourceStepID()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ProjectContextUpsertOne) SetUpdatedAt(v time.Time) *ProjectContextUpsertOne {
	return u.Update(func(s *ProjectContextUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ProjectContextUpsertOne) UpdateUpdatedAt() *ProjectContextUpsertOne {
	return u.Update(func(s *ProjectContextUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ProjectContextUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProjectContextCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProjectContextUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ProjectContextUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ProjectContextUpsertOne.ID is not supported by MySQL driver. Use ProjectContextUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ProjectContextUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ProjectContextCreateBulk is the builder for creating many ProjectContext entities in bulk.
type ProjectContextCreateBulk struct {
	config
	err      error
	builders []*ProjectContextCreate
	conflict []sql.ConflictOption
}

// Save creates the ProjectContext entities in the database.
func (_c *ProjectContextCreateBulk) Save(ctx context.Context) ([]*ProjectContext, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProjectContext, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProjectContextMutation)
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
func (_c *ProjectContextCreateBulk) SaveX(ctx context.Context) []*ProjectContext {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProjectContextCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProjectContextCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ProjectContext.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProjectContextUpsert) {
//			SetProjectID(v+v).
//		}).
//		Exec(ctx)
func (_c *ProjectContextCreateBulk) OnConflict(opts ...sql.ConflictOption) *ProjectContextUpsertBulk {
	_c.conflict = opts
	return &ProjectContextUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ProjectContext.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProjectContextCreateBulk) OnConflictColumns(columns ...string) *ProjectContextUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProjectContextUpsertBulk{
		create: _c,
	}
}

// ProjectContextUpsertBulk is the builder for "upsert"-ing
// a bulk of ProjectContext nodes.
type ProjectContextUpsertBulk struct {
	create *ProjectContextCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ProjectContext.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(projectcontext.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ProjectContextUpsertBulk) UpdateNewValues() *ProjectContextUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(projectcontext.FieldID)
			}
			if _, exists := b.mutation.ProjectID(); exists {
				s.SetIgnore(projectcontext.FieldProjectID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(projectcontext.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ProjectContext.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ProjectContextUpsertBulk) Ignore() *ProjectContextUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProjectContextUpsertBulk) DoNothing() *ProjectContextUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProjectContextCreateBulk.OnConflict
// documentation for more info.
func (u *ProjectContextUpsertBulk) Update(set func(*ProjectContextUpsert)) *ProjectContextUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProjectContextUpsert{UpdateSet: update})
	}))
	return u
}

// SetCategory sets the "category" field.
func (u *ProjectContextUpsertBulk) SetCategory(v string) *ProjectContextUpsertBulk {
	return u.Update(func(s *ProjectContextUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *ProjectContextUpsertBulk) UpdateCategory() *ProjectContextUpsertBulk {
	return u.Update(func(s *ProjectContextUpsert) {
		s.UpdateCategory()
	})
}

// SetKey sets the "key" field.
func (u *ProjectContextUpsertBulk) SetKey(v string) *ProjectContextUpsertBulk {
	return u.Update(func(s *ProjectContextUpsert) {
		s.SetKey(v)
	})
}

// UpdateKey sets the "key" field to the value that was provided on create.
func (u *ProjectContextUpsertBulk) UpdateKey() *ProjectContextUpsertBulk {
	return u.Update(func(s *ProjectContextUpsert) {
		s.UpdateKey()
	})
}

// SetContent sets the "content" field.
func (u *ProjectContextUpsertBulk) SetContent(v string) *ProjectContextUpsertBulk {
	return u.Update(func(s *ProjectContextUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *ProjectContextUpsertBulk) UpdateContent() *ProjectContextUpsertBulk {
	return u.Update(func(s *ProjectContextUpsert) {
		s.UpdateContent()
	})
}

// SetSourceAgentID sets the "source_agent_id" field.
func (u *ProjectContextUpsertBulk) SetSourceAgentID(v string) *ProjectContextUpsertBulk {
	return u.Update(func(s *ProjectContextUpsert) {
		s.SetSourceAgentID(v)
	})
}

// UpdateSourceAgentID sets the "source_agent_id" field to the value that was provided on create.
func (u *ProjectContextUpsertBulk) UpdateSourceAgentID() *ProjectContextUpsertBulk {
	return u.Update(func(s *ProjectContextUpsert) {
		s.UpdateSourceAgentID()
	})
}

// ClearSourceAgentID clears the value of the "source_agent_id" field.
func (u *ProjectContextUpsertBulk) ClearSourceAgentID() *ProjectContextUpsertBulk {
	return u.Update(func(s *ProjectContextUpsert) {
		s.ClearSourceAgentID()
	})
}

// SetSourceStepID sets the "source_step_id" field.
func (u *ProjectContextUpsertBulk) SetSourceStepID(v string) *ProjectContextUpsertBulk {
	return u.Update(func(s *ProjectContextUpsert) {
		s.SetSourceStepID(v)
	})
}

// UpdateSourceStepID sets the "source_step_id" field to the value that was provided on create.
func (u *ProjectContextUpsertBulk) UpdateSourceStepID() *ProjectContextUpsertBulk {
	return u.Update(func(s *ProjectContextUpsert) {
		s.UpdateSourceStepID()
	})
}

// ClearSourceStepID clears the value of the "source_step_id" field.
func (u *ProjectContextUpsertBulk) ClearSourceStepID() *ProjectContextUpsertBulk {
	return u.Update(func(s *ProjectContextUpsert) {
		s.ClearSourceStepID()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ProjectContextUpsertBulk) SetUpdatedAt(v time.Time) *ProjectContextUpsertBulk {
	return u.Update(func(s *ProjectContextUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ProjectContextUpsertBulk) UpdateUpdatedAt() *ProjectContextUpsertBulk {
	return u.Update(func(s *ProjectContextUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ProjectContextUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ProjectContextCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProjectContextCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProjectContextUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
