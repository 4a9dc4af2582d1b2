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
	"github.com/codeready-toolchain/agentloop/ent/projectcontext"
)

// ProjectContextUpdate is the builder for updating ProjectContext entities.
type ProjectContextUpdate struct {
	config
	hooks    []Hook
	mutation *ProjectContextMutation
}

// Where appends a list predicates to the ProjectContextUpdate builder.
func (_u *ProjectContextUpdate) Where(ps ...predicate.ProjectContext) *ProjectContextUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCategory sets the "category" field.
func (_u *ProjectContextUpdate) SetCategory(v string) *ProjectContextUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ProjectContextUpdate) SetNillableCategory(v *string) *ProjectContextUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetKey sets the "key" field.
func (_u *ProjectContextUpdate) SetKey(v string) *ProjectContextUpdate {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *ProjectContextUpdate) SetNillableKey(v *string) *ProjectContextUpdate {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ProjectContextUpdate) SetContent(v string) *ProjectContextUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ProjectContextUpdate) SetNillableContent(v *string) *ProjectContextUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetSourceAgentID sets the "source_agent_id" field.
func (_u *ProjectContextUpdate) SetSourceAgentID(v string) *ProjectContextUpdate {
	_u.mutation.SetSourceAgentID(v)
	return _u
}

// SetNillableSourceAgentID sets the "source_agent_id" field if the given value is not nil.
func (_u *ProjectContextUpdate) SetNillableSourceAgentID(v *string) *ProjectContextUpdate {
	if v != nil {
		_u.SetSourceAgentID(*v)
	}
	return _u
}

// ClearSourceAgentID clears the value of the "source_agent_id" field.
func (_u *ProjectContextUpdate) ClearSourceAgentID() *ProjectContextUpdate {
	_u.mutation.ClearSourceAgentID()
	return _u
}

// SetSourceStepID sets the "source_step_id" field.
func (_u *ProjectContextUpdate) SetSourceStepID(v string) *ProjectContextUpdate {
	_u.mutation.SetSourceStepID(v)
	return _u
}

// SetNillableSourceStepID sets the "source_step_id" field if the given value is not nil.
func (_u *ProjectContextUpdate) SetNillableSourceStepID(v *string) *ProjectContextUpdate {
	if v != nil {
		_u.SetSourceStepID(*v)
	}
	return _u
}

// ClearSourceStepID clears the value of the "source_step_id" field.
func (_u *ProjectContextUpdate) ClearSourceStepID() *ProjectContextUpdate {
	_u.mutation.ClearSourceStepID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProjectContextUpdate) SetUpdatedAt(v time.Time) *ProjectContextUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProjectContextMutation object of the builder.
func (_u *ProjectContextUpdate) Mutation() *ProjectContextMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProjectContextUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProjectContextUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProjectContextUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProjectContextUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProjectContextUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := projectcontext.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProjectContextUpdate) check() error {
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProjectContext.project"`)
	}
	return nil
}

func (_u *ProjectContextUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(projectcontext.Table, projectcontext.Columns, sqlgraph.NewFieldSpec(projectcontext.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(projectcontext.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(projectcontext.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(projectcontext.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceAgentID(); ok {
		_spec.SetField(projectcontext.FieldSourceAgentID, field.TypeString, value)
	}
	if _u.mutation.SourceAgentIDCleared() {
		_spec.ClearField(projectcontext.FieldSourceAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.SourceStepID(); ok {
		_spec.SetField(projectcontext.FieldSourceStepID, field.TypeString, value)
	}
	if _u.mutation.SourceStepIDCleared() {
		_spec.ClearField(projectcontext.FieldSourceStepID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(projectcontext.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{projectcontext.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProjectContextUpdateOne is the builder for updating a single ProjectContext entity.
type ProjectContextUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProjectContextMutation
}

// SetCategory sets the "category" field.
func (_u *ProjectContextUpdateOne) SetCategory(v string) *ProjectContextUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ProjectContextUpdateOne) SetNillableCategory(v *string) *ProjectContextUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetKey sets the "key" field.
func (_u *ProjectContextUpdateOne) SetKey(v string) *ProjectContextUpdateOne {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *ProjectContextUpdateOne) SetNillableKey(v *string) *ProjectContextUpdateOne {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ProjectContextUpdateOne) SetContent(v string) *ProjectContextUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ProjectContextUpdateOne) SetNillableContent(v *string) *ProjectContextUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetSourceAgentID sets the "source_agent_id" field.
func (_u *ProjectContextUpdateOne) SetSourceAgentID(v string) *ProjectContextUpdateOne {
	_u.mutation.SetSourceAgentID(v)
	return _u
}

// SetNillableSourceAgentID sets the "source_agent_id" field if the given value is not nil.
func (_u *ProjectContextUpdateOne) SetNillableSourceAgentID(v *string) *ProjectContextUpdateOne {
	if v != nil {
		_u.SetSourceAgentID(*v)
	}
	return _u
}

// ClearSourceAgentID clears the value of the "source_agent_id" field.
func (_u *ProjectContextUpdateOne) ClearSourceAgentID() *ProjectContextUpdateOne {
	_u.mutation.ClearSourceAgentID()
	return _u
}

// SetSourceStepID sets the "source_step_id" field.
func (_u *ProjectContextUpdateOne) SetSourceStepID(v string) *ProjectContextUpdateOne {
	_u.mutation.SetSourceStepID(v)
	return _u
}

// SetNillableSourceStepID sets the "source_step_id" field if the given value is not nil.
func (_u *ProjectContextUpdateOne) SetNillableSourceStepID(v *string) *ProjectContextUpdateOne {
	if v != nil {
		_u.SetSourceStepID(*v)
	}
	return _u
}

// ClearSourceStepID clears the value of the "source_step_id" field.
func (_u *ProjectContextUpdateOne) ClearSourceStepID() *ProjectContextUpdateOne {
	_u.mutation.ClearSourceStepID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProjectContextUpdateOne) SetUpdatedAt(v time.Time) *ProjectContextUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProjectContextMutation object of the builder.
func (_u *ProjectContextUpdateOne) Mutation() *ProjectContextMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProjectContextUpdate builder.
func (_u *ProjectContextUpdateOne) Where(ps ...predicate.ProjectContext) *ProjectContextUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProjectContextUpdateOne) Select(field string, fields ...string) *ProjectContextUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProjectContext entity.
func (_u *ProjectContextUpdateOne) Save(ctx context.Context) (*ProjectContext, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProjectContextUpdateOne) SaveX(ctx context.Context) *ProjectContext {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProjectContextUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProjectContextUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProjectContextUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := projectcontext.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProjectContextUpdateOne) check() error {
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProjectContext.project"`)
	}
	return nil
}

func (_u *ProjectContextUpdateOne) sqlSave(ctx context.Context) (_node *ProjectContext, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(projectcontext.Table, projectcontext.Columns, sqlgraph.NewFieldSpec(projectcontext.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProjectContext.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, projectcontext.FieldID)
		for _, f := range fields {
			if !projectcontext.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != projectcontext.FieldID {
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
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(projectcontext.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(projectcontext.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(projectcontext.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceAgentID(); ok {
		_spec.SetField(projectcontext.FieldSourceAgentID, field.TypeString, value)
	}
	if _u.mutation.SourceAgentIDCleared() {
		_spec.ClearField(projectcontext.FieldSourceAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.SourceStepID(); ok {
		_spec.SetField(projectcontext.FieldSourceStepID, field.TypeString, value)
	}
	if _u.mutation.SourceStepIDCleared() {
		_spec.ClearField(projectcontext.FieldSourceStepID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(projectcontext.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ProjectContext{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{projectcontext.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
