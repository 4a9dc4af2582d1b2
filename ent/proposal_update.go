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
	"github.com/codeready-toolchain/agentloop/ent/mission"
	"github.com/codeready-toolchain/agentloop/ent/predicate"
	"github.com/codeready-toolchain/agentloop/ent/proposal"
)

// ProposalUpdate is the builder for updating Proposal entities.
type ProposalUpdate struct {
	config
	hooks    []Hook
	mutation *ProposalMutation
}

// Where appends a list predicates to the ProposalUpdate builder.
func (_u *ProposalUpdate) Where(ps ...predicate.Proposal) *ProposalUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *ProposalUpdate) SetTitle(v string) *ProposalUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ProposalUpdate) SetNillableTitle(v *string) *ProposalUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ProposalUpdate) SetDescription(v string) *ProposalUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ProposalUpdate) SetNillableDescription(v *string) *ProposalUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetRationale sets the "rationale" field.
func (_u *ProposalUpdate) SetRationale(v string) *ProposalUpdate {
	_u.mutation.SetRationale(v)
	return _u
}

// SetNillableRationale sets the "rationale" field if the given value is not nil.
func (_u *ProposalUpdate) SetNillableRationale(v *string) *ProposalUpdate {
	if v != nil {
		_u.SetRationale(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *ProposalUpdate) SetPriority(v proposal.Priority) *ProposalUpdate {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *ProposalUpdate) SetNillablePriority(v *proposal.Priority) *ProposalUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProposalUpdate) SetStatus(v proposal.Status) *ProposalUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProposalUpdate) SetNillableStatus(v *proposal.Status) *ProposalUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAutoApprove sets the "auto_approve" field.
func (_u *ProposalUpdate) SetAutoApprove(v bool) *ProposalUpdate {
	_u.mutation.SetAutoApprove(v)
	return _u
}

// SetNillableAutoApprove sets the "auto_approve" field if the given value is not nil.
func (_u *ProposalUpdate) SetNillableAutoApprove(v *bool) *ProposalUpdate {
	if v != nil {
		_u.SetAutoApprove(*v)
	}
	return _u
}

// SetReviewedBy sets the "reviewed_by" field.
func (_u *ProposalUpdate) SetReviewedBy(v string) *ProposalUpdate {
	_u.mutation.SetReviewedBy(v)
	return _u
}

// SetNillableReviewedBy sets the "reviewed_by" field if the given value is not nil.
func (_u *ProposalUpdate) SetNillableReviewedBy(v *string) *ProposalUpdate {
	if v != nil {
		_u.SetReviewedBy(*v)
	}
	return _u
}

// ClearReviewedBy clears the value of the "reviewed_by" field.
func (_u *ProposalUpdate) ClearReviewedBy() *ProposalUpdate {
	_u.mutation.ClearReviewedBy()
	return _u
}

// SetReviewedAt sets the "reviewed_at" field.
func (_u *ProposalUpdate) SetReviewedAt(v time.Time) *ProposalUpdate {
	_u.mutation.SetReviewedAt(v)
	return _u
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_u *ProposalUpdate) SetNillableReviewedAt(v *time.Time) *ProposalUpdate {
	if v != nil {
		_u.SetReviewedAt(*v)
	}
	return _u
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (_u *ProposalUpdate) ClearReviewedAt() *ProposalUpdate {
	_u.mutation.ClearReviewedAt()
	return _u
}

// SetMcTaskID sets the "mc_task_id" field.
func (_u *ProposalUpdate) SetMcTaskID(v string) *ProposalUpdate {
	_u.mutation.SetMcTaskID(v)
	return _u
}

// SetNillableMcTaskID sets the "mc_task_id" field if the given value is not nil.
func (_u *ProposalUpdate) SetNillableMcTaskID(v *string) *ProposalUpdate {
	if v != nil {
		_u.SetMcTaskID(*v)
	}
	return _u
}

// ClearMcTaskID clears the value of the "mc_task_id" field.
func (_u *ProposalUpdate) ClearMcTaskID() *ProposalUpdate {
	_u.mutation.ClearMcTaskID()
	return _u
}

// SetMcBoardID sets the "mc_board_id" field.
func (_u *ProposalUpdate) SetMcBoardID(v string) *ProposalUpdate {
	_u.mutation.SetMcBoardID(v)
	return _u
}

// SetNillableMcBoardID sets the "mc_board_id" field if the given value is not nil.
func (_u *ProposalUpdate) SetNillableMcBoardID(v *string) *ProposalUpdate {
	if v != nil {
		_u.SetMcBoardID(*v)
	}
	return _u
}

// ClearMcBoardID clears the value of the "mc_board_id" field.
func (_u *ProposalUpdate) ClearMcBoardID() *ProposalUpdate {
	_u.mutation.ClearMcBoardID()
	return _u
}

// SetMissionID sets the "mission" edge to the Mission entity by ID.
func (_u *ProposalUpdate) SetMissionID(id string) *ProposalUpdate {
	_u.mutation.SetMissionID(id)
	return _u
}

// SetNillableMissionID sets the "mission" edge to the Mission entity by ID if the given value is not nil.
func (_u *ProposalUpdate) SetNillableMissionID(id *string) *ProposalUpdate {
	if id != nil {
		_u = _u.SetMissionID(*id)
	}
	return _u
}

// SetMission sets the "mission" edge to the Mission entity.
func (_u *ProposalUpdate) SetMission(v *Mission) *ProposalUpdate {
	return _u.SetMissionID(v.ID)
}

// Mutation returns the ProposalMutation object of the builder.
func (_u *ProposalUpdate) Mutation() *ProposalMutation {
	return _u.mutation
}

// ClearMission clears the "mission" edge to the Mission entity.
func (_u *ProposalUpdate) ClearMission() *ProposalUpdate {
	_u.mutation.ClearMission()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProposalUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProposalUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProposalUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProposalUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProposalUpdate) check() error {
	if v, ok := _u.mutation.Priority(); ok {
		if err := proposal.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Proposal.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := proposal.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Proposal.status": %w`, err)}
		}
	}
	if _u.mutation.AgentCleared() && len(_u.mutation.AgentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Proposal.agent"`)
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Proposal.project"`)
	}
	return nil
}

func (_u *ProposalUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(proposal.Table, proposal.Columns, sqlgraph.NewFieldSpec(proposal.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(proposal.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(proposal.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rationale(); ok {
		_spec.SetField(proposal.FieldRationale, field.TypeString, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(proposal.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(proposal.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AutoApprove(); ok {
		_spec.SetField(proposal.FieldAutoApprove, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ReviewedBy(); ok {
		_spec.SetField(proposal.FieldReviewedBy, field.TypeString, value)
	}
	if _u.mutation.ReviewedByCleared() {
		_spec.ClearField(proposal.FieldReviewedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ReviewedAt(); ok {
		_spec.SetField(proposal.FieldReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.ReviewedAtCleared() {
		_spec.ClearField(proposal.FieldReviewedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.McTaskID(); ok {
		_spec.SetField(proposal.FieldMcTaskID, field.TypeString, value)
	}
	if _u.mutation.McTaskIDCleared() {
		_spec.ClearField(proposal.FieldMcTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.McBoardID(); ok {
		_spec.SetField(proposal.FieldMcBoardID, field.TypeString, value)
	}
	if _u.mutation.McBoardIDCleared() {
		_spec.ClearField(proposal.FieldMcBoardID, field.TypeString)
	}
	if _u.mutation.MissionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MissionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{proposal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProposalUpdateOne is the builder for updating a single Proposal entity.
type ProposalUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProposalMutation
}

// SetTitle sets the "title" field.
func (_u *ProposalUpdateOne) SetTitle(v string) *ProposalUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ProposalUpdateOne) SetNillableTitle(v *string) *ProposalUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ProposalUpdateOne) SetDescription(v string) *ProposalUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ProposalUpdateOne) SetNillableDescription(v *string) *ProposalUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetRationale sets the "rationale" field.
func (_u *ProposalUpdateOne) SetRationale(v string) *ProposalUpdateOne {
	_u.mutation.SetRationale(v)
	return _u
}

// SetNillableRationale sets the "rationale" field if the given value is not nil.
func (_u *ProposalUpdateOne) SetNillableRationale(v *string) *ProposalUpdateOne {
	if v != nil {
		_u.SetRationale(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *ProposalUpdateOne) SetPriority(v proposal.Priority) *ProposalUpdateOne {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *ProposalUpdateOne) SetNillablePriority(v *proposal.Priority) *ProposalUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProposalUpdateOne) SetStatus(v proposal.Status) *ProposalUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProposalUpdateOne) SetNillableStatus(v *proposal.Status) *ProposalUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAutoApprove sets the "auto_approve" field.
func (_u *ProposalUpdateOne) SetAutoApprove(v bool) *ProposalUpdateOne {
	_u.mutation.SetAutoApprove(v)
	return _u
}

// SetNillableAutoApprove sets the "auto_approve" field if the given value is not nil.
func (_u *ProposalUpdateOne) SetNillableAutoApprove(v *bool) *ProposalUpdateOne {
	if v != nil {
		_u.SetAutoApprove(*v)
	}
	return _u
}

// SetReviewedBy sets the "reviewed_by" field.
func (_u *ProposalUpdateOne) SetReviewedBy(v string) *ProposalUpdateOne {
	_u.mutation.SetReviewedBy(v)
	return _u
}

// SetNillableReviewedBy sets the "reviewed_by" field if the given value is not nil.
func (_u *ProposalUpdateOne) SetNillableReviewedBy(v *string) *ProposalUpdateOne {
	if v != nil {
		_u.SetReviewedBy(*v)
	}
	return _u
}

// ClearReviewedBy clears the value of the "reviewed_by" field.
func (_u *ProposalUpdateOne) ClearReviewedBy() *ProposalUpdateOne {
	_u.mutation.ClearReviewedBy()
	return _u
}

// SetReviewedAt sets the "reviewed_at" field.
func (_u *ProposalUpdateOne) SetReviewedAt(v time.Time) *ProposalUpdateOne {
	_u.mutation.SetReviewedAt(v)
	return _u
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_u *ProposalUpdateOne) SetNillableReviewedAt(v *time.Time) *ProposalUpdateOne {
	if v != nil {
		_u.SetReviewedAt(*v)
	}
	return _u
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (_u *ProposalUpdateOne) ClearReviewedAt() *ProposalUpdateOne {
	_u.mutation.ClearReviewedAt()
	return _u
}

// SetMcTaskID sets the "mc_task_id" field.
func (_u *ProposalUpdateOne) SetMcTaskID(v string) *ProposalUpdateOne {
	_u.mutation.SetMcTaskID(v)
	return _u
}

// SetNillableMcTaskID sets the "mc_task_id" field if the given value is not nil.
func (_u *ProposalUpdateOne) SetNillableMcTaskID(v *string) *ProposalUpdateOne {
	if v != nil {
		_u.SetMcTaskID(*v)
	}
	return _u
}

// ClearMcTaskID clears the value of the "mc_task_id" field.
func (_u *ProposalUpdateOne) ClearMcTaskID() *ProposalUpdateOne {
	_u.mutation.ClearMcTaskID()
	return _u
}

// SetMcBoardID sets the "mc_board_id" field.
func (_u *ProposalUpdateOne) SetMcBoardID(v string) *ProposalUpdateOne {
	_u.mutation.SetMcBoardID(v)
	return _u
}

// SetNillableMcBoardID sets the "mc_board_id" field if the given value is not nil.
func (_u *ProposalUpdateOne) SetNillableMcBoardID(v *string) *ProposalUpdateOne {
	if v != nil {
		_u.SetMcBoardID(*v)
	}
	return _u
}

// ClearMcBoardID clears the value of the "mc_board_id" field.
func (_u *ProposalUpdateOne) ClearMcBoardID() *ProposalUpdateOne {
	_u.mutation.ClearMcBoardID()
	return _u
}

// SetMissionID sets the "mission" edge to the Mission entity by ID.
func (_u *ProposalUpdateOne) SetMissionID(id string) *ProposalUpdateOne {
	_u.mutation.SetMissionID(id)
	return _u
}

// SetNillableMissionID sets the "mission" edge to the Mission entity by ID if the given value is not nil.
func (_u *ProposalUpdateOne) SetNillableMissionID(id *string) *ProposalUpdateOne {
	if id != nil {
		_u = _u.SetMissionID(*id)
	}
	return _u
}

// SetMission sets the "mission" edge to the Mission entity.
func (_u *ProposalUpdateOne) SetMission(v *Mission) *ProposalUpdateOne {
	return _u.SetMissionID(v.ID)
}

// Mutation returns the ProposalMutation object of the builder.
func (_u *ProposalUpdateOne) Mutation() *ProposalMutation {
	return _u.mutation
}

// ClearMission clears the "mission" edge to the Mission entity.
func (_u *ProposalUpdateOne) ClearMission() *ProposalUpdateOne {
	_u.mutation.ClearMission()
	return _u
}

// Where appends a list predicates to the ProposalUpdate builder.
func (_u *ProposalUpdateOne) Where(ps ...predicate.Proposal) *ProposalUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProposalUpdateOne) Select(field string, fields ...string) *ProposalUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Proposal entity.
func (_u *ProposalUpdateOne) Save(ctx context.Context) (*Proposal, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProposalUpdateOne) SaveX(ctx context.Context) *Proposal {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProposalUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProposalUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProposalUpdateOne) check() error {
	if v, ok := _u.mutation.Priority(); ok {
		if err := proposal.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Proposal.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := proposal.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Proposal.status": %w`, err)}
		}
	}
	if _u.mutation.AgentCleared() && len(_u.mutation.AgentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Proposal.agent"`)
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Proposal.project"`)
	}
	return nil
}

func (_u *ProposalUpdateOne) sqlSave(ctx context.Context) (_node *Proposal, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(proposal.Table, proposal.Columns, sqlgraph.NewFieldSpec(proposal.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Proposal.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, proposal.FieldID)
		for _, f := range fields {
			if !proposal.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != proposal.FieldID {
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
		_spec.SetField(proposal.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(proposal.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rationale(); ok {
		_spec.SetField(proposal.FieldRationale, field.TypeString, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(proposal.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(proposal.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AutoApprove(); ok {
		_spec.SetField(proposal.FieldAutoApprove, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ReviewedBy(); ok {
		_spec.SetField(proposal.FieldReviewedBy, field.TypeString, value)
	}
	if _u.mutation.ReviewedByCleared() {
		_spec.ClearField(proposal.FieldReviewedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ReviewedAt(); ok {
		_spec.SetField(proposal.FieldReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.ReviewedAtCleared() {
		_spec.ClearField(proposal.FieldReviewedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.McTaskID(); ok {
		_spec.SetField(proposal.FieldMcTaskID, field.TypeString, value)
	}
	if _u.mutation.McTaskIDCleared() {
		_spec.ClearField(proposal.FieldMcTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.McBoardID(); ok {
		_spec.SetField(proposal.FieldMcBoardID, field.TypeString, value)
	}
	if _u.mutation.McBoardIDCleared() {
		_spec.ClearField(proposal.FieldMcBoardID, field.TypeString)
	}
	if _u.mutation.MissionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MissionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Proposal{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{proposal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
