// Code generated by ent, DO NOT EDIT.

package projectcontext

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/codeready-toolchain/agentloop/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldContainsFold(FieldID, id))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldEQ(FieldProjectID, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldEQ(FieldCategory, v))
}

// Key applies equality check predicate on the "key" field. It's identical to KeyEQ.
func Key(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldEQ(FieldKey, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldEQ(FieldContent, v))
}

// SourceAgentID applies equality check predicate on the "source_agent_id" field. It's identical to SourceAgentIDEQ.
func SourceAgentID(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldEQ(FieldSourceAgentID, v))
}

// SourceStepID applies equality check predicate on the "source_step_id" field. It's identical to SourceStepIDEQ.
func SourceStepID(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldEQ(FieldSourceStepID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldEQ(FieldUpdatedAt, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldContainsFold(FieldProjectID, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldContainsFold(FieldCategory, v))
}

// KeyEQ applies the EQ predicate on the "key" field.
func KeyEQ(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldEQ(FieldKey, v))
}

// KeyNEQ applies the NEQ predicate on the "key" field.
func KeyNEQ(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldNEQ(FieldKey, v))
}

// KeyIn applies the In predicate on the "key" field.
func KeyIn(vs ...string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldIn(FieldKey, vs...))
}

// KeyNotIn applies the NotIn predicate on the "key" field.
func KeyNotIn(vs ...string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldNotIn(FieldKey, vs...))
}

// KeyGT applies the GT predicate on the "key" field.
func KeyGT(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldGT(FieldKey, v))
}

// KeyGTE applies the GTE predicate on the "key" field.
func KeyGTE(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldGTE(FieldKey, v))
}

// KeyLT applies the LT predicate on the "key" field.
func KeyLT(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldLT(FieldKey, v))
}

// KeyLTE applies the LTE predicate on the "key" field.
func KeyLTE(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldLTE(FieldKey, v))
}

// KeyContains applies the Contains predicate on the "key" field.
func KeyContains(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldContains(FieldKey, v))
}

// KeyHasPrefix applies the HasPrefix predicate on the "key" field.
func KeyHasPrefix(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldHasPrefix(FieldKey, v))
}

// KeyHasSuffix applies the HasSuffix predicate on the "key" field.
func KeyHasSuffix(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldHasSuffix(FieldKey, v))
}

// KeyEqualFold applies the EqualFold predicate on the "key" field.
func KeyEqualFold(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldEqualFold(FieldKey, v))
}

// KeyContainsFold applies the ContainsFold predicate on the "key" field.
func KeyContainsFold(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldContainsFold(FieldKey, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldContainsFold(FieldContent, v))
}

// SourceAgentIDEQ applies the EQ predicate on the "source_agent_id" field.
func SourceAgentIDEQ(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldEQ(FieldSourceAgentID, v))
}

// SourceAgentIDNEQ applies the NEQ predicate on the "source_agent_id" field.
func SourceAgentIDNEQ(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldNEQ(FieldSourceAgentID, v))
}

// SourceAgentIDIn applies the In predicate on the "source_agent_id" field.
func SourceAgentIDIn(vs ...string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldIn(FieldSourceAgentID, vs...))
}

// SourceAgentIDNotIn applies the NotIn predicate on the "source_agent_id" field.
func SourceAgentIDNotIn(vs ...string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldNotIn(FieldSourceAgentID, vs...))
}

// SourceAgentIDGT applies the GT predicate on the "source_agent_id" field.
func SourceAgentIDGT(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldGT(FieldSourceAgentID, v))
}

// SourceAgentIDGTE applies the GTE predicate on the "source_agent_id" field.
func SourceAgentIDGTE(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldGTE(FieldSourceAgentID, v))
}

// SourceAgentIDLT applies the LT predicate on the "source_agent_id" field.
func SourceAgentIDLT(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldLT(FieldSourceAgentID, v))
}

// SourceAgentIDLTE applies the LTE predicate on the "source_agent_id" field.
func SourceAgentIDLTE(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldLTE(FieldSourceAgentID, v))
}

// SourceAgentIDContains applies the Contains predicate on the "source_agent_id" field.
func SourceAgentIDContains(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldContains(FieldSourceAgentID, v))
}

// SourceAgentIDHasPrefix applies the HasPrefix predicate on the "source_agent_id" field.
func SourceAgentIDHasPrefix(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldHasPrefix(FieldSourceAgentID, v))
}

// SourceAgentIDHasSuffix applies the HasSuffix predicate on the "source_agent_id" field.
func SourceAgentIDHasSuffix(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldHasSuffix(FieldSourceAgentID, v))
}

// SourceAgentIDIsNil applies the IsNil predicate on the "source_agent_id" field.
func SourceAgentIDIsNil() predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldIsNull(FieldSourceAgentID))
}

// SourceAgentIDNotNil applies the NotNil predicate on the "source_agent_id" field.
func SourceAgentIDNotNil() predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldNotNull(FieldSourceAgentID))
}

// SourceAgentIDEqualFold applies the EqualFold predicate on the "source_agent_id" field.
func SourceAgentIDEqualFold(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldEqualFold(FieldSourceAgentID, v))
}

// SourceAgentIDContainsFold applies the ContainsFold predicate on the "source_agent_id" field.
func SourceAgentIDContainsFold(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldContainsFold(FieldSourceAgentID, v))
}

// SourceStepIDEQ applies the EQ predicate on the "source_step_id" field.
func SourceStepIDEQ(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldEQ(FieldSourceStepID, v))
}

// SourceStepIDNEQ applies the NEQ predicate on the "source_step_id" field.
func SourceStepIDNEQ(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldNEQ(FieldSourceStepID, v))
}

// SourceStepIDIn applies the In predicate on the "source_step_id" field.
func SourceStepIDIn(vs ...string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldIn(FieldSourceStepID, vs...))
}

// SourceStepIDNotIn applies the NotIn predicate on the "source_step_id" field.
func SourceStepIDNotIn(vs ...string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldNotIn(FieldSourceStepID, vs...))
}

// SourceStepIDGT applies the GT predicate on the "source_step_id" field.
func SourceStepIDGT(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldGT(FieldSourceStepID, v))
}

// SourceStepIDGTE applies the GTE predicate on the "source_step_id" field.
func SourceStepIDGTE(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldGTE(FieldSourceStepID, v))
}

// SourceStepIDLT applies the LT predicate on the "source_step_id" field.
func SourceStepIDLT(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldLT(FieldSourceStepID, v))
}

// SourceStepIDLTE applies the LTE predicate on the "source_step_id" field.
func SourceStepIDLTE(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldLTE(FieldSourceStepID, v))
}

// SourceStepIDContains applies the Contains predicate on the "source_step_id" field.
func SourceStepIDContains(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldContains(FieldSourceStepID, v))
}

// SourceStepIDHasPrefix applies the HasPrefix predicate on the "source_step_id" field.
func SourceStepIDHasPrefix(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldHasPrefix(FieldSourceStepID, v))
}

// SourceStepIDHasSuffix applies the HasSuffix predicate on the "source_step_id" field.
func SourceStepIDHasSuffix(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldHasSuffix(FieldSourceStepID, v))
}

// SourceStepIDIsNil applies the IsNil predicate on the "source_step_id" field.
func SourceStepIDIsNil() predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldIsNull(FieldSourceStepID))
}

// SourceStepIDNotNil applies the NotNil predicate on the "source_step_id" field.
func SourceStepIDNotNil() predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldNotNull(FieldSourceStepID))
}

// SourceStepIDEqualFold applies the EqualFold predicate on the "source_step_id" field.
func SourceStepIDEqualFold(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldEqualFold(FieldSourceStepID, v))
}

// SourceStepIDContainsFold applies the ContainsFold predicate on the "source_step_id" field.
func SourceStepIDContainsFold(v string) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldContainsFold(FieldSourceStepID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ProjectContext {
	return predicate.ProjectContext(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.ProjectContext {
	return predicate.ProjectContext(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.ProjectContext {
	return predicate.ProjectContext(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProjectContext) predicate.ProjectContext {
	return predicate.ProjectContext(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProjectContext) predicate.ProjectContext {
	return predicate.ProjectContext(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProjectContext) predicate.ProjectContext {
	return predicate.ProjectContext(sql.NotPredicates(p))
}
