// Code generated by ent, DO NOT EDIT.

package trigger

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/codeready-toolchain/agentloop/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Trigger {
	return predicate.Trigger(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Trigger {
	return predicate.Trigger(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Trigger {
	return predicate.Trigger(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Trigger {
	return predicate.Trigger(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Trigger {
	return predicate.Trigger(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Trigger {
	return predicate.Trigger(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Trigger {
	return predicate.Trigger(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Trigger {
	return predicate.Trigger(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Trigger {
	return predicate.Trigger(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Trigger {
	return predicate.Trigger(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Trigger {
	return predicate.Trigger(sql.FieldContainsFold(FieldID, id))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldEQ(FieldProjectID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldEQ(FieldName, v))
}

// Enabled applies equality check predicate on the "enabled" field. It's identical to EnabledEQ.
func Enabled(v bool) predicate.Trigger {
	return predicate.Trigger(sql.FieldEQ(FieldEnabled, v))
}

// LastFiredAt applies equality check predicate on the "last_fired_at" field. It's identical to LastFiredAtEQ.
func LastFiredAt(v time.Time) predicate.Trigger {
	return predicate.Trigger(sql.FieldEQ(FieldLastFiredAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Trigger {
	return predicate.Trigger(sql.FieldEQ(FieldCreatedAt, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.Trigger {
	return predicate.Trigger(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.Trigger {
	return predicate.Trigger(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldContainsFold(FieldProjectID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Trigger {
	return predicate.Trigger(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Trigger {
	return predicate.Trigger(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Trigger {
	return predicate.Trigger(sql.FieldContainsFold(FieldName, v))
}

// EnabledEQ applies the EQ predicate on the "enabled" field.
func EnabledEQ(v bool) predicate.Trigger {
	return predicate.Trigger(sql.FieldEQ(FieldEnabled, v))
}

// EnabledNEQ applies the NEQ predicate on the "enabled" field.
func EnabledNEQ(v bool) predicate.Trigger {
	return predicate.Trigger(sql.FieldNEQ(FieldEnabled, v))
}

// LastFiredAtEQ applies the EQ predicate on the "last_fired_at" field.
func LastFiredAtEQ(v time.Time) predicate.Trigger {
	return predicate.Trigger(sql.FieldEQ(FieldLastFiredAt, v))
}

// LastFiredAtNEQ applies the NEQ predicate on the "last_fired_at" field.
func LastFiredAtNEQ(v time.Time) predicate.Trigger {
	return predicate.Trigger(sql.FieldNEQ(FieldLastFiredAt, v))
}

// LastFiredAtIn applies the In predicate on the "last_fired_at" field.
func LastFiredAtIn(vs ...time.Time) predicate.Trigger {
	return predicate.Trigger(sql.FieldIn(FieldLastFiredAt, vs...))
}

// LastFiredAtNotIn applies the NotIn predicate on the "last_fired_at" field.
func LastFiredAtNotIn(vs ...time.Time) predicate.Trigger {
	return predicate.Trigger(sql.FieldNotIn(FieldLastFiredAt, vs...))
}

// LastFiredAtGT applies the GT predicate on the "last_fired_at" field.
func LastFiredAtGT(v time.Time) predicate.Trigger {
	return predicate.Trigger(sql.FieldGT(FieldLastFiredAt, v))
}

// LastFiredAtGTE applies the GTE predicate on the "last_fired_at" field.
func LastFiredAtGTE(v time.Time) predicate.Trigger {
	return predicate.Trigger(sql.FieldGTE(FieldLastFiredAt, v))
}

// LastFiredAtLT applies the LT predicate on the "last_fired_at" field.
func LastFiredAtLT(v time.Time) predicate.Trigger {
	return predicate.Trigger(sql.FieldLT(FieldLastFiredAt, v))
}

// LastFiredAtLTE applies the LTE predicate on the "last_fired_at" field.
func LastFiredAtLTE(v time.Time) predicate.Trigger {
	return predicate.Trigger(sql.FieldLTE(FieldLastFiredAt, v))
}

// LastFiredAtIsNil applies the IsNil predicate on the "last_fired_at" field.
func LastFiredAtIsNil() predicate.Trigger {
	return predicate.Trigger(sql.FieldIsNull(FieldLastFiredAt))
}

// LastFiredAtNotNil applies the NotNil predicate on the "last_fired_at" field.
func LastFiredAtNotNil() predicate.Trigger {
	return predicate.Trigger(sql.FieldNotNull(FieldLastFiredAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Trigger {
	return predicate.Trigger(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Trigger {
	return predicate.Trigger(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Trigger {
	return predicate.Trigger(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Trigger {
	return predicate.Trigger(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Trigger {
	return predicate.Trigger(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Trigger {
	return predicate.Trigger(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Trigger {
	return predicate.Trigger(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Trigger {
	return predicate.Trigger(sql.FieldLTE(FieldCreatedAt, v))
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.Trigger {
	return predicate.Trigger(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.Trigger {
	return predicate.Trigger(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Trigger) predicate.Trigger {
	return predicate.Trigger(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Trigger) predicate.Trigger {
	return predicate.Trigger(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Trigger) predicate.Trigger {
	return predicate.Trigger(sql.NotPredicates(p))
}
