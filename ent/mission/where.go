// Code generated by ent, DO NOT EDIT.

package mission

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/codeready-toolchain/agentloop/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Mission {
	return predicate.Mission(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Mission {
	return predicate.Mission(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Mission {
	return predicate.Mission(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Mission {
	return predicate.Mission(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Mission {
	return predicate.Mission(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Mission {
	return predicate.Mission(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Mission {
	return predicate.Mission(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Mission {
	return predicate.Mission(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Mission {
	return predicate.Mission(sql.FieldContainsFold(FieldID, id))
}

// ProposalID applies equality check predicate on the "proposal_id" field. It's identical to ProposalIDEQ.
func ProposalID(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldProposalID, v))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldProjectID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldDescription, v))
}

// AssignedAgentID applies equality check predicate on the "assigned_agent_id" field. It's identical to AssignedAgentIDEQ.
func AssignedAgentID(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldAssignedAgentID, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldCompletedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldCreatedAt, v))
}

// ProposalIDEQ applies the EQ predicate on the "proposal_id" field.
func ProposalIDEQ(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldProposalID, v))
}

// ProposalIDNEQ applies the NEQ predicate on the "proposal_id" field.
func ProposalIDNEQ(v string) predicate.Mission {
	return predicate.Mission(sql.FieldNEQ(FieldProposalID, v))
}

// ProposalIDIn applies the In predicate on the "proposal_id" field.
func ProposalIDIn(vs ...string) predicate.Mission {
	return predicate.Mission(sql.FieldIn(FieldProposalID, vs...))
}

// ProposalIDNotIn applies the NotIn predicate on the "proposal_id" field.
func ProposalIDNotIn(vs ...string) predicate.Mission {
	return predicate.Mission(sql.FieldNotIn(FieldProposalID, vs...))
}

// ProposalIDGT applies the GT predicate on the "proposal_id" field.
func ProposalIDGT(v string) predicate.Mission {
	return predicate.Mission(sql.FieldGT(FieldProposalID, v))
}

// ProposalIDGTE applies the GTE predicate on the "proposal_id" field.
func ProposalIDGTE(v string) predicate.Mission {
	return predicate.Mission(sql.FieldGTE(FieldProposalID, v))
}

// ProposalIDLT applies the LT predicate on the "proposal_id" field.
func ProposalIDLT(v string) predicate.Mission {
	return predicate.Mission(sql.FieldLT(FieldProposalID, v))
}

// ProposalIDLTE applies the LTE predicate on the "proposal_id" field.
func ProposalIDLTE(v string) predicate.Mission {
	return predicate.Mission(sql.FieldLTE(FieldProposalID, v))
}

// ProposalIDContains applies the Contains predicate on the "proposal_id" field.
func ProposalIDContains(v string) predicate.Mission {
	return predicate.Mission(sql.FieldContains(FieldProposalID, v))
}

// ProposalIDHasPrefix applies the HasPrefix predicate on the "proposal_id" field.
func ProposalIDHasPrefix(v string) predicate.Mission {
	return predicate.Mission(sql.FieldHasPrefix(FieldProposalID, v))
}

// ProposalIDHasSuffix applies the HasSuffix predicate on the "proposal_id" field.
func ProposalIDHasSuffix(v string) predicate.Mission {
	return predicate.Mission(sql.FieldHasSuffix(FieldProposalID, v))
}

// ProposalIDEqualFold applies the EqualFold predicate on the "proposal_id" field.
func ProposalIDEqualFold(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEqualFold(FieldProposalID, v))
}

// ProposalIDContainsFold applies the ContainsFold predicate on the "proposal_id" field.
func ProposalIDContainsFold(v string) predicate.Mission {
	return predicate.Mission(sql.FieldContainsFold(FieldProposalID, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.Mission {
	return predicate.Mission(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.Mission {
	return predicate.Mission(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.Mission {
	return predicate.Mission(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.Mission {
	return predicate.Mission(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.Mission {
	return predicate.Mission(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.Mission {
	return predicate.Mission(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.Mission {
	return predicate.Mission(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.Mission {
	return predicate.Mission(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.Mission {
	return predicate.Mission(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.Mission {
	return predicate.Mission(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.Mission {
	return predicate.Mission(sql.FieldContainsFold(FieldProjectID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Mission {
	return predicate.Mission(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Mission {
	return predicate.Mission(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Mission {
	return predicate.Mission(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Mission {
	return predicate.Mission(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Mission {
	return predicate.Mission(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Mission {
	return predicate.Mission(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Mission {
	return predicate.Mission(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Mission {
	return predicate.Mission(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Mission {
	return predicate.Mission(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Mission {
	return predicate.Mission(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Mission {
	return predicate.Mission(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Mission {
	return predicate.Mission(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Mission {
	return predicate.Mission(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Mission {
	return predicate.Mission(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Mission {
	return predicate.Mission(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Mission {
	return predicate.Mission(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Mission {
	return predicate.Mission(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Mission {
	return predicate.Mission(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Mission {
	return predicate.Mission(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Mission {
	return predicate.Mission(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Mission {
	return predicate.Mission(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Mission {
	return predicate.Mission(sql.FieldContainsFold(FieldDescription, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Mission {
	return predicate.Mission(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Mission {
	return predicate.Mission(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Mission {
	return predicate.Mission(sql.FieldNotIn(FieldStatus, vs...))
}

// AssignedAgentIDEQ applies the EQ predicate on the "assigned_agent_id" field.
func AssignedAgentIDEQ(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldAssignedAgentID, v))
}

// AssignedAgentIDNEQ applies the NEQ predicate on the "assigned_agent_id" field.
func AssignedAgentIDNEQ(v string) predicate.Mission {
	return predicate.Mission(sql.FieldNEQ(FieldAssignedAgentID, v))
}

// AssignedAgentIDIn applies the In predicate on the "assigned_agent_id" field.
func AssignedAgentIDIn(vs ...string) predicate.Mission {
	return predicate.Mission(sql.FieldIn(FieldAssignedAgentID, vs...))
}

// AssignedAgentIDNotIn applies the NotIn predicate on the "assigned_agent_id" field.
func AssignedAgentIDNotIn(vs ...string) predicate.Mission {
	return predicate.Mission(sql.FieldNotIn(FieldAssignedAgentID, vs...))
}

// AssignedAgentIDGT applies the GT predicate on the "assigned_agent_id" field.
func AssignedAgentIDGT(v string) predicate.Mission {
	return predicate.Mission(sql.FieldGT(FieldAssignedAgentID, v))
}

// AssignedAgentIDGTE applies the GTE predicate on the "assigned_agent_id" field.
func AssignedAgentIDGTE(v string) predicate.Mission {
	return predicate.Mission(sql.FieldGTE(FieldAssignedAgentID, v))
}

// AssignedAgentIDLT applies the LT predicate on the "assigned_agent_id" field.
func AssignedAgentIDLT(v string) predicate.Mission {
	return predicate.Mission(sql.FieldLT(FieldAssignedAgentID, v))
}

// AssignedAgentIDLTE applies the LTE predicate on the "assigned_agent_id" field.
func AssignedAgentIDLTE(v string) predicate.Mission {
	return predicate.Mission(sql.FieldLTE(FieldAssignedAgentID, v))
}

// AssignedAgentIDContains applies the Contains predicate on the "assigned_agent_id" field.
func AssignedAgentIDContains(v string) predicate.Mission {
	return predicate.Mission(sql.FieldContains(FieldAssignedAgentID, v))
}

// AssignedAgentIDHasPrefix applies the HasPrefix predicate on the "assigned_agent_id" field.
func AssignedAgentIDHasPrefix(v string) predicate.Mission {
	return predicate.Mission(sql.FieldHasPrefix(FieldAssignedAgentID, v))
}

// AssignedAgentIDHasSuffix applies the HasSuffix predicate on the "assigned_agent_id" field.
func AssignedAgentIDHasSuffix(v string) predicate.Mission {
	return predicate.Mission(sql.FieldHasSuffix(FieldAssignedAgentID, v))
}

// AssignedAgentIDIsNil applies the IsNil predicate on the "assigned_agent_id" field.
func AssignedAgentIDIsNil() predicate.Mission {
	return predicate.Mission(sql.FieldIsNull(FieldAssignedAgentID))
}

// AssignedAgentIDNotNil applies the NotNil predicate on the "assigned_agent_id" field.
func AssignedAgentIDNotNil() predicate.Mission {
	return predicate.Mission(sql.FieldNotNull(FieldAssignedAgentID))
}

// AssignedAgentIDEqualFold applies the EqualFold predicate on the "assigned_agent_id" field.
func AssignedAgentIDEqualFold(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEqualFold(FieldAssignedAgentID, v))
}

// AssignedAgentIDContainsFold applies the ContainsFold predicate on the "assigned_agent_id" field.
func AssignedAgentIDContainsFold(v string) predicate.Mission {
	return predicate.Mission(sql.FieldContainsFold(FieldAssignedAgentID, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Mission {
	return predicate.Mission(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Mission {
	return predicate.Mission(sql.FieldNotNull(FieldCompletedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldLTE(FieldCreatedAt, v))
}

// HasProposal applies the HasEdge predicate on the "proposal" edge.
func HasProposal() predicate.Mission {
	return predicate.Mission(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, ProposalTable, ProposalColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProposalWith applies the HasEdge predicate on the "proposal" edge with a given conditions (other predicates).
func HasProposalWith(preds ...predicate.Proposal) predicate.Mission {
	return predicate.Mission(func(s *sql.Selector) {
		step := newProposalStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.Mission {
	return predicate.Mission(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.Mission {
	return predicate.Mission(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAssignedAgent applies the HasEdge predicate on the "assigned_agent" edge.
func HasAssignedAgent() predicate.Mission {
	return predicate.Mission(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AssignedAgentTable, AssignedAgentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAssignedAgentWith applies the HasEdge predicate on the "assigned_agent" edge with a given conditions (other predicates).
func HasAssignedAgentWith(preds ...predicate.Agent) predicate.Mission {
	return predicate.Mission(func(s *sql.Selector) {
		step := newAssignedAgentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSteps applies the HasEdge predicate on the "steps" edge.
func HasSteps() predicate.Mission {
	return predicate.Mission(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StepsTable, StepsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStepsWith applies the HasEdge predicate on the "steps" edge with a given conditions (other predicates).
func HasStepsWith(preds ...predicate.Step) predicate.Mission {
	return predicate.Mission(func(s *sql.Selector) {
		step := newStepsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Mission) predicate.Mission {
	return predicate.Mission(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Mission) predicate.Mission {
	return predicate.Mission(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Mission) predicate.Mission {
	return predicate.Mission(sql.NotPredicates(p))
}
