// Code generated by ent, DO NOT EDIT.

package proposal

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/codeready-toolchain/agentloop/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContainsFold(FieldID, id))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldAgentID, v))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldProjectID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldDescription, v))
}

// Rationale applies equality check predicate on the "rationale" field. It's identical to RationaleEQ.
func Rationale(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldRationale, v))
}

// AutoApprove applies equality check predicate on the "auto_approve" field. It's identical to AutoApproveEQ.
func AutoApprove(v bool) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldAutoApprove, v))
}

// ReviewedBy applies equality check predicate on the "reviewed_by" field. It's identical to ReviewedByEQ.
func ReviewedBy(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldReviewedBy, v))
}

// ReviewedAt applies equality check predicate on the "reviewed_at" field. It's identical to ReviewedAtEQ.
func ReviewedAt(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldReviewedAt, v))
}

// McTaskID applies equality check predicate on the "mc_task_id" field. It's identical to McTaskIDEQ.
func McTaskID(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldMcTaskID, v))
}

// McBoardID applies equality check predicate on the "mc_board_id" field. It's identical to McBoardIDEQ.
func McBoardID(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldMcBoardID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldCreatedAt, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContainsFold(FieldAgentID, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContainsFold(FieldProjectID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContainsFold(FieldDescription, v))
}

// RationaleEQ applies the EQ predicate on the "rationale" field.
func RationaleEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldRationale, v))
}

// RationaleNEQ applies the NEQ predicate on the "rationale" field.
func RationaleNEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldRationale, v))
}

// RationaleIn applies the In predicate on the "rationale" field.
func RationaleIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldRationale, vs...))
}

// RationaleNotIn applies the NotIn predicate on the "rationale" field.
func RationaleNotIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldRationale, vs...))
}

// RationaleGT applies the GT predicate on the "rationale" field.
func RationaleGT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldRationale, v))
}

// RationaleGTE applies the GTE predicate on the "rationale" field.
func RationaleGTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldRationale, v))
}

// RationaleLT applies the LT predicate on the "rationale" field.
func RationaleLT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldRationale, v))
}

// RationaleLTE applies the LTE predicate on the "rationale" field.
func RationaleLTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldRationale, v))
}

// RationaleContains applies the Contains predicate on the "rationale" field.
func RationaleContains(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContains(FieldRationale, v))
}

// RationaleHasPrefix applies the HasPrefix predicate on the "rationale" field.
func RationaleHasPrefix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasPrefix(FieldRationale, v))
}

// RationaleHasSuffix applies the HasSuffix predicate on the "rationale" field.
func RationaleHasSuffix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasSuffix(FieldRationale, v))
}

// RationaleEqualFold applies the EqualFold predicate on the "rationale" field.
func RationaleEqualFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEqualFold(FieldRationale, v))
}

// RationaleContainsFold applies the ContainsFold predicate on the "rationale" field.
func RationaleContainsFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContainsFold(FieldRationale, v))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v Priority) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v Priority) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...Priority) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...Priority) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldPriority, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldStatus, vs...))
}

// AutoApproveEQ applies the EQ predicate on the "auto_approve" field.
func AutoApproveEQ(v bool) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldAutoApprove, v))
}

// AutoApproveNEQ applies the NEQ predicate on the "auto_approve" field.
func AutoApproveNEQ(v bool) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldAutoApprove, v))
}

// ReviewedByEQ applies the EQ predicate on the "reviewed_by" field.
func ReviewedByEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldReviewedBy, v))
}

// ReviewedByNEQ applies the NEQ predicate on the "reviewed_by" field.
func ReviewedByNEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldReviewedBy, v))
}

// ReviewedByIn applies the In predicate on the "reviewed_by" field.
func ReviewedByIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldReviewedBy, vs...))
}

// ReviewedByNotIn applies the NotIn predicate on the "reviewed_by" field.
func ReviewedByNotIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldReviewedBy, vs...))
}

// ReviewedByGT applies the GT predicate on the "reviewed_by" field.
func ReviewedByGT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldReviewedBy, v))
}

// ReviewedByGTE applies the GTE predicate on the "reviewed_by" field.
func ReviewedByGTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldReviewedBy, v))
}

// ReviewedByLT applies the LT predicate on the "reviewed_by" field.
func ReviewedByLT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldReviewedBy, v))
}

// ReviewedByLTE applies the LTE predicate on the "reviewed_by" field.
func ReviewedByLTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldReviewedBy, v))
}

// ReviewedByContains applies the Contains predicate on the "reviewed_by" field.
func ReviewedByContains(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContains(FieldReviewedBy, v))
}

// ReviewedByHasPrefix applies the HasPrefix predicate on the "reviewed_by" field.
func ReviewedByHasPrefix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasPrefix(FieldReviewedBy, v))
}

// ReviewedByHasSuffix applies the HasSuffix predicate on the "reviewed_by" field.
func ReviewedByHasSuffix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasSuffix(FieldReviewedBy, v))
}

// ReviewedByIsNil applies the IsNil predicate on the "reviewed_by" field.
func ReviewedByIsNil() predicate.Proposal {
	return predicate.Proposal(sql.FieldIsNull(FieldReviewedBy))
}

// ReviewedByNotNil applies the NotNil predicate on the "reviewed_by" field.
func ReviewedByNotNil() predicate.Proposal {
	return predicate.Proposal(sql.FieldNotNull(FieldReviewedBy))
}

// ReviewedByEqualFold applies the EqualFold predicate on the "reviewed_by" field.
func ReviewedByEqualFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEqualFold(FieldReviewedBy, v))
}

// ReviewedByContainsFold applies the ContainsFold predicate on the "reviewed_by" field.
func ReviewedByContainsFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContainsFold(FieldReviewedBy, v))
}

// ReviewedAtEQ applies the EQ predicate on the "reviewed_at" field.
func ReviewedAtEQ(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldReviewedAt, v))
}

// ReviewedAtNEQ applies the NEQ predicate on the "reviewed_at" field.
func ReviewedAtNEQ(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldReviewedAt, v))
}

// ReviewedAtIn applies the In predicate on the "reviewed_at" field.
func ReviewedAtIn(vs ...time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldReviewedAt, vs...))
}

// ReviewedAtNotIn applies the NotIn predicate on the "reviewed_at" field.
func ReviewedAtNotIn(vs ...time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldReviewedAt, vs...))
}

// ReviewedAtGT applies the GT predicate on the "reviewed_at" field.
func ReviewedAtGT(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldReviewedAt, v))
}

// ReviewedAtGTE applies the GTE predicate on the "reviewed_at" field.
func ReviewedAtGTE(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldReviewedAt, v))
}

// ReviewedAtLT applies the LT predicate on the "reviewed_at" field.
func ReviewedAtLT(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldReviewedAt, v))
}

// ReviewedAtLTE applies the LTE predicate on the "reviewed_at" field.
func ReviewedAtLTE(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldReviewedAt, v))
}

// ReviewedAtIsNil applies the IsNil predicate on the "reviewed_at" field.
func ReviewedAtIsNil() predicate.Proposal {
	return predicate.Proposal(sql.FieldIsNull(FieldReviewedAt))
}

// ReviewedAtNotNil applies the NotNil predicate on the "reviewed_at" field.
func ReviewedAtNotNil() predicate.Proposal {
	return predicate.Proposal(sql.FieldNotNull(FieldReviewedAt))
}

// McTaskIDEQ applies the EQ predicate on the "mc_task_id" field.
func McTaskIDEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldMcTaskID, v))
}

// McTaskIDNEQ applies the NEQ predicate on the "mc_task_id" field.
func McTaskIDNEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldMcTaskID, v))
}

// McTaskIDIn applies the In predicate on the "mc_task_id" field.
func McTaskIDIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldMcTaskID, vs...))
}

// McTaskIDNotIn applies the NotIn predicate on the "mc_task_id" field.
func McTaskIDNotIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldMcTaskID, vs...))
}

// McTaskIDGT applies the GT predicate on the "mc_task_id" field.
func McTaskIDGT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldMcTaskID, v))
}

// McTaskIDGTE applies the GTE predicate on the "mc_task_id" field.
func McTaskIDGTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldMcTaskID, v))
}

// McTaskIDLT applies the LT predicate on the "mc_task_id" field.
func McTaskIDLT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldMcTaskID, v))
}

// McTaskIDLTE applies the LTE predicate on the "mc_task_id" field.
func McTaskIDLTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldMcTaskID, v))
}

// McTaskIDContains applies the Contains predicate on the "mc_task_id" field.
func McTaskIDContains(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContains(FieldMcTaskID, v))
}

// McTaskIDHasPrefix applies the HasPrefix predicate on the "mc_task_id" field.
func McTaskIDHasPrefix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasPrefix(FieldMcTaskID, v))
}

// McTaskIDHasSuffix applies the HasSuffix predicate on the "mc_task_id" field.
func McTaskIDHasSuffix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasSuffix(FieldMcTaskID, v))
}

// McTaskIDIsNil applies the IsNil predicate on the "mc_task_id" field.
func McTaskIDIsNil() predicate.Proposal {
	return predicate.Proposal(sql.FieldIsNull(FieldMcTaskID))
}

// McTaskIDNotNil applies the NotNil predicate on the "mc_task_id" field.
func McTaskIDNotNil() predicate.Proposal {
	return predicate.Proposal(sql.FieldNotNull(FieldMcTaskID))
}

// McTaskIDEqualFold applies the EqualFold predicate on the "mc_task_id" field.
func McTaskIDEqualFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEqualFold(FieldMcTaskID, v))
}

// McTaskIDContainsFold applies the ContainsFold predicate on the "mc_task_id" field.
func McTaskIDContainsFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContainsFold(FieldMcTaskID, v))
}

// McBoardIDEQ applies the EQ predicate on the "mc_board_id" field.
func McBoardIDEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldMcBoardID, v))
}

// McBoardIDNEQ applies the NEQ predicate on the "mc_board_id" field.
func McBoardIDNEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldMcBoardID, v))
}

// McBoardIDIn applies the In predicate on the "mc_board_id" field.
func McBoardIDIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldMcBoardID, vs...))
}

// McBoardIDNotIn applies the NotIn predicate on the "mc_board_id" field.
func McBoardIDNotIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldMcBoardID, vs...))
}

// McBoardIDGT applies the GT predicate on the "mc_board_id" field.
func McBoardIDGT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldMcBoardID, v))
}

// McBoardIDGTE applies the GTE predicate on the "mc_board_id" field.
func McBoardIDGTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldMcBoardID, v))
}

// McBoardIDLT applies the LT predicate on the "mc_board_id" field.
func McBoardIDLT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldMcBoardID, v))
}

// McBoardIDLTE applies the LTE predicate on the "mc_board_id" field.
func McBoardIDLTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldMcBoardID, v))
}

// McBoardIDContains applies the Contains predicate on the "mc_board_id" field.
func McBoardIDContains(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContains(FieldMcBoardID, v))
}

// McBoardIDHasPrefix applies the HasPrefix predicate on the "mc_board_id" field.
func McBoardIDHasPrefix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasPrefix(FieldMcBoardID, v))
}

// McBoardIDHasSuffix applies the HasSuffix predicate on the "mc_board_id" field.
func McBoardIDHasSuffix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasSuffix(FieldMcBoardID, v))
}

// McBoardIDIsNil applies the IsNil predicate on the "mc_board_id" field.
func McBoardIDIsNil() predicate.Proposal {
	return predicate.Proposal(sql.FieldIsNull(FieldMcBoardID))
}

// McBoardIDNotNil applies the NotNil predicate on the "mc_board_id" field.
func McBoardIDNotNil() predicate.Proposal {
	return predicate.Proposal(sql.FieldNotNull(FieldMcBoardID))
}

// McBoardIDEqualFold applies the EqualFold predicate on the "mc_board_id" field.
func McBoardIDEqualFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEqualFold(FieldMcBoardID, v))
}

// McBoardIDContainsFold applies the ContainsFold predicate on the "mc_board_id" field.
func McBoardIDContainsFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContainsFold(FieldMcBoardID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldCreatedAt, v))
}

// HasAgent applies the HasEdge predicate on the "agent" edge.
func HasAgent() predicate.Proposal {
	return predicate.Proposal(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AgentTable, AgentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAgentWith applies the HasEdge predicate on the "agent" edge with a given conditions (other predicates).
func HasAgentWith(preds ...predicate.Agent) predicate.Proposal {
	return predicate.Proposal(func(s *sql.Selector) {
		step := newAgentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.Proposal {
	return predicate.Proposal(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.Proposal {
	return predicate.Proposal(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMission applies the HasEdge predicate on the "mission" edge.
func HasMission() predicate.Proposal {
	return predicate.Proposal(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, MissionTable, MissionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMissionWith applies the HasEdge predicate on the "mission" edge with a given conditions (other predicates).
func HasMissionWith(preds ...predicate.Mission) predicate.Proposal {
	return predicate.Proposal(func(s *sql.Selector) {
		step := newMissionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Proposal) predicate.Proposal {
	return predicate.Proposal(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Proposal) predicate.Proposal {
	return predicate.Proposal(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Proposal) predicate.Proposal {
	return predicate.Proposal(sql.NotPredicates(p))
}
