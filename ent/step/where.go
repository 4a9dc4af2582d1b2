// Code generated by ent, DO NOT EDIT.

package step

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/codeready-toolchain/agentloop/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Step {
	return predicate.Step(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Step {
	return predicate.Step(sql.FieldContainsFold(FieldID, id))
}

// MissionID applies equality check predicate on the "mission_id" field. It's identical to MissionIDEQ.
func MissionID(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldMissionID, v))
}

// OrderIndex applies equality check predicate on the "order_index" field. It's identical to OrderIndexEQ.
func OrderIndex(v int) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldOrderIndex, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldDescription, v))
}

// ClaimedByAgentID applies equality check predicate on the "claimed_by_agent_id" field. It's identical to ClaimedByAgentIDEQ.
func ClaimedByAgentID(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldClaimedByAgentID, v))
}

// Output applies equality check predicate on the "output" field. It's identical to OutputEQ.
func Output(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldOutput, v))
}

// Error applies equality check predicate on the "error" field. It's identical to ErrorEQ.
func Error(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldError, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldCompletedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldCreatedAt, v))
}

// MissionIDEQ applies the EQ predicate on the "mission_id" field.
func MissionIDEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldMissionID, v))
}

// MissionIDNEQ applies the NEQ predicate on the "mission_id" field.
func MissionIDNEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldMissionID, v))
}

// MissionIDIn applies the In predicate on the "mission_id" field.
func MissionIDIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldMissionID, vs...))
}

// MissionIDNotIn applies the NotIn predicate on the "mission_id" field.
func MissionIDNotIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldMissionID, vs...))
}

// MissionIDGT applies the GT predicate on the "mission_id" field.
func MissionIDGT(v string) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldMissionID, v))
}

// MissionIDGTE applies the GTE predicate on the "mission_id" field.
func MissionIDGTE(v string) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldMissionID, v))
}

// MissionIDLT applies the LT predicate on the "mission_id" field.
func MissionIDLT(v string) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldMissionID, v))
}

// MissionIDLTE applies the LTE predicate on the "mission_id" field.
func MissionIDLTE(v string) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldMissionID, v))
}

// MissionIDContains applies the Contains predicate on the "mission_id" field.
func MissionIDContains(v string) predicate.Step {
	return predicate.Step(sql.FieldContains(FieldMissionID, v))
}

// MissionIDHasPrefix applies the HasPrefix predicate on the "mission_id" field.
func MissionIDHasPrefix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasPrefix(FieldMissionID, v))
}

// MissionIDHasSuffix applies the HasSuffix predicate on the "mission_id" field.
func MissionIDHasSuffix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasSuffix(FieldMissionID, v))
}

// MissionIDEqualFold applies the EqualFold predicate on the "mission_id" field.
func MissionIDEqualFold(v string) predicate.Step {
	return predicate.Step(sql.FieldEqualFold(FieldMissionID, v))
}

// MissionIDContainsFold applies the ContainsFold predicate on the "mission_id" field.
func MissionIDContainsFold(v string) predicate.Step {
	return predicate.Step(sql.FieldContainsFold(FieldMissionID, v))
}

// OrderIndexEQ applies the EQ predicate on the "order_index" field.
func OrderIndexEQ(v int) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldOrderIndex, v))
}

// OrderIndexNEQ applies the NEQ predicate on the "order_index" field.
func OrderIndexNEQ(v int) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldOrderIndex, v))
}

// OrderIndexIn applies the In predicate on the "order_index" field.
func OrderIndexIn(vs ...int) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldOrderIndex, vs...))
}

// OrderIndexNotIn applies the NotIn predicate on the "order_index" field.
func OrderIndexNotIn(vs ...int) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldOrderIndex, vs...))
}

// OrderIndexGT applies the GT predicate on the "order_index" field.
func OrderIndexGT(v int) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldOrderIndex, v))
}

// OrderIndexGTE applies the GTE predicate on the "order_index" field.
func OrderIndexGTE(v int) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldOrderIndex, v))
}

// OrderIndexLT applies the LT predicate on the "order_index" field.
func OrderIndexLT(v int) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldOrderIndex, v))
}

// OrderIndexLTE applies the LTE predicate on the "order_index" field.
func OrderIndexLTE(v int) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldOrderIndex, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Step {
	return predicate.Step(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Step {
	return predicate.Step(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Step {
	return predicate.Step(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Step {
	return predicate.Step(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Step {
	return predicate.Step(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Step {
	return predicate.Step(sql.FieldContainsFold(FieldDescription, v))
}

// StepTypeEQ applies the EQ predicate on the "step_type" field.
func StepTypeEQ(v StepType) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldStepType, v))
}

// StepTypeNEQ applies the NEQ predicate on the "step_type" field.
func StepTypeNEQ(v StepType) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldStepType, v))
}

// StepTypeIn applies the In predicate on the "step_type" field.
func StepTypeIn(vs ...StepType) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldStepType, vs...))
}

// StepTypeNotIn applies the NotIn predicate on the "step_type" field.
func StepTypeNotIn(vs ...StepType) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldStepType, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldStatus, vs...))
}

// ClaimedByAgentIDEQ applies the EQ predicate on the "claimed_by_agent_id" field.
func ClaimedByAgentIDEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldClaimedByAgentID, v))
}

// ClaimedByAgentIDNEQ applies the NEQ predicate on the "claimed_by_agent_id" field.
func ClaimedByAgentIDNEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldClaimedByAgentID, v))
}

// ClaimedByAgentIDIn applies the In predicate on the "claimed_by_agent_id" field.
func ClaimedByAgentIDIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldClaimedByAgentID, vs...))
}

// ClaimedByAgentIDNotIn applies the NotIn predicate on the "claimed_by_agent_id" field.
func ClaimedByAgentIDNotIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldClaimedByAgentID, vs...))
}

// ClaimedByAgentIDGT applies the GT predicate on the "claimed_by_agent_id" field.
func ClaimedByAgentIDGT(v string) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldClaimedByAgentID, v))
}

// ClaimedByAgentIDGTE applies the GTE predicate on the "claimed_by_agent_id" field.
func ClaimedByAgentIDGTE(v string) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldClaimedByAgentID, v))
}

// ClaimedByAgentIDLT applies the LT predicate on the "claimed_by_agent_id" field.
func ClaimedByAgentIDLT(v string) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldClaimedByAgentID, v))
}

// ClaimedByAgentIDLTE applies the LTE predicate on the "claimed_by_agent_id" field.
func ClaimedByAgentIDLTE(v string) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldClaimedByAgentID, v))
}

// ClaimedByAgentIDContains applies the Contains predicate on the "claimed_by_agent_id" field.
func ClaimedByAgentIDContains(v string) predicate.Step {
	return predicate.Step(sql.FieldContains(FieldClaimedByAgentID, v))
}

// ClaimedByAgentIDHasPrefix applies the HasPrefix predicate on the "claimed_by_agent_id" field.
func ClaimedByAgentIDHasPrefix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasPrefix(FieldClaimedByAgentID, v))
}

// ClaimedByAgentIDHasSuffix applies the HasSuffix predicate on the "claimed_by_agent_id" field.
func ClaimedByAgentIDHasSuffix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasSuffix(FieldClaimedByAgentID, v))
}

// ClaimedByAgentIDIsNil applies the IsNil predicate on the "claimed_by_agent_id" field.
func ClaimedByAgentIDIsNil() predicate.Step {
	return predicate.Step(sql.FieldIsNull(FieldClaimedByAgentID))
}

// ClaimedByAgentIDNotNil applies the NotNil predicate on the "claimed_by_agent_id" field.
func ClaimedByAgentIDNotNil() predicate.Step {
	return predicate.Step(sql.FieldNotNull(FieldClaimedByAgentID))
}

// ClaimedByAgentIDEqualFold applies the EqualFold predicate on the "claimed_by_agent_id" field.
func ClaimedByAgentIDEqualFold(v string) predicate.Step {
	return predicate.Step(sql.FieldEqualFold(FieldClaimedByAgentID, v))
}

// ClaimedByAgentIDContainsFold applies the ContainsFold predicate on the "claimed_by_agent_id" field.
func ClaimedByAgentIDContainsFold(v string) predicate.Step {
	return predicate.Step(sql.FieldContainsFold(FieldClaimedByAgentID, v))
}

// OutputEQ applies the EQ predicate on the "output" field.
func OutputEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldOutput, v))
}

// OutputNEQ applies the NEQ predicate on the "output" field.
func OutputNEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldOutput, v))
}

// OutputIn applies the In predicate on the "output" field.
func OutputIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldOutput, vs...))
}

// OutputNotIn applies the NotIn predicate on the "output" field.
func OutputNotIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldOutput, vs...))
}

// OutputGT applies the GT predicate on the "output" field.
func OutputGT(v string) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldOutput, v))
}

// OutputGTE applies the GTE predicate on the "output" field.
func OutputGTE(v string) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldOutput, v))
}

// OutputLT applies the LT predicate on the "output" field.
func OutputLT(v string) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldOutput, v))
}

// OutputLTE applies the LTE predicate on the "output" field.
func OutputLTE(v string) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldOutput, v))
}

// OutputContains applies the Contains predicate on the "output" field.
func OutputContains(v string) predicate.Step {
	return predicate.Step(sql.FieldContains(FieldOutput, v))
}

// OutputHasPrefix applies the HasPrefix predicate on the "output" field.
func OutputHasPrefix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasPrefix(FieldOutput, v))
}

// OutputHasSuffix applies the HasSuffix predicate on the "output" field.
func OutputHasSuffix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasSuffix(FieldOutput, v))
}

// OutputIsNil applies the IsNil predicate on the "output" field.
func OutputIsNil() predicate.Step {
	return predicate.Step(sql.FieldIsNull(FieldOutput))
}

// OutputNotNil applies the NotNil predicate on the "output" field.
func OutputNotNil() predicate.Step {
	return predicate.Step(sql.FieldNotNull(FieldOutput))
}

// OutputEqualFold applies the EqualFold predicate on the "output" field.
func OutputEqualFold(v string) predicate.Step {
	return predicate.Step(sql.FieldEqualFold(FieldOutput, v))
}

// OutputContainsFold applies the ContainsFold predicate on the "output" field.
func OutputContainsFold(v string) predicate.Step {
	return predicate.Step(sql.FieldContainsFold(FieldOutput, v))
}

// ErrorEQ applies the EQ predicate on the "error" field.
func ErrorEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldError, v))
}

// ErrorNEQ applies the NEQ predicate on the "error" field.
func ErrorNEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldError, v))
}

// ErrorIn applies the In predicate on the "error" field.
func ErrorIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldError, vs...))
}

// ErrorNotIn applies the NotIn predicate on the "error" field.
func ErrorNotIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldError, vs...))
}

// ErrorGT applies the GT predicate on the "error" field.
func ErrorGT(v string) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldError, v))
}

// ErrorGTE applies the GTE predicate on the "error" field.
func ErrorGTE(v string) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldError, v))
}

// ErrorLT applies the LT predicate on the "error" field.
func ErrorLT(v string) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldError, v))
}

// ErrorLTE applies the LTE predicate on the "error" field.
func ErrorLTE(v string) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldError, v))
}

// ErrorContains applies the Contains predicate on the "error" field.
func ErrorContains(v string) predicate.Step {
	return predicate.Step(sql.FieldContains(FieldError, v))
}

// ErrorHasPrefix applies the HasPrefix predicate on the "error" field.
func ErrorHasPrefix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasPrefix(FieldError, v))
}

// ErrorHasSuffix applies the HasSuffix predicate on the "error" field.
func ErrorHasSuffix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasSuffix(FieldError, v))
}

// ErrorIsNil applies the IsNil predicate on the "error" field.
func ErrorIsNil() predicate.Step {
	return predicate.Step(sql.FieldIsNull(FieldError))
}

// ErrorNotNil applies the NotNil predicate on the "error" field.
func ErrorNotNil() predicate.Step {
	return predicate.Step(sql.FieldNotNull(FieldError))
}

// ErrorEqualFold applies the EqualFold predicate on the "error" field.
func ErrorEqualFold(v string) predicate.Step {
	return predicate.Step(sql.FieldEqualFold(FieldError, v))
}

// ErrorContainsFold applies the ContainsFold predicate on the "error" field.
func ErrorContainsFold(v string) predicate.Step {
	return predicate.Step(sql.FieldContainsFold(FieldError, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Step {
	return predicate.Step(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Step {
	return predicate.Step(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Step {
	return predicate.Step(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Step {
	return predicate.Step(sql.FieldNotNull(FieldCompletedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldCreatedAt, v))
}

// HasMission applies the HasEdge predicate on the "mission" edge.
func HasMission() predicate.Step {
	return predicate.Step(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, MissionTable, MissionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMissionWith applies the HasEdge predicate on the "mission" edge with a given conditions (other predicates).
func HasMissionWith(preds ...predicate.Mission) predicate.Step {
	return predicate.Step(func(s *sql.Selector) {
		step := newMissionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasClaimedBy applies the HasEdge predicate on the "claimed_by" edge.
func HasClaimedBy() predicate.Step {
	return predicate.Step(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ClaimedByTable, ClaimedByColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasClaimedByWith applies the HasEdge predicate on the "claimed_by" edge with a given conditions (other predicates).
func HasClaimedByWith(preds ...predicate.Agent) predicate.Step {
	return predicate.Step(func(s *sql.Selector) {
		step := newClaimedByStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Step) predicate.Step {
	return predicate.Step(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Step) predicate.Step {
	return predicate.Step(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Step) predicate.Step {
	return predicate.Step(sql.NotPredicates(p))
}
