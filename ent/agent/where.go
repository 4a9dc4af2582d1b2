// Code generated by ent, DO NOT EDIT.

package agent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/codeready-toolchain/agentloop/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldName, v))
}

// Role applies equality check predicate on the "role" field. It's identical to RoleEQ.
func Role(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldRole, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldDescription, v))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldProjectID, v))
}

// LastSeenAt applies equality check predicate on the "last_seen_at" field. It's identical to LastSeenAtEQ.
func LastSeenAt(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldLastSeenAt, v))
}

// PositionX applies equality check predicate on the "position_x" field. It's identical to PositionXEQ.
func PositionX(v float64) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldPositionX, v))
}

// PositionY applies equality check predicate on the "position_y" field. It's identical to PositionYEQ.
func PositionY(v float64) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldPositionY, v))
}

// TargetX applies equality check predicate on the "target_x" field. It's identical to TargetXEQ.
func TargetX(v float64) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldTargetX, v))
}

// TargetY applies equality check predicate on the "target_y" field. It's identical to TargetYEQ.
func TargetY(v float64) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldTargetY, v))
}

// Avatar applies equality check predicate on the "avatar" field. It's identical to AvatarEQ.
func Avatar(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldAvatar, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldCreatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldName, v))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldRole, vs...))
}

// RoleGT applies the GT predicate on the "role" field.
func RoleGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldRole, v))
}

// RoleGTE applies the GTE predicate on the "role" field.
func RoleGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldRole, v))
}

// RoleLT applies the LT predicate on the "role" field.
func RoleLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldRole, v))
}

// RoleLTE applies the LTE predicate on the "role" field.
func RoleLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldRole, v))
}

// RoleContains applies the Contains predicate on the "role" field.
func RoleContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldRole, v))
}

// RoleHasPrefix applies the HasPrefix predicate on the "role" field.
func RoleHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldRole, v))
}

// RoleHasSuffix applies the HasSuffix predicate on the "role" field.
func RoleHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldRole, v))
}

// RoleEqualFold applies the EqualFold predicate on the "role" field.
func RoleEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldRole, v))
}

// RoleContainsFold applies the ContainsFold predicate on the "role" field.
func RoleContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldRole, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldDescription, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldStatus, vs...))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldProjectID, v))
}

// ConfigIsNil applies the IsNil predicate on the "config" field.
func ConfigIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldConfig))
}

// ConfigNotNil applies the NotNil predicate on the "config" field.
func ConfigNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldConfig))
}

// LastSeenAtEQ applies the EQ predicate on the "last_seen_at" field.
func LastSeenAtEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldLastSeenAt, v))
}

// LastSeenAtNEQ applies the NEQ predicate on the "last_seen_at" field.
func LastSeenAtNEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldLastSeenAt, v))
}

// LastSeenAtIn applies the In predicate on the "last_seen_at" field.
func LastSeenAtIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldLastSeenAt, vs...))
}

// LastSeenAtNotIn applies the NotIn predicate on the "last_seen_at" field.
func LastSeenAtNotIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldLastSeenAt, vs...))
}

// LastSeenAtGT applies the GT predicate on the "last_seen_at" field.
func LastSeenAtGT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldLastSeenAt, v))
}

// LastSeenAtGTE applies the GTE predicate on the "last_seen_at" field.
func LastSeenAtGTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldLastSeenAt, v))
}

// LastSeenAtLT applies the LT predicate on the "last_seen_at" field.
func LastSeenAtLT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldLastSeenAt, v))
}

// LastSeenAtLTE applies the LTE predicate on the "last_seen_at" field.
func LastSeenAtLTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldLastSeenAt, v))
}

// LastSeenAtIsNil applies the IsNil predicate on the "last_seen_at" field.
func LastSeenAtIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldLastSeenAt))
}

// LastSeenAtNotNil applies the NotNil predicate on the "last_seen_at" field.
func LastSeenAtNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldLastSeenAt))
}

// PositionXEQ applies the EQ predicate on the "position_x" field.
func PositionXEQ(v float64) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldPositionX, v))
}

// PositionXNEQ applies the NEQ predicate on the "position_x" field.
func PositionXNEQ(v float64) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldPositionX, v))
}

// PositionXIn applies the In predicate on the "position_x" field.
func PositionXIn(vs ...float64) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldPositionX, vs...))
}

// PositionXNotIn applies the NotIn predicate on the "position_x" field.
func PositionXNotIn(vs ...float64) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldPositionX, vs...))
}

// PositionXGT applies the GT predicate on the "position_x" field.
func PositionXGT(v float64) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldPositionX, v))
}

// PositionXGTE applies the GTE predicate on the "position_x" field.
func PositionXGTE(v float64) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldPositionX, v))
}

// PositionXLT applies the LT predicate on the "position_x" field.
func PositionXLT(v float64) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldPositionX, v))
}

// PositionXLTE applies the LTE predicate on the "position_x" field.
func PositionXLTE(v float64) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldPositionX, v))
}

// PositionYEQ applies the EQ predicate on the "position_y" field.
func PositionYEQ(v float64) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldPositionY, v))
}

// PositionYNEQ applies the NEQ predicate on the "position_y" field.
func PositionYNEQ(v float64) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldPositionY, v))
}

// PositionYIn applies the In predicate on the "position_y" field.
func PositionYIn(vs ...float64) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldPositionY, vs...))
}

// PositionYNotIn applies the NotIn predicate on the "position_y" field.
func PositionYNotIn(vs ...float64) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldPositionY, vs...))
}

// PositionYGT applies the GT predicate on the "position_y" field.
func PositionYGT(v float64) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldPositionY, v))
}

// PositionYGTE applies the GTE predicate on the "position_y" field.
func PositionYGTE(v float64) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldPositionY, v))
}

// PositionYLT applies the LT predicate on the "position_y" field.
func PositionYLT(v float64) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldPositionY, v))
}

// PositionYLTE applies the LTE predicate on the "position_y" field.
func PositionYLTE(v float64) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldPositionY, v))
}

// TargetXEQ applies the EQ predicate on the "target_x" field.
func TargetXEQ(v float64) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldTargetX, v))
}

// TargetXNEQ applies the NEQ predicate on the "target_x" field.
func TargetXNEQ(v float64) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldTargetX, v))
}

// TargetXIn applies the In predicate on the "target_x" field.
func TargetXIn(vs ...float64) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldTargetX, vs...))
}

// TargetXNotIn applies the NotIn predicate on the "target_x" field.
func TargetXNotIn(vs ...float64) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldTargetX, vs...))
}

// TargetXGT applies the GT predicate on the "target_x" field.
func TargetXGT(v float64) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldTargetX, v))
}

// TargetXGTE applies the GTE predicate on the "target_x" field.
func TargetXGTE(v float64) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldTargetX, v))
}

// TargetXLT applies the LT predicate on the "target_x" field.
func TargetXLT(v float64) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldTargetX, v))
}

// TargetXLTE applies the LTE predicate on the "target_x" field.
func TargetXLTE(v float64) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldTargetX, v))
}

// TargetYEQ applies the EQ predicate on the "target_y" field.
func TargetYEQ(v float64) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldTargetY, v))
}

// TargetYNEQ applies the NEQ predicate on the "target_y" field.
func TargetYNEQ(v float64) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldTargetY, v))
}

// TargetYIn applies the In predicate on the "target_y" field.
func TargetYIn(vs ...float64) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldTargetY, vs...))
}

// TargetYNotIn applies the NotIn predicate on the "target_y" field.
func TargetYNotIn(vs ...float64) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldTargetY, vs...))
}

// TargetYGT applies the GT predicate on the "target_y" field.
func TargetYGT(v float64) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldTargetY, v))
}

// TargetYGTE applies the GTE predicate on the "target_y" field.
func TargetYGTE(v float64) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldTargetY, v))
}

// TargetYLT applies the LT predicate on the "target_y" field.
func TargetYLT(v float64) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldTargetY, v))
}

// TargetYLTE applies the LTE predicate on the "target_y" field.
func TargetYLTE(v float64) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldTargetY, v))
}

// CurrentActionEQ applies the EQ predicate on the "current_action" field.
func CurrentActionEQ(v CurrentAction) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldCurrentAction, v))
}

// CurrentActionNEQ applies the NEQ predicate on the "current_action" field.
func CurrentActionNEQ(v CurrentAction) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldCurrentAction, v))
}

// CurrentActionIn applies the In predicate on the "current_action" field.
func CurrentActionIn(vs ...CurrentAction) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldCurrentAction, vs...))
}

// CurrentActionNotIn applies the NotIn predicate on the "current_action" field.
func CurrentActionNotIn(vs ...CurrentAction) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldCurrentAction, vs...))
}

// AvatarEQ applies the EQ predicate on the "avatar" field.
func AvatarEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldAvatar, v))
}

// AvatarNEQ applies the NEQ predicate on the "avatar" field.
func AvatarNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldAvatar, v))
}

// AvatarIn applies the In predicate on the "avatar" field.
func AvatarIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldAvatar, vs...))
}

// AvatarNotIn applies the NotIn predicate on the "avatar" field.
func AvatarNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldAvatar, vs...))
}

// AvatarGT applies the GT predicate on the "avatar" field.
func AvatarGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldAvatar, v))
}

// AvatarGTE applies the GTE predicate on the "avatar" field.
func AvatarGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldAvatar, v))
}

// AvatarLT applies the LT predicate on the "avatar" field.
func AvatarLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldAvatar, v))
}

// AvatarLTE applies the LTE predicate on the "avatar" field.
func AvatarLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldAvatar, v))
}

// AvatarContains applies the Contains predicate on the "avatar" field.
func AvatarContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldAvatar, v))
}

// AvatarHasPrefix applies the HasPrefix predicate on the "avatar" field.
func AvatarHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldAvatar, v))
}

// AvatarHasSuffix applies the HasSuffix predicate on the "avatar" field.
func AvatarHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldAvatar, v))
}

// AvatarEqualFold applies the EqualFold predicate on the "avatar" field.
func AvatarEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldAvatar, v))
}

// AvatarContainsFold applies the ContainsFold predicate on the "avatar" field.
func AvatarContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldAvatar, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldCreatedAt, v))
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasProposals applies the HasEdge predicate on the "proposals" edge.
func HasProposals() predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ProposalsTable, ProposalsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProposalsWith applies the HasEdge predicate on the "proposals" edge with a given conditions (other predicates).
func HasProposalsWith(preds ...predicate.Proposal) predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := newProposalsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMissions applies the HasEdge predicate on the "missions" edge.
func HasMissions() predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MissionsTable, MissionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMissionsWith applies the HasEdge predicate on the "missions" edge with a given conditions (other predicates).
func HasMissionsWith(preds ...predicate.Mission) predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := newMissionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasClaimedSteps applies the HasEdge predicate on the "claimed_steps" edge.
func HasClaimedSteps() predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ClaimedStepsTable, ClaimedStepsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasClaimedStepsWith applies the HasEdge predicate on the "claimed_steps" edge with a given conditions (other predicates).
func HasClaimedStepsWith(preds ...predicate.Step) predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := newClaimedStepsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvents applies the HasEdge predicate on the "events" edge.
func HasEvents() predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventsWith applies the HasEdge predicate on the "events" edge with a given conditions (other predicates).
func HasEventsWith(preds ...predicate.Event) predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := newEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Agent) predicate.Agent {
	return predicate.Agent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Agent) predicate.Agent {
	return predicate.Agent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Agent) predicate.Agent {
	return predicate.Agent(sql.NotPredicates(p))
}
