// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/codeready-toolchain/agentloop/ent/agent"
	"github.com/codeready-toolchain/agentloop/ent/chatmessage"
	"github.com/codeready-toolchain/agentloop/ent/event"
	"github.com/codeready-toolchain/agentloop/ent/mission"
	"github.com/codeready-toolchain/agentloop/ent/project"
	"github.com/codeready-toolchain/agentloop/ent/projectcontext"
	"github.com/codeready-toolchain/agentloop/ent/proposal"
	"github.com/codeready-toolchain/agentloop/ent/schema"
	"github.com/codeready-toolchain/agentloop/ent/step"
	"github.com/codeready-toolchain/agentloop/ent/trigger"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentFields := schema.Agent{}.Fields()
	_ = agentFields
	// agentDescDescription is the schema descriptor for description field.
	agentDescDescription := agentFields[3].Descriptor()
	// agent.DefaultDescription holds the default value on creation for the description field.
	agent.DefaultDescription = agentDescDescription.Default.(string)
	// agentDescPositionX is the schema descriptor for position_x field.
	agentDescPositionX := agentFields[8].Descriptor()
	// agent.DefaultPositionX holds the default value on creation for the position_x field.
	agent.DefaultPositionX = agentDescPositionX.Default.(float64)
	// agentDescPositionY is the schema descriptor for position_y field.
	agentDescPositionY := agentFields[9].Descriptor()
	// agent.DefaultPositionY holds the default value on creation for the position_y field.
	agent.DefaultPositionY = agentDescPositionY.Default.(float64)
	// agentDescTargetX is the schema descriptor for target_x field.
	agentDescTargetX := agentFields[10].Descriptor()
	// agent.DefaultTargetX holds the default value on creation for the target_x field.
	agent.DefaultTargetX = agentDescTargetX.Default.(float64)
	// agentDescTargetY is the schema descriptor for target_y field.
	agentDescTargetY := agentFields[11].Descriptor()
	// agent.DefaultTargetY holds the default value on creation for the target_y field.
	agent.DefaultTargetY = agentDescTargetY.Default.(float64)
	// agentDescAvatar is the schema descriptor for avatar field.
	agentDescAvatar := agentFields[13].Descriptor()
	// agent.DefaultAvatar holds the default value on creation for the avatar field.
	agent.DefaultAvatar = agentDescAvatar.Default.(string)
	// agentDescCreatedAt is the schema descriptor for created_at field.
	agentDescCreatedAt := agentFields[14].Descriptor()
	// agent.DefaultCreatedAt holds the default value on creation for the created_at field.
	agent.DefaultCreatedAt = agentDescCreatedAt.Default.(func() time.Time)
	chatmessageFields := schema.ChatMessage{}.Fields()
	_ = chatmessageFields
	// chatmessageDescCreatedAt is the schema descriptor for created_at field.
	chatmessageDescCreatedAt := chatmessageFields[5].Descriptor()
	// chatmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	chatmessage.DefaultCreatedAt = chatmessageDescCreatedAt.Default.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[5].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	missionFields := schema.Mission{}.Fields()
	_ = missionFields
	// missionDescDescription is the schema descriptor for description field.
	missionDescDescription := missionFields[4].Descriptor()
	// mission.DefaultDescription holds the default value on creation for the description field.
	mission.DefaultDescription = missionDescDescription.Default.(string)
	// missionDescCreatedAt is the schema descriptor for created_at field.
	missionDescCreatedAt := missionFields[8].Descriptor()
	// mission.DefaultCreatedAt holds the default value on creation for the created_at field.
	mission.DefaultCreatedAt = missionDescCreatedAt.Default.(func() time.Time)
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescDescription is the schema descriptor for description field.
	projectDescDescription := projectFields[3].Descriptor()
	// project.DefaultDescription holds the default value on creation for the description field.
	project.DefaultDescription = projectDescDescription.Default.(string)
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectFields[7].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
	projectcontextFields := schema.ProjectContext{}.Fields()
	_ = projectcontextFields
	// projectcontextDescCreatedAt is the schema descriptor for created_at field.
	projectcontextDescCreatedAt := projectcontextFields[7].Descriptor()
	// projectcontext.DefaultCreatedAt holds the default value on creation for the created_at field.
	projectcontext.DefaultCreatedAt = projectcontextDescCreatedAt.Default.(func() time.Time)
	// projectcontextDescUpdatedAt is the schema descriptor for updated_at field.
	projectcontextDescUpdatedAt := projectcontextFields[8].Descriptor()
	// projectcontext.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	projectcontext.DefaultUpdatedAt = projectcontextDescUpdatedAt.Default.(func() time.Time)
	// projectcontext.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	projectcontext.UpdateDefaultUpdatedAt = projectcontextDescUpdatedAt.UpdateDefault.(func() time.Time)
	proposalFields := schema.Proposal{}.Fields()
	_ = proposalFields
	// proposalDescDescription is the schema descriptor for description field.
	proposalDescDescription := proposalFields[4].Descriptor()
	// proposal.DefaultDescription holds the default value on creation for the description field.
	proposal.DefaultDescription = proposalDescDescription.Default.(string)
	// proposalDescRationale is the schema descriptor for rationale field.
	proposalDescRationale := proposalFields[5].Descriptor()
	// proposal.DefaultRationale holds the default value on creation for the rationale field.
	proposal.DefaultRationale = proposalDescRationale.Default.(string)
	// proposalDescAutoApprove is the schema descriptor for auto_approve field.
	proposalDescAutoApprove := proposalFields[8].Descriptor()
	// proposal.DefaultAutoApprove holds the default value on creation for the auto_approve field.
	proposal.DefaultAutoApprove = proposalDescAutoApprove.Default.(bool)
	// proposalDescCreatedAt is the schema descriptor for created_at field.
	proposalDescCreatedAt := proposalFields[13].Descriptor()
	// proposal.DefaultCreatedAt holds the default value on creation for the created_at field.
	proposal.DefaultCreatedAt = proposalDescCreatedAt.Default.(func() time.Time)
	stepFields := schema.Step{}.Fields()
	_ = stepFields
	// stepDescOrderIndex is the schema descriptor for order_index field.
	stepDescOrderIndex := stepFields[2].Descriptor()
	// step.DefaultOrderIndex holds the default value on creation for the order_index field.
	step.DefaultOrderIndex = stepDescOrderIndex.Default.(int)
	// stepDescDescription is the schema descriptor for description field.
	stepDescDescription := stepFields[4].Descriptor()
	// step.DefaultDescription holds the default value on creation for the description field.
	step.DefaultDescription = stepDescDescription.Default.(string)
	// stepDescCreatedAt is the schema descriptor for created_at field.
	stepDescCreatedAt := stepFields[12].Descriptor()
	// step.DefaultCreatedAt holds the default value on creation for the created_at field.
	step.DefaultCreatedAt = stepDescCreatedAt.Default.(func() time.Time)
	triggerFields := schema.Trigger{}.Fields()
	_ = triggerFields
	// triggerDescEnabled is the schema descriptor for enabled field.
	triggerDescEnabled := triggerFields[5].Descriptor()
	// trigger.DefaultEnabled holds the default value on creation for the enabled field.
	trigger.DefaultEnabled = triggerDescEnabled.Default.(bool)
	// triggerDescCreatedAt is the schema descriptor for created_at field.
	triggerDescCreatedAt := triggerFields[7].Descriptor()
	// trigger.DefaultCreatedAt holds the default value on creation for the created_at field.
	trigger.DefaultCreatedAt = triggerDescCreatedAt.Default.(func() time.Time)
}
