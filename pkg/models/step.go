package models

import (
	"github.com/codeready-toolchain/agentloop/ent"
	"github.com/codeready-toolchain/agentloop/ent/step"
)

// CreateStepRequest contains fields for creating a single step
type CreateStepRequest struct {
	MissionID   string        `json:"mission_id"`
	OrderIndex  int           `json:"order_index"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	StepType    step.StepType `json:"step_type,omitempty"`
}

// StepListResponse contains the steps of a mission in selection order
type StepListResponse struct {
	Steps []*ent.Step `json:"steps"`
}

// PlannedStep is one entry of the default plan materialized for a planned
// mission.
type PlannedStep struct {
	OrderIndex  int
	Title       string
	Description string
	StepType    step.StepType
}

// DefaultPlan returns the standard 4-step plan derived from the mission
// title: research, implementation, testing, review.
func DefaultPlan(missionTitle string) []PlannedStep {
	return []PlannedStep{
		{
			OrderIndex:  0,
			Title:       "Research and Planning",
			Description: "Research and plan the implementation of: " + missionTitle,
			StepType:    step.StepTypeResearch,
		},
		{
			OrderIndex:  1,
			Title:       "Implementation",
			Description: "Implement the solution for: " + missionTitle,
			StepType:    step.StepTypeCode,
		},
		{
			OrderIndex:  2,
			Title:       "Testing",
			Description: "Test the implementation of: " + missionTitle,
			StepType:    step.StepTypeTest,
		},
		{
			OrderIndex:  3,
			Title:       "Review",
			Description: "Review and validate: " + missionTitle,
			StepType:    step.StepTypeReview,
		},
	}
}
