package models

import (
	"encoding/json"
	"fmt"

	"github.com/codeready-toolchain/agentloop/ent"
)

// TriggerActionType tags the trigger action union.
type TriggerActionType string

const (
	// TriggerActionCreateStep appends a step to the mission named in the
	// matched event's payload.
	TriggerActionCreateStep TriggerActionType = "create_step"
	// TriggerActionEvaluateMissionCompletion closes the mission named in the
	// matched event's payload when all of its steps are completed.
	TriggerActionEvaluateMissionCompletion TriggerActionType = "evaluate_mission_completion"
)

// IsValid checks if the action type is a known tag
func (t TriggerActionType) IsValid() bool {
	return t == TriggerActionCreateStep || t == TriggerActionEvaluateMissionCompletion
}

// TriggerPattern is the typed view of Trigger.event_pattern. An event matches
// when its type equals EventType and every condition key is present in the
// payload with a strictly equal value.
type TriggerPattern struct {
	EventType  string         `json:"event_type"`
	Conditions map[string]any `json:"conditions,omitempty"`
}

// TriggerAction is the typed view of Trigger.action. Only the fields relevant
// to the tagged type are used.
type TriggerAction struct {
	Type        TriggerActionType `json:"type"`
	Title       string            `json:"title,omitempty"`
	Description string            `json:"description,omitempty"`
	StepType    string            `json:"step_type,omitempty"`
	OrderIndex  *int              `json:"order_index,omitempty"`
}

// ParseTriggerPattern decodes the stored pattern map.
func ParseTriggerPattern(raw map[string]any) (TriggerPattern, error) {
	var p TriggerPattern
	data, err := json.Marshal(raw)
	if err != nil {
		return p, fmt.Errorf("failed to marshal trigger pattern: %w", err)
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("failed to decode trigger pattern: %w", err)
	}
	return p, nil
}

// ParseTriggerAction decodes the stored action map. Tag validation is the
// evaluator's job; unknown tags come back as-is.
func ParseTriggerAction(raw map[string]any) (TriggerAction, error) {
	var a TriggerAction
	data, err := json.Marshal(raw)
	if err != nil {
		return a, fmt.Errorf("failed to marshal trigger action: %w", err)
	}
	if err := json.Unmarshal(data, &a); err != nil {
		return a, fmt.Errorf("failed to decode trigger action: %w", err)
	}
	return a, nil
}

// CreateTriggerRequest contains fields for creating a trigger
type CreateTriggerRequest struct {
	ProjectID    string         `json:"project_id"`
	Name         string         `json:"name"`
	EventPattern map[string]any `json:"event_pattern"`
	Action       map[string]any `json:"action"`
	Enabled      *bool          `json:"enabled,omitempty"`
}

// TriggerListResponse contains a trigger list
type TriggerListResponse struct {
	Triggers   []*ent.Trigger `json:"triggers"`
	TotalCount int            `json:"total_count"`
}
