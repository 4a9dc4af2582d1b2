package models

import "github.com/codeready-toolchain/agentloop/ent"

// Core event types emitted by the engine.
const (
	EventStepClaimed      = "step.claimed"
	EventStepCompleted    = "step.completed"
	EventStepFailed       = "step.failed"
	EventMissionCompleted = "mission.completed"
	EventMissionEscalated = "mission.escalated"
)

// KnownEventTypes lists the event types the engine itself emits. Callers
// may append arbitrary types; this is the documented core set.
var KnownEventTypes = []string{
	EventStepClaimed,
	EventStepCompleted,
	EventStepFailed,
	EventMissionCompleted,
	EventMissionEscalated,
}

// AppendEventRequest contains fields for appending an event
type AppendEventRequest struct {
	EventType     string         `json:"event_type"`
	ProjectID     string         `json:"project_id"`
	SourceAgentID string         `json:"source_agent_id,omitempty"`
	Payload       map[string]any `json:"payload,omitempty"`
}

// EventFilters contains filtering options for listing events
type EventFilters struct {
	ProjectID string `json:"project_id,omitempty"`
	EventType string `json:"event_type,omitempty"`
	Limit     int    `json:"limit,omitempty"`
	Offset    int    `json:"offset,omitempty"`
}

// EventListResponse contains an event list, newest first
type EventListResponse struct {
	Events     []*ent.Event `json:"events"`
	TotalCount int          `json:"total_count"`
}
