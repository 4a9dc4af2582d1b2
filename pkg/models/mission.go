package models

import "github.com/codeready-toolchain/agentloop/ent"

// MissionFilters contains filtering options for listing missions
type MissionFilters struct {
	ProjectID string `json:"project_id,omitempty"`
	Status    string `json:"status,omitempty"`
	AgentID   string `json:"agent_id,omitempty"`
	Limit     int    `json:"limit,omitempty"`
	Offset    int    `json:"offset,omitempty"`
}

// MissionListResponse contains a paginated mission list
type MissionListResponse struct {
	Missions   []*ent.Mission `json:"missions"`
	TotalCount int            `json:"total_count"`
	Limit      int            `json:"limit"`
	Offset     int            `json:"offset"`
}
