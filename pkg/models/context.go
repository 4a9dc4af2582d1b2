package models

import "github.com/codeready-toolchain/agentloop/ent"

// UpsertContextRequest contains fields for writing a project knowledge entry.
// An existing (project_id, category, key) entry has its content and source
// refs replaced.
type UpsertContextRequest struct {
	ProjectID     string `json:"project_id"`
	Category      string `json:"category"`
	Key           string `json:"key"`
	Content       string `json:"content"`
	SourceAgentID string `json:"source_agent_id,omitempty"`
	SourceStepID  string `json:"source_step_id,omitempty"`
}

// ContextListResponse contains project knowledge entries, most recent first
type ContextListResponse struct {
	Entries []*ent.ProjectContext `json:"entries"`
}
