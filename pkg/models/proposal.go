package models

import (
	"github.com/codeready-toolchain/agentloop/ent"
	"github.com/codeready-toolchain/agentloop/ent/proposal"
)

// CreateProposalRequest contains fields for creating a proposal
type CreateProposalRequest struct {
	AgentID     string            `json:"agent_id"`
	ProjectID   string            `json:"project_id"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Rationale   string            `json:"rationale,omitempty"`
	Priority    proposal.Priority `json:"priority,omitempty"`
	Status      proposal.Status   `json:"status,omitempty"`
	AutoApprove bool              `json:"auto_approve,omitempty"`
	McTaskID    string            `json:"mc_task_id,omitempty"`
	McBoardID   string            `json:"mc_board_id,omitempty"`
}

// ProposalFilters contains filtering options for listing proposals
type ProposalFilters struct {
	ProjectID string `json:"project_id,omitempty"`
	AgentID   string `json:"agent_id,omitempty"`
	Status    string `json:"status,omitempty"`
	Priority  string `json:"priority,omitempty"`
	Limit     int    `json:"limit,omitempty"`
	Offset    int    `json:"offset,omitempty"`
}

// ProposalListResponse contains a paginated proposal list
type ProposalListResponse struct {
	Proposals  []*ent.Proposal `json:"proposals"`
	TotalCount int             `json:"total_count"`
	Limit      int             `json:"limit"`
	Offset     int             `json:"offset"`
}
