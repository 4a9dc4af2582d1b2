package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/codeready-toolchain/agentloop/ent"
	"github.com/codeready-toolchain/agentloop/ent/proposal"
	"github.com/codeready-toolchain/agentloop/pkg/models"
)

func TestShouldAutoApprove(t *testing.T) {
	tests := []struct {
		name     string
		proposal *ent.Proposal
		agentCfg models.AgentConfig
		want     bool
	}{
		{
			name:     "auto approve flag off blocks everything",
			proposal: &ent.Proposal{AutoApprove: false, Priority: proposal.PriorityLow, Title: "fix typo"},
			agentCfg: models.AgentConfig{AutoApproveProposals: true},
			want:     false,
		},
		{
			name:     "delegated approval on low priority",
			proposal: &ent.Proposal{AutoApprove: true, Priority: proposal.PriorityLow, Title: "Overhaul billing"},
			agentCfg: models.AgentConfig{AutoApproveProposals: true},
			want:     true,
		},
		{
			name:     "delegated approval on medium priority",
			proposal: &ent.Proposal{AutoApprove: true, Priority: proposal.PriorityMedium, Title: "Overhaul billing"},
			agentCfg: models.AgentConfig{AutoApproveProposals: true},
			want:     true,
		},
		{
			name:     "delegated approval does not cover high priority",
			proposal: &ent.Proposal{AutoApprove: true, Priority: proposal.PriorityHigh, Title: "Overhaul billing"},
			agentCfg: models.AgentConfig{AutoApproveProposals: true},
			want:     false,
		},
		{
			name:     "no delegation and no keywords",
			proposal: &ent.Proposal{AutoApprove: true, Priority: proposal.PriorityLow, Title: "Overhaul billing"},
			want:     false,
		},
		{
			name:     "fix keyword",
			proposal: &ent.Proposal{AutoApprove: true, Priority: proposal.PriorityHigh, Title: "Hotfix for login crash"},
			want:     true,
		},
		{
			name:     "docs keyword",
			proposal: &ent.Proposal{AutoApprove: true, Priority: proposal.PriorityCritical, Title: "Update README badges"},
			want:     true,
		},
		{
			name:     "test keyword",
			proposal: &ent.Proposal{AutoApprove: true, Priority: proposal.PriorityHigh, Title: "Add spec coverage for parser"},
			want:     true,
		},
		{
			name:     "keyword matching is case insensitive",
			proposal: &ent.Proposal{AutoApprove: true, Priority: proposal.PriorityHigh, Title: "FIX: race in scheduler"},
			want:     true,
		},
		{
			name:     "keywords match anywhere in the title",
			proposal: &ent.Proposal{AutoApprove: true, Priority: proposal.PriorityHigh, Title: "Prepare documentation rollout"},
			want:     true,
		},
		{
			name:     "no rule matches",
			proposal: &ent.Proposal{AutoApprove: true, Priority: proposal.PriorityHigh, Title: "Overhaul billing"},
			want:     false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shouldAutoApprove(tt.proposal, tt.agentCfg))
		})
	}
}

func TestLowRiskPriority(t *testing.T) {
	assert.True(t, lowRiskPriority(proposal.PriorityLow))
	assert.True(t, lowRiskPriority(proposal.PriorityMedium))
	assert.False(t, lowRiskPriority(proposal.PriorityHigh))
	assert.False(t, lowRiskPriority(proposal.PriorityCritical))
}
