package engine

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/codeready-toolchain/agentloop/ent"
	"github.com/codeready-toolchain/agentloop/ent/proposal"
	"github.com/codeready-toolchain/agentloop/pkg/models"
	"github.com/codeready-toolchain/agentloop/pkg/services"
)

// Title keyword classes treated as low risk by the approval policy.
var (
	fixKeywords  = []string{"fix", "patch", "hotfix", "typo"}
	docsKeywords = []string{"docs", "documentation", "readme"}
	testKeywords = []string{"test", "spec", "testing"}
)

// ApprovalEngine applies the auto-approval policy to pending proposals.
// Only proposals flagged auto_approve are ever considered; the rules decide
// which of those the system may approve without a human.
type ApprovalEngine struct {
	proposals *services.ProposalService
	agents    *services.AgentService
	logger    *slog.Logger
}

// NewApprovalEngine creates an approval engine on the shared ent client.
func NewApprovalEngine(client *ent.Client, logger *slog.Logger) *ApprovalEngine {
	return &ApprovalEngine{
		proposals: services.NewProposalService(client),
		agents:    services.NewAgentService(client),
		logger:    logger.With("component", "engine.approval"),
	}
}

// ProcessPending reviews every pending proposal and approves the ones the
// policy allows, stamping them as reviewed by the system. A proposal that
// fails to persist its approval is logged and skipped; the rest still go
// through.
func (e *ApprovalEngine) ProcessPending(ctx context.Context) ([]*ent.Proposal, error) {
	pending, err := e.proposals.ListPending(ctx)
	if err != nil {
		return nil, err
	}

	var approved []*ent.Proposal
	for _, p := range pending {
		if !shouldAutoApprove(p, e.agentConfigFor(ctx, p)) {
			continue
		}
		updated, err := e.proposals.MarkAutoApproved(ctx, p.ID)
		if err != nil {
			e.logger.Error("Failed to auto-approve proposal",
				"proposal_id", p.ID, "error", err)
			continue
		}
		e.logger.Info("Proposal auto-approved",
			"proposal_id", p.ID, "title", p.Title, "priority", p.Priority)
		approved = append(approved, updated)
	}
	return approved, nil
}

// agentConfigFor loads the originating agent's stored config when the
// delegated-approval rule could apply. A missing agent or unparseable
// config yields the zero config, which that rule never matches; the title
// keyword rules are unaffected.
func (e *ApprovalEngine) agentConfigFor(ctx context.Context, p *ent.Proposal) models.AgentConfig {
	if !p.AutoApprove || !lowRiskPriority(p.Priority) {
		return models.AgentConfig{}
	}
	a, err := e.agents.GetAgent(ctx, p.AgentID)
	if err != nil {
		if !errors.Is(err, services.ErrNotFound) {
			e.logger.Warn("Failed to load agent for approval check",
				"agent_id", p.AgentID, "error", err)
		}
		return models.AgentConfig{}
	}
	cfg, err := models.ParseAgentConfig(a.Config)
	if err != nil {
		e.logger.Warn("Unparseable agent config during approval check",
			"agent_id", a.ID, "error", err)
		return models.AgentConfig{}
	}
	return cfg
}

// shouldAutoApprove implements the approval rules in order: an agent with
// delegated approval on a low or medium priority proposal, then the
// low-risk title keyword classes. The proposal's own auto_approve flag
// gates everything.
func shouldAutoApprove(p *ent.Proposal, agentCfg models.AgentConfig) bool {
	if !p.AutoApprove {
		return false
	}
	if lowRiskPriority(p.Priority) && agentCfg.AutoApproveProposals {
		return true
	}
	title := strings.ToLower(p.Title)
	for _, class := range [][]string{fixKeywords, docsKeywords, testKeywords} {
		if containsAny(title, class) {
			return true
		}
	}
	return false
}

// lowRiskPriority reports whether the priority qualifies for the
// delegated-approval rule.
func lowRiskPriority(p proposal.Priority) bool {
	return p == proposal.PriorityLow || p == proposal.PriorityMedium
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
