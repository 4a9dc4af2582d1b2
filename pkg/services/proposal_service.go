package services

import (
	"context"
	"fmt"
	"time"

	"github.com/codeready-toolchain/agentloop/ent"
	"github.com/codeready-toolchain/agentloop/ent/proposal"
	"github.com/codeready-toolchain/agentloop/pkg/models"
)

// ReviewedBySystem marks proposals approved by the auto-approval policy
// rather than a human reviewer.
const ReviewedBySystem = "system"

// ProposalService manages the proposal lifecycle
// (draft → pending → approved/rejected/expired).
type ProposalService struct {
	client *ent.Client
}

// NewProposalService creates a new ProposalService
func NewProposalService(client *ent.Client) *ProposalService {
	return &ProposalService{client: client}
}

// CreateProposal creates a proposal. Status defaults to draft; inbound sync
// creates directly as pending with the board dedup keys set.
func (s *ProposalService) CreateProposal(ctx context.Context, req models.CreateProposalRequest) (*ent.Proposal, error) {
	if req.AgentID == "" {
		return nil, NewValidationError("agent_id", "required")
	}
	if req.ProjectID == "" {
		return nil, NewValidationError("project_id", "required")
	}
	if req.Title == "" {
		return nil, NewValidationError("title", "required")
	}

	builder := s.client.Proposal.Create().
		SetID(newID()).
		SetAgentID(req.AgentID).
		SetProjectID(req.ProjectID).
		SetTitle(req.Title).
		SetDescription(req.Description).
		SetRationale(req.Rationale).
		SetAutoApprove(req.AutoApprove)

	if req.Priority != "" {
		if err := proposal.PriorityValidator(req.Priority); err != nil {
			return nil, NewValidationError("priority", err.Error())
		}
		builder.SetPriority(req.Priority)
	}
	if req.Status != "" {
		if err := proposal.StatusValidator(req.Status); err != nil {
			return nil, NewValidationError("status", err.Error())
		}
		builder.SetStatus(req.Status)
	}
	if req.McTaskID != "" {
		builder.SetMcTaskID(req.McTaskID)
	}
	if req.McBoardID != "" {
		builder.SetMcBoardID(req.McBoardID)
	}

	p, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create proposal: %w", err)
	}

	return p, nil
}

// GetProposal retrieves a proposal by ID
func (s *ProposalService) GetProposal(ctx context.Context, proposalID string) (*ent.Proposal, error) {
	p, err := s.client.Proposal.Get(ctx, proposalID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get proposal: %w", err)
	}
	return p, nil
}

// ListProposals lists proposals with optional filtering and pagination
func (s *ProposalService) ListProposals(ctx context.Context, filters models.ProposalFilters) (*models.ProposalListResponse, error) {
	query := s.client.Proposal.Query()

	if filters.ProjectID != "" {
		query = query.Where(proposal.ProjectIDEQ(filters.ProjectID))
	}
	if filters.AgentID != "" {
		query = query.Where(proposal.AgentIDEQ(filters.AgentID))
	}
	if filters.Status != "" {
		st := proposal.Status(filters.Status)
		if err := proposal.StatusValidator(st); err != nil {
			return nil, NewValidationError("status", err.Error())
		}
		query = query.Where(proposal.StatusEQ(st))
	}
	if filters.Priority != "" {
		pr := proposal.Priority(filters.Priority)
		if err := proposal.PriorityValidator(pr); err != nil {
			return nil, NewValidationError("priority", err.Error())
		}
		query = query.Where(proposal.PriorityEQ(pr))
	}

	totalCount, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count proposals: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 50
	}

	proposals, err := query.
		Order(ent.Desc(proposal.FieldCreatedAt)).
		Limit(limit).
		Offset(filters.Offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list proposals: %w", err)
	}

	return &models.ProposalListResponse{
		Proposals:  proposals,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     filters.Offset,
	}, nil
}

// FindByTaskID looks up the proposal synced from a remote board task.
// Returns (nil, nil) when no proposal carries the key.
func (s *ProposalService) FindByTaskID(ctx context.Context, mcTaskID string) (*ent.Proposal, error) {
	p, err := s.client.Proposal.Query().
		Where(proposal.McTaskIDEQ(mcTaskID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find proposal by task id: %w", err)
	}
	return p, nil
}

// ListPending returns pending proposals in creation order, the evaluation
// order of the approval policy.
func (s *ProposalService) ListPending(ctx context.Context) ([]*ent.Proposal, error) {
	proposals, err := s.client.Proposal.Query().
		Where(proposal.StatusEQ(proposal.StatusPending)).
		Order(ent.Asc(proposal.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending proposals: %w", err)
	}
	return proposals, nil
}

// Submit moves a draft proposal into the review queue
func (s *ProposalService) Submit(ctx context.Context, proposalID string) (*ent.Proposal, error) {
	count, err := s.client.Proposal.Update().
		Where(
			proposal.IDEQ(proposalID),
			proposal.StatusEQ(proposal.StatusDraft),
		).
		SetStatus(proposal.StatusPending).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to submit proposal: %w", err)
	}
	if count == 0 {
		return nil, s.transitionError(ctx, proposalID)
	}
	return s.GetProposal(ctx, proposalID)
}

// Approve approves a pending proposal. The status guard makes the
// transition race-safe: only one approve can win.
func (s *ProposalService) Approve(ctx context.Context, proposalID, reviewedBy string) (*ent.Proposal, error) {
	if reviewedBy == "" {
		return nil, NewValidationError("reviewed_by", "required")
	}

	count, err := s.client.Proposal.Update().
		Where(
			proposal.IDEQ(proposalID),
			proposal.StatusEQ(proposal.StatusPending),
		).
		SetStatus(proposal.StatusApproved).
		SetReviewedBy(reviewedBy).
		SetReviewedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to approve proposal: %w", err)
	}
	if count == 0 {
		return nil, s.transitionError(ctx, proposalID)
	}
	return s.GetProposal(ctx, proposalID)
}

// Reject rejects a pending proposal. A non-empty reason is appended to the
// rationale so the decision survives with the record.
func (s *ProposalService) Reject(ctx context.Context, proposalID, reviewedBy, reason string) (*ent.Proposal, error) {
	if reviewedBy == "" {
		return nil, NewValidationError("reviewed_by", "required")
	}

	p, err := s.GetProposal(ctx, proposalID)
	if err != nil {
		return nil, err
	}

	update := s.client.Proposal.Update().
		Where(
			proposal.IDEQ(proposalID),
			proposal.StatusEQ(proposal.StatusPending),
		).
		SetStatus(proposal.StatusRejected).
		SetReviewedBy(reviewedBy).
		SetReviewedAt(time.Now())

	if reason != "" {
		update.SetRationale(p.Rationale + "\n\nREJECTED: " + reason)
	}

	count, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reject proposal: %w", err)
	}
	if count == 0 {
		return nil, s.transitionError(ctx, proposalID)
	}
	return s.GetProposal(ctx, proposalID)
}

// MarkAutoApproved approves a pending proposal on behalf of the policy
// engine, recording "system" as the reviewer.
func (s *ProposalService) MarkAutoApproved(ctx context.Context, proposalID string) (*ent.Proposal, error) {
	return s.Approve(ctx, proposalID, ReviewedBySystem)
}

// ExpirePendingOlderThan expires pending proposals created before the
// cutoff. Returns the number of proposals expired.
func (s *ProposalService) ExpirePendingOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	count, err := s.client.Proposal.Update().
		Where(
			proposal.StatusEQ(proposal.StatusPending),
			proposal.CreatedAtLT(cutoff),
		).
		SetStatus(proposal.StatusExpired).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to expire proposals: %w", err)
	}
	return count, nil
}

// DeleteProposal removes a proposal and, via cascade, its mission
func (s *ProposalService) DeleteProposal(ctx context.Context, proposalID string) error {
	err := s.client.Proposal.DeleteOneID(proposalID).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete proposal: %w", err)
	}
	return nil
}

// transitionError distinguishes a missing proposal from a status conflict
// after a guarded update matched zero rows.
func (s *ProposalService) transitionError(ctx context.Context, proposalID string) error {
	exists, err := s.client.Proposal.Query().
		Where(proposal.IDEQ(proposalID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check proposal: %w", err)
	}
	if !exists {
		return ErrNotFound
	}
	return ErrInvalidTransition
}
