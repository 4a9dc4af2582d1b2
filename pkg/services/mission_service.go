package services

import (
	"context"
	"fmt"
	"time"

	"github.com/codeready-toolchain/agentloop/ent"
	"github.com/codeready-toolchain/agentloop/ent/mission"
	"github.com/codeready-toolchain/agentloop/ent/proposal"
	"github.com/codeready-toolchain/agentloop/ent/step"
	"github.com/codeready-toolchain/agentloop/pkg/models"
)

// MissionService manages the mission lifecycle
// (planned → active → completed/failed/cancelled).
type MissionService struct {
	client *ent.Client
}

// NewMissionService creates a new MissionService
func NewMissionService(client *ent.Client) *MissionService {
	return &MissionService{client: client}
}

// CreateFromProposal materializes an approved proposal as a planned mission.
// The unique proposal_id column enforces the one-mission-per-proposal
// bijection; a second call for the same proposal returns ErrAlreadyExists.
func (s *MissionService) CreateFromProposal(ctx context.Context, p *ent.Proposal) (*ent.Mission, error) {
	if p.Status != proposal.StatusApproved {
		return nil, ErrInvalidTransition
	}

	m, err := s.client.Mission.Create().
		SetID(newID()).
		SetProposalID(p.ID).
		SetProjectID(p.ProjectID).
		SetTitle(p.Title).
		SetDescription(p.Description).
		SetAssignedAgentID(p.AgentID).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create mission: %w", err)
	}

	return m, nil
}

// GetMission retrieves a mission by ID, optionally with its steps in
// selection order.
func (s *MissionService) GetMission(ctx context.Context, missionID string, withSteps bool) (*ent.Mission, error) {
	query := s.client.Mission.Query().Where(mission.IDEQ(missionID))

	if withSteps {
		query = query.WithSteps(func(q *ent.StepQuery) {
			q.Order(ent.Asc(step.FieldOrderIndex), ent.Asc(step.FieldCreatedAt))
		})
	}

	m, err := query.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get mission: %w", err)
	}
	return m, nil
}

// ListMissions lists missions with optional filtering and pagination
func (s *MissionService) ListMissions(ctx context.Context, filters models.MissionFilters) (*models.MissionListResponse, error) {
	query := s.client.Mission.Query()

	if filters.ProjectID != "" {
		query = query.Where(mission.ProjectIDEQ(filters.ProjectID))
	}
	if filters.AgentID != "" {
		query = query.Where(mission.AssignedAgentIDEQ(filters.AgentID))
	}
	if filters.Status != "" {
		st := mission.Status(filters.Status)
		if err := mission.StatusValidator(st); err != nil {
			return nil, NewValidationError("status", err.Error())
		}
		query = query.Where(mission.StatusEQ(st))
	}

	totalCount, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count missions: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 50
	}

	missions, err := query.
		Order(ent.Desc(mission.FieldCreatedAt)).
		Limit(limit).
		Offset(filters.Offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list missions: %w", err)
	}

	return &models.MissionListResponse{
		Missions:   missions,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     filters.Offset,
	}, nil
}

// ListApprovedProposalsWithoutMission returns approved proposals not yet
// materialized, in approval order.
func (s *MissionService) ListApprovedProposalsWithoutMission(ctx context.Context) ([]*ent.Proposal, error) {
	proposals, err := s.client.Proposal.Query().
		Where(
			proposal.StatusEQ(proposal.StatusApproved),
			proposal.Not(proposal.HasMission()),
		).
		Order(ent.Asc(proposal.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list unmaterialized proposals: %w", err)
	}
	return proposals, nil
}

// ListPlannedWithoutSteps returns planned missions that still need their
// step plan.
func (s *MissionService) ListPlannedWithoutSteps(ctx context.Context) ([]*ent.Mission, error) {
	missions, err := s.client.Mission.Query().
		Where(
			mission.StatusEQ(mission.StatusPlanned),
			mission.Not(mission.HasSteps()),
		).
		Order(ent.Asc(mission.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list planned missions: %w", err)
	}
	return missions, nil
}

// ListActive returns ACTIVE missions in creation order
func (s *MissionService) ListActive(ctx context.Context) ([]*ent.Mission, error) {
	missions, err := s.client.Mission.Query().
		Where(mission.StatusEQ(mission.StatusActive)).
		Order(ent.Asc(mission.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active missions: %w", err)
	}
	return missions, nil
}

// ListStuck returns ACTIVE missions with at least one failed step and no
// step left that could still run, with steps loaded in selection order.
func (s *MissionService) ListStuck(ctx context.Context) ([]*ent.Mission, error) {
	missions, err := s.client.Mission.Query().
		Where(
			mission.StatusEQ(mission.StatusActive),
			mission.HasStepsWith(step.StatusEQ(step.StatusFailed)),
			mission.Not(mission.HasStepsWith(step.StatusIn(
				step.StatusPending,
				step.StatusClaimed,
				step.StatusRunning,
			))),
		).
		WithSteps(func(q *ent.StepQuery) {
			q.Order(ent.Asc(step.FieldOrderIndex), ent.Asc(step.FieldCreatedAt))
		}).
		Order(ent.Asc(mission.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stuck missions: %w", err)
	}
	return missions, nil
}

// Activate moves a planned mission into execution
func (s *MissionService) Activate(ctx context.Context, missionID string) (*ent.Mission, error) {
	count, err := s.client.Mission.Update().
		Where(
			mission.IDEQ(missionID),
			mission.StatusEQ(mission.StatusPlanned),
		).
		SetStatus(mission.StatusActive).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to activate mission: %w", err)
	}
	if count == 0 {
		return nil, s.transitionError(ctx, missionID)
	}
	return s.GetMission(ctx, missionID, false)
}

// CompleteIfAllStepsDone closes an ACTIVE mission whose steps all completed.
// Returns (mission, true) when this call performed the close; (mission,
// false) when the mission is not closeable; the ACTIVE status guard inside
// the transaction makes the close idempotent, so one mission yields at most
// one closure.
func (s *MissionService) CompleteIfAllStepsDone(ctx context.Context, missionID string) (*ent.Mission, bool, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	m, err := tx.Mission.Get(ctx, missionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, false, ErrNotFound
		}
		return nil, false, fmt.Errorf("failed to get mission: %w", err)
	}
	if m.Status != mission.StatusActive {
		return m, false, nil
	}

	total, err := tx.Step.Query().
		Where(step.MissionIDEQ(missionID)).
		Count(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to count steps: %w", err)
	}
	if total == 0 {
		// A mission with no steps is never complete
		return m, false, nil
	}

	unfinished, err := tx.Step.Query().
		Where(
			step.MissionIDEQ(missionID),
			step.StatusNEQ(step.StatusCompleted),
		).
		Count(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to count unfinished steps: %w", err)
	}
	if unfinished > 0 {
		return m, false, nil
	}

	count, err := tx.Mission.Update().
		Where(
			mission.IDEQ(missionID),
			mission.StatusEQ(mission.StatusActive),
		).
		SetStatus(mission.StatusCompleted).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to complete mission: %w", err)
	}
	if count == 0 {
		// Another closure won the race
		return m, false, nil
	}

	m, err = tx.Mission.Get(ctx, missionID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to refetch mission: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, false, fmt.Errorf("failed to commit completion: %w", err)
	}

	return m, true, nil
}

// UpdateMissionStatus applies a manual status change (e.g., cancellation)
func (s *MissionService) UpdateMissionStatus(ctx context.Context, missionID, status string) (*ent.Mission, error) {
	st := mission.Status(status)
	if err := mission.StatusValidator(st); err != nil {
		return nil, NewValidationError("status", err.Error())
	}

	update := s.client.Mission.UpdateOneID(missionID).SetStatus(st)
	if st == mission.StatusCompleted || st == mission.StatusFailed || st == mission.StatusCancelled {
		update.SetCompletedAt(time.Now())
	}

	m, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update mission status: %w", err)
	}
	return m, nil
}

// DeleteMission removes a mission and, via cascade, its steps
func (s *MissionService) DeleteMission(ctx context.Context, missionID string) error {
	err := s.client.Mission.DeleteOneID(missionID).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete mission: %w", err)
	}
	return nil
}

// transitionError distinguishes a missing mission from a status conflict
// after a guarded update matched zero rows.
func (s *MissionService) transitionError(ctx context.Context, missionID string) error {
	exists, err := s.client.Mission.Query().
		Where(mission.IDEQ(missionID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check mission: %w", err)
	}
	if !exists {
		return ErrNotFound
	}
	return ErrInvalidTransition
}
