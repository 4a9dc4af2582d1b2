package services

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/codeready-toolchain/agentloop/ent"
	"github.com/codeready-toolchain/agentloop/ent/mission"
	"github.com/codeready-toolchain/agentloop/ent/step"
	"github.com/codeready-toolchain/agentloop/pkg/models"
)

// TriggerStepOrderIndex sorts trigger-created steps after any planned ones.
const TriggerStepOrderIndex = 999

// StepService manages step creation, claiming, and terminal state
type StepService struct {
	client *ent.Client
}

// NewStepService creates a new StepService
func NewStepService(client *ent.Client) *StepService {
	return &StepService{client: client}
}

// CreateStep appends a single step to a mission
func (s *StepService) CreateStep(ctx context.Context, req models.CreateStepRequest) (*ent.Step, error) {
	if req.MissionID == "" {
		return nil, NewValidationError("mission_id", "required")
	}
	if req.Title == "" {
		return nil, NewValidationError("title", "required")
	}

	builder := s.client.Step.Create().
		SetID(newID()).
		SetMissionID(req.MissionID).
		SetOrderIndex(req.OrderIndex).
		SetTitle(req.Title).
		SetDescription(req.Description)

	if req.StepType != "" {
		if err := step.StepTypeValidator(req.StepType); err != nil {
			return nil, NewValidationError("step_type", err.Error())
		}
		builder.SetStepType(req.StepType)
	}

	st, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrNotFound // mission FK violated
		}
		return nil, fmt.Errorf("failed to create step: %w", err)
	}

	return st, nil
}

// CreatePlan materializes the default step plan for a planned mission and
// activates it, in one transaction. The planned-status guard means a
// concurrent materialization of the same mission loses cleanly.
func (s *StepService) CreatePlan(ctx context.Context, m *ent.Mission) ([]*ent.Step, error) {
	plan := models.DefaultPlan(m.Title)

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	steps := make([]*ent.Step, 0, len(plan))
	for _, planned := range plan {
		st, err := tx.Step.Create().
			SetID(newID()).
			SetMissionID(m.ID).
			SetOrderIndex(planned.OrderIndex).
			SetTitle(planned.Title).
			SetDescription(planned.Description).
			SetStepType(planned.StepType).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create planned step: %w", err)
		}
		steps = append(steps, st)
	}

	count, err := tx.Mission.Update().
		Where(
			mission.IDEQ(m.ID),
			mission.StatusEQ(mission.StatusPlanned),
		).
		SetStatus(mission.StatusActive).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to activate mission: %w", err)
	}
	if count == 0 {
		return nil, ErrConcurrentModification
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit step plan: %w", err)
	}

	return steps, nil
}

// GetStep retrieves a step by ID
func (s *StepService) GetStep(ctx context.Context, stepID string) (*ent.Step, error) {
	st, err := s.client.Step.Get(ctx, stepID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get step: %w", err)
	}
	return st, nil
}

// ListSteps lists the steps of a mission in selection order
func (s *StepService) ListSteps(ctx context.Context, missionID string) (*models.StepListResponse, error) {
	steps, err := s.client.Step.Query().
		Where(step.MissionIDEQ(missionID)).
		Order(ent.Asc(step.FieldOrderIndex), ent.Asc(step.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list steps: %w", err)
	}
	return &models.StepListResponse{Steps: steps}, nil
}

// ListCandidates returns steps an agent could claim: unclaimed or already
// claimed by it, still runnable, in the agent's project, restricted to the
// step types the agent's capabilities allow. Selection order is
// (order_index, created_at).
func (s *StepService) ListCandidates(ctx context.Context, projectID, agentID string, types []step.StepType) ([]*ent.Step, error) {
	if len(types) == 0 {
		return nil, nil
	}

	steps, err := s.client.Step.Query().
		Where(
			step.StatusIn(step.StatusPending, step.StatusClaimed),
			step.Or(
				step.ClaimedByAgentIDIsNil(),
				step.ClaimedByAgentIDEQ(agentID),
			),
			step.StepTypeIn(types...),
			step.HasMissionWith(mission.ProjectIDEQ(projectID)),
		).
		Order(ent.Asc(step.FieldOrderIndex), ent.Asc(step.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidate steps: %w", err)
	}
	return steps, nil
}

// Claim atomically claims a step for an agent using FOR UPDATE SKIP LOCKED.
// Claiming a step already claimed by the same agent is a no-op success;
// a step locked or claimed by another agent yields
// ErrConcurrentModification.
func (s *StepService) Claim(ctx context.Context, stepID, agentID string) (*ent.Step, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	st, err := tx.Step.Query().
		Where(
			step.IDEQ(stepID),
			step.StatusIn(step.StatusPending, step.StatusClaimed),
			step.Or(
				step.ClaimedByAgentIDIsNil(),
				step.ClaimedByAgentIDEQ(agentID),
			),
		).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, s.claimError(ctx, stepID)
		}
		return nil, fmt.Errorf("failed to query step for claim: %w", err)
	}

	st, err = st.Update().
		SetStatus(step.StatusClaimed).
		SetClaimedByAgentID(agentID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim step: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return st, nil
}

// Start moves a claimed step to running and stamps started_at
func (s *StepService) Start(ctx context.Context, stepID, agentID string) (*ent.Step, error) {
	count, err := s.client.Step.Update().
		Where(
			step.IDEQ(stepID),
			step.StatusEQ(step.StatusClaimed),
			step.ClaimedByAgentIDEQ(agentID),
		).
		SetStatus(step.StatusRunning).
		SetStartedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start step: %w", err)
	}
	if count == 0 {
		return nil, s.claimError(ctx, stepID)
	}
	return s.GetStep(ctx, stepID)
}

// Complete records a successful step result
func (s *StepService) Complete(ctx context.Context, stepID, output string) (*ent.Step, error) {
	count, err := s.client.Step.Update().
		Where(
			step.IDEQ(stepID),
			step.StatusEQ(step.StatusRunning),
		).
		SetStatus(step.StatusCompleted).
		SetOutput(output).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to complete step: %w", err)
	}
	if count == 0 {
		return nil, s.claimError(ctx, stepID)
	}
	return s.GetStep(ctx, stepID)
}

// Fail records a failed step result. Failure is accepted from claimed as
// well as running so the worker's error path always lands.
func (s *StepService) Fail(ctx context.Context, stepID, errMsg string) (*ent.Step, error) {
	count, err := s.client.Step.Update().
		Where(
			step.IDEQ(stepID),
			step.StatusIn(step.StatusClaimed, step.StatusRunning),
		).
		SetStatus(step.StatusFailed).
		SetError(errMsg).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fail step: %w", err)
	}
	if count == 0 {
		return nil, s.claimError(ctx, stepID)
	}
	return s.GetStep(ctx, stepID)
}

// Skip marks an unclaimed pending step skipped, the human answer to a
// stuck-mission escalation. Claimed steps cannot be skipped; their claim
// already binds them to an outcome.
func (s *StepService) Skip(ctx context.Context, stepID string) (*ent.Step, error) {
	count, err := s.client.Step.Update().
		Where(
			step.IDEQ(stepID),
			step.StatusEQ(step.StatusPending),
		).
		SetStatus(step.StatusSkipped).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to skip step: %w", err)
	}
	if count == 0 {
		return nil, s.claimError(ctx, stepID)
	}
	return s.GetStep(ctx, stepID)
}

// DeleteStep removes a step
func (s *StepService) DeleteStep(ctx context.Context, stepID string) error {
	err := s.client.Step.DeleteOneID(stepID).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete step: %w", err)
	}
	return nil
}

// claimError distinguishes a missing step from a lost claim/transition race
// after a guarded update matched zero rows.
func (s *StepService) claimError(ctx context.Context, stepID string) error {
	exists, err := s.client.Step.Query().
		Where(step.IDEQ(stepID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check step: %w", err)
	}
	if !exists {
		return ErrNotFound
	}
	return ErrConcurrentModification
}
