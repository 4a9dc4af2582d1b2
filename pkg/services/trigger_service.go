package services

import (
	"context"
	"fmt"
	"time"

	"github.com/codeready-toolchain/agentloop/ent"
	"github.com/codeready-toolchain/agentloop/ent/trigger"
	"github.com/codeready-toolchain/agentloop/pkg/models"
)

// TriggerService manages declarative event-to-action rules
type TriggerService struct {
	client *ent.Client
}

// NewTriggerService creates a new TriggerService
func NewTriggerService(client *ent.Client) *TriggerService {
	return &TriggerService{client: client}
}

// CreateTrigger creates a trigger. The pattern and action maps are stored
// as-is; the evaluator validates the action tag when it fires.
func (s *TriggerService) CreateTrigger(ctx context.Context, req models.CreateTriggerRequest) (*ent.Trigger, error) {
	if req.ProjectID == "" {
		return nil, NewValidationError("project_id", "required")
	}
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if req.EventPattern == nil {
		return nil, NewValidationError("event_pattern", "required")
	}
	if req.Action == nil {
		return nil, NewValidationError("action", "required")
	}

	builder := s.client.Trigger.Create().
		SetID(newID()).
		SetProjectID(req.ProjectID).
		SetName(req.Name).
		SetEventPattern(req.EventPattern).
		SetAction(req.Action)

	if req.Enabled != nil {
		builder.SetEnabled(*req.Enabled)
	}

	t, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create trigger: %w", err)
	}

	return t, nil
}

// GetTrigger retrieves a trigger by ID
func (s *TriggerService) GetTrigger(ctx context.Context, triggerID string) (*ent.Trigger, error) {
	t, err := s.client.Trigger.Get(ctx, triggerID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get trigger: %w", err)
	}
	return t, nil
}

// ListTriggers lists triggers, optionally scoped to a project
func (s *TriggerService) ListTriggers(ctx context.Context, projectID string) (*models.TriggerListResponse, error) {
	query := s.client.Trigger.Query()

	if projectID != "" {
		query = query.Where(trigger.ProjectIDEQ(projectID))
	}

	triggers, err := query.
		Order(ent.Asc(trigger.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list triggers: %w", err)
	}

	return &models.TriggerListResponse{
		Triggers:   triggers,
		TotalCount: len(triggers),
	}, nil
}

// ListEnabled returns enabled triggers in creation order, the evaluation
// order of the trigger phase.
func (s *TriggerService) ListEnabled(ctx context.Context) ([]*ent.Trigger, error) {
	triggers, err := s.client.Trigger.Query().
		Where(trigger.EnabledEQ(true)).
		Order(ent.Asc(trigger.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list enabled triggers: %w", err)
	}
	return triggers, nil
}

// SetEnabled flips a trigger on or off
func (s *TriggerService) SetEnabled(ctx context.Context, triggerID string, enabled bool) (*ent.Trigger, error) {
	t, err := s.client.Trigger.UpdateOneID(triggerID).
		SetEnabled(enabled).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update trigger: %w", err)
	}
	return t, nil
}

// MarkFired stamps last_fired_at after a successful action execution
func (s *TriggerService) MarkFired(ctx context.Context, triggerID string, firedAt time.Time) error {
	err := s.client.Trigger.UpdateOneID(triggerID).
		SetLastFiredAt(firedAt).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark trigger fired: %w", err)
	}
	return nil
}

// DeleteTrigger removes a trigger
func (s *TriggerService) DeleteTrigger(ctx context.Context, triggerID string) error {
	err := s.client.Trigger.DeleteOneID(triggerID).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete trigger: %w", err)
	}
	return nil
}
