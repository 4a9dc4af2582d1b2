package services

import (
	"context"
	"fmt"
	"time"

	"github.com/codeready-toolchain/agentloop/ent"
	"github.com/codeready-toolchain/agentloop/ent/agent"
	"github.com/codeready-toolchain/agentloop/pkg/models"
)

// AgentService manages the agent registry
type AgentService struct {
	client *ent.Client
}

// NewAgentService creates a new AgentService
func NewAgentService(client *ent.Client) *AgentService {
	return &AgentService{client: client}
}

// CreateAgent registers an agent in a project
func (s *AgentService) CreateAgent(ctx context.Context, req models.CreateAgentRequest) (*ent.Agent, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if req.Role == "" {
		return nil, NewValidationError("role", "required")
	}
	if req.ProjectID == "" {
		return nil, NewValidationError("project_id", "required")
	}

	builder := s.client.Agent.Create().
		SetID(newID()).
		SetName(req.Name).
		SetRole(req.Role).
		SetDescription(req.Description).
		SetProjectID(req.ProjectID)

	if req.Config != nil {
		builder.SetConfig(req.Config)
	}

	a, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create agent: %w", err)
	}

	return a, nil
}

// GetAgent retrieves an agent by ID
func (s *AgentService) GetAgent(ctx context.Context, agentID string) (*ent.Agent, error) {
	a, err := s.client.Agent.Get(ctx, agentID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}
	return a, nil
}

// ListAgents lists agents, optionally scoped to a project or status
func (s *AgentService) ListAgents(ctx context.Context, projectID, status string) (*models.AgentListResponse, error) {
	query := s.client.Agent.Query()

	if projectID != "" {
		query = query.Where(agent.ProjectIDEQ(projectID))
	}
	if status != "" {
		st := agent.Status(status)
		if err := agent.StatusValidator(st); err != nil {
			return nil, NewValidationError("status", err.Error())
		}
		query = query.Where(agent.StatusEQ(st))
	}

	agents, err := query.
		Order(ent.Asc(agent.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}

	return &models.AgentListResponse{
		Agents:     agents,
		TotalCount: len(agents),
	}, nil
}

// FirstActive returns the oldest ACTIVE agent in the project. Ordering is
// deterministic (created_at, then id) so repeated inbound syncs attribute
// synced proposals to the same agent.
func (s *AgentService) FirstActive(ctx context.Context, projectID string) (*ent.Agent, error) {
	a, err := s.client.Agent.Query().
		Where(
			agent.ProjectIDEQ(projectID),
			agent.StatusEQ(agent.StatusActive),
		).
		Order(ent.Asc(agent.FieldCreatedAt), ent.Asc(agent.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find active agent: %w", err)
	}
	return a, nil
}

// UpdateAgentStatus transitions an agent between active and paused
func (s *AgentService) UpdateAgentStatus(ctx context.Context, agentID, status string) (*ent.Agent, error) {
	st := agent.Status(status)
	if err := agent.StatusValidator(st); err != nil {
		return nil, NewValidationError("status", err.Error())
	}

	a, err := s.client.Agent.UpdateOneID(agentID).
		SetStatus(st).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update agent status: %w", err)
	}
	return a, nil
}

// UpdateAgentConfig replaces the agent's opaque config map
func (s *AgentService) UpdateAgentConfig(ctx context.Context, agentID string, config map[string]any) (*ent.Agent, error) {
	a, err := s.client.Agent.UpdateOneID(agentID).
		SetConfig(config).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update agent config: %w", err)
	}
	return a, nil
}

// Heartbeat records that the agent's work loop is alive
func (s *AgentService) Heartbeat(ctx context.Context, agentID string) error {
	err := s.client.Agent.UpdateOneID(agentID).
		SetLastSeenAt(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to record heartbeat: %w", err)
	}
	return nil
}

// ListStale returns ACTIVE agents whose last heartbeat is older than the
// cutoff. Agents that never heartbeat are not reported.
func (s *AgentService) ListStale(ctx context.Context, cutoff time.Time) ([]*ent.Agent, error) {
	agents, err := s.client.Agent.Query().
		Where(
			agent.StatusEQ(agent.StatusActive),
			agent.LastSeenAtNotNil(),
			agent.LastSeenAtLT(cutoff),
		).
		Order(ent.Asc(agent.FieldLastSeenAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stale agents: %w", err)
	}
	return agents, nil
}

// UpdatePose writes the UI pose fields; orchestration never reads them
func (s *AgentService) UpdatePose(ctx context.Context, agentID string, req models.UpdateAgentPoseRequest) (*ent.Agent, error) {
	update := s.client.Agent.UpdateOneID(agentID)

	if req.PositionX != nil {
		update.SetPositionX(*req.PositionX)
	}
	if req.PositionY != nil {
		update.SetPositionY(*req.PositionY)
	}
	if req.TargetX != nil {
		update.SetTargetX(*req.TargetX)
	}
	if req.TargetY != nil {
		update.SetTargetY(*req.TargetY)
	}
	if req.CurrentAction != nil {
		action := agent.CurrentAction(*req.CurrentAction)
		if err := agent.CurrentActionValidator(action); err != nil {
			return nil, NewValidationError("current_action", err.Error())
		}
		update.SetCurrentAction(action)
	}

	a, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update agent pose: %w", err)
	}
	return a, nil
}

// DeleteAgent removes an agent from the registry
func (s *AgentService) DeleteAgent(ctx context.Context, agentID string) error {
	err := s.client.Agent.DeleteOneID(agentID).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete agent: %w", err)
	}
	return nil
}
