package builtin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/codeready-toolchain/agentloop/ent"
	"github.com/codeready-toolchain/agentloop/ent/project"
	"github.com/codeready-toolchain/agentloop/ent/proposal"
	"github.com/codeready-toolchain/agentloop/ent/step"
	"github.com/codeready-toolchain/agentloop/pkg/board"
	"github.com/codeready-toolchain/agentloop/pkg/config"
	"github.com/codeready-toolchain/agentloop/pkg/events"
	"github.com/codeready-toolchain/agentloop/pkg/models"
	"github.com/codeready-toolchain/agentloop/pkg/plugin"
	"github.com/codeready-toolchain/agentloop/pkg/services"
)

// fallbackAgentName appears in board comments when a mission has no
// resolvable assigned agent.
const fallbackAgentName = "AgentLoop"

// taskPriorities maps board task priorities onto proposal priorities.
// Unknown values fall back to medium.
var taskPriorities = map[string]proposal.Priority{
	"critical": proposal.PriorityCritical,
	"high":     proposal.PriorityHigh,
	"medium":   proposal.PriorityMedium,
	"low":      proposal.PriorityLow,
}

// missionControlPlugin connects the loop to the Mission Control board:
// inbound task sync into proposals, outbound completion reports, and stuck
// mission escalation to a human.
type missionControlPlugin struct {
	settings  *config.Settings
	board     *board.Client
	ingestor  *board.Ingestor
	publisher *events.Publisher
	projects  *services.ProjectService
	agents    *services.AgentService
	proposals *services.ProposalService
	steps     *services.StepService
	logger    *slog.Logger
}

func missionControlBuilder(d Deps) plugin.Builder {
	return func(m plugin.Manifest, bus *plugin.HookBus) error {
		p := &missionControlPlugin{
			settings:  d.Settings,
			board:     d.Board,
			ingestor:  d.Ingestor,
			publisher: d.Publisher,
			projects:  services.NewProjectService(d.Client),
			agents:    services.NewAgentService(d.Client),
			proposals: services.NewProposalService(d.Client),
			steps:     services.NewStepService(d.Client),
			logger:    d.Logger.With("plugin", "mission-control"),
		}
		bus.Register(m.Name, plugin.HookOnStartup, p.onStartup)
		bus.Register(m.Name, plugin.HookOnShutdown, p.onShutdown)
		bus.Register(m.Name, plugin.HookOnTickSync, p.onTickSync)
		bus.Register(m.Name, plugin.HookOnMissionComplete, p.onMissionComplete)
		bus.Register(m.Name, plugin.HookOnStuckCheck, p.onStuckCheck)
		return nil
	}
}

func (p *missionControlPlugin) onStartup(ctx context.Context, _ plugin.HookContext) (any, error) {
	p.ingestor.StartAll(ctx, p.settings.BoardMap)
	p.logger.Info("Mission Control plugin started", "boards", len(p.settings.BoardMap))
	return nil, nil
}

func (p *missionControlPlugin) onShutdown(_ context.Context, _ plugin.HookContext) (any, error) {
	p.ingestor.Stop()
	p.logger.Info("Mission Control plugin stopped")
	return nil, nil
}

// onTickSync pulls open board tasks into pending proposals. Returns the
// number of proposals created so the tick can count them as actions.
func (p *missionControlPlugin) onTickSync(ctx context.Context, _ plugin.HookContext) (any, error) {
	if len(p.settings.BoardMap) == 0 || !p.board.Configured() {
		return 0, nil
	}

	created := 0
	for boardID, slug := range p.settings.BoardMap {
		n, err := p.syncBoard(ctx, boardID, slug)
		if err != nil {
			p.logger.Warn("Board sync failed", "board_id", boardID, "error", err)
			continue
		}
		created += n
	}
	return created, nil
}

// syncBoard imports the open tasks of one board. Tasks already synced (by
// mc_task_id) are skipped, so repeated syncs are idempotent.
func (p *missionControlPlugin) syncBoard(ctx context.Context, boardID, slug string) (int, error) {
	proj, err := p.projects.GetProjectBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	if proj.Status == project.StatusDecommissioned {
		return 0, nil
	}

	agent, err := p.agents.FirstActive(ctx, proj.ID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}

	tasks, err := p.board.OpenTasks(ctx, boardID)
	if err != nil {
		return 0, err
	}

	created := 0
	for _, task := range tasks {
		if task.ID == "" {
			continue
		}
		existing, err := p.proposals.FindByTaskID(ctx, task.ID)
		if err != nil {
			return created, err
		}
		if existing != nil {
			continue
		}

		priority, ok := taskPriorities[task.Priority]
		if !ok {
			priority = proposal.PriorityMedium
		}
		title := task.Title
		if title == "" {
			title = "Untitled MC Task"
		}

		_, err = p.proposals.CreateProposal(ctx, models.CreateProposalRequest{
			AgentID:     agent.ID,
			ProjectID:   proj.ID,
			Title:       title,
			Description: task.Description,
			Rationale:   fmt.Sprintf("Synced from Mission Control task %s", task.ID),
			Priority:    priority,
			Status:      proposal.StatusPending,
			AutoApprove: priority == proposal.PriorityCritical || priority == proposal.PriorityHigh,
			McTaskID:    task.ID,
			McBoardID:   boardID,
		})
		if err != nil {
			// A concurrent sync winning the unique mc_task_id race is fine.
			if errors.Is(err, services.ErrAlreadyExists) {
				continue
			}
			return created, err
		}
		created++
		p.logger.Info("Proposal synced from board task",
			"board_id", boardID, "task_id", task.ID, "title", title, "priority", priority)
	}
	return created, nil
}

// onMissionComplete reports a finished mission back to its board task: an
// activity comment plus a status move to review for human sign-off.
func (p *missionControlPlugin) onMissionComplete(ctx context.Context, hc plugin.HookContext) (any, error) {
	m := hc.Mission
	if m == nil {
		return nil, nil
	}

	prop, err := p.proposals.GetProposal(ctx, m.ProposalID)
	if err != nil {
		return nil, err
	}
	if prop.McTaskID == nil || prop.McBoardID == nil {
		return nil, nil
	}

	agentName := p.agentName(ctx, m)
	if err := p.board.ReportAgentActivity(ctx, *prop.McBoardID, *prop.McTaskID,
		agentName, fmt.Sprintf("Mission completed: %s", m.Title)); err != nil {
		p.logger.Warn("Board activity report failed", "mission_id", m.ID, "error", err)
	}
	if _, err := p.board.UpdateTaskStatus(ctx, *prop.McBoardID, *prop.McTaskID,
		"review", fmt.Sprintf("Completed by %s via AgentLoop.", agentName)); err != nil {
		p.logger.Warn("Board status update failed", "mission_id", m.ID, "error", err)
	}
	return nil, nil
}

// onStuckCheck escalates one stuck mission to a human through the board's
// ask-user channel and records a mission.escalated event. Returns 1 when an
// escalation went out.
func (p *missionControlPlugin) onStuckCheck(ctx context.Context, hc plugin.HookContext) (any, error) {
	m := hc.Mission
	if m == nil {
		return 0, nil
	}

	prop, err := p.proposals.GetProposal(ctx, m.ProposalID)
	if err != nil {
		return 0, err
	}
	if prop.McBoardID == nil {
		return 0, nil
	}

	failed, err := p.firstFailedStep(ctx, m)
	if err != nil {
		return 0, err
	}
	if failed == nil {
		return 0, nil
	}

	stepErr := "unknown"
	if failed.Error != nil && *failed.Error != "" {
		stepErr = *failed.Error
	}
	msg := fmt.Sprintf(
		"Mission '%s' is stuck.\nFailed step: %s (%s)\nError: %s\n\nPlease advise: retry, skip, or cancel?",
		m.Title, failed.Title, failed.StepType, stepErr)

	if err := p.board.AskUser(ctx, *prop.McBoardID, msg, "stuck-mission-"+m.ID); err != nil {
		return 0, err
	}
	p.logger.Info("Escalated stuck mission to human", "mission_id", m.ID)

	req := models.AppendEventRequest{
		EventType: models.EventMissionEscalated,
		ProjectID: m.ProjectID,
		Payload: map[string]any{
			"mission_id":     m.ID,
			"failed_step_id": failed.ID,
			"reason":         "stuck_failed_steps",
		},
	}
	if m.AssignedAgentID != nil {
		req.SourceAgentID = *m.AssignedAgentID
	}
	if _, err := p.publisher.Publish(ctx, req); err != nil {
		p.logger.Error("Failed to publish mission.escalated event",
			"mission_id", m.ID, "error", err)
	}
	return 1, nil
}

func (p *missionControlPlugin) agentName(ctx context.Context, m *ent.Mission) string {
	if m.AssignedAgentID == nil {
		return fallbackAgentName
	}
	agent, err := p.agents.GetAgent(ctx, *m.AssignedAgentID)
	if err != nil {
		return fallbackAgentName
	}
	return agent.Name
}

func (p *missionControlPlugin) firstFailedStep(ctx context.Context, m *ent.Mission) (*ent.Step, error) {
	steps := m.Edges.Steps
	if steps == nil {
		resp, err := p.steps.ListSteps(ctx, m.ID)
		if err != nil {
			return nil, err
		}
		steps = resp.Steps
	}
	for _, s := range steps {
		if s.Status == step.StatusFailed {
			return s, nil
		}
	}
	return nil, nil
}
