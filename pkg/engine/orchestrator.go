// Package engine implements the closed-loop orchestration cycle: pending
// proposals are auto-approved by policy, approved proposals materialize
// into missions and step plans, agents execute steps through pluggable
// dispatch backends, and triggers react to the event log. The Orchestrator
// ties the phases into a tick; Scheduler and WorkerPool drive ticks and
// agent work cycles continuously.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/codeready-toolchain/agentloop/ent"
	"github.com/codeready-toolchain/agentloop/pkg/events"
	"github.com/codeready-toolchain/agentloop/pkg/metrics"
	"github.com/codeready-toolchain/agentloop/pkg/models"
	"github.com/codeready-toolchain/agentloop/pkg/plugin"
	"github.com/codeready-toolchain/agentloop/pkg/services"
)

// Retention windows applied by the cleanup phase.
const (
	eventRetention     = 30 * 24 * time.Hour
	proposalPendingTTL = 7 * 24 * time.Hour
)

// Orchestrator drives one full pass of the closed loop per Tick and runs
// per-agent work cycles.
type Orchestrator struct {
	proposals *services.ProposalService
	missions  *services.MissionService
	steps     *services.StepService
	events    *services.EventService
	agents    *services.AgentService
	approval  *ApprovalEngine
	triggers  *TriggerEvaluator
	worker    *WorkerEngine
	publisher *events.Publisher
	hooks     *plugin.HookBus
	logger    *slog.Logger
}

// NewOrchestrator creates the orchestrator and its approval and trigger
// engines on the shared ent client.
func NewOrchestrator(client *ent.Client, publisher *events.Publisher, hooks *plugin.HookBus, worker *WorkerEngine, logger *slog.Logger) *Orchestrator {
	return &Orchestrator{
		proposals: services.NewProposalService(client),
		missions:  services.NewMissionService(client),
		steps:     services.NewStepService(client),
		events:    services.NewEventService(client),
		agents:    services.NewAgentService(client),
		approval:  NewApprovalEngine(client, logger),
		triggers:  NewTriggerEvaluator(client, publisher, logger),
		worker:    worker,
		publisher: publisher,
		hooks:     hooks,
		logger:    logger.With("component", "engine.orchestrator"),
	}
}

// Tick runs one orchestration cycle. Phases execute in a fixed order and a
// failing phase is recorded in the result instead of aborting the tick.
func (o *Orchestrator) Tick(ctx context.Context) *models.OrchestrationResult {
	start := time.Now()
	res := &models.OrchestrationResult{Errors: []string{}}

	o.logger.Debug("Orchestration tick started")

	// 1. Pull new work in from connected boards.
	o.phase(res, "sync", func() error {
		results := o.hooks.Dispatch(ctx, plugin.HookOnTickSync, plugin.HookContext{})
		if created := plugin.SumInts(results); created > 0 {
			o.logger.Info("Inbound sync created proposals", "count", created)
			res.ActionsExecuted += created
		}
		return nil
	})

	// 2. Auto-approve pending proposals by policy.
	o.phase(res, "approvals", func() error {
		approved, err := o.approval.ProcessPending(ctx)
		if err != nil {
			return err
		}
		res.ActionsExecuted += len(approved)
		return nil
	})

	// 3. Fire triggers against the recent event window.
	o.phase(res, "triggers", func() error {
		return o.triggers.Evaluate(ctx, res)
	})

	// 4. Materialize approved proposals into missions.
	o.phase(res, "materialize_missions", func() error {
		return o.materializeMissions(ctx, res)
	})

	// 5. Give planned missions their step plans and activate them.
	o.phase(res, "materialize_steps", func() error {
		return o.materializeSteps(ctx, res)
	})

	// 6. Close missions whose steps are all done.
	o.phase(res, "close_missions", func() error {
		return o.closeMissions(ctx, res)
	})

	// 7. Escalate stuck missions to a human.
	o.phase(res, "escalation", func() error {
		return o.escalateStuck(ctx, res)
	})

	// 8. Apply retention to old events and stale pending proposals.
	o.phase(res, "retention", func() error {
		return o.applyRetention(ctx, res)
	})

	res.DurationMS = millisSince(start)
	metrics.TickDuration.Observe(time.Since(start).Seconds())
	metrics.TickActions.Add(float64(res.ActionsExecuted))
	metrics.TickErrors.Add(float64(len(res.Errors)))
	metrics.TriggersFired.Add(float64(res.TriggersFired))
	o.logger.Info("Orchestration tick finished",
		"triggers_evaluated", res.TriggersEvaluated,
		"triggers_fired", res.TriggersFired,
		"events_processed", res.EventsProcessed,
		"actions_executed", res.ActionsExecuted,
		"errors", len(res.Errors),
		"duration_ms", res.DurationMS)
	return res
}

// phase runs one tick phase, converting its failure into a recorded error.
func (o *Orchestrator) phase(res *models.OrchestrationResult, name string, fn func() error) {
	if err := fn(); err != nil {
		o.logger.Error("Tick phase failed", "phase", name, "error", err)
		res.Errors = append(res.Errors, fmt.Sprintf("%s: %v", name, err))
	}
}

// materializeMissions creates a planned mission for every approved proposal
// that does not have one yet.
func (o *Orchestrator) materializeMissions(ctx context.Context, res *models.OrchestrationResult) error {
	approved, err := o.missions.ListApprovedProposalsWithoutMission(ctx)
	if err != nil {
		return err
	}
	for _, p := range approved {
		m, err := o.missions.CreateFromProposal(ctx, p)
		if err != nil {
			res.Errors = append(res.Errors,
				fmt.Sprintf("materialize_missions: proposal %s: %v", p.ID, err))
			continue
		}
		res.ActionsExecuted++
		o.logger.Info("Mission materialized",
			"mission_id", m.ID, "proposal_id", p.ID, "title", m.Title)
	}
	return nil
}

// materializeSteps gives every planned mission without steps its default
// plan, which also activates the mission.
func (o *Orchestrator) materializeSteps(ctx context.Context, res *models.OrchestrationResult) error {
	planned, err := o.missions.ListPlannedWithoutSteps(ctx)
	if err != nil {
		return err
	}
	for _, m := range planned {
		created, err := o.steps.CreatePlan(ctx, m)
		if err != nil {
			res.Errors = append(res.Errors,
				fmt.Sprintf("materialize_steps: mission %s: %v", m.ID, err))
			continue
		}
		res.ActionsExecuted += len(created)
		o.logger.Info("Step plan materialized",
			"mission_id", m.ID, "steps", len(created))
	}
	return nil
}

// closeMissions completes every active mission whose steps all finished,
// then emits mission.completed and lets plugins report outbound.
func (o *Orchestrator) closeMissions(ctx context.Context, res *models.OrchestrationResult) error {
	active, err := o.missions.ListActive(ctx)
	if err != nil {
		return err
	}
	for _, m := range active {
		closed, closedNow, err := o.missions.CompleteIfAllStepsDone(ctx, m.ID)
		if err != nil {
			res.Errors = append(res.Errors,
				fmt.Sprintf("close_missions: mission %s: %v", m.ID, err))
			continue
		}
		if !closedNow {
			continue
		}
		res.ActionsExecuted++
		o.logger.Info("Mission completed", "mission_id", m.ID, "title", m.Title)
		publishMissionCompleted(ctx, o.publisher, closed, o.logger)
		o.hooks.Dispatch(ctx, plugin.HookOnMissionComplete,
			plugin.HookContext{Mission: closed})
	}
	return nil
}

// escalateStuck routes stuck missions to the escalation hooks. Plugins post
// the human escalation and emit mission.escalated; their returned counts
// feed the result.
func (o *Orchestrator) escalateStuck(ctx context.Context, res *models.OrchestrationResult) error {
	stuck, err := o.missions.ListStuck(ctx)
	if err != nil {
		return err
	}
	for _, m := range stuck {
		o.logger.Warn("Mission is stuck", "mission_id", m.ID, "title", m.Title)
		results := o.hooks.Dispatch(ctx, plugin.HookOnStuckCheck,
			plugin.HookContext{Mission: m})
		res.ActionsExecuted += plugin.SumInts(results)
	}
	return nil
}

// applyRetention deletes expired events and expires stale pending
// proposals. The two halves run independently.
func (o *Orchestrator) applyRetention(ctx context.Context, res *models.OrchestrationResult) error {
	deleted, err := o.events.DeleteOlderThan(ctx, time.Now().Add(-eventRetention))
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("retention: events: %v", err))
	}
	expired, err := o.proposals.ExpirePendingOlderThan(ctx, time.Now().Add(-proposalPendingTTL))
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("retention: proposals: %v", err))
	}
	if deleted > 0 || expired > 0 {
		res.ActionsExecuted += deleted + expired
		o.logger.Info("Retention applied",
			"events_deleted", deleted, "proposals_expired", expired)
	}
	return nil
}

// WorkCycle refreshes the agent's heartbeat and runs one find-and-execute
// pass for it.
func (o *Orchestrator) WorkCycle(ctx context.Context, agentID string) *models.WorkCycleResult {
	start := time.Now()
	res := &models.WorkCycleResult{AgentID: agentID, Errors: []string{}}

	a, err := o.agents.GetAgent(ctx, agentID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			res.Errors = append(res.Errors, fmt.Sprintf("Agent %s not found", agentID))
		} else {
			res.Errors = append(res.Errors,
				fmt.Sprintf("Work cycle failed for agent %s: %v", agentID, err))
		}
		res.DurationMS = millisSince(start)
		return res
	}

	if err := o.agents.Heartbeat(ctx, a.ID); err != nil {
		res.Errors = append(res.Errors,
			fmt.Sprintf("Work cycle failed for agent %s: %v", agentID, err))
		res.DurationMS = millisSince(start)
		return res
	}

	executed, err := o.worker.FindAndExecuteWork(ctx, a)
	res.StepsExecuted = executed
	if err != nil {
		res.Errors = append(res.Errors,
			fmt.Sprintf("Work cycle failed for agent %s: %v", agentID, err))
	}

	res.DurationMS = millisSince(start)
	return res
}

// publishMissionCompleted appends the mission.completed event. The close
// phase and the completion trigger action both route through here; the
// mission state change has already committed, so failures only log.
func publishMissionCompleted(ctx context.Context, pub *events.Publisher, m *ent.Mission, logger *slog.Logger) {
	req := models.AppendEventRequest{
		EventType: models.EventMissionCompleted,
		ProjectID: m.ProjectID,
		Payload: map[string]any{
			"mission_id":  m.ID,
			"proposal_id": m.ProposalID,
		},
	}
	if m.AssignedAgentID != nil {
		req.SourceAgentID = *m.AssignedAgentID
	}
	if _, err := pub.Publish(ctx, req); err != nil {
		logger.Error("Failed to publish mission.completed",
			"mission_id", m.ID, "error", err)
	}
}

func millisSince(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000.0
}
