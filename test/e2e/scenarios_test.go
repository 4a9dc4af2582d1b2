package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/agentloop/ent/mission"
	"github.com/codeready-toolchain/agentloop/ent/proposal"
	entstep "github.com/codeready-toolchain/agentloop/ent/step"
	"github.com/codeready-toolchain/agentloop/pkg/board"
	"github.com/codeready-toolchain/agentloop/pkg/models"
	"github.com/codeready-toolchain/agentloop/pkg/services"
)

// A proposal titled with an auto-approval keyword travels pending →
// approved → mission → step plan within a single tick.
func TestKeywordAutoApprovalToActiveMission(t *testing.T) {
	h := NewHarness(t, nil)
	ctx := context.Background()

	proj := h.SeedProject(t, "keyword")
	agent := h.SeedAgent(t, proj.ID, "Ada", "general_work")

	p, err := h.Proposals.CreateProposal(ctx, models.CreateProposalRequest{
		AgentID:     agent.ID,
		ProjectID:   proj.ID,
		Title:       "Fix typo in README",
		Status:      proposal.StatusPending,
		AutoApprove: true,
	})
	require.NoError(t, err)

	res := h.Orchestrator.Tick(ctx)
	assert.Empty(t, res.Errors)

	approved, err := h.Proposals.GetProposal(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, proposal.StatusApproved, approved.Status)
	require.NotNil(t, approved.ReviewedBy)
	assert.Equal(t, services.ReviewedBySystem, *approved.ReviewedBy)

	missions, err := h.Missions.ListMissions(ctx, models.MissionFilters{ProjectID: proj.ID})
	require.NoError(t, err)
	require.Len(t, missions.Missions, 1)
	m := missions.Missions[0]
	assert.Equal(t, p.ID, m.ProposalID)
	assert.Equal(t, mission.StatusActive, m.Status)
	require.NotNil(t, m.AssignedAgentID)
	assert.Equal(t, agent.ID, *m.AssignedAgentID)

	steps, err := h.Steps.ListSteps(ctx, m.ID)
	require.NoError(t, err)
	require.Len(t, steps.Steps, 4)
	wantTypes := []entstep.StepType{entstep.StepTypeResearch, entstep.StepTypeCode,
		entstep.StepTypeTest, entstep.StepTypeReview}
	for i, st := range steps.Steps {
		assert.Equal(t, i, st.OrderIndex)
		assert.Equal(t, wantTypes[i], st.StepType)
		assert.Equal(t, entstep.StatusPending, st.Status)
	}
}

// A proposal whose agent did not opt in to auto-approval is never touched
// by the tick.
func TestNonAutoApproveProposalStaysPending(t *testing.T) {
	h := NewHarness(t, nil)
	ctx := context.Background()

	proj := h.SeedProject(t, "manual")
	agent := h.SeedAgent(t, proj.ID, "Ada", "general_work")

	p, err := h.Proposals.CreateProposal(ctx, models.CreateProposalRequest{
		AgentID:   agent.ID,
		ProjectID: proj.ID,
		Title:     "Fix typo in README",
		Status:    proposal.StatusPending,
	})
	require.NoError(t, err)

	h.Orchestrator.Tick(ctx)

	reloaded, err := h.Proposals.GetProposal(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, proposal.StatusPending, reloaded.Status)
	assert.Nil(t, reloaded.ReviewedBy)
}

// The same board task appearing on two consecutive inbound syncs produces
// exactly one proposal carrying its task id.
func TestInboundSyncDeduplicatesBoardTasks(t *testing.T) {
	h := NewHarness(t, map[string]string{"b1": "synced"})
	ctx := context.Background()

	proj := h.SeedProject(t, "synced")
	h.SeedAgent(t, proj.ID, "Ada", "general_work")
	h.Board.SetTasks("b1", board.Task{
		ID: "t1", Title: "X", Status: "inbox", Priority: "high",
	})

	h.Orchestrator.Tick(ctx)
	h.Orchestrator.Tick(ctx)

	resp, err := h.Proposals.ListProposals(ctx, models.ProposalFilters{ProjectID: proj.ID})
	require.NoError(t, err)
	require.Len(t, resp.Proposals, 1)

	p := resp.Proposals[0]
	require.NotNil(t, p.McTaskID)
	assert.Equal(t, "t1", *p.McTaskID)
	require.NotNil(t, p.McBoardID)
	assert.Equal(t, "b1", *p.McBoardID)
	assert.Equal(t, proposal.PriorityHigh, p.Priority)
	assert.True(t, p.AutoApprove)
	// High priority carries no keyword and no delegation, so the proposal
	// waits for a human.
	assert.Equal(t, proposal.StatusPending, p.Status)
}

// A mission with only failed steps left is escalated to a human through the
// board's ask-user channel.
func TestStuckMissionEscalation(t *testing.T) {
	h := NewHarness(t, map[string]string{"b1": "stuck"})
	ctx := context.Background()

	proj := h.SeedProject(t, "stuck")
	agent := h.SeedAgent(t, proj.ID, "Ada", "general_work")

	prop, err := h.Proposals.CreateProposal(ctx, models.CreateProposalRequest{
		AgentID:   agent.ID,
		ProjectID: proj.ID,
		Title:     "Doomed work",
		Status:    proposal.StatusApproved,
		McTaskID:  "t1",
		McBoardID: "b1",
	})
	require.NoError(t, err)
	m, err := h.Missions.CreateFromProposal(ctx, prop)
	require.NoError(t, err)
	_, err = h.Missions.UpdateMissionStatus(ctx, m.ID, "active")
	require.NoError(t, err)

	for i, title := range []string{"Build it", "Test it"} {
		h.Client.Step.Create().
			SetID(fmt.Sprintf("00000000-0000-7000-8000-00000000000%d", i+1)).
			SetMissionID(m.ID).
			SetOrderIndex(i).
			SetTitle(title).
			SetStepType(entstep.StepTypeCode).
			SetStatus(entstep.StatusFailed).
			SetClaimedByAgentID(agent.ID).
			SetError("exit status 1").
			SaveX(ctx)
	}

	res := h.Orchestrator.Tick(ctx)
	assert.Empty(t, res.Errors)

	escalations := h.EventsOfType(t, models.EventMissionEscalated)
	require.Len(t, escalations, 1)
	assert.Equal(t, m.ID, escalations[0].Payload["mission_id"])

	calls := h.Board.AskUserCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "b1", calls[0].BoardID)
	assert.Contains(t, calls[0].Content, "stuck")
	assert.Contains(t, calls[0].Content, "Build it")
	assert.Equal(t, "stuck-mission-"+m.ID, calls[0].CorrelationID)
}

// A create_step trigger matching a step.completed event appends its step to
// the event's mission and records the firing.
func TestTriggerFanOutCreatesStep(t *testing.T) {
	h := NewHarness(t, nil)
	ctx := context.Background()

	proj := h.SeedProject(t, "fanout")
	agent := h.SeedAgent(t, proj.ID, "Ada", "general_work")

	prop, err := h.Proposals.CreateProposal(ctx, models.CreateProposalRequest{
		AgentID:   agent.ID,
		ProjectID: proj.ID,
		Title:     "Ship the feature",
		Status:    proposal.StatusApproved,
	})
	require.NoError(t, err)
	m, err := h.Missions.CreateFromProposal(ctx, prop)
	require.NoError(t, err)
	_, err = h.Steps.CreatePlan(ctx, m)
	require.NoError(t, err)

	trg, err := h.Triggers.CreateTrigger(ctx, models.CreateTriggerRequest{
		ProjectID:    proj.ID,
		Name:         "auto-deploy",
		EventPattern: map[string]any{"event_type": models.EventStepCompleted},
		Action: map[string]any{
			"type":        "create_step",
			"title":       "Auto-deploy",
			"step_type":   "deploy",
			"order_index": 99,
		},
	})
	require.NoError(t, err)

	_, err = h.Events.Append(ctx, models.AppendEventRequest{
		EventType: models.EventStepCompleted,
		ProjectID: proj.ID,
		Payload:   map[string]any{"mission_id": m.ID},
	})
	require.NoError(t, err)

	res := h.Orchestrator.Tick(ctx)
	assert.Empty(t, res.Errors)
	assert.GreaterOrEqual(t, res.TriggersFired, 1)

	steps, err := h.Steps.ListSteps(ctx, m.ID)
	require.NoError(t, err)
	require.Len(t, steps.Steps, 5)
	deploy := steps.Steps[4]
	assert.Equal(t, "Auto-deploy", deploy.Title)
	assert.Equal(t, entstep.StepTypeDeploy, deploy.StepType)
	assert.Equal(t, 99, deploy.OrderIndex)

	reloaded, err := h.Triggers.GetTrigger(ctx, trg.ID)
	require.NoError(t, err)
	assert.NotNil(t, reloaded.LastFiredAt)
}

// The retention phase deletes only events past the 30-day window and
// expires only pending proposals past the 7-day window.
func TestRetentionPhase(t *testing.T) {
	h := NewHarness(t, nil)
	ctx := context.Background()

	proj := h.SeedProject(t, "retention")
	agent := h.SeedAgent(t, proj.ID, "Ada", "general_work")

	oldEvent := h.Client.Event.Create().
		SetID("00000000-0000-7000-8000-000000000001").
		SetEventType("agent.note").
		SetProjectID(proj.ID).
		SetCreatedAt(time.Now().Add(-31 * 24 * time.Hour)).
		SaveX(ctx)
	freshEvent, err := h.Events.Append(ctx, models.AppendEventRequest{
		EventType: "agent.note", ProjectID: proj.ID,
	})
	require.NoError(t, err)

	oldProposal := h.Client.Proposal.Create().
		SetID("00000000-0000-7000-8000-000000000002").
		SetAgentID(agent.ID).
		SetProjectID(proj.ID).
		SetTitle("Stale idea").
		SetStatus(proposal.StatusPending).
		SetCreatedAt(time.Now().Add(-8 * 24 * time.Hour)).
		SaveX(ctx)
	freshProposal, err := h.Proposals.CreateProposal(ctx, models.CreateProposalRequest{
		AgentID:   agent.ID,
		ProjectID: proj.ID,
		Title:     "Fresh idea",
		Status:    proposal.StatusPending,
	})
	require.NoError(t, err)

	res := h.Orchestrator.Tick(ctx)
	assert.Empty(t, res.Errors)

	_, err = h.Events.GetEvent(ctx, oldEvent.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
	_, err = h.Events.GetEvent(ctx, freshEvent.ID)
	assert.NoError(t, err)

	stale, err := h.Proposals.GetProposal(ctx, oldProposal.ID)
	require.NoError(t, err)
	assert.Equal(t, proposal.StatusExpired, stale.Status)
	fresh, err := h.Proposals.GetProposal(ctx, freshProposal.ID)
	require.NoError(t, err)
	assert.Equal(t, proposal.StatusPending, fresh.Status)
}

// An approved board-synced proposal runs through worker cycles to mission
// completion, and the close is reported back to the board task.
func TestFullLoopReportsCompletionToBoard(t *testing.T) {
	h := NewHarness(t, map[string]string{"b1": "loop"})
	ctx := context.Background()

	proj := h.SeedProject(t, "loop")
	agent := h.SeedAgent(t, proj.ID, "Ada", "general_work")

	_, err := h.Proposals.CreateProposal(ctx, models.CreateProposalRequest{
		AgentID:     agent.ID,
		ProjectID:   proj.ID,
		Title:       "Fix login flow",
		Status:      proposal.StatusPending,
		AutoApprove: true,
		McTaskID:    "t1",
		McBoardID:   "b1",
	})
	require.NoError(t, err)

	// First tick: approval, mission, step plan.
	res := h.Orchestrator.Tick(ctx)
	assert.Empty(t, res.Errors)

	// Work the four planned steps through the stub dispatcher.
	for i := 0; i < 4; i++ {
		cycle := h.Orchestrator.WorkCycle(ctx, agent.ID)
		assert.Empty(t, cycle.Errors)
		assert.Equal(t, 1, cycle.StepsExecuted)
	}
	assert.Len(t, h.Stub.Calls(), 4)

	// Second tick: the mission closes and the board is notified.
	res = h.Orchestrator.Tick(ctx)
	assert.Empty(t, res.Errors)

	missions, err := h.Missions.ListMissions(ctx, models.MissionFilters{ProjectID: proj.ID})
	require.NoError(t, err)
	require.Len(t, missions.Missions, 1)
	assert.Equal(t, mission.StatusCompleted, missions.Missions[0].Status)

	completions := h.EventsOfType(t, models.EventMissionCompleted)
	require.Len(t, completions, 1)

	patches := h.Board.Patches()
	require.Len(t, patches, 1)
	assert.Equal(t, TaskPatch{BoardID: "b1", TaskID: "t1", Status: "review",
		Comment: "Completed by Ada via AgentLoop."}, patches[0])

	comments := h.Board.Comments()
	require.Len(t, comments, 1)
	assert.Contains(t, comments[0].Content, "Mission completed: Fix login flow")
	assert.Contains(t, comments[0].Content, "[AgentLoop] Ada")
}

// Stream frames announcing open tasks trigger the sync callback, and a
// dropped stream connection is reopened.
func TestStreamDrivenSyncAndReconnect(t *testing.T) {
	h := NewHarness(t, map[string]string{"b1": "streamed"})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h.Board.SetStreamFrames(
		"event: task.created\ndata: {\"id\":\"t1\",\"title\":\"X\",\"status\":\"inbox\"}\n\n",
		"event: task.updated\ndata: {\"id\":\"t1\",\"title\":\"X\",\"status\":\"done\"}\n\n",
	)

	syncs := make(chan string, 10)
	ingestor := board.NewIngestor(h.BoardClient, func(boardID string) {
		syncs <- boardID
	}, slog.Default())
	defer ingestor.Stop()

	ingestor.StartBoard(ctx, "b1")
	assert.Equal(t, 1, ingestor.ActiveStreams())

	// Only the inbox frame requests a sync; the done frame is ignored.
	select {
	case got := <-syncs:
		assert.Equal(t, "b1", got)
	case <-time.After(2 * time.Second):
		t.Fatal("expected a sync request from the task stream")
	}
	assert.Empty(t, syncs)

	// The connection drops after the scripted frames; the consumer must
	// come back with backoff.
	require.Eventually(t, func() bool {
		return h.Board.StreamConnections() >= 2
	}, 5*time.Second, 50*time.Millisecond, "consumer should reconnect after the drop")
}
