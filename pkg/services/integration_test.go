package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/agentloop/ent"
	"github.com/codeready-toolchain/agentloop/ent/proposal"
	"github.com/codeready-toolchain/agentloop/ent/step"
	"github.com/codeready-toolchain/agentloop/pkg/models"
	"github.com/codeready-toolchain/agentloop/pkg/services"
	testdb "github.com/codeready-toolchain/agentloop/test/database"
)

// seedProject creates a project for service tests.
func seedProject(t *testing.T, client *ent.Client, slug string) *ent.Project {
	t.Helper()
	p, err := services.NewProjectService(client).CreateProject(context.Background(),
		models.CreateProjectRequest{Name: "Project " + slug, Slug: slug})
	require.NoError(t, err)
	return p
}

// seedAgent creates an active agent bound to the project.
func seedAgent(t *testing.T, client *ent.Client, projectID, name string, config map[string]any) *ent.Agent {
	t.Helper()
	a, err := services.NewAgentService(client).CreateAgent(context.Background(),
		models.CreateAgentRequest{Name: name, Role: "developer", ProjectID: projectID, Config: config})
	require.NoError(t, err)
	return a
}

func seedProposal(t *testing.T, client *ent.Client, req models.CreateProposalRequest) *ent.Proposal {
	t.Helper()
	p, err := services.NewProposalService(client).CreateProposal(context.Background(), req)
	require.NoError(t, err)
	return p
}

func TestProposalManualTransitions(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	svc := services.NewProposalService(client)

	proj := seedProject(t, client, "transitions")
	agent := seedAgent(t, client, proj.ID, "Ada", nil)

	p := seedProposal(t, client, models.CreateProposalRequest{
		AgentID: agent.ID, ProjectID: proj.ID,
		Title: "Migrate billing", Status: proposal.StatusPending,
	})

	approved, err := svc.Approve(ctx, p.ID, "alice")
	require.NoError(t, err)
	assert.Equal(t, proposal.StatusApproved, approved.Status)
	require.NotNil(t, approved.ReviewedBy)
	assert.Equal(t, "alice", *approved.ReviewedBy)
	assert.NotNil(t, approved.ReviewedAt)

	// Approving again is a conflict, not a state change.
	_, err = svc.Approve(ctx, p.ID, "bob")
	assert.ErrorIs(t, err, services.ErrInvalidTransition)

	_, err = svc.Reject(ctx, p.ID, "bob", "too risky")
	assert.ErrorIs(t, err, services.ErrInvalidTransition)

	reloaded, err := svc.GetProposal(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, proposal.StatusApproved, reloaded.Status)
	assert.Equal(t, "alice", *reloaded.ReviewedBy)
}

func TestProposalRejectAppendsReason(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	svc := services.NewProposalService(client)

	proj := seedProject(t, client, "reject")
	agent := seedAgent(t, client, proj.ID, "Ada", nil)

	p := seedProposal(t, client, models.CreateProposalRequest{
		AgentID: agent.ID, ProjectID: proj.ID,
		Title: "Rewrite everything", Rationale: "It would be fun",
		Status: proposal.StatusPending,
	})

	rejected, err := svc.Reject(ctx, p.ID, "carol", "scope too large")
	require.NoError(t, err)
	assert.Equal(t, proposal.StatusRejected, rejected.Status)
	assert.Contains(t, rejected.Rationale, "It would be fun")
	assert.Contains(t, rejected.Rationale, "scope too large")
	require.NotNil(t, rejected.ReviewedBy)
	assert.Equal(t, "carol", *rejected.ReviewedBy)
}

func TestProposalTaskIDDedup(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	svc := services.NewProposalService(client)

	proj := seedProject(t, client, "dedup")
	agent := seedAgent(t, client, proj.ID, "Ada", nil)

	first := seedProposal(t, client, models.CreateProposalRequest{
		AgentID: agent.ID, ProjectID: proj.ID,
		Title: "Synced task", Status: proposal.StatusPending,
		McTaskID: "task-1", McBoardID: "board-1",
	})

	// The unique partial index on mc_task_id rejects a second sync.
	_, err := svc.CreateProposal(ctx, models.CreateProposalRequest{
		AgentID: agent.ID, ProjectID: proj.ID,
		Title: "Synced task again", Status: proposal.StatusPending,
		McTaskID: "task-1", McBoardID: "board-1",
	})
	assert.ErrorIs(t, err, services.ErrAlreadyExists)

	found, err := svc.FindByTaskID(ctx, "task-1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, first.ID, found.ID)

	missing, err := svc.FindByTaskID(ctx, "task-2")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestStepClaimProtocol(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	steps := services.NewStepService(client)
	missions := services.NewMissionService(client)

	proj := seedProject(t, client, "claims")
	alice := seedAgent(t, client, proj.ID, "Alice", nil)
	bob := seedAgent(t, client, proj.ID, "Bob", nil)

	prop := seedProposal(t, client, models.CreateProposalRequest{
		AgentID: alice.ID, ProjectID: proj.ID,
		Title: "Claim test", Status: proposal.StatusApproved,
	})
	m, err := missions.CreateFromProposal(ctx, prop)
	require.NoError(t, err)

	st, err := steps.CreateStep(ctx, models.CreateStepRequest{
		MissionID: m.ID, OrderIndex: 0, Title: "Write code", StepType: step.StepTypeCode,
	})
	require.NoError(t, err)
	assert.Equal(t, step.StatusPending, st.Status)
	assert.Nil(t, st.ClaimedByAgentID)

	claimed, err := steps.Claim(ctx, st.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, step.StatusClaimed, claimed.Status)
	require.NotNil(t, claimed.ClaimedByAgentID)
	assert.Equal(t, alice.ID, *claimed.ClaimedByAgentID)

	// Re-claiming by the same agent is a no-op success.
	_, err = steps.Claim(ctx, st.ID, alice.ID)
	require.NoError(t, err)

	// A second agent cannot steal the claim.
	_, err = steps.Claim(ctx, st.ID, bob.ID)
	assert.ErrorIs(t, err, services.ErrConcurrentModification)

	// Starting requires the claiming agent.
	_, err = steps.Start(ctx, st.ID, bob.ID)
	assert.ErrorIs(t, err, services.ErrConcurrentModification)

	running, err := steps.Start(ctx, st.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, step.StatusRunning, running.Status)
	assert.NotNil(t, running.StartedAt)

	done, err := steps.Complete(ctx, st.ID, "all good")
	require.NoError(t, err)
	assert.Equal(t, step.StatusCompleted, done.Status)
	require.NotNil(t, done.Output)
	assert.Equal(t, "all good", *done.Output)
	assert.NotNil(t, done.CompletedAt)

	// Terminal steps reject further transitions.
	_, err = steps.Fail(ctx, st.ID, "late failure")
	assert.ErrorIs(t, err, services.ErrConcurrentModification)
}

func TestStepSelectionExcludesOtherAgentsClaims(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	steps := services.NewStepService(client)
	missions := services.NewMissionService(client)

	proj := seedProject(t, client, "selection")
	alice := seedAgent(t, client, proj.ID, "Alice", nil)
	bob := seedAgent(t, client, proj.ID, "Bob", nil)

	prop := seedProposal(t, client, models.CreateProposalRequest{
		AgentID: alice.ID, ProjectID: proj.ID,
		Title: "Selection test", Status: proposal.StatusApproved,
	})
	m, err := missions.CreateFromProposal(ctx, prop)
	require.NoError(t, err)

	first, err := steps.CreateStep(ctx, models.CreateStepRequest{
		MissionID: m.ID, OrderIndex: 0, Title: "First", StepType: step.StepTypeCode,
	})
	require.NoError(t, err)
	second, err := steps.CreateStep(ctx, models.CreateStepRequest{
		MissionID: m.ID, OrderIndex: 1, Title: "Second", StepType: step.StepTypeCode,
	})
	require.NoError(t, err)

	_, err = steps.Claim(ctx, first.ID, alice.ID)
	require.NoError(t, err)

	allTypes := []step.StepType{step.StepTypeCode, step.StepTypeTest, step.StepTypeReview,
		step.StepTypeDeploy, step.StepTypeResearch, step.StepTypeSecurity, step.StepTypeOther}

	// Bob only sees the unclaimed step.
	candidates, err := steps.ListCandidates(ctx, proj.ID, bob.ID, allTypes)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, second.ID, candidates[0].ID)

	// Alice sees her claimed step first, ordered by order_index.
	candidates, err = steps.ListCandidates(ctx, proj.ID, alice.ID, allTypes)
	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, first.ID, candidates[0].ID)
	assert.Equal(t, second.ID, candidates[1].ID)
}

func TestMissionCompletionIsIdempotent(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	steps := services.NewStepService(client)
	missions := services.NewMissionService(client)

	proj := seedProject(t, client, "closure")
	agent := seedAgent(t, client, proj.ID, "Ada", nil)

	prop := seedProposal(t, client, models.CreateProposalRequest{
		AgentID: agent.ID, ProjectID: proj.ID,
		Title: "Closure test", Status: proposal.StatusApproved,
	})
	m, err := missions.CreateFromProposal(ctx, prop)
	require.NoError(t, err)

	_, err = steps.CreatePlan(ctx, m)
	require.NoError(t, err)
	m, err = missions.GetMission(ctx, m.ID, true)
	require.NoError(t, err)

	_, closed, err := missions.CompleteIfAllStepsDone(ctx, m.ID)
	require.NoError(t, err)
	assert.False(t, closed, "unfinished steps must keep the mission open")

	for _, st := range m.Edges.Steps {
		_, err = steps.Claim(ctx, st.ID, agent.ID)
		require.NoError(t, err)
		_, err = steps.Start(ctx, st.ID, agent.ID)
		require.NoError(t, err)
		_, err = steps.Complete(ctx, st.ID, "done")
		require.NoError(t, err)
	}

	done, closed, err := missions.CompleteIfAllStepsDone(ctx, m.ID)
	require.NoError(t, err)
	assert.True(t, closed)
	assert.NotNil(t, done.CompletedAt)

	// The second evaluation observes the terminal status and does nothing.
	_, closed, err = missions.CompleteIfAllStepsDone(ctx, m.ID)
	require.NoError(t, err)
	assert.False(t, closed)
}

func TestContextUpsertReplacesContent(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	svc := services.NewContextService(client)

	proj := seedProject(t, client, "knowledge")
	agent := seedAgent(t, client, proj.ID, "Ada", nil)

	first, err := svc.Upsert(ctx, models.UpsertContextRequest{
		ProjectID: proj.ID, Category: "architecture", Key: "storage",
		Content: "We use PostgreSQL.",
	})
	require.NoError(t, err)

	second, err := svc.Upsert(ctx, models.UpsertContextRequest{
		ProjectID: proj.ID, Category: "architecture", Key: "storage",
		Content: "We use PostgreSQL 17.", SourceAgentID: agent.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "same (project, category, key) must be one row")
	assert.Equal(t, "We use PostgreSQL 17.", second.Content)
	require.NotNil(t, second.SourceAgentID)
	assert.Equal(t, agent.ID, *second.SourceAgentID)

	resp, err := svc.ListContext(ctx, proj.ID, "architecture")
	require.NoError(t, err)
	assert.Len(t, resp.Entries, 1)
}

func TestFirstActiveAgentIsDeterministic(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	svc := services.NewAgentService(client)

	proj := seedProject(t, client, "first-active")
	oldest := seedAgent(t, client, proj.ID, "Oldest", nil)
	seedAgent(t, client, proj.ID, "Newer", nil)

	_, err := svc.UpdateAgentStatus(ctx, oldest.ID, "paused")
	require.NoError(t, err)

	// Paused agents are skipped.
	got, err := svc.FirstActive(ctx, proj.ID)
	require.NoError(t, err)
	assert.Equal(t, "Newer", got.Name)

	_, err = svc.UpdateAgentStatus(ctx, oldest.ID, "active")
	require.NoError(t, err)

	got, err = svc.FirstActive(ctx, proj.ID)
	require.NoError(t, err)
	assert.Equal(t, oldest.ID, got.ID, "oldest active agent wins")
}

func TestRetentionQueries(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	eventSvc := services.NewEventService(client)
	proposalSvc := services.NewProposalService(client)

	proj := seedProject(t, client, "retention")
	agent := seedAgent(t, client, proj.ID, "Ada", nil)

	old := client.Event.Create().
		SetID("00000000-0000-7000-8000-000000000001").
		SetEventType("step.completed").
		SetProjectID(proj.ID).
		SetCreatedAt(time.Now().Add(-31 * 24 * time.Hour)).
		SaveX(ctx)
	fresh, err := eventSvc.Append(ctx, models.AppendEventRequest{
		EventType: "step.completed", ProjectID: proj.ID,
	})
	require.NoError(t, err)

	deleted, err := eventSvc.DeleteOlderThan(ctx, time.Now().Add(-30*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)
	_, err = eventSvc.GetEvent(ctx, old.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
	_, err = eventSvc.GetEvent(ctx, fresh.ID)
	assert.NoError(t, err)

	stale := client.Proposal.Create().
		SetID("00000000-0000-7000-8000-000000000002").
		SetAgentID(agent.ID).
		SetProjectID(proj.ID).
		SetTitle("Forgotten idea").
		SetStatus(proposal.StatusPending).
		SetCreatedAt(time.Now().Add(-8 * 24 * time.Hour)).
		SaveX(ctx)
	recent := seedProposal(t, client, models.CreateProposalRequest{
		AgentID: agent.ID, ProjectID: proj.ID,
		Title: "Fresh idea", Status: proposal.StatusPending,
	})

	expired, err := proposalSvc.ExpirePendingOlderThan(ctx, time.Now().Add(-7*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, expired)

	staleReloaded, err := proposalSvc.GetProposal(ctx, stale.ID)
	require.NoError(t, err)
	assert.Equal(t, proposal.StatusExpired, staleReloaded.Status)
	recentReloaded, err := proposalSvc.GetProposal(ctx, recent.ID)
	require.NoError(t, err)
	assert.Equal(t, proposal.StatusPending, recentReloaded.Status)
}
