// Package e2e exercises the full orchestration loop against a real
// PostgreSQL database, a mock Mission Control board, and a scripted stub
// dispatcher.
package e2e

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/agentloop/ent"
	"github.com/codeready-toolchain/agentloop/pkg/board"
	"github.com/codeready-toolchain/agentloop/pkg/config"
	"github.com/codeready-toolchain/agentloop/pkg/dispatch"
	"github.com/codeready-toolchain/agentloop/pkg/engine"
	"github.com/codeready-toolchain/agentloop/pkg/events"
	"github.com/codeready-toolchain/agentloop/pkg/masking"
	"github.com/codeready-toolchain/agentloop/pkg/models"
	"github.com/codeready-toolchain/agentloop/pkg/plugin"
	"github.com/codeready-toolchain/agentloop/pkg/plugin/builtin"
	"github.com/codeready-toolchain/agentloop/pkg/services"
	testdb "github.com/codeready-toolchain/agentloop/test/database"
)

// Harness wires a complete engine over a per-test database schema and a
// mock board server. Everything shares one ent client, exactly like the
// production process.
type Harness struct {
	Client       *ent.Client
	Orchestrator *engine.Orchestrator
	Worker       *engine.WorkerEngine
	Registry     *dispatch.Registry
	Stub         *dispatch.StubDispatcher
	Bus          *plugin.HookBus
	Board        *MockBoard
	BoardClient  *board.Client
	Ingestor     *board.Ingestor
	Publisher    *events.Publisher
	Settings     *config.Settings

	Projects  *services.ProjectService
	Agents    *services.AgentService
	Proposals *services.ProposalService
	Missions  *services.MissionService
	Steps     *services.StepService
	Events    *services.EventService
	Triggers  *services.TriggerService
}

// NewHarness builds the engine with the mission-control plugin registered.
// boardMap maps mock board ids to project slugs for inbound sync; nil means
// no boards are connected.
func NewHarness(t *testing.T, boardMap map[string]string) *Harness {
	t.Helper()

	db := testdb.NewTestClient(t)
	logger := slog.Default()

	mock := NewMockBoard(t)
	boardClient := board.NewClient(mock.URL(), "test-token", "")
	ingestor := board.NewIngestor(boardClient, nil, logger)
	t.Cleanup(ingestor.Stop)

	settings := &config.Settings{
		MCBaseURL:   mock.URL(),
		MCToken:     "test-token",
		BoardMap:    boardMap,
		StepTimeout: 30 * time.Second,
	}

	publisher := events.NewPublisher(services.NewEventService(db.Client), db.DB())
	bus := plugin.NewHookBus(logger)
	registry := dispatch.NewRegistry(logger)
	stub := dispatch.NewStubDispatcher()
	registry.SetStepDispatcher("stub", stub)
	registry.SetChatDispatcher("stub", stub)

	defs := config.LoadDefinitions("", "", logger)
	prompts := engine.NewPromptBuilder(db.Client, defs, logger)
	masker := masking.NewMaskingService()
	worker := engine.NewWorkerEngine(db.Client, registry, prompts, masker,
		publisher, bus, settings.StepTimeout, logger)
	orchestrator := engine.NewOrchestrator(db.Client, publisher, bus, worker, logger)

	builders := builtin.Builders(builtin.Deps{
		Client:    db.Client,
		Settings:  settings,
		Board:     boardClient,
		Ingestor:  ingestor,
		Publisher: publisher,
		Registry:  registry,
		Logger:    logger,
	})
	require.NoError(t, builders["mission-control"](plugin.Manifest{Name: "mission-control"}, bus))

	return &Harness{
		Client:       db.Client,
		Orchestrator: orchestrator,
		Worker:       worker,
		Registry:     registry,
		Stub:         stub,
		Bus:          bus,
		Board:        mock,
		BoardClient:  boardClient,
		Ingestor:     ingestor,
		Publisher:    publisher,
		Settings:     settings,

		Projects:  services.NewProjectService(db.Client),
		Agents:    services.NewAgentService(db.Client),
		Proposals: services.NewProposalService(db.Client),
		Missions:  services.NewMissionService(db.Client),
		Steps:     services.NewStepService(db.Client),
		Events:    services.NewEventService(db.Client),
		Triggers:  services.NewTriggerService(db.Client),
	}
}

// SeedProject creates an active project.
func (h *Harness) SeedProject(t *testing.T, slug string) *ent.Project {
	t.Helper()
	p, err := h.Projects.CreateProject(context.Background(), models.CreateProjectRequest{
		Name: "Project " + slug,
		Slug: slug,
	})
	require.NoError(t, err)
	return p
}

// SeedAgent creates an active agent with the given capabilities.
func (h *Harness) SeedAgent(t *testing.T, projectID, name string, capabilities ...string) *ent.Agent {
	t.Helper()
	caps := make([]any, 0, len(capabilities))
	for _, c := range capabilities {
		caps = append(caps, c)
	}
	a, err := h.Agents.CreateAgent(context.Background(), models.CreateAgentRequest{
		Name:      name,
		Role:      "developer",
		ProjectID: projectID,
		Config:    map[string]any{"capabilities": caps},
	})
	require.NoError(t, err)
	return a
}

// EventsOfType lists recorded events of one type, oldest first.
func (h *Harness) EventsOfType(t *testing.T, eventType string) []*ent.Event {
	t.Helper()
	resp, err := h.Events.ListEvents(context.Background(), models.EventFilters{EventType: eventType})
	require.NoError(t, err)
	return resp.Events
}

// AskUserCall is one recorded POST /gateway/main/ask-user request.
type AskUserCall struct {
	BoardID       string `json:"board_id"`
	Content       string `json:"content"`
	CorrelationID string `json:"correlation_id"`
}

// TaskPatch is one recorded task status update.
type TaskPatch struct {
	BoardID string
	TaskID  string
	Status  string
	Comment string
}

// TaskComment is one recorded task comment.
type TaskComment struct {
	BoardID string
	TaskID  string
	Content string
}

// MockBoard is an httptest server speaking the Mission Control task API.
// Tasks are scripted per board; every mutating call is recorded.
type MockBoard struct {
	server *httptest.Server

	mu       sync.Mutex
	tasks    map[string][]board.Task
	askUser  []AskUserCall
	patches  []TaskPatch
	comments []TaskComment

	// streamFrames is served once per tasks-stream connection before the
	// connection is dropped; nil means the stream blocks until the client
	// goes away.
	streamFrames   []string
	streamConns    int
	approvalsConns int
}

// NewMockBoard starts the mock server; it is closed with the test.
func NewMockBoard(t *testing.T) *MockBoard {
	t.Helper()
	m := &MockBoard{tasks: make(map[string][]board.Task)}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/boards/{board}/tasks", m.handleListTasks)
	mux.HandleFunc("GET /api/v1/boards/{board}/tasks/stream", m.handleTaskStream)
	mux.HandleFunc("GET /api/v1/boards/{board}/approvals/stream", m.handleApprovalStream)
	mux.HandleFunc("PATCH /api/v1/boards/{board}/tasks/{task}", m.handlePatchTask)
	mux.HandleFunc("POST /api/v1/boards/{board}/tasks/{task}/comments", m.handleComment)
	mux.HandleFunc("POST /gateway/main/ask-user", m.handleAskUser)

	m.server = httptest.NewServer(mux)
	t.Cleanup(m.server.Close)
	return m
}

// URL returns the mock server's base URL.
func (m *MockBoard) URL() string { return m.server.URL }

// SetTasks scripts the task list returned for a board.
func (m *MockBoard) SetTasks(boardID string, tasks ...board.Task) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tasks[boardID] = tasks
}

// SetStreamFrames scripts raw SSE frames served once per tasks-stream
// connection; the connection closes after the last frame.
func (m *MockBoard) SetStreamFrames(frames ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.streamFrames = frames
}

// AskUserCalls returns the recorded escalations.
func (m *MockBoard) AskUserCalls() []AskUserCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]AskUserCall(nil), m.askUser...)
}

// Patches returns the recorded task status updates.
func (m *MockBoard) Patches() []TaskPatch {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]TaskPatch(nil), m.patches...)
}

// Comments returns the recorded task comments.
func (m *MockBoard) Comments() []TaskComment {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]TaskComment(nil), m.comments...)
}

// StreamConnections reports how many tasks-stream connections were opened.
func (m *MockBoard) StreamConnections() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.streamConns
}

func (m *MockBoard) handleListTasks(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	tasks := append([]board.Task(nil), m.tasks[r.PathValue("board")]...)
	m.mu.Unlock()

	if status := r.URL.Query().Get("status"); status != "" {
		filtered := tasks[:0]
		for _, task := range tasks {
			if task.Status == status {
				filtered = append(filtered, task)
			}
		}
		tasks = filtered
	}
	writeJSON(w, map[string]any{"items": tasks})
}

func (m *MockBoard) handlePatchTask(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status  string `json:"status"`
		Comment string `json:"comment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	m.mu.Lock()
	m.patches = append(m.patches, TaskPatch{
		BoardID: r.PathValue("board"),
		TaskID:  r.PathValue("task"),
		Status:  body.Status,
		Comment: body.Comment,
	})
	m.mu.Unlock()
	writeJSON(w, board.Task{ID: r.PathValue("task"), Status: body.Status})
}

func (m *MockBoard) handleComment(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	m.mu.Lock()
	m.comments = append(m.comments, TaskComment{
		BoardID: r.PathValue("board"),
		TaskID:  r.PathValue("task"),
		Content: body.Content,
	})
	m.mu.Unlock()
	w.WriteHeader(http.StatusCreated)
}

func (m *MockBoard) handleAskUser(w http.ResponseWriter, r *http.Request) {
	var call AskUserCall
	if err := json.NewDecoder(r.Body).Decode(&call); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	m.mu.Lock()
	m.askUser = append(m.askUser, call)
	m.mu.Unlock()
	w.WriteHeader(http.StatusAccepted)
}

func (m *MockBoard) handleTaskStream(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	m.streamConns++
	frames := append([]string(nil), m.streamFrames...)
	m.mu.Unlock()

	w.Header().Set("Content-Type", "text/event-stream")
	fl := w.(http.Flusher)
	fl.Flush()
	for _, frame := range frames {
		_, _ = w.Write([]byte(frame))
		fl.Flush()
	}
	if frames == nil {
		<-r.Context().Done()
	}
}

func (m *MockBoard) handleApprovalStream(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	m.approvalsConns++
	m.mu.Unlock()

	w.Header().Set("Content-Type", "text/event-stream")
	w.(http.Flusher).Flush()
	<-r.Context().Done()
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
