// Package api exposes the orchestration engine over HTTP. Routing and
// middleware use gin; handlers validate input, delegate to the service
// layer, and map service errors onto status codes.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/codeready-toolchain/agentloop/pkg/board"
	"github.com/codeready-toolchain/agentloop/pkg/config"
	"github.com/codeready-toolchain/agentloop/pkg/database"
	"github.com/codeready-toolchain/agentloop/pkg/dispatch"
	"github.com/codeready-toolchain/agentloop/pkg/engine"
	"github.com/codeready-toolchain/agentloop/pkg/events"
	"github.com/codeready-toolchain/agentloop/pkg/plugin"
	"github.com/codeready-toolchain/agentloop/pkg/services"
)

// Server hosts the REST API over the service layer. The engine components
// are attached with setters after construction because they come up later
// in the boot sequence.
type Server struct {
	settings *config.Settings
	db       *database.Client
	logger   *slog.Logger

	projects  *services.ProjectService
	agents    *services.AgentService
	proposals *services.ProposalService
	missions  *services.MissionService
	steps     *services.StepService
	events    *services.EventService
	triggers  *services.TriggerService
	contexts  *services.ContextService
	chat      *services.ChatService

	registry  *dispatch.Registry
	publisher *events.Publisher

	orchestrator  *engine.Orchestrator
	pool          *engine.AgentPool
	scheduler     *engine.Scheduler
	boardClient   *board.Client
	ingestor      *board.Ingestor
	plugins       *plugin.Manager
	eventsManager *events.Manager

	router     *gin.Engine
	httpServer *http.Server
	startedAt  time.Time
}

// NewServer creates the API server and builds its route table. Engine
// components must be attached before Start.
func NewServer(settings *config.Settings, db *database.Client, registry *dispatch.Registry, publisher *events.Publisher, logger *slog.Logger) *Server {
	s := &Server{
		settings:  settings,
		db:        db,
		logger:    logger.With("component", "api"),
		projects:  services.NewProjectService(db.Client),
		agents:    services.NewAgentService(db.Client),
		proposals: services.NewProposalService(db.Client),
		missions:  services.NewMissionService(db.Client),
		steps:     services.NewStepService(db.Client),
		events:    services.NewEventService(db.Client),
		triggers:  services.NewTriggerService(db.Client),
		contexts:  services.NewContextService(db.Client),
		chat:      services.NewChatService(db.Client, registry),
		registry:  registry,
		publisher: publisher,
		startedAt: time.Now(),
	}
	s.router = s.buildRouter()
	return s
}

// SetOrchestrator attaches the tick engine.
func (s *Server) SetOrchestrator(o *engine.Orchestrator) { s.orchestrator = o }

// SetPool attaches the agent work pool.
func (s *Server) SetPool(p *engine.AgentPool) { s.pool = p }

// SetScheduler attaches the tick scheduler.
func (s *Server) SetScheduler(sch *engine.Scheduler) { s.scheduler = sch }

// SetBoardClient attaches the external board client.
func (s *Server) SetBoardClient(c *board.Client) { s.boardClient = c }

// SetIngestor attaches the inbound stream ingestor.
func (s *Server) SetIngestor(i *board.Ingestor) { s.ingestor = i }

// SetPlugins attaches the plugin manager.
func (s *Server) SetPlugins(m *plugin.Manager) { s.plugins = m }

// SetEventsManager attaches the live event fan-out used by the SSE stream.
func (s *Server) SetEventsManager(m *events.Manager) { s.eventsManager = m }

// Router exposes the gin engine for tests.
func (s *Server) Router() *gin.Engine { return s.router }

func (s *Server) buildRouter() *gin.Engine {
	if !s.settings.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(s.logger))
	r.Use(securityHeaders())

	r.GET("/healthz", s.handleHealthz)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")
	v1.GET("/health", s.handleDeepHealth)

	projects := v1.Group("/projects")
	projects.GET("", s.handleListProjects)
	projects.POST("", s.handleCreateProject)
	projects.GET("/by-slug/:slug", s.handleGetProjectBySlug)
	projects.GET("/:id", s.handleGetProject)
	projects.PATCH("/:id", s.handleUpdateProject)
	projects.DELETE("/:id", s.handleDeleteProject)

	agents := v1.Group("/agents")
	agents.GET("", s.handleListAgents)
	agents.POST("", s.handleCreateAgent)
	agents.GET("/:id", s.handleGetAgent)
	agents.PATCH("/:id", s.handleUpdateAgent)
	agents.PATCH("/:id/pose", s.handleUpdateAgentPose)
	agents.POST("/:id/heartbeat", s.handleAgentHeartbeat)
	agents.GET("/:id/work", s.handleGetAgentWork)
	agents.DELETE("/:id", s.handleDeleteAgent)

	proposals := v1.Group("/proposals")
	proposals.GET("", s.handleListProposals)
	proposals.POST("", s.handleCreateProposal)
	proposals.GET("/:id", s.handleGetProposal)
	proposals.POST("/:id/submit", s.handleSubmitProposal)
	proposals.POST("/:id/approve", s.handleApproveProposal)
	proposals.POST("/:id/reject", s.handleRejectProposal)
	proposals.DELETE("/:id", s.handleDeleteProposal)

	missions := v1.Group("/missions")
	missions.GET("", s.handleListMissions)
	missions.GET("/:id", s.handleGetMission)
	missions.GET("/:id/steps", s.handleListMissionSteps)
	missions.POST("/:id/steps", s.handleCreateMissionStep)
	missions.PATCH("/:id/status", s.handleUpdateMissionStatus)
	missions.DELETE("/:id", s.handleDeleteMission)

	steps := v1.Group("/steps")
	steps.GET("/:id", s.handleGetStep)
	steps.POST("/:id/claim", s.handleClaimStep)
	steps.POST("/:id/start", s.handleStartStep)
	steps.POST("/:id/complete", s.handleCompleteStep)
	steps.POST("/:id/fail", s.handleFailStep)
	steps.POST("/:id/skip", s.handleSkipStep)
	steps.DELETE("/:id", s.handleDeleteStep)

	ev := v1.Group("/events")
	ev.GET("", s.handleListEvents)
	ev.POST("", s.handleAppendEvent)
	ev.POST("/bulk", s.handleAppendEventsBulk)
	ev.GET("/types", s.handleListEventTypes)
	ev.GET("/stream", s.handleEventStream)
	ev.GET("/:id", s.handleGetEvent)

	triggers := v1.Group("/triggers")
	triggers.GET("", s.handleListTriggers)
	triggers.POST("", s.handleCreateTrigger)
	triggers.GET("/:id", s.handleGetTrigger)
	triggers.POST("/:id/enable", s.handleEnableTrigger)
	triggers.POST("/:id/disable", s.handleDisableTrigger)
	triggers.DELETE("/:id", s.handleDeleteTrigger)

	contexts := v1.Group("/context")
	contexts.POST("", s.handleUpsertContext)
	contexts.GET("/:project_id", s.handleListContext)
	contexts.DELETE("/entries/:entry_id", s.handleDeleteContextEntry)

	chat := v1.Group("/chat")
	chat.POST("", s.handlePostChat)
	chat.POST("/stream", s.handleChatStream)
	chat.GET("/history/:session_id", s.handleChatHistory)
	chat.GET("/sessions", s.handleChatSessions)

	orch := v1.Group("/orchestrator")
	orch.POST("/tick", s.handleTick)
	orch.POST("/work-cycle/:agent_id", s.handleWorkCycle)
	orch.GET("/status", s.handleOrchestratorStatus)

	plugins := v1.Group("/plugins")
	plugins.GET("", s.handleListPlugins)
	plugins.GET("/tabs", s.handleListPluginTabs)

	return r
}

// Start serves HTTP on the configured address and blocks until the server
// stops. A clean Shutdown returns nil.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("API server listening", "addr", addr)
	err := s.httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown stops accepting connections and drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
