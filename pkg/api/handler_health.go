package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/codeready-toolchain/agentloop/pkg/database"
)

const (
	healthStatusHealthy  = "healthy"
	healthStatusWarning  = "warning"
	healthStatusDegraded = "degraded"

	checkStatusOK            = "ok"
	checkStatusError         = "error"
	checkStatusWarning       = "warning"
	checkStatusUnreachable   = "unreachable"
	checkStatusInactive      = "inactive"
	checkStatusNotConfigured = "not_configured"

	// healthCheckTimeout bounds the whole deep health pass.
	healthCheckTimeout = 5 * time.Second

	// agentStaleAfter is how long without a heartbeat before an agent is
	// reported stale.
	agentStaleAfter = 10 * time.Minute
)

// GET /healthz
//
// Liveness only. Anything deeper belongs to /api/v1/health.
func (s *Server) handleHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, StatusResponse{Status: healthStatusHealthy, Timestamp: nowUnix()})
}

// GET /api/v1/health
//
// Deep health: probes the database, the external board, mission and agent
// liveness, the inbound streams, and the worker pool. Any errored check
// degrades the response to 503; warnings keep 200.
func (s *Server) handleDeepHealth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	checks := map[string]HealthCheck{
		"database": s.checkDatabase(ctx),
		"board":    s.checkBoard(ctx),
		"missions": s.checkMissions(ctx),
		"agents":   s.checkAgents(ctx),
		"streams":  s.checkStreams(),
		"workers":  s.checkWorkers(),
	}

	overall := healthStatusHealthy
	for _, check := range checks {
		if check.Status == checkStatusError {
			overall = healthStatusDegraded
			break
		}
		if check.Status == checkStatusWarning {
			overall = healthStatusWarning
		}
	}

	status := http.StatusOK
	if overall == healthStatusDegraded {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, HealthResponse{
		Status:    overall,
		Timestamp: nowUnix(),
		Checks:    checks,
	})
}

func (s *Server) checkDatabase(ctx context.Context) HealthCheck {
	hs, err := database.Ping(ctx, s.db.DB())
	if err != nil {
		return HealthCheck{Status: checkStatusError, Message: err.Error()}
	}
	return HealthCheck{Status: checkStatusOK, Details: map[string]any{
		"ping_ms":          hs.PingMS,
		"open_connections": hs.OpenConnections,
		"in_use":           hs.InUse,
	}}
}

func (s *Server) checkBoard(ctx context.Context) HealthCheck {
	if s.boardClient == nil || !s.boardClient.Configured() {
		return HealthCheck{Status: checkStatusNotConfigured}
	}
	// An unreachable board is reported but does not degrade the engine;
	// orchestration keeps running without it.
	if !s.boardClient.Healthy(ctx) {
		return HealthCheck{Status: checkStatusUnreachable}
	}
	return HealthCheck{Status: checkStatusOK}
}

func (s *Server) checkMissions(ctx context.Context) HealthCheck {
	active, err := s.missions.ListActive(ctx)
	if err != nil {
		return HealthCheck{Status: checkStatusError, Message: err.Error()}
	}
	stuck, err := s.missions.ListStuck(ctx)
	if err != nil {
		return HealthCheck{Status: checkStatusError, Message: err.Error()}
	}
	status := checkStatusOK
	if len(stuck) > 0 {
		status = checkStatusWarning
	}
	return HealthCheck{Status: status, Details: map[string]any{
		"active": len(active),
		"stuck":  len(stuck),
	}}
}

func (s *Server) checkAgents(ctx context.Context) HealthCheck {
	resp, err := s.agents.ListAgents(ctx, "", "active")
	if err != nil {
		return HealthCheck{Status: checkStatusError, Message: err.Error()}
	}
	stale, err := s.agents.ListStale(ctx, time.Now().Add(-agentStaleAfter))
	if err != nil {
		return HealthCheck{Status: checkStatusError, Message: err.Error()}
	}
	staleNames := make([]string, 0, len(stale))
	for _, a := range stale {
		staleNames = append(staleNames, a.Name)
	}
	status := checkStatusOK
	if len(staleNames) > 0 {
		status = checkStatusWarning
	}
	return HealthCheck{Status: status, Details: map[string]any{
		"total_active": resp.TotalCount,
		"stale":        staleNames,
	}}
}

func (s *Server) checkStreams() HealthCheck {
	if s.ingestor == nil {
		return HealthCheck{Status: checkStatusNotConfigured}
	}
	active := s.ingestor.ActiveStreams()
	status := checkStatusOK
	if active == 0 {
		status = checkStatusInactive
	}
	return HealthCheck{Status: status, Details: map[string]any{
		"active_boards": active,
	}}
}

func (s *Server) checkWorkers() HealthCheck {
	if s.pool == nil {
		return HealthCheck{Status: checkStatusNotConfigured}
	}
	h := s.pool.Health()
	return HealthCheck{Status: checkStatusOK, Details: map[string]any{
		"workers":      h.Workers,
		"busy_agents":  len(h.BusyAgents),
		"step_backlog": h.StepBacklog,
		"cycles_run":   h.CyclesRun,
	}}
}
