package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/codeready-toolchain/agentloop/pkg/version"
)

// POST /api/v1/orchestrator/tick
//
// Runs one orchestration cycle on demand. Phase failures are collected in
// the result, so the call itself always succeeds once the engine is up.
func (s *Server) handleTick(c *gin.Context) {
	if s.orchestrator == nil {
		respondError(c, http.StatusServiceUnavailable, "orchestrator not available")
		return
	}
	result := s.orchestrator.Tick(c.Request.Context())
	c.JSON(http.StatusOK, result)
}

// POST /api/v1/orchestrator/work-cycle/:agent_id
func (s *Server) handleWorkCycle(c *gin.Context) {
	if s.orchestrator == nil {
		respondError(c, http.StatusServiceUnavailable, "orchestrator not available")
		return
	}
	result := s.orchestrator.WorkCycle(c.Request.Context(), c.Param("agent_id"))
	c.JSON(http.StatusOK, result)
}

// GET /api/v1/orchestrator/status
func (s *Server) handleOrchestratorStatus(c *gin.Context) {
	c.JSON(http.StatusOK, OrchestratorStatusResponse{
		Status:        "running",
		Version:       version.Full(),
		UptimeSeconds: time.Since(s.startedAt).Seconds(),
		TickRunning:   s.scheduler != nil,
		PoolRunning:   s.pool != nil,
	})
}
