package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codeready-toolchain/agentloop/ent"
	"github.com/codeready-toolchain/agentloop/pkg/models"
)

// ClaimStepRequest identifies the claiming agent.
type ClaimStepRequest struct {
	AgentID string `json:"agent_id"`
}

// CompleteStepRequest carries the step outcome.
type CompleteStepRequest struct {
	Output string `json:"output"`
}

// FailStepRequest carries the failure detail.
type FailStepRequest struct {
	Error string `json:"error"`
}

// GET /api/v1/steps/:id
func (s *Server) handleGetStep(c *gin.Context) {
	st, err := s.steps.GetStep(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// POST /api/v1/steps/:id/claim
func (s *Server) handleClaimStep(c *gin.Context) {
	var req ClaimStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.AgentID == "" {
		respondError(c, http.StatusBadRequest, "agent_id is required")
		return
	}
	st, err := s.steps.Claim(c.Request.Context(), c.Param("id"), req.AgentID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	s.publishStepEvent(c, models.EventStepClaimed, st, map[string]any{
		"step_id":    st.ID,
		"mission_id": st.MissionID,
		"agent_id":   req.AgentID,
	})
	c.JSON(http.StatusOK, st)
}

// POST /api/v1/steps/:id/start
func (s *Server) handleStartStep(c *gin.Context) {
	var req ClaimStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.AgentID == "" {
		respondError(c, http.StatusBadRequest, "agent_id is required")
		return
	}
	st, err := s.steps.Start(c.Request.Context(), c.Param("id"), req.AgentID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// POST /api/v1/steps/:id/complete
func (s *Server) handleCompleteStep(c *gin.Context) {
	var req CompleteStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	st, err := s.steps.Complete(c.Request.Context(), c.Param("id"), req.Output)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	s.publishStepEvent(c, models.EventStepCompleted, st, map[string]any{
		"step_id":    st.ID,
		"mission_id": st.MissionID,
		"step_type":  string(st.StepType),
	})
	c.JSON(http.StatusOK, st)
}

// POST /api/v1/steps/:id/fail
func (s *Server) handleFailStep(c *gin.Context) {
	var req FailStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	st, err := s.steps.Fail(c.Request.Context(), c.Param("id"), req.Error)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	s.publishStepEvent(c, models.EventStepFailed, st, map[string]any{
		"step_id":    st.ID,
		"mission_id": st.MissionID,
		"step_type":  string(st.StepType),
		"error":      req.Error,
	})
	c.JSON(http.StatusOK, st)
}

// POST /api/v1/steps/:id/skip
func (s *Server) handleSkipStep(c *gin.Context) {
	st, err := s.steps.Skip(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// DELETE /api/v1/steps/:id
func (s *Server) handleDeleteStep(c *gin.Context) {
	if err := s.steps.DeleteStep(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// publishStepEvent emits a step lifecycle event for API-driven transitions.
// The state change has already committed, so a publish failure only logs.
func (s *Server) publishStepEvent(c *gin.Context, eventType string, st *ent.Step, payload map[string]any) {
	ctx := c.Request.Context()
	m, err := s.missions.GetMission(ctx, st.MissionID, false)
	if err != nil {
		s.logger.Warn("Step event skipped, mission lookup failed",
			"step_id", st.ID, "error", err)
		return
	}
	req := models.AppendEventRequest{
		EventType: eventType,
		ProjectID: m.ProjectID,
		Payload:   payload,
	}
	if st.ClaimedByAgentID != nil {
		req.SourceAgentID = *st.ClaimedByAgentID
	}
	if _, err := s.publisher.Publish(ctx, req); err != nil {
		s.logger.Error("Failed to publish step event",
			"event_type", eventType, "step_id", st.ID, "error", err)
	}
}
