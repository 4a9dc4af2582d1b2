package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codeready-toolchain/agentloop/ent"
	"github.com/codeready-toolchain/agentloop/ent/step"
	"github.com/codeready-toolchain/agentloop/pkg/models"
)

// workStepTypes is the full step-type set used when assembling an agent's
// work view. Capability filtering happens in the worker engine, not here.
var workStepTypes = []step.StepType{
	step.StepTypeResearch,
	step.StepTypeCode,
	step.StepTypeTest,
	step.StepTypeReview,
	step.StepTypeDeploy,
	step.StepTypeSecurity,
	step.StepTypeOther,
}

// UpdateAgentRequest carries the mutable agent fields for PATCH.
type UpdateAgentRequest struct {
	Status *string        `json:"status"`
	Config map[string]any `json:"config"`
}

// AgentWorkResponse is the agent's pull view: claimable steps plus recent
// project context.
type AgentWorkResponse struct {
	AgentID string                `json:"agent_id"`
	Steps   []*ent.Step           `json:"steps"`
	Context []*ent.ProjectContext `json:"context"`
}

// GET /api/v1/agents
func (s *Server) handleListAgents(c *gin.Context) {
	resp, err := s.agents.ListAgents(c.Request.Context(), c.Query("project_id"), c.Query("status"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// POST /api/v1/agents
func (s *Server) handleCreateAgent(c *gin.Context) {
	var req models.CreateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	agent, err := s.agents.CreateAgent(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, agent)
}

// GET /api/v1/agents/:id
func (s *Server) handleGetAgent(c *gin.Context) {
	agent, err := s.agents.GetAgent(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, agent)
}

// PATCH /api/v1/agents/:id
func (s *Server) handleUpdateAgent(c *gin.Context) {
	var req UpdateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Status == nil && req.Config == nil {
		respondError(c, http.StatusBadRequest, "nothing to update")
		return
	}

	ctx := c.Request.Context()
	agentID := c.Param("id")
	var (
		agent *ent.Agent
		err   error
	)
	if req.Status != nil {
		agent, err = s.agents.UpdateAgentStatus(ctx, agentID, *req.Status)
		if err != nil {
			respondServiceError(c, err)
			return
		}
	}
	if req.Config != nil {
		agent, err = s.agents.UpdateAgentConfig(ctx, agentID, req.Config)
		if err != nil {
			respondServiceError(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, agent)
}

// PATCH /api/v1/agents/:id/pose
func (s *Server) handleUpdateAgentPose(c *gin.Context) {
	var req models.UpdateAgentPoseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	agent, err := s.agents.UpdatePose(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, agent)
}

// POST /api/v1/agents/:id/heartbeat
func (s *Server) handleAgentHeartbeat(c *gin.Context) {
	if err := s.agents.Heartbeat(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, StatusResponse{Status: "ok", Timestamp: nowUnix()})
}

// GET /api/v1/agents/:id/work
func (s *Server) handleGetAgentWork(c *gin.Context) {
	ctx := c.Request.Context()
	agent, err := s.agents.GetAgent(ctx, c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	steps, err := s.steps.ListCandidates(ctx, agent.ProjectID, agent.ID, workStepTypes)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	entries, err := s.contexts.ListRecent(ctx, agent.ProjectID, 10)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if steps == nil {
		steps = []*ent.Step{}
	}
	if entries == nil {
		entries = []*ent.ProjectContext{}
	}
	c.JSON(http.StatusOK, AgentWorkResponse{AgentID: agent.ID, Steps: steps, Context: entries})
}

// DELETE /api/v1/agents/:id
func (s *Server) handleDeleteAgent(c *gin.Context) {
	if err := s.agents.DeleteAgent(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
