package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codeready-toolchain/agentloop/pkg/models"
)

// UpdateMissionStatusRequest carries the explicit status override.
type UpdateMissionStatusRequest struct {
	Status string `json:"status"`
}

// GET /api/v1/missions
func (s *Server) handleListMissions(c *gin.Context) {
	filters := models.MissionFilters{
		ProjectID: c.Query("project_id"),
		Status:    c.Query("status"),
		AgentID:   c.Query("agent_id"),
		Limit:     intQuery(c, "limit"),
		Offset:    intQuery(c, "offset"),
	}
	resp, err := s.missions.ListMissions(c.Request.Context(), filters)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GET /api/v1/missions/:id
func (s *Server) handleGetMission(c *gin.Context) {
	withSteps := c.Query("with_steps") == "true"
	m, err := s.missions.GetMission(c.Request.Context(), c.Param("id"), withSteps)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// GET /api/v1/missions/:id/steps
func (s *Server) handleListMissionSteps(c *gin.Context) {
	resp, err := s.steps.ListSteps(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// POST /api/v1/missions/:id/steps
func (s *Server) handleCreateMissionStep(c *gin.Context) {
	var req models.CreateStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	req.MissionID = c.Param("id")
	st, err := s.steps.CreateStep(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, st)
}

// PATCH /api/v1/missions/:id/status
func (s *Server) handleUpdateMissionStatus(c *gin.Context) {
	var req UpdateMissionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Status == "" {
		respondError(c, http.StatusBadRequest, "status is required")
		return
	}
	m, err := s.missions.UpdateMissionStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// DELETE /api/v1/missions/:id
func (s *Server) handleDeleteMission(c *gin.Context) {
	if err := s.missions.DeleteMission(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
