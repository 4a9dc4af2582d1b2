package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codeready-toolchain/agentloop/pkg/models"
)

// GET /api/v1/triggers
func (s *Server) handleListTriggers(c *gin.Context) {
	resp, err := s.triggers.ListTriggers(c.Request.Context(), c.Query("project_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// POST /api/v1/triggers
func (s *Server) handleCreateTrigger(c *gin.Context) {
	var req models.CreateTriggerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	tr, err := s.triggers.CreateTrigger(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tr)
}

// GET /api/v1/triggers/:id
func (s *Server) handleGetTrigger(c *gin.Context) {
	tr, err := s.triggers.GetTrigger(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tr)
}

// POST /api/v1/triggers/:id/enable
func (s *Server) handleEnableTrigger(c *gin.Context) {
	tr, err := s.triggers.SetEnabled(c.Request.Context(), c.Param("id"), true)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tr)
}

// POST /api/v1/triggers/:id/disable
func (s *Server) handleDisableTrigger(c *gin.Context) {
	tr, err := s.triggers.SetEnabled(c.Request.Context(), c.Param("id"), false)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tr)
}

// DELETE /api/v1/triggers/:id
func (s *Server) handleDeleteTrigger(c *gin.Context) {
	if err := s.triggers.DeleteTrigger(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
