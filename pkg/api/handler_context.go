package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codeready-toolchain/agentloop/pkg/models"
)

// GET /api/v1/context/:project_id
func (s *Server) handleListContext(c *gin.Context) {
	resp, err := s.contexts.ListContext(c.Request.Context(), c.Param("project_id"), c.Query("category"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// POST /api/v1/context
func (s *Server) handleUpsertContext(c *gin.Context) {
	var req models.UpsertContextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	entry, err := s.contexts.Upsert(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// DELETE /api/v1/context/entries/:entry_id
func (s *Server) handleDeleteContextEntry(c *gin.Context) {
	if err := s.contexts.DeleteEntry(c.Request.Context(), c.Param("entry_id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
