package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codeready-toolchain/agentloop/pkg/models"
)

// GET /api/v1/projects
func (s *Server) handleListProjects(c *gin.Context) {
	resp, err := s.projects.ListProjects(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// POST /api/v1/projects
func (s *Server) handleCreateProject(c *gin.Context) {
	var req models.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	project, err := s.projects.CreateProject(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

// GET /api/v1/projects/:id
func (s *Server) handleGetProject(c *gin.Context) {
	project, err := s.projects.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// GET /api/v1/projects/by-slug/:slug
func (s *Server) handleGetProjectBySlug(c *gin.Context) {
	project, err := s.projects.GetProjectBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// PATCH /api/v1/projects/:id
func (s *Server) handleUpdateProject(c *gin.Context) {
	var req models.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	project, err := s.projects.UpdateProject(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// DELETE /api/v1/projects/:id
func (s *Server) handleDeleteProject(c *gin.Context) {
	if err := s.projects.DeleteProject(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
