package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/codeready-toolchain/agentloop/pkg/models"
)

// ReviewProposalRequest is the optional body for approve and reject. A
// missing reviewer falls back to the proxy identity headers.
type ReviewProposalRequest struct {
	ReviewedBy string `json:"reviewed_by"`
	Reason     string `json:"reason"`
}

// intQuery parses an integer query parameter, returning 0 when absent or
// malformed so the service-layer defaults apply.
func intQuery(c *gin.Context, name string) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0
	}
	return v
}

// GET /api/v1/proposals
func (s *Server) handleListProposals(c *gin.Context) {
	filters := models.ProposalFilters{
		ProjectID: c.Query("project_id"),
		AgentID:   c.Query("agent_id"),
		Status:    c.Query("status"),
		Priority:  c.Query("priority"),
		Limit:     intQuery(c, "limit"),
		Offset:    intQuery(c, "offset"),
	}
	resp, err := s.proposals.ListProposals(c.Request.Context(), filters)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// POST /api/v1/proposals
func (s *Server) handleCreateProposal(c *gin.Context) {
	var req models.CreateProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	p, err := s.proposals.CreateProposal(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// GET /api/v1/proposals/:id
func (s *Server) handleGetProposal(c *gin.Context) {
	p, err := s.proposals.GetProposal(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// POST /api/v1/proposals/:id/submit
func (s *Server) handleSubmitProposal(c *gin.Context) {
	p, err := s.proposals.Submit(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// POST /api/v1/proposals/:id/approve
func (s *Server) handleApproveProposal(c *gin.Context) {
	p, err := s.proposals.Approve(c.Request.Context(), c.Param("id"), s.reviewer(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// POST /api/v1/proposals/:id/reject
func (s *Server) handleRejectProposal(c *gin.Context) {
	var req ReviewProposalRequest
	// The body is optional; rejection without a reason is allowed.
	_ = c.ShouldBindJSON(&req)
	reviewer := req.ReviewedBy
	if reviewer == "" {
		reviewer = extractAuthor(c)
	}
	p, err := s.proposals.Reject(c.Request.Context(), c.Param("id"), reviewer, req.Reason)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// DELETE /api/v1/proposals/:id
func (s *Server) handleDeleteProposal(c *gin.Context) {
	if err := s.proposals.DeleteProposal(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// reviewer resolves who is approving, preferring an explicit body over the
// identity headers.
func (s *Server) reviewer(c *gin.Context) string {
	var req ReviewProposalRequest
	if err := c.ShouldBindJSON(&req); err == nil && req.ReviewedBy != "" {
		return req.ReviewedBy
	}
	return extractAuthor(c)
}
