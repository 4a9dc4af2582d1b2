package api

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codeready-toolchain/agentloop/ent"
	"github.com/codeready-toolchain/agentloop/pkg/models"
)

const (
	chatHistoryDefaultLimit = 50
	chatHistoryMaxLimit     = 200
)

// ChatHistoryResponse returns a session transcript oldest first.
type ChatHistoryResponse struct {
	SessionID string             `json:"session_id"`
	Messages  []*ent.ChatMessage `json:"messages"`
}

// ChatSessionsResponse lists known chat sessions.
type ChatSessionsResponse struct {
	Sessions []*models.ChatSessionSummary `json:"sessions"`
}

// POST /api/v1/chat
func (s *Server) handlePostChat(c *gin.Context) {
	var req models.ChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	resp, err := s.chat.Post(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GET /api/v1/chat/history/:session_id
func (s *Server) handleChatHistory(c *gin.Context) {
	limit := intQuery(c, "limit")
	if limit <= 0 {
		limit = chatHistoryDefaultLimit
	}
	if limit > chatHistoryMaxLimit {
		limit = chatHistoryMaxLimit
	}
	sessionID := c.Param("session_id")
	messages, err := s.chat.History(c.Request.Context(), sessionID, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if messages == nil {
		messages = []*ent.ChatMessage{}
	}
	c.JSON(http.StatusOK, ChatHistoryResponse{SessionID: sessionID, Messages: messages})
}

// POST /api/v1/chat/stream
//
// Relays one message and streams the backend's reply chunks over SSE. The
// exchange is not persisted; use POST /api/v1/chat for stored history.
func (s *Server) handleChatStream(c *gin.Context) {
	var req models.ChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.SessionID == "" {
		respondError(c, http.StatusBadRequest, "session_id is required for streaming")
		return
	}

	chunks, err := s.chat.Stream(c.Request.Context(), req.SessionID, req.Content)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h := c.Writer.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	c.Writer.WriteHeader(http.StatusOK)
	c.Writer.Flush()

	for {
		select {
		case <-c.Request.Context().Done():
			return
		case chunk, ok := <-chunks:
			if !ok {
				_, _ = c.Writer.WriteString("event: done\ndata: {}\n\n")
				c.Writer.Flush()
				return
			}
			data, err := json.Marshal(map[string]string{"text": chunk})
			if err != nil {
				continue
			}
			if _, err := c.Writer.WriteString("data: " + string(data) + "\n\n"); err != nil {
				return
			}
			c.Writer.Flush()
		}
	}
}

// GET /api/v1/chat/sessions
func (s *Server) handleChatSessions(c *gin.Context) {
	sessions, err := s.chat.ListSessions(c.Request.Context(), c.Query("project_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if sessions == nil {
		sessions = []*models.ChatSessionSummary{}
	}
	c.JSON(http.StatusOK, ChatSessionsResponse{Sessions: sessions})
}
