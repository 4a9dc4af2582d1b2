package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/codeready-toolchain/agentloop/ent"
	"github.com/codeready-toolchain/agentloop/pkg/events"
	"github.com/codeready-toolchain/agentloop/pkg/models"
)

// streamKeepalive paces SSE comment frames so idle connections survive
// proxies with read timeouts.
const streamKeepalive = 30 * time.Second

// BulkAppendRequest carries a batch of events to append in order.
type BulkAppendRequest struct {
	Events []models.AppendEventRequest `json:"events"`
}

// BulkAppendResponse reports how many events were appended.
type BulkAppendResponse struct {
	Created int `json:"created"`
}

// EventTypesResponse lists the engine's documented event types.
type EventTypesResponse struct {
	EventTypes []string `json:"event_types"`
}

// GET /api/v1/events
func (s *Server) handleListEvents(c *gin.Context) {
	filters := models.EventFilters{
		ProjectID: c.Query("project_id"),
		EventType: c.Query("event_type"),
		Limit:     intQuery(c, "limit"),
		Offset:    intQuery(c, "offset"),
	}
	resp, err := s.events.ListEvents(c.Request.Context(), filters)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// POST /api/v1/events
func (s *Server) handleAppendEvent(c *gin.Context) {
	var req models.AppendEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	evt, err := s.publisher.Publish(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, evt)
}

// POST /api/v1/events/bulk
func (s *Server) handleAppendEventsBulk(c *gin.Context) {
	var req BulkAppendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if len(req.Events) == 0 {
		respondError(c, http.StatusBadRequest, "events is required")
		return
	}
	ctx := c.Request.Context()
	created := 0
	for _, e := range req.Events {
		if _, err := s.publisher.Publish(ctx, e); err != nil {
			respondServiceError(c, err)
			return
		}
		created++
	}
	c.JSON(http.StatusCreated, BulkAppendResponse{Created: created})
}

// GET /api/v1/events/types
func (s *Server) handleListEventTypes(c *gin.Context) {
	c.JSON(http.StatusOK, EventTypesResponse{EventTypes: models.KnownEventTypes})
}

// GET /api/v1/events/:id
func (s *Server) handleGetEvent(c *gin.Context) {
	evt, err := s.events.GetEvent(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, evt)
}

// GET /api/v1/events/stream
//
// Server-sent events. An optional ?since=RFC3339 replays the persisted
// backlog before live frames, so reconnecting consumers can catch up on
// what they missed while disconnected.
func (s *Server) handleEventStream(c *gin.Context) {
	if s.eventsManager == nil {
		respondError(c, http.StatusServiceUnavailable, "event stream not available")
		return
	}

	var backlog []*ent.Event
	if raw := c.Query("since"); raw != "" {
		since, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid since timestamp, expected RFC3339")
			return
		}
		backlog, err = s.events.ListSince(c.Request.Context(), since)
		if err != nil {
			respondServiceError(c, err)
			return
		}
	}

	// Subscribe before replaying the backlog so no frame falls into the gap.
	ch, cancel := s.eventsManager.Subscribe()
	defer cancel()

	h := c.Writer.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	c.Writer.WriteHeader(http.StatusOK)
	c.Writer.Flush()

	for _, evt := range backlog {
		frame, err := events.EncodeFrame(events.FrameFromEvent(evt))
		if err != nil {
			continue
		}
		if !s.writeFrame(c, frame) {
			return
		}
	}

	keepalive := time.NewTicker(streamKeepalive)
	defer keepalive.Stop()
	for {
		select {
		case <-c.Request.Context().Done():
			return
		case frame, ok := <-ch:
			if !ok {
				return
			}
			if !s.writeFrame(c, frame) {
				return
			}
		case <-keepalive.C:
			if _, err := c.Writer.WriteString(": keepalive\n\n"); err != nil {
				return
			}
			c.Writer.Flush()
		}
	}
}

// writeFrame sends one SSE data frame, reporting whether the connection is
// still usable.
func (s *Server) writeFrame(c *gin.Context, frame []byte) bool {
	if _, err := c.Writer.WriteString("data: "); err != nil {
		return false
	}
	if _, err := c.Writer.Write(frame); err != nil {
		return false
	}
	if _, err := c.Writer.WriteString("\n\n"); err != nil {
		return false
	}
	c.Writer.Flush()
	return true
}
