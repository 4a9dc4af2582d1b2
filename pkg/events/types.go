// Package events delivers live orchestration events to in-process consumers
// via PostgreSQL NOTIFY/LISTEN. The events table remains the source of
// truth: the live channel is best-effort delivery for UI streams, and
// trigger evaluation always reads the store.
package events

import (
	"encoding/json"
	"time"

	"github.com/codeready-toolchain/agentloop/ent"
)

// Channel is the PostgreSQL NOTIFY channel for orchestration events.
const Channel = "agentloop_events"

// notifyLimit keeps frames under PostgreSQL's 8000-byte NOTIFY payload
// bound, with headroom.
const notifyLimit = 7900

// Frame is the wire form of one live event.
type Frame struct {
	EventID   string         `json:"event_id"`
	EventType string         `json:"event_type"`
	ProjectID string         `json:"project_id"`
	Payload   map[string]any `json:"payload,omitempty"`
	CreatedAt time.Time      `json:"created_at"`

	// Truncated marks frames whose payload exceeded the NOTIFY limit.
	// Consumers fetch the full row from the events API by EventID.
	Truncated bool `json:"truncated,omitempty"`
}

// FrameFromEvent builds the wire frame for a persisted event row.
func FrameFromEvent(evt *ent.Event) Frame {
	return Frame{
		EventID:   evt.ID,
		EventType: evt.EventType,
		ProjectID: evt.ProjectID,
		Payload:   evt.Payload,
		CreatedAt: evt.CreatedAt,
	}
}

// EncodeFrame marshals a frame, replacing oversized payloads with a
// truncation envelope that keeps only the routing fields.
func EncodeFrame(f Frame) ([]byte, error) {
	raw, err := json.Marshal(f)
	if err != nil {
		return nil, err
	}
	if len(raw) <= notifyLimit {
		return raw, nil
	}
	return json.Marshal(Frame{
		EventID:   f.EventID,
		EventType: f.EventType,
		ProjectID: f.ProjectID,
		CreatedAt: f.CreatedAt,
		Truncated: true,
	})
}
