package models

import (
	"time"

	"github.com/codeready-toolchain/agentloop/ent"
)

// ChatMessageRequest contains fields for sending a chat message. A missing
// SessionID starts a new conversation.
type ChatMessageRequest struct {
	Content   string `json:"content"`
	ProjectID string `json:"project_id,omitempty"`
	SessionID string `json:"session_id,omitempty"`
}

// ChatExchangeResponse is one user/assistant round trip
type ChatExchangeResponse struct {
	UserMessage      *ent.ChatMessage `json:"user_message"`
	AssistantMessage *ent.ChatMessage `json:"assistant_message"`
	SessionID        string           `json:"session_id"`
}

// ChatSessionSummary aggregates the messages sharing one session key
type ChatSessionSummary struct {
	SessionID     string     `json:"session_id"`
	ProjectID     string     `json:"project_id,omitempty"`
	MessageCount  int        `json:"message_count"`
	LastMessageAt *time.Time `json:"last_message_at,omitempty"`
}
