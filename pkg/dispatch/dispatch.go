// Package dispatch routes step execution and chat traffic to pluggable
// agent backends. The engine talks to the interfaces in this package only;
// plugins install concrete backends into the Registry at startup.
package dispatch

import (
	"context"
	"time"

	"github.com/codeready-toolchain/agentloop/pkg/models"
)

// Result statuses reported by step backends.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Session key prefixes keep backend conversations isolated per unit of work.
const (
	stepSessionPrefix = "agentloop-step-"
	chatSessionPrefix = "agentloop-chat-"
	healthSessionKey  = "agentloop-healthcheck"
)

// StepSessionKey returns the backend session key for a mission step.
func StepSessionKey(stepID string) string {
	return stepSessionPrefix + stepID
}

// ChatSessionKey returns the backend session key for a chat session.
func ChatSessionKey(sessionID string) string {
	return chatSessionPrefix + sessionID
}

// StepRequest carries everything a backend needs to execute one mission step.
type StepRequest struct {
	StepID  string
	Prompt  string
	Timeout time.Duration

	// AgentConfig is the merged configuration of the executing agent.
	// Backends read per-agent overrides (provider, model, base URL) from it.
	// May be nil.
	AgentConfig *models.AgentConfig
}

// StepResult is a backend's verdict on one step execution.
//
// Status is StatusOK or StatusError. Text carries the agent's output on
// success. Meta carries backend-specific extras (error details, token
// counts) and may be nil.
type StepResult struct {
	Status string
	Text   string
	Meta   map[string]any
}

// Failed reports whether the backend ran the step but the agent did not
// succeed. Infrastructure failures are returned as errors from Dispatch,
// not as failed results.
func (r *StepResult) Failed() bool {
	return r.Status != StatusOK
}

// ErrorMessage returns the backend-reported failure detail, if any.
func (r *StepResult) ErrorMessage() string {
	if r.Meta == nil {
		return ""
	}
	if msg, ok := r.Meta["error"].(string); ok {
		return msg
	}
	return ""
}

// StepDispatcher executes mission steps on an external agent runtime.
//
// Dispatch blocks until the backend reaches a terminal state or the request
// times out. An error return means the backend infrastructure failed (binary
// missing, endpoint unreachable, malformed response) and the caller may fall
// back to simulation; an agent-level failure comes back as a StepResult with
// StatusError and a nil error.
type StepDispatcher interface {
	Dispatch(ctx context.Context, req StepRequest) (*StepResult, error)
	Available() bool
}

// ChatDispatcher relays interactive conversation turns to an agent runtime.
type ChatDispatcher interface {
	// Send delivers one message within the named session and returns the
	// backend's raw result document.
	Send(ctx context.Context, sessionKey, message string, timeout time.Duration) (map[string]any, error)

	// ExtractText pulls the reply text out of a Send result. Returns ""
	// when the result carries no text.
	ExtractText(result map[string]any) string

	// StreamSend delivers one message and returns a channel of reply text
	// chunks. The channel is closed when the reply is complete or the
	// context is done.
	StreamSend(ctx context.Context, sessionKey, message string) (<-chan string, error)

	Available() bool
}
