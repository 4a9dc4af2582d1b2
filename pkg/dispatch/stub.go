package dispatch

import (
	"context"
	"sync"
	"time"
)

// StubDispatcher is a scripted backend for tests and local experiments.
// Results are programmed per step id; unprogrammed steps get a generic ok
// result. Every call is recorded for assertions.
type StubDispatcher struct {
	mu        sync.Mutex
	available bool
	results   map[string]*StepResult
	errs      map[string]error
	calls     []StepRequest

	chatReply string
	chatErr   error
	chatCalls []string
}

// NewStubDispatcher creates an available stub with no scripted results.
func NewStubDispatcher() *StubDispatcher {
	return &StubDispatcher{
		available: true,
		results:   make(map[string]*StepResult),
		errs:      make(map[string]error),
		chatReply: "stub reply",
	}
}

// SetAvailable toggles the availability the stub reports.
func (s *StubDispatcher) SetAvailable(available bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.available = available
}

// Script programs the result returned for one step id.
func (s *StubDispatcher) Script(stepID string, result *StepResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[stepID] = result
}

// ScriptError programs an infrastructure failure for one step id.
func (s *StubDispatcher) ScriptError(stepID string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errs[stepID] = err
}

// SetChatReply programs the text every chat send returns.
func (s *StubDispatcher) SetChatReply(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chatReply = text
}

// SetChatError programs a failure for every chat send.
func (s *StubDispatcher) SetChatError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chatErr = err
}

// Calls returns a copy of the recorded step requests.
func (s *StubDispatcher) Calls() []StepRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]StepRequest, len(s.calls))
	copy(out, s.calls)
	return out
}

// ChatCalls returns a copy of the recorded chat messages.
func (s *StubDispatcher) ChatCalls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.chatCalls))
	copy(out, s.chatCalls)
	return out
}

// Available reports the programmed availability.
func (s *StubDispatcher) Available() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.available
}

// Dispatch replays the scripted outcome for the step.
func (s *StubDispatcher) Dispatch(ctx context.Context, req StepRequest) (*StepResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, req)
	if err, ok := s.errs[req.StepID]; ok {
		return nil, err
	}
	if res, ok := s.results[req.StepID]; ok {
		return res, nil
	}
	return &StepResult{Status: StatusOK, Text: "stub output for " + req.StepID}, nil
}

// Send replays the programmed chat outcome.
func (s *StubDispatcher) Send(ctx context.Context, sessionKey, message string, timeout time.Duration) (map[string]any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chatCalls = append(s.chatCalls, message)
	if s.chatErr != nil {
		return nil, s.chatErr
	}
	return map[string]any{"status": StatusOK, "_response_text": s.chatReply}, nil
}

// ExtractText pulls the reply text out of a Send result.
func (s *StubDispatcher) ExtractText(result map[string]any) string {
	if result == nil {
		return ""
	}
	text, _ := result["_response_text"].(string)
	return text
}

// StreamSend delivers the programmed reply as a single chunk.
func (s *StubDispatcher) StreamSend(ctx context.Context, sessionKey, message string) (<-chan string, error) {
	result, err := s.Send(ctx, sessionKey, message, DefaultChatTimeout)
	if err != nil {
		return nil, err
	}
	out := make(chan string, 1)
	if text := s.ExtractText(result); text != "" {
		out <- text
	}
	close(out)
	return out, nil
}
