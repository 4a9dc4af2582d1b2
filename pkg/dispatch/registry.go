package dispatch

import (
	"context"
	"io"
	"log/slog"
	"sync"
)

// Registry is the process-wide wiring point between plugins that provide
// execution backends and the engine code that consumes them. Registration is
// last-one-wins: plugins install backends during startup and the engine reads
// whatever is installed at dispatch time.
type Registry struct {
	mu       sync.RWMutex
	step     StepDispatcher
	stepName string
	chat     ChatDispatcher
	chatName string
	logger   *slog.Logger
}

// NewRegistry creates an empty dispatcher registry.
func NewRegistry(logger *slog.Logger) *Registry {
	return &Registry{logger: logger.With("component", "dispatch.registry")}
}

// SetStepDispatcher installs d as the step backend, replacing any previous
// registration. The name identifies the providing plugin in logs.
func (r *Registry) SetStepDispatcher(name string, d StepDispatcher) {
	r.mu.Lock()
	prev := r.stepName
	r.step = d
	r.stepName = name
	r.mu.Unlock()
	if prev != "" && prev != name {
		r.logger.Info("Step dispatcher replaced", "previous", prev, "current", name)
		return
	}
	r.logger.Info("Step dispatcher registered", "name", name)
}

// StepDispatcher returns the installed step backend, or nil when none is
// registered.
func (r *Registry) StepDispatcher() StepDispatcher {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.step
}

// SetChatDispatcher installs d as the chat backend, replacing any previous
// registration.
func (r *Registry) SetChatDispatcher(name string, d ChatDispatcher) {
	r.mu.Lock()
	prev := r.chatName
	r.chat = d
	r.chatName = name
	r.mu.Unlock()
	if prev != "" && prev != name {
		r.logger.Info("Chat dispatcher replaced", "previous", prev, "current", name)
		return
	}
	r.logger.Info("Chat dispatcher registered", "name", name)
}

// ChatDispatcher returns the installed chat backend, or nil when none is
// registered.
func (r *Registry) ChatDispatcher() ChatDispatcher {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.chat
}

// StepAvailable reports whether a step backend is installed and ready.
func (r *Registry) StepAvailable() bool {
	d := r.StepDispatcher()
	return d != nil && d.Available()
}

// ChatAvailable reports whether a chat backend is installed and ready.
func (r *Registry) ChatAvailable() bool {
	d := r.ChatDispatcher()
	return d != nil && d.Available()
}

// Shutdown closes any installed backend that holds resources and clears the
// registry. Safe to call once during process teardown.
func (r *Registry) Shutdown(ctx context.Context) {
	r.mu.Lock()
	step, chat := r.step, r.chat
	r.step, r.chat = nil, nil
	r.stepName, r.chatName = "", ""
	r.mu.Unlock()

	closed := make(map[io.Closer]bool)
	for _, backend := range []any{step, chat} {
		closer, ok := backend.(io.Closer)
		if !ok || closed[closer] {
			continue
		}
		closed[closer] = true
		if err := closer.Close(); err != nil {
			r.logger.Warn("Failed to close dispatcher backend", "error", err)
		}
	}
	r.logger.Info("Dispatcher registry shut down")
}
