// Package plugin loads manifest-declared plugins and routes lifecycle hooks
// to their handlers. Plugin implementations are compiled in; a manifest
// selects and configures one by name.
package plugin

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/codeready-toolchain/agentloop/ent"
)

// Hook names fired by the engine and the server lifecycle.
const (
	HookOnStartup         = "on_startup"
	HookOnShutdown        = "on_shutdown"
	HookOnTickSync        = "on_tick_sync"
	HookOnMissionComplete = "on_mission_complete"
	HookOnStuckCheck      = "on_stuck_check"
	HookOnStepComplete    = "on_step_complete"
)

// HookContext carries the entities relevant to a hook invocation. Fields a
// hook does not apply to are nil.
type HookContext struct {
	Mission *ent.Mission
	Step    *ent.Step
	Agent   *ent.Agent
}

// Handler is a single hook callback. Returned values are collected by
// Dispatch for callers that want them.
type Handler func(ctx context.Context, hc HookContext) (any, error)

type registration struct {
	plugin  string
	hook    string
	handler Handler
}

// HookBus dispatches named hooks to registered handlers in registration
// order. A failing handler never prevents later handlers from running.
type HookBus struct {
	mu       sync.RWMutex
	handlers map[string][]registration
	logger   *slog.Logger
}

// NewHookBus creates an empty hook bus.
func NewHookBus(logger *slog.Logger) *HookBus {
	return &HookBus{
		handlers: make(map[string][]registration),
		logger:   logger.With("component", "plugin.hookbus"),
	}
}

// Register adds a handler for a hook on behalf of a plugin.
func (b *HookBus) Register(pluginName, hook string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[hook] = append(b.handlers[hook], registration{
		plugin:  pluginName,
		hook:    hook,
		handler: h,
	})
}

// Dispatch runs every handler registered for the hook. Handler errors are
// logged and swallowed; results of successful handlers are collected.
func (b *HookBus) Dispatch(ctx context.Context, hook string, hc HookContext) []any {
	b.mu.RLock()
	regs := b.handlers[hook]
	b.mu.RUnlock()

	var results []any
	for _, reg := range regs {
		result, err := reg.handler(ctx, hc)
		if err != nil {
			b.logger.Error("Hook handler failed",
				"hook", hook, "plugin", reg.plugin, "error", err)
			continue
		}
		results = append(results, result)
	}
	return results
}

// HooksOf returns the sorted hook names a plugin has handlers for.
func (b *HookBus) HooksOf(pluginName string) []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	seen := make(map[string]bool)
	var hooks []string
	for _, regs := range b.handlers {
		for _, reg := range regs {
			if reg.plugin == pluginName && !seen[reg.hook] {
				seen[reg.hook] = true
				hooks = append(hooks, reg.hook)
			}
		}
	}
	sort.Strings(hooks)
	return hooks
}

// SumInts adds up the integer results of a hook dispatch, for hooks whose
// handlers report action counts.
func SumInts(results []any) int {
	total := 0
	for _, r := range results {
		if n, ok := r.(int); ok {
			total += n
		}
	}
	return total
}
