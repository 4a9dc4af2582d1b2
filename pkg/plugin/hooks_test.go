package plugin

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHookBusDispatchOrder(t *testing.T) {
	bus := NewHookBus(slog.Default())
	var calls []string

	bus.Register("first", HookOnTickSync, func(ctx context.Context, hc HookContext) (any, error) {
		calls = append(calls, "first")
		return 1, nil
	})
	bus.Register("second", HookOnTickSync, func(ctx context.Context, hc HookContext) (any, error) {
		calls = append(calls, "second")
		return 2, nil
	})

	results := bus.Dispatch(context.Background(), HookOnTickSync, HookContext{})

	assert.Equal(t, []string{"first", "second"}, calls)
	require.Len(t, results, 2)
	assert.Equal(t, 3, SumInts(results))
}

func TestHookBusDispatchSwallowsHandlerErrors(t *testing.T) {
	bus := NewHookBus(slog.Default())
	var ran bool

	bus.Register("broken", HookOnStuckCheck, func(ctx context.Context, hc HookContext) (any, error) {
		return nil, errors.New("boom")
	})
	bus.Register("healthy", HookOnStuckCheck, func(ctx context.Context, hc HookContext) (any, error) {
		ran = true
		return "ok", nil
	})

	results := bus.Dispatch(context.Background(), HookOnStuckCheck, HookContext{})

	assert.True(t, ran, "Later handlers run after an earlier failure")
	require.Len(t, results, 1, "Failed handlers contribute no result")
	assert.Equal(t, "ok", results[0])
}

func TestHookBusDispatchUnknownHook(t *testing.T) {
	bus := NewHookBus(slog.Default())

	assert.Empty(t, bus.Dispatch(context.Background(), "no_such_hook", HookContext{}))
}

func TestHookBusHooksOf(t *testing.T) {
	bus := NewHookBus(slog.Default())
	noop := func(ctx context.Context, hc HookContext) (any, error) { return nil, nil }

	bus.Register("mc", HookOnTickSync, noop)
	bus.Register("mc", HookOnStuckCheck, noop)
	bus.Register("mc", HookOnTickSync, noop)
	bus.Register("other", HookOnStartup, noop)

	assert.Equal(t, []string{HookOnStuckCheck, HookOnTickSync}, bus.HooksOf("mc"))
	assert.Equal(t, []string{HookOnStartup}, bus.HooksOf("other"))
	assert.Empty(t, bus.HooksOf("unknown"))
}

func TestSumInts(t *testing.T) {
	assert.Equal(t, 0, SumInts(nil))
	assert.Equal(t, 5, SumInts([]any{2, "skip", 3, nil}))
}
