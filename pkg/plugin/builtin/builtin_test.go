package builtin

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/agentloop/ent/proposal"
	"github.com/codeready-toolchain/agentloop/pkg/board"
	"github.com/codeready-toolchain/agentloop/pkg/config"
	"github.com/codeready-toolchain/agentloop/pkg/dispatch"
	"github.com/codeready-toolchain/agentloop/pkg/plugin"
)

func TestBuildersCoverCompiledInPlugins(t *testing.T) {
	builders := Builders(Deps{Settings: &config.Settings{}, Logger: slog.Default()})

	for _, name := range []string{"mission-control", "llm-dispatcher", "cli-dispatcher", "runner-grpc", "chat"} {
		assert.Contains(t, builders, name)
	}
	assert.Len(t, builders, 5)
}

func TestMissionControlBuilderRegistersHooks(t *testing.T) {
	d := Deps{Settings: &config.Settings{}, Logger: slog.Default()}
	bus := plugin.NewHookBus(slog.Default())

	err := missionControlBuilder(d)(plugin.Manifest{Name: "mission-control"}, bus)
	require.NoError(t, err)

	assert.Equal(t, []string{
		plugin.HookOnMissionComplete,
		plugin.HookOnShutdown,
		plugin.HookOnStartup,
		plugin.HookOnStuckCheck,
		plugin.HookOnTickSync,
	}, bus.HooksOf("mission-control"))
}

func TestTaskPriorities(t *testing.T) {
	assert.Equal(t, proposal.PriorityCritical, taskPriorities["critical"])
	assert.Equal(t, proposal.PriorityHigh, taskPriorities["high"])
	assert.Equal(t, proposal.PriorityMedium, taskPriorities["medium"])
	assert.Equal(t, proposal.PriorityLow, taskPriorities["low"])

	_, ok := taskPriorities["urgent"]
	assert.False(t, ok)
}

func TestOnTickSyncSkipsWithoutBoards(t *testing.T) {
	p := &missionControlPlugin{
		settings: &config.Settings{},
		board:    board.NewClient("http://localhost:8002", "tok", ""),
		logger:   slog.Default(),
	}

	created, err := p.onTickSync(context.Background(), plugin.HookContext{})
	require.NoError(t, err)
	assert.Equal(t, 0, created)
}

func TestOnTickSyncSkipsWithoutToken(t *testing.T) {
	p := &missionControlPlugin{
		settings: &config.Settings{BoardMap: map[string]string{"b1": "demo"}},
		board:    board.NewClient("http://localhost:8002", "", ""),
		logger:   slog.Default(),
	}

	created, err := p.onTickSync(context.Background(), plugin.HookContext{})
	require.NoError(t, err)
	assert.Equal(t, 0, created)
}

func TestOnMissionCompleteWithoutMission(t *testing.T) {
	p := &missionControlPlugin{logger: slog.Default()}

	result, err := p.onMissionComplete(context.Background(), plugin.HookContext{})
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestOnStuckCheckWithoutMission(t *testing.T) {
	p := &missionControlPlugin{logger: slog.Default()}

	escalated, err := p.onStuckCheck(context.Background(), plugin.HookContext{})
	require.NoError(t, err)
	assert.Equal(t, 0, escalated)
}

func TestLLMDispatcherBuilderRegistersOnStartup(t *testing.T) {
	registry := dispatch.NewRegistry(slog.Default())
	d := Deps{
		Settings: &config.Settings{DispatcherModel: "llama3.2"},
		Registry: registry,
		Logger:   slog.Default(),
	}
	bus := plugin.NewHookBus(slog.Default())

	err := llmDispatcherBuilder(d)(plugin.Manifest{Name: "llm-dispatcher"}, bus)
	require.NoError(t, err)
	assert.False(t, registry.StepAvailable())

	bus.Dispatch(context.Background(), plugin.HookOnStartup, plugin.HookContext{})

	assert.True(t, registry.StepAvailable())
	assert.True(t, registry.ChatAvailable())
}

func TestLLMDispatcherBuilderConfigOverridesModel(t *testing.T) {
	registry := dispatch.NewRegistry(slog.Default())
	d := Deps{Settings: &config.Settings{}, Registry: registry, Logger: slog.Default()}
	bus := plugin.NewHookBus(slog.Default())

	manifest := plugin.Manifest{
		Name:   "llm-dispatcher",
		Config: map[string]any{"provider": "openai", "model": "gpt-4o-mini"},
	}
	require.NoError(t, llmDispatcherBuilder(d)(manifest, bus))
	bus.Dispatch(context.Background(), plugin.HookOnStartup, plugin.HookContext{})

	// Settings carry no model, so availability proves the manifest override
	// reached the dispatcher.
	assert.True(t, registry.StepAvailable())
}

func TestCLIDispatcherBuilderRequiresBinary(t *testing.T) {
	d := Deps{Settings: &config.Settings{}, Registry: dispatch.NewRegistry(slog.Default()), Logger: slog.Default()}
	bus := plugin.NewHookBus(slog.Default())

	err := cliDispatcherBuilder(d)(plugin.Manifest{Name: "cli-dispatcher"}, bus)
	assert.Error(t, err)
	assert.Empty(t, bus.HooksOf("cli-dispatcher"))
}

func TestCLIDispatcherBuilderRegistersEvenWhenBinaryMissing(t *testing.T) {
	registry := dispatch.NewRegistry(slog.Default())
	d := Deps{Settings: &config.Settings{}, Registry: registry, Logger: slog.Default()}
	bus := plugin.NewHookBus(slog.Default())

	manifest := plugin.Manifest{
		Name:   "cli-dispatcher",
		Config: map[string]any{"binary": "agentloop-no-such-cli"},
	}
	require.NoError(t, cliDispatcherBuilder(d)(manifest, bus))
	bus.Dispatch(context.Background(), plugin.HookOnStartup, plugin.HookContext{})

	// Registered but not available: the worker falls back to simulation.
	assert.NotNil(t, registry.StepDispatcher())
	assert.False(t, registry.StepAvailable())
}

func TestRunnerGRPCBuilderRequiresAddr(t *testing.T) {
	d := Deps{Settings: &config.Settings{}, Registry: dispatch.NewRegistry(slog.Default()), Logger: slog.Default()}
	bus := plugin.NewHookBus(slog.Default())

	err := runnerGRPCBuilder(d)(plugin.Manifest{Name: "runner-grpc"}, bus)
	assert.Error(t, err)
}

func TestRunnerGRPCBuilderLifecycle(t *testing.T) {
	registry := dispatch.NewRegistry(slog.Default())
	d := Deps{
		Settings: &config.Settings{RunnerGRPCAddr: "localhost:50051"},
		Registry: registry,
		Logger:   slog.Default(),
	}
	bus := plugin.NewHookBus(slog.Default())

	require.NoError(t, runnerGRPCBuilder(d)(plugin.Manifest{Name: "runner-grpc"}, bus))
	bus.Dispatch(context.Background(), plugin.HookOnStartup, plugin.HookContext{})

	assert.NotNil(t, registry.StepDispatcher())
	assert.Nil(t, registry.ChatDispatcher())

	bus.Dispatch(context.Background(), plugin.HookOnShutdown, plugin.HookContext{})
}

func TestChatBuilderRegistersNoHooks(t *testing.T) {
	d := Deps{Settings: &config.Settings{}, Logger: slog.Default()}
	bus := plugin.NewHookBus(slog.Default())

	require.NoError(t, chatBuilder(d)(plugin.Manifest{Name: "chat"}, bus))
	assert.Empty(t, bus.HooksOf("chat"))
}

func TestConfigString(t *testing.T) {
	cfg := map[string]any{"model": "llama3.2", "count": 3}

	assert.Equal(t, "llama3.2", configString(cfg, "model"))
	assert.Equal(t, "", configString(cfg, "count"))
	assert.Equal(t, "", configString(cfg, "missing"))
	assert.Equal(t, "", configString(nil, "model"))
}
