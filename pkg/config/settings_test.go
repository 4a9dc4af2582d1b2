package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// clearSettingsEnv blanks every recognized variable so defaults apply
// regardless of the invoking shell.
func clearSettingsEnv(t *testing.T) {
	t.Helper()
	keys := []string{
		"API_HOST", "API_PORT", "DEBUG",
		"MC_BASE_URL", "MC_TOKEN", "MC_ORG_ID", "BOARD_MAP",
		"AGENT_WORK_INTERVAL_SECONDS", "ORCHESTRATOR_TICK_INTERVAL_SECONDS",
		"STEP_TIMEOUT_SECONDS",
		"AGENTS_DIR", "PROJECTS_DIR", "PLUGINS_DIR", "PLUGINS_ENABLED",
		"DISPATCHER_CLI_NAME", "DISPATCHER_BASE_URL", "DISPATCHER_MODEL",
		"DISPATCHER_API_KEY", "RUNNER_GRPC_ADDR",
		"LOG_LEVEL",
	}
	for _, key := range keys {
		t.Setenv(envPrefix+key, "")
	}
}

func TestLoadSettingsDefaults(t *testing.T) {
	clearSettingsEnv(t)

	s := LoadSettings()

	assert.Equal(t, "127.0.0.1", s.APIHost)
	assert.Equal(t, 8080, s.APIPort)
	assert.True(t, s.Debug)
	assert.Equal(t, "http://localhost:8002", s.MCBaseURL)
	assert.Empty(t, s.MCToken)
	assert.Empty(t, s.BoardMap)
	assert.Equal(t, 300*time.Second, s.AgentWorkInterval)
	assert.Equal(t, 300*time.Second, s.TickInterval)
	assert.Equal(t, 300*time.Second, s.StepTimeout)
	assert.Equal(t, 3, s.PoolSize)
	assert.Equal(t, "./agents", s.AgentsDir)
	assert.Equal(t, "./projects", s.ProjectsDir)
	assert.Equal(t, "./plugins", s.PluginsDir)
	assert.Equal(t, "INFO", s.LogLevel)
}

func TestLoadSettingsOverrides(t *testing.T) {
	clearSettingsEnv(t)
	t.Setenv("AGENTLOOP_API_HOST", "0.0.0.0")
	t.Setenv("AGENTLOOP_API_PORT", "9090")
	t.Setenv("AGENTLOOP_DEBUG", "false")
	t.Setenv("AGENTLOOP_MC_TOKEN", "token-123")
	t.Setenv("AGENTLOOP_BOARD_MAP", `{"board-1": "demo", "board-2": "infra"}`)
	t.Setenv("AGENTLOOP_STEP_TIMEOUT_SECONDS", "30")
	t.Setenv("AGENTLOOP_DISPATCHER_CLI_NAME", "openclaw")

	s := LoadSettings()

	assert.Equal(t, "0.0.0.0", s.APIHost)
	assert.Equal(t, 9090, s.APIPort)
	assert.False(t, s.Debug)
	assert.Equal(t, "token-123", s.MCToken)
	assert.Equal(t, map[string]string{"board-1": "demo", "board-2": "infra"}, s.BoardMap)
	assert.Equal(t, 30*time.Second, s.StepTimeout)
	assert.Equal(t, "openclaw", s.DispatcherCLIName)
}

func TestLoadSettingsMalformedValuesFallBack(t *testing.T) {
	clearSettingsEnv(t)
	t.Setenv("AGENTLOOP_API_PORT", "not-a-port")
	t.Setenv("AGENTLOOP_DEBUG", "maybe")
	t.Setenv("AGENTLOOP_BOARD_MAP", "{not json")

	s := LoadSettings()

	assert.Equal(t, 8080, s.APIPort)
	assert.True(t, s.Debug)
	assert.Empty(t, s.BoardMap)
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"WARNING", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"garbage", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		s := &Settings{LogLevel: tt.value}
		assert.Equal(t, tt.want, s.SlogLevel(), "level %q", tt.value)
	}
}
