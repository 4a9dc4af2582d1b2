package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// envPrefix namespaces every process-level setting.
const envPrefix = "AGENTLOOP_"

// Settings holds process configuration read from AGENTLOOP_* environment
// variables. Database settings live in pkg/database and are loaded
// separately.
type Settings struct {
	// HTTP surface
	APIHost string
	APIPort int
	Debug   bool

	// Mission Control board integration
	MCBaseURL string
	MCToken   string
	MCOrgID   string
	// BoardMap maps board id to project slug for inbound sync.
	BoardMap map[string]string

	// Engine intervals
	AgentWorkInterval time.Duration
	TickInterval      time.Duration
	StepTimeout       time.Duration
	PoolSize          int

	// Definition directories
	AgentsDir   string
	ProjectsDir string

	// Plugins
	PluginsDir     string
	PluginsEnabled string

	// Dispatcher backends
	DispatcherCLIName string
	DispatcherBaseURL string
	DispatcherModel   string
	DispatcherAPIKey  string
	RunnerGRPCAddr    string

	LogLevel string
}

// LoadSettings reads settings from the environment, applying defaults for
// anything unset. It never fails: malformed values are logged and replaced
// by their defaults.
func LoadSettings() *Settings {
	return &Settings{
		APIHost: envString("API_HOST", "127.0.0.1"),
		APIPort: envInt("API_PORT", 8080),
		Debug:   envBool("DEBUG", true),

		MCBaseURL: envString("MC_BASE_URL", "http://localhost:8002"),
		MCToken:   envString("MC_TOKEN", ""),
		MCOrgID:   envString("MC_ORG_ID", ""),
		BoardMap:  envBoardMap("BOARD_MAP"),

		AgentWorkInterval: envSeconds("AGENT_WORK_INTERVAL_SECONDS", 300),
		TickInterval:      envSeconds("ORCHESTRATOR_TICK_INTERVAL_SECONDS", 300),
		StepTimeout:       envSeconds("STEP_TIMEOUT_SECONDS", 300),
		PoolSize:          envInt("AGENT_POOL_SIZE", 3),

		AgentsDir:   envString("AGENTS_DIR", "./agents"),
		ProjectsDir: envString("PROJECTS_DIR", "./projects"),

		PluginsDir:     envString("PLUGINS_DIR", "./plugins"),
		PluginsEnabled: envString("PLUGINS_ENABLED", ""),

		DispatcherCLIName: envString("DISPATCHER_CLI_NAME", ""),
		DispatcherBaseURL: envString("DISPATCHER_BASE_URL", ""),
		DispatcherModel:   envString("DISPATCHER_MODEL", ""),
		DispatcherAPIKey:  envString("DISPATCHER_API_KEY", ""),
		RunnerGRPCAddr:    envString("RUNNER_GRPC_ADDR", ""),

		LogLevel: envString("LOG_LEVEL", "INFO"),
	}
}

// SlogLevel translates the LogLevel setting into a slog level. Unknown
// values fall back to info.
func (s *Settings) SlogLevel() slog.Level {
	switch strings.ToUpper(s.LogLevel) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(envPrefix + key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(envPrefix + key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("Invalid integer setting, using default",
			"key", envPrefix+key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(envPrefix + key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("Invalid boolean setting, using default",
			"key", envPrefix+key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func envSeconds(key string, fallback int) time.Duration {
	return time.Duration(envInt(key, fallback)) * time.Second
}

// envBoardMap decodes the board-to-project JSON mapping. Invalid JSON yields
// an empty map so a typo disables sync instead of blocking startup.
func envBoardMap(key string) map[string]string {
	v := os.Getenv(envPrefix + key)
	if v == "" {
		return map[string]string{}
	}
	var m map[string]string
	if err := json.Unmarshal([]byte(v), &m); err != nil {
		slog.Warn("Invalid board map JSON, ignoring",
			"key", envPrefix+key, "error", err)
		return map[string]string{}
	}
	if m == nil {
		m = map[string]string{}
	}
	return m
}
