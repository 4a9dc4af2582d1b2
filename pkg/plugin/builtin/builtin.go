// Package builtin holds the compiled-in plugin implementations that
// manifests select by name: the Mission Control board integration, the
// dispatcher backends, and the chat surface.
package builtin

import (
	"log/slog"

	"github.com/codeready-toolchain/agentloop/ent"
	"github.com/codeready-toolchain/agentloop/pkg/board"
	"github.com/codeready-toolchain/agentloop/pkg/config"
	"github.com/codeready-toolchain/agentloop/pkg/dispatch"
	"github.com/codeready-toolchain/agentloop/pkg/events"
	"github.com/codeready-toolchain/agentloop/pkg/plugin"
)

// Deps bundles the process services plugin builders wire against.
type Deps struct {
	Client    *ent.Client
	Settings  *config.Settings
	Board     *board.Client
	Ingestor  *board.Ingestor
	Publisher *events.Publisher
	Registry  *dispatch.Registry
	Logger    *slog.Logger
}

// Builders returns the builder for every compiled-in plugin, keyed by
// manifest name.
func Builders(d Deps) map[string]plugin.Builder {
	return map[string]plugin.Builder{
		"mission-control": missionControlBuilder(d),
		"llm-dispatcher":  llmDispatcherBuilder(d),
		"cli-dispatcher":  cliDispatcherBuilder(d),
		"runner-grpc":     runnerGRPCBuilder(d),
		"chat":            chatBuilder(d),
	}
}
