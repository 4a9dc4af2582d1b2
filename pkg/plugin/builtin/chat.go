package builtin

import (
	"github.com/codeready-toolchain/agentloop/pkg/plugin"
)

// chatBuilder registers the chat surface. The chat API routes are always
// mounted by the server; the plugin only contributes its frontend tab, so
// no hooks are needed here.
func chatBuilder(d Deps) plugin.Builder {
	return func(m plugin.Manifest, _ *plugin.HookBus) error {
		d.Logger.Debug("Chat plugin loaded", "plugin", m.Name, "tabs", len(m.FrontendTabs))
		return nil
	}
}
