package builtin

import (
	"context"
	"fmt"

	"github.com/codeready-toolchain/agentloop/pkg/dispatch"
	"github.com/codeready-toolchain/agentloop/pkg/plugin"
)

// llmDispatcherBuilder wires the chat-completion backend as both step and
// chat dispatcher. Manifest config may override provider, model and
// base_url; process settings supply the defaults.
func llmDispatcherBuilder(d Deps) plugin.Builder {
	return func(m plugin.Manifest, bus *plugin.HookBus) error {
		defaults := dispatch.ChatCompletionConfig{
			Provider: configString(m.Config, "provider"),
			Model:    d.Settings.DispatcherModel,
			BaseURL:  d.Settings.DispatcherBaseURL,
			APIKey:   d.Settings.DispatcherAPIKey,
		}
		if v := configString(m.Config, "model"); v != "" {
			defaults.Model = v
		}
		if v := configString(m.Config, "base_url"); v != "" {
			defaults.BaseURL = v
		}

		dispatcher := dispatch.NewChatCompletionDispatcher(defaults, d.Logger)
		bus.Register(m.Name, plugin.HookOnStartup, func(_ context.Context, _ plugin.HookContext) (any, error) {
			d.Registry.SetStepDispatcher(m.Name, dispatcher)
			d.Registry.SetChatDispatcher(m.Name, dispatcher)
			return nil, nil
		})
		return nil
	}
}

// cliDispatcherBuilder wires the CLI subprocess backend as both step and
// chat dispatcher. The binary comes from the manifest config or the
// dispatcher_cli_name setting; a missing binary on PATH leaves the
// dispatcher registered but unavailable.
func cliDispatcherBuilder(d Deps) plugin.Builder {
	return func(m plugin.Manifest, bus *plugin.HookBus) error {
		binary := d.Settings.DispatcherCLIName
		if v := configString(m.Config, "binary"); v != "" {
			binary = v
		}
		if binary == "" {
			return fmt.Errorf("no dispatcher CLI binary configured")
		}

		dispatcher := dispatch.NewCLIDispatcher(binary, d.Logger)
		bus.Register(m.Name, plugin.HookOnStartup, func(_ context.Context, _ plugin.HookContext) (any, error) {
			d.Registry.SetStepDispatcher(m.Name, dispatcher)
			d.Registry.SetChatDispatcher(m.Name, dispatcher)
			return nil, nil
		})
		return nil
	}
}

// runnerGRPCBuilder wires the remote gRPC runner as step dispatcher. The
// runner has no chat surface.
func runnerGRPCBuilder(d Deps) plugin.Builder {
	return func(m plugin.Manifest, bus *plugin.HookBus) error {
		addr := d.Settings.RunnerGRPCAddr
		if v := configString(m.Config, "addr"); v != "" {
			addr = v
		}
		if addr == "" {
			return fmt.Errorf("no runner address configured")
		}

		dispatcher, err := dispatch.NewGRPCRunnerDispatcher(addr, d.Logger)
		if err != nil {
			return err
		}
		bus.Register(m.Name, plugin.HookOnStartup, func(_ context.Context, _ plugin.HookContext) (any, error) {
			d.Registry.SetStepDispatcher(m.Name, dispatcher)
			return nil, nil
		})
		bus.Register(m.Name, plugin.HookOnShutdown, func(_ context.Context, _ plugin.HookContext) (any, error) {
			return nil, dispatcher.Close()
		})
		return nil
	}
}

func configString(cfg map[string]any, key string) string {
	v, _ := cfg[key].(string)
	return v
}
