package plugin

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerLoadAll(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "chat", "name: chat\ndepends_on:\n  - llm-dispatcher\nfrontend_tabs:\n  - id: chat\n    label: Chat\n")
	writeManifest(t, dir, "llm-dispatcher", "name: llm-dispatcher\nversion: 1.0.0\n")
	writeManifest(t, dir, "unbuilt", "name: unbuilt\n")

	var loadOrder []string
	builders := map[string]Builder{
		"llm-dispatcher": func(m Manifest, bus *HookBus) error {
			loadOrder = append(loadOrder, m.Name)
			bus.Register(m.Name, HookOnStartup, func(ctx context.Context, hc HookContext) (any, error) {
				return nil, nil
			})
			return nil
		},
		"chat": func(m Manifest, bus *HookBus) error {
			loadOrder = append(loadOrder, m.Name)
			return nil
		},
	}

	mgr := NewManager(dir, "", builders, NewHookBus(slog.Default()), slog.Default())
	mgr.LoadAll()

	assert.Equal(t, []string{"llm-dispatcher", "chat"}, loadOrder, "Dependencies load first")
	assert.True(t, mgr.Has("chat"))
	assert.True(t, mgr.Has("llm-dispatcher"))
	assert.False(t, mgr.Has("unbuilt"), "Manifest without a compiled-in builder is skipped")

	summaries := mgr.List()
	require.Len(t, summaries, 2)
	assert.Equal(t, "llm-dispatcher", summaries[0].Name)
	assert.Equal(t, "1.0.0", summaries[0].Version)
	assert.Equal(t, []string{HookOnStartup}, summaries[0].Hooks)
	assert.Equal(t, []string{"chat"}, summaries[1].FrontendTabs)

	tabs := mgr.FrontendTabs()
	require.Len(t, tabs, 1)
	assert.Equal(t, "chat", tabs[0].Plugin)
	assert.Equal(t, "Chat", tabs[0].Label)
}

func TestManagerEnabledFilter(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "one", "name: one\n")
	writeManifest(t, dir, "two", "name: two\n")

	noop := func(m Manifest, bus *HookBus) error { return nil }
	builders := map[string]Builder{"one": noop, "two": noop}

	mgr := NewManager(dir, "one, ", builders, NewHookBus(slog.Default()), slog.Default())
	mgr.LoadAll()

	assert.True(t, mgr.Has("one"))
	assert.False(t, mgr.Has("two"))
}

func TestManagerBuilderFailureIsIsolated(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "bad", "name: bad\n")
	writeManifest(t, dir, "good", "name: good\n")

	builders := map[string]Builder{
		"bad":  func(m Manifest, bus *HookBus) error { return errors.New("no backend") },
		"good": func(m Manifest, bus *HookBus) error { return nil },
	}

	mgr := NewManager(dir, "", builders, NewHookBus(slog.Default()), slog.Default())
	mgr.LoadAll()

	assert.False(t, mgr.Has("bad"))
	assert.True(t, mgr.Has("good"))
}
