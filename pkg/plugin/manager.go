package plugin

import (
	"log/slog"
	"strings"
	"sync"
)

// Builder wires a compiled-in plugin implementation to the hook bus. The
// manifest carries the plugin's declared config.
type Builder func(m Manifest, bus *HookBus) error

// LoadedPlugin is a plugin whose builder ran successfully.
type LoadedPlugin struct {
	Manifest Manifest
}

// Summary describes a loaded plugin for the API surface.
type Summary struct {
	Name         string   `json:"name"`
	Version      string   `json:"version"`
	Description  string   `json:"description"`
	Hooks        []string `json:"hooks"`
	FrontendTabs []string `json:"frontend_tabs"`
}

// TabInfo is frontend tab metadata with its owning plugin.
type TabInfo struct {
	Plugin        string `json:"plugin"`
	ID            string `json:"id"`
	Label         string `json:"label"`
	Icon          string `json:"icon"`
	ComponentPath string `json:"component_path"`
}

// Manager discovers plugin manifests and activates their compiled-in
// builders in dependency order.
type Manager struct {
	dir      string
	enabled  []string
	builders map[string]Builder
	bus      *HookBus
	logger   *slog.Logger

	mu      sync.RWMutex
	plugins map[string]LoadedPlugin
	order   []string
}

// NewManager creates a plugin manager. enabled is an optional
// comma-separated allowlist of plugin names; empty loads every discovered
// plugin.
func NewManager(dir, enabled string, builders map[string]Builder, bus *HookBus, logger *slog.Logger) *Manager {
	var filter []string
	for _, name := range strings.Split(enabled, ",") {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			filter = append(filter, trimmed)
		}
	}
	return &Manager{
		dir:      dir,
		enabled:  filter,
		builders: builders,
		bus:      bus,
		logger:   logger.With("component", "plugin.manager"),
		plugins:  make(map[string]LoadedPlugin),
	}
}

// LoadAll discovers, filters, sorts, and activates plugins. Failures are
// per-plugin: one broken plugin never prevents the rest from loading.
func (m *Manager) LoadAll() {
	manifests := DiscoverManifests(m.dir, m.logger)
	if len(m.enabled) > 0 {
		allowed := make(map[string]bool, len(m.enabled))
		for _, name := range m.enabled {
			allowed[name] = true
		}
		var filtered []Manifest
		for _, manifest := range manifests {
			if allowed[manifest.Name] {
				filtered = append(filtered, manifest)
			}
		}
		manifests = filtered
	}

	for _, manifest := range topoSort(manifests, m.logger) {
		builder, ok := m.builders[manifest.Name]
		if !ok {
			m.logger.Warn("Plugin skipped: no compiled-in builder",
				"plugin", manifest.Name)
			continue
		}
		if err := builder(manifest, m.bus); err != nil {
			m.logger.Error("Failed to load plugin",
				"plugin", manifest.Name, "error", err)
			continue
		}

		m.mu.Lock()
		if _, exists := m.plugins[manifest.Name]; !exists {
			m.order = append(m.order, manifest.Name)
		}
		m.plugins[manifest.Name] = LoadedPlugin{Manifest: manifest}
		m.mu.Unlock()

		m.logger.Info("Loaded plugin",
			"plugin", manifest.Name, "version", manifest.Version)
	}
}

// Bus returns the hook bus plugins registered on.
func (m *Manager) Bus() *HookBus {
	return m.bus
}

// Has reports whether a plugin loaded successfully.
func (m *Manager) Has(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.plugins[name]
	return ok
}

// List returns summaries of all loaded plugins in load order.
func (m *Manager) List() []Summary {
	m.mu.RLock()
	defer m.mu.RUnlock()

	summaries := make([]Summary, 0, len(m.order))
	for _, name := range m.order {
		p := m.plugins[name]
		var tabs []string
		for _, tab := range p.Manifest.FrontendTabs {
			tabs = append(tabs, tab.ID)
		}
		summaries = append(summaries, Summary{
			Name:         p.Manifest.Name,
			Version:      p.Manifest.Version,
			Description:  p.Manifest.Description,
			Hooks:        m.bus.HooksOf(name),
			FrontendTabs: tabs,
		})
	}
	return summaries
}

// FrontendTabs returns tab metadata from all loaded plugins in load order.
func (m *Manager) FrontendTabs() []TabInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var tabs []TabInfo
	for _, name := range m.order {
		for _, tab := range m.plugins[name].Manifest.FrontendTabs {
			tabs = append(tabs, TabInfo{
				Plugin:        name,
				ID:            tab.ID,
				Label:         tab.Label,
				Icon:          tab.Icon,
				ComponentPath: tab.ComponentPath,
			})
		}
	}
	return tabs
}
