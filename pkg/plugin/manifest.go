package plugin

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ManifestFileName is the manifest each plugin directory must contain.
const ManifestFileName = "plugin.yaml"

// FrontendTab is a UI tab a plugin contributes.
type FrontendTab struct {
	ID            string `yaml:"id" json:"id"`
	Label         string `yaml:"label" json:"label"`
	Icon          string `yaml:"icon,omitempty" json:"icon,omitempty"`
	ComponentPath string `yaml:"component_path,omitempty" json:"component_path,omitempty"`
}

// Manifest is a parsed plugin.yaml.
type Manifest struct {
	Name         string         `yaml:"name" json:"name"`
	Version      string         `yaml:"version" json:"version"`
	Description  string         `yaml:"description,omitempty" json:"description,omitempty"`
	DependsOn    []string       `yaml:"depends_on,omitempty" json:"depends_on,omitempty"`
	Hooks        []string       `yaml:"hooks,omitempty" json:"hooks,omitempty"`
	Routes       []string       `yaml:"routes,omitempty" json:"routes,omitempty"`
	Models       []string       `yaml:"models,omitempty" json:"models,omitempty"`
	FrontendTabs []FrontendTab  `yaml:"frontend_tabs,omitempty" json:"frontend_tabs,omitempty"`
	Config       map[string]any `yaml:"config,omitempty" json:"config,omitempty"`
}

// DiscoverManifests scans dir for subdirectories containing a plugin.yaml,
// in lexical order. Unparseable or nameless manifests are logged and
// skipped.
func DiscoverManifests(dir string, logger *slog.Logger) []Manifest {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Warn("Cannot read plugins directory", "dir", dir, "error", err)
		}
		return nil
	}

	var manifests []Manifest
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name(), ManifestFileName)
		raw, err := os.ReadFile(path)
		if err != nil {
			// A directory without a manifest is not a plugin.
			continue
		}
		var m Manifest
		if err := yaml.Unmarshal(raw, &m); err != nil {
			logger.Warn("Skipping invalid plugin manifest", "path", path, "error", err)
			continue
		}
		if m.Name == "" {
			logger.Warn("Skipping plugin manifest without a name", "path", path)
			continue
		}
		if m.Version == "" {
			m.Version = "0.1.0"
		}
		manifests = append(manifests, m)
	}
	return manifests
}

// topoSort orders manifests so dependencies load first (Kahn's algorithm).
// Manifests with unsatisfied or cyclic dependencies are logged and dropped.
func topoSort(manifests []Manifest, logger *slog.Logger) []Manifest {
	byName := make(map[string]Manifest, len(manifests))
	inDegree := make(map[string]int, len(manifests))
	dependents := make(map[string][]string)
	var names []string
	for _, m := range manifests {
		byName[m.Name] = m
		inDegree[m.Name] = 0
		names = append(names, m.Name)
	}

	for _, m := range manifests {
		for _, dep := range m.DependsOn {
			inDegree[m.Name]++
			if _, known := byName[dep]; known {
				dependents[dep] = append(dependents[dep], m.Name)
			}
			// An unknown dependency leaves the in-degree permanently
			// positive, so the manifest never becomes loadable.
		}
	}

	var queue []string
	for _, name := range names {
		if inDegree[name] == 0 {
			queue = append(queue, name)
		}
	}

	var ordered []Manifest
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		ordered = append(ordered, byName[name])
		for _, dependent := range dependents[name] {
			inDegree[dependent]--
			if inDegree[dependent] == 0 {
				queue = append(queue, dependent)
			}
		}
	}

	if len(ordered) < len(manifests) {
		loaded := make(map[string]bool, len(ordered))
		for _, m := range ordered {
			loaded[m.Name] = true
		}
		for _, m := range manifests {
			if loaded[m.Name] {
				continue
			}
			var missing []string
			for _, dep := range m.DependsOn {
				if !loaded[dep] {
					missing = append(missing, dep)
				}
			}
			logger.Warn("Plugin skipped: unsatisfied dependencies",
				"plugin", m.Name, "missing", missing)
		}
	}
	return ordered
}
