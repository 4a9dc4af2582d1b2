package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefinitionRegistry indexes agent defaults by role and project defaults by
// slug, loaded from the YAML definition directories at startup. A definition
// file supplies the baseline config for every agent of a role (or every
// project of a slug); the per-entity config stored in the database is layered
// on top with MergeConfig.
type DefinitionRegistry struct {
	agents   map[string]map[string]any
	projects map[string]map[string]any
}

// LoadDefinitions reads both definition directories. Missing directories are
// fine (empty registry); unreadable or malformed files are logged and
// skipped so one broken definition never takes the process down.
func LoadDefinitions(agentsDir, projectsDir string, logger *slog.Logger) *DefinitionRegistry {
	return &DefinitionRegistry{
		agents:   loadDefinitionDir(agentsDir, logger),
		projects: loadDefinitionDir(projectsDir, logger),
	}
}

// AgentDefaults returns the file-defined defaults for an agent role, or nil
// when no definition file exists for it.
func (r *DefinitionRegistry) AgentDefaults(role string) map[string]any {
	return r.agents[role]
}

// ProjectDefaults returns the file-defined defaults for a project slug, or
// nil when no definition file exists for it.
func (r *DefinitionRegistry) ProjectDefaults(slug string) map[string]any {
	return r.projects[slug]
}

// AgentRoles returns the roles that have definition files.
func (r *DefinitionRegistry) AgentRoles() []string {
	return mapKeys(r.agents)
}

// ProjectSlugs returns the slugs that have definition files.
func (r *DefinitionRegistry) ProjectSlugs() []string {
	return mapKeys(r.projects)
}

func mapKeys(m map[string]map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// loadDefinitionDir reads every .yaml/.yml file in dir into a map keyed by
// the file's base name. Environment variables are expanded with the
// {{.VAR}} template syntax before parsing.
func loadDefinitionDir(dir string, logger *slog.Logger) map[string]map[string]any {
	defs := make(map[string]map[string]any)

	entries, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("Failed to read definition directory", "dir", dir, "error", err)
		}
		return defs
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Warn("Failed to read definition file", "path", path, "error", err)
			continue
		}

		var def map[string]any
		if err := yaml.Unmarshal(ExpandEnv(data), &def); err != nil {
			logger.Warn("Failed to parse definition file", "path", path, "error", err)
			continue
		}
		if def == nil {
			def = map[string]any{}
		}

		defs[strings.TrimSuffix(entry.Name(), ext)] = def
	}

	return defs
}
