// Package config loads process settings from the environment and agent or
// project definition defaults from YAML directories.
package config

import (
	"log/slog"
)

// Config is the umbrella configuration object returned by Initialize and
// passed through constructors: process settings plus the definition
// registry.
type Config struct {
	Settings    *Settings
	Definitions *DefinitionRegistry
}

// Initialize loads settings from the environment and the agent and project
// definition files from the configured directories. Call after the .env
// bootstrap so file-provided variables are visible.
func Initialize() *Config {
	settings := LoadSettings()
	defs := LoadDefinitions(settings.AgentsDir, settings.ProjectsDir, slog.Default())

	slog.Info("Configuration initialized",
		"agents_dir", settings.AgentsDir,
		"projects_dir", settings.ProjectsDir,
		"plugins_dir", settings.PluginsDir,
		"agent_definitions", len(defs.AgentRoles()),
		"project_definitions", len(defs.ProjectSlugs()),
		"boards_mapped", len(settings.BoardMap))

	return &Config{
		Settings:    settings,
		Definitions: defs,
	}
}
