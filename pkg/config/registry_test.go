package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDefinition(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoadDefinitionsMissingDirectories(t *testing.T) {
	reg := LoadDefinitions("/nonexistent/agents", "/nonexistent/projects", slog.Default())

	assert.Nil(t, reg.AgentDefaults("developer"))
	assert.Nil(t, reg.ProjectDefaults("demo"))
	assert.Empty(t, reg.AgentRoles())
	assert.Empty(t, reg.ProjectSlugs())
}

func TestLoadDefinitionsReadsYAMLFiles(t *testing.T) {
	agentsDir := t.TempDir()
	projectsDir := t.TempDir()

	writeDefinition(t, agentsDir, "developer.yaml", `
capabilities:
  - write_code
  - run_tests
auto_approve_proposals: true
`)
	writeDefinition(t, agentsDir, "reviewer.yml", `
capabilities:
  - review_code
`)
	writeDefinition(t, agentsDir, "notes.txt", "not a definition")
	require.NoError(t, os.Mkdir(filepath.Join(agentsDir, "subdir"), 0o755))

	writeDefinition(t, projectsDir, "demo.yaml", `
masking:
  enabled: false
`)

	reg := LoadDefinitions(agentsDir, projectsDir, slog.Default())

	dev := reg.AgentDefaults("developer")
	require.NotNil(t, dev)
	assert.Equal(t, true, dev["auto_approve_proposals"])
	assert.Equal(t, []any{"write_code", "run_tests"}, dev["capabilities"])

	assert.NotNil(t, reg.AgentDefaults("reviewer"))
	assert.Nil(t, reg.AgentDefaults("notes"))
	assert.Nil(t, reg.AgentDefaults("subdir"))

	demo := reg.ProjectDefaults("demo")
	require.NotNil(t, demo)
	assert.Equal(t, map[string]any{"enabled": false}, demo["masking"])

	assert.ElementsMatch(t, []string{"developer", "reviewer"}, reg.AgentRoles())
	assert.ElementsMatch(t, []string{"demo"}, reg.ProjectSlugs())
}

func TestLoadDefinitionsSkipsMalformedFiles(t *testing.T) {
	agentsDir := t.TempDir()
	writeDefinition(t, agentsDir, "broken.yaml", "{{{ not yaml at all: [")
	writeDefinition(t, agentsDir, "good.yaml", "capabilities: [general_work]")

	reg := LoadDefinitions(agentsDir, t.TempDir(), slog.Default())

	assert.Nil(t, reg.AgentDefaults("broken"))
	assert.NotNil(t, reg.AgentDefaults("good"))
}

func TestLoadDefinitionsExpandsEnvironment(t *testing.T) {
	t.Setenv("AGENTLOOP_TEST_MODEL", "llama3.1")

	agentsDir := t.TempDir()
	writeDefinition(t, agentsDir, "developer.yaml", `
dispatcher:
  model: "{{.AGENTLOOP_TEST_MODEL}}"
`)

	reg := LoadDefinitions(agentsDir, t.TempDir(), slog.Default())

	dev := reg.AgentDefaults("developer")
	require.NotNil(t, dev)
	assert.Equal(t, map[string]any{"model": "llama3.1"}, dev["dispatcher"])
}

func TestLoadDefinitionsEmptyFileYieldsEmptyMap(t *testing.T) {
	agentsDir := t.TempDir()
	writeDefinition(t, agentsDir, "blank.yaml", "")

	reg := LoadDefinitions(agentsDir, t.TempDir(), slog.Default())

	blank := reg.AgentDefaults("blank")
	require.NotNil(t, blank)
	assert.Empty(t, blank)
}
