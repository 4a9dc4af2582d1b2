package engine

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/agentloop/ent"
)

func TestRenderTemplate(t *testing.T) {
	out, err := renderTemplate("Hi {agent_name}, task: {step_title}", map[string]string{
		"agent_name": "dev-1",
		"step_title": "Ship it",
	})
	require.NoError(t, err)
	assert.Equal(t, "Hi dev-1, task: Ship it", out)
}

func TestRenderTemplateUnknownPlaceholder(t *testing.T) {
	_, err := renderTemplate("Hi {agent_name} {nope}", map[string]string{"agent_name": "dev-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope")
}

func TestRenderTemplateRepeatedPlaceholder(t *testing.T) {
	out, err := renderTemplate("{agent_name} and {agent_name}", map[string]string{"agent_name": "dev-1"})
	require.NoError(t, err)
	assert.Equal(t, "dev-1 and dev-1", out)
}

func TestRenderDefaultWorkPrompt(t *testing.T) {
	values := map[string]string{
		"agent_name":            "dev-1",
		"project_name":          "demo",
		"project_description":   "A demo project",
		"repo_path":             "/srv/demo",
		"step_title":            "Ship it",
		"step_description":      "Cut the release",
		"step_type":             "code",
		"mission_title":         "Release v2",
		"mission_description":   "Get v2 out the door",
		"project_knowledge":     "--- Project Knowledge ---\n[ops/deploy] use blue-green",
		"context_files_content": "",
		"system_prompt":         "",
	}

	out, err := renderTemplate(defaultWorkPrompt, values)
	require.NoError(t, err)
	assert.Contains(t, out, "You are dev-1 working on demo.")
	assert.Contains(t, out, "Current task: Ship it")
	assert.Contains(t, out, "Step type: code")
	assert.Contains(t, out, "Mission: Release v2")
	assert.Contains(t, out, "[ops/deploy] use blue-green")
	assert.NotContains(t, out, "{")
}

func TestFallbackPrompt(t *testing.T) {
	a := &ent.Agent{Name: "dev-1"}
	p := &ent.Project{Name: "demo"}
	st := &ent.Step{Title: "Ship it", Description: "Cut the release"}

	out := fallbackPrompt(a, p, st)
	assert.Equal(t, "You are dev-1 working on demo.\n\nPlease complete the following task:\nShip it\n\nDescription: Cut the release", out)
}

func TestContextFilesBlock(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "NOTES.md"), []byte("remember the invariants"), 0o644))

	block := contextFilesBlock([]string{"NOTES.md", "missing.md"}, dir)
	assert.Equal(t, "--- Context Files ---\n\n### NOTES.md\nremember the invariants", block)
}

func TestContextFilesBlockSubdirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "docs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "docs", "arch.md"), []byte("hexagonal"), 0o644))

	block := contextFilesBlock([]string{"docs/arch.md"}, dir)
	assert.Contains(t, block, "### docs/arch.md\nhexagonal")
}

func TestContextFilesBlockTruncates(t *testing.T) {
	dir := t.TempDir()
	big := strings.Repeat("x", contextFileLimit+100)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "big.txt"), []byte(big), 0o644))

	block := contextFilesBlock([]string{"big.txt"}, dir)
	assert.Len(t, block, len("--- Context Files ---\n\n### big.txt\n")+contextFileLimit)
}

func TestContextFilesBlockSkipsDirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "docs"), 0o755))

	assert.Equal(t, "", contextFilesBlock([]string{"docs"}, dir))
}

func TestContextFilesBlockEmptyCases(t *testing.T) {
	assert.Equal(t, "", contextFilesBlock(nil, "/srv/demo"))
	assert.Equal(t, "", contextFilesBlock([]string{"a.md"}, ""))
	assert.Equal(t, "", contextFilesBlock([]string{"missing.md"}, t.TempDir()))
}
