package plugin

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, dir, name, content string) {
	t.Helper()
	pluginDir := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(pluginDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(pluginDir, ManifestFileName), []byte(content), 0o644))
}

func TestDiscoverManifests(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "beta", "name: beta\nversion: 1.2.0\ndescription: second\n")
	writeManifest(t, dir, "alpha", "name: alpha\nhooks:\n  - on_startup\n")
	// A directory without a manifest is not a plugin.
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "notaplugin"), 0o755))

	manifests := DiscoverManifests(dir, slog.Default())

	require.Len(t, manifests, 2)
	assert.Equal(t, "alpha", manifests[0].Name, "Discovery order is lexical")
	assert.Equal(t, "0.1.0", manifests[0].Version, "Missing version gets the default")
	assert.Equal(t, []string{"on_startup"}, manifests[0].Hooks)
	assert.Equal(t, "beta", manifests[1].Name)
	assert.Equal(t, "1.2.0", manifests[1].Version)
}

func TestDiscoverManifestsSkipsInvalid(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "broken", "name: [unclosed\n")
	writeManifest(t, dir, "nameless", "version: 1.0.0\n")
	writeManifest(t, dir, "ok", "name: ok\n")

	manifests := DiscoverManifests(dir, slog.Default())

	require.Len(t, manifests, 1)
	assert.Equal(t, "ok", manifests[0].Name)
}

func TestDiscoverManifestsMissingDir(t *testing.T) {
	manifests := DiscoverManifests(filepath.Join(t.TempDir(), "nope"), slog.Default())
	assert.Empty(t, manifests)
}

func TestTopoSortDependencyOrder(t *testing.T) {
	manifests := []Manifest{
		{Name: "c", DependsOn: []string{"b"}},
		{Name: "a"},
		{Name: "b", DependsOn: []string{"a"}},
	}

	ordered := topoSort(manifests, slog.Default())

	require.Len(t, ordered, 3)
	assert.Equal(t, "a", ordered[0].Name)
	assert.Equal(t, "b", ordered[1].Name)
	assert.Equal(t, "c", ordered[2].Name)
}

func TestTopoSortUnsatisfiedDependency(t *testing.T) {
	manifests := []Manifest{
		{Name: "a"},
		{Name: "orphan", DependsOn: []string{"missing"}},
		{Name: "downstream", DependsOn: []string{"orphan"}},
	}

	ordered := topoSort(manifests, slog.Default())

	require.Len(t, ordered, 1, "Unsatisfied deps drop the plugin and its dependents")
	assert.Equal(t, "a", ordered[0].Name)
}

func TestTopoSortCycle(t *testing.T) {
	manifests := []Manifest{
		{Name: "a", DependsOn: []string{"b"}},
		{Name: "b", DependsOn: []string{"a"}},
		{Name: "solo"},
	}

	ordered := topoSort(manifests, slog.Default())

	require.Len(t, ordered, 1)
	assert.Equal(t, "solo", ordered[0].Name)
}
