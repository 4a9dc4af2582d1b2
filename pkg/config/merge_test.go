package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeConfigStoredWins(t *testing.T) {
	defaults := map[string]any{
		"auto_approve_proposals": false,
		"capabilities":           []any{"general_work"},
		"dispatcher": map[string]any{
			"provider": "ollama",
			"model":    "llama3.1",
		},
	}
	stored := map[string]any{
		"auto_approve_proposals": true,
		"dispatcher": map[string]any{
			"model": "qwen2.5-coder",
		},
	}

	merged := MergeConfig(defaults, stored)

	assert.Equal(t, true, merged["auto_approve_proposals"])
	assert.Equal(t, []any{"general_work"}, merged["capabilities"])

	dispatcher, ok := merged["dispatcher"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "qwen2.5-coder", dispatcher["model"])
	assert.Equal(t, "ollama", dispatcher["provider"])
}

func TestMergeConfigStoredFalseOverridesDefaultTrue(t *testing.T) {
	defaults := map[string]any{"auto_approve_proposals": true}
	stored := map[string]any{"auto_approve_proposals": false}

	merged := MergeConfig(defaults, stored)

	assert.Equal(t, false, merged["auto_approve_proposals"])
}

func TestMergeConfigNilInputs(t *testing.T) {
	assert.NotNil(t, MergeConfig(nil, nil))
	assert.Empty(t, MergeConfig(nil, nil))

	onlyStored := MergeConfig(nil, map[string]any{"a": 1})
	assert.Equal(t, 1, onlyStored["a"])

	onlyDefaults := MergeConfig(map[string]any{"b": 2}, nil)
	assert.Equal(t, 2, onlyDefaults["b"])
}

func TestMergeConfigDoesNotMutateInputs(t *testing.T) {
	defaults := map[string]any{
		"dispatcher": map[string]any{"provider": "ollama"},
	}
	stored := map[string]any{
		"dispatcher": map[string]any{"provider": "openai"},
	}

	merged := MergeConfig(defaults, stored)

	dispatcher := merged["dispatcher"].(map[string]any)
	assert.Equal(t, "openai", dispatcher["provider"])
	assert.Equal(t, "ollama", defaults["dispatcher"].(map[string]any)["provider"])
}
