package masking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinPatternsCompile(t *testing.T) {
	svc := NewMaskingService()

	for name := range builtinPatterns() {
		cp, exists := svc.patterns[name]
		require.True(t, exists, "Pattern %s should compile", name)
		assert.Equal(t, name, cp.Name)
		assert.NotNil(t, cp.Regex)
		assert.NotEmpty(t, cp.Replacement, "Pattern %s should have replacement", name)
	}
}

func TestBuiltinGroupsReferenceKnownPatterns(t *testing.T) {
	svc := NewMaskingService()

	for group, members := range builtinGroups() {
		assert.NotEmpty(t, members, "Group %s should not be empty", group)
		for _, name := range members {
			_, exists := svc.patterns[name]
			assert.True(t, exists, "Group %s references unknown pattern %s", group, name)
		}
	}
}

func TestResolveGroupsDeduplicates(t *testing.T) {
	svc := NewMaskingService()

	// api_key and token appear in both groups but must resolve once.
	resolved := svc.resolveGroups([]string{"secrets", "cloud"})

	names := make(map[string]int)
	for _, cp := range resolved {
		names[cp.Name]++
	}
	assert.Equal(t, 1, names["api_key"])
	assert.Equal(t, 1, names["token"])
	assert.Equal(t, 1, names["aws_access_key"])
	assert.Equal(t, 1, names["aws_secret_key"])

	// Group order is preserved: secrets members come before cloud-only members.
	require.NotEmpty(t, resolved)
	assert.Equal(t, "api_key", resolved[0].Name)
}

func TestResolveGroupsUnknownGroup(t *testing.T) {
	svc := NewMaskingService()

	resolved := svc.resolveGroups([]string{"nonexistent"})
	assert.Empty(t, resolved)
}

func TestResolveGroupsEmptyInput(t *testing.T) {
	svc := NewMaskingService()

	assert.Empty(t, svc.resolveGroups(nil))
	assert.Empty(t, svc.resolveGroups([]string{}))
}
