package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnvSubstitutesVariables(t *testing.T) {
	t.Setenv("AGENTLOOP_TEST_TOKEN", "tok-abc")
	t.Setenv("AGENTLOOP_TEST_HOST", "mc.internal")

	out := ExpandEnv([]byte("token: {{.AGENTLOOP_TEST_TOKEN}}\nhost: {{.AGENTLOOP_TEST_HOST}}:8002\n"))

	assert.Equal(t, "token: tok-abc\nhost: mc.internal:8002\n", string(out))
}

func TestExpandEnvMissingVariableExpandsEmpty(t *testing.T) {
	out := ExpandEnv([]byte("token: '{{.AGENTLOOP_DOES_NOT_EXIST_XYZ}}'"))

	assert.Equal(t, "token: ''", string(out))
}

func TestExpandEnvPreservesDollarSigns(t *testing.T) {
	input := `masking:
  custom_patterns:
    - pattern: "^secret.*$"
    - pattern: "price\\$[0-9]+"
`
	out := ExpandEnv([]byte(input))

	assert.Equal(t, input, string(out))
}

func TestExpandEnvMalformedTemplatePassesThrough(t *testing.T) {
	input := "value: {{unclosed"

	out := ExpandEnv([]byte(input))

	assert.Equal(t, input, string(out))
}

func TestExpandEnvEmptyInput(t *testing.T) {
	assert.Empty(t, ExpandEnv([]byte("")))
}
