package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/codeready-toolchain/agentloop/ent/step"
	"github.com/codeready-toolchain/agentloop/pkg/models"
)

func TestAllowedStepTypes(t *testing.T) {
	tests := []struct {
		name       string
		cfg        models.AgentConfig
		permissive bool
		want       []step.StepType
	}{
		{
			name:       "permissive mode allows everything",
			cfg:        models.AgentConfig{},
			permissive: true,
			want:       allStepTypes,
		},
		{
			name: "general work allows everything",
			cfg:  models.AgentConfig{Capabilities: []string{models.CapabilityGeneralWork}},
			want: allStepTypes,
		},
		{
			name: "write_code maps to code steps",
			cfg:  models.AgentConfig{Capabilities: []string{"write_code"}},
			want: []step.StepType{step.StepTypeCode},
		},
		{
			name: "multiple capabilities preserve evaluation order",
			cfg:  models.AgentConfig{Capabilities: []string{"review_code", "run_tests"}},
			want: []step.StepType{step.StepTypeTest, step.StepTypeReview},
		},
		{
			name: "unknown capability allows nothing",
			cfg:  models.AgentConfig{Capabilities: []string{"make_coffee"}},
			want: nil,
		},
		{
			name: "no capabilities allows nothing",
			cfg:  models.AgentConfig{},
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, allowedStepTypes(tt.cfg, tt.permissive))
		})
	}
}

func TestSimulatedOutput(t *testing.T) {
	out := simulatedOutput(step.StepTypeResearch, "Evaluate caching options")
	assert.Equal(t, "Completed research for: Evaluate caching options\n\nKey findings:\n- Analysis complete\n- Requirements identified\n- Next steps planned", out)

	assert.True(t, strings.HasPrefix(simulatedOutput(step.StepTypeCode, "Add endpoint"), "Implemented: Add endpoint"))
	assert.True(t, strings.HasPrefix(simulatedOutput(step.StepTypeTest, "Cover parser"), "Testing complete for: Cover parser"))
	assert.True(t, strings.HasPrefix(simulatedOutput(step.StepTypeReview, "Review PR"), "Code review complete for: Review PR"))
	assert.True(t, strings.HasPrefix(simulatedOutput(step.StepTypeDeploy, "Ship v2"), "Deployment complete for: Ship v2"))
	assert.True(t, strings.HasPrefix(simulatedOutput(step.StepTypeSecurity, "Audit auth"), "Security review complete for: Audit auth"))
	assert.True(t, strings.HasPrefix(simulatedOutput(step.StepTypeOther, "Tidy backlog"), "Task complete: Tidy backlog"))
	assert.Equal(t, "Completed: Edge", simulatedOutput(step.StepType("weird"), "Edge"))
}
