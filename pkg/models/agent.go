package models

import (
	"encoding/json"
	"fmt"

	"github.com/codeready-toolchain/agentloop/ent"
)

// CreateAgentRequest contains fields for registering an agent
type CreateAgentRequest struct {
	Name        string         `json:"name"`
	Role        string         `json:"role"`
	Description string         `json:"description,omitempty"`
	ProjectID   string         `json:"project_id"`
	Config      map[string]any `json:"config,omitempty"`
}

// UpdateAgentPoseRequest contains the UI pose fields; none of them affect
// orchestration.
type UpdateAgentPoseRequest struct {
	PositionX     *float64 `json:"position_x,omitempty"`
	PositionY     *float64 `json:"position_y,omitempty"`
	TargetX       *float64 `json:"target_x,omitempty"`
	TargetY       *float64 `json:"target_y,omitempty"`
	CurrentAction *string  `json:"current_action,omitempty"`
}

// AgentListResponse contains an agent list
type AgentListResponse struct {
	Agents     []*ent.Agent `json:"agents"`
	TotalCount int          `json:"total_count"`
}

// DispatcherOverrides are per-agent overrides for the chat-completion
// dispatcher; empty fields fall back to the configured defaults.
type DispatcherOverrides struct {
	Provider string `json:"provider,omitempty"`
	Model    string `json:"model,omitempty"`
	BaseURL  string `json:"base_url,omitempty"`
	APIKey   string `json:"api_key,omitempty"`
}

// AgentConfig is the typed view of Agent.config.
type AgentConfig struct {
	Capabilities         []string            `json:"capabilities,omitempty"`
	AutoApproveProposals bool                `json:"auto_approve_proposals,omitempty"`
	Dispatcher           DispatcherOverrides `json:"dispatcher,omitempty"`

	// SystemPrompt seeds the agent's persona for chat-completion backends.
	SystemPrompt string `json:"system_prompt,omitempty"`
	// WorkPrompt overrides the default step prompt template.
	WorkPrompt string `json:"work_prompt,omitempty"`
	// ContextFiles are repo-relative paths appended to step prompts.
	ContextFiles []string `json:"context_files,omitempty"`
}

// ParseAgentConfig decodes an agent's opaque config map. A nil map yields a
// zero config; a malformed map yields an error so callers can apply the
// permissive fallback.
func ParseAgentConfig(raw map[string]any) (AgentConfig, error) {
	var cfg AgentConfig
	if raw == nil {
		return cfg, nil
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return cfg, fmt.Errorf("failed to marshal agent config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to decode agent config: %w", err)
	}
	return cfg, nil
}

// HasCapability reports whether the config lists the capability. The
// general_work capability satisfies every step type.
func (c AgentConfig) HasCapability(capability string) bool {
	for _, have := range c.Capabilities {
		if have == capability || have == CapabilityGeneralWork {
			return true
		}
	}
	return false
}

// CapabilityGeneralWork is the wildcard capability.
const CapabilityGeneralWork = "general_work"
