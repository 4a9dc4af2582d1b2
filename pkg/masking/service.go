// Package masking redacts secrets from agent output before it is persisted
// or published. Redaction is policy-driven per project: the project config
// selects built-in pattern groups and may add custom regex patterns.
package masking

import (
	"log/slog"
	"regexp"
)

// DefaultPatternGroup is applied when a project has no masking config.
const DefaultPatternGroup = "secrets"

// Policy is a project's resolved masking configuration.
type Policy struct {
	// Disabled turns off all masking for the project.
	Disabled bool
	// Groups names the built-in pattern groups to apply, in order.
	Groups []string
	// custom patterns run after the built-in groups.
	custom []*CompiledPattern
}

// DefaultPolicy masks with the default pattern group.
func DefaultPolicy() Policy {
	return Policy{Groups: []string{DefaultPatternGroup}}
}

// MaskingService applies regex-based masking to agent output.
type MaskingService struct {
	patterns      map[string]*CompiledPattern
	patternGroups map[string][]string
}

// NewMaskingService creates a masking service with the built-in patterns
// compiled and ready.
func NewMaskingService() *MaskingService {
	s := &MaskingService{
		patterns:      make(map[string]*CompiledPattern),
		patternGroups: builtinGroups(),
	}
	s.compileBuiltinPatterns()
	return s
}

// PolicyFromProjectConfig builds a Policy from a project's config map. The
// "masking" section supports:
//
//	masking:
//	  enabled: true
//	  pattern_groups: ["secrets", "cloud"]
//	  custom_patterns:
//	    - pattern: "internal-[0-9]+"
//	      replacement: "__MASKED_INTERNAL_ID__"
//
// A missing or malformed section yields the default policy. Invalid custom
// regexes are logged and skipped so the built-in patterns still apply.
func (s *MaskingService) PolicyFromProjectConfig(cfg map[string]any) Policy {
	policy := DefaultPolicy()
	if cfg == nil {
		return policy
	}
	raw, ok := cfg["masking"]
	if !ok {
		return policy
	}
	section, ok := raw.(map[string]any)
	if !ok {
		slog.Warn("Project masking config is not a map, using default policy")
		return policy
	}

	if enabled, ok := section["enabled"].(bool); ok && !enabled {
		return Policy{Disabled: true}
	}

	if rawGroups, ok := section["pattern_groups"].([]any); ok {
		var groups []string
		for _, g := range rawGroups {
			name, ok := g.(string)
			if !ok {
				continue
			}
			if _, known := s.patternGroups[name]; !known {
				slog.Warn("Unknown masking pattern group, ignoring", "group", name)
				continue
			}
			groups = append(groups, name)
		}
		if len(groups) > 0 {
			policy.Groups = groups
		}
	}

	if rawCustom, ok := section["custom_patterns"].([]any); ok {
		policy.custom = s.compileCustomPatterns(rawCustom)
	}
	return policy
}

// compileCustomPatterns compiles per-project custom patterns. Entries with a
// missing pattern or an invalid regex are logged and skipped.
func (s *MaskingService) compileCustomPatterns(raw []any) []*CompiledPattern {
	var custom []*CompiledPattern
	for i, entry := range raw {
		m, ok := entry.(map[string]any)
		if !ok {
			slog.Warn("Custom masking pattern entry is not a map, skipping", "index", i)
			continue
		}
		pattern, _ := m["pattern"].(string)
		if pattern == "" {
			slog.Warn("Custom masking pattern has no pattern, skipping", "index", i)
			continue
		}
		replacement, _ := m["replacement"].(string)
		if replacement == "" {
			replacement = "***MASKED***"
		}
		compiled, err := regexp.Compile(pattern)
		if err != nil {
			slog.Warn("Failed to compile custom masking pattern, skipping",
				"index", i, "error", err)
			continue
		}
		name, _ := m["name"].(string)
		if name == "" {
			name = "custom"
		}
		custom = append(custom, &CompiledPattern{
			Name:        name,
			Regex:       compiled,
			Replacement: replacement,
		})
	}
	return custom
}

// MaskText applies the policy's patterns to text and returns the masked
// result. Built-in groups run first, then custom patterns.
func (s *MaskingService) MaskText(text string, policy Policy) string {
	if policy.Disabled || text == "" {
		return text
	}
	masked := text
	for _, cp := range s.resolveGroups(policy.Groups) {
		masked = cp.Regex.ReplaceAllString(masked, cp.Replacement)
	}
	for _, cp := range policy.custom {
		masked = cp.Regex.ReplaceAllString(masked, cp.Replacement)
	}
	return masked
}

// MaskPayload walks a payload map and masks every string value, including
// strings nested in maps and slices. Non-string values pass through.
func (s *MaskingService) MaskPayload(payload map[string]any, policy Policy) map[string]any {
	if policy.Disabled || payload == nil {
		return payload
	}
	masked := make(map[string]any, len(payload))
	for k, v := range payload {
		masked[k] = s.maskValue(v, policy)
	}
	return masked
}

func (s *MaskingService) maskValue(v any, policy Policy) any {
	switch val := v.(type) {
	case string:
		return s.MaskText(val, policy)
	case map[string]any:
		return s.MaskPayload(val, policy)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = s.maskValue(item, policy)
		}
		return out
	default:
		return v
	}
}
