package config

import (
	"dario.cat/mergo"
)

// MergeConfig layers a per-entity config stored in the database over the
// file-defined defaults. Every stored key wins, including keys holding
// false/empty values, because a stored value is an explicit choice; nested
// maps are merged key by key, so a database override of one dispatcher field
// keeps the file's remaining dispatcher fields intact. Neither input is
// mutated.
func MergeConfig(defaults, stored map[string]any) map[string]any {
	merged := deepCopyMap(defaults)
	if err := mergo.Merge(&merged, stored, mergo.WithOverwriteWithEmptyValue); err != nil {
		return shallowOverlay(defaults, stored)
	}
	return merged
}

// shallowOverlay is the degraded fallback when a deep merge fails: stored
// keys replace default keys wholesale.
func shallowOverlay(defaults, stored map[string]any) map[string]any {
	merged := make(map[string]any, len(defaults)+len(stored))
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range stored {
		merged[k] = v
	}
	return merged
}

// deepCopyMap clones string-keyed maps all the way down so the merge result
// never aliases the caller's nested maps.
func deepCopyMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if nested, ok := v.(map[string]any); ok {
			out[k] = deepCopyMap(nested)
			continue
		}
		out[k] = v
	}
	return out
}
