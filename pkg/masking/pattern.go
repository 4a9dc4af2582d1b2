package masking

import (
	"log/slog"
	"regexp"
)

// CompiledPattern holds a pre-compiled regex pattern with its replacement.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
	Description string
}

// builtinPattern is the source form of a built-in pattern.
type builtinPattern struct {
	Pattern     string
	Replacement string
	Description string
}

// builtinPatterns are the regex patterns compiled at service startup.
func builtinPatterns() map[string]builtinPattern {
	return map[string]builtinPattern{
		"api_key": {
			Pattern:     `(?i)(?:api[_-]?key|apikey|key)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-]{20,})["']?`,
			Replacement: `"api_key": "__MASKED_API_KEY__"`,
			Description: "API keys",
		},
		"password": {
			Pattern:     `(?i)(?:password|pwd|pass)["']?\s*[:=]\s*["']?([^"'\s\n]{6,})["']?`,
			Replacement: `"password": "__MASKED_PASSWORD__"`,
			Description: "Passwords",
		},
		"certificate": {
			Pattern:     `(?s)-----BEGIN [A-Z ]+-----.*?-----END [A-Z ]+-----`,
			Replacement: `__MASKED_CERTIFICATE__`,
			Description: "SSL/TLS certificates",
		},
		"token": {
			Pattern:     `(?i)(?:token|bearer|jwt)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-\.]{20,})["']?`,
			Replacement: `"token": "__MASKED_TOKEN__"`,
			Description: "Access tokens",
		},
		"email": {
			Pattern:     `\b[A-Za-z0-9._%+-]+@[A-Za-z0-9]+(?:[.-][A-Za-z0-9]+)*\.[A-Za-z]{2,63}\b`,
			Replacement: `__MASKED_EMAIL__`,
			Description: "Email addresses",
		},
		"ssh_key": {
			Pattern:     `ssh-(?:rsa|dss|ed25519|ecdsa)\s+[A-Za-z0-9+/=]+`,
			Replacement: `__MASKED_SSH_KEY__`,
			Description: "SSH public keys",
		},
		"private_key": {
			Pattern:     `(?i)(?:private[_-]?key)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-\.]{20,})["']?`,
			Replacement: `"private_key": "__MASKED_PRIVATE_KEY__"`,
			Description: "Private keys",
		},
		"secret_key": {
			Pattern:     `(?i)(?:secret[_-]?key)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-\.]{20,})["']?`,
			Replacement: `"secret_key": "__MASKED_SECRET_KEY__"`,
			Description: "Secret keys",
		},
		"aws_access_key": {
			Pattern:     `(?i)(?:aws[_-]?access[_-]?key[_-]?id)["']?\s*[:=]\s*["']?(AKIA[A-Z0-9]{16})["']?`,
			Replacement: `"aws_access_key_id": "__MASKED_AWS_KEY__"`,
			Description: "AWS access keys",
		},
		"aws_secret_key": {
			Pattern:     `(?i)(?:aws[_-]?secret[_-]?access[_-]?key)["']?\s*[:=]\s*["']?([A-Za-z0-9/+=]{40})["']?`,
			Replacement: `"aws_secret_access_key": "__MASKED_AWS_SECRET__"`,
			Description: "AWS secret keys",
		},
		"github_token": {
			Pattern:     `(?i)(?:github[_-]?token|gh[ps]_[A-Za-z0-9_]{36,255})`,
			Replacement: `__MASKED_GITHUB_TOKEN__`,
			Description: "GitHub tokens",
		},
		"slack_token": {
			Pattern:     `(?i)xox[baprs]-[A-Za-z0-9-]{10,72}`,
			Replacement: `__MASKED_SLACK_TOKEN__`,
			Description: "Slack tokens",
		},
	}
}

// builtinGroups are the predefined pattern groups projects can reference.
func builtinGroups() map[string][]string {
	return map[string][]string{
		"basic":    {"api_key", "password"},
		"secrets":  {"api_key", "password", "token", "private_key", "secret_key"},
		"security": {"api_key", "password", "token", "certificate", "email", "ssh_key"},
		"cloud":    {"aws_access_key", "aws_secret_key", "api_key", "token"},
		"all": {
			"api_key", "password", "certificate", "email", "token", "ssh_key",
			"private_key", "secret_key", "aws_access_key", "aws_secret_key",
			"github_token", "slack_token",
		},
	}
}

// compileBuiltinPatterns compiles the built-in regex patterns. Invalid
// patterns are logged and skipped.
func (s *MaskingService) compileBuiltinPatterns() {
	for name, pattern := range builtinPatterns() {
		compiled, err := regexp.Compile(pattern.Pattern)
		if err != nil {
			slog.Error("Failed to compile built-in masking pattern, skipping",
				"pattern", name, "error", err)
			continue
		}
		s.patterns[name] = &CompiledPattern{
			Name:        name,
			Regex:       compiled,
			Replacement: pattern.Replacement,
			Description: pattern.Description,
		}
	}
}

// resolveGroups expands group names into a deduplicated pattern list. Group
// order and in-group order are preserved; unknown names are ignored.
func (s *MaskingService) resolveGroups(groupNames []string) []*CompiledPattern {
	seen := make(map[string]bool)
	var resolved []*CompiledPattern
	for _, groupName := range groupNames {
		for _, name := range s.patternGroups[groupName] {
			if seen[name] {
				continue
			}
			seen[name] = true
			if cp, ok := s.patterns[name]; ok {
				resolved = append(resolved, cp)
			}
		}
	}
	return resolved
}
