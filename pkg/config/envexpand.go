package config

import (
	"bytes"
	"os"
	"strings"
	"text/template"
)

// ExpandEnv expands environment variables in definition file content using
// Go template syntax: {{.VAR_NAME}}. Agent and project definitions carry
// literal $ characters routinely (custom masking regexes, passwords, shell
// snippets in knowledge entries), so shell-style ${VAR} expansion would
// corrupt them; template syntax never collides.
//
// Missing variables expand to empty strings. Content that fails to parse or
// execute as a template is returned unchanged so plain YAML passes through
// and the YAML parser reports the real problem.
func ExpandEnv(data []byte) []byte {
	tmpl, err := template.New("definition").Option("missingkey=zero").Parse(string(data))
	if err != nil {
		return data
	}

	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if key, value, ok := strings.Cut(kv, "="); ok && key != "" {
			env[key] = value
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, env); err != nil {
		return data
	}
	return buf.Bytes()
}
