package engine

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/codeready-toolchain/agentloop/ent"
	"github.com/codeready-toolchain/agentloop/pkg/config"
	"github.com/codeready-toolchain/agentloop/pkg/models"
	"github.com/codeready-toolchain/agentloop/pkg/services"
)

const (
	// knowledgeLimit caps the project knowledge entries included in a prompt.
	knowledgeLimit = 20
	// contextFileLimit caps the bytes read from each context file.
	contextFileLimit = 5000
)

// defaultWorkPrompt is the step prompt template used when the agent config
// does not override work_prompt.
const defaultWorkPrompt = "You are {agent_name} working on {project_name}.\n\n" +
	"Current task: {step_title}\n" +
	"Description: {step_description}\n" +
	"Step type: {step_type}\n\n" +
	"Mission: {mission_title}\n" +
	"{mission_description}\n\n" +
	"Project: {project_description}\n" +
	"Repository: {repo_path}\n\n" +
	"{project_knowledge}\n\n" +
	"Please complete this task and report your results."

// placeholderPattern matches the {name} placeholders a work prompt template
// may use.
var placeholderPattern = regexp.MustCompile(`\{([a-z_]+)\}`)

// PromptBuilder renders step prompts from agent, project, mission, and step
// state plus the project's knowledge base and the agent's context files.
type PromptBuilder struct {
	contexts *services.ContextService
	defs     *config.DefinitionRegistry
	logger   *slog.Logger
}

// NewPromptBuilder creates a prompt builder on the shared ent client.
func NewPromptBuilder(client *ent.Client, defs *config.DefinitionRegistry, logger *slog.Logger) *PromptBuilder {
	return &PromptBuilder{
		contexts: services.NewContextService(client),
		defs:     defs,
		logger:   logger.With("component", "engine.prompt"),
	}
}

// MergedAgentConfig layers the agent's stored config over its role's
// definition-file defaults. Stored keys win.
func (b *PromptBuilder) MergedAgentConfig(a *ent.Agent) map[string]any {
	return config.MergeConfig(b.defs.AgentDefaults(a.Role), a.Config)
}

// MergedProjectConfig layers the project's stored config over its slug's
// definition-file defaults. Stored keys win.
func (b *PromptBuilder) MergedProjectConfig(p *ent.Project) map[string]any {
	return config.MergeConfig(b.defs.ProjectDefaults(p.Slug), p.Config)
}

// Build renders the work prompt for a step. Any template problem falls back
// to the minimal prompt so dispatch always has something to send.
func (b *PromptBuilder) Build(ctx context.Context, a *ent.Agent, project *ent.Project, m *ent.Mission, st *ent.Step, cfg models.AgentConfig) string {
	repoPath := ""
	if project.RepoPath != nil {
		repoPath = *project.RepoPath
	}

	values := map[string]string{
		"agent_name":            a.Name,
		"project_name":          project.Name,
		"project_description":   project.Description,
		"repo_path":             repoPath,
		"step_title":            st.Title,
		"step_description":      st.Description,
		"step_type":             string(st.StepType),
		"mission_title":         m.Title,
		"mission_description":   m.Description,
		"project_knowledge":     b.knowledgeBlock(ctx, project.ID),
		"context_files_content": contextFilesBlock(cfg.ContextFiles, repoPath),
		"system_prompt":         cfg.SystemPrompt,
	}

	template := defaultWorkPrompt
	if cfg.WorkPrompt != "" {
		template = cfg.WorkPrompt
	}

	prompt, err := renderTemplate(template, values)
	if err != nil {
		b.logger.Warn("Work prompt template failed to render, using fallback",
			"agent_id", a.ID, "step_id", st.ID, "error", err)
		return fallbackPrompt(a, project, st)
	}
	return prompt
}

// renderTemplate substitutes {name} placeholders in a single pass. A
// placeholder outside the value set is an error so callers can fall back.
func renderTemplate(template string, values map[string]string) (string, error) {
	for _, match := range placeholderPattern.FindAllStringSubmatch(template, -1) {
		if _, ok := values[match[1]]; !ok {
			return "", fmt.Errorf("unknown placeholder {%s}", match[1])
		}
	}
	pairs := make([]string, 0, len(values)*2)
	for name, value := range values {
		pairs = append(pairs, "{"+name+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(template), nil
}

// fallbackPrompt is the minimal prompt used when template rendering fails.
func fallbackPrompt(a *ent.Agent, project *ent.Project, st *ent.Step) string {
	return fmt.Sprintf(
		"You are %s working on %s.\n\nPlease complete the following task:\n%s\n\nDescription: %s",
		a.Name, project.Name, st.Title, st.Description)
}

// knowledgeBlock serializes the most recently touched knowledge entries.
// Empty when the project has none or the lookup fails.
func (b *PromptBuilder) knowledgeBlock(ctx context.Context, projectID string) string {
	entries, err := b.contexts.ListRecent(ctx, projectID, knowledgeLimit)
	if err != nil {
		b.logger.Warn("Failed to load project knowledge",
			"project_id", projectID, "error", err)
		return ""
	}
	if len(entries) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("--- Project Knowledge ---")
	for _, entry := range entries {
		fmt.Fprintf(&sb, "\n[%s/%s] %s", entry.Category, entry.Key, entry.Content)
	}
	return sb.String()
}

// contextFilesBlock reads the agent's context files from the project repo.
// Files that do not exist are skipped; a file that exists but cannot be
// read keeps its heading with a placeholder body.
func contextFilesBlock(contextFiles []string, repoPath string) string {
	if len(contextFiles) == 0 || repoPath == "" {
		return ""
	}
	var sb strings.Builder
	found := false
	for _, rel := range contextFiles {
		full := filepath.Join(repoPath, rel)
		info, err := os.Stat(full)
		if err != nil || info.IsDir() {
			continue
		}
		found = true
		fmt.Fprintf(&sb, "\n\n### %s\n%s", rel, readContextFile(full))
	}
	if !found {
		return ""
	}
	return "--- Context Files ---" + sb.String()
}

func readContextFile(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return "[Could not read file]"
	}
	if len(data) > contextFileLimit {
		data = data[:contextFileLimit]
	}
	return string(data)
}
