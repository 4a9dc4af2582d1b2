package services

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"strings"

	"github.com/codeready-toolchain/agentloop/ent"
	"github.com/codeready-toolchain/agentloop/ent/chatmessage"
	"github.com/codeready-toolchain/agentloop/ent/projectcontext"
	"github.com/codeready-toolchain/agentloop/pkg/dispatch"
	"github.com/codeready-toolchain/agentloop/pkg/models"
)

// Prompt assembly budgets for one chat exchange.
const (
	chatMaxHistory          = 20
	chatMaxKnowledgeEntries = 30
)

const chatNoResponseText = "(No response from agent)"

// ChatService handles the assistant conversation surface. Chat shares the
// store and the dispatcher registry with orchestration but never touches
// orchestration state.
type ChatService struct {
	client   *ent.Client
	registry *dispatch.Registry
}

// NewChatService creates a new ChatService
func NewChatService(client *ent.Client, registry *dispatch.Registry) *ChatService {
	return &ChatService{client: client, registry: registry}
}

// Post persists the user message, relays the conversation to the chat
// backend and persists the reply. A missing session id starts a new
// conversation. Returns ErrUnavailable when no chat backend is registered.
func (s *ChatService) Post(ctx context.Context, req *models.ChatMessageRequest) (*models.ChatExchangeResponse, error) {
	if req.Content == "" {
		return nil, NewValidationError("content", "required")
	}
	dispatcher := s.registry.ChatDispatcher()
	if dispatcher == nil || !dispatcher.Available() {
		return nil, fmt.Errorf("%w: no chat dispatcher registered", ErrUnavailable)
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = newID()
	}

	var project *ent.Project
	var knowledge []*ent.ProjectContext
	if req.ProjectID != "" {
		var err error
		project, err = s.client.Project.Get(ctx, req.ProjectID)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, fmt.Errorf("project %s: %w", req.ProjectID, ErrNotFound)
			}
			return nil, fmt.Errorf("failed to load project: %w", err)
		}
		knowledge, err = s.client.ProjectContext.Query().
			Where(projectcontext.ProjectIDEQ(req.ProjectID)).
			Order(ent.Desc(projectcontext.FieldUpdatedAt)).
			Limit(chatMaxKnowledgeEntries).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load project context: %w", err)
		}
	}

	history, err := s.client.ChatMessage.Query().
		Where(chatmessage.SessionIDEQ(sessionID)).
		Order(ent.Desc(chatmessage.FieldCreatedAt)).
		Limit(chatMaxHistory).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load chat history: %w", err)
	}
	slices.Reverse(history)

	prompt := buildChatPrompt(chatPreamble(project, knowledge), history, req.Content)

	userMsg, err := s.saveMessage(ctx, sessionID, req.ProjectID, chatmessage.RoleUser, req.Content)
	if err != nil {
		return nil, err
	}

	reply := relayChat(ctx, dispatcher, sessionID, prompt)

	assistantMsg, err := s.saveMessage(ctx, sessionID, req.ProjectID, chatmessage.RoleAssistant, reply)
	if err != nil {
		return nil, err
	}

	return &models.ChatExchangeResponse{
		UserMessage:      userMsg,
		AssistantMessage: assistantMsg,
		SessionID:        sessionID,
	}, nil
}

// Stream relays one message and returns the backend's reply chunks. The
// exchange is not persisted until the stream completes; persistence of
// streamed replies is the caller's concern.
func (s *ChatService) Stream(ctx context.Context, sessionID, message string) (<-chan string, error) {
	dispatcher := s.registry.ChatDispatcher()
	if dispatcher == nil || !dispatcher.Available() {
		return nil, fmt.Errorf("%w: no chat dispatcher registered", ErrUnavailable)
	}
	return dispatcher.StreamSend(ctx, dispatch.ChatSessionKey(sessionID), message)
}

// History returns a session's messages in chronological order.
func (s *ChatService) History(ctx context.Context, sessionID string, limit int) ([]*ent.ChatMessage, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	messages, err := s.client.ChatMessage.Query().
		Where(chatmessage.SessionIDEQ(sessionID)).
		Order(ent.Asc(chatmessage.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat history: %w", err)
	}
	return messages, nil
}

// ListSessions aggregates messages by session key, most recent first.
func (s *ChatService) ListSessions(ctx context.Context, projectID string) ([]*models.ChatSessionSummary, error) {
	query := s.client.ChatMessage.Query()
	if projectID != "" {
		query = query.Where(chatmessage.ProjectIDEQ(projectID))
	}

	var rows []struct {
		SessionID string         `json:"session_id"`
		ProjectID sql.NullString `json:"project_id"`
		Count     int            `json:"count"`
		Last      sql.NullTime   `json:"max"`
	}
	err := query.
		GroupBy(chatmessage.FieldSessionID, chatmessage.FieldProjectID).
		Aggregate(ent.Count(), ent.Max(chatmessage.FieldCreatedAt)).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate chat sessions: %w", err)
	}

	sessions := make([]*models.ChatSessionSummary, 0, len(rows))
	for _, row := range rows {
		summary := &models.ChatSessionSummary{
			SessionID:    row.SessionID,
			MessageCount: row.Count,
		}
		if row.ProjectID.Valid {
			summary.ProjectID = row.ProjectID.String
		}
		if row.Last.Valid {
			last := row.Last.Time
			summary.LastMessageAt = &last
		}
		sessions = append(sessions, summary)
	}
	sort.Slice(sessions, func(i, j int) bool {
		a, b := sessions[i].LastMessageAt, sessions[j].LastMessageAt
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.After(*b)
		}
	})
	return sessions, nil
}

func (s *ChatService) saveMessage(ctx context.Context, sessionID, projectID string, role chatmessage.Role, content string) (*ent.ChatMessage, error) {
	builder := s.client.ChatMessage.Create().
		SetID(newID()).
		SetSessionID(sessionID).
		SetRole(role).
		SetContent(content)
	if projectID != "" {
		builder.SetProjectID(projectID)
	}
	msg, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("project %s: %w", projectID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to save chat message: %w", err)
	}
	return msg, nil
}

// relayChat runs one round trip through the chat backend. Backend failures
// become reply text so the conversation records what happened.
func relayChat(ctx context.Context, dispatcher dispatch.ChatDispatcher, sessionID, prompt string) string {
	result, err := dispatcher.Send(ctx, dispatch.ChatSessionKey(sessionID), prompt, dispatch.DefaultChatTimeout)
	if err != nil {
		slog.Error("Chat dispatch failed", "session_id", sessionID, "error", err)
		return fmt.Sprintf("Error communicating with the agent: %v", err)
	}
	text := dispatcher.ExtractText(result)
	if text == "" {
		return chatNoResponseText
	}
	return text
}

// chatPreamble builds the system-level context block for one exchange.
func chatPreamble(project *ent.Project, knowledge []*ent.ProjectContext) string {
	parts := []string{"You are a helpful assistant within the AgentLoop platform."}

	if project != nil {
		parts = append(parts, fmt.Sprintf("\nProject: %s — %s", project.Name, project.Description))
		if project.RepoPath != nil && *project.RepoPath != "" {
			parts = append(parts, "Repository: "+*project.RepoPath)
		}
		if techs := configTechnologies(project.Config); len(techs) > 0 {
			parts = append(parts, "Technologies: "+strings.Join(techs, ", "))
		}
	}

	if len(knowledge) > 0 {
		parts = append(parts, "\n--- Project Knowledge ---")
		for _, entry := range knowledge {
			parts = append(parts, fmt.Sprintf("[%s/%s] %s", entry.Category, entry.Key, entry.Content))
		}
	}
	return strings.Join(parts, "\n")
}

func buildChatPrompt(preamble string, history []*ent.ChatMessage, userMessage string) string {
	lines := []string{preamble, "\n--- Conversation ---"}
	for _, msg := range history {
		role := "Assistant"
		if msg.Role == chatmessage.RoleUser {
			role = "User"
		}
		lines = append(lines, fmt.Sprintf("%s: %s", role, msg.Content))
	}
	lines = append(lines, "User: "+userMessage, "Assistant:")
	return strings.Join(lines, "\n")
}

func configTechnologies(config map[string]any) []string {
	raw, ok := config["technologies"].([]any)
	if !ok {
		return nil
	}
	techs := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok && s != "" {
			techs = append(techs, s)
		}
	}
	return techs
}
