// Package board integrates with the Mission Control task board: a JSON
// HTTP client for boards, tasks, comments and ask-user messages, and an
// SSE ingestor that feeds board activity back into the orchestration loop.
package board

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// requestTimeout bounds every non-streaming board call.
const requestTimeout = 10 * time.Second

// Board is a kanban board summary as returned by the board API.
type Board struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Task is a board task. Status is one of inbox, in_progress, review, done.
type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
}

type boardList struct {
	Items []Board `json:"items"`
}

type taskList struct {
	Items []Task `json:"items"`
}

// Client talks to the Mission Control HTTP API. All calls carry a bearer
// token and, when configured, an organization header.
type Client struct {
	baseURL    string
	token      string
	orgID      string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a board API client. token may be empty, in which case
// Configured reports false and stream consumers are not started.
func NewClient(baseURL, token, orgID string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		orgID:      orgID,
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     slog.Default().With("component", "board.client"),
	}
}

// Configured reports whether a board credential is present.
func (c *Client) Configured() bool {
	return c.token != ""
}

// ListBoards returns all boards visible to the credential.
func (c *Client) ListBoards(ctx context.Context) ([]Board, error) {
	var out boardList
	if err := c.get(ctx, "/api/v1/boards", &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// ListTasks returns the tasks on a board, optionally filtered by status.
func (c *Client) ListTasks(ctx context.Context, boardID, status string) ([]Task, error) {
	path := "/api/v1/boards/" + boardID + "/tasks"
	if status != "" {
		path += "?status=" + status
	}
	var out taskList
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// OpenTasks returns the tasks an agent could pick up: inbox or in_progress.
func (c *Client) OpenTasks(ctx context.Context, boardID string) ([]Task, error) {
	tasks, err := c.ListTasks(ctx, boardID, "")
	if err != nil {
		return nil, err
	}
	open := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Status == "inbox" || t.Status == "in_progress" {
			open = append(open, t)
		}
	}
	return open, nil
}

// UpdateTaskStatus moves a task to a new status. comment is attached to the
// transition when non-empty.
func (c *Client) UpdateTaskStatus(ctx context.Context, boardID, taskID, status, comment string) (*Task, error) {
	body := map[string]string{"status": status}
	if comment != "" {
		body["comment"] = comment
	}
	var out Task
	if err := c.send(ctx, http.MethodPatch, "/api/v1/boards/"+boardID+"/tasks/"+taskID, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MarkTaskInProgress flags a task as claimed by an agent.
func (c *Client) MarkTaskInProgress(ctx context.Context, boardID, taskID string) error {
	_, err := c.UpdateTaskStatus(ctx, boardID, taskID, "in_progress", "")
	return err
}

// MarkTaskDone flags a task as finished.
func (c *Client) MarkTaskDone(ctx context.Context, boardID, taskID string) error {
	_, err := c.UpdateTaskStatus(ctx, boardID, taskID, "done", "")
	return err
}

// CreateTask adds a task to a board. An empty priority defaults to medium.
func (c *Client) CreateTask(ctx context.Context, boardID, title, description, priority string) (*Task, error) {
	if priority == "" {
		priority = "medium"
	}
	body := map[string]string{
		"title":       title,
		"description": description,
		"priority":    priority,
	}
	var out Task
	if err := c.send(ctx, http.MethodPost, "/api/v1/boards/"+boardID+"/tasks", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddComment posts a comment on a task.
func (c *Client) AddComment(ctx context.Context, boardID, taskID, content string) error {
	body := map[string]string{"content": content}
	return c.send(ctx, http.MethodPost, "/api/v1/boards/"+boardID+"/tasks/"+taskID+"/comments", body, nil)
}

// ReportAgentActivity logs agent activity back to the board as a comment.
func (c *Client) ReportAgentActivity(ctx context.Context, boardID, taskID, agentName, action string) error {
	return c.AddComment(ctx, boardID, taskID, fmt.Sprintf("[AgentLoop] %s: %s", agentName, action))
}

// AskUser posts a human-in-the-loop question to the board's main gateway.
// correlationID ties the eventual answer back to its origin and may be empty.
func (c *Client) AskUser(ctx context.Context, boardID, content, correlationID string) error {
	body := map[string]string{
		"board_id": boardID,
		"content":  content,
	}
	if correlationID != "" {
		body["correlation_id"] = correlationID
	}
	return c.send(ctx, http.MethodPost, "/gateway/main/ask-user", body, nil)
}

// Healthy reports whether the board service answers its health probe.
func (c *Client) Healthy(ctx context.Context) bool {
	return c.get(ctx, "/healthz", nil) == nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	c.setAuthHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("board GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("board returned HTTP %d for %s", resp.StatusCode, path)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode board response: %w", err)
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode board request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.setAuthHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("board %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("board returned HTTP %d for %s", resp.StatusCode, path)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode board response: %w", err)
	}
	return nil
}

func (c *Client) setAuthHeaders(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if c.orgID != "" {
		req.Header.Set("X-Organization-Id", c.orgID)
	}
}
