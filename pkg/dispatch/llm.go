package dispatch

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/codeready-toolchain/agentloop/pkg/models"
)

const (
	roleSystem = "system"
	roleUser   = "user"
)

// providerBaseURLs are the endpoints for well-known providers; an explicit
// base_url override always wins.
var providerBaseURLs = map[string]string{
	"ollama":     "http://localhost:11434/v1",
	"openai":     "https://api.openai.com/v1",
	"openrouter": "https://openrouter.ai/api/v1",
}

const defaultProvider = "ollama"

// ChatCompletionConfig selects an OpenAI-compatible endpoint and model.
type ChatCompletionConfig struct {
	Provider string
	Model    string
	BaseURL  string
	APIKey   string
}

// ChatCompletionDispatcher drives agents through an OpenAI-compatible
// chat-completion API. Agents may override provider, model, base URL and API
// key through their config; one HTTP client is cached per resolved
// (provider, model, base URL) tuple.
type ChatCompletionDispatcher struct {
	defaults ChatCompletionConfig
	logger   *slog.Logger

	mu      sync.Mutex
	clients map[clientKey]*completionClient
}

type clientKey struct {
	provider string
	model    string
	baseURL  string
}

// NewChatCompletionDispatcher creates a dispatcher with the given defaults.
func NewChatCompletionDispatcher(defaults ChatCompletionConfig, logger *slog.Logger) *ChatCompletionDispatcher {
	return &ChatCompletionDispatcher{
		defaults: defaults,
		logger:   logger.With("component", "dispatch.llm"),
		clients:  make(map[clientKey]*completionClient),
	}
}

// Available reports whether a default model is configured.
func (d *ChatCompletionDispatcher) Available() bool {
	return d.defaults.Model != ""
}

// Dispatch runs one step as a single chat completion. API failures fail the
// step; they do not trigger the simulated fallback.
func (d *ChatCompletionDispatcher) Dispatch(ctx context.Context, req StepRequest) (*StepResult, error) {
	cfg := d.resolve(req.AgentConfig)
	timeout := req.Timeout
	if timeout <= 0 {
		timeout = defaultStepTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	messages := make([]chatMessage, 0, 2)
	if req.AgentConfig != nil && req.AgentConfig.SystemPrompt != "" {
		messages = append(messages, chatMessage{Role: roleSystem, Content: req.AgentConfig.SystemPrompt})
	}
	messages = append(messages, chatMessage{Role: roleUser, Content: req.Prompt})

	meta := map[string]any{"provider": cfg.Provider, "model": cfg.Model}
	text, err := d.clientFor(cfg).complete(ctx, messages)
	if err != nil {
		d.logger.Warn("Chat completion failed",
			"step_id", req.StepID,
			"provider", cfg.Provider,
			"model", cfg.Model,
			"error", err)
		meta["error"] = err.Error()
		return &StepResult{Status: StatusError, Meta: meta}, nil
	}
	meta["_response_text"] = text
	return &StepResult{Status: StatusOK, Text: text, Meta: meta}, nil
}

// Send delivers one chat message. The session key is accepted for interface
// compatibility; the HTTP protocol is stateless and history travels inside
// the message.
func (d *ChatCompletionDispatcher) Send(ctx context.Context, sessionKey, message string, timeout time.Duration) (map[string]any, error) {
	cfg := d.resolve(nil)
	if timeout <= 0 {
		timeout = DefaultChatTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	text, err := d.clientFor(cfg).complete(ctx, []chatMessage{{Role: roleUser, Content: message}})
	if err != nil {
		return nil, err
	}
	return map[string]any{"status": StatusOK, "_response_text": text}, nil
}

// ExtractText pulls the reply text out of a Send result.
func (d *ChatCompletionDispatcher) ExtractText(result map[string]any) string {
	if result == nil {
		return ""
	}
	text, _ := result["_response_text"].(string)
	return text
}

// StreamSend delivers one chat message and streams the reply as it is
// generated.
func (d *ChatCompletionDispatcher) StreamSend(ctx context.Context, sessionKey, message string) (<-chan string, error) {
	cfg := d.resolve(nil)
	resp, err := d.clientFor(cfg).openStream(ctx, []chatMessage{{Role: roleUser, Content: message}})
	if err != nil {
		return nil, err
	}

	out := make(chan string)
	go func() {
		defer close(out)
		defer resp.Body.Close()

		scanner := bufio.NewScanner(resp.Body)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			line := scanner.Text()
			if !strings.HasPrefix(line, "data: ") {
				continue
			}
			data := strings.TrimPrefix(line, "data: ")
			if data == "[DONE]" {
				return
			}
			var chunk streamChunk
			if err := json.Unmarshal([]byte(data), &chunk); err != nil {
				continue
			}
			for _, choice := range chunk.Choices {
				if choice.Delta.Content == "" {
					continue
				}
				select {
				case out <- choice.Delta.Content:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}

// resolve merges per-agent overrides over the configured defaults and fills
// provider-specific fallbacks.
func (d *ChatCompletionDispatcher) resolve(agentCfg *models.AgentConfig) ChatCompletionConfig {
	cfg := d.defaults
	if agentCfg != nil {
		overrides := agentCfg.Dispatcher
		if overrides.Provider != "" {
			cfg.Provider = overrides.Provider
		}
		if overrides.Model != "" {
			cfg.Model = overrides.Model
		}
		if overrides.BaseURL != "" {
			cfg.BaseURL = overrides.BaseURL
		}
		if overrides.APIKey != "" {
			cfg.APIKey = overrides.APIKey
		}
	}
	if cfg.Provider == "" {
		cfg.Provider = defaultProvider
	}
	if cfg.BaseURL == "" {
		base, ok := providerBaseURLs[cfg.Provider]
		if !ok {
			base = providerBaseURLs[defaultProvider]
		}
		cfg.BaseURL = base
	}
	if cfg.APIKey == "" {
		// Local providers ignore the key but the header must carry one.
		cfg.APIKey = "ollama"
	}
	return cfg
}

func (d *ChatCompletionDispatcher) clientFor(cfg ChatCompletionConfig) *completionClient {
	key := clientKey{provider: cfg.Provider, model: cfg.Model, baseURL: cfg.BaseURL}
	d.mu.Lock()
	defer d.mu.Unlock()
	if client, ok := d.clients[key]; ok {
		return client
	}
	client := &completionClient{
		endpoint: strings.TrimSuffix(cfg.BaseURL, "/"),
		model:    cfg.Model,
		apiKey:   cfg.APIKey,
		// Deadlines come from the per-request context; step timeouts can
		// exceed any fixed client timeout.
		client: &http.Client{},
	}
	d.clients[key] = client
	return client
}

type completionClient struct {
	endpoint string
	model    string
	apiKey   string
	client   *http.Client
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type streamChunk struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content,omitempty"`
		} `json:"delta"`
	} `json:"choices"`
}

func (c *completionClient) complete(ctx context.Context, messages []chatMessage) (string, error) {
	resp, err := c.post(ctx, chatCompletionRequest{Model: c.model, Messages: messages}, "application/json")
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code %d: %.200s", resp.StatusCode, string(respBody))
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(respBody, &completion); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("completion response has no choices")
	}
	return completion.Choices[0].Message.Content, nil
}

func (c *completionClient) openStream(ctx context.Context, messages []chatMessage) (*http.Response, error) {
	resp, err := c.post(ctx, chatCompletionRequest{Model: c.model, Messages: messages, Stream: true}, "text/event-stream")
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code %d: %.200s", resp.StatusCode, string(respBody))
	}
	return resp, nil
}

func (c *completionClient) post(ctx context.Context, req chatCompletionRequest, accept string) (*http.Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", accept)
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	return resp, nil
}
