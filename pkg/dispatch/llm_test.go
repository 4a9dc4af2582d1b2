package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/agentloop/pkg/models"
)

func completionServer(t *testing.T, handler func(req chatCompletionRequest) (int, string)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)

		var req chatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		code, content := handler(req)
		if code != http.StatusOK {
			w.WriteHeader(code)
			fmt.Fprint(w, content)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": content}},
			},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestChatCompletionDispatch(t *testing.T) {
	srv := completionServer(t, func(req chatCompletionRequest) (int, string) {
		require.Equal(t, "test-model", req.Model)
		require.Len(t, req.Messages, 1)
		require.Equal(t, roleUser, req.Messages[0].Role)
		return http.StatusOK, "work is done"
	})

	d := NewChatCompletionDispatcher(ChatCompletionConfig{
		Provider: "openai",
		Model:    "test-model",
		BaseURL:  srv.URL,
		APIKey:   "test-key",
	}, slog.Default())
	require.True(t, d.Available())

	res, err := d.Dispatch(context.Background(), StepRequest{
		StepID:  "step-1",
		Prompt:  "implement the feature",
		Timeout: 30 * time.Second,
	})
	require.NoError(t, err)
	assert.Equal(t, StatusOK, res.Status)
	assert.Equal(t, "work is done", res.Text)
	assert.Equal(t, "work is done", res.Meta["_response_text"])
}

func TestChatCompletionDispatchSystemPrompt(t *testing.T) {
	srv := completionServer(t, func(req chatCompletionRequest) (int, string) {
		require.Len(t, req.Messages, 2)
		require.Equal(t, roleSystem, req.Messages[0].Role)
		require.Equal(t, "you are the reviewer", req.Messages[0].Content)
		return http.StatusOK, "reviewed"
	})

	d := NewChatCompletionDispatcher(ChatCompletionConfig{Model: "m", BaseURL: srv.URL}, slog.Default())
	res, err := d.Dispatch(context.Background(), StepRequest{
		StepID:      "step-1",
		Prompt:      "review this",
		AgentConfig: &models.AgentConfig{SystemPrompt: "you are the reviewer"},
	})
	require.NoError(t, err)
	assert.Equal(t, StatusOK, res.Status)
}

func TestChatCompletionDispatchAPIFailure(t *testing.T) {
	srv := completionServer(t, func(req chatCompletionRequest) (int, string) {
		return http.StatusInternalServerError, "model melted"
	})

	d := NewChatCompletionDispatcher(ChatCompletionConfig{Model: "m", BaseURL: srv.URL}, slog.Default())
	res, err := d.Dispatch(context.Background(), StepRequest{StepID: "step-1", Prompt: "p"})
	require.NoError(t, err)
	assert.Equal(t, StatusError, res.Status)
	assert.Contains(t, res.ErrorMessage(), "500")
}

func TestChatCompletionSend(t *testing.T) {
	srv := completionServer(t, func(req chatCompletionRequest) (int, string) {
		return http.StatusOK, "chat reply"
	})

	d := NewChatCompletionDispatcher(ChatCompletionConfig{Model: "m", BaseURL: srv.URL}, slog.Default())
	result, err := d.Send(context.Background(), ChatSessionKey("s-1"), "hello", 10*time.Second)
	require.NoError(t, err)
	assert.Equal(t, "chat reply", d.ExtractText(result))
}

func TestChatCompletionStreamSend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		var req chatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.True(t, req.Stream)

		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, "data: {\"choices\":[{\"delta\":{\"content\":\"Hel\"}}]}\n\n")
		fmt.Fprint(w, "data: {\"choices\":[{\"delta\":{\"content\":\"lo\"}}]}\n\n")
		fmt.Fprint(w, "data: [DONE]\n\n")
	}))
	t.Cleanup(srv.Close)

	d := NewChatCompletionDispatcher(ChatCompletionConfig{Model: "m", BaseURL: srv.URL}, slog.Default())
	chunks, err := d.StreamSend(context.Background(), ChatSessionKey("s-1"), "hello")
	require.NoError(t, err)

	var got []string
	for chunk := range chunks {
		got = append(got, chunk)
	}
	assert.Equal(t, []string{"Hel", "lo"}, got)
}

func TestChatCompletionResolve(t *testing.T) {
	d := NewChatCompletionDispatcher(ChatCompletionConfig{}, slog.Default())

	t.Run("zero config falls back to local provider", func(t *testing.T) {
		cfg := d.resolve(nil)
		assert.Equal(t, "ollama", cfg.Provider)
		assert.Equal(t, "http://localhost:11434/v1", cfg.BaseURL)
		assert.Equal(t, "ollama", cfg.APIKey)
	})

	t.Run("known provider picks its endpoint", func(t *testing.T) {
		cfg := d.resolve(&models.AgentConfig{
			Dispatcher: models.DispatcherOverrides{Provider: "openrouter"},
		})
		assert.Equal(t, "https://openrouter.ai/api/v1", cfg.BaseURL)
	})

	t.Run("unknown provider falls back to local endpoint", func(t *testing.T) {
		cfg := d.resolve(&models.AgentConfig{
			Dispatcher: models.DispatcherOverrides{Provider: "acme"},
		})
		assert.Equal(t, "http://localhost:11434/v1", cfg.BaseURL)
	})

	t.Run("agent overrides win over defaults", func(t *testing.T) {
		d := NewChatCompletionDispatcher(ChatCompletionConfig{
			Provider: "openai",
			Model:    "default-model",
			APIKey:   "default-key",
		}, slog.Default())
		cfg := d.resolve(&models.AgentConfig{
			Dispatcher: models.DispatcherOverrides{
				Model:   "agent-model",
				BaseURL: "http://inference.internal/v1",
				APIKey:  "agent-key",
			},
		})
		assert.Equal(t, "openai", cfg.Provider)
		assert.Equal(t, "agent-model", cfg.Model)
		assert.Equal(t, "http://inference.internal/v1", cfg.BaseURL)
		assert.Equal(t, "agent-key", cfg.APIKey)
	})
}

func TestChatCompletionClientCache(t *testing.T) {
	d := NewChatCompletionDispatcher(ChatCompletionConfig{Model: "m", BaseURL: "http://one"}, slog.Default())

	first := d.clientFor(d.resolve(nil))
	second := d.clientFor(d.resolve(nil))
	assert.Same(t, first, second)

	other := d.clientFor(d.resolve(&models.AgentConfig{
		Dispatcher: models.DispatcherOverrides{BaseURL: "http://two"},
	}))
	assert.NotSame(t, first, other)
}
