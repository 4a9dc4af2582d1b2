package dispatch

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFakeAgent installs a shell script named fake-agent on PATH and
// returns the binary name to dispatch against.
func writeFakeAgent(t *testing.T, script string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "fake-agent")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0o755))
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
	return "fake-agent"
}

func TestCLIDispatchSuccess(t *testing.T) {
	// $1=agent $2=--session-id $3=<key> $4=--message $5=<prompt> $6=--json
	binary := writeFakeAgent(t, `
if [ "$1" != "agent" ] || [ "$6" != "--json" ]; then
  echo "unexpected arguments" >&2
  exit 1
fi
echo "{\"status\":\"ok\",\"result\":{\"payloads\":[{\"text\":\"session=$3\"},{\"text\":\"done\"}]}}"`)

	d := NewCLIDispatcher(binary, slog.Default())
	require.True(t, d.Available())

	res, err := d.Dispatch(context.Background(), StepRequest{
		StepID:  "step-1",
		Prompt:  "do the thing",
		Timeout: 30 * time.Second,
	})
	require.NoError(t, err)
	assert.Equal(t, StatusOK, res.Status)
	assert.Equal(t, "session=agentloop-step-step-1\ndone", res.Text)
}

func TestCLIDispatchAgentError(t *testing.T) {
	binary := writeFakeAgent(t, `echo '{"status":"blocked"}'`)

	d := NewCLIDispatcher(binary, slog.Default())
	res, err := d.Dispatch(context.Background(), StepRequest{StepID: "step-1", Prompt: "p"})
	require.NoError(t, err)
	assert.Equal(t, "blocked", res.Status)
	assert.True(t, res.Failed())
	assert.Empty(t, res.Text)
}

func TestCLIDispatchSubprocessFailure(t *testing.T) {
	binary := writeFakeAgent(t, `echo "boom" >&2; exit 3`)

	d := NewCLIDispatcher(binary, slog.Default())
	_, err := d.Dispatch(context.Background(), StepRequest{StepID: "step-1", Prompt: "p"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestCLIDispatchEmptyOutput(t *testing.T) {
	binary := writeFakeAgent(t, `exit 0`)

	d := NewCLIDispatcher(binary, slog.Default())
	_, err := d.Dispatch(context.Background(), StepRequest{StepID: "step-1", Prompt: "p"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no output")
}

func TestCLIDispatchMissingBinary(t *testing.T) {
	d := NewCLIDispatcher("definitely-not-installed-anywhere", slog.Default())
	assert.False(t, d.Available())

	_, err := d.Dispatch(context.Background(), StepRequest{StepID: "step-1", Prompt: "p"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found on PATH")
}

func TestCLISendAndStream(t *testing.T) {
	binary := writeFakeAgent(t, `echo '{"status":"ok","result":{"payloads":[{"text":"hi there"}]}}'`)

	d := NewCLIDispatcher(binary, slog.Default())
	result, err := d.Send(context.Background(), ChatSessionKey("s-9"), "hello", 10*time.Second)
	require.NoError(t, err)
	assert.Equal(t, "hi there", d.ExtractText(result))

	chunks, err := d.StreamSend(context.Background(), ChatSessionKey("s-9"), "hello")
	require.NoError(t, err)
	var got []string
	for chunk := range chunks {
		got = append(got, chunk)
	}
	assert.Equal(t, []string{"hi there"}, got)
}

func TestParseAgentOutput(t *testing.T) {
	t.Run("clean document", func(t *testing.T) {
		doc, err := parseAgentOutput(`{"status":"ok"}`)
		require.NoError(t, err)
		assert.Equal(t, "ok", doc["status"])
	})

	t.Run("log noise before document", func(t *testing.T) {
		doc, err := parseAgentOutput("booting runtime...\nloaded 3 tools\n{\"status\":\"ok\"}")
		require.NoError(t, err)
		assert.Equal(t, "ok", doc["status"])
	})

	t.Run("no document at all", func(t *testing.T) {
		_, err := parseAgentOutput("just some text")
		require.Error(t, err)
	})
}

func TestCLIExtractText(t *testing.T) {
	d := NewCLIDispatcher("fake-agent", slog.Default())

	t.Run("joins payload fragments", func(t *testing.T) {
		text := d.ExtractText(map[string]any{
			"result": map[string]any{
				"payloads": []any{
					map[string]any{"text": "one"},
					map[string]any{"text": ""},
					map[string]any{"text": "two"},
				},
			},
		})
		assert.Equal(t, "one\ntwo", text)
	})

	t.Run("string payload passes through", func(t *testing.T) {
		assert.Equal(t, "plain", d.ExtractText(map[string]any{"result": "plain"}))
	})

	t.Run("structured payload without text renders as JSON", func(t *testing.T) {
		text := d.ExtractText(map[string]any{"result": map[string]any{"code": float64(42)}})
		assert.Equal(t, `{"code":42}`, text)
	})

	t.Run("missing result", func(t *testing.T) {
		assert.Empty(t, d.ExtractText(map[string]any{"status": "ok"}))
		assert.Empty(t, d.ExtractText(nil))
	})
}

func TestCLIHealthCheck(t *testing.T) {
	binary := writeFakeAgent(t, `
if [ "$3" != "agentloop-healthcheck" ]; then
  echo "wrong session" >&2
  exit 1
fi
echo '{"status":"ok","result":{"payloads":[{"text":"PONG"}]}}'`)

	d := NewCLIDispatcher(binary, slog.Default())
	require.NoError(t, d.HealthCheck(context.Background()))
}
