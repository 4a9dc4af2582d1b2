package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

// DefaultChatTimeout bounds one interactive chat exchange.
const DefaultChatTimeout = 120 * time.Second

const defaultStepTimeout = 300 * time.Second

// invokeBuffer covers subprocess startup and teardown on top of the agent's
// own time budget.
const invokeBuffer = 10 * time.Second

// CLIDispatcher shells out to a local agent command line. It implements both
// StepDispatcher and ChatDispatcher over the same subprocess protocol: one
// invocation per message, a JSON document on stdout.
type CLIDispatcher struct {
	binary string
	logger *slog.Logger
}

// NewCLIDispatcher creates a dispatcher that invokes the named binary. The
// binary is resolved on PATH at invocation time, so the dispatcher can be
// constructed before the agent runtime is installed.
func NewCLIDispatcher(binary string, logger *slog.Logger) *CLIDispatcher {
	return &CLIDispatcher{
		binary: binary,
		logger: logger.With("component", "dispatch.cli", "binary", binary),
	}
}

// Available reports whether the agent binary is on PATH.
func (d *CLIDispatcher) Available() bool {
	_, err := exec.LookPath(d.binary)
	return err == nil
}

// Dispatch runs one step through the agent CLI and maps its JSON document to
// a step result. The backend's verbatim status is preserved so failure
// records can name it.
func (d *CLIDispatcher) Dispatch(ctx context.Context, req StepRequest) (*StepResult, error) {
	raw, err := d.invoke(ctx, StepSessionKey(req.StepID), req.Prompt, req.Timeout)
	if err != nil {
		return nil, err
	}
	status, _ := raw["status"].(string)
	if status == "" {
		status = StatusError
	}
	res := &StepResult{Status: status, Meta: raw}
	if status == StatusOK {
		res.Text = d.ExtractText(raw)
	}
	return res, nil
}

// Send delivers one chat message within the named session.
func (d *CLIDispatcher) Send(ctx context.Context, sessionKey, message string, timeout time.Duration) (map[string]any, error) {
	return d.invoke(ctx, sessionKey, message, timeout)
}

// StreamSend emulates streaming over the non-streaming CLI protocol: the
// full reply is delivered as a single chunk.
func (d *CLIDispatcher) StreamSend(ctx context.Context, sessionKey, message string) (<-chan string, error) {
	out := make(chan string, 1)
	go func() {
		defer close(out)
		result, err := d.Send(ctx, sessionKey, message, DefaultChatTimeout)
		if err != nil {
			d.logger.Warn("Chat stream invocation failed", "session", sessionKey, "error", err)
			return
		}
		text := d.ExtractText(result)
		if text == "" {
			return
		}
		select {
		case out <- text:
		case <-ctx.Done():
		}
	}()
	return out, nil
}

// ExtractText pulls reply text out of the CLI's result document. The agent
// reports payload fragments under result.payloads; fragments are joined with
// newlines. A result without payload text is rendered as JSON so nothing the
// agent said is silently dropped.
func (d *CLIDispatcher) ExtractText(result map[string]any) string {
	if result == nil {
		return ""
	}
	payload, ok := result["result"]
	if !ok || payload == nil {
		return ""
	}
	if doc, ok := payload.(map[string]any); ok {
		if payloads, ok := doc["payloads"].([]any); ok {
			var texts []string
			for _, entry := range payloads {
				fragment, ok := entry.(map[string]any)
				if !ok {
					continue
				}
				if text, ok := fragment["text"].(string); ok && text != "" {
					texts = append(texts, text)
				}
			}
			if len(texts) > 0 {
				return strings.Join(texts, "\n")
			}
		}
	}
	if text, ok := payload.(string); ok {
		return text
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return ""
	}
	return string(raw)
}

// HealthCheck runs one round trip through the agent CLI and verifies that
// the agent answers with an ok status.
func (d *CLIDispatcher) HealthCheck(ctx context.Context) error {
	raw, err := d.invoke(ctx, healthSessionKey, "Reply with exactly: PONG", 30*time.Second)
	if err != nil {
		return err
	}
	if status, _ := raw["status"].(string); status != StatusOK {
		return fmt.Errorf("agent health check returned status %q", status)
	}
	return nil
}

func (d *CLIDispatcher) invoke(ctx context.Context, sessionKey, message string, timeout time.Duration) (map[string]any, error) {
	path, err := exec.LookPath(d.binary)
	if err != nil {
		return nil, fmt.Errorf("agent binary %q not found on PATH", d.binary)
	}
	if timeout <= 0 {
		timeout = defaultStepTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout+invokeBuffer)
	defer cancel()

	cmd := exec.CommandContext(ctx, path,
		"agent",
		"--session-id", sessionKey,
		"--message", message,
		"--json",
	)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	runErr := cmd.Run()
	elapsed := time.Since(start)

	if runErr != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("agent invocation timed out after %s", timeout)
		}
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = "no stderr"
		}
		if len(detail) > 500 {
			detail = detail[:500]
		}
		return nil, fmt.Errorf("agent exited with error: %s", detail)
	}

	out := strings.TrimSpace(stdout.String())
	if out == "" {
		return nil, errors.New("agent produced no output")
	}

	doc, err := parseAgentOutput(out)
	if err != nil {
		return nil, err
	}
	d.logger.Debug("Agent invocation completed", "session", sessionKey, "duration", elapsed)
	return doc, nil
}

// parseAgentOutput decodes the CLI's JSON document. Some agent builds print
// log lines before the JSON, so on a parse failure the scan retries from the
// last opening brace.
func parseAgentOutput(out string) (map[string]any, error) {
	var doc map[string]any
	if err := json.Unmarshal([]byte(out), &doc); err == nil {
		return doc, nil
	}
	if idx := strings.LastIndex(out, "{"); idx > 0 {
		if err := json.Unmarshal([]byte(out[idx:]), &doc); err == nil {
			return doc, nil
		}
	}
	return nil, fmt.Errorf("agent output is not valid JSON: %.120s", out)
}
