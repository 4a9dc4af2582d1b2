package board

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/codeready-toolchain/agentloop/pkg/metrics"
)

const (
	initialBackoff = time.Second
	maxBackoff     = 60 * time.Second

	// scanBufferSize bounds a single SSE line; board payloads are small.
	scanBufferSize = 1024 * 1024
)

// EventHandler receives one parsed SSE event.
type EventHandler func(eventType string, payload map[string]any)

// SyncFunc is invoked when a stream signals that board tasks changed and an
// inbound sync should run soon.
type SyncFunc func(boardID string)

// Ingestor consumes the board's SSE streams. Each board gets two consumers,
// one for the task stream and one for the approval stream. Consumers
// reconnect forever with exponential backoff until Stop.
type Ingestor struct {
	client       *Client
	streamClient *http.Client
	sync         SyncFunc
	baseBackoff  time.Duration
	logger       *slog.Logger

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	mu     sync.Mutex
	boards map[string]bool
}

// NewIngestor creates a stream ingestor. sync may be nil when no inbound
// sync should be requested on task activity.
func NewIngestor(client *Client, sync SyncFunc, logger *slog.Logger) *Ingestor {
	return &Ingestor{
		client: client,
		// Streams stay open indefinitely, so no client timeout here.
		streamClient: &http.Client{},
		sync:         sync,
		baseBackoff:  initialBackoff,
		logger:       logger.With("component", "board.ingestor"),
		stopCh:       make(chan struct{}),
		boards:       make(map[string]bool),
	}
}

// StartAll starts stream consumers for every board in the map. Without a
// board credential nothing is started.
func (i *Ingestor) StartAll(ctx context.Context, boardMap map[string]string) {
	if !i.client.Configured() {
		i.logger.Info("Board token not set, skipping SSE streams")
		return
	}
	for boardID := range boardMap {
		i.StartBoard(ctx, boardID)
	}
}

// StartBoard starts the task and approval consumers for one board.
// Starting an already-started board is a no-op.
func (i *Ingestor) StartBoard(ctx context.Context, boardID string) {
	i.mu.Lock()
	if i.boards[boardID] {
		i.mu.Unlock()
		return
	}
	i.boards[boardID] = true
	i.mu.Unlock()

	tasksURL := i.client.baseURL + "/api/v1/boards/" + boardID + "/tasks/stream"
	approvalsURL := i.client.baseURL + "/api/v1/boards/" + boardID + "/approvals/stream"

	i.wg.Add(2)
	go i.consume(ctx, tasksURL, "tasks/"+shortID(boardID), func(eventType string, payload map[string]any) {
		i.handleTaskEvent(boardID, eventType, payload)
	})
	go i.consume(ctx, approvalsURL, "approvals/"+shortID(boardID), func(eventType string, payload map[string]any) {
		i.handleApprovalEvent(boardID, eventType, payload)
	})

	i.logger.Info("Started board streams", "board_id", shortID(boardID))
}

// Stop terminates all consumers and waits for them to exit.
func (i *Ingestor) Stop() {
	i.stopOnce.Do(func() { close(i.stopCh) })
	i.wg.Wait()
}

// ActiveStreams returns the number of boards with running consumers.
func (i *Ingestor) ActiveStreams() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return len(i.boards)
}

// consume reconnects to one SSE endpoint until stopped. Backoff doubles on
// each failed cycle up to the cap and resets after a successful connect.
func (i *Ingestor) consume(ctx context.Context, url, label string, handler EventHandler) {
	defer i.wg.Done()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-i.stopCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	backoff := i.baseBackoff
	for {
		select {
		case <-ctx.Done():
			i.logger.Info("Stream consumer stopped", "stream", label)
			return
		default:
		}

		connected, err := i.stream(ctx, url, label, handler)
		if connected {
			backoff = i.baseBackoff
		}
		if err != nil && ctx.Err() == nil {
			metrics.BoardStreamReconnects.WithLabelValues(label).Inc()
			i.logger.Warn("Stream disconnected, retrying",
				"stream", label, "backoff", backoff, "error", err)
		}
		if !i.sleep(ctx, backoff) {
			i.logger.Info("Stream consumer stopped", "stream", label)
			return
		}
		backoff = nextBackoff(backoff)
	}
}

// stream holds one SSE connection open and dispatches parsed frames. The
// returned bool reports whether the connection was established at all.
func (i *Ingestor) stream(ctx context.Context, url, label string, handler EventHandler) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, err
	}
	req.Header.Set("Accept", "text/event-stream")
	i.client.setAuthHeaders(req)

	resp, err := i.streamClient.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("stream returned HTTP %d", resp.StatusCode)
	}
	i.logger.Info("SSE connected", "stream", label)

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), scanBufferSize)

	eventType := ""
	var dataLines []string
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "event:"):
			eventType = strings.TrimSpace(line[len("event:"):])
		case strings.HasPrefix(line, "data:"):
			dataLines = append(dataLines, strings.TrimSpace(line[len("data:"):]))
		case line == "":
			if len(dataLines) > 0 {
				dispatchFrame(eventType, dataLines, handler)
			}
			eventType = ""
			dataLines = nil
		}
	}
	return true, scanner.Err()
}

// dispatchFrame decodes one SSE frame and hands it to the handler. Data that
// is not a JSON object is wrapped as {"raw": …}; a missing event type
// defaults to "message".
func dispatchFrame(eventType string, dataLines []string, handler EventHandler) {
	raw := strings.Join(dataLines, "\n")
	var payload map[string]any
	if err := json.Unmarshal([]byte(raw), &payload); err != nil || payload == nil {
		payload = map[string]any{"raw": raw}
	}
	if eventType == "" {
		eventType = "message"
	}
	handler(eventType, payload)
}

// handleTaskEvent reacts to task-stream activity. A task created or moved
// into an open status requests an inbound sync.
func (i *Ingestor) handleTaskEvent(boardID, eventType string, payload map[string]any) {
	taskID := stringField(payload, "id")
	if taskID == "" {
		taskID = stringField(payload, "task_id")
	}
	status := stringField(payload, "status")
	i.logger.Info("Board task event",
		"event_type", eventType,
		"board_id", shortID(boardID),
		"task_id", shortID(taskID),
		"title", truncateString(stringField(payload, "title"), 40),
		"status", status)

	if eventType != "task.created" && eventType != "task.updated" {
		return
	}
	if status != "inbox" && status != "in_progress" {
		return
	}
	if i.sync != nil {
		i.sync(boardID)
	}
}

// handleApprovalEvent records approval-stream activity. Approval decisions
// flow back through the regular task sync, so this is informational.
func (i *Ingestor) handleApprovalEvent(boardID, eventType string, payload map[string]any) {
	keys := make([]string, 0, len(payload))
	for k := range payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	i.logger.Info("Board approval event",
		"event_type", eventType, "board_id", shortID(boardID), "payload_keys", keys)
}

func (i *Ingestor) sleep(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}

func nextBackoff(d time.Duration) time.Duration {
	d *= 2
	if d > maxBackoff {
		return maxBackoff
	}
	return d
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func stringField(payload map[string]any, key string) string {
	v, _ := payload[key].(string)
	return v
}

func truncateString(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
