package board

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchFrame(t *testing.T) {
	var gotType string
	var gotPayload map[string]any
	handler := func(eventType string, payload map[string]any) {
		gotType = eventType
		gotPayload = payload
	}

	dispatchFrame("task.created", []string{`{"id":"t1","status":"inbox"}`}, handler)
	assert.Equal(t, "task.created", gotType)
	assert.Equal(t, "t1", gotPayload["id"])

	dispatchFrame("", []string{"not json"}, handler)
	assert.Equal(t, "message", gotType)
	assert.Equal(t, map[string]any{"raw": "not json"}, gotPayload)

	dispatchFrame("chunked", []string{`{"a":`, `1}`}, handler)
	assert.Equal(t, "chunked", gotType)
	assert.Equal(t, float64(1), gotPayload["a"])
}

func TestNextBackoff(t *testing.T) {
	assert.Equal(t, 2*time.Second, nextBackoff(time.Second))
	assert.Equal(t, 4*time.Second, nextBackoff(2*time.Second))
	assert.Equal(t, 60*time.Second, nextBackoff(40*time.Second))
	assert.Equal(t, 60*time.Second, nextBackoff(60*time.Second))
}

func TestConsumeDispatchesAndReconnects(t *testing.T) {
	var conns int32
	events := make(chan string, 10)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&conns, 1)
		w.Header().Set("Content-Type", "text/event-stream")
		fl := w.(http.Flusher)
		if n == 1 {
			// Two frames, then drop the connection.
			fmt.Fprint(w, "event: task.created\ndata: {\"id\":\"t1\",\"status\":\"inbox\"}\n\n")
			fl.Flush()
			fmt.Fprint(w, "data: {\"id\":\"t2\",\"status\":\"done\"}\n\n")
			fl.Flush()
			return
		}
		fl.Flush()
		<-r.Context().Done()
	}))
	defer srv.Close()

	ing := NewIngestor(NewClient(srv.URL, "tok-1", ""), nil, slog.Default())
	ing.baseBackoff = 10 * time.Millisecond

	ing.wg.Add(1)
	go ing.consume(context.Background(), srv.URL+"/stream", "test", func(eventType string, _ map[string]any) {
		events <- eventType
	})

	assert.Equal(t, "task.created", <-events)
	assert.Equal(t, "message", <-events)

	deadline := time.Now().Add(2 * time.Second)
	for atomic.LoadInt32(&conns) < 2 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	require.GreaterOrEqual(t, atomic.LoadInt32(&conns), int32(2), "consumer should reconnect after a drop")

	ing.Stop()
	assert.Empty(t, events, "frames must be dispatched exactly once")
}

func TestConsumeRetriesOnHTTPError(t *testing.T) {
	var conns int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&conns, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "text/event-stream")
		w.(http.Flusher).Flush()
		<-r.Context().Done()
	}))
	defer srv.Close()

	ing := NewIngestor(NewClient(srv.URL, "tok-1", ""), nil, slog.Default())
	ing.baseBackoff = 10 * time.Millisecond

	ing.wg.Add(1)
	go ing.consume(context.Background(), srv.URL+"/stream", "test", func(string, map[string]any) {})

	deadline := time.Now().Add(2 * time.Second)
	for atomic.LoadInt32(&conns) < 2 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	assert.GreaterOrEqual(t, atomic.LoadInt32(&conns), int32(2))

	ing.Stop()
}

func TestStartBoardRequestsSyncOnOpenTask(t *testing.T) {
	syncs := make(chan string, 10)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/boards/b1/tasks/stream", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "text/event-stream", r.Header.Get("Accept"))
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "text/event-stream")
		fl := w.(http.Flusher)
		fmt.Fprint(w, "event: task.created\ndata: {\"id\":\"t1\",\"status\":\"inbox\",\"title\":\"X\"}\n\n")
		fl.Flush()
		fmt.Fprint(w, "event: task.updated\ndata: {\"id\":\"t2\",\"status\":\"done\"}\n\n")
		fl.Flush()
		<-r.Context().Done()
	})
	mux.HandleFunc("/api/v1/boards/b1/approvals/stream", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		w.(http.Flusher).Flush()
		<-r.Context().Done()
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	ing := NewIngestor(NewClient(srv.URL, "tok-1", ""), func(boardID string) {
		syncs <- boardID
	}, slog.Default())
	ing.baseBackoff = 10 * time.Millisecond

	ing.StartBoard(context.Background(), "b1")
	assert.Equal(t, 1, ing.ActiveStreams())

	select {
	case boardID := <-syncs:
		assert.Equal(t, "b1", boardID)
	case <-time.After(2 * time.Second):
		t.Fatal("no sync requested for open task")
	}

	ing.Stop()
	// The done-status update must not have requested another sync.
	assert.Empty(t, syncs)
}

func TestStartBoardIdempotent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		w.(http.Flusher).Flush()
		<-r.Context().Done()
	}))
	defer srv.Close()

	ing := NewIngestor(NewClient(srv.URL, "tok-1", ""), nil, slog.Default())
	ing.StartBoard(context.Background(), "b1")
	ing.StartBoard(context.Background(), "b1")
	assert.Equal(t, 1, ing.ActiveStreams())
	ing.Stop()
}

func TestStartAllSkipsWithoutToken(t *testing.T) {
	ing := NewIngestor(NewClient("http://localhost:9", "", ""), nil, slog.Default())
	ing.StartAll(context.Background(), map[string]string{"b1": "demo"})
	assert.Equal(t, 0, ing.ActiveStreams())
	ing.Stop()
}
