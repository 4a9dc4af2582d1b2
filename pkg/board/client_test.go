package board

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeBody(t *testing.T, r *http.Request) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
	return body
}

func TestListBoards(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/boards", r.URL.Path)
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		assert.Equal(t, "org-1", r.Header.Get("X-Organization-Id"))
		_, _ = w.Write([]byte(`{"items":[{"id":"b1","name":"Platform"},{"id":"b2","name":"Infra"}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok-1", "org-1")
	boards, err := c.ListBoards(context.Background())
	require.NoError(t, err)
	require.Len(t, boards, 2)
	assert.Equal(t, "Platform", boards[0].Name)
}

func TestListTasksWithStatusFilter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/boards/b1/tasks", r.URL.Path)
		assert.Equal(t, "inbox", r.URL.Query().Get("status"))
		_, _ = w.Write([]byte(`{"items":[{"id":"t1","title":"X","status":"inbox","priority":"high"}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok-1", "")
	tasks, err := c.ListTasks(context.Background(), "b1", "inbox")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "high", tasks[0].Priority)
}

func TestOpenTasksFiltersClosedStatuses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items":[
			{"id":"t1","status":"inbox"},
			{"id":"t2","status":"in_progress"},
			{"id":"t3","status":"done"},
			{"id":"t4","status":"review"}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok-1", "")
	tasks, err := c.OpenTasks(context.Background(), "b1")
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "t1", tasks[0].ID)
	assert.Equal(t, "t2", tasks[1].ID)
}

func TestUpdateTaskStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/v1/boards/b1/tasks/t1", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body := decodeBody(t, r)
		assert.Equal(t, "review", body["status"])
		assert.Equal(t, "Completed by dev-1 via AgentLoop.", body["comment"])
		_, _ = w.Write([]byte(`{"id":"t1","status":"review"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok-1", "")
	task, err := c.UpdateTaskStatus(context.Background(), "b1", "t1", "review", "Completed by dev-1 via AgentLoop.")
	require.NoError(t, err)
	assert.Equal(t, "review", task.Status)
}

func TestUpdateTaskStatusOmitsEmptyComment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := decodeBody(t, r)
		_, hasComment := body["comment"]
		assert.False(t, hasComment)
		_, _ = w.Write([]byte(`{"id":"t1","status":"done"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok-1", "")
	require.NoError(t, c.MarkTaskDone(context.Background(), "b1", "t1"))
}

func TestCreateTaskDefaultsPriority(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/boards/b1/tasks", r.URL.Path)
		body := decodeBody(t, r)
		assert.Equal(t, "New task", body["title"])
		assert.Equal(t, "medium", body["priority"])
		_, _ = w.Write([]byte(`{"id":"t-new","title":"New task"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok-1", "")
	task, err := c.CreateTask(context.Background(), "b1", "New task", "desc", "")
	require.NoError(t, err)
	assert.Equal(t, "t-new", task.ID)
}

func TestReportAgentActivity(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/boards/b1/tasks/t1/comments", r.URL.Path)
		body := decodeBody(t, r)
		assert.Equal(t, "[AgentLoop] dev-1: Mission completed: Ship v2", body["content"])
		_, _ = w.Write([]byte(`{"id":"c1"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok-1", "")
	err := c.ReportAgentActivity(context.Background(), "b1", "t1", "dev-1", "Mission completed: Ship v2")
	require.NoError(t, err)
}

func TestAskUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/gateway/main/ask-user", r.URL.Path)
		body := decodeBody(t, r)
		assert.Equal(t, "b1", body["board_id"])
		assert.Equal(t, "What should I do?", body["content"])
		assert.Equal(t, "stuck-mission-m1", body["correlation_id"])
		_, _ = w.Write([]byte(`{"id":"msg-1"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok-1", "")
	require.NoError(t, c.AskUser(context.Background(), "b1", "What should I do?", "stuck-mission-m1"))
}

func TestAskUserWithoutCorrelation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := decodeBody(t, r)
		_, hasCorrelation := body["correlation_id"]
		assert.False(t, hasCorrelation)
		_, _ = w.Write([]byte(`{"id":"msg-2"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok-1", "")
	require.NoError(t, c.AskUser(context.Background(), "b1", "Help!", ""))
}

func TestHealthy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/healthz", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))

	c := NewClient(srv.URL, "tok-1", "")
	assert.True(t, c.Healthy(context.Background()))

	srv.Close()
	assert.False(t, c.Healthy(context.Background()))
}

func TestErrorStatusSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok-1", "")
	_, err := c.ListBoards(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 500")
}

func TestConfigured(t *testing.T) {
	assert.True(t, NewClient("http://localhost", "tok", "").Configured())
	assert.False(t, NewClient("http://localhost", "", "").Configured())
}
