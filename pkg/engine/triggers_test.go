package engine

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/agentloop/ent"
)

func TestMatchEvents(t *testing.T) {
	trigger := &ent.Trigger{
		ProjectID: "p1",
		EventPattern: map[string]any{
			"event_type": "step.completed",
			"conditions": map[string]any{"step_type": "test"},
		},
	}
	evts := []*ent.Event{
		{ProjectID: "p2", EventType: "step.completed", Payload: map[string]any{"step_type": "test"}},
		{ProjectID: "p1", EventType: "step.failed", Payload: map[string]any{"step_type": "test"}},
		{ProjectID: "p1", EventType: "step.completed", Payload: map[string]any{"step_type": "code"}},
		{ProjectID: "p1", EventType: "step.completed", Payload: map[string]any{"step_type": "test", "extra": "y"}},
		{ProjectID: "p1", EventType: "step.completed", Payload: map[string]any{}},
	}

	matched, err := matchEvents(trigger, evts)
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Same(t, evts[3], matched[0])
}

func TestMatchEventsEmptyPatternMatchesAllProjectEvents(t *testing.T) {
	trigger := &ent.Trigger{ProjectID: "p1", EventPattern: map[string]any{}}
	evts := []*ent.Event{
		{ProjectID: "p1", EventType: "mission.completed"},
		{ProjectID: "p2", EventType: "mission.completed"},
		{ProjectID: "p1", EventType: "step.failed"},
	}

	matched, err := matchEvents(trigger, evts)
	require.NoError(t, err)
	assert.Len(t, matched, 2)
}

func TestMatchEventsMalformedPattern(t *testing.T) {
	trigger := &ent.Trigger{ProjectID: "p1", EventPattern: map[string]any{"event_type": 42}}

	_, err := matchEvents(trigger, nil)
	assert.ErrorIs(t, err, ErrInvalidTrigger)
}

func TestConditionsMatch(t *testing.T) {
	assert.True(t, conditionsMatch(nil, map[string]any{"a": "x"}))
	assert.True(t, conditionsMatch(map[string]any{}, nil))
	assert.True(t, conditionsMatch(map[string]any{"a": "x"}, map[string]any{"a": "x", "b": "y"}))
	assert.True(t, conditionsMatch(map[string]any{"n": float64(2)}, map[string]any{"n": float64(2)}))
	assert.False(t, conditionsMatch(map[string]any{"a": "x"}, map[string]any{"a": "z"}))
	assert.False(t, conditionsMatch(map[string]any{"a": "x"}, map[string]any{}))
	assert.False(t, conditionsMatch(map[string]any{"a": "x"}, nil))
}

func TestExecuteUnknownActionType(t *testing.T) {
	e := &TriggerEvaluator{logger: slog.Default()}
	trigger := &ent.Trigger{Name: "bad-action", Action: map[string]any{"type": "explode"}}

	_, err := e.execute(context.Background(), trigger, []*ent.Event{{}})
	require.ErrorIs(t, err, ErrInvalidTrigger)
	assert.Contains(t, err.Error(), "explode")
}

func TestExecuteMalformedAction(t *testing.T) {
	e := &TriggerEvaluator{logger: slog.Default()}
	trigger := &ent.Trigger{Name: "bad-shape", Action: map[string]any{"type": 42}}

	_, err := e.execute(context.Background(), trigger, []*ent.Event{{}})
	assert.ErrorIs(t, err, ErrInvalidTrigger)
}

func TestPayloadMissionID(t *testing.T) {
	assert.Equal(t, "m1", payloadMissionID(&ent.Event{Payload: map[string]any{"mission_id": "m1"}}))
	assert.Equal(t, "", payloadMissionID(&ent.Event{Payload: map[string]any{"mission_id": 7}}))
	assert.Equal(t, "", payloadMissionID(&ent.Event{Payload: map[string]any{}}))
	assert.Equal(t, "", payloadMissionID(&ent.Event{}))
}
