package events

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeFramePassThrough(t *testing.T) {
	raw, err := EncodeFrame(Frame{
		EventID:   "evt-1",
		EventType: "step.completed",
		ProjectID: "proj-1",
		Payload:   map[string]any{"step_id": "step-1"},
		CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	var decoded Frame
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "evt-1", decoded.EventID)
	assert.Equal(t, "step-1", decoded.Payload["step_id"])
	assert.False(t, decoded.Truncated)
}

func TestEncodeFrameTruncatesOversizedPayload(t *testing.T) {
	raw, err := EncodeFrame(Frame{
		EventID:   "evt-big",
		EventType: "step.completed",
		ProjectID: "proj-1",
		Payload:   map[string]any{"output": strings.Repeat("x", 20000)},
	})
	require.NoError(t, err)
	require.Less(t, len(raw), notifyLimit)

	var decoded Frame
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.True(t, decoded.Truncated)
	assert.Equal(t, "evt-big", decoded.EventID)
	assert.Nil(t, decoded.Payload)
}
