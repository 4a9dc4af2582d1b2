package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerBroadcastReachesAllSubscribers(t *testing.T) {
	m := NewManager()

	first, cancelFirst := m.Subscribe()
	second, cancelSecond := m.Subscribe()
	defer cancelFirst()
	defer cancelSecond()

	require.Equal(t, 2, m.ActiveCount())

	m.Broadcast([]byte(`{"event_type":"step.completed"}`))

	assert.Equal(t, `{"event_type":"step.completed"}`, string(<-first))
	assert.Equal(t, `{"event_type":"step.completed"}`, string(<-second))
}

func TestManagerCancelIsIdempotent(t *testing.T) {
	m := NewManager()

	_, cancel := m.Subscribe()
	cancel()
	cancel()

	assert.Equal(t, 0, m.ActiveCount())
}

func TestManagerDropsFramesForSlowSubscriber(t *testing.T) {
	m := NewManager()

	ch, cancel := m.Subscribe()
	defer cancel()

	// Overfill the buffer; Broadcast must not block.
	for i := 0; i < subscriberBuffer+10; i++ {
		m.Broadcast([]byte("frame"))
	}

	drained := 0
	for len(ch) > 0 {
		<-ch
		drained++
	}
	assert.Equal(t, subscriberBuffer, drained)
}

func TestManagerCloseAllTerminatesChannels(t *testing.T) {
	m := NewManager()

	ch, cancel := m.Subscribe()
	m.CloseAll()

	_, open := <-ch
	assert.False(t, open)
	assert.Equal(t, 0, m.ActiveCount())

	// Cancel after CloseAll is a no-op.
	cancel()
}
