package events

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/codeready-toolchain/agentloop/pkg/metrics"
)

// subscriberBuffer bounds how far one consumer may fall behind before frames
// are dropped for it.
const subscriberBuffer = 64

// Manager fans live event frames out to in-process subscribers. Each SSE
// stream holds one subscription; the NOTIFY listener is the single producer.
type Manager struct {
	mu          sync.RWMutex
	subscribers map[string]chan []byte
}

// NewManager creates an empty subscriber registry.
func NewManager() *Manager {
	return &Manager{subscribers: make(map[string]chan []byte)}
}

// Subscribe registers a consumer and returns its frame channel plus a cancel
// function. Cancel is idempotent and must be called when the consumer goes
// away.
func (m *Manager) Subscribe() (<-chan []byte, func()) {
	id := uuid.New().String()
	ch := make(chan []byte, subscriberBuffer)

	m.mu.Lock()
	m.subscribers[id] = ch
	m.mu.Unlock()
	metrics.StreamSubscribers.Inc()

	cancel := func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if existing, ok := m.subscribers[id]; ok {
			delete(m.subscribers, id)
			close(existing)
			metrics.StreamSubscribers.Dec()
		}
	}
	return ch, cancel
}

// Broadcast delivers a frame to every subscriber. A subscriber whose buffer
// is full loses the frame rather than blocking the listener; the store keeps
// the full history.
func (m *Manager) Broadcast(payload []byte) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for id, ch := range m.subscribers {
		select {
		case ch <- payload:
		default:
			slog.Warn("Dropping event frame for slow subscriber", "subscriber_id", id)
		}
	}
}

// ActiveCount returns the number of live subscriptions.
func (m *Manager) ActiveCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.subscribers)
}

// CloseAll terminates every subscription. Used during shutdown.
func (m *Manager) CloseAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, ch := range m.subscribers {
		delete(m.subscribers, id)
		close(ch)
		metrics.StreamSubscribers.Dec()
	}
}
