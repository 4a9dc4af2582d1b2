package engine

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAgentPoolDefaults(t *testing.T) {
	p := NewAgentPool(nil, nil, 0, 0, slog.Default())
	assert.Equal(t, 1, p.size)
	assert.Equal(t, 300*time.Second, p.poll)
}

func TestAgentPoolPollInterval(t *testing.T) {
	p := NewAgentPool(nil, nil, 4, time.Second, slog.Default())

	// Jitter is a tenth of the poll interval in either direction.
	for i := 0; i < 100; i++ {
		d := p.pollInterval()
		assert.GreaterOrEqual(t, d, 900*time.Millisecond)
		assert.LessOrEqual(t, d, 1100*time.Millisecond)
	}
}

func TestAgentPoolFinishCycle(t *testing.T) {
	p := NewAgentPool(nil, nil, 2, time.Second, slog.Default())
	p.mu.Lock()
	p.busy["a1"] = true
	p.busy["a2"] = true
	p.mu.Unlock()

	p.finishCycle("a1", 3)
	p.finishCycle("a2", 0)

	p.mu.Lock()
	defer p.mu.Unlock()
	assert.Empty(t, p.busy)
	assert.Equal(t, 2, p.cyclesRun)
	assert.Equal(t, 3, p.stepsExecuted)
}
