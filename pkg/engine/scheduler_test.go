package engine

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/codeready-toolchain/agentloop/pkg/models"
)

type fakeTicker struct {
	mu    sync.Mutex
	ticks int
}

func (f *fakeTicker) Tick(_ context.Context) *models.OrchestrationResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ticks++
	return &models.OrchestrationResult{Errors: []string{}}
}

func (f *fakeTicker) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ticks
}

func waitForTicks(t *testing.T, f *fakeTicker, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if f.count() >= want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("expected at least %d ticks, got %d", want, f.count())
}

func TestSchedulerRunsInitialTick(t *testing.T) {
	ft := &fakeTicker{}
	s := NewScheduler(ft, time.Hour, slog.Default())

	s.Start(context.Background())
	waitForTicks(t, ft, 1)
	s.Stop()

	assert.Equal(t, 1, ft.count())
}

func TestSchedulerPeriodicTicks(t *testing.T) {
	ft := &fakeTicker{}
	s := NewScheduler(ft, 10*time.Millisecond, slog.Default())

	s.Start(context.Background())
	waitForTicks(t, ft, 3)
	s.Stop()
}

func TestSchedulerWakeCoalesces(t *testing.T) {
	ft := &fakeTicker{}
	s := NewScheduler(ft, time.Hour, slog.Default())

	// Wakeups queued before the loop starts collapse into a single slot.
	s.Wake()
	s.Wake()
	s.Wake()

	s.Start(context.Background())
	waitForTicks(t, ft, 2)
	time.Sleep(50 * time.Millisecond)
	s.Stop()

	assert.Equal(t, 2, ft.count())
}

func TestSchedulerWakeTriggersTick(t *testing.T) {
	ft := &fakeTicker{}
	s := NewScheduler(ft, time.Hour, slog.Default())

	s.Start(context.Background())
	waitForTicks(t, ft, 1)
	s.Wake()
	waitForTicks(t, ft, 2)
	s.Stop()
}

func TestSchedulerStopsOnContextCancel(t *testing.T) {
	ft := &fakeTicker{}
	s := NewScheduler(ft, time.Hour, slog.Default())
	ctx, cancel := context.WithCancel(context.Background())

	s.Start(ctx)
	waitForTicks(t, ft, 1)
	cancel()
	s.Stop()

	s.Wake()
	s.Wake()
}

func TestNewSchedulerDefaultInterval(t *testing.T) {
	s := NewScheduler(&fakeTicker{}, 0, slog.Default())
	assert.Equal(t, 300*time.Second, s.interval)
}
