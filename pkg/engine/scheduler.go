package engine

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/codeready-toolchain/agentloop/pkg/models"
)

// Ticker is the orchestration surface the scheduler drives.
type Ticker interface {
	Tick(ctx context.Context) *models.OrchestrationResult
}

// Scheduler serializes orchestration ticks: one runs at startup, the timer
// fires them periodically, and Wake requests one out of band. Wakeups that
// arrive while a tick is running coalesce into a single follow-up tick.
type Scheduler struct {
	ticker   Ticker
	interval time.Duration
	wake     chan struct{}
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	logger   *slog.Logger
}

// NewScheduler creates a stopped scheduler. A non-positive interval falls
// back to the 300 s default.
func NewScheduler(ticker Ticker, interval time.Duration, logger *slog.Logger) *Scheduler {
	if interval <= 0 {
		interval = 300 * time.Second
	}
	return &Scheduler{
		ticker:   ticker,
		interval: interval,
		wake:     make(chan struct{}, 1),
		stopCh:   make(chan struct{}),
		logger:   logger.With("component", "engine.scheduler"),
	}
}

// Start launches the tick loop in a goroutine.
func (s *Scheduler) Start(ctx context.Context) {
	s.wg.Add(1)
	go s.run(ctx)
}

// Stop halts the loop and waits for an in-flight tick to finish. Safe to
// call multiple times.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	s.wg.Wait()
}

// Wake requests an immediate tick, typically on inbound stream activity.
// Never blocks; concurrent wakeups collapse into one.
func (s *Scheduler) Wake() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *Scheduler) run(ctx context.Context) {
	defer s.wg.Done()

	s.logger.Info("Tick scheduler started", "interval", s.interval)
	timer := time.NewTicker(s.interval)
	defer timer.Stop()

	// Settle state right away instead of waiting out the first interval.
	s.ticker.Tick(ctx)

	for {
		select {
		case <-s.stopCh:
			s.logger.Info("Tick scheduler stopped")
			return
		case <-ctx.Done():
			s.logger.Info("Context cancelled, tick scheduler stopped")
			return
		case <-timer.C:
			s.ticker.Tick(ctx)
		case <-s.wake:
			s.ticker.Tick(ctx)
		}
	}
}
