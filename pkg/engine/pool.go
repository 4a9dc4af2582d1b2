package engine

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sort"
	"sync"
	"time"

	"github.com/codeready-toolchain/agentloop/ent"
	"github.com/codeready-toolchain/agentloop/ent/step"
	"github.com/codeready-toolchain/agentloop/pkg/models"
	"github.com/codeready-toolchain/agentloop/pkg/services"
)

// CycleRunner is the per-agent work surface the pool drives.
type CycleRunner interface {
	WorkCycle(ctx context.Context, agentID string) *models.WorkCycleResult
}

// PoolHealth is the worker pool's contribution to the deep health report.
type PoolHealth struct {
	Workers       int      `json:"workers"`
	BusyAgents    []string `json:"busy_agents,omitempty"`
	StepBacklog   int      `json:"step_backlog"`
	CyclesRun     int      `json:"cycles_run"`
	StepsExecuted int      `json:"steps_executed"`
	DBReachable   bool     `json:"db_reachable"`
}

// AgentPool keeps agents working between ticks: each worker picks the next
// active agent round-robin and runs one work cycle for it. A worker that
// laps the roster without finding work sleeps out the poll interval.
type AgentPool struct {
	client *ent.Client
	agents *services.AgentService
	runner CycleRunner
	size   int
	poll   time.Duration
	jitter time.Duration
	logger *slog.Logger

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	mu            sync.Mutex
	started       bool
	cursor        int
	busy          map[string]bool
	cyclesRun     int
	stepsExecuted int
}

// NewAgentPool creates a stopped pool. A non-positive size falls back to
// one worker; a non-positive poll interval falls back to the 300 s default.
func NewAgentPool(client *ent.Client, runner CycleRunner, size int, poll time.Duration, logger *slog.Logger) *AgentPool {
	if size <= 0 {
		size = 1
	}
	if poll <= 0 {
		poll = 300 * time.Second
	}
	return &AgentPool{
		client: client,
		agents: services.NewAgentService(client),
		runner: runner,
		size:   size,
		poll:   poll,
		jitter: poll / 10,
		busy:   make(map[string]bool),
		stopCh: make(chan struct{}),
		logger: logger.With("component", "engine.pool"),
	}
}

// Start spawns the worker goroutines. Subsequent calls are no-ops.
func (p *AgentPool) Start(ctx context.Context) {
	p.mu.Lock()
	if p.started {
		p.mu.Unlock()
		p.logger.Warn("Agent pool already started, ignoring duplicate Start call")
		return
	}
	p.started = true
	p.mu.Unlock()

	p.logger.Info("Agent pool started", "workers", p.size, "poll_interval", p.poll)
	for i := 0; i < p.size; i++ {
		p.wg.Add(1)
		go p.run(ctx, i)
	}
}

// Stop signals all workers and waits for in-flight work cycles to finish.
// Safe to call multiple times.
func (p *AgentPool) Stop() {
	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()
	p.logger.Info("Agent pool stopped")
}

// run is the main worker loop.
func (p *AgentPool) run(ctx context.Context, id int) {
	defer p.wg.Done()

	log := p.logger.With("pool_worker", id)
	log.Info("Pool worker started")

	idleStreak := 0
	for {
		select {
		case <-p.stopCh:
			log.Info("Pool worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, pool worker shutting down")
			return
		default:
		}

		agentID, roster := p.nextAgent(ctx)
		if agentID == "" {
			if roster > 0 {
				// Every agent is being serviced by another worker.
				p.sleep(time.Second)
			} else {
				p.sleep(p.pollInterval())
			}
			continue
		}

		result := p.runner.WorkCycle(ctx, agentID)
		p.finishCycle(agentID, result.StepsExecuted)
		for _, msg := range result.Errors {
			log.Error("Work cycle error", "agent_id", agentID, "error", msg)
		}

		if result.StepsExecuted > 0 {
			idleStreak = 0
			continue
		}
		idleStreak++
		if idleStreak >= roster {
			idleStreak = 0
			p.sleep(p.pollInterval())
		}
	}
}

// nextAgent picks the next active agent in round-robin order, skipping
// agents another worker is servicing. Returns the roster size for idle
// pacing; an empty ID with a non-zero roster means everyone is busy.
func (p *AgentPool) nextAgent(ctx context.Context) (string, int) {
	resp, err := p.agents.ListAgents(ctx, "", "active")
	if err != nil {
		p.logger.Error("Failed to list active agents", "error", err)
		return "", 0
	}
	roster := resp.Agents
	if len(roster) == 0 {
		return "", 0
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	for i := 0; i < len(roster); i++ {
		candidate := roster[(p.cursor+i)%len(roster)]
		if p.busy[candidate.ID] {
			continue
		}
		p.cursor = (p.cursor + i + 1) % len(roster)
		p.busy[candidate.ID] = true
		return candidate.ID, len(roster)
	}
	return "", len(roster)
}

func (p *AgentPool) finishCycle(agentID string, stepsExecuted int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.busy, agentID)
	p.cyclesRun++
	p.stepsExecuted += stepsExecuted
}

// Health reports pool state plus the live step backlog.
func (p *AgentPool) Health() PoolHealth {
	ctx := context.Background()

	backlog, err := p.client.Step.Query().
		Where(step.StatusIn(step.StatusPending, step.StatusClaimed)).
		Count(ctx)
	if err != nil {
		p.logger.Error("Failed to query step backlog for health check", "error", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	busy := make([]string, 0, len(p.busy))
	for id := range p.busy {
		busy = append(busy, id)
	}
	sort.Strings(busy)

	return PoolHealth{
		Workers:       p.size,
		BusyAgents:    busy,
		StepBacklog:   backlog,
		CyclesRun:     p.cyclesRun,
		StepsExecuted: p.stepsExecuted,
		DBReachable:   err == nil,
	}
}

// pollInterval returns the idle sleep with jitter to spread workers out.
// Range: [poll - jitter, poll + jitter].
func (p *AgentPool) pollInterval() time.Duration {
	if p.jitter <= 0 {
		return p.poll
	}
	offset := time.Duration(rand.Int64N(int64(2 * p.jitter)))
	return p.poll - p.jitter + offset
}

// sleep waits for the given duration or until stop is signalled.
func (p *AgentPool) sleep(d time.Duration) {
	select {
	case <-p.stopCh:
	case <-time.After(d):
	}
}
