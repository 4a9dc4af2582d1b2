package events

import (
	"context"
	stdsql "database/sql"
	"log/slog"

	"github.com/codeready-toolchain/agentloop/ent"
	"github.com/codeready-toolchain/agentloop/pkg/metrics"
	"github.com/codeready-toolchain/agentloop/pkg/models"
	"github.com/codeready-toolchain/agentloop/pkg/services"
)

// Publisher persists orchestration events and broadcasts them on the NOTIFY
// channel. Broadcast failures are logged and swallowed; the persisted row is
// what triggers and catchup reads consume.
type Publisher struct {
	events *services.EventService
	db     *stdsql.DB
}

// NewPublisher creates a publisher over the event service and the shared
// database handle.
func NewPublisher(events *services.EventService, db *stdsql.DB) *Publisher {
	return &Publisher{events: events, db: db}
}

// Publish appends the event row, then notifies live consumers.
func (p *Publisher) Publish(ctx context.Context, req models.AppendEventRequest) (*ent.Event, error) {
	evt, err := p.events.Append(ctx, req)
	if err != nil {
		return nil, err
	}
	metrics.EventsPublished.WithLabelValues(evt.EventType).Inc()
	p.notify(ctx, evt)
	return evt, nil
}

func (p *Publisher) notify(ctx context.Context, evt *ent.Event) {
	frame, err := EncodeFrame(FrameFromEvent(evt))
	if err != nil {
		slog.Warn("Failed to encode event frame", "event_id", evt.ID, "error", err)
		return
	}
	if _, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", Channel, string(frame)); err != nil {
		slog.Warn("Failed to broadcast event", "event_id", evt.ID, "event_type", evt.EventType, "error", err)
	}
}
