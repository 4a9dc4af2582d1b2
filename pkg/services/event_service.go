package services

import (
	"context"
	"fmt"
	"time"

	"github.com/codeready-toolchain/agentloop/ent"
	"github.com/codeready-toolchain/agentloop/ent/event"
	"github.com/codeready-toolchain/agentloop/pkg/models"
)

// EventService manages the append-only event log
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// Append writes an event. Events are immutable once written.
func (s *EventService) Append(ctx context.Context, req models.AppendEventRequest) (*ent.Event, error) {
	if req.EventType == "" {
		return nil, NewValidationError("event_type", "required")
	}
	if req.ProjectID == "" {
		return nil, NewValidationError("project_id", "required")
	}

	builder := s.client.Event.Create().
		SetID(newID()).
		SetEventType(req.EventType).
		SetProjectID(req.ProjectID)

	if req.SourceAgentID != "" {
		builder.SetSourceAgentID(req.SourceAgentID)
	}
	if req.Payload != nil {
		builder.SetPayload(req.Payload)
	}

	e, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrNotFound // project or agent FK violated
		}
		return nil, fmt.Errorf("failed to append event: %w", err)
	}

	return e, nil
}

// GetEvent retrieves an event by ID
func (s *EventService) GetEvent(ctx context.Context, eventID string) (*ent.Event, error) {
	e, err := s.client.Event.Get(ctx, eventID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return e, nil
}

// ListEvents lists events newest first with optional filtering
func (s *EventService) ListEvents(ctx context.Context, filters models.EventFilters) (*models.EventListResponse, error) {
	query := s.client.Event.Query()

	if filters.ProjectID != "" {
		query = query.Where(event.ProjectIDEQ(filters.ProjectID))
	}
	if filters.EventType != "" {
		query = query.Where(event.EventTypeEQ(filters.EventType))
	}

	totalCount, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count events: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 100
	}

	events, err := query.
		Order(ent.Desc(event.FieldCreatedAt)).
		Limit(limit).
		Offset(filters.Offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	return &models.EventListResponse{
		Events:     events,
		TotalCount: totalCount,
	}, nil
}

// ListSince returns all events created at or after the cutoff, oldest
// first. Trigger evaluation consumes this window in creation order.
func (s *EventService) ListSince(ctx context.Context, since time.Time) ([]*ent.Event, error) {
	events, err := s.client.Event.Query().
		Where(event.CreatedAtGTE(since)).
		Order(ent.Asc(event.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events since cutoff: %w", err)
	}
	return events, nil
}

// DeleteOlderThan removes events created before the cutoff. Returns the
// number of events deleted.
func (s *EventService) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	count, err := s.client.Event.Delete().
		Where(event.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old events: %w", err)
	}
	return count, nil
}
