package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"time"

	"github.com/codeready-toolchain/agentloop/ent"
	"github.com/codeready-toolchain/agentloop/ent/step"
	"github.com/codeready-toolchain/agentloop/pkg/events"
	"github.com/codeready-toolchain/agentloop/pkg/models"
	"github.com/codeready-toolchain/agentloop/pkg/services"
)

// ErrInvalidTrigger marks triggers whose stored pattern or action cannot be
// executed.
var ErrInvalidTrigger = errors.New("invalid trigger")

// triggerWindow is how far back the evaluator looks for matching events.
const triggerWindow = 5 * time.Minute

// TriggerEvaluator matches enabled triggers against recent events and
// executes their actions.
type TriggerEvaluator struct {
	triggers  *services.TriggerService
	events    *services.EventService
	missions  *services.MissionService
	steps     *services.StepService
	publisher *events.Publisher
	logger    *slog.Logger
}

// NewTriggerEvaluator creates a trigger evaluator on the shared ent client.
func NewTriggerEvaluator(client *ent.Client, publisher *events.Publisher, logger *slog.Logger) *TriggerEvaluator {
	return &TriggerEvaluator{
		triggers:  services.NewTriggerService(client),
		events:    services.NewEventService(client),
		missions:  services.NewMissionService(client),
		steps:     services.NewStepService(client),
		publisher: publisher,
		logger:    logger.With("component", "engine.triggers"),
	}
}

// Evaluate runs every enabled trigger, in creation order, against the
// recent event window. Results accumulate into res; a failing trigger is
// recorded and evaluation moves on to the next one.
func (e *TriggerEvaluator) Evaluate(ctx context.Context, res *models.OrchestrationResult) error {
	enabled, err := e.triggers.ListEnabled(ctx)
	if err != nil {
		return err
	}
	recent, err := e.events.ListSince(ctx, time.Now().Add(-triggerWindow))
	if err != nil {
		return err
	}
	res.EventsProcessed += len(recent)

	for _, t := range enabled {
		res.TriggersEvaluated++

		matched, err := matchEvents(t, recent)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("trigger %s: %v", t.Name, err))
			continue
		}
		if len(matched) == 0 {
			continue
		}

		executed, err := e.execute(ctx, t, matched)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("trigger %s: %v", t.Name, err))
			continue
		}
		if executed == 0 {
			continue
		}

		res.TriggersFired++
		res.ActionsExecuted += executed
		if err := e.triggers.MarkFired(ctx, t.ID, time.Now()); err != nil {
			e.logger.Warn("Failed to stamp trigger fire time",
				"trigger_id", t.ID, "error", err)
		}
		e.logger.Info("Trigger fired", "trigger", t.Name, "actions", executed)
	}
	return nil
}

// matchEvents returns the events the trigger's pattern matches, preserving
// their order.
func matchEvents(t *ent.Trigger, evts []*ent.Event) ([]*ent.Event, error) {
	pattern, err := models.ParseTriggerPattern(t.EventPattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTrigger, err)
	}
	var matched []*ent.Event
	for _, ev := range evts {
		if ev.ProjectID != t.ProjectID {
			continue
		}
		if pattern.EventType != "" && ev.EventType != pattern.EventType {
			continue
		}
		if !conditionsMatch(pattern.Conditions, ev.Payload) {
			continue
		}
		matched = append(matched, ev)
	}
	return matched, nil
}

// conditionsMatch checks that every condition key is present in the payload
// with a deeply equal value. Both sides round-trip through JSON, so numbers
// compare as float64.
func conditionsMatch(conditions, payload map[string]any) bool {
	for key, expected := range conditions {
		actual, ok := payload[key]
		if !ok {
			return false
		}
		if !reflect.DeepEqual(actual, expected) {
			return false
		}
	}
	return true
}

// execute runs the trigger's action over the matched events and returns the
// number of actions performed. Zero means nothing usable matched.
func (e *TriggerEvaluator) execute(ctx context.Context, t *ent.Trigger, matched []*ent.Event) (int, error) {
	action, err := models.ParseTriggerAction(t.Action)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidTrigger, err)
	}
	switch action.Type {
	case models.TriggerActionCreateStep:
		return e.createStep(ctx, action, matched)
	case models.TriggerActionEvaluateMissionCompletion:
		return e.evaluateMissionCompletion(ctx, matched)
	default:
		return 0, fmt.Errorf("%w: unknown action type %q", ErrInvalidTrigger, action.Type)
	}
}

// createStep appends one step to the mission referenced by the first
// matched event that names one. Events whose mission is gone are skipped.
func (e *TriggerEvaluator) createStep(ctx context.Context, action models.TriggerAction, matched []*ent.Event) (int, error) {
	for _, ev := range matched {
		missionID := payloadMissionID(ev)
		if missionID == "" {
			continue
		}
		m, err := e.missions.GetMission(ctx, missionID, false)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				continue
			}
			return 0, err
		}

		req := models.CreateStepRequest{
			MissionID:   m.ID,
			OrderIndex:  services.TriggerStepOrderIndex,
			Title:       "Auto-generated step",
			Description: "Generated by trigger",
		}
		if action.OrderIndex != nil {
			req.OrderIndex = *action.OrderIndex
		}
		if action.Title != "" {
			req.Title = action.Title
		}
		if action.Description != "" {
			req.Description = action.Description
		}
		if action.StepType != "" {
			req.StepType = step.StepType(action.StepType)
		}

		created, err := e.steps.CreateStep(ctx, req)
		if err != nil {
			return 0, err
		}
		e.logger.Info("Trigger created step",
			"step_id", created.ID, "mission_id", m.ID, "title", created.Title)
		return 1, nil
	}
	return 0, nil
}

// evaluateMissionCompletion closes the mission referenced by the first
// matched event whose steps are all done.
func (e *TriggerEvaluator) evaluateMissionCompletion(ctx context.Context, matched []*ent.Event) (int, error) {
	for _, ev := range matched {
		missionID := payloadMissionID(ev)
		if missionID == "" {
			continue
		}
		m, closed, err := e.missions.CompleteIfAllStepsDone(ctx, missionID)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				continue
			}
			return 0, err
		}
		if !closed {
			continue
		}
		e.logger.Info("Trigger completed mission", "mission_id", m.ID)
		publishMissionCompleted(ctx, e.publisher, m, e.logger)
		return 1, nil
	}
	return 0, nil
}

// payloadMissionID extracts a usable mission reference from an event
// payload.
func payloadMissionID(ev *ent.Event) string {
	id, _ := ev.Payload["mission_id"].(string)
	return id
}
