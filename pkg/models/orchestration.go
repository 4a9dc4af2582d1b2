package models

// OrchestrationResult is the outcome of one orchestrator tick. Phases never
// abort the tick; their failures are collected into Errors.
type OrchestrationResult struct {
	TriggersEvaluated int      `json:"triggers_evaluated"`
	TriggersFired     int      `json:"triggers_fired"`
	EventsProcessed   int      `json:"events_processed"`
	ActionsExecuted   int      `json:"actions_executed"`
	Errors            []string `json:"errors"`
	DurationMS        float64  `json:"duration_ms"`
}

// WorkCycleResult is the outcome of one agent work cycle.
type WorkCycleResult struct {
	AgentID       string   `json:"agent_id"`
	StepsExecuted int      `json:"steps_executed"`
	Errors        []string `json:"errors"`
	DurationMS    float64  `json:"duration_ms"`
}
