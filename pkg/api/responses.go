package api

import "time"

// ErrorResponse is the uniform error envelope for all API failures.
type ErrorResponse struct {
	Error string `json:"error"`
}

// nowUnix returns the current time as unix seconds with fractional part,
// the timestamp format used across status and health responses.
func nowUnix() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Second)
}

// StatusResponse acknowledges a state-changing call that returns no entity.
type StatusResponse struct {
	Status    string  `json:"status"`
	Timestamp float64 `json:"timestamp"`
}

// HealthCheck is one named probe inside the deep health response.
type HealthCheck struct {
	Status  string         `json:"status"`
	Message string         `json:"message,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// HealthResponse aggregates the component probes.
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp float64                `json:"timestamp"`
	Checks    map[string]HealthCheck `json:"checks"`
}

// OrchestratorStatusResponse reports the engine's liveness.
type OrchestratorStatusResponse struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	TickRunning   bool    `json:"tick_running"`
	PoolRunning   bool    `json:"pool_running"`
}
