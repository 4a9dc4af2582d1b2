// Package metrics defines the Prometheus instruments for the orchestration
// engine. All collectors are registered on the default registry via promauto
// and exposed by the API server on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TickDuration tracks how long one orchestration tick takes end to end.
	TickDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "agentloop_tick_duration_seconds",
		Help:    "Duration of one orchestration tick across all phases",
		Buckets: prometheus.DefBuckets,
	})

	// TickActions counts state-changing actions taken by ticks.
	TickActions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "agentloop_tick_actions_total",
		Help: "Total number of actions executed by orchestration ticks",
	})

	// TickErrors counts errors collected by ticks. Ticks never abort, so
	// this is the only signal that a phase is misbehaving.
	TickErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "agentloop_tick_errors_total",
		Help: "Total number of errors collected during orchestration ticks",
	})

	// TriggersFired counts trigger rules whose pattern matched an event.
	TriggersFired = promauto.NewCounter(prometheus.CounterOpts{
		Name: "agentloop_triggers_fired_total",
		Help: "Total number of trigger rules fired by matching events",
	})

	// StepDispatches counts step executions by backend and outcome.
	StepDispatches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "agentloop_step_dispatches_total",
		Help: "Total number of step executions by backend and result",
	}, []string{"backend", "result"}) // backend: dispatcher, simulated; result: completed, failed

	// EventsPublished counts events appended through the publisher.
	EventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "agentloop_events_published_total",
		Help: "Total number of events appended to the event log",
	}, []string{"event_type"})

	// StreamSubscribers tracks live SSE subscribers on the event stream.
	StreamSubscribers = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "agentloop_stream_subscribers",
		Help: "Current number of subscribers on the event stream",
	})

	// BoardStreamReconnects counts reconnect attempts on inbound board streams.
	BoardStreamReconnects = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "agentloop_board_stream_reconnects_total",
		Help: "Total number of reconnect attempts on inbound board event streams",
	}, []string{"stream"})

	// HTTPRequests counts API requests by method, route and status class.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "agentloop_http_requests_total",
		Help: "Total number of HTTP requests served by the API",
	}, []string{"method", "path", "status"})

	// HTTPDuration tracks API request latency by route.
	HTTPDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "agentloop_http_request_duration_seconds",
		Help:    "Latency of HTTP requests served by the API",
		Buckets: prometheus.DefBuckets,
	})
)
