package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Метрики Prometheus для внешних провайдеров, сессий дашборда и websocket-потока
var (
	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_requests_total",
			Help: "Total number of calls to third-party providers by outcome",
		},
		[]string{"provider", "outcome"}, // outcome: success, failure, rejected
	)

	UpstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "upstream_request_duration_seconds",
			Help:    "Duration of calls to third-party providers in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"provider"},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	DegradedResponses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "proxy_degraded_responses_total",
			Help: "Proxy responses served from mock or empty fallback data",
		},
		[]string{"endpoint", "reason"}, // reason: not_configured, upstream_failure, bad_request
	)

	// Сессии, истекшие по TTL в Redis, не попадают в logged_out
	DashboardSessions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_sessions_total",
			Help: "Dashboard sessions by lifecycle event",
		},
		[]string{"event"}, // event: created, logged_out
	)

	DashboardEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_events_total",
			Help: "Dashboard callback events by type and delivery result",
		},
		[]string{"type", "result"},
	)

	FeedUpdates = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "feed_subject_updates_total",
			Help: "Subject updates received from the live feed",
		},
	)

	StreamClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "stream_clients_connected",
			Help: "Number of connected websocket stream clients",
		},
	)
)
