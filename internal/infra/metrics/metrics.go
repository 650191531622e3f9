// Package metrics holds the prometheus collectors of the client.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"pos/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Refresh triggers and outcomes used as label values.
const (
	TriggerReactive  = "reactive"
	TriggerProactive = "proactive"

	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeJoined  = "joined"
	OutcomeSkipped = "skipped"
)

// Metrics groups every collector on a private registry
type Metrics struct {
	registry *prometheus.Registry

	BackendRequests *prometheus.CounterVec
	BackendDuration *prometheus.HistogramVec
	RefreshAttempts *prometheus.CounterVec
	ForcedLogouts   *prometheus.CounterVec
	AppRequests     *prometheus.CounterVec
	AppDuration     *prometheus.HistogramVec
}

// New creates the collectors for the configured namespace
func New(cfg *config.Config) *Metrics {
	return NewWithNamespace(cfg.Metrics.Namespace)
}

// NewWithNamespace creates collectors on a fresh registry, one per call so tests do not collide
func NewWithNamespace(namespace string) *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		BackendRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "backend",
				Name:      "requests_total",
				Help:      "Requests sent to the REST backend",
			},
			[]string{"operation", "status"},
		),
		BackendDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "backend",
				Name:      "request_duration_seconds",
				Help:      "Latency of requests sent to the REST backend",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		RefreshAttempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "session",
				Name:      "refresh_total",
				Help:      "Token refreshes by trigger and outcome",
			},
			[]string{"trigger", "outcome"},
		),
		ForcedLogouts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "session",
				Name:      "forced_logouts_total",
				Help:      "Hard logouts by reason",
			},
			[]string{"reason"},
		),
		AppRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Requests served by the app shell",
			},
			[]string{"method", "route", "status"},
		),
		AppDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Latency of requests served by the app shell",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}

	registry.MustRegister(
		m.BackendRequests,
		m.BackendDuration,
		m.RefreshAttempts,
		m.ForcedLogouts,
		m.AppRequests,
		m.AppDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// ObserveBackend records one backend round trip. status 0 means a transport failure.
func (m *Metrics) ObserveBackend(operation string, status int, elapsed time.Duration) {
	label := "transport_error"
	if status != 0 {
		label = strconv.Itoa(status)
	}
	m.BackendRequests.WithLabelValues(operation, label).Inc()
	m.BackendDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// ObserveRefresh records a refresh attempt
func (m *Metrics) ObserveRefresh(trigger, outcome string) {
	m.RefreshAttempts.WithLabelValues(trigger, outcome).Inc()
}

// ObserveForcedLogout records a hard logout
func (m *Metrics) ObserveForcedLogout(reason string) {
	m.ForcedLogouts.WithLabelValues(reason).Inc()
}

// ObserveApp records one app shell request
func (m *Metrics) ObserveApp(method, route string, status int, elapsed time.Duration) {
	m.AppRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.AppDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Handler exposes the registry in the prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the private registry, mainly for tests
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
