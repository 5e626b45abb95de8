package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics agrupa os collectors da API do dashboard. Um *Metrics nil é válido
// e não registra nada.
type Metrics struct {
	// Métricas HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Métricas de cache
	CacheLookups *prometheus.CounterVec
	CacheErrors  *prometheus.CounterVec

	// Métricas da consulta de agregação
	UpstreamCalls    *prometheus.CounterVec
	UpstreamDuration *prometheus.HistogramVec

	// Métricas do aquecimento
	WarmupRuns *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),

		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		CacheLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_cache_lookups_total",
				Help: "Dashboard cache lookups by result (hit, miss)",
			},
			[]string{"result"},
		),

		CacheErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_cache_errors_total",
				Help: "Dashboard cache failures by operation (get, set, decode, encode)",
			},
			[]string{"op"},
		),

		UpstreamCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_upstream_calls_total",
				Help: "Aggregation query calls by source and status",
			},
			[]string{"source", "status"},
		),

		UpstreamDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dashboard_upstream_duration_seconds",
				Help:    "Aggregation query duration in seconds",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15},
			},
			[]string{"source"},
		),

		WarmupRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_warmup_runs_total",
				Help: "Cache warm-up runs by status",
			},
			[]string{"status"},
		),
	}
}

func (m *Metrics) RecordHTTPRequest(method, path, statusCode string, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, path, statusCode).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func (m *Metrics) RecordCacheHit() {
	if m == nil {
		return
	}
	m.CacheLookups.WithLabelValues("hit").Inc()
}

func (m *Metrics) RecordCacheMiss() {
	if m == nil {
		return
	}
	m.CacheLookups.WithLabelValues("miss").Inc()
}

func (m *Metrics) RecordCacheError(op string) {
	if m == nil {
		return
	}
	m.CacheErrors.WithLabelValues(op).Inc()
}

func (m *Metrics) RecordUpstreamCall(source, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.UpstreamCalls.WithLabelValues(source, status).Inc()
	m.UpstreamDuration.WithLabelValues(source).Observe(duration.Seconds())
}

func (m *Metrics) RecordWarmupRun(status string) {
	if m == nil {
		return
	}
	m.WarmupRuns.WithLabelValues(status).Inc()
}
