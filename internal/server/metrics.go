package server

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "jifkit"

// Metrics implements the pipeline, cache and HTTP observability hooks on
// top of Prometheus collectors.
type Metrics struct {
	stageRuns      *prometheus.CounterVec
	stageDuration  *prometheus.HistogramVec
	throws         prometheus.Histogram
	orbits         prometheus.Histogram
	cacheOps       *prometheus.CounterVec
	cacheBytes     *prometheus.CounterVec
	httpInflight   prometheus.Gauge
	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
	manipulatorsIn prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		stageRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "stage_runs_total",
			Help:      "Pipeline stage executions by stage and outcome.",
		}, []string{"stage", "format", "status"}),
		stageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "stage_duration_seconds",
			Help:      "Pipeline stage latency.",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1, .5},
		}, []string{"stage"}),
		throws: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "parsed_throws",
			Help:      "Throws per parsed pattern.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}),
		orbits: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "orbits",
			Help:      "Orbits per analyzed pattern.",
			Buckets:   prometheus.LinearBuckets(1, 2, 10),
		}),
		manipulatorsIn: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "manipulators",
			Help:      "Manipulators inserted per run.",
			Buckets:   []float64{0, 1, 2, 3, 4},
		}),
		cacheOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "operations_total",
			Help:      "Cache lookups and writes by key type.",
		}, []string{"key_type", "op"}),
		cacheBytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "written_bytes_total",
			Help:      "Bytes written to the cache by key type.",
		}, []string{"key_type"}),
		httpInflight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Requests currently being served.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"method", "route", "code"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	reg.MustRegister(
		m.stageRuns, m.stageDuration, m.throws, m.orbits, m.manipulatorsIn,
		m.cacheOps, m.cacheBytes,
		m.httpInflight, m.httpRequests, m.httpDuration,
	)
	return m
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// =============================================================================
// observability.PipelineHooks
// =============================================================================

func (m *Metrics) OnParseStart(context.Context, string) {}

func (m *Metrics) OnParseComplete(_ context.Context, format string, throwCount int, d time.Duration, err error) {
	m.stageRuns.WithLabelValues("parse", format, status(err)).Inc()
	m.stageDuration.WithLabelValues("parse").Observe(d.Seconds())
	if err == nil {
		m.throws.Observe(float64(throwCount))
	}
}

func (m *Metrics) OnManipulateStart(_ context.Context, n int) {
	m.manipulatorsIn.Observe(float64(n))
}

func (m *Metrics) OnManipulateComplete(_ context.Context, _ int, d time.Duration, err error) {
	m.stageRuns.WithLabelValues("manipulate", "", status(err)).Inc()
	m.stageDuration.WithLabelValues("manipulate").Observe(d.Seconds())
}

func (m *Metrics) OnAnalyzeComplete(_ context.Context, orbitCount int, d time.Duration, err error) {
	m.stageRuns.WithLabelValues("analyze", "", status(err)).Inc()
	m.stageDuration.WithLabelValues("analyze").Observe(d.Seconds())
	if err == nil {
		m.orbits.Observe(float64(orbitCount))
	}
}

// =============================================================================
// observability.CacheHooks
// =============================================================================

func (m *Metrics) OnCacheHit(_ context.Context, keyType string) {
	m.cacheOps.WithLabelValues(keyType, "hit").Inc()
}

func (m *Metrics) OnCacheMiss(_ context.Context, keyType string) {
	m.cacheOps.WithLabelValues(keyType, "miss").Inc()
}

func (m *Metrics) OnCacheSet(_ context.Context, keyType string, size int) {
	m.cacheOps.WithLabelValues(keyType, "set").Inc()
	m.cacheBytes.WithLabelValues(keyType).Add(float64(size))
}

// =============================================================================
// observability.HTTPHooks
// =============================================================================

func (m *Metrics) OnRequest(context.Context, string, string) {
	m.httpInflight.Inc()
}

func (m *Metrics) OnResponse(_ context.Context, method, route string, code int, d time.Duration) {
	m.httpInflight.Dec()
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}
