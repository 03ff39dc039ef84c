// Package server exposes the stress harness's Prometheus metrics over HTTP.
package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the harness counters with their private registry. Using a
// per-instance registry keeps tests independent and avoids global collector
// collisions.
type Metrics struct {
	registry *prometheus.Registry
	handler  http.Handler

	opsTotal      *prometheus.CounterVec
	mismatches    prometheus.Counter
	activeWorkers prometheus.Gauge
}

// NewMetrics creates the metric set and its HTTP handler.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())

	m := &Metrics{
		registry: registry,
		opsTotal: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "bigcalc_stress_ops_total",
			Help: "Operations checked against the oracle, by operator.",
		}, []string{"op"}),
		mismatches: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "bigcalc_stress_mismatches_total",
			Help: "Operations whose result disagreed with the oracle.",
		}),
		activeWorkers: promauto.With(registry).NewGauge(prometheus.GaugeOpts{
			Name: "bigcalc_stress_active_workers",
			Help: "Workers currently generating and checking operations.",
		}),
	}
	m.handler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	return m
}

// RecordOp counts one checked operation for the given operator token.
func (m *Metrics) RecordOp(op string) {
	m.opsTotal.WithLabelValues(op).Inc()
}

// RecordMismatch counts one oracle disagreement.
func (m *Metrics) RecordMismatch() {
	m.mismatches.Inc()
}

// WorkerStarted increments the active worker gauge.
func (m *Metrics) WorkerStarted() { m.activeWorkers.Inc() }

// WorkerStopped decrements the active worker gauge.
func (m *Metrics) WorkerStopped() { m.activeWorkers.Dec() }

// WritePrometheus serves the metrics in Prometheus exposition format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}
