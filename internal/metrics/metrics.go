// Package metrics exposes the bridge's Prometheus instrumentation: request
// counts and latencies per method and status, plus the commit/rollback
// outcome of every transactional request.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Transaction outcome label values.
const (
	OutcomeCommitted    = "committed"
	OutcomeRolledBack   = "rolled_back"
	OutcomeCommitFailed = "commit_failed"
)

// Metrics holds the bridge's collectors on a private registry so repeated
// construction (tests, embedded use) never trips duplicate registration.
type Metrics struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	transactions    *prometheus.CounterVec
}

// NewMetrics builds and registers all bridge collectors.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{
		registry: registry,
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "scim_bridge",
			Name:      "requests_total",
			Help:      "Total number of bridged requests by HTTP method and response status.",
		}, []string{"method", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "scim_bridge",
			Name:      "request_duration_seconds",
			Help:      "End-to-end latency of bridged requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
		transactions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "scim_bridge",
			Name:      "transactions_total",
			Help:      "Transactional outcomes of bridged requests.",
		}, []string{"outcome"}),
	}

	registry.MustRegister(m.requestsTotal, m.requestDuration, m.transactions)

	return m
}

// ObserveRequest records one completed request.
func (m *Metrics) ObserveRequest(method string, status int, duration time.Duration) {
	m.requestsTotal.WithLabelValues(method, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method).Observe(duration.Seconds())
}

// ObserveTransaction records the commit-or-rollback outcome of one request.
func (m *Metrics) ObserveTransaction(outcome string) {
	m.transactions.WithLabelValues(outcome).Inc()
}

// Handler returns the scrape endpoint for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
