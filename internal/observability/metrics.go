package observability

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the roster's prometheus collectors on a private registry.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry           *prometheus.Registry
	mutations          *prometheus.CounterVec
	validationFailures prometheus.Counter
	renders            *prometheus.CounterVec
	requests           *prometheus.CounterVec
	records            prometheus.Gauge
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "roster_mutations_total",
			Help: "Record store mutations by operation.",
		}, []string{"op"}),
		validationFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "roster_validation_failures_total",
			Help: "Submitted records rejected by the validator.",
		}),
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "roster_renders_total",
			Help: "Rendered regions by name.",
		}, []string{"region"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "roster_http_requests_total",
			Help: "HTTP requests by method and status.",
		}, []string{"method", "status"}),
		records: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "roster_store_records",
			Help: "Employees currently held in the store.",
		}),
	}
	m.registry.MustRegister(m.mutations, m.validationFailures, m.renders, m.requests, m.records)
	return m
}

// RecordMutation counts a store mutation and updates the record gauge.
func (m *Metrics) RecordMutation(op string, storeLen int) {
	if m == nil {
		return
	}
	m.mutations.WithLabelValues(op).Inc()
	m.records.Set(float64(storeLen))
}

func (m *Metrics) RecordValidationFailure() {
	if m == nil {
		return
	}
	m.validationFailures.Inc()
}

func (m *Metrics) RecordRender(region string) {
	if m == nil {
		return
	}
	m.renders.WithLabelValues(region).Inc()
}

func (m *Metrics) RecordRequest(method string, status int) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(method, strconv.Itoa(status)).Inc()
}

// SetRecords sets the record gauge, used once after seeding.
func (m *Metrics) SetRecords(n int) {
	if m == nil {
		return
	}
	m.records.Set(float64(n))
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
