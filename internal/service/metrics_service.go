package service

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the admin API.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	transitionTotal *prometheus.CounterVec
	replayTotal     *prometheus.CounterVec
	auditWriteTotal *prometheus.CounterVec
}

// NewMetricsService registers core Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	transitionTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "admin_transitions_total",
		Help: "Total privileged state transitions by family and outcome",
	}, []string{"family", "outcome"})

	replayTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "idempotent_replays_total",
		Help: "Total requests short-circuited by the idempotency ledger",
	}, []string{"family"})

	auditWriteTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "audit_writes_total",
		Help: "Total audit trail writes by result",
	}, []string{"result"})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, transitionTotal, replayTotal, auditWriteTotal, goroutines)

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	return &MetricsService{
		registry:        registry,
		handler:         handler,
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		transitionTotal: transitionTotal,
		replayTotal:     replayTotal,
		auditWriteTotal: auditWriteTotal,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records request latency and count.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
}

// RecordTransition counts a state transition attempt for one operation family.
// Outcome is one of applied, replayed, rejected, conflict.
func (m *MetricsService) RecordTransition(family, outcome string) {
	if m == nil {
		return
	}
	m.transitionTotal.WithLabelValues(family, outcome).Inc()
}

// RecordReplay counts a request answered from the idempotency ledger.
func (m *MetricsService) RecordReplay(family string) {
	if m == nil {
		return
	}
	m.replayTotal.WithLabelValues(family).Inc()
}

// RecordAuditWrite counts an audit trail write by result (ok or error).
func (m *MetricsService) RecordAuditWrite(result string) {
	if m == nil {
		return
	}
	m.auditWriteTotal.WithLabelValues(result).Inc()
}
