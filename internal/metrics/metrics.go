// Package metrics exposes Prometheus instrumentation for rate refreshes and HTTP traffic.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Refresh outcome label values.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	RefreshTotal    *prometheus.CounterVec
	RefreshDuration *prometheus.HistogramVec
	CurrentRate     *prometheus.GaugeVec
	LastSuccess     *prometheus.GaugeVec
}

// NewMetrics registers all collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		HTTPRequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"path", "method", "status_code"},
		),

		HTTPRequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"path", "method"},
		),

		RefreshTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rate_refresh_total",
				Help: "Total number of rate refreshes by pair and result",
			},
			[]string{"pair", "result"},
		),

		RefreshDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "rate_refresh_duration_seconds",
				Help:    "Duration of rate source calls in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"pair"},
		),

		CurrentRate: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "rate_current_value",
				Help: "Latest successfully fetched rate per pair",
			},
			[]string{"pair"},
		),

		LastSuccess: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "rate_last_success_timestamp_seconds",
				Help: "Unix time of the last successful refresh per pair",
			},
			[]string{"pair"},
		),
	}
}

// ObserveRefresh records one refresh outcome.
func (m *Metrics) ObserveRefresh(key string, rate float64, took time.Duration, err error) {
	m.RefreshDuration.WithLabelValues(key).Observe(took.Seconds())
	if err != nil {
		m.RefreshTotal.WithLabelValues(key, ResultFailure).Inc()
		return
	}
	m.RefreshTotal.WithLabelValues(key, ResultSuccess).Inc()
	m.CurrentRate.WithLabelValues(key).Set(rate)
	m.LastSuccess.WithLabelValues(key).Set(float64(time.Now().Unix()))
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(path, method string, status int, took time.Duration) {
	m.HTTPRequestDuration.WithLabelValues(path, method).Observe(took.Seconds())
	m.HTTPRequestsTotal.WithLabelValues(path, method, statusClass(status)).Inc()
}

func statusClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
