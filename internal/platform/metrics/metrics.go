package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "billpay",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "billpay",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "billpay",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "route"},
	)

	upstreamRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "billpay",
			Subsystem: "upstream",
			Name:      "requests_total",
			Help:      "Total number of calls to third-party APIs.",
		},
		[]string{"service", "operation", "status"},
	)

	upstreamDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "billpay",
			Subsystem: "upstream",
			Name:      "request_duration_seconds",
			Help:      "Duration of calls to third-party APIs.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 10), // 10ms to ~10s
		},
		[]string{"service", "operation"},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		upstreamRequests,
		upstreamDuration,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// RequestStarted marks a request as in flight. Call the returned func when it finishes.
func RequestStarted() func() {
	httpInFlight.Inc()
	return httpInFlight.Dec
}

// ObserveRequest records a handled HTTP request. route is the matched route
// template, not the raw path, to keep label cardinality bounded.
func ObserveRequest(method, route string, status int, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveUpstream records one call to a third-party API. status is 0 when
// no response was received.
func ObserveUpstream(service, operation string, status int, duration time.Duration) {
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	if duration <= 0 {
		duration = time.Millisecond
	}
	upstreamRequests.WithLabelValues(service, operation, label).Inc()
	upstreamDuration.WithLabelValues(service, operation).Observe(duration.Seconds())
}

// UpstreamObserver records calls to third-party APIs.
type UpstreamObserver interface {
	ObserveUpstream(service, operation string, status int, duration time.Duration)
}

// UpstreamObserverFunc adapts a function to UpstreamObserver.
type UpstreamObserverFunc func(service, operation string, status int, duration time.Duration)

func (f UpstreamObserverFunc) ObserveUpstream(service, operation string, status int, duration time.Duration) {
	f(service, operation, status, duration)
}

// PrometheusUpstream returns an observer that records into Registry.
func PrometheusUpstream() UpstreamObserver {
	return UpstreamObserverFunc(ObserveUpstream)
}

// NopUpstream returns an observer that records nothing.
func NopUpstream() UpstreamObserver {
	return UpstreamObserverFunc(func(string, string, int, time.Duration) {})
}
