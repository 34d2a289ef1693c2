// Package observability bundles the Prometheus collectors of the gateway.
package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "research_gateway"

// Metrics bundles Prometheus collectors for the gateway. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	registry         *prometheus.Registry
	HTTPRequests     *prometheus.CounterVec
	HTTPDuration     *prometheus.HistogramVec
	ConfigLoadErrors prometheus.Counter
	FrontendServes   *prometheus.CounterVec
	FrontendReady    prometheus.Gauge
}

// NewMetrics constructs a dedicated registry with the gateway collectors and
// the standard process and Go runtime collectors.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()

	reqs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total HTTP requests by route pattern, method and status",
	}, []string{"route", "method", "status"})

	durs := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request duration in seconds by route pattern",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})

	cfgErrs := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "llm_config_errors_total",
		Help:      "LLM configuration construction failures",
	})

	serves := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "frontend_responses_total",
		Help:      "Frontend responses by resolution (file, fallback, asset_miss, unavailable)",
	}, []string{"resolution"})

	ready := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "frontend_build_available",
		Help:      "1 if the frontend build was found at startup, 0 otherwise",
	})

	reg.MustRegister(
		reqs, durs, cfgErrs, serves, ready,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Metrics{
		registry:         reg,
		HTTPRequests:     reqs,
		HTTPDuration:     durs,
		ConfigLoadErrors: cfgErrs,
		FrontendServes:   serves,
		FrontendReady:    ready,
	}
}

// Registry returns the underlying Prometheus registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns the exposition handler of the registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordHTTPRequest records one served request. route is the matched route
// pattern, never the raw path, to keep label cardinality bounded.
func (m *Metrics) RecordHTTPRequest(route, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.HTTPDuration.WithLabelValues(route, method).Observe(duration.Seconds())
}

// RecordConfigError increments the configuration failure counter.
func (m *Metrics) RecordConfigError() {
	if m == nil {
		return
	}
	m.ConfigLoadErrors.Inc()
}

// RecordFrontendServe counts a frontend response by its resolution.
func (m *Metrics) RecordFrontendServe(resolution string) {
	if m == nil {
		return
	}
	if resolution == "" {
		resolution = "unknown"
	}
	m.FrontendServes.WithLabelValues(resolution).Inc()
}

// SetFrontendAvailable sets the build availability gauge.
func (m *Metrics) SetFrontendAvailable(available bool) {
	if m == nil {
		return
	}
	if available {
		m.FrontendReady.Set(1)
		return
	}
	m.FrontendReady.Set(0)
}
