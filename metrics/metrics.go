// Package metrics records Prometheus metrics for API calls by wrapping an api.Transport.
package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jrsteele09/go-authlete/api"
)

// Metrics holds the API call collectors.
type Metrics struct {
	gatherer prometheus.Gatherer

	calls      *prometheus.CounterVec
	callErrors *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// New creates the collectors under namespace and registers them with registry.
// A nil registry gets a fresh one.
func New(namespace string, registry *prometheus.Registry) (*Metrics, error) {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	m := &Metrics{
		gatherer: registry,
		calls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "api_calls_total",
				Help:      "Total number of API calls that produced an HTTP response",
			},
			[]string{"endpoint", "code"},
		),
		callErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "api_call_errors_total",
				Help:      "Total number of API calls that failed before a response arrived",
			},
			[]string{"endpoint"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "api_call_duration_seconds",
				Help:      "API call duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
	}

	for _, c := range []prometheus.Collector{m.calls, m.callErrors, m.duration} {
		if err := registry.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// Instrument returns a transport that records every call sent through next.
func (m *Metrics) Instrument(next api.Transport) api.Transport {
	return &instrumentedTransport{next: next, metrics: m}
}

type instrumentedTransport struct {
	next    api.Transport
	metrics *Metrics
}

func (t *instrumentedTransport) Send(ctx context.Context, req *api.Request) (*api.Response, error) {
	start := time.Now()
	resp, err := t.next.Send(ctx, req)
	t.metrics.duration.WithLabelValues(req.Endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		t.metrics.callErrors.WithLabelValues(req.Endpoint).Inc()
		return nil, err
	}
	t.metrics.calls.WithLabelValues(req.Endpoint, strconv.Itoa(resp.StatusCode)).Inc()
	return resp, nil
}
