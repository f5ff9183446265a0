package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds all Prometheus metrics for the application
type Collector struct {
	registry *prometheus.Registry

	// HTTP metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Business metrics
	GraphsGenerated *prometheus.CounterVec
	ReportsRendered *prometheus.CounterVec
	NodesScored     *prometheus.CounterVec
	ScorerMode      *prometheus.GaugeVec
}

// NewCollector creates a collector on its own registry, so tests can build
// as many as they like.
func NewCollector(namespace string) *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		GraphsGenerated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "graphs_generated_total",
				Help:      "Total number of mock graphs generated by kind",
			},
			[]string{"kind"},
		),
		ReportsRendered: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "reports_rendered_total",
				Help:      "Total number of reports rendered by template",
			},
			[]string{"template"},
		),
		NodesScored: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "nodes_scored_total",
				Help:      "Total number of scored nodes by outcome",
			},
			[]string{"outcome"},
		),
		ScorerMode: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "scorer_mode",
				Help:      "Set to 1 for the active scoring mode",
			},
			[]string{"mode"},
		),
	}

	registry.MustRegister(
		c.HTTPRequests,
		c.HTTPDuration,
		c.GraphsGenerated,
		c.ReportsRendered,
		c.NodesScored,
		c.ScorerMode,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return c
}

// SetScorerMode marks mode as the active scorer.
func (c *Collector) SetScorerMode(mode string) {
	c.ScorerMode.Reset()
	c.ScorerMode.WithLabelValues(mode).Set(1)
}

// Registry exposes the underlying registry for tests.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
