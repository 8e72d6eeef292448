// Package metrics exports analysis, cache, and HTTP activity as Prometheus
// metrics.
//
// A [Registry] owns its own prometheus.Registry, so tests and embedded
// servers never collide on the global default. It implements the hook
// interfaces of pkg/observability; register it once at startup:
//
//	reg := metrics.NewRegistry()
//	observability.SetAnalysisHooks(reg)
//	observability.SetCacheHooks(reg)
//	observability.SetHTTPHooks(reg)
//	mux.Handle("/metrics", reg.Handler())
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "lanparty"

// Registry holds every lanparty metric.
type Registry struct {
	// Analysis
	TrianglesFound       prometheus.Histogram
	TriangleDuration     prometheus.Histogram
	SearchesTotal        *prometheus.CounterVec
	SearchDuration       *prometheus.HistogramVec
	SearchesInFlight     prometheus.Gauge
	MaximalCliquesFound  *prometheus.HistogramVec
	LastSearchGraphNodes prometheus.Gauge

	// Cache
	CacheHitsTotal   *prometheus.CounterVec
	CacheMissesTotal *prometheus.CounterVec
	CacheWritesTotal *prometheus.CounterVec
	CacheWriteBytes  *prometheus.HistogramVec

	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	registry *prometheus.Registry
}

var (
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the process-wide registry, creating it on first use.
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a registry with all metrics initialized.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}

	r.initAnalysisMetrics()
	r.initCacheMetrics()
	r.initHTTPMetrics()

	return r
}

// Gatherer returns the underlying Prometheus registry.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
