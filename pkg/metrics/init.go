package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// sizeBuckets covers result counts from a handful to tens of thousands.
var sizeBuckets = prometheus.ExponentialBuckets(1, 4, 9)

func (r *Registry) initAnalysisMetrics() {
	r.TrianglesFound = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "triangles_found",
			Help:      "Triangles matching the predicate per analysis",
			Buckets:   sizeBuckets,
		},
	)

	r.TriangleDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "triangle_duration_seconds",
			Help:      "Duration of triangle enumeration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	r.SearchesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "clique_searches_total",
			Help:      "Total number of maximal clique searches",
		},
		[]string{"driver", "status"}, // status: success, error
	)

	r.SearchDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "clique_search_duration_seconds",
			Help:      "Duration of maximal clique searches in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"driver"},
	)

	r.SearchesInFlight = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "clique_searches_in_flight",
			Help:      "Maximal clique searches currently running",
		},
	)

	r.MaximalCliquesFound = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "maximal_cliques_found",
			Help:      "Maximal cliques found per search",
			Buckets:   sizeBuckets,
		},
		[]string{"driver"},
	)

	r.LastSearchGraphNodes = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_search_graph_nodes",
			Help:      "Node count of the graph most recently searched",
		},
	)
}

func (r *Registry) initCacheMetrics() {
	r.CacheHitsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_hits_total",
			Help:      "Total number of cache hits",
		},
		[]string{"key_type"},
	)

	r.CacheMissesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_misses_total",
			Help:      "Total number of cache misses",
		},
		[]string{"key_type"},
	)

	r.CacheWritesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_writes_total",
			Help:      "Total number of cache writes",
		},
		[]string{"key_type"},
	)

	r.CacheWriteBytes = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "cache_write_bytes",
			Help:      "Size of cache entries written in bytes",
			Buckets:   prometheus.ExponentialBuckets(64, 4, 8),
		},
		[]string{"key_type"},
	)
}

func (r *Registry) initHTTPMetrics() {
	r.HTTPRequestsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	r.HTTPRequestDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
}
