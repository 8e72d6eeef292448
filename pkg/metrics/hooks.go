package metrics

import (
	"context"
	"strconv"
	"time"

	"github.com/nbourre/lanparty/pkg/observability"
)

func (r *Registry) OnTrianglesComplete(_ context.Context, count int, duration time.Duration) {
	r.TrianglesFound.Observe(float64(count))
	r.TriangleDuration.Observe(duration.Seconds())
}

func (r *Registry) OnSearchStart(_ context.Context, _ string, nodeCount int) {
	r.SearchesInFlight.Inc()
	r.LastSearchGraphNodes.Set(float64(nodeCount))
}

func (r *Registry) OnSearchComplete(_ context.Context, driver string, cliqueCount int, duration time.Duration, err error) {
	r.SearchesInFlight.Dec()
	r.SearchDuration.WithLabelValues(driver).Observe(duration.Seconds())
	if err != nil {
		r.SearchesTotal.WithLabelValues(driver, "error").Inc()
		return
	}
	r.SearchesTotal.WithLabelValues(driver, "success").Inc()
	r.MaximalCliquesFound.WithLabelValues(driver).Observe(float64(cliqueCount))
}

func (r *Registry) OnCacheHit(_ context.Context, keyType string) {
	r.CacheHitsTotal.WithLabelValues(keyType).Inc()
}

func (r *Registry) OnCacheMiss(_ context.Context, keyType string) {
	r.CacheMissesTotal.WithLabelValues(keyType).Inc()
}

func (r *Registry) OnCacheSet(_ context.Context, keyType string, size int) {
	r.CacheWritesTotal.WithLabelValues(keyType).Inc()
	r.CacheWriteBytes.WithLabelValues(keyType).Observe(float64(size))
}

// OnRequest records a served request. route should be the matched pattern,
// not the raw path, to keep label cardinality bounded.
func (r *Registry) OnRequest(_ context.Context, method, route string, statusCode int, duration time.Duration) {
	r.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(statusCode)).Inc()
	r.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// Register installs r as the analysis, cache, and HTTP hooks.
func (r *Registry) Register() {
	observability.SetAnalysisHooks(r)
	observability.SetCacheHooks(r)
	observability.SetHTTPHooks(r)
}

var (
	_ observability.AnalysisHooks = (*Registry)(nil)
	_ observability.CacheHooks    = (*Registry)(nil)
	_ observability.HTTPHooks     = (*Registry)(nil)
)
