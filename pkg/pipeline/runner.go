package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/nbourre/lanparty/pkg/cache"
	"github.com/nbourre/lanparty/pkg/clique"
	"github.com/nbourre/lanparty/pkg/netgraph"
	"github.com/nbourre/lanparty/pkg/observability"
	"github.com/nbourre/lanparty/pkg/render"
)

// Key types reported to the cache hooks.
const (
	keyTypeReport   = "report"
	keyTypeArtifact = "artifact"
)

// Runner executes analyses and renders with caching.
//
// The Runner is stateless except for the cache and logger; multiple
// goroutines can safely share one Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
	TTL    time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
		TTL:    cache.DefaultTTL,
	}
}

// Close releases the cache backend.
func (r *Runner) Close() error {
	return r.Cache.Close()
}

// Analyze counts prefix triangles and finds the largest clique of g,
// reusing a cached report for the same graph and options when one exists.
func (r *Runner) Analyze(ctx context.Context, g *netgraph.Graph, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	start := time.Now()
	hash := GraphHash(g)
	key := r.Keyer.ReportKey(hash, opts.reportKeyOpts())

	if !opts.Refresh {
		if rep := r.cachedReport(ctx, key); rep != nil {
			r.Logger.Debug("report cache hit", "graph", hash[:12])
			return &Result{Report: rep, GraphHash: hash, CacheHit: true, Duration: time.Since(start)}, nil
		}
	}

	a := clique.NewAnalyzer(g, append(opts.analyzerOpts(), clique.WithLogger(r.Logger))...)
	rep, err := a.Analyze(ctx, opts.Prefix)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(rep); err == nil {
		r.store(ctx, keyTypeReport, key, data)
	}

	elapsed := time.Since(start)
	r.Logger.Info("analyzed network",
		"nodes", rep.Nodes,
		"edges", rep.Edges,
		"triangles", rep.TriangleCount,
		"largest", rep.LargestCliqueSize,
		"driver", rep.Driver,
		"duration", elapsed)

	return &Result{Report: rep, GraphHash: hash, Duration: elapsed}, nil
}

func (r *Runner) cachedReport(ctx context.Context, key string) *clique.Report {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "key", key, "err", err)
		return nil
	}
	if !hit {
		observability.Cache().OnCacheMiss(ctx, keyTypeReport)
		return nil
	}
	var rep clique.Report
	if err := cache.DecodeEntry(data, &rep); err != nil {
		r.Logger.Warn("evicting corrupt cache entry", "key", key, "err", err)
		if err := r.Cache.Delete(ctx, key); err != nil {
			r.Logger.Warn("cache delete failed", "key", key, "err", err)
		}
		observability.Cache().OnCacheMiss(ctx, keyTypeReport)
		return nil
	}
	observability.Cache().OnCacheHit(ctx, keyTypeReport)
	return &rep
}

func (r *Runner) store(ctx context.Context, keyType, key string, data []byte) {
	if err := r.Cache.Set(ctx, key, data, r.TTL); err != nil {
		r.Logger.Warn("cache write failed", "key", key, "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}

// Render draws g in the requested format and reports whether the bytes
// came from the cache.
func (r *Runner) Render(ctx context.Context, g *netgraph.Graph, opts RenderOptions) ([]byte, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}

	key := r.Keyer.ArtifactKey(GraphHash(g), opts.artifactKeyOpts())
	if !opts.Refresh {
		data, hit, err := r.Cache.Get(ctx, key)
		switch {
		case err != nil:
			r.Logger.Warn("cache read failed", "key", key, "err", err)
		case hit:
			observability.Cache().OnCacheHit(ctx, keyTypeArtifact)
			return data, true, nil
		default:
			observability.Cache().OnCacheMiss(ctx, keyTypeArtifact)
		}
	}

	start := time.Now()
	data, err := renderFormat(ctx, g, opts)
	if err != nil {
		return nil, false, fmt.Errorf("render %s: %w", opts.Format, err)
	}
	r.store(ctx, keyTypeArtifact, key, data)

	r.Logger.Info("rendered diagram",
		"format", opts.Format,
		"bytes", len(data),
		"duration", time.Since(start))

	return data, false, nil
}

func renderFormat(ctx context.Context, g *netgraph.Graph, opts RenderOptions) ([]byte, error) {
	dot := render.ToDOT(g, render.Options{
		Highlight:  opts.Highlight,
		MarkPrefix: opts.MarkPrefix,
		Title:      opts.Title,
	})
	if opts.Format == FormatDOT {
		return []byte(dot), nil
	}

	svg, err := render.RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	switch opts.Format {
	case FormatPDF:
		return render.ToPDF(svg)
	case FormatPNG:
		return render.ToPNG(svg, 2.0)
	}
	return svg, nil
}
