package clique

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/charmbracelet/log"

	"github.com/nbourre/lanparty/pkg/netgraph"
	"github.com/nbourre/lanparty/pkg/observability"
)

// Driver selects how the Bron–Kerbosch recursion is seeded.
type Driver string

const (
	// DriverPerNode starts one search per node v with R = {v}, P = N(v).
	// It repeats work across overlapping neighborhoods but parallelizes
	// naturally, one seed per task.
	DriverPerNode Driver = "per-node"

	// DriverSingle makes a single top-level call with R = ∅, P = all nodes.
	DriverSingle Driver = "single"
)

// ErrUnknownDriver is returned by [ParseDriver] for an unrecognized name.
var ErrUnknownDriver = errors.New("unknown driver")

// ParseDriver converts a driver name to a [Driver]. The empty string selects
// [DriverPerNode].
func ParseDriver(s string) (Driver, error) {
	switch Driver(s) {
	case "", DriverPerNode:
		return DriverPerNode, nil
	case DriverSingle:
		return DriverSingle, nil
	}
	return "", fmt.Errorf("%w: %q (must be %q or %q)", ErrUnknownDriver, s, DriverPerNode, DriverSingle)
}

// Analyzer runs triangle and clique queries over an immutable graph.
//
// An Analyzer holds no mutable state of its own; concurrent queries on the
// same Analyzer are safe as long as nobody mutates the graph.
type Analyzer struct {
	graph   *netgraph.Graph
	driver  Driver
	workers int
	logger  *log.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithDriver sets the search driver. Default: DriverPerNode.
func WithDriver(d Driver) Option {
	return func(a *Analyzer) {
		if d != "" {
			a.driver = d
		}
	}
}

// WithWorkers sets the number of goroutines used by the per-node driver.
// Values below 1 are treated as 1. Default: GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(a *Analyzer) {
		a.workers = max(1, n)
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *log.Logger) Option {
	return func(a *Analyzer) {
		if l != nil {
			a.logger = l
		}
	}
}

// NewAnalyzer creates an analyzer over g. The graph must not be modified
// while the analyzer is in use.
func NewAnalyzer(g *netgraph.Graph, opts ...Option) *Analyzer {
	a := &Analyzer{
		graph:   g,
		driver:  DriverPerNode,
		workers: runtime.GOMAXPROCS(0),
		logger:  log.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Graph returns the analyzed graph.
func (a *Analyzer) Graph() *netgraph.Graph { return a.graph }

// Driver returns the configured search driver.
func (a *Analyzer) Driver() Driver { return a.driver }

// MaximalCliques enumerates every maximal clique of the graph, ordered by
// size descending and then by canonical string. Both drivers produce the
// same result. An empty graph yields an empty slice.
//
// The context is only checked between per-node seeds; a single seed always
// runs to completion.
func (a *Analyzer) MaximalCliques(ctx context.Context) ([]Clique, error) {
	hooks := observability.Analysis()
	hooks.OnSearchStart(ctx, string(a.driver), a.graph.NodeCount())
	start := time.Now()

	var (
		found cliqueSet
		err   error
	)
	switch a.driver {
	case DriverSingle:
		found, err = a.searchSingle(ctx)
	case DriverPerNode:
		found, err = a.searchPerNode(ctx)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownDriver, a.driver)
	}

	elapsed := time.Since(start)
	hooks.OnSearchComplete(ctx, string(a.driver), len(found), elapsed, err)
	if err != nil {
		return nil, err
	}

	a.logger.Debug("enumerated maximal cliques",
		"driver", a.driver,
		"workers", a.workers,
		"cliques", len(found),
		"duration", elapsed)

	return sortCliques(found), nil
}

// Largest returns the maximal clique with the most members. Ties go to the
// lexicographically smallest canonical string. An empty graph yields an
// empty clique and no error.
func (a *Analyzer) Largest(ctx context.Context) (Clique, error) {
	all, err := a.MaximalCliques(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return Clique{}, nil
	}
	return all[0], nil
}

// Password returns the largest clique in its reporting form: members sorted
// and joined by commas. An empty graph yields "".
func (a *Analyzer) Password(ctx context.Context) (string, error) {
	c, err := a.Largest(ctx)
	if err != nil {
		return "", err
	}
	return c.String(), nil
}

// Report is the serialized result of a full analysis.
type Report struct {
	Prefix             string   `json:"prefix"`
	TriangleCount      int      `json:"triangle_count"`
	Triangles          []string `json:"triangles"`
	LargestClique      string   `json:"largest_clique"`
	LargestCliqueSize  int      `json:"largest_clique_size"`
	MaximalCliqueCount int      `json:"maximal_clique_count"`
	Nodes              int      `json:"nodes"`
	Edges              int      `json:"edges"`
	Driver             string   `json:"driver"`
}

// Analyze runs both queries: triangles where some member starts with prefix,
// and the maximal-clique search.
func (a *Analyzer) Analyze(ctx context.Context, prefix string) (*Report, error) {
	start := time.Now()
	triangles := a.Triangles(AnyHasPrefix(prefix))
	observability.Analysis().OnTrianglesComplete(ctx, len(triangles), time.Since(start))

	cliques, err := a.MaximalCliques(ctx)
	if err != nil {
		return nil, fmt.Errorf("maximal cliques: %w", err)
	}

	r := &Report{
		Prefix:             prefix,
		TriangleCount:      len(triangles),
		Triangles:          make([]string, len(triangles)),
		MaximalCliqueCount: len(cliques),
		Nodes:              a.graph.NodeCount(),
		Edges:              a.graph.EdgeCount(),
		Driver:             string(a.driver),
	}
	for i, t := range triangles {
		r.Triangles[i] = t.String()
	}
	if len(cliques) > 0 {
		r.LargestClique = cliques[0].String()
		r.LargestCliqueSize = cliques[0].Len()
	}
	return r, nil
}
