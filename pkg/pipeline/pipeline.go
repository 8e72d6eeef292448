// Package pipeline runs the load → analyze → render flow with caching.
//
// Both the CLI and the HTTP API go through a [Runner], so the two entry
// points share cache keys, logging, and defaults.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	g, err := pkgio.ImportEdges("network.txt")
//	res, err := runner.Analyze(ctx, g, pipeline.Options{Prefix: "t"})
//	fmt.Println(res.Report.TriangleCount, res.Report.LargestClique)
//
// Render a diagram with the largest clique highlighted:
//
//	svg, _, err := runner.Render(ctx, g, pipeline.RenderOptions{
//	    Format:    pipeline.FormatSVG,
//	    Highlight: strings.Split(res.Report.LargestClique, ","),
//	})
//
// Cache failures never fail a run; they are logged at warn level and the
// result is computed fresh.
package pipeline

import (
	"bytes"
	"slices"
	"time"

	"github.com/nbourre/lanparty/pkg/cache"
	"github.com/nbourre/lanparty/pkg/clique"
	"github.com/nbourre/lanparty/pkg/errors"
	pkgio "github.com/nbourre/lanparty/pkg/io"
	"github.com/nbourre/lanparty/pkg/netgraph"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultPrefix selects triangles with a member whose name starts with "t".
	DefaultPrefix = "t"

	// DefaultFormat is the diagram format used when none is given.
	DefaultFormat = FormatSVG
)

// Diagram formats.
const (
	FormatDOT = "dot"
	FormatSVG = "svg"
	FormatPDF = "pdf"
	FormatPNG = "png"
)

// ValidFormats lists every format accepted by [Runner.Render].
var ValidFormats = []string{FormatDOT, FormatSVG, FormatPDF, FormatPNG}

// ValidateFormat reports whether format is one of [ValidFormats].
// Matching is case-sensitive.
func ValidateFormat(format string) error {
	if !slices.Contains(ValidFormats, format) {
		return errors.New(errors.ErrCodeInvalidFormat, "format must be one of %v, got %q", ValidFormats, format)
	}
	return nil
}

// =============================================================================
// Options
// =============================================================================

// Options configures an analysis run.
type Options struct {
	// Prefix selects triangles with at least one member starting with it.
	// Empty matches every triangle.
	Prefix string

	// Driver seeds the clique search. Empty means per-node.
	Driver clique.Driver

	// Workers bounds the per-node driver's goroutines. Zero means one per CPU.
	Workers int

	// Refresh skips the cache lookup. The fresh result is still stored.
	Refresh bool
}

// ValidateAndSetDefaults checks opts and fills in the driver.
func (o *Options) ValidateAndSetDefaults() error {
	d, err := clique.ParseDriver(string(o.Driver))
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidDriver, err, "driver")
	}
	o.Driver = d
	if o.Workers < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "workers must not be negative, got %d", o.Workers)
	}
	return nil
}

func (o Options) reportKeyOpts() cache.ReportKeyOpts {
	return cache.ReportKeyOpts{Prefix: o.Prefix, Driver: string(o.Driver)}
}

func (o Options) analyzerOpts() []clique.Option {
	opts := []clique.Option{clique.WithDriver(o.Driver)}
	if o.Workers > 0 {
		opts = append(opts, clique.WithWorkers(o.Workers))
	}
	return opts
}

// RenderOptions configures a diagram.
type RenderOptions struct {
	Format     string
	Highlight  []netgraph.Node
	MarkPrefix string
	Title      string
	Refresh    bool
}

// ValidateAndSetDefaults checks the format, defaulting it to SVG.
func (o *RenderOptions) ValidateAndSetDefaults() error {
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	return ValidateFormat(o.Format)
}

func (o RenderOptions) artifactKeyOpts() cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:     o.Format,
		Highlight:  clique.NewClique(o.Highlight...).String(),
		MarkPrefix: o.MarkPrefix,
		Title:      o.Title,
	}
}

// =============================================================================
// Results
// =============================================================================

// Result is the outcome of [Runner.Analyze].
type Result struct {
	Report    *clique.Report
	GraphHash string
	CacheHit  bool
	Duration  time.Duration
}

// GraphHash returns the SHA-256 of the canonical edge list of g. Graphs
// with the same edges hash the same regardless of input order.
func GraphHash(g *netgraph.Graph) string {
	var buf bytes.Buffer
	_ = pkgio.WriteEdges(g, &buf)
	return cache.Hash(buf.Bytes())
}
