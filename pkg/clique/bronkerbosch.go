package clique

import (
	"cmp"
	"context"
	"maps"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/nbourre/lanparty/pkg/netgraph"
)

// cliqueSet accumulates maximal cliques keyed by canonical string.
type cliqueSet map[string]Clique

func (s cliqueSet) add(r []netgraph.Node) {
	c := NewClique(r...)
	s[c.String()] = c
}

// expand is the Bron–Kerbosch recursion without pivoting.
//
// r holds the committed members, p the candidates that are adjacent to every
// node of r, and x the nodes already explored from this branch. p and x are
// owned by the call and are mutated as the loop advances; r is never mutated.
// The empty set is never recorded, so an empty graph yields no cliques.
func (a *Analyzer) expand(r []netgraph.Node, p, x netgraph.Set, out cliqueSet) {
	if p.Len() == 0 && x.Len() == 0 {
		if len(r) > 0 {
			out.add(r)
		}
		return
	}

	// Iterate a sorted snapshot: p shrinks as candidates move to x.
	for _, v := range p.Sorted() {
		nbrs := a.graph.Neighbors(v)
		next := append(slices.Clip(r), v)
		a.expand(next, p.Intersect(nbrs), x.Intersect(nbrs), out)
		p.Remove(v)
		x.Add(v)
	}
}

// searchSingle runs the textbook formulation: one call with R = ∅,
// P = all nodes and X = ∅.
func (a *Analyzer) searchSingle(ctx context.Context) (cliqueSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make(cliqueSet)
	a.expand(nil, netgraph.NewSet(a.graph.Nodes()...), netgraph.Set{}, out)
	return out, nil
}

// searchPerNode seeds one search per node v with R = {v}, P = N(v) and X = ∅.
// Overlapping neighborhoods rediscover the same cliques; deduplication in the
// result set makes the output identical to searchSingle.
//
// Seeds are striped across a.workers goroutines. Each worker owns its result
// set and the sets are merged after Wait, so the search itself takes no locks.
func (a *Analyzer) searchPerNode(ctx context.Context) (cliqueSet, error) {
	nodes := a.graph.Nodes()
	workers := max(1, min(a.workers, len(nodes)))
	partial := make([]cliqueSet, workers)

	g, gctx := errgroup.WithContext(ctx)
	for w := range workers {
		g.Go(func() error {
			out := make(cliqueSet)
			for i := w; i < len(nodes); i += workers {
				if err := gctx.Err(); err != nil {
					return err
				}
				v := nodes[i]
				a.expand([]netgraph.Node{v}, a.graph.Neighbors(v).Clone(), netgraph.Set{}, out)
			}
			partial[w] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := make(cliqueSet)
	for _, part := range partial {
		maps.Copy(merged, part)
	}
	return merged, nil
}

// sortCliques orders cliques by size descending, then by canonical string.
// The first element is therefore the deterministic tie-broken largest clique.
func sortCliques(s cliqueSet) []Clique {
	out := slices.Collect(maps.Values(s))
	slices.SortFunc(out, func(a, b Clique) int {
		if c := cmp.Compare(len(b), len(a)); c != 0 {
			return c
		}
		return strings.Compare(a.String(), b.String())
	})
	return out
}
