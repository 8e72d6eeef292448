package clique

import (
	"maps"
	"slices"
	"strings"

	"github.com/nbourre/lanparty/pkg/netgraph"
)

// Predicate filters candidate triangles. It receives the three members in
// discovery order, which is not canonical.
type Predicate func(x, y, z netgraph.Node) bool

// All accepts every triangle.
func All() Predicate {
	return func(_, _, _ netgraph.Node) bool { return true }
}

// AnyHasPrefix accepts triangles where at least one member's identifier
// starts with prefix. An empty prefix accepts everything.
func AnyHasPrefix(prefix string) Predicate {
	return func(x, y, z netgraph.Node) bool {
		return strings.HasPrefix(x, prefix) ||
			strings.HasPrefix(y, prefix) ||
			strings.HasPrefix(z, prefix)
	}
}

// Triangles returns every distinct triangle accepted by p, ordered by
// canonical string. A nil predicate accepts all triangles.
//
// The walk follows each length-2 path x→y→z and closes it when x and z are
// connected, so each triangle is discovered up to six times; keying the
// result by the canonical form keeps exactly one copy. Cost is bounded by
// the sum of squared degrees.
func (a *Analyzer) Triangles(p Predicate) []Triangle {
	if p == nil {
		p = All()
	}
	g := a.graph
	seen := make(map[string]Triangle)
	for _, x := range g.Nodes() {
		for y := range g.Neighbors(x) {
			for z := range g.Neighbors(y) {
				if !g.AreConnected(x, z) || !p(x, y, z) {
					continue
				}
				t := NewTriangle(x, y, z)
				seen[t.String()] = t
			}
		}
	}

	out := make([]Triangle, 0, len(seen))
	for _, key := range slices.Sorted(maps.Keys(seen)) {
		out = append(out, seen[key])
	}
	return out
}

// CountTriangles returns the number of distinct triangles accepted by p.
func (a *Analyzer) CountTriangles(p Predicate) int {
	return len(a.Triangles(p))
}
