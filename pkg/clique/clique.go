package clique

import (
	"slices"
	"strings"

	"github.com/nbourre/lanparty/pkg/netgraph"
)

// Separator joins member identifiers in the canonical string form of a
// clique or triangle.
const Separator = ","

// Clique is a set of pairwise-connected nodes held in ascending order.
// The zero value is the empty clique.
type Clique []netgraph.Node

// NewClique returns the canonical (sorted, deduplicated) clique for nodes.
// The input slice is not modified.
func NewClique(nodes ...netgraph.Node) Clique {
	c := slices.Clone(nodes)
	slices.Sort(c)
	return Clique(slices.Compact(c))
}

// String returns the members joined by commas, e.g. "co,de,ka,ta".
// The empty clique renders as "".
func (c Clique) String() string { return strings.Join(c, Separator) }

// Len returns the number of members.
func (c Clique) Len() int { return len(c) }

// Contains reports whether n is a member.
func (c Clique) Contains(n netgraph.Node) bool {
	_, found := slices.BinarySearch(c, n)
	return found
}

// Triangle is a clique of exactly three nodes in ascending order.
type Triangle [3]netgraph.Node

// NewTriangle returns the canonical form of the triple, so that every
// traversal order of the same three nodes yields an identical value.
func NewTriangle(x, y, z netgraph.Node) Triangle {
	t := Triangle{x, y, z}
	slices.Sort(t[:])
	return t
}

// String returns the members joined by commas, e.g. "co,de,ta".
func (t Triangle) String() string { return strings.Join(t[:], Separator) }

// IsClique reports whether every pair of nodes is connected in g.
// Sets of zero or one node are trivially cliques.
func IsClique(g *netgraph.Graph, nodes []netgraph.Node) bool {
	for i := range nodes {
		for j := i + 1; j < len(nodes); j++ {
			if !g.AreConnected(nodes[i], nodes[j]) {
				return false
			}
		}
	}
	return true
}

// IsMaximal reports whether c is a clique in g that no other node of g can
// extend. Only common neighbors of the first member need to be checked.
func IsMaximal(g *netgraph.Graph, c Clique) bool {
	if !IsClique(g, c) {
		return false
	}
	if len(c) == 0 {
		return g.NodeCount() == 0
	}
	for cand := range g.Neighbors(c[0]) {
		if c.Contains(cand) {
			continue
		}
		extends := true
		for _, m := range c[1:] {
			if !g.AreConnected(cand, m) {
				extends = false
				break
			}
		}
		if extends {
			return false
		}
	}
	return true
}
