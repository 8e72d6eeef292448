package netgraph

import (
	"maps"
	"slices"
	"strings"
)

// Node identifies a computer in the network. Identity is value equality.
type Node = string

// Set is an unordered collection of distinct nodes.
type Set map[Node]struct{}

// NewSet returns a set holding the given nodes.
func NewSet(nodes ...Node) Set {
	s := make(Set, len(nodes))
	for _, n := range nodes {
		s[n] = struct{}{}
	}
	return s
}

// Add inserts n and reports whether it was not already present.
func (s Set) Add(n Node) bool {
	if _, ok := s[n]; ok {
		return false
	}
	s[n] = struct{}{}
	return true
}

// Remove deletes n from the set. Removing an absent node is a no-op.
func (s Set) Remove(n Node) { delete(s, n) }

// Has reports whether n is a member of the set.
func (s Set) Has(n Node) bool {
	_, ok := s[n]
	return ok
}

// Len returns the number of members.
func (s Set) Len() int { return len(s) }

// Clone returns an independent copy of the set. Cloning a nil set yields an empty set.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for n := range s {
		out[n] = struct{}{}
	}
	return out
}

// Intersect returns a new set holding the members present in both s and other.
// It iterates over the smaller of the two sets.
func (s Set) Intersect(other Set) Set {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	out := make(Set, len(small))
	for n := range small {
		if _, ok := large[n]; ok {
			out[n] = struct{}{}
		}
	}
	return out
}

// Sorted returns the members in ascending order.
func (s Set) Sorted() []Node {
	return slices.Sorted(maps.Keys(s))
}

// String renders the set as its sorted members joined by commas.
func (s Set) String() string {
	return strings.Join(s.Sorted(), ",")
}

// Graph is an undirected, unweighted graph stored as a map from each node to
// the set of its neighbors.
//
// The adjacency structure maintains these invariants:
//   - no node is a member of its own neighbor set
//   - v ∈ adj[u] if and only if u ∈ adj[v]
//   - every node touched by an edge has an entry, even if its set were empty
//
// The zero value is not usable - use New. A Graph is built once and then
// queried; it is safe for concurrent reads after construction but not for
// concurrent writes.
type Graph struct {
	adj   map[Node]Set
	edges int
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{adj: make(map[Node]Set)}
}

// AddEdge connects u and v in both directions, creating entries for either
// node if needed. Self-loops and empty identifiers are silently ignored.
// It reports whether a new edge was inserted; adding an existing edge again
// returns false and leaves the graph unchanged.
func (g *Graph) AddEdge(u, v Node) bool {
	if u == v || u == "" || v == "" {
		return false
	}
	g.ensure(u)
	g.ensure(v)
	if !g.adj[u].Add(v) {
		return false
	}
	g.adj[v].Add(u)
	g.edges++
	return true
}

// AddNode registers n without any edges. It is a no-op for an empty
// identifier or an existing node.
func (g *Graph) AddNode(n Node) {
	if n == "" {
		return
	}
	g.ensure(n)
}

func (g *Graph) ensure(n Node) {
	if _, ok := g.adj[n]; !ok {
		g.adj[n] = make(Set)
	}
}

// Neighbors returns the set of nodes adjacent to u. For an unknown node it
// returns an empty set rather than nil, so callers may iterate blindly.
// The returned set belongs to the graph and must not be modified.
func (g *Graph) Neighbors(u Node) Set {
	if s, ok := g.adj[u]; ok {
		return s
	}
	return Set{}
}

// Nodes returns every node known to the graph in ascending order.
func (g *Graph) Nodes() []Node {
	return slices.Sorted(maps.Keys(g.adj))
}

// AreConnected reports whether an edge joins u and v.
func (g *Graph) AreConnected(u, v Node) bool {
	return g.adj[u].Has(v)
}

// HasNode reports whether n appears in the graph.
func (g *Graph) HasNode(n Node) bool {
	_, ok := g.adj[n]
	return ok
}

// Degree returns the number of neighbors of n, or 0 for an unknown node.
func (g *Graph) Degree(n Node) int { return len(g.adj[n]) }

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.adj) }

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int { return g.edges }

// Edges returns each undirected edge once as an ordered pair with the smaller
// identifier first. Pairs are sorted lexicographically.
func (g *Graph) Edges() [][2]Node {
	out := make([][2]Node, 0, g.edges)
	for u, nbrs := range g.adj {
		for v := range nbrs {
			if u < v {
				out = append(out, [2]Node{u, v})
			}
		}
	}
	slices.SortFunc(out, func(a, b [2]Node) int {
		if c := strings.Compare(a[0], b[0]); c != 0 {
			return c
		}
		return strings.Compare(a[1], b[1])
	})
	return out
}
