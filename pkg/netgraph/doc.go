// Package netgraph provides the undirected adjacency model used by the
// clique analyzer.
//
// # Overview
//
// A network map is a list of connections between named computers. Each
// connection is undirected: "kh-tc" and "tc-kh" describe the same link. The
// [Graph] type stores the map as node → neighbor [Set], updating both sides
// on every insertion so the symmetry invariant always holds.
//
// # Basic Usage
//
//	g := netgraph.New()
//	g.AddEdge("kh", "tc")
//	g.AddEdge("qp", "kh")
//
//	g.AreConnected("tc", "kh") // true
//	g.Neighbors("kh")          // {tc, qp}
//	g.Neighbors("zz")          // {} (unknown nodes are not an error)
//
// Self-loops are rejected silently, and adding an edge twice has no effect.
//
// # Determinism
//
// [Graph.Nodes] and [Graph.Edges] return sorted results so that search loops
// built on top of them visit nodes in a stable order.
//
// # Concurrency
//
// Build the graph on one goroutine, then share it freely: all query methods
// are read-only.
package netgraph
