// Package clique finds triangles and maximal cliques in an undirected graph.
//
// # Overview
//
// Given a network map built with pkg/netgraph, an [Analyzer] answers two
// questions:
//
//   - Which sets of three computers are all connected to each other? See
//     [Analyzer.Triangles], optionally filtered by a [Predicate] such as
//     [AnyHasPrefix].
//   - What is the largest set of computers that are all connected to each
//     other? See [Analyzer.Largest] and [Analyzer.Password].
//
// # Bron–Kerbosch
//
// Maximal cliques are enumerated with the Bron–Kerbosch backtracking search
// (no pivoting). Each call carries three sets: R, the clique under
// construction; P, the candidates adjacent to all of R; and X, the nodes
// already explored. When P and X are both empty, R is maximal.
//
// Two drivers seed the recursion:
//
//   - [DriverPerNode] starts one search per node v with R = {v}, P = N(v).
//     Seeds are independent and run on a bounded errgroup.
//   - [DriverSingle] starts one search with R = ∅, P = all nodes.
//
// Both produce the same set of maximal cliques. The per-node driver repeats
// work across overlapping neighborhoods but is the one that parallelizes.
//
// # Determinism
//
// Cliques and triangles are canonicalized by sorting their members, and the
// largest clique is tie-broken on the lexicographically smallest canonical
// string, so repeated runs on the same graph return identical results.
//
// # Example
//
//	a := clique.NewAnalyzer(g)
//	n := a.CountTriangles(clique.AnyHasPrefix("t")) // 7
//	pw, _ := a.Password(ctx)                        // "co,de,ka,ta"
package clique
