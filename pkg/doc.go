// Package pkg provides the core libraries for lanparty network analysis.
//
// # Overview
//
// lanparty reads a map of computers and their direct connections, finds
// groups of three that are all connected to each other, and finds the
// largest fully connected group (the LAN party). The pkg directory is
// organized into three areas:
//
//  1. Domain logic: [netgraph] and [clique]
//  2. Plumbing: [io], [pipeline], [render] and [api]
//  3. Infrastructure: [cache], [config], [errors], [metrics], [observability]
//     and [buildinfo]
//
// # Architecture
//
// The typical data flow:
//
//	edge list ("kh-tc" per line)
//	         ↓
//	    [io] package (parse into a graph)
//	         ↓
//	    [clique] package (triangles + Bron–Kerbosch)
//	         ↓
//	    [pipeline] package (cache, hooks, render)
//	         ↓
//	    text/JSON report, DOT/SVG/PDF/PNG diagram
//
// # Quick Start
//
//	g, _ := io.ImportEdges("input.txt")
//	a := clique.NewAnalyzer(g, clique.WithDriver(clique.DriverPerNode))
//
//	// Part 1: triangles with a member starting with "t"
//	n := a.CountTriangles(clique.AnyHasPrefix("t"))
//
//	// Part 2: the password
//	pw, _ := a.Password(ctx)
//
// # Main Packages
//
// [netgraph] - Undirected graph keyed by computer name with set-based
// adjacency.
//
// [clique] - Triangle enumeration and maximal clique search. The per-node
// driver seeds one search per computer and runs them in parallel; the single
// driver runs one search over the whole graph. Both produce the same result.
//
// [pipeline] - Analysis and rendering with caching, shared by the CLI and
// the HTTP API.
//
// [render] - Graphviz DOT output with the LAN party highlighted, converted to
// SVG in-process and to PDF/PNG via rsvg-convert.
//
// [api] - chi-based HTTP service exposing analyze and render endpoints.
//
// [cache] - File, Redis and no-op result caches with hashed keys.
//
// # Testing
//
//	go test ./...                        # All tests
//	go test -tags integration ./pkg/...  # Include Redis tests (LANPARTY_REDIS_ADDR)
//
// [netgraph]: https://pkg.go.dev/github.com/nbourre/lanparty/pkg/netgraph
// [clique]: https://pkg.go.dev/github.com/nbourre/lanparty/pkg/clique
// [io]: https://pkg.go.dev/github.com/nbourre/lanparty/pkg/io
// [pipeline]: https://pkg.go.dev/github.com/nbourre/lanparty/pkg/pipeline
// [render]: https://pkg.go.dev/github.com/nbourre/lanparty/pkg/render
// [api]: https://pkg.go.dev/github.com/nbourre/lanparty/pkg/api
// [cache]: https://pkg.go.dev/github.com/nbourre/lanparty/pkg/cache
// [config]: https://pkg.go.dev/github.com/nbourre/lanparty/pkg/config
// [errors]: https://pkg.go.dev/github.com/nbourre/lanparty/pkg/errors
// [metrics]: https://pkg.go.dev/github.com/nbourre/lanparty/pkg/metrics
// [observability]: https://pkg.go.dev/github.com/nbourre/lanparty/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/nbourre/lanparty/pkg/buildinfo
package pkg
