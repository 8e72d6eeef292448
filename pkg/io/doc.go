// Package io reads network maps and writes analysis results.
//
// # Edge List Format
//
// A network map is plain text with one undirected connection per line:
//
//	kh-tc
//	qp-kh
//	de-cg
//
// Use [ReadEdges] for any reader or [ImportEdges] for a file path. Blank
// lines are skipped; malformed lines fail with an INVALID_EDGE error that
// names the line number.
//
// [WriteEdges] emits the canonical form of a graph (each edge once, smaller
// identifier first, sorted), which pkg/pipeline hashes for cache keys.
//
// # Report Format
//
// [WriteReport] serializes a clique.Report:
//
//	{
//	  "prefix": "t",
//	  "triangle_count": 7,
//	  "triangles": ["co,de,ta", "..."],
//	  "largest_clique": "co,de,ka,ta",
//	  "largest_clique_size": 4,
//	  "nodes": 16,
//	  "edges": 32,
//	  "driver": "per-node"
//	}
package io
