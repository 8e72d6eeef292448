package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/nbourre/lanparty/pkg/clique"
	"github.com/nbourre/lanparty/pkg/netgraph"
)

// WriteReport encodes an analysis report as indented JSON and writes it to w.
func WriteReport(rep *clique.Report, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportReport writes a report to a JSON file at path.
// This is a convenience wrapper around [WriteReport] for file-based output.
func ExportReport(rep *clique.Report, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteReport(rep, f)
}

// WriteEdges writes g back out as an edge list, one "A-B" line per edge in
// sorted order. The output is canonical: two graphs with the same edges
// produce byte-identical output regardless of insertion order, which makes
// it suitable as cache-key input.
func WriteEdges(g *netgraph.Graph, w io.Writer) error {
	for _, e := range g.Edges() {
		if _, err := fmt.Fprintf(w, "%s%s%s\n", e[0], EdgeSeparator, e[1]); err != nil {
			return err
		}
	}
	return nil
}
