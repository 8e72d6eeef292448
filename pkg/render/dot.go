package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/nbourre/lanparty/pkg/netgraph"
)

// Colors used for the highlighted clique.
const (
	HighlightFill = "#ffd8a8"
	HighlightLine = "#d9480f"
)

// Options configures diagram generation.
type Options struct {
	// Highlight lists the nodes to emphasize. Edges with both endpoints in
	// Highlight are drawn bold.
	Highlight []netgraph.Node

	// MarkPrefix draws nodes whose name starts with it with a double outline.
	// Empty disables marking.
	MarkPrefix string

	// Title is shown above the diagram when set.
	Title string
}

// ToDOT converts g to Graphviz DOT source. Nodes and edges are emitted in
// sorted order, so equal graphs give identical output.
func ToDOT(g *netgraph.Graph, opts Options) string {
	hl := netgraph.NewSet(opts.Highlight...)

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14, fontname=\"Helvetica\"];\n")
	buf.WriteString("  edge [color=\"#868e96\"];\n")
	if opts.Title != "" {
		fmt.Fprintf(&buf, "  label=%q;\n  labelloc=t;\n", opts.Title)
	}
	buf.WriteString("\n")

	for _, n := range g.Nodes() {
		attrs := nodeAttrs(n, hl.Has(n), opts.MarkPrefix)
		if len(attrs) == 0 {
			fmt.Fprintf(&buf, "  %q;\n", n)
			continue
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", n, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		if hl.Has(e[0]) && hl.Has(e[1]) {
			fmt.Fprintf(&buf, "  %q -- %q [color=%q, penwidth=3];\n", e[0], e[1], HighlightLine)
			continue
		}
		fmt.Fprintf(&buf, "  %q -- %q;\n", e[0], e[1])
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(n netgraph.Node, highlighted bool, prefix string) []string {
	var attrs []string
	if highlighted {
		attrs = append(attrs, fmt.Sprintf("fillcolor=%q", HighlightFill), fmt.Sprintf("color=%q", HighlightLine), "penwidth=2")
	}
	if prefix != "" && strings.HasPrefix(n, prefix) {
		attrs = append(attrs, "shape=doublecircle")
	}
	return attrs
}
