// Package render draws a LAN network as a Graphviz node-link diagram.
//
// [ToDOT] emits an undirected DOT graph. Members of a highlighted clique
// (usually the largest one, the LAN party) are filled and the edges between
// them drawn bold; nodes whose name starts with a marked prefix get a double
// outline.
//
//	dot := render.ToDOT(g, render.Options{Highlight: largest, MarkPrefix: "t"})
//	svg, err := render.RenderSVG(ctx, dot)
//
// # Dependencies
//
// SVG rendering runs in-process through [github.com/goccy/go-graphviz].
// [ToPDF] and [ToPNG] shell out to rsvg-convert from librsvg.
package render
