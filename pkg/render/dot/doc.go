// Package dot exports graphs as Graphviz DOT and renders them to SVG or PDF.
//
// Vertices keep their model positions: each node is pinned with pos="x,y!"
// and laid out with neato, so the exported picture matches the canvas. The
// model's y axis points down and is flipped for Graphviz.
//
//	src := dot.ToDOT(g.Vertices(), dot.Options{})
//	svg, err := dot.RenderSVG(ctx, src)
package dot
