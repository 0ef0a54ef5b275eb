// Package nodelink renders a tree as a Graphviz node-link diagram.
//
// [ToDOT] emits DOT with one node per tree node, labelled by value. Missing
// children become invisible placeholders so Graphviz keeps left children on
// the left. [RenderSVG] runs the embedded Graphviz engine (WASM, via
// goccy/go-graphviz), so no system install is needed for SVG; PDF and PNG go
// through render.ToPDF and render.ToPNG.
//
//	dot := nodelink.ToDOT(t, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
package nodelink
