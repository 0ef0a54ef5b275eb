// Package render turns a stack/tree snapshot into visual output.
//
// # Overview
//
// [NewScene] combines the tree layout with the stack frames into one
// [Scene] in scene coordinates. Sinks then serialize it:
//
//   - [RenderSVG]: standalone SVG (nodes, edges, stack frames, top pointer)
//   - [RenderJSON]: the scene as JSON for other tools
//   - [RenderText]: a character canvas for the terminal UI
//
// # Format Conversion
//
// [ToPDF] and [ToPNG] convert any SVG to other formats using the external
// rsvg-convert tool (from librsvg).
//
//	svg := render.RenderSVG(scene)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0)
//
// # Node-Link Diagrams
//
// The [nodelink] subpackage emits the tree as Graphviz DOT and renders it
// with the embedded Graphviz engine instead of the layout package.
package render
