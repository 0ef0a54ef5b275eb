package render

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

// Palette, matching the desktop visualizer.
const (
	colorNode    = "#ff9664"
	colorFrame   = "#6496ff"
	colorTop     = "#d62828"
	colorPointer = "#2a9d3a"
	colorInk     = "#000000"
)

// SVGOption configures RenderSVG.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	showStack   bool
	showPointer bool
	title       string
}

// WithoutStack omits the stack column.
func WithoutStack() SVGOption { return func(r *svgRenderer) { r.showStack = false } }

// WithoutPointer omits the line from the top frame to its node.
func WithoutPointer() SVGOption { return func(r *svgRenderer) { r.showPointer = false } }

// WithTitle sets the SVG <title>.
func WithTitle(s string) SVGOption { return func(r *svgRenderer) { r.title = s } }

// RenderSVG draws the scene as a standalone SVG document.
func RenderSVG(sc Scene, opts ...SVGOption) []byte {
	r := svgRenderer{showStack: true, showPointer: true}
	for _, opt := range opts {
		opt(&r)
	}

	b := sc.Bounds
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%.1f %.1f %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		b.MinX, b.MinY, b.Width(), b.Height(), b.Width(), b.Height())
	if r.title != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", escapeXML(r.title))
	}

	if sc.EmptyTree() {
		renderPlaceholder(&buf, sc.TreeLabel()+" is empty", 0, 0)
	}
	for _, e := range sc.Edges {
		fmt.Fprintf(&buf, `  <line class="edge" x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="2"/>`+"\n",
			e.X1, e.Y1, e.X2, e.Y2, colorInk)
	}
	for _, n := range sc.Nodes {
		renderNode(&buf, n)
	}

	if r.showStack {
		renderStack(&buf, sc, r.showPointer)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderNode(buf *bytes.Buffer, n NodeShape) {
	stroke := colorInk
	if n.Top {
		stroke = colorPointer
	}
	fmt.Fprintf(buf, `  <circle class="node" id="node-%d" cx="%.1f" cy="%.1f" r="%.1f" fill="%s" stroke="%s" stroke-width="2"/>`+"\n",
		n.Handle, n.X, n.Y, n.R, colorNode, stroke)
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" dominant-baseline="central" font-family="Arial" font-size="16" font-weight="bold">%d</text>`+"\n",
		n.X, n.Y, n.Value)
}

func renderStack(buf *bytes.Buffer, sc Scene, pointer bool) {
	if sc.EmptyStack() {
		x := sc.Bounds.MinX + Margin + FrameWidth/2
		renderPlaceholder(buf, "Stack is empty", x, sc.Bounds.MinY+Margin+FrameHeight/2)
		return
	}
	if pointer && sc.Pointer != nil {
		p := sc.Pointer
		fmt.Fprintf(buf, `  <line class="pointer" x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="2"/>`+"\n",
			p.X1, p.Y1, p.X2, p.Y2, colorPointer)
	}
	for _, f := range sc.Frames {
		fmt.Fprintf(buf, `  <rect class="frame" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="%s" stroke-width="2"/>`+"\n",
			f.X, f.Y, f.W, f.H, colorFrame, colorInk)
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" dominant-baseline="central" font-family="Arial" font-size="18" font-weight="bold" fill="#ffffff">%d</text>`+"\n",
			f.CenterX(), f.CenterY(), f.Value)
	}
	top := sc.Frames[0]
	fmt.Fprintf(buf, `  <text class="top" x="%.1f" y="%.1f" font-family="Arial" font-size="14" font-weight="bold" fill="%s">&#8592; TOP</text>`+"\n",
		top.X+top.W+10, top.CenterY(), colorTop)
}

func renderPlaceholder(buf *bytes.Buffer, text string, x, y float64) {
	fmt.Fprintf(buf, `  <text class="placeholder" x="%.1f" y="%.1f" text-anchor="middle" font-family="Arial" font-size="14" fill="#666666">%s</text>`+"\n",
		x, y, escapeXML(text))
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
