package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/treestack/pkg/render"
	"github.com/matzehuels/treestack/pkg/tree"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds the node handle and cached height to each label.
	Detailed bool

	// Highlight outlines this node, typically the one the top stack frame
	// references.
	Highlight tree.Handle
}

// ToDOT converts a tree to Graphviz DOT format.
func ToDOT(t tree.Tree, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=\"#ff9664\", fontname=\"Arial\", fontsize=16];\n")
	buf.WriteString("  edge [arrowhead=none, penwidth=2];\n")
	buf.WriteString("  ordering=out;\n")
	buf.WriteString("\n")

	var edges []string
	t.Walk(func(h tree.Handle, n tree.Node) bool {
		fmt.Fprintf(&buf, "  %s [%s];\n", nodeID(h), strings.Join(fmtAttrs(h, n, opts), ", "))
		if n.IsLeaf() {
			return true
		}
		for i, c := range [2]tree.Handle{n.Left, n.Right} {
			if c != tree.NoHandle {
				edges = append(edges, fmt.Sprintf("  %s -> %s;", nodeID(h), nodeID(c)))
				continue
			}
			ph := fmt.Sprintf("%s_%d", nodeID(h), i)
			fmt.Fprintf(&buf, "  %s [label=\"\", style=invis, width=0.1];\n", ph)
			edges = append(edges, fmt.Sprintf("  %s -> %s [style=invis];", nodeID(h), ph))
		}
		return true
	})

	buf.WriteString("\n")
	for _, e := range edges {
		buf.WriteString(e)
		buf.WriteByte('\n')
	}
	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(h tree.Handle) string { return "n" + strconv.Itoa(int(h)) }

func fmtLabel(h tree.Handle, n tree.Node, detailed bool) string {
	if !detailed {
		return strconv.Itoa(n.Value)
	}
	return fmt.Sprintf("%d\nid: %d\nh: %d", n.Value, h, n.Height)
}

func fmtAttrs(h tree.Handle, n tree.Node, opts Options) []string {
	attrs := []string{fmt.Sprintf("label=%q", fmtLabel(h, n, opts.Detailed))}
	if opts.Highlight != tree.NoHandle && h == opts.Highlight {
		attrs = append(attrs, "color=\"#2a9d3a\"", "penwidth=3")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-based <svg> header with a plain
// viewBox so the output scales like the scene renderer's SVG.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(ctx, svg, scale)
}
