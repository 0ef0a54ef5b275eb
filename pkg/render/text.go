package render

import (
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/treestack/pkg/layout"
	"github.com/matzehuels/treestack/pkg/viewport"
)

// Terminal cell size in scene units.
const (
	CellWidth  = 6.0
	CellHeight = 20.0
)

// RenderText draws the tree part of the scene on a cols×rows character
// canvas. The viewport maps scene units to screen units before they are
// divided into cells. Nodes referenced by the top frame are bracketed.
func RenderText(sc Scene, cols, rows int, v viewport.Viewport) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}
	c := newCanvas(cols, rows)

	for _, e := range sc.Edges {
		c1, r1 := toCell(v, e.X1, e.Y1)
		c2, r2 := toCell(v, e.X2, e.Y2)
		c.line(c1, r1, c2, r2)
	}
	for _, n := range sc.Nodes {
		col, row := toCell(v, n.X, n.Y)
		label := "(" + strconv.Itoa(n.Value) + ")"
		if n.Top {
			label = "[" + strconv.Itoa(n.Value) + "]"
		}
		c.text(col-len(label)/2, row, label)
	}
	if sc.EmptyTree() {
		msg := sc.TreeLabel() + " is empty"
		c.text((cols-len(msg))/2, rows/2, msg)
	}
	return c.String()
}

// TextViewport returns a viewport that centers the tree on a cols×rows
// canvas at the identity zoom.
func TextViewport(sc Scene, cols, rows int) viewport.Viewport {
	v := viewport.New()
	b := layout.Rect{}
	for i, n := range sc.Nodes {
		r := layout.Rect{MinX: n.X, MinY: n.Y, MaxX: n.X, MaxY: n.Y}
		if i == 0 {
			b = r
			continue
		}
		b = b.Union(r)
	}
	v.CenterOn(b, float64(cols)*CellWidth, float64(rows)*CellHeight)
	// Keep the root on the first rows when the tree is taller than the canvas.
	if h := b.Height() + 2*CellHeight; h > float64(rows)*CellHeight {
		v.OffsetY = CellHeight - b.MinY
	}
	return v
}

func toCell(v viewport.Viewport, x, y float64) (int, int) {
	p := v.ToScreen(layout.Point{X: x, Y: y})
	return int(math.Round(p.X / CellWidth)), int(math.Round(p.Y / CellHeight))
}

type canvas struct {
	cells [][]rune
}

func newCanvas(cols, rows int) *canvas {
	cells := make([][]rune, rows)
	for i := range cells {
		cells[i] = []rune(strings.Repeat(" ", cols))
	}
	return &canvas{cells: cells}
}

func (c *canvas) set(col, row int, r rune) {
	if row < 0 || row >= len(c.cells) || col < 0 || col >= len(c.cells[row]) {
		return
	}
	c.cells[row][col] = r
}

func (c *canvas) text(col, row int, s string) {
	for i, r := range []rune(s) {
		c.set(col+i, row, r)
	}
}

// line marks every row from r1 to r2, interpolating the column.
func (c *canvas) line(c1, r1, c2, r2 int) {
	glyph := '|'
	switch {
	case c2 < c1:
		glyph = '/'
	case c2 > c1:
		glyph = '\\'
	}
	if r2 < r1 {
		c1, r1, c2, r2 = c2, r2, c1, r1
	}
	for row := r1; row <= r2; row++ {
		t := 0.0
		if r2 != r1 {
			t = float64(row-r1) / float64(r2-r1)
		}
		col := int(math.Round(float64(c1) + t*float64(c2-c1)))
		c.set(col, row, glyph)
	}
}

func (c *canvas) String() string {
	lines := make([]string, len(c.cells))
	for i, row := range c.cells {
		lines[i] = strings.TrimRight(string(row), " ")
	}
	return strings.Join(lines, "\n")
}
