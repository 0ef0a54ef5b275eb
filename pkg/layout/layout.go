package layout

import (
	"github.com/matzehuels/treestack/pkg/tree"
)

// Default layout constants, in scene units.
const (
	DefaultMinNodeWidth      = 40
	DefaultHorizontalSpacing = 40
	DefaultLevelHeight       = 80
	DefaultMinLevelFactor    = 0.6
	DefaultLevelDecay        = 0.1
)

// Options holds the spacing constants shared by both passes.
type Options struct {
	MinNodeWidth      float64 `toml:"min_node_width"`
	HorizontalSpacing float64 `toml:"horizontal_spacing"`
	LevelHeight       float64 `toml:"level_height"`
	MinLevelFactor    float64 `toml:"min_level_factor"`
	LevelDecay        float64 `toml:"level_decay"`
	OriginX           float64 `toml:"origin_x"`
	OriginY           float64 `toml:"origin_y"`
}

// DefaultOptions returns the stock spacing.
func DefaultOptions() Options {
	return Options{
		MinNodeWidth:      DefaultMinNodeWidth,
		HorizontalSpacing: DefaultHorizontalSpacing,
		LevelHeight:       DefaultLevelHeight,
		MinLevelFactor:    DefaultMinLevelFactor,
		LevelDecay:        DefaultLevelDecay,
	}
}

// LevelFactor tapers spacing with depth: max(MinLevelFactor, 1 - level*LevelDecay).
func (o Options) LevelFactor(level int) float64 {
	return max(o.MinLevelFactor, 1-float64(level)*o.LevelDecay)
}

// Layout holds the positions computed for one tree snapshot.
type Layout struct {
	Positions map[tree.Handle]Point
	Spans     map[tree.Handle]Span
	Bounds    Rect
	Levels    int
}

// Position returns the point assigned to h.
func (l Layout) Position(h tree.Handle) (Point, bool) {
	p, ok := l.Positions[h]
	return p, ok
}

// Empty reports whether the layout has no nodes.
func (l Layout) Empty() bool { return len(l.Positions) == 0 }

// SubtreeWidth returns the horizontal span reserved for the subtree rooted
// at h, which sits at the given level (root = 0).
func SubtreeWidth(t tree.Tree, h tree.Handle, level int, opts Options) float64 {
	return newEngine(t, opts).width(h, level)
}

// Compute lays out every live node of t.
func Compute(t tree.Tree, opts Options) Layout {
	l := Layout{
		Positions: make(map[tree.Handle]Point, t.Len()),
		Spans:     make(map[tree.Handle]Span, t.Len()),
		Levels:    t.Height(),
	}
	root := t.Root()
	if root == tree.NoHandle {
		return l
	}

	e := newEngine(t, opts)
	e.width(root, 0)
	e.assign(&l, root, opts.OriginX, opts.OriginY, 0)

	first := true
	for _, p := range l.Positions {
		if first {
			l.Bounds = Rect{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y}
			first = false
			continue
		}
		l.Bounds = l.Bounds.Union(Rect{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y})
	}
	return l
}

// engine memoizes subtree widths for a single Compute call.
type engine struct {
	t      tree.Tree
	opts   Options
	widths map[tree.Handle]float64
}

func newEngine(t tree.Tree, opts Options) *engine {
	return &engine{t: t, opts: opts, widths: make(map[tree.Handle]float64, t.Len())}
}

func (e *engine) width(h tree.Handle, level int) float64 {
	n, ok := e.t.Node(h)
	if !ok {
		return 0
	}
	if w, ok := e.widths[h]; ok {
		return w
	}
	f := e.opts.LevelFactor(level)
	lw := e.width(n.Left, level+1)
	rw := e.width(n.Right, level+1)
	w := max(e.opts.MinNodeWidth*f, lw+rw+e.opts.HorizontalSpacing*f)
	e.widths[h] = w
	return w
}

// metrics describes how a node sits inside its own span: pad is the slack
// on each side when the minimum width dominates, anchor is the node's
// offset from the span's left edge.
func (e *engine) metrics(h tree.Handle, n tree.Node, level int) (lw, gap, pad, anchor float64) {
	gap = e.opts.HorizontalSpacing * e.opts.LevelFactor(level)
	lw = e.widths[n.Left]
	rw := e.widths[n.Right]
	pad = (e.widths[h] - (lw + rw + gap)) / 2
	return lw, gap, pad, pad + lw + gap/2
}

func (e *engine) assign(l *Layout, h tree.Handle, x, y float64, level int) {
	n, _ := e.t.Node(h)
	lw, gap, pad, anchor := e.metrics(h, n, level)
	left := x - anchor
	l.Positions[h] = Point{X: x, Y: y}
	l.Spans[h] = Span{Left: left, Right: left + e.widths[h]}

	childY := y + e.opts.LevelHeight
	if n.Left != tree.NoHandle {
		e.assign(l, n.Left, left+pad+e.anchorOf(n.Left, level+1), childY, level+1)
	}
	if n.Right != tree.NoHandle {
		e.assign(l, n.Right, left+pad+lw+gap+e.anchorOf(n.Right, level+1), childY, level+1)
	}
}

func (e *engine) anchorOf(h tree.Handle, level int) float64 {
	n, _ := e.t.Node(h)
	_, _, _, anchor := e.metrics(h, n, level)
	return anchor
}
