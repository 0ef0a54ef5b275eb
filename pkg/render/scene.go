package render

import (
	"github.com/matzehuels/treestack/pkg/layout"
	"github.com/matzehuels/treestack/pkg/stack"
	"github.com/matzehuels/treestack/pkg/tree"
)

// Scene geometry, in scene units.
const (
	NodeRadius   = 24
	FrameWidth   = 120
	FrameHeight  = 50
	FrameSpacing = 12
	StackGap     = 80 // between the stack column and the tree's left edge
	Margin       = 40
)

// Source is anything that can be drawn: a session, or a test fixture.
type Source interface {
	Kind() tree.Kind
	Tree() tree.Tree
	Entries() []stack.Entry
	Layout() layout.Layout
}

// NodeShape is one tree node circle.
type NodeShape struct {
	Handle tree.Handle `json:"handle"`
	Value  int         `json:"value"`
	X      float64     `json:"x"`
	Y      float64     `json:"y"`
	R      float64     `json:"r"`
	Top    bool        `json:"top,omitempty"` // referenced by the top stack frame
}

// EdgeShape is a parent-child segment, trimmed to the circle rims.
type EdgeShape struct {
	From tree.Handle `json:"from"`
	To   tree.Handle `json:"to"`
	X1   float64     `json:"x1"`
	Y1   float64     `json:"y1"`
	X2   float64     `json:"x2"`
	Y2   float64     `json:"y2"`
}

// Frame is one stack entry box. Index 0 is the top of the stack.
type Frame struct {
	Index int         `json:"index"`
	Value int         `json:"value"`
	Node  tree.Handle `json:"node,omitempty"`
	X     float64     `json:"x"`
	Y     float64     `json:"y"`
	W     float64     `json:"w"`
	H     float64     `json:"h"`
}

// CenterX returns the frame's horizontal center.
func (f Frame) CenterX() float64 { return f.X + f.W/2 }

// CenterY returns the frame's vertical center.
func (f Frame) CenterY() float64 { return f.Y + f.H/2 }

// Segment is a straight line.
type Segment struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// Scene is everything a sink draws, in one coordinate system.
type Scene struct {
	Kind    tree.Kind   `json:"kind"`
	Height  int         `json:"height"`
	Nodes   []NodeShape `json:"nodes"`
	Edges   []EdgeShape `json:"edges"`
	Frames  []Frame     `json:"frames"`
	Pointer *Segment    `json:"pointer,omitempty"` // top frame to its node
	Bounds  layout.Rect `json:"bounds"`
}

// EmptyTree reports whether the scene has no tree nodes.
func (s Scene) EmptyTree() bool { return len(s.Nodes) == 0 }

// EmptyStack reports whether the scene has no stack frames.
func (s Scene) EmptyStack() bool { return len(s.Frames) == 0 }

// TreeLabel names the tree panel for placeholder text.
func (s Scene) TreeLabel() string {
	if s.Kind == tree.KindBST {
		return "BST"
	}
	return "Tree"
}

// NewScene builds the scene for src. Nodes come in pre-order, frames top
// first.
func NewScene(src Source) Scene {
	t := src.Tree()
	l := src.Layout()
	sc := Scene{Kind: src.Kind(), Height: t.Height()}

	entries := src.Entries()
	var top tree.Handle
	if len(entries) > 0 {
		top = entries[len(entries)-1].Node
	}

	t.Walk(func(h tree.Handle, n tree.Node) bool {
		p, ok := l.Position(h)
		if !ok {
			return true
		}
		sc.Nodes = append(sc.Nodes, NodeShape{
			Handle: h, Value: n.Value, X: p.X, Y: p.Y, R: NodeRadius,
			Top: h != tree.NoHandle && h == top,
		})
		return true
	})
	for _, e := range layout.Edges(t, l) {
		sc.Edges = append(sc.Edges, EdgeShape{
			From: e.From, To: e.To,
			X1: e.X1, Y1: e.Y1 + NodeRadius,
			X2: e.X2, Y2: e.Y2 - NodeRadius,
		})
	}

	treeBounds := layout.Rect{}
	if !l.Empty() {
		treeBounds = l.Bounds.Inset(NodeRadius)
	}
	x0 := treeBounds.MinX - StackGap - FrameWidth
	y0 := treeBounds.MinY
	for i := range entries {
		e := entries[len(entries)-1-i]
		sc.Frames = append(sc.Frames, Frame{
			Index: i, Value: e.Value, Node: e.Node,
			X: x0, Y: y0 + float64(i)*(FrameHeight+FrameSpacing),
			W: FrameWidth, H: FrameHeight,
		})
	}

	if len(sc.Frames) > 0 {
		f := sc.Frames[0]
		if p, ok := l.Position(f.Node); ok && f.Node != tree.NoHandle {
			sc.Pointer = &Segment{X1: f.CenterX(), Y1: f.CenterY(), X2: p.X, Y2: p.Y}
		}
	}

	sc.Bounds = sceneBounds(treeBounds, sc.Frames, x0, y0)
	return sc
}

func sceneBounds(treeBounds layout.Rect, frames []Frame, x0, y0 float64) layout.Rect {
	b := treeBounds
	stackBox := layout.Rect{MinX: x0, MinY: y0, MaxX: x0 + FrameWidth, MaxY: y0 + FrameHeight}
	if n := len(frames); n > 0 {
		stackBox.MaxY = frames[n-1].Y + FrameHeight
	}
	return b.Union(stackBox).Inset(Margin)
}
