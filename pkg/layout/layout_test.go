package layout

import (
	"math"
	"math/rand"
	"testing"

	"github.com/matzehuels/treestack/pkg/tree"
)

func build(t *testing.T, kind tree.Kind, values ...int) (tree.Tree, []tree.Handle) {
	t.Helper()
	tr := tree.New(kind)
	hs := make([]tree.Handle, 0, len(values))
	for _, v := range values {
		h, err := tr.Insert(v)
		if err != nil {
			t.Fatalf("Insert(%d): %v", v, err)
		}
		hs = append(hs, h)
	}
	return tr, hs
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func TestLevelFactor(t *testing.T) {
	opts := DefaultOptions()
	tests := []struct {
		level int
		want  float64
	}{
		{0, 1.0},
		{1, 0.9},
		{3, 0.7},
		{4, 0.6},
		{10, 0.6},
	}
	for _, tt := range tests {
		if got := opts.LevelFactor(tt.level); !near(got, tt.want) {
			t.Errorf("LevelFactor(%d) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestSubtreeWidth(t *testing.T) {
	tr, hs := build(t, tree.KindBST, 5, 3, 8, 1)
	opts := DefaultOptions()

	tests := []struct {
		name  string
		h     tree.Handle
		level int
		want  float64
	}{
		{"empty", tree.NoHandle, 0, 0},
		{"leaf at level 2", hs[3], 2, 32},
		{"leaf at level 1", hs[2], 1, 36},
		{"left-only subtree", hs[1], 1, 68},
		{"root", hs[0], 0, 144},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SubtreeWidth(tr, tt.h, tt.level, opts); !near(got, tt.want) {
				t.Errorf("SubtreeWidth() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComputeBalanced(t *testing.T) {
	tr, hs := build(t, tree.KindComplete, 1, 2, 3)
	l := Compute(tr, DefaultOptions())

	want := map[tree.Handle]Point{
		hs[0]: {0, 0},
		hs[1]: {-38, 80},
		hs[2]: {38, 80},
	}
	for h, p := range want {
		got, ok := l.Position(h)
		if !ok || !near(got.X, p.X) || !near(got.Y, p.Y) {
			t.Errorf("Position(%v) = %v, %v, want %v", h, got, ok, p)
		}
	}
	if l.Levels != 2 {
		t.Errorf("Levels = %d, want 2", l.Levels)
	}
	if !near(l.Bounds.Width(), 76) || !near(l.Bounds.Height(), 80) {
		t.Errorf("Bounds = %+v", l.Bounds)
	}
}

func TestComputeOrigin(t *testing.T) {
	tr, hs := build(t, tree.KindBST, 10)
	opts := DefaultOptions()
	opts.OriginX, opts.OriginY = 100, 50

	p, _ := Compute(tr, opts).Position(hs[0])
	if p != (Point{100, 50}) {
		t.Errorf("root at %v, want (100, 50)", p)
	}
}

func TestComputeEmpty(t *testing.T) {
	l := Compute(tree.New(tree.KindBST), DefaultOptions())
	if !l.Empty() || l.Levels != 0 {
		t.Errorf("empty tree layout = %+v", l)
	}
	if len(Edges(tree.New(tree.KindBST), l)) != 0 {
		t.Error("empty tree has edges")
	}
}

func TestEdges(t *testing.T) {
	tr, hs := build(t, tree.KindComplete, 1, 2, 3, 4)
	l := Compute(tr, DefaultOptions())
	edges := Edges(tr, l)

	if len(edges) != 3 {
		t.Fatalf("len(edges) = %d, want 3", len(edges))
	}
	if edges[0].From != hs[0] || edges[0].To != hs[1] {
		t.Errorf("first edge = %v -> %v, want %v -> %v", edges[0].From, edges[0].To, hs[0], hs[1])
	}
	for _, e := range edges {
		if !near(e.Y2-e.Y1, DefaultLevelHeight) {
			t.Errorf("edge %v -> %v spans %v vertically", e.From, e.To, e.Y2-e.Y1)
		}
	}
}

// TestNoOverlap inserts random values and checks that sibling subtrees get
// disjoint spans and that in-order traversal visits strictly increasing x.
func TestNoOverlap(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	opts := DefaultOptions()

	for round := 0; round < 200; round++ {
		kind := tree.Kinds[round%2]
		tr := tree.New(kind)
		n := 1 + rng.Intn(31)
		for i := 0; i < n; i++ {
			_, _ = tr.Insert(rng.Intn(100))
		}
		if tr.Height() > 5 {
			continue
		}

		l := Compute(tr, opts)
		if len(l.Positions) != tr.Len() {
			t.Fatalf("round %d: %d positions for %d nodes", round, len(l.Positions), tr.Len())
		}
		checkSpans(t, tr, l, tr.Root())

		prev := math.Inf(-1)
		for _, h := range inOrderHandles(tr) {
			x := l.Positions[h].X
			if x <= prev {
				t.Fatalf("round %d (%s): in-order x not increasing at %v (%v <= %v)", round, kind, h, x, prev)
			}
			prev = x
		}
	}
}

func checkSpans(t *testing.T, tr tree.Tree, l Layout, h tree.Handle) {
	t.Helper()
	n, ok := tr.Node(h)
	if !ok {
		return
	}
	s := l.Spans[h]
	if !s.Contains(l.Positions[h].X) {
		t.Fatalf("node %v at x=%v outside its span %+v", h, l.Positions[h].X, s)
	}
	for _, c := range []tree.Handle{n.Left, n.Right} {
		if c == tree.NoHandle {
			continue
		}
		cs := l.Spans[c]
		if cs.Left < s.Left-eps || cs.Right > s.Right+eps {
			t.Fatalf("child %v span %+v escapes parent %v span %+v", c, cs, h, s)
		}
		checkSpans(t, tr, l, c)
	}
	if n.Left != tree.NoHandle && n.Right != tree.NoHandle {
		if l.Spans[n.Left].Right > l.Spans[n.Right].Left+eps {
			t.Fatalf("siblings of %v overlap: %+v vs %+v", h, l.Spans[n.Left], l.Spans[n.Right])
		}
	}
}

func inOrderHandles(tr tree.Tree) []tree.Handle {
	var out []tree.Handle
	var visit func(h tree.Handle)
	visit = func(h tree.Handle) {
		n, ok := tr.Node(h)
		if !ok {
			return
		}
		visit(n.Left)
		out = append(out, h)
		visit(n.Right)
	}
	visit(tr.Root())
	return out
}
