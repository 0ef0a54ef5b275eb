package layout

import "github.com/matzehuels/treestack/pkg/tree"

// Edge is a parent-to-child segment between two laid-out nodes.
type Edge struct {
	From, To tree.Handle
	X1, Y1   float64
	X2, Y2   float64
}

// Edges returns one segment per parent-child link, in pre-order. Links
// whose endpoints are missing from l are skipped.
func Edges(t tree.Tree, l Layout) []Edge {
	var out []Edge
	t.Walk(func(h tree.Handle, n tree.Node) bool {
		from, ok := l.Positions[h]
		if !ok {
			return true
		}
		for _, c := range [2]tree.Handle{n.Left, n.Right} {
			if c == tree.NoHandle {
				continue
			}
			to, ok := l.Positions[c]
			if !ok {
				continue
			}
			out = append(out, Edge{From: h, To: c, X1: from.X, Y1: from.Y, X2: to.X, Y2: to.Y})
		}
		return true
	})
	return out
}
