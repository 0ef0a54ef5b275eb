package tree

// arena owns node storage. Handles index into slots (offset by one so the
// zero Handle stays invalid) and are never reused.
type arena struct {
	slots []slot
	root  Handle
	size  int
}

type slot struct {
	node Node
	live bool
}

func (a *arena) alloc(value int, parent Handle) Handle {
	a.slots = append(a.slots, slot{node: Node{Value: value, Parent: parent, Height: 1}, live: true})
	a.size++
	return Handle(len(a.slots))
}

func (a *arena) free(h Handle) {
	s := a.slot(h)
	s.live = false
	s.node = Node{}
	a.size--
}

func (a *arena) slot(h Handle) *slot {
	return &a.slots[h-1]
}

func (a *arena) valid(h Handle) bool {
	return h > NoHandle && int(h) <= len(a.slots) && a.slots[h-1].live
}

// at returns a pointer to a live node. Callers must check valid first.
func (a *arena) at(h Handle) *Node {
	return &a.slots[h-1].node
}

func (a *arena) Node(h Handle) (Node, bool) {
	if !a.valid(h) {
		return Node{}, false
	}
	return *a.at(h), true
}

func (a *arena) Root() Handle { return a.root }

func (a *arena) Len() int { return a.size }

func (a *arena) Height() int {
	if a.root == NoHandle {
		return 0
	}
	return a.at(a.root).Height
}

func (a *arena) heightOf(h Handle) int {
	if h == NoHandle {
		return 0
	}
	return a.at(h).Height
}

// fixHeights recomputes cached heights from h up to the root.
func (a *arena) fixHeights(h Handle) {
	for h != NoHandle {
		n := a.at(h)
		n.Height = 1 + max(a.heightOf(n.Left), a.heightOf(n.Right))
		h = n.Parent
	}
}

// bfs returns live handles in breadth-first order.
func (a *arena) bfs() []Handle {
	if a.root == NoHandle {
		return nil
	}
	out := make([]Handle, 0, a.size)
	out = append(out, a.root)
	for i := 0; i < len(out); i++ {
		n := a.at(out[i])
		if n.Left != NoHandle {
			out = append(out, n.Left)
		}
		if n.Right != NoHandle {
			out = append(out, n.Right)
		}
	}
	return out
}

func (a *arena) InOrder() []int {
	out := make([]int, 0, a.size)
	var visit func(h Handle)
	visit = func(h Handle) {
		if h == NoHandle {
			return
		}
		n := a.at(h)
		visit(n.Left)
		out = append(out, n.Value)
		visit(n.Right)
	}
	visit(a.root)
	return out
}

func (a *arena) Walk(fn func(h Handle, n Node) bool) {
	var visit func(h Handle) bool
	visit = func(h Handle) bool {
		if h == NoHandle {
			return true
		}
		n := *a.at(h)
		if !fn(h, n) {
			return false
		}
		return visit(n.Left) && visit(n.Right)
	}
	visit(a.root)
}
