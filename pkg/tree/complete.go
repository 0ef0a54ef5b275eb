package tree

import "github.com/matzehuels/treestack/pkg/errors"

// complete is a complete binary tree. order lists live handles in level
// order; the parent of order[i] is order[(i-1)/2].
type complete struct {
	arena
	order []Handle
}

func newComplete() *complete { return &complete{} }

func (t *complete) Kind() Kind { return KindComplete }

// Insert attaches a new node under the first level-order node with a free
// child slot, left before right. It never fails.
func (t *complete) Insert(value int) (Handle, error) {
	i := len(t.order)
	if i == 0 {
		t.root = t.alloc(value, NoHandle)
		t.order = append(t.order, t.root)
		return t.root, nil
	}

	parent := t.order[(i-1)/2]
	h := t.alloc(value, parent)
	p := t.at(parent)
	if p.Left == NoHandle {
		p.Left = h
	} else {
		p.Right = h
	}
	t.order = append(t.order, h)
	t.fixHeights(parent)
	return h, nil
}

// Delete removes the first node in level order holding value. Duplicates
// beyond the first match are left alone.
func (t *complete) Delete(value int) (bool, error) {
	for _, h := range t.order {
		if t.at(h).Value == value {
			_, err := t.DeleteHandle(h)
			return err == nil, err
		}
	}
	return false, nil
}

// DeleteHandle removes node h. When h is not the last level-order node, the
// last node's value is copied onto h and the last node is removed instead;
// the returned Relocation names that move.
func (t *complete) DeleteHandle(h Handle) (Relocation, error) {
	if !t.valid(h) {
		return Relocation{}, errors.New(errors.ErrCodeNotFound, "node %d not in tree", h)
	}

	last := t.order[len(t.order)-1]
	var moved Relocation
	if h != last {
		t.at(h).Value = t.at(last).Value
		moved = Relocation{From: last, To: h}
	}

	parent := t.at(last).Parent
	if parent == NoHandle {
		t.root = NoHandle
	} else {
		p := t.at(parent)
		if p.Right == last {
			p.Right = NoHandle
		} else {
			p.Left = NoHandle
		}
	}
	t.order = t.order[:len(t.order)-1]
	t.free(last)
	t.fixHeights(parent)
	return moved, nil
}

// LevelOrder returns the values of the level-order index list as it stands.
func (t *complete) LevelOrder() []int {
	out := make([]int, len(t.order))
	for i, h := range t.order {
		out[i] = t.at(h).Value
	}
	return out
}
