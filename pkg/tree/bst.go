package tree

import "github.com/matzehuels/treestack/pkg/errors"

// bst is an unbalanced binary search tree. Values are unique.
type bst struct {
	arena
}

func newBST() *bst { return &bst{} }

func (t *bst) Kind() Kind { return KindBST }

// Insert walks down from the root and attaches a new leaf. A value already in
// the tree is rejected with ErrDuplicate and leaves the tree untouched.
func (t *bst) Insert(value int) (Handle, error) {
	if t.root == NoHandle {
		t.root = t.alloc(value, NoHandle)
		return t.root, nil
	}

	cur := t.root
	for {
		n := t.at(cur)
		switch {
		case value < n.Value:
			if n.Left == NoHandle {
				h := t.alloc(value, cur)
				t.at(cur).Left = h
				t.fixHeights(cur)
				return h, nil
			}
			cur = n.Left
		case value > n.Value:
			if n.Right == NoHandle {
				h := t.alloc(value, cur)
				t.at(cur).Right = h
				t.fixHeights(cur)
				return h, nil
			}
			cur = n.Right
		default:
			return NoHandle, errors.New(errors.ErrCodeDuplicateValue, "value %d already in tree", value)
		}
	}
}

func (t *bst) Delete(int) (bool, error) {
	return false, errors.New(errors.ErrCodeUnsupported, "delete is not supported by the %s tree", KindBST)
}

func (t *bst) DeleteHandle(Handle) (Relocation, error) {
	return Relocation{}, errors.New(errors.ErrCodeUnsupported, "delete is not supported by the %s tree", KindBST)
}

// LevelOrder is a fresh breadth-first traversal; the BST keeps no index list.
func (t *bst) LevelOrder() []int {
	hs := t.bfs()
	out := make([]int, len(hs))
	for i, h := range hs {
		out[i] = t.at(h).Value
	}
	return out
}
