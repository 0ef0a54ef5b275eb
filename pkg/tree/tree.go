package tree

import (
	"fmt"
	"strings"

	"github.com/matzehuels/treestack/pkg/errors"
)

// Kind selects the tree variant.
type Kind string

const (
	KindBST      Kind = "bst"
	KindComplete Kind = "complete"
)

// Kinds lists the supported variants in display order.
var Kinds = []Kind{KindBST, KindComplete}

// ParseKind converts a user-supplied name into a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindBST:
		return KindBST, nil
	case KindComplete:
		return KindComplete, nil
	}
	return "", errors.New(errors.ErrCodeInvalidKind, "unknown tree kind %q (must be 'bst' or 'complete')", s)
}

// String implements fmt.Stringer.
func (k Kind) String() string { return string(k) }

// Handle identifies a node inside one tree. The zero value means "no node".
type Handle int

// NoHandle is the zero Handle.
const NoHandle Handle = 0

// Node is a snapshot of a stored node.
type Node struct {
	Value  int
	Left   Handle
	Right  Handle
	Parent Handle
	Height int
}

// IsLeaf reports whether the node has no children.
func (n Node) IsLeaf() bool { return n.Left == NoHandle && n.Right == NoHandle }

// Relocation describes a value moved between nodes during a delete. Stack
// entries that referenced From must follow the value to To.
type Relocation struct {
	From Handle
	To   Handle
}

// Moved reports whether the delete moved a value.
func (r Relocation) Moved() bool { return r.From != NoHandle }

// Sentinel errors for tree operations.
var (
	// ErrDuplicate is returned by a BST insert of a value already present.
	ErrDuplicate = errors.Sentinel(errors.ErrCodeDuplicateValue)

	// ErrUnsupported is returned for operations a variant does not offer.
	ErrUnsupported = errors.Sentinel(errors.ErrCodeUnsupported)

	// ErrNotFound is returned when a handle does not name a live node.
	ErrNotFound = errors.Sentinel(errors.ErrCodeNotFound)
)

// Tree is the node store contract shared by both variants.
type Tree interface {
	// Kind reports the variant.
	Kind() Kind

	// Insert stores value and returns the new node's handle.
	Insert(value int) (Handle, error)

	// Delete removes the first node (in level order) holding value.
	// It reports false when no node matches.
	Delete(value int) (bool, error)

	// DeleteHandle removes exactly the node h.
	DeleteHandle(h Handle) (Relocation, error)

	// Node returns the node for h.
	Node(h Handle) (Node, bool)

	// Root returns the root handle, or NoHandle for an empty tree.
	Root() Handle

	// Len returns the number of live nodes.
	Len() int

	// Height returns 0 for an empty tree, else the root's cached height.
	Height() int

	// LevelOrder returns node values in breadth-first order.
	LevelOrder() []int

	// InOrder returns node values in symmetric order.
	InOrder() []int

	// Walk visits nodes in pre-order until fn returns false.
	Walk(fn func(h Handle, n Node) bool)
}

// New creates an empty tree of the given kind. Unknown kinds panic; use
// ParseKind to validate user input first.
func New(kind Kind) Tree {
	switch kind {
	case KindBST:
		return newBST()
	case KindComplete:
		return newComplete()
	}
	panic(fmt.Sprintf("tree: unknown kind %q", kind))
}
