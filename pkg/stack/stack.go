// Package stack implements the stack model whose pushes feed a tree.
//
// Each entry pairs the pushed value with the handle of the tree node its
// insert created. Node lifetime is reference-counted by the stack: popping an
// entry deletes its node from a complete tree only once no other entry still
// holds the same handle.
package stack

import (
	"fmt"

	"github.com/matzehuels/treestack/pkg/errors"
	"github.com/matzehuels/treestack/pkg/tree"
)

// Entry is one stack frame.
type Entry struct {
	Value int
	Node  tree.Handle
}

// HasNode reports whether the entry references a tree node.
func (e Entry) HasNode() bool { return e.Node != tree.NoHandle }

// DuplicatePolicy controls what Push does when a BST rejects a value.
type DuplicatePolicy int

const (
	// DuplicateReject drops the push and returns the tree's error.
	DuplicateReject DuplicatePolicy = iota

	// DuplicateRecord still pushes the value, with no node reference.
	DuplicateRecord
)

// ParseDuplicatePolicy converts "reject" or "record" into a policy.
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch s {
	case "", "reject":
		return DuplicateReject, nil
	case "record":
		return DuplicateRecord, nil
	}
	return DuplicateReject, errors.New(errors.ErrCodeInvalidConfig, "unknown duplicate policy %q (must be 'reject' or 'record')", s)
}

func (p DuplicatePolicy) String() string {
	if p == DuplicateRecord {
		return "record"
	}
	return "reject"
}

// ErrEmptyStack is returned by Pop and Peek on an empty stack.
var ErrEmptyStack = errors.Sentinel(errors.ErrCodeEmptyStack)

// Option configures a Model.
type Option func(*Model)

// WithDuplicatePolicy sets the BST duplicate handling.
func WithDuplicatePolicy(p DuplicatePolicy) Option {
	return func(m *Model) { m.dupPolicy = p }
}

// Model is a stack of entries backed by a tree of one kind.
type Model struct {
	kind      tree.Kind
	dupPolicy DuplicatePolicy
	tree      tree.Tree
	entries   []Entry
	refs      map[tree.Handle]int
}

// New creates an empty model over a new tree of the given kind.
func New(kind tree.Kind, opts ...Option) *Model {
	m := &Model{kind: kind}
	for _, opt := range opts {
		opt(m)
	}
	m.reset()
	return m
}

func (m *Model) reset() {
	m.tree = tree.New(m.kind)
	m.entries = nil
	m.refs = make(map[tree.Handle]int)
}

// Push inserts value into the tree and appends the resulting entry.
func (m *Model) Push(value int) (Entry, error) {
	h, err := m.tree.Insert(value)
	if err != nil {
		if !errors.Is(err, errors.ErrCodeDuplicateValue) || m.dupPolicy == DuplicateReject {
			return Entry{}, fmt.Errorf("push %d: %w", value, err)
		}
		h = tree.NoHandle
	}

	e := Entry{Value: value, Node: h}
	m.entries = append(m.entries, e)
	if e.HasNode() {
		m.refs[h]++
	}
	return e, nil
}

// Pop removes the top entry. For a complete tree the entry's node is
// deleted once its reference count drops to zero.
func (m *Model) Pop() (Entry, error) {
	if len(m.entries) == 0 {
		return Entry{}, errors.New(errors.ErrCodeEmptyStack, "Stack empty")
	}

	top := len(m.entries) - 1
	e := m.entries[top]
	last := e.HasNode() && m.refs[e.Node] == 1
	var moved tree.Relocation
	if last && m.kind == tree.KindComplete {
		var err error
		if moved, err = m.tree.DeleteHandle(e.Node); err != nil {
			return Entry{}, fmt.Errorf("pop %d: %w", e.Value, err)
		}
	}

	m.entries = m.entries[:top]
	switch {
	case last:
		delete(m.refs, e.Node)
	case e.HasNode():
		m.refs[e.Node]--
	}
	if moved.Moved() {
		m.relocate(moved)
	}
	return e, nil
}

// relocate points every entry holding the moved node at its new slot.
func (m *Model) relocate(r tree.Relocation) {
	for i := range m.entries {
		if m.entries[i].Node == r.From {
			m.entries[i].Node = r.To
		}
	}
	if n, ok := m.refs[r.From]; ok {
		delete(m.refs, r.From)
		m.refs[r.To] = n
	}
}

// Peek returns the top entry without removing it.
func (m *Model) Peek() (Entry, error) {
	if len(m.entries) == 0 {
		return Entry{}, errors.New(errors.ErrCodeEmptyStack, "Stack empty")
	}
	return m.entries[len(m.entries)-1], nil
}

// Clear empties the stack and discards the tree.
func (m *Model) Clear() {
	m.reset()
}

// Len returns the number of entries.
func (m *Model) Len() int { return len(m.entries) }

// Entries returns a copy of the entries, bottom first.
func (m *Model) Entries() []Entry {
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Tree returns the backing tree. Callers must not mutate it.
func (m *Model) Tree() tree.Tree { return m.tree }

// Kind returns the tree variant.
func (m *Model) Kind() tree.Kind { return m.kind }

// RefCount returns how many entries reference h.
func (m *Model) RefCount(h tree.Handle) int { return m.refs[h] }
