// Package tree implements the node store behind the stack visualizer.
//
// Two variants share the [Tree] interface and are selected once by [New]:
//
//   - [KindBST]: an ordered binary search tree. Duplicate inserts are
//     rejected and nothing can be deleted.
//   - [KindComplete]: a complete binary tree filled in level order. Deleting
//     a node moves the last level-order value into its slot and removes the
//     last node, so the shape stays complete.
//
// # Handles
//
// Nodes live in an arena owned by the tree. Callers refer to them through a
// [Handle], a stable integer that is never reused within a tree. Looking up a
// removed node reports ok == false instead of returning a dangling node:
//
//	t := tree.New(tree.KindComplete)
//	h, _ := t.Insert(7)
//	n, ok := t.Node(h)
//
// # Heights
//
// Every node caches its height (leaves are 1). Mutations refresh the cache
// bottom-up from the changed node to the root, so [Tree.Height] is O(1).
package tree
