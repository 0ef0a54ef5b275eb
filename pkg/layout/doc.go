// Package layout converts a tree's shape into 2-D node coordinates.
//
// # Algorithm
//
// [Compute] runs two recursive passes per call:
//
//  1. Widths: every subtree reserves
//     max(MinNodeWidth*f, width(left) + width(right) + HorizontalSpacing*f)
//     where f = [Options.LevelFactor] shrinks spacing at deeper levels.
//  2. Positions: the root sits at the origin; each child is placed inside the
//     part of its parent's span reserved for it, LevelHeight further down.
//     For a balanced child this is exactly x ∓ (childWidth + spacing*f)/2.
//
// Because placement reuses the widths from pass one, sibling subtrees occupy
// disjoint horizontal spans and never overlap.
//
// Nothing is cached between calls: a layout is a pure function of the tree
// shape and the [Options].
package layout
