package vtree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/zipper"
)

// Shape returns the zipper capability for value trees with payload type T.
// Both branch kinds count as branches; edits through the cursor preserve a
// node's kind, value and key, and promote an edited-into leaf to a
// sequence branch.
func Shape[T any]() zipper.Shape[*Node[T]] {
	return shape[T]{}
}

// Zip wraps a value tree into a zipper cursor focused on its root.
func Zip[T any](root *Node[T]) zipper.Zipper[*Node[T]] {
	return zipper.New(Shape[T](), root)
}

type shape[T any] struct{}

func (shape[T]) IsBranch(n *Node[T]) bool {
	return n.kind != LeafKind
}

// Children hands the zipper a direct view of the child list. Safe, as
// neither side ever writes to it.
func (shape[T]) Children(n *Node[T]) []*Node[T] {
	return n.children
}

func (shape[T]) MakeNode(n *Node[T], children []*Node[T]) *Node[T] {
	w := *n
	w.children = children
	if w.kind == LeafKind {
		tracer().Debugf("leaf %v grows into a sequence branch", n.value)
		w.kind = SeqKind
	}
	return &w
}
