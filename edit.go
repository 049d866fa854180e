package zipper

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "errors"

// ErrRemoveRoot is returned for an attempt to remove the node a zipper was
// created on. The root carries the whole tree; removing it is not a tree
// operation any more.
var ErrRemoveRoot = errors.New("cannot remove the root")

// ErrInsertAtRoot is returned for an attempt to insert a sibling next to
// the root. The root has no parent to hold a sibling.
var ErrInsertAtRoot = errors.New("cannot insert a sibling at the root")

// Structural edits on the tree at the cursor position. Edits are recorded
// in the cursor only; ancestor nodes get rebuilt lazily while climbing up
// (see Up). The tree the zipper was created on is never touched.
//
// Edits either succeed completely or fail with a sentinel error, handing
// back the unmodified receiver. Boundary conditions of plain movement are
// absent results instead, see the primitive moves.

// Replace substitutes n for the node at the focus.
func (z Zipper[T]) Replace(n T) Zipper[T] {
	w := z
	w.node = n
	w.changed = true
	return w
}

// Update replaces the node at the focus by f applied to it. f must treat
// its argument as immutable and return a fresh node for any change.
func (z Zipper[T]) Update(f func(T) T) Zipper[T] {
	return z.Replace(f(z.node))
}

// InsertLeft inserts n as a new sibling immediately before the focus. The
// focus stays on the current node. Returns ErrInsertAtRoot if the cursor
// sits at the root.
func (z Zipper[T]) InsertLeft(n T) (Zipper[T], error) {
	if z.parent == nil {
		return z, ErrInsertAtRoot
	}
	w := z
	w.left = cons(n, z.left)
	w.changed = true
	return w, nil
}

// InsertRight inserts n as a new sibling immediately after the focus. The
// focus stays on the current node. Returns ErrInsertAtRoot if the cursor
// sits at the root.
func (z Zipper[T]) InsertRight(n T) (Zipper[T], error) {
	if z.parent == nil {
		return z, ErrInsertAtRoot
	}
	w := z
	w.right = cons(n, z.right)
	w.changed = true
	return w, nil
}

// InsertChild inserts n as the new first child of the node at the focus.
// The focus stays on the (rebuilt) parent. A leaf at the focus is promoted
// to a branch holding the single child n.
func (z Zipper[T]) InsertChild(n T) Zipper[T] {
	return z.Replace(z.shape.MakeNode(z.node, cons(n, z.childList())))
}

// AppendChild appends n as the new last child of the node at the focus.
// The focus stays on the (rebuilt) parent. A leaf at the focus is promoted
// to a branch holding the single child n.
func (z Zipper[T]) AppendChild(n T) Zipper[T] {
	cs := z.childList()
	ds := make([]T, 0, len(cs)+1)
	ds = append(ds, cs...)
	ds = append(ds, n)
	return z.Replace(z.shape.MakeNode(z.node, ds))
}

// childList returns the children of the focus node, empty for a leaf.
func (z Zipper[T]) childList() []T {
	if !z.shape.IsBranch(z.node) {
		return nil
	}
	return z.shape.Children(z.node)
}

// Remove deletes the node at the focus, including its subtree, from the
// tree. The new focus is the location visited before the removed one in
// pre-order: the deepest rightmost node of the nearest left sibling, or
// the parent if no left sibling exists. Returns ErrRemoveRoot if the
// cursor sits at the root.
func (z Zipper[T]) Remove() (Zipper[T], error) {
	if z.parent == nil {
		return z, ErrRemoveRoot
	}
	tracer().Debugf("zipper removes %v together with its subtree", z.node)
	if len(z.left) > 0 {
		w := z
		w.node = z.left[0]
		w.left = z.left[1:]
		w.changed = true
		return w.lastInSubtree(), nil
	}
	p := *z.parent
	p.node = z.shape.MakeNode(p.node, z.right)
	p.changed = true
	return p, nil
}
