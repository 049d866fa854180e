package zipper

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Primitive moves on the cursor. Every move returns a new cursor value; a
// move across a tree boundary is reported with ok == false, handing back
// the unmoved receiver. Boundary crossings are an expected part of cursor
// driving and deliberately not modelled as errors.

// Down moves the focus to the first child of the current node.
// The move is absent if the focus is a leaf or a branch without children.
func (z Zipper[T]) Down() (Zipper[T], bool) {
	if z.atEnd || !z.shape.IsBranch(z.node) {
		return z, false
	}
	cs := z.shape.Children(z.node)
	if len(cs) == 0 {
		return z, false
	}
	parent := z // breadcrumb owns a copy of this cursor
	return Zipper[T]{
		node:   cs[0],
		right:  cs[1:],
		parent: &parent,
		shape:  z.shape,
	}, true
}

// Up moves the focus to the parent of the current node. The move is absent
// at the root and at the end of a walk.
//
// Up is where edits materialize: if the focus or its siblings were changed,
// the parent node is rebuilt from the new child sequence. Otherwise the
// parent cursor is returned exactly as stored, which keeps unedited trees
// free of any reallocation.
func (z Zipper[T]) Up() (Zipper[T], bool) {
	if z.parent == nil {
		return z, false
	}
	p := *z.parent
	if !z.changed {
		return p, true
	}
	tracer().Debugf("zipper rebuilds inner node %v", p.node)
	p.node = z.shape.MakeNode(p.node, join(z.left, z.node, z.right))
	p.changed = true
	return p, true
}

// Left moves the focus to the sibling immediately before it. The move is
// absent at the root and at a leftmost sibling.
func (z Zipper[T]) Left() (Zipper[T], bool) {
	if z.parent == nil || len(z.left) == 0 {
		return z, false
	}
	w := z
	w.node = z.left[0]
	w.left = z.left[1:]
	w.right = cons(z.node, z.right)
	return w, true
}

// Right moves the focus to the sibling immediately after it. The move is
// absent at the root and at a rightmost sibling.
func (z Zipper[T]) Right() (Zipper[T], bool) {
	if z.parent == nil || len(z.right) == 0 {
		return z, false
	}
	w := z
	w.node = z.right[0]
	w.left = cons(z.node, z.left)
	w.right = z.right[1:]
	return w, true
}

// Leftmost moves the focus to the leftmost sibling of the current node.
// It returns the cursor unchanged if the focus already is the leftmost
// sibling, making Leftmost idempotent. Sibling order is fully preserved.
func (z Zipper[T]) Leftmost() Zipper[T] {
	if z.parent == nil || len(z.left) == 0 {
		return z
	}
	n := len(z.left)
	w := z
	w.node = z.left[n-1]
	w.left = nil
	w.right = join(z.left[:n-1], z.node, z.right)
	return w
}

// Rightmost moves the focus to the rightmost sibling of the current node.
// It returns the cursor unchanged if the focus already is the rightmost
// sibling, making Rightmost idempotent. Sibling order is fully preserved.
func (z Zipper[T]) Rightmost() Zipper[T] {
	if z.parent == nil || len(z.right) == 0 {
		return z
	}
	n := len(z.right)
	w := z
	w.node = z.right[n-1]
	w.left = join(z.right[:n-1], z.node, z.left) // nearest-first, mirroring Leftmost
	w.right = nil
	return w
}
