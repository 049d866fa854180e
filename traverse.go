package zipper

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Linearization of trees: Next and Prev flatten the tree into its
// depth-first pre-order sequence of locations. The sequence starts at the
// root and is terminated by a dedicated end sentinel, so driving a cursor
// with Next in a loop visits every node exactly once and then stops.

// Next moves the cursor to the following location of the depth-first
// pre-order walk: the first child of a branch, else the nearest right
// sibling of the focus or of one of its ancestors.
//
// Next is total. Moving past the last node returns a cursor flagged as the
// end of the walk (see IsEnd), sitting on the fully rebuilt root; calling
// Next on an end cursor returns it unchanged.
func (z Zipper[T]) Next() Zipper[T] {
	if z.atEnd {
		return z
	}
	if z.shape.IsBranch(z.node) {
		if d, ok := z.Down(); ok {
			return d
		}
	}
	return z.nextSkip()
}

// nextSkip moves on in pre-order without descending into the children of
// the focus: the nearest right sibling, else the first right sibling found
// while climbing up. Running out of ancestors seals the walk with the end
// sentinel on the root-level cursor.
func (z Zipper[T]) nextSkip() Zipper[T] {
	cur := z
	for {
		if r, ok := cur.Right(); ok {
			return r
		}
		up, ok := cur.Up()
		if !ok {
			cur.atEnd = true
			return cur
		}
		cur = up
	}
}

// Prev moves the cursor to the preceding location of the depth-first
// pre-order walk: the deepest last location of the left sibling's subtree,
// or the parent if no left sibling exists. The move is absent at the first
// location of the walk.
//
// Called on an end cursor, Prev rewinds to the last location of the
// (possibly edited) tree.
func (z Zipper[T]) Prev() (Zipper[T], bool) {
	if z.atEnd {
		w := z
		w.atEnd = false
		return w.lastInSubtree(), true
	}
	if l, ok := z.Left(); ok {
		return l.lastInSubtree(), true
	}
	return z.Up()
}

// lastInSubtree descends to the location visited last in a pre-order walk
// of the subtree at the focus, i.e. its deepest rightmost node.
func (z Zipper[T]) lastInSubtree() Zipper[T] {
	cur := z
	for cur.shape.IsBranch(cur.node) {
		d, ok := cur.Down()
		if !ok {
			break
		}
		cur = d.Rightmost()
	}
	return cur
}

// --- Iterator --------------------------------------------------------------

// Iterator is a single-use pull view of the pre-order location sequence,
// in the style of bufio.Scanner. Create one with Zipper.Iterate.
type Iterator[T any] struct {
	cur     Zipper[T]
	started bool
}

// Iterate returns an iterator over the depth-first pre-order sequence,
// starting at and including the current focus. The iterator follows the
// walk to the end of the whole tree; to confine it to a subtree, iterate
// over Subtree() instead.
func (z Zipper[T]) Iterate() *Iterator[T] {
	return &Iterator[T]{cur: z}
}

// Next advances the iterator and reports whether a location is available.
// The first call positions the iterator on the starting location itself.
// An exhausted iterator keeps reporting false and is never re-seeded.
func (it *Iterator[T]) Next() bool {
	if !it.started {
		it.started = true
		return !it.cur.IsEnd()
	}
	if it.cur.IsEnd() {
		return false
	}
	it.cur = it.cur.Next()
	return !it.cur.IsEnd()
}

// Cursor returns the cursor at the iterator's current location.
func (it *Iterator[T]) Cursor() Zipper[T] {
	return it.cur
}

// Node returns the node at the iterator's current location.
func (it *Iterator[T]) Node() T {
	return it.cur.Node()
}
