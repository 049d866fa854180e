package zipper

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "fmt"

// --- Shape contract --------------------------------------------------------

// Shape is the capability contract a concrete tree type supplies for zipper
// navigation. The zipper never inspects nodes itself; all knowledge about
// the tree lives in its shape.
//
// A shape implementation must treat nodes as immutable values: Children may
// hand out an internal slice, but neither the shape nor the zipper will ever
// write to it. MakeNode receives a child slice which the zipper will not
// modify afterwards, so implementations are free to adopt it without
// copying.
type Shape[T any] interface {
	// IsBranch reports whether node n may have children. A branch without
	// children is legal and is not the same thing as a leaf.
	IsBranch(n T) bool
	// Children returns the ordered child sequence of branch node n.
	// It will only be called for nodes with IsBranch(n) == true.
	Children(n T) []T
	// MakeNode builds a new node from an existing one and a child sequence.
	// n provides everything a node carries besides its children (payload,
	// kind, attributes). MakeNode is where leaves get promoted: handed a
	// non-branch node, it returns a branch holding the given children.
	MakeNode(n T, children []T) T
}

// NewShape assembles a Shape from three plain functions. It is a convenient
// alternative to implementing the interface on a carrier type.
func NewShape[T any](
	isBranch func(T) bool,
	children func(T) []T,
	makeNode func(T, []T) T,
) Shape[T] {
	assertThat(isBranch != nil, "shape needs an is-branch predicate")
	assertThat(children != nil, "shape needs a children selector")
	assertThat(makeNode != nil, "shape needs a node constructor")
	return funcShape[T]{
		isBranch: isBranch,
		children: children,
		makeNode: makeNode,
	}
}

type funcShape[T any] struct {
	isBranch func(T) bool
	children func(T) []T
	makeNode func(T, []T) T
}

func (s funcShape[T]) IsBranch(n T) bool            { return s.isBranch(n) }
func (s funcShape[T]) Children(n T) []T             { return s.children(n) }
func (s funcShape[T]) MakeNode(n T, children []T) T { return s.makeNode(n, children) }

// --- Zipper ----------------------------------------------------------------

// Zipper is a cursor into an immutable tree. It focuses on one node and
// remembers the focus node's siblings plus a breadcrumb trail of parent
// cursors, which is exactly the context needed to move in any direction and
// to reassemble the tree after edits.
//
// Zippers are values. Operations return new zippers and never change the
// receiver or any tree node, so keeping an old cursor around keeps the old
// view of the tree alive. The zero value is not usable; create cursors with
// New or with one of the shape packages.
type Zipper[T any] struct {
	node    T          // the focus node
	left    []T        // siblings before the focus, nearest first
	right   []T        // siblings after the focus, in tree order
	parent  *Zipper[T] // breadcrumb trail; nil at the root and at the end
	atEnd   bool       // end-of-walk sentinel, only ever set on root-level cursors
	changed bool       // focus or siblings differ from the stored parent's children
	shape   Shape[T]
}

// New creates a zipper focused on the root of the tree given by root.
// The shape teaches the cursor how to take nodes of type T apart and how to
// put them back together.
func New[T any](shape Shape[T], root T) Zipper[T] {
	assertThat(shape != nil, "cannot create a zipper without a shape")
	return Zipper[T]{node: root, shape: shape}
}

// Node returns the node at the focus of the cursor. At the end of a walk
// this is the root of the (rebuilt) tree.
func (z Zipper[T]) Node() T {
	return z.node
}

// Shape returns the shape the cursor operates with.
func (z Zipper[T]) Shape() Shape[T] {
	return z.shape
}

// IsRoot reports whether the cursor focuses the root of the tree.
func (z Zipper[T]) IsRoot() bool {
	return z.parent == nil && !z.atEnd
}

// IsEnd reports whether a depth-first walk has moved past the last node of
// the tree. An end cursor is terminal: Next will not move it any further.
func (z Zipper[T]) IsEnd() bool {
	return z.atEnd
}

// IsBranch reports whether the node at the focus is a branch, i.e. a node
// which may carry children.
func (z Zipper[T]) IsBranch() bool {
	return z.shape.IsBranch(z.node)
}

// Lefts returns the siblings before the focus, in tree order.
func (z Zipper[T]) Lefts() []T {
	if len(z.left) == 0 {
		return nil
	}
	ls := make([]T, len(z.left))
	for i, n := range z.left { // z.left is stored nearest first
		ls[len(ls)-1-i] = n
	}
	return ls
}

// Rights returns the siblings after the focus, in tree order.
func (z Zipper[T]) Rights() []T {
	if len(z.right) == 0 {
		return nil
	}
	rs := make([]T, len(z.right))
	copy(rs, z.right)
	return rs
}

// Path returns the ancestor nodes of the focus, starting at the root.
// Ancestors are reported as stored in the breadcrumb trail, i.e. without
// pending edits below them pulled up yet.
func (z Zipper[T]) Path() []T {
	var nodes []T
	for p := z.parent; p != nil; p = p.parent {
		nodes = append(nodes, p.node)
	}
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
	return nodes
}

// Depth returns the number of ancestors above the focus. The root cursor
// has depth 0.
func (z Zipper[T]) Depth() int {
	d := 0
	for p := z.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// Subtree re-roots the cursor at the current focus. The resulting cursor
// has no siblings and no path; walks and edits on it are confined to the
// subtree below the focus. Splicing an edited subtree back into the
// enclosing tree is a plain Replace at the original position.
func (z Zipper[T]) Subtree() Zipper[T] {
	return Zipper[T]{node: z.node, shape: z.shape}
}

// Top climbs to the root cursor, rebuilding every level with pending edits
// on the way. Without edits below the focus, Top returns the cursor the
// walk started from. On an end cursor, Top is a no-op.
func (z Zipper[T]) Top() Zipper[T] {
	cur := z
	for {
		up, ok := cur.Up()
		if !ok {
			return cur
		}
		cur = up
	}
}

// Root reconstructs and returns the root node of the tree, with all edits
// made through this cursor lineage included. For a cursor without pending
// edits this is the identical node the zipper was created with.
func (z Zipper[T]) Root() T {
	return z.Top().Node()
}

func (z Zipper[T]) String() string {
	if z.atEnd {
		return fmt.Sprintf("Zipper(end %v)", z.node)
	}
	return fmt.Sprintf("Zipper(depth=%d %v)", z.Depth(), z.node)
}

// --- Helpers ---------------------------------------------------------------

// cons returns a fresh slice with x prepended to xs, leaving xs untouched.
// Sibling slices are shared between cursor values and are never written to
// in place; growing always allocates.
func cons[T any](x T, xs []T) []T {
	ys := make([]T, len(xs)+1)
	ys[0] = x
	copy(ys[1:], xs)
	return ys
}

// join rebuilds a full child sequence from the context around a focus node:
// the left siblings (stored nearest first, hence reversed), the focus, then
// the right siblings.
func join[T any](left []T, node T, right []T) []T {
	cs := make([]T, 0, len(left)+len(right)+1)
	for i := len(left) - 1; i >= 0; i-- {
		cs = append(cs, left[i])
	}
	cs = append(cs, node)
	cs = append(cs, right...)
	return cs
}
