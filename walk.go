package zipper

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Traversal drivers on top of the pre-order linearization. Invoked on a
// root cursor they cover the whole tree. Invoked further down they cover
// just the subtree below the focus: the walk runs on a re-rooted cursor
// (see Subtree) and its outcome is spliced back into the enclosing tree
// with a single replacement, or with none at all if nothing changed.

// Map applies f to every node of the tree in pre-order and rebuilds the
// tree from the results. On a root cursor, Map finishes in the end-of-walk
// state, holding the rebuilt tree (see Root). On any other cursor only the
// subtree below the focus is mapped and the returned cursor sits at the
// original position, focusing the rebuilt subtree.
func (z Zipper[T]) Map(f func(T) T) Zipper[T] {
	if z.parent == nil {
		return z.mapAll(f)
	}
	return z.splice(z.Subtree().mapAll(f))
}

func (z Zipper[T]) mapAll(f func(T) T) Zipper[T] {
	cur := z
	for !cur.atEnd {
		cur = cur.Update(f).Next()
	}
	return cur
}

// Fold visits the tree in pre-order, threading an accumulator through f.
// f receives the cursor for each location together with the running
// accumulator, and returns the cursor to move on from plus the new
// accumulator. Handing the cursor through f lets folds edit the tree while
// they sum it up; a fold that returns the cursor untouched is a pure
// reduction and leaves the tree alone.
//
// Fold returns the final cursor (positioned like Map positions it) and the
// final accumulator.
func Fold[T, A any](z Zipper[T], acc A, f func(Zipper[T], A) (Zipper[T], A)) (Zipper[T], A) {
	if z.parent == nil {
		return foldAll(z, acc, f)
	}
	sub, out := foldAll(z.Subtree(), acc, f)
	return z.splice(sub), out
}

func foldAll[T, A any](z Zipper[T], acc A, f func(Zipper[T], A) (Zipper[T], A)) (Zipper[T], A) {
	cur := z
	for !cur.atEnd {
		next, out := f(cur, acc)
		cur = next.Next()
		acc = out
	}
	return cur, acc
}

// --- Steered traversal -----------------------------------------------------

// Control steers a FoldWhile traversal. The zero value is Continue.
type Control int

const (
	// Continue moves on to the next pre-order location.
	Continue Control = iota
	// Skip moves on without descending into the children of the focus.
	Skip
	// Halt abandons the walk. See FoldWhile for the resulting cursor.
	Halt
)

func (ctl Control) String() string {
	switch ctl {
	case Continue:
		return "continue"
	case Skip:
		return "skip"
	case Halt:
		return "halt"
	}
	return "invalid"
}

// FoldWhile visits the tree in pre-order like Fold, with f additionally
// steering the walk through a Control verdict: Continue behaves like Fold,
// Skip moves on without visiting the children below the current focus, and
// Halt abandons the walk at once.
//
// Halting is deliberately global. Even when the walk was confined to a
// subtree, a Halt drives the cursor to the end-of-walk state at the top of
// the whole tree: edits made before the halt are kept, locations not yet
// visited stay untouched, and the returned cursor reports IsEnd. A skip,
// in contrast, stays local to the walk it occurs in.
func FoldWhile[T, A any](z Zipper[T], acc A, f func(Zipper[T], A) (Control, Zipper[T], A)) (Zipper[T], A) {
	if z.parent == nil {
		end, out, _ := foldWhileAll(z, acc, f)
		return end, out
	}
	sub, out, halted := foldWhileAll(z.Subtree(), acc, f)
	cur := z.splice(sub)
	if halted {
		top := cur.Top()
		top.atEnd = true
		return top, out
	}
	return cur, out
}

func foldWhileAll[T, A any](z Zipper[T], acc A, f func(Zipper[T], A) (Control, Zipper[T], A)) (Zipper[T], A, bool) {
	cur := z
	for !cur.atEnd {
		ctl, next, out := f(cur, acc)
		acc = out
		switch ctl {
		case Continue:
			cur = next.Next()
		case Skip:
			cur = next.nextSkip()
		case Halt:
			tracer().Debugf("tree walk halts at %v", next)
			top := next.Top()
			top.atEnd = true
			return top, acc, true
		default:
			assertThat(false, "unknown traversal control value %d", ctl)
		}
	}
	return cur, acc, false
}

// splice folds the outcome of a walk bounded to a subtree back into the
// enclosing tree: one replacement at the original position, or none at all
// when the walk left the subtree untouched.
func (z Zipper[T]) splice(sub Zipper[T]) Zipper[T] {
	if !sub.changed {
		return z
	}
	return z.Replace(sub.node)
}
