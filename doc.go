/*
Package zipper implements a functional cursor type for navigating and
editing immutable trees.

Zippers have been introduced by Gérard Huet in his 1997 functional pearl
(https://www.st.cs.uni-saarland.de/edu/seminare/2005/advanced-fp/docs/huet-zipper.pdf).
A zipper represents a location inside a tree together with just enough
context to move to any neighbouring location and to rebuild the overall
tree after an edit. Every operation returns a new cursor value and leaves
the input tree untouched. Reconstruction happens lazily: climbing up
rebuilds only those levels where an edit actually occurred, and a tree
which has not been edited at all comes back as the very value that was
handed in.

Trees themselves stay opaque to this package. Clients plug in a concrete
tree type through the Shape interface, a three-operation contract telling
the cursor how to recognize a branch node, how to list the children of a
branch, and how to rebuild a node from a new child sequence. Package
shape/vtree provides a ready-made value tree, package shape/htmldom adapts
parsed HTML documents (golang.org/x/net/html).

Movement comes in two layers. The primitive moves Down, Up, Left, Right,
Leftmost and Rightmost walk the tree one step at a time; a move across a
boundary is reported as an absent result, not as an error. On top of the
primitives, Next and Prev linearize the tree into its depth-first pre-order
sequence, terminated by an end sentinel. Traversal drivers Map, Fold and
FoldWhile visit the sequence wholesale, with FoldWhile supporting early
exit and skipping of subtrees.

Fold and FoldWhile are top-level functions rather than methods, as the
accumulator carries its own type parameter.

Status

Working. The core API is stable, the shape adapters may still grow.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package zipper

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'zipper'.
func tracer() tracing.Trace {
	return tracing.Select("zipper")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("zipper: "+msg, msgargs...)
		panic(msg)
	}
}
