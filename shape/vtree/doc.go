/*
Package vtree provides a ready-made value tree for the zipper cursor.

A value tree is a plain immutable tree of nodes carrying a payload value.
Three node kinds exist: leaves, sequence branches with an ordered child
list, and assoc branches whose children are filed under string keys. The
kind is an explicit tag on every node. A leaf and a branch which happens
to have no children therefore stay distinct things, and keyed branches
survive edits with their keys intact.

Nodes are created with the constructors Leaf, Branch, Assoc and Entry and
never change afterwards; the zipper rebuilds edited trees out of fresh
nodes. Zip wraps a tree into a cursor:

    z := vtree.Zip(vtree.Branch(1, vtree.Leaf(2)))

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package vtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'zipper.vtree'.
func tracer() tracing.Trace {
	return tracing.Select("zipper.vtree")
}
