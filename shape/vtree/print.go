package vtree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// Sprint renders a multi-line display of the tree below n, one node per
// line. Keys and the assoc kind show up as meta information:
//
//	.
//	└── [assoc]  cfg
//	    ├── [host]  localhost
//	    └── [port]  6060
//
// Sprint is meant for debugging and test output.
func Sprint[T any](n *Node[T]) string {
	p := tp.New()
	sprint(p, n)
	return p.String()
}

func sprint[T any](p tp.Tree, n *Node[T]) {
	label := fmt.Sprintf("%v", n.value)
	if n.kind == LeafKind {
		if n.key != "" {
			p.AddMetaNode(n.key, label)
		} else {
			p.AddNode(label)
		}
		return
	}
	var branch tp.Tree
	switch {
	case n.key != "":
		branch = p.AddMetaBranch(n.key, label)
	case n.kind == AssocKind:
		branch = p.AddMetaBranch(n.kind, label)
	default:
		branch = p.AddBranch(label)
	}
	for _, ch := range n.children {
		sprint(branch, ch)
	}
}
