package vtree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"
)

// Kind distinguishes the node variants of a value tree.
type Kind int8

const (
	LeafKind  Kind = iota // a value without a child list
	SeqKind               // a branch with an ordered child list
	AssocKind             // a branch with children filed under keys
)

func (k Kind) String() string {
	switch k {
	case LeafKind:
		return "leaf"
	case SeqKind:
		return "seq"
	case AssocKind:
		return "assoc"
	}
	return "invalid"
}

// Node is the building block of value trees. Nodes carry a payload of type
// parameter T and, for the branch kinds, an ordered list of children.
// Nodes are immutable: the constructors copy the child lists they receive
// and the accessors hand out copies.
type Node[T any] struct {
	kind     Kind
	value    T
	key      string // set for children of an assoc branch
	children []*Node[T]
}

// Leaf creates a node carrying just a value.
func Leaf[T any](value T) *Node[T] {
	return &Node[T]{value: value}
}

// Branch creates a sequence node with a label value and ordered children.
// A branch without children is legal and stays a branch.
func Branch[T any](value T, children ...*Node[T]) *Node[T] {
	return &Node[T]{kind: SeqKind, value: value, children: sealChildren(children)}
}

// Assoc creates a keyed branch with a label value. Children are filed
// under their keys; wrap them with Entry to set one.
func Assoc[T any](value T, entries ...*Node[T]) *Node[T] {
	return &Node[T]{kind: AssocKind, value: value, children: sealChildren(entries)}
}

// Entry returns a copy of n filed under the given key. Keys only carry
// meaning for children of an assoc branch.
func Entry[T any](key string, n *Node[T]) *Node[T] {
	w := *n
	w.key = key
	return &w
}

// Value returns the payload of the node.
func (n *Node[T]) Value() T {
	return n.value
}

// Key returns the key the node is filed under, or "" for an unkeyed node.
func (n *Node[T]) Key() string {
	return n.key
}

// Kind returns the node variant.
func (n *Node[T]) Kind() Kind {
	return n.kind
}

// ChildCount returns the number of children of the node.
func (n *Node[T]) ChildCount() int {
	return len(n.children)
}

// Child returns the child at position i.
func (n *Node[T]) Child(i int) (*Node[T], bool) {
	if i < 0 || i >= len(n.children) {
		return nil, false
	}
	return n.children[i], true
}

// ChildByKey returns the child filed under key. Useful for assoc branches;
// for other nodes the lookup comes up empty.
func (n *Node[T]) ChildByKey(key string) (*Node[T], bool) {
	for _, ch := range n.children {
		if ch.key == key {
			return ch, true
		}
	}
	return nil, false
}

// Children returns a copy of the node's child list, nil for childless
// nodes.
func (n *Node[T]) Children() []*Node[T] {
	return sealChildren(n.children)
}

// String renders the tree below n in a compact single-line notation, e.g.
//
//	{1, [2, {3, [4, 5]}]}
//
// with assoc branches written as {value, {key: child, …}}.
func (n *Node[T]) String() string {
	var sb strings.Builder
	n.write(&sb)
	return sb.String()
}

func (n *Node[T]) write(sb *strings.Builder) {
	if n.key != "" {
		sb.WriteString(n.key)
		sb.WriteString(": ")
	}
	switch n.kind {
	case SeqKind:
		fmt.Fprintf(sb, "{%v, [", n.value)
		n.writeChildren(sb)
		sb.WriteString("]}")
	case AssocKind:
		fmt.Fprintf(sb, "{%v, {", n.value)
		n.writeChildren(sb)
		sb.WriteString("}}")
	default:
		fmt.Fprintf(sb, "%v", n.value)
	}
}

func (n *Node[T]) writeChildren(sb *strings.Builder) {
	for i, ch := range n.children {
		if i > 0 {
			sb.WriteString(", ")
		}
		ch.write(sb)
	}
}

// Equal reports whether two trees agree in structure, kinds, keys and
// values. Mainly a helper for tests and assertions.
func Equal[T comparable](a, b *Node[T]) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.kind != b.kind || a.key != b.key || a.value != b.value {
		return false
	}
	if len(a.children) != len(b.children) {
		return false
	}
	for i := range a.children {
		if !Equal(a.children[i], b.children[i]) {
			return false
		}
	}
	return true
}

// sealChildren detaches a child list from its caller. Node child lists are
// never shared with client code in either direction.
func sealChildren[T any](children []*Node[T]) []*Node[T] {
	if len(children) == 0 {
		return nil
	}
	cs := make([]*Node[T], len(children))
	copy(cs, children)
	return cs
}
