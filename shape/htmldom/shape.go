package htmldom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"github.com/npillmayer/zipper"
	"golang.org/x/net/html"
)

// Shape returns the zipper capability for HTML DOM nodes.
func Shape() zipper.Shape[*html.Node] {
	return shape{}
}

// Zip wraps an HTML document, or any node of one, into a zipper cursor.
// The document is never modified; edits through the cursor yield a fresh
// document, sharing untouched subtrees by copy.
func Zip(root *html.Node) zipper.Zipper[*html.Node] {
	return zipper.New(Shape(), root)
}

type shape struct{}

func (shape) IsBranch(n *html.Node) bool {
	return n.Type == html.ElementNode || n.Type == html.DocumentNode
}

func (shape) Children(n *html.Node) []*html.Node {
	var cs []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		cs = append(cs, c)
	}
	return cs
}

// MakeNode rebuilds n with a new child sequence. Children still linked
// into a document are copied; detached children, in particular nodes
// rebuilt by a lower level, are adopted directly.
func (shape) MakeNode(n *html.Node, children []*html.Node) *html.Node {
	tracer().Debugf("rebuilding <%s> with %d children", nodeName(n), len(children))
	w := shallowCopy(n)
	for _, c := range children {
		if c.Parent != nil {
			c = deepCopy(c)
		}
		w.AppendChild(c)
	}
	return w
}

// shallowCopy copies a node without its tree links.
func shallowCopy(n *html.Node) *html.Node {
	w := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
	}
	if len(n.Attr) > 0 {
		w.Attr = make([]html.Attribute, len(n.Attr))
		copy(w.Attr, n.Attr)
	}
	return w
}

// deepCopy copies a node together with its whole subtree. The copy is
// detached and safe to weave into a rebuilt document.
func deepCopy(n *html.Node) *html.Node {
	w := shallowCopy(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.AppendChild(deepCopy(c))
	}
	return w
}

// nodeName names a node the DOM way: the tag for elements, '#text',
// '#document' etc. for the other node types.
func nodeName(n *html.Node) string {
	switch n.Type {
	case html.ElementNode:
		return n.Data
	case html.TextNode:
		return "#text"
	case html.DocumentNode:
		return "#document"
	case html.CommentNode:
		return "#comment"
	case html.DoctypeNode:
		return "#doctype"
	}
	return "#unknown"
}

// Sprint renders the HTML below n, mainly for debugging and test output.
func Sprint(n *html.Node) string {
	var sb strings.Builder
	if err := html.Render(&sb, n); err != nil {
		tracer().Errorf("cannot render HTML node: %v", err)
		return ""
	}
	return sb.String()
}
