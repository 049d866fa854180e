/*
Package htmldom adapts parsed HTML documents (golang.org/x/net/html) to the
zipper cursor.

HTML nodes link their parents and siblings through pointers inside the
node, so ordinary DOM surgery rewires the tree in place. Wrapped into a
zipper, a parsed document instead behaves like an immutable tree: edits
build a fresh document spine and the original document stays exactly as
parsed.

	doc, _ := html.Parse(strings.NewReader(input))
	z := htmldom.Zip(doc)

Element and document nodes count as branches; text, comment and doctype
nodes are leaves. Nodes handed to edit operations (replacements, inserted
siblings or children) must be detached, i.e. have no parent; they are
adopted as-is. Nodes still linked into a document are copied before being
woven into a rebuilt tree.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package htmldom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'zipper.htmldom'.
func tracer() tracing.Trace {
	return tracing.Select("zipper.htmldom")
}
