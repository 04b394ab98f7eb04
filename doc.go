/*
Package htmldoc builds HTML documents programmatically and serializes them
to well-formatted markup, without hand-writing HTML strings.

A Document is the root container: it owns page-level metadata (doctype,
meta entries, title, stylesheet and script references, raw style/script
text) plus an ordered list of root-level nodes (package dom). Clients
mutate the tree through append/insert/remove operations, query it by id,
class, tag name or CSS selector, and finally render it once:

    doc := htmldoc.NewDocument("Greeting")
    par, _ := dom.NewTextNode("p", "Hello, World!")
    doc.AppendChild(par)
    doc.Export(htmldoc.ExportOptions{Path: "hello.html"})

Rendering is deterministic: indentation by a configurable unit (four spaces
by default) and soft line-wrapping of text content at a configurable
character count (185 by default).

This package is not an HTML parser (markup is never read back into the
model) and it does not validate tag or attribute names against a schema.
Style and script bodies are opaque text.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package htmldoc

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'htmldoc.document'.
func tracer() tracing.Trace {
	return tracing.Select("htmldoc.document")
}
