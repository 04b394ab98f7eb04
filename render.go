package htmldoc

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/htmldoc/dom"
	"golang.org/x/net/html"
)

// ExportOptions configures the serializer. The zero value selects the
// defaults: an indentation unit of four spaces, a soft line-length limit of
// 185 characters, and "index.html" as the export path.
type ExportOptions struct {
	Indent    string // indentation unit
	LineLimit int    // soft line-length limit, exclusive of leading indent
	Path      string // output path for Export
}

const (
	defaultIndent    = "    "
	defaultLineLimit = 185
	defaultPath      = "index.html"
)

func (opts ExportOptions) withDefaults() ExportOptions {
	if opts.Indent == "" {
		opts.Indent = defaultIndent
	}
	if opts.LineLimit == 0 {
		opts.LineLimit = defaultLineLimit
	}
	if opts.Path == "" {
		opts.Path = defaultPath
	}
	return opts
}

// printer emits newline-prefixed, indented lines, remembering the first
// write error.
type printer struct {
	w      io.Writer
	indent string
	limit  int
	depth  int
	err    error
}

func (p *printer) raw(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}

func (p *printer) line(s string) {
	p.raw("\n" + strings.Repeat(p.indent, p.depth) + s)
}

// Render renders the full document and returns it as text.
func (doc *Document) Render(opts ExportOptions) (string, error) {
	var buf bytes.Buffer
	if err := doc.Write(&buf, opts); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Write streams the full document to w: the doctype preamble, the head with
// metadata, title, style block and stylesheet links, and the body with the
// document's node trees, script block and external script tags. An empty
// document body is emitted as a self-closing <body />.
func (doc *Document) Write(w io.Writer, opts ExportOptions) error {
	opts = opts.withDefaults()
	p := &printer{w: w, indent: opts.Indent, limit: opts.LineLimit}
	p.raw(doc.doctype.preamble())
	p.line("<html>")
	p.depth++
	p.line("<head>")
	p.depth++
	for _, meta := range doc.metadata {
		p.line(renderMeta(meta))
	}
	p.line("<title>" + html.EscapeString(doc.title) + "</title>")
	if doc.internalCSS != "" {
		p.line("<style>")
		p.depth++
		for _, ln := range strings.Split(doc.internalCSS, "\n") {
			p.line(ln)
		}
		p.depth--
		p.line("</style>")
	}
	for _, url := range doc.css {
		p.line(`<link rel="stylesheet" href="` + html.EscapeString(url) + `">`)
	}
	p.depth--
	p.line("</head>")
	hasBody := len(doc.domTree) > 0
	if hasBody {
		p.line("<body>")
		p.depth++
		for _, node := range doc.domTree {
			renderNode(p, node, false)
		}
	} else {
		p.line("<body />")
	}
	if doc.js != "" {
		p.line("<script>")
		p.depth++
		for _, ln := range strings.Split(doc.js, "\n") {
			p.line(ln)
		}
		p.depth--
		p.line("</script>")
	}
	for _, url := range doc.externalJS {
		p.line(`<script src="` + html.EscapeString(url) + `"></script>`)
	}
	if hasBody {
		p.depth--
		p.line("</body>")
	}
	p.depth--
	p.line("</html>")
	p.raw("\n")
	return p.err
}

func renderMeta(meta Meta) string {
	var b strings.Builder
	b.WriteString("<meta")
	for _, a := range meta {
		fmt.Fprintf(&b, ` %s="%s"`, a.Key, html.EscapeString(a.Value))
	}
	b.WriteString(">")
	return b.String()
}

// openTag renders a node's opening tag with all attributes in stored order.
// Class lists render space-joined; boolean attributes render as bare names
// when true and are omitted when false.
func openTag(node *dom.Node) string {
	var b strings.Builder
	b.WriteString("<" + node.TagName())
	for _, a := range node.Attributes() {
		if a.Value.Kind() == dom.AttrBool {
			if a.Value.Bool() {
				b.WriteString(" " + a.Key)
			}
			continue
		}
		fmt.Fprintf(&b, ` %s="%s"`, a.Key, html.EscapeString(a.Value.String()))
	}
	b.WriteString(">")
	return b.String()
}

// renderNode emits a node and its subtree. Unless inline is set, the opening
// tag starts on a fresh line at the current indent. Indentation is restored
// to its pre-call value after the subtree has been rendered.
func renderNode(p *printer, node *dom.Node, inline bool) {
	emit := p.line
	if inline {
		emit = p.raw
	}
	switch node.ContentKind() {
	case dom.KindEmpty:
		emit(strings.TrimSuffix(openTag(node), ">") + " />")
	case dom.KindText:
		text, _ := node.TextContent()
		renderText(p, openTag(node), html.EscapeString(text), closeTag(node), emit)
	case dom.KindChildren:
		children, _ := node.ChildNodes()
		if node.TagName() == "a" && len(children) == 1 {
			// keep single-link anchors compact on one line
			emit(openTag(node))
			renderNode(p, children[0], true)
			p.raw(closeTag(node))
			return
		}
		emit(openTag(node))
		p.depth++
		for _, ch := range children {
			renderNode(p, ch, false)
		}
		p.depth--
		p.line(closeTag(node))
	}
}

func closeTag(node *dom.Node) string {
	return "</" + node.TagName() + ">"
}

// renderText emits text content on a single line if the rendered form fits
// within the line limit. Longer text is sliced into chunks of exactly limit
// characters, counting runes rather than words, and emitted on indented
// continuation lines with the closing tag back at the original indent.
func renderText(p *printer, open string, text string, closing string, emit func(string)) {
	if utf8.RuneCountInString(open+text+closing) <= p.limit {
		emit(open + text + closing)
		return
	}
	emit(open)
	p.depth++
	runes := []rune(text)
	for len(runes) > p.limit {
		p.line(string(runes[:p.limit]))
		runes = runes[p.limit:]
	}
	p.line(string(runes))
	p.depth--
	p.line(closing)
}
