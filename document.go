package htmldoc

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/npillmayer/htmldoc/dom"
)

// ErrNotRegistered is flagged if a metadata entry, stylesheet URL or script
// URL is removed which is not currently registered with the document.
var ErrNotRegistered = errors.New("resource is not registered with the document")

// Doctype enumerates the document types a Document may declare.
type Doctype uint8

const (
	HTML5 Doctype = iota
	HTML4
	XHTML
)

// String returns the name of a doctype.
func (dt Doctype) String() string {
	switch dt {
	case HTML5:
		return "HTML5"
	case HTML4:
		return "HTML4"
	case XHTML:
		return "XHTML"
	}
	return "Unknown"
}

// preamble returns the literal doctype declaration.
func (dt Doctype) preamble() string {
	switch dt {
	case HTML4:
		return `<!DOCTYPE HTML PUBLIC "-//W3C//DTD HTML 4.01//EN" "http://www.w3.org/TR/html4/strict.dtd">`
	case XHTML:
		return `<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Strict//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd">`
	}
	return "<!DOCTYPE html>"
}

// MetaAttr is one attribute of a meta tag.
type MetaAttr struct {
	Key   string
	Value string
}

// Meta describes a single <meta> tag as an ordered list of attributes.
type Meta []MetaAttr

// Charset returns a Meta carrying a charset declaration.
func Charset(charset string) Meta {
	return Meta{{Key: "charset", Value: charset}}
}

// NameContent returns a Meta with name and content attributes, the common
// shape of most meta tags.
func NameContent(name string, content string) Meta {
	return Meta{{Key: "name", Value: name}, {Key: "content", Value: content}}
}

func (m Meta) equals(other Meta) bool {
	if len(m) != len(other) {
		return false
	}
	for i, a := range m {
		if other[i] != a {
			return false
		}
	}
	return true
}

// Document is the root container for an HTML page: page-level metadata plus
// an ordered list of root-level owned nodes.
//
// A Document is constructed once with a title, mutated through an arbitrary
// sequence of calls, queried any number of times, and rendered (read-only)
// on demand. There is no teardown.
type Document struct {
	doctype     Doctype
	title       string
	metadata    []Meta
	css         []string
	internalCSS string
	js          string
	externalJS  []string
	domTree     []*dom.Node
	maxID       int
}

// NewDocument creates a document with the given title. The document defaults
// to the HTML5 doctype and a single charset=utf-8 metadata entry; both may
// be overridden afterwards.
func NewDocument(title string) *Document {
	return &Document{
		title:    title,
		metadata: []Meta{Charset("utf-8")},
	}
}

// Title returns the document title.
func (doc *Document) Title() string { return doc.title }

// SetTitle sets the document title.
func (doc *Document) SetTitle(title string) { doc.title = title }

// Doctype returns the document's doctype.
func (doc *Document) Doctype() Doctype { return doc.doctype }

// SetDoctype sets the document's doctype.
func (doc *Document) SetDoctype(dt Doctype) { doc.doctype = dt }

// --- Metadata, stylesheets, scripts ---------------------------------------

// Metadata returns the document's meta entries in order.
func (doc *Document) Metadata() []Meta { return doc.metadata }

// SetMetadata overwrites the document's meta entries, including the default
// charset entry.
func (doc *Document) SetMetadata(metadata []Meta) { doc.metadata = metadata }

// AddMeta appends a meta entry.
func (doc *Document) AddMeta(meta Meta) {
	doc.metadata = append(doc.metadata, meta)
}

// RemoveMeta removes the first meta entry equal to meta. Removing an entry
// which is not registered is flagged with ErrNotRegistered.
func (doc *Document) RemoveMeta(meta Meta) error {
	for i, m := range doc.metadata {
		if m.equals(meta) {
			doc.metadata = append(doc.metadata[:i], doc.metadata[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("cannot remove meta entry: %w", ErrNotRegistered)
}

// Stylesheets returns the URLs of external stylesheets in order.
func (doc *Document) Stylesheets() []string { return doc.css }

// AddStylesheet registers the URL of an external stylesheet.
func (doc *Document) AddStylesheet(url string) {
	doc.css = append(doc.css, url)
}

// RemoveStylesheet removes a registered stylesheet URL. Removing a URL which
// is not registered is flagged with ErrNotRegistered.
func (doc *Document) RemoveStylesheet(url string) error {
	for i, u := range doc.css {
		if u == url {
			doc.css = append(doc.css[:i], doc.css[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("cannot remove stylesheet %q: %w", url, ErrNotRegistered)
}

// ScriptFiles returns the URLs of external scripts in order.
func (doc *Document) ScriptFiles() []string { return doc.externalJS }

// AddScriptFile registers the URL of an external script.
func (doc *Document) AddScriptFile(url string) {
	doc.externalJS = append(doc.externalJS, url)
}

// RemoveScriptFile removes a registered script URL. Removing a URL which is
// not registered is flagged with ErrNotRegistered.
func (doc *Document) RemoveScriptFile(url string) error {
	for i, u := range doc.externalJS {
		if u == url {
			doc.externalJS = append(doc.externalJS[:i], doc.externalJS[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("cannot remove script %q: %w", url, ErrNotRegistered)
}

// InternalCSS returns the raw text of the document's style block.
func (doc *Document) InternalCSS() string { return doc.internalCSS }

// SetInternalCSS sets the raw text of the document's style block. The text
// is emitted verbatim at rendering; see AppendCSS for a validated variant.
func (doc *Document) SetInternalCSS(css string) { doc.internalCSS = css }

// Script returns the raw text of the document's script block.
func (doc *Document) Script() string { return doc.js }

// SetScript sets the raw text of the document's script block, emitted
// verbatim at rendering.
func (doc *Document) SetScript(js string) { doc.js = js }

// --- Node tree -------------------------------------------------------------

// Nodes returns the document's root-level nodes in document order.
func (doc *Document) Nodes() []*dom.Node { return doc.domTree }

// AppendChild inserts node at the end of the document's root node sequence,
// assigning a fresh identity to the inserted subtree.
func (doc *Document) AppendChild(node *dom.Node) {
	doc.maxID++
	dom.AssignIdentity(node, strconv.Itoa(doc.maxID))
	doc.domTree = append(doc.domTree, node)
	tracer().Debugf("appended %s to document as %q", node, node.Identity())
}

// InsertBefore splices node directly before the root-level node whose
// identity equals before's identity, assigning a fresh identity to the
// inserted subtree. If no root-level node matches, the insertion is flagged
// with dom.ErrDOMTree.
func (doc *Document) InsertBefore(before *dom.Node, node *dom.Node) error {
	i := dom.IndexOf(doc.domTree, before)
	if i < 0 {
		return fmt.Errorf("cannot insert before %s: %w", before, dom.ErrDOMTree)
	}
	doc.maxID++
	dom.AssignIdentity(node, strconv.Itoa(doc.maxID))
	doc.domTree = append(doc.domTree, nil)
	copy(doc.domTree[i+1:], doc.domTree[i:])
	doc.domTree[i] = node
	return nil
}

// RemoveChild removes the root-level node whose identity equals node's
// identity. If no root-level node matches, the removal is flagged with
// dom.ErrDOMTree. Removal does not search recursively.
func (doc *Document) RemoveChild(node *dom.Node) error {
	i := dom.IndexOf(doc.domTree, node)
	if i < 0 {
		return fmt.Errorf("cannot remove %s: %w", node, dom.ErrDOMTree)
	}
	doc.domTree = append(doc.domTree[:i], doc.domTree[i+1:]...)
	return nil
}

// --- Queries ----------------------------------------------------------------

// GetByID returns the first node in the document whose id attribute equals
// id, in pre-order, or ok == false if none matches.
func (doc *Document) GetByID(id string) (*dom.Node, bool) {
	return dom.ByID(doc.domTree, id)
}

// GetByClassName returns every node in the document whose class list
// contains class, in document order.
func (doc *Document) GetByClassName(class string) []*dom.Node {
	return dom.ByClassName(doc.domTree, class)
}

// GetByTagName returns every node in the document with the given tag name,
// in document order.
func (doc *Document) GetByTagName(tag string) []*dom.Node {
	return dom.ByTagName(doc.domTree, tag)
}

// QuerySelector returns the first node in the document matching the CSS
// selector, or nil if nothing matches.
func (doc *Document) QuerySelector(selector string) (*dom.Node, error) {
	matches, err := dom.Select(doc.domTree, selector)
	if err != nil || len(matches) == 0 {
		return nil, err
	}
	return matches[0], nil
}

// QuerySelectorAll returns every node in the document matching the CSS
// selector, in document order.
func (doc *Document) QuerySelectorAll(selector string) ([]*dom.Node, error) {
	return dom.Select(doc.domTree, selector)
}
