package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// CSS-selector queries complement the fixed id/class/tag searches. A
// selector is matched by mirroring the node trees into golang.org/x/net/html
// nodes and running cascadia over the mirror; matches are mapped back onto
// the originating nodes.

// Select matches a CSS selector against the trees rooted at nodes and
// returns the matching nodes in document order. An invalid selector is
// flagged with a cascadia compile error.
func Select(nodes []*Node, selector string) ([]*Node, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("cannot compile selector %q: %w", selector, err)
	}
	backref := make(map[*html.Node]*Node)
	root := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	for _, node := range nodes {
		root.AppendChild(node.mirror(backref))
	}
	var matches []*Node
	for _, m := range sel.MatchAll(root) {
		if node, ok := backref[m]; ok {
			matches = append(matches, node)
		}
	}
	return matches, nil
}

// mirror builds an x/net/html twin of the subtree rooted at n, recording
// the mapping from mirror nodes back to their originals.
func (n *Node) mirror(backref map[*html.Node]*Node) *html.Node {
	h := &html.Node{
		Type:     html.ElementNode,
		Data:     n.tagName,
		DataAtom: atom.Lookup([]byte(n.tagName)),
	}
	for _, a := range n.attrs {
		if a.Value.Kind() == AttrBool {
			if a.Value.Bool() { // boolean attributes mirror by presence
				h.Attr = append(h.Attr, html.Attribute{Key: a.Key})
			}
			continue
		}
		h.Attr = append(h.Attr, html.Attribute{Key: a.Key, Val: a.Value.String()})
	}
	backref[h] = n
	switch n.kind {
	case KindText:
		if n.text != "" {
			h.AppendChild(&html.Node{Type: html.TextNode, Data: n.text})
		}
	case KindChildren:
		for _, ch := range n.children {
			h.AppendChild(ch.mirror(backref))
		}
	}
	return h
}

// QuerySelector returns the first descendant matching the CSS selector, in
// pre-order, or nil if nothing matches. The node itself is not considered.
func (n *Node) QuerySelector(selector string) (*Node, error) {
	matches, err := n.QuerySelectorAll(selector)
	if err != nil || len(matches) == 0 {
		return nil, err
	}
	return matches[0], nil
}

// QuerySelectorAll returns every descendant matching the CSS selector, in
// document order. The node itself is not considered.
func (n *Node) QuerySelectorAll(selector string) ([]*Node, error) {
	if n.kind != KindChildren {
		return nil, nil
	}
	return Select(n.children, selector)
}
