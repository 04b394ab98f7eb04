/*
Package domdbg implements helpers to debug a document tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package domdbg

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/npillmayer/htmldoc/dom"
	tp "github.com/xlab/treeprint"
)

// Print returns a textual diagram of the tree rooted at node.
func Print(node *dom.Node) string {
	p := tp.New()
	branch(p, node)
	return p.String()
}

// Fprint writes a textual diagram of the tree rooted at node to w.
func Fprint(w io.Writer, node *dom.Node) error {
	_, err := io.WriteString(w, Print(node))
	return err
}

// Log dumps the tree rooted at node to the test log.
func Log(t *testing.T, node *dom.Node) {
	t.Logf("tree =\n%s", Print(node))
}

func branch(p tp.Tree, node *dom.Node) {
	if node == nil {
		return
	}
	children, ok := node.ChildNodes()
	if !ok || len(children) == 0 {
		p.AddNode(label(node))
		return
	}
	b := p.AddBranch(label(node))
	for _, ch := range children {
		branch(b, ch)
	}
}

// label condenses a node into one line: tag, attributes, identity and a
// shortened text excerpt.
func label(node *dom.Node) string {
	var b strings.Builder
	b.WriteString("<" + node.TagName())
	for _, a := range node.Attributes() {
		fmt.Fprintf(&b, " %s=%q", a.Key, a.Value.String())
	}
	b.WriteString(">")
	if text, ok := node.TextContent(); ok && text != "" {
		b.WriteString(" " + shortText(text))
	}
	fmt.Fprintf(&b, " #%s", node.Identity())
	return b.String()
}

func shortText(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) > 20 {
		s = s[:20] + "…"
	}
	return fmt.Sprintf("%q", s)
}
