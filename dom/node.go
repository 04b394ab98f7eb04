package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
)

// ContentKind is the content variant discriminator for nodes.
type ContentKind uint8

const (
	KindChildren ContentKind = iota // ordered list of owned child nodes
	KindText                        // a text leaf
	KindEmpty                       // no content; used for self-closing tags
)

// String returns the string representation of a ContentKind.
func (k ContentKind) String() string {
	switch k {
	case KindChildren:
		return "Children"
	case KindText:
		return "Text"
	case KindEmpty:
		return "Empty"
	}
	return "Unknown"
}

// selfClosingTags is the fixed set of tags which carry no content and no
// closing markup.
var selfClosingTags = []string{"img", "br", "hr", "input"}

// IsSelfClosing returns true if tag is inherently self-closing.
func IsSelfClosing(tag string) bool {
	for _, t := range selfClosingTags {
		if t == tag {
			return true
		}
	}
	return false
}

// rootIdentity is the identity sentinel for nodes which have not yet been
// inserted into a document or another node.
const rootIdentity = "Root"

// Node is the building block of a document tree. A node carries a tag name,
// fixed at construction, an ordered set of attributes, and one of three
// content variants (see ContentKind).
type Node struct {
	tagName  string
	attrs    []Attribute
	kind     ContentKind
	text     string
	children []*Node
	nodeID   string // identity within the owning scope, "Root" until inserted
	maxID    int    // counter for minting identities of inserted children
}

// NewNode creates a node with the given tag name. The node starts out with
// (empty) children content, except for self-closing tags, which have no
// content at all.
func NewNode(tag string) *Node {
	node := &Node{tagName: tag, nodeID: rootIdentity}
	if IsSelfClosing(tag) {
		node.kind = KindEmpty
	}
	return node
}

// NewTextNode creates a node with text content. Self-closing tags cannot
// carry content; supplying one is flagged with ErrNodeType.
func NewTextNode(tag string, text string) (*Node, error) {
	if IsSelfClosing(tag) {
		return nil, fmt.Errorf("cannot create text node <%s>: %w", tag, ErrNodeType)
	}
	node := NewNode(tag)
	node.kind = KindText
	node.text = text
	return node, nil
}

// NewNodeWithChildren creates a node with children content, owning the given
// child nodes in order. Self-closing tags cannot carry content; supplying
// children for one is flagged with ErrNodeType.
//
// The children do not receive identities until the new node itself is
// inserted into a document or another node.
func NewNodeWithChildren(tag string, children ...*Node) (*Node, error) {
	if IsSelfClosing(tag) && len(children) > 0 {
		return nil, fmt.Errorf("cannot create node <%s> with children: %w", tag, ErrNodeType)
	}
	node := NewNode(tag)
	node.children = append(node.children, children...)
	return node, nil
}

func (n *Node) String() string {
	return fmt.Sprintf("(Node <%s> %s #ch=%d)", n.tagName, n.kind, len(n.children))
}

// TagName returns the node's tag name.
func (n *Node) TagName() string {
	return n.tagName
}

// ContentKind returns the node's content variant.
func (n *Node) ContentKind() ContentKind {
	return n.kind
}

// ChildNodes returns the node's child nodes. For text content consisting of
// the empty string it returns an empty list. For non-empty text content and
// for self-closing tags no children are obtainable and ok will be false.
func (n *Node) ChildNodes() ([]*Node, bool) {
	switch n.kind {
	case KindChildren:
		return n.children, true
	case KindText:
		if n.text == "" {
			return []*Node{}, true
		}
	}
	return nil, false
}

// TextContent returns the node's text content. Children content yields the
// empty string if, and only if, the child list is empty; otherwise, and for
// self-closing tags, no text is obtainable and ok will be false.
func (n *Node) TextContent() (string, bool) {
	switch n.kind {
	case KindText:
		return n.text, true
	case KindChildren:
		if len(n.children) == 0 {
			return "", true
		}
	}
	return "", false
}

// SetTextContent switches the node to text content, discarding any child
// nodes it previously owned.
func (n *Node) SetTextContent(text string) {
	if n.kind == KindChildren && len(n.children) > 0 {
		tracer().Debugf("node %s drops %d children for text content", n, len(n.children))
	}
	n.kind = KindText
	n.text = text
	n.children = nil
}

// --- Identity & mutation -----------------------------------------------

// Identity returns the node's identity within its owning scope. Nodes which
// have never been inserted anywhere answer with the sentinel "Root".
//
// Identities address nodes for insert-before and remove. They are stamped
// uniformly onto an inserted subtree: every node inserted by one call
// carries the same identity string.
func (n *Node) Identity() string {
	return n.nodeID
}

// AssignIdentity stamps id onto node and propagates it to every node of the
// subtree below it. It is used by owning scopes when a node is inserted.
func AssignIdentity(node *Node, id string) {
	node.nodeID = id
	if node.kind == KindChildren {
		for _, ch := range node.children {
			AssignIdentity(ch, id)
		}
	}
}

// IndexOf returns the position of the child whose identity equals the
// identity of ref, or -1 if ref is not among nodes.
func IndexOf(nodes []*Node, ref *Node) int {
	for i, node := range nodes {
		if node.nodeID == ref.nodeID {
			return i
		}
	}
	return -1
}

// ensureContainer checks that n may take part in structural mutation.
// Nodes with non-empty text content and self-closing tags cannot.
func (n *Node) ensureContainer(op string) error {
	switch n.kind {
	case KindText:
		if n.text != "" {
			return fmt.Errorf("cannot %s on text node <%s>: %w", op, n.tagName, ErrNodeType)
		}
	case KindEmpty:
		return fmt.Errorf("cannot %s on self-closing tag <%s>: %w", op, n.tagName, ErrNodeType)
	}
	return nil
}

// adopt converts empty text content back to children content and mints a
// fresh identity for a node about to be inserted below n.
func (n *Node) adopt(child *Node) {
	if n.kind == KindText { // empty text, ensured by callers
		n.kind = KindChildren
		n.text = ""
	}
	n.maxID++
	AssignIdentity(child, fmt.Sprintf("%s>%d", n.nodeID, n.maxID))
}

// AppendChild inserts child at the end of the node's child sequence,
// assigning a fresh identity to the inserted subtree. Appending to a node
// with non-empty text content or to a self-closing tag is flagged with
// ErrNodeType.
func (n *Node) AppendChild(child *Node) error {
	if err := n.ensureContainer("append child"); err != nil {
		return err
	}
	n.adopt(child)
	n.children = append(n.children, child)
	tracer().Debugf("appended %s to %s as %q", child, n, child.nodeID)
	return nil
}

// InsertBefore splices child directly before the immediate child whose
// identity equals before's identity, assigning a fresh identity to the
// inserted subtree. If no immediate child matches, the insertion is flagged
// with ErrDOMTree.
func (n *Node) InsertBefore(before *Node, child *Node) error {
	if err := n.ensureContainer("insert child"); err != nil {
		return err
	}
	i := IndexOf(n.children, before)
	if i < 0 {
		return fmt.Errorf("cannot insert before %s: %w", before, ErrDOMTree)
	}
	n.adopt(child)
	n.children = append(n.children, nil)
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = child
	tracer().Debugf("inserted %s into %s at position %d", child, n, i)
	return nil
}

// RemoveChild removes the immediate child whose identity equals child's
// identity. If no immediate child matches, the removal is flagged with
// ErrDOMTree. Removal does not search recursively.
func (n *Node) RemoveChild(child *Node) error {
	if err := n.ensureContainer("remove child"); err != nil {
		return err
	}
	i := IndexOf(n.children, child)
	if i < 0 {
		return fmt.Errorf("cannot remove %s: %w", child, ErrDOMTree)
	}
	n.children = append(n.children[:i], n.children[i+1:]...)
	tracer().Debugf("removed %s from %s", child, n)
	return nil
}
