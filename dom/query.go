package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// The query engine performs depth-first, pre-order traversals: a node is
// visited before its children, children in document order. Traversal only
// recurses into children content; text nodes and self-closing tags are
// leaves.

// findFirst returns the first node matching the predicate, in pre-order.
func findFirst(nodes []*Node, match func(*Node) bool) (*Node, bool) {
	for _, node := range nodes {
		if match(node) {
			return node, true
		}
		if node.kind == KindChildren {
			if found, ok := findFirst(node.children, match); ok {
				return found, true
			}
		}
	}
	return nil, false
}

// findAll returns every node matching the predicate, in pre-order.
func findAll(nodes []*Node, match func(*Node) bool) []*Node {
	var matches []*Node
	for _, node := range nodes {
		if match(node) {
			matches = append(matches, node)
		}
		if node.kind == KindChildren {
			matches = append(matches, findAll(node.children, match)...)
		}
	}
	return matches
}

// ByID returns the first node below nodes whose id attribute equals id.
// Traversal stops at the first match.
func ByID(nodes []*Node, id string) (*Node, bool) {
	return findFirst(nodes, func(n *Node) bool {
		return n.ID() == id && id != ""
	})
}

// ByClassName returns every node below nodes whose class list contains
// class, in document order.
func ByClassName(nodes []*Node, class string) []*Node {
	return findAll(nodes, func(n *Node) bool {
		return n.HasClass(class)
	})
}

// ByTagName returns every node below nodes with the given tag name, in
// document order.
func ByTagName(nodes []*Node, tag string) []*Node {
	return findAll(nodes, func(n *Node) bool {
		return n.tagName == tag
	})
}

// GetByID searches the node's descendants for the first one whose id
// attribute equals id. The node itself is not considered.
func (n *Node) GetByID(id string) (*Node, bool) {
	if n.kind != KindChildren {
		return nil, false
	}
	return ByID(n.children, id)
}

// GetByClassName returns all descendants whose class list contains class,
// in document order. The node itself is not considered.
func (n *Node) GetByClassName(class string) []*Node {
	if n.kind != KindChildren {
		return nil
	}
	return ByClassName(n.children, class)
}

// GetByTagName returns all descendants with the given tag name, in document
// order. The node itself is not considered.
func (n *Node) GetByTagName(tag string) []*Node {
	if n.kind != KindChildren {
		return nil
	}
	return ByTagName(n.children, tag)
}
