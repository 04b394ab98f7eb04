/*
Package dom provides the node model for programmatically built HTML
documents: a tree of mutable nodes, each carrying a tag name, an ordered
set of attributes and one of three content variants (text, child nodes,
or no content at all for self-closing tags).

Nodes are created standalone and become owned as soon as they are inserted
into a document or into another node. Insertion assigns an identity to the
inserted subtree; insert-before and remove address their reference node by
that identity and only ever inspect the immediate children of the node the
call is made on.

Trees are strictly single-owner and never share nodes. No locking is done
internally; concurrent mutation of the same tree requires external mutual
exclusion.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'htmldoc.dom'.
func tracer() tracing.Trace {
	return tracing.Select("htmldoc.dom")
}
