package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "errors"

// ErrAttributeType is flagged if a value of the wrong type is supplied for
// an attribute: a non-boolean for a boolean attribute, or a non-string for
// any other attribute.
var ErrAttributeType = errors.New("attribute value has wrong type")

// ErrNodeType is flagged if a structural operation is attempted on a node
// which cannot carry child nodes, i.e. a text node or a self-closing tag.
var ErrNodeType = errors.New("node cannot hold child nodes")

// ErrDOMTree is flagged if the reference node of an insert- or remove-
// operation is not an immediate child of the node operated on.
var ErrDOMTree = errors.New("reference node is not an immediate child")
