package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strconv"
	"strings"
)

// booleanAttributes is the fixed set of attribute names whose values must
// be boolean.
var booleanAttributes = []string{"checked", "disabled"}

// IsBooleanAttribute returns true if name belongs to the fixed set of
// boolean attributes.
func IsBooleanAttribute(name string) bool {
	for _, a := range booleanAttributes {
		if a == name {
			return true
		}
	}
	return false
}

// AttrKind is the variant discriminator for attribute values.
type AttrKind uint8

const (
	AttrNull      AttrKind = iota // attribute is not present
	AttrString                    // a plain string value
	AttrBool                      // a boolean value (checked, disabled)
	AttrClassList                 // the class attribute, an ordered class-name list
)

// AttrValue is a tagged attribute value. The zero value is the null value,
// denoting the absence of an attribute.
type AttrValue struct {
	kind    AttrKind
	str     string
	flag    bool
	classes []string
}

// StringValue wraps a plain string as an attribute value.
func StringValue(s string) AttrValue {
	return AttrValue{kind: AttrString, str: s}
}

// BoolValue wraps a boolean as an attribute value.
func BoolValue(b bool) AttrValue {
	return AttrValue{kind: AttrBool, flag: b}
}

// ClassListValue wraps an ordered list of class names as an attribute value.
func ClassListValue(classes ...string) AttrValue {
	return AttrValue{kind: AttrClassList, classes: classes}
}

// Kind returns the variant of an attribute value.
func (v AttrValue) Kind() AttrKind {
	return v.kind
}

// IsNull returns true for the null value, i.e. an absent attribute.
func (v AttrValue) IsNull() bool {
	return v.kind == AttrNull
}

// String returns the textual form of an attribute value: class lists are
// joined by single spaces, booleans read "true"/"false", and the null value
// is the empty string.
func (v AttrValue) String() string {
	switch v.kind {
	case AttrString:
		return v.str
	case AttrBool:
		return strconv.FormatBool(v.flag)
	case AttrClassList:
		return strings.Join(v.classes, " ")
	}
	return ""
}

// Bool returns the boolean form of an attribute value; false for every
// non-boolean variant.
func (v AttrValue) Bool() bool {
	return v.kind == AttrBool && v.flag
}

// Classes returns the class-name list of a class-list value, nil otherwise.
func (v AttrValue) Classes() []string {
	if v.kind != AttrClassList {
		return nil
	}
	return v.classes
}

// Attribute is a single attribute of a node. Attributes keep the order in
// which they were first set.
type Attribute struct {
	Key   string
	Value AttrValue
}

// Attributes returns the node's attributes in stored order.
func (n *Node) Attributes() []Attribute {
	attrs := make([]Attribute, len(n.attrs))
	copy(attrs, n.attrs)
	return attrs
}

func (n *Node) lookupAttr(name string) (AttrValue, bool) {
	for _, a := range n.attrs {
		if a.Key == name {
			return a.Value, true
		}
	}
	return AttrValue{}, false
}

// storeAttr sets an attribute, keeping the position of an already present
// attribute of the same name.
func (n *Node) storeAttr(name string, value AttrValue) {
	for i, a := range n.attrs {
		if a.Key == name {
			n.attrs[i].Value = value
			return
		}
	}
	n.attrs = append(n.attrs, Attribute{Key: name, Value: value})
}

func (n *Node) removeAttr(name string) {
	for i, a := range n.attrs {
		if a.Key == name {
			n.attrs = append(n.attrs[:i], n.attrs[i+1:]...)
			return
		}
	}
}

// Attr returns the current value for an attribute name. The class attribute
// is read back as its space-joined textual form. Absent boolean attributes
// read as false; any other absent attribute reads as the null value.
func (n *Node) Attr(name string) AttrValue {
	if v, ok := n.lookupAttr(name); ok {
		if v.kind == AttrClassList {
			return StringValue(v.String())
		}
		return v
	}
	if IsBooleanAttribute(name) {
		return BoolValue(false)
	}
	return AttrValue{}
}

// SetAttr sets an attribute, or removes it if value is the empty string.
// The value's type must match the attribute name: boolean attributes require
// a bool, class accepts a space-separated string or a []string, and every
// other attribute requires a string. A mismatch is flagged with
// ErrAttributeType.
//
// SetAttr returns the stored (possibly normalized) value; removal returns
// the null value.
func (n *Node) SetAttr(name string, value interface{}) (AttrValue, error) {
	if s, ok := value.(string); ok && s == "" {
		n.removeAttr(name)
		return AttrValue{}, nil
	}
	if IsBooleanAttribute(name) {
		b, ok := value.(bool)
		if !ok {
			return AttrValue{}, fmt.Errorf("attribute %q expects a boolean, got %T: %w",
				name, value, ErrAttributeType)
		}
		v := BoolValue(b)
		n.storeAttr(name, v)
		return v, nil
	}
	if name == "class" {
		switch classes := value.(type) {
		case string:
			v := ClassListValue(strings.Split(classes, " ")...)
			n.storeAttr(name, v)
			return v, nil
		case []string:
			v := ClassListValue(classes...)
			n.storeAttr(name, v)
			return v, nil
		}
		return AttrValue{}, fmt.Errorf("attribute %q expects a string or a string list, got %T: %w",
			name, value, ErrAttributeType)
	}
	s, ok := value.(string)
	if !ok {
		return AttrValue{}, fmt.Errorf("attribute %q expects a string, got %T: %w",
			name, value, ErrAttributeType)
	}
	v := StringValue(s)
	n.storeAttr(name, v)
	return v, nil
}

// --- Class handling ------------------------------------------------------

// Classes returns the node's class list, empty if no classes are set.
func (n *Node) Classes() []string {
	if v, ok := n.lookupAttr("class"); ok {
		return v.Classes()
	}
	return []string{}
}

// SetClasses overwrites the node's entire class list. For convenience,
// elements containing spaces are split into separate class names.
func (n *Node) SetClasses(classes ...string) []string {
	var list []string
	for _, c := range classes {
		list = append(list, strings.Split(c, " ")...)
	}
	n.storeAttr("class", ClassListValue(list...))
	return list
}

// AddClass adds a class name to the node. Adding an already present class
// is a no-op.
func (n *Node) AddClass(class string) {
	list := n.Classes()
	for _, c := range list {
		if c == class {
			return
		}
	}
	n.storeAttr("class", ClassListValue(append(list, class)...))
}

// RemoveClass removes a class name from the node. Removing an absent class
// is a no-op.
func (n *Node) RemoveClass(class string) {
	list := n.Classes()
	for i, c := range list {
		if c == class {
			n.storeAttr("class", ClassListValue(append(list[:i], list[i+1:]...)...))
			return
		}
	}
}

// HasClass returns true if the node's class list contains class.
func (n *Node) HasClass(class string) bool {
	for _, c := range n.Classes() {
		if c == class {
			return true
		}
	}
	return false
}
