package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Shorthand accessors for frequently used attributes. Every getter/setter
// pair is pure shorthand over Attr/SetAttr with an identical contract; in
// particular, setting the empty string removes the attribute.

// setString stores a string attribute. It cannot fail for non-boolean
// attribute names.
func (n *Node) setString(name string, value string) string {
	v, _ := n.SetAttr(name, value)
	return v.String()
}

// ID returns the node's id attribute, the empty string if unset.
func (n *Node) ID() string { return n.Attr("id").String() }

// SetID sets the node's id attribute.
func (n *Node) SetID(id string) string { return n.setString("id", id) }

// Href returns the node's href attribute, the empty string if unset.
func (n *Node) Href() string { return n.Attr("href").String() }

// SetHref sets the node's href attribute.
func (n *Node) SetHref(href string) string { return n.setString("href", href) }

// Target returns the node's target attribute, the empty string if unset.
func (n *Node) Target() string { return n.Attr("target").String() }

// SetTarget sets the node's target attribute.
func (n *Node) SetTarget(target string) string { return n.setString("target", target) }

// Src returns the node's src attribute, the empty string if unset.
func (n *Node) Src() string { return n.Attr("src").String() }

// SetSrc sets the node's src attribute.
func (n *Node) SetSrc(src string) string { return n.setString("src", src) }

// Width returns the node's width attribute, the empty string if unset.
func (n *Node) Width() string { return n.Attr("width").String() }

// SetWidth sets the node's width attribute.
func (n *Node) SetWidth(width string) string { return n.setString("width", width) }

// Height returns the node's height attribute, the empty string if unset.
func (n *Node) Height() string { return n.Attr("height").String() }

// SetHeight sets the node's height attribute.
func (n *Node) SetHeight(height string) string { return n.setString("height", height) }

// For returns the node's for attribute, the empty string if unset.
func (n *Node) For() string { return n.Attr("for").String() }

// SetFor sets the node's for attribute.
func (n *Node) SetFor(forValue string) string { return n.setString("for", forValue) }

// Name returns the node's name attribute, the empty string if unset.
func (n *Node) Name() string { return n.Attr("name").String() }

// SetName sets the node's name attribute.
func (n *Node) SetName(name string) string { return n.setString("name", name) }

// Type returns the node's type attribute, the empty string if unset.
func (n *Node) Type() string { return n.Attr("type").String() }

// SetType sets the node's type attribute.
func (n *Node) SetType(typeValue string) string { return n.setString("type", typeValue) }

// Placeholder returns the node's placeholder attribute, the empty string if unset.
func (n *Node) Placeholder() string { return n.Attr("placeholder").String() }

// SetPlaceholder sets the node's placeholder attribute.
func (n *Node) SetPlaceholder(placeholder string) string {
	return n.setString("placeholder", placeholder)
}

// Checked returns the node's checked attribute, false if unset.
func (n *Node) Checked() bool { return n.Attr("checked").Bool() }

// SetChecked sets the node's checked attribute.
func (n *Node) SetChecked(checked bool) bool {
	v, _ := n.SetAttr("checked", checked)
	return v.Bool()
}

// Disabled returns the node's disabled attribute, false if unset.
func (n *Node) Disabled() bool { return n.Attr("disabled").Bool() }

// SetDisabled sets the node's disabled attribute.
func (n *Node) SetDisabled(disabled bool) bool {
	v, _ := n.SetAttr("disabled", disabled)
	return v.Bool()
}

// Transform returns the node's transform attribute (SVG), the empty string if unset.
func (n *Node) Transform() string { return n.Attr("transform").String() }

// SetTransform sets the node's transform attribute (SVG).
func (n *Node) SetTransform(transform string) string { return n.setString("transform", transform) }

// Fill returns the node's fill attribute (SVG), the empty string if unset.
func (n *Node) Fill() string { return n.Attr("fill").String() }

// SetFill sets the node's fill attribute (SVG).
func (n *Node) SetFill(fill string) string { return n.setString("fill", fill) }

// Stroke returns the node's stroke attribute (SVG), the empty string if unset.
func (n *Node) Stroke() string { return n.Attr("stroke").String() }

// SetStroke sets the node's stroke attribute (SVG).
func (n *Node) SetStroke(stroke string) string { return n.setString("stroke", stroke) }

// D returns the node's d attribute (SVG paths), the empty string if unset.
func (n *Node) D() string { return n.Attr("d").String() }

// SetD sets the node's d attribute (SVG paths).
func (n *Node) SetD(d string) string { return n.setString("d", d) }

// Style returns the node's style attribute, the empty string if unset.
func (n *Node) Style() string { return n.Attr("style").String() }

// SetStyle sets the node's style attribute.
func (n *Node) SetStyle(style string) string { return n.setString("style", style) }
