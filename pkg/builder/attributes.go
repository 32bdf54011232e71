package builder

import "github.com/vango-dev/dombuild/pkg/vdom"

// AddAttribute appends one already-constructed attribute value. Attributes
// render after the synthesized id/class/listener/style entries, in call
// order.
func (e Element) AddAttribute(attr vdom.Attr) Element {
	e.attrs = appended(e.attrs, attr)
	return e
}

// AddAttributeConditional appends one attribute when condition is true.
func (e Element) AddAttributeConditional(attr vdom.Attr, condition bool) Element {
	if !condition {
		return e
	}
	return e.AddAttribute(attr)
}

// AddAttributeList appends many attributes, preserving the input order.
func (e Element) AddAttributeList(attrs []vdom.Attr) Element {
	e.attrs = appended(e.attrs, attrs...)
	return e
}

// AddAttributeListConditional appends the whole attribute list when
// condition is true; the list is never filtered per item.
func (e Element) AddAttributeListConditional(attrs []vdom.Attr, condition bool) Element {
	if !condition {
		return e
	}
	return e.AddAttributeList(attrs)
}

// ReplaceAttributeList replaces the entire attribute list.
func (e Element) ReplaceAttributeList(attrs []vdom.Attr) Element {
	e.attrs = copied(attrs)
	return e
}
