package vdom

// AttrKind discriminates the entries of a node's attribute list.
type AttrKind uint8

const (
	AttrPlain AttrKind = iota // Regular markup attribute
	AttrStyle                 // Inline style declaration
	AttrEvent                 // Event binding
)

// String returns the string representation of the AttrKind.
func (k AttrKind) String() string {
	switch k {
	case AttrPlain:
		return "Plain"
	case AttrStyle:
		return "Style"
	case AttrEvent:
		return "Event"
	default:
		return "Unknown"
	}
}

// Attr represents a single entry in a node's attribute list: a markup
// attribute, an inline style declaration, or an event binding, depending
// on Kind.
type Attr struct {
	Kind  AttrKind
	Key   string // Attribute name, style property, or event name
	Value any    // string for AttrPlain/AttrStyle, EventHandler for AttrEvent
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// Attribute constructs a plain string-valued attribute.
func Attribute(key, value string) Attr {
	return Attr{Kind: AttrPlain, Key: key, Value: value}
}

// BoolAttribute constructs a boolean attribute. Serializers emit the bare
// attribute name when the value is true and nothing when it is false.
func BoolAttribute(key string, value bool) Attr {
	return Attr{Kind: AttrPlain, Key: key, Value: value}
}

// Style constructs an inline style declaration.
func Style(property, value string) Attr {
	return Attr{Kind: AttrStyle, Key: property, Value: value}
}

// On constructs an event binding from a handler.
func On(handler EventHandler) Attr {
	return Attr{Kind: AttrEvent, Key: handler.Event, Value: handler}
}
