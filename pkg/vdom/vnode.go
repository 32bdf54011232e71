package vdom

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement VKind = iota // <div>, <button>, etc.
	KindText                 // Plain text node
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	default:
		return "Unknown"
	}
}

// VNode is a materialized tree node.
type VNode struct {
	Kind      VKind    // Node type
	Tag       string   // Element tag name (e.g., "div")
	Namespace string   // XML namespace URI, empty for plain HTML
	Attrs     []Attr   // Ordered attributes, styles, and event bindings
	Children  []*VNode // Child nodes
	Keys      []string // Reconciliation keys, parallel to Children when non-empty
	Text      string   // For KindText
}

// Keyed pairs a reconciliation key with a node.
type Keyed struct {
	Key  string
	Node *VNode
}

// NewNode constructs a plain element node.
func NewNode(tag string, attrs []Attr, children []*VNode) *VNode {
	return &VNode{
		Kind:     KindElement,
		Tag:      tag,
		Attrs:    attrs,
		Children: children,
	}
}

// NewNodeNS constructs a namespaced element node (e.g., SVG).
func NewNodeNS(namespace, tag string, attrs []Attr, children []*VNode) *VNode {
	return &VNode{
		Kind:      KindElement,
		Tag:       tag,
		Namespace: namespace,
		Attrs:     attrs,
		Children:  children,
	}
}

// NewKeyedNode constructs an element node whose children carry
// reconciliation keys.
func NewKeyedNode(tag string, attrs []Attr, children []Keyed) *VNode {
	keys, nodes := unzipKeyed(children)
	return &VNode{
		Kind:     KindElement,
		Tag:      tag,
		Attrs:    attrs,
		Children: nodes,
		Keys:     keys,
	}
}

// NewKeyedNodeNS constructs a namespaced element node with keyed children.
func NewKeyedNodeNS(namespace, tag string, attrs []Attr, children []Keyed) *VNode {
	node := NewKeyedNode(tag, attrs, children)
	node.Namespace = namespace
	return node
}

// NewText constructs a text node.
func NewText(text string) *VNode {
	return &VNode{
		Kind: KindText,
		Text: text,
	}
}

// IsKeyed returns true if the node's children carry reconciliation keys.
func (v *VNode) IsKeyed() bool {
	return v != nil && len(v.Keys) > 0
}

func unzipKeyed(children []Keyed) ([]string, []*VNode) {
	keys := make([]string, len(children))
	nodes := make([]*VNode, len(children))
	for i, c := range children {
		keys[i] = c.Key
		nodes[i] = c.Node
	}
	return keys, nodes
}
