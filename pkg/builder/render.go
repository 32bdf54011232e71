package builder

import (
	"strings"

	"github.com/vango-dev/dombuild/pkg/vdom"
)

// internalTextKey pairs the synthesized text node with a stable key when
// rendering in keyed mode.
const internalTextKey = "rendered-internal-text"

// Render lowers the element into a vdom node. The attribute list is built
// in the fixed order [id?, class?, listeners..., styles..., attributes...]
// where the optional entries appear only when non-empty. Non-empty text
// becomes a text node placed before all structural children. Construction
// dispatches on (namespace, keys): plain, namespaced, keyed, or namespaced
// keyed.
//
// Render is deterministic and touches no external state; the same element
// value always produces a structurally equal node.
func (e Element) Render() *vdom.VNode {
	attrs := make([]vdom.Attr, 0, len(e.attrs)+len(e.styles)+len(e.listeners)+2)
	if e.id != "" {
		attrs = append(attrs, vdom.Attribute("id", e.id))
	}
	if len(e.classes) > 0 {
		attrs = append(attrs, vdom.Attribute("class", strings.Join(e.classes, " ")))
	}
	for _, l := range e.listeners {
		attrs = append(attrs, vdom.On(l))
	}
	for _, s := range e.styles {
		attrs = append(attrs, vdom.Style(s.Key, s.Value))
	}
	attrs = append(attrs, e.attrs...)

	children := e.children
	keys := e.keys
	if e.text != "" {
		children = prepended(e.children, vdom.NewText(e.text))
		if len(e.keys) > 0 {
			keys = prepended(e.keys, internalTextKey)
		}
	}

	switch {
	case e.namespace == "" && len(keys) == 0:
		return vdom.NewNode(e.tag, attrs, children)
	case len(keys) == 0:
		return vdom.NewNodeNS(e.namespace, e.tag, attrs, children)
	case e.namespace == "":
		return vdom.NewKeyedNode(e.tag, attrs, zipKeyed(keys, children))
	default:
		return vdom.NewKeyedNodeNS(e.namespace, e.tag, attrs, zipKeyed(keys, children))
	}
}

// zipKeyed pairs keys with children positionally. Children beyond the key
// list get an empty key rather than failing; the pairing invariant is the
// caller's to maintain through the keyed setters.
func zipKeyed(keys []string, children []*vdom.VNode) []vdom.Keyed {
	pairs := make([]vdom.Keyed, len(children))
	for i, c := range children {
		var k string
		if i < len(keys) {
			k = keys[i]
		}
		pairs[i] = vdom.Keyed{Key: k, Node: c}
	}
	return pairs
}
