package builder

import "github.com/vango-dev/dombuild/pkg/vdom"

// Child attachment is eager: a pending element passed to any of these
// methods is rendered at attach time and the parent stores the finished
// node. Later changes to the original child chain cannot reach an
// already-attached copy.

// AppendChild renders child and appends the resulting node.
func (e Element) AppendChild(child Element) Element {
	e.children = appended(e.children, child.Render())
	return e
}

// AppendChildConditional appends a rendered child when condition is true.
func (e Element) AppendChildConditional(child Element, condition bool) Element {
	if !condition {
		return e
	}
	return e.AppendChild(child)
}

// PrependChild renders child and prepends the resulting node.
func (e Element) PrependChild(child Element) Element {
	e.children = prepended(e.children, child.Render())
	return e
}

// PrependChildConditional prepends a rendered child when condition is true.
func (e Element) PrependChildConditional(child Element, condition bool) Element {
	if !condition {
		return e
	}
	return e.PrependChild(child)
}

// AppendChildList renders each element and appends the nodes in input
// order.
func (e Element) AppendChildList(children []Element) Element {
	e.children = appended(e.children, renderAll(children)...)
	return e
}

// AppendChildListConditional appends the whole rendered list when
// condition is true; the list is never filtered per item.
func (e Element) AppendChildListConditional(children []Element, condition bool) Element {
	if !condition {
		return e
	}
	return e.AppendChildList(children)
}

// PrependChildList renders each element and prepends the nodes, keeping
// the input order.
func (e Element) PrependChildList(children []Element) Element {
	e.children = prepended(e.children, renderAll(children)...)
	return e
}

// PrependChildListConditional prepends the whole rendered list when
// condition is true.
func (e Element) PrependChildListConditional(children []Element, condition bool) Element {
	if !condition {
		return e
	}
	return e.PrependChildList(children)
}

// ReplaceChildList replaces the entire child list with the rendered
// elements.
func (e Element) ReplaceChildList(children []Element) Element {
	e.children = renderAll(children)
	return e
}

// AppendNode appends an already-rendered node directly, bypassing
// rendering.
func (e Element) AppendNode(node *vdom.VNode) Element {
	e.children = appended(e.children, node)
	return e
}

// AppendNodeConditional appends a node when condition is true.
func (e Element) AppendNodeConditional(node *vdom.VNode, condition bool) Element {
	if !condition {
		return e
	}
	return e.AppendNode(node)
}

// PrependNode prepends an already-rendered node directly.
func (e Element) PrependNode(node *vdom.VNode) Element {
	e.children = prepended(e.children, node)
	return e
}

// PrependNodeConditional prepends a node when condition is true.
func (e Element) PrependNodeConditional(node *vdom.VNode, condition bool) Element {
	if !condition {
		return e
	}
	return e.PrependNode(node)
}

// AppendNodeList appends already-rendered nodes in input order.
func (e Element) AppendNodeList(nodes []*vdom.VNode) Element {
	e.children = appended(e.children, nodes...)
	return e
}

// AppendNodeListConditional appends the whole node list when condition is
// true.
func (e Element) AppendNodeListConditional(nodes []*vdom.VNode, condition bool) Element {
	if !condition {
		return e
	}
	return e.AppendNodeList(nodes)
}

// PrependNodeList prepends already-rendered nodes, keeping the input
// order.
func (e Element) PrependNodeList(nodes []*vdom.VNode) Element {
	e.children = prepended(e.children, nodes...)
	return e
}

// PrependNodeListConditional prepends the whole node list when condition
// is true.
func (e Element) PrependNodeListConditional(nodes []*vdom.VNode, condition bool) Element {
	if !condition {
		return e
	}
	return e.PrependNodeList(nodes)
}

// ReplaceNodeList replaces the entire child list with the given nodes.
func (e Element) ReplaceNodeList(nodes []*vdom.VNode) Element {
	e.children = copied(nodes)
	return e
}

// SetChildListWithKeys renders each pending element and overwrites both
// the child list and the key list with the positionally paired results.
// A non-empty key list switches rendering to keyed mode.
func (e Element) SetChildListWithKeys(pairs []Keyed) Element {
	keys := make([]string, len(pairs))
	children := make([]*vdom.VNode, len(pairs))
	for i, p := range pairs {
		keys[i] = p.Key
		children[i] = p.Child.Render()
	}
	e.keys = keys
	e.children = children
	return e
}

// SetNodeListWithKeys overwrites both the child list and the key list with
// already-rendered keyed nodes.
func (e Element) SetNodeListWithKeys(pairs []vdom.Keyed) Element {
	keys := make([]string, len(pairs))
	children := make([]*vdom.VNode, len(pairs))
	for i, p := range pairs {
		keys[i] = p.Key
		children[i] = p.Node
	}
	e.keys = keys
	e.children = children
	return e
}

func renderAll(children []Element) []*vdom.VNode {
	nodes := make([]*vdom.VNode, len(children))
	for i, c := range children {
		nodes[i] = c.Render()
	}
	return nodes
}
