package builder

import "github.com/vango-dev/dombuild/pkg/vdom"

// Style is one inline style declaration. Declarations are ordered and
// never deduplicated by key; application order is left to the consumer.
type Style struct {
	Key   string
	Value string
}

// Keyed pairs a reconciliation key with a pending element.
type Keyed struct {
	Key   string
	Child Element
}

// Element is a pending element. The zero value is unusable; construct with
// New. All fields are private: use the builder methods to change them and
// Data to inspect them.
type Element struct {
	tag       string
	id        string
	classes   []string
	styles    []Style
	attrs     []vdom.Attr
	listeners []vdom.EventHandler
	text      string
	children  []*vdom.VNode
	namespace string
	keys      []string
}

// Data is a snapshot of an Element's accumulated state, exposed for tests
// and advanced composition. Its slices are shared with the element they
// were read from; treat the snapshot as read-only.
type Data struct {
	Tag        string
	ID         string
	Classes    []string
	Styles     []Style
	Attributes []vdom.Attr
	Listeners  []vdom.EventHandler
	Text       string
	Children   []*vdom.VNode
	Namespace  string
	Keys       []string
}

// New creates a pending element with the given tag and every other field
// empty. Tag names are not validated.
func New(tag string) Element {
	return Element{tag: tag}
}

// Data returns a snapshot of the element's accumulated state.
func (e Element) Data() Data {
	return Data{
		Tag:        e.tag,
		ID:         e.id,
		Classes:    e.classes,
		Styles:     e.styles,
		Attributes: e.attrs,
		Listeners:  e.listeners,
		Text:       e.text,
		Children:   e.children,
		Namespace:  e.namespace,
		Keys:       e.keys,
	}
}

// SetTag replaces the element's tag. Last write wins.
func (e Element) SetTag(tag string) Element {
	e.tag = tag
	return e
}

// SetID replaces the element's id. Last write wins; an empty id renders no
// id attribute.
func (e Element) SetID(id string) Element {
	e.id = id
	return e
}

// SetNamespace replaces the element's XML namespace. A non-empty namespace
// switches rendering to namespaced construction (e.g., vdom.NamespaceSVG).
func (e Element) SetNamespace(namespace string) Element {
	e.namespace = namespace
	return e
}
