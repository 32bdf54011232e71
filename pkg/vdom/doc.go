// Package vdom provides the node model consumed by the dombuild pipeline.
//
// VNode is the concrete tree node that builder.Element lowers into. Nodes
// are constructed through four factories mirroring the supported rendering
// modes: NewNode (plain), NewNodeNS (namespaced), NewKeyedNode (keyed), and
// NewKeyedNodeNS (namespaced and keyed), plus NewText for text content.
//
// Attributes are ordered. A node's attribute list may interleave three
// kinds of entries: plain attributes, inline style declarations, and event
// bindings. All three are represented by Attr and distinguished by its
// Kind field.
//
// # Events
//
// EventHandler carries an event name, a dispatch mode, and a handler
// function from the raw Event to a Dispatch. The dispatch mode is a closed
// set: DispatchNormal, DispatchMayStopPropagation, DispatchMayPreventDefault,
// and DispatchCustom. The runtime consuming the tree decides how to honor
// the mode; this package only records it. TargetValue and TargetChecked
// implement the standard convention of reading a named field off the
// event's target.
//
// This package does not diff, patch, or hydrate trees.
package vdom
