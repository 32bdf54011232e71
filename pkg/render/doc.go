// Package render serializes vdom node trees to HTML.
//
// The serializer preserves the attribute order recorded on each node.
// Consecutive style declarations merge into one style attribute in stored
// order, so duplicate properties resolve by CSS last-wins semantics.
// Event bindings carry no HTML representation and are skipped. Keyed
// children serialize exactly like plain children; keys only matter to
// client-side reconciliation.
package render
