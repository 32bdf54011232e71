// Package builder implements the fluent element-construction pipeline.
//
// Element is a pending description of one node: tag, id, classes, inline
// styles, attributes, event listeners, text, children, namespace, and
// reconciliation keys. Every method is pure: it takes its receiver by
// value and returns a new Element with one field changed, so chains never
// mutate earlier values.
//
//	node := builder.New("div").
//		AddClass("card").
//		AddStyle("padding", "1rem").
//		AppendChild(builder.New("p").AppendText("Hello")).
//		Render()
//
// Children attached with AppendChild and friends are rendered eagerly at
// attach time. The parent stores the finished vdom node, so mutating the
// original child chain afterwards cannot affect an already-attached copy.
//
// Render lowers the accumulated description into a vdom.VNode exactly
// once per element: synthesized id and class attributes first, then event
// bindings, then style declarations, then explicitly added attributes, in
// call order. Non-empty text becomes a text node placed before all
// structural children.
//
// Every *Conditional method applies its unconditional counterpart when the
// condition is true and returns the receiver unchanged when it is false.
package builder
