// Package htmlconv imports HTML markup into pending builder elements.
//
// ParseFragment turns an HTML fragment into builder.Element values so
// existing markup can be composed with programmatically built trees.
// Attributes map onto the builder's dedicated fields: id becomes SetID,
// class becomes AddClassList, and inline style declarations are parsed
// into ordered style pairs; everything else is carried as a plain
// attribute in document order.
//
// The builder models text as a single run placed before structural
// children, so text interleaved between child elements is concatenated
// ahead of them on import. Comments and processing instructions are
// dropped.
package htmlconv
