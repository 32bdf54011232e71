package htmlconv

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aymerick/douceur/parser"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/vango-dev/dombuild/pkg/builder"
	"github.com/vango-dev/dombuild/pkg/vdom"
)

// ParseFragment parses an HTML fragment in body context and returns one
// pending element per top-level element node. Leading and trailing
// whitespace around the fragment is ignored.
func ParseFragment(src string) ([]builder.Element, error) {
	nodes, err := html.ParseFragment(strings.NewReader(strings.TrimSpace(src)), &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	})
	if err != nil {
		return nil, fmt.Errorf("parse fragment: %w", err)
	}

	var elements []builder.Element
	for _, n := range nodes {
		if n.Type != html.ElementNode {
			continue
		}
		elements = append(elements, convertElement(n))
	}
	return elements, nil
}

// ParseElement parses a fragment expected to contain at least one
// top-level element and returns the first one.
func ParseElement(src string) (builder.Element, error) {
	elements, err := ParseFragment(src)
	if err != nil {
		return builder.Element{}, err
	}
	if len(elements) == 0 {
		return builder.Element{}, errors.New("fragment contains no element")
	}
	return elements[0], nil
}

func convertElement(n *html.Node) builder.Element {
	e := builder.New(n.Data)

	switch n.Namespace {
	case "svg":
		e = e.SetNamespace(vdom.NamespaceSVG)
	case "math":
		e = e.SetNamespace(vdom.NamespaceMathML)
	}

	for _, a := range n.Attr {
		switch a.Key {
		case "id":
			e = e.SetID(a.Val)
		case "class":
			e = e.AddClassList(strings.Fields(a.Val))
		case "style":
			e = addStyles(e, a.Val)
		default:
			e = e.AddAttribute(vdom.Attribute(a.Key, a.Val))
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			if strings.TrimSpace(c.Data) == "" {
				continue
			}
			e = e.AppendText(c.Data)
		case html.ElementNode:
			e = e.AppendChild(convertElement(c))
		}
	}

	return e
}

// addStyles parses an inline style attribute into ordered declarations.
// Unparseable CSS falls back to a verbatim style attribute.
func addStyles(e builder.Element, style string) builder.Element {
	decls, err := parser.ParseDeclarations(style)
	if err != nil {
		return e.AddAttribute(vdom.Attribute("style", style))
	}
	styles := make([]builder.Style, 0, len(decls))
	for _, d := range decls {
		value := d.Value
		if d.Important {
			value += " !important"
		}
		styles = append(styles, builder.Style{Key: d.Property, Value: value})
	}
	return e.AddStyleList(styles)
}
