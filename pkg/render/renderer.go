package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/vango-dev/dombuild/pkg/vdom"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables pretty-printed HTML output with indentation.
	// Should only be used in development as it increases output size.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string
}

// Renderer serializes vdom node trees to HTML.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// RenderToString renders a node tree to an HTML string.
func (r *Renderer) RenderToString(node *vdom.VNode) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a node tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, node *vdom.VNode) error {
	return r.renderNode(w, node, 0)
}

// renderNode dispatches rendering based on node kind.
func (r *Renderer) renderNode(w io.Writer, node *vdom.VNode, depth int) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case vdom.KindElement:
		return r.renderElement(w, node, depth)
	case vdom.KindText:
		return r.renderText(w, node)
	default:
		return fmt.Errorf("unknown node kind: %d", node.Kind)
	}
}

// renderElement renders an HTML element with its attributes and children.
func (r *Renderer) renderElement(w io.Writer, node *vdom.VNode, depth int) error {
	tag := node.Tag

	if r.config.Pretty && depth > 0 {
		r.writeIndent(w, depth)
	}

	if _, err := fmt.Fprintf(w, "<%s", tag); err != nil {
		return err
	}

	if node.Namespace != "" {
		if _, err := fmt.Fprintf(w, ` xmlns="%s"`, escapeAttr(node.Namespace)); err != nil {
			return err
		}
	}

	if err := r.renderAttributes(w, node.Attrs); err != nil {
		return err
	}

	// Void elements self-close and never render children.
	if node.Namespace == "" && vdom.IsVoidElement(tag) {
		if _, err := w.Write([]byte{'>'}); err != nil {
			return err
		}
		if r.config.Pretty {
			w.Write([]byte{'\n'})
		}
		return nil
	}

	if _, err := w.Write([]byte{'>'}); err != nil {
		return err
	}

	hasBlockChildren := len(node.Children) > 0 && !isInlineElement(tag)
	if r.config.Pretty && hasBlockChildren {
		w.Write([]byte{'\n'})
	}

	for _, child := range node.Children {
		if err := r.renderNode(w, child, depth+1); err != nil {
			return err
		}
	}

	if r.config.Pretty && hasBlockChildren {
		r.writeIndent(w, depth)
	}

	if _, err := fmt.Fprintf(w, "</%s>", tag); err != nil {
		return err
	}
	if r.config.Pretty {
		w.Write([]byte{'\n'})
	}

	return nil
}

// renderText renders a text node with HTML escaping.
func (r *Renderer) renderText(w io.Writer, node *vdom.VNode) error {
	_, err := w.Write([]byte(escapeHTML(node.Text)))
	return err
}

// renderAttributes renders an ordered attribute list. Style declarations
// are collected into a single style attribute at the position of the
// first declaration; event bindings are skipped.
func (r *Renderer) renderAttributes(w io.Writer, attrs []vdom.Attr) error {
	var styles []string
	styleAt := -1
	for i, a := range attrs {
		if a.Kind == vdom.AttrStyle {
			if styleAt < 0 {
				styleAt = i
			}
			value, _ := a.Value.(string)
			styles = append(styles, a.Key+": "+value)
		}
	}

	for i, a := range attrs {
		switch a.Kind {
		case vdom.AttrEvent:
			continue

		case vdom.AttrStyle:
			if i != styleAt {
				continue
			}
			joined := strings.Join(styles, "; ")
			if _, err := fmt.Fprintf(w, ` style="%s"`, escapeAttr(joined)); err != nil {
				return err
			}

		case vdom.AttrPlain:
			if err := r.renderPlainAttr(w, a); err != nil {
				return err
			}
		}
	}

	return nil
}

// renderPlainAttr renders one markup attribute. Boolean attributes emit
// the bare name when true and nothing when false.
func (r *Renderer) renderPlainAttr(w io.Writer, a vdom.Attr) error {
	if a.IsEmpty() {
		return nil
	}

	switch v := a.Value.(type) {
	case bool:
		if !v {
			return nil
		}
		_, err := fmt.Fprintf(w, " %s", a.Key)
		return err
	case string:
		_, err := fmt.Fprintf(w, ` %s="%s"`, a.Key, escapeAttr(v))
		return err
	default:
		_, err := fmt.Fprintf(w, ` %s="%s"`, a.Key, escapeAttr(fmt.Sprintf("%v", v)))
		return err
	}
}

// writeIndent writes indentation for pretty printing.
func (r *Renderer) writeIndent(w io.Writer, depth int) {
	for i := 0; i < depth; i++ {
		w.Write([]byte(r.config.Indent))
	}
}
