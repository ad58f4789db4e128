package render

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/vango-dev/slotkit/pkg/vdom"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables indented HTML output.
	// Should only be used in development as it increases output size.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string
}

// Renderer renders node trees to HTML.
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
	var b strings.Builder
	if err := r.RenderToWriter(&b, node); err != nil {
		return "", err
	}
	return b.String(), nil
}

// RenderToWriter streams a node tree to w.
func (r *Renderer) RenderToWriter(w io.Writer, node *vdom.VNode) error {
	sw := &stickyWriter{w: w}
	if err := r.renderNode(sw, node, 0); err != nil {
		return err
	}
	return sw.err
}

// renderNode dispatches rendering based on node kind.
func (r *Renderer) renderNode(w *stickyWriter, node *vdom.VNode, depth int) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case vdom.KindElement:
		return r.renderElement(w, node, depth)
	case vdom.KindText:
		w.str(escapeHTML(node.Text))
	case vdom.KindRaw:
		w.str(node.Text)
	case vdom.KindFragment, vdom.KindSlot:
		return r.renderChildren(w, node.Children, depth)
	case vdom.KindComponent:
		if node.Comp != nil {
			return r.renderNode(w, node.Comp.Render(), depth)
		}
	default:
		return fmt.Errorf("render: unknown node kind %d", node.Kind)
	}
	return nil
}

func (r *Renderer) renderChildren(w *stickyWriter, children []*vdom.VNode, depth int) error {
	for _, child := range children {
		if err := r.renderNode(w, child, depth); err != nil {
			return err
		}
		if w.err != nil {
			return w.err
		}
	}
	return nil
}

// renderElement renders an HTML element with its attributes and children.
// A negative depth means the element sits in inline context and is written
// without indentation or a trailing newline.
func (r *Renderer) renderElement(w *stickyWriter, node *vdom.VNode, depth int) error {
	tag := node.Tag
	if tag == "" {
		return fmt.Errorf("render: element without tag")
	}

	pretty := r.config.Pretty && depth >= 0
	if pretty {
		r.writeIndent(w, depth)
	}

	w.str("<" + tag)
	r.renderAttributes(w, node.Props)
	w.str(">")

	if isVoidElement(tag) {
		if pretty {
			w.str("\n")
		}
		return w.err
	}

	block := pretty && !isInlineElement(tag) && blockChildren(node.Children)
	childDepth := -1
	if block {
		w.str("\n")
		childDepth = depth + 1
	}

	if err := r.renderChildren(w, node.Children, childDepth); err != nil {
		return err
	}

	if block {
		if !w.lineStart {
			w.str("\n")
		}
		r.writeIndent(w, depth)
	}
	w.str("</" + tag + ">")
	if pretty {
		w.str("\n")
	}

	return w.err
}

// blockChildren reports whether children are laid out one per line in
// pretty mode: at least one block element and no text or inline elements
// mixed in, since whitespace between inline content is visible. Line breaks
// fit either layout. Fragments and slot-tagged children are looked through.
func blockChildren(children []*vdom.VNode) bool {
	blocks, inline := scanChildren(children)
	return blocks && !inline
}

func scanChildren(children []*vdom.VNode) (blocks, inline bool) {
	for _, child := range children {
		if child == nil {
			continue
		}
		switch child.Kind {
		case vdom.KindElement:
			if child.Tag == "br" {
				continue
			}
			if isInlineElement(child.Tag) {
				inline = true
			} else {
				blocks = true
			}
		case vdom.KindComponent:
			blocks = true
		case vdom.KindText, vdom.KindRaw:
			inline = true
		case vdom.KindFragment, vdom.KindSlot:
			b, i := scanChildren(child.Children)
			blocks = blocks || b
			inline = inline || i
		}
	}
	return blocks, inline
}

// renderAttributes renders attributes in sorted key order.
func (r *Renderer) renderAttributes(w *stickyWriter, props vdom.Props) {
	if len(props) == 0 {
		return
	}

	keys := make([]string, 0, len(props))
	for key := range props {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := props[key]

		// Internal props
		if strings.HasPrefix(key, "_") {
			continue
		}

		if isBooleanAttr(key) {
			if b, ok := value.(bool); ok {
				if b {
					w.str(" " + key)
				}
				continue
			}
		}

		if s, ok := attrToString(value); ok {
			w.printf(` %s="%s"`, key, escapeAttr(s))
		}
	}
}

// attrToString converts an attribute value to a string.
// Nil values and empty strings are not rendered.
func attrToString(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return v, v != ""
	case bool:
		return strconv.FormatBool(v), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), true
	case fmt.Stringer:
		return v.String(), true
	default:
		return fmt.Sprintf("%v", v), true
	}
}

// writeIndent writes indentation for pretty printing.
func (r *Renderer) writeIndent(w *stickyWriter, depth int) {
	if depth > 0 {
		w.str(strings.Repeat(r.config.Indent, depth))
	}
}
