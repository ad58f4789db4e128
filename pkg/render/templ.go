package render

import (
	"bytes"
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/vango-dev/slotkit/pkg/vdom"
)

// Templ adapts a node tree to templ.Component so it can be used inside a
// templ template, e.g. @render.Templ(layout.PageLayout(...)).
func (r *Renderer) Templ(node *vdom.VNode) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return r.RenderToWriter(w, node)
	})
}

// FromTempl renders a templ component into a raw node, so templ output can
// be placed in a layout region.
func FromTempl(ctx context.Context, c templ.Component) (*vdom.VNode, error) {
	if c == nil {
		return nil, nil
	}
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		return nil, err
	}
	return vdom.Raw(buf.String()), nil
}
