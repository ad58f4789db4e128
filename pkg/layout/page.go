package layout

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/slotkit/pkg/slot"
	"github.com/vango-dev/slotkit/pkg/vdom"
)

// Page is the header/body/footer page layout. A Page is immutable after New
// and safe for concurrent use.
type Page struct {
	policy    Policy
	required  []Region
	observers []slot.Observer
	logger    *slog.Logger
	classes   []string
	tracer    trace.Tracer
}

// New creates a page layout.
func New(opts ...Option) *Page {
	p := &Page{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Policy returns the page's policy.
func (p *Page) Policy() Policy {
	return p.policy
}

// Render resolves children into the page regions and builds the layout
// tree:
//
//	<div class="layout">
//	  <header class="layout-header">…</header>
//	  <main class="layout-body">…</main>
//	  <footer class="layout-footer">…</footer>
//	</div>
//
// Children accept the same arguments as element factories. Only children
// built with Header, Body or Footer are placed; the first child per region
// wins. Under PolicyStrict a resolution with problems returns an error and
// no node.
func (p *Page) Render(ctx context.Context, children ...any) (*vdom.VNode, error) {
	start := time.Now()

	r := &resolver[Region]{
		set:       PageRegions,
		policy:    p.policy,
		required:  p.required,
		observers: p.observers,
		logger:    p.logger,
		tracer:    p.tracer,
	}
	a, err := r.resolve(ctx, vdom.Children(children...))
	if err != nil {
		return nil, err
	}

	regions := make([]*vdom.VNode, 0, PageRegions.Len())
	a.Each(func(r Region, content *vdom.VNode) {
		regions = append(regions, regionElement(r, content))
	})
	node := vdom.Div(vdom.Class(p.rootClass()), regions)

	p.observeRender(PageRegions.Layout(), time.Since(start))
	return node, nil
}

// regionElement wraps a region's content in its fixed element.
func regionElement(r Region, content *vdom.VNode) *vdom.VNode {
	class := vdom.Class("layout-" + r.String())
	switch r {
	case RegionHeader:
		return vdom.Header(class, content)
	case RegionFooter:
		return vdom.Footer(class, content)
	default:
		return vdom.Main(class, content)
	}
}

func (p *Page) rootClass() string {
	if len(p.classes) == 0 {
		return "layout"
	}
	return "layout " + strings.Join(p.classes, " ")
}

func (p *Page) observeRender(layout string, d time.Duration) {
	for _, obs := range p.observers {
		if ro, ok := obs.(RenderObserver); ok {
			ro.ObserveRender(layout, d)
		}
	}
}

var defaultPage = New()

// PageLayout renders children with a default permissive page. It never
// fails, so it can be used inline in a component tree.
func PageLayout(children ...any) *vdom.VNode {
	node, _ := defaultPage.Render(context.Background(), children...)
	return node
}
