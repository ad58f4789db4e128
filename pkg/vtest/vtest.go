package vtest

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/vango-dev/slotkit/pkg/render"
	"github.com/vango-dev/slotkit/pkg/slot"
	"github.com/vango-dev/slotkit/pkg/vdom"
)

// RenderToString renders node to compact HTML. Render errors are returned
// as an empty string, so assertions on the output fail visibly.
func RenderToString(node *vdom.VNode) string {
	html, err := render.NewRenderer(render.RendererConfig{}).RenderToString(node)
	if err != nil {
		return ""
	}
	return html
}

// ExpectContains asserts that rendered output contains expected.
func ExpectContains(tb testing.TB, node *vdom.VNode, expected string) {
	tb.Helper()
	html := RenderToString(node)
	if !strings.Contains(html, expected) {
		tb.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts that rendered output does not contain unexpected.
func ExpectNotContains(tb testing.TB, node *vdom.VNode, unexpected string) {
	tb.Helper()
	html := RenderToString(node)
	if strings.Contains(html, unexpected) {
		tb.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// FindByClass returns the first element, depth first, whose class list
// contains class.
func FindByClass(node *vdom.VNode, class string) *vdom.VNode {
	var found *vdom.VNode
	node.Walk(func(n *vdom.VNode) bool {
		if found != nil {
			return false
		}
		if n.Kind == vdom.KindElement && hasClass(n, class) {
			found = n
			return false
		}
		return true
	})
	return found
}

func hasClass(n *vdom.VNode, class string) bool {
	classes, _ := n.Props["class"].(string)
	for _, c := range strings.Fields(classes) {
		if c == class {
			return true
		}
	}
	return false
}

// InnerHTML renders the children of node.
func InnerHTML(node *vdom.VNode) string {
	if node == nil {
		return ""
	}
	return RenderToString(vdom.Fragment(node.Children))
}

// ExpectRegion asserts that the element with class exists and its inner
// HTML equals want.
func ExpectRegion(tb testing.TB, node *vdom.VNode, class, want string) {
	tb.Helper()
	region := FindByClass(node, class)
	if region == nil {
		tb.Errorf("no element with class %q in:\n%s", class, truncate(RenderToString(node), 500))
		return
	}
	if got := InnerHTML(region); got != want {
		tb.Errorf("region %q: got %q, want %q", class, got, want)
	}
}

// ExpectEmptyRegion asserts that the element with class exists and renders
// no content.
func ExpectEmptyRegion(tb testing.TB, node *vdom.VNode, class string) {
	tb.Helper()
	ExpectRegion(tb, node, class, "")
}

// Recorder is a slot.Observer that keeps every summary and render timing
// it receives. It is safe for concurrent use.
type Recorder struct {
	mu        sync.Mutex
	summaries []slot.Summary
	renders   []string
}

// ObserveResolve implements slot.Observer.
func (r *Recorder) ObserveResolve(s slot.Summary) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.summaries = append(r.summaries, s)
}

// ObserveRender records the layout name of a completed render.
func (r *Recorder) ObserveRender(layout string, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.renders = append(r.renders, layout)
}

// Summaries returns a copy of the recorded summaries.
func (r *Recorder) Summaries() []slot.Summary {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]slot.Summary(nil), r.summaries...)
}

// Last returns the most recent summary, or a zero Summary.
func (r *Recorder) Last() slot.Summary {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.summaries) == 0 {
		return slot.Summary{}
	}
	return r.summaries[len(r.summaries)-1]
}

// Renders returns the layout names of completed renders, in order.
func (r *Recorder) Renders() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.renders...)
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

var _ slot.Observer = (*Recorder)(nil)
