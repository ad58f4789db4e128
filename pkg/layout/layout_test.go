package layout

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/slotkit/internal/errors"
	"github.com/vango-dev/slotkit/pkg/render"
	"github.com/vango-dev/slotkit/pkg/slot"
	"github.com/vango-dev/slotkit/pkg/vdom"
	"github.com/vango-dev/slotkit/pkg/vtest"
)

func renderHTML(t *testing.T, node *vdom.VNode) string {
	t.Helper()
	html, err := render.NewRenderer(render.RendererConfig{}).RenderToString(node)
	require.NoError(t, err)
	return html
}

func TestPageAllRegions(t *testing.T) {
	node, err := New().Render(context.Background(),
		Header(vdom.H1("Docs")),
		Body(vdom.P("Hello")),
		Footer("(c) 2026"),
	)
	require.NoError(t, err)

	want := `<div class="layout">` +
		`<header class="layout-header"><h1>Docs</h1></header>` +
		`<main class="layout-body"><p>Hello</p></main>` +
		`<footer class="layout-footer">(c) 2026</footer>` +
		`</div>`
	assert.Equal(t, want, renderHTML(t, node))
}

func TestPageOrderIndependent(t *testing.T) {
	a := PageLayout(Footer("f"), Body("b"), Header("h"))
	b := PageLayout(Header("h"), Body("b"), Footer("f"))
	assert.Equal(t, renderHTML(t, b), renderHTML(t, a))
}

func TestPageEmptyRegionsStillRendered(t *testing.T) {
	node := PageLayout(Body("only"))
	vtest.ExpectEmptyRegion(t, node, "layout-header")
	vtest.ExpectRegion(t, node, "layout-body", "only")
	vtest.ExpectEmptyRegion(t, node, "layout-footer")
}

func TestPageNoChildren(t *testing.T) {
	html := renderHTML(t, PageLayout())
	assert.Equal(t, `<div class="layout">`+
		`<header class="layout-header"></header>`+
		`<main class="layout-body"></main>`+
		`<footer class="layout-footer"></footer>`+
		`</div>`, html)
}

func TestPageFirstWins(t *testing.T) {
	html := renderHTML(t, PageLayout(Body("first"), Body("second")))
	assert.Contains(t, html, `<main class="layout-body">first</main>`)
	assert.NotContains(t, html, "second")
}

func TestPageDropsUntaggedAndForeign(t *testing.T) {
	html := renderHTML(t, PageLayout(
		vdom.P("loose"),
		"text",
		Title("card title"),
		Body("kept"),
	))
	assert.NotContains(t, html, "loose")
	assert.NotContains(t, html, "text")
	assert.NotContains(t, html, "card title")
	assert.Contains(t, html, "kept")
}

func TestPageWithClass(t *testing.T) {
	node, err := New(WithClass("docs", "wide")).Render(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "layout docs wide", node.Props["class"])
}

func TestPageNestedLayouts(t *testing.T) {
	// An inner layout resolves its own children; the outer one only sees
	// the tagged body.
	html := renderHTML(t, PageLayout(
		Body(PageLayout(Header("inner"))),
		Header("outer"),
	))
	assert.Contains(t, html, `<header class="layout-header">outer</header>`)
	assert.Contains(t, html, `<header class="layout-header">inner</header>`)
}

func TestPageConcurrentRenders(t *testing.T) {
	page := New()
	done := make(chan string)
	for i := 0; i < 8; i++ {
		go func(i int) {
			node, err := page.Render(context.Background(), Body(vdom.Textf("%d", i)))
			if err != nil {
				done <- err.Error()
				return
			}
			html, _ := render.NewRenderer(render.RendererConfig{}).RenderToString(node)
			done <- html
		}(i)
	}
	for i := 0; i < 8; i++ {
		assert.Contains(t, <-done, `<main class="layout-body">`)
	}
}

func TestStrictPolicy(t *testing.T) {
	page := New(WithPolicy(PolicyStrict), WithRequired(RegionHeader))
	ctx := context.Background()

	t.Run("clean", func(t *testing.T) {
		node, err := page.Render(ctx, Header("h"), Body("b"))
		require.NoError(t, err)
		assert.NotNil(t, node)
	})

	t.Run("duplicate", func(t *testing.T) {
		node, err := page.Render(ctx, Header("h"), Body("a"), Body("b"))
		require.Error(t, err)
		assert.Nil(t, node)
		assert.Equal(t, "E201", errors.Code(err))
		assert.Contains(t, err.Error(), `page region "body" has 2 tagged children`)
	})

	t.Run("unrecognized", func(t *testing.T) {
		_, err := page.Render(ctx, Header("h"), vdom.P("stray"))
		require.Error(t, err)
		assert.Equal(t, "E202", errors.Code(err))
	})

	t.Run("missing required", func(t *testing.T) {
		_, err := page.Render(ctx, Body("b"))
		require.Error(t, err)
		assert.Equal(t, "E203", errors.Code(err))
		assert.Contains(t, err.Error(), "missing header")
	})

	t.Run("all problems joined", func(t *testing.T) {
		_, err := page.Render(ctx, Body("a"), Body("b"), "stray")
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.New("E201"))
		assert.ErrorIs(t, err, errors.New("E202"))
		assert.ErrorIs(t, err, errors.New("E203"))
	})
}

func TestPermissiveIgnoresRequired(t *testing.T) {
	_, err := New(WithRequired(RegionHeader, RegionFooter)).Render(context.Background())
	assert.NoError(t, err)
}

func TestWarnPolicyLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	page := New(WithPolicy(PolicyWarn), WithLogger(logger), WithRequired(RegionFooter))
	node, err := page.Render(context.Background(), Body("a"), Body("b"), vdom.P("stray"))
	require.NoError(t, err)
	require.NotNil(t, node)

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "region=body")
	assert.Contains(t, out, "children=2")
	assert.Contains(t, out, "count=1")
	assert.Contains(t, out, "region=footer")
}

func TestWarnPolicyQuietWhenClean(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	_, err := New(WithPolicy(PolicyWarn), WithLogger(logger)).Render(context.Background(), Body("a"))
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestObservers(t *testing.T) {
	rec := &vtest.Recorder{}
	var calls int
	page := New(
		WithObserver(rec),
		WithObserver(slot.ObserverFunc(func(slot.Summary) { calls++ })),
		WithObserver(nil),
	)

	_, err := page.Render(context.Background(), Header("h"), Header("again"), "stray")
	require.NoError(t, err)

	require.Len(t, rec.Summaries(), 1)
	s := rec.Last()
	assert.Equal(t, "page", s.Layout)
	assert.Equal(t, 3, s.Children)
	assert.Equal(t, []string{"header"}, s.Filled)
	assert.Equal(t, []string{"body", "footer"}, s.Unmatched)
	assert.Equal(t, map[string]int{"header": 2}, s.Duplicates)
	assert.Equal(t, 1, s.Unrecognized)

	assert.Equal(t, []string{"page"}, rec.Renders())
	assert.Equal(t, 1, calls)
}

func TestObserverSeesStrictFailures(t *testing.T) {
	rec := &vtest.Recorder{}
	_, err := New(WithPolicy(PolicyStrict), WithObserver(rec)).Render(context.Background(), "stray")
	require.Error(t, err)
	assert.Len(t, rec.Summaries(), 1)
	assert.Empty(t, rec.Renders())
}

func TestCard(t *testing.T) {
	html := renderHTML(t, Card(
		Actions(vdom.Button("OK")),
		Title("Greeting"),
		Content(vdom.P("Hi")),
	))
	assert.Equal(t, `<section class="card">`+
		`<h2 class="card-title">Greeting</h2>`+
		`<div class="card-content"><p>Hi</p></div>`+
		`<div class="card-actions"><button>OK</button></div>`+
		`</section>`, html)
}

func TestMarkersDoNotCrossLayouts(t *testing.T) {
	card := renderHTML(t, Card(Header("page header"), Title("t")))
	assert.NotContains(t, card, "page header")

	page := renderHTML(t, PageLayout(Content("card content"), Body("b")))
	assert.NotContains(t, page, "card content")
}

func TestParsePolicy(t *testing.T) {
	for in, want := range map[string]Policy{
		"":           PolicyPermissive,
		"permissive": PolicyPermissive,
		"WARN":       PolicyWarn,
		" strict ":   PolicyStrict,
	} {
		got, err := ParsePolicy(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParsePolicy("loud")
	assert.Error(t, err)
}

func TestParseRegion(t *testing.T) {
	r, ok := ParseRegion("Footer")
	assert.True(t, ok)
	assert.Equal(t, RegionFooter, r)

	_, ok = ParseRegion("sidebar")
	assert.False(t, ok)
}

func TestRegionStrings(t *testing.T) {
	assert.Equal(t, []Region{RegionHeader, RegionBody, RegionFooter}, PageRegions.Markers())
	assert.Equal(t, "footer", RegionFooter.String())
	assert.Equal(t, "Region(9)", Region(9).String())
	assert.Equal(t, "actions", CardActions.String())
	assert.Equal(t, "strict", PolicyStrict.String())
}
