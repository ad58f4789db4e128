package slot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/slotkit/pkg/vdom"
)

type region uint8

const (
	header region = iota
	body
	footer
	sidebar // not part of testRegions
)

func (r region) String() string {
	switch r {
	case header:
		return "header"
	case body:
		return "body"
	case footer:
		return "footer"
	case sidebar:
		return "sidebar"
	default:
		return "unknown"
	}
}

// cardPart is a second marker type; its values never match testRegions.
type cardPart uint8

const cardTitle cardPart = 0

func (cardPart) String() string { return "title" }

var testRegions = Define("test", header, body, footer)

func TestDefine(t *testing.T) {
	set := Define("page", header, body, footer)

	assert.Equal(t, "page", set.Layout())
	assert.Equal(t, 3, set.Len())
	assert.Equal(t, []region{header, body, footer}, set.Markers())
	assert.True(t, set.Has(body))
	assert.False(t, set.Has(sidebar))

	markers := set.Markers()
	markers[0] = sidebar
	assert.Equal(t, header, set.Markers()[0], "Markers must return a copy")
}

func TestDefinePanics(t *testing.T) {
	assert.PanicsWithValue(t, `slot: Define("empty"): no markers`, func() {
		Define[region]("empty")
	})
	assert.PanicsWithValue(t, `slot: Define("dup"): duplicate marker body`, func() {
		Define("dup", header, body, body)
	})
}

func TestMarkerOf(t *testing.T) {
	tests := []struct {
		name   string
		child  *vdom.VNode
		want   region
		wantOK bool
	}{
		{"tagged", testRegions.Fill(footer), footer, true},
		{"nil", nil, 0, false},
		{"element", vdom.Div(), 0, false},
		{"marker outside set", vdom.SlotNode(sidebar), 0, false},
		{"marker of another type", vdom.SlotNode(cardTitle), 0, false},
		{"untyped constant", vdom.SlotNode(1), 0, false},
		{"nil marker", vdom.SlotNode(nil), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := testRegions.MarkerOf(tt.child)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveFullLayout(t *testing.T) {
	navbar := vdom.Nav(vdom.Class("navbar"))
	routes := vdom.Div(vdom.Class("switch"))
	foot := vdom.P(vdom.Text("footer component"))

	children := []*vdom.VNode{
		testRegions.Fill(header, navbar),
		testRegions.Fill(body, routes),
		testRegions.Fill(footer, foot),
	}

	a := testRegions.Resolve(children)

	for m, want := range map[region]*vdom.VNode{header: navbar, body: routes, footer: foot} {
		content, ok := a.Get(m)
		require.True(t, ok, "region %s should be filled", m)
		require.Equal(t, vdom.KindFragment, content.Kind)
		require.Len(t, content.Children, 1)
		assert.Same(t, want, content.Children[0], "region %s", m)
	}

	r := a.Report()
	assert.Equal(t, "test", r.Layout)
	assert.Equal(t, 3, r.Children)
	assert.Equal(t, []region{header, body, footer}, r.Filled)
	assert.Empty(t, r.Unmatched)
	assert.True(t, r.Clean())
}

func TestResolveBodyOnly(t *testing.T) {
	content := vdom.P(vdom.Text("content"))
	a := testRegions.Resolve([]*vdom.VNode{testRegions.Fill(body, content)})

	assert.Nil(t, a.Content(header))
	assert.Nil(t, a.Content(footer))
	assert.False(t, a.Filled(header))
	assert.False(t, a.Filled(footer))

	got := a.Content(body)
	require.NotNil(t, got)
	assert.Same(t, content, got.Children[0])
	assert.Equal(t, []region{header, footer}, a.Report().Unmatched)
}

func TestResolveEmpty(t *testing.T) {
	for name, children := range map[string][]*vdom.VNode{
		"nil":       nil,
		"empty":     {},
		"only nils": {nil, nil},
	} {
		t.Run(name, func(t *testing.T) {
			a := testRegions.Resolve(children)

			visited := 0
			a.Each(func(m region, content *vdom.VNode) {
				visited++
				assert.Nil(t, content, "region %s", m)
			})
			assert.Equal(t, 3, visited)
			assert.Equal(t, 0, a.Report().Children)
			assert.Equal(t, []region{header, body, footer}, a.Report().Unmatched)
		})
	}
}

func TestResolveFirstMatchWins(t *testing.T) {
	first := vdom.Span(vdom.Text("first"))
	second := vdom.Span(vdom.Text("second"))
	third := vdom.Span(vdom.Text("third"))

	a := testRegions.Resolve([]*vdom.VNode{
		testRegions.Fill(body, first),
		testRegions.Fill(header, vdom.Text("h")),
		testRegions.Fill(body, second),
		testRegions.Fill(body, third),
	})

	assert.Same(t, first, a.Content(body).Children[0])

	r := a.Report()
	require.Len(t, r.Duplicates, 1)
	assert.Equal(t, Duplicate[region]{Marker: body, Count: 3}, r.Duplicates[0])
	assert.False(t, r.Clean())
}

func TestResolveDropsUnrecognized(t *testing.T) {
	stray := vdom.Div(vdom.Text("stray"))
	a := testRegions.Resolve([]*vdom.VNode{
		stray,
		vdom.SlotNode(sidebar, vdom.Text("aside")),
		vdom.SlotNode(cardTitle, vdom.Text("card title")),
		testRegions.Fill(header, vdom.Text("header")),
	})

	assert.Equal(t, 3, a.Report().Unrecognized)
	a.Each(func(m region, content *vdom.VNode) {
		if content == nil {
			return
		}
		content.Walk(func(n *vdom.VNode) bool {
			assert.NotSame(t, stray, n)
			assert.NotEqual(t, "aside", n.Text)
			assert.NotEqual(t, "card title", n.Text)
			return true
		})
	})
}

func TestResolveEmptyTaggedChild(t *testing.T) {
	a := testRegions.Resolve([]*vdom.VNode{testRegions.Fill(footer)})

	content, ok := a.Get(footer)
	assert.True(t, ok, "a tagged child with no content still fills the region")
	assert.Empty(t, content.Children)
}

func TestResolveDoesNotMutateInput(t *testing.T) {
	child := testRegions.Fill(header, vdom.Text("a"), vdom.Text("b"))
	children := []*vdom.VNode{child, vdom.Div()}

	a := testRegions.Resolve(children)
	a.Content(header).Children[0] = vdom.Text("changed")

	require.Len(t, children, 2)
	assert.Equal(t, "a", child.Children[0].Text)
	assert.Same(t, child, a.Child(header))
}

func TestResolveIsRepeatable(t *testing.T) {
	children := []*vdom.VNode{
		testRegions.Fill(footer, vdom.Text("f")),
		vdom.Div(),
		testRegions.Fill(footer, vdom.Text("g")),
	}

	first := testRegions.Resolve(children)
	second := testRegions.Resolve(children)

	assert.Equal(t, first.Report(), second.Report())
	first.Each(func(m region, content *vdom.VNode) {
		assert.Equal(t, content, second.Content(m))
	})
}

func TestAssignmentUnknownMarker(t *testing.T) {
	a := testRegions.Resolve([]*vdom.VNode{vdom.SlotNode(sidebar)})

	_, ok := a.Get(sidebar)
	assert.False(t, ok)
	assert.Nil(t, a.Child(sidebar))

	var zero Assignment[region]
	assert.Nil(t, zero.Content(header))
	zero.Each(func(region, *vdom.VNode) { t.Fatal("zero assignment has no markers") })
}

func TestReportMissing(t *testing.T) {
	a := testRegions.Resolve([]*vdom.VNode{testRegions.Fill(header)})
	r := a.Report()

	assert.Equal(t, []region{body}, r.Missing(header, body))
	assert.Empty(t, r.Missing(header))
}

func TestReportSummary(t *testing.T) {
	a := testRegions.Resolve([]*vdom.VNode{
		testRegions.Fill(header),
		testRegions.Fill(header),
		vdom.Span(),
	})

	s := a.Report().Summary()
	assert.Equal(t, Summary{
		Layout:       "test",
		Children:     3,
		Filled:       []string{"header"},
		Unmatched:    []string{"body", "footer"},
		Duplicates:   map[string]int{"header": 2},
		Unrecognized: 1,
	}, s)
}

func TestObservers(t *testing.T) {
	var got []string
	obs := Observers{
		ObserverFunc(func(s Summary) { got = append(got, "a:"+s.Layout) }),
		nil,
		ObserverFunc(func(s Summary) { got = append(got, "b:"+s.Layout) }),
	}

	obs.ObserveResolve(Summary{Layout: "page"})
	assert.Equal(t, []string{"a:page", "b:page"}, got)
}
