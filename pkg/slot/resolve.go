package slot

import "github.com/vango-dev/slotkit/pkg/vdom"

// Assignment maps each marker of a Set to the content it resolved to.
// It is built fresh by every call to Resolve and is only meaningful for the
// render that produced it.
type Assignment[M Marker] struct {
	set     *Set[M]
	matched []*vdom.VNode // tagged child per marker index, nil if unmatched
	content []*vdom.VNode // fragment of the matched child's children
	report  Report[M]
}

// Resolve partitions children into the set's regions.
//
// Children are scanned once in order. For each marker the first tagged
// child wins, which gives the same result as scanning the children once per
// marker. Nil children are skipped.
func (s *Set[M]) Resolve(children []*vdom.VNode) Assignment[M] {
	a := Assignment[M]{
		set:     s,
		matched: make([]*vdom.VNode, len(s.markers)),
		content: make([]*vdom.VNode, len(s.markers)),
	}
	counts := make([]int, len(s.markers))

	for _, child := range children {
		if child == nil {
			continue
		}
		a.report.Children++

		m, ok := s.MarkerOf(child)
		if !ok {
			a.report.Unrecognized++
			continue
		}

		i := s.index[m]
		counts[i]++
		if a.matched[i] == nil {
			a.matched[i] = child
			a.content[i] = vdom.Fragment(child.Children)
		}
	}

	a.report.Layout = s.layout
	for i, m := range s.markers {
		switch counts[i] {
		case 0:
			a.report.Unmatched = append(a.report.Unmatched, m)
		case 1:
			a.report.Filled = append(a.report.Filled, m)
		default:
			a.report.Filled = append(a.report.Filled, m)
			a.report.Duplicates = append(a.report.Duplicates, Duplicate[M]{Marker: m, Count: counts[i]})
		}
	}

	return a
}

// Get returns the content for m and whether any child was tagged with it.
func (a Assignment[M]) Get(m M) (*vdom.VNode, bool) {
	i, ok := a.lookup(m)
	if !ok || a.matched[i] == nil {
		return nil, false
	}
	return a.content[i], true
}

// Content returns the content for m, or nil when the region is empty.
// A nil node renders nothing.
func (a Assignment[M]) Content(m M) *vdom.VNode {
	content, _ := a.Get(m)
	return content
}

// Child returns the tagged child that won marker m, or nil.
func (a Assignment[M]) Child(m M) *vdom.VNode {
	i, ok := a.lookup(m)
	if !ok {
		return nil
	}
	return a.matched[i]
}

// Filled reports whether m resolved to a child.
func (a Assignment[M]) Filled(m M) bool {
	_, ok := a.Get(m)
	return ok
}

// Each calls fn for every marker of the set in declaration order, with nil
// content for empty regions.
func (a Assignment[M]) Each(fn func(m M, content *vdom.VNode)) {
	if a.set == nil {
		return
	}
	for i, m := range a.set.markers {
		fn(m, a.content[i])
	}
}

// Report returns the diagnostics gathered while resolving.
func (a Assignment[M]) Report() Report[M] {
	return a.report
}

func (a Assignment[M]) lookup(m M) (int, bool) {
	if a.set == nil {
		return 0, false
	}
	i, ok := a.set.index[m]
	return i, ok
}
