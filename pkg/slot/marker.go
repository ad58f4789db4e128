package slot

import (
	"fmt"
	"slices"

	"github.com/vango-dev/slotkit/pkg/vdom"
)

// Marker is a slot marker identity. Layouts declare a small named type with
// one constant per region; a child tagged with a value of another type can
// never match the set.
type Marker interface {
	comparable
	String() string
}

// Set is the immutable, ordered set of markers a layout recognizes.
// A Set is safe for concurrent use.
type Set[M Marker] struct {
	layout  string
	markers []M
	index   map[M]int
}

// Define declares the markers of a layout. It panics if no markers are given
// or a marker is repeated, since both are programming errors in the layout
// definition.
func Define[M Marker](layout string, markers ...M) *Set[M] {
	if len(markers) == 0 {
		panic(fmt.Sprintf("slot: Define(%q): no markers", layout))
	}

	index := make(map[M]int, len(markers))
	for i, m := range markers {
		if _, dup := index[m]; dup {
			panic(fmt.Sprintf("slot: Define(%q): duplicate marker %s", layout, m))
		}
		index[m] = i
	}

	return &Set[M]{
		layout:  layout,
		markers: slices.Clone(markers),
		index:   index,
	}
}

// Layout returns the name of the layout the set belongs to.
func (s *Set[M]) Layout() string {
	return s.layout
}

// Markers returns the markers in declaration order.
func (s *Set[M]) Markers() []M {
	return slices.Clone(s.markers)
}

// Len returns the number of markers.
func (s *Set[M]) Len() int {
	return len(s.markers)
}

// Has reports whether m is one of the set's markers.
func (s *Set[M]) Has(m M) bool {
	_, ok := s.index[m]
	return ok
}

// Fill tags content with marker m.
func (s *Set[M]) Fill(m M, content ...any) *vdom.VNode {
	return vdom.SlotNode(m, content...)
}

// MarkerOf returns the marker a child is tagged with, if the set recognizes it.
func (s *Set[M]) MarkerOf(child *vdom.VNode) (M, bool) {
	var zero M
	if !child.IsSlot() {
		return zero, false
	}
	m, ok := child.Marker.(M)
	if !ok || !s.Has(m) {
		return zero, false
	}
	return m, true
}
