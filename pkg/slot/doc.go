// Package slot resolves named slots for layout components.
//
// A layout declares a closed set of markers, one per region it renders:
//
//	type Region uint8
//
//	const (
//	    RegionHeader Region = iota
//	    RegionBody
//	    RegionFooter
//	)
//
//	var Regions = slot.Define("page", RegionHeader, RegionBody, RegionFooter)
//
// Callers tag content with a marker when composing the layout:
//
//	Page(
//	    Regions.Fill(RegionHeader, Navbar()),
//	    Regions.Fill(RegionBody, Routes()),
//	)
//
// At render time the layout resolves its children into an Assignment and
// places each region's content into a fixed position:
//
//	a := Regions.Resolve(children)
//	Header(a.Content(RegionHeader))
//
// # Resolution Rules
//
//   - The first child tagged with a marker wins. Later children with the
//     same marker are dropped.
//   - A marker with no tagged child resolves to empty (nil content).
//   - Children without a marker of the set's type are never rendered.
//
// Resolve never fails and never mutates its input. The Report attached to
// every Assignment records duplicates, unmatched markers and unrecognized
// children so a layout can decide whether to warn or reject.
package slot
