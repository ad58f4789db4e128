// Package vdom provides the node tree that slotkit layouts are built from.
//
// VNode is the fundamental building block representing elements, text,
// fragments, components, raw HTML, and slot-tagged children. Props holds
// attributes. Attr is used to build Props.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    H1(Text("Title")),
//	    P(Text("Content")),
//	)
//
// # Slot Children
//
// SlotNode wraps content with a marker identity. Layout components read the
// marker to decide which region the content belongs to; see package slot.
// The node itself carries no rendering behavior beyond its children.
package vdom
