// Package vtest provides testing helpers for layouts built on pkg/slot.
//
// Render assertions work on rendered HTML:
//
//	node := layout.PageLayout(layout.Body(vdom.P("Hi")))
//	vtest.ExpectRegion(t, node, "layout-body", "<p>Hi</p>")
//	vtest.ExpectEmptyRegion(t, node, "layout-footer")
//
// Recorder captures what a layout reported to its observers:
//
//	rec := &vtest.Recorder{}
//	page := layout.New(layout.WithObserver(rec))
//	page.Render(ctx, layout.Body("x"), layout.Body("y"))
//	rec.Last().Duplicates // map[body:2]
package vtest
