// Package render converts slotkit node trees into HTML.
//
// The renderer handles escaping, void elements, boolean attributes and
// optional pretty printing. Slot-tagged children render as their content:
// a layout decides where that content goes, the renderer only writes it.
//
// To render a node tree to a string:
//
//	r := render.NewRenderer(render.RendererConfig{})
//	html, err := r.RenderToString(node)
//
// To write a complete document:
//
//	err := r.RenderPage(w, render.PageData{Title: "Home", Body: page})
//
// # templ
//
// Templ adapts a node tree to templ.Component and FromTempl turns a templ
// component into a raw node, so layouts and templ templates can nest in
// either direction.
//
// A Renderer holds no per-render state and is safe for concurrent use.
package render
