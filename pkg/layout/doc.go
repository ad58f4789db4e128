// Package layout provides layout components built on the slot resolver.
//
// A layout declares its regions as a closed marker type and resolves the
// children it is given into those regions. Callers tag content with the
// layout's builder functions:
//
//	page := layout.New(layout.WithPolicy(layout.PolicyWarn))
//	node, err := page.Render(ctx,
//	    layout.Header(vdom.H1("Docs")),
//	    layout.Body(vdom.P("Hello")),
//	)
//
// Every region is always rendered. Regions nobody filled are empty.
//
// # Policies
//
// Resolution itself never fails. What happens to children the resolver
// dropped is decided by the layout's Policy:
//
//   - PolicyPermissive renders and stays quiet.
//   - PolicyWarn renders and logs each dropped child at WARN.
//   - PolicyStrict returns a coded error instead of rendering.
package layout
