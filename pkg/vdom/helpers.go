package vdom

import "fmt"

// Text creates a text node.
func Text(content string) *VNode {
	return &VNode{
		Kind: KindText,
		Text: content,
	}
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *VNode {
	return Text(fmt.Sprintf(format, args...))
}

// Raw creates an unescaped HTML node.
// Use with caution - can lead to XSS if content is user-provided.
func Raw(html string) *VNode {
	return &VNode{
		Kind: KindRaw,
		Text: html,
	}
}

// Fragment groups children without a wrapper element.
func Fragment(children ...any) *VNode {
	node := &VNode{
		Kind:     KindFragment,
		Children: make([]*VNode, 0),
	}
	for _, child := range children {
		node.Children = appendChild(node.Children, child)
	}
	return node
}

// SlotNode tags children with a slot marker. The marker is usually a
// constant exported by a layout package, e.g. layout.RegionHeader.
func SlotNode(marker any, children ...any) *VNode {
	node := &VNode{
		Kind:     KindSlot,
		Marker:   marker,
		Children: make([]*VNode, 0),
	}
	for _, child := range children {
		node.Children = appendChild(node.Children, child)
	}
	return node
}

// Children flattens variadic child arguments into a node slice using the
// same rules as element factories.
func Children(args ...any) []*VNode {
	out := make([]*VNode, 0, len(args))
	for _, arg := range args {
		out = appendChild(out, arg)
	}
	return out
}

// If returns the node if condition is true, nil otherwise.
func If(condition bool, node *VNode) *VNode {
	if condition {
		return node
	}
	return nil
}

// Range maps a slice to VNodes.
func Range[T any](items []T, fn func(item T, index int) *VNode) []*VNode {
	result := make([]*VNode, 0, len(items))
	for i, item := range items {
		node := fn(item, i)
		if node != nil {
			result = append(result, node)
		}
	}
	return result
}

// Key creates a key attribute for sibling identity.
// The key is converted to a string using fmt.Sprintf.
func Key(key any) Attr {
	return attr("key", fmt.Sprintf("%v", key))
}

// Nothing returns nil, useful for conditional rendering.
func Nothing() *VNode {
	return nil
}
