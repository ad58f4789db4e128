package vdom

import "strings"

// attr creates an Attr with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// Identity attributes

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// StyleAttr sets the style attribute (named to avoid conflict with a Style element).
func StyleAttr(style string) Attr { return attr("style", style) }

// Data creates a data-* attribute.
// Example: Data("region", "header") → data-region="header"
func Data(key, value string) Attr { return attr("data-"+key, value) }

// Accessibility attributes

// Role sets the role attribute.
func Role(role string) Attr { return attr("role", role) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) Attr { return attr("aria-label", label) }

// AriaHidden sets the aria-hidden attribute.
func AriaHidden(hidden bool) Attr { return attr("aria-hidden", hidden) }

// Document attributes

func Lang(lang string) Attr       { return attr("lang", lang) }
func Charset(charset string) Attr { return attr("charset", charset) }
func Name(name string) Attr       { return attr("name", name) }
func Content(content string) Attr { return attr("content", content) }

// Link and media attributes

func Href(url string) Attr    { return attr("href", url) }
func Rel(rel string) Attr     { return attr("rel", rel) }
func Src(url string) Attr     { return attr("src", url) }
func Alt(text string) Attr    { return attr("alt", text) }
func Type(t string) Attr      { return attr("type", t) }
func Defer() Attr             { return attr("defer", true) }
func Hidden() Attr            { return attr("hidden", true) }
func Disabled() Attr          { return attr("disabled", true) }
func TitleAttr(t string) Attr { return attr("title", t) }
