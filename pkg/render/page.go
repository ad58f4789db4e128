package render

import (
	"io"

	"github.com/vango-dev/slotkit/pkg/vdom"
)

// PageData contains all data needed to render a complete HTML document.
type PageData struct {
	// Body is the root node for the page content.
	Body *vdom.VNode

	// Title is the page title.
	Title string

	// Lang is the language attribute for the html element.
	// Defaults to "en" if not specified.
	Lang string

	// Meta contains extra meta tags for the head.
	Meta []MetaTag

	// StyleSheets contains paths to external stylesheets.
	StyleSheets []string

	// Styles contains inline CSS.
	Styles []string

	// Scripts are written at the end of the body.
	Scripts []ScriptTag
}

// MetaTag represents a meta element in the document head.
type MetaTag struct {
	Name     string // name attribute
	Property string // property attribute (for OpenGraph)
	Content  string // content attribute
}

// ScriptTag represents a script element.
type ScriptTag struct {
	Src    string // src attribute
	Defer  bool   // defer attribute
	Module bool   // type="module"
	Inline string // inline script content, used when Src is empty
}

// RenderPage renders a complete HTML document to the given writer.
func (r *Renderer) RenderPage(w io.Writer, page PageData) error {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	sw := &stickyWriter{w: w}
	sw.str("<!DOCTYPE html>\n")
	sw.printf(`<html lang="%s">`+"\n", escapeAttr(lang))
	r.renderHead(sw, page)
	sw.str("<body>\n")

	if err := r.renderNode(sw, page.Body, 0); err != nil {
		return err
	}
	if !sw.lineStart {
		sw.str("\n")
	}

	for _, script := range page.Scripts {
		renderScriptTag(sw, script)
	}

	sw.str("</body>\n</html>\n")
	return sw.err
}

// renderHead renders the document head section.
func (r *Renderer) renderHead(w *stickyWriter, page PageData) {
	w.str("<head>\n")
	w.str(`  <meta charset="utf-8">` + "\n")
	w.str(`  <meta name="viewport" content="width=device-width, initial-scale=1">` + "\n")

	if page.Title != "" {
		w.printf("  <title>%s</title>\n", escapeHTML(page.Title))
	}

	for _, meta := range page.Meta {
		w.str("  <meta")
		if meta.Name != "" {
			w.printf(` name="%s"`, escapeAttr(meta.Name))
		}
		if meta.Property != "" {
			w.printf(` property="%s"`, escapeAttr(meta.Property))
		}
		w.printf(` content="%s">`+"\n", escapeAttr(meta.Content))
	}

	for _, href := range page.StyleSheets {
		w.printf(`  <link rel="stylesheet" href="%s">`+"\n", escapeAttr(href))
	}

	for _, style := range page.Styles {
		w.printf("  <style>%s</style>\n", style)
	}

	w.str("</head>\n")
}

// renderScriptTag renders a script element.
func renderScriptTag(w *stickyWriter, script ScriptTag) {
	w.str("<script")
	if script.Module {
		w.str(` type="module"`)
	}
	if script.Src != "" {
		w.printf(` src="%s"`, escapeAttr(script.Src))
		if script.Defer {
			w.str(" defer")
		}
		w.str("></script>\n")
		return
	}
	w.str(">")
	w.str(escapeScript(script.Inline))
	w.str("</script>\n")
}
