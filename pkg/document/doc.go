// Package document loads page documents and turns them into children for
// the page layout.
//
// Two source syntaxes are supported. A YAML document lists sections
// explicitly:
//
//	title: Getting started
//	sections:
//	  - region: header
//	    content: "# Slotkit"
//	    format: markdown
//	  - region: body
//	    content: "<p>Hello</p>"
//	    format: html
//
// A Markdown document puts the header and footer in its frontmatter and
// uses the body as the body region:
//
//	---
//	title: Getting started
//	header: "# Slotkit"
//	footer: "Built with slotkit"
//	---
//	Hello, **world**.
package document
