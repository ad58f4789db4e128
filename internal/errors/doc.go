// Package errors provides structured, coded errors for slotkit.
//
// Every error has a unique code (e.g. "E201") that maps to a category, a
// short message, and a longer explanation. Callers attach the specifics:
//
//	err := errors.New("E203").
//	    WithDetail(`layout "page" requires region "body"`).
//	    WithSuggestion("Add a layout.Body(...) child")
//
//	fmt.Fprintln(os.Stderr, err.Format())
//
// # Error Codes
//
//   - E1xx config: loading, parsing and validating slotkit.yaml
//   - E2xx slot: strict-mode layout diagnostics
//   - E3xx document: reading and parsing page documents
//   - E4xx publish: uploading rendered pages
//   - E5xx server: preview server lifecycle
package errors
