// Package server implements the slotkit preview server.
//
// The server renders one page document through the page layout on every
// request to "/", so edits show up on refresh. With reload enabled, the
// page also carries a small client that listens on a WebSocket and reloads
// when the document file changes:
//
//	cfg, _ := config.Load("")
//	srv, err := server.New(cfg, "docs/index.md")
//	if err != nil {
//	    return err
//	}
//	return srv.Run(ctx)
//
// Routes:
//
//	GET /            rendered page
//	GET /healthz     liveness probe
//	GET /metrics     Prometheus metrics (metrics.path, when enabled)
//	GET /_reload     live reload WebSocket (when reload is enabled)
package server
