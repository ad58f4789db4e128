package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/slotkit/pkg/server"
)

func serveCmd(g *globals) *cobra.Command {
	var (
		port     int
		host     string
		noReload bool
	)

	cmd := &cobra.Command{
		Use:   "serve <document>",
		Short: "Start the live preview server",
		Long: `Serve a rendered document and reload connected browsers when the
document changes.

Examples:
  slotkit serve docs/index.md
  slotkit serve page.yaml --port=8080
  slotkit serve page.yaml --host=0.0.0.0 --no-reload`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if port > 0 {
				g.cfg.Server.Port = port
			}
			if host != "" {
				g.cfg.Server.Host = host
			}
			if noReload {
				g.cfg.Reload.Enabled = false
			}

			srv, err := server.New(g.cfg, args[0], server.WithLogger(g.logger))
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			fmt.Fprint(g.stderr, banner)
			info(g.stderr, "Preview: http://%s", g.cfg.Address())
			if g.cfg.Metrics.Enabled {
				info(g.stderr, "Metrics: http://%s%s", g.cfg.Address(), g.cfg.Metrics.Path)
			}
			fmt.Fprintln(g.stderr)

			return srv.Run(ctx)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from config)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from config)")
	cmd.Flags().BoolVar(&noReload, "no-reload", false, "Disable live reload")

	return cmd
}
