package main

import (
	"bytes"
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/slotkit/internal/config"
	"github.com/vango-dev/slotkit/pkg/document"
	"github.com/vango-dev/slotkit/pkg/layout"
	"github.com/vango-dev/slotkit/pkg/render"
	"github.com/vango-dev/slotkit/pkg/server"
)

func renderCmd(g *globals) *cobra.Command {
	var (
		output string
		pretty bool
		policy string
	)

	cmd := &cobra.Command{
		Use:   "render <document>",
		Short: "Render a document to HTML",
		Long: `Render a document through the page layout and write a complete
HTML page.

Examples:
  slotkit render docs/index.md
  slotkit render page.yaml -o dist/index.html --pretty
  slotkit render page.yaml --policy=strict`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("pretty") {
				g.cfg.Render.Pretty = pretty
			}
			if policy != "" {
				g.cfg.Layout.Policy = policy
			}

			html, err := renderDocument(cmd.Context(), g, args[0])
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				_, err := g.stdout.Write(html)
				return err
			}
			if err := os.WriteFile(output, html, 0o644); err != nil {
				return err
			}
			success(g.stderr, "Rendered %s to %s", args[0], output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the HTML output")
	cmd.Flags().StringVar(&policy, "policy", "", "Layout policy: permissive, warn or strict")

	return cmd
}

// renderDocument renders the document at path as a complete HTML page
// using the loaded configuration.
func renderDocument(ctx context.Context, g *globals, path string) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := g.cfg
	if cfg == nil {
		cfg = config.Default()
	}

	doc, err := document.Load(path)
	if err != nil {
		return nil, err
	}

	opts, err := server.PageOptions(cfg, g.logger)
	if err != nil {
		return nil, err
	}
	body, err := doc.Render(ctx, layout.New(opts...))
	if err != nil {
		return nil, err
	}

	lang := doc.Lang
	if lang == "" {
		lang = cfg.Render.Lang
	}

	var buf bytes.Buffer
	renderer := render.NewRenderer(render.RendererConfig{Pretty: cfg.Render.Pretty})
	if err := renderer.RenderPage(&buf, render.PageData{
		Body:  body,
		Title: doc.Title,
		Lang:  lang,
	}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
