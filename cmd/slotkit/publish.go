package main

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/slotkit/pkg/publish"
)

func publishCmd(g *globals) *cobra.Command {
	var (
		bucket string
		key    string
		region string
	)

	cmd := &cobra.Command{
		Use:   "publish <document>",
		Short: "Render a document and upload it to S3",
		Long: `Render a document and upload the HTML page to an S3 bucket.

Credentials come from the standard AWS chain (environment, shared
config, instance role). The key defaults to the document name with an
.html extension, under publish.prefix.

Examples:
  slotkit publish docs/index.md --bucket=my-site
  slotkit publish page.yaml --bucket=my-site --key=about.html --region=eu-west-1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if bucket != "" {
				g.cfg.Publish.Bucket = bucket
			}
			if region != "" {
				g.cfg.Publish.Region = region
			}
			if key == "" {
				key = htmlKey(args[0])
			}

			if err := publish.CheckBucket(g.cfg.Publish.Bucket); err != nil {
				return err
			}

			client, err := publish.NewS3Client(cmd.Context(), g.cfg.Publish.Region)
			if err != nil {
				return err
			}
			p, err := publish.New(client, g.cfg.Publish.Bucket, publish.WithPrefix(g.cfg.Publish.Prefix))
			if err != nil {
				return err
			}

			html, err := renderDocument(cmd.Context(), g, args[0])
			if err != nil {
				return err
			}

			url, err := p.Publish(cmd.Context(), key, html)
			if err != nil {
				return err
			}
			success(g.stderr, "Published %s", url)
			return nil
		},
	}

	cmd.Flags().StringVar(&bucket, "bucket", "", "Target bucket (default publish.bucket)")
	cmd.Flags().StringVar(&key, "key", "", "Object key (default <document>.html)")
	cmd.Flags().StringVar(&region, "region", "", "AWS region (default from the AWS config)")

	return cmd
}

// htmlKey derives an object key from a document path.
func htmlKey(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".html"
}
