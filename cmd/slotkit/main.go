// Command slotkit renders page documents through the slotkit page layout.
package main

import (
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/slotkit/internal/config"
	"github.com/vango-dev/slotkit/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┌─┐┬  ┌─┐┌┬┐┬┌─┬┌┬┐
  └─┐│  │ │ │ ├┴┐│ │
  └─┘┴─┘└─┘ ┴ ┴ ┴┴ ┴
`

// globals holds the persistent flags and what they resolve to.
type globals struct {
	configPath string
	logLevel   string

	cfg    *config.Config
	logger *slog.Logger
	stdout io.Writer
	stderr io.Writer
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	g := &globals{stdout: stdout, stderr: stderr}

	rootCmd := &cobra.Command{
		Use:   "slotkit",
		Short: "Render documents through named-slot layouts",
		Long: `Slotkit places tagged content into the named regions of a layout.

Documents describe header, body and footer content in YAML or in
Markdown with frontmatter. Slotkit renders them to HTML, serves a live
preview, or publishes the result to S3.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return g.setup()
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.PersistentFlags().StringVarP(&g.configPath, "config", "c", "", "Config file (default ./slotkit.yaml if present)")
	rootCmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(
		renderCmd(g),
		serveCmd(g),
		publishCmd(g),
		versionCmd(g),
	)
	return rootCmd
}

// setup loads configuration and installs the process logger.
func (g *globals) setup() error {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return err
	}
	if g.logLevel != "" {
		cfg.Log.Level = g.logLevel
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		return errors.New("E103").Wrap(err).WithSuggestion("Use debug, info, warn or error")
	}

	g.cfg = cfg
	g.logger = slog.New(slog.NewTextHandler(g.stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(g.logger)
	return nil
}

// printError writes err for a terminal. Coded errors get the long format,
// and every error of a joined error is printed.
func printError(w io.Writer, err error) {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			printError(w, e)
		}
		return
	}

	var se *errors.SlotError
	if stderrors.As(err, &se) {
		fmt.Fprint(w, se.Format())
		return
	}
	fmt.Fprintf(w, "\033[31mError:\033[0m %s\n", err)
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", fmt.Sprintf(format, args...))
}
