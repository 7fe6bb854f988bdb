package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/boxlayout/pkg/cache"
	"github.com/matzehuels/boxlayout/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string        // output file path (stdout when empty)
	noCache bool          // bypass the frame cache entirely
	refresh bool          // ignore cached frames but store the new one
	noColor bool          // strip escape sequences
	padRows bool          // pad short column rows to the layout width
	ttl     time.Duration // lifetime of the cached frame
	stats   bool          // print frame statistics after writing a file
}

// renderCommand creates the render command for presenting layout documents.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{ttl: cache.TTLFrame}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Present a layout document as text",
		Long: `Present a TOML or JSON layout document as text.

The frame is written to stdout unless --output is given. Frames are cached
under the document content and the options that change the output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the frame cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even when a cached frame exists")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "strip colors and attributes (also set by NO_COLOR)")
	cmd.Flags().BoolVar(&opts.padRows, "pad-rows", false, "pad short rows inside columns to the full width")
	cmd.Flags().DurationVar(&opts.ttl, "ttl", opts.ttl, "how long a cached frame stays valid")
	cmd.Flags().BoolVar(&opts.stats, "stats", false, "print frame statistics")

	return cmd
}

// runRender renders the document at path and writes the frame to out or to
// the output file.
func (c *CLI) runRender(ctx context.Context, out io.Writer, path string, opts renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	defer runner.Close()

	result, err := runner.RenderFile(ctx, path, pipeline.Options{
		NoColor: colorDisabled(opts.noColor),
		PadRows: opts.padRows,
		TTL:     opts.ttl,
		Refresh: opts.refresh,
		Logger:  logger,
	})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %s", path))

	if opts.output == "" {
		if _, err := out.Write(result.Frame); err != nil {
			return fmt.Errorf("write frame: %w", err)
		}
		return nil
	}

	if err := os.WriteFile(opts.output, result.Frame, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	printSuccess(out, "Rendered %s", path)
	printFile(out, opts.output)
	if opts.stats {
		printStats(out, result.Stats.Width, result.Stats.Height, result.Stats.Rounds, result.CacheHit)
	}
	return nil
}
