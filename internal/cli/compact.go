package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridpack/pkg/config"
	"github.com/matzehuels/gridpack/pkg/grid"
	"github.com/matzehuels/gridpack/pkg/gridio"
	"github.com/matzehuels/gridpack/pkg/pipeline"
)

// layoutOp transforms the base layout of a document.
type layoutOp func(ctx context.Context, r *pipeline.Runner, cfg *config.Config, l grid.Layout) (grid.Layout, bool, error)

// compactCommand creates the compact command.
func (c *CLI) compactCommand() *cobra.Command {
	var (
		output     string
		noCache    bool
		noVertical bool
	)

	cmd := &cobra.Command{
		Use:   "compact [layout.json]",
		Short: "Pull items up to close vertical gaps",
		Long: `Pull items up to close vertical gaps.

Items are placed in reading order and each moves up until it touches the
item above it. Overlaps are resolved by pushing items down. Static items
never move.

With --no-vertical only overlaps are resolved; gaps are kept.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayoutOp(cmd, args[0], output, noCache, "Compacted",
				func(ctx context.Context, r *pipeline.Runner, cfg *config.Config, l grid.Layout) (grid.Layout, bool, error) {
					opts := pipeline.OptionsFromConfig(cfg)
					if noVertical {
						opts.VerticalCompact = false
					}
					return r.CompactWithCacheInfo(ctx, l, opts)
				})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&noVertical, "no-vertical", false, "resolve overlaps without closing gaps")

	return cmd
}

// boundsCommand creates the bounds command.
func (c *CLI) boundsCommand() *cobra.Command {
	var (
		output     string
		noCache    bool
		cols       int
		breakpoint string
	)

	cmd := &cobra.Command{
		Use:   "bounds [layout.json]",
		Short: "Fit items into a column count",
		Long: `Fit items into a column count.

Items that stick out past the right edge are shifted left; items wider than
the grid are stretched to the full width. Static items that end up on top of
something are pushed down.

The column count comes from --cols, or from the configured column count of
--breakpoint.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if (cols == 0) == (breakpoint == "") {
				return fmt.Errorf("exactly one of --cols and --breakpoint is required")
			}
			return c.runLayoutOp(cmd, args[0], output, noCache, "Fitted",
				func(ctx context.Context, r *pipeline.Runner, cfg *config.Config, l grid.Layout) (grid.Layout, bool, error) {
					opts := pipeline.OptionsFromConfig(cfg)
					opts.Cols = cols
					if breakpoint != "" {
						n, err := cfg.ColsFor(breakpoint)
						if err != nil {
							return nil, false, err
						}
						opts.Cols = n
					}
					return r.CorrectBoundsWithCacheInfo(ctx, l, opts)
				})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().IntVar(&cols, "cols", 0, "number of grid columns")
	cmd.Flags().StringVar(&breakpoint, "breakpoint", "", "take the column count from this breakpoint")

	return cmd
}

// runLayoutOp loads input, applies op to its base layout, and writes the
// document back out.
func (c *CLI) runLayoutOp(cmd *cobra.Command, input, output string, noCache bool, verb string, op layoutOp) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	doc, err := gridio.ReadFile(input)
	if err != nil {
		return err
	}
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(logger, verb)
	out, cacheHit, err := op(ctx, runner, cfg, doc.Layout)
	if err != nil {
		prog.failed(err)
		return err
	}
	prog.done(len(out), cacheHit)

	doc.Layout = out
	return writeDocument(cmd.OutOrStdout(), doc, output, cacheHit)
}
