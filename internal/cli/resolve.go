package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridpack/pkg/grid"
	"github.com/matzehuels/gridpack/pkg/gridio"
	"github.com/matzehuels/gridpack/pkg/pipeline"
	"github.com/matzehuels/gridpack/pkg/responsive"
)

// resolveCommand creates the resolve command.
func (c *CLI) resolveCommand() *cobra.Command {
	var (
		output  string
		noCache bool
		widths  []int
		last    string
	)

	cmd := &cobra.Command{
		Use:   "resolve [layout.json]",
		Short: "Derive the layout for one or more container widths",
		Long: `Derive the layout for a container width.

The width picks a breakpoint from the configured breakpoints. If the
document already has a responsive layout for it, that layout is used as is.
Otherwise one is derived from the layout of the nearest larger breakpoint
(or the base layout), fitted into the breakpoint's columns and compacted.

The result is printed as {"breakpoint", "cols", "layout"}. With -o the
document is written back with the layout stored under its breakpoint.

Repeating --width walks the container through each width in turn, the way
a window being resized would. A breakpoint visited twice keeps the layout
derived on the first visit. One result per width is printed as a JSON
array, and -o stores every layout the walk produced.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			doc, err := gridio.ReadFile(args[0])
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

			opts := pipeline.ResolveOptions{
				Layout:          doc.Layout,
				Responsive:      doc.Responsive,
				LastBreakpoint:  last,
				Breakpoints:     cfg.Breakpoints,
				Cols:            cfg.Cols,
				VerticalCompact: cfg.VerticalCompact,
			}
			if len(widths) == 0 {
				return fmt.Errorf("--width needs at least one value")
			}
			if len(widths) > 1 {
				return c.sweep(cmd, runner, opts, doc, widths, output)
			}

			opts.Width = widths[0]
			res, err := runner.Resolve(ctx, opts)
			if err != nil {
				return err
			}

			if output == "" {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}

			if doc.Responsive == nil {
				doc.Responsive = make(responsive.Layouts)
			}
			doc.Responsive[res.Breakpoint] = res.Layout
			if err := writeDocument(cmd.OutOrStdout(), doc, output, res.CacheHit); err != nil {
				return err
			}
			printKeyValue("breakpoint", res.Breakpoint)
			printKeyValue("cols", strconv.Itoa(res.Cols))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the document with the resolved layout stored")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().IntSliceVar(&widths, "width", nil, "container width in pixels (repeat to resize through several)")
	cmd.Flags().StringVar(&last, "last", "", "breakpoint the container is coming from (logged only)")
	_ = cmd.MarkFlagRequired("width")

	return cmd
}

// sweep resolves widths in order and prints or stores every step.
func (c *CLI) sweep(cmd *cobra.Command, runner *pipeline.Runner, opts pipeline.ResolveOptions, doc *gridio.Document, widths []int, output string) error {
	steps, layouts, err := runner.Sweep(cmd.Context(), opts, widths)
	if err != nil {
		return err
	}

	if output == "" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(steps)
	}

	doc.Responsive = layouts
	if err := writeDocument(cmd.OutOrStdout(), doc, output, false); err != nil {
		return err
	}
	last := steps[len(steps)-1]
	printKeyValue("breakpoints", strconv.Itoa(len(layouts)))
	printKeyValue("breakpoint", last.Breakpoint)
	printKeyValue("cols", strconv.Itoa(last.Cols))
	return nil
}

// breakpointCommand creates the breakpoint command.
func (c *CLI) breakpointCommand() *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "breakpoint",
		Short: "Show which breakpoint a container width falls into",
		Long: `Show which breakpoint a container width falls into.

A width selects the largest breakpoint whose threshold is strictly below
it, or the smallest breakpoint when none is.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			bp := responsive.BreakpointFromWidth(cfg.Breakpoints, width)
			cols, err := cfg.ColsFor(bp)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), breakpointTable(cfg.Breakpoints, cfg.Cols, bp))
			printKeyValue("width", strconv.Itoa(width))
			printKeyValue("breakpoint", StyleHighlight.Render(bp))
			printKeyValue("cols", strconv.Itoa(cols))
			printKeyValue("col width", colWidthLabel(width, cols, cfg.Margins()))
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 0, "container width in pixels")
	_ = cmd.MarkFlagRequired("width")

	return cmd
}

// breakpointTable lists breakpoints from widest to narrowest with current
// highlighted.
func breakpointTable(b responsive.Breakpoints, cols responsive.Cols, current string) string {
	names := responsive.SortBreakpoints(b)
	rows := make([][]string, 0, len(names))
	for i := len(names) - 1; i >= 0; i-- {
		name := names[i]
		rows = append(rows, []string{name, fmt.Sprintf("> %d px", b[name]), strconv.Itoa(cols[name])})
	}
	return renderTable([]string{"Breakpoint", "Width", "Cols"}, rows, func(row int) bool {
		return row < len(rows) && rows[row][0] == current
	})
}

// colWidthLabel formats the pixel width of one column.
func colWidthLabel(width, cols int, m grid.Margins) string {
	return strconv.FormatFloat(grid.ColWidth(width, cols, m), 'f', 1, 64) + " px"
}
