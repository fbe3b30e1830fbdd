package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridpack/pkg/errors"
	"github.com/matzehuels/gridpack/pkg/grid"
	"github.com/matzehuels/gridpack/pkg/gridio"
	"github.com/matzehuels/gridpack/pkg/render/dot"
	"github.com/matzehuels/gridpack/pkg/render/text"
)

const (
	formatDOT = "dot"
	formatSVG = "svg"
)

// pickLayout returns the base layout of doc, or its responsive layout for
// breakpoint when one is named.
func pickLayout(doc *gridio.Document, breakpoint string) (grid.Layout, error) {
	if breakpoint == "" {
		return doc.Layout, nil
	}
	l, ok := doc.Responsive[breakpoint]
	if !ok {
		return nil, errors.New(errors.ErrCodeUnknownBreakpoint, "document has no layout for breakpoint %q", breakpoint)
	}
	return l, nil
}

// showCommand creates the show command.
func (c *CLI) showCommand() *cobra.Command {
	var (
		cols       int
		breakpoint string
	)

	cmd := &cobra.Command{
		Use:   "show [layout.json]",
		Short: "Draw a layout as a character grid",
		Long: `Draw a layout as a character grid.

Each item is drawn with its own letter; '.' marks free cells and '#' marks
cells claimed by more than one item. A legend lists every item.

The grid is --cols wide, or as wide as the layout needs when not set.
Use --breakpoint to draw one of the document's responsive layouts.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := gridio.ReadFile(args[0])
			if err != nil {
				return err
			}
			l, err := pickLayout(doc, breakpoint)
			if err != nil {
				return err
			}
			if cols == 0 && breakpoint != "" {
				cfg, err := c.loadConfig()
				if err != nil {
					return err
				}
				if n, err := cfg.ColsFor(breakpoint); err == nil {
					cols = n
				}
			}

			fmt.Fprint(cmd.OutOrStdout(), text.Render(l, cols))
			for _, pair := range grid.Overlaps(l) {
				printWarning("%s overlaps %s", pair[0], pair[1])
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&cols, "cols", 0, "grid width in columns")
	cmd.Flags().StringVar(&breakpoint, "breakpoint", "", "draw the responsive layout for this breakpoint")

	return cmd
}

// dotCommand creates the dot command.
func (c *CLI) dotCommand() *cobra.Command {
	var (
		output     string
		format     string
		detailed   bool
		breakpoint string
	)

	cmd := &cobra.Command{
		Use:   "dot [layout.json]",
		Short: "Export which item rests on which as a Graphviz diagram",
		Long: `Export which item rests on which as a Graphviz diagram.

An edge A -> B means A sits directly below B and shares a column with it,
so B is what stops A from moving further up during compaction.

Formats: dot (Graphviz source, default) or svg (rendered in-process).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != formatDOT && format != formatSVG {
				return fmt.Errorf("invalid format: %q (must be 'dot' or 'svg')", format)
			}
			doc, err := gridio.ReadFile(args[0])
			if err != nil {
				return err
			}
			l, err := pickLayout(doc, breakpoint)
			if err != nil {
				return err
			}

			data := []byte(dot.ToDOT(l, dot.Options{Detailed: detailed}))
			if format == formatSVG {
				spinner := newSpinnerWithContext(cmd.Context(), "Rendering SVG...")
				spinner.Start()
				data, err = dot.RenderSVG(cmd.Context(), string(data))
				if err != nil {
					spinner.StopWithError("Rendering failed")
					return err
				}
				spinner.Stop()
			}

			if output == "" {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			printSuccess("Diagram written")
			printFile(output)
			if format == formatDOT {
				printNextStep("Render it with Graphviz", "dot -Tsvg "+output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", formatDOT, "output format: dot, svg")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include size and position in node labels")
	cmd.Flags().StringVar(&breakpoint, "breakpoint", "", "export the responsive layout for this breakpoint")

	return cmd
}
