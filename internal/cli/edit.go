package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridpack/pkg/config"
	"github.com/matzehuels/gridpack/pkg/gridio"
	"github.com/matzehuels/gridpack/pkg/pipeline"
	"github.com/matzehuels/gridpack/pkg/responsive"
)

// editCommand creates the edit command for interactive layout editing.
func (c *CLI) editCommand() *cobra.Command {
	var (
		output string
		cols   int
	)

	cmd := &cobra.Command{
		Use:   "edit [layout.json]",
		Short: "Edit a layout interactively in the terminal",
		Long: `Edit a layout interactively in the terminal.

Keys:
  tab / shift+tab   select the next / previous item
  arrows, hjkl      drag the selected item one cell
  shift+arrows, HJKL  resize the selected item
  c                 compact the layout
  b                 fit the layout into the grid width
  v                 toggle vertical compaction
  w                 write the layout
  q                 quit

Drags behave like the move command: items in the way are pushed aside and
the layout is compacted. The grid is --cols wide, or as wide as the widest
configured breakpoint.`,
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
			if cols == 0 {
				cols = widestCols(cfg)
			}
			if output == "" {
				output = args[0]
			}

			runner, err := c.newRunner(true)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()

			model := NewEditorModel(ctx, runner, pipeline.OptionsFromConfig(cfg), doc, output, cols)
			final, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
			if err != nil {
				return err
			}
			if m, ok := final.(EditorModel); ok && m.Dirty {
				printWarning("Unsaved changes discarded")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "file written by 'w' (default: the input file)")
	cmd.Flags().IntVar(&cols, "cols", 0, "grid width in columns")

	return cmd
}

// widestCols returns the column count of the widest configured breakpoint.
func widestCols(cfg *config.Config) int {
	names := responsive.SortBreakpoints(cfg.Breakpoints)
	if len(names) == 0 {
		return pipeline.DefaultCols
	}
	return cfg.Cols[names[len(names)-1]]
}
