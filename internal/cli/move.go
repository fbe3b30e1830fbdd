package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridpack/pkg/config"
	"github.com/matzehuels/gridpack/pkg/grid"
	"github.com/matzehuels/gridpack/pkg/pipeline"
)

// engineFlags are the engine settings that move and resize can override.
type engineFlags struct {
	preventCollision bool
	horizontalShift  bool
	noVertical       bool
}

func (f *engineFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.preventCollision, "prevent-collision", false, "reject edits that would overlap another item")
	cmd.Flags().BoolVar(&f.horizontalShift, "horizontal-shift", false, "let displaced items hop sideways")
	cmd.Flags().BoolVar(&f.noVertical, "no-vertical", false, "do not close vertical gaps afterwards")
}

// options returns the config's engine settings with every flag the user set
// applied on top.
func (f *engineFlags) options(cmd *cobra.Command, cfg *config.Config) pipeline.Options {
	opts := pipeline.OptionsFromConfig(cfg)
	if cmd.Flags().Changed("prevent-collision") {
		opts.PreventCollision = f.preventCollision
	}
	if cmd.Flags().Changed("horizontal-shift") {
		opts.HorizontalShift = f.horizontalShift
	}
	if f.noVertical {
		opts.VerticalCompact = false
	}
	return opts
}

// moveCommand creates the move command.
func (c *CLI) moveCommand() *cobra.Command {
	var (
		output string
		id     string
		x, y   int
		flags  engineFlags
	)

	cmd := &cobra.Command{
		Use:   "move [layout.json]",
		Short: "Drag an item to a new position",
		Long: `Drag an item to a new position.

The item is moved to (--x, --y) the way a user drag would move it: items it
lands on are pushed out of the way, cascading as needed, and the layout is
compacted afterwards. Static items cannot be moved.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayoutOp(cmd, args[0], output, true, "Moved "+id,
				func(ctx context.Context, r *pipeline.Runner, cfg *config.Config, l grid.Layout) (grid.Layout, bool, error) {
					out, err := r.Move(ctx, l, id, x, y, flags.options(cmd, cfg))
					return out, false, err
				})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&id, "id", "", "item to move")
	cmd.Flags().IntVar(&x, "x", 0, "target column")
	cmd.Flags().IntVar(&y, "y", 0, "target row")
	flags.register(cmd)
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

// resizeCommand creates the resize command.
func (c *CLI) resizeCommand() *cobra.Command {
	var (
		output string
		id     string
		w, h   int
		flags  engineFlags
	)

	cmd := &cobra.Command{
		Use:   "resize [layout.json]",
		Short: "Change the size of an item",
		Long: `Change the size of an item.

The item is given size --w x --h and the layout is compacted, which pushes
anything the item now covers further down.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayoutOp(cmd, args[0], output, true, "Resized "+id,
				func(ctx context.Context, r *pipeline.Runner, cfg *config.Config, l grid.Layout) (grid.Layout, bool, error) {
					out, err := r.Resize(ctx, l, id, w, h, flags.options(cmd, cfg))
					return out, false, err
				})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&id, "id", "", "item to resize")
	cmd.Flags().IntVar(&w, "w", 0, "new width in columns")
	cmd.Flags().IntVar(&h, "h", 0, "new height in rows")
	flags.register(cmd)
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("w")
	_ = cmd.MarkFlagRequired("h")

	return cmd
}
