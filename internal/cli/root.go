package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridpack/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Gridpack arranges dashboard grid layouts",
		Long: `Gridpack is a layout engine for draggable dashboard grids. It compacts
layouts, resolves collisions when items are dragged or resized, and derives
per-breakpoint layouts for responsive containers.

Layouts are JSON files: either a bare array of items or a document with a
"layout" array and optional "responsive" layouts keyed by breakpoint.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: ~/.config/gridpack/config.toml)")

	root.AddCommand(c.compactCommand())
	root.AddCommand(c.boundsCommand())
	root.AddCommand(c.moveCommand())
	root.AddCommand(c.resizeCommand())
	root.AddCommand(c.resolveCommand())
	root.AddCommand(c.breakpointCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.dotCommand())
	root.AddCommand(c.editCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}
