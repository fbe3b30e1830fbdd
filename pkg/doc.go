// Package pkg provides the core libraries for gridpack grid layouts.
//
// # Overview
//
// Gridpack places rectangular items on a fixed-width grid of columns and
// unbounded rows, the way a draggable dashboard does. The pkg directory is
// organized into these areas:
//
//  1. [grid] - The layout engine (compaction, collisions, moves, resizes)
//  2. [responsive] - Breakpoint selection and per-breakpoint layouts
//  3. [pipeline] - Orchestration with caching and hooks
//  4. [gridio] - Layout file encoding
//  5. [render] - Text and Graphviz views of a layout
//  6. [cache], [config], [errors], [observability] - Infrastructure
//
// # Architecture
//
// The typical data flow through gridpack:
//
//	layout.json
//	     ↓
//	[gridio] package (decode + validate)
//	     ↓
//	[pipeline] package (cache lookup, hooks)
//	     ↓
//	[grid] / [responsive] packages (compact, move, resize, resolve)
//	     ↓
//	JSON, text grid, DOT or SVG
//
// # Quick Start
//
// Drag an item and settle the layout:
//
//	l := grid.Layout{
//	    {ID: "a", X: 0, Y: 0, W: 2, H: 1},
//	    {ID: "b", X: 0, Y: 1, W: 2, H: 1},
//	}
//	r := pipeline.NewRunner(nil, nil, nil)
//	out, err := r.Move(ctx, l, "b", 0, 0, pipeline.Options{VerticalCompact: true})
//
// Pick the layout for a container width:
//
//	res, err := r.Resolve(ctx, pipeline.ResolveOptions{
//	    Layout:      l,
//	    Width:       900,
//	    Breakpoints: responsive.Breakpoints{"lg": 1200, "md": 996, "sm": 768},
//	    Cols:        responsive.Cols{"lg": 12, "md": 10, "sm": 6},
//	})
//
// [grid]: github.com/matzehuels/gridpack/pkg/grid
// [responsive]: github.com/matzehuels/gridpack/pkg/responsive
// [pipeline]: github.com/matzehuels/gridpack/pkg/pipeline
// [gridio]: github.com/matzehuels/gridpack/pkg/gridio
// [render]: github.com/matzehuels/gridpack/pkg/render
// [cache]: github.com/matzehuels/gridpack/pkg/cache
// [config]: github.com/matzehuels/gridpack/pkg/config
// [errors]: github.com/matzehuels/gridpack/pkg/errors
// [observability]: github.com/matzehuels/gridpack/pkg/observability
package pkg
