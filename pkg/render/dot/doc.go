// Package dot renders the support structure of a layout as a Graphviz
// diagram.
//
// Vertical compaction stacks items against whatever sits directly above
// them. [SupportGraph] recovers that stacking: an edge A -> B means A's top
// edge touches B's bottom edge and the two share at least one column, so B
// is what keeps A from floating further up. Items with no incoming edges
// rest on the top of the grid.
//
// # Usage
//
//	src := dot.ToDOT(layout, dot.Options{Detailed: true})
//	svg, err := dot.RenderSVG(ctx, src)
//
// The DOT source ranks bottom-to-top, so every edge points up and items
// appear in the same vertical order as on the grid. Static items are drawn dashed on a grey fill.
//
// # Dependencies
//
// SVG output uses [github.com/goccy/go-graphviz], which runs Graphviz
// in-process; no external binaries are needed.
package dot
