// Package render groups the layout renderers.
//
// Renderers take a [grid.Layout] and produce something a person can look at.
// None of them change geometry; pass layouts through the engine first.
//
//   - [text]: character grid plus legend, used by the CLI and the editor
//   - [dot]: Graphviz diagram of which item rests on which, as DOT or SVG
//
// [grid.Layout]: github.com/matzehuels/gridpack/pkg/grid.Layout
package render
