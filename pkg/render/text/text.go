// Package text draws layouts as plain character grids.
//
// Each item gets a one-character symbol in layout order; empty cells are '.'
// and cells claimed by more than one item are '#':
//
//	aaab..
//	aaab..
//	cccccc
//
//	a  header  3x2 at (0,0)
//	b  nav     1x2 at (3,0)
//	c  footer  6x1 at (0,2) static
package text

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/matzehuels/gridpack/pkg/grid"
)

// Cell markers returned by Cells in place of an item index.
const (
	Empty   = -1
	Overlap = -2
)

const symbols = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Symbol returns the character used for the i-th item. Items past the
// symbol alphabet share '*'.
func Symbol(i int) rune {
	if i >= 0 && i < len(symbols) {
		return rune(symbols[i])
	}
	return '*'
}

// Cells returns the occupancy matrix of l, indexed [row][col]. A cell holds
// the index of the item covering it, Empty, or Overlap. The matrix is
// Bottom(l) rows tall and at least cols wide; items sticking out to the
// right widen it. Cells at negative coordinates are dropped.
func Cells(l grid.Layout, cols int) [][]int {
	width := cols
	for _, it := range l {
		width = max(width, it.Right())
	}
	height := grid.Bottom(l)

	cells := make([][]int, height)
	for y := range cells {
		row := make([]int, width)
		for x := range row {
			row[x] = Empty
		}
		cells[y] = row
	}

	for i, it := range l {
		for y := max(it.Y, 0); y < it.Bottom(); y++ {
			for x := max(it.X, 0); x < it.Right(); x++ {
				if cells[y][x] == Empty {
					cells[y][x] = i
				} else {
					cells[y][x] = Overlap
				}
			}
		}
	}
	return cells
}

// Grid renders only the character grid.
func Grid(l grid.Layout, cols int) string {
	var b strings.Builder
	for _, row := range Cells(l, cols) {
		for _, c := range row {
			switch c {
			case Empty:
				b.WriteByte('.')
			case Overlap:
				b.WriteByte('#')
			default:
				b.WriteRune(Symbol(c))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Legend lists each item's symbol, ID, size, and position.
func Legend(l grid.Layout) string {
	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	for i, it := range l {
		fmt.Fprintf(tw, "%c\t%s\t%dx%d at (%d,%d)", Symbol(i), it.ID, it.W, it.H, it.X, it.Y)
		if it.Static {
			fmt.Fprint(tw, "\tstatic")
		}
		fmt.Fprintln(tw)
	}
	tw.Flush()
	return b.String()
}

// Render draws the grid followed by a blank line and the legend.
func Render(l grid.Layout, cols int) string {
	return Grid(l, cols) + "\n" + Legend(l)
}
