// Package responsive maps viewport widths to named breakpoints and derives a
// layout for each breakpoint from the ones already known.
//
// Breakpoint names are free-form strings. Each one carries a minimum pixel
// width (see [Breakpoints]) and a column count (see [Cols]). A width selects
// the largest breakpoint whose threshold it strictly exceeds, falling back to
// the smallest one.
//
// [FindOrGenerate] is the core operation: it returns the cached layout for a
// breakpoint if there is one, and otherwise adapts the nearest larger cached
// layout (or the base layout) to the breakpoint's column count. [Tracker]
// wraps it with the bookkeeping a resizing viewport needs.
package responsive

import (
	"cmp"
	"maps"
	"slices"

	"github.com/matzehuels/gridpack/pkg/errors"
	"github.com/matzehuels/gridpack/pkg/grid"
)

// Breakpoints maps a breakpoint name to its minimum width in pixels.
type Breakpoints map[string]int

// Cols maps a breakpoint name to its column count.
type Cols map[string]int

// Layouts holds one layout per breakpoint name.
type Layouts map[string]grid.Layout

// Clone returns a deep copy of ls.
func (ls Layouts) Clone() Layouts {
	out := make(Layouts, len(ls))
	for name, l := range ls {
		out[name] = l.Clone()
	}
	return out
}

// SortBreakpoints returns the breakpoint names in ascending threshold order.
// Equal thresholds are ordered by name.
func SortBreakpoints(b Breakpoints) []string {
	names := slices.Collect(maps.Keys(b))
	slices.SortFunc(names, func(x, y string) int {
		if c := cmp.Compare(b[x], b[y]); c != 0 {
			return c
		}
		return cmp.Compare(x, y)
	})
	return names
}

// BreakpointFromWidth returns the breakpoint for a viewport width: the
// largest breakpoint whose threshold is strictly below width, or the
// smallest breakpoint when none is. It returns "" for empty b.
func BreakpointFromWidth(b Breakpoints, width int) string {
	sorted := SortBreakpoints(b)
	if len(sorted) == 0 {
		return ""
	}
	match := sorted[0]
	for _, name := range sorted[1:] {
		if width > b[name] {
			match = name
		}
	}
	return match
}

// ColsFromBreakpoint returns the column count configured for bp.
func ColsFromBreakpoint(bp string, cols Cols) (int, error) {
	n, ok := cols[bp]
	if !ok {
		return 0, errors.New(errors.ErrCodeUnknownBreakpoint, "no column count for breakpoint %q", bp)
	}
	return n, nil
}

// Check reports the first inconsistency between b and cols: a breakpoint
// without a positive column count, or a bad breakpoint name.
func Check(b Breakpoints, cols Cols) error {
	if len(b) == 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "no breakpoints defined")
	}
	for _, name := range SortBreakpoints(b) {
		if err := errors.ValidateBreakpointName(name); err != nil {
			return err
		}
		n, err := ColsFromBreakpoint(name, cols)
		if err != nil {
			return err
		}
		if err := errors.ValidateCols(n); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "breakpoint %q", name)
		}
	}
	return nil
}
