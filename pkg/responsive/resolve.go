package responsive

import (
	"slices"

	"github.com/matzehuels/gridpack/pkg/grid"
)

// Request describes one FindOrGenerate call.
type Request struct {
	// Base is the layout to adapt when no usable cached layout exists.
	Base grid.Layout

	// Cached holds the layouts already known per breakpoint.
	Cached Layouts

	Breakpoints Breakpoints

	// Breakpoint is the target breakpoint.
	Breakpoint string

	// LastBreakpoint is the breakpoint the caller is coming from. It is
	// informational; the derivation does not depend on it.
	LastBreakpoint string

	// Cols is the column count of the target breakpoint.
	Cols int

	VerticalCompact bool
}

// FindOrGenerate returns the layout for req.Breakpoint.
//
// A cached layout for the target is returned as a copy, untouched. Otherwise
// the source is the first cached layout at or above the target in ascending
// breakpoint order, or req.Base when there is none. The source is copied,
// fitted into req.Cols with CorrectBounds, and compacted. A target that is
// not one of req.Breakpoints always derives from req.Base, even when the
// largest breakpoint has a cached layout; vue-draggable-grid would adapt
// that largest layout instead.
func FindOrGenerate(req Request) grid.Layout {
	if l, ok := req.Cached[req.Breakpoint]; ok {
		return l.Clone()
	}
	return grid.Compact(grid.CorrectBounds(source(req), req.Cols), req.VerticalCompact)
}

func source(req Request) grid.Layout {
	sorted := SortBreakpoints(req.Breakpoints)
	i := slices.Index(sorted, req.Breakpoint)
	if i < 0 {
		return req.Base
	}
	for _, name := range sorted[i:] {
		if l, ok := req.Cached[name]; ok {
			return l
		}
	}
	return req.Base
}
