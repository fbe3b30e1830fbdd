package responsive

import (
	"github.com/matzehuels/gridpack/pkg/grid"
)

// Change is the outcome of Tracker.Resize.
type Change struct {
	Breakpoint string
	Cols       int
	Layout     grid.Layout

	// Changed reports whether the breakpoint differs from the previous one.
	Changed bool
}

// Tracker follows a viewport through width changes, keeping one layout per
// breakpoint it has visited. It is not safe for concurrent use.
type Tracker struct {
	Breakpoints     Breakpoints
	Cols            Cols
	VerticalCompact bool

	base    grid.Layout
	layouts Layouts
	last    string
}

// NewTracker returns a tracker that derives unseen breakpoints from base.
// Known layouts are copied in as the initial cache; it may be nil.
func NewTracker(base grid.Layout, b Breakpoints, cols Cols, known Layouts, verticalCompact bool) (*Tracker, error) {
	if err := Check(b, cols); err != nil {
		return nil, err
	}
	if known == nil {
		known = Layouts{}
	}
	return &Tracker{
		Breakpoints:     b,
		Cols:            cols,
		VerticalCompact: verticalCompact,
		base:            base.Clone(),
		layouts:         known.Clone(),
	}, nil
}

// Breakpoint returns the breakpoint of the last Resize, or "" before the first.
func (t *Tracker) Breakpoint() string { return t.last }

// Layouts returns a copy of every layout the tracker holds.
func (t *Tracker) Layouts() Layouts { return t.layouts.Clone() }

// Resize records current as the layout of the breakpoint the viewport was
// at, then resolves the layout for width. The result is stored for its
// breakpoint so later visits return it unchanged.
func (t *Tracker) Resize(width int, current grid.Layout) (Change, error) {
	if t.last != "" && current != nil {
		t.layouts[t.last] = current.Clone()
	}

	bp := BreakpointFromWidth(t.Breakpoints, width)
	cols, err := ColsFromBreakpoint(bp, t.Cols)
	if err != nil {
		return Change{}, err
	}

	l := FindOrGenerate(Request{
		Base:            t.base,
		Cached:          t.layouts,
		Breakpoints:     t.Breakpoints,
		Breakpoint:      bp,
		LastBreakpoint:  t.last,
		Cols:            cols,
		VerticalCompact: t.VerticalCompact,
	})
	t.layouts[bp] = l.Clone()

	ch := Change{Breakpoint: bp, Cols: cols, Layout: l, Changed: bp != t.last}
	t.last = bp
	return ch, nil
}
