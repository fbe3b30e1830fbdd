package grid

import (
	"slices"

	"github.com/matzehuels/gridpack/pkg/errors"
)

// DefaultMaxCascadeDepth bounds how deeply one move may recurse through
// displacements when MoveOptions.MaxDepth is zero. Realistic grids stay far
// below it; hitting it means the layout is in a configuration the
// displacement heuristic cannot settle.
const DefaultMaxCascadeDepth = 4096

// MoveOptions configures MoveElement and MoveAwayFromCollision.
type MoveOptions struct {
	// IsUserAction marks a move that comes straight from a drag. Displaced
	// items then first try to jump above the item that hit them.
	IsUserAction bool

	// HorizontalShift lets items displaced by a sideways move hop sideways
	// across the mover instead of dropping a row.
	HorizontalShift bool

	// PreventCollision rejects a move whose target overlaps anything.
	PreventCollision bool

	// MaxDepth overrides DefaultMaxCascadeDepth when positive.
	MaxDepth int
}

func (o MoveOptions) maxDepth() int {
	if o.MaxDepth > 0 {
		return o.MaxDepth
	}
	return DefaultMaxCascadeDepth
}

// MoveElement moves the item with the given ID to (x, y) and displaces
// anything it lands on.
//
// Moving a static item is a no-op. With PreventCollision, a target that
// overlaps any other item leaves the layout unchanged. Otherwise each
// collision is resolved in row-major order (bottom-up for upward moves):
// colliders already moved in this pass are skipped, as are shallow overlaps
// where the mover sits more than a quarter of the collider's height below
// its top. A static collider pushes the mover away; any other collider is
// pushed away by the mover. Negative targets are clamped to 0.
//
// Overlaps the heuristics tolerate (shallow overlaps, colliders already
// moved) are settled by pushing the lower item down, so the result never
// overlaps. The returned layout has every Moved flag cleared. Callers
// normally run Compact on it afterwards to pull items back up.
func MoveElement(l Layout, id string, x, y int, opts MoveOptions) (Layout, error) {
	out := l.Clone()
	i := out.Index(id)
	if i < 0 {
		return nil, errors.New(errors.ErrCodeItemNotFound, "no item %q in layout", id)
	}
	if out[i].Static {
		return out, nil
	}

	m := newMover(out, opts)
	m.move(&out[i], x, y, opts.IsUserAction, opts.HorizontalShift, opts.PreventCollision, 0)
	if m.err != nil {
		return nil, m.err
	}
	if m.rejected {
		return l.Clone(), nil
	}
	return Compact(out, false), nil
}

// MoveAwayFromCollision moves the item moverID out of the way of blockerID,
// given that the current move is heading in direction dir.
//
// For a user action the mover first tries the spot directly above the
// blocker; if that spot is free it goes there. Otherwise it drops one row,
// or, with HorizontalShift and a sideways move, hops across the blocker's
// width. A wider mover is not hopped past a narrower blocker at a different
// column. The displacement is itself applied as a move, so it may cascade.
func MoveAwayFromCollision(l Layout, blockerID, moverID string, dir Direction, opts MoveOptions) (Layout, error) {
	out := l.Clone()
	bi, mi := out.Index(blockerID), out.Index(moverID)
	if bi < 0 {
		return nil, errors.New(errors.ErrCodeItemNotFound, "no item %q in layout", blockerID)
	}
	if mi < 0 {
		return nil, errors.New(errors.ErrCodeItemNotFound, "no item %q in layout", moverID)
	}

	m := newMover(out, opts)
	m.moveAway(&out[bi], &out[mi], opts.IsUserAction, dir, opts.HorizontalShift, 0)
	if m.err != nil {
		return nil, m.err
	}
	return Compact(out, false), nil
}

// ResizeElement sets the size of the item with the given ID.
//
// With PreventCollision a size that would overlap another item is rejected
// and the layout is returned unchanged. Overlaps created by a resize are
// otherwise left for Compact to resolve.
func ResizeElement(l Layout, id string, w, h int, opts MoveOptions) (Layout, error) {
	if err := errors.ValidateDimensions(id, w, h); err != nil {
		return nil, err
	}
	out := l.Clone()
	i := out.Index(id)
	if i < 0 {
		return nil, errors.New(errors.ErrCodeItemNotFound, "no item %q in layout", id)
	}

	resized := out[i]
	resized.W, resized.H = w, h
	if opts.PreventCollision {
		if _, hit := out.FirstCollision(resized); hit {
			return out, nil
		}
	}
	out[i] = resized
	return out, nil
}

// mover carries the state of one top-level move through its cascade.
type mover struct {
	items    []*Item
	maxDepth int
	rejected bool
	err      error
}

func newMover(l Layout, opts MoveOptions) *mover {
	return &mover{items: refs(l), maxDepth: opts.maxDepth()}
}

func (m *mover) move(it *Item, x, y int, userAction, hShift, prevent bool, depth int) {
	if m.err != nil || it.Static {
		return
	}
	if depth > m.maxDepth {
		m.err = errors.New(errors.ErrCodeCascadeLimit,
			"moving %q displaced items more than %d levels deep", it.ID, m.maxDepth)
		return
	}

	x, y = max(x, 0), max(y, 0)
	oldX, oldY := it.X, it.Y
	dir := MovingDirection(oldX, oldY, x, y)

	it.X, it.Y = x, y
	it.Moved = true

	sorted := sortedRefs(m.items)
	if dir == DirUp {
		slices.Reverse(sorted)
	}
	collisions := allCollisions(sorted, it)

	if prevent && len(collisions) > 0 {
		it.X, it.Y = oldX, oldY
		it.Moved = false
		m.rejected = true
		return
	}

	for _, c := range collisions {
		if m.err != nil {
			return
		}
		if c.Moved {
			continue
		}
		// Shallow overlap: tolerated rather than displaced.
		if it.Y > c.Y && 4*(it.Y-c.Y) > c.H {
			continue
		}
		if c.Static {
			m.moveAway(c, it, userAction, dir, hShift, depth)
		} else {
			m.moveAway(it, c, userAction, dir, hShift, depth)
		}
	}
}

func (m *mover) moveAway(blocker, it *Item, userAction bool, dir Direction, hShift bool, depth int) {
	if userAction {
		probe := &Item{
			ID: it.ID,
			X:  it.X,
			Y:  max(blocker.Y-it.H, 0),
			W:  it.W,
			H:  it.H,
		}
		if firstCollision(m.items, probe) == nil {
			m.move(it, probe.X, probe.Y, userAction, hShift, false, depth+1)
			return
		}
	}

	x, y := directionOffset(DirNone, *blocker, *it)
	if hShift && dir.Horizontal() && !(blocker.W < it.W && blocker.X != it.X) {
		x, y = directionOffset(dir, *blocker, *it)
	}
	// The follow-up move counts as a user action only with horizontal shift.
	m.move(it, x, y, hShift, false, false, depth+1)
}
