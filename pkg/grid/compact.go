package grid

// Compact packs every non-static item as far toward row 0 as it can go.
//
// Items are processed in row-major order (ascending Y, then X). Each one is
// placed against the set of items already placed, which starts out as all
// static items. With verticalCompact the item first rises until it would hit
// something; in both modes an item that collides is pushed to sit directly
// below whatever it hits, repeatedly, until it is clear.
//
// Static items are never moved. The result keeps the input order and has
// every Moved flag cleared.
func Compact(l Layout, verticalCompact bool) Layout {
	out := l.Clone()
	items := refs(out)
	placed := staticRefs(items)

	for _, it := range sortedRefs(items) {
		if !it.Static {
			compactItem(placed, it, verticalCompact)
			placed = append(placed, it)
		}
		it.Moved = false
	}
	return out
}

func compactItem(placed []*Item, it *Item, verticalCompact bool) {
	if it.Y < 0 {
		it.Y = 0
	}
	if verticalCompact {
		for it.Y > 0 && firstCollision(placed, it) == nil {
			it.Y--
		}
	}
	for c := firstCollision(placed, it); c != nil; c = firstCollision(placed, it) {
		it.Y = c.Bottom()
	}
}

// CorrectBounds fits every item into cols columns.
//
// An item overflowing the right edge is shifted left so that x+w == cols.
// An item that still starts left of column 0 (it is wider than the grid, or
// came in with a negative x) is treated as a full-row item: x = 0, w = cols.
// A static item that overlaps anything placed before it is pushed down a row
// at a time until it is clear.
//
// Non-static items are only shifted sideways, so two of them can end up
// overlapping. Run Compact on the result to settle them.
func CorrectBounds(l Layout, cols int) Layout {
	out := l.Clone()
	items := refs(out)
	occupied := staticRefs(items)

	for _, it := range items {
		if it.Right() > cols {
			it.X = cols - it.W
		}
		if it.X < 0 {
			it.X = 0
			it.W = cols
		}

		if !it.Static {
			occupied = append(occupied, it)
			continue
		}
		for firstCollision(occupied, it) != nil {
			it.Y++
		}
	}
	return out
}

func staticRefs(items []*Item) []*Item {
	var out []*Item
	for _, it := range items {
		if it.Static {
			out = append(out, it)
		}
	}
	return out
}
