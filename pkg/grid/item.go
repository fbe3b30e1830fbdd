package grid

import "slices"

// Item is one rectangle on the grid. Coordinates and sizes are in grid cells.
type Item struct {
	ID     string `json:"id"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	W      int    `json:"w"`
	H      int    `json:"h"`
	Static bool   `json:"static,omitempty"`

	// Moved is set while an item is being resolved inside a single move.
	// Layouts returned by this package always have it cleared.
	Moved bool `json:"moved,omitempty"`
}

// Right returns the first column past the item.
func (it Item) Right() int { return it.X + it.W }

// Bottom returns the first row below the item.
func (it Item) Bottom() int { return it.Y + it.H }

// Layout is an ordered collection of items. Order carries no meaning for the
// geometry, but operations preserve it in their output.
type Layout []Item

// Clone returns a copy of the layout that shares no storage with l.
// A nil layout clones to an empty, non-nil one.
func (l Layout) Clone() Layout {
	out := make(Layout, len(l))
	copy(out, l)
	return out
}

// Item returns the item with the given ID.
func (l Layout) Item(id string) (Item, bool) {
	if i := l.Index(id); i >= 0 {
		return l[i], true
	}
	return Item{}, false
}

// Index returns the position of the item with the given ID, or -1.
func (l Layout) Index(id string) int {
	return slices.IndexFunc(l, func(it Item) bool { return it.ID == id })
}

// Statics returns the static items in layout order.
func (l Layout) Statics() Layout {
	var out Layout
	for _, it := range l {
		if it.Static {
			out = append(out, it)
		}
	}
	return out
}

// IDs returns the item IDs in layout order.
func (l Layout) IDs() []string {
	ids := make([]string, len(l))
	for i, it := range l {
		ids[i] = it.ID
	}
	return ids
}

// Bottom returns the lowest occupied row boundary (max y+h), or 0 for an
// empty layout. Renderers use it as the container height in rows.
func Bottom(l Layout) int {
	var max int
	for _, it := range l {
		if b := it.Bottom(); b > max {
			max = b
		}
	}
	return max
}

// SortByRowCol returns a copy of l sorted by ascending Y, then ascending X.
// The sort is stable, so items at the same cell keep their relative order.
func SortByRowCol(l Layout) Layout {
	out := l.Clone()
	slices.SortStableFunc(out, compareRowCol)
	return out
}

func compareRowCol(a, b Item) int {
	if a.Y != b.Y {
		return a.Y - b.Y
	}
	return a.X - b.X
}

// refs returns pointers into l, one per item, in layout order.
// The engine works on these so that an item updated through one view is
// seen through every other (sorted) view of the same layout.
func refs(l Layout) []*Item {
	out := make([]*Item, len(l))
	for i := range l {
		out[i] = &l[i]
	}
	return out
}

// sortedRefs returns a stable row-major ordering of items.
func sortedRefs(items []*Item) []*Item {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b *Item) int { return compareRowCol(*a, *b) })
	return out
}

// Margins is a [horizontal, vertical] pixel gap between items.
// The engine never reads it; it is normalized here for the rendering layer.
type Margins [2]int

// ColWidth returns the pixel width of one column in a container width pixels
// wide, with a horizontal margin on both sides of every column. It is 0 when
// cols is not positive or the margins leave no room.
func ColWidth(width, cols int, m Margins) float64 {
	if cols <= 0 {
		return 0
	}
	w := float64(width-m[0]*(cols+1)) / float64(cols)
	return max(w, 0)
}

// NormalizeMargins broadcasts a single margin value to both axes.
// Inputs of any other length than 1 or 2 are a caller error and return false.
func NormalizeMargins(m []int) (Margins, bool) {
	switch len(m) {
	case 1:
		return Margins{m[0], m[0]}, true
	case 2:
		return Margins{m[0], m[1]}, true
	}
	return Margins{}, false
}
